// This file is part of Gopher7800.
//
// Gopher7800 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher7800 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher7800.  If not, see <https://www.gnu.org/licenses/>.

package cartridge

import (
	"fmt"

	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/hardware/audio/pokey"
	"github.com/jetsetilly/gopher7800/hardware/memory/addressspace"
	"github.com/jetsetilly/gopher7800/savestate"
)

// bankset carts have two copies of the address space. The first half of the
// ROM (and RAM) is seen by the CPU and the second half is seen by MARIA. The
// half is selected by the MariaRead flag of the address space.
//
// The ROM image is split in two and each half of the image is placed at the
// top of the corresponding half of the cart ROM.
//
// The 128K formats bank the $8000 region in the same way as A78SG. Formats
// with RAM map it at $4000 for reading. The CPU writes the CPU half through
// $4000 and the MARIA half through $C000.
type bankset struct {
	cartType CartType

	mem *addressspace.AddressSpace

	rom  []uint8
	half int

	// nil for the unbanked formats
	bank       []int
	bankRegion uint16

	ram []uint8

	pokey         *pokey.Pokey
	hasPokey      bool
	pokeyMask     uint16
	pokeyMatch    uint16
	pokeyReadable bool
}

const (
	banksetSmall = 0x20000
	banksetLarge = 0x40000
)

func newBankset(t CartType, data []uint8) (*bankset, error) {
	cart := &bankset{
		cartType: t,
	}

	romSize := banksetSmall

	switch t {
	case A78BB128K, A78BB128KP:
		romSize = banksetLarge
		cart.bank = []int{0, 6, 0, 7}
		cart.bankRegion = 3
	case A78BB128KR, A78BB128KRPL:
		romSize = banksetLarge
		cart.bank = []int{0, 6, 0, 7}
		cart.bankRegion = 2
	case A78BB32K, A78BB32KP, A78BB32KRPL, A78BB48K, A78BB48KP, A78BB52K:
	default:
		return nil, curated.Errorf(ConstructionError, "not a bankset cart: "+t.String())
	}

	switch t {
	case A78BB32KRPL, A78BB128KR, A78BB128KRPL:
		cart.ram = make([]uint8, 0x8000)
	}

	switch t {
	case A78BB32KP:
		cart.setPokey(0xf000, 0x4000, true)
	case A78BB48KP:
		cart.setPokey(0xf000, 0x4000, false)
	case A78BB128KP:
		cart.setPokey(0xc000, 0x4000, true)
	case A78BB32KRPL:
		cart.setPokey(0xff00, 0x0800, true)
	case A78BB128KRPL:
		cart.setPokey(0xc000, 0x0000, true)
	}

	if len(data) > romSize {
		return nil, curated.Errorf(ConstructionError, fmt.Sprintf("%s: ROM is larger than %#x bytes", t, romSize))
	}

	cart.rom = make([]uint8, romSize)
	cart.half = romSize >> 1

	dataHalf := len(data) >> 1
	offset := cart.half - dataHalf
	copy(cart.rom[offset:], data[:dataHalf])
	copy(cart.rom[cart.half|offset:], data[dataHalf:dataHalf<<1])

	return cart, nil
}

func (cart *bankset) setPokey(mask uint16, match uint16, readable bool) {
	cart.hasPokey = true
	cart.pokeyMask = mask
	cart.pokeyMatch = match
	cart.pokeyReadable = readable
}

func (cart *bankset) String() string {
	if cart.bank != nil {
		return fmt.Sprintf("%s %v", cart.cartType, cart.bank)
	}
	return cart.cartType.String()
}

// Type implements the Cart interface.
func (cart *bankset) Type() CartType {
	return cart.cartType
}

// Attach implements the Cart interface.
func (cart *bankset) Attach(host Host) {
	if !cart.hasPokey {
		return
	}
	if cart.pokey == nil {
		cart.pokey = pokey.NewPokey(host)
	} else {
		cart.pokey.Plumb(host)
	}
}

// SelfMap implements the Cart interface. The address space is always kept
// because the MariaRead flag is needed on every read.
func (cart *bankset) SelfMap(mem *addressspace.AddressSpace) bool {
	cart.mem = mem

	switch cart.cartType {
	case A78BB52K:
		mem.Map(0x3000, 0xd000, cart)
		return true
	case A78BB32KRPL, A78BB128KRPL:
		mem.Map(0x0800, 0x0f, cart)
		mem.Map(0x4000, 0xc000, cart)
		return true
	}

	return false
}

// RequestSnooping implements the Cart interface.
func (cart *bankset) RequestSnooping() bool {
	return false
}

// StartFrame implements the Cart interface.
func (cart *bankset) StartFrame() {
	if cart.pokey != nil {
		cart.pokey.StartFrame()
	}
}

// EndFrame implements the Cart interface.
func (cart *bankset) EndFrame() {
	if cart.pokey != nil {
		cart.pokey.EndFrame()
	}
}

// Reset implements the device.Device interface.
func (cart *bankset) Reset() {
	if cart.pokey != nil {
		cart.pokey.Reset()
	}
}

func (cart *bankset) mariaRead() bool {
	return cart.mem != nil && cart.mem.MariaRead()
}

func (cart *bankset) isPokey(addr uint16) bool {
	return cart.hasPokey && addr&cart.pokeyMask == cart.pokeyMatch
}

// Read implements the device.Device interface.
func (cart *bankset) Read(addr uint16) uint8 {
	if cart.isPokey(addr) && cart.pokeyReadable {
		if cart.pokey == nil {
			return 0
		}
		return cart.pokey.Read(addr)
	}

	maria := cart.mariaRead()

	if cart.ram != nil && addr>>14 == 1 {
		idx := int(addr & 0x3fff)
		if maria {
			idx |= 0x4000
		}
		return cart.ram[idx]
	}

	idx := int(addr)
	if cart.bank != nil {
		idx = cart.bank[addr>>14]<<14 | int(addr&0x3fff)
	}
	if maria {
		idx |= cart.half
	}
	return cart.rom[idx]
}

// Write implements the device.Device interface.
func (cart *bankset) Write(addr uint16, data uint8) {
	if cart.isPokey(addr) {
		if cart.pokey != nil {
			cart.pokey.Write(addr, data)
		}
		return
	}

	region := addr >> 14

	if cart.ram != nil {
		switch region {
		case 1:
			cart.ram[addr&0x3fff] = data
			return
		case 3:
			cart.ram[0x4000|addr&0x3fff] = data
			return
		}
	}

	if cart.bank != nil && region == cart.bankRegion {
		cart.bank[2] = int(data & 0x07)
	}
}

// Serialize implements the Cart interface.
func (cart *bankset) Serialize(w *savestate.Writer) {
	writeHeader(w, cart.cartType, 1)
	w.WriteBytes(cart.rom)
	if cart.bank != nil {
		w.WriteIntegers(toInt32s(cart.bank))
	}
	if cart.ram != nil {
		w.WriteBytes(cart.ram)
	}
	if cart.hasPokey {
		writeOptionalPokey(w, cart.pokey)
	}
}

func deserializeBankset(r *savestate.Reader, t CartType) (Cart, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}

	cart, err := newBankset(t, nil)
	if err != nil {
		return nil, r.Fail(err.Error())
	}

	cart.rom = r.ReadExpectedBytes(len(cart.rom))
	if cart.bank != nil {
		cart.bank = toInts(r.ReadIntegers(len(cart.bank)))
	}
	if cart.ram != nil {
		cart.ram = r.ReadExpectedBytes(len(cart.ram))
	}

	if err := r.Err(); err != nil {
		return nil, err
	}

	if cart.hasPokey {
		p, err := readOptionalPokey(r)
		if err != nil {
			return nil, err
		}
		cart.pokey = p
	}

	if cart.bank != nil {
		if err := checkBanks(r, cart.bank, 14, cart.half); err != nil {
			return nil, err
		}
	}

	return cart, nil
}
