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

	"github.com/jetsetilly/gopher7800/hardware/audio/pokey"
	"github.com/jetsetilly/gopher7800/hardware/memory/addressspace"
	"github.com/jetsetilly/gopher7800/savestate"
)

// superGame covers the 7800 formats that divide the top 48K of the address
// space into regions, each of which points to a bank in ROM. A write to the
// $8000 region selects the bank that appears there.
//
//	       $4000     $8000     $C000
//	A78SG  6         0-7       7
//	A78SGR RAM       0-7       7
//	A78SGP POKEY     0-7       7
//	A78S9  0         1-8       8        (+ POKEY at $0450 for A78S9PL)
//	A78S4  2         0-3       3        (+ RAM at $6000 for A78S4R)
//	A78AB  0-1       2         3
//
// A78AC uses 8K regions and selects a pair of consecutive banks for $A000 and
// $C000 by writing to $FF80-$FF87.
type superGame struct {
	cartType CartType
	rom      []uint8

	bankShift uint
	bank      []int

	// RAM appears at ramBase for len(ram) bytes
	ram     []uint8
	ramBase uint16

	pokey    *pokey.Pokey
	hasPokey bool
}

func superGameLayout(t CartType) (romSize int, bankShift uint, bank []int) {
	switch t {
	case A78SG, A78SGR:
		return 0x4000 * 8, 14, []int{0, 6, 0, 7}
	case A78SGP:
		return 0x4000 * 8, 14, []int{0, 0, 0, 7}
	case A78S9, A78S9PL:
		return 0x4000 * 9, 14, []int{0, 0, 1, 8}
	case A78S4, A78S4R:
		return 0x10000, 14, []int{0, 2, 0, 3}
	case A78AB:
		return 0x10000, 14, []int{0, 0, 2, 3}
	case A78AC:
		return 0x2000 * 16, 13, []int{0, 0, 13, 12, 15, 0, 1, 14}
	}
	return 0, 0, nil
}

func newSuperGame(t CartType, data []uint8) *superGame {
	romSize, bankShift, bank := superGameLayout(t)

	cart := &superGame{
		cartType:  t,
		rom:       fixedROM(data, romSize),
		bankShift: bankShift,
		bank:      bank,
	}

	switch t {
	case A78SGR:
		cart.ram = make([]uint8, 0x4000)
		cart.ramBase = 0x4000
	case A78S4R:
		cart.ram = make([]uint8, 0x2000)
		cart.ramBase = 0x6000
	case A78SGP, A78S9PL:
		cart.hasPokey = true
	}

	return cart
}

func (cart *superGame) String() string {
	return fmt.Sprintf("%s %v", cart.cartType, cart.bank)
}

// Type implements the Cart interface.
func (cart *superGame) Type() CartType {
	return cart.cartType
}

// Attach implements the Cart interface.
func (cart *superGame) Attach(host Host) {
	if !cart.hasPokey {
		return
	}
	if cart.pokey == nil {
		cart.pokey = pokey.NewPokey(host)
	} else {
		cart.pokey.Plumb(host)
	}
}

// SelfMap implements the Cart interface. A78S9PL maps the page containing
// the POKEY as well as the ROM.
func (cart *superGame) SelfMap(mem *addressspace.AddressSpace) bool {
	if cart.cartType != A78S9PL {
		return false
	}
	mem.Map(0x0440, 0x40, cart)
	mem.Map(0x4000, 0xc000, cart)
	return true
}

// RequestSnooping implements the Cart interface.
func (cart *superGame) RequestSnooping() bool {
	return false
}

// StartFrame implements the Cart interface.
func (cart *superGame) StartFrame() {
	if cart.pokey != nil {
		cart.pokey.StartFrame()
	}
}

// EndFrame implements the Cart interface.
func (cart *superGame) EndFrame() {
	if cart.pokey != nil {
		cart.pokey.EndFrame()
	}
}

// Reset implements the device.Device interface. The bank registers keep
// their values.
func (cart *superGame) Reset() {
	if cart.pokey != nil {
		cart.pokey.Reset()
	}
}

func (cart *superGame) isPokey(addr uint16) bool {
	switch cart.cartType {
	case A78SGP:
		return addr>>14 == 1
	case A78S9PL:
		return addr&0xfff0 == 0x0450
	}
	return false
}

func (cart *superGame) isRAM(addr uint16) bool {
	return cart.ram != nil && addr >= cart.ramBase && int(addr) < int(cart.ramBase)+len(cart.ram)
}

// Read implements the device.Device interface.
func (cart *superGame) Read(addr uint16) uint8 {
	if cart.isPokey(addr) {
		if cart.pokey == nil {
			return 0
		}
		return cart.pokey.Read(addr)
	}

	if cart.isRAM(addr) {
		return cart.ram[addr-cart.ramBase]
	}

	mask := uint16(1)<<cart.bankShift - 1
	return cart.rom[cart.bank[addr>>cart.bankShift]<<cart.bankShift|int(addr&mask)]
}

// Write implements the device.Device interface.
func (cart *superGame) Write(addr uint16, data uint8) {
	if cart.isPokey(addr) {
		if cart.pokey != nil {
			cart.pokey.Write(addr, data)
		}
		return
	}

	if cart.isRAM(addr) {
		cart.ram[addr-cart.ramBase] = data
		return
	}

	if cart.cartType == A78AC {
		if addr&0xfff0 == 0xff80 {
			cart.bank[5] = int(addr&0x07) << 1
			cart.bank[6] = cart.bank[5] + 1
		}
		return
	}

	if addr>>14 != 2 {
		return
	}

	switch cart.cartType {
	case A78SG, A78SGR, A78SGP:
		cart.bank[2] = int(data & 0x07)
	case A78S9, A78S9PL:
		cart.bank[2] = int(data&0x07) + 1
	case A78S4, A78S4R:
		cart.bank[2] = int(data & 0x03)
	case A78AB:
		cart.bank[1] = int(data-1) & 0x01
	}
}

// Serialize implements the Cart interface.
func (cart *superGame) Serialize(w *savestate.Writer) {
	writeHeader(w, cart.cartType, 1)
	w.WriteBytes(cart.rom)
	w.WriteIntegers(toInt32s(cart.bank))
	w.WriteOptionalBytes(cart.ram)
	if cart.hasPokey {
		writeOptionalPokey(w, cart.pokey)
	}
}

func deserializeSuperGame(r *savestate.Reader, t CartType) (Cart, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}

	cart := newSuperGame(t, nil)
	cart.rom = r.ReadExpectedBytes(len(cart.rom))
	bank := r.ReadIntegers(len(cart.bank))
	if cart.ram != nil {
		cart.ram = r.ReadOptionalBytes(len(cart.ram))
	} else {
		// RAM-less variants write an empty optional
		_ = r.ReadOptionalBytes(0)
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

	cart.bank = toInts(bank)
	if err := checkBanks(r, cart.bank, cart.bankShift, len(cart.rom)); err != nil {
		return nil, err
	}
	if cart.ram != nil && len(cart.ram) == 0 {
		return nil, r.Fail("missing RAM")
	}

	return cart, nil
}
