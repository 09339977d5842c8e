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

	"github.com/jetsetilly/gopher7800/hardware/memory/addressspace"
	"github.com/jetsetilly/gopher7800/savestate"
)

// from bankswitch_sizes.txt:
//
// 2K:
//
// -These carts are not bankswitched, however the data repeats twice in the
// 4K address space.
//
// 4K:
//
// -These images are not bankswitched.
//
// 8K:
//
// -F8: This is the 'standard' method to implement 8K carts.  There are two
// addresses which select between two unique 4K sections.  They are 1FF8
// and 1FF9.  Any access to either one of these locations switches banks.
//
// 16K:
//
// -F6: The 'standard' method for implementing 16K of data.  It is identical
// to the F8 method above, except there are 4 4K banks.  You select which
// 4K bank by accessing 1FF6, 1FF7, 1FF8, and 1FF9.
//
// 32K:
//
// -F4: The 'standard' method for implementing 32K.  Like the F6 method,
// however there are 8 4K banks instead of 4.  You use 1FF4 to 1FFB to select
// the desired bank.
//
// Some carts have extra RAM. Atari's 'Super Chip' is a 128-byte RAM chip that
// maps itself in the first 256 bytes of cart memory. The first 128 bytes is
// the write port, while the second 128 bytes is the read port. There is no
// dedicated address line to the cart to differentiate between read and write
// operations.
//
// The CBS RAM Plus (FA) scheme is the same idea with three banks and 256 bytes
// of RAM.
type atari struct {
	cartType CartType
	rom      []uint8

	// the first hotspot address and the number of banks. carts with one bank
	// have no hotspots
	hotspot  uint16
	numBanks int

	// the bank selected on reset
	startBank int

	// the address of the start of the selected bank in ROM
	bankBase uint16

	// nil if the cart has no RAM. the write port is the first len(ram) bytes
	// of the cart address space and the read port immediately follows
	ram []uint8
}

const bankSizeAtari = 0x1000

func newAtari(t CartType, data []uint8) *atari {
	cart := &atari{
		cartType: t,
		numBanks: 1,
	}

	switch t {
	case A2K:
		cart.rom = fixedROM(data, 0x0800)
	case A4K:
		cart.rom = fixedROM(data, 0x1000)
	case A8K, A8KR:
		cart.rom = fixedROM(data, 0x2000)
		cart.hotspot = 0x0ff8
		cart.numBanks = 2
		cart.startBank = 1
	case A16K, A16KR:
		cart.rom = fixedROM(data, 0x4000)
		cart.hotspot = 0x0ff6
		cart.numBanks = 4
	case A32K, A32KR:
		cart.rom = fixedROM(data, 0x8000)
		cart.hotspot = 0x0ff4
		cart.numBanks = 8
		cart.startBank = 7
	case CBS12K:
		cart.rom = fixedROM(data, 0x3000)
		cart.hotspot = 0x0ff8
		cart.numBanks = 3
		cart.startBank = 2
		cart.ram = make([]uint8, 0x100)
	}

	switch t {
	case A8KR, A16KR, A32KR:
		cart.ram = make([]uint8, 0x80)
	}

	cart.bankBase = uint16(cart.startBank * bankSizeAtari)

	return cart
}

// newMulticart creates an A2K cart from one 2KB slot of a multicart image.
// slots outside the image wrap around.
func newMulticart(data []uint8, slot int) *atari {
	const slotSize = 0x0800

	n := len(data) / slotSize
	if n == 0 {
		return &atari{cartType: M32N12K, numBanks: 1, rom: fixedROM(data, slotSize)}
	}

	slot %= n
	return &atari{
		cartType: M32N12K,
		numBanks: 1,
		rom:      fixedROM(data[slot*slotSize:(slot+1)*slotSize], slotSize),
	}
}

func (cart *atari) String() string {
	if cart.numBanks == 1 {
		return cart.cartType.String()
	}
	return fmt.Sprintf("%s [bank %d]", cart.cartType, cart.bankBase/bankSizeAtari)
}

// Type implements the Cart interface.
func (cart *atari) Type() CartType {
	return cart.cartType
}

// Attach implements the Cart interface.
func (cart *atari) Attach(_ Host) {}

// SelfMap implements the Cart interface.
func (cart *atari) SelfMap(_ *addressspace.AddressSpace) bool {
	return false
}

// RequestSnooping implements the Cart interface.
func (cart *atari) RequestSnooping() bool {
	return false
}

// StartFrame implements the Cart interface.
func (cart *atari) StartFrame() {}

// EndFrame implements the Cart interface.
func (cart *atari) EndFrame() {}

// Reset implements the device.Device interface. RAM is not cleared.
func (cart *atari) Reset() {
	cart.bankBase = uint16(cart.startBank * bankSizeAtari)
}

// Read implements the device.Device interface.
func (cart *atari) Read(addr uint16) uint8 {
	addr &= 0x0fff

	if cart.ram != nil {
		n := uint16(len(cart.ram))
		if addr >= n && addr < n<<1 {
			return cart.ram[addr-n]
		}
	}

	if cart.numBanks == 1 {
		return cart.rom[int(addr)&(len(cart.rom)-1)]
	}

	cart.bankswitch(addr)
	return cart.rom[cart.bankBase+addr]
}

// Write implements the device.Device interface.
func (cart *atari) Write(addr uint16, data uint8) {
	addr &= 0x0fff

	if cart.ram != nil && addr < uint16(len(cart.ram)) {
		cart.ram[addr] = data
		return
	}

	cart.bankswitch(addr)
}

// bankswitch on hotspot access.
func (cart *atari) bankswitch(addr uint16) {
	if cart.numBanks > 1 && addr >= cart.hotspot && addr < cart.hotspot+uint16(cart.numBanks) {
		cart.bankBase = (addr - cart.hotspot) * bankSizeAtari
	}
}

// A16KR was the only format with RAM that did not keep the RAM in the
// savestate. version 2 adds it.
func (cart *atari) version() int32 {
	if cart.cartType == A16KR {
		return 2
	}
	return 1
}

// Serialize implements the Cart interface.
func (cart *atari) Serialize(w *savestate.Writer) {
	writeHeader(w, cart.cartType, cart.version())
	w.WriteBytes(cart.rom)
	if cart.ram != nil {
		w.WriteBytes(cart.ram)
	}
	w.WriteUint16(cart.bankBase)
}

func deserializeAtari(r *savestate.Reader, t CartType) (Cart, error) {
	// a new cart provides the expected sizes of everything
	cart := newAtari(t, nil)
	if t == M32N12K {
		cart = newMulticart(nil, 0)
	}

	valid := []int32{cart.version()}
	if t == A16KR {
		valid = append(valid, 1)
	}
	version, err := r.CheckVersion(valid...)
	if err != nil {
		return nil, err
	}

	// version 1 A16KR streams have no RAM. the RAM is left cleared
	cart.rom = r.ReadExpectedBytes(len(cart.rom))
	if cart.ram != nil && (t != A16KR || version == 2) {
		cart.ram = r.ReadExpectedBytes(len(cart.ram))
	}
	cart.bankBase = r.ReadUint16()

	if err := r.Err(); err != nil {
		return nil, err
	}

	if cart.bankBase%bankSizeAtari != 0 || int(cart.bankBase)/bankSizeAtari >= cart.numBanks {
		return nil, r.Fail("bank base out of range")
	}

	return cart, nil
}
