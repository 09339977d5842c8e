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
// -E7: Only M-Network used this scheme.  This has to be the most complex
// method used in any cart! :-) It allows for the capability of 2K of RAM;
// although it doesn't have to be used (in fact, only one cart used it-
// Burgertime).  This is similar to the 3F type with a few changes.  There are
// now 8 2K banks, instead of 4.
//
// The last 2K in the cart always points to the last 2K of the ROM image, while
// the first 2K is selectable.  You access 1FE0 to 1FE6 to select which 2K
// bank. Note that you cannot select the last 2K of the ROM image into the
// lower 2K of the cart!
//
// Accessing 1FE7 selects 1K of RAM at 1000-17FF instead of ROM!  1000-13FF is
// the write port, while 1400-17FF is the read port.
//
// The second 1K of RAM is broken up into 4 256-byte parts. You select which
// part to use by issuing a fake read to 1FE8-1FEB.  The RAM is then available
// for use by all banks at 1800-19FF. 1800-18FF is write while 1900-19FF is
// read.
type mnetwork struct {
	rom []uint8

	// bank 7 selects ram1k into the lower segment
	bank int

	ram1k   []uint8
	ram256  []uint8
	ram256i int
}

const (
	bankSizeMnetwork = 0x0800
	numBanksMnetwork = 8
	ramBankMnetwork  = 7
)

func newMnetwork(data []uint8) *mnetwork {
	return &mnetwork{
		rom:    fixedROM(data, bankSizeMnetwork*numBanksMnetwork),
		ram1k:  make([]uint8, 0x400),
		ram256: make([]uint8, 0x400),
	}
}

func (cart *mnetwork) String() string {
	if cart.bank == ramBankMnetwork {
		return fmt.Sprintf("%s [RAM, ram256 %d]", MN16K, cart.ram256i)
	}
	return fmt.Sprintf("%s [bank %d, ram256 %d]", MN16K, cart.bank, cart.ram256i)
}

// Type implements the Cart interface.
func (cart *mnetwork) Type() CartType {
	return MN16K
}

// Attach implements the Cart interface.
func (cart *mnetwork) Attach(_ Host) {}

// SelfMap implements the Cart interface.
func (cart *mnetwork) SelfMap(_ *addressspace.AddressSpace) bool {
	return false
}

// RequestSnooping implements the Cart interface.
func (cart *mnetwork) RequestSnooping() bool {
	return false
}

// StartFrame implements the Cart interface.
func (cart *mnetwork) StartFrame() {}

// EndFrame implements the Cart interface.
func (cart *mnetwork) EndFrame() {}

// Reset implements the device.Device interface.
func (cart *mnetwork) Reset() {
	cart.bank = 0
	cart.ram256i = 0
}

// Read implements the device.Device interface.
func (cart *mnetwork) Read(addr uint16) uint8 {
	addr &= 0x0fff

	if addr < 0x0800 {
		if cart.bank == ramBankMnetwork {
			if addr >= 0x0400 {
				return cart.ram1k[addr&0x03ff]
			}
			return 0
		}
		return cart.rom[cart.bank*bankSizeMnetwork+int(addr)]
	}

	if addr >= 0x0900 && addr <= 0x09ff {
		return cart.ram256[cart.ram256i<<8|int(addr&0xff)]
	}

	data := cart.rom[(numBanksMnetwork-1)*bankSizeMnetwork+int(addr&0x07ff)]
	cart.bankswitch(addr)
	return data
}

// Write implements the device.Device interface.
func (cart *mnetwork) Write(addr uint16, data uint8) {
	addr &= 0x0fff

	if addr < 0x0400 {
		if cart.bank == ramBankMnetwork {
			cart.ram1k[addr] = data
		}
		return
	}

	if addr >= 0x0800 && addr <= 0x08ff {
		cart.ram256[cart.ram256i<<8|int(addr&0xff)] = data
		return
	}

	cart.bankswitch(addr)
}

// bankswitch on hotspot access.
func (cart *mnetwork) bankswitch(addr uint16) {
	switch {
	case addr >= 0x0fe0 && addr <= 0x0fe7:
		cart.bank = int(addr & 0x07)
	case addr >= 0x0fe8 && addr <= 0x0feb:
		cart.ram256i = int(addr & 0x03)
	}
}

// Serialize implements the Cart interface.
func (cart *mnetwork) Serialize(w *savestate.Writer) {
	writeHeader(w, MN16K, 1)
	w.WriteBytes(cart.rom)
	w.WriteInt32(int32(cart.bank))
	w.WriteInt32(int32(cart.ram256i))
	w.WriteBytes(cart.ram1k)
	w.WriteBytes(cart.ram256)
}

func deserializeMnetwork(r *savestate.Reader, _ CartType) (Cart, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}

	cart := &mnetwork{}
	cart.rom = r.ReadExpectedBytes(bankSizeMnetwork * numBanksMnetwork)
	cart.bank = int(r.ReadInt32())
	cart.ram256i = int(r.ReadInt32())
	cart.ram1k = r.ReadExpectedBytes(0x400)
	cart.ram256 = r.ReadExpectedBytes(0x400)

	if err := r.Err(); err != nil {
		return nil, err
	}
	if cart.bank < 0 || cart.bank >= numBanksMnetwork {
		return nil, r.Fail("bank out of range")
	}
	if cart.ram256i < 0 || cart.ram256i > 3 {
		return nil, r.Fail("ram256 index out of range")
	}

	return cart, nil
}
