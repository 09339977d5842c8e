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
// -FE: Activision used this method on only three games:  Decathlon, Robot Tank,
// and the prototype Thwocker.  This is another 8K bankswitching method with
// two 4K banks.  The rub is that it's a tad complex.
//
// The bank switching is done through the stack. A JSR or RTS to an address in
// the other bank leaves the high byte of the destination on the data bus
// immediately after the access to $01FE. If bit 5 of that byte is set then
// bank 0 is selected, otherwise bank 1.
//
// The cart needs to see every access so it asks to be the snooper. The data of
// a read is not known at the time of the snoop so the bank is selected at the
// snoop of the access after that, from the data bus state of the address
// space.
type activision struct {
	rom  []uint8
	bank int

	mem *addressspace.AddressSpace

	// progress through the bank select sequence
	seq int

	// the cart is both the snooper and the device for addresses in the cart
	// region. true between the snoop and the device access
	deviceAccess bool
}

const (
	bankSizeActivision = 0x1000
	numBanksActivision = 2

	activisionIdle    = 0
	activisionArmed   = 1
	activisionPending = 2
)

func newActivision(data []uint8) *activision {
	return &activision{
		rom: fixedROM(data, bankSizeActivision*numBanksActivision),
	}
}

func (cart *activision) String() string {
	return fmt.Sprintf("%s [bank %d]", DC8K, cart.bank)
}

// Type implements the Cart interface.
func (cart *activision) Type() CartType {
	return DC8K
}

// Attach implements the Cart interface.
func (cart *activision) Attach(_ Host) {}

// SelfMap implements the Cart interface. The address space is kept so the
// data bus can be inspected but the cart is mapped normally.
func (cart *activision) SelfMap(mem *addressspace.AddressSpace) bool {
	cart.mem = mem
	return false
}

// RequestSnooping implements the Cart interface.
func (cart *activision) RequestSnooping() bool {
	return true
}

// StartFrame implements the Cart interface.
func (cart *activision) StartFrame() {}

// EndFrame implements the Cart interface.
func (cart *activision) EndFrame() {}

// Reset implements the device.Device interface.
func (cart *activision) Reset() {
	cart.bank = 0
	cart.seq = activisionIdle
	cart.deviceAccess = false
}

// Read implements the device.Device interface.
func (cart *activision) Read(addr uint16) uint8 {
	if cart.deviceAccess {
		cart.deviceAccess = false
	} else {
		cart.snoop(addr, false, 0)
	}
	return cart.rom[cart.bank*bankSizeActivision+int(addr&0x0fff)]
}

// Write implements the device.Device interface.
func (cart *activision) Write(addr uint16, data uint8) {
	if cart.deviceAccess {
		cart.deviceAccess = false
		return
	}
	cart.snoop(addr, true, data)
}

func (cart *activision) snoop(addr uint16, write bool, data uint8) {
	if cart.mem != nil && cart.mem.Device(addr) == cart {
		cart.deviceAccess = true
	}

	switch cart.seq {
	case activisionPending:
		if cart.mem != nil {
			cart.selectBank(cart.mem.DataBusState())
		}
		cart.seq = activisionIdle
	case activisionArmed:
		if write {
			cart.selectBank(data)
			cart.seq = activisionIdle
		} else {
			cart.seq = activisionPending
		}
	}

	if addr == 0x01fe {
		cart.seq = activisionArmed
	}
}

func (cart *activision) selectBank(data uint8) {
	if data&0x20 == 0x20 {
		cart.bank = 0
	} else {
		cart.bank = 1
	}
}

// Serialize implements the Cart interface.
func (cart *activision) Serialize(w *savestate.Writer) {
	writeHeader(w, DC8K, 1)
	w.WriteBytes(cart.rom)
	w.WriteInt32(int32(cart.bank))
	w.WriteInt32(int32(cart.seq))
}

func deserializeActivision(r *savestate.Reader, _ CartType) (Cart, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}

	cart := &activision{}
	cart.rom = r.ReadExpectedBytes(bankSizeActivision * numBanksActivision)
	cart.bank = int(r.ReadInt32())
	cart.seq = int(r.ReadInt32())

	if err := r.Err(); err != nil {
		return nil, err
	}
	if cart.bank < 0 || cart.bank >= numBanksActivision {
		return nil, r.Fail("bank out of range")
	}
	if cart.seq < activisionIdle || cart.seq > activisionPending {
		return nil, r.Fail("bank select sequence out of range")
	}

	return cart, nil
}
