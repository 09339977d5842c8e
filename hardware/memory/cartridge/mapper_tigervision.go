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
// -3F: Tigervision was the only user of this intresting method.  This works
// in a similar fashion to the above method; however, there are only 4 2K
// segments instead of 4 1K ones, and the ROM image is broken up into 4 2K
// slices.  As before, the last 2K always points to the last 2K of the image.
// You select the desired bank by performing an STA $3F instruction.  The
// accumulator holds the desired bank number (0-3; only the lower two bits
// are used).  Any STA in the $00-$3F range will change banks.
//
// cartridges:
//   - Espial
//   - Miner 2049er
//   - Polaris
//   - Miner 2049er Volume 2
//
// The cart watches the whole address space for the bank selecting write so it
// asks to be installed as the snooper.
type tigervision struct {
	rom  []uint8
	bank int
}

const (
	bankSizeTigervision = 0x0800
	numBanksTigervision = 4
)

func newTigervision(data []uint8) *tigervision {
	return &tigervision{
		rom: fixedROM(data, bankSizeTigervision*numBanksTigervision),
	}
}

func (cart *tigervision) String() string {
	return fmt.Sprintf("%s [bank %d]", TV8K, cart.bank)
}

// Type implements the Cart interface.
func (cart *tigervision) Type() CartType {
	return TV8K
}

// Attach implements the Cart interface.
func (cart *tigervision) Attach(_ Host) {}

// SelfMap implements the Cart interface.
func (cart *tigervision) SelfMap(_ *addressspace.AddressSpace) bool {
	return false
}

// RequestSnooping implements the Cart interface.
func (cart *tigervision) RequestSnooping() bool {
	return true
}

// StartFrame implements the Cart interface.
func (cart *tigervision) StartFrame() {}

// EndFrame implements the Cart interface.
func (cart *tigervision) EndFrame() {}

// Reset implements the device.Device interface.
func (cart *tigervision) Reset() {
	cart.bank = 0
}

// Read implements the device.Device interface.
func (cart *tigervision) Read(addr uint16) uint8 {
	if addr&0x0800 == 0x0800 {
		return cart.rom[(numBanksTigervision-1)*bankSizeTigervision+int(addr&0x07ff)]
	}
	return cart.rom[cart.bank*bankSizeTigervision+int(addr&0x07ff)]
}

// Write implements the device.Device interface.
func (cart *tigervision) Write(addr uint16, data uint8) {
	if addr <= 0x003f {
		cart.bank = int(data) % numBanksTigervision
	}
}

// Serialize implements the Cart interface.
func (cart *tigervision) Serialize(w *savestate.Writer) {
	writeHeader(w, TV8K, 1)
	w.WriteBytes(cart.rom)
	w.WriteInt32(int32(cart.bank))
}

func deserializeTigervision(r *savestate.Reader, _ CartType) (Cart, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}

	cart := &tigervision{}
	cart.rom = r.ReadExpectedBytes(bankSizeTigervision * numBanksTigervision)
	cart.bank = int(r.ReadInt32())

	if err := r.Err(); err != nil {
		return nil, err
	}
	if cart.bank < 0 || cart.bank >= numBanksTigervision {
		return nil, r.Fail("bank out of range")
	}

	return cart, nil
}
