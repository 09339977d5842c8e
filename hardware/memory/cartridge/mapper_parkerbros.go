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
// -E0: Parker Brothers was the main user of this method.  This cart is
// segmented into 4 1K segments.  Each segment can point to one 1K slice of the
// ROM image.  You select the desired 1K slice by accessing 1FE0 to 1FE7 for
// the first 1K (1FE0 selects slice 0, 1FE1 selects slice 1, etc).  1FE8 to
// 1FEF selects the slice for the second 1K, and 1FF0 to 1FF7 selects the slice
// for the third 1K.  The last 1K always points to the last 1K of the ROM image
// so that the cart always starts up in the exact same place.
//
// cartridges:
//   - Montezuma's Revenge
//   - Lord of the Rings
//   - etc.
type parkerBros struct {
	rom     []uint8
	segment [4]int
}

const (
	bankSizeParkerBros = 0x0400
	numBanksParkerBros = 8
)

func newParkerBros(data []uint8) *parkerBros {
	cart := &parkerBros{
		rom: fixedROM(data, bankSizeParkerBros*numBanksParkerBros),
	}
	cart.Reset()
	return cart
}

func (cart *parkerBros) String() string {
	return fmt.Sprintf("%s [banks %d, %d, %d, %d]", PB8K, cart.segment[0], cart.segment[1], cart.segment[2], cart.segment[3])
}

// Type implements the Cart interface.
func (cart *parkerBros) Type() CartType {
	return PB8K
}

// Attach implements the Cart interface.
func (cart *parkerBros) Attach(_ Host) {}

// SelfMap implements the Cart interface.
func (cart *parkerBros) SelfMap(_ *addressspace.AddressSpace) bool {
	return false
}

// RequestSnooping implements the Cart interface.
func (cart *parkerBros) RequestSnooping() bool {
	return false
}

// StartFrame implements the Cart interface.
func (cart *parkerBros) StartFrame() {}

// EndFrame implements the Cart interface.
func (cart *parkerBros) EndFrame() {}

// Reset implements the device.Device interface.
func (cart *parkerBros) Reset() {
	cart.segment[0] = numBanksParkerBros - 4
	cart.segment[1] = numBanksParkerBros - 3
	cart.segment[2] = numBanksParkerBros - 2
	cart.segment[3] = numBanksParkerBros - 1
}

// Read implements the device.Device interface.
func (cart *parkerBros) Read(addr uint16) uint8 {
	addr &= 0x0fff
	cart.bankswitch(addr)
	return cart.rom[cart.segment[addr>>10]*bankSizeParkerBros+int(addr&0x03ff)]
}

// Write implements the device.Device interface.
func (cart *parkerBros) Write(addr uint16, _ uint8) {
	cart.bankswitch(addr & 0x0fff)
}

// bankswitch on hotspot access.
func (cart *parkerBros) bankswitch(addr uint16) {
	if addr >= 0x0fe0 && addr <= 0x0ff7 {
		cart.segment[(addr-0x0fe0)>>3] = int(addr & 0x07)
	}
}

// Serialize implements the Cart interface.
func (cart *parkerBros) Serialize(w *savestate.Writer) {
	writeHeader(w, PB8K, 1)
	w.WriteBytes(cart.rom)
	w.WriteIntegers(toInt32s(cart.segment[:]))
}

func deserializeParkerBros(r *savestate.Reader, _ CartType) (Cart, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}

	cart := &parkerBros{}
	cart.rom = r.ReadExpectedBytes(bankSizeParkerBros * numBanksParkerBros)
	segment := r.ReadIntegers(4)

	if err := r.Err(); err != nil {
		return nil, err
	}

	copy(cart.segment[:], toInts(segment))
	if err := checkBanks(r, cart.segment[:], 10, len(cart.rom)); err != nil {
		return nil, err
	}

	return cart, nil
}
