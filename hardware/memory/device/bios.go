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

package device

import (
	"fmt"

	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/savestate"
)

// BiosError is returned when a BIOS image is of the wrong size.
const BiosError = "bios: %v"

// Bios7800 is the BIOS ROM of the 7800. It is swapped into the top of the
// address space on reset and swapped out again when the BIOS writes to the
// INPTCTRL register.
type Bios7800 struct {
	rom  []uint8
	mask uint16
}

// NewBios7800 is the preferred method of initialisation for the Bios7800 type.
// The ROM must be either 4096 or 16384 bytes long.
func NewBios7800(rom []uint8) (*Bios7800, error) {
	if len(rom) != 4096 && len(rom) != 16384 {
		return nil, curated.Errorf(BiosError, fmt.Sprintf("ROM size (%d) not 4096 or 16384", len(rom)))
	}
	return &Bios7800{
		rom:  rom,
		mask: uint16(len(rom) - 1),
	}, nil
}

func (b *Bios7800) String() string {
	return fmt.Sprintf("bios (%dK)", len(b.rom)/1024)
}

// Size returns the number of bytes in the BIOS ROM.
func (b *Bios7800) Size() int {
	return len(b.rom)
}

// Reset implements the Device interface.
func (b *Bios7800) Reset() {}

// Read implements the Device interface.
func (b *Bios7800) Read(addr uint16) uint8 {
	return b.rom[addr&b.mask]
}

// Write implements the Device interface. The BIOS is ROM and ignores writes.
func (b *Bios7800) Write(_ uint16, _ uint8) {}

// Serialize implements the savestate.Serializer interface.
func (b *Bios7800) Serialize(w *savestate.Writer) {
	w.WriteVersion(1)
	w.WriteBytes(b.rom)
}

// DeserializeBios7800 reads a Bios7800 from the savestate.
func DeserializeBios7800(r *savestate.Reader) (*Bios7800, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}
	rom := r.ReadExpectedBytes(4096, 16384)
	if err := r.Err(); err != nil {
		return nil, err
	}
	return NewBios7800(rom)
}
