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
	"encoding/hex"

	"github.com/jetsetilly/gopher7800/savestate"
)

const (
	ram6116Size = 0x0800
	ram6116Mask = ram6116Size - 1
)

// RAM6116 is the 2KB static RAM chip of the 7800. There are two of them in
// the machine.
type RAM6116 struct {
	RAM []uint8
}

// NewRAM6116 is the preferred method of initialisation for the RAM6116 type.
func NewRAM6116() *RAM6116 {
	return &RAM6116{
		RAM: make([]uint8, ram6116Size),
	}
}

// Snapshot creates a copy of RAM in its current state.
func (ram *RAM6116) Snapshot() *RAM6116 {
	n := *ram
	n.RAM = make([]uint8, len(ram.RAM))
	copy(n.RAM, ram.RAM)
	return &n
}

func (ram *RAM6116) String() string {
	return hex.Dump(ram.RAM)
}

// Reset implements the Device interface. The contents of RAM are not changed
// by a reset.
func (ram *RAM6116) Reset() {}

// Read implements the Device interface.
func (ram *RAM6116) Read(addr uint16) uint8 {
	return ram.RAM[addr&ram6116Mask]
}

// Write implements the Device interface.
func (ram *RAM6116) Write(addr uint16, data uint8) {
	ram.RAM[addr&ram6116Mask] = data
}

// Serialize implements the savestate.Serializer interface.
func (ram *RAM6116) Serialize(w *savestate.Writer) {
	w.WriteVersion(1)
	w.WriteBytes(ram.RAM)
}

// DeserializeRAM6116 reads a RAM6116 from the savestate.
func DeserializeRAM6116(r *savestate.Reader) (*RAM6116, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}
	data := r.ReadExpectedBytes(ram6116Size)
	if err := r.Err(); err != nil {
		return nil, err
	}
	return &RAM6116{RAM: data}, nil
}
