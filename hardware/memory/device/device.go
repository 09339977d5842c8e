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

// Device is the capability required of anything placed in the address space.
type Device interface {
	Reset()
	Read(addr uint16) uint8
	Write(addr uint16, data uint8)
}

// Null is the device found in every unmapped page. Reads return zero and
// writes are ignored.
type Null struct{}

// Reset implements the Device interface.
func (Null) Reset() {}

// Read implements the Device interface.
func (Null) Read(_ uint16) uint8 {
	return 0
}

// Write implements the Device interface.
func (Null) Write(_ uint16, _ uint8) {}

func (Null) String() string {
	return "null device"
}
