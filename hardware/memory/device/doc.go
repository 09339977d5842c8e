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

// Package device defines the Device interface implemented by every component
// that can be placed in the address space, along with the simple memory
// devices of the 7800: the two 6116 RAM chips, the BIOS ROM and the
// non-volatile RAM used by the high score cartridge.
//
// Addresses given to a device are not normalised. Each device masks the
// address to the size of its own storage.
package device
