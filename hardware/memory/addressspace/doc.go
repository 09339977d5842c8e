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

// Package addressspace implements the paged memory map of the machine.
//
// The address space is divided into pages of equal size. Every page refers to
// exactly one device.Device, the device.Null by default. Mapping is done with
// whole page granularity and the last call to Map() for a page wins.
//
// Every access is two-phase. The address is first given to the snooper
// device, purely for the side effects that the access has on that device. The
// value returned by the snooper is stored as the data bus state but is not
// returned to the caller. The address is then given to the device mapped to
// the page and that value is returned. Writes are presented to the snooper
// first and then to the mapped device.
//
// Snooping exists because some cartridges decode only part of the address bus
// and so react to accesses to addresses that are logically outside the
// cartridge window.
package addressspace
