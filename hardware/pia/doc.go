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

// Package pia implements the 6532 RIOT as found in the 7800. The RIOT has
// 128 bytes of RAM, two I/O ports and an interval timer.
//
// Port A carries the joystick directions of both controllers. Port B carries
// the console switches. Both ports are built from the captured input state of
// the input package every time they are read.
//
// The timer is not stepped. The timer value is calculated from the CPU clock
// when it is read.
package pia
