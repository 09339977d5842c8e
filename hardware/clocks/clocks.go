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

// Package clocks defines the constant values that define the speed of the
// main clocks, in MHz, of the 7800 console.
//
// The CPU in the 7800 runs at 1.79MHz when accessing MARIA and RAM. The
// emulation counts 114 CPU cycles for every scanline, as the CPU runs at the
// slower 1.19MHz of the 2600 while accessing the TIA and the RIOT and the
// machine is timed as if it did so for the whole scanline.
//
// The 2600 values are used by 2600 cartridges that keep their own time.
package clocks

const (
	NTSC = 1.7897725
	PAL  = 1.7734475
)

const (
	NTSC2600 = 1.19319166666667
	PAL2600  = 1.182298
)

// Hz converts a clock value from MHz to Hz.
func Hz(mhz float64) float64 {
	return mhz * 1000000
}
