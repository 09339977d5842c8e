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

// Package tiasound implements the two sound channels of the TIA. In the 7800
// the TIA is used only for sound and for the fire button inputs. The TIA
// audio registers are written through the MARIA register file.
//
// The TIA sound is clocked by the 30KHz reference (the CPU clock divided by
// 38) and is sampled twice per scanline, the same as every other sound
// source in the machine. Samples are added into the sound buffer of the host.
package tiasound
