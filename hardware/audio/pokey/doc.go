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

// Package pokey implements the sound generation of the POKEY chip, as found
// in some 7800 cartridges and in the expansion module.
//
// The four channels are clocked from the CPU clock. Each channel has a
// divide-by-N counter and, when the counter expires, the output of the
// channel is changed according to the distortion selected in the AUDC
// register. The distortions are produced by filtering the counter through the
// 4, 5, 9 and 17 bit polynomial counters. The polynomial counters run
// continuously at the CPU clock rate, so the bit used is found from the CPU
// clock at the moment of expiry.
//
// The chip renders samples into the sound buffer of the host as the CPU
// clock advances. Rendering happens whenever a register is written and at the
// end of every frame. Two samples are produced for every scanline.
//
// The keyboard, serial port, paddle and IRQ timer functions of the chip are
// not emulated. Reading those registers returns a fixed value.
package pokey
