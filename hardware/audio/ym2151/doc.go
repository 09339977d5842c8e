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

// Package ym2151 implements the register interface of the Yamaha YM2151 FM
// sound chip, as found in the 7800 expansion module.
//
// The register file, key on/off state, noise and LFO settings and the two
// timers are emulated. The timers run from the CPU clock and set the status
// register when they expire, which is what software polls. FM synthesis is
// not implemented and the chip contributes silence to the sound buffer.
package ym2151
