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

// Package audio defines what the sound chips of the 7800 need from the
// machine they are attached to.
//
// The machine provides a sound buffer for every frame with two samples per
// scanline. Sound chips render into the buffer as the CPU clock advances and
// complete the buffer at the end of the frame. Samples from more than one chip
// are summed with AddSample().
//
// The chips themselves are in the pokey and ym2151 sub-packages.
package audio
