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

package pokey

// the 4bit and 5bit patterns are identical to those used by the TIA.
var poly4bit = [15]uint8{1, 1, 0, 1, 1, 1, 0, 0, 0, 0, 1, 0, 1, 0, 0}
var poly5bit = [31]uint8{0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 1, 1, 1, 0, 0,
	0, 1, 1, 0, 1, 1, 1, 0, 1, 0, 1, 0, 0, 0, 0, 1}

var poly9bit [511]uint8
var poly17bit [131071]uint8

// maximal length linear feedback shift registers.
func generatePoly(bits []uint8, width uint, tap uint) {
	reg := uint32(1<<width) - 1
	for i := range bits {
		bits[i] = uint8(reg & 1)
		fb := (reg ^ (reg >> tap)) & 1
		reg = (reg >> 1) | (fb << (width - 1))
	}
}

func init() {
	generatePoly(poly9bit[:], 9, 4)
	generatePoly(poly17bit[:], 17, 3)
}
