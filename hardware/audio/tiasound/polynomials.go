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

package tiasound

// The 4bit and 5bit patterns are the ones used in the TIA chip. A single bit
// per byte keeps the lookups simple.
var poly4bit = [15]uint8{1, 1, 0, 1, 1, 1, 0, 0, 0, 0, 1, 0, 1, 0, 0}
var poly5bit = [31]uint8{0, 0, 1, 0, 1, 1, 0, 0, 1, 1, 1, 1, 1, 0, 0,
	0, 1, 1, 0, 1, 1, 1, 0, 1, 0, 1, 0, 0, 0, 0, 1}

// the divide by 31 counter does not have a 50% duty cycle. it has a 13:18
// ratio and is treated like another polynomial.
var div31 = [31]uint8{0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}

// 9 bit polynomial generated from a linear feedback shift register. the
// table must be the same on every run so that save-states are reproducible.
var poly9bit [511]uint8

func init() {
	reg := uint16(0x1ff)
	for i := range poly9bit {
		poly9bit[i] = uint8(reg & 0x01)
		bit := (reg ^ (reg >> 4)) & 0x01
		reg = (reg >> 1) | (bit << 8)
	}
}

// volume mixing of the two channels, from "TIA Sounding Off In The Digital
// Domain" by Chris Brenner. index is (vol1 << 4) | vol0.
var volumeMix [256]uint8

func init() {
	const r1 = 1000.0
	ra := 1.0 / 3750.0
	rb := 1.0 / 7500.0
	rc := 1.0 / 15000.0
	rd := 1.0 / 30000.0

	for i := 1; i < 256; i++ {
		var r2 float64
		for _, n := range []int{i & 0x0f, i >> 4} {
			if n&0x01 == 0x01 {
				r2 += rd
			}
			if n&0x02 == 0x02 {
				r2 += rc
			}
			if n&0x04 == 0x04 {
				r2 += rb
			}
			if n&0x08 == 0x08 {
				r2 += ra
			}
		}
		r2 = 1.0 / r2
		volumeMix[i] = uint8((32768.0*(1.0-r2/(r1+r2)) + 0.5) / 128.0)
	}
}
