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

package registers

// AddDecimal adds value to register as though both are packed BCD values.
// Returns new carry, zero, overflow and sign states.
//
// The zero flag is taken from the binary sum. Sign and overflow are taken
// after the units have been corrected but before the tens are corrected.
func (r *Register) AddDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	a := int(r.value)
	v := int(val)
	c := 0
	if carry {
		c = 1
	}

	zero := uint8(a+v+c) == 0

	units := (a & 0x0f) + (v & 0x0f) + c
	if units > 0x09 {
		units += 0x06
	}
	tens := (a >> 4) + (v >> 4)
	if units > 0x0f {
		tens++
	}

	sign := tens&0x08 == 0x08
	overflow := ((tens<<4)^a)&0x80 == 0x80 && (a^v)&0x80 == 0

	if tens > 0x09 {
		tens += 0x06
	}

	r.value = uint8(tens<<4) | uint8(units&0x0f)

	return tens > 0x0f, zero, overflow, sign
}

// SubtractDecimal subtracts value from register as though both are packed BCD
// values. Returns new carry, zero, overflow and sign states.
//
// Flags are those of the equivalent binary subtraction.
func (r *Register) SubtractDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	bin := NewRegister(r.value)
	rcarry, overflow := bin.Subtract(val, carry)

	a := int(r.value)
	v := int(val)
	borrow := 0
	if !carry {
		borrow = 1
	}

	units := (a & 0x0f) - (v & 0x0f) - borrow
	tens := (a >> 4) - (v >> 4)
	if units < 0 {
		units -= 0x06
		tens--
	}
	if tens < 0 {
		tens -= 0x06
	}

	r.value = uint8(tens<<4) | uint8(units&0x0f)

	return rcarry, bin.IsZero(), overflow, bin.IsNegative()
}
