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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher7800/hardware/cpu/registers"
	"github.com/jetsetilly/gopher7800/test"
)

func TestRegisterArithmetic(t *testing.T) {
	r := registers.NewRegister(0x7f)

	carry, overflow := r.Add(1, false)
	test.ExpectEquality(t, r.Value(), uint8(0x80))
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, overflow, true)
	test.ExpectEquality(t, r.IsNegative(), true)

	carry, overflow = r.Add(0x80, false)
	test.ExpectEquality(t, r.Value(), uint8(0x00))
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, overflow, true)
	test.ExpectEquality(t, r.IsZero(), true)

	r.Load(0xff)
	carry, _ = r.Add(0, true)
	test.ExpectEquality(t, r.Value(), uint8(0x00))
	test.ExpectEquality(t, carry, true)

	// subtraction with carry set means no borrow
	r.Load(5)
	carry, _ = r.Subtract(3, true)
	test.ExpectEquality(t, r.Value(), uint8(2))
	test.ExpectEquality(t, carry, true)

	carry, _ = r.Subtract(3, true)
	test.ExpectEquality(t, r.Value(), uint8(0xff))
	test.ExpectEquality(t, carry, false)
}

func TestRegisterShifts(t *testing.T) {
	r := registers.NewRegister(0x81)

	test.ExpectEquality(t, r.ASL(), true)
	test.ExpectEquality(t, r.Value(), uint8(0x02))

	test.ExpectEquality(t, r.LSR(), false)
	test.ExpectEquality(t, r.Value(), uint8(0x01))

	test.ExpectEquality(t, r.ROR(true), true)
	test.ExpectEquality(t, r.Value(), uint8(0x80))

	test.ExpectEquality(t, r.ROL(false), true)
	test.ExpectEquality(t, r.Value(), uint8(0x00))
}

func TestDecimalMode(t *testing.T) {
	r := registers.NewRegister(0x09)

	carry, zero, _, _ := r.AddDecimal(0x01, false)
	test.ExpectEquality(t, r.Value(), uint8(0x10))
	test.ExpectEquality(t, carry, false)
	test.ExpectEquality(t, zero, false)

	r.Load(0x99)
	carry, _, _, _ = r.AddDecimal(0x01, false)
	test.ExpectEquality(t, r.Value(), uint8(0x00))
	test.ExpectEquality(t, carry, true)

	r.Load(0x58)
	carry, _, _, _ = r.AddDecimal(0x46, true)
	test.ExpectEquality(t, r.Value(), uint8(0x05))
	test.ExpectEquality(t, carry, true)

	r.Load(0x10)
	carry, _, _, _ = r.SubtractDecimal(0x01, true)
	test.ExpectEquality(t, r.Value(), uint8(0x09))
	test.ExpectEquality(t, carry, true)

	r.Load(0x00)
	carry, _, _, _ = r.SubtractDecimal(0x01, true)
	test.ExpectEquality(t, r.Value(), uint8(0x99))
	test.ExpectEquality(t, carry, false)

	r.Load(0x46)
	carry, zero, _, _ = r.SubtractDecimal(0x45, false)
	test.ExpectEquality(t, r.Value(), uint8(0x00))
	test.ExpectEquality(t, carry, true)
	test.ExpectEquality(t, zero, true)
}

func TestStatusRegister(t *testing.T) {
	var sr registers.StatusRegister
	test.ExpectEquality(t, sr.ToUint8(), uint8(0x20))
	test.ExpectEquality(t, sr.String(), "sv-bdizc")

	sr.FromUint8(0xff)
	test.ExpectEquality(t, sr.String(), "SV-BDIZC")
	test.ExpectEquality(t, sr.ToUint8(), uint8(0xff))

	sr.Reset()
	sr.Carry = true
	sr.Sign = true
	test.ExpectEquality(t, sr.ToUint8(), uint8(0xa1))
}
