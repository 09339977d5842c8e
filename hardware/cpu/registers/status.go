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

import (
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of the CPU.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}
	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r - 'a' + 'A')
		} else {
			s.WriteRune(r)
		}
	}
	flag(sr.Sign, 's')
	flag(sr.Overflow, 'v')
	s.WriteRune('-')
	flag(sr.Break, 'b')
	flag(sr.DecimalMode, 'd')
	flag(sr.InterruptDisable, 'i')
	flag(sr.Zero, 'z')
	flag(sr.Carry, 'c')
	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.FromUint8(0)
}

// ToUint8 converts the status register into a value suitable for pushing
// onto the stack. The unused bit is always set.
func (sr StatusRegister) ToUint8() uint8 {
	var v uint8 = 0x20

	if sr.Sign {
		v |= 0x80
	}
	if sr.Overflow {
		v |= 0x40
	}
	if sr.Break {
		v |= 0x10
	}
	if sr.DecimalMode {
		v |= 0x08
	}
	if sr.InterruptDisable {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}

	return v
}

// FromUint8 sets the flags from an 8 bit value, taken from the stack for
// example.
func (sr *StatusRegister) FromUint8(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Overflow = v&0x40 == 0x40
	sr.Break = v&0x10 == 0x10
	sr.DecimalMode = v&0x08 == 0x08
	sr.InterruptDisable = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}
