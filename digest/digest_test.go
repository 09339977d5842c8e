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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/gopher7800/digest"
	"github.com/jetsetilly/gopher7800/hardware"
	"github.com/jetsetilly/gopher7800/hardware/input"
	"github.com/jetsetilly/gopher7800/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher7800/test"
)

func TestAudio(t *testing.T) {
	var d digest.Digest = digest.NewAudio()
	empty := d.Hash()

	a := digest.NewAudio()
	a.AddFrame([]uint8{1, 2, 3})
	h1 := a.Hash()
	test.ExpectInequality(t, h1, empty)

	// the same frame added twice gives a different hash because the hash is
	// chained
	a.AddFrame([]uint8{1, 2, 3})
	test.ExpectInequality(t, a.Hash(), h1)

	b := digest.NewAudio()
	b.AddFrame([]uint8{1, 2, 3})
	test.ExpectEquality(t, b.Hash(), h1)

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), empty)
	test.ExpectEquality(t, len(a.Hash()), 40)
}

func TestState(t *testing.T) {
	rom := make([]uint8, 0x4000)
	copy(rom, []uint8{0xe6, 0x80, 0x4c, 0x00, 0xc0})
	rom[0x3ffc] = 0x00
	rom[0x3ffd] = 0xc0

	m := make([]*hardware.Machine7800, 2)
	for i := range m {
		var f cartridge.Factory
		cart, err := f.Create(rom, cartridge.A7816)
		test.DemandSuccess(t, err)
		m[i], err = hardware.Create(nil, hardware.A7800NTSC, cart, nil, input.ProLineJoystick, input.ProLineJoystick)
		test.DemandSuccess(t, err)
	}

	test.ExpectEquality(t, digest.State(m[0]), digest.State(m[1]))

	m[0].ComputeNextFrame()
	test.ExpectInequality(t, digest.State(m[0]), digest.State(m[1]))

	m[1].ComputeNextFrame()
	test.ExpectEquality(t, digest.State(m[0]), digest.State(m[1]))

	// input is not part of the state
	m[1].Input.RaiseInput(0, input.Fire, true)
	test.ExpectEquality(t, digest.State(m[0]), digest.State(m[1]))
}
