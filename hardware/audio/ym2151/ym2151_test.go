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

package ym2151_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gopher7800/hardware/audio/ym2151"
	"github.com/jetsetilly/gopher7800/savestate"
	"github.com/jetsetilly/gopher7800/test"
)

type host struct {
	clock uint64
}

func (h *host) CPUClock() uint64 {
	return h.clock
}

func (h *host) SoundBuffer() []uint8 {
	return nil
}

func write(ym *ym2151.YM2151, reg uint8, data uint8) {
	ym.Write(0x0460, reg)
	ym.Write(0x0461, data)
}

func TestTimerA(t *testing.T) {
	h := &host{clock: 100}
	ym := ym2151.NewYM2151(h)

	// shortest possible timer A period is 64 cycles
	write(ym, 0x10, 0xff)
	write(ym, 0x11, 0x03)
	write(ym, 0x14, 0x05)
	test.ExpectEquality(t, ym.Read(0x0460)&0x01, uint8(0))

	h.clock += 65
	test.ExpectEquality(t, ym.Read(0x0460)&0x01, uint8(1))

	// reset the flag and keep the timer running
	write(ym, 0x14, 0x15)
	test.ExpectEquality(t, ym.Status()&0x01, uint8(0))
}

func TestTimerB(t *testing.T) {
	h := &host{clock: 100}
	ym := ym2151.NewYM2151(h)

	write(ym, 0x12, 0xff)
	write(ym, 0x14, 0x0a)
	h.clock += 1000
	test.ExpectEquality(t, ym.Read(0x0460)&0x02, uint8(0))
	h.clock += 100
	test.ExpectEquality(t, ym.Read(0x0460)&0x02, uint8(2))
}

func TestTimerWithoutIRQEnable(t *testing.T) {
	h := &host{clock: 100}
	ym := ym2151.NewYM2151(h)
	write(ym, 0x10, 0xff)
	write(ym, 0x11, 0x03)
	write(ym, 0x14, 0x01)
	h.clock += 1000
	test.ExpectEquality(t, ym.Read(0x0460), uint8(0))
}

func TestSerialize(t *testing.T) {
	h := &host{clock: 100}
	ym := ym2151.NewYM2151(h)
	write(ym, 0x12, 0x80)
	write(ym, 0x14, 0x0a)
	write(ym, 0x08, 0x78)

	var b bytes.Buffer
	w := savestate.NewWriter(&b)
	ym.Serialize(w)
	test.DemandSuccess(t, w.Err())

	n, err := ym2151.Deserialize(savestate.NewReader(&b))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n.String(), ym.String())

	n.Plumb(h)
	h.clock += 1024*128 + 1
	test.ExpectEquality(t, n.Read(0x0460), ym.Read(0x0460))
	test.ExpectEquality(t, n.Status(), uint8(2))
}
