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

package pokey_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gopher7800/hardware/audio/pokey"
	"github.com/jetsetilly/gopher7800/savestate"
	"github.com/jetsetilly/gopher7800/test"
)

type host struct {
	clock  uint64
	buffer []uint8
}

func (h *host) CPUClock() uint64 {
	return h.clock
}

func (h *host) SoundBuffer() []uint8 {
	return h.buffer
}

func (h *host) frame(p *pokey.Pokey, f func()) {
	clear(h.buffer)
	p.StartFrame()
	if f != nil {
		f()
	}
	h.clock += 262 * 114
	p.EndFrame()
}

func TestVolumeOnly(t *testing.T) {
	h := &host{clock: 1000, buffer: make([]uint8, 524)}
	p := pokey.NewPokey(h)
	p.Write(0x4001, 0x1f)

	h.frame(p, nil)
	for i := range h.buffer {
		if !test.ExpectEquality(t, h.buffer[i], uint8(30), i) {
			break
		}
	}
}

func TestSilence(t *testing.T) {
	h := &host{clock: 1000, buffer: make([]uint8, 524)}
	p := pokey.NewPokey(h)
	h.frame(p, nil)
	for i := range h.buffer {
		if !test.ExpectEquality(t, h.buffer[i], uint8(0), i) {
			break
		}
	}
}

func TestPureTone(t *testing.T) {
	h := &host{clock: 1000, buffer: make([]uint8, 524)}
	p := pokey.NewPokey(h)

	// pure tone with the largest divider on the 15Khz clock. the period is
	// 256*114 cycles, so the output changes once during the frame
	p.Write(0x4008, 0x01)
	p.Write(0x4000, 0xff)
	p.Write(0x4001, 0xaf)
	p.Write(0x4009, 0x00)

	h.frame(p, nil)

	var changes int
	for i := 1; i < len(h.buffer); i++ {
		if h.buffer[i] != h.buffer[i-1] {
			changes++
		}
	}
	test.ExpectEquality(t, changes, 1)
}

func TestRandom(t *testing.T) {
	h := &host{clock: 1000, buffer: make([]uint8, 524)}
	p := pokey.NewPokey(h)

	var differ bool
	first := p.Read(0x400a)
	for i := 0; i < 16; i++ {
		h.clock++
		if p.Read(0x400a) != first {
			differ = true
		}
	}
	test.ExpectEquality(t, differ, true)

	// polynomial counters are held when SKCTL is zero
	p.Write(0x400f, 0x00)
	test.ExpectEquality(t, p.Read(0x400a), uint8(0xff))
}

func TestSerialize(t *testing.T) {
	h := &host{clock: 1000, buffer: make([]uint8, 524)}
	p := pokey.NewPokey(h)
	p.Write(0x4000, 0x10)
	p.Write(0x4001, 0xa8)
	p.Write(0x4002, 0x22)
	p.Write(0x4003, 0x06)
	h.frame(p, nil)

	var b bytes.Buffer
	w := savestate.NewWriter(&b)
	p.Serialize(w)
	test.DemandSuccess(t, w.Err())

	n, err := pokey.Deserialize(savestate.NewReader(&b))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n.String(), p.String())

	// both chips produce identical output for the next frame
	h2 := &host{clock: h.clock, buffer: make([]uint8, 524)}
	n.Plumb(h2)
	h.frame(p, nil)
	h2.frame(n, nil)
	test.ExpectEquality(t, string(h2.buffer), string(h.buffer))
}
