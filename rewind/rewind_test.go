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

package rewind_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gopher7800/hardware"
	"github.com/jetsetilly/gopher7800/hardware/input"
	"github.com/jetsetilly/gopher7800/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher7800/rewind"
	"github.com/jetsetilly/gopher7800/test"
)

// a machine running a program that counts frames in RAM
func newMachine(t *testing.T) *hardware.Machine7800 {
	t.Helper()

	// loop: INC $1800 / JMP loop
	rom := make([]uint8, 0x4000)
	copy(rom, []uint8{0xee, 0x00, 0x18, 0x4c, 0x00, 0xc0})
	rom[0x3ffc] = 0x00
	rom[0x3ffd] = 0xc0

	var f cartridge.Factory
	cart, err := f.Create(rom, cartridge.A7816)
	test.DemandSuccess(t, err)

	m, err := hardware.Create(nil, hardware.A7800NTSC, cart, nil, input.ProLineJoystick, input.ProLineJoystick)
	test.DemandSuccess(t, err)
	return m
}

func prefs(maxEntries int, freq int) *rewind.Preferences {
	p := rewind.NewDefaultPreferences()
	_ = p.MaxEntries.Set(maxEntries)
	_ = p.Freq.Set(freq)
	return p
}

func TestRecord(t *testing.T) {
	m := newMachine(t)
	r := rewind.NewRewind(prefs(4, 2))

	for i := 0; i < 10; i++ {
		m.ComputeNextFrame()
		test.DemandSuccess(t, r.RecordFrame(m))
	}

	tl := r.GetTimeline()
	test.ExpectEquality(t, tl.Count, 4)
	test.ExpectEquality(t, tl.FirstFrame, int64(4))
	test.ExpectEquality(t, tl.LastFrame, int64(10))
	test.ExpectEquality(t, len(r.Frames()), 4)

	test.ExpectEquality(t, r.Search(7), 1)
	test.ExpectEquality(t, r.Search(3), -1)
	test.ExpectEquality(t, r.Search(100), 3)
}

func TestRestore(t *testing.T) {
	m := newMachine(t)
	r := rewind.NewRewind(prefs(10, 1))

	for i := 0; i < 5; i++ {
		m.ComputeNextFrame()
		test.DemandSuccess(t, r.RecordFrame(m))
	}
	// restoring frame 3 and running two frames produces the same state as
	// the original machine at frame 5
	want, err := m.Snapshot()
	test.DemandSuccess(t, err)

	n, err := r.GotoFrame(5, m)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n.FrameNumber(), int64(5))
	got, err := n.Snapshot()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(want, got))

	n, err = r.Restore(2, m)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n.FrameNumber(), int64(3))
	test.DemandSuccess(t, n.RunForFrameCount(2, nil))
	got, err = n.Snapshot()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(want, got))

	// later entries were removed by the restore
	test.ExpectEquality(t, r.GetTimeline().LastFrame, int64(3))

	_, err = r.Restore(10, m)
	test.ExpectFailure(t, err)
}

func TestResize(t *testing.T) {
	m := newMachine(t)
	p := prefs(10, 1)
	r := rewind.NewRewind(p)

	for i := 0; i < 8; i++ {
		m.ComputeNextFrame()
		test.DemandSuccess(t, r.RecordFrame(m))
	}
	test.ExpectEquality(t, r.GetTimeline().Count, 8)

	// the most recent entries are kept
	_ = p.MaxEntries.Set(3)
	m.ComputeNextFrame()
	test.DemandSuccess(t, r.RecordFrame(m))
	tl := r.GetTimeline()
	test.ExpectEquality(t, tl.Count, 3)
	test.ExpectEquality(t, tl.FirstFrame, int64(7))
	test.ExpectEquality(t, tl.LastFrame, int64(9))

	r.Reset()
	test.ExpectEquality(t, r.GetTimeline().Count, 0)
}
