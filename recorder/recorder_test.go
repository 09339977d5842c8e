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

package recorder_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher7800/cartridgeloader"
	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/hardware"
	"github.com/jetsetilly/gopher7800/hardware/input"
	"github.com/jetsetilly/gopher7800/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher7800/recorder"
	"github.com/jetsetilly/gopher7800/test"
)

type closer struct {
	bytes.Buffer
	closed bool
}

func (c *closer) Close() error {
	c.closed = true
	return nil
}

// source presses right on frame 2 and fire on frame 4. releasing both on
// frame 6.
type source struct {
	m *hardware.Machine7800
}

func (s *source) Playback(inp *input.InputState) error {
	switch s.m.FrameNumber() {
	case 2:
		inp.RaiseInput(0, input.InputRight, true)
	case 4:
		inp.RaiseInput(0, input.Fire, true)
	case 6:
		inp.RaiseInput(0, input.InputRight, false)
		inp.RaiseInput(0, input.Fire, false)
	}
	return nil
}

// the program copies SWCHA to zero page in a loop
func machine(t *testing.T) *hardware.Machine7800 {
	t.Helper()
	rom := make([]uint8, 0x4000)
	copy(rom, []uint8{0xad, 0x80, 0x02, 0x85, 0x40, 0x4c, 0x00, 0xc0})
	rom[0x3ffc] = 0x00
	rom[0x3ffd] = 0xc0

	var f cartridge.Factory
	cart, err := f.Create(rom, cartridge.A7816)
	test.DemandSuccess(t, err)

	m, err := hardware.Create(nil, hardware.A7800NTSC, cart, nil, input.ProLineJoystick, input.ProLineJoystick)
	test.DemandSuccess(t, err)
	return m
}

func record(t *testing.T) (*closer, []int32) {
	t.Helper()
	m := machine(t)
	w := &closer{}
	cl := cartridgeloader.Loader{Filename: "roms/test.a78", Hash: "0123"}
	rec := recorder.NewRecorderWriter(w, m, cl, &source{m: m})
	test.DemandSuccess(t, m.RunForFrameCount(10, nil))
	test.DemandSuccess(t, rec.End())
	test.ExpectSuccess(t, w.closed)
	return w, m.Input.NextState()
}

func TestRecordAndPlayback(t *testing.T) {
	w, state := record(t)

	lines := strings.Split(w.String(), "\n")
	test.ExpectEquality(t, lines[1], "test")
	test.ExpectEquality(t, lines[2], "0123")
	test.ExpectEquality(t, lines[3], "Machine7800NTSC")

	plb, err := recorder.NewPlaybackReader(strings.NewReader(w.String()))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, plb.CartName, "test")

	m := machine(t)

	// clear the controllers so that playback has to restore them
	m.Input.SetLeftControllerJack(input.ControllerNone)
	m.Input.SetRightControllerJack(input.ControllerNone)

	test.DemandSuccess(t, plb.AttachToMachine(m))
	err = m.RunForFrameCount(0, func(_ int64) (bool, error) {
		return !plb.EndFrame(), nil
	})
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, m.Input.LeftControllerJack(), input.ProLineJoystick)
	n := m.Input.NextState()
	test.DemandEquality(t, len(n), len(state))
	for i := range n {
		test.ExpectEquality(t, n[i], state[i], i)
	}
}

func TestPlaybackDivergence(t *testing.T) {
	w, _ := record(t)

	plb, err := recorder.NewPlaybackReader(strings.NewReader(w.String()))
	test.DemandSuccess(t, err)

	m := machine(t)
	test.DemandSuccess(t, plb.AttachToMachine(m))

	// the machine state differs from the state at the time of recording
	m.RAM0.RAM[0] ^= 0xff

	// the failed playback is detached from the input and the emulation
	// continues
	test.ExpectSuccess(t, m.RunForFrameCount(3, nil))
	test.ExpectEquality(t, m.FrameNumber(), int64(3))
	test.ExpectSuccess(t, !plb.EndFrame())
}

func TestPlaybackErrors(t *testing.T) {
	_, err := recorder.NewPlaybackReader(strings.NewReader("not a transcript\na\nb\nc\n"))
	test.ExpectFailure(t, err)

	_, err = recorder.NewPlaybackReader(strings.NewReader("gopher7800 transcript v1\n"))
	test.ExpectFailure(t, err)

	_, err = recorder.NewPlaybackReader(strings.NewReader("gopher7800 transcript v1\na\nb\nMachine7800PAL\n1, 2\n"))
	test.ExpectFailure(t, err)

	plb, err := recorder.NewPlaybackReader(strings.NewReader("gopher7800 transcript v1\na\nb\nMachine7800PAL\n"))
	test.DemandSuccess(t, err)

	m := machine(t)
	err = plb.AttachToMachine(m)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.IsAny(err))
}
