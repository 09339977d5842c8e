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

package hardware_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/environment"
	"github.com/jetsetilly/gopher7800/hardware"
	"github.com/jetsetilly/gopher7800/hardware/input"
	"github.com/jetsetilly/gopher7800/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher7800/hardware/memory/device"
	"github.com/jetsetilly/gopher7800/savestate"
	"github.com/jetsetilly/gopher7800/test"
)

// program returns a 16K cart with the program at $C000 and the reset vector
// pointing to it.
func program(t *testing.T, code ...uint8) cartridge.Cart {
	t.Helper()
	rom := make([]uint8, 0x4000)
	copy(rom, code)
	rom[0x3ffc] = 0x00
	rom[0x3ffd] = 0xc0

	var f cartridge.Factory
	cart, err := f.Create(rom, cartridge.A7816)
	test.DemandSuccess(t, err)
	return cart
}

// the JMP loop spins forever
var loop = []uint8{0x4c, 0x00, 0xc0}

func create(t *testing.T, mt hardware.MachineType, code ...uint8) *hardware.Machine7800 {
	t.Helper()
	m, err := hardware.Create(nil, mt, program(t, code...), nil, input.ProLineJoystick, input.ProLineJoystick)
	test.DemandSuccess(t, err)
	return m
}

// scanlineClock is the CPU clock adjusted for any budget overspend.
func scanlineClock(m *hardware.Machine7800) int64 {
	return int64(m.CPU.Clock) + int64(m.CPU.RunClocks/m.CPU.RunClocksMultiple)
}

func TestFrameLength(t *testing.T) {
	for _, mt := range []hardware.MachineType{hardware.A7800NTSC, hardware.A7800PAL} {
		m := create(t, mt, loop...)
		test.ExpectEquality(t, m.CPU.PC, uint16(0xc000), mt)

		for i := 0; i < 3; i++ {
			start := scanlineClock(m)
			m.ComputeNextFrame()
			test.ExpectEquality(t, scanlineClock(m)-start, int64(m.Scanlines()*114), mt)
		}
		test.ExpectEquality(t, m.FrameNumber(), int64(3), mt)
		test.ExpectSuccess(t, !m.MachineHalt(), mt)
	}
}

func TestStandards(t *testing.T) {
	m := create(t, hardware.A7800NTSC, loop...)
	test.ExpectEquality(t, m.String(), "Machine7800NTSC")
	test.ExpectEquality(t, m.Scanlines(), 262)
	test.ExpectEquality(t, m.FirstScanline(), 16)
	test.ExpectEquality(t, m.FrameHZ(), 60)
	test.ExpectEquality(t, m.SoundSampleFrequency(), 31440)
	test.ExpectEquality(t, m.VisiblePitch(), 320)
	test.ExpectEquality(t, len(m.SoundBuffer()), 262*2)

	m = create(t, hardware.A7800PAL, loop...)
	test.ExpectEquality(t, m.String(), "Machine7800PAL")
	test.ExpectEquality(t, m.Scanlines(), 312)
	test.ExpectEquality(t, m.FirstScanline(), 34)
	test.ExpectEquality(t, m.FrameHZ(), 50)
	test.ExpectEquality(t, m.SoundSampleFrequency(), 31200)
	test.ExpectEquality(t, len(m.SoundBuffer()), 312*2)
}

func TestWSYNC(t *testing.T) {
	// STA WSYNC in a loop. the frame is the same length as a frame without
	// preemption
	m := create(t, hardware.A7800NTSC, 0x85, 0x24, 0x4c, 0x00, 0xc0)

	start := scanlineClock(m)
	m.ComputeNextFrame()
	test.ExpectEquality(t, scanlineClock(m)-start, int64(262*114))
	test.ExpectEquality(t, m.CPU.RunClocks, 0)
}

func TestJam(t *testing.T) {
	// LDA #$01 followed by KIL
	m := create(t, hardware.A7800NTSC, 0xa9, 0x01, 0x02)
	m.ComputeNextFrame()
	test.ExpectSuccess(t, m.MachineHalt())
	test.ExpectSuccess(t, m.CPU.Jammed)
	test.ExpectEquality(t, m.CPU.A.Value(), uint8(0x01))

	// a halted machine does not advance
	clk := m.CPU.Clock
	m.ComputeNextFrame()
	test.ExpectEquality(t, m.CPU.Clock, clk)
	test.ExpectEquality(t, m.FrameNumber(), int64(1))

	// reset clears the halt
	m.Reset()
	test.ExpectSuccess(t, !m.MachineHalt())
}

func TestRunForFrameCount(t *testing.T) {
	m := create(t, hardware.A7800NTSC, loop...)

	err := m.RunForFrameCount(5, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.FrameNumber(), int64(5))

	// continue check stops the emulation
	err = m.RunForFrameCount(0, func(frame int64) (bool, error) {
		return frame <= 8, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.FrameNumber(), int64(8))

	// errors from the continue check are returned
	err = m.RunForFrameCount(0, func(_ int64) (bool, error) {
		return false, curated.Errorf("test: %v", "stop")
	})
	test.ExpectFailure(t, err)

	// a halted machine stops running
	m = create(t, hardware.A7800NTSC, 0x02)
	err = m.RunForFrameCount(10, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, m.FrameNumber(), int64(1))
}

func TestCreate(t *testing.T) {
	cart := program(t, loop...)

	_, err := hardware.Create(nil, hardware.A2600NTSC, cart, nil, input.Joystick, input.Joystick)
	test.ExpectSuccess(t, curated.Is(err, hardware.ConstructionError))

	_, err = hardware.Create(nil, hardware.Unknown, cart, nil, input.Joystick, input.Joystick)
	test.ExpectSuccess(t, curated.Is(err, hardware.ConstructionError))

	_, err = hardware.Create(nil, hardware.A7800NTSC, nil, nil, input.Joystick, input.Joystick)
	test.ExpectSuccess(t, curated.Is(err, hardware.ConstructionError))

	// bios machines need a bios
	_, err = hardware.Create(nil, hardware.A7800NTSCbios, cart, nil, input.Joystick, input.Joystick)
	test.ExpectSuccess(t, curated.Is(err, hardware.ConstructionError))

	// hsc and xm machines need wrapped carts
	_, err = hardware.Create(nil, hardware.A7800PALhsc, cart, nil, input.Joystick, input.Joystick)
	test.ExpectSuccess(t, curated.Is(err, hardware.ConstructionError))
	_, err = hardware.Create(nil, hardware.A7800NTSCxm, cart, nil, input.Joystick, input.Joystick)
	test.ExpectSuccess(t, curated.Is(err, hardware.ConstructionError))

	xm, err := cartridge.NewXM7800(nil, cart)
	test.DemandSuccess(t, err)
	m, err := hardware.Create(nil, hardware.A7800NTSCxm, xm, nil, input.Joystick, input.Paddles)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.Cart.Type(), cartridge.XM7800)
	test.ExpectEquality(t, m.Input.RightControllerJack(), input.Paddles)
}

func TestBIOS(t *testing.T) {
	// the BIOS is a KIL instruction with the reset vector pointing at it
	rom := make([]uint8, 4096)
	rom[0] = 0x02
	rom[0xffc] = 0x00
	rom[0xffd] = 0xf0
	bios, err := device.NewBios7800(rom)
	test.DemandSuccess(t, err)

	m, err := hardware.Create(nil, hardware.A7800NTSCbios, program(t, loop...), bios, input.Joystick, input.Joystick)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, m.CPU.PC, uint16(0xf000))

	// disable the BIOS with a write to INPTCTRL
	m.Mem.Write(0x0001, 0x06)
	test.ExpectEquality(t, m.Mem.Read(0xf000), uint8(0x00))
	test.ExpectEquality(t, m.Mem.Read(0xfffd), uint8(0xc0))

	// the BIOS state survives a savestate
	data, err := m.Snapshot()
	test.DemandSuccess(t, err)
	n, err := hardware.FromSnapshot(data, nil)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n.Mem.Read(0xfffd), uint8(0xc0))
	test.ExpectSuccess(t, n.BIOS != nil)
}

func TestSnapshot(t *testing.T) {
	for _, mt := range []hardware.MachineType{hardware.A7800NTSC, hardware.A7800PAL} {
		m := create(t, mt, loop...)
		test.DemandSuccess(t, m.RunForFrameCount(2, nil))

		a, err := m.Snapshot()
		test.DemandSuccess(t, err)

		n, err := hardware.FromSnapshot(a, nil)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, n.String(), m.String())

		b, err := n.Snapshot()
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, bytes.Equal(a, b), mt)

		// both machines continue identically
		m.ComputeNextFrame()
		n.ComputeNextFrame()
		a, err = m.Snapshot()
		test.DemandSuccess(t, err)
		b, err = n.Snapshot()
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, bytes.Equal(a, b), mt)
	}
}

func TestSnapshotCorrupt(t *testing.T) {
	m := create(t, hardware.A7800NTSC, loop...)
	data, err := m.Snapshot()
	test.DemandSuccess(t, err)

	// truncated data
	_, err = hardware.FromSnapshot(data[:len(data)/2], nil)
	test.ExpectSuccess(t, curated.Is(err, savestate.SerializationFormatError))

	// unknown machine
	var buf bytes.Buffer
	w := savestate.NewWriter(&buf)
	w.WriteString("Machine2600NTSC")
	_, err = hardware.FromSnapshot(buf.Bytes(), nil)
	test.ExpectSuccess(t, curated.Is(err, savestate.SerializationFormatError))
}

func TestSnapshotCorruptEnvironment(t *testing.T) {
	env := environment.NewEnvironment(environment.MainEmulation, nil, nil)
	env.Normalise()

	m, err := hardware.Create(env, hardware.A7800NTSC, program(t, loop...), nil, input.ProLineJoystick, input.ProLineJoystick)
	test.DemandSuccess(t, err)
	m.ComputeNextFrame()

	data, err := m.Snapshot()
	test.DemandSuccess(t, err)

	// a failed restore leaves the random source with the original machine
	v := env.Random.Intn(1 << 30)
	_, err = hardware.FromSnapshot(data[:40], env)
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, env.Random.Intn(1<<30), v)

	// a successful restore takes it over
	n, err := hardware.FromSnapshot(data, env)
	test.DemandSuccess(t, err)
	n.SetFrameNumber(m.FrameNumber() + 1)
	test.ExpectInequality(t, env.Random.Intn(1<<30), v)
	n.SetFrameNumber(m.FrameNumber())
	test.ExpectEquality(t, env.Random.Intn(1<<30), v)
}

func TestMachineType(t *testing.T) {
	for _, mt := range hardware.MachineTypes() {
		test.ExpectEquality(t, hardware.ParseMachineType(mt.String()), mt)
		test.ExpectSuccess(t, mt.IsNTSC() != mt.IsPAL(), mt)
		test.ExpectSuccess(t, mt.Is2600() != mt.Is7800(), mt)
	}
	test.ExpectEquality(t, hardware.ParseMachineType("a7800palxm"), hardware.A7800PALxm)
	test.ExpectEquality(t, hardware.ParseMachineType("A5200"), hardware.Unknown)
}
