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

package maria_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gopher7800/hardware/cpu"
	"github.com/jetsetilly/gopher7800/hardware/input"
	"github.com/jetsetilly/gopher7800/hardware/maria"
	"github.com/jetsetilly/gopher7800/hardware/memory/addressspace"
	"github.com/jetsetilly/gopher7800/logger"
	"github.com/jetsetilly/gopher7800/savestate"
	"github.com/jetsetilly/gopher7800/test"
)

type host struct {
	clock   uint64
	buffer  []uint8
	biosIn  int
	biosOut int
}

func (h *host) CPUClock() uint64     { return h.clock }
func (h *host) SoundBuffer() []uint8 { return h.buffer }
func (h *host) SwapInBIOS()          { h.biosIn++ }
func (h *host) SwapOutBIOS()         { h.biosOut++ }

// ram that notes whether it was read while MARIA was performing DMA
type spyRAM struct {
	mem       *addressspace.AddressSpace
	data      [0x800]uint8
	mariaRead int
}

func (ram *spyRAM) Reset() {}

func (ram *spyRAM) Read(addr uint16) uint8 {
	if ram.mem.MariaRead() {
		ram.mariaRead++
	}
	return ram.data[addr&0x7ff]
}

func (ram *spyRAM) Write(addr uint16, data uint8) {
	ram.data[addr&0x7ff] = data
}

type fixture struct {
	host *host
	mem  *addressspace.AddressSpace
	mc   *cpu.CPU
	inp  *input.InputState
	ram  *spyRAM
	mar  *maria.Maria
}

func newFixture() *fixture {
	f := &fixture{
		host: &host{buffer: make([]uint8, 524)},
		mem:  addressspace.NewAddressSpace(logger.Allow, 16, 6),
		inp:  input.NewInputState(),
	}
	f.mc = cpu.NewCPU(f.mem, 4)
	f.ram = &spyRAM{mem: f.mem}
	f.mem.Map(0x1800, 0x800, f.ram)
	f.mar = maria.NewMaria(f.host, f.mem, f.mc, f.inp, 262, 16)
	return f
}

func TestINPTCTRL(t *testing.T) {
	f := newFixture()

	f.mar.Write(maria.INPTCTRL, 0x02)
	test.ExpectEquality(t, f.host.biosIn, 1)
	test.ExpectEquality(t, f.host.biosOut, 0)

	// lock and disable the BIOS
	f.mar.Write(maria.INPTCTRL, 0x07)
	test.ExpectEquality(t, f.host.biosIn, 1)
	test.ExpectEquality(t, f.host.biosOut, 1)

	// locked. further writes go to the TIA
	f.mar.Write(maria.INPTCTRL, 0x00)
	test.ExpectEquality(t, f.host.biosIn, 1)
	test.ExpectEquality(t, f.host.biosOut, 1)

	// reset unlocks
	f.mar.Reset()
	f.mar.Write(maria.INPTCTRL, 0x00)
	test.ExpectEquality(t, f.host.biosIn, 2)
}

func TestTIASoundRegisters(t *testing.T) {
	f := newFixture()
	f.mar.Write(maria.INPTCTRL, 0x07)
	f.mar.Write(0x19, 0x0f)
	test.ExpectEquality(t, f.mar.Sound.Registers(0).Volume, uint8(0x0f))
}

func TestWSYNC(t *testing.T) {
	f := newFixture()
	f.mar.Write(maria.WSYNC, 0x00)
	test.ExpectEquality(t, f.mc.EmulatorPreemptRequest, true)
}

func TestMSTAT(t *testing.T) {
	f := newFixture()
	f.mar.StartFrame()
	test.ExpectEquality(t, f.mar.Read(maria.MSTAT), uint8(0x80))
	for i := 0; i < 16; i++ {
		f.mar.DoDMAProcessing()
	}
	test.ExpectEquality(t, f.mar.Scanline(), 16)
	test.ExpectEquality(t, f.mar.Read(maria.MSTAT), uint8(0x00))
	for i := 16; i < 258; i++ {
		f.mar.DoDMAProcessing()
	}
	test.ExpectEquality(t, f.mar.Read(maria.MSTAT), uint8(0x80))
}

func TestDMAOff(t *testing.T) {
	f := newFixture()
	f.mar.StartFrame()
	for i := 0; i < 262; i++ {
		test.ExpectEquality(t, f.mar.DoDMAProcessing(), 0, i)
	}
}

func setupDisplayList(f *fixture) {
	// DLL at $1800. one zone of one line with a DLI, then an empty zone
	f.ram.data[0x000] = 0x80
	f.ram.data[0x001] = 0x18
	f.ram.data[0x002] = 0x10

	// DL at $1810. a four byte header with a width of four bytes
	f.ram.data[0x010] = 0x00
	f.ram.data[0x011] = 0x1c
	f.ram.data[0x012] = 0x19
	f.ram.data[0x013] = 0x00

	f.mar.Write(maria.DPPH, 0x18)
	f.mar.Write(maria.DPPL, 0x00)
	f.mar.Write(maria.CTRL, 0x40)
}

func TestDMA(t *testing.T) {
	f := newFixture()
	setupDisplayList(f)

	f.mar.StartFrame()
	for i := 0; i < 15; i++ {
		test.ExpectEquality(t, f.mar.DoDMAProcessing(), 0, i)
	}
	test.ExpectEquality(t, f.ram.mariaRead, 0)

	// fetch of the first DLL entry
	test.ExpectEquality(t, f.mar.DoDMAProcessing(), 24)
	test.ExpectEquality(t, f.ram.mariaRead, 3)

	// startup + header + four graphics bytes + end of zone
	test.ExpectEquality(t, f.mar.DoDMAProcessing(), 16+8+4*3+24)
	test.ExpectEquality(t, f.mc.NMIInterruptRequest, true)

	// empty zone
	test.ExpectEquality(t, f.mar.DoDMAProcessing(), 16+24)

	test.ExpectEquality(t, f.mem.MariaRead(), false)
}

func TestHoleyDMA(t *testing.T) {
	f := newFixture()
	setupDisplayList(f)

	// holey 16. graphics at $9900 fall into the hole
	f.ram.data[0x000] = 0x40
	f.ram.data[0x012] = 0x99

	f.mar.StartFrame()
	for i := 0; i < 16; i++ {
		f.mar.DoDMAProcessing()
	}
	test.ExpectEquality(t, f.mar.DoDMAProcessing(), 16+8+24)
	test.ExpectEquality(t, f.mc.NMIInterruptRequest, false)
}

func TestPaddles(t *testing.T) {
	f := newFixture()
	f.inp.SetLeftControllerJack(input.Paddles)
	f.inp.RaisePaddleInput(0, 7000)
	f.inp.CaptureInputState()

	f.mar.Write(maria.INPTCTRL, 0x07)
	f.mar.Write(maria.VBLANK, 0x80)
	test.ExpectEquality(t, f.mar.Read(maria.INPT0), uint8(0x00))

	f.mar.Write(maria.VBLANK, 0x00)
	test.ExpectEquality(t, f.mar.Read(maria.INPT0), uint8(0x00))
	f.mar.DoDMAProcessing()
	f.mar.DoDMAProcessing()
	test.ExpectEquality(t, f.mar.Read(maria.INPT0), uint8(0x80))
}

func TestFireButton(t *testing.T) {
	f := newFixture()
	f.inp.SetLeftControllerJack(input.ProLineJoystick)
	f.inp.CaptureInputState()
	test.ExpectEquality(t, f.mar.Read(maria.INPT4), uint8(0x80))
	test.ExpectEquality(t, f.mar.Read(maria.INPT1), uint8(0x00))

	f.inp.RaiseInput(0, input.Fire, true)
	f.inp.CaptureInputState()
	test.ExpectEquality(t, f.mar.Read(maria.INPT4), uint8(0x00))
	test.ExpectEquality(t, f.mar.Read(maria.INPT1), uint8(0x80))
	test.ExpectEquality(t, f.mar.Read(maria.INPT0), uint8(0x00))
}

func TestSerialize(t *testing.T) {
	f := newFixture()
	setupDisplayList(f)
	f.mar.StartFrame()
	for i := 0; i < 16; i++ {
		f.mar.DoDMAProcessing()
	}

	var b bytes.Buffer
	w := savestate.NewWriter(&b)
	f.mar.Serialize(w)
	test.DemandSuccess(t, w.Err())

	n, err := maria.Deserialize(savestate.NewReader(&b), f.host, f.mem, f.mc, f.inp)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n.String(), f.mar.String())
	test.ExpectEquality(t, n.DoDMAProcessing(), f.mar.DoDMAProcessing())
}
