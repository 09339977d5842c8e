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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/environment"
	"github.com/jetsetilly/gopher7800/hardware/audio"
	"github.com/jetsetilly/gopher7800/hardware/clocks"
	"github.com/jetsetilly/gopher7800/hardware/cpu"
	"github.com/jetsetilly/gopher7800/hardware/input"
	"github.com/jetsetilly/gopher7800/hardware/maria"
	"github.com/jetsetilly/gopher7800/hardware/memory/addressspace"
	"github.com/jetsetilly/gopher7800/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher7800/hardware/memory/device"
	"github.com/jetsetilly/gopher7800/hardware/pia"
	"github.com/jetsetilly/gopher7800/logger"
)

// ConstructionError is returned when a machine can not be created.
const ConstructionError = "hardware: construction error: %v"

const (
	// the CPU budget is counted in units of a quarter cycle
	runClocksMultiple = 4

	cyclesPerScanline = 114

	// the CPU runs for this many cycles at the start of the scanline, before
	// MARIA starts DMA
	preDMACycles = 7

	visiblePitch = 320

	// 16bit address space with 64 byte pages
	addrSpaceShift = 16
	pageShift      = 6
)

// the parts of the machine that differ between television standards.
type standard struct {
	pal             bool
	scanlines       int
	firstScanline   int
	frameHZ         int
	soundSampleFreq int
}

var (
	standardNTSC = standard{pal: false, scanlines: 262, firstScanline: 16, frameHZ: 60, soundSampleFreq: 31440}
	standardPAL  = standard{pal: true, scanlines: 312, firstScanline: 34, frameHZ: 50, soundSampleFreq: 31200}
)

// Machine7800 is the root of the 7800 emulation.
type Machine7800 struct {
	env *environment.Environment

	CPU   *cpu.CPU
	Mem   *addressspace.AddressSpace
	Maria *maria.Maria
	PIA   *pia.PIA
	RAM0  *device.RAM6116
	RAM1  *device.RAM6116
	Input *input.InputState

	// BIOS is nil if the machine has no BIOS
	BIOS *device.Bios7800

	Cart cartridge.Cart

	pal                bool
	halt               bool
	frameHZ            int
	visiblePitch       int
	scanlines          int
	firstScanline      int
	soundSampleFreq    int
	nopRegisterDumping bool

	frameNumber int64
	soundBuffer []uint8
}

// NewMachine7800NTSC creates a new NTSC 7800 with the cart inserted. The BIOS
// can be nil. The environment can be nil, in which case a main emulation
// environment with default preferences is used.
//
// The machine must be Reset() before the first frame is computed.
func NewMachine7800NTSC(env *environment.Environment, cart cartridge.Cart, bios *device.Bios7800) (*Machine7800, error) {
	return newMachine7800(env, standardNTSC, cart, bios)
}

// NewMachine7800PAL creates a new PAL 7800. See NewMachine7800NTSC().
func NewMachine7800PAL(env *environment.Environment, cart cartridge.Cart, bios *device.Bios7800) (*Machine7800, error) {
	return newMachine7800(env, standardPAL, cart, bios)
}

func newMachine7800(env *environment.Environment, std standard, cart cartridge.Cart, bios *device.Bios7800) (*Machine7800, error) {
	if cart == nil {
		return nil, curated.Errorf(ConstructionError, "no cartridge")
	}

	m := &Machine7800{
		pal:             std.pal,
		frameHZ:         std.frameHZ,
		visiblePitch:    visiblePitch,
		scanlines:       std.scanlines,
		firstScanline:   std.firstScanline,
		soundSampleFreq: std.soundSampleFreq,
		BIOS:            bios,
		Cart:            cart,
	}
	m.setEnvironment(env)

	m.Input = input.NewInputState()
	m.Mem = addressspace.NewAddressSpace(m.env, addrSpaceShift, pageShift)
	m.CPU = cpu.NewCPU(m.Mem, runClocksMultiple)
	m.Maria = maria.NewMaria(m, m.Mem, m.CPU, m.Input, m.scanlines, m.firstScanline)
	m.PIA = pia.NewPIA(m, m.Input)
	m.RAM0 = device.NewRAM6116()
	m.RAM1 = device.NewRAM6116()
	m.Cart.Attach(m)
	m.mapDevices()

	m.soundBuffer = make([]uint8, m.scanlines*audio.SamplesPerScanline)
	m.SetNOPRegisterDumping(m.env.Prefs.NOPRegisterDumping.Get().(bool))

	logger.Logf(m.env, "machine", "created %s with %s", m, m.Cart)

	return m, nil
}

func (m *Machine7800) setEnvironment(env *environment.Environment) {
	if env == nil {
		env = environment.NewEnvironment(environment.MainEmulation, m, nil)
	} else {
		env.Random.Plumb(m)
	}
	m.env = env
}

// mapDevices maps the fixed devices and the cart into the address space.
func (m *Machine7800) mapDevices() {
	for _, base := range []uint16{0x0000, 0x0100, 0x0200, 0x0300} {
		m.Mem.Map(base, 0x0040, m.Maria)
	}

	for _, base := range []uint16{0x0280, 0x0480, 0x0580} {
		m.Mem.Map(base, 0x0080, m.PIA)
	}

	m.Mem.Map(0x1800, 0x0800, m.RAM0)
	m.Mem.Map(0x2000, 0x0800, m.RAM1)

	// RAM1 is mirrored in zero page and page one and in the remainder of the
	// $2000-$3FFF region
	for _, base := range []uint16{0x0040, 0x0140, 0x2040, 0x2140} {
		m.Mem.Map(base, 0x00c0, m.RAM1)
	}
	for _, base := range []uint16{0x2800, 0x3000, 0x3800} {
		m.Mem.Map(base, 0x0800, m.RAM1)
	}

	m.Mem.MapCart(0x4000, 0xc000, m.Cart)
}

func (m *Machine7800) String() string {
	if m.pal {
		return "Machine7800PAL"
	}
	return "Machine7800NTSC"
}

// Env returns the environment of the machine.
func (m *Machine7800) Env() *environment.Environment {
	return m.env
}

// CPUClock implements the audio.Host interface.
func (m *Machine7800) CPUClock() uint64 {
	return m.CPU.Clock
}

// SoundBuffer implements the audio.Host interface. The buffer holds two
// samples for every scanline of the current frame. It is cleared at the
// start of every frame.
func (m *Machine7800) SoundBuffer() []uint8 {
	return m.soundBuffer
}

// RandomSource implements the random.Source interface.
func (m *Machine7800) RandomSource() (int64, uint64) {
	if m.CPU == nil {
		return m.frameNumber, 0
	}
	return m.frameNumber, m.CPU.Clock
}

// SwapInBIOS implements the maria.Host interface.
func (m *Machine7800) SwapInBIOS() {
	if m.BIOS == nil {
		return
	}
	m.Mem.Map(uint16(0x10000-m.BIOS.Size()), m.BIOS.Size(), m.BIOS)
	logger.Log(m.env, "machine", "bios swapped in")
}

// SwapOutBIOS implements the maria.Host interface.
func (m *Machine7800) SwapOutBIOS() {
	if m.BIOS == nil {
		return
	}
	m.Mem.Map(uint16(0x10000-m.BIOS.Size()), m.BIOS.Size(), m.Cart)
	logger.Log(m.env, "machine", "bios swapped out")
}

// Reset emulates the power being turned off and on again. RAM is not
// cleared unless the RandomState preference is set, in which case it is
// filled with random values.
func (m *Machine7800) Reset() {
	logger.Logf(m.env, "machine", "%s reset (%d Hz %d scanlines)", m, m.frameHZ, m.scanlines)

	m.frameNumber = 0
	m.halt = false
	m.Input.ClearAllInput()

	if m.env.Prefs.RandomState.Get().(bool) {
		m.env.Random.Fill(m.RAM0.RAM)
		m.env.Random.Fill(m.RAM1.RAM)
	}

	m.SwapInBIOS()
	m.Cart.Reset()
	m.Maria.Reset()
	m.PIA.Reset()
	m.CPU.Reset()
}

// MachineHalt returns true if the machine has halted. A halted machine will
// not compute any more frames.
func (m *Machine7800) MachineHalt() bool {
	return m.halt
}

// FrameNumber returns the number of frames computed since the last reset.
func (m *Machine7800) FrameNumber() int64 {
	return m.frameNumber
}

// SetFrameNumber changes the frame number. The frame number is not part of
// the savestate so a restored machine starts counting from zero unless this
// is used.
func (m *Machine7800) SetFrameNumber(frame int64) {
	m.frameNumber = frame
}

// FrameHZ returns the frame rate of the machine.
func (m *Machine7800) FrameHZ() int {
	if m.frameHZ < 1 {
		return 1
	}
	return m.frameHZ
}

// Scanlines returns the number of scanlines in a frame.
func (m *Machine7800) Scanlines() int {
	return m.scanlines
}

// FirstScanline returns the first visible scanline.
func (m *Machine7800) FirstScanline() int {
	return m.firstScanline
}

// VisiblePitch returns the width of the visible screen in pixels.
func (m *Machine7800) VisiblePitch() int {
	return m.visiblePitch
}

// SoundSampleFrequency returns the number of sound samples per second.
func (m *Machine7800) SoundSampleFrequency() int {
	return m.soundSampleFreq
}

// CPUFrequency returns the CPU clock speed in MHz.
func (m *Machine7800) CPUFrequency() float64 {
	if m.pal {
		return clocks.PAL
	}
	return clocks.NTSC
}

// NOPRegisterDumping returns true if CPU registers are logged on every NOP.
func (m *Machine7800) NOPRegisterDumping() bool {
	return m.nopRegisterDumping
}

// SetNOPRegisterDumping logs the CPU registers whenever the CPU executes a
// NOP instruction.
func (m *Machine7800) SetNOPRegisterDumping(v bool) {
	m.nopRegisterDumping = v
	if v {
		m.CPU.NOPHook = func() {
			logger.Logf(m.env, "cpu", "NOP: %s", m.CPU)
		}
	} else {
		m.CPU.NOPHook = nil
	}
}

// Flush writes any NVRAM in the cart to disk.
func (m *Machine7800) Flush() error {
	if f, ok := m.Cart.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return curated.Errorf("hardware: %v", err)
		}
	}
	return nil
}

// check that the machine implements the host interfaces of the chips.
var (
	_ maria.Host     = (*Machine7800)(nil)
	_ pia.Host       = (*Machine7800)(nil)
	_ cartridge.Host = (*Machine7800)(nil)
)

// Describe returns a one line description of the machine.
func (m *Machine7800) Describe() string {
	bios := "no bios"
	if m.BIOS != nil {
		bios = m.BIOS.String()
	}
	return fmt.Sprintf("%s [%s] %s frame=%d halt=%v", m, bios, m.Cart, m.frameNumber, m.halt)
}
