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

package maria

import (
	"fmt"

	"github.com/jetsetilly/gopher7800/hardware/audio"
	"github.com/jetsetilly/gopher7800/hardware/audio/tiasound"
	"github.com/jetsetilly/gopher7800/hardware/cpu"
	"github.com/jetsetilly/gopher7800/hardware/input"
	"github.com/jetsetilly/gopher7800/hardware/memory/addressspace"
)

// Host is the part of the machine that MARIA needs, other than the address
// space, the CPU and the input state.
type Host interface {
	audio.Host

	// SwapInBIOS and SwapOutBIOS are called on INPTCTRL writes
	SwapInBIOS()
	SwapOutBIOS()
}

// Maria is the MARIA video chip and the remains of the TIA.
type Maria struct {
	host Host
	mem  *addressspace.AddressSpace
	mc   *cpu.CPU
	inp  *input.InputState

	// TIA sound channels
	Sound *tiasound.Sound

	scanlines     int
	firstScanline int

	// register file for MARIA ($20-$3F). write only registers are stored as
	// written
	registers [0x20]uint8

	inptctrl uint8
	locked   bool

	// VBLANK register of the TIA. bit 7 grounds the paddle capacitors. the
	// line count at which the capacitors were released is noted
	vblank   uint8
	dumpLine int

	// scanline in the current frame and the total number of lines processed
	scanline int
	lines    int

	dmaEnabled    bool
	dmaInProgress bool

	// display list list state
	dll     uint16
	dl      uint16
	offset  int
	dli     bool
	holey16 bool
	holey8  bool
}

// NewMaria is the preferred method of initialisation for the Maria type.
func NewMaria(host Host, mem *addressspace.AddressSpace, mc *cpu.CPU, inp *input.InputState, scanlines int, firstScanline int) *Maria {
	mar := &Maria{
		host:          host,
		mem:           mem,
		mc:            mc,
		inp:           inp,
		Sound:         tiasound.NewSound(host),
		scanlines:     scanlines,
		firstScanline: firstScanline,
	}
	mar.Reset()
	return mar
}

// Plumb new references into Maria.
func (mar *Maria) Plumb(host Host, mem *addressspace.AddressSpace, mc *cpu.CPU, inp *input.InputState) {
	mar.host = host
	mar.mem = mem
	mar.mc = mc
	mar.inp = inp
	mar.Sound.Plumb(host)
}

// Snapshot creates a copy of Maria in its current state.
func (mar *Maria) Snapshot() *Maria {
	n := *mar
	n.Sound = mar.Sound.Snapshot()
	return &n
}

func (mar *Maria) String() string {
	return fmt.Sprintf("scanline=%d ctrl=%#02x dpp=%#04x dll=%#04x dl=%#04x offset=%d inptctrl=%#02x",
		mar.scanline, mar.registers[CTRL&0x1f], mar.dpp(), mar.dll, mar.dl, mar.offset, mar.inptctrl)
}

// Reset implements the device.Device interface.
func (mar *Maria) Reset() {
	mar.registers = [0x20]uint8{}
	mar.inptctrl = 0
	mar.locked = false
	mar.vblank = 0
	mar.dumpLine = 0
	mar.scanline = 0
	mar.lines = 0
	mar.dmaEnabled = false
	mar.dmaInProgress = false
	mar.dll = 0
	mar.dl = 0
	mar.offset = 0
	mar.dli = false
	mar.holey16 = false
	mar.holey8 = false
	mar.Sound.Reset()
}

func (mar *Maria) dpp() uint16 {
	return uint16(mar.registers[DPPH&0x1f])<<8 | uint16(mar.registers[DPPL&0x1f])
}

// Scanline returns the scanline currently being processed.
func (mar *Maria) Scanline() int {
	return mar.scanline
}

// InVBlank returns true if the current scanline is outside the DMA region.
func (mar *Maria) InVBlank() bool {
	return mar.scanline < mar.firstScanline || mar.scanline >= mar.lastScanline()
}

// the last scanline of the DMA region. four lines are left for vsync
func (mar *Maria) lastScanline() int {
	return mar.scanlines - 4
}

// Read implements the device.Device interface.
func (mar *Maria) Read(addr uint16) uint8 {
	addr &= 0x3f

	switch addr {
	case INPT0, INPT1, INPT2, INPT3, INPT4, INPT5:
		return mar.readInput(addr)
	case MSTAT:
		if mar.InVBlank() {
			return mstatVBlank
		}
		return 0
	}

	if addr >= BACKGRND {
		return mar.registers[addr&0x1f]
	}

	return mar.mem.DataBusState()
}

// Write implements the device.Device interface.
func (mar *Maria) Write(addr uint16, data uint8) {
	addr &= 0x3f

	if addr < BACKGRND {
		if !mar.locked {
			mar.writeINPTCTRL(data)
			return
		}
		if addr == VBLANK {
			if mar.vblank&0x80 == 0x80 && data&0x80 == 0 {
				mar.dumpLine = mar.lines
			}
			mar.vblank = data
			return
		}
		mar.Sound.Write(addr, data)
		return
	}

	mar.registers[addr&0x1f] = data

	switch addr {
	case WSYNC:
		// the CPU is halted until the end of the scanline
		mar.mc.EmulatorPreemptRequest = true
	case CTRL:
		mar.dmaEnabled = data&ctrlDMAMask == ctrlDMAOn
	}
}

func (mar *Maria) writeINPTCTRL(data uint8) {
	mar.inptctrl = data
	mar.locked = data&inptctrlLock == inptctrlLock
	if mar.host == nil {
		return
	}
	if data&inptctrlNoBIOS == inptctrlNoBIOS {
		mar.host.SwapOutBIOS()
	} else {
		mar.host.SwapInBIOS()
	}
}

// BIOSVisible returns true if the most recent INPTCTRL write left the BIOS
// mapped into the address space.
func (mar *Maria) BIOSVisible() bool {
	return mar.inptctrl&inptctrlNoBIOS == 0
}

// StartFrame should be called at the start of every frame.
func (mar *Maria) StartFrame() {
	mar.scanline = 0
	mar.Sound.StartFrame()
}

// EndFrame should be called at the end of every frame.
func (mar *Maria) EndFrame() {
	mar.Sound.EndFrame()
}
