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

package ym2151

import (
	"fmt"

	"github.com/jetsetilly/gopher7800/hardware/audio"
)

// envelope states of an operator.
const (
	envOff = iota
	envRelease
	envSustain
	envDecay
	envAttack
)

type operator struct {
	phase  uint32
	tl     uint32
	volume int32
	key    bool
	state  uint8
}

// timer periods in CPU cycles.
var timerATime [0x400]uint64
var timerBTime [0x100]uint64

// noise periods.
var noiseTable [0x20]uint32

func init() {
	for i := range timerATime {
		timerATime[i] = uint64(64 * (1024 - i))
	}
	for i := range timerBTime {
		timerBTime[i] = uint64(1024 * (256 - i))
	}
	for i := range noiseTable {
		j := i
		if j == 31 {
			j = 30
		}
		s := int(65536.0 / float64((32-j)*32))
		noiseTable[i] = uint32(s * 64)
	}
}

// YM2151 is the register interface of the YM2151 sound chip.
type YM2151 struct {
	host audio.Host

	operators [0x20]operator

	// register selected by a write to the address port
	lastReg uint8

	test   uint8
	ct     uint8
	noise  uint8
	noiseF uint32

	lfoPhase      uint8
	lfoOverflow   uint32
	lfoCounterAdd uint32
	lfoWaveform   uint8
	amd           uint8
	pmd           int8

	irqEnable uint8
	csmReq    uint8
	status    uint8
	irqLine   uint8

	timerAIndex uint32
	timerBIndex uint32

	// the CPU clock value at which each timer next expires. zero if the timer
	// is stopped
	timerA uint64
	timerB uint64

	bufferIndex int
}

// NewYM2151 is the preferred method of initialisation for the YM2151 type.
func NewYM2151(host audio.Host) *YM2151 {
	ym := &YM2151{host: host}
	ym.Reset()
	return ym
}

// Plumb a new host into the chip.
func (ym *YM2151) Plumb(host audio.Host) {
	ym.host = host
}

func (ym *YM2151) String() string {
	return fmt.Sprintf("ym2151: status=%02x irqen=%02x timerA=%d timerB=%d", ym.status, ym.irqEnable, ym.timerA, ym.timerB)
}

func (ym *YM2151) clock() uint64 {
	if ym.host == nil {
		return 0
	}
	return ym.host.CPUClock()
}

// Reset implements the device.Device interface.
func (ym *YM2151) Reset() {
	for i := range ym.operators {
		ym.operators[i] = operator{volume: 0x3ff}
	}
	ym.lfoPhase = 0
	ym.lfoWaveform = 0
	ym.pmd = 0
	ym.amd = 0
	ym.test = 0
	ym.irqEnable = 0
	ym.timerA = 0
	ym.timerB = 0
	ym.timerAIndex = 0
	ym.timerBIndex = 0
	ym.noise = 0
	ym.noiseF = noiseTable[0]
	ym.csmReq = 0
	ym.status = 0
	ym.irqLine = 0

	ym.writeReg(0x1b, 0)
	ym.writeReg(0x18, 0)
	for i := 0; i < 0x100; i++ {
		ym.writeReg(uint8(i), 0)
	}
}

// Read implements the device.Device interface. All addresses return the
// status register.
func (ym *YM2151) Read(_ uint16) uint8 {
	ym.checkTimers()
	return ym.status
}

// Write implements the device.Device interface. Even addresses select a
// register and odd addresses write to the selected register.
func (ym *YM2151) Write(addr uint16, data uint8) {
	ym.checkTimers()
	if addr&1 == 0 {
		ym.lastReg = data
	} else {
		ym.writeReg(ym.lastReg, data)
	}
}

// StartFrame should be called at the start of every frame.
func (ym *YM2151) StartFrame() {
	ym.checkTimers()
	ym.bufferIndex = 0
}

// EndFrame should be called at the end of every frame.
func (ym *YM2151) EndFrame() {
	ym.checkTimers()
	if ym.host != nil {
		ym.bufferIndex = len(ym.host.SoundBuffer())
	}
}

// Status returns the value of the status register without checking the
// timers.
func (ym *YM2151) Status() uint8 {
	return ym.status
}

func (ym *YM2151) writeReg(reg uint8, data uint8) {
	opi := int(reg&0x07)<<2 | int(reg&0x18)>>3

	switch reg & 0xe0 {
	case 0x00:
		switch reg {
		case 0x01:
			// LFO reset (bit 1) and test register
			ym.test = data
			if data&0x02 != 0 {
				ym.lfoPhase = 0
			}
		case 0x08:
			op := int(data&7) * 4
			ym.key(op, data&0x08 != 0)
			ym.key(op+1, data&0x20 != 0)
			ym.key(op+2, data&0x10 != 0)
			ym.key(op+3, data&0x40 != 0)
		case 0x0f:
			ym.noise = data
			ym.noiseF = noiseTable[data&0x1f]
		case 0x10:
			ym.timerAIndex = (ym.timerAIndex & 0x003) | uint32(data)<<2
		case 0x11:
			ym.timerAIndex = (ym.timerAIndex & 0x3fc) | uint32(data&3)
		case 0x12:
			ym.timerBIndex = uint32(data)
		case 0x14:
			// bit 7 CSM, bit 3 timer B irq enable, bit 2 timer A irq enable
			ym.irqEnable = data
			if data&0x10 != 0 {
				ym.status &= 0xfe
				ym.irqLine &^= 1
			}
			if data&0x20 != 0 {
				ym.status &= 0xfd
				ym.irqLine &^= 2
			}
			if data&0x02 != 0 {
				if ym.timerB == 0 {
					ym.timerB = timerBTime[ym.timerBIndex] + ym.clock()
				}
			} else {
				ym.timerB = 0
			}
			if data&0x01 != 0 {
				if ym.timerA == 0 {
					ym.timerA = timerATime[ym.timerAIndex] + ym.clock()
				}
			} else {
				ym.timerA = 0
			}
		case 0x18:
			ym.lfoOverflow = uint32(1<<((15-(data>>4))+3)) * (1 << 10)
			ym.lfoCounterAdd = uint32(0x10 + (data & 0x0f))
		case 0x19:
			if data&0x80 != 0 {
				ym.pmd = int8(data & 0x7f)
			} else {
				ym.amd = data & 0x7f
			}
		case 0x1b:
			ym.ct = data >> 6
			ym.lfoWaveform = data & 3
		}
	case 0x60:
		// total level
		ym.operators[opi].tl = uint32(data&0x7f) << 3
	}
}

func (ym *YM2151) key(op int, on bool) {
	o := &ym.operators[op]
	if on {
		if !o.key {
			o.phase = 0
			o.state = envAttack
			if o.volume <= 0 {
				o.volume = 0
				o.state = envDecay
			}
		}
		o.key = true
		return
	}
	if o.key {
		o.key = false
		if o.state > envRelease {
			o.state = envRelease
		}
	}
}

func (ym *YM2151) checkTimers() {
	clk := ym.clock()

	if ym.timerA > 0 && clk > ym.timerA {
		ym.timerA = timerATime[ym.timerAIndex] + clk
		if ym.irqEnable&0x04 != 0 {
			ym.status |= 1
			ym.irqLine |= 1
		}
		if ym.irqEnable&0x80 != 0 {
			ym.csmReq = 2
		}
	}

	if ym.timerB > 0 && clk > ym.timerB {
		ym.timerB = timerBTime[ym.timerBIndex] + clk
		if ym.irqEnable&0x08 != 0 {
			ym.status |= 2
			ym.irqLine |= 2
		}
	}
}
