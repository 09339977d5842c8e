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

package pokey

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher7800/hardware/audio"
)

// register offsets.
const (
	regAUDF1  = 0x00
	regAUDCTL = 0x08
	regSTIMER = 0x09
	regRANDOM = 0x0a
	regIRQEN  = 0x0e
	regSKCTL  = 0x0f
)

// Pokey is the sound generating part of the POKEY chip.
type Pokey struct {
	host audio.Host

	channels [4]channel
	audctl   uint8
	skctl    uint8
	irqen    uint8

	// high pass filter flip-flops for channels one and two
	hipass [2]bool

	// the CPU clock value at which the polynomial counters were last reset
	polyReset uint64

	// the CPU clock value at the start of the frame and the clock value up to
	// which samples have been rendered
	frameStart uint64
	lastClock  uint64

	bufferIndex int
}

// NewPokey is the preferred method of initialisation for the Pokey type. The
// host can be nil, in which case no sound is rendered until Plumb() is
// called.
func NewPokey(host audio.Host) *Pokey {
	p := &Pokey{}
	p.Plumb(host)
	p.Reset()
	return p
}

// Plumb a new host into the chip. The current clock of the host is used as
// the reference for rendering if the chip has never been clocked.
func (p *Pokey) Plumb(host audio.Host) {
	p.host = host
	if host != nil && p.lastClock == 0 {
		p.lastClock = host.CPUClock()
		p.frameStart = p.lastClock
	}
}

func (p *Pokey) String() string {
	s := strings.Builder{}
	for i := range p.channels {
		s.WriteString(fmt.Sprintf("ch%d: %02x %02x  ", i+1, p.channels[i].audf, p.channels[i].audc))
	}
	s.WriteString(fmt.Sprintf("audctl: %02x", p.audctl))
	return s.String()
}

// Reset implements the device.Device interface.
func (p *Pokey) Reset() {
	for i := range p.channels {
		p.channels[i] = channel{}
	}
	p.audctl = 0
	p.irqen = 0
	p.hipass = [2]bool{}

	// the polynomial counters run after a reset
	p.skctl = 0x03
	p.updatePeriods()
	p.resetCounters()
}

func (p *Pokey) resetCounters() {
	for i := range p.channels {
		p.channels[i].counter = p.channels[i].period
	}
}

func (p *Pokey) clock() uint64 {
	if p.host == nil {
		return p.lastClock
	}
	return p.host.CPUClock()
}

// Read implements the device.Device interface.
func (p *Pokey) Read(addr uint16) uint8 {
	switch addr & 0x0f {
	case regRANDOM:
		if p.skctl&0x03 == 0 {
			return 0xff
		}
		idx := p.clock() - p.polyReset
		var r uint8
		for b := uint64(0); b < 8; b++ {
			if p.audctl&audctlPoly9 == audctlPoly9 {
				r |= poly9bit[(idx+b)%uint64(len(poly9bit))] << b
			} else {
				r |= poly17bit[(idx+b)%uint64(len(poly17bit))] << b
			}
		}
		return r
	case regIRQEN, regSKCTL:
		// IRQST and SKSTAT. no interrupts pending and no keys pressed
		return 0xff
	}
	return 0x00
}

// Write implements the device.Device interface.
func (p *Pokey) Write(addr uint16, data uint8) {
	if p.host != nil {
		p.render(p.host.CPUClock())
	}

	reg := addr & 0x0f
	switch {
	case reg < regAUDCTL:
		ch := &p.channels[reg>>1]
		if reg&1 == 0 {
			ch.audf = data
		} else {
			ch.audc = data
		}
		p.updatePeriods()
	case reg == regAUDCTL:
		p.audctl = data
		p.updatePeriods()
	case reg == regSTIMER:
		p.resetCounters()
	case reg == regIRQEN:
		p.irqen = data
	case reg == regSKCTL:
		p.skctl = data
		if data&0x03 == 0 {
			p.polyReset = p.clock()
		}
	}
}

// StartFrame should be called at the start of every frame.
func (p *Pokey) StartFrame() {
	if p.host == nil {
		return
	}
	clk := p.host.CPUClock()
	p.bufferIndex = len(p.host.SoundBuffer())
	p.render(clk)
	p.frameStart = clk
	p.lastClock = clk
	p.bufferIndex = 0
}

// EndFrame should be called at the end of every frame. The remainder of the
// sound buffer is rendered.
func (p *Pokey) EndFrame() {
	if p.host == nil {
		return
	}
	buf := p.host.SoundBuffer()
	p.render(p.host.CPUClock())
	p.render(p.frameStart + uint64(len(buf))*audio.ClocksPerSample)
}

// render advances the channels to the clock value, adding samples to the
// sound buffer at every sample boundary.
func (p *Pokey) render(to uint64) {
	if to <= p.lastClock {
		return
	}

	buf := p.host.SoundBuffer()
	running := p.skctl&0x03 != 0
	poly9 := p.audctl&audctlPoly9 == audctlPoly9

	for p.lastClock < to {
		boundary := p.frameStart + uint64(p.bufferIndex+1)*audio.ClocksPerSample
		end := to
		if p.bufferIndex < len(buf) && boundary < end {
			end = boundary
		}
		step := int(end - p.lastClock)

		if running {
			p.step(step, poly9)
		}
		p.lastClock = end

		if p.bufferIndex < len(buf) && p.lastClock == boundary {
			audio.AddSample(buf, p.bufferIndex, p.mix())
			p.bufferIndex++
		}
	}
}

// step all channels by the number of CPU cycles.
func (p *Pokey) step(cycles int, poly9 bool) {
	for i := range p.channels {
		ch := &p.channels[i]
		if ch.period == 0 {
			continue
		}
		ch.counter -= cycles
		for ch.counter <= 0 {
			t := p.lastClock + uint64(cycles+ch.counter) - p.polyReset
			ch.expire(t, poly9)
			ch.counter += ch.period

			// channel three clocks the high pass filter of channel one and
			// channel four clocks the filter of channel two
			if i == 2 {
				p.hipass[0] = p.channels[0].output
			} else if i == 3 {
				p.hipass[1] = p.channels[1].output
			}
		}
	}
}

func (p *Pokey) mix() uint8 {
	var v uint8
	for i := range p.channels {
		ch := &p.channels[i]
		vol := ch.volume()
		if i == 0 && p.audctl&audctlHiPass1 == audctlHiPass1 && ch.output == p.hipass[0] {
			vol = 0
		}
		if i == 1 && p.audctl&audctlHiPass2 == audctlHiPass2 && ch.output == p.hipass[1] {
			vol = 0
		}
		v += vol
	}
	return v << 1
}
