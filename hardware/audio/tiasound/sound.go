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

package tiasound

import (
	"strings"

	"github.com/jetsetilly/gopher7800/hardware/audio"
)

// TIA audio register addresses.
const (
	AUDC0 = 0x15
	AUDC1 = 0x16
	AUDF0 = 0x17
	AUDF1 = 0x18
	AUDV0 = 0x19
	AUDV1 = 0x1a
)

// the 30KHz reference clock is the CPU clock divided by 38
const clocksPerTick = 38

// Sound is the implementation of the TIA audio sub-system.
type Sound struct {
	host audio.Host

	channels [2]channel

	// cycles since the last 30KHz tick and the number of ticks modulo three
	tickCt int
	clock3 int

	frameStart uint64
	lastClock  uint64

	bufferIndex int
}

// NewSound is the preferred method of initialisation for the Sound type.
func NewSound(host audio.Host) *Sound {
	s := &Sound{}
	s.Plumb(host)
	return s
}

// Plumb a new host into the sound chip.
func (s *Sound) Plumb(host audio.Host) {
	s.host = host
	if host != nil && s.lastClock == 0 {
		s.lastClock = host.CPUClock()
		s.frameStart = s.lastClock
	}
}

// Snapshot creates a copy of the TIA sound in its current state.
func (s *Sound) Snapshot() *Sound {
	n := *s
	return &n
}

func (s *Sound) String() string {
	b := strings.Builder{}
	b.WriteString("ch0: ")
	b.WriteString(s.channels[0].String())
	b.WriteString("  ch1: ")
	b.WriteString(s.channels[1].String())
	return b.String()
}

// Reset silences both channels.
func (s *Sound) Reset() {
	s.channels = [2]channel{}
	s.tickCt = 0
	s.clock3 = 0
}

// Write a value to one of the TIA audio registers. Returns false if the
// address is not an audio register.
func (s *Sound) Write(addr uint16, data uint8) bool {
	if addr < AUDC0 || addr > AUDV1 {
		return false
	}

	if s.host != nil {
		s.render(s.host.CPUClock())
	}

	switch addr {
	case AUDC0:
		s.channels[0].registers.Control = data & 0x0f
	case AUDC1:
		s.channels[1].registers.Control = data & 0x0f
	case AUDF0:
		s.channels[0].registers.Freq = data & 0x1f
	case AUDF1:
		s.channels[1].registers.Freq = data & 0x1f
	case AUDV0:
		s.channels[0].registers.Volume = data & 0x0f
	case AUDV1:
		s.channels[1].registers.Volume = data & 0x0f
	}

	s.channels[0].reactAUDCx()
	s.channels[1].reactAUDCx()

	return true
}

// Registers returns the register values of the channel.
func (s *Sound) Registers(channel int) Registers {
	return s.channels[channel&0x01].registers
}

// StartFrame should be called at the start of every frame.
func (s *Sound) StartFrame() {
	if s.host == nil {
		return
	}
	clk := s.host.CPUClock()
	s.bufferIndex = len(s.host.SoundBuffer())
	s.render(clk)
	s.frameStart = clk
	s.lastClock = clk
	s.bufferIndex = 0
}

// EndFrame should be called at the end of every frame.
func (s *Sound) EndFrame() {
	if s.host == nil {
		return
	}
	buf := s.host.SoundBuffer()
	s.render(s.host.CPUClock())
	s.render(s.frameStart + uint64(len(buf))*audio.ClocksPerSample)
}

func (s *Sound) render(to uint64) {
	if to <= s.lastClock {
		return
	}

	buf := s.host.SoundBuffer()

	for s.lastClock < to {
		end := to
		if tick := s.lastClock + uint64(clocksPerTick-s.tickCt); tick < end {
			end = tick
		}
		boundary := s.frameStart + uint64(s.bufferIndex+1)*audio.ClocksPerSample
		if s.bufferIndex < len(buf) && boundary < end {
			end = boundary
		}

		s.tickCt += int(end - s.lastClock)
		s.lastClock = end

		if s.tickCt >= clocksPerTick {
			s.tickCt = 0
			s.clock3++
			if s.clock3 >= 3 {
				s.clock3 = 0
			}
			s.channels[0].tick(s.clock3 == 0)
			s.channels[1].tick(s.clock3 == 0)
		}

		if s.bufferIndex < len(buf) && s.lastClock == boundary {
			audio.AddSample(buf, s.bufferIndex, s.mix())
			s.bufferIndex++
		}
	}
}

func (s *Sound) mix() uint8 {
	return volumeMix[s.channels[1].actualVol<<4|s.channels[0].actualVol]
}
