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

package pia

import (
	"fmt"

	"github.com/jetsetilly/gopher7800/hardware/input"
)

// Host is the part of the machine that the PIA needs.
type Host interface {
	CPUClock() uint64
}

// Register addresses (in the I/O half of the chip).
const (
	SWCHA  = 0x00
	SWACNT = 0x01
	SWCHB  = 0x02
	SWBCNT = 0x03
	INTIM  = 0x04
	TIMINT = 0x05
)

const ramSize = 0x80

// PIA is the 6532 RIOT.
type PIA struct {
	host Host
	inp  *input.InputState

	RAM []uint8

	// data direction registers and the values written to the ports
	ddra uint8
	ddrb uint8
	outa uint8
	outb uint8

	timer timer
}

// NewPIA is the preferred method of initialisation for the PIA type.
func NewPIA(host Host, inp *input.InputState) *PIA {
	pia := &PIA{
		host: host,
		inp:  inp,
		RAM:  make([]uint8, ramSize),
	}
	pia.Reset()
	return pia
}

// Plumb new references into the PIA.
func (pia *PIA) Plumb(host Host, inp *input.InputState) {
	pia.host = host
	pia.inp = inp
}

// Snapshot creates a copy of the PIA in its current state.
func (pia *PIA) Snapshot() *PIA {
	n := *pia
	n.RAM = make([]uint8, len(pia.RAM))
	copy(n.RAM, pia.RAM)
	return &n
}

func (pia *PIA) String() string {
	return fmt.Sprintf("ddra=%#02x ddrb=%#02x outa=%#02x outb=%#02x %s", pia.ddra, pia.ddrb, pia.outa, pia.outb, pia.timer)
}

func (pia *PIA) clock() uint64 {
	if pia.host == nil {
		return 0
	}
	return pia.host.CPUClock()
}

// Reset implements the device.Device interface. RAM is not changed.
func (pia *PIA) Reset() {
	pia.ddra = 0
	pia.ddrb = 0
	pia.outa = 0
	pia.outb = 0

	// the timer starts with the longest interval
	pia.timer.set(0x17, 0x00, pia.clock())
	pia.timer.irqEnabled = false
}

// Read implements the device.Device interface. The RAM is selected when bit
// 9 of the address is clear.
func (pia *PIA) Read(addr uint16) uint8 {
	if addr&0x0200 == 0 {
		return pia.RAM[addr&(ramSize-1)]
	}

	switch addr & 0x07 {
	case SWCHA:
		return pia.outa&pia.ddra | pia.portA()&^pia.ddra
	case SWACNT:
		return pia.ddra
	case SWCHB:
		return pia.outb&pia.ddrb | pia.portB()&^pia.ddrb
	case SWBCNT:
		return pia.ddrb
	case INTIM, INTIM | 0x02:
		return pia.timer.intim(pia.clock())
	}

	// TIMINT. the PA7 edge detect flag is not emulated
	if pia.timer.expired(pia.clock()) {
		return 0x80
	}
	return 0x00
}

// Write implements the device.Device interface.
func (pia *PIA) Write(addr uint16, data uint8) {
	if addr&0x0200 == 0 {
		pia.RAM[addr&(ramSize-1)] = data
		return
	}

	if addr&0x14 == 0x14 {
		pia.timer.set(addr, data, pia.clock())
		return
	}

	switch addr & 0x07 {
	case SWCHA:
		pia.outa = data
	case SWACNT:
		pia.ddra = data
	case SWCHB:
		pia.outb = data
	case SWBCNT:
		pia.ddrb = data
	}
}

// portA returns the joystick directions. player 0 uses the high nibble and
// player 1 the low nibble. a pressed direction pulls the bit low.
func (pia *PIA) portA() uint8 {
	if pia.inp == nil {
		return 0xff
	}

	v := uint8(0xff)
	for player := 0; player < 2; player++ {
		shift := uint(4 - player*4)

		jack := pia.inp.LeftControllerJack()
		if player == 1 {
			jack = pia.inp.RightControllerJack()
		}

		switch jack {
		case input.Joystick, input.ProLineJoystick, input.BoosterGrip:
			var n uint8
			if pia.inp.SampleCapturedControllerActionState(player, input.Up) {
				n |= 0x01
			}
			if pia.inp.SampleCapturedControllerActionState(player, input.Down) {
				n |= 0x02
			}
			if pia.inp.SampleCapturedControllerActionState(player, input.Left) {
				n |= 0x04
			}
			if pia.inp.SampleCapturedControllerActionState(player, input.Right) {
				n |= 0x08
			}
			v &^= n << shift

		case input.Driving:
			gray := pia.inp.SampleCapturedDrivingState(player) & 0x03
			v = v&^(0x03<<shift) | gray<<shift

		case input.Paddles:
			// paddle fire buttons. paddle 0 uses bit 7, paddle 1 bit 6
			if pia.inp.SampleCapturedControllerActionState(player*2, input.Trigger) {
				v &^= 0x80 >> (player * 4)
			}
			if pia.inp.SampleCapturedControllerActionState(player*2+1, input.Trigger) {
				v &^= 0x40 >> (player * 4)
			}
		}
	}

	return v
}

// portB returns the console switches.
func (pia *PIA) portB() uint8 {
	if pia.inp == nil {
		return 0xff
	}

	v := uint8(0x3f)
	if pia.inp.SampleCapturedConsoleSwitchState(input.GameReset) {
		v &^= 0x01
	}
	if pia.inp.SampleCapturedConsoleSwitchState(input.GameSelect) {
		v &^= 0x02
	}
	if pia.inp.SampleCapturedConsoleSwitchState(input.Pause) {
		v &^= 0x08
	}
	if pia.inp.SampleCapturedConsoleSwitchState(input.LeftDifficultyA) {
		v |= 0x40
	}
	if pia.inp.SampleCapturedConsoleSwitchState(input.RightDifficultyA) {
		v |= 0x80
	}
	return v
}
