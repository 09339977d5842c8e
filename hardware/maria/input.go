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

import "github.com/jetsetilly/gopher7800/hardware/input"

// the number of ohms of paddle resistance that are charged in one scanline
const ohmsPerScanline = 3500

func (mar *Maria) readInput(addr uint16) uint8 {
	if mar.inp == nil {
		return 0x80
	}

	switch addr {
	case INPT4, INPT5:
		player := int(addr - INPT4)
		jack := mar.jack(player)
		switch jack {
		case input.Joystick, input.ProLineJoystick, input.BoosterGrip, input.Lightgun:
			if mar.inp.SampleCapturedControllerActionState(player, input.Trigger) ||
				mar.inp.SampleCapturedControllerActionState(player, input.Trigger2) {
				return 0x00
			}
		}
		return 0x80
	}

	// INPT0 to INPT3. two for each jack
	n := int(addr - INPT0)
	player := n >> 1

	switch mar.jack(player) {
	case input.Paddles:
		if mar.vblank&0x80 == 0x80 {
			return 0x00
		}
		charge := (mar.lines - mar.dumpLine) * ohmsPerScanline
		if charge >= mar.inp.SampleCapturedOhmState(n) {
			return 0x80
		}
		return 0x00

	case input.ProLineJoystick:
		action := input.Trigger2
		if n&0x01 == 0x01 {
			action = input.Trigger
		}
		if mar.inp.SampleCapturedControllerActionState(player, action) {
			return 0x80
		}

	case input.BoosterGrip:
		action := input.Trigger2
		if n&0x01 == 0x01 {
			action = input.Trigger
		}
		if !mar.inp.SampleCapturedControllerActionState(player, action) {
			return 0x80
		}
	}

	return 0x00
}

func (mar *Maria) jack(player int) input.Controller {
	if player == 0 {
		return mar.inp.LeftControllerJack()
	}
	return mar.inp.RightControllerJack()
}
