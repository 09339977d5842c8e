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

package input

import (
	"github.com/jetsetilly/gopher7800/logger"
	"github.com/jetsetilly/gopher7800/savestate"
)

// indexes into the input state arrays.
const (
	leftControllerJackIndex    = 0
	rightControllerJackIndex   = 1
	consoleSwitchIndex         = 2
	controllerActionStateIndex = 3
	ohmsIndex                  = controllerActionStateIndex + 4
	lightgunPositionIndex      = controllerActionStateIndex + 4
	inputStateSize             = controllerActionStateIndex + 8 + 1
)

// gray codes for the four positions of the driving controller.
var rotGrayCodes = [4]uint8{0x0f, 0x0d, 0x0c, 0x0e}

// InputState is the double buffered state of all input to the console.
type InputState struct {
	rotState [2]int32
	next     [inputStateSize]int32
	current  [inputStateSize]int32

	pushed   chan Event
	playback EventPlayback
}

// NewInputState is the preferred method of initialisation for the InputState
// type.
func NewInputState() *InputState {
	return &InputState{
		pushed: make(chan Event, 64),
	}
}

// CaptureInputState processes any pending events and copies the next input
// state to the captured input state.
func (inp *InputState) CaptureInputState() {
	inp.handlePushed()
	if inp.playback != nil {
		if err := inp.playback.Playback(inp); err != nil {
			logger.Logf(logger.Allow, "input", "playback ended: %v", err)
			inp.playback = nil
		}
	}
	inp.current = inp.next
}

// LeftControllerJack returns the controller in the left jack.
func (inp *InputState) LeftControllerJack() Controller {
	return Controller(inp.next[leftControllerJackIndex])
}

// SetLeftControllerJack plugs a controller into the left jack.
func (inp *InputState) SetLeftControllerJack(c Controller) {
	inp.next[leftControllerJackIndex] = int32(c)
}

// RightControllerJack returns the controller in the right jack.
func (inp *InputState) RightControllerJack() Controller {
	return Controller(inp.next[rightControllerJackIndex])
}

// SetRightControllerJack plugs a controller into the right jack.
func (inp *InputState) SetRightControllerJack(c Controller) {
	inp.next[rightControllerJackIndex] = int32(c)
}

// IsConsoleSwitchSet returns the state of the switch in the next input state.
func (inp *InputState) IsConsoleSwitchSet(sw ConsoleSwitch) bool {
	return inp.next[consoleSwitchIndex]&(1<<sw) != 0
}

// RaiseInput translates the user input into the next input state.
func (inp *InputState) RaiseInput(player int, mi MachineInput, down bool) {
	switch mi {
	case Fire:
		inp.setControllerActionState(player, Trigger, down)
	case Fire2:
		inp.setControllerActionState(player, Trigger2, down)
	case InputLeft:
		inp.setControllerActionState(player, Left, down)
		if down {
			inp.setControllerActionState(player, Right, false)
		}
	case InputUp:
		inp.setControllerActionState(player, Up, down)
		if down {
			inp.setControllerActionState(player, Down, false)
		}
	case InputRight:
		inp.setControllerActionState(player, Right, down)
		if down {
			inp.setControllerActionState(player, Left, false)
		}
	case InputDown:
		inp.setControllerActionState(player, Down, down)
		if down {
			inp.setControllerActionState(player, Up, false)
		}
	case NumPad7:
		inp.setControllerActionState(player, Keypad7, down)
	case NumPad8:
		inp.setControllerActionState(player, Keypad8, down)
	case NumPad9:
		inp.setControllerActionState(player, Keypad9, down)
	case NumPad4:
		inp.setControllerActionState(player, Keypad4, down)
	case NumPad5:
		inp.setControllerActionState(player, Keypad5, down)
	case NumPad6:
		inp.setControllerActionState(player, Keypad6, down)
	case NumPad1:
		inp.setControllerActionState(player, Keypad1, down)
	case NumPad2:
		inp.setControllerActionState(player, Keypad2, down)
	case NumPad3:
		inp.setControllerActionState(player, Keypad3, down)
	case NumPadMult:
		inp.setControllerActionState(player, KeypadA, down)
	case NumPad0:
		inp.setControllerActionState(player, Keypad0, down)
	case NumPadHash:
		inp.setControllerActionState(player, KeypadP, down)
	case InputDriving0, InputDriving1, InputDriving2, InputDriving3:
		p := ControllerAction(mi-InputDriving0) + Driving0
		for a := Driving0; a <= Driving3; a++ {
			inp.setControllerActionState(player, a, a == p)
		}
	case Reset:
		inp.setConsoleSwitchState(GameReset, down)
	case Select:
		inp.setConsoleSwitchState(GameSelect, down)
	case Color:
		if down {
			inp.toggleConsoleSwitchState(GameBW)
		}
	case LeftDifficulty:
		if down {
			inp.toggleConsoleSwitchState(LeftDifficultyA)
		}
	case RightDifficulty:
		if down {
			inp.toggleConsoleSwitchState(RightDifficultyA)
		}
	case InputPause:
		inp.setConsoleSwitchState(Pause, down)
	}
}

// RaisePaddleInput sets the resistance of the paddle. Values outside the range
// 0 to 999999 are ignored.
func (inp *InputState) RaisePaddleInput(player int, ohms int) {
	if ohms >= 0 && ohms < 1000000 {
		inp.next[ohmsIndex+(player&3)] = int32(ohms)
	}
}

// RaiseLightgunPos sets the screen position the lightgun is pointing at.
func (inp *InputState) RaiseLightgunPos(player int, scanline int, hpos int) {
	i := lightgunPositionIndex + ((player & 1) << 1)
	inp.next[i] = int32(scanline)
	inp.next[i+1] = int32(hpos)
}

// ClearAllInput clears the console switches and the input from both jacks.
func (inp *InputState) ClearAllInput() {
	inp.next[consoleSwitchIndex] = 0
	inp.ClearLeftJackInput()
	inp.ClearRightJackInput()
}

// ClearInputByPlayer clears the input for one player.
func (inp *InputState) ClearInputByPlayer(player int) {
	inp.next[ohmsIndex+(player&3)] = 0
	inp.next[controllerActionStateIndex+(player&3)] = 0
	i := lightgunPositionIndex + ((player & 1) << 1)
	inp.next[i] = 0
	inp.next[i+1] = 0
}

// ClearLeftJackInput clears input from the left jack.
func (inp *InputState) ClearLeftJackInput() {
	inp.next[ohmsIndex] = 0
	inp.next[ohmsIndex+1] = 0
	inp.next[controllerActionStateIndex] = 0
	if inp.LeftControllerJack() == Paddles {
		inp.next[controllerActionStateIndex+1] = 0
	}
	inp.next[lightgunPositionIndex] = 0
	inp.next[lightgunPositionIndex+1] = 0
}

// ClearRightJackInput clears input from the right jack.
func (inp *InputState) ClearRightJackInput() {
	inp.next[ohmsIndex+2] = 0
	inp.next[ohmsIndex+3] = 0
	if inp.RightControllerJack() == Paddles {
		inp.next[controllerActionStateIndex+2] = 0
		inp.next[controllerActionStateIndex+3] = 0
	} else {
		inp.next[controllerActionStateIndex+1] = 0
	}
	inp.next[lightgunPositionIndex+2] = 0
	inp.next[lightgunPositionIndex+3] = 0
}

// SampleCapturedConsoleSwitchState returns the state of the console switch in
// the captured input state.
func (inp *InputState) SampleCapturedConsoleSwitchState(sw ConsoleSwitch) bool {
	return inp.current[consoleSwitchIndex]&(1<<sw) != 0
}

// SampleCapturedControllerActionState returns the state of the controller
// action in the captured input state.
func (inp *InputState) SampleCapturedControllerActionState(player int, action ControllerAction) bool {
	return inp.current[controllerActionStateIndex+(player&3)]&(1<<action) != 0
}

// SampleCapturedOhmState returns the resistance of the paddle in the captured
// input state.
func (inp *InputState) SampleCapturedOhmState(player int) int {
	return int(inp.current[ohmsIndex+(player&3)])
}

// SampleCapturedLightGunPosition returns the lightgun position in the captured
// input state.
func (inp *InputState) SampleCapturedLightGunPosition(player int) (scanline int, hpos int) {
	i := lightgunPositionIndex + ((player & 1) << 1)
	return int(inp.current[i]), int(inp.current[i+1])
}

// SampleCapturedDrivingState returns the gray code of the driving controller.
// The position is remembered when no direction is indicated.
func (inp *InputState) SampleCapturedDrivingState(player int) uint8 {
	p := player & 1
	switch {
	case inp.SampleCapturedControllerActionState(player, Driving0):
		inp.rotState[p] = 0
	case inp.SampleCapturedControllerActionState(player, Driving1):
		inp.rotState[p] = 1
	case inp.SampleCapturedControllerActionState(player, Driving2):
		inp.rotState[p] = 2
	case inp.SampleCapturedControllerActionState(player, Driving3):
		inp.rotState[p] = 3
	}
	return rotGrayCodes[inp.rotState[p]&3]
}

func (inp *InputState) setControllerActionState(player int, action ControllerAction, v bool) {
	i := controllerActionStateIndex + (player & 3)
	if v {
		inp.next[i] |= 1 << action
	} else {
		inp.next[i] &^= 1 << action
	}
}

func (inp *InputState) setConsoleSwitchState(sw ConsoleSwitch, v bool) {
	if v {
		inp.next[consoleSwitchIndex] |= 1 << sw
	} else {
		inp.next[consoleSwitchIndex] &^= 1 << sw
	}
}

func (inp *InputState) toggleConsoleSwitchState(sw ConsoleSwitch) {
	inp.setConsoleSwitchState(sw, !inp.IsConsoleSwitchSet(sw))
}

// Serialize implements the savestate.Serializer interface.
func (inp *InputState) Serialize(w *savestate.Writer) {
	w.WriteVersion(1)
	w.WriteIntegers(inp.rotState[:])
	w.WriteIntegers(inp.next[:])
	w.WriteIntegers(inp.current[:])
}

// Deserialize reads an InputState from the savestate.
func Deserialize(r *savestate.Reader) (*InputState, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}
	rot := r.ReadIntegers(2)
	next := r.ReadIntegers(inputStateSize)
	current := r.ReadIntegers(inputStateSize)
	if err := r.Err(); err != nil {
		return nil, err
	}

	inp := NewInputState()
	copy(inp.rotState[:], rot)
	copy(inp.next[:], next)
	copy(inp.current[:], current)
	return inp, nil
}
