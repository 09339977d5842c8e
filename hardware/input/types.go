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
	"strings"
)

// Controller is the type of peripheral plugged into a controller jack.
type Controller int

// List of valid Controller values.
const (
	ControllerNone Controller = iota
	Joystick
	Paddles
	Keypad
	Driving
	BoosterGrip
	ProLineJoystick
	Lightgun
)

var controllerNames = []string{
	"None", "Joystick", "Paddles", "Keypad", "Driving", "BoosterGrip", "ProLineJoystick", "Lightgun",
}

func (c Controller) String() string {
	if c < 0 || int(c) >= len(controllerNames) {
		return "None"
	}
	return controllerNames[c]
}

// ParseController returns the Controller named by the string. The comparison
// is case insensitive. Unrecognised names return ControllerNone.
func ParseController(s string) Controller {
	for i, n := range controllerNames {
		if strings.EqualFold(n, s) {
			return Controller(i)
		}
	}
	return ControllerNone
}

// ConsoleSwitch identifies one of the switches on the console.
type ConsoleSwitch int

// List of valid ConsoleSwitch values.
const (
	GameReset ConsoleSwitch = iota
	GameSelect
	GameBW
	LeftDifficultyA
	RightDifficultyA
	Pause
)

// ControllerAction is a single binary signal from a controller.
type ControllerAction int

// List of valid ControllerAction values.
const (
	Up ControllerAction = iota
	Down
	Left
	Right
	Trigger
	Trigger2
	Keypad1
	Keypad2
	Keypad3
	Keypad4
	Keypad5
	Keypad6
	Keypad7
	Keypad8
	Keypad9
	KeypadA
	Keypad0
	KeypadP
	Driving0
	Driving1
	Driving2
	Driving3
)

// MachineInput is an input event from the user, before it has been
// translated into a controller action or console switch state.
type MachineInput int

// List of valid MachineInput values.
const (
	InputNone MachineInput = iota
	Fire
	Fire2
	InputLeft
	InputRight
	InputUp
	InputDown
	NumPad7
	NumPad8
	NumPad9
	NumPad4
	NumPad5
	NumPad6
	NumPad1
	NumPad2
	NumPad3
	NumPadMult
	NumPad0
	NumPadHash
	InputDriving0
	InputDriving1
	InputDriving2
	InputDriving3
	Reset
	Select
	Color
	LeftDifficulty
	RightDifficulty
	InputPause
)

var machineInputNames = map[string]MachineInput{
	"fire":            Fire,
	"fire2":           Fire2,
	"left":            InputLeft,
	"right":           InputRight,
	"up":              InputUp,
	"down":            InputDown,
	"reset":           Reset,
	"select":          Select,
	"color":           Color,
	"colour":          Color,
	"leftdifficulty":  LeftDifficulty,
	"rightdifficulty": RightDifficulty,
	"pause":           InputPause,
}

// ParseMachineInput returns the MachineInput named by the string. Only the
// joystick and console switch inputs have names. Returns InputNone if the
// string is not recognised.
func ParseMachineInput(s string) MachineInput {
	if mi, ok := machineInputNames[strings.ToLower(s)]; ok {
		return mi
	}
	return InputNone
}
