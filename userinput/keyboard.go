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

package userinput

import (
	"sync"

	"github.com/jetsetilly/gopher7800/easyterm"
	"github.com/jetsetilly/gopher7800/hardware/input"
)

// HoldFrames is the number of frames an input stays down after a key press.
// It is longer than the key repeat delay of most terminals.
const HoldFrames = 15

type binding struct {
	player int
	input  input.MachineInput
}

// the default key bindings. the left joystick is on the cursor keys and the
// right joystick is on WASD
var bindings = map[rune]binding{
	easyterm.KeyUp:    {0, input.InputUp},
	easyterm.KeyDown:  {0, input.InputDown},
	easyterm.KeyLeft:  {0, input.InputLeft},
	easyterm.KeyRight: {0, input.InputRight},
	' ':               {0, input.Fire},
	'z':               {0, input.Fire},
	'x':               {0, input.Fire2},
	'w':               {1, input.InputUp},
	's':               {1, input.InputDown},
	'a':               {1, input.InputLeft},
	'd':               {1, input.InputRight},
	'f':               {1, input.Fire},
	'g':               {1, input.Fire2},

	// console switches
	'1': {0, input.Reset},
	'2': {0, input.Select},
	'3': {0, input.InputPause},
	'4': {0, input.LeftDifficulty},
	'5': {0, input.RightDifficulty},
	'6': {0, input.Color},
}

// toggled inputs change state on every key press and are never released
var toggles = map[input.MachineInput]bool{
	input.LeftDifficulty:  true,
	input.RightDifficulty: true,
	input.Color:           true,
}

// Keyboard converts key presses into held input.
type Keyboard struct {
	crit    sync.Mutex
	pending []binding

	// the number of frames remaining for each held input
	held map[binding]int
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		held: make(map[binding]int),
	}
}

// KeyPress notes that the key has been pressed. Returns false if the key has
// no binding.
func (kb *Keyboard) KeyPress(key rune) bool {
	if key >= 'A' && key <= 'Z' {
		key += 'a' - 'A'
	}

	b, ok := bindings[key]
	if !ok {
		return false
	}

	kb.crit.Lock()
	defer kb.crit.Unlock()
	kb.pending = append(kb.pending, b)

	return true
}

// Playback implements the input.EventPlayback interface.
func (kb *Keyboard) Playback(inp *input.InputState) error {
	kb.crit.Lock()
	pending := kb.pending
	kb.pending = nil
	kb.crit.Unlock()

	for _, b := range pending {
		if toggles[b.input] {
			inp.RaiseInput(b.player, b.input, true)
			continue
		}
		if _, ok := kb.held[b]; !ok {
			inp.RaiseInput(b.player, b.input, true)
		}
		kb.held[b] = HoldFrames
	}

	for b, n := range kb.held {
		n--
		if n <= 0 {
			inp.RaiseInput(b.player, b.input, false)
			delete(kb.held, b)
			continue
		}
		kb.held[b] = n
	}

	return nil
}

// Held returns true if the input for the player is currently held down by
// the keyboard.
func (kb *Keyboard) Held(player int, mi input.MachineInput) bool {
	_, ok := kb.held[binding{player: player, input: mi}]
	return ok
}
