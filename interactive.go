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

//go:build !windows

package main

import (
	"os"

	"github.com/jetsetilly/gopher7800/easyterm"
	"github.com/jetsetilly/gopher7800/userinput"
)

// interactive reads key presses from the terminal. Keys bound to machine
// input are sent to the keyboard and every other key is sent to the commands
// channel.
type interactive struct {
	term     easyterm.Terminal
	commands chan rune
}

func startInteractive(kb *userinput.Keyboard) (*interactive, error) {
	it := &interactive{
		commands: make(chan rune, 16),
	}

	if err := it.term.Initialise(os.Stdin, os.Stdout); err != nil {
		return nil, err
	}
	it.term.CBreakMode()

	go func() {
		for {
			r, err := it.term.ReadKey()
			if err != nil {
				return
			}
			if r == easyterm.KeySuspend {
				easyterm.SuspendProcess()
				continue
			}
			if kb.KeyPress(r) {
				continue
			}
			select {
			case it.commands <- r:
			default:
			}
		}
	}()

	return it, nil
}

func (it *interactive) cleanUp() {
	it.term.CleanUp()
}
