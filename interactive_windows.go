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

//go:build windows

package main

import (
	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/userinput"
)

type interactive struct {
	commands chan rune
}

func startInteractive(_ *userinput.Keyboard) (*interactive, error) {
	return nil, curated.Errorf("interactive mode is not available on this platform")
}

func (it *interactive) cleanUp() {}
