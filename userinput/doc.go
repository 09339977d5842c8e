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

// Package userinput translates key presses from the terminal into input
// events for the emulated 7800.
//
// A terminal does not report key releases so every key press holds the input
// down for a fixed number of frames. Holding a key down on the keyboard
// causes the terminal to repeat the key press, which renews the hold.
//
// The Keyboard type implements the input.EventPlayback interface and should
// be attached to the machine's InputState with AttachPlayback(). Key presses
// can be sent to the Keyboard from any goroutine.
package userinput
