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

// EventPlayback implementations are consulted once per frame, before the
// input state is captured. The implementation raises whatever input it wants
// with the InputState functions.
//
// If Playback() returns an error the playback is detached.
type EventPlayback interface {
	Playback(inp *InputState) error
}

// AttachPlayback attaches an EventPlayback implementation. A nil value
// removes any existing playback.
func (inp *InputState) AttachPlayback(pb EventPlayback) {
	inp.playback = pb
}

// TransferPlayback moves the pushed event queue and the playback to another
// InputState. Used when a machine is replaced by a restored one.
func (inp *InputState) TransferPlayback(to *InputState) {
	to.pushed = inp.pushed
	to.playback = inp.playback
}

// NextState returns a copy of the next input state. Used to record input.
func (inp *InputState) NextState() []int32 {
	s := make([]int32, len(inp.next))
	copy(s, inp.next[:])
	return s
}

// SetNextState changes a single value of the next input state. Used to replay
// recorded input. Out of range indexes are ignored.
func (inp *InputState) SetNextState(idx int, v int32) {
	if idx < 0 || idx >= len(inp.next) {
		return
	}
	inp.next[idx] = v
}
