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
	"github.com/jetsetilly/gopher7800/curated"
)

// Event is a single input event.
type Event struct {
	Player int
	Input  MachineInput
	Down   bool
}

// PushEvent pushes an Event onto the queue. The event will be processed at
// the next capture. Will drop the event and return an error if queue is full.
//
// PushEvent is the only InputState function that is safe to call while a
// frame is being computed.
func (inp *InputState) PushEvent(ev Event) error {
	select {
	case inp.pushed <- ev:
	default:
		return curated.Errorf("input: pushed event queue is full: input dropped")
	}
	return nil
}

func (inp *InputState) handlePushed() {
	for {
		select {
		case ev := <-inp.pushed:
			inp.RaiseInput(ev.Player, ev.Input, ev.Down)
		default:
			return
		}
	}
}
