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
	"github.com/jetsetilly/gopher7800/hardware/input"
	"github.com/jetsetilly/gopher7800/savestate"
)

// Serialize implements the savestate.Serializer interface.
func (pia *PIA) Serialize(w *savestate.Writer) {
	w.WriteVersion(1)
	w.WriteBytes(pia.RAM)
	w.WriteUint8(pia.ddra)
	w.WriteUint8(pia.ddrb)
	w.WriteUint8(pia.outa)
	w.WriteUint8(pia.outb)
	w.WriteUint8(pia.timer.value)
	w.WriteUint64(pia.timer.start)
	w.WriteUint8(uint8(pia.timer.shift))
	w.WriteBool(pia.timer.irqEnabled)
}

// Deserialize reads the PIA from the savestate.
func Deserialize(r *savestate.Reader, host Host, inp *input.InputState) (*PIA, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}

	pia := &PIA{
		host: host,
		inp:  inp,
	}
	pia.RAM = r.ReadExpectedBytes(ramSize)
	pia.ddra = r.ReadUint8()
	pia.ddrb = r.ReadUint8()
	pia.outa = r.ReadUint8()
	pia.outb = r.ReadUint8()
	pia.timer.value = r.ReadUint8()
	pia.timer.start = r.ReadUint64()
	pia.timer.shift = uint(r.ReadUint8())
	pia.timer.irqEnabled = r.ReadBool()

	if err := r.Err(); err != nil {
		return nil, err
	}

	switch pia.timer.shift {
	case 0, 3, 6, 10:
	default:
		return nil, r.Fail("pia: invalid timer interval")
	}

	return pia, nil
}
