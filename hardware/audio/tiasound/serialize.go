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

package tiasound

import (
	"github.com/jetsetilly/gopher7800/savestate"
)

// Serialize implements the savestate.Serializer interface.
func (s *Sound) Serialize(w *savestate.Writer) {
	w.WriteVersion(1)
	for i := range s.channels {
		ch := &s.channels[i]
		w.WriteUint8(ch.registers.Control)
		w.WriteUint8(ch.registers.Freq)
		w.WriteUint8(ch.registers.Volume)
		w.WriteInt32(int32(ch.poly4ct))
		w.WriteInt32(int32(ch.poly5ct))
		w.WriteInt32(int32(ch.poly9ct))
		w.WriteUint8(ch.div3ct)
		w.WriteUint8(ch.freqCt)
		w.WriteBool(ch.useTenKhz)
		w.WriteUint8(ch.actualVol)
	}
	w.WriteInt32(int32(s.tickCt))
	w.WriteInt32(int32(s.clock3))
	w.WriteUint64(s.frameStart)
	w.WriteUint64(s.lastClock)
	w.WriteInt32(int32(s.bufferIndex))
}

// Deserialize reads the TIA sound from the savestate. The returned Sound has
// no host. Use Plumb() to attach it.
func Deserialize(r *savestate.Reader) (*Sound, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}

	s := &Sound{}
	for i := range s.channels {
		ch := &s.channels[i]
		ch.registers.Control = r.ReadUint8() & 0x0f
		ch.registers.Freq = r.ReadUint8() & 0x1f
		ch.registers.Volume = r.ReadUint8() & 0x0f
		ch.poly4ct = int(r.ReadInt32())
		ch.poly5ct = int(r.ReadInt32())
		ch.poly9ct = int(r.ReadInt32())
		ch.div3ct = r.ReadUint8()
		ch.freqCt = r.ReadUint8()
		ch.useTenKhz = r.ReadBool()
		ch.actualVol = r.ReadUint8() & 0x0f

		if ch.poly4ct < 0 || ch.poly4ct >= len(poly4bit) ||
			ch.poly5ct < 0 || ch.poly5ct >= len(poly5bit) ||
			ch.poly9ct < 0 || ch.poly9ct >= len(poly9bit) {
			return nil, r.Fail("tiasound: polynomial counter out of range")
		}
	}
	s.tickCt = int(r.ReadInt32())
	s.clock3 = int(r.ReadInt32())
	s.frameStart = r.ReadUint64()
	s.lastClock = r.ReadUint64()
	s.bufferIndex = int(r.ReadInt32())

	if err := r.Err(); err != nil {
		return nil, err
	}
	return s, nil
}
