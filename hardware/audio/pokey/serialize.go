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

package pokey

import (
	"github.com/jetsetilly/gopher7800/savestate"
)

// Serialize implements the savestate.Serializer interface.
func (p *Pokey) Serialize(w *savestate.Writer) {
	w.WriteVersion(1)

	regs := make([]uint8, 0, 8)
	counters := make([]int32, 0, 4)
	outputs := make([]bool, 0, 4)
	for _, ch := range p.channels {
		regs = append(regs, ch.audf, ch.audc)
		counters = append(counters, int32(ch.counter))
		outputs = append(outputs, ch.output)
	}
	w.WriteBytes(regs)
	w.WriteIntegers(counters)
	w.WriteBools(outputs)
	w.WriteBools(p.hipass[:])
	w.WriteUint8(p.audctl)
	w.WriteUint8(p.skctl)
	w.WriteUint8(p.irqen)
	w.WriteUint64(p.polyReset)
	w.WriteUint64(p.frameStart)
	w.WriteUint64(p.lastClock)
	w.WriteInt32(int32(p.bufferIndex))
}

// Deserialize reads a Pokey from the savestate. The new Pokey has no host and
// must be plumbed in before it will render any sound.
func Deserialize(r *savestate.Reader) (*Pokey, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}

	regs := r.ReadExpectedBytes(8)
	counters := r.ReadIntegers(4)
	outputs := r.ReadBools(4)
	hipass := r.ReadBools(2)
	audctl := r.ReadUint8()
	skctl := r.ReadUint8()
	irqen := r.ReadUint8()
	polyReset := r.ReadUint64()
	frameStart := r.ReadUint64()
	lastClock := r.ReadUint64()
	bufferIndex := r.ReadInt32()
	if err := r.Err(); err != nil {
		return nil, err
	}

	p := &Pokey{
		audctl:      audctl,
		skctl:       skctl,
		irqen:       irqen,
		polyReset:   polyReset,
		frameStart:  frameStart,
		lastClock:   lastClock,
		bufferIndex: int(bufferIndex),
	}
	for i := range p.channels {
		p.channels[i].audf = regs[i*2]
		p.channels[i].audc = regs[i*2+1]
		p.channels[i].output = outputs[i]
	}
	copy(p.hipass[:], hipass)
	p.updatePeriods()
	for i := range p.channels {
		p.channels[i].counter = int(counters[i])
	}
	return p, nil
}
