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

package ym2151

import (
	"github.com/jetsetilly/gopher7800/savestate"
)

// Serialize implements the savestate.Serializer interface.
func (ym *YM2151) Serialize(w *savestate.Writer) {
	w.WriteVersion(1)

	phase := make([]uint32, len(ym.operators))
	tl := make([]uint32, len(ym.operators))
	volume := make([]int32, len(ym.operators))
	key := make([]bool, len(ym.operators))
	state := make([]uint8, len(ym.operators))
	for i, o := range ym.operators {
		phase[i] = o.phase
		tl[i] = o.tl
		volume[i] = o.volume
		key[i] = o.key
		state[i] = o.state
	}
	w.WriteUint32s(phase)
	w.WriteUint32s(tl)
	w.WriteIntegers(volume)
	w.WriteBools(key)
	w.WriteBytes(state)

	w.WriteUint8(ym.lastReg)
	w.WriteUint8(ym.test)
	w.WriteUint8(ym.ct)
	w.WriteUint8(ym.noise)
	w.WriteUint8(ym.lfoPhase)
	w.WriteUint32(ym.lfoOverflow)
	w.WriteUint32(ym.lfoCounterAdd)
	w.WriteUint8(ym.lfoWaveform)
	w.WriteUint8(ym.amd)
	w.WriteUint8(uint8(ym.pmd))
	w.WriteUint8(ym.irqEnable)
	w.WriteUint8(ym.csmReq)
	w.WriteUint8(ym.status)
	w.WriteUint8(ym.irqLine)
	w.WriteUint32(ym.timerAIndex)
	w.WriteUint32(ym.timerBIndex)
	w.WriteUint64(ym.timerA)
	w.WriteUint64(ym.timerB)
}

// Deserialize reads a YM2151 from the savestate. The new chip has no host and
// must be plumbed in.
func Deserialize(r *savestate.Reader) (*YM2151, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}

	n := 0x20
	phase := r.ReadUint32s(n)
	tl := r.ReadUint32s(n)
	volume := r.ReadIntegers(n)
	key := r.ReadBools(n)
	state := r.ReadExpectedBytes(n)

	ym := &YM2151{}
	ym.lastReg = r.ReadUint8()
	ym.test = r.ReadUint8()
	ym.ct = r.ReadUint8()
	ym.noise = r.ReadUint8()
	ym.lfoPhase = r.ReadUint8()
	ym.lfoOverflow = r.ReadUint32()
	ym.lfoCounterAdd = r.ReadUint32()
	ym.lfoWaveform = r.ReadUint8()
	ym.amd = r.ReadUint8()
	ym.pmd = int8(r.ReadUint8())
	ym.irqEnable = r.ReadUint8()
	ym.csmReq = r.ReadUint8()
	ym.status = r.ReadUint8()
	ym.irqLine = r.ReadUint8()
	ym.timerAIndex = r.ReadUint32() & 0x3ff
	ym.timerBIndex = r.ReadUint32() & 0xff
	ym.timerA = r.ReadUint64()
	ym.timerB = r.ReadUint64()
	if err := r.Err(); err != nil {
		return nil, err
	}

	for i := range ym.operators {
		ym.operators[i] = operator{
			phase:  phase[i],
			tl:     tl[i],
			volume: volume[i],
			key:    key[i],
			state:  state[i],
		}
	}
	ym.noiseF = noiseTable[ym.noise&0x1f]
	return ym, nil
}
