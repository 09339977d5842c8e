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

package cpu

import (
	"github.com/jetsetilly/gopher7800/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher7800/hardware/cpu/registers"
	"github.com/jetsetilly/gopher7800/savestate"
)

// Serialize implements the savestate.Serializer interface.
func (mc *CPU) Serialize(w *savestate.Writer) {
	w.WriteVersion(1)
	w.WriteUint64(mc.Clock)
	w.WriteInt32(int32(mc.RunClocks))
	w.WriteInt32(int32(mc.RunClocksMultiple))
	w.WriteBool(mc.EmulatorPreemptRequest)
	w.WriteBool(mc.Jammed)
	w.WriteBool(mc.IRQInterruptRequest)
	w.WriteBool(mc.NMIInterruptRequest)
	w.WriteUint16(mc.PC)
	w.WriteUint8(mc.A.Value())
	w.WriteUint8(mc.X.Value())
	w.WriteUint8(mc.Y.Value())
	w.WriteUint8(mc.SP.Value())
	w.WriteUint8(mc.Status.ToUint8())
}

// Deserialize reads a CPU from the savestate. The CPU will use mem for all
// memory access.
func Deserialize(r *savestate.Reader, mem Memory) (*CPU, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}

	mc := &CPU{
		mem:          mem,
		instructions: instructions.GetDefinitions(),
	}

	mc.Clock = r.ReadUint64()
	mc.RunClocks = int(r.ReadInt32())
	mc.RunClocksMultiple = int(r.ReadInt32())
	mc.EmulatorPreemptRequest = r.ReadBool()
	mc.Jammed = r.ReadBool()
	mc.IRQInterruptRequest = r.ReadBool()
	mc.NMIInterruptRequest = r.ReadBool()
	mc.PC = r.ReadUint16()
	mc.A = registers.NewRegister(r.ReadUint8())
	mc.X = registers.NewRegister(r.ReadUint8())
	mc.Y = registers.NewRegister(r.ReadUint8())
	mc.SP = registers.NewRegister(r.ReadUint8())
	mc.Status.FromUint8(r.ReadUint8())

	if err := r.Err(); err != nil {
		return nil, err
	}
	if mc.RunClocksMultiple <= 0 {
		return nil, r.Fail("cpu: run clocks multiple must be positive")
	}

	return mc, nil
}
