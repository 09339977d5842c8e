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

package maria

import (
	"github.com/jetsetilly/gopher7800/hardware/audio/tiasound"
	"github.com/jetsetilly/gopher7800/hardware/cpu"
	"github.com/jetsetilly/gopher7800/hardware/input"
	"github.com/jetsetilly/gopher7800/hardware/memory/addressspace"
	"github.com/jetsetilly/gopher7800/savestate"
)

// Serialize implements the savestate.Serializer interface.
func (mar *Maria) Serialize(w *savestate.Writer) {
	w.WriteVersion(1)
	w.WriteInt32(int32(mar.scanlines))
	w.WriteInt32(int32(mar.firstScanline))
	w.WriteBytes(mar.registers[:])
	w.WriteUint8(mar.inptctrl)
	w.WriteBool(mar.locked)
	w.WriteUint8(mar.vblank)
	w.WriteInt32(int32(mar.dumpLine))
	w.WriteInt32(int32(mar.scanline))
	w.WriteInt32(int32(mar.lines))
	w.WriteBool(mar.dmaEnabled)
	w.WriteBool(mar.dmaInProgress)
	w.WriteUint16(mar.dll)
	w.WriteUint16(mar.dl)
	w.WriteInt32(int32(mar.offset))
	w.WriteBool(mar.dli)
	w.WriteBool(mar.holey16)
	w.WriteBool(mar.holey8)
	mar.Sound.Serialize(w)
}

// Deserialize reads Maria from the savestate.
func Deserialize(r *savestate.Reader, host Host, mem *addressspace.AddressSpace, mc *cpu.CPU, inp *input.InputState) (*Maria, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}

	mar := &Maria{
		host: host,
		mem:  mem,
		mc:   mc,
		inp:  inp,
	}

	mar.scanlines = int(r.ReadInt32())
	mar.firstScanline = int(r.ReadInt32())
	copy(mar.registers[:], r.ReadExpectedBytes(len(mar.registers)))
	mar.inptctrl = r.ReadUint8()
	mar.locked = r.ReadBool()
	mar.vblank = r.ReadUint8()
	mar.dumpLine = int(r.ReadInt32())
	mar.scanline = int(r.ReadInt32())
	mar.lines = int(r.ReadInt32())
	mar.dmaEnabled = r.ReadBool()
	mar.dmaInProgress = r.ReadBool()
	mar.dll = r.ReadUint16()
	mar.dl = r.ReadUint16()
	mar.offset = int(r.ReadInt32())
	mar.dli = r.ReadBool()
	mar.holey16 = r.ReadBool()
	mar.holey8 = r.ReadBool()
	if err := r.Err(); err != nil {
		return nil, err
	}

	var err error
	mar.Sound, err = tiasound.Deserialize(r)
	if err != nil {
		return nil, err
	}
	mar.Sound.Plumb(host)

	return mar, nil
}
