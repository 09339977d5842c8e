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

package hardware

import (
	"bytes"

	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/environment"
	"github.com/jetsetilly/gopher7800/hardware/audio"
	"github.com/jetsetilly/gopher7800/hardware/cpu"
	"github.com/jetsetilly/gopher7800/hardware/input"
	"github.com/jetsetilly/gopher7800/hardware/maria"
	"github.com/jetsetilly/gopher7800/hardware/memory/addressspace"
	"github.com/jetsetilly/gopher7800/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher7800/hardware/memory/device"
	"github.com/jetsetilly/gopher7800/hardware/pia"
	"github.com/jetsetilly/gopher7800/logger"
	"github.com/jetsetilly/gopher7800/savestate"
)

// the machine type name is the first thing in a savestate. the name
// decides the television standard of the deserialised machine.
var machineTypes = map[string]standard{
	"Machine7800NTSC": standardNTSC,
	"Machine7800PAL":  standardPAL,
}

// Serialize writes the machine to the savestate. Errors are reported by the
// Writer's Err() function.
func (m *Machine7800) Serialize(w *savestate.Writer) {
	w.WriteString(m.String())

	// fields common to all machines
	w.WriteVersion(1)
	w.WriteBool(m.halt)
	w.WriteInt32(int32(m.frameHZ))
	w.WriteInt32(int32(m.visiblePitch))
	w.WriteInt32(int32(m.scanlines))
	w.WriteInt32(int32(m.firstScanline))
	w.WriteInt32(int32(m.soundSampleFreq))
	w.WriteBool(m.nopRegisterDumping)
	m.Input.Serialize(w)

	// the 7800
	w.WriteVersion(1)
	m.Mem.Serialize(w)
	m.CPU.Serialize(w)
	m.Maria.Serialize(w)
	m.PIA.Serialize(w)
	m.RAM0.Serialize(w)
	m.RAM1.Serialize(w)
	w.WriteBool(m.BIOS != nil)
	if m.BIOS != nil {
		m.BIOS.Serialize(w)
	}
	m.Cart.Serialize(w)

	// the television standard
	w.WriteVersion(1)
}

// Deserialize creates a new machine from the savestate. Nothing is changed if
// an error is returned. The environment can be nil (see NewMachine7800NTSC()).
//
// Errors are curated errors matching the savestate.SerializationFormatError
// pattern.
func Deserialize(r *savestate.Reader, env *environment.Environment) (*Machine7800, error) {
	name := r.ReadString()
	if err := r.Err(); err != nil {
		return nil, err
	}

	std, ok := machineTypes[name]
	if !ok {
		return nil, r.Fail("unknown machine type: " + name)
	}

	// the random source of a supplied environment is plumbed in only once the
	// restore can no longer fail
	m := &Machine7800{
		pal: std.pal,
		env: env,
	}
	if env == nil {
		m.setEnvironment(nil)
	}

	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}
	m.halt = r.ReadBool()
	m.frameHZ = int(r.ReadInt32())
	m.visiblePitch = int(r.ReadInt32())
	m.scanlines = int(r.ReadInt32())
	m.firstScanline = int(r.ReadInt32())
	m.soundSampleFreq = int(r.ReadInt32())
	m.nopRegisterDumping = r.ReadBool()
	if err := r.Err(); err != nil {
		return nil, err
	}
	if m.scanlines != std.scanlines {
		return nil, r.Fail("scanline count does not match machine type")
	}
	if m.soundSampleFreq <= 0 {
		return nil, r.Fail("sound sample frequency must be positive")
	}

	var err error

	m.Input, err = input.Deserialize(r)
	if err != nil {
		return nil, err
	}

	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}

	m.Mem, err = addressspace.Deserialize(r, m.env, addrSpaceShift, pageShift)
	if err != nil {
		return nil, err
	}
	m.CPU, err = cpu.Deserialize(r, m.Mem)
	if err != nil {
		return nil, err
	}
	m.Maria, err = maria.Deserialize(r, m, m.Mem, m.CPU, m.Input)
	if err != nil {
		return nil, err
	}
	m.PIA, err = pia.Deserialize(r, m, m.Input)
	if err != nil {
		return nil, err
	}
	m.RAM0, err = device.DeserializeRAM6116(r)
	if err != nil {
		return nil, err
	}
	m.RAM1, err = device.DeserializeRAM6116(r)
	if err != nil {
		return nil, err
	}

	if r.ReadBool() {
		m.BIOS, err = device.DeserializeBios7800(r)
		if err != nil {
			return nil, err
		}
	}
	if err := r.Err(); err != nil {
		return nil, err
	}

	m.Cart, err = cartridge.Deserialize(r)
	if err != nil {
		return nil, err
	}

	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}

	if env != nil {
		env.Random.Plumb(m)
	}

	m.Cart.Attach(m)
	m.mapDevices()

	// the BIOS is visible until MARIA's INPTCTRL register says otherwise
	if m.Maria.BIOSVisible() {
		m.SwapInBIOS()
	}

	m.soundBuffer = make([]uint8, m.scanlines*audio.SamplesPerScanline)
	m.SetNOPRegisterDumping(m.nopRegisterDumping)

	logger.Logf(m.env, "machine", "restored %s with %s", m, m.Cart)

	return m, nil
}

// Snapshot returns the serialised state of the machine.
func (m *Machine7800) Snapshot() ([]byte, error) {
	var buf bytes.Buffer
	w := savestate.NewWriter(&buf)
	m.Serialize(w)
	if err := w.Err(); err != nil {
		return nil, curated.Errorf("hardware: snapshot: %v", err)
	}
	return buf.Bytes(), nil
}

// FromSnapshot creates a new machine from data returned by Snapshot().
func FromSnapshot(data []byte, env *environment.Environment) (*Machine7800, error) {
	return Deserialize(savestate.NewReader(bytes.NewReader(data)), env)
}
