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

import "strings"

// MachineType identifies the console and television standard to emulate.
type MachineType int

// List of valid MachineType values. The 2600 types are recognised but can not
// be created.
const (
	Unknown MachineType = iota
	A2600NTSC
	A2600PAL
	A7800NTSC
	A7800NTSCbios
	A7800NTSChsc
	A7800NTSCxm
	A7800PAL
	A7800PALbios
	A7800PALhsc
	A7800PALxm
	numMachineTypes
)

var machineTypeNames = []string{
	"Unknown", "A2600NTSC", "A2600PAL", "A7800NTSC", "A7800NTSCbios",
	"A7800NTSChsc", "A7800NTSCxm", "A7800PAL", "A7800PALbios", "A7800PALhsc",
	"A7800PALxm",
}

func (mt MachineType) String() string {
	if mt < 0 || mt >= numMachineTypes {
		return "Unknown"
	}
	return machineTypeNames[mt]
}

// ParseMachineType returns the MachineType for the name. The comparison is
// case insensitive. Returns Unknown if the name is not recognised.
func ParseMachineType(s string) MachineType {
	for i, n := range machineTypeNames {
		if strings.EqualFold(n, s) {
			return MachineType(i)
		}
	}
	return Unknown
}

// MachineTypes returns all known machine types, excluding Unknown.
func MachineTypes() []MachineType {
	l := make([]MachineType, 0, numMachineTypes-1)
	for mt := A2600NTSC; mt < numMachineTypes; mt++ {
		l = append(l, mt)
	}
	return l
}

// Is2600 returns true if the machine type is a 2600 console.
func (mt MachineType) Is2600() bool {
	return mt == A2600NTSC || mt == A2600PAL
}

// Is7800 returns true if the machine type is a 7800 console.
func (mt MachineType) Is7800() bool {
	return mt >= A7800NTSC && mt <= A7800PALxm
}

// IsNTSC returns true for NTSC machine types.
func (mt MachineType) IsNTSC() bool {
	switch mt {
	case A2600NTSC, A7800NTSC, A7800NTSCbios, A7800NTSChsc, A7800NTSCxm:
		return true
	}
	return false
}

// IsPAL returns true for PAL machine types.
func (mt MachineType) IsPAL() bool {
	switch mt {
	case A2600PAL, A7800PAL, A7800PALbios, A7800PALhsc, A7800PALxm:
		return true
	}
	return false
}

// IsBIOS returns true if the machine type requires a BIOS.
func (mt MachineType) IsBIOS() bool {
	return mt == A7800NTSCbios || mt == A7800PALbios
}

// IsHSC returns true if the machine type has the high score cart attached.
func (mt MachineType) IsHSC() bool {
	return mt == A7800NTSChsc || mt == A7800PALhsc
}

// IsXM returns true if the machine type has the expansion module attached.
func (mt MachineType) IsXM() bool {
	return mt == A7800NTSCxm || mt == A7800PALxm
}
