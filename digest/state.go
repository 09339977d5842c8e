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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/jetsetilly/gopher7800/hardware"
)

// State returns a hash of the CPU registers, the CPU clock and the contents
// of RAM. The state of the input is not included.
func State(m *hardware.Machine7800) string {
	h := sha1.New()

	mc := m.CPU
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], mc.Clock)
	h.Write(b[:])
	binary.LittleEndian.PutUint16(b[:], mc.PC)
	h.Write(b[:2])
	h.Write([]byte{mc.A.Value(), mc.X.Value(), mc.Y.Value(), mc.SP.Value(), mc.Status.ToUint8()})

	h.Write(m.RAM0.RAM)
	h.Write(m.RAM1.RAM)

	return fmt.Sprintf("%x", h.Sum(nil))
}
