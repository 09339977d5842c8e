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
	"fmt"
)

// Audio is a running digest of the sound produced by the emulation. The hash
// of each frame includes the hash of the previous frame.
type Audio struct {
	digest [sha1.Size]byte
	buffer []uint8
	frames int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{}
}

func (dig *Audio) String() string {
	return fmt.Sprintf("%s (%d frames)", dig.Hash(), dig.frames)
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// AddFrame adds the sound buffer of a frame to the digest.
func (dig *Audio) AddFrame(samples []uint8) {
	dig.buffer = append(dig.buffer[:0], dig.digest[:]...)
	dig.buffer = append(dig.buffer, samples...)
	dig.digest = sha1.Sum(dig.buffer)
	dig.frames++
}
