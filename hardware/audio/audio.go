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

package audio

// Host is the part of the machine that a sound chip needs.
type Host interface {
	// CPUClock returns the number of CPU cycles since power on.
	CPUClock() uint64

	// SoundBuffer returns the sound buffer for the current frame.
	SoundBuffer() []uint8
}

// SamplesPerScanline is the number of sound samples produced for each
// scanline.
const SamplesPerScanline = 2

// ClocksPerSample is the number of CPU cycles between sound samples.
const ClocksPerSample = 114 / SamplesPerScanline

// SampleIndex returns the index into the sound buffer for a CPU clock value,
// relative to the clock value at the start of the frame. The index is capped
// at the length of the buffer.
func SampleIndex(clock uint64, frameStart uint64, bufferLen int) int {
	if clock <= frameStart {
		return 0
	}
	idx := (clock - frameStart) / ClocksPerSample
	if idx > uint64(bufferLen) {
		return bufferLen
	}
	return int(idx)
}

// AddSample adds the value to the sample at index i of the buffer. The result
// saturates at 255.
func AddSample(buffer []uint8, i int, v uint8) {
	s := int(buffer[i]) + int(v)
	if s > 255 {
		s = 255
	}
	buffer[i] = uint8(s)
}
