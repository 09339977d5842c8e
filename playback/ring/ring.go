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

// Package ring is a fixed size buffer of sound samples. Frames of samples are
// pushed by the emulation and read by the audio device, usually from a
// different goroutine.
package ring

import (
	"sync"
)

// Silence is the value of an unsigned 8-bit sample with no signal.
const Silence = 0x80

// Ring is a ring buffer of unsigned 8-bit samples. It implements the
// io.Reader interface.
type Ring struct {
	crit sync.Mutex
	data []uint8
	head int
	len  int

	underruns int
	overruns  int
}

// NewRing is the preferred method of initialisation for the Ring type. The
// size is the number of samples the ring can hold.
func NewRing(size int) *Ring {
	if size < 1 {
		size = 1
	}
	return &Ring{
		data: make([]uint8, size),
	}
}

// Push adds samples to the ring. If the ring is full the oldest samples are
// discarded.
func (r *Ring) Push(samples []uint8) {
	r.crit.Lock()
	defer r.crit.Unlock()

	for _, s := range samples {
		if r.len == len(r.data) {
			r.head = (r.head + 1) % len(r.data)
			r.len--
			r.overruns++
		}
		r.data[(r.head+r.len)%len(r.data)] = s
		r.len++
	}
}

// Read implements the io.Reader interface. If there are not enough samples
// the remainder of p is filled with silence. Read never returns an error.
func (r *Ring) Read(p []byte) (int, error) {
	r.crit.Lock()
	defer r.crit.Unlock()

	for i := range p {
		if r.len == 0 {
			p[i] = Silence
			r.underruns++
			continue
		}
		p[i] = r.data[r.head]
		r.head = (r.head + 1) % len(r.data)
		r.len--
	}

	return len(p), nil
}

// Len returns the number of samples waiting to be read.
func (r *Ring) Len() int {
	r.crit.Lock()
	defer r.crit.Unlock()
	return r.len
}

// Stats returns the number of samples that were not available when read and
// the number of samples that were discarded because the ring was full.
func (r *Ring) Stats() (underruns int, overruns int) {
	r.crit.Lock()
	defer r.crit.Unlock()
	return r.underruns, r.overruns
}
