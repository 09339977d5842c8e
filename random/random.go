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

package random

import (
	"math/rand"
	"time"
)

// the base seed is used unless ZeroSeed is set.
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Source is the part of the emulation that random numbers are derived from.
// The values returned identify a moment in the emulation.
type Source interface {
	RandomSource() (frame int64, clock uint64)
}

// Random should be used in preference to the rand package when a random
// number is required inside the emulation. The numbers are derived from the
// state of the emulation so that the same moment in the emulation always
// produces the same number for the same base seed.
type Random struct {
	src Source

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be predictable
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type. The
// source can be nil, in which case the numbers depend on the base seed only.
func NewRandom(src Source) *Random {
	return &Random{
		src: src,
	}
}

// Plumb a new source into the Random type.
func (rnd *Random) Plumb(src Source) {
	rnd.src = src
}

func (rnd *Random) seed() int64 {
	var s int64
	if rnd.src != nil {
		frame, clock := rnd.src.RandomSource()
		s = frame<<32 ^ int64(clock)
	}
	if rnd.ZeroSeed {
		return s
	}
	return baseSeed + s
}

func (rnd *Random) rand() *rand.Rand {
	return rand.New(rand.NewSource(rnd.seed()))
}

// Intn returns a number in the range [0, n) for the current emulation state.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Fill the slice with random bytes for the current emulation state.
func (rnd *Random) Fill(b []uint8) {
	r := rnd.rand()
	for i := range b {
		b[i] = uint8(r.Intn(256))
	}
}
