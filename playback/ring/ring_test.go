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

package ring_test

import (
	"testing"

	"github.com/jetsetilly/gopher7800/playback/ring"
	"github.com/jetsetilly/gopher7800/test"
)

func TestRing(t *testing.T) {
	r := ring.NewRing(4)
	r.Push([]uint8{1, 2, 3})
	test.ExpectEquality(t, r.Len(), 3)

	p := make([]byte, 2)
	n, err := r.Read(p)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 2)
	test.ExpectEquality(t, p[0], uint8(1))
	test.ExpectEquality(t, p[1], uint8(2))

	// wraps around the end of the buffer
	r.Push([]uint8{4, 5, 6})
	test.ExpectEquality(t, r.Len(), 4)

	p = make([]byte, 6)
	_, _ = r.Read(p)
	test.ExpectEquality(t, string(p), string([]byte{3, 4, 5, 6, ring.Silence, ring.Silence}))

	under, over := r.Stats()
	test.ExpectEquality(t, under, 2)
	test.ExpectEquality(t, over, 0)
}

func TestOverrun(t *testing.T) {
	r := ring.NewRing(3)
	r.Push([]uint8{1, 2, 3, 4, 5})
	test.ExpectEquality(t, r.Len(), 3)

	p := make([]byte, 3)
	_, _ = r.Read(p)
	test.ExpectEquality(t, string(p), string([]byte{3, 4, 5}))

	_, over := r.Stats()
	test.ExpectEquality(t, over, 2)
}
