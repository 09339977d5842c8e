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

package audio_test

import (
	"testing"

	"github.com/jetsetilly/gopher7800/hardware/audio"
	"github.com/jetsetilly/gopher7800/test"
)

func TestSampleIndex(t *testing.T) {
	test.ExpectEquality(t, audio.SampleIndex(1000, 1000, 524), 0)
	test.ExpectEquality(t, audio.SampleIndex(999, 1000, 524), 0)
	test.ExpectEquality(t, audio.SampleIndex(1000+57, 1000, 524), 1)
	test.ExpectEquality(t, audio.SampleIndex(1000+114*262, 1000, 524), 524)
	test.ExpectEquality(t, audio.SampleIndex(1000+114*300, 1000, 524), 524)
}

func TestAddSample(t *testing.T) {
	b := make([]uint8, 2)
	audio.AddSample(b, 0, 100)
	audio.AddSample(b, 0, 100)
	test.ExpectEquality(t, b[0], uint8(200))
	audio.AddSample(b, 0, 100)
	test.ExpectEquality(t, b[0], uint8(255))
}
