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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher7800/test"
	"github.com/jetsetilly/gopher7800/wavwriter"
)

func TestWavWriter(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.wav")

	aw, err := wavwriter.New(fn, 31440)
	test.DemandSuccess(t, err)

	frame := make([]uint8, 524)
	for i := range frame {
		frame[i] = uint8(i)
	}
	test.ExpectSuccess(t, aw.AddFrame(frame))
	test.ExpectSuccess(t, aw.AddFrame(frame))
	test.ExpectEquality(t, aw.Samples(), 1048)
	test.DemandSuccess(t, aw.Close())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.ExpectSuccess(t, dec.IsValidFile())

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, buf.Format.SampleRate, 31440)
	test.ExpectEquality(t, buf.Format.NumChannels, 1)
	test.ExpectEquality(t, len(buf.Data), 1048)
	test.ExpectEquality(t, buf.Data[128], 0)
}

func TestBadRate(t *testing.T) {
	_, err := wavwriter.New(filepath.Join(t.TempDir(), "test.wav"), 0)
	test.ExpectFailure(t, err)
}
