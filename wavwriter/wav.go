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

// Package wavwriter allows writing of the emulated sound to disk as a WAV
// file. Samples are written as they are received so the file can be of any
// length. The file is not valid until Close() has been called.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/logger"
)

// the 8-bit unsigned samples of the sound buffer are written as 16-bit
// signed samples
const bitDepth = 16

// WavWriter writes frames of sound to a WAV file.
type WavWriter struct {
	filename string
	f        *os.File
	enc      *wav.Encoder
	buf      *audio.IntBuffer
	samples  int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "sample rate must be positive")
	}

	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf("wavwriter: %v", err)
	}

	aw := &WavWriter{
		filename: filename,
		f:        f,
		enc:      wav.NewEncoder(f, sampleRate, bitDepth, 1, 1),
		buf: &audio.IntBuffer{
			Format: &audio.Format{
				NumChannels: 1,
				SampleRate:  sampleRate,
			},
			SourceBitDepth: bitDepth,
		},
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", filename)

	return aw, nil
}

// AddFrame adds the sound buffer of a frame to the file.
func (aw *WavWriter) AddFrame(samples []uint8) error {
	aw.buf.Data = aw.buf.Data[:0]
	for _, s := range samples {
		aw.buf.Data = append(aw.buf.Data, (int(s)-128)<<8)
	}
	if err := aw.enc.Write(aw.buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	aw.samples += len(samples)
	return nil
}

// Samples returns the number of samples written so far.
func (aw *WavWriter) Samples() int {
	return aw.samples
}

// Close completes the WAV file.
func (aw *WavWriter) Close() (rerr error) {
	defer func() {
		err := aw.f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	if err := aw.enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf(logger.Allow, "wavwriter", "wrote %d samples to %s", aw.samples, aw.filename)

	return nil
}
