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

package recorder

import (
	"io"
	"os"

	"github.com/jetsetilly/gopher7800/cartridgeloader"
	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/digest"
	"github.com/jetsetilly/gopher7800/hardware"
	"github.com/jetsetilly/gopher7800/hardware/input"
	"github.com/jetsetilly/gopher7800/logger"
)

// Recorder transcribes the input raised by another EventPlayback
// implementation. It implements the input.EventPlayback interface.
type Recorder struct {
	m      *hardware.Machine7800
	source input.EventPlayback
	output io.WriteCloser

	cartName string
	cartHash string

	// the input state as of the most recent entry. nil until the first frame
	last []int32

	headerWritten bool
}

// NewRecorder creates a transcript file and attaches the recorder to the
// machine's input. The source may be nil in which case only input pushed
// with the PushEvent() function is recorded.
func NewRecorder(transcript string, m *hardware.Machine7800, cl cartridgeloader.Loader, source input.EventPlayback) (*Recorder, error) {
	f, err := os.Create(transcript)
	if err != nil {
		return nil, curated.Errorf("recorder: %v", err)
	}
	rec := NewRecorderWriter(f, m, cl, source)
	if err := rec.writeHeader(); err != nil {
		f.Close()
		return nil, err
	}
	rec.headerWritten = true
	return rec, nil
}

// NewRecorderWriter is like NewRecorder except that the transcript is written
// to the WriteCloser. The header is written on the first frame.
func NewRecorderWriter(w io.WriteCloser, m *hardware.Machine7800, cl cartridgeloader.Loader, source input.EventPlayback) *Recorder {
	rec := &Recorder{
		m:        m,
		source:   source,
		output:   w,
		cartName: cl.ShortName(),
		cartHash: cl.Hash,
	}
	m.Input.AttachPlayback(rec)
	return rec
}

// End the recording and close the transcript.
func (rec *Recorder) End() error {
	if rec.output == nil {
		return nil
	}
	rec.m.Input.AttachPlayback(rec.source)
	err := rec.output.Close()
	rec.output = nil
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	return nil
}

// Playback implements the input.EventPlayback interface.
func (rec *Recorder) Playback(inp *input.InputState) error {
	if rec.output == nil {
		return curated.Errorf("recorder: transcript has been closed")
	}

	if !rec.headerWritten {
		if err := rec.writeHeader(); err != nil {
			return err
		}
		rec.headerWritten = true
	}

	if rec.source != nil {
		if err := rec.source.Playback(inp); err != nil {
			logger.Logf(logger.Allow, "recorder", "input source ended: %v", err)
			rec.source = nil
		}
	}

	state := inp.NextState()
	frame := rec.m.FrameNumber()

	var hash string
	for i, v := range state {
		if rec.last != nil && rec.last[i] == v {
			continue
		}
		if hash == "" {
			hash = digest.State(rec.m)
		}
		if err := rec.writeEntry(frame, i, v, hash); err != nil {
			return err
		}
	}
	rec.last = state

	return nil
}
