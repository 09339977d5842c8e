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
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/digest"
	"github.com/jetsetilly/gopher7800/hardware"
	"github.com/jetsetilly/gopher7800/hardware/input"
)

type playbackEntry struct {
	frame int64
	index int
	value int32
	hash  string

	// the line in the transcript the entry appears
	line int
}

// Playback reperforms the input in a previously recorded transcript. It
// implements the input.EventPlayback interface.
type Playback struct {
	transcript string

	CartName string
	CartHash string
	Machine  string

	sequence []playbackEntry
	seqCt    int

	m *hardware.Machine7800

	// the last frame where an entry occurs
	endFrame int64
}

func (plb *Playback) String() string {
	if plb.m == nil || plb.endFrame == 0 {
		return plb.transcript
	}
	curr := plb.m.FrameNumber()
	return fmt.Sprintf("%d/%d (%.1f%%)", curr, plb.endFrame, 100*(float64(curr)/float64(plb.endFrame)))
}

// EndFrame returns true if emulation has gone past the last frame of the
// playback.
func (plb *Playback) EndFrame() bool {
	return plb.m != nil && plb.m.FrameNumber() > plb.endFrame
}

// NewPlayback is the preferred method of initialisation for the Playback
// type.
func NewPlayback(transcript string) (*Playback, error) {
	f, err := os.Open(transcript)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}
	defer f.Close()

	plb, err := NewPlaybackReader(f)
	if err != nil {
		return nil, err
	}
	plb.transcript = transcript
	return plb, nil
}

// NewPlaybackReader is like NewPlayback except that the transcript is read
// from the Reader.
func NewPlaybackReader(r io.Reader) (*Playback, error) {
	buffer, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}

	plb := &Playback{
		transcript: "transcript",
	}

	lines := strings.Split(strings.TrimRight(string(buffer), "\n"), "\n")

	err = plb.readHeader(lines)
	if err != nil {
		return nil, err
	}

	for i := numHeaderLines; i < len(lines); i++ {
		toks := strings.Split(lines[i], fieldSep)
		if len(toks) != numFields {
			return nil, curated.Errorf("playback: expected %d fields at line %d", numFields, i+1)
		}

		entry := playbackEntry{line: i + 1}

		entry.frame, err = strconv.ParseInt(toks[fieldFrame], 10, 64)
		if err != nil {
			return nil, curated.Errorf("playback: %v: line %d", err, i+1)
		}
		if entry.frame < plb.endFrame {
			return nil, curated.Errorf("playback: frames out of order at line %d", i+1)
		}
		plb.endFrame = entry.frame

		entry.index, err = strconv.Atoi(toks[fieldIndex])
		if err != nil {
			return nil, curated.Errorf("playback: %v: line %d", err, i+1)
		}

		v, err := strconv.ParseInt(toks[fieldValue], 10, 32)
		if err != nil {
			return nil, curated.Errorf("playback: %v: line %d", err, i+1)
		}
		entry.value = int32(v)

		entry.hash = toks[fieldHash]

		plb.sequence = append(plb.sequence, entry)
	}

	return plb, nil
}

// AttachToMachine attaches the playback to the machine's input. The machine
// must be of the same type as the one used for the recording and must not
// have advanced past the first frame in the transcript.
func (plb *Playback) AttachToMachine(m *hardware.Machine7800) error {
	if m.String() != plb.Machine {
		return curated.Errorf("playback: recording was made with %s. trying to playback with %s", plb.Machine, m.String())
	}
	if len(plb.sequence) > 0 && m.FrameNumber() > plb.sequence[0].frame {
		return curated.Errorf("playback: machine is at frame %d. recording starts at frame %d", m.FrameNumber(), plb.sequence[0].frame)
	}
	plb.m = m
	m.Input.AttachPlayback(plb)
	return nil
}

// Sentinel errors returned by Playback().
const (
	PlaybackHashError = "playback: unexpected machine state at line %d (frame %d)"
	PlaybackEnded     = "playback: ended"
)

// Playback implements the input.EventPlayback interface.
func (plb *Playback) Playback(inp *input.InputState) error {
	if plb.seqCt >= len(plb.sequence) {
		return curated.Errorf(PlaybackEnded)
	}

	curr := plb.m.FrameNumber()

	var hash string
	for plb.seqCt < len(plb.sequence) {
		entry := plb.sequence[plb.seqCt]
		if entry.frame != curr {
			break
		}
		plb.seqCt++

		if hash == "" {
			hash = digest.State(plb.m)
		}
		if entry.hash != hash {
			return curated.Errorf(PlaybackHashError, entry.line, curr)
		}
		inp.SetNextState(entry.index, entry.value)
	}

	return nil
}
