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
	"strings"

	"github.com/jetsetilly/gopher7800/curated"
)

// transcript entry format
// -----------------------
//
// <frame>, <input index>, <value>, <state hash>

const (
	fieldFrame int = iota
	fieldIndex
	fieldValue
	fieldHash
	numFields
)

const fieldSep = ", "

// transcript header format
// ------------------------
//
// <id>
// <cartridge name>
// <cartridge hash>
// <machine>

const (
	lineID int = iota
	lineCartName
	lineCartHash
	lineMachine
	numHeaderLines
)

const transcriptID = "gopher7800 transcript v1"

func (rec *Recorder) writeHeader() error {
	lines := make([]string, numHeaderLines)
	lines[lineID] = transcriptID
	lines[lineCartName] = rec.cartName
	lines[lineCartHash] = rec.cartHash
	lines[lineMachine] = rec.m.String()

	_, err := io.WriteString(rec.output, strings.Join(lines, "\n")+"\n")
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	return nil
}

func (rec *Recorder) writeEntry(frame int64, idx int, value int32, hash string) error {
	_, err := fmt.Fprintf(rec.output, "%d%s%d%s%d%s%s\n", frame, fieldSep, idx, fieldSep, value, fieldSep, hash)
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	return nil
}

func (plb *Playback) readHeader(lines []string) error {
	if len(lines) < numHeaderLines {
		return curated.Errorf("playback: transcript header is truncated")
	}
	if lines[lineID] != transcriptID {
		return curated.Errorf("playback: not a transcript file")
	}
	plb.CartName = lines[lineCartName]
	plb.CartHash = lines[lineCartHash]
	plb.Machine = lines[lineMachine]
	return nil
}
