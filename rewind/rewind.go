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

package rewind

import (
	"fmt"

	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/hardware"
)

// entry is a single snapshot of the machine.
type entry struct {
	frame int64
	data  []byte
}

// Rewind contains a history of machine states for the emulation. Each state
// is a complete savestate, so restoring a state creates a new machine.
type Rewind struct {
	Prefs *Preferences

	// circular array of snapshotted entries
	entries []entry
	start   int
	count   int
}

// NewRewind is the preferred method of initialisation for the Rewind type.
// If prefs is nil the default preferences are used.
func NewRewind(prefs *Preferences) *Rewind {
	if prefs == nil {
		prefs = NewDefaultPreferences()
	}
	r := &Rewind{
		Prefs: prefs,
	}
	r.Reset()
	return r
}

func (r *Rewind) String() string {
	if r.count == 0 {
		return "rewind: empty"
	}
	tl := r.GetTimeline()
	return fmt.Sprintf("rewind: %d entries (frames %d to %d)", r.count, tl.FirstFrame, tl.LastFrame)
}

// Reset removes all entries. This should be called whenever a new cartridge
// is inserted.
func (r *Rewind) Reset() {
	r.entries = make([]entry, r.Prefs.maxEntries())
	r.start = 0
	r.count = 0
}

// the preferences can change at any time. the entries are reallocated when
// the number of entries no longer matches
func (r *Rewind) resize() {
	n := r.Prefs.maxEntries()
	if n == len(r.entries) {
		return
	}

	// keep the most recent entries
	keep := r.count
	if keep > n {
		keep = n
	}

	entries := make([]entry, n)
	for i := 0; i < keep; i++ {
		entries[i] = r.entries[(r.start+r.count-keep+i)%len(r.entries)]
	}

	r.entries = entries
	r.start = 0
	r.count = keep
}

// RecordFrame should be called after every frame. A snapshot is taken if the
// frame number is a multiple of the snapshot frequency.
func (r *Rewind) RecordFrame(m *hardware.Machine7800) error {
	if m.FrameNumber()%int64(r.Prefs.freq()) != 0 {
		return nil
	}
	return r.Append(m)
}

// Append a snapshot of the machine regardless of the frame number. If the
// most recent entry is for the same frame then it is replaced.
func (r *Rewind) Append(m *hardware.Machine7800) error {
	r.resize()

	data, err := m.Snapshot()
	if err != nil {
		return curated.Errorf("rewind: %v", err)
	}

	e := entry{frame: m.FrameNumber(), data: data}

	if r.count > 0 {
		last := (r.start + r.count - 1) % len(r.entries)
		if r.entries[last].frame == e.frame {
			r.entries[last] = e
			return nil
		}
	}

	if r.count == len(r.entries) {
		r.entries[r.start] = e
		r.start = (r.start + 1) % len(r.entries)
		return nil
	}

	r.entries[(r.start+r.count)%len(r.entries)] = e
	r.count++

	return nil
}

// Timeline is a summary of the rewind history.
type Timeline struct {
	Count      int
	FirstFrame int64
	LastFrame  int64
}

// GetTimeline returns a summary of the rewind history.
func (r *Rewind) GetTimeline() Timeline {
	if r.count == 0 {
		return Timeline{}
	}
	return Timeline{
		Count:      r.count,
		FirstFrame: r.entries[r.start].frame,
		LastFrame:  r.entries[(r.start+r.count-1)%len(r.entries)].frame,
	}
}

// Frames returns the frame numbers of all entries, oldest first.
func (r *Rewind) Frames() []int64 {
	f := make([]int64, r.count)
	for i := range f {
		f[i] = r.entries[(r.start+i)%len(r.entries)].frame
	}
	return f
}

// Search returns the index of the most recent entry at or before the frame.
// Returns -1 if there is no such entry.
func (r *Rewind) Search(frame int64) int {
	idx := -1
	for i := 0; i < r.count; i++ {
		if r.entries[(r.start+i)%len(r.entries)].frame > frame {
			break
		}
		idx = i
	}
	return idx
}

// Restore creates a new machine from the entry at index i, where zero is the
// oldest entry. The new machine shares the environment of the current
// machine and takes over its input playback and pushed events.
//
// Entries after the restored entry are removed.
func (r *Rewind) Restore(i int, current *hardware.Machine7800) (*hardware.Machine7800, error) {
	if i < 0 || i >= r.count {
		return nil, curated.Errorf("rewind: %v", fmt.Sprintf("no entry at index %d", i))
	}

	e := r.entries[(r.start+i)%len(r.entries)]

	m, err := hardware.FromSnapshot(e.data, current.Env())
	if err != nil {
		return nil, curated.Errorf("rewind: %v", err)
	}
	m.SetFrameNumber(e.frame)
	current.Input.TransferPlayback(m.Input)

	r.count = i + 1

	return m, nil
}

// GotoFrame restores the most recent entry at or before the frame and then
// runs the new machine until it reaches the frame.
func (r *Rewind) GotoFrame(frame int64, current *hardware.Machine7800) (*hardware.Machine7800, error) {
	i := r.Search(frame)
	if i < 0 {
		return nil, curated.Errorf("rewind: %v", fmt.Sprintf("no entry at or before frame %d", frame))
	}

	m, err := r.Restore(i, current)
	if err != nil {
		return nil, err
	}

	if n := frame - m.FrameNumber(); n > 0 {
		if err := m.RunForFrameCount(int(n), nil); err != nil {
			return nil, curated.Errorf("rewind: %v", err)
		}
	}

	return m, nil
}
