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
	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/paths"
	"github.com/jetsetilly/gopher7800/prefs"
)

// Preferences for the rewind system.
type Preferences struct {
	dsk *prefs.Disk

	// the maximum number of snapshots to keep before the earliest are
	// forgotten
	MaxEntries prefs.Int

	// a snapshot is taken every Freq frames
	Freq prefs.Int
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return "default rewind preferences"
	}
	return p.dsk.String()
}

const (
	defaultMaxEntries = 100
	defaultFreq       = 5
)

// NewDefaultPreferences returns preferences with the default values. They
// are not backed by a file.
func NewDefaultPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file.
func NewPreferences() (*Preferences, error) {
	p := NewDefaultPreferences()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("rewind.maxEntries", &p.MaxEntries); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("rewind.snapshotFreq", &p.Freq); err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil && !curated.Is(err, prefs.NoPrefsFile) {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.MaxEntries.Set(defaultMaxEntries)
	_ = p.Freq.Set(defaultFreq)
}

// Save current rewind preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return curated.Errorf("rewind: no preferences file")
	}
	return p.dsk.Save()
}

func (p *Preferences) maxEntries() int {
	n := p.MaxEntries.Get().(int)
	if n < 1 {
		return 1
	}
	return n
}

func (p *Preferences) freq() int {
	n := p.Freq.Get().(int)
	if n < 1 {
		return 1
	}
	return n
}
