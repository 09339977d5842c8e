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

package preferences

import (
	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/hardware/memory/device"
	"github.com/jetsetilly/gopher7800/paths"
	"github.com/jetsetilly/gopher7800/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware emulation.
type Preferences struct {
	dsk *prefs.Disk

	// initialise RAM to an unknown state on reset
	RandomState prefs.Bool

	// the directory in which NVRAM files for the high score cart and the
	// expansion module are kept
	NVRAMDir prefs.String

	// the television specification to use when it can't be decided from the
	// cartridge. one of NTSC or PAL
	DefaultSpec prefs.String

	// log the CPU registers whenever a NOP instruction is executed
	NOPRegisterDumping prefs.Bool

	// attach the high score cart to every game and the file containing the
	// high score cart ROM
	HSC     prefs.Bool
	HSCFile prefs.String
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return "default preferences"
	}
	return p.dsk.String()
}

func newPreferences() *Preferences {
	p := &Preferences{}
	p.DefaultSpec.SetMaxLen(4)
	p.SetDefaults()
	return p
}

// NewDefaults returns preferences with default values. The preferences are
// not backed by a file so Load() and Save() will fail.
func NewDefaults() *Preferences {
	return newPreferences()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the preferences file.
func NewPreferences() (*Preferences, error) {
	p := newPreferences()

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	// NVRAM files are kept with the other resources unless the user says
	// otherwise
	nv, err := paths.ResourcePath("nvram", "")
	if err != nil {
		return nil, err
	}
	_ = p.NVRAMDir.Set(nv)
	p.NVRAMDir.SetHookPost(func(v prefs.Value) error {
		if s := v.(string); s != "" {
			device.NVRAMDir = s
		}
		return nil
	})
	device.NVRAMDir = nv

	if err := p.dsk.Add("hardware.randstate", &p.RandomState); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.nvramdir", &p.NVRAMDir); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.spec", &p.DefaultSpec); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.nopdump", &p.NOPRegisterDumping); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.hsc", &p.HSC); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("hardware.hscfile", &p.HSCFile); err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all settings to default values.
func (p *Preferences) SetDefaults() {
	_ = p.RandomState.Set(false)
	_ = p.DefaultSpec.Set("NTSC")
	_ = p.NOPRegisterDumping.Set(false)
	_ = p.HSC.Set(false)
	_ = p.HSCFile.Set("")
	_ = p.NVRAMDir.Set(device.NVRAMDir)
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	p.SetDefaults()
	return nil
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	if p.dsk == nil {
		return curated.Errorf("preferences: no preferences file")
	}
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	if p.dsk == nil {
		return curated.Errorf("preferences: no preferences file")
	}
	return p.dsk.Save()
}
