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

// Package environment defines those parts of the emulation that might change
// from instance to instance of the Machine7800 type, but are not part of the
// machine itself.
package environment

import (
	"github.com/jetsetilly/gopher7800/hardware/preferences"
	"github.com/jetsetilly/gopher7800/random"
)

// Label indicates the context of the emulation.
type Label string

// List of valid Label values.
const (
	MainEmulation Label = ""
	Rewind        Label = "rewind"
)

// Environment is shared by all parts of one emulation. It also implements
// the logger.Permission interface. Only the main emulation is allowed to log.
type Environment struct {
	Label Label

	// any randomisation required by the emulation should be retreived through
	// this structure
	Random *random.Random

	// the emulation preferences
	Prefs *preferences.Preferences
}

// NewEnvironment is the preferred method of initialisation for the
// Environment type. If prefs is nil then default preferences, not backed by
// a file on disk, are used.
func NewEnvironment(label Label, src random.Source, prefs *preferences.Preferences) *Environment {
	if prefs == nil {
		prefs = preferences.NewDefaults()
	}
	return &Environment{
		Label:  label,
		Random: random.NewRandom(src),
		Prefs:  prefs,
	}
}

// Normalise sets the environment to a predictable state. Used by tests and
// wherever two emulations must behave identically.
func (env *Environment) Normalise() {
	env.Random.ZeroSeed = true
	env.Prefs.SetDefaults()
}

// IsMainEmulation returns true if the environment is for the main emulation.
func (env *Environment) IsMainEmulation() bool {
	return env.Label == MainEmulation
}

// AllowLogging implements the logger.Permission interface.
func (env *Environment) AllowLogging() bool {
	return env.IsMainEmulation()
}
