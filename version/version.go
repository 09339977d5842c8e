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

// Package version reports the version of the emulator and the modules it was
// built with.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// ApplicationName is used when referring to the application.
const ApplicationName = "Gopher7800"

// number is set by the linker for release builds
var number string

var (
	version  string
	revision string
	deps     []*debug.Module
	goVer    string
)

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// The version string is "unreleased" if the binary was built from a
// repository without a version number and "local" if there is no version
// control information at all. The revision is suffixed with "+dirty" if the
// source had uncommitted changes.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// Dependencies returns a description of every module the binary was built
// with. One module per line.
func Dependencies() string {
	var s strings.Builder
	for _, d := range deps {
		if d.Replace != nil {
			d = d.Replace
		}
		fmt.Fprintf(&s, "%s %s\n", d.Path, d.Version)
	}
	return s.String()
}

// GoVersion returns the version of Go used to build the binary.
func GoVersion() string {
	return goVer
}

func init() {
	var vcs bool
	var modified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		goVer = info.GoVersion
		deps = info.Deps
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = v.Value
			case "vcs.modified":
				modified = v.Value == "true"
			}
		}
	}

	if revision == "" {
		revision = "no revision information"
	} else if modified {
		revision += "+dirty"
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
