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

// Package modalflag wraps the flag package of the standard library and adds
// the idea of program modes. Each mode has its own set of flags.
//
// Arguments are given with NewArgs() and then parsed one mode at a time with
// Parse(). Flags and sub-modes for a mode are added before the call to
// Parse(). For example, the emulator selects a mode and then parses the flags
// for that mode:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "PERFORMANCE", "INFO")
//	if r, err := md.Parse(); r != modalflag.ParseContinue {
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		frames := md.AddInt("frames", 0, "number of frames to run")
//		...
//	}
//
// The first sub-mode is the default and is selected if the next argument is
// not the name of a sub-mode. Sub-modes are case insensitive.
//
// AddChoice() adds a string flag that can only be one of a list of values.
// This is used for flags that select a machine type or a controller.
package modalflag
