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

// Package paths contains functions to prepare paths to gopher7800 resources.
//
// The ResourcePath() function prepends the supplied resource string with the
// appropriate config directory. For example, the following will return the
// path to the NVRAM file of the high score cart.
//
//	d, err := paths.ResourcePath("nvram", "HSC.bin")
//
// Development builds use the ".gopher7800" directory in the current working
// directory. Release builds (built with the "release" tag) use the
// "gopher7800" directory in the user's config directory, as returned by
// os.UserConfigDir().
package paths
