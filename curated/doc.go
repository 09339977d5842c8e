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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Packages that want callers to distinguish an error export
// the pattern as a string constant. For example, the savestate package
// exports:
//
//	const SerializationFormatError = "savestate: format error: %v"
//
// and callers can test for it with:
//
//	if curated.Is(err, savestate.SerializationFormatError) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(savestate.SerializationFormatError, "bad magic")
//	f := curated.Errorf("hardware: %v", e)
//
//	curated.Has(f, savestate.SerializationFormatError) // true
//	curated.Is(f, savestate.SerializationFormatError)  // false
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. This means a package can wrap an error from one of
// its own functions without worrying about the message reading
// "cartridge: cartridge: ...".
package curated
