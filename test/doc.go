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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a test failure with t.Errorf() and allow the
// test to continue. The Demand*() functions use t.Fatalf() and should be used
// when the rest of the test depends on the result, for example, testing the
// length of a slice before indexing it.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions:
//
//	bool -> true is success
//	error -> nil is success
//
// The untyped nil value is considered a success. This matches how errors
// usually work.
//
// All functions accept optional tags which are printed as a prefix to the
// failure message. This is useful when testing in a loop.
//
// The CappedWriter type implements the io.Writer interface and can be used to
// capture a limited amount of output.
package test
