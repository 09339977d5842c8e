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

// Package savestate implements the binary format used to save and restore a
// running machine.
//
// The format is a flat little-endian stream. Every versioned object begins
// with a header of two 32-bit integers: the Magic number and a version
// number. Readers check the header with CheckVersion(), which fails if the
// magic number is wrong or if the version is not in the list of versions the
// object knows how to read.
//
// Strings are written as an unsigned varint length followed by UTF-8 bytes.
// Byte arrays are written as a signed 32-bit length followed by the bytes.
// Length fields are checked against MaxByteArray before any allocation takes
// place, so a corrupt or hostile stream can not cause a large allocation.
//
// Both Writer and Reader have "sticky" errors. After the first error every
// subsequent call is a no-op (reads return the zero value) and Err() returns
// that first error. Object deserialisers read all their fields, check Err(),
// and only then construct the object. Nothing is partially applied.
//
// All format errors returned by the Reader use the SerializationFormatError
// pattern and can be tested with curated.Is() or curated.Has().
package savestate
