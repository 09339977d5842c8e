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

package savestate

// Magic is the number written at the start of every versioned object.
const Magic int32 = 0x78000087

// MaxByteArray is the largest byte array that will be accepted by the Reader.
const MaxByteArray = 0x40000

// SerializationFormatError is returned for any problem with the structure of
// the stream: bad magic number, unsupported version, unresolved type name or a
// length field outside of what is allowed.
const SerializationFormatError = "savestate: format error: %v"

// Serializer is implemented by any type that can write itself to a Writer.
type Serializer interface {
	Serialize(w *Writer)
}
