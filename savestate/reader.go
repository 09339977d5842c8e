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

import (
	"encoding/binary"
	"errors"
	"io"
	"math"
	"slices"

	"github.com/jetsetilly/gopher7800/curated"
)

// Reader deserialises values from an io.Reader.
type Reader struct {
	r   io.Reader
	err error
	buf [8]byte
}

// NewReader is the preferred method of initialisation for the Reader type.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Err returns the first error encountered by the Reader.
func (r *Reader) Err() error {
	return r.err
}

// Fail records a format error if no other error has been recorded. It is used
// by object deserialisers that find a problem in otherwise well formed data,
// for example an unknown type name. The error is returned for convenience.
func (r *Reader) Fail(reason string) error {
	if r.err == nil {
		r.err = curated.Errorf(SerializationFormatError, reason)
	}
	return r.err
}

func (r *Reader) read(b []byte) bool {
	if r.err != nil {
		return false
	}
	if _, err := io.ReadFull(r.r, b); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			r.err = curated.Errorf(SerializationFormatError, "unexpected end of stream")
		} else {
			r.err = curated.Errorf("savestate: %v", err)
		}
		return false
	}
	return true
}

// CheckVersion reads the header of a versioned object and returns the
// version number. An error is returned if the magic number is missing or if
// the version is not one of the valid versions.
func (r *Reader) CheckVersion(valid ...int32) (int32, error) {
	magic := r.ReadInt32()
	if r.err != nil {
		return 0, r.err
	}
	if magic != Magic {
		return 0, r.Fail("magic number not found")
	}
	version := r.ReadInt32()
	if r.err != nil {
		return 0, r.err
	}
	if !slices.Contains(valid, version) {
		return 0, r.Fail("invalid version number found")
	}
	return version, nil
}

// ReadBool reads a single byte. Any non-zero value is true.
func (r *Reader) ReadBool() bool {
	return r.ReadUint8() != 0
}

// ReadUint8 reads a single byte.
func (r *Reader) ReadUint8() uint8 {
	if !r.read(r.buf[:1]) {
		return 0
	}
	return r.buf[0]
}

// ReadUint16 reads a 16-bit unsigned value.
func (r *Reader) ReadUint16() uint16 {
	if !r.read(r.buf[:2]) {
		return 0
	}
	return binary.LittleEndian.Uint16(r.buf[:2])
}

// ReadInt32 reads a 32-bit signed value.
func (r *Reader) ReadInt32() int32 {
	return int32(r.ReadUint32())
}

// ReadUint32 reads a 32-bit unsigned value.
func (r *Reader) ReadUint32() uint32 {
	if !r.read(r.buf[:4]) {
		return 0
	}
	return binary.LittleEndian.Uint32(r.buf[:4])
}

// ReadInt64 reads a 64-bit signed value.
func (r *Reader) ReadInt64() int64 {
	return int64(r.ReadUint64())
}

// ReadUint64 reads a 64-bit unsigned value.
func (r *Reader) ReadUint64() uint64 {
	if !r.read(r.buf[:8]) {
		return 0
	}
	return binary.LittleEndian.Uint64(r.buf[:8])
}

// ReadFloat64 reads a 64-bit IEEE 754 value.
func (r *Reader) ReadFloat64() float64 {
	return math.Float64frombits(r.ReadUint64())
}

// ReadString reads a string written by Writer.WriteString().
func (r *Reader) ReadString() string {
	if r.err != nil {
		return ""
	}

	var n uint64
	var shift uint
	for {
		b := r.ReadUint8()
		if r.err != nil {
			return ""
		}
		n |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			break
		}
		shift += 7
		if shift > 28 {
			r.Fail("string length is not a valid varint")
			return ""
		}
	}

	if n > MaxByteArray {
		r.Fail("string length too large")
		return ""
	}

	b := make([]byte, n)
	if !r.read(b) {
		return ""
	}
	return string(b)
}

// readCount reads the length field of an array and checks it against the
// maximum array length.
func (r *Reader) readCount() (int, bool) {
	count := r.ReadInt32()
	if r.err != nil {
		return 0, false
	}
	if count > MaxByteArray {
		r.Fail("byte array length too large")
		return 0, false
	}
	return int(count), true
}

func (r *Reader) readArray(count int) []byte {
	if count <= 0 {
		return []byte{}
	}
	b := make([]byte, count)
	if !r.read(b) {
		return nil
	}
	return b
}

// ReadBytes reads a length prefixed byte array. A length of zero or less
// results in an empty array.
func (r *Reader) ReadBytes() []byte {
	count, ok := r.readCount()
	if !ok {
		return nil
	}
	return r.readArray(count)
}

// ReadExpectedBytes reads a length prefixed byte array. The length of the
// array must be one of the expected sizes.
func (r *Reader) ReadExpectedBytes(expectedSizes ...int) []byte {
	count, ok := r.readCount()
	if !ok {
		return nil
	}
	if !slices.Contains(expectedSizes, count) {
		r.Fail("byte array length incorrect")
		return nil
	}
	return r.readArray(count)
}

// ReadOptionalBytes reads a boolean and, if the boolean is true, a byte
// array that must be one of the expected sizes. If the boolean is false then
// an empty array is returned.
func (r *Reader) ReadOptionalBytes(expectedSizes ...int) []byte {
	if !r.ReadBool() {
		return []byte{}
	}
	return r.ReadExpectedBytes(expectedSizes...)
}

func scaled(sizes []int, by int) []int {
	s := make([]int, len(sizes))
	for i := range sizes {
		s[i] = sizes[i] * by
	}
	return s
}

// ReadIntegers reads an array of 32-bit signed values. The expected sizes are
// the number of values, not the number of bytes.
func (r *Reader) ReadIntegers(expectedSizes ...int) []int32 {
	b := r.ReadExpectedBytes(scaled(expectedSizes, 4)...)
	if b == nil {
		return nil
	}
	v := make([]int32, len(b)/4)
	for i := range v {
		v[i] = int32(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}

// ReadUint32s reads an array of 32-bit unsigned values. The expected sizes
// are the number of values, not the number of bytes.
func (r *Reader) ReadUint32s(expectedSizes ...int) []uint32 {
	b := r.ReadExpectedBytes(scaled(expectedSizes, 4)...)
	if b == nil {
		return nil
	}
	v := make([]uint32, len(b)/4)
	for i := range v {
		v[i] = binary.LittleEndian.Uint32(b[i*4:])
	}
	return v
}

// ReadUint16s reads an array of 16-bit unsigned values. The expected sizes
// are the number of values, not the number of bytes.
func (r *Reader) ReadUint16s(expectedSizes ...int) []uint16 {
	b := r.ReadExpectedBytes(scaled(expectedSizes, 2)...)
	if b == nil {
		return nil
	}
	v := make([]uint16, len(b)/2)
	for i := range v {
		v[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
	return v
}

// ReadBools reads an array of booleans.
func (r *Reader) ReadBools(expectedSizes ...int) []bool {
	b := r.ReadExpectedBytes(expectedSizes...)
	if b == nil {
		return nil
	}
	v := make([]bool, len(b))
	for i := range b {
		v[i] = b[i] != 0
	}
	return v
}
