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
	"io"
	"math"

	"github.com/jetsetilly/gopher7800/curated"
)

// Writer serialises values to an io.Writer.
type Writer struct {
	w   io.Writer
	err error
	buf [binary.MaxVarintLen64]byte
}

// NewWriter is the preferred method of initialisation for the Writer type.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered by the Writer.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) write(b []byte) {
	if w.err != nil {
		return
	}
	if _, err := w.w.Write(b); err != nil {
		w.err = curated.Errorf("savestate: %v", err)
	}
}

// WriteVersion writes the header for a versioned object.
func (w *Writer) WriteVersion(version int32) {
	w.WriteInt32(Magic)
	w.WriteInt32(version)
}

// WriteBool writes a single byte of 0 or 1.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.WriteUint8(1)
	} else {
		w.WriteUint8(0)
	}
}

// WriteUint8 writes a single byte.
func (w *Writer) WriteUint8(v uint8) {
	w.buf[0] = v
	w.write(w.buf[:1])
}

// WriteUint16 writes a 16-bit unsigned value.
func (w *Writer) WriteUint16(v uint16) {
	binary.LittleEndian.PutUint16(w.buf[:2], v)
	w.write(w.buf[:2])
}

// WriteInt32 writes a 32-bit signed value.
func (w *Writer) WriteInt32(v int32) {
	w.WriteUint32(uint32(v))
}

// WriteUint32 writes a 32-bit unsigned value.
func (w *Writer) WriteUint32(v uint32) {
	binary.LittleEndian.PutUint32(w.buf[:4], v)
	w.write(w.buf[:4])
}

// WriteInt64 writes a 64-bit signed value.
func (w *Writer) WriteInt64(v int64) {
	w.WriteUint64(uint64(v))
}

// WriteUint64 writes a 64-bit unsigned value.
func (w *Writer) WriteUint64(v uint64) {
	binary.LittleEndian.PutUint64(w.buf[:8], v)
	w.write(w.buf[:8])
}

// WriteFloat64 writes a 64-bit IEEE 754 value.
func (w *Writer) WriteFloat64(v float64) {
	w.WriteUint64(math.Float64bits(v))
}

// WriteString writes the length of the string as an unsigned varint followed
// by the bytes of the string.
func (w *Writer) WriteString(s string) {
	n := binary.PutUvarint(w.buf[:], uint64(len(s)))
	w.write(w.buf[:n])
	w.write([]byte(s))
}

// WriteBytes writes a length prefixed byte array.
func (w *Writer) WriteBytes(b []byte) {
	w.WriteInt32(int32(len(b)))
	w.write(b)
}

// WriteOptionalBytes writes a boolean indicating whether the array has any
// content, followed by the array if it does.
func (w *Writer) WriteOptionalBytes(b []byte) {
	w.WriteBool(len(b) > 0)
	if len(b) > 0 {
		w.WriteBytes(b)
	}
}

// WriteIntegers writes an array of 32-bit values as a byte array.
func (w *Writer) WriteIntegers(v []int32) {
	b := make([]byte, len(v)*4)
	for i := range v {
		binary.LittleEndian.PutUint32(b[i*4:], uint32(v[i]))
	}
	w.WriteBytes(b)
}

// WriteUint32s writes an array of 32-bit unsigned values as a byte array.
func (w *Writer) WriteUint32s(v []uint32) {
	b := make([]byte, len(v)*4)
	for i := range v {
		binary.LittleEndian.PutUint32(b[i*4:], v[i])
	}
	w.WriteBytes(b)
}

// WriteUint16s writes an array of 16-bit unsigned values as a byte array.
func (w *Writer) WriteUint16s(v []uint16) {
	b := make([]byte, len(v)*2)
	for i := range v {
		binary.LittleEndian.PutUint16(b[i*2:], v[i])
	}
	w.WriteBytes(b)
}

// WriteBools writes an array of booleans as a byte array. True values are
// written as 0xff.
func (w *Writer) WriteBools(v []bool) {
	b := make([]byte, len(v))
	for i := range v {
		if v[i] {
			b[i] = 0xff
		}
	}
	w.WriteBytes(b)
}
