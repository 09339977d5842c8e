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

package cartridgeloader

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher7800/hardware/input"
	"github.com/jetsetilly/gopher7800/hardware/memory/cartridge"
)

// the .a78 header is 128 bytes long and is found before the ROM data.
const a78HeaderSize = 0x80

var a78Tag = []byte("ATARI7800")

// A78Header is the information found in the header of an .a78 file.
type A78Header struct {
	Version   uint8
	Title     string
	Size      int
	CartType1 uint8
	CartType2 uint8

	LeftController  input.Controller
	RightController input.Controller

	// region byte. zero is NTSC
	PAL bool
}

// IsA78 returns true if the data starts with an .a78 header.
func IsA78(data []byte) bool {
	if len(data) < a78HeaderSize {
		return false
	}
	// the "ACTUAL CART DATA STARTS HERE" tag is not checked. it is missing
	// from some files
	return bytes.Equal(data[1:1+len(a78Tag)], a78Tag)
}

// ParseA78Header returns the header information from data with an .a78
// header. The data should be checked with IsA78() first.
func ParseA78Header(data []byte) A78Header {
	if len(data) < a78HeaderSize {
		data = make([]byte, a78HeaderSize)
	}

	return A78Header{
		Version:         data[0x00],
		Title:           strings.TrimRight(string(data[0x11:0x31]), "\x00 "),
		Size:            int(binary.BigEndian.Uint32(data[0x31:0x35])),
		CartType1:       data[0x35],
		CartType2:       data[0x36],
		LeftController:  a78Controller(data[0x37]),
		RightController: a78Controller(data[0x38]),
		PAL:             data[0x39] != 0,
	}
}

func a78Controller(v uint8) input.Controller {
	switch v {
	case 0:
		return input.ControllerNone
	case 1:
		return input.ProLineJoystick
	case 3:
		return input.Paddles
	}
	return input.Lightgun
}

// Pokey returns true if the header says the cartridge has a POKEY.
func (hdr A78Header) Pokey() bool {
	return hdr.CartType2&0x01 == 0x01
}

// CartType returns the cart type indicated by the header. Returns
// cartridge.Unknown if the header does not specify a supported type.
func (hdr A78Header) CartType() cartridge.CartType {
	switch hdr.CartType1 {
	case 0:
		if hdr.Size > 0x20000 {
			return cartridge.A78S9
		}
		switch hdr.CartType2 {
		case 2, 3:
			if hdr.Pokey() {
				return cartridge.A78SGP
			}
			return cartridge.A78SG
		case 4, 5, 6, 7:
			return cartridge.A78S4R
		case 8, 9, 10, 11:
			return cartridge.A78S4
		}
	case 1:
		return cartridge.A78AB
	case 2:
		return cartridge.A78AC
	}
	return cartTypeBySize(hdr.Size, hdr.Pokey())
}

func cartTypeBySize(size int, pokey bool) cartridge.CartType {
	switch {
	case size <= 0x2000:
		return cartridge.A7808
	case size <= 0x4000:
		return cartridge.A7816
	case size <= 0x8000:
		if pokey {
			return cartridge.A7832P
		}
		return cartridge.A7832
	case size <= 0xc000:
		return cartridge.A7848
	}
	return cartridge.Unknown
}

func (hdr A78Header) String() string {
	region := "NTSC"
	if hdr.PAL {
		region = "PAL"
	}
	return fmt.Sprintf("%q v%d %d bytes [%02x %02x] %s %s/%s", hdr.Title, hdr.Version, hdr.Size,
		hdr.CartType1, hdr.CartType2, region, hdr.LeftController, hdr.RightController)
}
