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

package cartridge

import "strings"

// CartType identifies the bankswitching scheme of a cartridge.
type CartType int

// List of valid CartType values. The order of the values is not significant
// and the numeric value is never serialised.
const (
	Unknown CartType = iota
	A2K
	TV8K
	A4K
	PB8K
	MN16K
	A16K
	A16KR
	A8K
	A8KR
	A32K
	A32KR
	CBS12K
	DC8K
	DPC
	M32N12K
	A7808
	A7816
	A7832
	A7832P
	A7848
	A78SG
	A78SGP
	A78SGR
	A78S9
	A78S4
	A78S4R
	A78AB
	A78AC

	A7832PL
	A78S9PL
	DPCPlus
	A78BB32K
	A78BB32KP
	A78BB32KRPL
	A78BB48K
	A78BB48KP
	A78BB52K
	A78BB128K
	A78BB128KR
	A78BB128KP
	A78BB128KRPL

	// wrapper carts. these can not be created by the Factory
	HSC7800
	XM7800

	numCartTypes
)

var cartTypeNames = [numCartTypes]string{
	"Unknown", "A2K", "TV8K", "A4K", "PB8K", "MN16K", "A16K", "A16KR", "A8K",
	"A8KR", "A32K", "A32KR", "CBS12K", "DC8K", "DPC", "M32N12K", "A7808",
	"A7816", "A7832", "A7832P", "A7848", "A78SG", "A78SGP", "A78SGR", "A78S9",
	"A78S4", "A78S4R", "A78AB", "A78AC",
	"A7832PL", "A78S9PL", "DPCPlus", "A78BB32K", "A78BB32KP", "A78BB32KRPL",
	"A78BB48K", "A78BB48KP", "A78BB52K", "A78BB128K", "A78BB128KR",
	"A78BB128KP", "A78BB128KRPL",
	"HSC7800", "XM7800",
}

var cartTypeDescriptions = [numCartTypes]string{
	A2K:          "Atari 2KB cart",
	TV8K:         "Tigervision 8KB bankswitched cart",
	A4K:          "Atari 4KB cart",
	PB8K:         "Parker Brothers 8KB bankswitched cart",
	MN16K:        "M-Network 16KB bankswitched cart",
	A16K:         "Atari 16KB bankswitched cart",
	A16KR:        "Atari 16KB bankswitched cart w/128 bytes RAM",
	A8K:          "Atari 8KB bankswitched cart",
	A8KR:         "Atari 8KB bankswitched cart w/128 bytes RAM",
	A32K:         "Atari 32KB bankswitched cart",
	A32KR:        "Atari 32KB bankswitched cart w/128 bytes RAM",
	CBS12K:       "CBS RAM Plus 12KB bankswitched cart w/256 bytes RAM",
	DC8K:         "Activision 8KB cart (Robot Tank and Decathlon)",
	DPC:          "Pitfall II DPC cart",
	M32N12K:      "32N1 multicart: 32x2KB",
	A7808:        "Atari 7800 non-bankswitched 8KB cart",
	A7816:        "Atari 7800 non-bankswitched 16KB cart",
	A7832:        "Atari 7800 non-bankswitched 32KB cart",
	A7832P:       "Atari 7800 non-bankswitched 32KB cart w/POKEY",
	A7848:        "Atari 7800 non-bankswitched 48KB cart",
	A78SG:        "Atari 7800 SuperGame cart",
	A78SGP:       "Atari 7800 SuperGame cart w/POKEY",
	A78SGR:       "Atari 7800 SuperGame cart w/RAM",
	A78S9:        "Atari 7800 SuperGame cart, nine banks",
	A78S4:        "Atari 7800 SuperGame cart, four banks",
	A78S4R:       "Atari 7800 SuperGame cart, four banks, w/RAM",
	A78AB:        "F18 Hornet cart (Absolute)",
	A78AC:        "Double Dragon cart (Activision)",
	A7832PL:      "Atari 7800 non-bankswitched 32KB cart w/POKEY at $0450",
	A78S9PL:      "Atari 7800 SuperGame cart, nine banks, w/POKEY at $0450",
	DPCPlus:      "DPC+ cart (Harmony)",
	A78BB32K:     "Atari 7800 bankset cart 2x32KB",
	A78BB32KP:    "Atari 7800 bankset cart 2x32KB w/POKEY at $4000",
	A78BB32KRPL:  "Atari 7800 bankset cart 2x32KB w/RAM, w/POKEY at $0800",
	A78BB48K:     "Atari 7800 bankset cart 2x48KB",
	A78BB48KP:    "Atari 7800 bankset cart 2x48KB w/POKEY at $4000",
	A78BB52K:     "Atari 7800 bankset cart 2x52KB",
	A78BB128K:    "Atari 7800 bankset cart 2x128KB",
	A78BB128KR:   "Atari 7800 bankset cart 2x128KB w/RAM",
	A78BB128KP:   "Atari 7800 bankset cart 2x128KB w/POKEY at $4000",
	A78BB128KRPL: "Atari 7800 bankset cart 2x128KB w/RAM, w/POKEY at $0800",
	HSC7800:      "Atari 7800 high score cart",
	XM7800:       "Atari 7800 expansion module",
}

func (t CartType) String() string {
	if t < 0 || t >= numCartTypes {
		return "Unknown"
	}
	return cartTypeNames[t]
}

// Description returns a longer, human readable description of the cart type.
func (t CartType) Description() string {
	if t < 0 || t >= numCartTypes {
		return ""
	}
	return cartTypeDescriptions[t]
}

// ParseCartType returns the CartType named by the string. The comparison is
// case insensitive. Unknown is returned if the string does not name a
// CartType.
func ParseCartType(s string) CartType {
	s = strings.TrimSpace(s)
	for t, n := range cartTypeNames {
		if strings.EqualFold(s, n) {
			return CartType(t)
		}
	}
	return Unknown
}

// CartTypes returns all CartType values that the Factory can create.
func CartTypes() []CartType {
	l := make([]CartType, 0, numCartTypes)
	for t := A2K; t < HSC7800; t++ {
		l = append(l, t)
	}
	return l
}

// Is7800 returns true if the cart type is a 7800 cartridge scheme.
func (t CartType) Is7800() bool {
	switch t {
	case Unknown, A2K, TV8K, A4K, PB8K, MN16K, A16K, A16KR, A8K, A8KR, A32K,
		A32KR, CBS12K, DC8K, DPC, M32N12K, DPCPlus:
		return false
	}
	return t > Unknown && t < numCartTypes
}
