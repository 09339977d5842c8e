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

package maria

// TIA registers that remain in the 7800.
const (
	INPTCTRL = 0x01 // write while unlocked
	VBLANK   = 0x01 // write after INPTCTRL has been locked
	INPT0    = 0x08
	INPT1    = 0x09
	INPT2    = 0x0a
	INPT3    = 0x0b
	INPT4    = 0x0c
	INPT5    = 0x0d
)

// MARIA registers.
const (
	BACKGRND = 0x20
	WSYNC    = 0x24
	MSTAT    = 0x28
	DPPH     = 0x2c
	DPPL     = 0x30
	CHBASE   = 0x34
	OFFSET   = 0x38
	CTRL     = 0x3c
)

// INPTCTRL bits.
const (
	inptctrlLock   = 0x01
	inptctrlMaria  = 0x02
	inptctrlNoBIOS = 0x04
	inptctrlTIA    = 0x08
)

// CTRL bits.
const (
	ctrlColorKill = 0x80
	ctrlDMAMask   = 0x60
	ctrlDMAOn     = 0x40
	ctrlCharWidth = 0x10
	ctrlBorder    = 0x08
	ctrlKangaroo  = 0x04
	ctrlReadMode  = 0x03
)

// MSTAT bits.
const mstatVBlank = 0x80
