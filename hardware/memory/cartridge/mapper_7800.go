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

import (
	"github.com/jetsetilly/gopher7800/hardware/audio/pokey"
	"github.com/jetsetilly/gopher7800/hardware/memory/addressspace"
	"github.com/jetsetilly/gopher7800/savestate"
)

// flat is the unbanked 7800 format. The ROM is mirrored downwards from the
// top of the address space until it reaches $4000.
//
//	A7808   8K   $4000-$FFFF (mirrored)
//	A7816   16K  $4000-$FFFF (mirrored)
//	A7832   32K  $4000-$FFFF (mirrored)
//	A7832P  32K  $8000-$FFFF, POKEY at $4000
//	A7832PL 32K  $8000-$FFFF, POKEY at $0450
//	A7848   48K  $4000-$FFFF
type flat struct {
	cartType CartType
	rom      []uint8

	// a pokey window is present if pokeyMatch is non-zero
	pokeyMatch uint16
	pokey      *pokey.Pokey
}

func flatSize(t CartType) int {
	switch t {
	case A7808:
		return 0x2000
	case A7816:
		return 0x4000
	case A7848:
		return 0xc000
	}
	return 0x8000
}

func newFlat(t CartType, data []uint8) *flat {
	cart := &flat{
		cartType: t,
		rom:      fixedROM(data, flatSize(t)),
	}
	switch t {
	case A7832P:
		cart.pokeyMatch = 0x4000
	case A7832PL:
		cart.pokeyMatch = 0x0450
	}
	return cart
}

func (cart *flat) String() string {
	return cart.cartType.String()
}

// Type implements the Cart interface.
func (cart *flat) Type() CartType {
	return cart.cartType
}

// Attach implements the Cart interface.
func (cart *flat) Attach(host Host) {
	if cart.pokeyMatch == 0 {
		return
	}
	if cart.pokey == nil {
		cart.pokey = pokey.NewPokey(host)
	} else {
		cart.pokey.Plumb(host)
	}
}

// SelfMap implements the Cart interface. A7832PL maps the page containing
// the POKEY as well as the ROM.
func (cart *flat) SelfMap(mem *addressspace.AddressSpace) bool {
	if cart.cartType != A7832PL {
		return false
	}
	mem.Map(0x0440, 0x40, cart)
	mem.Map(0x4000, 0xc000, cart)
	return true
}

// RequestSnooping implements the Cart interface.
func (cart *flat) RequestSnooping() bool {
	return false
}

// StartFrame implements the Cart interface.
func (cart *flat) StartFrame() {
	if cart.pokey != nil {
		cart.pokey.StartFrame()
	}
}

// EndFrame implements the Cart interface.
func (cart *flat) EndFrame() {
	if cart.pokey != nil {
		cart.pokey.EndFrame()
	}
}

// Reset implements the device.Device interface.
func (cart *flat) Reset() {
	if cart.pokey != nil {
		cart.pokey.Reset()
	}
}

func (cart *flat) isPokey(addr uint16) bool {
	return cart.pokeyMatch != 0 && addr&0xfff0 == cart.pokeyMatch
}

// Read implements the device.Device interface.
func (cart *flat) Read(addr uint16) uint8 {
	if cart.isPokey(addr) {
		if cart.pokey == nil {
			return 0
		}
		return cart.pokey.Read(addr)
	}

	if cart.cartType == A7848 {
		if addr < 0x4000 {
			return 0
		}
		return cart.rom[addr-0x4000]
	}

	return cart.rom[int(addr)&(len(cart.rom)-1)]
}

// Write implements the device.Device interface.
func (cart *flat) Write(addr uint16, data uint8) {
	if cart.isPokey(addr) && cart.pokey != nil {
		cart.pokey.Write(addr, data)
	}
}

// Serialize implements the Cart interface.
func (cart *flat) Serialize(w *savestate.Writer) {
	writeHeader(w, cart.cartType, 1)
	w.WriteBytes(cart.rom)
	if cart.pokeyMatch != 0 {
		writeOptionalPokey(w, cart.pokey)
	}
}

func deserializeFlat(r *savestate.Reader, t CartType) (Cart, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}

	cart := newFlat(t, nil)
	cart.rom = r.ReadExpectedBytes(flatSize(t))

	if cart.pokeyMatch != 0 {
		p, err := readOptionalPokey(r)
		if err != nil {
			return nil, err
		}
		cart.pokey = p
	}

	if err := r.Err(); err != nil {
		return nil, err
	}

	return cart, nil
}
