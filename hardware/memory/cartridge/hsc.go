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
	"fmt"

	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/hardware/memory/addressspace"
	"github.com/jetsetilly/gopher7800/hardware/memory/device"
	"github.com/jetsetilly/gopher7800/savestate"
)

// HSCFilename is the name of the NVRAM file used by the high score cart.
const HSCFilename = "HSC.bin"

// hsc is the 7800 High Score Cartridge. It sits between the console and the
// game cart.
//
//	$1000-$17FF  2K NVRAM
//	$3000-$3FFF  4K ROM
//	$4000-$FFFF  the game cart
type hsc struct {
	rom   []uint8
	nvram *device.NVRAM2k
	inner Cart
}

const hscROMSize = 0x1000

// NewHSC7800 wraps the game cart with the high score cart. The ROM is the
// 4K high score cart ROM.
func NewHSC7800(rom []uint8, inner Cart) (Cart, error) {
	if inner == nil {
		return nil, curated.Errorf(ConstructionError, "high score cart needs a game cart")
	}
	if len(rom) > hscROMSize {
		return nil, curated.Errorf(ConstructionError, fmt.Sprintf("high score ROM is larger than %#x bytes", hscROMSize))
	}
	return &hsc{
		rom:   fixedROM(rom, hscROMSize),
		nvram: device.NewNVRAM2k(HSCFilename),
		inner: inner,
	}, nil
}

func (cart *hsc) String() string {
	return fmt.Sprintf("%s + %s", HSC7800, cart.inner)
}

// Type implements the Cart interface.
func (cart *hsc) Type() CartType {
	return HSC7800
}

// Attach implements the Cart interface.
func (cart *hsc) Attach(host Host) {
	cart.inner.Attach(host)
}

// SelfMap implements the Cart interface.
func (cart *hsc) SelfMap(mem *addressspace.AddressSpace) bool {
	mem.Map(0x1000, 0x0800, cart)
	mem.Map(0x3000, 0x1000, cart)
	mem.MapCart(0x4000, 0xc000, cart.inner)
	return true
}

// RequestSnooping implements the Cart interface.
func (cart *hsc) RequestSnooping() bool {
	return false
}

// StartFrame implements the Cart interface.
func (cart *hsc) StartFrame() {
	cart.inner.StartFrame()
}

// EndFrame implements the Cart interface.
func (cart *hsc) EndFrame() {
	cart.inner.EndFrame()
}

// Reset implements the device.Device interface.
func (cart *hsc) Reset() {
	cart.nvram.Reset()
	cart.inner.Reset()
}

// Read implements the device.Device interface.
func (cart *hsc) Read(addr uint16) uint8 {
	switch addr & 0xf000 {
	case 0x1000:
		return cart.nvram.Read(addr)
	case 0x3000:
		return cart.rom[addr&(hscROMSize-1)]
	}
	return cart.inner.Read(addr)
}

// Write implements the device.Device interface.
func (cart *hsc) Write(addr uint16, data uint8) {
	if addr&0xf000 == 0x1000 {
		cart.nvram.Write(addr, data)
		return
	}
	cart.inner.Write(addr, data)
}

// Flush writes the NVRAM to its backing file.
func (cart *hsc) Flush() error {
	return cart.nvram.Flush()
}

// Serialize implements the Cart interface.
func (cart *hsc) Serialize(w *savestate.Writer) {
	writeHeader(w, HSC7800, 1)
	w.WriteBytes(cart.rom)
	cart.nvram.Serialize(w)
	cart.inner.Serialize(w)
}

func deserializeHSC(r *savestate.Reader, _ CartType) (Cart, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}

	cart := &hsc{}
	cart.rom = r.ReadExpectedBytes(hscROMSize)
	if err := r.Err(); err != nil {
		return nil, err
	}

	var err error

	cart.nvram, err = device.DeserializeNVRAM2k(r)
	if err != nil {
		return nil, err
	}

	cart.inner, err = Deserialize(r)
	if err != nil {
		return nil, err
	}

	return cart, nil
}
