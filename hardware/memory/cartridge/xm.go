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
	"github.com/jetsetilly/gopher7800/hardware/audio/pokey"
	"github.com/jetsetilly/gopher7800/hardware/audio/ym2151"
	"github.com/jetsetilly/gopher7800/hardware/memory/addressspace"
	"github.com/jetsetilly/gopher7800/hardware/memory/device"
	"github.com/jetsetilly/gopher7800/savestate"
)

// XMFilename is the name of the NVRAM file used by the expansion module.
const XMFilename = "XM.bin"

// xm is the 7800 eXpansion Module. Like the high score cart it sits between
// the console and the game cart.
//
//	$0450-$045F  POKEY
//	$0460-$0461  YM2151
//	$0470-$047F  XCTRL
//	$1000-$17FF  2K NVRAM
//	$3000-$3FFF  4K ROM
//	$4000-$7FFF  16K bank of the 128K RAM, or the game cart
//	$8000-$FFFF  the game cart
//
// XCTRL is YXXPMBBB. Y enables the YM2151, P enables the POKEY, M enables
// the RAM and BBB is the RAM bank.
type xm struct {
	rom   []uint8
	ram   []uint8
	nvram *device.NVRAM2k
	inner Cart

	pokey  *pokey.Pokey
	ym2151 *ym2151.YM2151

	xctrl uint8
}

const (
	xmROMSize  = 0x1000
	xmRAMSize  = 0x4000 * 8
	xmRAMShift = 14
	xmRAMMask  = 0x3fff
)

// NewXM7800 wraps the game cart with the expansion module. The ROM is the 4K
// high score ROM.
func NewXM7800(rom []uint8, inner Cart) (Cart, error) {
	if inner == nil {
		return nil, curated.Errorf(ConstructionError, "expansion module needs a game cart")
	}
	if len(rom) > xmROMSize {
		return nil, curated.Errorf(ConstructionError, fmt.Sprintf("expansion module ROM is larger than %#x bytes", xmROMSize))
	}
	return &xm{
		rom:   fixedROM(rom, xmROMSize),
		ram:   make([]uint8, xmRAMSize),
		nvram: device.NewNVRAM2k(XMFilename),
		inner: inner,
	}, nil
}

func (cart *xm) String() string {
	return fmt.Sprintf("%s [xctrl %02x] + %s", XM7800, cart.xctrl, cart.inner)
}

func (cart *xm) ramBank() int {
	return int(cart.xctrl & 0x07)
}

func (cart *xm) ramEnabled() bool {
	return cart.xctrl&0x08 == 0x08
}

func (cart *xm) pokeyEnabled() bool {
	return cart.xctrl&0x10 == 0x10
}

// bit 2 is also part of the bank number. the YM2151 is enabled by either bit
// 7 or bit 2, as the hardware decodes it.
func (cart *xm) ymEnabled() bool {
	return cart.xctrl&0x84 != 0
}

// Type implements the Cart interface.
func (cart *xm) Type() CartType {
	return XM7800
}

// Attach implements the Cart interface.
func (cart *xm) Attach(host Host) {
	cart.inner.Attach(host)

	if cart.pokey == nil {
		cart.pokey = pokey.NewPokey(host)
	} else {
		cart.pokey.Plumb(host)
	}

	if cart.ym2151 == nil {
		cart.ym2151 = ym2151.NewYM2151(host)
	} else {
		cart.ym2151.Plumb(host)
	}
}

// SelfMap implements the Cart interface. The game cart is mapped first and
// then the RAM window is mapped over it.
func (cart *xm) SelfMap(mem *addressspace.AddressSpace) bool {
	mem.Map(0x0440, 0x40, cart)
	mem.Map(0x1000, 0x0800, cart)
	mem.Map(0x3000, 0x1000, cart)
	mem.MapCart(0x4000, 0xc000, cart.inner)
	mem.Map(0x4000, 0x4000, cart)
	return true
}

// RequestSnooping implements the Cart interface.
func (cart *xm) RequestSnooping() bool {
	return false
}

// StartFrame implements the Cart interface.
func (cart *xm) StartFrame() {
	if cart.pokey != nil {
		cart.pokey.StartFrame()
	}
	if cart.ym2151 != nil {
		cart.ym2151.StartFrame()
	}
	cart.inner.StartFrame()
}

// EndFrame implements the Cart interface.
func (cart *xm) EndFrame() {
	if cart.pokey != nil {
		cart.pokey.EndFrame()
	}
	if cart.ym2151 != nil {
		cart.ym2151.EndFrame()
	}
	cart.inner.EndFrame()
}

// Reset implements the device.Device interface.
func (cart *xm) Reset() {
	cart.xctrl = 0
	cart.nvram.Reset()
	cart.inner.Reset()
	if cart.pokey != nil {
		cart.pokey.Reset()
	}
	if cart.ym2151 != nil {
		cart.ym2151.Reset()
	}
}

// Read implements the device.Device interface.
func (cart *xm) Read(addr uint16) uint8 {
	switch addr & 0xf000 {
	case 0x0000:
		switch addr & 0x04f0 {
		case 0x0450:
			if cart.pokey != nil {
				return cart.pokey.Read(addr)
			}
		case 0x0460:
			if cart.ymEnabled() && cart.ym2151 != nil {
				return cart.ym2151.Read(addr)
			}
		case 0x0470:
			return cart.xctrl
		}
		return 0xff
	case 0x1000:
		return cart.nvram.Read(addr)
	case 0x3000:
		return cart.rom[addr&(xmROMSize-1)]
	}

	if cart.ramEnabled() && addr>>xmRAMShift == 1 {
		return cart.ram[cart.ramBank()<<xmRAMShift|int(addr&xmRAMMask)]
	}

	return cart.inner.Read(addr)
}

// Write implements the device.Device interface.
func (cart *xm) Write(addr uint16, data uint8) {
	switch addr & 0xf000 {
	case 0x0000:
		switch addr & 0x04f0 {
		case 0x0450:
			if cart.pokeyEnabled() && cart.pokey != nil {
				cart.pokey.Write(addr, data)
			}
		case 0x0460:
			if cart.ymEnabled() && cart.ym2151 != nil {
				cart.ym2151.Write(addr, data)
			}
		case 0x0470:
			cart.xctrl = data
		}
		return
	case 0x1000:
		cart.nvram.Write(addr, data)
		return
	}

	if cart.ramEnabled() && addr>>xmRAMShift == 1 {
		cart.ram[cart.ramBank()<<xmRAMShift|int(addr&xmRAMMask)] = data
		return
	}

	cart.inner.Write(addr, data)
}

// Flush writes the NVRAM to its backing file.
func (cart *xm) Flush() error {
	return cart.nvram.Flush()
}

// Serialize implements the Cart interface.
func (cart *xm) Serialize(w *savestate.Writer) {
	writeHeader(w, XM7800, 1)
	w.WriteBytes(cart.rom)
	w.WriteBytes(cart.ram)
	w.WriteUint8(cart.xctrl)
	cart.nvram.Serialize(w)
	cart.inner.Serialize(w)
	writeOptionalPokey(w, cart.pokey)
	writeOptionalYM2151(w, cart.ym2151)
}

func deserializeXM(r *savestate.Reader, _ CartType) (Cart, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}

	cart := &xm{}
	cart.rom = r.ReadExpectedBytes(xmROMSize)
	cart.ram = r.ReadExpectedBytes(xmRAMSize)
	cart.xctrl = r.ReadUint8()
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

	cart.pokey, err = readOptionalPokey(r)
	if err != nil {
		return nil, err
	}

	cart.ym2151, err = readOptionalYM2151(r)
	if err != nil {
		return nil, err
	}

	return cart, nil
}
