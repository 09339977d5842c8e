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

package cartridge_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/hardware/memory/addressspace"
	"github.com/jetsetilly/gopher7800/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher7800/hardware/memory/device"
	"github.com/jetsetilly/gopher7800/logger"
	"github.com/jetsetilly/gopher7800/savestate"
	"github.com/jetsetilly/gopher7800/test"
)

type host struct {
	clock  uint64
	buffer []uint8
}

func newHost() *host {
	return &host{buffer: make([]uint8, 524)}
}

func (h *host) CPUClock() uint64 {
	return h.clock
}

func (h *host) SoundBuffer() []uint8 {
	return h.buffer
}

// banked returns data of the given size where every byte holds the number
// of the bank it is in.
func banked(size int, bankSize int) []uint8 {
	d := make([]uint8, size)
	for i := range d {
		d[i] = uint8(i / bankSize)
	}
	return d
}

func create(t *testing.T, data []uint8, ct cartridge.CartType) cartridge.Cart {
	t.Helper()
	var f cartridge.Factory
	cart, err := f.Create(data, ct)
	test.DemandSuccess(t, err)
	return cart
}

func newMem() *addressspace.AddressSpace {
	return addressspace.NewAddressSpace(logger.Deny, 16, 6)
}

func TestInference(t *testing.T) {
	var f cartridge.Factory

	for size, ct := range map[int]cartridge.CartType{
		2048:  cartridge.A2K,
		4096:  cartridge.A4K,
		8192:  cartridge.A8K,
		16384: cartridge.A16K,
		32768: cartridge.A32K,
	} {
		cart, err := f.Create(make([]uint8, size), cartridge.Unknown)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, cart.Type(), ct)
	}

	_, err := f.Create(make([]uint8, 20000), cartridge.Unknown)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cartridge.ConstructionError))

	_, err = f.Create(make([]uint8, 4096), cartridge.CartType(1000))
	test.ExpectSuccess(t, curated.Is(err, cartridge.ConstructionError))

	// wrappers are not created by the factory
	_, err = f.Create(make([]uint8, 4096), cartridge.HSC7800)
	test.ExpectFailure(t, err)
}

func TestParseCartType(t *testing.T) {
	for _, ct := range cartridge.CartTypes() {
		test.ExpectEquality(t, cartridge.ParseCartType(ct.String()), ct)
	}
	test.ExpectEquality(t, cartridge.ParseCartType("a78sg"), cartridge.A78SG)
	test.ExpectEquality(t, cartridge.ParseCartType("nonsense"), cartridge.Unknown)
}

func TestAtariBankswitch(t *testing.T) {
	cart := create(t, banked(0x2000, 0x1000), cartridge.A8K)

	// the last bank is selected on reset
	test.ExpectEquality(t, cart.Read(0xf000), uint8(1))

	// reading a hotspot switches bank and the data read is from the new bank
	test.ExpectEquality(t, cart.Read(0xfff8), uint8(0))
	test.ExpectEquality(t, cart.Read(0xf000), uint8(0))

	// writing a hotspot switches bank too. the data is ignored
	cart.Write(0xfff9, 0x00)
	test.ExpectEquality(t, cart.Read(0xf000), uint8(1))

	cart.Read(0xfff8)
	cart.Reset()
	test.ExpectEquality(t, cart.Read(0xf000), uint8(1))
}

func TestAtari16K(t *testing.T) {
	cart := create(t, banked(0x4000, 0x1000), cartridge.A16K)
	test.ExpectEquality(t, cart.Read(0x1000), uint8(0))
	for b := uint16(0); b < 4; b++ {
		cart.Read(0x1ff6 + b)
		test.ExpectEquality(t, cart.Read(0x1000), uint8(b))
	}
}

func TestSmallCartsMirror(t *testing.T) {
	data := make([]uint8, 2048)
	data[0x10] = 0x42
	cart := create(t, data, cartridge.A2K)
	test.ExpectEquality(t, cart.Read(0x1010), uint8(0x42))
	test.ExpectEquality(t, cart.Read(0x1810), uint8(0x42))
}

func TestSuperChip(t *testing.T) {
	cart := create(t, banked(0x2000, 0x1000), cartridge.A8KR)

	cart.Write(0x1010, 0x42)
	test.ExpectEquality(t, cart.Read(0x1090), uint8(0x42))

	// the write port reads as ROM
	test.ExpectEquality(t, cart.Read(0x1010), uint8(1))
}

func TestCBS(t *testing.T) {
	cart := create(t, banked(0x3000, 0x1000), cartridge.CBS12K)
	test.ExpectEquality(t, cart.Read(0x1200), uint8(2))

	cart.Write(0x10f0, 0x37)
	test.ExpectEquality(t, cart.Read(0x11f0), uint8(0x37))

	cart.Read(0x1ff9)
	test.ExpectEquality(t, cart.Read(0x1200), uint8(1))
}

func TestMulticart(t *testing.T) {
	var f cartridge.Factory
	data := banked(0x0800*3, 0x0800)

	for _, slot := range []uint8{0, 1, 2, 0} {
		cart, err := f.Create(data, cartridge.M32N12K)
		test.DemandSuccess(t, err)
		test.ExpectEquality(t, cart.Read(0x1000), slot)
	}
}

func TestParkerBros(t *testing.T) {
	cart := create(t, banked(0x2000, 0x0400), cartridge.PB8K)

	test.ExpectEquality(t, cart.Read(0x1000), uint8(4))
	test.ExpectEquality(t, cart.Read(0x1c00), uint8(7))

	cart.Read(0x1fe2)
	test.ExpectEquality(t, cart.Read(0x1000), uint8(2))

	cart.Write(0x1fe9, 0)
	test.ExpectEquality(t, cart.Read(0x1400), uint8(1))

	cart.Read(0x1ff3)
	test.ExpectEquality(t, cart.Read(0x1800), uint8(3))

	// last segment is fixed
	test.ExpectEquality(t, cart.Read(0x1c00), uint8(7))
}

func TestMnetwork(t *testing.T) {
	cart := create(t, banked(0x4000, 0x0800), cartridge.MN16K)

	test.ExpectEquality(t, cart.Read(0x1000), uint8(0))
	test.ExpectEquality(t, cart.Read(0x1a00), uint8(7))

	cart.Read(0x1fe3)
	test.ExpectEquality(t, cart.Read(0x1000), uint8(3))

	// 1K RAM in the lower segment
	cart.Read(0x1fe7)
	cart.Write(0x1010, 0x55)
	test.ExpectEquality(t, cart.Read(0x1410), uint8(0x55))

	// 256 byte RAM
	cart.Read(0x1fe9)
	cart.Write(0x1810, 0x66)
	test.ExpectEquality(t, cart.Read(0x1910), uint8(0x66))
	cart.Read(0x1fe8)
	test.ExpectEquality(t, cart.Read(0x1910), uint8(0x00))
	cart.Read(0x1fe9)
	test.ExpectEquality(t, cart.Read(0x1910), uint8(0x66))
}

func TestTigervision(t *testing.T) {
	cart := create(t, banked(0x2000, 0x0800), cartridge.TV8K)
	test.ExpectSuccess(t, cart.RequestSnooping())

	mem := newMem()
	mem.MapCart(0x4000, 0xc000, cart)
	test.ExpectEquality[device.Device](t, mem.Snooper(), cart)

	test.ExpectEquality(t, mem.Read(0xf000), uint8(0))
	test.ExpectEquality(t, mem.Read(0xf800), uint8(3))

	mem.Write(0x003f, 2)
	test.ExpectEquality(t, mem.Read(0xf000), uint8(2))

	// only writes to $00-$3F switch banks
	mem.Write(0x0040, 1)
	test.ExpectEquality(t, mem.Read(0xf000), uint8(2))

	test.ExpectEquality(t, mem.Read(0xf800), uint8(3))
}

func TestActivision(t *testing.T) {
	data := make([]uint8, 0x2000)
	for i := range data {
		if i < 0x1000 {
			data[i] = 0xa0
		} else {
			data[i] = 0xb1
		}
	}
	cart := create(t, data, cartridge.DC8K)

	mem := newMem()
	ram := device.NewRAM6116()
	mem.Map(0x1800, 0x0800, ram)
	mem.MapCart(0x4000, 0xc000, cart)

	test.ExpectEquality(t, mem.Read(0xf000), uint8(0xa0))

	// the byte written after the access to $01FE selects the bank
	mem.Write(0x01fe, 0x12)
	mem.Write(0x01fd, 0xd0)
	test.ExpectEquality(t, mem.Read(0xf000), uint8(0xb1))

	// the byte read after the access to $01FE selects the bank
	ram.Write(0x1800, 0xf0)
	mem.Read(0x01fe)
	mem.Read(0x1800)
	test.ExpectEquality(t, mem.Read(0xf000), uint8(0xa0))

	// ordinary accesses do not change the bank
	mem.Read(0x01fd)
	mem.Read(0x1800)
	test.ExpectEquality(t, mem.Read(0xf000), uint8(0xa0))
}

func TestDPCRandom(t *testing.T) {
	cart := create(t, nil, cartridge.DPC)

	for _, v := range []uint8{0x03, 0x07, 0x0f, 0x1e} {
		test.ExpectEquality(t, cart.Read(0x1000), v)
	}

	// reset the random number generator
	cart.Write(0x1070, 0)
	test.ExpectEquality(t, cart.Read(0x1000), uint8(0x03))
}

func TestDPCDisplay(t *testing.T) {
	data := make([]uint8, 0x2800)
	data[0x2000] = 0xaa
	data[0x2001] = 0xbb
	data[0x0100] = 0x01
	data[0x1100] = 0x02
	cart := create(t, data, cartridge.DPC)

	// counter of fetcher zero to $7FF
	cart.Write(0x1050, 0xff)
	cart.Write(0x1058, 0x07)

	test.ExpectEquality(t, cart.Read(0x1008), uint8(0xaa))
	test.ExpectEquality(t, cart.Read(0x1008), uint8(0xbb))

	test.ExpectEquality(t, cart.Read(0x1100), uint8(0x02))
	cart.Read(0x1ff8)
	test.ExpectEquality(t, cart.Read(0x1100), uint8(0x01))
}

func TestDPCPlus(t *testing.T) {
	data := banked(0x1000*6, 0x1000)
	cart := create(t, data, cartridge.DPCPlus)

	// bank 5 on reset
	test.ExpectEquality(t, cart.Read(0x1100), uint8(5))
	cart.Read(0x1ff6)
	test.ExpectEquality(t, cart.Read(0x1100), uint8(0))

	// bytes of the random number seed
	test.ExpectEquality(t, cart.Read(0x1002), uint8(0x50))
	test.ExpectEquality(t, cart.Read(0x1003), uint8(0x43))
	test.ExpectEquality(t, cart.Read(0x1004), uint8(0x2b))

	// next followed by prior returns to the seed
	cart.Read(0x1000)
	test.ExpectEquality(t, cart.Read(0x1001), uint8(0x44))

	// fetcher one counter to $110, write a byte and read it back
	cart.Write(0x1051, 0x10)
	cart.Write(0x1069, 0x01)
	cart.Write(0x1079, 0x5a)
	cart.Write(0x1051, 0x10)
	test.ExpectEquality(t, cart.Read(0x1009), uint8(0x5a))

	// push decrements then writes
	cart.Write(0x1061, 0x77)
	cart.Write(0x1051, 0x10)
	test.ExpectEquality(t, cart.Read(0x1009), uint8(0x77))
}

func TestDPCPlusFlag(t *testing.T) {
	cart := create(t, make([]uint8, 0x1000*6), cartridge.DPCPlus)

	// top below bottom
	cart.Write(0x1040, 0x10)
	cart.Write(0x1048, 0x20)
	cart.Write(0x1050, 0x05)
	test.ExpectEquality(t, cart.Read(0x1020), uint8(0xff))

	// counter inside and outside the window
	cart.Write(0x1040, 0x20)
	cart.Write(0x1048, 0x10)
	cart.Write(0x1050, 0x18)
	test.ExpectEquality(t, cart.Read(0x1020), uint8(0x00))
	cart.Write(0x1050, 0x05)
	test.ExpectEquality(t, cart.Read(0x1020), uint8(0xff))
}

// musicSteps advances the host clock in uneven steps and lets the cart see
// each one by calling update. the cart is replaced by a restored copy half
// way through. the final cart is returned.
func musicSteps(t *testing.T, cart cartridge.Cart, h *host, update func(cartridge.Cart)) cartridge.Cart {
	t.Helper()

	for i := 0; i < 500; i++ {
		h.clock++
		update(cart)
	}
	h.clock += 12345
	update(cart)

	var buf bytes.Buffer
	w := savestate.NewWriter(&buf)
	cart.Serialize(w)
	test.DemandSuccess(t, w.Err())
	cart, err := cartridge.Deserialize(savestate.NewReader(&buf))
	test.DemandSuccess(t, err)
	cart.Attach(h)

	for i := 0; i < 300; i++ {
		h.clock += 7
		update(cart)
	}
	h.clock += 40030
	update(cart)

	return cart
}

func TestDPCMusicClock(t *testing.T) {
	// the display byte for every counter value is the low byte of the counter
	data := make([]uint8, 0x2800)
	for k := 0; k < 0x0800; k++ {
		data[0x2000+k] = uint8(0x07ff - k)
	}

	start := func(h *host) cartridge.Cart {
		cart := create(t, data, cartridge.DPC)
		cart.Attach(h)
		cart.Write(0x1045, 0xff)
		cart.Write(0x104d, 0x00)
		cart.Write(0x105d, 0x10)
		cart.Write(0x1055, 0x00)
		test.DemandEquality(t, cart.Read(0x100d), uint8(0xff))
		return cart
	}

	update := func(cart cartridge.Cart) {
		cart.Read(0x1005)
	}

	stepped := newHost()
	a := musicSteps(t, start(stepped), stepped, update)

	single := newHost()
	b := start(single)
	single.clock = stepped.clock
	update(b)

	// 54975 cycles is 921 whole oscillator clocks
	test.ExpectEquality(t, a.Read(0x100d), uint8(0xff-921%256))
	test.ExpectEquality(t, b.Read(0x100d), uint8(0xff-921%256))
}

func TestDPCPlusMusicClock(t *testing.T) {
	// display bytes 0 to 31 hold their own offset. the first frequency in
	// the table steps the top five bits of the music counter by one
	data := make([]uint8, 0x7400)
	for k := 0; k < 32; k++ {
		data[0x6000+k] = uint8(k)
	}
	data[0x7003] = 0x08

	start := func(h *host) cartridge.Cart {
		cart := create(t, data, cartridge.DPCPlus)
		cart.Attach(h)
		cart.Read(0x1005)
		cart.Write(0x1075, 0x00)
		return cart
	}

	stepped := newHost()
	a := musicSteps(t, start(stepped), stepped, func(cart cartridge.Cart) {
		cart.Read(0x1005)
	})

	single := newHost()
	b := start(single)
	single.clock = stepped.clock

	test.ExpectEquality(t, a.Read(0x1005), uint8(921%32))
	test.ExpectEquality(t, b.Read(0x1005), uint8(921%32))
}

func TestFlat(t *testing.T) {
	data := make([]uint8, 0x2000)
	data[0] = 0x11
	data[0x1fff] = 0x22
	cart := create(t, data, cartridge.A7808)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(0x11))
	test.ExpectEquality(t, cart.Read(0xe000), uint8(0x11))
	test.ExpectEquality(t, cart.Read(0xffff), uint8(0x22))

	data = make([]uint8, 0xc000)
	data[0] = 0x33
	data[0xbfff] = 0x44
	cart = create(t, data, cartridge.A7848)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(0x33))
	test.ExpectEquality(t, cart.Read(0xffff), uint8(0x44))
}

func TestFlatPokey(t *testing.T) {
	data := make([]uint8, 0x8000)
	data[0] = 0x55
	cart := create(t, data, cartridge.A7832PL)
	cart.Attach(newHost())

	mem := newMem()
	mem.MapCart(0x4000, 0xc000, cart)
	test.ExpectEquality[device.Device](t, mem.Device(0x0450), cart)
	test.ExpectEquality[device.Device](t, mem.Device(0x0440), cart)
	test.ExpectEquality(t, mem.Read(0x8000), uint8(0x55))
	test.ExpectEquality(t, mem.Read(0xc000), uint8(0x00))
}

func TestSuperGame(t *testing.T) {
	cart := create(t, banked(0x20000, 0x4000), cartridge.A78SG)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(6))
	test.ExpectEquality(t, cart.Read(0x8000), uint8(0))
	test.ExpectEquality(t, cart.Read(0xc000), uint8(7))
	cart.Write(0x8000, 3)
	test.ExpectEquality(t, cart.Read(0x8000), uint8(3))
	cart.Write(0x8000, 0x0b)
	test.ExpectEquality(t, cart.Read(0x8000), uint8(3))

	cart = create(t, banked(0x24000, 0x4000), cartridge.A78S9)
	test.ExpectEquality(t, cart.Read(0x8000), uint8(1))
	test.ExpectEquality(t, cart.Read(0xc000), uint8(8))
	cart.Write(0x8000, 2)
	test.ExpectEquality(t, cart.Read(0x8000), uint8(3))

	cart = create(t, banked(0x10000, 0x4000), cartridge.A78AB)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(0))
	cart.Write(0x8000, 2)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(1))
	cart.Write(0x8000, 1)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(0))

	cart = create(t, banked(0x20000, 0x2000), cartridge.A78AC)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(13))
	test.ExpectEquality(t, cart.Read(0xa000), uint8(0))
	cart.Write(0xff83, 0)
	test.ExpectEquality(t, cart.Read(0xa000), uint8(6))
	test.ExpectEquality(t, cart.Read(0xc000), uint8(7))
}

func TestSuperGameRAM(t *testing.T) {
	cart := create(t, banked(0x20000, 0x4000), cartridge.A78SGR)
	cart.Write(0x4000, 0x99)
	test.ExpectEquality(t, cart.Read(0x4000), uint8(0x99))

	cart = create(t, banked(0x10000, 0x4000), cartridge.A78S4R)
	cart.Write(0x6001, 0x12)
	test.ExpectEquality(t, cart.Read(0x6001), uint8(0x12))
	test.ExpectEquality(t, cart.Read(0x4000), uint8(2))
	cart.Write(0x8000, 1)
	test.ExpectEquality(t, cart.Read(0x8000), uint8(1))
}

func TestBanksetMariaRead(t *testing.T) {
	data := make([]uint8, 0x10000)
	for i := range data {
		if i < 0x8000 {
			data[i] = 0x11
		} else {
			data[i] = 0x22
		}
	}
	cart := create(t, data, cartridge.A78BB32K)

	mem := newMem()
	mem.MapCart(0x4000, 0xc000, cart)

	test.ExpectEquality(t, mem.Read(0x8000), uint8(0x11))
	mem.SetMariaRead(true)
	test.ExpectEquality(t, mem.Read(0x8000), uint8(0x22))
	mem.SetMariaRead(false)

	// the image is placed at the top of each half
	test.ExpectEquality(t, mem.Read(0x4000), uint8(0x00))
}

func TestBanksetRAM(t *testing.T) {
	cart := create(t, make([]uint8, 0x8000), cartridge.A78BB128KR)

	mem := newMem()
	mem.MapCart(0x4000, 0xc000, cart)

	mem.Write(0x4010, 0x31)
	mem.Write(0xc010, 0x32)
	test.ExpectEquality(t, mem.Read(0x4010), uint8(0x31))
	mem.SetMariaRead(true)
	test.ExpectEquality(t, mem.Read(0x4010), uint8(0x32))
}

func TestBanksetSize(t *testing.T) {
	var f cartridge.Factory
	_, err := f.Create(make([]uint8, 0x30000), cartridge.A78BB32K)
	test.ExpectSuccess(t, curated.Is(err, cartridge.ConstructionError))

	_, err = f.Create(make([]uint8, 0x30000), cartridge.A78BB128K)
	test.ExpectSuccess(t, err)
}

func TestHSC(t *testing.T) {
	device.NVRAMDir = t.TempDir()

	data := make([]uint8, 0x4000)
	data[0] = 0x42
	inner := create(t, data, cartridge.A7816)

	rom := make([]uint8, 0x1000)
	rom[0] = 0x24
	cart, err := cartridge.NewHSC7800(rom, inner)
	test.DemandSuccess(t, err)

	mem := newMem()
	mem.MapCart(0x4000, 0xc000, cart)

	mem.Write(0x1000, 0x77)
	test.ExpectEquality(t, mem.Read(0x1000), uint8(0x77))
	test.ExpectEquality(t, mem.Read(0x3000), uint8(0x24))
	test.ExpectEquality(t, mem.Read(0x8000), uint8(0x42))
	test.ExpectEquality[device.Device](t, mem.Device(0x8000), inner)

	_, err = cartridge.NewHSC7800(rom, nil)
	test.ExpectFailure(t, err)
}

func TestXM(t *testing.T) {
	device.NVRAMDir = t.TempDir()

	data := make([]uint8, 0x4000)
	data[0] = 0x42
	inner := create(t, data, cartridge.A7816)

	cart, err := cartridge.NewXM7800(make([]uint8, 0x1000), inner)
	test.DemandSuccess(t, err)
	cart.Attach(newHost())

	mem := newMem()
	mem.MapCart(0x4000, 0xc000, cart)

	test.ExpectEquality(t, mem.Read(0x4000), uint8(0x42))

	// RAM enabled, bank two
	mem.Write(0x0470, 0x0a)
	test.ExpectEquality(t, mem.Read(0x0470), uint8(0x0a))
	mem.Write(0x4000, 0x5a)
	test.ExpectEquality(t, mem.Read(0x4000), uint8(0x5a))

	mem.Write(0x0470, 0x0b)
	test.ExpectEquality(t, mem.Read(0x4000), uint8(0x00))

	// RAM disabled
	mem.Write(0x0470, 0x00)
	test.ExpectEquality(t, mem.Read(0x4000), uint8(0x42))

	// the game cart is visible above the RAM window
	test.ExpectEquality(t, mem.Read(0x8000), uint8(0x42))

	// YM2151 is not visible until enabled
	test.ExpectEquality(t, mem.Read(0x0460), uint8(0xff))

	// enabled by either bit 7 or bit 2
	mem.Write(0x0470, 0x80)
	test.ExpectEquality(t, mem.Read(0x0460), uint8(0x00))
	mem.Write(0x0470, 0x04)
	test.ExpectEquality(t, mem.Read(0x0460), uint8(0x00))
	mem.Write(0x0470, 0x10)
	test.ExpectEquality(t, mem.Read(0x0460), uint8(0xff))
}

func roundTrip(t *testing.T, cart cartridge.Cart) {
	t.Helper()

	var a bytes.Buffer
	w := savestate.NewWriter(&a)
	cart.Serialize(w)
	test.DemandSuccess(t, w.Err())
	first := append([]byte{}, a.Bytes()...)

	restored, err := cartridge.Deserialize(savestate.NewReader(&a))
	test.DemandSuccess(t, err, cart.Type())
	test.ExpectEquality(t, restored.Type(), cart.Type())

	var b bytes.Buffer
	w = savestate.NewWriter(&b)
	restored.Serialize(w)
	test.DemandSuccess(t, w.Err())
	test.ExpectSuccess(t, bytes.Equal(first, b.Bytes()), cart.Type())
}

func TestSerializeAll(t *testing.T) {
	device.NVRAMDir = t.TempDir()

	h := newHost()

	data := make([]uint8, 0x8000)
	for i := range data {
		data[i] = uint8(i * 7)
	}

	for _, ct := range cartridge.CartTypes() {
		cart := create(t, data, ct)
		cart.Attach(h)

		// disturb the state a little
		cart.Write(0x8000, 0x03)
		cart.Write(0x1ff9, 0x00)
		cart.Write(0x4010, 0x21)
		cart.Read(0x1fe2)

		roundTrip(t, cart)
	}

	inner := create(t, data, cartridge.A78SGP)
	cart, err := cartridge.NewXM7800(nil, inner)
	test.DemandSuccess(t, err)
	cart.Attach(h)
	cart.Write(0x0470, 0x9c)
	cart.Write(0x4000, 0x10)
	roundTrip(t, cart)

	inner = create(t, data, cartridge.A7832)
	cart, err = cartridge.NewHSC7800(nil, inner)
	test.DemandSuccess(t, err)
	cart.Attach(h)
	cart.Write(0x1234, 0x56)
	roundTrip(t, cart)
}

func TestDeserializeBadBank(t *testing.T) {
	cart := create(t, banked(0x20000, 0x4000), cartridge.A78SG)

	var buf bytes.Buffer
	w := savestate.NewWriter(&buf)
	cart.Serialize(w)
	test.DemandSuccess(t, w.Err())

	// the bank integers follow the ROM. corrupt the first one
	b := buf.Bytes()
	romEnd := len(b) - (4 + 16) - 1
	b[romEnd+4] = 0x40

	_, err := cartridge.Deserialize(savestate.NewReader(bytes.NewReader(b)))
	test.ExpectFailure(t, err)
}

func TestDeserializeA16KRWithoutRAM(t *testing.T) {
	stream := func(version int32) *bytes.Buffer {
		rom := make([]uint8, 0x4000)
		rom[0x3100] = 0x33

		var buf bytes.Buffer
		w := savestate.NewWriter(&buf)
		w.WriteString("A16KR")
		w.WriteVersion(1)
		w.WriteVersion(version)
		w.WriteBytes(rom)
		w.WriteUint16(0x3000)
		test.DemandSuccess(t, w.Err())
		return &buf
	}

	// older streams do not carry the RAM
	cart, err := cartridge.Deserialize(savestate.NewReader(stream(1)))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.Type(), cartridge.A16KR)
	test.ExpectEquality(t, cart.Read(0x1100), uint8(0x33))
	test.ExpectEquality(t, cart.Read(0x1080), uint8(0x00))

	// and are written back as the current version
	roundTrip(t, cart)

	_, err = cartridge.Deserialize(savestate.NewReader(stream(3)))
	test.ExpectFailure(t, err)
}

func TestDeserializeUnknownType(t *testing.T) {
	var buf bytes.Buffer
	w := savestate.NewWriter(&buf)
	w.WriteString("NotACart")
	w.WriteVersion(1)

	_, err := cartridge.Deserialize(savestate.NewReader(&buf))
	test.ExpectFailure(t, err)
}
