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

package cartridgeloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher7800/cartridgeloader"
	"github.com/jetsetilly/gopher7800/hardware/input"
	"github.com/jetsetilly/gopher7800/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher7800/test"
)

func a78(title string, size int, ct1, ct2 uint8, region uint8) []byte {
	hdr := make([]byte, 0x80)
	hdr[0] = 3
	copy(hdr[1:], "ATARI7800")
	copy(hdr[0x11:], title)
	hdr[0x31] = uint8(size >> 24)
	hdr[0x32] = uint8(size >> 16)
	hdr[0x33] = uint8(size >> 8)
	hdr[0x34] = uint8(size)
	hdr[0x35] = ct1
	hdr[0x36] = ct2
	hdr[0x37] = 1
	hdr[0x38] = 2
	hdr[0x39] = region
	copy(hdr[0x64:], "ACTUAL CART DATA STARTS HERE")
	return append(hdr, make([]byte, size)...)
}

func TestNewLoader(t *testing.T) {
	test.ExpectEquality(t, cartridgeloader.NewLoader("game.a78", "").Mapping, "AUTO")
	test.ExpectEquality(t, cartridgeloader.NewLoader("game.bin", "auto").Mapping, "AUTO")
	test.ExpectEquality(t, cartridgeloader.NewLoader("game.a78sg", "").Mapping, "A78SG")
	test.ExpectEquality(t, cartridgeloader.NewLoader("game.bin", " a7832p ").Mapping, "A7832P")
	test.ExpectEquality(t, cartridgeloader.NewLoader("roms/Food Fight.a78", "").ShortName(), "Food Fight")
}

func TestHeader(t *testing.T) {
	data := a78("Dig Dug", 0x8000, 0, 0x01, 1)
	test.ExpectSuccess(t, cartridgeloader.IsA78(data))
	test.ExpectSuccess(t, !cartridgeloader.IsA78(data[0x80:]))

	hdr := cartridgeloader.ParseA78Header(data)
	test.ExpectEquality(t, hdr.Title, "Dig Dug")
	test.ExpectEquality(t, hdr.Size, 0x8000)
	test.ExpectSuccess(t, hdr.Pokey())
	test.ExpectSuccess(t, hdr.PAL)
	test.ExpectEquality(t, hdr.LeftController, input.ProLineJoystick)
	test.ExpectEquality(t, hdr.RightController, input.Lightgun)
	test.ExpectEquality(t, hdr.CartType(), cartridge.A7832P)
}

func TestHeaderCartType(t *testing.T) {
	for _, c := range []struct {
		size     int
		ct1, ct2 uint8
		expected cartridge.CartType
	}{
		{0x2000, 0, 0, cartridge.A7808},
		{0x4000, 0, 0, cartridge.A7816},
		{0x8000, 0, 0, cartridge.A7832},
		{0xc000, 0, 0, cartridge.A7848},
		{0x20000, 0, 2, cartridge.A78SG},
		{0x20000, 0, 3, cartridge.A78SGP},
		{0x10000, 0, 4, cartridge.A78S4R},
		{0x10000, 0, 8, cartridge.A78S4},
		{0x24000, 0, 2, cartridge.A78S9},
		{0x20000, 1, 0, cartridge.A78AB},
		{0x20000, 2, 0, cartridge.A78AC},
		{0x20000, 0, 0, cartridge.Unknown},
	} {
		hdr := cartridgeloader.A78Header{Size: c.size, CartType1: c.ct1, CartType2: c.ct2}
		test.ExpectEquality(t, hdr.CartType(), c.expected, c.size, c.ct1, c.ct2)
	}
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.a78")
	test.DemandSuccess(t, os.WriteFile(fn, a78("test", 0x4000, 0, 0, 0), 0o600))

	cl := cartridgeloader.NewLoader(fn, "")
	test.DemandSuccess(t, cl.Load())
	test.ExpectSuccess(t, cl.HasLoaded())
	test.ExpectEquality(t, len(cl.Data), 0x4000)
	test.ExpectSuccess(t, cl.Header != nil)
	test.ExpectInequality(t, cl.Hash, "")
	test.ExpectEquality(t, cl.Special(), cartridgeloader.NotSpecial)

	cart, err := cl.Cart()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cart.Type(), cartridge.A7816)

	// the hash is checked on subsequent loads
	hash := cl.Hash
	cl = cartridgeloader.NewLoader(fn, "")
	cl.Hash = "bad"
	test.ExpectFailure(t, cl.Load())

	cl = cartridgeloader.NewLoader(fn, "")
	cl.Hash = hash
	test.ExpectSuccess(t, cl.Load())

	// missing file
	cl = cartridgeloader.NewLoader(filepath.Join(t.TempDir(), "missing.a78"), "")
	test.ExpectFailure(t, cl.Load())
}

func TestMapping(t *testing.T) {
	cl := cartridgeloader.NewLoader("game.bin", "")
	test.DemandSuccess(t, cl.LoadBytes(make([]byte, 0x8000)))
	ct, err := cl.CartType()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ct, cartridge.A7832)

	cl = cartridgeloader.NewLoader("game.bin", "A7832P")
	test.DemandSuccess(t, cl.LoadBytes(make([]byte, 0x8000)))
	ct, err = cl.CartType()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ct, cartridge.A7832P)

	cl = cartridgeloader.NewLoader("game.bin", "NOTATYPE")
	test.DemandSuccess(t, cl.LoadBytes(make([]byte, 0x8000)))
	_, err = cl.CartType()
	test.ExpectFailure(t, err)

	// unloaded
	cl = cartridgeloader.NewLoader("game.bin", "")
	_, err = cl.Cart()
	test.ExpectFailure(t, err)
	test.ExpectFailure(t, cl.LoadBytes(nil))
}
