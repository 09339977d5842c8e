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

package addressspace_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gopher7800/hardware/memory/addressspace"
	"github.com/jetsetilly/gopher7800/hardware/memory/device"
	"github.com/jetsetilly/gopher7800/logger"
	"github.com/jetsetilly/gopher7800/savestate"
	"github.com/jetsetilly/gopher7800/test"
)

// recorder is a device that remembers every access made to it.
type recorder struct {
	name  string
	value uint8
	log   *[]string
}

func (r *recorder) Reset() {}

func (r *recorder) Read(addr uint16) uint8 {
	*r.log = append(*r.log, r.name+" read")
	return r.value
}

func (r *recorder) Write(addr uint16, data uint8) {
	*r.log = append(*r.log, r.name+" write")
}

// snoopingCart is a recorder that asks to be the snooper.
type snoopingCart struct {
	recorder
	snoop   bool
	selfMap bool
}

func (c *snoopingCart) RequestSnooping() bool {
	return c.snoop
}

func (c *snoopingCart) SelfMap(mem *addressspace.AddressSpace) bool {
	if c.selfMap {
		mem.Map(0x8000, 0x40, c)
	}
	return c.selfMap
}

func TestNullDefault(t *testing.T) {
	mem := addressspace.NewAddressSpace(logger.Deny, 16, 6)
	for a := 0; a < 0x10000; a += 0x3f {
		mem.Write(uint16(a), 0xff)
		if !test.ExpectEquality(t, mem.Read(uint16(a)), uint8(0), a) {
			break
		}
	}
}

func TestLastMapWins(t *testing.T) {
	mem := addressspace.NewAddressSpace(logger.Deny, 16, 6)
	ram0 := device.NewRAM6116()
	ram1 := device.NewRAM6116()
	ram0.Write(0, 0x11)
	ram1.Write(0, 0x22)

	mem.Map(0x2000, 0x0800, ram0)
	mem.Map(0x2000, 0x0040, ram1)
	test.ExpectEquality(t, mem.Read(0x2000), uint8(0x22))
	test.ExpectEquality(t, mem.Read(0x2040), uint8(0x00))
	test.ExpectEquality(t, mem.Device(0x2040), device.Device(ram0))
}

func TestPartialPage(t *testing.T) {
	mem := addressspace.NewAddressSpace(logger.Deny, 16, 6)
	ram := device.NewRAM6116()

	// a range that begins part way through a page and ends part way through
	// the next page maps both pages
	mem.Map(0x1020, 0x0030, ram)
	test.ExpectEquality(t, mem.Device(0x1000), device.Device(ram))
	test.ExpectEquality(t, mem.Device(0x1040), device.Device(ram))
	test.ExpectEquality(t, mem.Device(0x1080), device.Device(device.Null{}))
}

func TestTwoPhaseAccess(t *testing.T) {
	var log []string
	mem := addressspace.NewAddressSpace(logger.Deny, 16, 6)

	cart := &snoopingCart{recorder: recorder{name: "cart", value: 0xaa, log: &log}, snoop: true}
	ram := &recorder{name: "ram", value: 0x55, log: &log}

	mem.MapCart(0x4000, 0xc000, cart)
	mem.Map(0x1800, 0x0800, ram)

	// the value returned is from the mapped device, not the snooper
	test.ExpectEquality(t, mem.Read(0x1800), uint8(0x55))
	test.ExpectEquality(t, mem.DataBusState(), uint8(0x55))
	mem.Write(0x1800, 0x01)
	test.ExpectEquality(t, mem.DataBusState(), uint8(0x01))

	test.DemandEquality(t, len(log), 4)
	test.ExpectEquality(t, log[0], "cart read")
	test.ExpectEquality(t, log[1], "ram read")
	test.ExpectEquality(t, log[2], "cart write")
	test.ExpectEquality(t, log[3], "ram write")

	// the cart was mapped contiguously because SelfMap() returned false
	test.ExpectEquality(t, mem.Read(0xfffc), uint8(0xaa))
}

func TestNoSnoop(t *testing.T) {
	var log []string
	mem := addressspace.NewAddressSpace(logger.Deny, 16, 6)
	cart := &snoopingCart{recorder: recorder{name: "cart", value: 0xaa, log: &log}, selfMap: true}
	mem.MapCart(0x4000, 0xc000, cart)

	test.ExpectEquality(t, mem.Snooper(), device.Device(device.Null{}))
	test.ExpectEquality(t, mem.Read(0x8000), uint8(0xaa))
	test.ExpectEquality(t, mem.Read(0x4000), uint8(0x00))
	test.ExpectEquality(t, len(log), 1)
}

func TestSerialize(t *testing.T) {
	mem := addressspace.NewAddressSpace(logger.Deny, 16, 6)
	mem.Write(0x0000, 0x7e)

	var b bytes.Buffer
	w := savestate.NewWriter(&b)
	mem.Serialize(w)
	test.DemandSuccess(t, w.Err())

	n, err := addressspace.Deserialize(savestate.NewReader(&b), logger.Deny, 16, 6)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n.DataBusState(), uint8(0x7e))
}
