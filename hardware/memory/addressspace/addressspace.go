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

package addressspace

import (
	"fmt"

	"github.com/jetsetilly/gopher7800/hardware/memory/device"
	"github.com/jetsetilly/gopher7800/logger"
	"github.com/jetsetilly/gopher7800/savestate"
)

// Cart is the part of the cartridge interface that the address space needs
// to know about.
type Cart interface {
	device.Device

	// RequestSnooping returns true if the cart should be installed as the
	// snooper device.
	RequestSnooping() bool

	// SelfMap gives the cart the opportunity to map itself (and any of its
	// sub-devices) into the address space. Returns false if the cart should
	// be mapped contiguously by the caller.
	SelfMap(mem *AddressSpace) bool
}

// AddressSpace is the memory map of the machine.
type AddressSpace struct {
	env logger.Permission

	addrSpaceMask int
	pageShift     int
	pageSize      int

	memoryMap []device.Device
	snooper   device.Device

	dataBusState uint8

	// mariaRead is true while the video chip is performing DMA
	mariaRead bool
}

// NewAddressSpace is the preferred method of initialisation for the
// AddressSpace type. The 7800 has a 16 bit address space with 64 byte pages.
func NewAddressSpace(env logger.Permission, addrSpaceShift int, pageShift int) *AddressSpace {
	mem := &AddressSpace{
		env:           env,
		addrSpaceMask: (1 << addrSpaceShift) - 1,
		pageShift:     pageShift,
		pageSize:      1 << pageShift,
		memoryMap:     make([]device.Device, (1<<addrSpaceShift)>>pageShift),
		snooper:       device.Null{},
	}
	for i := range mem.memoryMap {
		mem.memoryMap[i] = device.Null{}
	}
	return mem
}

func (mem *AddressSpace) String() string {
	return fmt.Sprintf("address space (%d pages of %d bytes)", len(mem.memoryMap), mem.pageSize)
}

func (mem *AddressSpace) page(addr uint16) int {
	return (int(addr) & mem.addrSpaceMask) >> mem.pageShift
}

// Read data from the address space.
func (mem *AddressSpace) Read(addr uint16) uint8 {
	mem.dataBusState = mem.snooper.Read(addr)
	mem.dataBusState = mem.memoryMap[mem.page(addr)].Read(addr)
	return mem.dataBusState
}

// Write data to the address space.
func (mem *AddressSpace) Write(addr uint16, data uint8) {
	mem.dataBusState = data
	mem.snooper.Write(addr, data)
	mem.memoryMap[mem.page(addr)].Write(addr, data)
}

// Map installs the device in every page that overlaps the address range
// beginning at base and of size bytes. Addresses wrap at the top of the
// address space.
func (mem *AddressSpace) Map(base uint16, size int, dev device.Device) {
	if size <= 0 {
		return
	}

	first := int(base) >> mem.pageShift
	last := (int(base) + size - 1) >> mem.pageShift
	for p := first; p <= last; p++ {
		mem.memoryMap[p&(len(mem.memoryMap)-1)] = dev
	}

	if mem.env.AllowLogging() {
		logger.Logf(mem.env, "addressspace", "mapped %v to $%04x:$%04x", dev, base, (int(base)+size-1)&mem.addrSpaceMask)
	}
}

// MapCart installs the cart as the snooper if it requests it, then lets the
// cart map itself. If the cart does not map itself it is mapped contiguously
// at base.
func (mem *AddressSpace) MapCart(base uint16, size int, cart Cart) {
	if cart.RequestSnooping() {
		mem.snooper = cart
		logger.Logf(mem.env, "addressspace", "%v installed as snooper", cart)
	}
	if !cart.SelfMap(mem) {
		mem.Map(base, size, cart)
	}
}

// Device returns the device mapped to the page containing the address.
func (mem *AddressSpace) Device(addr uint16) device.Device {
	return mem.memoryMap[mem.page(addr)]
}

// Snooper returns the current snooper device.
func (mem *AddressSpace) Snooper() device.Device {
	return mem.snooper
}

// DataBusState returns the last value seen on the data bus.
func (mem *AddressSpace) DataBusState() uint8 {
	return mem.dataBusState
}

// SetMariaRead indicates whether the video chip is currently reading memory.
func (mem *AddressSpace) SetMariaRead(v bool) {
	mem.mariaRead = v
}

// MariaRead returns true if the video chip is currently reading memory.
func (mem *AddressSpace) MariaRead() bool {
	return mem.mariaRead
}

// Serialize implements the savestate.Serializer interface. Only the data bus
// state is written. The mapping is reconstructed by the owner of the address
// space.
func (mem *AddressSpace) Serialize(w *savestate.Writer) {
	w.WriteVersion(1)
	w.WriteUint8(mem.dataBusState)
}

// Deserialize creates a new AddressSpace with the data bus state read from the
// savestate. All pages refer to device.Null.
func Deserialize(r *savestate.Reader, env logger.Permission, addrSpaceShift int, pageShift int) (*AddressSpace, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}
	dataBusState := r.ReadUint8()
	if err := r.Err(); err != nil {
		return nil, err
	}
	mem := NewAddressSpace(env, addrSpaceShift, pageShift)
	mem.dataBusState = dataBusState
	return mem, nil
}
