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
	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/hardware/audio"
	"github.com/jetsetilly/gopher7800/hardware/memory/addressspace"
	"github.com/jetsetilly/gopher7800/hardware/memory/device"
	"github.com/jetsetilly/gopher7800/logger"
	"github.com/jetsetilly/gopher7800/savestate"
)

// ConstructionError is returned when a cart can not be created from the data
// and cart type given to the Factory.
const ConstructionError = "cartridge: construction error: %v"

// Host is the part of the machine that a cart needs. Sound chips embedded in
// a cart render into the host's sound buffer and some carts keep time with
// the CPU clock.
type Host interface {
	audio.Host
}

// Cart is implemented by all cartridge types.
type Cart interface {
	device.Device

	// Attach the cart to the machine. Embedded chips are created here if they
	// do not already exist.
	Attach(host Host)

	// SelfMap gives the cart the opportunity to map itself into the address
	// space. Returns false if the cart should be mapped by the caller.
	SelfMap(mem *addressspace.AddressSpace) bool

	// RequestSnooping returns true if the cart wants to see every access to
	// the address space.
	RequestSnooping() bool

	// StartFrame and EndFrame are called by the machine at the start and end
	// of every frame.
	StartFrame()
	EndFrame()

	Type() CartType
	String() string

	// Serialize writes the cart type name followed by the cart state.
	Serialize(w *savestate.Writer)
}

// Factory creates carts. The M32N12K multicart selects a different 2KB slot
// each time one is created so a Factory should be kept for the whole session.
type Factory struct {
	multicartBank int
}

// Create a cart from the data. A cart type of Unknown is resolved by the size
// of the data for the sizes of the original Atari formats.
func (f *Factory) Create(data []uint8, t CartType) (Cart, error) {
	if t == Unknown {
		switch len(data) {
		case 2048:
			t = A2K
		case 4096:
			t = A4K
		case 8192:
			t = A8K
		case 16384:
			t = A16K
		case 32768:
			t = A32K
		default:
			return nil, curated.Errorf(ConstructionError, "can not infer cart type from size")
		}
		logger.Logf(logger.Allow, "cartridge", "inferred %s from size of %d bytes", t, len(data))
	}

	var cart Cart

	switch t {
	case A2K, A4K, A8K, A8KR, A16K, A16KR, A32K, A32KR, CBS12K:
		cart = newAtari(t, data)
	case M32N12K:
		cart = newMulticart(data, f.multicartBank)
		f.multicartBank++
	case TV8K:
		cart = newTigervision(data)
	case PB8K:
		cart = newParkerBros(data)
	case MN16K:
		cart = newMnetwork(data)
	case DC8K:
		cart = newActivision(data)
	case DPC:
		cart = newDPC(data)
	case DPCPlus:
		cart = newDPCPlus(data)
	case A7808, A7816, A7832, A7832P, A7832PL, A7848:
		cart = newFlat(t, data)
	case A78SG, A78SGR, A78SGP, A78S9, A78S9PL, A78S4, A78S4R, A78AB, A78AC:
		cart = newSuperGame(t, data)
	case A78BB32K, A78BB32KP, A78BB32KRPL, A78BB48K, A78BB48KP, A78BB52K,
		A78BB128K, A78BB128KR, A78BB128KP, A78BB128KRPL:
		var err error
		cart, err = newBankset(t, data)
		if err != nil {
			return nil, err
		}
	default:
		return nil, curated.Errorf(ConstructionError, "unexpected cart type: "+t.String())
	}

	logger.Logf(logger.Allow, "cartridge", "created %s", cart)

	return cart, nil
}

// fixedROM copies the data into a new slice of exactly size bytes. Data
// beyond size is ignored.
func fixedROM(data []uint8, size int) []uint8 {
	rom := make([]uint8, size)
	copy(rom, data)
	return rom
}
