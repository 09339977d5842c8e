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

	"github.com/jetsetilly/gopher7800/hardware/clocks"
	"github.com/jetsetilly/gopher7800/hardware/memory/addressspace"
	"github.com/jetsetilly/gopher7800/savestate"
)

// dpc is the Display Processor Chip cart used by Pitfall II. Two 4K program
// banks are followed by 2K of display data that is only visible through the
// eight data fetchers.
//
// The chip is read through $1000-$103F and written through $1040-$107F.
type dpc struct {
	host Host

	rom  []uint8
	bank int

	tops     [8]uint8
	bottoms  [8]uint8
	counters [8]uint16
	flags    [8]uint8

	// data fetchers 5 to 7 can be switched into music mode
	musicMode [3]bool

	random uint8

	// music mode fetchers are clocked by the oscillator on the cart. the CPU
	// clock at the last update and the part oscillator clock that was left
	// over
	audioClock       uint64
	fractionalClocks float64
}

const (
	bankSizeDPC    = 0x1000
	numBanksDPC    = 2
	displaySizeDPC = 0x0800
	romSizeDPC     = bankSizeDPC*numBanksDPC + displaySizeDPC

	dpcOscillator = 20000.0
)

// DPC music is timed against the 2600 clock
var dpcCPUClock = clocks.Hz(clocks.NTSC2600)

var dpcMusicAmplitudes = [8]uint8{0x00, 0x04, 0x05, 0x09, 0x06, 0x0a, 0x0b, 0x0f}

func newDPC(data []uint8) *dpc {
	cart := &dpc{
		rom: fixedROM(data, romSizeDPC),
	}
	cart.Reset()
	return cart
}

func (cart *dpc) String() string {
	return fmt.Sprintf("%s [bank %d]", DPC, cart.bank)
}

// Type implements the Cart interface.
func (cart *dpc) Type() CartType {
	return DPC
}

// Attach implements the Cart interface.
func (cart *dpc) Attach(host Host) {
	cart.host = host
}

// SelfMap implements the Cart interface.
func (cart *dpc) SelfMap(_ *addressspace.AddressSpace) bool {
	return false
}

// RequestSnooping implements the Cart interface.
func (cart *dpc) RequestSnooping() bool {
	return false
}

// StartFrame implements the Cart interface.
func (cart *dpc) StartFrame() {}

// EndFrame implements the Cart interface.
func (cart *dpc) EndFrame() {}

// Reset implements the device.Device interface.
func (cart *dpc) Reset() {
	cart.bank = 1
	cart.random = 1
	cart.fractionalClocks = 0
	if cart.host != nil {
		cart.audioClock = cart.host.CPUClock()
	}
}

// Read implements the device.Device interface.
func (cart *dpc) Read(addr uint16) uint8 {
	addr &= 0x0fff

	if addr < 0x0040 {
		return cart.readRegister(addr)
	}

	cart.bankswitch(addr)
	return cart.rom[cart.bank*bankSizeDPC+int(addr)]
}

// Write implements the device.Device interface.
func (cart *dpc) Write(addr uint16, data uint8) {
	addr &= 0x0fff

	if addr >= 0x0040 && addr < 0x0080 {
		cart.writeRegister(addr, data)
		return
	}

	cart.bankswitch(addr)
}

func (cart *dpc) bankswitch(addr uint16) {
	switch addr {
	case 0x0ff8:
		cart.bank = 0
	case 0x0ff9:
		cart.bank = 1
	}
}

func (cart *dpc) display(i int) uint8 {
	return cart.rom[bankSizeDPC*numBanksDPC+displaySizeDPC-1-int(cart.counters[i])]
}

func (cart *dpc) readRegister(addr uint16) uint8 {
	var data uint8

	i := int(addr & 0x07)
	fn := (addr >> 3) & 0x07

	cart.clockRandom()

	if cart.counters[i]&0x00ff == uint16(cart.tops[i]) {
		cart.flags[i] = 0xff
	} else if cart.counters[i]&0x00ff == uint16(cart.bottoms[i]) {
		cart.flags[i] = 0x00
	}

	switch fn {
	case 0x00:
		if i < 4 {
			data = cart.random
		} else {
			cart.updateMusic()
			var a int
			for m := range cart.musicMode {
				if cart.musicMode[m] && cart.flags[5+m] != 0 {
					a |= 1 << m
				}
			}
			data = dpcMusicAmplitudes[a]
		}
	case 0x01:
		data = cart.display(i)
	case 0x02:
		data = cart.display(i) & cart.flags[i]
	case 0x07:
		data = cart.flags[i]
	}

	if i < 5 || !cart.musicMode[i-5] {
		cart.counters[i] = (cart.counters[i] - 1) & 0x07ff
	}

	return data
}

func (cart *dpc) writeRegister(addr uint16, data uint8) {
	i := int(addr & 0x07)
	fn := (addr >> 3) & 0x07

	switch fn {
	case 0x00:
		cart.tops[i] = data
		cart.flags[i] = 0x00
	case 0x01:
		cart.bottoms[i] = data
	case 0x02:
		if i >= 5 && cart.musicMode[i-5] {
			cart.counters[i] = cart.counters[i]&0x0700 | uint16(cart.tops[i])
		} else {
			cart.counters[i] = cart.counters[i]&0x0700 | uint16(data)
		}
	case 0x03:
		cart.counters[i] = uint16(data&0x07)<<8 | cart.counters[i]&0x00ff
		if i >= 5 {
			cart.musicMode[i-5] = data&0x10 == 0x10
		}
	case 0x06:
		cart.random = 1
	}
}

// the shift register input is the XNOR of bits 7, 5, 4 and 3.
func (cart *dpc) clockRandom() {
	r := cart.random
	bit := ^((r >> 7) ^ (r >> 5) ^ (r >> 4) ^ (r >> 3)) & 0x01
	cart.random = r<<1 | bit
}

func (cart *dpc) updateMusic() {
	if cart.host == nil {
		return
	}

	clock := cart.host.CPUClock()
	cycles := clock - cart.audioClock
	cart.audioClock = clock

	osc := dpcOscillator*float64(cycles)/dpcCPUClock + cart.fractionalClocks
	whole := int(osc)
	cart.fractionalClocks = osc - float64(whole)

	if whole <= 0 {
		return
	}

	for m := range cart.musicMode {
		if !cart.musicMode[m] {
			continue
		}

		i := m + 5
		top := int(cart.tops[i]) + 1
		low := int(cart.counters[i] & 0x00ff)

		if cart.tops[i] != 0 {
			low -= whole % top
			if low < 0 {
				low += top
			}
		} else {
			low = 0
		}

		if low <= int(cart.bottoms[i]) {
			cart.flags[i] = 0x00
		} else if low <= int(cart.tops[i]) {
			cart.flags[i] = 0xff
		}

		cart.counters[i] = cart.counters[i]&0x0700 | uint16(low)
	}
}

// Serialize implements the Cart interface.
func (cart *dpc) Serialize(w *savestate.Writer) {
	writeHeader(w, DPC, 1)
	w.WriteBytes(cart.rom)
	w.WriteInt32(int32(cart.bank))
	w.WriteBytes(cart.tops[:])
	w.WriteBytes(cart.bottoms[:])
	w.WriteUint16s(cart.counters[:])
	w.WriteBytes(cart.flags[:])
	w.WriteBools(cart.musicMode[:])
	w.WriteUint8(cart.random)
	w.WriteUint64(cart.audioClock)
	w.WriteFloat64(cart.fractionalClocks)
}

func deserializeDPC(r *savestate.Reader, _ CartType) (Cart, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}

	cart := &dpc{}
	cart.rom = r.ReadExpectedBytes(romSizeDPC)
	cart.bank = int(r.ReadInt32())
	copy(cart.tops[:], r.ReadExpectedBytes(8))
	copy(cart.bottoms[:], r.ReadExpectedBytes(8))
	copy(cart.counters[:], r.ReadUint16s(8))
	copy(cart.flags[:], r.ReadExpectedBytes(8))
	copy(cart.musicMode[:], r.ReadBools(3))
	cart.random = r.ReadUint8()
	cart.audioClock = r.ReadUint64()
	cart.fractionalClocks = r.ReadFloat64()

	if err := r.Err(); err != nil {
		return nil, err
	}
	if cart.bank < 0 || cart.bank >= numBanksDPC {
		return nil, r.Fail("bank out of range")
	}
	for _, c := range cart.counters {
		if c > 0x07ff {
			return nil, r.Fail("data fetcher counter out of range")
		}
	}

	return cart, nil
}
