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

	"github.com/jetsetilly/gopher7800/hardware/memory/addressspace"
	"github.com/jetsetilly/gopher7800/savestate"
)

// dpcPlus is the DPC+ bankswitching scheme of the Harmony cart without the
// ARM coprocessor. There are six 4K program banks, a 4K display bank, a 1K
// frequency table and the data fetcher registers.
//
// The registers are read through $1000-$1027 and written through
// $1028-$107F.
type dpcPlus struct {
	host Host

	rom      []uint8
	bankBase uint16

	// display data and the frequency table are copied into RAM on reset
	ram []uint8

	tops     [8]uint8
	bots     [8]uint8
	counters [8]uint16

	// 12.8 fixed point counters
	fracCounters   [8]uint32
	fracIncrements [8]uint8

	parameter    [8]uint8
	parameterPtr uint8

	musicCounters    [3]uint32
	musicFrequencies [3]uint32
	musicWaveforms   [3]uint16

	fastFetch    bool
	ldaImmediate bool

	lastClock        uint64
	fractionalClocks float64

	random uint32
}

const (
	dpcPlusDisplayBase   = 0x0c00
	dpcPlusFrequencyBase = dpcPlusDisplayBase + 0x1000
	dpcPlusRAMSize       = 0x2000
	dpcPlusROMSize       = 0x1000*6 + 0x1000 + 0x0400 + 0x00ff
	dpcPlusRandomSeed    = 0x2b435044
	dpcPlusStartBank     = 5
)

func newDPCPlus(data []uint8) *dpcPlus {
	cart := &dpcPlus{
		rom: fixedROM(data, dpcPlusROMSize),
		ram: make([]uint8, dpcPlusRAMSize),
	}
	cart.Reset()
	return cart
}

func (cart *dpcPlus) String() string {
	return fmt.Sprintf("%s [bank %d]", DPCPlus, cart.bankBase/0x1000)
}

// Type implements the Cart interface.
func (cart *dpcPlus) Type() CartType {
	return DPCPlus
}

// Attach implements the Cart interface.
func (cart *dpcPlus) Attach(host Host) {
	cart.host = host
}

// SelfMap implements the Cart interface.
func (cart *dpcPlus) SelfMap(_ *addressspace.AddressSpace) bool {
	return false
}

// RequestSnooping implements the Cart interface.
func (cart *dpcPlus) RequestSnooping() bool {
	return false
}

// StartFrame implements the Cart interface.
func (cart *dpcPlus) StartFrame() {}

// EndFrame implements the Cart interface.
func (cart *dpcPlus) EndFrame() {}

// Reset implements the device.Device interface.
func (cart *dpcPlus) Reset() {
	if cart.host != nil {
		cart.lastClock = cart.host.CPUClock()
	}
	cart.fractionalClocks = 0

	for i := range cart.ram {
		cart.ram[i] = 0
	}
	copy(cart.ram[dpcPlusDisplayBase:], cart.rom[0x6000:0x6000+0x1400])

	cart.tops = [8]uint8{}
	cart.bots = [8]uint8{}
	cart.counters = [8]uint16{}
	cart.fracCounters = [8]uint32{}
	cart.fracIncrements = [8]uint8{}
	cart.musicWaveforms = [3]uint16{}

	cart.random = dpcPlusRandomSeed
	cart.bankBase = dpcPlusStartBank * 0x1000
}

// Read implements the device.Device interface.
func (cart *dpcPlus) Read(addr uint16) uint8 {
	addr &= 0x0fff

	peek := cart.rom[int(cart.bankBase)+int(addr)]

	// with fast fetch on the operand of LDA immediate is treated as a
	// register address
	if cart.fastFetch && cart.ldaImmediate && peek < 0x28 {
		addr = uint16(peek)
	}
	cart.ldaImmediate = false

	if addr < 0x0028 {
		return cart.readRegister(addr)
	}

	cart.bankswitch(addr)

	if cart.fastFetch {
		cart.ldaImmediate = peek == 0xa9
	}

	return peek
}

// Write implements the device.Device interface.
func (cart *dpcPlus) Write(addr uint16, data uint8) {
	addr &= 0x0fff
	if addr >= 0x0028 && addr < 0x0080 {
		cart.writeRegister(addr, data)
		return
	}
	cart.bankswitch(addr)
}

func (cart *dpcPlus) bankswitch(addr uint16) {
	if addr >= 0x0ff6 && addr <= 0x0ffb {
		cart.bankBase = (addr - 0x0ff6) * 0x1000
	}
}

func (cart *dpcPlus) display(offset int) uint8 {
	return cart.ram[dpcPlusDisplayBase+offset]
}

func (cart *dpcPlus) readRegister(addr uint16) uint8 {
	var data uint8

	i := int(addr & 0x07)
	fn := (addr >> 3) & 0x07

	switch fn {
	case 0x00:
		switch i {
		case 0x00: // RANDOM0NEXT
			cart.nextRandom()
			data = uint8(cart.random)
		case 0x01: // RANDOM0PRIOR
			cart.prevRandom()
			data = uint8(cart.random)
		case 0x02: // RANDOM1
			data = uint8(cart.random >> 8)
		case 0x03: // RANDOM2
			data = uint8(cart.random >> 16)
		case 0x04: // RANDOM3
			data = uint8(cart.random >> 24)
		case 0x05: // AMPLITUDE
			cart.updateMusic()
			var amp int
			for v := range cart.musicWaveforms {
				amp += int(cart.display(int(cart.musicWaveforms[v])<<5 + int(cart.musicCounters[v]>>27)))
			}
			data = uint8(amp)
		}
	case 0x01: // DFxDATA
		data = cart.display(int(cart.counters[i]))
		cart.counters[i] = (cart.counters[i] + 1) & 0x0fff
	case 0x02: // DFxDATAW
		data = cart.display(int(cart.counters[i])) & cart.flag(i)
		cart.counters[i] = (cart.counters[i] + 1) & 0x0fff
	case 0x03: // DFxFRACDATA
		data = cart.display(int(cart.fracCounters[i] >> 8))
		cart.fracCounters[i] = (cart.fracCounters[i] + uint32(cart.fracIncrements[i])) & 0x0fffff
	case 0x04: // DFxFLAG
		if i < 4 {
			data = cart.flag(i)
		}
	}

	return data
}

func (cart *dpcPlus) writeRegister(addr uint16, data uint8) {
	i := int(addr & 0x07)
	fn := ((addr - 0x28) >> 3) & 0x0f

	switch fn {
	case 0x00: // DFxFRACLOW
		cart.fracCounters[i] = cart.fracCounters[i]&0x0f0000 | uint32(data)<<8
	case 0x01: // DFxFRACHI
		cart.fracCounters[i] = uint32(data&0x0f)<<16 | cart.fracCounters[i]&0x00ffff
	case 0x02: // DFxFRACINC
		cart.fracIncrements[i] = data
		cart.fracCounters[i] &= 0x0fff00
	case 0x03: // DFxTOP
		cart.tops[i] = data
	case 0x04: // DFxBOT
		cart.bots[i] = data
	case 0x05: // DFxLOW
		cart.counters[i] = cart.counters[i]&0x0f00 | uint16(data)
	case 0x06:
		switch i {
		case 0x00: // FASTFETCH
			cart.fastFetch = data == 0
		case 0x01: // PARAMETER
			if cart.parameterPtr < 8 {
				cart.parameter[cart.parameterPtr] = data
				cart.parameterPtr++
			}
		case 0x02: // CALLFUNCTION
			cart.callFunction(data)
		case 0x05, 0x06, 0x07: // WAVEFORMx
			cart.musicWaveforms[i-5] = uint16(data & 0x7f)
		}
	case 0x07: // DFxPUSH
		cart.counters[i] = (cart.counters[i] - 1) & 0x0fff
		cart.ram[dpcPlusDisplayBase+int(cart.counters[i])] = data
	case 0x08: // DFxHI
		cart.counters[i] = uint16(data&0x0f)<<8 | cart.counters[i]&0x00ff
	case 0x09:
		switch i {
		case 0x00: // RRESET
			cart.random = dpcPlusRandomSeed
		case 0x01: // RWRITE0
			cart.random = cart.random&0xffffff00 | uint32(data)
		case 0x02: // RWRITE1
			cart.random = cart.random&0xffff00ff | uint32(data)<<8
		case 0x03: // RWRITE2
			cart.random = cart.random&0xff00ffff | uint32(data)<<16
		case 0x04: // RWRITE3
			cart.random = cart.random&0x00ffffff | uint32(data)<<24
		case 0x05, 0x06, 0x07: // NOTEx
			ri := dpcPlusFrequencyBase + int(data)<<2
			cart.musicFrequencies[i-5] = uint32(cart.ram[ri]) |
				uint32(cart.ram[ri+1])<<8 |
				uint32(cart.ram[ri+2])<<16 |
				uint32(cart.ram[ri+3])<<24
		}
	case 0x0a: // DFxWRITE
		cart.ram[dpcPlusDisplayBase+int(cart.counters[i])] = data
		cart.counters[i] = (cart.counters[i] + 1) & 0x0fff
	}
}

func (cart *dpcPlus) callFunction(fn uint8) {
	switch fn {
	case 0: // reset parameter pointer
	case 1: // copy ROM to fetcher
		romAddr := int(cart.parameter[1])<<8 | int(cart.parameter[0])
		base := dpcPlusDisplayBase + int(cart.counters[cart.parameter[2]&0x07])
		for j := 0; j < int(cart.parameter[3]); j++ {
			if romAddr+j >= len(cart.rom) {
				break
			}
			cart.ram[base+j] = cart.rom[romAddr+j]
		}
	case 2: // copy value to fetcher
		base := dpcPlusDisplayBase + int(cart.counters[cart.parameter[2]&0x07])
		for j := 0; j < int(cart.parameter[3]); j++ {
			cart.ram[base+j] = cart.parameter[0]
		}
	default:
		return
	}
	cart.parameterPtr = 0
}

// the window size is not wrapped to a byte so a top below bottom gives a
// negative window and the flag is always set.
func (cart *dpcPlus) flag(i int) uint8 {
	a := int(cart.tops[i] - uint8(cart.counters[i]&0x00ff))
	b := int(cart.tops[i]) - int(cart.bots[i])
	if a > b {
		return 0xff
	}
	return 0x00
}

// 32 bit LFSR.
func (cart *dpcPlus) nextRandom() {
	var a uint32
	if cart.random&(1<<10) != 0 {
		a = 0x10adab1e
	}
	cart.random = a ^ (cart.random>>11 | cart.random<<21)
}

// the LFSR in reverse.
func (cart *dpcPlus) prevRandom() {
	if cart.random&(1<<31) != 0 {
		v := 0x10adab1e ^ cart.random
		cart.random = v<<11 | v>>21
	} else {
		cart.random = cart.random<<11 | cart.random>>21
	}
}

func (cart *dpcPlus) updateMusic() {
	if cart.host == nil {
		return
	}

	clock := cart.host.CPUClock()
	delta := clock - cart.lastClock
	cart.lastClock = clock

	clocks := dpcOscillator*float64(delta)/dpcCPUClock + cart.fractionalClocks
	whole := uint32(clocks)
	cart.fractionalClocks = clocks - float64(whole)

	if whole == 0 {
		return
	}

	for v := range cart.musicCounters {
		cart.musicCounters[v] += cart.musicFrequencies[v] * whole
	}
}

// Serialize implements the Cart interface.
func (cart *dpcPlus) Serialize(w *savestate.Writer) {
	writeHeader(w, DPCPlus, 1)
	w.WriteBytes(cart.rom)
	w.WriteUint16(cart.bankBase)
	w.WriteBytes(cart.ram)
	w.WriteBytes(cart.tops[:])
	w.WriteBytes(cart.bots[:])
	w.WriteUint16s(cart.counters[:])
	w.WriteUint32s(cart.fracCounters[:])
	w.WriteBytes(cart.fracIncrements[:])
	w.WriteBytes(cart.parameter[:])
	w.WriteUint8(cart.parameterPtr)
	w.WriteUint32s(cart.musicCounters[:])
	w.WriteUint32s(cart.musicFrequencies[:])
	w.WriteUint16s(cart.musicWaveforms[:])
	w.WriteBool(cart.fastFetch)
	w.WriteBool(cart.ldaImmediate)
	w.WriteUint64(cart.lastClock)
	w.WriteFloat64(cart.fractionalClocks)
	w.WriteUint32(cart.random)
}

func deserializeDPCPlus(r *savestate.Reader, _ CartType) (Cart, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}

	cart := &dpcPlus{}
	cart.rom = r.ReadExpectedBytes(dpcPlusROMSize)
	cart.bankBase = r.ReadUint16()
	cart.ram = r.ReadExpectedBytes(dpcPlusRAMSize)
	copy(cart.tops[:], r.ReadExpectedBytes(8))
	copy(cart.bots[:], r.ReadExpectedBytes(8))
	copy(cart.counters[:], r.ReadUint16s(8))
	copy(cart.fracCounters[:], r.ReadUint32s(8))
	copy(cart.fracIncrements[:], r.ReadExpectedBytes(8))
	copy(cart.parameter[:], r.ReadExpectedBytes(8))
	cart.parameterPtr = r.ReadUint8()
	copy(cart.musicCounters[:], r.ReadUint32s(3))
	copy(cart.musicFrequencies[:], r.ReadUint32s(3))
	copy(cart.musicWaveforms[:], r.ReadUint16s(3))
	cart.fastFetch = r.ReadBool()
	cart.ldaImmediate = r.ReadBool()
	cart.lastClock = r.ReadUint64()
	cart.fractionalClocks = r.ReadFloat64()
	cart.random = r.ReadUint32()

	if err := r.Err(); err != nil {
		return nil, err
	}

	if cart.bankBase%0x1000 != 0 || cart.bankBase > 0x5000 {
		return nil, r.Fail("bank base out of range")
	}
	if cart.parameterPtr > 8 {
		return nil, r.Fail("parameter pointer out of range")
	}
	for i := range cart.counters {
		if cart.counters[i] > 0x0fff || cart.fracCounters[i] > 0x0fffff {
			return nil, r.Fail("data fetcher counter out of range")
		}
	}
	for _, v := range cart.musicWaveforms {
		if v > 0x7f {
			return nil, r.Fail("waveform out of range")
		}
	}

	return cart, nil
}
