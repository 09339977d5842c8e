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

package cpu_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gopher7800/hardware/cpu"
	"github.com/jetsetilly/gopher7800/savestate"
	"github.com/jetsetilly/gopher7800/test"
)

const origin = 0x4000

// flat 64K memory. writes to preemptAddr set the CPU's preempt flag
type testMem struct {
	data        [0x10000]uint8
	mc          *cpu.CPU
	preemptAddr uint16
}

func (mem *testMem) Read(addr uint16) uint8 {
	return mem.data[addr]
}

func (mem *testMem) Write(addr uint16, data uint8) {
	if mem.mc != nil && addr == mem.preemptAddr {
		mem.mc.EmulatorPreemptRequest = true
	}
	mem.data[addr] = data
}

func newTestCPU(program ...uint8) (*cpu.CPU, *testMem) {
	mem := &testMem{preemptAddr: 0x0024}
	copy(mem.data[origin:], program)
	mem.data[cpu.Reset] = uint8(origin & 0xff)
	mem.data[cpu.Reset+1] = uint8(origin >> 8)
	mc := cpu.NewCPU(mem, 4)
	mem.mc = mc
	mc.Reset()
	return mc, mem
}

func run(mc *cpu.CPU, cycles int) {
	mc.RunClocks += cycles * mc.RunClocksMultiple
	mc.Execute()
}

func TestReset(t *testing.T) {
	mc, _ := newTestCPU()
	test.ExpectEquality(t, mc.PC, uint16(origin))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)
	test.ExpectEquality(t, mc.Clock, uint64(0))
}

func TestArithmeticAndJam(t *testing.T) {
	mc, mem := newTestCPU(
		0xa9, 0x05, // LDA #$05
		0x69, 0x03, // ADC #$03
		0x85, 0x10, // STA $10
		0x02, // KIL
		0xea, // NOP
	)

	run(mc, 100)
	test.ExpectEquality(t, mc.Jammed, true)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x08))
	test.ExpectEquality(t, mem.data[0x10], uint8(0x08))
	test.ExpectEquality(t, mc.PC, uint16(origin+6))
	test.ExpectEquality(t, mc.Clock, uint64(2+2+3+2))

	// a jammed CPU does nothing
	clock := mc.Clock
	run(mc, 100)
	test.ExpectEquality(t, mc.Clock, clock)

	mc.Reset()
	test.ExpectEquality(t, mc.Jammed, false)
}

func TestRunClocksBudget(t *testing.T) {
	mc, _ := newTestCPU(0xea, 0xea, 0xea, 0xea, 0xea, 0xea, 0xea, 0xea)

	// seven cycles of budget is four NOPs. the overspend is carried forward
	run(mc, 7)
	test.ExpectEquality(t, mc.Clock, uint64(8))
	test.ExpectEquality(t, mc.RunClocks, -4)
	test.ExpectEquality(t, mc.PC, uint16(origin+4))

	// one cycle of budget is used up by the overspend
	run(mc, 1)
	test.ExpectEquality(t, mc.Clock, uint64(8))
	test.ExpectEquality(t, mc.RunClocks, 0)
}

func TestPreempt(t *testing.T) {
	mc, _ := newTestCPU(
		0x85, 0x24, // STA $24
		0xea, // NOP
		0x02, // KIL
	)

	run(mc, 100)
	test.ExpectEquality(t, mc.EmulatorPreemptRequest, true)
	test.ExpectEquality(t, mc.PC, uint16(origin+2))
	test.ExpectEquality(t, mc.Clock, uint64(3))

	// preempt flag is cleared by the next call to Execute()
	run(mc, 0)
	test.ExpectEquality(t, mc.EmulatorPreemptRequest, false)
	test.ExpectEquality(t, mc.PC, uint16(origin+3))
}

func TestBranchTiming(t *testing.T) {
	mc, _ := newTestCPU(
		0xa2, 0x03, // LDX #$03
		0xca,       // DEX
		0xd0, 0xfd, // BNE -3
		0x02, // KIL
	)

	run(mc, 100)
	test.ExpectEquality(t, mc.Jammed, true)
	test.ExpectEquality(t, mc.X.Value(), uint8(0))
	test.ExpectEquality(t, mc.Status.Zero, true)

	// LDX + 3*DEX + 2 taken branches + 1 untaken branch + KIL
	test.ExpectEquality(t, mc.Clock, uint64(2+3*2+2*3+2+2))
}

func TestPageCrossing(t *testing.T) {
	mc, mem := newTestCPU(
		0xa2, 0x01, // LDX #$01
		0xbd, 0xff, 0x10, // LDA $10ff,X
		0x02, // KIL
	)
	mem.data[0x1100] = 0x42

	run(mc, 100)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x42))
	test.ExpectEquality(t, mc.Clock, uint64(2+5+2))
}

func TestSubroutine(t *testing.T) {
	mc, _ := newTestCPU(
		0x20, 0x06, 0x40, // JSR $4006
		0xe8, // INX
		0x02, // KIL
		0x00, // padding
		0xe8, // INX
		0x60, // RTS
	)

	run(mc, 100)
	test.ExpectEquality(t, mc.Jammed, true)
	test.ExpectEquality(t, mc.X.Value(), uint8(2))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
}

func TestNMI(t *testing.T) {
	mc, mem := newTestCPU(0xea, 0xea, 0xea)
	mem.data[cpu.NMI] = 0x00
	mem.data[cpu.NMI+1] = 0x50
	mem.data[0x5000] = 0x02

	mc.NMIInterruptRequest = true
	run(mc, 100)
	test.ExpectEquality(t, mc.Jammed, true)
	test.ExpectEquality(t, mc.PC, uint16(0x5000))
	test.ExpectEquality(t, mc.Status.InterruptDisable, true)

	// return address and status on the stack
	test.ExpectEquality(t, mem.data[0x01ff], uint8(origin>>8))
	test.ExpectEquality(t, mem.data[0x01fe], uint8(origin&0xff))
	test.ExpectEquality(t, mem.data[0x01fd]&0x10, uint8(0))
	test.ExpectEquality(t, mc.Clock, uint64(7+2))
}

func TestIRQMasked(t *testing.T) {
	mc, mem := newTestCPU(0xea, 0x02)
	mem.data[cpu.IRQ] = 0x00
	mem.data[cpu.IRQ+1] = 0x50

	mc.IRQInterruptRequest = true
	run(mc, 100)
	test.ExpectEquality(t, mc.PC, uint16(origin+1))
	test.ExpectEquality(t, mc.Clock, uint64(2+2))
}

func TestDecimalADC(t *testing.T) {
	mc, _ := newTestCPU(
		0xf8,       // SED
		0x18,       // CLC
		0xa9, 0x19, // LDA #$19
		0x69, 0x28, // ADC #$28
		0x02, // KIL
	)
	run(mc, 100)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x47))
}

func TestSerialize(t *testing.T) {
	mc, mem := newTestCPU(0xa9, 0x80, 0xa2, 0x11, 0xa0, 0x22, 0x38, 0xea, 0xea)
	run(mc, 9)

	var b bytes.Buffer
	w := savestate.NewWriter(&b)
	mc.Serialize(w)
	test.DemandSuccess(t, w.Err())

	n, err := cpu.Deserialize(savestate.NewReader(&b), mem)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, n.String(), mc.String())
	test.ExpectEquality(t, n.Clock, mc.Clock)
	test.ExpectEquality(t, n.RunClocks, mc.RunClocks)
	test.ExpectEquality(t, n.RunClocksMultiple, 4)

	// both CPUs continue identically
	run(mc, 2)
	run(n, 2)
	test.ExpectEquality(t, n.String(), mc.String())
	test.ExpectEquality(t, n.Clock, mc.Clock)
}
