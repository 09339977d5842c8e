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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher7800/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher7800/hardware/cpu/registers"
)

// Memory is the CPU's view of the address space.
type Memory interface {
	Read(addr uint16) uint8
	Write(addr uint16, data uint8)
}

// Interrupt and reset vectors.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// number of cycles required to service an interrupt
const interruptCycles = 7

// CPU implements the 6502 as found in the Atari 7800. Register logic is
// implemented by the Register type in the registers sub-package.
type CPU struct {
	mem          Memory
	instructions []*instructions.Definition

	PC     uint16
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// Clock is the number of CPU cycles since the CPU was created
	Clock uint64

	// RunClocks is the remaining budget. each cycle consumes
	// RunClocksMultiple units
	RunClocks         int
	RunClocksMultiple int

	// the cpu has encountered a KIL instruction. requires a Reset()
	Jammed bool

	// EmulatorPreemptRequest stops Execute() at the next instruction
	// boundary. it is cleared at the start of every call to Execute()
	EmulatorPreemptRequest bool

	NMIInterruptRequest bool
	IRQInterruptRequest bool

	// called after every NOP instruction. not part of the savestate
	NOPHook func()

	// additional cycles for the current instruction (branches taken)
	extra int
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem Memory, runClocksMultiple int) *CPU {
	return &CPU{
		mem:               mem,
		instructions:      instructions.GetDefinitions(),
		RunClocksMultiple: runClocksMultiple,
		SP:                registers.NewRegister(0xff),
	}
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%#04x A=%s X=%s Y=%s SP=%s SR=%s", mc.PC, mc.A, mc.X, mc.Y, mc.SP, mc.Status)
}

// Reset reinitialises the registers and loads the PC with the RESET vector.
// The Clock is not changed.
func (mc *CPU) Reset() {
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(0xff)
	mc.Status.Reset()
	mc.Status.InterruptDisable = true
	mc.Status.Zero = true

	mc.Jammed = false
	mc.EmulatorPreemptRequest = false
	mc.NMIInterruptRequest = false
	mc.IRQInterruptRequest = false

	mc.PC = mc.read16(Reset)
}

// Execute instructions until the RunClocks budget is exhausted, the CPU has
// jammed or an emulator preemption has been requested.
func (mc *CPU) Execute() {
	mc.EmulatorPreemptRequest = false

	for mc.RunClocks > 0 && !mc.Jammed && !mc.EmulatorPreemptRequest {
		if mc.NMIInterruptRequest {
			mc.NMIInterruptRequest = false
			mc.interrupt(NMI)
			continue
		}
		if mc.IRQInterruptRequest {
			mc.IRQInterruptRequest = false
			if !mc.Status.InterruptDisable {
				mc.interrupt(IRQ)
				continue
			}
		}
		mc.step()
	}
}

// clk advances the clock by n CPU cycles and consumes the equivalent amount
// of the RunClocks budget.
func (mc *CPU) clk(n int) {
	mc.Clock += uint64(n)
	mc.RunClocks -= n * mc.RunClocksMultiple
}

func (mc *CPU) step() {
	opcode := mc.mem.Read(mc.PC)
	mc.PC++

	defn := mc.instructions[opcode]
	ea, crossed := mc.resolve(defn.AddressingMode)

	mc.extra = 0
	operations[opcode](mc, ea, defn.AddressingMode)

	cycles := defn.Cycles + mc.extra
	if defn.PageSensitive && crossed {
		cycles++
	}
	mc.clk(cycles)
}

// resolve the effective address for the addressing mode. the PC is advanced
// past the operand. returns true if indexing crossed a page boundary.
func (mc *CPU) resolve(mode instructions.AddressingMode) (uint16, bool) {
	switch mode {
	case instructions.Implied, instructions.Accumulator:
		return 0, false

	case instructions.Immediate:
		ea := mc.PC
		mc.PC++
		return ea, false

	case instructions.Relative:
		offset := int8(mc.mem.Read(mc.PC))
		mc.PC++
		return mc.PC + uint16(offset), false

	case instructions.Absolute:
		ea := mc.read16(mc.PC)
		mc.PC += 2
		return ea, false

	case instructions.ZeroPage:
		ea := uint16(mc.mem.Read(mc.PC))
		mc.PC++
		return ea, false

	case instructions.Indirect:
		ptr := mc.read16(mc.PC)
		mc.PC += 2
		return mc.read16Wrapped(ptr), false

	case instructions.IndexedIndirect:
		zp := mc.mem.Read(mc.PC) + mc.X.Value()
		mc.PC++
		return mc.read16ZeroPage(zp), false

	case instructions.IndirectIndexed:
		base := mc.read16ZeroPage(mc.mem.Read(mc.PC))
		mc.PC++
		ea := base + mc.Y.Address()
		return ea, pageCrossed(base, ea)

	case instructions.AbsoluteIndexedX:
		base := mc.read16(mc.PC)
		mc.PC += 2
		ea := base + mc.X.Address()
		return ea, pageCrossed(base, ea)

	case instructions.AbsoluteIndexedY:
		base := mc.read16(mc.PC)
		mc.PC += 2
		ea := base + mc.Y.Address()
		return ea, pageCrossed(base, ea)

	case instructions.ZeroPageIndexedX:
		ea := uint16(mc.mem.Read(mc.PC) + mc.X.Value())
		mc.PC++
		return ea, false

	case instructions.ZeroPageIndexedY:
		ea := uint16(mc.mem.Read(mc.PC) + mc.Y.Value())
		mc.PC++
		return ea, false
	}

	panic(fmt.Sprintf("cpu: unknown addressing mode (%d)", mode))
}

func pageCrossed(a, b uint16) bool {
	return a&0xff00 != b&0xff00
}

func (mc *CPU) read16(addr uint16) uint16 {
	lo := uint16(mc.mem.Read(addr))
	hi := uint16(mc.mem.Read(addr + 1))
	return hi<<8 | lo
}

// the indirect JMP does not carry into the high byte of the pointer.
func (mc *CPU) read16Wrapped(addr uint16) uint16 {
	lo := uint16(mc.mem.Read(addr))
	hi := uint16(mc.mem.Read(addr&0xff00 | uint16(uint8(addr)+1)))
	return hi<<8 | lo
}

func (mc *CPU) read16ZeroPage(zp uint8) uint16 {
	lo := uint16(mc.mem.Read(uint16(zp)))
	hi := uint16(mc.mem.Read(uint16(zp + 1)))
	return hi<<8 | lo
}

func (mc *CPU) push(v uint8) {
	mc.mem.Write(0x0100|mc.SP.Address(), v)
	mc.SP.Load(mc.SP.Value() - 1)
}

func (mc *CPU) push16(v uint16) {
	mc.push(uint8(v >> 8))
	mc.push(uint8(v))
}

func (mc *CPU) pull() uint8 {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.mem.Read(0x0100 | mc.SP.Address())
}

func (mc *CPU) pull16() uint16 {
	lo := uint16(mc.pull())
	hi := uint16(mc.pull())
	return hi<<8 | lo
}

func (mc *CPU) interrupt(vector uint16) {
	mc.push16(mc.PC)
	mc.push(mc.Status.ToUint8() &^ 0x10)
	mc.Status.InterruptDisable = true
	mc.PC = mc.read16(vector)
	mc.clk(interruptCycles)
}
