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

// Package cpu emulates the 6502 microprocessor found in the Atari 7800. Like
// all 8-bit processors of the era, the 6502 executes instructions according
// to the single byte value read from an address pointed to by the program
// counter. This single byte is the opcode and is looked up in the instruction
// table of the instructions package.
//
// The CPU is driven by a clock budget rather than by a callback. The caller
// adds to RunClocks and calls Execute(). Instructions are executed until the
// budget is used up, the CPU has jammed or an emulator preemption has been
// requested:
//
//	mc := cpu.NewCPU(mem, 4)
//	mc.Reset()
//
//	mc.RunClocks += 114 * mc.RunClocksMultiple
//	mc.Execute()
//
// Each CPU cycle consumes RunClocksMultiple units of the budget. The budget
// is allowed to go negative by the length of the last instruction. The
// unspent (negative) amount is carried over to the next call.
//
// The Clock field counts CPU cycles since the CPU was created. It is advanced
// by the CPU itself and also by the scheduler when cycles are stolen from the
// CPU by video DMA.
//
// Jammed is set when a KIL opcode is executed. It is only cleared by Reset().
package cpu
