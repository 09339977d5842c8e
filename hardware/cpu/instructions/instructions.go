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

package instructions

import "fmt"

// AddressingMode describes the method data for the instruction should be received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind),Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y
)

// short forms used in the opcode table.
const (
	imp = Implied
	acc = Accumulator
	imm = Immediate
	rel = Relative
	abs = Absolute
	zpg = ZeroPage
	ind = Indirect
	izx = IndexedIndirect
	izy = IndirectIndexed
	abx = AbsoluteIndexedX
	aby = AbsoluteIndexedY
	zpx = ZeroPageIndexedX
	zpy = ZeroPageIndexedY
)

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// the following effects have a variable effect on the program counter,
	// depending on the instruction's precise operand.

	// flow consists of the Branch and JMP instructions. Branch instructions
	// specifically can be distinguished by the AddressingMode.
	Flow

	Subroutine
	Interrupt

	// Jam instructions stop the CPU until the next reset.
	Jam
)

// Definition defines each instruction in the instruction set; one per instruction.
type Definition struct {
	OpCode         uint8
	Mnemonic       string
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         EffectCategory
	Undocumented   bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%d pagesens=%t effect=%d]", defn.OpCode, defn.Mnemonic, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

type entry struct {
	opcode   uint8
	mnemonic string
	mode     AddressingMode
	cycles   int
	page     bool
}

var effects = map[string]EffectCategory{
	"STA": Write, "STX": Write, "STY": Write, "SAX": Write,
	"AHX": Write, "SHX": Write, "SHY": Write, "TAS": Write,
	"ASL": RMW, "LSR": RMW, "ROL": RMW, "ROR": RMW, "INC": RMW, "DEC": RMW,
	"SLO": RMW, "RLA": RMW, "SRE": RMW, "RRA": RMW, "DCP": RMW, "ISC": RMW,
	"JMP": Flow, "BPL": Flow, "BMI": Flow, "BVC": Flow, "BVS": Flow,
	"BCC": Flow, "BCS": Flow, "BNE": Flow, "BEQ": Flow,
	"JSR": Subroutine, "RTS": Subroutine,
	"BRK": Interrupt, "RTI": Interrupt,
	"KIL": Jam,
}

var undocumented = map[string]bool{
	"KIL": true, "SLO": true, "RLA": true, "SRE": true, "RRA": true,
	"SAX": true, "LAX": true, "DCP": true, "ISC": true, "ANC": true,
	"ALR": true, "ARR": true, "XAA": true, "AXS": true, "AHX": true,
	"SHY": true, "SHX": true, "TAS": true, "LAS": true,
}

func operandBytes(mode AddressingMode) int {
	switch mode {
	case Implied, Accumulator:
		return 0
	case Absolute, Indirect, AbsoluteIndexedX, AbsoluteIndexedY:
		return 2
	}
	return 1
}

// GetDefinitions returns the table of instruction definitions, indexed by
// opcode.
func GetDefinitions() []*Definition {
	defs := make([]*Definition, len(table))
	for i, e := range table {
		d := &Definition{
			OpCode:         e.opcode,
			Mnemonic:       e.mnemonic,
			Bytes:          1 + operandBytes(e.mode),
			Cycles:         e.cycles,
			AddressingMode: e.mode,
			PageSensitive:  e.page,
			Effect:         effects[e.mnemonic],
			Undocumented:   undocumented[e.mnemonic],
		}

		// only one of the many NOP and SBC opcodes is official
		switch e.mnemonic {
		case "NOP":
			d.Undocumented = e.opcode != 0xea
		case "SBC":
			d.Undocumented = e.opcode == 0xeb
		}

		defs[i] = d
	}
	return defs
}
