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

type operation func(mc *CPU, ea uint16, mode instructions.AddressingMode)

// operations indexed by opcode
var operations [256]operation

func init() {
	byMnemonic := map[string]operation{
		"ADC": (*CPU).adc, "AND": (*CPU).and, "ASL": (*CPU).asl, "BCC": (*CPU).bcc,
		"BCS": (*CPU).bcs, "BEQ": (*CPU).beq, "BIT": (*CPU).bit, "BMI": (*CPU).bmi,
		"BNE": (*CPU).bne, "BPL": (*CPU).bpl, "BRK": (*CPU).brk, "BVC": (*CPU).bvc,
		"BVS": (*CPU).bvs, "CLC": (*CPU).clc, "CLD": (*CPU).cld, "CLI": (*CPU).cli,
		"CLV": (*CPU).clv, "CMP": (*CPU).cmp, "CPX": (*CPU).cpx, "CPY": (*CPU).cpy,
		"DEC": (*CPU).dec, "DEX": (*CPU).dex, "DEY": (*CPU).dey, "EOR": (*CPU).eor,
		"INC": (*CPU).inc, "INX": (*CPU).inx, "INY": (*CPU).iny, "JMP": (*CPU).jmp,
		"JSR": (*CPU).jsr, "LDA": (*CPU).lda, "LDX": (*CPU).ldx, "LDY": (*CPU).ldy,
		"LSR": (*CPU).lsr, "NOP": (*CPU).nop, "ORA": (*CPU).ora, "PHA": (*CPU).pha,
		"PHP": (*CPU).php, "PLA": (*CPU).pla, "PLP": (*CPU).plp, "ROL": (*CPU).rol,
		"ROR": (*CPU).ror, "RTI": (*CPU).rti, "RTS": (*CPU).rts, "SBC": (*CPU).sbc,
		"SEC": (*CPU).sec, "SED": (*CPU).sed, "SEI": (*CPU).sei, "STA": (*CPU).sta,
		"STX": (*CPU).stx, "STY": (*CPU).sty, "TAX": (*CPU).tax, "TAY": (*CPU).tay,
		"TSX": (*CPU).tsx, "TXA": (*CPU).txa, "TXS": (*CPU).txs, "TYA": (*CPU).tya,

		// undocumented
		"KIL": (*CPU).kil, "SLO": (*CPU).slo, "RLA": (*CPU).rla, "SRE": (*CPU).sre,
		"RRA": (*CPU).rra, "SAX": (*CPU).sax, "LAX": (*CPU).lax, "DCP": (*CPU).dcp,
		"ISC": (*CPU).isc, "ANC": (*CPU).anc, "ALR": (*CPU).alr, "ARR": (*CPU).arr,
		"XAA": (*CPU).xaa, "AXS": (*CPU).axs, "AHX": (*CPU).ahx, "SHY": (*CPU).shy,
		"SHX": (*CPU).shx, "TAS": (*CPU).tas, "LAS": (*CPU).las,
	}

	for i, defn := range instructions.GetDefinitions() {
		op, ok := byMnemonic[defn.Mnemonic]
		if !ok {
			panic(fmt.Sprintf("cpu: no operation for %s", defn))
		}
		operations[i] = op
	}
}

func (mc *CPU) setZN(v uint8) {
	mc.Status.Zero = v == 0
	mc.Status.Sign = v&0x80 == 0x80
}

// modify applies fn to the accumulator or to the value at ea depending on
// the addressing mode. the result is returned.
func (mc *CPU) modify(ea uint16, mode instructions.AddressingMode, fn func(r *registers.Register)) uint8 {
	if mode == instructions.Accumulator {
		fn(&mc.A)
		mc.setZN(mc.A.Value())
		return mc.A.Value()
	}
	r := registers.NewRegister(mc.mem.Read(ea))
	fn(&r)
	mc.mem.Write(ea, r.Value())
	mc.setZN(r.Value())
	return r.Value()
}

func (mc *CPU) branch(cond bool, ea uint16) {
	if !cond {
		return
	}
	mc.extra++
	if pageCrossed(mc.PC, ea) {
		mc.extra++
	}
	mc.PC = ea
}

func (mc *CPU) compare(r registers.Register, v uint8) {
	carry, _ := r.Subtract(v, true)
	mc.Status.Carry = carry
	mc.setZN(r.Value())
}

func (mc *CPU) addA(v uint8) {
	var carry, zero, overflow, sign bool
	if mc.Status.DecimalMode {
		carry, zero, overflow, sign = mc.A.AddDecimal(v, mc.Status.Carry)
	} else {
		carry, overflow = mc.A.Add(v, mc.Status.Carry)
		zero = mc.A.IsZero()
		sign = mc.A.IsNegative()
	}
	mc.Status.Carry = carry
	mc.Status.Zero = zero
	mc.Status.Overflow = overflow
	mc.Status.Sign = sign
}

func (mc *CPU) subtractA(v uint8) {
	var carry, zero, overflow, sign bool
	if mc.Status.DecimalMode {
		carry, zero, overflow, sign = mc.A.SubtractDecimal(v, mc.Status.Carry)
	} else {
		carry, overflow = mc.A.Subtract(v, mc.Status.Carry)
		zero = mc.A.IsZero()
		sign = mc.A.IsNegative()
	}
	mc.Status.Carry = carry
	mc.Status.Zero = zero
	mc.Status.Overflow = overflow
	mc.Status.Sign = sign
}

// loads and stores

func (mc *CPU) lda(ea uint16, _ instructions.AddressingMode) {
	mc.A.Load(mc.mem.Read(ea))
	mc.setZN(mc.A.Value())
}

func (mc *CPU) ldx(ea uint16, _ instructions.AddressingMode) {
	mc.X.Load(mc.mem.Read(ea))
	mc.setZN(mc.X.Value())
}

func (mc *CPU) ldy(ea uint16, _ instructions.AddressingMode) {
	mc.Y.Load(mc.mem.Read(ea))
	mc.setZN(mc.Y.Value())
}

func (mc *CPU) sta(ea uint16, _ instructions.AddressingMode) {
	mc.mem.Write(ea, mc.A.Value())
}

func (mc *CPU) stx(ea uint16, _ instructions.AddressingMode) {
	mc.mem.Write(ea, mc.X.Value())
}

func (mc *CPU) sty(ea uint16, _ instructions.AddressingMode) {
	mc.mem.Write(ea, mc.Y.Value())
}

// transfers

func (mc *CPU) tax(_ uint16, _ instructions.AddressingMode) {
	mc.X.Load(mc.A.Value())
	mc.setZN(mc.X.Value())
}

func (mc *CPU) tay(_ uint16, _ instructions.AddressingMode) {
	mc.Y.Load(mc.A.Value())
	mc.setZN(mc.Y.Value())
}

func (mc *CPU) txa(_ uint16, _ instructions.AddressingMode) {
	mc.A.Load(mc.X.Value())
	mc.setZN(mc.A.Value())
}

func (mc *CPU) tya(_ uint16, _ instructions.AddressingMode) {
	mc.A.Load(mc.Y.Value())
	mc.setZN(mc.A.Value())
}

func (mc *CPU) tsx(_ uint16, _ instructions.AddressingMode) {
	mc.X.Load(mc.SP.Value())
	mc.setZN(mc.X.Value())
}

func (mc *CPU) txs(_ uint16, _ instructions.AddressingMode) {
	mc.SP.Load(mc.X.Value())
}

// stack

func (mc *CPU) pha(_ uint16, _ instructions.AddressingMode) {
	mc.push(mc.A.Value())
}

func (mc *CPU) php(_ uint16, _ instructions.AddressingMode) {
	mc.push(mc.Status.ToUint8() | 0x10)
}

func (mc *CPU) pla(_ uint16, _ instructions.AddressingMode) {
	mc.A.Load(mc.pull())
	mc.setZN(mc.A.Value())
}

func (mc *CPU) plp(_ uint16, _ instructions.AddressingMode) {
	mc.Status.FromUint8(mc.pull())
	mc.Status.Break = false
}

// logical and arithmetic

func (mc *CPU) and(ea uint16, _ instructions.AddressingMode) {
	mc.A.AND(mc.mem.Read(ea))
	mc.setZN(mc.A.Value())
}

func (mc *CPU) eor(ea uint16, _ instructions.AddressingMode) {
	mc.A.EOR(mc.mem.Read(ea))
	mc.setZN(mc.A.Value())
}

func (mc *CPU) ora(ea uint16, _ instructions.AddressingMode) {
	mc.A.ORA(mc.mem.Read(ea))
	mc.setZN(mc.A.Value())
}

func (mc *CPU) bit(ea uint16, _ instructions.AddressingMode) {
	v := registers.NewRegister(mc.mem.Read(ea))
	mc.Status.Sign = v.IsNegative()
	mc.Status.Overflow = v.IsBitV()
	v.AND(mc.A.Value())
	mc.Status.Zero = v.IsZero()
}

func (mc *CPU) adc(ea uint16, _ instructions.AddressingMode) {
	mc.addA(mc.mem.Read(ea))
}

func (mc *CPU) sbc(ea uint16, _ instructions.AddressingMode) {
	mc.subtractA(mc.mem.Read(ea))
}

func (mc *CPU) cmp(ea uint16, _ instructions.AddressingMode) {
	mc.compare(mc.A, mc.mem.Read(ea))
}

func (mc *CPU) cpx(ea uint16, _ instructions.AddressingMode) {
	mc.compare(mc.X, mc.mem.Read(ea))
}

func (mc *CPU) cpy(ea uint16, _ instructions.AddressingMode) {
	mc.compare(mc.Y, mc.mem.Read(ea))
}

// increments and decrements

func (mc *CPU) inc(ea uint16, mode instructions.AddressingMode) {
	mc.modify(ea, mode, func(r *registers.Register) { r.Add(1, false) })
}

func (mc *CPU) dec(ea uint16, mode instructions.AddressingMode) {
	mc.modify(ea, mode, func(r *registers.Register) { r.Subtract(1, true) })
}

func (mc *CPU) inx(_ uint16, _ instructions.AddressingMode) {
	mc.X.Add(1, false)
	mc.setZN(mc.X.Value())
}

func (mc *CPU) iny(_ uint16, _ instructions.AddressingMode) {
	mc.Y.Add(1, false)
	mc.setZN(mc.Y.Value())
}

func (mc *CPU) dex(_ uint16, _ instructions.AddressingMode) {
	mc.X.Subtract(1, true)
	mc.setZN(mc.X.Value())
}

func (mc *CPU) dey(_ uint16, _ instructions.AddressingMode) {
	mc.Y.Subtract(1, true)
	mc.setZN(mc.Y.Value())
}

// shifts and rotates

func (mc *CPU) asl(ea uint16, mode instructions.AddressingMode) {
	mc.modify(ea, mode, func(r *registers.Register) { mc.Status.Carry = r.ASL() })
}

func (mc *CPU) lsr(ea uint16, mode instructions.AddressingMode) {
	mc.modify(ea, mode, func(r *registers.Register) { mc.Status.Carry = r.LSR() })
}

func (mc *CPU) rol(ea uint16, mode instructions.AddressingMode) {
	mc.modify(ea, mode, func(r *registers.Register) { mc.Status.Carry = r.ROL(mc.Status.Carry) })
}

func (mc *CPU) ror(ea uint16, mode instructions.AddressingMode) {
	mc.modify(ea, mode, func(r *registers.Register) { mc.Status.Carry = r.ROR(mc.Status.Carry) })
}

// flow

func (mc *CPU) jmp(ea uint16, _ instructions.AddressingMode) {
	mc.PC = ea
}

func (mc *CPU) jsr(ea uint16, _ instructions.AddressingMode) {
	mc.push16(mc.PC - 1)
	mc.PC = ea
}

func (mc *CPU) rts(_ uint16, _ instructions.AddressingMode) {
	mc.PC = mc.pull16() + 1
}

func (mc *CPU) brk(_ uint16, _ instructions.AddressingMode) {
	mc.push16(mc.PC + 1)
	mc.push(mc.Status.ToUint8() | 0x10)
	mc.Status.InterruptDisable = true
	mc.PC = mc.read16(IRQ)
}

func (mc *CPU) rti(_ uint16, _ instructions.AddressingMode) {
	mc.Status.FromUint8(mc.pull())
	mc.Status.Break = false
	mc.PC = mc.pull16()
}

func (mc *CPU) bcc(ea uint16, _ instructions.AddressingMode) { mc.branch(!mc.Status.Carry, ea) }
func (mc *CPU) bcs(ea uint16, _ instructions.AddressingMode) { mc.branch(mc.Status.Carry, ea) }
func (mc *CPU) beq(ea uint16, _ instructions.AddressingMode) { mc.branch(mc.Status.Zero, ea) }
func (mc *CPU) bne(ea uint16, _ instructions.AddressingMode) { mc.branch(!mc.Status.Zero, ea) }
func (mc *CPU) bmi(ea uint16, _ instructions.AddressingMode) { mc.branch(mc.Status.Sign, ea) }
func (mc *CPU) bpl(ea uint16, _ instructions.AddressingMode) { mc.branch(!mc.Status.Sign, ea) }
func (mc *CPU) bvc(ea uint16, _ instructions.AddressingMode) { mc.branch(!mc.Status.Overflow, ea) }
func (mc *CPU) bvs(ea uint16, _ instructions.AddressingMode) { mc.branch(mc.Status.Overflow, ea) }

// flags

func (mc *CPU) clc(_ uint16, _ instructions.AddressingMode) { mc.Status.Carry = false }
func (mc *CPU) cld(_ uint16, _ instructions.AddressingMode) { mc.Status.DecimalMode = false }
func (mc *CPU) cli(_ uint16, _ instructions.AddressingMode) { mc.Status.InterruptDisable = false }
func (mc *CPU) clv(_ uint16, _ instructions.AddressingMode) { mc.Status.Overflow = false }
func (mc *CPU) sec(_ uint16, _ instructions.AddressingMode) { mc.Status.Carry = true }
func (mc *CPU) sed(_ uint16, _ instructions.AddressingMode) { mc.Status.DecimalMode = true }
func (mc *CPU) sei(_ uint16, _ instructions.AddressingMode) { mc.Status.InterruptDisable = true }

// nop still performs the read of the operand. some cartridges respond to it
func (mc *CPU) nop(ea uint16, mode instructions.AddressingMode) {
	if mode != instructions.Implied {
		_ = mc.mem.Read(ea)
	}
	if mc.NOPHook != nil {
		mc.NOPHook()
	}
}

// kil jams the CPU. the PC is left pointing at the KIL opcode
func (mc *CPU) kil(_ uint16, _ instructions.AddressingMode) {
	mc.PC--
	mc.Jammed = true
}

// undocumented opcodes. the unstable opcodes (XAA, AHX, SHX, SHY, TAS) use
// the commonly observed behaviour

func (mc *CPU) slo(ea uint16, mode instructions.AddressingMode) {
	v := mc.modify(ea, mode, func(r *registers.Register) { mc.Status.Carry = r.ASL() })
	mc.A.ORA(v)
	mc.setZN(mc.A.Value())
}

func (mc *CPU) rla(ea uint16, mode instructions.AddressingMode) {
	v := mc.modify(ea, mode, func(r *registers.Register) { mc.Status.Carry = r.ROL(mc.Status.Carry) })
	mc.A.AND(v)
	mc.setZN(mc.A.Value())
}

func (mc *CPU) sre(ea uint16, mode instructions.AddressingMode) {
	v := mc.modify(ea, mode, func(r *registers.Register) { mc.Status.Carry = r.LSR() })
	mc.A.EOR(v)
	mc.setZN(mc.A.Value())
}

func (mc *CPU) rra(ea uint16, mode instructions.AddressingMode) {
	v := mc.modify(ea, mode, func(r *registers.Register) { mc.Status.Carry = r.ROR(mc.Status.Carry) })
	mc.addA(v)
}

func (mc *CPU) sax(ea uint16, _ instructions.AddressingMode) {
	mc.mem.Write(ea, mc.A.Value()&mc.X.Value())
}

func (mc *CPU) lax(ea uint16, _ instructions.AddressingMode) {
	v := mc.mem.Read(ea)
	mc.A.Load(v)
	mc.X.Load(v)
	mc.setZN(v)
}

func (mc *CPU) dcp(ea uint16, mode instructions.AddressingMode) {
	v := mc.modify(ea, mode, func(r *registers.Register) { r.Subtract(1, true) })
	mc.compare(mc.A, v)
}

func (mc *CPU) isc(ea uint16, mode instructions.AddressingMode) {
	v := mc.modify(ea, mode, func(r *registers.Register) { r.Add(1, false) })
	mc.subtractA(v)
}

func (mc *CPU) anc(ea uint16, _ instructions.AddressingMode) {
	mc.A.AND(mc.mem.Read(ea))
	mc.setZN(mc.A.Value())
	mc.Status.Carry = mc.A.IsNegative()
}

func (mc *CPU) alr(ea uint16, _ instructions.AddressingMode) {
	mc.A.AND(mc.mem.Read(ea))
	mc.Status.Carry = mc.A.LSR()
	mc.setZN(mc.A.Value())
}

func (mc *CPU) arr(ea uint16, _ instructions.AddressingMode) {
	mc.A.AND(mc.mem.Read(ea))
	mc.A.ROR(mc.Status.Carry)
	mc.setZN(mc.A.Value())
	v := mc.A.Value()
	mc.Status.Carry = v&0x40 == 0x40
	mc.Status.Overflow = (v>>6)&0x01 != (v>>5)&0x01
}

func (mc *CPU) xaa(ea uint16, _ instructions.AddressingMode) {
	mc.A.Load(mc.X.Value() & mc.mem.Read(ea))
	mc.setZN(mc.A.Value())
}

func (mc *CPU) axs(ea uint16, _ instructions.AddressingMode) {
	r := registers.NewRegister(mc.A.Value() & mc.X.Value())
	mc.Status.Carry, _ = r.Subtract(mc.mem.Read(ea), true)
	mc.X.Load(r.Value())
	mc.setZN(mc.X.Value())
}

func (mc *CPU) ahx(ea uint16, _ instructions.AddressingMode) {
	mc.mem.Write(ea, mc.A.Value()&mc.X.Value()&(uint8(ea>>8)+1))
}

func (mc *CPU) shx(ea uint16, _ instructions.AddressingMode) {
	mc.mem.Write(ea, mc.X.Value()&(uint8(ea>>8)+1))
}

func (mc *CPU) shy(ea uint16, _ instructions.AddressingMode) {
	mc.mem.Write(ea, mc.Y.Value()&(uint8(ea>>8)+1))
}

func (mc *CPU) tas(ea uint16, _ instructions.AddressingMode) {
	mc.SP.Load(mc.A.Value() & mc.X.Value())
	mc.mem.Write(ea, mc.SP.Value()&(uint8(ea>>8)+1))
}

func (mc *CPU) las(ea uint16, _ instructions.AddressingMode) {
	v := mc.mem.Read(ea) & mc.SP.Value()
	mc.A.Load(v)
	mc.X.Load(v)
	mc.SP.Load(v)
	mc.setZN(v)
}
