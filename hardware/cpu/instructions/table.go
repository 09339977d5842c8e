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

// opcode table in opcode order. the number of bytes and the effect category
// are derived from the addressing mode and the mnemonic.
var table = [256]entry{
	{0x00, "BRK", imp, 7, false},
	{0x01, "ORA", izx, 6, false},
	{0x02, "KIL", imp, 2, false},
	{0x03, "SLO", izx, 8, false},
	{0x04, "NOP", zpg, 3, false},
	{0x05, "ORA", zpg, 3, false},
	{0x06, "ASL", zpg, 5, false},
	{0x07, "SLO", zpg, 5, false},
	{0x08, "PHP", imp, 3, false},
	{0x09, "ORA", imm, 2, false},
	{0x0a, "ASL", acc, 2, false},
	{0x0b, "ANC", imm, 2, false},
	{0x0c, "NOP", abs, 4, false},
	{0x0d, "ORA", abs, 4, false},
	{0x0e, "ASL", abs, 6, false},
	{0x0f, "SLO", abs, 6, false},
	{0x10, "BPL", rel, 2, true},
	{0x11, "ORA", izy, 5, true},
	{0x12, "KIL", imp, 2, false},
	{0x13, "SLO", izy, 8, false},
	{0x14, "NOP", zpx, 4, false},
	{0x15, "ORA", zpx, 4, false},
	{0x16, "ASL", zpx, 6, false},
	{0x17, "SLO", zpx, 6, false},
	{0x18, "CLC", imp, 2, false},
	{0x19, "ORA", aby, 4, true},
	{0x1a, "NOP", imp, 2, false},
	{0x1b, "SLO", aby, 7, false},
	{0x1c, "NOP", abx, 4, true},
	{0x1d, "ORA", abx, 4, true},
	{0x1e, "ASL", abx, 7, false},
	{0x1f, "SLO", abx, 7, false},
	{0x20, "JSR", abs, 6, false},
	{0x21, "AND", izx, 6, false},
	{0x22, "KIL", imp, 2, false},
	{0x23, "RLA", izx, 8, false},
	{0x24, "BIT", zpg, 3, false},
	{0x25, "AND", zpg, 3, false},
	{0x26, "ROL", zpg, 5, false},
	{0x27, "RLA", zpg, 5, false},
	{0x28, "PLP", imp, 4, false},
	{0x29, "AND", imm, 2, false},
	{0x2a, "ROL", acc, 2, false},
	{0x2b, "ANC", imm, 2, false},
	{0x2c, "BIT", abs, 4, false},
	{0x2d, "AND", abs, 4, false},
	{0x2e, "ROL", abs, 6, false},
	{0x2f, "RLA", abs, 6, false},
	{0x30, "BMI", rel, 2, true},
	{0x31, "AND", izy, 5, true},
	{0x32, "KIL", imp, 2, false},
	{0x33, "RLA", izy, 8, false},
	{0x34, "NOP", zpx, 4, false},
	{0x35, "AND", zpx, 4, false},
	{0x36, "ROL", zpx, 6, false},
	{0x37, "RLA", zpx, 6, false},
	{0x38, "SEC", imp, 2, false},
	{0x39, "AND", aby, 4, true},
	{0x3a, "NOP", imp, 2, false},
	{0x3b, "RLA", aby, 7, false},
	{0x3c, "NOP", abx, 4, true},
	{0x3d, "AND", abx, 4, true},
	{0x3e, "ROL", abx, 7, false},
	{0x3f, "RLA", abx, 7, false},
	{0x40, "RTI", imp, 6, false},
	{0x41, "EOR", izx, 6, false},
	{0x42, "KIL", imp, 2, false},
	{0x43, "SRE", izx, 8, false},
	{0x44, "NOP", zpg, 3, false},
	{0x45, "EOR", zpg, 3, false},
	{0x46, "LSR", zpg, 5, false},
	{0x47, "SRE", zpg, 5, false},
	{0x48, "PHA", imp, 3, false},
	{0x49, "EOR", imm, 2, false},
	{0x4a, "LSR", acc, 2, false},
	{0x4b, "ALR", imm, 2, false},
	{0x4c, "JMP", abs, 3, false},
	{0x4d, "EOR", abs, 4, false},
	{0x4e, "LSR", abs, 6, false},
	{0x4f, "SRE", abs, 6, false},
	{0x50, "BVC", rel, 2, true},
	{0x51, "EOR", izy, 5, true},
	{0x52, "KIL", imp, 2, false},
	{0x53, "SRE", izy, 8, false},
	{0x54, "NOP", zpx, 4, false},
	{0x55, "EOR", zpx, 4, false},
	{0x56, "LSR", zpx, 6, false},
	{0x57, "SRE", zpx, 6, false},
	{0x58, "CLI", imp, 2, false},
	{0x59, "EOR", aby, 4, true},
	{0x5a, "NOP", imp, 2, false},
	{0x5b, "SRE", aby, 7, false},
	{0x5c, "NOP", abx, 4, true},
	{0x5d, "EOR", abx, 4, true},
	{0x5e, "LSR", abx, 7, false},
	{0x5f, "SRE", abx, 7, false},
	{0x60, "RTS", imp, 6, false},
	{0x61, "ADC", izx, 6, false},
	{0x62, "KIL", imp, 2, false},
	{0x63, "RRA", izx, 8, false},
	{0x64, "NOP", zpg, 3, false},
	{0x65, "ADC", zpg, 3, false},
	{0x66, "ROR", zpg, 5, false},
	{0x67, "RRA", zpg, 5, false},
	{0x68, "PLA", imp, 4, false},
	{0x69, "ADC", imm, 2, false},
	{0x6a, "ROR", acc, 2, false},
	{0x6b, "ARR", imm, 2, false},
	{0x6c, "JMP", ind, 5, false},
	{0x6d, "ADC", abs, 4, false},
	{0x6e, "ROR", abs, 6, false},
	{0x6f, "RRA", abs, 6, false},
	{0x70, "BVS", rel, 2, true},
	{0x71, "ADC", izy, 5, true},
	{0x72, "KIL", imp, 2, false},
	{0x73, "RRA", izy, 8, false},
	{0x74, "NOP", zpx, 4, false},
	{0x75, "ADC", zpx, 4, false},
	{0x76, "ROR", zpx, 6, false},
	{0x77, "RRA", zpx, 6, false},
	{0x78, "SEI", imp, 2, false},
	{0x79, "ADC", aby, 4, true},
	{0x7a, "NOP", imp, 2, false},
	{0x7b, "RRA", aby, 7, false},
	{0x7c, "NOP", abx, 4, true},
	{0x7d, "ADC", abx, 4, true},
	{0x7e, "ROR", abx, 7, false},
	{0x7f, "RRA", abx, 7, false},
	{0x80, "NOP", imm, 2, false},
	{0x81, "STA", izx, 6, false},
	{0x82, "NOP", imm, 2, false},
	{0x83, "SAX", izx, 6, false},
	{0x84, "STY", zpg, 3, false},
	{0x85, "STA", zpg, 3, false},
	{0x86, "STX", zpg, 3, false},
	{0x87, "SAX", zpg, 3, false},
	{0x88, "DEY", imp, 2, false},
	{0x89, "NOP", imm, 2, false},
	{0x8a, "TXA", imp, 2, false},
	{0x8b, "XAA", imm, 2, false},
	{0x8c, "STY", abs, 4, false},
	{0x8d, "STA", abs, 4, false},
	{0x8e, "STX", abs, 4, false},
	{0x8f, "SAX", abs, 4, false},
	{0x90, "BCC", rel, 2, true},
	{0x91, "STA", izy, 6, false},
	{0x92, "KIL", imp, 2, false},
	{0x93, "AHX", izy, 6, false},
	{0x94, "STY", zpx, 4, false},
	{0x95, "STA", zpx, 4, false},
	{0x96, "STX", zpy, 4, false},
	{0x97, "SAX", zpy, 4, false},
	{0x98, "TYA", imp, 2, false},
	{0x99, "STA", aby, 5, false},
	{0x9a, "TXS", imp, 2, false},
	{0x9b, "TAS", aby, 5, false},
	{0x9c, "SHY", abx, 5, false},
	{0x9d, "STA", abx, 5, false},
	{0x9e, "SHX", aby, 5, false},
	{0x9f, "AHX", aby, 5, false},
	{0xa0, "LDY", imm, 2, false},
	{0xa1, "LDA", izx, 6, false},
	{0xa2, "LDX", imm, 2, false},
	{0xa3, "LAX", izx, 6, false},
	{0xa4, "LDY", zpg, 3, false},
	{0xa5, "LDA", zpg, 3, false},
	{0xa6, "LDX", zpg, 3, false},
	{0xa7, "LAX", zpg, 3, false},
	{0xa8, "TAY", imp, 2, false},
	{0xa9, "LDA", imm, 2, false},
	{0xaa, "TAX", imp, 2, false},
	{0xab, "LAX", imm, 2, false},
	{0xac, "LDY", abs, 4, false},
	{0xad, "LDA", abs, 4, false},
	{0xae, "LDX", abs, 4, false},
	{0xaf, "LAX", abs, 4, false},
	{0xb0, "BCS", rel, 2, true},
	{0xb1, "LDA", izy, 5, true},
	{0xb2, "KIL", imp, 2, false},
	{0xb3, "LAX", izy, 5, true},
	{0xb4, "LDY", zpx, 4, false},
	{0xb5, "LDA", zpx, 4, false},
	{0xb6, "LDX", zpy, 4, false},
	{0xb7, "LAX", zpy, 4, false},
	{0xb8, "CLV", imp, 2, false},
	{0xb9, "LDA", aby, 4, true},
	{0xba, "TSX", imp, 2, false},
	{0xbb, "LAS", aby, 4, true},
	{0xbc, "LDY", abx, 4, true},
	{0xbd, "LDA", abx, 4, true},
	{0xbe, "LDX", aby, 4, true},
	{0xbf, "LAX", aby, 4, true},
	{0xc0, "CPY", imm, 2, false},
	{0xc1, "CMP", izx, 6, false},
	{0xc2, "NOP", imm, 2, false},
	{0xc3, "DCP", izx, 8, false},
	{0xc4, "CPY", zpg, 3, false},
	{0xc5, "CMP", zpg, 3, false},
	{0xc6, "DEC", zpg, 5, false},
	{0xc7, "DCP", zpg, 5, false},
	{0xc8, "INY", imp, 2, false},
	{0xc9, "CMP", imm, 2, false},
	{0xca, "DEX", imp, 2, false},
	{0xcb, "AXS", imm, 2, false},
	{0xcc, "CPY", abs, 4, false},
	{0xcd, "CMP", abs, 4, false},
	{0xce, "DEC", abs, 6, false},
	{0xcf, "DCP", abs, 6, false},
	{0xd0, "BNE", rel, 2, true},
	{0xd1, "CMP", izy, 5, true},
	{0xd2, "KIL", imp, 2, false},
	{0xd3, "DCP", izy, 8, false},
	{0xd4, "NOP", zpx, 4, false},
	{0xd5, "CMP", zpx, 4, false},
	{0xd6, "DEC", zpx, 6, false},
	{0xd7, "DCP", zpx, 6, false},
	{0xd8, "CLD", imp, 2, false},
	{0xd9, "CMP", aby, 4, true},
	{0xda, "NOP", imp, 2, false},
	{0xdb, "DCP", aby, 7, false},
	{0xdc, "NOP", abx, 4, true},
	{0xdd, "CMP", abx, 4, true},
	{0xde, "DEC", abx, 7, false},
	{0xdf, "DCP", abx, 7, false},
	{0xe0, "CPX", imm, 2, false},
	{0xe1, "SBC", izx, 6, false},
	{0xe2, "NOP", imm, 2, false},
	{0xe3, "ISC", izx, 8, false},
	{0xe4, "CPX", zpg, 3, false},
	{0xe5, "SBC", zpg, 3, false},
	{0xe6, "INC", zpg, 5, false},
	{0xe7, "ISC", zpg, 5, false},
	{0xe8, "INX", imp, 2, false},
	{0xe9, "SBC", imm, 2, false},
	{0xea, "NOP", imp, 2, false},
	{0xeb, "SBC", imm, 2, false},
	{0xec, "CPX", abs, 4, false},
	{0xed, "SBC", abs, 4, false},
	{0xee, "INC", abs, 6, false},
	{0xef, "ISC", abs, 6, false},
	{0xf0, "BEQ", rel, 2, true},
	{0xf1, "SBC", izy, 5, true},
	{0xf2, "KIL", imp, 2, false},
	{0xf3, "ISC", izy, 8, false},
	{0xf4, "NOP", zpx, 4, false},
	{0xf5, "SBC", zpx, 4, false},
	{0xf6, "INC", zpx, 6, false},
	{0xf7, "ISC", zpx, 6, false},
	{0xf8, "SED", imp, 2, false},
	{0xf9, "SBC", aby, 4, true},
	{0xfa, "NOP", imp, 2, false},
	{0xfb, "ISC", aby, 7, false},
	{0xfc, "NOP", abx, 4, true},
	{0xfd, "SBC", abx, 4, true},
	{0xfe, "INC", abx, 7, false},
	{0xff, "ISC", abx, 7, false},
}
