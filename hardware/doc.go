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

// Package hardware is the base package for the 7800 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine7800 type is the root of the emulation and contains external
// references to all the console's sub-systems. From here, the emulation can
// be reset or run a frame at a time with ComputeNextFrame().
//
// Each call to ComputeNextFrame() runs the CPU and MARIA for every scanline
// in the frame. The CPU is given a seven cycle slice at the start of each
// line, after which MARIA performs its DMA. The CPU is then given whatever
// remains of the line.
//
// The machine halts permanently if the CPU executes a KIL opcode. A halted
// machine can not be restarted. Create a new machine or restore a savestate.
//
// The state of a machine can be written with Serialize() and read with
// Deserialize(). Deserialize() never changes an existing machine. It always
// returns a new one.
package hardware
