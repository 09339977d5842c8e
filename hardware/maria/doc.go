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

// Package maria implements the register file and the DMA engine of the MARIA
// video chip. MARIA shares the $00-$3F region of pages zero to three with the
// remains of the TIA, which provides the sound channels and the controller
// fire button inputs. Both are handled by the Maria type.
//
// Pixel output is not produced. The DMA engine walks the display list list
// (DLL) and the display lists (DL) exactly as the chip does, reading every
// header and graphics byte through the address space, and returns the number
// of MARIA clocks that were used. The scheduler in the hardware package
// steals those clocks from the CPU.
//
// MARIA clocks are four times faster than CPU clocks. A value returned by
// DoDMAProcessing() is therefore in the same units as cpu.RunClocks when the
// CPU has a RunClocksMultiple of four.
package maria
