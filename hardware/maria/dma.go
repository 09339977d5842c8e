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

package maria

// MARIA clock costs of each part of the DMA process.
const (
	startupClocks      = 16
	shutdownClocks     = 16
	shutdownZoneClocks = 24 // includes the fetch of the next DLL entry
	header4Clocks      = 8
	header5Clocks      = 12
	directClocks       = 3
	indirectClocks     = 6
	indirectWideClocks = 9
)

// DMA stops once this many clocks have been used on a line. MARIA would
// otherwise run into the next line.
const maxLineClocks = 114 * 4

// DoDMAProcessing performs the DMA for the current scanline and advances to
// the next scanline. Returns the number of MARIA clocks used.
func (mar *Maria) DoDMAProcessing() int {
	clocks := 0

	switch {
	case mar.scanline == mar.firstScanline-1:
		// the first DLL entry is fetched at the end of vblank
		mar.dmaInProgress = mar.dmaEnabled
		if mar.dmaInProgress {
			mar.dll = mar.dpp()
			mar.mem.SetMariaRead(true)
			mar.fetchDLLEntry()
			mar.mem.SetMariaRead(false)
			clocks = shutdownZoneClocks
		}

	case mar.dmaInProgress && mar.dmaEnabled && !mar.InVBlank():
		mar.mem.SetMariaRead(true)
		clocks = startupClocks + mar.processDisplayList()
		if mar.offset == 0 {
			if mar.dli {
				mar.mc.NMIInterruptRequest = true
			}
			mar.fetchDLLEntry()
			clocks += shutdownZoneClocks
		} else {
			mar.offset--
			clocks += shutdownClocks
		}
		mar.mem.SetMariaRead(false)

	default:
		if mar.scanline >= mar.lastScanline() {
			mar.dmaInProgress = false
		}
	}

	mar.scanline++
	mar.lines++

	return clocks
}

func (mar *Maria) fetchDLLEntry() {
	flags := mar.mem.Read(mar.dll)
	hi := mar.mem.Read(mar.dll + 1)
	lo := mar.mem.Read(mar.dll + 2)
	mar.dll += 3

	mar.dli = flags&0x80 == 0x80
	mar.holey16 = flags&0x40 == 0x40
	mar.holey8 = flags&0x20 == 0x20
	mar.offset = int(flags & 0x0f)
	mar.dl = uint16(hi)<<8 | uint16(lo)
}

// holey DMA. graphics in the holes are not fetched and cost nothing
func (mar *Maria) isHole(addr uint16) bool {
	return (mar.holey16 && addr&0x9000 == 0x9000) || (mar.holey8 && addr&0x8800 == 0x8800)
}

// processDisplayList walks the display list of the current zone and fetches
// the graphics for the current line. Returns the number of clocks used.
func (mar *Maria) processDisplayList() int {
	clocks := 0
	dl := mar.dl
	wide := mar.registers[CTRL&0x1f]&ctrlCharWidth == ctrlCharWidth

	for clocks < maxLineClocks {
		mode := mar.mem.Read(dl + 1)
		if mode&0x5f == 0 {
			break
		}

		var lo, hi, palwidth uint8
		var indirect bool

		lo = mar.mem.Read(dl)
		if mode&0x1f != 0 {
			palwidth = mode
			hi = mar.mem.Read(dl + 2)
			_ = mar.mem.Read(dl + 3) // horizontal position
			dl += 4
			clocks += header4Clocks
		} else {
			indirect = mode&0x20 == 0x20
			hi = mar.mem.Read(dl + 2)
			palwidth = mar.mem.Read(dl + 3)
			_ = mar.mem.Read(dl + 4)
			dl += 5
			clocks += header5Clocks
		}

		width := 32 - int(palwidth&0x1f)
		base := uint16(hi)<<8 | uint16(lo)

		if indirect {
			chbase := uint16(mar.registers[CHBASE&0x1f]+uint8(mar.offset)) << 8
			for i := 0; i < width; i++ {
				c := mar.mem.Read(base + uint16(i))
				gfx := chbase | uint16(c)
				if mar.isHole(gfx) {
					continue
				}
				_ = mar.mem.Read(gfx)
				if wide {
					_ = mar.mem.Read(gfx + 1)
					clocks += indirectWideClocks
				} else {
					clocks += indirectClocks
				}
			}
		} else {
			gfx := base + uint16(mar.offset)<<8
			for i := 0; i < width; i++ {
				addr := gfx + uint16(i)
				if mar.isHole(addr) {
					continue
				}
				_ = mar.mem.Read(addr)
				clocks += directClocks
			}
		}
	}

	return clocks
}
