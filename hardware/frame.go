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

package hardware

import (
	"github.com/jetsetilly/gopher7800/assert"
	"github.com/jetsetilly/gopher7800/logger"
)

// ComputeNextFrame runs the machine for one frame. It does nothing if the
// machine has halted.
//
// Each scanline is 114 CPU cycles long. The CPU runs for the first seven
// cycles after which MARIA performs DMA. The CPU is stalled for the duration
// of the DMA and then runs for whatever remains of the scanline.
//
// The CPU may ask to be preempted, by writing to WSYNC, in which case it is
// stalled until the end of the scanline. If the CPU jams then the frame ends
// early and the machine is halted.
func (m *Machine7800) ComputeNextFrame() {
	if m.halt {
		return
	}

	m.Input.CaptureInputState()
	m.frameNumber++
	clear(m.soundBuffer)

	mc := m.CPU

	assert.Check(!mc.Jammed, "cpu is jammed at start of frame")
	assert.Check(mc.RunClocks <= 0 && mc.RunClocks%mc.RunClocksMultiple == 0,
		"run clocks (%d) invalid at start of frame", mc.RunClocks)

	var startOfScanline uint64

	m.Maria.StartFrame()
	m.Cart.StartFrame()

	for i := 0; i < m.scanlines && !mc.Jammed; i++ {
		assert.Check(mc.RunClocks <= 0 && mc.RunClocks%mc.RunClocksMultiple == 0,
			"run clocks (%d) invalid at start of scanline %d", mc.RunClocks, i)

		// the clock value at the start of the scanline, taking into account
		// any overspend from the previous scanline
		newStartOfScanline := uint64(int64(mc.Clock) + int64(mc.RunClocks/mc.RunClocksMultiple))
		assert.Check(startOfScanline == 0 || newStartOfScanline == startOfScanline+cyclesPerScanline,
			"scanline %d started at %d. expected %d", i, newStartOfScanline, startOfScanline+cyclesPerScanline)
		startOfScanline = newStartOfScanline

		mc.RunClocks += preDMACycles * mc.RunClocksMultiple
		remainingRunClocks := (cyclesPerScanline - preDMACycles) * mc.RunClocksMultiple

		mc.Execute()
		if mc.Jammed {
			break
		}
		if mc.EmulatorPreemptRequest {
			m.Maria.DoDMAProcessing()
			m.endScanline(startOfScanline)
			continue
		}

		dmaClocks := adjustDMAClocks(m.Maria.DoDMAProcessing(), i, m.scanlines, mc.RunClocks, remainingRunClocks)

		mc.Clock += uint64(dmaClocks / mc.RunClocksMultiple)
		mc.RunClocks -= dmaClocks
		mc.RunClocks += remainingRunClocks

		mc.Execute()
		if mc.Jammed {
			break
		}
		if mc.EmulatorPreemptRequest {
			m.endScanline(startOfScanline)
		}
	}

	m.Cart.EndFrame()
	m.Maria.EndFrame()

	if mc.Jammed {
		m.halt = true
		logger.Logf(m.env, "machine", "halted: cpu jammed at %#04x in frame %d", mc.PC, m.frameNumber)
	}
}

// endScanline advances the CPU clock to the end of the scanline. Used when the
// CPU has been preempted.
func (m *Machine7800) endScanline(startOfScanline uint64) {
	mc := m.CPU
	mc.Clock += cyclesPerScanline - (mc.Clock - startOfScanline)
	mc.RunClocks = 0
}

// adjustDMAClocks corrects the number of MARIA clocks used by DMA on a
// scanline, so that it can be subtracted from the CPU budget.
//
// DMA that would run past the end of the scanline is halved until it fits.
// The CPU resumes on the next multiple of four clocks.
func adjustDMAClocks(dmaClocks int, scanline int, scanlines int, runClocks int, remainingRunClocks int) int {
	// the DMA count is four clocks too high on one scanline of the Ace of
	// Aces title screen
	if (scanline == 203 && scanlines == 262) || (scanline == 228 && scanlines == 312) {
		if dmaClocks == 152 && remainingRunClocks == 428 && (runClocks == -4 || runClocks == -8) {
			dmaClocks -= 4
		}
	}

	// KLAX starts DMA before the display list list has been initialised
	for dmaClocks > 0 && runClocks+remainingRunClocks < dmaClocks {
		dmaClocks >>= 1
	}

	if dmaClocks&3 != 0 {
		dmaClocks += 4
		dmaClocks -= dmaClocks & 3
	}

	return dmaClocks
}
