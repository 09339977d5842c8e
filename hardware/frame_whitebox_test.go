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
	"testing"

	"github.com/jetsetilly/gopher7800/test"
)

func TestAdjustDMAClocks(t *testing.T) {
	// rounded up to a multiple of four
	test.ExpectEquality(t, adjustDMAClocks(5, 0, 262, 0, 428), 8)
	test.ExpectEquality(t, adjustDMAClocks(8, 0, 262, 0, 428), 8)
	test.ExpectEquality(t, adjustDMAClocks(0, 0, 262, 0, 428), 0)

	// one scanline of one game over counts by four
	test.ExpectEquality(t, adjustDMAClocks(152, 203, 262, -4, 428), 148)
	test.ExpectEquality(t, adjustDMAClocks(152, 203, 262, -8, 428), 148)
	test.ExpectEquality(t, adjustDMAClocks(152, 228, 312, -4, 428), 148)
	test.ExpectEquality(t, adjustDMAClocks(152, 203, 312, -4, 428), 152)
	test.ExpectEquality(t, adjustDMAClocks(152, 203, 262, 0, 428), 152)

	// too much DMA is halved until it fits
	test.ExpectEquality(t, adjustDMAClocks(1000, 0, 262, 0, 428), 252)
	test.ExpectEquality(t, adjustDMAClocks(428, 0, 262, -4, 428), 216)
}
