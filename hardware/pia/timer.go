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

package pia

import "fmt"

// Interval indicates how often (in CPU cycles) the timer value decreases.
type Interval int

// List of valid Interval values.
const (
	TIM1T  Interval = 1
	TIM8T  Interval = 8
	TIM64T Interval = 64
	T1024T Interval = 1024
)

func (in Interval) String() string {
	switch in {
	case TIM1T:
		return "TIM1T"
	case TIM8T:
		return "TIM8T"
	case TIM64T:
		return "TIM64T"
	case T1024T:
		return "T1024T"
	}
	return "unknown interval"
}

// the interval written to by the CPU is selected by the lowest two bits of the
// address. the interval is a power of two
var intervalShift = [4]uint{0, 3, 6, 10}

type timer struct {
	// value written to the timer and the CPU clock at the time of writing
	value uint8
	start uint64
	shift uint

	irqEnabled bool
}

func (tmr timer) String() string {
	return fmt.Sprintf("value=%#02x start=%d intv=%s irq=%v", tmr.value, tmr.start, Interval(1<<tmr.shift), tmr.irqEnabled)
}

// set the timer. the interval is selected by the lowest two bits of the
// address and bit 3 enables the interrupt
func (tmr *timer) set(addr uint16, value uint8, clock uint64) {
	tmr.value = value
	tmr.start = clock
	tmr.shift = intervalShift[addr&0x03]
	tmr.irqEnabled = addr&0x08 == 0x08
}

// the number of cycles until the timer passes zero
func (tmr timer) expiry() uint64 {
	return (uint64(tmr.value) + 1) << tmr.shift
}

// intim returns the timer value at the clock. after the timer has passed
// zero it decreases once every cycle.
func (tmr timer) intim(clock uint64) uint8 {
	cycles := clock - tmr.start
	if clock < tmr.start {
		cycles = 0
	}
	if cycles < tmr.expiry() {
		return tmr.value - uint8(cycles>>tmr.shift)
	}
	return uint8(0xff - (cycles - tmr.expiry()))
}

// expired returns true if the timer has passed zero.
func (tmr timer) expired(clock uint64) bool {
	return clock >= tmr.start && clock-tmr.start >= tmr.expiry()
}
