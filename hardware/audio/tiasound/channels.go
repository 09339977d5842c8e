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

package tiasound

import "fmt"

// Registers of a single channel.
type Registers struct {
	Control uint8
	Freq    uint8
	Volume  uint8
}

func (reg Registers) String() string {
	return fmt.Sprintf("%04b @ %05b ^ %04b", reg.Control, reg.Freq, reg.Volume)
}

type channel struct {
	registers Registers

	// which bit of each polynomial counter to use next
	poly4ct int
	poly5ct int
	poly9ct int
	div3ct  uint8

	// the frequency counter filters the 30KHz clock. when it reaches the
	// value in the frequency register the output may change
	freqCt uint8

	// if bits 2 and 3 of the control register are set the channel is
	// clocked by the 10KHz clock
	useTenKhz bool

	// the output volume. toggles between zero and the volume register
	actualVol uint8
}

func (ch *channel) String() string {
	return ch.registers.String()
}

// changing the value of an AUDx register has an immediate effect on the
// volume of a channel that isn't being clocked.
func (ch *channel) reactAUDCx() {
	ch.useTenKhz = ch.registers.Control&0x0c == 0x0c && ch.registers.Control != 0x0f
	if ch.registers.Control == 0x00 || ch.registers.Control == 0x0b {
		ch.actualVol = ch.registers.Volume
	} else if ch.actualVol != 0 {
		ch.actualVol = ch.registers.Volume
	}
}

func (ch *channel) toggle() {
	if ch.actualVol != 0 {
		ch.actualVol = 0
	} else {
		ch.actualVol = ch.registers.Volume
	}
}

// tick should be called at a frequency of 30KHz. tenKhz is true on every
// third tick.
func (ch *channel) tick(tenKhz bool) {
	if ch.useTenKhz && !tenKhz {
		return
	}

	// volume only. nothing to do
	if ch.registers.Control == 0x00 || ch.registers.Control == 0x0b {
		return
	}

	if ch.freqCt >= ch.registers.Freq {
		ch.freqCt = 0
	} else {
		ch.freqCt++
		return
	}

	prevBit5 := poly5bit[ch.poly5ct]
	ch.poly5ct++
	if ch.poly5ct >= len(poly5bit) {
		ch.poly5ct = 0
	}

	ctrl := ch.registers.Control

	// check for clock tick
	if ctrl&0x02 == 0x00 ||
		(ctrl&0x01 == 0x00 && div31[ch.poly5ct] != 0) ||
		(ctrl&0x01 == 0x01 && poly5bit[ch.poly5ct] != 0) ||
		(ctrl&0x0f == 0x0f && poly5bit[ch.poly5ct] != prevBit5) {

		switch {
		case ctrl&0x04 == 0x04:
			if ctrl&0x0f == 0x0f {
				// poly5 divided by three
				if poly5bit[ch.poly5ct] != prevBit5 {
					ch.div3ct++
					if ch.div3ct == 3 {
						ch.div3ct = 0
						ch.toggle()
					}
				}
			} else {
				ch.toggle()
			}

		case ctrl&0x08 == 0x08:
			if ctrl == 0x08 {
				ch.poly9ct++
				if ch.poly9ct >= len(poly9bit) {
					ch.poly9ct = 0
				}
				if poly9bit[ch.poly9ct] != 0 {
					ch.actualVol = ch.registers.Volume
				} else {
					ch.actualVol = 0
				}
			} else if ctrl&0x02 != 0 {
				if ch.actualVol != 0 || ctrl&0x01 == 0x01 {
					ch.actualVol = 0
				} else {
					ch.actualVol = ch.registers.Volume
				}
			} else if poly5bit[ch.poly5ct] == 1 {
				ch.actualVol = ch.registers.Volume
			} else {
				ch.actualVol = 0
			}

		default:
			ch.poly4ct++
			if ch.poly4ct >= len(poly4bit) {
				ch.poly4ct = 0
			}
			if poly4bit[ch.poly4ct] == 1 {
				ch.actualVol = ch.registers.Volume
			} else {
				ch.actualVol = 0
			}
		}
	}
}
