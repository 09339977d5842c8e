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

package pokey

// AUDC bits.
const (
	audcNotPoly5   = 0x80
	audcPoly4      = 0x40
	audcPure       = 0x20
	audcVolumeOnly = 0x10
	audcVolume     = 0x0f
)

// AUDCTL bits.
const (
	audctlPoly9    = 0x80
	audctlCh1Fast  = 0x40
	audctlCh3Fast  = 0x20
	audctlCh2ByCh1 = 0x10
	audctlCh4ByCh3 = 0x08
	audctlHiPass1  = 0x04
	audctlHiPass2  = 0x02
	audctl15Khz    = 0x01
)

// the number of CPU cycles in the 64Khz and 15Khz base clocks.
const (
	base64Khz = 28
	base15Khz = 114
)

type channel struct {
	audf uint8
	audc uint8

	// number of CPU cycles between expiries of the divide-by-N counter. zero
	// if the channel is silenced because it is the low byte of a linked pair
	period int

	// number of CPU cycles remaining until the next expiry
	counter int

	output bool
}

// expire is called when the divide-by-N counter reaches zero. polyClock is
// the number of CPU cycles since the polynomial counters were reset.
func (ch *channel) expire(polyClock uint64, poly9 bool) {
	if ch.audc&audcNotPoly5 == 0 && poly5bit[polyClock%uint64(len(poly5bit))] == 0 {
		return
	}

	switch {
	case ch.audc&audcPure == audcPure:
		ch.output = !ch.output
	case ch.audc&audcPoly4 == audcPoly4:
		ch.output = poly4bit[polyClock%uint64(len(poly4bit))] == 1
	case poly9:
		ch.output = poly9bit[polyClock%uint64(len(poly9bit))] == 1
	default:
		ch.output = poly17bit[polyClock%uint64(len(poly17bit))] == 1
	}
}

// volume returns the current contribution of the channel to the mix.
func (ch *channel) volume() uint8 {
	if ch.audc&audcVolumeOnly == audcVolumeOnly {
		return ch.audc & audcVolume
	}
	if ch.period == 0 || !ch.output {
		return 0
	}
	return ch.audc & audcVolume
}

// updatePeriods calculates the period of each channel from the AUDF and
// AUDCTL registers.
func (p *Pokey) updatePeriods() {
	base := base64Khz
	if p.audctl&audctl15Khz == audctl15Khz {
		base = base15Khz
	}

	ch := &p.channels

	if p.audctl&audctlCh1Fast == audctlCh1Fast {
		ch[0].period = int(ch[0].audf) + 4
	} else {
		ch[0].period = (int(ch[0].audf) + 1) * base
	}

	if p.audctl&audctlCh2ByCh1 == audctlCh2ByCh1 {
		v := int(ch[0].audf) | int(ch[1].audf)<<8
		if p.audctl&audctlCh1Fast == audctlCh1Fast {
			ch[1].period = v + 7
		} else {
			ch[1].period = (v + 1) * base
		}
		ch[0].period = 0
	} else {
		ch[1].period = (int(ch[1].audf) + 1) * base
	}

	if p.audctl&audctlCh3Fast == audctlCh3Fast {
		ch[2].period = int(ch[2].audf) + 4
	} else {
		ch[2].period = (int(ch[2].audf) + 1) * base
	}

	if p.audctl&audctlCh4ByCh3 == audctlCh4ByCh3 {
		v := int(ch[2].audf) | int(ch[3].audf)<<8
		if p.audctl&audctlCh3Fast == audctlCh3Fast {
			ch[3].period = v + 7
		} else {
			ch[3].period = (v + 1) * base
		}
		ch[2].period = 0
	} else {
		ch[3].period = (int(ch[3].audf) + 1) * base
	}
}
