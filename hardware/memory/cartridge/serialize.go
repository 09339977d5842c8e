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

package cartridge

import (
	"fmt"

	"github.com/jetsetilly/gopher7800/hardware/audio/pokey"
	"github.com/jetsetilly/gopher7800/hardware/audio/ym2151"
	"github.com/jetsetilly/gopher7800/savestate"
)

// every cart writes the same header version before its own state.
const headerVersion = 1

func writeHeader(w *savestate.Writer, t CartType, version int32) {
	w.WriteString(t.String())
	w.WriteVersion(headerVersion)
	w.WriteVersion(version)
}

type deserializer func(r *savestate.Reader, t CartType) (Cart, error)

// deserializers is the closed table of cart types that can be restored from
// a savestate. keyed by the name written by writeHeader().
var deserializers map[string]deserializer

func init() {
	deserializers = make(map[string]deserializer)
	for _, t := range []CartType{A2K, A4K, A8K, A8KR, A16K, A16KR, A32K, A32KR, CBS12K, M32N12K} {
		deserializers[t.String()] = deserializeAtari
	}
	for _, t := range []CartType{A7808, A7816, A7832, A7832P, A7832PL, A7848} {
		deserializers[t.String()] = deserializeFlat
	}
	for _, t := range []CartType{A78SG, A78SGR, A78SGP, A78S9, A78S9PL, A78S4, A78S4R, A78AB, A78AC} {
		deserializers[t.String()] = deserializeSuperGame
	}
	for _, t := range []CartType{A78BB32K, A78BB32KP, A78BB32KRPL, A78BB48K, A78BB48KP,
		A78BB52K, A78BB128K, A78BB128KR, A78BB128KP, A78BB128KRPL} {
		deserializers[t.String()] = deserializeBankset
	}
	deserializers[TV8K.String()] = deserializeTigervision
	deserializers[PB8K.String()] = deserializeParkerBros
	deserializers[MN16K.String()] = deserializeMnetwork
	deserializers[DC8K.String()] = deserializeActivision
	deserializers[DPC.String()] = deserializeDPC
	deserializers[DPCPlus.String()] = deserializeDPCPlus
	deserializers[HSC7800.String()] = deserializeHSC
	deserializers[XM7800.String()] = deserializeXM
}

// Deserialize reads a cart from the savestate. The cart must be attached to
// the new machine and mapped into the new address space by the caller.
func Deserialize(r *savestate.Reader) (Cart, error) {
	name := r.ReadString()
	if err := r.Err(); err != nil {
		return nil, err
	}

	d, ok := deserializers[name]
	if !ok {
		return nil, r.Fail(fmt.Sprintf("unknown cart type: %q", name))
	}

	if _, err := r.CheckVersion(headerVersion); err != nil {
		return nil, err
	}

	return d(r, ParseCartType(name))
}

func writeOptionalPokey(w *savestate.Writer, p *pokey.Pokey) {
	w.WriteBool(p != nil)
	if p != nil {
		p.Serialize(w)
	}
}

func readOptionalPokey(r *savestate.Reader) (*pokey.Pokey, error) {
	if !r.ReadBool() {
		return nil, r.Err()
	}
	return pokey.Deserialize(r)
}

func writeOptionalYM2151(w *savestate.Writer, ym *ym2151.YM2151) {
	w.WriteBool(ym != nil)
	if ym != nil {
		ym.Serialize(w)
	}
}

func readOptionalYM2151(r *savestate.Reader) (*ym2151.YM2151, error) {
	if !r.ReadBool() {
		return nil, r.Err()
	}
	return ym2151.Deserialize(r)
}

// checkBanks makes sure that every bank number points into the ROM.
func checkBanks(r *savestate.Reader, banks []int, bankShift uint, romLen int) error {
	for _, b := range banks {
		if b < 0 || (b+1)<<bankShift > romLen {
			return r.Fail(fmt.Sprintf("bank %d out of range", b))
		}
	}
	return nil
}

func toInts(v []int32) []int {
	n := make([]int, len(v))
	for i := range v {
		n[i] = int(v[i])
	}
	return n
}

func toInt32s(v []int) []int32 {
	n := make([]int32, len(v))
	for i := range v {
		n[i] = int32(v[i])
	}
	return n
}
