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

package cartridgeloader

// SpecialBinary identifies ROM images that are not game cartridges.
type SpecialBinary int

// List of valid SpecialBinary values.
const (
	NotSpecial SpecialBinary = iota
	BIOSNTSC
	BIOSNTSCAlternate
	BIOSPAL
	HSC
)

var specialBinaries = map[string]SpecialBinary{
	"0763f1ffb006ddbe32e52d497ee848ae": BIOSNTSC,
	"b32526ea179dc9ab9b2e5f8a2662b298": BIOSNTSCAlternate,
	"397bb566584be7b9764e7a68974c4263": BIOSPAL,
	"c8a73288ab97226c52602204ab894286": HSC,
}

func (sb SpecialBinary) String() string {
	switch sb {
	case BIOSNTSC:
		return "7800 BIOS (NTSC)"
	case BIOSNTSCAlternate:
		return "7800 BIOS (NTSC alternate)"
	case BIOSPAL:
		return "7800 BIOS (PAL)"
	case HSC:
		return "7800 high score cart"
	}
	return "none"
}

// Special returns the type of special binary the loaded data is. Returns
// NotSpecial if the data has not been loaded.
func (cl Loader) Special() SpecialBinary {
	return specialBinaries[cl.MD5]
}
