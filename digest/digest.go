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

// Package digest is used to create hash values that summarise the output of
// the emulation. The hash values can be compared between runs of the
// emulation to check that nothing has changed.
//
// The Audio type creates a running hash of the sound buffer of every frame.
// The State() function creates a hash of the CPU and RAM of a machine at a
// single moment.
package digest

// Digest implementations compute a running hash of the emulation output.
type Digest interface {
	Hash() string
	ResetDigest()
}
