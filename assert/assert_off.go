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

//go:build !assertions

package assert

// Enabled is true if the assertions build tag is present.
const Enabled = false

// Check does nothing without the assertions build tag.
func Check(_ bool, _ string, _ ...any) {
}
