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

//go:build headless

package playback

import (
	"github.com/jetsetilly/gopher7800/curated"
)

// Player is not available in headless builds.
type Player struct{}

// NewPlayer always returns an error in headless builds.
func NewPlayer(_ int) (*Player, error) {
	return nil, curated.Errorf("playback: %v", "audio is not available in headless builds")
}

// AddFrame does nothing in headless builds.
func (pl *Player) AddFrame(_ []uint8) {}

// Queued returns zero in headless builds.
func (pl *Player) Queued() int {
	return 0
}

// Close does nothing in headless builds.
func (pl *Player) Close() error {
	return nil
}
