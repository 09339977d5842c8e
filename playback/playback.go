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

//go:build !headless

package playback

import (
	"sync"

	"github.com/ebitengine/oto/v3"
	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/logger"
	"github.com/jetsetilly/gopher7800/playback/ring"
)

// Player sends frames of sound to the audio device.
type Player struct {
	ctx    *oto.Context
	player *oto.Player
	ring   *ring.Ring

	crit    sync.Mutex
	started bool
}

// NewPlayer is the preferred method of initialisation for the Player type.
// There can only be one Player in a process.
func NewPlayer(sampleRate int) (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatUnsignedInt8,
	}

	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, curated.Errorf("playback: %v", err)
	}
	<-ready

	pl := &Player{
		ctx:  ctx,
		ring: ring.NewRing(sampleRate / 2),
	}
	pl.player = ctx.NewPlayer(pl.ring)

	logger.Logf(logger.Allow, "playback", "audio device opened at %d Hz", sampleRate)

	return pl, nil
}

// AddFrame queues the sound buffer of a frame for playback. Playback starts
// with the first frame.
func (pl *Player) AddFrame(samples []uint8) {
	pl.ring.Push(samples)

	pl.crit.Lock()
	defer pl.crit.Unlock()
	if !pl.started {
		pl.player.Play()
		pl.started = true
	}
}

// Queued returns the number of samples waiting to be played.
func (pl *Player) Queued() int {
	return pl.ring.Len()
}

// Close the player. The Player should not be used again.
func (pl *Player) Close() error {
	pl.crit.Lock()
	defer pl.crit.Unlock()

	under, over := pl.ring.Stats()
	logger.Logf(logger.Allow, "playback", "closed: %d underruns, %d overruns", under, over)

	if err := pl.player.Close(); err != nil {
		return curated.Errorf("playback: %v", err)
	}
	pl.started = false
	return nil
}
