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

// Package playback sends the sound produced by the emulation to the audio
// device. Samples are buffered in a ring (see the ring package) which is
// read by the audio device as required.
//
// The package uses github.com/ebitengine/oto/v3. Building with the headless
// tag removes the dependency on the audio device. NewPlayer() then always
// returns an error.
package playback
