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

// Package rewind keeps a history of savestates for a running emulation. A
// snapshot is taken every few frames and the oldest snapshots are forgotten
// when the history is full. The frequency and size of the history are
// preferences.
//
// Restoring a snapshot creates a new machine. Input playback attached to the
// old machine is transferred to the new one.
package rewind
