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

// Package recorder handles the recording and playback of user input. A
// recording is a transcript of changes to the machine's input state. Each
// change is tagged with the frame on which it occurred and with a hash of the
// machine state at that moment.
//
// The Recorder type wraps another input.EventPlayback implementation, usually
// the source of live input, and records whatever input that source raises.
//
// During playback the hash of the machine state is compared with the hash in
// the transcript. A mismatch means the emulation has diverged from the
// recording and playback stops with an error.
package recorder
