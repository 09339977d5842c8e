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

// Package input holds the state of the console switches and of the
// controllers plugged into the two controller jacks.
//
// The state is double buffered. Input is raised into the "next" buffer at
// any time between frames. At the start of every frame the machine calls
// CaptureInputState(), which copies the next buffer to the captured buffer.
// The emulated hardware only ever samples the captured buffer, so input is
// constant for the duration of a frame.
//
// Input can arrive in three ways:
//
// 1) Directly, by calling RaiseInput() and the related functions between
// frames.
// 2) Pushed from another goroutine with PushEvent(). Pushed events are
// processed at the next capture.
// 3) From an EventPlayback implementation, which is consulted at every capture.
package input
