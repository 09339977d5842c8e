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

// Package logger is the central logging facility for the emulator. Log entries
// are kept in memory, up to a maximum number, and can be written to an
// io.Writer on demand or echoed as they arrive.
//
// Every logging request carries a Permission. Components that may be running
// in a context where logging is not wanted (for example, a machine that has
// been created only to be deserialised into a rewind buffer) pass a Permission
// implementation that returns false from AllowLogging().
//
// Consecutive entries with the same tag and detail are collapsed into a
// single entry with a repeat count.
package logger
