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

package logger

// Permission decides whether a log request is recorded. A machine's
// environment is a Permission so that only the main emulation logs, and
// machines restored for rewind stay quiet.
type Permission interface {
	AllowLogging() bool
}

type permission bool

func (p permission) AllowLogging() bool {
	return bool(p)
}

// Allow and Deny are fixed permissions for callers without an environment.
const (
	Allow permission = true
	Deny  permission = false
)
