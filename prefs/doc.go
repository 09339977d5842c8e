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

// Package prefs stores preference values on disk. Each value is one of the
// Bool, String or Int types. Values are added to a Disk instance with a key
// and are then saved or loaded together.
//
// More than one Disk instance can share a file. Values in the file that do
// not belong to the Disk instance are preserved when the file is saved.
//
// Preferences given on the command line take precedence over those on disk.
// They are pushed onto the command line stack with PushCommandLineStack()
// before the Disk instance is created and are consumed by Disk.Add().
package prefs
