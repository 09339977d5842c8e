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

package prefs

import (
	"slices"
	"strings"
	"sync"
)

// cmdlineGroup is the set of preferences given in a single call to
// PushCommandLineStack().
type cmdlineGroup map[string]string

// the command line stack. preferences given on the command line override the
// preferences on disk for the lifetime of the group
var cmdline struct {
	crit  sync.Mutex
	stack []cmdlineGroup
}

// SizeCommandLineStack returns the number of groups on the stack.
func SizeCommandLineStack() int {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()
	return len(cmdline.stack)
}

// PushCommandLineStack parses a preferences string and adds it to the stack as
// a new group. The string is a list of key::value pairs separated by
// semicolons. Malformed pairs are ignored.
//
//	hardware.randstate::true; rewind.maxEntries::50
func PushCommandLineStack(prefs string) {
	grp := make(cmdlineGroup)
	for _, kv := range strings.Split(prefs, ";") {
		k, v, ok := strings.Cut(kv, "::")
		if !ok || strings.Contains(v, "::") {
			continue
		}
		grp[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()
	cmdline.stack = append(cmdline.stack, grp)
}

// PopCommandLineStack removes the most recent group from the stack. The
// preferences in the group that were never used are returned in the same
// format as accepted by PushCommandLineStack(), sorted by key.
func PopCommandLineStack() string {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()

	if len(cmdline.stack) == 0 {
		return ""
	}
	grp := cmdline.stack[len(cmdline.stack)-1]
	cmdline.stack = cmdline.stack[:len(cmdline.stack)-1]

	keys := make([]string, 0, len(grp))
	for k := range grp {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	unused := make([]string, len(keys))
	for i, k := range keys {
		unused[i] = k + "::" + grp[k]
	}
	return strings.Join(unused, "; ")
}

// GetCommandLinePref returns the value for the key from the most recent group.
// The value is removed from the group.
func GetCommandLinePref(key string) (bool, Value) {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()

	if len(cmdline.stack) == 0 {
		return false, nil
	}
	grp := cmdline.stack[len(cmdline.stack)-1]
	v, ok := grp[key]
	if !ok {
		return false, nil
	}
	delete(grp, key)
	return true, v
}
