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

//go:build !windows

package easyterm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher7800/easyterm"
	"github.com/jetsetilly/gopher7800/test"
)

func TestInitialise(t *testing.T) {
	var pt easyterm.Terminal

	test.ExpectFailure(t, pt.Initialise(nil, os.Stdout))
	test.ExpectFailure(t, pt.Initialise(os.Stdin, nil))

	// a plain file has no terminal attributes
	f, err := os.Create(filepath.Join(t.TempDir(), "notaterminal"))
	test.DemandSuccess(t, err)
	defer f.Close()
	test.ExpectFailure(t, pt.Initialise(f, f))
}
