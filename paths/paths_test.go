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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher7800/paths"
	"github.com/jetsetilly/gopher7800/test"
)

func TestPaths(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer func() {
		_ = os.Chdir(wd)
	}()

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher7800", "foo", "bar", "baz"))

	// the sub-path has been created
	info, err := os.Stat(filepath.Join(".gopher7800", "foo", "bar"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher7800", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher7800")
}

func TestUniqueFilename(t *testing.T) {
	fn := paths.UniqueFilename("state", "Ms. Pac-Man", "bin")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "state_Ms._Pac-Man_"))
	test.ExpectSuccess(t, strings.HasSuffix(fn, ".bin"))

	fn = paths.UniqueFilename("state", "", "")
	test.ExpectSuccess(t, strings.HasPrefix(fn, "state_2"))
	test.ExpectFailure(t, strings.Contains(fn, "."))
}
