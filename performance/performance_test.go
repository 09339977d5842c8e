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

package performance_test

import (
	"testing"

	"github.com/jetsetilly/gopher7800/performance"
	"github.com/jetsetilly/gopher7800/test"
)

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(60, 300, 5)
	test.ExpectApproximate(t, fps, 60.0, 0.001)
	test.ExpectApproximate(t, accuracy, 100.0, 0.001)

	fps, accuracy = performance.CalcFPS(50, 500, 5)
	test.ExpectApproximate(t, fps, 100.0, 0.001)
	test.ExpectApproximate(t, accuracy, 200.0, 0.001)

	fps, _ = performance.CalcFPS(60, 300, 0)
	test.ExpectEquality(t, fps, 0.0)
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("cpu,MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfile("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	p, err = performance.ParseProfile("all")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileAll)

	_, err = performance.ParseProfile("cpu,heap")
	test.ExpectFailure(t, err)
}

func TestRunProfiler(t *testing.T) {
	var ran bool
	err := performance.RunProfiler(performance.ProfileNone, "test", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)
}
