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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/gopher7800/easyterm"
	"github.com/jetsetilly/gopher7800/hardware/input"
	"github.com/jetsetilly/gopher7800/test"
	"github.com/jetsetilly/gopher7800/userinput"
)

func TestHold(t *testing.T) {
	inp := input.NewInputState()
	kb := userinput.NewKeyboard()
	inp.AttachPlayback(kb)

	test.ExpectSuccess(t, kb.KeyPress(easyterm.KeyLeft))
	test.ExpectSuccess(t, kb.KeyPress('F'))
	test.ExpectSuccess(t, !kb.KeyPress('?'))

	inp.CaptureInputState()
	test.ExpectSuccess(t, inp.SampleCapturedControllerActionState(0, input.Left))
	test.ExpectSuccess(t, inp.SampleCapturedControllerActionState(1, input.Trigger))
	test.ExpectSuccess(t, kb.Held(0, input.InputLeft))

	for i := 1; i < userinput.HoldFrames; i++ {
		inp.CaptureInputState()
	}
	test.ExpectSuccess(t, !inp.SampleCapturedControllerActionState(0, input.Left))
	test.ExpectSuccess(t, !kb.Held(0, input.InputLeft))
}

func TestRepeat(t *testing.T) {
	inp := input.NewInputState()
	kb := userinput.NewKeyboard()
	inp.AttachPlayback(kb)

	kb.KeyPress(' ')
	for i := 0; i < userinput.HoldFrames-2; i++ {
		inp.CaptureInputState()
	}

	// a repeated key renews the hold
	kb.KeyPress(' ')
	for i := 0; i < userinput.HoldFrames-2; i++ {
		inp.CaptureInputState()
	}
	test.ExpectSuccess(t, inp.SampleCapturedControllerActionState(0, input.Trigger))
}

func TestToggle(t *testing.T) {
	inp := input.NewInputState()
	kb := userinput.NewKeyboard()
	inp.AttachPlayback(kb)

	before := inp.IsConsoleSwitchSet(input.LeftDifficultyA)
	kb.KeyPress('4')
	inp.CaptureInputState()
	test.ExpectEquality(t, inp.SampleCapturedConsoleSwitchState(input.LeftDifficultyA), !before)

	// toggles are not held
	test.ExpectSuccess(t, !kb.Held(0, input.LeftDifficulty))
	kb.KeyPress('4')
	inp.CaptureInputState()
	test.ExpectEquality(t, inp.SampleCapturedConsoleSwitchState(input.LeftDifficultyA), before)
}
