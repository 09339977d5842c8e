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

package macro

import (
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/hardware/input"
	"github.com/jetsetilly/gopher7800/logger"
	lua "github.com/yuin/gopher-lua"
)

// Halted is returned by Playback() when the script has called halt().
const Halted = "macro: halted"

// Macro runs a Lua script that raises input every frame. It implements the
// input.EventPlayback interface.
type Macro struct {
	name  string
	state *lua.LState
	frame lua.LValue

	// the input state being driven. only valid during Playback()
	inp *input.InputState

	// the number of the frame about to be computed
	frameNum int64

	halted atomic.Bool
}

// NewMacro creates a macro from the Lua source. The name is used in log
// messages.
func NewMacro(name string, source string) (*Macro, error) {
	mcr := &Macro{
		name:  name,
		state: lua.NewState(),
	}

	mcr.register()

	if err := mcr.state.DoString(source); err != nil {
		mcr.state.Close()
		return nil, curated.Errorf("macro: %v", err)
	}

	mcr.frame = mcr.state.GetGlobal("frame")
	if mcr.frame.Type() != lua.LTFunction {
		mcr.frame = nil
	}

	return mcr, nil
}

// NewMacroFromFile creates a macro from the Lua source in the file.
func NewMacroFromFile(filename string) (*Macro, error) {
	source, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf("macro: %v", err)
	}
	return NewMacro(filepath.Base(filename), string(source))
}

func (mcr *Macro) String() string {
	return mcr.name
}

func (mcr *Macro) register() {
	for name, fn := range map[string]lua.LGFunction{
		"joystick": mcr.luaJoystick,
		"trigger":  mcr.luaTrigger,
		"switch":   mcr.luaSwitch,
		"paddle":   mcr.luaPaddle,
		"log":      mcr.luaLog,
		"halt":     mcr.luaHalt,
	} {
		mcr.state.SetGlobal(name, mcr.state.NewFunction(fn))
	}
}

// Close the Lua state. The macro should not be used again.
func (mcr *Macro) Close() {
	mcr.state.Close()
}

// Halted returns true if the script has called halt() or if the script has
// failed.
func (mcr *Macro) Halted() bool {
	return mcr.halted.Load()
}

// Playback implements the input.EventPlayback interface.
func (mcr *Macro) Playback(inp *input.InputState) error {
	if mcr.halted.Load() {
		return curated.Errorf(Halted)
	}

	mcr.frameNum++

	if mcr.frame == nil {
		return nil
	}

	mcr.inp = inp
	defer func() {
		mcr.inp = nil
	}()

	err := mcr.state.CallByParam(lua.P{
		Fn:      mcr.frame,
		NRet:    0,
		Protect: true,
	}, lua.LNumber(mcr.frameNum))
	if err != nil {
		mcr.halted.Store(true)
		logger.Logf(logger.Allow, "macro", "%s: %v", mcr.name, err)
		return curated.Errorf("macro: %v", err)
	}

	if mcr.halted.Load() {
		return curated.Errorf(Halted)
	}

	return nil
}

// the directions understood by joystick()
var directions = map[string][]input.MachineInput{
	"centre":    {},
	"center":    {},
	"up":        {input.InputUp},
	"down":      {input.InputDown},
	"left":      {input.InputLeft},
	"right":     {input.InputRight},
	"upleft":    {input.InputUp, input.InputLeft},
	"upright":   {input.InputUp, input.InputRight},
	"downleft":  {input.InputDown, input.InputLeft},
	"downright": {input.InputDown, input.InputRight},
}

var joystickInputs = []input.MachineInput{input.InputUp, input.InputDown, input.InputLeft, input.InputRight}

// input functions can only be called from the frame() function
func (mcr *Macro) checkInput(L *lua.LState) {
	if mcr.inp == nil {
		L.RaiseError("input can only be raised from the frame() function")
	}
}

func (mcr *Macro) player(L *lua.LState) int {
	mcr.checkInput(L)
	p := L.CheckInt(1)
	if p < 0 || p > 1 {
		L.ArgError(1, "player must be 0 or 1")
	}
	return p
}

func (mcr *Macro) luaJoystick(L *lua.LState) int {
	player := mcr.player(L)
	dir, ok := directions[strings.ToLower(L.CheckString(2))]
	if !ok {
		L.ArgError(2, "unrecognised direction")
	}
	fire := L.OptBool(3, false)

	for _, mi := range joystickInputs {
		mcr.inp.RaiseInput(player, mi, false)
	}
	for _, mi := range dir {
		mcr.inp.RaiseInput(player, mi, true)
	}
	mcr.inp.RaiseInput(player, input.Fire, fire)

	return 0
}

func (mcr *Macro) luaTrigger(L *lua.LState) int {
	player := mcr.player(L)
	mcr.inp.RaiseInput(player, input.Fire2, L.CheckBool(2))
	return 0
}

// the console switches understood by switch()
var switches = map[string]bool{
	"reset": true, "select": true, "pause": true, "color": true, "colour": true,
	"leftdifficulty": true, "rightdifficulty": true,
}

func (mcr *Macro) luaSwitch(L *lua.LState) int {
	mcr.checkInput(L)
	name := strings.ToLower(L.CheckString(1))
	if !switches[name] {
		L.ArgError(1, "unrecognised switch")
	}
	mcr.inp.RaiseInput(0, input.ParseMachineInput(name), L.CheckBool(2))
	return 0
}

func (mcr *Macro) luaPaddle(L *lua.LState) int {
	mcr.checkInput(L)
	player := L.CheckInt(1)
	if player < 0 || player > 3 {
		L.ArgError(1, "paddle must be between 0 and 3")
	}
	mcr.inp.RaisePaddleInput(player, L.CheckInt(2))
	return 0
}

func (mcr *Macro) luaLog(L *lua.LState) int {
	logger.Logf(logger.Allow, "macro", "%s: frame %d: %s", mcr.name, mcr.frameNum, L.CheckString(1))
	return 0
}

func (mcr *Macro) luaHalt(_ *lua.LState) int {
	mcr.halted.Store(true)
	logger.Logf(logger.Allow, "macro", "%s: halted at frame %d", mcr.name, mcr.frameNum)
	return 0
}
