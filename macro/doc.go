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

// Package macro implements an input system that is driven by a Lua script.
//
// The script is run once when the macro is created. If the script defines a
// global function called frame() then that function is called before the
// input state of every frame is captured. The function receives the number
// of the frame about to be computed.
//
//	function frame(n)
//		if n == 60 then
//			switch("reset", true)
//		elseif n == 62 then
//			switch("reset", false)
//		elseif n > 120 and n % 30 == 0 then
//			joystick(0, "left", true)
//		end
//		if n == 1000 then
//			halt()
//		end
//	end
//
// The following functions are available to the script:
//
//	joystick(player, direction, fire)
//		direction is one of "centre", "up", "down", "left", "right",
//		"upleft", "upright", "downleft", "downright".
//
//	trigger(player, pressed)
//		the second fire button of the ProLine joystick.
//
//	switch(name, pressed)
//		name is one of "reset", "select", "pause", "color",
//		"leftdifficulty", "rightdifficulty". the color and difficulty
//		switches toggle when pressed is true.
//
//	paddle(player, ohms)
//
//	log(message)
//
//	halt()
//		stops the macro. Halted() returns true afterwards.
//
// Any error in the script results in a log entry and the end of the macro.
package macro
