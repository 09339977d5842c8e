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

package hardware

import (
	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/environment"
	"github.com/jetsetilly/gopher7800/hardware/input"
	"github.com/jetsetilly/gopher7800/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher7800/hardware/memory/device"
)

// Create returns a new machine of the requested type with the cartridge
// inserted and the controllers plugged in. The machine is Reset() and ready
// to compute the first frame.
//
// The BIOS is required for the bios machine types and ignored otherwise. The
// hsc and xm machine types expect the cartridge to already be wrapped by
// cartridge.NewHSC7800() or cartridge.NewXM7800().
//
// 2600 machine types are recognised but not supported and result in a
// ConstructionError.
func Create(env *environment.Environment, mt MachineType, cart cartridge.Cart, bios *device.Bios7800, left, right input.Controller) (*Machine7800, error) {
	if cart == nil {
		return nil, curated.Errorf(ConstructionError, "no cartridge")
	}

	if mt.Is2600() {
		return nil, curated.Errorf(ConstructionError, "2600 machines are not supported")
	}
	if !mt.Is7800() {
		return nil, curated.Errorf(ConstructionError, "unknown machine type: "+mt.String())
	}

	if mt.IsBIOS() {
		if bios == nil {
			return nil, curated.Errorf(ConstructionError, "machine type requires a BIOS: "+mt.String())
		}
	} else {
		bios = nil
	}

	switch {
	case mt.IsHSC():
		if cart.Type() != cartridge.HSC7800 {
			return nil, curated.Errorf(ConstructionError, "machine type requires a high score cart: "+mt.String())
		}
	case mt.IsXM():
		if cart.Type() != cartridge.XM7800 {
			return nil, curated.Errorf(ConstructionError, "machine type requires an expansion module: "+mt.String())
		}
	}

	var m *Machine7800
	var err error

	if mt.IsPAL() {
		m, err = NewMachine7800PAL(env, cart, bios)
	} else {
		m, err = NewMachine7800NTSC(env, cart, bios)
	}
	if err != nil {
		return nil, err
	}

	m.Input.SetLeftControllerJack(left)
	m.Input.SetRightControllerJack(right)
	m.Reset()

	return m, nil
}
