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

package main

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher7800/cartridgeloader"
	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/environment"
	"github.com/jetsetilly/gopher7800/hardware"
	"github.com/jetsetilly/gopher7800/hardware/input"
	"github.com/jetsetilly/gopher7800/hardware/memory/cartridge"
	"github.com/jetsetilly/gopher7800/hardware/memory/device"
	"github.com/jetsetilly/gopher7800/logger"
	"github.com/jetsetilly/gopher7800/modalflag"
)

const auto = "AUTO"

// machineFlags are the flags common to every mode that creates a machine.
type machineFlags struct {
	mapping *string
	machine *string
	left    *string
	right   *string
	bios    *string
	hsc     *string
	xm      *string
}

func addMachineFlags(md *modalflag.Modes) machineFlags {
	machines := []string{auto}
	for _, mt := range hardware.MachineTypes() {
		if mt.Is7800() {
			machines = append(machines, mt.String())
		}
	}

	controllers := []string{auto}
	for _, c := range []input.Controller{input.ControllerNone, input.Joystick, input.ProLineJoystick, input.Paddles, input.Lightgun} {
		controllers = append(controllers, c.String())
	}

	return machineFlags{
		mapping: md.AddString("mapping", auto, "force use of cartridge mapping"),
		machine: md.AddChoice("machine", auto, machines, "machine type"),
		left:    md.AddChoice("left", auto, controllers, "controller in the left jack"),
		right:   md.AddChoice("right", auto, controllers, "controller in the right jack"),
		bios:    md.AddString("bios", "", "BIOS file. selects a bios machine type when -machine=AUTO"),
		hsc:     md.AddString("hsc", "", "high score cart ROM. selects an hsc machine type when -machine=AUTO"),
		xm:      md.AddString("xm", "", "expansion module ROM. use with an xm machine type"),
	}
}

// loadBinary loads a support file such as the BIOS. A warning is logged if
// the file is not the expected binary.
func loadBinary(filename string, expected ...cartridgeloader.SpecialBinary) ([]uint8, error) {
	cl := cartridgeloader.NewLoader(filename, "")
	if err := cl.Load(); err != nil {
		return nil, err
	}
	sp := cl.Special()
	for _, e := range expected {
		if sp == e {
			return cl.Data, nil
		}
	}
	logger.Logf(logger.Allow, "gopher7800", "%s is not a recognised %s", cl.ShortName(), expected[0])
	return cl.Data, nil
}

// machineType decides the machine type from the flags, the cartridge header
// and the preferences.
func (mf machineFlags) machineType(env *environment.Environment, cl cartridgeloader.Loader) (hardware.MachineType, error) {
	if *mf.machine != auto {
		mt := hardware.ParseMachineType(*mf.machine)
		if mt == hardware.Unknown {
			return mt, curated.Errorf("unknown machine type: %s", *mf.machine)
		}
		return mt, nil
	}

	pal := strings.EqualFold(env.Prefs.DefaultSpec.Get().(string), "PAL")
	if cl.Header != nil {
		pal = cl.Header.PAL
	}

	hsc := *mf.hsc != "" || env.Prefs.HSC.Get().(bool)

	switch {
	case *mf.bios != "":
		if pal {
			return hardware.A7800PALbios, nil
		}
		return hardware.A7800NTSCbios, nil
	case hsc:
		if pal {
			return hardware.A7800PALhsc, nil
		}
		return hardware.A7800NTSChsc, nil
	case *mf.xm != "":
		if pal {
			return hardware.A7800PALxm, nil
		}
		return hardware.A7800NTSCxm, nil
	case pal:
		return hardware.A7800PAL, nil
	}
	return hardware.A7800NTSC, nil
}

func controller(s string, hdr input.Controller) input.Controller {
	if s == auto {
		return hdr
	}
	return input.ParseController(s)
}

// create loads the cartridge and creates the machine described by the flags.
func (mf machineFlags) create(env *environment.Environment, filename string) (*hardware.Machine7800, cartridgeloader.Loader, error) {
	cl := cartridgeloader.NewLoader(filename, *mf.mapping)
	if err := cl.Load(); err != nil {
		return nil, cl, err
	}

	if sp := cl.Special(); sp != cartridgeloader.NotSpecial {
		return nil, cl, curated.Errorf("%s is a %s and not a cartridge", cl.ShortName(), sp)
	}

	cart, err := cl.Cart()
	if err != nil {
		return nil, cl, err
	}

	mt, err := mf.machineType(env, cl)
	if err != nil {
		return nil, cl, err
	}

	var bios *device.Bios7800
	if mt.IsBIOS() {
		if *mf.bios == "" {
			return nil, cl, curated.Errorf("%s requires a BIOS file", mt)
		}
		data, err := loadBinary(*mf.bios, cartridgeloader.BIOSNTSC, cartridgeloader.BIOSNTSCAlternate, cartridgeloader.BIOSPAL)
		if err != nil {
			return nil, cl, err
		}
		bios, err = device.NewBios7800(data)
		if err != nil {
			return nil, cl, err
		}
	}

	switch {
	case mt.IsHSC():
		hscFile := *mf.hsc
		if hscFile == "" {
			hscFile = env.Prefs.HSCFile.Get().(string)
		}
		if hscFile == "" {
			return nil, cl, curated.Errorf("%s requires a high score cart ROM", mt)
		}
		data, err := loadBinary(hscFile, cartridgeloader.HSC)
		if err != nil {
			return nil, cl, err
		}
		cart, err = cartridge.NewHSC7800(data, cart)
		if err != nil {
			return nil, cl, err
		}
	case mt.IsXM():
		var data []uint8
		if *mf.xm != "" {
			data, err = loadBinary(*mf.xm, cartridgeloader.NotSpecial)
			if err != nil {
				return nil, cl, err
			}
		}
		cart, err = cartridge.NewXM7800(data, cart)
		if err != nil {
			return nil, cl, err
		}
	}

	left, right := input.ProLineJoystick, input.ProLineJoystick
	if cl.Header != nil {
		left, right = cl.Header.LeftController, cl.Header.RightController
	}

	m, err := hardware.Create(env, mt, cart, bios, controller(*mf.left, left), controller(*mf.right, right))
	if err != nil {
		return nil, cl, err
	}

	return m, cl, nil
}

func describeLoader(cl cartridgeloader.Loader) string {
	var s strings.Builder
	fmt.Fprintf(&s, "file: %s\n", cl.Filename)
	fmt.Fprintf(&s, "sha1: %s\n", cl.Hash)
	fmt.Fprintf(&s, "md5:  %s\n", cl.MD5)
	fmt.Fprintf(&s, "size: %d bytes\n", len(cl.Data))
	if cl.Header != nil {
		fmt.Fprintf(&s, "a78:  %s\n", cl.Header)
	}
	if sp := cl.Special(); sp != cartridgeloader.NotSpecial {
		fmt.Fprintf(&s, "special: %s\n", sp)
		return s.String()
	}
	if t, err := cl.CartType(); err != nil {
		fmt.Fprintf(&s, "mapping: %v\n", err)
	} else {
		fmt.Fprintf(&s, "mapping: %s\n", t)
	}
	return s.String()
}
