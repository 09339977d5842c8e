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

// Package cartridgeloader is used to specify the data that is to be inserted
// into the emulated 7800.
//
// When the cartridge is ready to be loaded into the emulator, the Load()
// function should be used. The Load() function handles loading of data from
// different sources. Currently only local files and data over HTTP are
// supported.
//
// Data with an .a78 header has the header removed and parsed. The header is
// used to decide the cart type when the Mapping field is "AUTO". If there is
// no header the cart type is decided by the size of the data.
//
//	cl := cartridgeloader.NewLoader("roms/Asteroids.a78", "AUTO")
//	err := cl.Load()
//	...
//	cart, err := cl.Cart()
//
// BIOS and high score cart images are recognised by their MD5 with the
// Special() function.
package cartridgeloader
