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

// Package cartridge implements the cartridge formats of the 7800 and of the
// 2600 carts that the 7800 can play. The main difference between the formats
// is how they map ROM into the address space given to the cart. This is
// called bank-switching. Some formats also contain RAM or a sound chip.
//
// Carts are created with a Factory. The cart type names below are the names
// accepted by ParseCartType() and the names written to a savestate.
//
//	A2K, A4K          unbanked 2600 carts
//	A8K, A16K, A32K   2600 F8, F6 and F4 (R variants have a 128 byte Super Chip)
//	CBS12K            2600 FA, three banks and 256 bytes of RAM
//	TV8K              2600 3F, Tigervision
//	PB8K              2600 E0, Parker Brothers
//	MN16K             2600 E7, M-Network
//	DC8K              2600 FE, Activision
//	DPC               2600 Pitfall II
//	DPCPlus           2600 DPC+ without the ARM
//	M32N12K           2600 multicart. each cart created uses the next 2K slot
//	A7808 to A7848    unbanked 7800 carts
//	A78SG, A78S9...   7800 SuperGame carts
//	A78AB, A78AC      7800 Absolute and Activision carts
//	A78BB...          7800 bankset carts
//	HSC7800, XM7800   the High Score Cartridge and the eXpansion Module, which
//	                  wrap another cart
//
// All carts implement the Cart interface. Once created a cart must be
// attached to the machine with Attach() and mapped into the address space
// with AddressSpace.MapCart().
//
// Carts write their own state to a savestate with Serialize() and are read
// back with the package level Deserialize() function.
package cartridge
