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

// Package performance measures how fast the 7800 emulation runs.
//
// Check() runs a machine headlessly for a fixed duration, reports the
// achieved frame rate against the 60Hz or 50Hz rate of the machine and
// optionally writes CPU, memory and trace profiles with RunProfiler().
//
// The limiter sub-package paces the RUN mode frame loop to a target frame
// rate.
package performance
