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

package device

import (
	"os"
	"path/filepath"

	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/logger"
	"github.com/jetsetilly/gopher7800/savestate"
)

const (
	nvramSize = 0x0800
	nvramMask = nvramSize - 1
)

// NVRAMDir is the directory in which NVRAM files are kept. It can be changed
// before any NVRAM2k is created.
var NVRAMDir = filepath.Join(".gopher7800", "nvram")

// NVRAM2k is 2KB of battery backed RAM. The contents are loaded from a file
// when the device is created and written back to the file when Flush() is
// called, or when the device is serialised.
//
// An NVRAM2k with an empty filename is never loaded or saved.
type NVRAM2k struct {
	nvram    []uint8
	filename string
}

// NewNVRAM2k is the preferred method of initialisation for the NVRAM2k type.
func NewNVRAM2k(filename string) *NVRAM2k {
	nv := &NVRAM2k{
		nvram:    make([]uint8, nvramSize),
		filename: filename,
	}
	nv.load()
	return nv
}

func (nv *NVRAM2k) String() string {
	return "nvram"
}

// Reset implements the Device interface.
func (nv *NVRAM2k) Reset() {}

// Read implements the Device interface.
func (nv *NVRAM2k) Read(addr uint16) uint8 {
	return nv.nvram[addr&nvramMask]
}

// Write implements the Device interface.
func (nv *NVRAM2k) Write(addr uint16, data uint8) {
	nv.nvram[addr&nvramMask] = data
}

func (nv *NVRAM2k) path() string {
	return filepath.Join(NVRAMDir, nv.filename)
}

// missing or short files are not an error. the NVRAM is simply left clear.
func (nv *NVRAM2k) load() {
	if nv.filename == "" {
		return
	}
	d, err := os.ReadFile(nv.path())
	if err != nil {
		return
	}
	copy(nv.nvram, d)
	logger.Logf(logger.Allow, "nvram", "loaded %s", nv.path())
}

// Flush writes the contents of the NVRAM to its backing file.
func (nv *NVRAM2k) Flush() error {
	if nv.filename == "" {
		return nil
	}
	if err := os.MkdirAll(NVRAMDir, 0o700); err != nil {
		return curated.Errorf("nvram: %v", err)
	}
	if err := os.WriteFile(nv.path(), nv.nvram, 0o600); err != nil {
		return curated.Errorf("nvram: %v", err)
	}
	return nil
}

// Serialize implements the savestate.Serializer interface. Only the filename
// is written to the savestate. The contents are flushed to the backing file.
func (nv *NVRAM2k) Serialize(w *savestate.Writer) {
	w.WriteVersion(1)
	w.WriteString(nv.filename)
	if err := nv.Flush(); err != nil {
		logger.Log(logger.Allow, "nvram", err.Error())
	}
}

// DeserializeNVRAM2k reads an NVRAM2k from the savestate. The contents are
// reloaded from the backing file.
func DeserializeNVRAM2k(r *savestate.Reader) (*NVRAM2k, error) {
	if _, err := r.CheckVersion(1); err != nil {
		return nil, err
	}
	filename := r.ReadString()
	if err := r.Err(); err != nil {
		return nil, err
	}
	return NewNVRAM2k(filename), nil
}
