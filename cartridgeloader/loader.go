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

package cartridgeloader

import (
	"crypto/md5"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/jetsetilly/gopher7800/curated"
	"github.com/jetsetilly/gopher7800/hardware/memory/cartridge"
)

// Loader is used to specify the cartridge to insert into the 7800. It also
// permits the caller to specify the cart type of the cartridge, if
// necessary. For most cartridges the .a78 header or the size of the data is
// enough.
type Loader struct {
	// filename of cartridge to load.
	Filename string

	// empty string or "AUTO" indicates automatic selection of the cart type
	Mapping string

	// expected hash of the loaded cartridge. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data (including any header)
	Hash string

	// the MD5 of the data without the .a78 header. used to identify BIOS and
	// high score cart images
	MD5 string

	// copy of the loaded data. the .a78 header, if any, has been removed
	Data []byte

	// the .a78 header. nil if the data had no header
	Header *A78Header
}

// NewLoader is the preferred method of initialisation for the Loader type.
//
// The mapping argument will be used to set the Mapping field, unless the
// argument is either "AUTO" or the empty string. In which case the file
// extension is used to set the field.
//
// File extensions that are the name of a cart type (eg. ".A78SG") set the
// Mapping field to that type. All other extensions, including ".A78" and
// ".BIN", leave the Mapping field as "AUTO".
func NewLoader(filename string, mapping string) Loader {
	cl := Loader{
		Filename: filename,
		Mapping:  "AUTO",
	}

	mapping = strings.TrimSpace(strings.ToUpper(mapping))
	if mapping != "AUTO" && mapping != "" {
		cl.Mapping = mapping
		return cl
	}

	ext := strings.ToUpper(filepath.Ext(filename))
	if len(ext) > 1 {
		if cartridge.ParseCartType(ext[1:]) != cartridge.Unknown {
			cl.Mapping = ext[1:]
		}
	}

	return cl
}

// ShortName returns a shortened version of the Loader filename.
func (cl Loader) ShortName() string {
	shortCartName := filepath.Base(cl.Filename)
	shortCartName = strings.TrimSuffix(shortCartName, filepath.Ext(cl.Filename))
	return shortCartName
}

// HasLoaded returns true if Load() has been successfully called.
func (cl Loader) HasLoaded() bool {
	return len(cl.Data) > 0
}

// Load the cartridge data. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP and local
// files.
func (cl *Loader) Load() error {
	if len(cl.Data) > 0 {
		return nil
	}

	scheme := "file"

	url, err := url.Parse(cl.Filename)
	if err == nil {
		scheme = url.Scheme
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}
		defer resp.Body.Close()

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	case "file", "":
		data, err = os.ReadFile(cl.Filename)
		if err != nil {
			return curated.Errorf("cartridgeloader: %v", err)
		}

	default:
		// a single letter scheme is a windows drive letter
		if len(scheme) == 1 {
			data, err = os.ReadFile(cl.Filename)
			if err != nil {
				return curated.Errorf("cartridgeloader: %v", err)
			}
			break
		}
		return curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unsupported URL scheme (%s)", scheme))
	}

	return cl.setData(data)
}

// LoadBytes uses the data as though it had been loaded from the Filename.
func (cl *Loader) LoadBytes(data []byte) error {
	return cl.setData(data)
}

func (cl *Loader) setData(data []byte) error {
	if len(data) == 0 {
		return curated.Errorf("cartridgeloader: %v", "no data")
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if cl.Hash != "" && cl.Hash != hash {
		return curated.Errorf("cartridgeloader: %v", "unexpected hash value")
	}
	cl.Hash = hash

	if IsA78(data) {
		hdr := ParseA78Header(data)
		cl.Header = &hdr
		data = data[a78HeaderSize:]
	}

	cl.MD5 = fmt.Sprintf("%x", md5.Sum(data))
	cl.Data = data

	return nil
}

// CartType returns the cart type that will be used by Cart(). In order of
// preference: the Mapping field, the .a78 header, the size of the data.
func (cl Loader) CartType() (cartridge.CartType, error) {
	if cl.Mapping != "AUTO" && cl.Mapping != "" {
		t := cartridge.ParseCartType(cl.Mapping)
		if t == cartridge.Unknown {
			return t, curated.Errorf("cartridgeloader: %v", fmt.Sprintf("unrecognised cart type (%s)", cl.Mapping))
		}
		return t, nil
	}

	if cl.Header != nil {
		if t := cl.Header.CartType(); t != cartridge.Unknown {
			return t, nil
		}
	}

	return InferCartType(len(cl.Data)), nil
}

// Cart creates the cartridge from the loaded data.
func (cl Loader) Cart() (cartridge.Cart, error) {
	if !cl.HasLoaded() {
		return nil, curated.Errorf("cartridgeloader: %v", "cartridge has not been loaded")
	}

	t, err := cl.CartType()
	if err != nil {
		return nil, err
	}

	var f cartridge.Factory
	return f.Create(cl.Data, t)
}

// InferCartType returns the 7800 cart type for the size of the ROM. Returns
// cartridge.Unknown if the size is not one of the flat 7800 sizes.
func InferCartType(size int) cartridge.CartType {
	switch size {
	case 0x2000:
		return cartridge.A7808
	case 0x4000:
		return cartridge.A7816
	case 0x8000:
		return cartridge.A7832
	case 0xc000:
		return cartridge.A7848
	}
	return cartridge.Unknown
}
