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

package prefs

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

// Value represents the actual Go preference value.
type Value interface{}

// types supported by the prefs system must implement the pref interface.
type pref interface {
	fmt.Stringer
	Set(value Value) error
	Get() Value
	Reset() error
}

// hooked is the storage and callback handling common to all prefs types.
type hooked[T bool | string | int] struct {
	value    atomic.Value
	hookPre  func(value Value) error
	hookPost func(value Value) error
}

func (p *hooked[T]) load() T {
	if v := p.value.Load(); v != nil {
		return v.(T)
	}
	var zero T
	return zero
}

func (p *hooked[T]) store(nv T) error {
	if p.hookPre != nil {
		if err := p.hookPre(nv); err != nil {
			return err
		}
	}
	p.value.Store(nv)
	if p.hookPost != nil {
		if err := p.hookPost(nv); err != nil {
			return err
		}
	}
	return nil
}

// SetHookPre sets the function called just before the value is updated. The
// function is called even if the value is unchanged. An error from the
// function prevents the update.
func (p *hooked[T]) SetHookPre(f func(value Value) error) {
	p.hookPre = f
}

// SetHookPost sets the function called just after the value is updated. The
// function is called even if the value is unchanged.
func (p *hooked[T]) SetHookPost(f func(value Value) error) {
	p.hookPost = f
}

// Bool implements a boolean type in the prefs system.
type Bool struct {
	hooked[bool]
}

func (p *Bool) String() string {
	return strconv.FormatBool(p.load())
}

// Set accepts a bool or a string. Any string other than "true" (case
// insensitive) is false.
func (p *Bool) Set(v Value) error {
	switch v := v.(type) {
	case bool:
		return p.store(v)
	case string:
		return p.store(strings.EqualFold(v, "true"))
	}
	return fmt.Errorf("set: cannot convert %T to prefs.Bool", v)
}

// Get returns the raw pref value.
func (p *Bool) Get() Value {
	return p.load()
}

// Reset sets the value to false.
func (p *Bool) Reset() error {
	return p.Set(false)
}

// String implements a string type in the prefs system. The length of the
// string can be limited with SetMaxLen().
type String struct {
	hooked[string]
	maxLen int
}

func (p *String) String() string {
	return p.load()
}

// SetMaxLen limits the length of the string. A value of zero or less means no
// limit. An existing value longer than the limit is cropped.
func (p *String) SetMaxLen(max int) {
	p.maxLen = max
	if s := p.load(); p.maxLen > 0 && len(s) > p.maxLen {
		p.value.Store(s[:p.maxLen])
	}
}

// Set accepts any value. The value is formatted with the %v verb.
func (p *String) Set(v Value) error {
	nv := fmt.Sprintf("%v", v)
	if p.maxLen > 0 && len(nv) > p.maxLen {
		nv = nv[:p.maxLen]
	}
	return p.store(nv)
}

// Get returns the raw pref value.
func (p *String) Get() Value {
	return p.load()
}

// Reset sets the value to the empty string.
func (p *String) Reset() error {
	return p.Set("")
}

// Int implements an integer type in the prefs system.
type Int struct {
	hooked[int]
}

func (p *Int) String() string {
	return strconv.Itoa(p.load())
}

// Set accepts any integer type or a string.
func (p *Int) Set(v Value) error {
	switch v := v.(type) {
	case int:
		return p.store(v)
	case int32:
		return p.store(int(v))
	case int64:
		return p.store(int(v))
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("set: cannot convert %q to prefs.Int: %w", v, err)
		}
		return p.store(n)
	}
	return fmt.Errorf("set: cannot convert %T to prefs.Int", v)
}

// Get returns the raw pref value.
func (p *Int) Get() Value {
	return p.load()
}

// Reset sets the value to zero.
func (p *Int) Reset() error {
	return p.Set(0)
}
