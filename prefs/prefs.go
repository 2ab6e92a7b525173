// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package prefs provides a persistable implementation of the host
// preference service, stored as TOML.
package prefs

import (
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/weftui/weft/base/errors"
	"github.com/weftui/weft/base/option"
)

// Preferences is a [core.PreferenceIO] with TOML persistence.
type Preferences struct {

	// DoubleClick is the maximum delay between presses recognized
	// as a double click.
	DoubleClick time.Duration `toml:"double-click-interval"`

	// ScrollWheelSpeed scales scroll wheel deltas, in pixels per step.
	// When unset, the platform default of 1 is used.
	ScrollWheelSpeed option.Option[float32] `toml:"scroll-wheel-speed"`
}

// Defaults returns preferences with conventional defaults.
func Defaults() *Preferences {
	return &Preferences{
		DoubleClick: 500 * time.Millisecond,
	}
}

// Saved returns preferences loaded from the given TOML file on top of
// the defaults. A missing file is not an error; any other read or
// parse problem is logged and the defaults are returned.
func Saved(filename string) *Preferences {
	p := Defaults()
	if err := p.Open(filename); err != nil && !errors.Is(err, os.ErrNotExist) {
		errors.Log(err)
	}
	return p
}

// DoubleClickInterval implements the preference service contract.
func (p *Preferences) DoubleClickInterval() time.Duration {
	return p.DoubleClick
}

// WheelSpeed returns the effective scroll wheel speed.
func (p *Preferences) WheelSpeed() float32 {
	return p.ScrollWheelSpeed.Or(1)
}

// Open reads preferences from the given TOML file, keeping defaults
// for absent keys.
func (p *Preferences) Open(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return toml.Unmarshal(data, p)
}

// Save writes the preferences to the given TOML file.
func (p *Preferences) Save(filename string) error {
	data, err := toml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o666)
}
