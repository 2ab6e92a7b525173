// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inputs

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// mapFile is the serialized form of a binding [Map]: action names
// mapped to stroke strings, grouped by layer. Items serialize by kind
// prefix: bare code names for keys, "Mouse" and "Gamepad" prefixes
// for buttons.
type mapFile struct {
	Layers []layerFile `yaml:"layers"`
}

type layerFile struct {
	Modifiers []string      `yaml:"modifiers,omitempty"`
	Bindings  []bindingFile `yaml:"bindings"`
}

type bindingFile struct {
	Action    string `yaml:"action"`
	Trigger   string `yaml:"trigger"`
	WhileHeld bool   `yaml:"whileHeld,omitempty"`
}

// Save writes the map in YAML format to the given writer.
func (m *Map) Save(w io.Writer) error {
	mf := mapFile{}
	for _, ly := range m.Layers {
		lf := layerFile{}
		for _, it := range ly.Modifiers {
			lf.Modifiers = append(lf.Modifiers, it.String())
		}
		for _, b := range ly.Bindings {
			lf.Bindings = append(lf.Bindings, bindingFile{
				Action:    b.Action.Name(),
				Trigger:   b.Trigger.String(),
				WhileHeld: b.WhileHeld,
			})
		}
		mf.Layers = append(mf.Layers, lf)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(&mf)
}

// SaveFile writes the map in YAML format to the given file.
func (m *Map) SaveFile(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return m.Save(f)
}

// Open reads a map in YAML format from the given reader, replacing the
// current contents. Actions are resolved by registered name; an unknown
// action or item name is an error.
func (m *Map) Open(r io.Reader) error {
	mf := mapFile{}
	if err := yaml.NewDecoder(r).Decode(&mf); err != nil {
		return err
	}
	nm := Map{}
	for _, lf := range mf.Layers {
		for _, bf := range lf.Bindings {
			action := ActionByName(bf.Action)
			if action == 0 {
				return fmt.Errorf("inputs.Map.Open: unknown action %q", bf.Action)
			}
			stroke := make(Stroke, 0, len(lf.Modifiers)+1)
			for _, ms := range lf.Modifiers {
				it, err := parseItem(ms)
				if err != nil {
					return err
				}
				stroke = append(stroke, it)
			}
			it, err := parseItem(bf.Trigger)
			if err != nil {
				return err
			}
			stroke = append(stroke, it)
			if bf.WhileHeld {
				nm.BindHeld(action, stroke)
			} else {
				nm.Bind(action, stroke)
			}
		}
	}
	*m = nm
	return nil
}

// OpenFile reads a map in YAML format from the given file,
// replacing the current contents.
func (m *Map) OpenFile(filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return m.Open(f)
}
