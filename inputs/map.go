// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inputs

import (
	"sort"
)

// Binding associates a trigger item with a semantic action within a
// modifier layer.
type Binding struct {

	// Action is the semantic action the trigger produces.
	Action ActionID

	// Trigger is the item that activates the action.
	Trigger Item

	// WhileHeld marks the binding as repeating: its handlers fire every
	// frame the trigger is held, not just on activation.
	WhileHeld bool
}

// Layer is a group of bindings sharing the same modifier stroke.
// All modifiers must be held for any binding in the layer to match.
type Layer struct {

	// Modifiers is the stroke of items that must be held.
	// An empty stroke is the base layer.
	Modifiers Stroke

	// Bindings are the trigger bindings of the layer.
	Bindings []Binding
}

// Map is the active binding table: a list of layers kept sorted by
// modifier length, descending, so that more specific combinations win.
// Ties keep insertion order. The zero value is an empty usable map.
type Map struct {
	Layers []Layer
}

// NewMap returns a new empty binding map.
func NewMap() *Map {
	return &Map{}
}

// sortLayers restores the descending-modifier-length invariant,
// preserving insertion order among equal lengths.
func (m *Map) sortLayers() {
	sort.SliceStable(m.Layers, func(i, j int) bool {
		return len(m.Layers[i].Modifiers) > len(m.Layers[j].Modifiers)
	})
}

// layerFor returns the layer with the given modifier stroke,
// creating it if none exists.
func (m *Map) layerFor(mods Stroke) *Layer {
	for i := range m.Layers {
		if m.Layers[i].Modifiers.Equal(mods) {
			return &m.Layers[i]
		}
	}
	m.Layers = append(m.Layers, Layer{Modifiers: mods})
	m.sortLayers()
	for i := range m.Layers {
		if m.Layers[i].Modifiers.Equal(mods) {
			return &m.Layers[i]
		}
	}
	return nil // unreachable
}

// Bind inserts a binding from the given stroke to the given action,
// creating a layer for the stroke's modifier prefix if none exists.
// It panics on an empty stroke.
func (m *Map) Bind(action ActionID, stroke Stroke) {
	m.bind(action, stroke, false)
}

// BindHeld is [Map.Bind] with the WhileHeld annotation set: handlers
// fire every frame the trigger is held.
func (m *Map) BindHeld(action ActionID, stroke Stroke) {
	m.bind(action, stroke, true)
}

func (m *Map) bind(action ActionID, stroke Stroke, whileHeld bool) {
	if len(stroke) == 0 {
		panic("inputs.Map.Bind: empty stroke")
	}
	ly := m.layerFor(stroke.Modifiers())
	ly.Bindings = append(ly.Bindings, Binding{Action: action, Trigger: stroke.Trigger(), WhileHeld: whileHeld})
}

// BindReplace clears any bindings with the same trigger in the stroke's
// layer and then binds the given action to the stroke.
func (m *Map) BindReplace(action ActionID, stroke Stroke) {
	if len(stroke) == 0 {
		panic("inputs.Map.BindReplace: empty stroke")
	}
	ly := m.layerFor(stroke.Modifiers())
	trig := stroke.Trigger()
	kept := ly.Bindings[:0]
	for _, b := range ly.Bindings {
		if b.Trigger != trig {
			kept = append(kept, b)
		}
	}
	ly.Bindings = kept
	m.Bind(action, stroke)
}

// ClearBound removes all bindings for the given action across all
// layers, dropping layers left empty.
func (m *Map) ClearBound(action ActionID) {
	layers := m.Layers[:0]
	for _, ly := range m.Layers {
		kept := ly.Bindings[:0]
		for _, b := range ly.Bindings {
			if b.Action != action {
				kept = append(kept, b)
			}
		}
		ly.Bindings = kept
		if len(ly.Bindings) > 0 {
			layers = append(layers, ly)
		}
	}
	m.Layers = layers
	m.sortLayers()
}

// StrokesOf returns all strokes currently bound to the given action.
func (m *Map) StrokesOf(action ActionID) []Stroke {
	var strokes []Stroke
	for _, ly := range m.Layers {
		for _, b := range ly.Bindings {
			if b.Action == action {
				st := make(Stroke, 0, len(ly.Modifiers)+1)
				st = append(st, ly.Modifiers...)
				st = append(st, b.Trigger)
				strokes = append(strokes, st)
			}
		}
	}
	return strokes
}

// Match is one binding that matched the current device state.
type Match struct {
	Binding Binding

	// Held is true when the trigger is held; false entries come from the
	// active set (trigger activated this frame).
	Held bool
}

// Evaluate matches the current device state against the map:
// it finds the first (most specific) layer whose every modifier is held,
// and returns that layer's held matches (trigger held) and active
// matches (trigger activated this frame). Earlier layers shadow later
// ones; evaluation stops at the first layer with all modifiers held.
func (m *Map) Evaluate(st *State) (active, held []Match) {
	for _, ly := range m.Layers {
		matched := true
		for _, mod := range ly.Modifiers {
			if !st.IsHeld(mod) {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		for _, b := range ly.Bindings {
			if st.IsHeld(b.Trigger) {
				held = append(held, Match{Binding: b, Held: true})
			}
			if st.IsActive(b.Trigger) {
				active = append(active, Match{Binding: b})
			}
		}
		return active, held
	}
	return nil, nil
}
