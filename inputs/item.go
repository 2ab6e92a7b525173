// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inputs implements the mapping from raw device events to
// semantic input actions: strokes, bindings, modifier layers, the
// process-wide action registry, and the per-frame dispatch state.
package inputs

import (
	"fmt"
	"strings"

	"github.com/weftui/weft/events"
	"github.com/weftui/weft/events/key"
)

// Devices enumerates the device kinds an input item can come from.
type Devices int32

const (
	Keyboard Devices = iota
	Mouse
	Gamepad
)

func (d Devices) String() string {
	switch d {
	case Keyboard:
		return "Keyboard"
	case Mouse:
		return "Mouse"
	case Gamepad:
		return "Gamepad"
	}
	return fmt.Sprintf("Devices(%d)", int32(d))
}

// Item is one element of an input [Stroke]: a tagged variant over a
// keyboard key, a mouse button, or a gamepad button. Only the payload
// field matching [Item.Device] is meaningful; the constructors leave
// the others zero so that items compare with ==.
type Item struct {
	Device  Devices
	Key     key.Codes
	Button  events.Buttons
	Gamepad events.GamepadButtons
}

// KeyItem returns an [Item] for the given keyboard key.
func KeyItem(code key.Codes) Item {
	return Item{Device: Keyboard, Key: code}
}

// MouseItem returns an [Item] for the given mouse button.
func MouseItem(button events.Buttons) Item {
	return Item{Device: Mouse, Button: button}
}

// GamepadItem returns an [Item] for the given gamepad button.
func GamepadItem(button events.GamepadButtons) Item {
	return Item{Device: Gamepad, Gamepad: button}
}

// ItemFromEvent returns the [Item] corresponding to the given raw event
// and true, or a zero item and false for non-button events.
func ItemFromEvent(ev *events.Event) (Item, bool) {
	switch {
	case ev.Typ.IsKey():
		return KeyItem(ev.Code), true
	case ev.Typ.IsMouse():
		return MouseItem(ev.Button), true
	case ev.Typ.IsGamepad():
		return GamepadItem(ev.Gamepad), true
	}
	return Item{}, false
}

func (it Item) String() string {
	switch it.Device {
	case Keyboard:
		return it.Key.String()
	case Mouse:
		return "Mouse" + it.Button.String()
	default:
		return "Gamepad" + it.Gamepad.String()
	}
}

// Stroke is an ordered combination of input items producing one semantic
// action. The last item is the trigger; all preceding items are modifiers
// that must be held. An empty stroke matches the empty modifier layer.
type Stroke []Item

// NewStroke returns a stroke of the given items.
func NewStroke(items ...Item) Stroke {
	return Stroke(items)
}

// Keys returns a stroke made of the given keyboard keys.
func Keys(codes ...key.Codes) Stroke {
	st := make(Stroke, len(codes))
	for i, c := range codes {
		st[i] = KeyItem(c)
	}
	return st
}

// Trigger returns the final item of the stroke, which activates the action.
// It panics on an empty stroke.
func (st Stroke) Trigger() Item {
	if len(st) == 0 {
		panic("inputs.Stroke.Trigger: empty stroke")
	}
	return st[len(st)-1]
}

// Modifiers returns all items before the trigger.
func (st Stroke) Modifiers() Stroke {
	if len(st) == 0 {
		return nil
	}
	return st[:len(st)-1]
}

// Equal returns whether the two strokes are element-wise equal.
func (st Stroke) Equal(other Stroke) bool {
	if len(st) != len(other) {
		return false
	}
	for i := range st {
		if st[i] != other[i] {
			return false
		}
	}
	return true
}

func (st Stroke) String() string {
	ss := make([]string, len(st))
	for i, it := range st {
		ss[i] = it.String()
	}
	return strings.Join(ss, "+")
}
