// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events defines the raw device event variants consumed by the
// input-mapping subsystem, along with the thread-safe queue that device
// back-ends use to deliver them to the main thread.
package events

import (
	"fmt"
	"time"

	"github.com/weftui/weft/events/key"
	"github.com/weftui/weft/math32"
)

// Event is a single raw device event. It is a tagged variant:
// [Event.Typ] determines which payload fields are meaningful.
// Events should be created with the New functions, which set
// the fields relevant to each type.
type Event struct {

	// Typ is the type of event, determining the payload fields.
	Typ Types

	// Code is the physical key identity, for keyboard events.
	Code key.Codes

	// Button is the mouse button, for mouse events.
	Button Buttons

	// Gamepad is the gamepad button, for gamepad events.
	Gamepad GamepadButtons

	// Device is the originating device handle, for positional events.
	Device int

	// Pointer is the pointer number within the device, for positional events.
	Pointer int

	// Pos is the position where the event took place, in device-independent
	// pixels in the root coordinate space.
	Pos math32.Vector2

	// Prev is the previous position, for [PointerMove] events.
	Prev math32.Vector2

	// Delta is the 2D scroll amount, for [Scroll] events.
	Delta math32.Vector2

	// HeldScroll marks a touchscreen-style scroll that rides on a press
	// and locks to its initial scrollable.
	HeldScroll bool

	// Text is the typed text, for [TextInput] events.
	Text string

	// GenTime records when the event was generated.
	GenTime time.Time

	handled bool
}

// Type returns the type of the event.
func (ev *Event) Type() Types {
	return ev.Typ
}

// Time returns the time at which the event was generated.
func (ev *Event) Time() time.Time {
	return ev.GenTime
}

// SetHandled marks the event as processed, stopping further propagation.
func (ev *Event) SetHandled() {
	ev.handled = true
}

// IsHandled returns whether the event has been marked as processed.
func (ev *Event) IsHandled() bool {
	return ev.handled
}

// HasPos returns true if the event has a position where it takes place.
func (ev *Event) HasPos() bool {
	switch ev.Typ {
	case MouseDown, MouseUp, PointerMove, Scroll:
		return true
	}
	return false
}

// IsUnique returns true if this event must always be sent, even if the
// last queued event is of the same type. Only [PointerMove] and [Scroll]
// are compressible.
func (ev *Event) IsUnique() bool {
	return ev.Typ != PointerMove && ev.Typ != Scroll
}

// IsSame returns whether the event is compressible with the given
// previously queued event: same type, device and pointer.
func (ev *Event) IsSame(oth *Event) bool {
	return ev.Typ == oth.Typ && ev.Device == oth.Device && ev.Pointer == oth.Pointer
}

func (ev *Event) String() string {
	switch {
	case ev.Typ.IsKey():
		return fmt.Sprintf("%v{Code: %v}", ev.Typ, ev.Code)
	case ev.Typ.IsMouse():
		return fmt.Sprintf("%v{Button: %v, Pos: %v}", ev.Typ, ev.Button, ev.Pos)
	case ev.Typ.IsGamepad():
		return fmt.Sprintf("%v{Button: %v}", ev.Typ, ev.Gamepad)
	case ev.Typ == Scroll:
		return fmt.Sprintf("%v{Delta: %v, Pos: %v}", ev.Typ, ev.Delta, ev.Pos)
	case ev.Typ == TextInput:
		return fmt.Sprintf("%v{Text: %q}", ev.Typ, ev.Text)
	}
	return fmt.Sprintf("%v{Pos: %v}", ev.Typ, ev.Pos)
}

func newEvent(typ Types) *Event {
	return &Event{Typ: typ, GenTime: time.Now()}
}

// NewKey returns a new keyboard event of the given type.
func NewKey(typ Types, code key.Codes) *Event {
	ev := newEvent(typ)
	ev.Code = code
	return ev
}

// NewMouse returns a new mouse button event of the given type.
func NewMouse(typ Types, button Buttons, pos math32.Vector2) *Event {
	ev := newEvent(typ)
	ev.Button = button
	ev.Pos = pos
	return ev
}

// NewGamepad returns a new gamepad button event of the given type.
func NewGamepad(typ Types, button GamepadButtons) *Event {
	ev := newEvent(typ)
	ev.Gamepad = button
	return ev
}

// NewPointerMove returns a new pointer move event for the given
// device pointer.
func NewPointerMove(device, pointer int, pos, prev math32.Vector2) *Event {
	ev := newEvent(PointerMove)
	ev.Device = device
	ev.Pointer = pointer
	ev.Pos = pos
	ev.Prev = prev
	return ev
}

// NewScroll returns a new scroll event at the given position.
func NewScroll(device, pointer int, pos, delta math32.Vector2) *Event {
	ev := newEvent(Scroll)
	ev.Device = device
	ev.Pointer = pointer
	ev.Pos = pos
	ev.Delta = delta
	return ev
}

// NewTextInput returns a new text input event carrying the given text.
func NewTextInput(text string) *Event {
	ev := newEvent(TextInput)
	ev.Text = text
	return ev
}
