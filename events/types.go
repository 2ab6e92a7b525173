// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Types determines the type of input event. The type covers both the
// source device and the action: presses and releases are separate types.
// Unless otherwise noted, all events are unique, meaning they are always
// sent. Non-unique events are subject to compression in the [Deque],
// where if the last queued event is of the same type it is replaced
// instead of appended.
type Types int32

const (
	// UnknownType is the zero value, an unknown event type.
	UnknownType Types = iota

	// KeyDown happens when a keyboard key is pressed down.
	KeyDown

	// KeyUp happens when a keyboard key is released.
	KeyUp

	// KeyHold happens on OS key-repeat while a keyboard key stays down.
	KeyHold

	// MouseDown happens when a mouse button is pressed down.
	// See [Event.Button] for which.
	MouseDown

	// MouseUp happens when a mouse button is released.
	MouseUp

	// GamepadDown happens when a gamepad button is pressed down.
	GamepadDown

	// GamepadUp happens when a gamepad button is released.
	GamepadUp

	// GamepadHold happens on repeat while a gamepad button stays down.
	GamepadHold

	// PointerMove is sent when a pointer moves. Not unique: positions
	// are compressed, with Prev updated to span the compressed range.
	PointerMove

	// Scroll is a pointer scroll motion with a 2D delta. Not unique:
	// deltas of compressed events are integrated.
	Scroll

	// TextInput carries typed text as interpreted by the system
	// keyboard layout, for the focus text queue.
	TextInput
)

var typeNames = [...]string{"UnknownType", "KeyDown", "KeyUp", "KeyHold",
	"MouseDown", "MouseUp", "GamepadDown", "GamepadUp", "GamepadHold",
	"PointerMove", "Scroll", "TextInput"}

func (t Types) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Types(%d)", int32(t))
	}
	return typeNames[t]
}

// IsKey returns true for keyboard key events.
func (t Types) IsKey() bool {
	return t == KeyDown || t == KeyUp || t == KeyHold
}

// IsMouse returns true for mouse button events.
func (t Types) IsMouse() bool {
	return t == MouseDown || t == MouseUp
}

// IsGamepad returns true for gamepad button events.
func (t Types) IsGamepad() bool {
	return t == GamepadDown || t == GamepadUp || t == GamepadHold
}

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

func (b Buttons) String() string {
	switch b {
	case Left:
		return "Left"
	case Middle:
		return "Middle"
	case Right:
		return "Right"
	}
	return "NoButton"
}

// GamepadButtons is a gamepad button, using PlayStation-style face
// button names as the canonical form.
type GamepadButtons int32

const (
	NoGamepadButton GamepadButtons = iota
	GamepadCross
	GamepadCircle
	GamepadSquare
	GamepadTriangle
	GamepadL1
	GamepadR1
	GamepadL2
	GamepadR2
	GamepadSelect
	GamepadStart
	GamepadLeftStick
	GamepadRightStick
	GamepadDpadUp
	GamepadDpadDown
	GamepadDpadLeft
	GamepadDpadRight
)

var gamepadNames = [...]string{"NoGamepadButton", "Cross", "Circle", "Square",
	"Triangle", "L1", "R1", "L2", "R2", "Select", "Start", "LeftStick",
	"RightStick", "DpadUp", "DpadDown", "DpadLeft", "DpadRight"}

func (b GamepadButtons) String() string {
	if b < 0 || int(b) >= len(gamepadNames) {
		return fmt.Sprintf("GamepadButtons(%d)", int32(b))
	}
	return gamepadNames[b]
}
