// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package headless

import (
	"github.com/weftui/weft/core"
	"github.com/weftui/weft/events"
	"github.com/weftui/weft/events/key"
	"github.com/weftui/weft/math32"
)

// Keyboard synthesizes keyboard events into a scene's event queue.
type Keyboard struct {
	scene *core.Scene
}

// NewKeyboard returns a keyboard feeding the given scene.
func NewKeyboard(sc *core.Scene) *Keyboard {
	return &Keyboard{scene: sc}
}

// Press sends a key-down for the given code.
func (kb *Keyboard) Press(code key.Codes) {
	kb.scene.Events.Send(events.NewKey(events.KeyDown, code))
}

// Release sends a key-up for the given code.
func (kb *Keyboard) Release(code key.Codes) {
	kb.scene.Events.Send(events.NewKey(events.KeyUp, code))
}

// Hold sends a key-repeat for the given code.
func (kb *Keyboard) Hold(code key.Codes) {
	kb.scene.Events.Send(events.NewKey(events.KeyHold, code))
}

// Tap sends a press and release of the given code.
func (kb *Keyboard) Tap(code key.Codes) {
	kb.Press(code)
	kb.Release(code)
}

// Type sends the given text to the focus text queue.
func (kb *Keyboard) Type(text string) {
	kb.scene.Events.Send(events.NewTextInput(text))
}

// Mouse synthesizes mouse events into a scene's event queue,
// tracking its own position as pointer 0 of its device.
type Mouse struct {
	scene *core.Scene

	// Device is the device handle used in generated events.
	Device int

	pos math32.Vector2
}

// NewMouse returns a mouse feeding the given scene.
func NewMouse(sc *core.Scene) *Mouse {
	return &Mouse{scene: sc}
}

// MoveTo moves the pointer to the given position.
func (m *Mouse) MoveTo(pos math32.Vector2) {
	ev := events.NewPointerMove(m.Device, 0, pos, m.pos)
	m.scene.Events.Send(ev)
	m.pos = pos
}

// Press sends a button-down at the current position.
func (m *Mouse) Press(button events.Buttons) {
	ev := events.NewMouse(events.MouseDown, button, m.pos)
	ev.Device = m.Device
	m.scene.Events.Send(ev)
}

// Release sends a button-up at the current position.
func (m *Mouse) Release(button events.Buttons) {
	ev := events.NewMouse(events.MouseUp, button, m.pos)
	ev.Device = m.Device
	m.scene.Events.Send(ev)
}

// Click presses and releases the left button.
func (m *Mouse) Click() {
	m.Press(events.Left)
	m.Release(events.Left)
}

// Scroll sends a scroll with the given delta at the current position.
func (m *Mouse) Scroll(delta math32.Vector2) {
	m.scene.Events.Send(events.NewScroll(m.Device, 0, m.pos, delta))
}

// ScrollHeld sends a touchscreen-style held scroll with the given
// delta, which locks onto its initial scrollable.
func (m *Mouse) ScrollHeld(delta math32.Vector2) {
	ev := events.NewScroll(m.Device, 0, m.pos, delta)
	ev.HeldScroll = true
	m.scene.Events.Send(ev)
}

// Gamepad synthesizes gamepad button events into a scene's event queue.
type Gamepad struct {
	scene *core.Scene
}

// NewGamepad returns a gamepad feeding the given scene.
func NewGamepad(sc *core.Scene) *Gamepad {
	return &Gamepad{scene: sc}
}

// Press sends a button-down for the given button.
func (g *Gamepad) Press(button events.GamepadButtons) {
	g.scene.Events.Send(events.NewGamepad(events.GamepadDown, button))
}

// Release sends a button-up for the given button.
func (g *Gamepad) Release(button events.GamepadButtons) {
	g.scene.Events.Send(events.NewGamepad(events.GamepadUp, button))
}

// Tap sends a press and release of the given button.
func (g *Gamepad) Tap(button events.GamepadButtons) {
	g.Press(button)
	g.Release(button)
}
