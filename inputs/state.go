// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inputs

import "github.com/weftui/weft/events"

// State tracks which input items are currently held and which became
// active this frame, across all button devices. Keyboard and gamepad
// items activate on press; mouse items activate on release, and a
// released mouse item still counts as held for the remainder of the
// frame so its action is not lost.
type State struct {
	held   map[Item]bool
	active map[Item]bool
	linger map[Item]bool // mouse items released this frame
}

// NewState returns a new empty device state tracker.
func NewState() *State {
	return &State{
		held:   map[Item]bool{},
		active: map[Item]bool{},
		linger: map[Item]bool{},
	}
}

// Process updates the state from the given raw event.
// Non-button events are ignored.
func (st *State) Process(ev *events.Event) {
	it, ok := ItemFromEvent(ev)
	if !ok {
		return
	}
	switch ev.Typ {
	case events.KeyDown, events.GamepadDown:
		if !st.held[it] {
			st.active[it] = true
		}
		st.held[it] = true
	case events.KeyHold, events.GamepadHold:
		st.held[it] = true
	case events.KeyUp, events.GamepadUp:
		delete(st.held, it)
	case events.MouseDown:
		st.held[it] = true
	case events.MouseUp:
		delete(st.held, it)
		st.linger[it] = true
		st.active[it] = true
	}
}

// IsHeld returns whether the item is currently held, including mouse
// items released earlier this frame.
func (st *State) IsHeld(it Item) bool {
	return st.held[it] || st.linger[it]
}

// IsDown returns whether the item is physically down, without the
// one-frame mouse release extension.
func (st *State) IsDown(it Item) bool {
	return st.held[it]
}

// IsActive returns whether the item activated this frame:
// pressed this frame for keyboard and gamepad items, released this
// frame for mouse items.
func (st *State) IsActive(it Item) bool {
	return st.active[it]
}

// EndFrame clears the per-frame activation and mouse-release state.
// Call once after each frame's dispatch.
func (st *State) EndFrame() {
	clear(st.active)
	clear(st.linger)
}
