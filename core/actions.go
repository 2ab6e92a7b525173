// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/weftui/weft/events"
	"github.com/weftui/weft/inputs"
)

// ActionDispatcher is the standard [ActionIO] implementation,
// translating the per-frame device state through the binding table into
// action callbacks on the focus and hover targets.
type ActionDispatcher struct {
	scene *Scene

	// inputMap is the active binding table.
	inputMap *inputs.Map

	// state tracks held and activated items across button devices.
	state *inputs.State
}

func newActionDispatcher(sc *Scene) *ActionDispatcher {
	return &ActionDispatcher{
		scene:    sc,
		inputMap: inputs.DefaultMap(),
		state:    inputs.NewState(),
	}
}

// Map returns the active binding table. Mutations through
// [inputs.Map.Bind] and friends take effect next frame.
func (ad *ActionDispatcher) Map() *inputs.Map {
	return ad.inputMap
}

// SetMap replaces the active binding table.
func (ad *ActionDispatcher) SetMap(m *inputs.Map) {
	ad.inputMap = m
}

// deliver bubbles the action from the given node up through its
// ancestors, stopping at the first handler that consumes it.
func deliver(n Node, id inputs.ActionID) bool {
	for n != nil {
		if n.AsNode().handleAction(id) {
			return true
		}
		n = n.AsNode().Parent()
	}
	return false
}

// deliverHeld is [deliver] for while-held handlers.
func deliverHeld(n Node, id inputs.ActionID) bool {
	for n != nil {
		if n.AsNode().handleActionHeld(id) {
			return true
		}
		n = n.AsNode().Parent()
	}
	return false
}

// RunInputAction dispatches the given action synchronously: first to
// the current focus target, then to the hover targets.
func (ad *ActionDispatcher) RunInputAction(id inputs.ActionID) bool {
	sc := ad.scene
	if f := sc.CurrentFocusSpace().CurrentFocus(); f != nil {
		if deliver(f, id) {
			return true
		}
	}
	handled := false
	sc.Hover.Pointers(func(p *Pointer) bool {
		if t := sc.Hover.HoverOf(p); t != nil {
			if deliver(t, id) {
				handled = true
				return false
			}
		}
		return true
	})
	return handled
}

// dispatch runs the per-frame action dispatch after hover resolution,
// returning whether any keyboard-directed action was consumed.
func (ad *ActionDispatcher) dispatch() (keyboardHandled bool) {
	sc := ad.scene
	active, held := ad.inputMap.Evaluate(ad.state)
	fsp := sc.CurrentFocusSpace()

	for _, m := range active {
		b := m.Binding
		if b.Trigger.Device == inputs.Mouse {
			// pointer-directed: the press action fires on release while
			// the armed pointer is still over its target
			ap := sc.Hover.armedFor(b.Trigger.Button)
			if ap == nil || !ap.released || !ap.overTarget {
				continue
			}
			if deliver(ap.target, b.Action) {
				continue
			}
			sc.unhandledAction(b.Action)
			continue
		}
		// focus-directed
		handled := false
		if f := fsp.CurrentFocus(); f != nil {
			handled = deliver(f, b.Action)
		}
		if handled {
			keyboardHandled = true
		} else {
			sc.unhandledAction(b.Action)
		}
	}

	for _, m := range held {
		b := m.Binding
		if !b.WhileHeld {
			continue
		}
		if b.Trigger.Device == inputs.Mouse {
			// while-held actions fire only while the pointer remains
			// over its armed target
			if ap := sc.Hover.armedFor(b.Trigger.Button); ap != nil && ap.overTarget {
				deliverHeld(ap.target, b.Action)
			}
			continue
		}
		if f := fsp.CurrentFocus(); f != nil {
			deliverHeld(f, b.Action)
		}
	}

	// frameEvent fallback tick, once per frame
	if f := fsp.CurrentFocus(); f != nil && f.AsNode().HandlesAction(inputs.FrameEvent) {
		if deliver(f, inputs.FrameEvent) {
			keyboardHandled = true
		}
	}
	sc.Hover.Pointers(func(p *Pointer) bool {
		if t := sc.Hover.HoverOf(p); t != nil && t.AsNode().HandlesAction(inputs.FrameEvent) {
			deliver(t, inputs.FrameEvent)
		}
		return true
	})

	// focusImpl fallback: runs when focused and no keyboard action
	// consumed the event
	if f := fsp.CurrentFocus(); f != nil && !keyboardHandled {
		if impl := f.AsNode().FocusImpl; impl != nil {
			impl()
		}
	}
	return keyboardHandled
}

// processEvent folds one drained button event into the device state.
func (ad *ActionDispatcher) processEvent(ev *events.Event) {
	ad.state.Process(ev)
}

// endFrame clears the per-frame device activation state.
func (ad *ActionDispatcher) endFrame() {
	ad.state.EndFrame()
}
