// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"time"

	"github.com/weftui/weft/events"
	"github.com/weftui/weft/math32"
)

// Pointer is one live pointing device position tracked by the hover
// system. Pointers are assigned a stable positive id when first seen;
// a device reporting the same pointer number across frames keeps the
// same id. The armed counterpart of a pointer (its press target,
// frozen for drag semantics) uses the negated id.
type Pointer struct {

	// ID is the stable positive pointer id.
	ID int

	// Device is the originating device handle.
	Device int

	// Number is the pointer number within the device.
	Number int

	// Pos is the current position.
	Pos math32.Vector2

	// ScrollDelta is the scroll amount accumulated this frame.
	ScrollDelta math32.Vector2

	// HeldScroll marks touchscreen-style scrolling that locks onto its
	// initial scrollable for the duration of the hold.
	HeldScroll bool

	// Disabled excludes the pointer from hit testing and dispatch.
	Disabled bool

	// Clicks is the current consecutive-click count at this pointer's
	// last press, for double-click detection.
	Clicks int

	target     Node // hover target resolved this frame
	scrollLock Node // held-scroll locked scrollable

	lastPressTime   time.Time
	lastPressTarget Node
	seenFrame       int64
}

// armedPointer is the frozen press-origin twin of a live pointer.
type armedPointer struct {
	id         int // negated pointer id
	pointer    *Pointer
	target     Node
	button     events.Buttons
	overTarget bool
	released   bool
}

type pointerKey struct {
	device, number int
}

// HoverState is the standard [HoverIO] implementation: the pointer
// table, armed-press tracking, and scroll routing.
type HoverState struct {
	scene *Scene

	pointers map[pointerKey]*Pointer
	nextID   int

	armed map[int]*armedPointer

	// presses and releases drained this frame, processed after draw
	presses  []pressRecord
	releases []events.Buttons
}

type pressRecord struct {
	pointer *Pointer
	button  events.Buttons
}

func newHoverState(sc *Scene) *HoverState {
	return &HoverState{
		scene:    sc,
		pointers: map[pointerKey]*Pointer{},
		armed:    map[int]*armedPointer{},
	}
}

// LoadPointer registers or refreshes the pointer with the given number
// on the given device. The pointer keeps its id across frames.
func (hs *HoverState) LoadPointer(device, number int) *Pointer {
	key := pointerKey{device, number}
	if p, ok := hs.pointers[key]; ok {
		p.seenFrame = hs.scene.Context.frame
		return p
	}
	hs.nextID++
	p := &Pointer{ID: hs.nextID, Device: device, Number: number, seenFrame: hs.scene.Context.frame}
	hs.pointers[key] = p
	return p
}

// IsHovered returns whether the given node is the hover target of any
// live pointer or the armed target of any pressed pointer. During a
// press-and-drag the armed target stays hovered even as the live
// pointer moves away.
func (hs *HoverState) IsHovered(n Node) bool {
	for _, p := range hs.pointers {
		if p.target == n && n != nil {
			return true
		}
	}
	for _, ap := range hs.armed {
		if ap.target == n && n != nil {
			return true
		}
	}
	return false
}

// HoverOf returns the current hover target of the given pointer.
func (hs *HoverState) HoverOf(p *Pointer) Node {
	return p.target
}

// Pointers calls the given function for each live pointer, stopping if
// it returns false.
func (hs *HoverState) Pointers(fun func(p *Pointer) bool) {
	for _, p := range hs.pointers {
		if !fun(p) {
			return
		}
	}
}

// Armed returns the armed target of the given pointer, or nil when the
// pointer is not pressed.
func (hs *HoverState) Armed(p *Pointer) Node {
	if ap, ok := hs.armed[p.ID]; ok {
		return ap.target
	}
	return nil
}

// processEvent folds one drained positional event into the pointer
// table. Hit testing is deferred until after the draw.
func (hs *HoverState) processEvent(ev *events.Event) {
	switch ev.Typ {
	case events.PointerMove:
		p := hs.LoadPointer(ev.Device, ev.Pointer)
		p.Pos = ev.Pos
	case events.Scroll:
		p := hs.LoadPointer(ev.Device, ev.Pointer)
		p.Pos = ev.Pos
		p.ScrollDelta = p.ScrollDelta.Add(ev.Delta)
		p.HeldScroll = ev.HeldScroll
	case events.MouseDown:
		p := hs.LoadPointer(ev.Device, ev.Pointer)
		p.Pos = ev.Pos
		hs.presses = append(hs.presses, pressRecord{pointer: p, button: ev.Button})
	case events.MouseUp:
		p := hs.LoadPointer(ev.Device, ev.Pointer)
		p.Pos = ev.Pos
		hs.releases = append(hs.releases, ev.Button)
	}
}

// hitTest resolves the deepest hit node for the given point against the
// tree as drawn this frame, honoring [HitFilter] semantics.
func (hs *HoverState) hitTest(pt math32.Vector2) Node {
	root := hs.scene.rootNode()
	if root == nil {
		return nil
	}
	return hitTestNode(root, pt, hs.scene.Context.frame)
}

func hitTestNode(n Node, pt math32.Vector2, frame int64) Node {
	nb := n.AsNode()
	if nb.Hidden || nb.drawnFrame != frame {
		return nil
	}
	f := n.InBounds(nb.lastOuter, nb.lastInner, pt)
	switch f {
	case MissBranch:
		return nil
	case HitBranch:
		return n
	}
	// children drawn later are on top; test in reverse declaration order
	kids := nb.Children()
	for i := len(kids) - 1; i >= 0; i-- {
		if c := hitTestNode(kids[i], pt, frame); c != nil {
			return c
		}
	}
	if f == Hit {
		return n
	}
	return nil
}

// resolve runs the post-draw hover pass: hit testing each live pointer,
// arming new presses with press-to-change-focus coupling, and updating
// armed-over-target state.
func (hs *HoverState) resolve() {
	for _, p := range hs.pointers {
		if p.Disabled {
			p.target = nil
			continue
		}
		p.target = hs.hitTest(p.Pos)
	}

	for _, pr := range hs.presses {
		p := pr.pointer
		if p.Disabled {
			continue
		}
		hs.countClicks(p)
		ap := &armedPointer{id: -p.ID, pointer: p, target: p.target, button: pr.button, overTarget: true}
		hs.armed[p.ID] = ap
		// a press transfers focus to a focusable target and clears it otherwise
		fsp := hs.scene.CurrentFocusSpace()
		if p.target != nil && p.target.AsNode().CanFocus() {
			fsp.Focus(p.target)
		} else {
			fsp.ClearFocus()
		}
		hs.scene.notifyPress(p)
	}
	hs.presses = hs.presses[:0]

	for _, ap := range hs.armed {
		ap.overTarget = ap.pointer.target == ap.target && ap.target != nil
	}
	for _, b := range hs.releases {
		for _, ap := range hs.armed {
			if ap.button == b {
				ap.released = true
			}
		}
	}
	hs.releases = hs.releases[:0]
}

// countClicks maintains the consecutive-click count of the pointer
// using the host's double-click interval preference.
func (hs *HoverState) countClicks(p *Pointer) {
	now := hs.scene.Time.Now()
	interval := hs.scene.Prefs.DoubleClickInterval()
	if p.lastPressTarget == p.target && now.Sub(p.lastPressTime) <= interval {
		p.Clicks++
	} else {
		p.Clicks = 1
	}
	p.lastPressTime = now
	p.lastPressTarget = p.target
}

// armedFor returns the armed pointer matching the given mouse button,
// or nil.
func (hs *HoverState) armedFor(b events.Buttons) *armedPointer {
	for _, ap := range hs.armed {
		if ap.button == b {
			return ap
		}
	}
	return nil
}

// finishFrame drops armed pointers whose press ended this frame and
// releases held-scroll locks that rode on them.
func (hs *HoverState) finishFrame() {
	for id, ap := range hs.armed {
		if ap.released {
			ap.pointer.scrollLock = nil
			delete(hs.armed, id)
		}
	}
	for _, p := range hs.pointers {
		p.ScrollDelta.SetZero()
		if !p.HeldScroll {
			p.scrollLock = nil
		}
		p.HeldScroll = false
	}
}

// routeScrolls routes each pointer's accumulated scroll delta to a
// scrollable. A held scroll locks onto the initially matching
// scrollable for the duration of the hold and never propagates; a
// non-held scroll walks up to the next capable ancestor when the
// nearest scrollable is saturated in the requested direction.
func (hs *HoverState) routeScrolls() {
	for _, p := range hs.pointers {
		if p.Disabled || (p.ScrollDelta.X == 0 && p.ScrollDelta.Y == 0) {
			continue
		}
		delta := p.ScrollDelta
		if p.HeldScroll {
			if p.scrollLock == nil {
				p.scrollLock = findScrollable(p.target, delta, p)
			}
			if sn, ok := p.scrollLock.(Scrollable); ok && sn.CanScroll(delta, p) {
				sn.ApplyScroll(delta, p)
			}
			continue
		}
		if target := findScrollable(p.target, delta, p); target != nil {
			target.(Scrollable).ApplyScroll(delta, p)
		}
	}
}

// findScrollable returns the nearest ancestor of the given node
// (inclusive) that can consume this frame's scroll, skipping saturated
// scrollables.
func findScrollable(n Node, delta math32.Vector2, p *Pointer) Node {
	for n != nil {
		if sn, ok := n.(Scrollable); ok && sn.CanScroll(delta, p) {
			return n
		}
		n = n.AsNode().Parent()
	}
	return nil
}
