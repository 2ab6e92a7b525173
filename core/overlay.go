// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/weftui/weft/math32"
	"github.com/weftui/weft/styles"
)

// Popup is one anchored overlay managed by an [OverlayChain]: a node
// positioned relative to an anchor rectangle in the viewport, with its
// own focus space and dismiss rules.
type Popup struct {

	// Node is the popup's content.
	Node Node

	// Anchor computes the anchor rectangle from the viewport.
	Anchor AnchorFunc

	// Align is the per-axis placement relative to the anchor:
	// Start and End place outside the anchor toward that side, Center
	// centers on it, and Fill picks whichever side has more free
	// viewport space, preferring the end side on ties.
	Align styles.AlignPair

	parent      *Popup
	space       *FocusSpace
	removeLater bool
}

// OverlayChain holds a primary child with a list of anchored popups
// displayed atop it. It implements [OverlayIO] and publishes itself
// during draw so descendants can open popups.
type OverlayChain struct {
	NodeBase

	scene  *Scene
	popups []*Popup
}

func newOverlayChain(sc *Scene, primary Node) *OverlayChain {
	oc := &OverlayChain{scene: sc}
	oc.InitNode(oc)
	oc.AddChild(primary)
	return oc
}

// Primary returns the primary (non-popup) child.
func (oc *OverlayChain) Primary() Node {
	return oc.Children()[0]
}

// Popups returns the open popups, bottom to top.
func (oc *OverlayChain) Popups() []*Popup {
	return oc.popups
}

// TopPopup returns the top popup, or nil.
func (oc *OverlayChain) TopPopup() *Popup {
	live := oc.livePopups()
	if len(live) == 0 {
		return nil
	}
	return live[len(live)-1]
}

func (oc *OverlayChain) livePopups() []*Popup {
	var live []*Popup
	for _, p := range oc.popups {
		if !p.removeLater {
			live = append(live, p)
		}
	}
	return live
}

// AddPopup opens a popup anchored by the given function, capturing
// focus in a new focus space scoped to the popup's subtree.
func (oc *OverlayChain) AddPopup(n Node, anchor AnchorFunc) *Popup {
	return oc.addPopup(nil, n, anchor)
}

// AddChildPopup opens a popup chained to the given parent popup:
// the parent stays alive, focus transfers to the child, and dismissing
// the child returns focus to the parent.
func (oc *OverlayChain) AddChildPopup(parent *Popup, n Node, anchor AnchorFunc) *Popup {
	return oc.addPopup(parent, n, anchor)
}

func (oc *OverlayChain) addPopup(parent *Popup, n Node, anchor AnchorFunc) *Popup {
	p := &Popup{Node: n, Anchor: anchor, Align: styles.AlignBoth(styles.End), parent: parent}
	oc.AddChild(n)
	p.space = oc.scene.pushFocusSpace(n)
	oc.popups = append(oc.popups, p)
	oc.UpdateSize()
	return p
}

// Dismiss closes the given popup: it stops drawing after the current
// frame and the focus active when it opened is restored.
func (oc *OverlayChain) Dismiss(p *Popup) {
	if p.removeLater {
		return
	}
	p.removeLater = true
	oc.scene.popFocusSpace(p.space)
}

// DismissTop closes the top popup, returning whether there was one.
func (oc *OverlayChain) DismissTop() bool {
	top := oc.TopPopup()
	if top == nil {
		return false
	}
	oc.Dismiss(top)
	return true
}

// Resize sizes the primary child to the whole space and each popup to
// its own minimum.
func (oc *OverlayChain) Resize(ctx *TreeContext, space math32.Vector2) (math32.Vector2, error) {
	ms, err := ctx.ResizeChild(oc.Primary(), space)
	if err != nil {
		return math32.Vector2{}, err
	}
	for _, p := range oc.popups {
		if _, err := ctx.ResizeChild(p.Node, space); err != nil {
			return math32.Vector2{}, err
		}
	}
	return ms, nil
}

// Draw draws the primary child filling the box, publishes the chain as
// the overlay service, and draws each live popup at its anchored
// placement. Popups dismissed this frame are pruned afterwards.
func (oc *OverlayChain) Draw(ctx *TreeContext, outer, inner math32.Box2) {
	defer ctx.Publish(OverlayCap, OverlayIO(oc))()

	ctx.DrawChild(oc.Primary(), inner)

	viewport := ctx.Scene.ViewportBox()
	for _, p := range oc.popups {
		if p.removeLater {
			continue
		}
		anchor := p.Anchor(viewport)
		size := p.Node.AsNode().MinSize()
		box := PlacePopupFor(anchor, size, viewport, p.Align)
		ctx.DrawChild(p.Node, box)
	}

	// end-of-frame teardown of dismissed popups
	kept := oc.popups[:0]
	for _, p := range oc.popups {
		if p.removeLater {
			oc.RemoveChild(p.Node)
			continue
		}
		kept = append(kept, p)
	}
	oc.popups = kept
}

// PlacePopupFor computes a popup box of the given size relative to the
// anchor, per axis, sliding the result into the viewport.
func PlacePopupFor(anchor math32.Box2, size math32.Vector2, viewport math32.Box2, align styles.AlignPair) math32.Box2 {
	var pos math32.Vector2
	for _, d := range []math32.Dims{math32.X, math32.Y} {
		var a styles.Align
		if d == math32.X {
			a = align.X
		} else {
			a = align.Y
		}
		var p float32
		switch a {
		case styles.Start:
			p = anchor.Min.Dim(d) - size.Dim(d)
		case styles.End:
			p = anchor.Max.Dim(d)
		case styles.Center:
			p = anchor.Center().Dim(d) - size.Dim(d)/2
		case styles.Fill:
			// pick the side with more free space; ties go to the end side
			startSpace := anchor.Min.Dim(d) - viewport.Min.Dim(d)
			endSpace := viewport.Max.Dim(d) - anchor.Max.Dim(d)
			if endSpace >= startSpace {
				p = anchor.Max.Dim(d)
			} else {
				p = anchor.Min.Dim(d) - size.Dim(d)
			}
		}
		p, _ = styles.FitGeomInWindow(p, size.Dim(d), viewport.Min.Dim(d), viewport.Size().Dim(d))
		pos.SetDim(d, p)
	}
	return math32.B2FromPosSize(pos, size)
}

// InBounds reports a plain miss: the chain itself is transparent to hit
// testing, so only its children can become the hover target.
func (oc *OverlayChain) InBounds(outer, inner math32.Box2, pt math32.Vector2) HitFilter {
	return Miss
}

// notifyPress dismisses the top popup when a press lands outside its
// subtree.
func (oc *OverlayChain) notifyPress(p *Pointer) {
	top := oc.TopPopup()
	if top == nil {
		return
	}
	if p.target == nil || !top.Node.AsNode().IsAncestorOf(p.target) {
		oc.Dismiss(top)
	}
}

// checkFocus dismisses the top popup when focus has moved outside its
// subtree.
func (oc *OverlayChain) checkFocus() {
	for {
		top := oc.TopPopup()
		if top == nil {
			return
		}
		cur := top.space.CurrentFocus()
		if cur == nil || top.Node.AsNode().IsAncestorOf(cur) {
			return
		}
		oc.Dismiss(top)
	}
}
