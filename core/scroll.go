// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/weftui/weft/math32"
)

// Scrollable is implemented by nodes that can consume pointer scroll
// deltas. The hover system routes each frame's scroll to the nearest
// ancestor of the hover target whose CanScroll reports true.
type Scrollable interface {
	Node

	// CanScroll returns whether the node can consume any part of the
	// given scroll delta for the given pointer this frame.
	CanScroll(delta math32.Vector2, p *Pointer) bool

	// ApplyScroll consumes the given scroll delta.
	ApplyScroll(delta math32.Vector2, p *Pointer)
}

// ScrollFrame is a [Frame] that sizes its content along its axis
// without bound and scrolls it within the space it is given.
// Positive scroll deltas move the content toward the start,
// increasing the offset.
type ScrollFrame struct {
	Frame

	// Offset is the current scroll offset: how far the content is
	// shifted toward the start.
	Offset math32.Vector2

	// View, when non-zero, is the minimum view size the scroll frame
	// requests from its parent. When zero, the frame imposes no minimum
	// and takes whatever space it is given.
	View math32.Vector2

	contentSize math32.Vector2
}

// NewScrollFrame returns a new [ScrollFrame] with the given direction
// and children.
func NewScrollFrame(dir Direction, children ...Node) *ScrollFrame {
	sf := &ScrollFrame{}
	sf.Dir = dir
	sf.InitNode(sf)
	for _, c := range children {
		sf.AddChild(c)
	}
	return sf
}

// Resize measures the content at its natural size along the scroll
// axis and records it; the scroll frame itself imposes no minimum
// beyond padding, deferring to the space its parent gives it.
func (sf *ScrollFrame) Resize(ctx *TreeContext, space math32.Vector2) (math32.Vector2, error) {
	content := space.Sub(sf.Pad.Size())
	content.SetMax(math32.Vector2{})
	content.SetDim(sf.Dir.Dim(), math32.Infinity)
	ms, err := sf.Frame.Resize(ctx, content.Add(sf.Pad.Size()))
	if err != nil {
		return math32.Vector2{}, err
	}
	sf.contentSize = ms.Sub(sf.Pad.Size())
	return sf.View.Add(sf.Pad.Size()), nil
}

// ContentSize returns the measured natural size of the content.
func (sf *ScrollFrame) ContentSize() math32.Vector2 {
	return sf.contentSize
}

// maxOffset returns the largest useful offset given the current view.
func (sf *ScrollFrame) maxOffset() math32.Vector2 {
	view := sf.LastInner().Size()
	mo := sf.contentSize.Sub(view)
	mo.SetMax(math32.Vector2{})
	return mo
}

// Draw clamps the offset, crops to the view, and draws the content
// shifted by the offset.
func (sf *ScrollFrame) Draw(ctx *TreeContext, outer, inner math32.Box2) {
	sf.Offset.Clamp(math32.Vector2{}, sf.maxOffset())

	defer ctx.PushCrop(inner)()

	size := sf.contentSize.Max(inner.Size())
	content := math32.B2FromPosSize(inner.Min.Sub(sf.Offset), size)
	sf.Frame.Draw(ctx, outer, content)
}

// CanScroll returns whether any component of the delta can still be
// consumed: the offset is not saturated in the requested direction.
func (sf *ScrollFrame) CanScroll(delta math32.Vector2, p *Pointer) bool {
	mo := sf.maxOffset()
	for _, d := range []math32.Dims{math32.X, math32.Y} {
		dd := delta.Dim(d)
		if dd > 0 && sf.Offset.Dim(d) < mo.Dim(d) {
			return true
		}
		if dd < 0 && sf.Offset.Dim(d) > 0 {
			return true
		}
	}
	return false
}

// ApplyScroll adds the delta to the offset, clamped to the content.
func (sf *ScrollFrame) ApplyScroll(delta math32.Vector2, p *Pointer) {
	sf.Offset = sf.Offset.Add(delta)
	sf.Offset.Clamp(math32.Vector2{}, sf.maxOffset())
}

// ScrollIntoView queues a tree action that observes the next draw and
// adjusts the offset so the given descendant is visible: a node past
// the end of the view is aligned to the end, one before the start to
// the start.
func (sf *ScrollFrame) ScrollIntoView(sc *Scene, target Node) {
	sc.StartAction(&scrollIntoViewAction{frame: sf, target: target}, sf)
}

// scrollIntoViewAction records the target's drawn box and adjusts the
// scroll offset after the tree has drawn.
type scrollIntoViewAction struct {
	TreeActionBase
	frame  *ScrollFrame
	target Node

	box   math32.Box2
	found bool
}

func (sa *scrollIntoViewAction) AfterDraw(n Node, outer, inner math32.Box2) {
	if n == sa.target {
		sa.box = outer
		sa.found = true
	}
}

func (sa *scrollIntoViewAction) AfterTree() {
	defer sa.Stop()
	if !sa.found {
		return
	}
	view := sa.frame.LastInner()
	off := sa.frame.Offset
	for _, d := range []math32.Dims{math32.X, math32.Y} {
		if sa.box.Max.Dim(d) > view.Max.Dim(d) {
			off.SetDim(d, off.Dim(d)+sa.box.Max.Dim(d)-view.Max.Dim(d))
		} else if sa.box.Min.Dim(d) < view.Min.Dim(d) {
			off.SetDim(d, off.Dim(d)-(view.Min.Dim(d)-sa.box.Min.Dim(d)))
		}
	}
	off.Clamp(math32.Vector2{}, sa.frame.maxOffset())
	sa.frame.Offset = off
}
