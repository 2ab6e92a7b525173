// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image/color"

	"github.com/weftui/weft/inputs"
	"github.com/weftui/weft/math32"
)

// TestBox is a minimal concrete node for tests and examples: a fixed
// minimum size, an optional fill color, and counters for resize and
// draw calls. Real widgets live outside the core.
type TestBox struct {
	NodeBase

	// Size is the box's minimum content size.
	Size math32.Vector2

	// Color fills the inner box when drawn, if not zero.
	Color color.NRGBA

	// Resizes counts Resize calls.
	Resizes int

	// Draws counts Draw calls.
	Draws int
}

// NewTestBox returns a new [TestBox] with the given name and minimum size.
func NewTestBox(name string, width, height float32) *TestBox {
	tb := &TestBox{Size: math32.Vec2(width, height)}
	tb.Name = name
	tb.InitNode(tb)
	return tb
}

func (tb *TestBox) Resize(ctx *TreeContext, space math32.Vector2) (math32.Vector2, error) {
	tb.Resizes++
	return tb.Size.Add(tb.Pad.Size()), nil
}

func (tb *TestBox) Draw(ctx *TreeContext, outer, inner math32.Box2) {
	tb.Draws++
	if tb.Color.A != 0 {
		if cv, ok := UseAs[CanvasIO](ctx, CanvasCap); ok {
			cv.DrawRectangle(inner, tb.Color)
		}
	}
}

// TestButton is a focusable [TestBox] that counts press actions.
type TestButton struct {
	TestBox

	// Presses counts received press actions.
	Presses int

	// OnPress, if set, runs on each press action.
	OnPress func()
}

// NewTestButton returns a new focusable [TestButton] with the given
// name and minimum size.
func NewTestButton(name string, width, height float32) *TestButton {
	bt := &TestButton{}
	bt.Name = name
	bt.Size = math32.Vec2(width, height)
	bt.Focusable = true
	bt.InitNode(bt)
	bt.OnAction(inputs.Press, func() bool {
		bt.Presses++
		if bt.OnPress != nil {
			bt.OnPress()
		}
		return true
	})
	return bt
}
