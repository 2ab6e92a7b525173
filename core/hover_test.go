// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftui/weft/core"
	"github.com/weftui/weft/events"
	"github.com/weftui/weft/headless"
	"github.com/weftui/weft/inputs"
	"github.com/weftui/weft/math32"
)

func TestMousePressOnButton(t *testing.T) {
	cb := 0
	bt := core.NewTestButton("One", 100, 100)
	bt.OnPress = func() { cb++ }
	sc, _ := newTestScene(bt, 100, 100)
	m := headless.NewMouse(sc)

	m.MoveTo(math32.Vec2(10, 10))
	m.Press(events.Left)
	require.NoError(t, sc.Draw())
	// before release, the press has not fired
	assert.Equal(t, 0, cb)
	assert.True(t, sc.CurrentFocusSpace().IsFocused(bt))

	m.Release(events.Left)
	require.NoError(t, sc.Draw())
	assert.Equal(t, 1, cb)

	require.NoError(t, sc.Draw())
	assert.Equal(t, 1, cb)
}

func TestPressAndReleaseSameFrame(t *testing.T) {
	bt := core.NewTestButton("bt", 100, 100)
	sc, _ := newTestScene(bt, 100, 100)
	m := headless.NewMouse(sc)

	m.MoveTo(math32.Vec2(50, 50))
	m.Click()
	require.NoError(t, sc.Draw())
	assert.Equal(t, 1, bt.Presses)
}

func TestHoverStabilityUnderDrag(t *testing.T) {
	a := core.NewTestButton("a", 50, 100)
	b := core.NewTestButton("b", 50, 100)
	root := core.NewRow(a, b)
	sc, _ := newTestScene(root, 100, 100)
	m := headless.NewMouse(sc)

	m.MoveTo(math32.Vec2(10, 50))
	m.Press(events.Left)
	require.NoError(t, sc.Draw())
	assert.True(t, sc.Hover.IsHovered(a))

	// dragging away does not change the armed target
	m.MoveTo(math32.Vec2(80, 50))
	require.NoError(t, sc.Draw())
	assert.True(t, sc.Hover.IsHovered(a))

	// releasing away from the target cancels the press
	m.Release(events.Left)
	require.NoError(t, sc.Draw())
	assert.Equal(t, 0, a.Presses)
	assert.Equal(t, 0, b.Presses)
	require.NoError(t, sc.Draw())
	assert.False(t, sc.Hover.IsHovered(a))
}

func TestPressOnNonFocusableClearsFocus(t *testing.T) {
	bt := core.NewTestButton("bt", 50, 100)
	box := core.NewTestBox("box", 50, 100)
	root := core.NewRow(bt, box)
	sc, _ := newTestScene(root, 100, 100)
	m := headless.NewMouse(sc)

	sc.CurrentFocusSpace().Focus(bt)
	m.MoveTo(math32.Vec2(80, 50))
	m.Click()
	require.NoError(t, sc.Draw())
	assert.Nil(t, sc.CurrentFocusSpace().CurrentFocus())
}

func TestDisabledBlocksHoverButNoCallbacks(t *testing.T) {
	bt := core.NewTestButton("bt", 100, 100)
	bt.Disabled = true
	sc, _ := newTestScene(bt, 100, 100)
	m := headless.NewMouse(sc)

	m.MoveTo(math32.Vec2(50, 50))
	require.NoError(t, sc.Draw())
	// disabled nodes still hit test
	assert.True(t, sc.Hover.IsHovered(bt))

	m.Click()
	require.NoError(t, sc.Draw())
	assert.Equal(t, 0, bt.Presses)
}

func TestPointerStableID(t *testing.T) {
	box := core.NewTestBox("box", 100, 100)
	sc, _ := newTestScene(box, 100, 100)

	p1 := sc.Hover.LoadPointer(0, 0)
	p2 := sc.Hover.LoadPointer(0, 0)
	assert.Equal(t, p1.ID, p2.ID)
	assert.Positive(t, p1.ID)

	p3 := sc.Hover.LoadPointer(0, 1)
	assert.NotEqual(t, p1.ID, p3.ID)
}

func TestHitBranchAbsorbs(t *testing.T) {
	inner := core.NewTestButton("inner", 100, 100)
	abs := &hitBranchNode{}
	abs.InitNode(abs)
	abs.AddChild(inner)
	sc, _ := newTestScene(abs, 100, 100)
	m := headless.NewMouse(sc)

	m.MoveTo(math32.Vec2(50, 50))
	require.NoError(t, sc.Draw())
	assert.True(t, sc.Hover.IsHovered(abs))
	assert.False(t, sc.Hover.IsHovered(inner))
}

func TestMissBranchTransparent(t *testing.T) {
	inner := core.NewTestButton("inner", 100, 100)
	mb := &missBranchNode{}
	mb.InitNode(mb)
	mb.AddChild(inner)
	under := core.NewTestButton("under", 100, 100)
	root := &stackNode{}
	root.InitNode(root)
	root.AddChild(under)
	root.AddChild(mb)
	sc, _ := newTestScene(root, 100, 100)
	m := headless.NewMouse(sc)

	m.MoveTo(math32.Vec2(50, 50))
	require.NoError(t, sc.Draw())
	// the miss-branch subtree is transparent; the node underneath wins
	assert.False(t, sc.Hover.IsHovered(mb))
	assert.False(t, sc.Hover.IsHovered(inner))
	assert.True(t, sc.Hover.IsHovered(under))
}

func TestWhileHeldFiresEachFrame(t *testing.T) {
	heldAction := inputs.RegisterAction("test-held")
	bt := core.NewTestButton("bt", 100, 100)
	fired := 0
	bt.OnActionHeld(heldAction, func() bool {
		fired++
		return true
	})
	sc, _ := newTestScene(bt, 100, 100)
	sc.Dispatcher.Map().BindHeld(heldAction, inputs.NewStroke(inputs.MouseItem(events.Left)))
	m := headless.NewMouse(sc)

	m.MoveTo(math32.Vec2(50, 50))
	m.Press(events.Left)
	require.NoError(t, sc.Draw())
	assert.Equal(t, 1, fired)
	require.NoError(t, sc.Draw())
	assert.Equal(t, 2, fired)

	// while held, the action only fires over the armed target
	m.MoveTo(math32.Vec2(500, 500))
	require.NoError(t, sc.Draw())
	assert.Equal(t, 2, fired)

	m.MoveTo(math32.Vec2(50, 50))
	m.Release(events.Left)
	require.NoError(t, sc.Draw())
	require.NoError(t, sc.Draw())
	assert.Equal(t, 3, fired)
}

// hitBranchNode absorbs all hits in its subtree.
type hitBranchNode struct {
	core.Frame
}

func (hb *hitBranchNode) InBounds(outer, inner math32.Box2, pt math32.Vector2) core.HitFilter {
	if outer.ContainsPoint(pt) {
		return core.HitBranch
	}
	return core.Miss
}

// missBranchNode makes itself and all descendants transparent.
type missBranchNode struct {
	core.Frame
}

func (mb *missBranchNode) InBounds(outer, inner math32.Box2, pt math32.Vector2) core.HitFilter {
	return core.MissBranch
}

// stackNode draws all children on top of each other in the full box.
type stackNode struct {
	core.NodeBase
}

func (sn *stackNode) Resize(ctx *core.TreeContext, space math32.Vector2) (math32.Vector2, error) {
	var ms math32.Vector2
	for _, k := range sn.Children() {
		km, err := ctx.ResizeChild(k, space)
		if err != nil {
			return math32.Vector2{}, err
		}
		ms.SetMax(km)
	}
	return ms, nil
}

func (sn *stackNode) Draw(ctx *core.TreeContext, outer, inner math32.Box2) {
	for _, k := range sn.Children() {
		ctx.DrawChild(k, inner)
	}
}

