// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftui/weft/core"
	"github.com/weftui/weft/headless"
	"github.com/weftui/weft/math32"
)

func TestScrollIntoView(t *testing.T) {
	var boxes []*core.TestBox
	var kids []core.Node
	for i := 0; i < 3; i++ {
		box := core.NewTestBox("box", 100, 100)
		boxes = append(boxes, box)
		filler := core.NewTestBox("filler", 100, 1000)
		kids = append(kids, box, filler)
	}
	sf := core.NewScrollFrame(core.Column, kids...)
	sc, _ := newTestScene(sf, 500, 500)
	require.NoError(t, sc.Draw())
	assert.Equal(t, math32.Vec2(100, 3300), sf.ContentSize())

	// box index 2 (the second 100-tall box) ends at 1200; aligning its
	// bottom to the 500-tall view gives offset 100 + 1000 - 500 + 100
	sf.ScrollIntoView(sc, kids[2])
	require.NoError(t, sc.Draw())
	assert.Equal(t, float32(700), sf.Offset.Y)

	// after the adjusting draw, the box is visible at the bottom
	require.NoError(t, sc.Draw())
	assert.Equal(t, float32(500), boxes[1].LastOuter().Max.Y)
}

func TestScrollSaturation(t *testing.T) {
	content := core.NewTestBox("content", 100, 1000)
	innerScroll := core.NewScrollFrame(core.Column, content)
	innerScroll.View = math32.Vec2(100, 300)
	outerContent := core.NewTestBox("outer-content", 100, 2000)
	outerScroll := core.NewScrollFrame(core.Column, innerScroll, outerContent)
	sc, _ := newTestScene(outerScroll, 100, 500)
	m := headless.NewMouse(sc)
	require.NoError(t, sc.Draw())

	// scroll the inner frame to its end
	m.MoveTo(math32.Vec2(50, 100))
	m.Scroll(math32.Vec2(0, 10000))
	require.NoError(t, sc.Draw())
	innerMax := innerScroll.Offset.Y
	assert.Equal(t, float32(700), innerMax)
	outerAt := outerScroll.Offset.Y

	// a further non-held scroll leaves the saturated inner frame
	// unchanged and propagates to the outer frame
	m.Scroll(math32.Vec2(0, 50))
	require.NoError(t, sc.Draw())
	assert.Equal(t, innerMax, innerScroll.Offset.Y)
	assert.Equal(t, outerAt+50, outerScroll.Offset.Y)
}

func TestHeldScrollDoesNotPropagate(t *testing.T) {
	content := core.NewTestBox("content", 100, 600)
	innerScroll := core.NewScrollFrame(core.Column, content)
	innerScroll.View = math32.Vec2(100, 300)
	outerContent := core.NewTestBox("outer-content", 100, 2000)
	outerScroll := core.NewScrollFrame(core.Column, innerScroll, outerContent)
	sc, _ := newTestScene(outerScroll, 100, 500)
	m := headless.NewMouse(sc)
	require.NoError(t, sc.Draw())

	m.MoveTo(math32.Vec2(50, 100))
	m.ScrollHeld(math32.Vec2(0, 10000))
	require.NoError(t, sc.Draw())
	innerMax := innerScroll.Offset.Y
	assert.Equal(t, float32(300), innerMax)
	outerAt := outerScroll.Offset.Y

	// a held scroll stays locked on its scrollable even when saturated
	m.ScrollHeld(math32.Vec2(0, 50))
	require.NoError(t, sc.Draw())
	assert.Equal(t, innerMax, innerScroll.Offset.Y)
	assert.Equal(t, outerAt, outerScroll.Offset.Y)
}

func TestScrollClamped(t *testing.T) {
	content := core.NewTestBox("content", 100, 1000)
	sf := core.NewScrollFrame(core.Column, content)
	sc, _ := newTestScene(sf, 100, 500)
	m := headless.NewMouse(sc)
	require.NoError(t, sc.Draw())

	m.MoveTo(math32.Vec2(50, 100))
	m.Scroll(math32.Vec2(0, -50))
	require.NoError(t, sc.Draw())
	// scrolling before the start leaves the offset at zero
	assert.Equal(t, float32(0), sf.Offset.Y)

	m.Scroll(math32.Vec2(0, 9999))
	require.NoError(t, sc.Draw())
	assert.Equal(t, float32(500), sf.Offset.Y)
}
