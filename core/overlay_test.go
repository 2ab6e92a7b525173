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
	"github.com/weftui/weft/events/key"
	"github.com/weftui/weft/headless"
	"github.com/weftui/weft/math32"
	"github.com/weftui/weft/styles"
)

func originAnchor(viewport math32.Box2) math32.Box2 {
	return math32.B2(0, 0, 0, 0)
}

func TestPopupDismissOnOutsidePress(t *testing.T) {
	base := core.NewTestButton("base", 100, 100)
	sc, _ := newTestScene(base, 100, 100)
	sc.CurrentFocusSpace().Focus(base)

	content := core.NewTestButton("popup", 20, 20)
	popup := sc.Overlays().AddPopup(content, originAnchor)
	require.NoError(t, sc.Draw())
	assert.Positive(t, content.Draws)
	assert.True(t, sc.CurrentFocusSpace().IsFocused(content))
	assert.NotNil(t, popup)

	// press outside the popup's bounds
	m := headless.NewMouse(sc)
	m.MoveTo(math32.Vec2(90, 90))
	m.Press(events.Left)
	require.NoError(t, sc.Draw())
	require.NoError(t, sc.Draw())

	drawsAfter := content.Draws
	require.NoError(t, sc.Draw())
	assert.Equal(t, drawsAfter, content.Draws, "popup is no longer drawn")
	// focus returns to what was focused before the popup opened
	assert.True(t, sc.CurrentFocusSpace().IsFocused(base))
}

func TestPopupDismissOnCancel(t *testing.T) {
	base := core.NewTestButton("base", 100, 100)
	sc, _ := newTestScene(base, 100, 100)

	content := core.NewTestButton("popup", 20, 20)
	sc.Overlays().AddPopup(content, originAnchor)
	require.NoError(t, sc.Draw())
	require.NotNil(t, sc.Overlays().TopPopup())

	kb := headless.NewKeyboard(sc)
	kb.Tap(key.CodeEscape)
	require.NoError(t, sc.Draw())
	require.NoError(t, sc.Draw())
	assert.Nil(t, sc.Overlays().TopPopup())
}

func TestPopupDismissOnFocusLeaving(t *testing.T) {
	base := core.NewTestButton("base", 100, 100)
	sc, _ := newTestScene(base, 100, 100)

	content := core.NewTestButton("popup", 20, 20)
	sc.Overlays().AddPopup(content, originAnchor)
	require.NoError(t, sc.Draw())

	sc.CurrentFocusSpace().Focus(base)
	require.NoError(t, sc.Draw())
	assert.Nil(t, sc.Overlays().TopPopup())
}

func TestChildPopupChainsFocus(t *testing.T) {
	base := core.NewTestButton("base", 100, 100)
	sc, _ := newTestScene(base, 100, 100)
	sc.CurrentFocusSpace().Focus(base)

	parentContent := core.NewTestButton("parent", 20, 20)
	parent := sc.Overlays().AddPopup(parentContent, originAnchor)
	require.NoError(t, sc.Draw())
	assert.True(t, sc.CurrentFocusSpace().IsFocused(parentContent))

	childContent := core.NewTestButton("child", 20, 20)
	sc.Overlays().AddChildPopup(parent, childContent, originAnchor)
	require.NoError(t, sc.Draw())
	// the parent popup stays alive while focus moves to the child
	assert.Positive(t, parentContent.Draws)
	assert.True(t, sc.CurrentFocusSpace().IsFocused(childContent))

	// dismissing the child returns focus to the parent popup
	kb := headless.NewKeyboard(sc)
	kb.Tap(key.CodeEscape)
	require.NoError(t, sc.Draw())
	require.NoError(t, sc.Draw())
	assert.True(t, sc.CurrentFocusSpace().IsFocused(parentContent))
	assert.NotNil(t, sc.Overlays().TopPopup())
}

func TestPopupPlacement(t *testing.T) {
	viewport := math32.B2(0, 0, 200, 200)
	anchor := math32.B2(50, 50, 100, 100)
	size := math32.Vec2(20, 10)

	box := core.PlacePopupFor(anchor, size, viewport, styles.AlignBoth(styles.Start))
	assert.Equal(t, math32.B2(30, 40, 50, 50), box)

	box = core.PlacePopupFor(anchor, size, viewport, styles.AlignBoth(styles.End))
	assert.Equal(t, math32.B2(100, 100, 120, 110), box)

	box = core.PlacePopupFor(anchor, size, viewport, styles.AlignBoth(styles.Center))
	assert.Equal(t, math32.B2(65, 70, 85, 80), box)

	// fill picks the side with more free space, preferring the end on ties
	box = core.PlacePopupFor(anchor, size, viewport, styles.AlignBoth(styles.Fill))
	assert.Equal(t, math32.Vec2(100, 100), box.Min)

	// a popup overflowing the viewport slides back inside
	edgeAnchor := math32.B2(190, 190, 200, 200)
	box = core.PlacePopupFor(edgeAnchor, size, viewport, styles.AlignBoth(styles.End))
	assert.Equal(t, math32.B2(180, 190, 200, 200), box)
}
