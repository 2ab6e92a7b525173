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
	"github.com/weftui/weft/events/key"
)

func TestFocusUniqueness(t *testing.T) {
	a := core.NewTestButton("a", 10, 10)
	b := core.NewTestButton("b", 10, 10)
	root := core.NewColumn(a, b)
	sc, _ := newTestScene(root, 100, 100)

	fs := sc.CurrentFocusSpace()
	assert.Nil(t, fs.CurrentFocus())

	fs.Focus(a)
	assert.True(t, fs.IsFocused(a))
	fs.Focus(b)
	assert.True(t, fs.IsFocused(b))
	assert.False(t, fs.IsFocused(a))

	fs.ClearFocus()
	assert.Nil(t, fs.CurrentFocus())
}

func TestFocusRejectsUnfocusable(t *testing.T) {
	a := core.NewTestButton("a", 10, 10)
	box := core.NewTestBox("box", 10, 10)
	dis := core.NewTestButton("dis", 10, 10)
	dis.Disabled = true
	root := core.NewColumn(a, box, dis)
	sc, _ := newTestScene(root, 100, 100)

	fs := sc.CurrentFocusSpace()
	fs.Focus(a)
	fs.Focus(box) // not focusable: no-op
	assert.True(t, fs.IsFocused(a))
	fs.Focus(dis) // disabled: no-op
	assert.True(t, fs.IsFocused(a))
}

func TestTabNavigationWithDisabled(t *testing.T) {
	a := core.NewTestButton("a", 10, 10)
	b := core.NewTestButton("b", 10, 10)
	b.Disabled = true
	c := core.NewTestButton("c", 10, 10)
	root := core.NewColumn(a, b, c)
	sc, _ := newTestScene(root, 100, 100)

	fs := sc.CurrentFocusSpace()
	fs.Focus(a)

	fs.FocusNext()
	assert.True(t, fs.IsFocused(c), "disabled b is skipped")

	fs.FocusPrevious()
	assert.True(t, fs.IsFocused(a))

	// wrapping
	fs.FocusPrevious()
	assert.True(t, fs.IsFocused(c))
	fs.FocusNext()
	assert.True(t, fs.IsFocused(a))
}

func TestFocusNextFromNothing(t *testing.T) {
	a := core.NewTestButton("a", 10, 10)
	b := core.NewTestButton("b", 10, 10)
	root := core.NewColumn(a, b)
	sc, _ := newTestScene(root, 100, 100)

	fs := sc.CurrentFocusSpace()
	fs.FocusNext()
	assert.True(t, fs.IsFocused(a))

	fs.ClearFocus()
	fs.FocusPrevious()
	assert.True(t, fs.IsFocused(b))
}

func TestDirectionalFocus(t *testing.T) {
	a := core.NewTestButton("a", 20, 20)
	b := core.NewTestButton("b", 20, 20)
	c := core.NewTestButton("c", 20, 20)
	row := core.NewRow(a, b, c)
	sc, _ := newTestScene(row, 100, 100)
	require.NoError(t, sc.Draw())

	fs := sc.CurrentFocusSpace()
	fs.Focus(a)
	got := fs.FocusRight(a)
	assert.Equal(t, core.Node(b), got)
	assert.True(t, fs.IsFocused(b))

	got = fs.FocusRight(b)
	assert.Equal(t, core.Node(c), got)

	// no candidate: the reference is returned and focus is unchanged
	got = fs.FocusRight(c)
	assert.Equal(t, core.Node(c), got)
	assert.True(t, fs.IsFocused(c))

	got = fs.FocusLeft(c)
	assert.Equal(t, core.Node(b), got)

	got = fs.FocusBelow(b)
	assert.Equal(t, core.Node(b), got)
}

func TestTabNavigationViaKeyboard(t *testing.T) {
	a := core.NewTestButton("a", 20, 20)
	b := core.NewTestButton("b", 20, 20)
	root := core.NewRow(a, b)
	sc, _ := newTestScene(root, 100, 100)
	kb := headless.NewKeyboard(sc)

	kb.Tap(key.CodeTab)
	require.NoError(t, sc.Draw())
	assert.True(t, sc.CurrentFocusSpace().IsFocused(a))

	kb.Tap(key.CodeTab)
	require.NoError(t, sc.Draw())
	assert.True(t, sc.CurrentFocusSpace().IsFocused(b))

	kb.Press(key.CodeLeftShift)
	kb.Tap(key.CodeTab)
	require.NoError(t, sc.Draw())
	kb.Release(key.CodeLeftShift)
	assert.True(t, sc.CurrentFocusSpace().IsFocused(a))
}

func TestTypeTextReadText(t *testing.T) {
	box := core.NewTestButton("box", 10, 10)
	sc, _ := newTestScene(box, 100, 100)
	kb := headless.NewKeyboard(sc)

	kb.Type("hello world")
	// text is queued during the frame's drain and readable after
	fs := sc.CurrentFocusSpace()
	require.NoError(t, sc.Draw())

	buf := make([]rune, 5)
	offset := 0
	n := fs.ReadText(buf, &offset)
	assert.Equal(t, 5, n)
	assert.Equal(t, "hello", string(buf[:n]))
	assert.Equal(t, 5, offset)

	// chunked continuation
	n = fs.ReadText(buf, &offset)
	assert.Equal(t, " worl", string(buf[:n]))
	n = fs.ReadText(buf, &offset)
	assert.Equal(t, "d", string(buf[:n]))
	n = fs.ReadText(buf, &offset)
	assert.Equal(t, 0, n)

	// same-frame re-reads from the same offset return the same data
	offset = 0
	n = fs.ReadText(buf, &offset)
	assert.Equal(t, "hello", string(buf[:n]))

	// the queue is dropped at the next frame
	require.NoError(t, sc.Draw())
	offset = 0
	assert.Equal(t, 0, fs.ReadText(buf, &offset))
}

func TestFocusImplFallback(t *testing.T) {
	a := core.NewTestButton("a", 10, 10)
	ran := 0
	a.FocusImpl = func() { ran++ }
	sc, _ := newTestScene(a, 100, 100)
	sc.CurrentFocusSpace().Focus(a)

	require.NoError(t, sc.Draw())
	assert.Equal(t, 1, ran)

	// a consumed keyboard action suppresses the fallback for the frame
	kbd := headless.NewKeyboard(sc)
	kbd.Tap(key.CodeReturnEnter)
	require.NoError(t, sc.Draw())
	assert.Equal(t, 1, ran)
	assert.Equal(t, 1, a.Presses)
}
