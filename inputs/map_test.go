// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inputs

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftui/weft/events"
	"github.com/weftui/weft/events/key"
	"github.com/weftui/weft/math32"
)

var (
	testActionA = RegisterAction("test-a")
	testActionB = RegisterAction("test-b")
)

// assertSorted checks the descending-modifier-length layer invariant.
func assertSorted(t *testing.T, m *Map) {
	t.Helper()
	for i := 1; i < len(m.Layers); i++ {
		assert.GreaterOrEqual(t, len(m.Layers[i-1].Modifiers), len(m.Layers[i].Modifiers))
	}
}

func TestRegisterAction(t *testing.T) {
	a := RegisterAction("register-test")
	assert.Equal(t, a, RegisterAction("register-test"))
	assert.Equal(t, "register-test", a.Name())
	assert.Equal(t, a, ActionByName("register-test"))
	assert.Equal(t, ActionID(0), ActionByName("never-registered"))
}

func TestStroke(t *testing.T) {
	st := Keys(key.CodeLeftControl, key.CodeLeftShift, key.CodeA)
	assert.Equal(t, KeyItem(key.CodeA), st.Trigger())
	assert.True(t, st.Modifiers().Equal(Keys(key.CodeLeftControl, key.CodeLeftShift)))
	assert.False(t, st.Equal(Keys(key.CodeA)))
	assert.Equal(t, "LeftControl+LeftShift+A", st.String())

	assert.Panics(t, func() { Stroke{}.Trigger() })
}

func TestBindEmptyStrokePanics(t *testing.T) {
	m := NewMap()
	assert.Panics(t, func() { m.Bind(testActionA, Stroke{}) })
	assert.Panics(t, func() { m.BindReplace(testActionA, Stroke{}) })
}

func TestLayerOrdering(t *testing.T) {
	m := NewMap()
	m.Bind(testActionA, Keys(key.CodeA))
	m.Bind(testActionA, Keys(key.CodeLeftControl, key.CodeA))
	m.Bind(testActionA, Keys(key.CodeLeftControl, key.CodeLeftShift, key.CodeA))
	m.Bind(testActionB, Keys(key.CodeLeftShift, key.CodeB))
	assertSorted(t, m)
	assert.Len(t, m.Layers, 4)
	assert.Len(t, m.Layers[0].Modifiers, 2)

	// ties keep insertion order
	assert.True(t, m.Layers[1].Modifiers.Equal(Keys(key.CodeLeftControl)))
	assert.True(t, m.Layers[2].Modifiers.Equal(Keys(key.CodeLeftShift)))

	m.ClearBound(testActionA)
	assertSorted(t, m)
	assert.Len(t, m.Layers, 1)
	assert.True(t, m.Layers[0].Modifiers.Equal(Keys(key.CodeLeftShift)))
}

func TestBindReplace(t *testing.T) {
	m := NewMap()
	m.Bind(testActionA, Keys(key.CodeA))
	m.BindReplace(testActionB, Keys(key.CodeA))
	assert.Len(t, m.Layers, 1)
	require.Len(t, m.Layers[0].Bindings, 1)
	assert.Equal(t, testActionB, m.Layers[0].Bindings[0].Action)

	// other triggers in the layer are untouched
	m.Bind(testActionA, Keys(key.CodeB))
	m.BindReplace(testActionA, Keys(key.CodeA))
	assert.Len(t, m.Layers[0].Bindings, 2)
}

func TestStrokesOf(t *testing.T) {
	m := NewMap()
	m.Bind(testActionA, Keys(key.CodeA))
	m.Bind(testActionA, Keys(key.CodeLeftControl, key.CodeB))
	strokes := m.StrokesOf(testActionA)
	assert.Len(t, strokes, 2)
}

func TestEvaluateShadowing(t *testing.T) {
	m := NewMap()
	m.Bind(testActionA, Keys(key.CodeSpacebar))
	m.Bind(testActionB, Keys(key.CodeLeftControl, key.CodeSpacebar))

	st := NewState()
	st.Process(events.NewKey(events.KeyDown, key.CodeLeftControl))
	st.Process(events.NewKey(events.KeyDown, key.CodeSpacebar))

	// the more specific layer wins and shadows the base layer
	active, held := m.Evaluate(st)
	require.Len(t, active, 1)
	assert.Equal(t, testActionB, active[0].Binding.Action)
	require.Len(t, held, 1)
	assert.True(t, held[0].Held)

	st.EndFrame()
	st.Process(events.NewKey(events.KeyUp, key.CodeLeftControl))
	active, held = m.Evaluate(st)
	assert.Empty(t, active)
	require.Len(t, held, 1)
	assert.Equal(t, testActionA, held[0].Binding.Action)
}

func TestStateActivation(t *testing.T) {
	st := NewState()
	a := KeyItem(key.CodeA)

	st.Process(events.NewKey(events.KeyDown, key.CodeA))
	assert.True(t, st.IsHeld(a))
	assert.True(t, st.IsActive(a))

	st.EndFrame()
	assert.True(t, st.IsHeld(a))
	assert.False(t, st.IsActive(a))

	// key repeat does not re-activate
	st.Process(events.NewKey(events.KeyHold, key.CodeA))
	assert.False(t, st.IsActive(a))

	st.Process(events.NewKey(events.KeyUp, key.CodeA))
	assert.False(t, st.IsHeld(a))
}

func TestMouseLinger(t *testing.T) {
	st := NewState()
	left := MouseItem(events.Left)

	st.Process(events.NewMouse(events.MouseDown, events.Left, math32.Vec2(5, 5)))
	assert.True(t, st.IsHeld(left))
	// mouse activates on release, not press
	assert.False(t, st.IsActive(left))

	st.EndFrame()
	st.Process(events.NewMouse(events.MouseUp, events.Left, math32.Vec2(5, 5)))
	// a released mouse trigger stays held for the rest of the frame
	assert.True(t, st.IsHeld(left))
	assert.False(t, st.IsDown(left))
	assert.True(t, st.IsActive(left))

	st.EndFrame()
	assert.False(t, st.IsHeld(left))
}

func TestGamepadActivation(t *testing.T) {
	st := NewState()
	cross := GamepadItem(events.GamepadCross)
	st.Process(events.NewGamepad(events.GamepadDown, events.GamepadCross))
	assert.True(t, st.IsActive(cross))
	assert.True(t, st.IsHeld(cross))
}

func TestMapSaveOpenRoundTrip(t *testing.T) {
	m := NewMap()
	m.Bind(testActionA, Keys(key.CodeLeftControl, key.CodeA))
	m.Bind(testActionB, NewStroke(MouseItem(events.Left)))
	m.BindHeld(testActionB, NewStroke(GamepadItem(events.GamepadCross)))

	var buf bytes.Buffer
	require.NoError(t, m.Save(&buf))

	got := NewMap()
	require.NoError(t, got.Open(&buf))
	assertSorted(t, got)
	assert.Len(t, got.StrokesOf(testActionA), 1)
	assert.Len(t, got.StrokesOf(testActionB), 2)

	st := NewState()
	st.Process(events.NewKey(events.KeyDown, key.CodeLeftControl))
	st.Process(events.NewKey(events.KeyDown, key.CodeA))
	active, _ := got.Evaluate(st)
	require.Len(t, active, 1)
	assert.Equal(t, testActionA, active[0].Binding.Action)
}

func TestDefaultMap(t *testing.T) {
	m := DefaultMap()
	assertSorted(t, m)
	assert.NotEmpty(t, m.StrokesOf(Press))
	assert.NotEmpty(t, m.StrokesOf(Cancel))
	assert.NotEmpty(t, m.StrokesOf(FocusNext))
	assert.NotEmpty(t, m.StrokesOf(FocusPrevious))
}
