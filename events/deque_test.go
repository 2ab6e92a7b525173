// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/weftui/weft/events/key"
	"github.com/weftui/weft/math32"
)

func drain(q *Deque) []*Event {
	var evs []*Event
	for {
		ev, ok := q.PollEvent()
		if !ok {
			return evs
		}
		evs = append(evs, ev)
	}
}

func TestDequeFIFO(t *testing.T) {
	q := &Deque{}
	q.Send(NewKey(KeyDown, key.CodeA))
	q.Send(NewKey(KeyUp, key.CodeA))
	evs := drain(q)
	assert.Len(t, evs, 2)
	assert.Equal(t, KeyDown, evs[0].Type())
	assert.Equal(t, KeyUp, evs[1].Type())
}

func TestDequeUniqueNotCompressed(t *testing.T) {
	q := &Deque{}
	q.Send(NewKey(KeyDown, key.CodeA))
	q.Send(NewKey(KeyDown, key.CodeA))
	assert.Len(t, drain(q), 2)
}

func TestDequeMoveCompression(t *testing.T) {
	q := &Deque{}
	q.Send(NewPointerMove(0, 0, math32.Vec2(10, 10), math32.Vec2(0, 0)))
	q.Send(NewPointerMove(0, 0, math32.Vec2(20, 20), math32.Vec2(10, 10)))
	evs := drain(q)
	assert.Len(t, evs, 1)
	assert.Equal(t, math32.Vec2(20, 20), evs[0].Pos)
	// previous position spans the compressed range
	assert.Equal(t, math32.Vec2(0, 0), evs[0].Prev)
}

func TestDequeScrollIntegration(t *testing.T) {
	q := &Deque{}
	q.Send(NewScroll(0, 0, math32.Vec2(5, 5), math32.Vec2(0, 10)))
	q.Send(NewScroll(0, 0, math32.Vec2(5, 5), math32.Vec2(0, 7)))
	evs := drain(q)
	assert.Len(t, evs, 1)
	assert.Equal(t, math32.Vec2(0, 17), evs[0].Delta)
}

func TestDequeDifferentPointersNotCompressed(t *testing.T) {
	q := &Deque{}
	q.Send(NewPointerMove(0, 0, math32.Vec2(1, 1), math32.Vec2(0, 0)))
	q.Send(NewPointerMove(0, 1, math32.Vec2(2, 2), math32.Vec2(0, 0)))
	assert.Len(t, drain(q), 2)
}

func TestDequeSendFirst(t *testing.T) {
	q := &Deque{}
	q.Send(NewKey(KeyDown, key.CodeA))
	q.SendFirst(NewKey(KeyDown, key.CodeB))
	evs := drain(q)
	assert.Equal(t, key.CodeB, evs[0].Code)
	assert.Equal(t, key.CodeA, evs[1].Code)
}

func TestListeners(t *testing.T) {
	var ls Listeners
	order := []int{}
	ls.Add(KeyDown, func(e *Event) { order = append(order, 1) })
	ls.Add(KeyDown, func(e *Event) { order = append(order, 2) })
	ls.Call(NewKey(KeyDown, key.CodeA))
	// last added is called first
	assert.Equal(t, []int{2, 1}, order)

	order = nil
	ls.Add(KeyDown, func(e *Event) {
		order = append(order, 3)
		e.SetHandled()
	})
	ls.Call(NewKey(KeyDown, key.CodeA))
	assert.Equal(t, []int{3}, order)
}
