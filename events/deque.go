// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"fmt"
	"sync"
)

// TraceEventCompression can be set to true to see when events
// are being compressed to eliminate laggy behavior.
var TraceEventCompression = false

// Deque is an infinitely buffered double-ended queue of events.
// Device back-ends may push events from other goroutines; the main
// thread drains the queue at the start of each frame.
// If an event is not unique and the last event in the queue is
// compressible with it, the new one replaces the last one, integrating
// scroll deltas and spanning move positions. This manages the common
// situation where event processing is slower than event generation.
// The zero value is usable, but a Deque must not be copied.
type Deque struct {
	back  []*Event // FIFO
	front []*Event // LIFO

	mu   sync.Mutex
	cond sync.Cond // cond.L is lazily initialized to &mu
}

func (q *Deque) lockAndInit() {
	q.mu.Lock()
	if q.cond.L == nil {
		q.cond.L = &q.mu
	}
}

// Send adds an event to the end of the deque, compressing it into the
// last queued event when possible. Events are returned by [Deque.NextEvent]
// and [Deque.PollEvent] in FIFO order.
func (q *Deque) Send(ev *Event) {
	q.lockAndInit()
	defer q.mu.Unlock()

	n := len(q.back)
	if !ev.IsUnique() && n > 0 {
		lev := q.back[n-1]
		if ev.IsSame(lev) {
			switch ev.Typ {
			case PointerMove:
				ev.Prev = lev.Prev
			case Scroll:
				ev.Delta = ev.Delta.Add(lev.Delta)
			}
			q.back[n-1] = ev
			q.cond.Signal()
			if TraceEventCompression {
				fmt.Println("compressed back:", ev)
			}
			return
		}
	}
	q.back = append(q.back, ev)
	q.cond.Signal()
}

// SendFirst adds an event to the start of the deque, to be returned
// ahead of everything already queued.
func (q *Deque) SendFirst(ev *Event) {
	q.lockAndInit()
	defer q.mu.Unlock()
	q.front = append(q.front, ev)
	q.cond.Signal()
}

// NextEvent returns the next event in the deque.
// It blocks until such an event has been sent.
func (q *Deque) NextEvent() *Event {
	q.lockAndInit()
	defer q.mu.Unlock()

	for {
		if ev := q.pop(); ev != nil {
			return ev
		}
		q.cond.Wait()
	}
}

// PollEvent returns the next event in the deque if one is available,
// without blocking.
func (q *Deque) PollEvent() (*Event, bool) {
	q.lockAndInit()
	defer q.mu.Unlock()
	ev := q.pop()
	return ev, ev != nil
}

func (q *Deque) pop() *Event {
	if n := len(q.front); n > 0 {
		ev := q.front[n-1]
		q.front[n-1] = nil
		q.front = q.front[:n-1]
		return ev
	}
	if n := len(q.back); n > 0 {
		ev := q.back[0]
		q.back[0] = nil
		q.back = q.back[1:]
		return ev
	}
	return nil
}
