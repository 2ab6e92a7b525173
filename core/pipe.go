// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"reflect"
)

// PipeState is the lifecycle state of a [Pipe].
type PipeState int32

const (
	// Pending means the pipe has not been resolved yet.
	Pending PipeState = iota

	// Resolved means a value is available but continuations have not
	// run yet.
	Resolved

	// Consumed means the value has been passed to the continuation.
	Consumed
)

// Pipe is a one-shot continuation bound to the main thread and the
// draw loop: resuming a resolved pipe happens between frames, never
// during a node's draw. Abandoning a chain is safe; there are no
// background goroutines.
type Pipe struct {
	state PipeState
	value any

	fn   func(v any) any
	next *Pipe
}

// NewPipe returns a new pending pipe.
func NewPipe() *Pipe {
	return &Pipe{}
}

// ResolvedPipe returns a pipe already resolved with the given value.
func ResolvedPipe(v any) *Pipe {
	return &Pipe{state: Resolved, value: v}
}

// State returns the pipe's lifecycle state.
func (p *Pipe) State() PipeState {
	return p.state
}

// Value returns the resolved value, or nil while pending.
func (p *Pipe) Value() any {
	return p.value
}

// Resolve supplies the pipe's value. Resolving a non-pending pipe
// is a no-op.
func (p *Pipe) Resolve(v any) {
	if p.state != Pending {
		return
	}
	p.value = v
	p.state = Resolved
}

// Then returns a new pipe resolved with fn's result after this pipe's
// value has been consumed. fn runs between frames.
func (p *Pipe) Then(fn func(v any) any) *Pipe {
	next := &Pipe{}
	p.fn = fn
	p.next = next
	return next
}

// ThenAssertEquals returns a pipe that checks the resolved value
// against want, for test chains. A mismatch panics, crashing the frame
// loop that resumes it.
func (p *Pipe) ThenAssertEquals(want any) *Pipe {
	return p.Then(func(v any) any {
		if !reflect.DeepEqual(v, want) {
			panic(fmt.Sprintf("core: pipe value %v, expected %v", v, want))
		}
		return v
	})
}

// advance runs the continuation if the pipe is resolved, returning
// whether any progress was made.
func (p *Pipe) advance() bool {
	if p.state != Resolved {
		return false
	}
	p.state = Consumed
	if p.fn != nil {
		out := p.fn(p.value)
		if p.next != nil {
			p.next.Resolve(out)
		}
	} else if p.next != nil {
		p.next.Resolve(p.value)
	}
	return true
}

// advanceChain advances every resolved pipe in the chain starting at
// this pipe, returning whether any progress was made.
func (p *Pipe) advanceChain() bool {
	prog := false
	for q := p; q != nil; q = q.next {
		if q.advance() {
			prog = true
		}
	}
	return prog
}

// done returns whether the chain starting at this pipe has fully run.
func (p *Pipe) done() bool {
	if p.state != Consumed {
		return false
	}
	if p.next != nil {
		return p.next.done()
	}
	return true
}

// Join returns a pipe resolved with the values of all the given pipes,
// in order, once every one of them has resolved.
func Join(pipes ...*Pipe) *Pipe {
	out := NewPipe()
	n := len(pipes)
	if n == 0 {
		out.Resolve([]any{})
		return out
	}
	values := make([]any, n)
	remaining := n
	for i, p := range pipes {
		i := i
		p.Then(func(v any) any {
			values[i] = v
			remaining--
			if remaining == 0 {
				out.Resolve(values)
			}
			return v
		})
	}
	return out
}

// RunWhileDrawing alternates drawing frames on the given scene with
// pipe resumption until the chain starting at this pipe has fully run,
// or the frame budget is exhausted, in which case an error is returned.
func (p *Pipe) RunWhileDrawing(sc *Scene, maxFrames int) error {
	for i := 0; i < maxFrames; i++ {
		if err := sc.Draw(); err != nil {
			return err
		}
		p.advanceChain()
		if p.done() {
			return nil
		}
	}
	if p.done() {
		return nil
	}
	return fmt.Errorf("core: pipe not consumed after %d frames", maxFrames)
}
