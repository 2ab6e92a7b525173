// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/weftui/weft/math32"
)

// TreeAction is a transient observer attached to a frame's traversal.
// Hooks fire in traversal order; the default implementation in
// [TreeActionBase] stops the action after one frame. An action with a
// start node only observes that node's subtree.
//
// Hooks are expected not to panic; a panicking hook crashes the frame.
type TreeAction interface {

	// Started fires when the action is pulled into the frame's queue.
	Started()

	// BeforeTree fires at the top of each frame the action observes.
	BeforeTree(root Node, viewport math32.Box2)

	// BeforeResize fires before a node in scope is resized.
	BeforeResize(n Node, space math32.Vector2)

	// BeforeDraw fires before a node in scope draws.
	BeforeDraw(n Node, outer, inner math32.Box2)

	// AfterDraw fires after a node in scope has drawn.
	AfterDraw(n Node, outer, inner math32.Box2)

	// AfterTree fires after the tree has drawn. The default stops the
	// action, making actions single-frame unless overridden.
	AfterTree()

	// AfterInput fires after input dispatch, with whether any
	// keyboard-directed action was consumed this frame.
	AfterInput(keyboardHandled bool)

	// Stopped fires when the action is removed from the queue.
	Stopped()

	// Stop requests removal. Subsequent hooks for the current traversal
	// event still fire; the action is removed before the next event.
	Stop()

	// ToStop returns whether [TreeAction.Stop] has been requested.
	ToStop() bool

	// restarted clears stop state when an action is re-queued.
	restarted()
}

// TreeActionBase provides the default [TreeAction] behavior: no-op
// hooks, single-frame lifetime, and stop tracking. Embed it and
// override the hooks of interest.
type TreeActionBase struct {
	toStop bool
}

func (ta *TreeActionBase) Started()                                     {}
func (ta *TreeActionBase) BeforeTree(root Node, viewport math32.Box2)   {}
func (ta *TreeActionBase) BeforeResize(n Node, space math32.Vector2)    {}
func (ta *TreeActionBase) BeforeDraw(n Node, outer, inner math32.Box2)  {}
func (ta *TreeActionBase) AfterDraw(n Node, outer, inner math32.Box2)   {}
func (ta *TreeActionBase) AfterInput(keyboardHandled bool)              {}
func (ta *TreeActionBase) Stopped()                                     {}

// AfterTree stops the action by default, making it single-frame.
func (ta *TreeActionBase) AfterTree() {
	ta.Stop()
}

// Stop requests removal of the action from the queue at the next
// safe point.
func (ta *TreeActionBase) Stop() {
	ta.toStop = true
}

// ToStop returns whether the action has been asked to stop.
func (ta *TreeActionBase) ToStop() bool {
	return ta.toStop
}

func (ta *TreeActionBase) restarted() {
	ta.toStop = false
}

// queuedAction tracks one queued [TreeAction] with its scope state.
type queuedAction struct {
	action TreeAction

	// startNode scopes hooks to a subtree; nil means the whole tree.
	startNode Node

	// branchOwner is set for branch actions, which stop when the
	// owner's draw returns.
	branchOwner Node

	inScope bool
	started bool
}

func (qa *queuedAction) beforeResize(n Node, space math32.Vector2) {
	if qa.startNode == nil || qa.startNode.AsNode().IsAncestorOf(n) {
		qa.action.BeforeResize(n, space)
	}
}

func (qa *queuedAction) beforeDraw(n Node, outer, inner math32.Box2) {
	if qa.startNode == nil {
		qa.action.BeforeDraw(n, outer, inner)
		return
	}
	if n == qa.startNode {
		qa.inScope = true
	}
	if qa.inScope {
		qa.action.BeforeDraw(n, outer, inner)
	}
}

func (qa *queuedAction) afterDraw(n Node, outer, inner math32.Box2) {
	if qa.startNode == nil {
		qa.action.AfterDraw(n, outer, inner)
		return
	}
	if qa.inScope {
		qa.action.AfterDraw(n, outer, inner)
	}
	if n == qa.startNode {
		qa.inScope = false
	}
}

// StartAction queues the given action to observe the next frames,
// scoped to the given start node's subtree (nil for the whole tree).
// Re-queueing an action that has not stopped replaces the previous
// instance; it does not run twice concurrently.
func (sc *Scene) StartAction(act TreeAction, startNode Node) {
	act.restarted()
	for _, qa := range sc.pendingActions {
		if qa.action == act {
			qa.startNode = startNode
			qa.inScope = false
			return
		}
	}
	for _, qa := range sc.Context.actions {
		if qa.action == act {
			qa.startNode = startNode
			qa.inScope = false
			return
		}
	}
	sc.pendingActions = append(sc.pendingActions, &queuedAction{action: act, startNode: startNode})
}

// StartBranchAction starts the given action scoped to the given owner
// node, from within the owner's draw: hooks fire for the remainder of
// the owner's subtree traversal and the action stops when the owner's
// draw returns.
func (ctx *TreeContext) StartBranchAction(owner Node, act TreeAction) {
	act.restarted()
	qa := &queuedAction{action: act, startNode: owner, branchOwner: owner, inScope: true, started: true}
	act.Started()
	ctx.actions = append(ctx.actions, qa)
}

// pruneStopped removes actions whose stop was requested before the
// current traversal event, firing their Stopped hooks.
func (ctx *TreeContext) pruneStopped() {
	kept := ctx.actions[:0]
	for _, qa := range ctx.actions {
		if qa.action.ToStop() {
			qa.action.Stopped()
			continue
		}
		kept = append(kept, qa)
	}
	ctx.actions = kept
}
