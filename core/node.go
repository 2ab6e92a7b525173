// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package core implements the runtime of the toolkit: the node tree,
// its two-phase resize/draw traversal, capability lookup, tree actions,
// focus and hover arbitration, input-action dispatch, overlays, and the
// frame-bound promise pipe.
package core

import (
	"fmt"

	"github.com/weftui/weft/inputs"
	"github.com/weftui/weft/math32"
	"github.com/weftui/weft/styles"
)

// HitFilter is the four-valued opacity classification returned by a
// node's bounds test, controlling how pointer hit testing treats the
// node and its subtree.
type HitFilter int32

const (
	// Miss makes only this node transparent; descendants are still tested.
	Miss HitFilter = iota

	// Hit makes this node a hover candidate; a deeper hit descendant wins.
	Hit

	// HitBranch absorbs all hits in this node's subtree into this node.
	HitBranch

	// MissBranch makes this node and all descendants transparent.
	MissBranch
)

func (h HitFilter) String() string {
	switch h {
	case Miss:
		return "Miss"
	case Hit:
		return "Hit"
	case HitBranch:
		return "HitBranch"
	case MissBranch:
		return "MissBranch"
	}
	return fmt.Sprintf("HitFilter(%d)", int32(h))
}

// Node is the interface all tree nodes implement. Concrete nodes embed
// [NodeBase], which provides the tree plumbing and default behavior,
// and override the traversal methods they care about.
type Node interface {

	// AsNode returns the embedded [NodeBase].
	AsNode() *NodeBase

	// Resize computes the node's layout for the given suggested space
	// and returns its minimum size. It must record the minimum size via
	// [NodeBase.MinSize] (the scheduler does this with the returned
	// value) and must not retain the given space. Children are resized
	// first, via [TreeContext.ResizeChild]. Resize is where required
	// capabilities are looked up; a missing one fails the whole frame.
	Resize(ctx *TreeContext, space math32.Vector2) (math32.Vector2, error)

	// Draw paints the node within inner; outer includes the node's
	// padding. The current crop must be honored. The node may publish
	// capabilities before recursing into children via
	// [TreeContext.DrawChild].
	Draw(ctx *TreeContext, outer, inner math32.Box2)

	// InBounds classifies the given point against the node for hit
	// testing. outer and inner are the boxes the node was last
	// drawn with.
	InBounds(outer, inner math32.Box2, pt math32.Vector2) HitFilter
}

// ActionFunc handles a dispatched input action, returning whether it
// consumed it.
type ActionFunc func() bool

// NodeBase is the base type for all nodes, carrying the tree structure,
// layout directive, dirty tracking, visibility and disability state,
// and the input-action handler tables.
type NodeBase struct {

	// Name is an optional identifier used in paths and debugging.
	Name string

	// Lay is the layout directive this node presents to its parent.
	Lay styles.Layout

	// Pad is the padding between the node's outer and inner boxes.
	Pad styles.Sides

	// Hidden excludes the node from layout and drawing; it stays
	// in the tree.
	Hidden bool

	// Disabled blocks the node (and, inherited, its descendants) from
	// receiving action callbacks; disabled nodes still block hover.
	Disabled bool

	// Focusable declares that the node can hold keyboard focus.
	Focusable bool

	// Crumb is an optional style/identity token accumulated along the
	// draw path; see [TreeContext.Crumbs].
	Crumb string

	// FocusImpl, if set, runs once per frame while the node is focused
	// and no keyboard input action consumed the frame's event.
	FocusImpl func()

	this   Node
	parent Node
	kids   []Node

	minSize math32.Vector2
	dirty   bool

	inheritDisabled bool
	removeLater     bool

	// last draw bookkeeping, for hit testing and focus navigation
	lastOuter  math32.Box2
	lastInner  math32.Box2
	drawnFrame int64

	handlers     map[inputs.ActionID][]ActionFunc
	heldHandlers map[inputs.ActionID][]ActionFunc
}

// AsNode returns the embedded [NodeBase].
func (nb *NodeBase) AsNode() *NodeBase {
	return nb
}

// InitNode sets the concrete node implementing this base. It is called
// automatically when a node is attached with [NodeBase.AddChild] or used
// as a scene root; it only needs to be called directly for detached use.
func (nb *NodeBase) InitNode(this Node) {
	nb.this = this
	nb.dirty = true
}

// This returns the concrete node embedding this base.
func (nb *NodeBase) This() Node {
	return nb.this
}

// Parent returns the node's parent, or nil for a root.
func (nb *NodeBase) Parent() Node {
	return nb.parent
}

// Children returns the node's children in declaration order.
// The returned slice must not be modified.
func (nb *NodeBase) Children() []Node {
	return nb.kids
}

// AddChild appends a child to this node, in declaration order.
func (nb *NodeBase) AddChild(child Node) {
	cb := child.AsNode()
	cb.InitNode(child)
	cb.parent = nb.this
	nb.kids = append(nb.kids, child)
	nb.UpdateSize()
}

// RemoveChild removes the given child from this node.
func (nb *NodeBase) RemoveChild(child Node) {
	for i, k := range nb.kids {
		if k == child {
			nb.kids = append(nb.kids[:i], nb.kids[i+1:]...)
			child.AsNode().parent = nil
			nb.UpdateSize()
			return
		}
	}
}

// RemoveLater flags this node to be removed by its parent after the
// parent's children have drawn. This is the supported way for a node to
// remove itself during traversal.
func (nb *NodeBase) RemoveLater() {
	nb.removeLater = true
}

// pruneRemoved removes children flagged with [NodeBase.RemoveLater].
// Containers call this after drawing their children.
func (nb *NodeBase) pruneRemoved() {
	kept := nb.kids[:0]
	removed := false
	for _, k := range nb.kids {
		if k.AsNode().removeLater {
			k.AsNode().parent = nil
			removed = true
			continue
		}
		kept = append(kept, k)
	}
	nb.kids = kept
	if removed {
		nb.UpdateSize()
	}
}

// MinSize returns the minimum size recorded by the last resize.
func (nb *NodeBase) MinSize() math32.Vector2 {
	return nb.minSize
}

// Dirty returns whether the node needs a resize before the next draw.
func (nb *NodeBase) Dirty() bool {
	return nb.dirty
}

// UpdateSize marks this node dirty and propagates the flag up through
// its ancestors, so the next draw re-resizes exactly the dirty branch.
// Multiple calls within a frame coalesce into a single re-resize.
func (nb *NodeBase) UpdateSize() {
	for n := nb; n != nil; {
		n.dirty = true
		if n.parent == nil {
			return
		}
		n = n.parent.AsNode()
	}
}

// IsHidden returns whether the node is hidden.
func (nb *NodeBase) IsHidden() bool {
	return nb.Hidden
}

// IsDisabled returns whether the node is disabled, directly or
// inherited from a disabled ancestor.
func (nb *NodeBase) IsDisabled() bool {
	return nb.Disabled || nb.inheritDisabled
}

// Layout returns the node's layout directive.
func (nb *NodeBase) Layout() styles.Layout {
	return nb.Lay
}

// CanFocus returns whether the node currently accepts focus:
// it declares focusability and is neither disabled nor hidden.
func (nb *NodeBase) CanFocus() bool {
	return nb.Focusable && !nb.IsDisabled() && !nb.Hidden
}

// LastOuter returns the outer box the node was last drawn with.
func (nb *NodeBase) LastOuter() math32.Box2 {
	return nb.lastOuter
}

// LastInner returns the inner (content) box the node was last drawn with.
func (nb *NodeBase) LastInner() math32.Box2 {
	return nb.lastInner
}

// DrawnFrame returns the frame counter value of the node's last draw.
func (nb *NodeBase) DrawnFrame() int64 {
	return nb.drawnFrame
}

// Resize is the default leaf resize: no minimum beyond padding.
func (nb *NodeBase) Resize(ctx *TreeContext, space math32.Vector2) (math32.Vector2, error) {
	return nb.Pad.Size(), nil
}

// Draw is the default draw: nothing.
func (nb *NodeBase) Draw(ctx *TreeContext, outer, inner math32.Box2) {
}

// InBounds is the default bounds test: [Hit] inside the outer box,
// [Miss] outside.
func (nb *NodeBase) InBounds(outer, inner math32.Box2, pt math32.Vector2) HitFilter {
	if outer.ContainsPoint(pt) {
		return Hit
	}
	return Miss
}

// OnAction adds a handler called when the given action activates while
// this node is the relevant focus or hover target. Handlers added later
// are called first; a handler returning true consumes the action.
func (nb *NodeBase) OnAction(id inputs.ActionID, fun ActionFunc) {
	if nb.handlers == nil {
		nb.handlers = map[inputs.ActionID][]ActionFunc{}
	}
	nb.handlers[id] = append(nb.handlers[id], fun)
}

// OnActionHeld adds a handler called every frame the given action's
// binding is held, for bindings carrying the WhileHeld annotation.
func (nb *NodeBase) OnActionHeld(id inputs.ActionID, fun ActionFunc) {
	if nb.heldHandlers == nil {
		nb.heldHandlers = map[inputs.ActionID][]ActionFunc{}
	}
	nb.heldHandlers[id] = append(nb.heldHandlers[id], fun)
}

// HandlesAction returns whether the node has any handler for the action.
func (nb *NodeBase) HandlesAction(id inputs.ActionID) bool {
	return len(nb.handlers[id]) > 0 || len(nb.heldHandlers[id]) > 0
}

// handleAction calls the node's activation handlers for the action in
// reverse registration order, stopping at the first that consumes it.
// Disabled nodes receive no callbacks. Handler panics are swallowed
// into a not-handled result so dispatch can try the next candidate.
func (nb *NodeBase) handleAction(id inputs.ActionID) (handled bool) {
	if nb.IsDisabled() {
		return false
	}
	return callHandlers(nb.handlers[id])
}

// handleActionHeld is [NodeBase.handleAction] for while-held handlers.
func (nb *NodeBase) handleActionHeld(id inputs.ActionID) (handled bool) {
	if nb.IsDisabled() {
		return false
	}
	return callHandlers(nb.heldHandlers[id])
}

func callHandlers(funs []ActionFunc) (handled bool) {
	for i := len(funs) - 1; i >= 0; i-- {
		if func() (h bool) {
			defer func() {
				if recover() != nil {
					h = false
				}
			}()
			return funs[i]()
		}() {
			return true
		}
	}
	return false
}

// WalkDown calls the given function on this node and all descendants in
// depth-first pre-order, in declaration order, skipping subtrees for
// which the function returns false.
func (nb *NodeBase) WalkDown(fun func(n Node) bool) {
	if nb.this == nil {
		return
	}
	walkDown(nb.this, fun)
}

func walkDown(n Node, fun func(n Node) bool) {
	if !fun(n) {
		return
	}
	for _, k := range n.AsNode().kids {
		walkDown(k, fun)
	}
}

// IsAncestorOf returns whether this node is the given node or one of
// its ancestors.
func (nb *NodeBase) IsAncestorOf(n Node) bool {
	for n != nil {
		if n.AsNode() == nb {
			return true
		}
		n = n.AsNode().parent
	}
	return false
}

// Path returns the slash-separated names from the root to this node,
// for debugging.
func (nb *NodeBase) Path() string {
	nm := nb.Name
	if nm == "" {
		nm = fmt.Sprintf("%T", nb.this)
	}
	if nb.parent == nil {
		return "/" + nm
	}
	return nb.parent.AsNode().Path() + "/" + nm
}
