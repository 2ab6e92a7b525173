// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"github.com/weftui/weft/math32"
)

// FocusSpace is the standard [FocusIO] implementation: a scope within
// which exactly one node may hold keyboard focus. Spaces nest: a popup
// opens a child space scoped to its subtree, and dismissing it restores
// the focus that was active when it opened.
type FocusSpace struct {
	scene *Scene

	// scopeRoot bounds the focusable set; nil means the whole tree.
	scopeRoot Node

	// current is the focused node, or nil.
	current Node

	// restore is the node focused in the parent space when this space
	// opened, re-focused when the space is dismissed.
	restore Node

	// Wrap controls whether FocusNext / FocusPrevious wrap around.
	// It defaults to on.
	Wrap bool

	textQueue []rune
}

func newFocusSpace(sc *Scene, scopeRoot Node) *FocusSpace {
	return &FocusSpace{scene: sc, scopeRoot: scopeRoot, Wrap: true}
}

// root returns the scope root of this focus space.
func (fs *FocusSpace) root() Node {
	if fs.scopeRoot != nil {
		return fs.scopeRoot
	}
	return fs.scene.rootNode()
}

// CurrentFocus returns the focused node, or nil.
func (fs *FocusSpace) CurrentFocus() Node {
	return fs.current
}

// IsFocused returns whether the given node is the current focus.
func (fs *FocusSpace) IsFocused(n Node) bool {
	return fs.current == n && n != nil
}

// Focus sets focus to the given node if it accepts focus (declares
// focusability and is not disabled or hidden); otherwise it is a no-op.
func (fs *FocusSpace) Focus(n Node) {
	if n == nil || !n.AsNode().CanFocus() {
		return
	}
	fs.current = n
}

// ClearFocus drops the current focus. The previously focused node
// receives no notification beyond losing its IsFocused query result.
func (fs *FocusSpace) ClearFocus() {
	fs.current = nil
}

// focusables returns the focusable set of this space in depth-first
// tree order, skipping hidden subtrees and disabled nodes.
func (fs *FocusSpace) focusables() []Node {
	var list []Node
	root := fs.root()
	if root == nil {
		return nil
	}
	root.AsNode().WalkDown(func(n Node) bool {
		nb := n.AsNode()
		if nb.Hidden {
			return false
		}
		if nb.CanFocus() {
			list = append(list, n)
		}
		return true
	})
	return list
}

// FocusNext moves focus to the next focusable node in tree order,
// skipping disabled nodes, wrapping when [FocusSpace.Wrap] is on.
// With no current focus it chooses the first focusable.
func (fs *FocusSpace) FocusNext() {
	fs.focusStep(1)
}

// FocusPrevious moves focus to the previous focusable node in tree
// order. With no current focus it chooses the last focusable.
func (fs *FocusSpace) FocusPrevious() {
	fs.focusStep(-1)
}

func (fs *FocusSpace) focusStep(dir int) {
	list := fs.focusables()
	n := len(list)
	if n == 0 {
		return
	}
	cur := -1
	for i, f := range list {
		if f == fs.current {
			cur = i
			break
		}
	}
	var next int
	switch {
	case cur >= 0:
		next = cur + dir
		if next < 0 || next >= n {
			if !fs.Wrap {
				return
			}
			next = (next + n) % n
		}
	case dir > 0:
		next = 0
	default:
		next = n - 1
	}
	fs.current = list[next]
}

// FocusAbove moves focus to the focusable above the reference node.
// See [FocusSpace.focusDirectional].
func (fs *FocusSpace) FocusAbove(ref Node) Node {
	return fs.focusDirectional(ref, math32.Y, -1)
}

// FocusBelow moves focus to the focusable below the reference node.
func (fs *FocusSpace) FocusBelow(ref Node) Node {
	return fs.focusDirectional(ref, math32.Y, 1)
}

// FocusLeft moves focus to the focusable left of the reference node.
func (fs *FocusSpace) FocusLeft(ref Node) Node {
	return fs.focusDirectional(ref, math32.X, -1)
}

// FocusRight moves focus to the focusable right of the reference node.
func (fs *FocusSpace) FocusRight(ref Node) Node {
	return fs.focusDirectional(ref, math32.X, 1)
}

// focusDirectional selects the focusable whose recorded focus box is
// nearest along the requested axis and direction, breaking ties by
// perpendicular distance. It returns the reference itself (and leaves
// focus unchanged) if no candidate exists.
func (fs *FocusSpace) focusDirectional(ref Node, d math32.Dims, sign float32) Node {
	if ref == nil {
		return nil
	}
	rc := ref.AsNode().LastOuter().Center()
	var best Node
	var bestAxial, bestPerp float32
	for _, cand := range fs.focusables() {
		if cand == ref {
			continue
		}
		cc := cand.AsNode().LastOuter().Center()
		axial := (cc.Dim(d) - rc.Dim(d)) * sign
		if axial <= 0 {
			continue
		}
		perp := math32.Abs(cc.Dim(d.Other()) - rc.Dim(d.Other()))
		if best == nil || axial < bestAxial || (axial == bestAxial && perp < bestPerp) {
			best, bestAxial, bestPerp = cand, axial, perp
		}
	}
	if best == nil {
		return ref
	}
	fs.current = best
	return best
}

// TypeText appends text to the text input queue for the focused node.
func (fs *FocusSpace) TypeText(text string) {
	fs.textQueue = append(fs.textQueue, []rune(text)...)
}

// ReadText copies queued text into buf starting at *offset, advancing
// *offset by the number of runes copied, and returns that count.
// Multiple reads within the same frame return the same data; longer
// text is chunked to fit buf across successive calls.
func (fs *FocusSpace) ReadText(buf []rune, offset *int) int {
	if *offset >= len(fs.textQueue) {
		return 0
	}
	n := copy(buf, fs.textQueue[*offset:])
	*offset += n
	return n
}

// clearText drops the queued text; called at the start of each frame.
func (fs *FocusSpace) clearText() {
	fs.textQueue = fs.textQueue[:0]
}
