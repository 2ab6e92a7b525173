// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

// Layout is the layout directive a node presents to its parent:
// how much of the parent's surplus space it wants, and how it is
// aligned within the space it is given.
type Layout struct {

	// Expand is the weight with which this node receives surplus space
	// on the parent's layout axis. 0 means the node stays at its
	// minimum size; weights are summed across siblings and surplus is
	// distributed proportionally.
	Expand int

	// Align is the per-axis alignment of the node within its allotted space.
	Align AlignPair
}

// NewLayout returns a layout directive with the given expand weight
// and the same alignment on both axes.
func NewLayout(expand int, align Align) Layout {
	return Layout{Expand: expand, Align: AlignBoth(align)}
}

// LayoutFill returns the default layout directive: no expansion,
// filling the allotted space on both axes.
func LayoutFill() Layout {
	return Layout{Align: AlignBoth(Fill)}
}
