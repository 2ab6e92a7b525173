// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

import "fmt"

// Align is an alignment mode for one axis of a node within the space
// its parent allots to it.
type Align int32

const (
	// Start places the node at the start (left/top) of the allotted space,
	// at its minimum size.
	Start Align = iota

	// Center centers the node in the allotted space, at its minimum size.
	Center

	// End places the node at the end (right/bottom) of the allotted space,
	// at its minimum size.
	End

	// Fill gives the node the entire allotted space on the axis,
	// regardless of its minimum size.
	Fill
)

func (a Align) String() string {
	switch a {
	case Start:
		return "Start"
	case Center:
		return "Center"
	case End:
		return "End"
	case Fill:
		return "Fill"
	}
	return fmt.Sprintf("Align(%d)", int32(a))
}

// AlignPair is a pair of alignment modes, one per axis.
type AlignPair struct {
	X Align
	Y Align
}

// AlignXY returns a new [AlignPair] with the given per-axis alignments.
func AlignXY(x, y Align) AlignPair {
	return AlignPair{x, y}
}

// AlignBoth returns a new [AlignPair] with the same alignment on both axes.
func AlignBoth(a Align) AlignPair {
	return AlignPair{a, a}
}

// Position returns the start offset and size for a child of the given
// minimum size aligned within avail space on one axis.
func (a Align) Position(minSize, avail float32) (pos, size float32) {
	if a == Fill {
		return 0, avail
	}
	size = minSize
	surplus := avail - minSize
	if surplus < 0 {
		surplus = 0
	}
	switch a {
	case Center:
		pos = surplus / 2
	case End:
		pos = surplus
	}
	return pos, size
}
