// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"

	"github.com/weftui/weft/math32"
	"github.com/weftui/weft/styles"
)

// Direction is the main layout axis of a [Frame].
type Direction int32

const (
	// Row lays children out left to right.
	Row Direction = iota

	// Column lays children out top to bottom.
	Column
)

func (d Direction) String() string {
	if d == Row {
		return "Row"
	}
	return "Column"
}

// Dim returns the vector dimension of the direction's main axis.
func (d Direction) Dim() math32.Dims {
	if d == Row {
		return math32.X
	}
	return math32.Y
}

// Frame is the standard container node, laying its children out along
// one axis in declaration order. Each child receives a cell computed
// from its expand weight, and is placed within the cell by its
// alignment pair. Gaps apply only between visible children. A hidden
// child contributes no minimum size and is not drawn, but stays in
// the tree.
type Frame struct {
	NodeBase

	// Dir is the main layout axis.
	Dir Direction

	// Gap is the spacing between consecutive visible children.
	Gap float32
}

// NewFrame returns a new [Frame] with the given direction and children.
func NewFrame(dir Direction, children ...Node) *Frame {
	fr := &Frame{Dir: dir}
	fr.InitNode(fr)
	for _, c := range children {
		fr.AddChild(c)
	}
	return fr
}

// NewRow returns a new [Frame] laying the given children out
// left to right.
func NewRow(children ...Node) *Frame {
	return NewFrame(Row, children...)
}

// NewColumn returns a new [Frame] laying the given children out
// top to bottom.
func NewColumn(children ...Node) *Frame {
	return NewFrame(Column, children...)
}

// visibleChildren calls fun for each non-hidden child.
func (fr *Frame) visibleChildren(fun func(n Node)) {
	for _, k := range fr.Children() {
		if !k.AsNode().Hidden {
			fun(k)
		}
	}
}

// Resize computes the frame's minimum size: the sum of child minimum
// sizes plus gaps along the main axis, and the maximum across it.
func (fr *Frame) Resize(ctx *TreeContext, space math32.Vector2) (math32.Vector2, error) {
	inner := space.Sub(fr.Pad.Size())
	inner.SetMax(math32.Vector2{})

	d := fr.Dir.Dim()
	var main, cross float32
	n := 0
	var err error
	fr.visibleChildren(func(k Node) {
		if err != nil {
			return
		}
		var ms math32.Vector2
		ms, err = ctx.ResizeChild(k, inner)
		if err != nil {
			return
		}
		main += ms.Dim(d)
		cross = math32.Max(cross, ms.Dim(d.Other()))
		n++
	})
	if err != nil {
		return math32.Vector2{}, err
	}
	if n > 1 {
		main += fr.Gap * float32(n-1)
	}
	ms := math32.Vector2{}
	ms.SetDim(d, main)
	ms.SetDim(d.Other(), cross)
	return ms.Add(fr.Pad.Size()), nil
}

// Draw lays the children out within inner and draws them in declaration
// order, then prunes children flagged for removal.
func (fr *Frame) Draw(ctx *TreeContext, outer, inner math32.Box2) {
	d := fr.Dir.Dim()
	avail := inner.Size().Dim(d)
	cross := inner.Size().Dim(d.Other())

	// surplus distribution by expand weights
	var totalMin float32
	var totalWeight int
	n := 0
	var lastExpanding Node
	fr.visibleChildren(func(k Node) {
		kb := k.AsNode()
		totalMin += kb.MinSize().Dim(d)
		totalWeight += kb.Lay.Expand
		if kb.Lay.Expand > 0 {
			lastExpanding = k
		}
		n++
	})
	gaps := float32(0)
	if n > 1 {
		gaps = fr.Gap * float32(n-1)
	}
	surplus := math32.Max(0, avail-totalMin-gaps)

	var distributed float32
	extras := map[Node]float32{}
	if totalWeight > 0 {
		fr.visibleChildren(func(k Node) {
			kb := k.AsNode()
			if kb.Lay.Expand == 0 {
				return
			}
			ex := math32.Floor(surplus * float32(kb.Lay.Expand) / float32(totalWeight))
			extras[k] = ex
			distributed += ex
		})
		// leftover pixels accumulate to the last expanding child
		extras[lastExpanding] += surplus - distributed
	}

	pos := inner.Min.Dim(d)
	first := true
	fr.visibleChildren(func(k Node) {
		kb := k.AsNode()
		if !first {
			pos += fr.Gap
		}
		first = false

		cell := kb.MinSize().Dim(d) + extras[k]

		var box math32.Box2
		mainAlign := alignOf(kb.Lay.Align, d)
		mo, msz := mainAlign.Position(kb.MinSize().Dim(d), cell)
		box.Min.SetDim(d, pos+mo)
		box.Max.SetDim(d, pos+mo+msz)

		crossAlign := alignOf(kb.Lay.Align, d.Other())
		co, csz := crossAlign.Position(kb.MinSize().Dim(d.Other()), cross)
		box.Min.SetDim(d.Other(), inner.Min.Dim(d.Other())+co)
		box.Max.SetDim(d.Other(), inner.Min.Dim(d.Other())+co+csz)

		ctx.DrawChild(k, box)
		pos += cell
	})

	fr.pruneRemoved()
}

func alignOf(pair styles.AlignPair, d math32.Dims) styles.Align {
	if d == math32.X {
		return pair.X
	}
	return pair.Y
}

func (fr *Frame) String() string {
	return fmt.Sprintf("Frame{%v, %d children}", fr.Dir, len(fr.Children()))
}
