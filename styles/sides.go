// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides the geometric styling primitives shared by all
// nodes: four-sided box arrays, alignment modes, and layout directives.
package styles

import (
	"fmt"

	"github.com/weftui/weft/math32"
)

// SideIndexes provides names for the sides of a [Sides] box array.
type SideIndexes int32

const (
	Left SideIndexes = iota
	Right
	Top
	Bottom
)

func (si SideIndexes) String() string {
	switch si {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	}
	return fmt.Sprintf("SideIndexes(%d)", int32(si))
}

// Sides is a four-sided box array of values, such as margin, padding,
// or border widths, indexed by [SideIndexes].
type Sides [4]float32

// NewSides returns a new [Sides] following the CSS shorthand convention:
// no values: all sides zero; one value: all sides that value;
// two values: vertical, horizontal; three values: top, horizontal, bottom;
// four values: top, right, bottom, left.
func NewSides(vals ...float32) Sides {
	var s Sides
	switch len(vals) {
	case 0:
	case 1:
		s.SetAll(vals[0])
	case 2:
		s.Set(vals[1], vals[1], vals[0], vals[0])
	case 3:
		s.Set(vals[1], vals[1], vals[0], vals[2])
	default:
		s.Set(vals[3], vals[1], vals[0], vals[2])
	}
	return s
}

// Set sets the left, right, top, and bottom values.
func (s *Sides) Set(left, right, top, bottom float32) {
	s[Left] = left
	s[Right] = right
	s[Top] = top
	s[Bottom] = bottom
}

// SetAll sets all sides to the same value.
func (s *Sides) SetAll(val float32) {
	s.Set(val, val, val, val)
}

// Side returns the value for the given side.
func (s Sides) Side(si SideIndexes) float32 {
	return s[si]
}

// SetSide sets the value for the given side.
func (s *Sides) SetSide(si SideIndexes, val float32) {
	s[si] = val
}

// Horizontal returns the left and right values.
func (s Sides) Horizontal() (left, right float32) {
	return s[Left], s[Right]
}

// Vertical returns the top and bottom values.
func (s Sides) Vertical() (top, bottom float32) {
	return s[Top], s[Bottom]
}

// SetHorizontal sets the left and right values.
func (s *Sides) SetHorizontal(left, right float32) {
	s[Left] = left
	s[Right] = right
}

// SetVertical sets the top and bottom values.
func (s *Sides) SetVertical(top, bottom float32) {
	s[Top] = top
	s[Bottom] = bottom
}

// Dim returns the pair of values along the given dimension:
// (left, right) for X and (top, bottom) for Y.
func (s Sides) Dim(d math32.Dims) (start, end float32) {
	if d == math32.X {
		return s.Horizontal()
	}
	return s.Vertical()
}

// Size returns the total space taken on each axis:
// left+right for X and top+bottom for Y.
func (s Sides) Size() math32.Vector2 {
	return math32.Vec2(s[Left]+s[Right], s[Top]+s[Bottom])
}

// Pos returns the top-left inset as a vector.
func (s Sides) Pos() math32.Vector2 {
	return math32.Vec2(s[Left], s[Top])
}

// Add returns the element-wise sum of this and the other given sides.
func (s Sides) Add(other Sides) Sides {
	for i := range s {
		s[i] += other[i]
	}
	return s
}

// InsetBox returns the given box shrunk by these sides.
func (s Sides) InsetBox(b math32.Box2) math32.Box2 {
	b.Min.X += s[Left]
	b.Min.Y += s[Top]
	b.Max.X -= s[Right]
	b.Max.Y -= s[Bottom]
	return b
}
