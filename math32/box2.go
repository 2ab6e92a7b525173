// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"
)

// Box2 represents an axis-aligned rectangle in 2D space,
// defined by its minimum (top-left) and maximum (bottom-right) points.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values.
func B2Empty() Box2 {
	bx := Box2{}
	bx.SetEmpty()
	return bx
}

// B2FromPosSize returns a new [Box2] from the given position and size.
// It panics if either size dimension is negative.
func B2FromPosSize(pos, size Vector2) Box2 {
	if size.X < 0 || size.Y < 0 {
		panic(fmt.Sprintf("math32.B2FromPosSize: negative size: %v", size))
	}
	return Box2{pos, pos.Add(size)}
}

// B2FromRect returns a new [Box2] from the given [image.Rectangle].
func B2FromRect(rect image.Rectangle) Box2 {
	return Box2{Vector2FromPoint(rect.Min), Vector2FromPoint(rect.Max)}
}

func (b Box2) String() string {
	return fmt.Sprintf("[%v - %v]", b.Min, b.Max)
}

// SetEmpty sets this box to empty: min infinity, max -infinity.
func (b *Box2) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns true if this box is empty (max < min on any coordinate).
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// Size returns the size of this box (max - min).
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of this box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// Pos returns the position (min) of this box.
func (b Box2) Pos() Vector2 {
	return b.Min
}

// ContainsPoint returns true if this box contains the given point.
// Points on the max edges are not contained, matching [image.Rectangle].
func (b Box2) ContainsPoint(pt Vector2) bool {
	return !(pt.X < b.Min.X || pt.X >= b.Max.X || pt.Y < b.Min.Y || pt.Y >= b.Max.Y)
}

// ContainsBox returns true if this box contains the other given box.
func (b Box2) ContainsBox(box Box2) bool {
	return b.Min.X <= box.Min.X && box.Max.X <= b.Max.X &&
		b.Min.Y <= box.Min.Y && box.Max.Y <= b.Max.Y
}

// Intersect returns the intersection of this box with the other given box.
// The result is empty if the boxes do not overlap.
func (b Box2) Intersect(other Box2) Box2 {
	b.Min.SetMax(other.Min)
	b.Max.SetMin(other.Max)
	return b
}

// Intersects returns true if this box intersects the other given box.
func (b Box2) Intersects(other Box2) bool {
	return !b.Intersect(other).IsEmpty()
}

// Union returns the union of this box with the other given box.
func (b Box2) Union(other Box2) Box2 {
	b.Min.SetMin(other.Min)
	b.Max.SetMax(other.Max)
	return b
}

// Translate returns this box translated by the given offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{b.Min.Add(offset), b.Max.Add(offset)}
}

// Canon returns a canonical version of the box, such that Min is
// always less than or equal to Max.
func (b Box2) Canon() Box2 {
	if b.Max.X < b.Min.X {
		b.Min.X, b.Max.X = b.Max.X, b.Min.X
	}
	if b.Max.Y < b.Min.Y {
		b.Min.Y, b.Max.Y = b.Max.Y, b.Min.Y
	}
	return b
}

// ExpandByVector returns this box expanded by the given vector on both sides.
func (b Box2) ExpandByVector(delta Vector2) Box2 {
	return Box2{b.Min.Sub(delta), b.Max.Add(delta)}
}

// ExpandByPoint returns this box expanded to include the given point.
func (b Box2) ExpandByPoint(pt Vector2) Box2 {
	b.Min.SetMin(pt)
	b.Max.SetMax(pt)
	return b
}

// MulScalar returns this box with both corners multiplied by the given scalar,
// scaling around the origin.
func (b Box2) MulScalar(scalar float32) Box2 {
	return Box2{b.Min.MulScalar(scalar), b.Max.MulScalar(scalar)}
}

// ToRect returns this box as an [image.Rectangle], with Min floored
// and Max ceiled so the rectangle covers the box.
func (b Box2) ToRect() image.Rectangle {
	return image.Rectangle{Min: b.Min.ToPointFloor(), Max: b.Max.ToPointCeil()}
}

// DistanceToPoint returns the distance from the nearest edge of this box
// to the given point; 0 if the point is inside.
func (b Box2) DistanceToPoint(pt Vector2) float32 {
	cp := pt
	cp.Clamp(b.Min, b.Max)
	return cp.DistanceTo(pt)
}
