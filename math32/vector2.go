// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"
)

// Vector2 is a 2D vector/point with X and Y components.
// All coordinates in the toolkit are device-independent pixels
// in the coordinate space of the tree root.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2Scalar returns a new [Vector2] with all components set to the given scalar value.
func Vector2Scalar(scalar float32) Vector2 {
	return Vector2{scalar, scalar}
}

// Vector2FromPoint returns a new [Vector2] from the given [image.Point].
func Vector2FromPoint(pt image.Point) Vector2 {
	return Vec2(float32(pt.X), float32(pt.Y))
}

// Vector2FromFixed returns a new [Vector2] from the given [fixed.Point26_6].
func Vector2FromFixed(pt fixed.Point26_6) Vector2 {
	return Vec2(FromFixed(pt.X), FromFixed(pt.Y))
}

// FromFixed converts a [fixed.Int26_6] to a float32.
func FromFixed(x fixed.Int26_6) float32 {
	const shift, mask = 6, 1<<6 - 1
	if x >= 0 {
		return float32(x>>shift) + float32(x&mask)/64
	}
	x = -x
	if x >= 0 {
		return -(float32(x>>shift) + float32(x&mask)/64)
	}
	return 0
}

// ToFixed converts a float32 value to a [fixed.Int26_6].
func ToFixed(x float32) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Set sets this vector's X and Y components.
func (v *Vector2) Set(x, y float32) {
	v.X = x
	v.Y = y
}

// SetScalar sets all vector components to the same scalar value.
func (v *Vector2) SetScalar(scalar float32) {
	v.X = scalar
	v.Y = scalar
}

// SetZero sets all of the vector's components to zero.
func (v *Vector2) SetZero() {
	v.SetScalar(0)
}

// Dim returns the given vector component.
func (v Vector2) Dim(dim Dims) float32 {
	if dim == X {
		return v.X
	}
	return v.Y
}

// SetDim sets the given vector component to the given value.
func (v *Vector2) SetDim(dim Dims, value float32) {
	if dim == X {
		v.X = value
	} else {
		v.Y = value
	}
}

// AddDim returns the vector with the given value added to the given dimension.
func (v Vector2) AddDim(d Dims, value float32) Vector2 {
	v.SetDim(d, v.Dim(d)+value)
	return v
}

// SubDim returns the vector with the given value subtracted from the given dimension.
func (v Vector2) SubDim(d Dims, value float32) Vector2 {
	v.SetDim(d, v.Dim(d)-value)
	return v
}

// Add adds the other given vector to this one and returns the result as a new vector.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// AddScalar adds the given scalar to each component of this vector
// and returns the result as a new vector.
func (v Vector2) AddScalar(scalar float32) Vector2 {
	return Vec2(v.X+scalar, v.Y+scalar)
}

// SetAdd sets this to addition with the other given vector.
func (v *Vector2) SetAdd(other Vector2) {
	v.X += other.X
	v.Y += other.Y
}

// Sub subtracts the other given vector from this one and returns the result as a new vector.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// SetSub sets this to subtraction with the other given vector.
func (v *Vector2) SetSub(other Vector2) {
	v.X -= other.X
	v.Y -= other.Y
}

// Mul multiplies each component of this vector by the corresponding one of the
// other given vector and returns the resulting vector.
func (v Vector2) Mul(other Vector2) Vector2 {
	return Vec2(v.X*other.X, v.Y*other.Y)
}

// MulScalar multiplies each component of this vector by the given scalar
// and returns the resulting vector.
func (v Vector2) MulScalar(scalar float32) Vector2 {
	return Vec2(v.X*scalar, v.Y*scalar)
}

// Div divides each component of this vector by the corresponding one of the
// other given vector and returns the resulting vector.
func (v Vector2) Div(other Vector2) Vector2 {
	return Vec2(v.X/other.X, v.Y/other.Y)
}

// DivScalar divides each component of this vector by the given scalar
// and returns the resulting vector. It returns the zero vector if scalar is zero.
func (v Vector2) DivScalar(scalar float32) Vector2 {
	if scalar == 0 {
		return Vector2{}
	}
	return v.MulScalar(1 / scalar)
}

// Min returns a vector with the minimum of each of this vector's and the
// other given vector's components.
func (v Vector2) Min(other Vector2) Vector2 {
	return Vec2(Min(v.X, other.X), Min(v.Y, other.Y))
}

// SetMin sets this vector's components to the minimum of itself and the other given vector.
func (v *Vector2) SetMin(other Vector2) {
	v.X = Min(v.X, other.X)
	v.Y = Min(v.Y, other.Y)
}

// Max returns a vector with the maximum of each of this vector's and the
// other given vector's components.
func (v Vector2) Max(other Vector2) Vector2 {
	return Vec2(Max(v.X, other.X), Max(v.Y, other.Y))
}

// SetMax sets this vector's components to the maximum of itself and the other given vector.
func (v *Vector2) SetMax(other Vector2) {
	v.X = Max(v.X, other.X)
	v.Y = Max(v.Y, other.Y)
}

// Clamp clamps this vector's components to be within the range of min to max.
func (v *Vector2) Clamp(min, max Vector2) {
	if v.X < min.X {
		v.X = min.X
	} else if v.X > max.X {
		v.X = max.X
	}
	if v.Y < min.Y {
		v.Y = min.Y
	} else if v.Y > max.Y {
		v.Y = max.Y
	}
}

// Abs returns the vector with [Abs] applied to each component.
func (v Vector2) Abs() Vector2 {
	return Vec2(Abs(v.X), Abs(v.Y))
}

// Negate returns the vector with each component negated.
func (v Vector2) Negate() Vector2 {
	return Vec2(-v.X, -v.Y)
}

// ToCeil returns the vector with [Ceil] applied to each component.
func (v Vector2) ToCeil() Vector2 {
	return Vec2(Ceil(v.X), Ceil(v.Y))
}

// ToFloor returns the vector with [Floor] applied to each component.
func (v Vector2) ToFloor() Vector2 {
	return Vec2(Floor(v.X), Floor(v.Y))
}

// ToRound returns the vector with [Round] applied to each component.
func (v Vector2) ToRound() Vector2 {
	return Vec2(Round(v.X), Round(v.Y))
}

// ToPoint returns the vector as an [image.Point], with truncating conversion.
func (v Vector2) ToPoint() image.Point {
	return image.Pt(int(v.X), int(v.Y))
}

// ToPointCeil returns the vector as an [image.Point], with ceiling conversion.
func (v Vector2) ToPointCeil() image.Point {
	return image.Pt(int(Ceil(v.X)), int(Ceil(v.Y)))
}

// ToPointFloor returns the vector as an [image.Point], with flooring conversion.
func (v Vector2) ToPointFloor() image.Point {
	return image.Pt(int(Floor(v.X)), int(Floor(v.Y)))
}

// ToPointRound returns the vector as an [image.Point], with rounding conversion.
func (v Vector2) ToPointRound() image.Point {
	return image.Pt(int(Round(v.X)), int(Round(v.Y)))
}

// ToFixed returns the vector as a [fixed.Point26_6].
func (v Vector2) ToFixed() fixed.Point26_6 {
	return fixed.Point26_6{X: ToFixed(v.X), Y: ToFixed(v.Y)}
}

// Length returns the length (magnitude) of this vector.
func (v Vector2) Length() float32 {
	return Sqrt(v.LengthSquared())
}

// LengthSquared returns the length squared of this vector.
// LengthSquared can be used to compare the lengths of vectors
// without the need to perform a square root.
func (v Vector2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// DistanceTo returns the distance between this point and the other given point.
func (v Vector2) DistanceTo(other Vector2) float32 {
	return Sqrt(v.DistanceToSquared(other))
}

// DistanceToSquared returns the squared distance between this point
// and the other given point.
func (v Vector2) DistanceToSquared(other Vector2) float32 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	return dx*dx + dy*dy
}

// Dot returns the dot product of this vector with the other given vector.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}
