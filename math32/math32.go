// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package math32 provides float32 versions of the standard math functions,
// along with the 2D vector and box types used throughout the toolkit.
// Scalar functions are provided by [github.com/chewxy/math32].
package math32

import "github.com/chewxy/math32"

// Mathematical constants.
const (
	Pi         = math32.Pi
	Infinity   = float32(math32.MaxFloat32)
	MaxFloat32 = math32.MaxFloat32
)

// Abs returns the absolute value of x.
func Abs(x float32) float32 { return math32.Abs(x) }

// Sqrt returns the square root of x.
func Sqrt(x float32) float32 { return math32.Sqrt(x) }

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float32) float32 { return math32.Ceil(x) }

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float32) float32 { return math32.Floor(x) }

// Round returns the nearest integer, rounding half away from zero.
func Round(x float32) float32 { return math32.Round(x) }

// Min returns the smaller of x or y.
func Min(x, y float32) float32 { return math32.Min(x, y) }

// Max returns the larger of x or y.
func Max(x, y float32) float32 { return math32.Max(x, y) }

// Mod returns the floating-point remainder of x/y.
func Mod(x, y float32) float32 { return math32.Mod(x, y) }

// Hypot returns Sqrt(p*p + q*q).
func Hypot(p, q float32) float32 { return math32.Hypot(p, q) }

// IsNaN reports whether f is a "not-a-number" value.
func IsNaN(f float32) bool { return math32.IsNaN(f) }

// Clamp clamps x to the provided closed interval [a, b].
func Clamp(x, a, b float32) float32 {
	if x < a {
		return a
	}
	if x > b {
		return b
	}
	return x
}

// Lerp returns the linear interpolation between start and stop at amount t.
func Lerp(start, stop, t float32) float32 {
	return start + (stop-start)*t
}

// Truncate truncates a floating point number to given level of precision,
// by scaling with a power of ten and dropping the fraction.
func Truncate(val float32, prec int) float32 {
	return float32(int(val*Pow(10, float32(prec)))) / Pow(10, float32(prec))
}

// Pow returns x**y, the base-x exponential of y.
func Pow(x, y float32) float32 { return math32.Pow(x, y) }
