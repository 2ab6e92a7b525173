// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides utilities for manipulating colors,
// including the straight-alpha blending and multiplicative
// tinting used by the canvas.
package colors

import (
	"fmt"
	"image/color"
)

// IsNil returns whether the color is the nil initial default color.
func IsNil(c color.Color) bool {
	return AsRGBA(c) == color.RGBA{}
}

// FromRGB makes a new RGBA color from the given
// RGB uint8 values, using 255 for A.
func FromRGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// FromNRGBA makes a new RGBA color from the given
// non-alpha-premultiplied RGBA uint8 values.
func FromNRGBA(r, g, b, a uint8) color.RGBA {
	return AsRGBA(color.NRGBA{r, g, b, a})
}

// AsRGBA returns the given color as an RGBA color.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsNRGBA returns the given color as a non-alpha-premultiplied NRGBA color.
func AsNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

// FromFloat32 makes a new NRGBA color from the given 0-1
// normalized floating point numbers (non-alpha-premultiplied).
func FromFloat32(r, g, b, a float32) color.NRGBA {
	return color.NRGBA{uint8(r*255 + 0.5), uint8(g*255 + 0.5), uint8(b*255 + 0.5), uint8(a*255 + 0.5)}
}

// ToFloat32 returns 0-1 normalized floating point numbers from the given
// color (non-alpha-premultiplied).
func ToFloat32(c color.Color) (r, g, b, a float32) {
	n := AsNRGBA(c)
	return float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255
}

// AsString returns the given color as a string,
// using its String method if it exists, and formatting
// it as rgba(r, g, b, a) otherwise.
func AsString(c color.Color) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	r := AsRGBA(c)
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", r.R, r.G, r.B, r.A)
}

// WithA returns the given color with the non-premultiplied
// alpha set to the given value.
func WithA(c color.Color, a uint8) color.RGBA {
	n := AsNRGBA(c)
	n.A = a
	return AsRGBA(n)
}

// Standard colors used as defaults and sentinels.
var (
	Transparent = color.NRGBA{}
	Black       = color.NRGBA{A: 255}
	White       = color.NRGBA{255, 255, 255, 255}
)
