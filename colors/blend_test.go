// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlphaBlendOpaque(t *testing.T) {
	// an opaque source completely covers the destination
	dst := color.NRGBA{10, 20, 30, 255}
	src := color.NRGBA{200, 100, 50, 255}
	assert.Equal(t, src, AlphaBlend(dst, src))
}

func TestAlphaBlendTransparentSource(t *testing.T) {
	dst := color.NRGBA{10, 20, 30, 255}
	assert.Equal(t, dst, AlphaBlend(dst, color.NRGBA{}))
}

func TestAlphaBlendHalf(t *testing.T) {
	// 50% black over opaque white gives mid grey at full alpha
	dst := color.NRGBA{255, 255, 255, 255}
	src := color.NRGBA{0, 0, 0, 128}
	got := AlphaBlend(dst, src)
	assert.Equal(t, uint8(255), got.A)
	assert.InDelta(t, 127, int(got.R), 1)
	assert.Equal(t, got.R, got.G)
	assert.Equal(t, got.G, got.B)
}

func TestAlphaBlendBothTransparent(t *testing.T) {
	assert.Equal(t, color.NRGBA{}, AlphaBlend(color.NRGBA{}, color.NRGBA{}))
}

func TestAlphaBlendAccumulatesAlpha(t *testing.T) {
	// half over half covers more than half
	dst := color.NRGBA{100, 100, 100, 128}
	src := color.NRGBA{100, 100, 100, 128}
	got := AlphaBlend(dst, src)
	assert.Greater(t, got.A, uint8(128))
	assert.InDelta(t, 100, int(got.R), 1)
}

func TestMultiply(t *testing.T) {
	white := color.NRGBA{255, 255, 255, 255}
	c := color.NRGBA{10, 128, 255, 255}
	assert.Equal(t, c, Multiply(c, white))

	half := color.NRGBA{128, 128, 128, 255}
	got := Multiply(white, half)
	assert.InDelta(t, 128, int(got.R), 1)
	assert.Equal(t, uint8(255), got.A)

	// multiplication is commutative
	assert.Equal(t, Multiply(c, half), Multiply(half, c))
}
