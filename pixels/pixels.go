// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pixels provides the pixel buffer model used by canvas back-ends:
// a tagged variant over RGBA, paletted-with-alpha, and alpha-only formats,
// with per-image DPI.
package pixels

import (
	"fmt"
	"image"
	"image/color"

	"github.com/weftui/weft/colors"
)

// Format is the pixel format of an [Image] buffer.
type Format int32

const (
	// RGBA is a standard 4 bytes-per-pixel straight-alpha color buffer.
	RGBA Format = iota

	// PalettedAlpha is a 2 bytes-per-pixel buffer of palette index
	// plus alpha pairs.
	PalettedAlpha

	// Alpha is a 1 byte-per-pixel coverage buffer.
	Alpha
)

func (f Format) String() string {
	switch f {
	case RGBA:
		return "RGBA"
	case PalettedAlpha:
		return "PalettedAlpha"
	case Alpha:
		return "Alpha"
	}
	return fmt.Sprintf("Format(%d)", int32(f))
}

// BytesPerPixel returns the pixel stride of the format.
func (f Format) BytesPerPixel() int {
	switch f {
	case RGBA:
		return 4
	case PalettedAlpha:
		return 2
	default:
		return 1
	}
}

// DefaultDPI is the DPI assigned to new images, corresponding to a
// 1:1 mapping between image pixels and device-independent pixels.
const DefaultDPI = 96

// Image is a pixel buffer in one of the [Format] variants.
// DPI is carried per image and honored by the canvas when rendering;
// it does not affect the buffer contents or hit testing.
type Image struct {

	// Format is the pixel format variant of this image.
	Format Format

	// Size is the dimensions of the buffer in pixels.
	Size image.Point

	// DPI is the dots-per-inch at which the image was produced.
	DPI float32

	// Pix holds the pixel data, [Format.BytesPerPixel] bytes per pixel,
	// in row-major order.
	Pix []uint8

	// Palette is the color lookup table for [PalettedAlpha] images.
	Palette []color.NRGBA
}

// NewRGBA returns a new [RGBA] format image of the given size.
func NewRGBA(width, height int) *Image {
	return newImage(RGBA, width, height)
}

// NewPalettedAlpha returns a new [PalettedAlpha] format image of the
// given size with the given palette.
func NewPalettedAlpha(width, height int, palette []color.NRGBA) *Image {
	im := newImage(PalettedAlpha, width, height)
	im.Palette = palette
	return im
}

// NewAlpha returns a new [Alpha] format image of the given size.
func NewAlpha(width, height int) *Image {
	return newImage(Alpha, width, height)
}

func newImage(f Format, width, height int) *Image {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("pixels.newImage: negative size: %d x %d", width, height))
	}
	return &Image{
		Format: f,
		Size:   image.Pt(width, height),
		DPI:    DefaultDPI,
		Pix:    make([]uint8, width*height*f.BytesPerPixel()),
	}
}

// In reports whether the given pixel coordinates are inside the buffer.
func (im *Image) In(x, y int) bool {
	return x >= 0 && x < im.Size.X && y >= 0 && y < im.Size.Y
}

func (im *Image) offset(x, y int) int {
	return (y*im.Size.X + x) * im.Format.BytesPerPixel()
}

// PaletteAt returns the palette color at the given index combined with
// the given alpha. Out-of-range indices return opaque white combined
// with the alpha.
func (im *Image) PaletteAt(index int, alpha uint8) color.NRGBA {
	if index < 0 || index >= len(im.Palette) {
		return color.NRGBA{255, 255, 255, alpha}
	}
	c := im.Palette[index]
	c.A = uint8(uint16(c.A) * uint16(alpha) / 255)
	return c
}

// At returns the color of the pixel at the given coordinates,
// resolved through the palette for [PalettedAlpha] images and as
// white-at-coverage for [Alpha] images. Coordinates outside the
// buffer return opaque white.
func (im *Image) At(x, y int) color.NRGBA {
	if !im.In(x, y) {
		return colors.White
	}
	o := im.offset(x, y)
	switch im.Format {
	case RGBA:
		return color.NRGBA{im.Pix[o], im.Pix[o+1], im.Pix[o+2], im.Pix[o+3]}
	case PalettedAlpha:
		return im.PaletteAt(int(im.Pix[o]), im.Pix[o+1])
	default:
		return color.NRGBA{255, 255, 255, im.Pix[o]}
	}
}

// SetRGBA sets the pixel at the given coordinates of an [RGBA] image.
// It panics on other formats; coordinates outside the buffer are ignored.
func (im *Image) SetRGBA(x, y int, c color.NRGBA) {
	im.mustBe(RGBA, "SetRGBA")
	if !im.In(x, y) {
		return
	}
	o := im.offset(x, y)
	im.Pix[o] = c.R
	im.Pix[o+1] = c.G
	im.Pix[o+2] = c.B
	im.Pix[o+3] = c.A
}

// SetIndex sets the palette index and alpha of the pixel at the given
// coordinates of a [PalettedAlpha] image. It panics on other formats;
// coordinates outside the buffer are ignored.
func (im *Image) SetIndex(x, y int, index, alpha uint8) {
	im.mustBe(PalettedAlpha, "SetIndex")
	if !im.In(x, y) {
		return
	}
	o := im.offset(x, y)
	im.Pix[o] = index
	im.Pix[o+1] = alpha
}

// SetAlpha sets the coverage of the pixel at the given coordinates of an
// [Alpha] image. It panics on other formats; coordinates outside the
// buffer are ignored.
func (im *Image) SetAlpha(x, y int, alpha uint8) {
	im.mustBe(Alpha, "SetAlpha")
	if !im.In(x, y) {
		return
	}
	im.Pix[im.offset(x, y)] = alpha
}

// Clear fills an [RGBA] image with the given color.
// It panics on other formats; use [Image.ClearIndex] or
// [Image.ClearAlpha] for those.
func (im *Image) Clear(c color.NRGBA) {
	im.mustBe(RGBA, "Clear")
	for o := 0; o < len(im.Pix); o += 4 {
		im.Pix[o] = c.R
		im.Pix[o+1] = c.G
		im.Pix[o+2] = c.B
		im.Pix[o+3] = c.A
	}
}

// ClearIndex fills a [PalettedAlpha] image with the given index and alpha.
// It panics on other formats.
func (im *Image) ClearIndex(index, alpha uint8) {
	im.mustBe(PalettedAlpha, "ClearIndex")
	for o := 0; o < len(im.Pix); o += 2 {
		im.Pix[o] = index
		im.Pix[o+1] = alpha
	}
}

// ClearAlpha fills an [Alpha] image with the given coverage.
// It panics on other formats.
func (im *Image) ClearAlpha(alpha uint8) {
	im.mustBe(Alpha, "ClearAlpha")
	for o := range im.Pix {
		im.Pix[o] = alpha
	}
}

func (im *Image) mustBe(f Format, op string) {
	if im.Format != f {
		panic(fmt.Sprintf("pixels.Image.%s: unsupported on %v format", op, im.Format))
	}
}

// ToNRGBA renders the image into a standard [image.NRGBA] buffer,
// resolving palette and alpha formats to full color.
func (im *Image) ToNRGBA() *image.NRGBA {
	dst := image.NewNRGBA(image.Rectangle{Max: im.Size})
	for y := 0; y < im.Size.Y; y++ {
		for x := 0; x < im.Size.X; x++ {
			dst.SetNRGBA(x, y, im.At(x, y))
		}
	}
	return dst
}
