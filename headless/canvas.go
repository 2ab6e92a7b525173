// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package headless provides back-ends for running trees without a
// window system: a recording canvas with raster snapshots, stub time,
// file, and preference services, and device event synthesizers.
// It exists for tests and tools; it is not an OS integration.
package headless

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
	xdraw "golang.org/x/image/draw"

	"github.com/weftui/weft/colors"
	"github.com/weftui/weft/core"
	"github.com/weftui/weft/math32"
	"github.com/weftui/weft/pixels"
)

// OpKind identifies one recorded draw primitive.
type OpKind int32

const (
	OpRectangle OpKind = iota
	OpLine
	OpCircle
	OpCircleOutline
	OpImage
)

func (k OpKind) String() string {
	switch k {
	case OpRectangle:
		return "Rectangle"
	case OpLine:
		return "Line"
	case OpCircle:
		return "Circle"
	case OpCircleOutline:
		return "CircleOutline"
	case OpImage:
		return "Image"
	}
	return fmt.Sprintf("OpKind(%d)", int32(k))
}

// Op is one recorded draw call with the state it ran under.
type Op struct {
	Kind   OpKind
	Rect   math32.Box2
	A, B   math32.Vector2
	Radius float32
	Width  float32
	Color  color.NRGBA
	Handle core.ImageHandle
	DPI    float32
	Crop   math32.Box2
	Tint   color.NRGBA
}

type loadedImage struct {
	src      *pixels.Image
	rendered *image.NRGBA
	usedAt   int64
}

// Canvas is a [core.CanvasIO] that records every draw call and
// rasterizes into an NRGBA buffer, for assertions and snapshot
// comparison. Image handles are retained while referenced; a handle
// is unloaded at the end of the second consecutive frame in which it
// is not drawn, so a handle hidden for a single frame stays loaded.
type Canvas struct {

	// Size is the raster size in device pixels at scale 1.
	Size image.Point

	ops        []Op
	lastOps    []Op
	raster     *image.NRGBA
	lastRaster *image.NRGBA
	scale      float32
	tint       color.NRGBA
	crop       math32.Box2
	images     map[core.ImageHandle]*loadedImage
	nextImg    core.ImageHandle
	frame      int64
}

// NewCanvas returns a new recording canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	cv := &Canvas{
		Size:   image.Pt(width, height),
		raster: image.NewNRGBA(image.Rect(0, 0, width, height)),
		scale:  1,
		tint:   colors.White,
		images: map[core.ImageHandle]*loadedImage{},
	}
	cv.crop = math32.B2(0, 0, float32(width), float32(height))
	return cv
}

// Ops returns the draw calls recorded in the last completed frame.
func (cv *Canvas) Ops() []Op {
	return cv.lastOps
}

// FrameOps returns the draw calls recorded so far this frame.
func (cv *Canvas) FrameOps() []Op {
	return cv.ops
}

// Snapshot returns a copy of the last completed frame's raster.
func (cv *Canvas) Snapshot() *image.RGBA {
	return clone.AsRGBA(cv.snapshotRaster())
}

// SnapshotKey returns the lowercase hex SHA-256 of the last completed
// frame's raster contents, the key used for regression comparison of
// captured frames.
func (cv *Canvas) SnapshotKey() string {
	sum := sha256.Sum256(cv.snapshotRaster().Pix)
	return hex.EncodeToString(sum[:])
}

func (cv *Canvas) snapshotRaster() *image.NRGBA {
	if cv.lastRaster != nil {
		return cv.lastRaster
	}
	return cv.raster
}

// Loaded returns whether the given image handle is currently loaded.
func (cv *Canvas) Loaded(h core.ImageHandle) bool {
	_, ok := cv.images[h]
	return ok
}

func (cv *Canvas) record(op Op) {
	op.Crop = cv.crop
	op.Tint = cv.tint
	cv.ops = append(cv.ops, op)
}

// tinted applies the current tint to the given color.
func (cv *Canvas) tinted(c color.NRGBA) color.NRGBA {
	if cv.tint == colors.White {
		return c
	}
	return colors.Multiply(c, cv.tint)
}

// blend writes one logical pixel, honoring crop, scale, and tint.
func (cv *Canvas) blend(x, y float32, c color.NRGBA) {
	if !cv.crop.ContainsPoint(math32.Vec2(x, y)) {
		return
	}
	px := int(x * cv.scale)
	py := int(y * cv.scale)
	if !(image.Point{px, py}).In(cv.raster.Rect) {
		return
	}
	old := cv.raster.NRGBAAt(px, py)
	cv.raster.SetNRGBA(px, py, colors.AlphaBlend(old, c))
}

// DrawRectangle fills the rectangle with the color.
func (cv *Canvas) DrawRectangle(r math32.Box2, c color.NRGBA) {
	cv.record(Op{Kind: OpRectangle, Rect: r, Color: c})
	c = cv.tinted(c)
	rr := r.Intersect(cv.crop)
	if rr.IsEmpty() {
		return
	}
	for y := math32.Floor(rr.Min.Y); y < rr.Max.Y; y++ {
		for x := math32.Floor(rr.Min.X); x < rr.Max.X; x++ {
			cv.blend(x, y, c)
		}
	}
}

// DrawLine strokes a line from a to b.
func (cv *Canvas) DrawLine(a, b math32.Vector2, width float32, c color.NRGBA) {
	cv.record(Op{Kind: OpLine, A: a, B: b, Width: width, Color: c})
	c = cv.tinted(c)
	d := b.Sub(a)
	steps := int(math32.Max(math32.Abs(d.X), math32.Abs(d.Y))) + 1
	for i := 0; i <= steps; i++ {
		p := a.Add(d.MulScalar(float32(i) / float32(steps)))
		hw := math32.Max(width/2, 0.5)
		for y := p.Y - hw; y < p.Y+hw; y++ {
			for x := p.X - hw; x < p.X+hw; x++ {
				cv.blend(x, y, c)
			}
		}
	}
}

// DrawCircle fills a circle.
func (cv *Canvas) DrawCircle(center math32.Vector2, radius float32, c color.NRGBA) {
	cv.record(Op{Kind: OpCircle, A: center, Radius: radius, Color: c})
	c = cv.tinted(c)
	for y := center.Y - radius; y < center.Y+radius; y++ {
		for x := center.X - radius; x < center.X+radius; x++ {
			if center.DistanceTo(math32.Vec2(x, y)) <= radius {
				cv.blend(x, y, c)
			}
		}
	}
}

// DrawCircleOutline strokes a circle outline.
func (cv *Canvas) DrawCircleOutline(center math32.Vector2, radius, width float32, c color.NRGBA) {
	cv.record(Op{Kind: OpCircleOutline, A: center, Radius: radius, Width: width, Color: c})
	c = cv.tinted(c)
	for y := center.Y - radius; y < center.Y+radius; y++ {
		for x := center.X - radius; x < center.X+radius; x++ {
			d := center.DistanceTo(math32.Vec2(x, y))
			if d <= radius && d > radius-width {
				cv.blend(x, y, c)
			}
		}
	}
}

// LoadImage loads the image and returns its handle.
func (cv *Canvas) LoadImage(im *pixels.Image) core.ImageHandle {
	cv.nextImg++
	cv.images[cv.nextImg] = &loadedImage{src: im, rendered: im.ToNRGBA(), usedAt: cv.frame}
	return cv.nextImg
}

// UnloadImage releases the handle.
func (cv *Canvas) UnloadImage(h core.ImageHandle) {
	delete(cv.images, h)
}

// DrawImage draws the image into dest, multiplied by the tint color.
// Drawing marks the handle as referenced this frame, retaining it.
func (cv *Canvas) DrawImage(h core.ImageHandle, dest math32.Box2, tint color.NRGBA) {
	li, ok := cv.images[h]
	if !ok {
		return
	}
	li.usedAt = cv.frame
	cv.record(Op{Kind: OpImage, Handle: h, Rect: dest, Color: tint, DPI: li.src.DPI})
	cv.blitImage(li, dest, tint)
}

// DrawHintedImage draws the image with an explicit DPI hint; the
// destination is interpreted at that density.
func (cv *Canvas) DrawHintedImage(h core.ImageHandle, dest math32.Box2, tint color.NRGBA, dpi float32) {
	li, ok := cv.images[h]
	if !ok {
		return
	}
	li.usedAt = cv.frame
	cv.record(Op{Kind: OpImage, Handle: h, Rect: dest, Color: tint, DPI: dpi})
	if dpi > 0 {
		scale := li.src.DPI / dpi
		dest.Max = dest.Min.Add(dest.Size().MulScalar(scale))
	}
	cv.blitImage(li, dest, tint)
}

func (cv *Canvas) blitImage(li *loadedImage, dest math32.Box2, tint color.NRGBA) {
	w := int(dest.Size().X)
	hh := int(dest.Size().Y)
	if w <= 0 || hh <= 0 {
		return
	}
	scaled := image.NewNRGBA(image.Rect(0, 0, w, hh))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Rect, li.rendered, li.rendered.Rect, xdraw.Over, nil)
	tint = cv.tinted(tint)
	for y := 0; y < hh; y++ {
		for x := 0; x < w; x++ {
			c := scaled.NRGBAAt(x, y)
			if tint != colors.White {
				c = colors.Multiply(c, tint)
			}
			cv.blend(dest.Min.X+float32(x), dest.Min.Y+float32(y), c)
		}
	}
}

// CropTo intersects the crop with the given rectangle and returns the
// previous crop.
func (cv *Canvas) CropTo(r math32.Box2) math32.Box2 {
	prev := cv.crop
	cv.crop = cv.crop.Intersect(r)
	return prev
}

// RestoreCrop restores a crop returned by [Canvas.CropTo].
func (cv *Canvas) RestoreCrop(prev math32.Box2) {
	cv.crop = prev
}

// SetScale sets the device pixel scale. Scaling affects rendering
// only; hit testing stays in logical coordinates.
func (cv *Canvas) SetScale(factor float32) {
	if factor > 0 {
		cv.scale = factor
	}
}

// SetTint sets the current multiplicative tint.
func (cv *Canvas) SetTint(c color.NRGBA) {
	cv.tint = c
}

// EndFrame rotates the op log and raster and unloads images that
// have not been drawn for two consecutive frames.
func (cv *Canvas) EndFrame() {
	cv.lastOps = cv.ops
	cv.ops = nil
	cv.frame++
	for h, li := range cv.images {
		// the retention window spans one complete unreferenced frame,
		// so a transient hide does not unload the image
		if cv.frame-li.usedAt > 2 {
			delete(cv.images, h)
		}
	}
	cv.lastRaster = cv.raster
	cv.raster = image.NewNRGBA(image.Rect(0, 0, cv.Size.X, cv.Size.Y))
}
