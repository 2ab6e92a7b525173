// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"image/color"
	"time"

	"github.com/weftui/weft/inputs"
	"github.com/weftui/weft/math32"
	"github.com/weftui/weft/pixels"
)

// ImageHandle identifies an image loaded into a canvas back-end.
// The zero value is no image.
type ImageHandle int

// CanvasIO is the draw-primitive contract between nodes and a rendering
// back-end. All coordinates are device-independent pixels in the root
// coordinate space; [CanvasIO.SetScale] affects rendering only and never
// hit testing. Images drawn in a frame are retained by the back-end;
// an image not referenced for one complete frame becomes eligible
// for unload.
type CanvasIO interface {

	// DrawRectangle fills the given rectangle with the given color.
	DrawRectangle(r math32.Box2, c color.NRGBA)

	// DrawLine strokes a line from a to b with the given width.
	DrawLine(a, b math32.Vector2, width float32, c color.NRGBA)

	// DrawCircle fills a circle at the given center and radius.
	DrawCircle(center math32.Vector2, radius float32, c color.NRGBA)

	// DrawCircleOutline strokes a circle outline of the given width.
	DrawCircleOutline(center math32.Vector2, radius, width float32, c color.NRGBA)

	// DrawImage draws the image identified by the handle into the
	// destination rectangle, multiplied by the tint color.
	DrawImage(h ImageHandle, dest math32.Box2, tint color.NRGBA)

	// DrawHintedImage is [CanvasIO.DrawImage] with an explicit DPI hint,
	// for pre-hinted assets rendered at a known density.
	DrawHintedImage(h ImageHandle, dest math32.Box2, tint color.NRGBA, dpi float32)

	// CropTo intersects the crop region with the given rectangle and
	// returns the previous crop for [CanvasIO.RestoreCrop].
	CropTo(r math32.Box2) math32.Box2

	// RestoreCrop restores a crop region returned by [CanvasIO.CropTo].
	RestoreCrop(prev math32.Box2)

	// SetScale sets the device pixel scale applied when rendering.
	SetScale(factor float32)

	// SetTint sets the current multiplicative tint; the tree context
	// stacks tints and keeps the canvas updated with their product.
	SetTint(c color.NRGBA)

	// LoadImage loads the given image and returns a handle for drawing.
	LoadImage(im *pixels.Image) ImageHandle

	// UnloadImage releases the given image handle.
	UnloadImage(h ImageHandle)

	// EndFrame marks the end of a draw cycle, advancing the image
	// retention window.
	EndFrame()
}

// FocusIO is the keyboard focus contract: one focused node per focus
// space, navigation, and the typed-text queue. See [FocusSpace] for the
// standard implementation.
type FocusIO interface {

	// CurrentFocus returns the focused node, or nil.
	CurrentFocus() Node

	// Focus sets focus to the given node if it accepts focus;
	// otherwise it is a no-op.
	Focus(n Node)

	// ClearFocus drops the current focus.
	ClearFocus()

	// IsFocused returns whether the given node is the current focus.
	IsFocused(n Node) bool

	// FocusNext moves focus to the next focusable node, wrapping.
	FocusNext()

	// FocusPrevious moves focus to the previous focusable node, wrapping.
	FocusPrevious()

	// TypeText appends text to the text input queue.
	TypeText(text string)

	// ReadText copies queued text into buf starting at *offset, advancing
	// *offset, and returns the number of runes copied. Reads within the
	// same frame return the same data.
	ReadText(buf []rune, offset *int) int
}

// HoverIO is the pointer-hover contract: pointer registration and
// hover queries. See [HoverState] for the standard implementation.
type HoverIO interface {

	// LoadPointer registers or refreshes the pointer with the given
	// number on the given device, returning its stable record.
	LoadPointer(device, number int) *Pointer

	// IsHovered returns whether the given node is a hover or armed-press
	// target of any live pointer.
	IsHovered(n Node) bool

	// HoverOf returns the current hover target of the given pointer.
	HoverOf(p *Pointer) Node

	// Pointers calls the given function for each live pointer,
	// stopping if it returns false.
	Pointers(fun func(p *Pointer) bool)
}

// ActionIO is the binding-table and dispatch contract.
type ActionIO interface {

	// Map returns the active binding table.
	Map() *inputs.Map

	// RunInputAction dispatches the given action synchronously,
	// returning whether any handler consumed it.
	RunInputAction(id inputs.ActionID) bool
}

// ClipboardIO holds a single current selection.
type ClipboardIO interface {
	Value() string
	SetValue(text string)
}

// FileIO abstracts file access for nodes that load resources.
type FileIO interface {
	LoadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte) error
}

// TimeIO abstracts the clock, so tests can drive time.
type TimeIO interface {
	Now() time.Time
	TimeSince(instant time.Time) time.Duration
}

// PreferenceIO exposes host/user preferences consulted by input handling.
type PreferenceIO interface {

	// DoubleClickInterval is the maximum delay between presses
	// recognized as a double click.
	DoubleClickInterval() time.Duration
}

// DebugSignalIO receives named signals from nodes under test.
// Production implementations may discard them.
type DebugSignalIO interface {
	EmitSignal(name string)
}

// OverlayIO manages anchored popups atop the primary tree.
// See [OverlayChain] for the standard implementation.
type OverlayIO interface {

	// AddPopup opens a popup anchored by the given function.
	AddPopup(n Node, anchor AnchorFunc) *Popup

	// AddChildPopup opens a popup chained to the given parent popup,
	// so dismissing it returns focus to the parent.
	AddChildPopup(parent *Popup, n Node, anchor AnchorFunc) *Popup
}

// AnchorFunc computes the anchor rectangle for a popup from the
// current viewport.
type AnchorFunc func(viewport math32.Box2) math32.Box2
