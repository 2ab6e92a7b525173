// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package headless

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftui/weft/colors"
	"github.com/weftui/weft/math32"
	"github.com/weftui/weft/pixels"
)

func TestCanvasRecordsOps(t *testing.T) {
	cv := NewCanvas(100, 100)
	cv.DrawRectangle(math32.B2(0, 0, 10, 10), colors.Black)
	cv.DrawLine(math32.Vec2(0, 0), math32.Vec2(10, 10), 1, colors.Black)
	cv.DrawCircle(math32.Vec2(50, 50), 5, colors.Black)
	cv.DrawCircleOutline(math32.Vec2(50, 50), 8, 2, colors.Black)
	assert.Len(t, cv.FrameOps(), 4)
	assert.Equal(t, OpRectangle, cv.FrameOps()[0].Kind)

	cv.EndFrame()
	assert.Len(t, cv.Ops(), 4)
	assert.Empty(t, cv.FrameOps())
}

func TestSnapshotKeyFormat(t *testing.T) {
	cv := NewCanvas(10, 10)
	key := cv.SnapshotKey()
	assert.Len(t, key, 64)
	assert.Regexp(t, "^[0-9a-f]{64}$", key)

	cv.DrawRectangle(math32.B2(0, 0, 10, 10), color.NRGBA{255, 0, 0, 255})
	cv.EndFrame()
	// drawing changes the key deterministically
	key2 := cv.SnapshotKey()
	assert.NotEqual(t, key, key2)

	cv2 := NewCanvas(10, 10)
	cv2.DrawRectangle(math32.B2(0, 0, 10, 10), color.NRGBA{255, 0, 0, 255})
	cv2.EndFrame()
	assert.Equal(t, key2, cv2.SnapshotKey())
}

func TestCanvasRaster(t *testing.T) {
	cv := NewCanvas(10, 10)
	cv.DrawRectangle(math32.B2(0, 0, 5, 5), color.NRGBA{255, 0, 0, 255})
	cv.EndFrame()
	snap := cv.Snapshot()
	r, _, _, a := snap.At(2, 2).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), a)
	_, _, _, a = snap.At(7, 7).RGBA()
	assert.Equal(t, uint32(0), a)
}

func TestCanvasCrop(t *testing.T) {
	cv := NewCanvas(10, 10)
	prev := cv.CropTo(math32.B2(0, 0, 3, 3))
	cv.DrawRectangle(math32.B2(0, 0, 10, 10), color.NRGBA{0, 255, 0, 255})
	cv.RestoreCrop(prev)
	cv.EndFrame()
	snap := cv.Snapshot()
	_, g, _, _ := snap.At(1, 1).RGBA()
	assert.Equal(t, uint32(0xffff), g)
	_, _, _, a := snap.At(5, 5).RGBA()
	assert.Equal(t, uint32(0), a)
}

func TestCanvasTint(t *testing.T) {
	cv := NewCanvas(10, 10)
	cv.SetTint(color.NRGBA{255, 0, 0, 255})
	cv.DrawRectangle(math32.B2(0, 0, 10, 10), colors.White)
	cv.SetTint(colors.White)
	cv.EndFrame()
	snap := cv.Snapshot()
	r, g, _, _ := snap.At(5, 5).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
}

func TestImageRetention(t *testing.T) {
	cv := NewCanvas(10, 10)
	im := pixels.NewRGBA(2, 2)
	im.Clear(color.NRGBA{1, 2, 3, 255})
	h := cv.LoadImage(im)
	require.True(t, cv.Loaded(h))

	// referenced every frame: retained
	cv.DrawImage(h, math32.B2(0, 0, 2, 2), colors.White)
	cv.EndFrame()
	assert.True(t, cv.Loaded(h))

	// unreferenced for one frame: still within the retention window
	cv.EndFrame()
	assert.True(t, cv.Loaded(h))

	// unreferenced for a complete further frame: unloaded
	cv.EndFrame()
	assert.False(t, cv.Loaded(h))
}

func TestImageRetentionSurvivesTransientHide(t *testing.T) {
	cv := NewCanvas(10, 10)
	im := pixels.NewRGBA(2, 2)
	h := cv.LoadImage(im)

	cv.DrawImage(h, math32.B2(0, 0, 2, 2), colors.White)
	cv.EndFrame()
	cv.EndFrame() // hidden for one frame
	require.True(t, cv.Loaded(h))
	cv.DrawImage(h, math32.B2(0, 0, 2, 2), colors.White)
	cv.EndFrame()
	assert.True(t, cv.Loaded(h))
}

func TestUnloadImage(t *testing.T) {
	cv := NewCanvas(10, 10)
	h := cv.LoadImage(pixels.NewRGBA(1, 1))
	cv.UnloadImage(h)
	assert.False(t, cv.Loaded(h))
	// drawing an unloaded handle is a no-op
	cv.DrawImage(h, math32.B2(0, 0, 1, 1), colors.White)
	assert.Empty(t, cv.FrameOps())
}
