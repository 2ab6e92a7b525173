// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package styles

// FitGeomInWindow returns a position and size for a span of the given size
// at the given candidate position, adjusted so the span fits within the
// window range [winPos, winPos+winSize]: the position slides back when the
// span overflows the far edge, and the size is clipped when the span is
// larger than the window.
func FitGeomInWindow(pos, size, winPos, winSize float32) (float32, float32) {
	if size > winSize {
		size = winSize
	}
	if pos+size > winPos+winSize {
		pos = winPos + winSize - size
	}
	if pos < winPos {
		pos = winPos
	}
	return pos, size
}
