// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "image/color"

// AlphaBlend blends the two colors using the standard source-over
// operator on straight (non-premultiplied) alpha:
//
//	outA = srcA + dstA*(1-srcA)
//	outC = (srcC*srcA + dstC*dstA*(1-srcA)) / outA
//
// The source color is figuratively placed "on top of" the destination
// color. A fully transparent result is returned as the zero color.
func AlphaBlend(dst, src color.Color) color.NRGBA {
	dr, dg, db, da := ToFloat32(dst)
	sr, sg, sb, sa := ToFloat32(src)

	ia := da * (1 - sa)
	oa := sa + ia
	if oa <= 0 {
		return color.NRGBA{}
	}
	or := (sr*sa + dr*ia) / oa
	og := (sg*sa + dg*ia) / oa
	ob := (sb*sa + db*ia) / oa
	return color.NRGBA{uint8(or*255 + 0.5), uint8(og*255 + 0.5), uint8(ob*255 + 0.5), uint8(oa*255 + 0.5)}
}

// Multiply returns the component-wise product of the two colors on
// straight alpha, which is the operation used for stacked canvas tints.
func Multiply(x, y color.Color) color.NRGBA {
	xr, xg, xb, xa := ToFloat32(x)
	yr, yg, yb, ya := ToFloat32(y)
	return FromFloat32(xr*yr, xg*yg, xb*yb, xa*ya)
}
