// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "image"

// Dims is a list of vector dimension (component) names.
type Dims int32

const (
	X Dims = iota
	Y
)

// Other returns the other dimension (Y for X, X for Y).
func (d Dims) Other() Dims {
	if d == X {
		return Y
	}
	return X
}

// String returns the name of the dimension.
func (d Dims) String() string {
	if d == X {
		return "X"
	}
	return "Y"
}

// PointDim returns the given dimension of an [image.Point].
func PointDim(pt image.Point, d Dims) int {
	if d == X {
		return pt.X
	}
	return pt.Y
}

// SetPointDim sets the given dimension of an [image.Point].
func SetPointDim(pt *image.Point, d Dims, val int) {
	if d == X {
		pt.X = val
	} else {
		pt.Y = val
	}
}
