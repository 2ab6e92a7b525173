// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package option

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZeroIsUnset(t *testing.T) {
	var o Option[int]
	assert.False(t, o.Valid)
	assert.Equal(t, 7, o.Or(7))
}

func TestSetClearOr(t *testing.T) {
	var o Option[string]
	o.Set("hello")
	assert.True(t, o.Valid)
	assert.Equal(t, "hello", o.Or("fallback"))

	// an explicit zero is distinct from unset
	o.Set("")
	assert.True(t, o.Valid)
	assert.Equal(t, "", o.Or("fallback"))

	o.Clear()
	assert.False(t, o.Valid)
	assert.Equal(t, "", o.Value)
	assert.Equal(t, "fallback", o.Or("fallback"))
}
