// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package prefs

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	p := Defaults()
	assert.Equal(t, 500*time.Millisecond, p.DoubleClickInterval())
	assert.Equal(t, float32(1), p.WheelSpeed())
}

func TestSaveOpenRoundTrip(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs.toml")
	p := Defaults()
	p.DoubleClick = 250 * time.Millisecond
	p.ScrollWheelSpeed.Set(3)
	require.NoError(t, p.Save(fn))

	got := Defaults()
	require.NoError(t, got.Open(fn))
	assert.Equal(t, 250*time.Millisecond, got.DoubleClickInterval())
	assert.Equal(t, float32(3), got.WheelSpeed())
}

func TestSavedMissingFileUsesDefaults(t *testing.T) {
	p := Saved(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Equal(t, 500*time.Millisecond, p.DoubleClickInterval())
}
