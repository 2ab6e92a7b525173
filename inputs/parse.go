// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inputs

import (
	"fmt"
	"strings"
	"sync"

	"github.com/weftui/weft/events"
	"github.com/weftui/weft/events/key"
)

var (
	keyNamesOnce sync.Once
	keyNames     map[string]key.Codes
)

func keyByName(name string) (key.Codes, bool) {
	keyNamesOnce.Do(func() {
		keyNames = make(map[string]key.Codes, 256)
		for c := key.Codes(1); c < 256; c++ {
			nm := c.String()
			if !strings.HasPrefix(nm, "Codes(") {
				keyNames[nm] = c
			}
		}
	})
	c, ok := keyNames[name]
	return c, ok
}

// parseItem is the inverse of [Item.String].
func parseItem(s string) (Item, error) {
	if nm, ok := strings.CutPrefix(s, "Mouse"); ok {
		for b := events.Left; b <= events.Right; b++ {
			if b.String() == nm {
				return MouseItem(b), nil
			}
		}
		return Item{}, fmt.Errorf("inputs: unknown mouse button %q", nm)
	}
	if nm, ok := strings.CutPrefix(s, "Gamepad"); ok {
		for b := events.GamepadCross; b <= events.GamepadDpadRight; b++ {
			if b.String() == nm {
				return GamepadItem(b), nil
			}
		}
		return Item{}, fmt.Errorf("inputs: unknown gamepad button %q", nm)
	}
	if c, ok := keyByName(s); ok {
		return KeyItem(c), nil
	}
	return Item{}, fmt.Errorf("inputs: unknown input item %q", s)
}
