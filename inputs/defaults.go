// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inputs

import (
	"runtime"

	"github.com/weftui/weft/events"
	"github.com/weftui/weft/events/key"
)

// Platform is the effective platform name used for platform-conditional
// default bindings. It defaults to [runtime.GOOS] and can be overridden
// by system back-ends (notably for js targets reporting the underlying
// platform).
var Platform = runtime.GOOS

// commandKey returns the platform shortcut modifier: Command (Meta)
// on macOS and Control everywhere else.
func commandKey() key.Codes {
	if Platform == "darwin" {
		return key.CodeLeftMeta
	}
	return key.CodeLeftControl
}

// DefaultMap returns the default binding table, covering the universal
// actions, focus navigation, and text editing conventions. The shortcut
// modifier is Command on macOS and Control elsewhere; emacs-style
// Control bindings are added on non-macOS platforms.
func DefaultMap() *Map {
	m := NewMap()
	cmd := KeyItem(commandKey())
	shift := KeyItem(key.CodeLeftShift)

	// universal
	m.Bind(Press, NewStroke(MouseItem(events.Left)))
	m.Bind(Press, Keys(key.CodeReturnEnter))
	m.Bind(Submit, Keys(key.CodeReturnEnter))
	m.Bind(Press, NewStroke(GamepadItem(events.GamepadCross)))
	m.Bind(Submit, NewStroke(GamepadItem(events.GamepadCross)))
	m.Bind(Cancel, Keys(key.CodeEscape))
	m.Bind(Cancel, NewStroke(GamepadItem(events.GamepadCircle)))
	m.Bind(ContextMenu, NewStroke(MouseItem(events.Right)))

	// focus
	m.Bind(FocusNext, Keys(key.CodeTab))
	m.Bind(FocusPrevious, NewStroke(shift, KeyItem(key.CodeTab)))
	m.Bind(FocusUp, Keys(key.CodeUpArrow))
	m.Bind(FocusDown, Keys(key.CodeDownArrow))
	m.Bind(FocusLeft, Keys(key.CodeLeftArrow))
	m.Bind(FocusRight, Keys(key.CodeRightArrow))

	// scrolling and lines
	m.Bind(ScrollPageUp, Keys(key.CodePageUp))
	m.Bind(ScrollPageDown, Keys(key.CodePageDown))
	m.Bind(LineStart, Keys(key.CodeHome))
	m.Bind(LineEnd, Keys(key.CodeEnd))

	// text editing
	m.Bind(Backspace, Keys(key.CodeDeleteBackspace))
	m.Bind(Delete, Keys(key.CodeDeleteForward))
	m.Bind(CaretLeft, Keys(key.CodeLeftArrow))
	m.Bind(CaretRight, Keys(key.CodeRightArrow))
	m.Bind(CaretUp, Keys(key.CodeUpArrow))
	m.Bind(CaretDown, Keys(key.CodeDownArrow))
	m.Bind(SelectLeft, NewStroke(shift, KeyItem(key.CodeLeftArrow)))
	m.Bind(SelectRight, NewStroke(shift, KeyItem(key.CodeRightArrow)))
	m.Bind(SelectUp, NewStroke(shift, KeyItem(key.CodeUpArrow)))
	m.Bind(SelectDown, NewStroke(shift, KeyItem(key.CodeDownArrow)))
	m.Bind(WordLeft, NewStroke(cmd, KeyItem(key.CodeLeftArrow)))
	m.Bind(WordRight, NewStroke(cmd, KeyItem(key.CodeRightArrow)))
	m.Bind(DocumentStart, NewStroke(cmd, KeyItem(key.CodeHome)))
	m.Bind(DocumentEnd, NewStroke(cmd, KeyItem(key.CodeEnd)))
	m.Bind(Copy, NewStroke(cmd, KeyItem(key.CodeC)))
	m.Bind(Cut, NewStroke(cmd, KeyItem(key.CodeX)))
	m.Bind(Paste, NewStroke(cmd, KeyItem(key.CodeV)))
	m.Bind(Undo, NewStroke(cmd, KeyItem(key.CodeZ)))
	m.Bind(Redo, NewStroke(cmd, shift, KeyItem(key.CodeZ)))
	m.Bind(SelectAll, NewStroke(cmd, KeyItem(key.CodeA)))

	// emacs/vim conventions on non-macOS
	if Platform != "darwin" {
		ctrl := KeyItem(key.CodeLeftControl)
		m.Bind(DeleteWord, NewStroke(ctrl, KeyItem(key.CodeW)))
		m.Bind(DeleteLineEnd, NewStroke(ctrl, KeyItem(key.CodeK)))
		m.Bind(PreviousLine, NewStroke(ctrl, KeyItem(key.CodeP)))
		m.Bind(NextLine, NewStroke(ctrl, KeyItem(key.CodeN)))
		m.Bind(CaretDown, NewStroke(ctrl, KeyItem(key.CodeJ)))
	}
	return m
}
