// Copyright (c) 2025, Weft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors extends the standard library errors package with the
// reporting helper used for non-fatal failures: errors that should be
// surfaced in the log but must not take down the frame loop, such as a
// preference file that fails to parse.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"
)

// Is reports whether any error in err's tree matches target,
// as in the standard library.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Log reports err through [slog.Error] with the location of the caller
// attached, and passes it through unchanged. It does nothing for a nil
// error, so fallible calls can be wrapped directly:
//
//	errors.Log(prefs.Open(filename))
func Log(err error) error {
	if err == nil {
		return nil
	}
	slog.Error(err.Error(), "at", caller())
	return err
}

// caller locates the call site two frames up: the caller of the
// helper that asked for it.
func caller() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", file, line)
}
