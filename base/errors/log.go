// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides error handling helpers that log or panic
// on errors, for use where returning them is not useful, extending
// the standard library errors package.
package errors

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
)

// Log logs the given error if it is non-nil, along with the
// file and line it was called from, and returns it.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error(), "caller", callerInfo())
	}
	return err
}

// Log1 returns the given value, logging the error if it is non-nil.
// The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error(), "caller", callerInfo())
	}
	return v
}

// Ignore1 returns the given value, discarding the error.
// The intended usage is:
//
//	a := errors.Ignore1(MyFunc(v))
func Ignore1[T any](v T, err error) T {
	return v
}

// Must1 returns the given value, panicking if the error is non-nil.
// The intended usage is:
//
//	a := errors.Must1(MyFunc(v))
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// callerInfo returns "file.go:line" for the caller of the
// exported function that calls it.
func callerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}
