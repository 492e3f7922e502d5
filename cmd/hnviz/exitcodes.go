// Copyright 2026 The HNViz Authors
// SPDX-License-Identifier: MIT

package main

import "fmt"

// Exit codes for the hnviz CLI.
const (
	ExitOK          = 0 // Success.
	ExitInvalidArgs = 1 // Invalid arguments or config.
	ExitDataLoad    = 2 // The dataset could not be loaded.
	ExitRuntime     = 3 // Serving or rendering failed.
)

// exitCodeError carries a non-zero exit code through cobra's error handling.
type exitCodeError struct {
	code int
	msg  string
}

func (e *exitCodeError) Error() string { return e.msg }

// ExitCode returns the exit code for this error.
func (e *exitCodeError) ExitCode() int { return e.code }

// exitError creates an exitCodeError. If msg is empty, the error message is
// set to a generic description of the exit code.
func exitError(code int, format string, args ...any) *exitCodeError {
	msg := fmt.Sprintf(format, args...)
	if msg == "" {
		switch code {
		case ExitDataLoad:
			msg = "hnviz: dataset could not be loaded"
		case ExitRuntime:
			msg = "hnviz: runtime failure"
		default:
			msg = "hnviz: error"
		}
	}
	return &exitCodeError{code: code, msg: msg}
}
