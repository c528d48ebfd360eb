// This file is part of argsh.
//
// Copyright (C) 2026  Okusi Associates
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argsh

import (
	"errors"
	"fmt"
)

// Exit status vocabulary.
// Downstream callers assume these exact numbers; they mirror the shell
// convention of 0/1/2 plus the POSIX EINVAL errno value for malformed
// options.
const (
	ExitSuccess       = 0
	ExitFailure       = 1  // general/unspecified failure
	ExitUsage         = 2  // wrong number or shape of positional arguments
	ExitInvalidOption = 22 // invalid option or malformed option argument (EINVAL)
)

// Error categories.
// Use errors.Is against these to branch on the failure class without
// inspecting exit codes.
var (
	// ErrorUsage - Indicates a wrong number or shape of positional arguments.
	ErrorUsage = errors.New("usage error")

	// ErrorInvalidOption - Indicates an unrecognized option spelling or a
	// bundle containing a character outside the bundle alphabet.
	ErrorInvalidOption = errors.New("invalid option")

	// ErrorMissingArgument - Indicates a value taking option with no following
	// value, or a following value that is itself option shaped.
	ErrorMissingArgument = errors.New("missing argument")

	// ErrorDisaggregation - Indicates the bundle expansion mechanism itself
	// failed, for example when an external splitting tool is unavailable.
	ErrorDisaggregation = errors.New("disaggregation failure")
)

// ParseError - The single fatal error produced by a failed parse.
// Code is one of the exit status vocabulary values and Message names the
// offending token verbatim. There is no continue-after-error semantics: the
// first ParseError terminates the parse.
type ParseError struct {
	Code    int
	Message string

	category error
}

func (e *ParseError) Error() string {
	return e.Message
}

func (e *ParseError) Unwrap() error {
	return e.category
}

func newParseError(code int, category error, format string, a ...interface{}) *ParseError {
	return &ParseError{
		Code:     code,
		Message:  fmt.Sprintf(format, a...),
		category: category,
	}
}
