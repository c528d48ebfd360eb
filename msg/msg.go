// This file is part of argsh.
//
// Copyright (C) 2026  Okusi Associates
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package msg - operator messaging for argsh based tools.
// Messages carry a level tag and the program name and are colorized only
// when the destination is a terminal.
package msg

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
)

// Writer - destination for all messages. Set as a variable to allow for easy
// testing.
var Writer io.Writer = os.Stderr

// exitFn - This variable allows to test Die calls.
var exitFn = os.Exit

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[0;31m"
	ansiYellow = "\033[0;33m"
	ansiCyan   = "\033[0;36m"
)

func colorize(color, s string) string {
	if f, ok := Writer.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return color + s + ansiReset
	}
	return s
}

func prog() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return "argsh"
	}
	return filepath.Base(os.Args[0])
}

func report(color, level, format string, a ...interface{}) {
	fmt.Fprintf(Writer, "%s: %s: %s\n", prog(), colorize(color, level), fmt.Sprintf(format, a...))
}

// Info - informational message.
func Info(format string, a ...interface{}) {
	report(ansiCyan, "info", format, a...)
}

// Warn - warning message.
func Warn(format string, a ...interface{}) {
	report(ansiYellow, "warn", format, a...)
}

// Error - error message.
func Error(format string, a ...interface{}) {
	report(ansiRed, "error", format, a...)
}

// Die - reports the message and terminates the process with the given exit
// status. Never returns.
func Die(code int, format string, a ...interface{}) {
	Error(format, a...)
	exitFn(code)
}
