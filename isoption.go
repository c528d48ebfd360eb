// This file is part of argsh.
//
// Copyright (C) 2026  Okusi Associates
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argsh

import (
	"regexp"
	"strings"
)

// 1: leading dashes
// 2: option body
// 3: =value
var isOptionRegex = regexp.MustCompile(`^(--?)([^=]+)(.*?)$`)

// optionShape - the decomposed spelling of an option token.
type optionShape struct {
	long     bool   // true for '--name', false for '-x' / '-xyz'
	body     string // spelling without the leading dashes or '=value'
	value    string // attached value, long options only
	hasValue bool   // distinguishes '--name=' from '--name'
}

/*
shapeOf - Decompose an option token into its leading dashes, body and
attached '=value'.

The especial tokens '-' and '--' are not options; '-' is a conventional
stdin placeholder and '--' terminates option parsing. Both are the caller's
responsibility and reported as non-options here.

Attached values are only meaningful for long options: '-o=x' is not a
supported spelling, short options take their value from the following token.
*/
func shapeOf(token string) (optionShape, bool) {
	if token == "-" || token == "--" {
		return optionShape{}, false
	}
	match := isOptionRegex.FindStringSubmatch(token)
	if len(match) == 0 {
		return optionShape{}, false
	}
	shape := optionShape{
		long: match[1] == "--",
		body: match[2],
	}
	if shape.long && strings.HasPrefix(match[3], "=") {
		shape.value = strings.TrimPrefix(match[3], "=")
		shape.hasValue = true
	} else if match[3] != "" {
		// '=value' on a short token is not a recognized spelling
		return optionShape{}, false
	}
	return shape, true
}

// IsOptionShaped - reports whether token looks like an option rather than a
// value: it starts with '-' and is not the literal lone dash. Used by the
// missing-argument guard to reject option shaped tokens as option values.
func IsOptionShaped(token string) bool {
	return len(token) > 1 && strings.HasPrefix(token, "-")
}
