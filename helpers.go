// This file is part of argsh.
//
// Copyright (C) 2026  Okusi Associates
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

package argsh

import "github.com/OkusiAssociates/argsh/text"

// RequireArgs - validates the positional argument arity after a successful
// parse. min is the smallest acceptable count; max < 0 means no upper bound.
// A count outside the range is a usage error (exit code 2).
func (r *Result) RequireArgs(min, max int) error {
	n := len(r.Positionals)
	if n < min || (max >= 0 && n > max) {
		return newParseError(ExitUsage, ErrorUsage, text.ErrorWrongArgCount, n)
	}
	return nil
}
