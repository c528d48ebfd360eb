// This file is part of argsh.
//
// Copyright (C) 2026  Okusi Associates
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package text - user facing strings.
package text

// ErrorMissingArgument holds the text for the missing argument error.
// It has a string placeholder '%s' for the spelling of the option missing the argument.
var ErrorMissingArgument = "Missing argument for option '%s'!"

// ErrorArgumentWithDash holds the text for the missing argument error in cases
// where the next argument looks like an option (starts with '-').
// It has a string placeholder '%s' for the spelling of the option missing the argument.
var ErrorArgumentWithDash = "Missing argument for option '%s'!\n" +
	"If passing arguments that start with '-' use --option=-argument"

// ErrorUnknownOption holds the text for the unknown option error.
// It has a string placeholder '%s' for the offending token, reported verbatim.
var ErrorUnknownOption = "Unknown option '%s'!"

// ErrorFlagWithArgument holds the text for passing an '=argument' to an option
// that doesn't accept one.
// It has two string placeholders, the option spelling and the offending token.
var ErrorFlagWithArgument = "Option '%s' doesn't accept an argument: '%s'!"

// ErrorWrongArgCount holds the text for the wrong positional argument count error.
// It has an int placeholder for the number of arguments received.
var ErrorWrongArgCount = "Wrong number of arguments: %d!"

// ErrorDisaggregation holds the text for a bundle expansion mechanism failure.
// It has two string placeholders, the offending token and the underlying error.
var ErrorDisaggregation = "Failed to expand option bundle '%s': %s"
