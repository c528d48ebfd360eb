// This file is part of argsh.
//
// Copyright (C) 2026  Okusi Associates
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at http://mozilla.org/MPL/2.0/.

// Package tokenqueue - FIFO view over the argument vector with single token
// lookahead and front splicing, so a bundled short option can be rewritten in
// place without the rest of the parse loop noticing.
package tokenqueue

// Queue - pending tokens, consumed left to right.
type Queue struct {
	pending []string
}

// New - builds a Queue over a copy of the given tokens.
func New(tokens []string) *Queue {
	pending := make([]string, len(tokens))
	copy(pending, tokens)
	return &Queue{pending: pending}
}

// Len - number of tokens not yet consumed.
func (q *Queue) Len() int {
	return len(q.pending)
}

// Next - pops the next token. The bool indicates whether a token was available.
func (q *Queue) Next() (string, bool) {
	if len(q.pending) == 0 {
		return "", false
	}
	token := q.pending[0]
	q.pending = q.pending[1:]
	return token, true
}

// Peek - returns the next token without consuming it.
func (q *Queue) Peek() (string, bool) {
	if len(q.pending) == 0 {
		return "", false
	}
	return q.pending[0], true
}

// PushFront - splices tokens in front of the queue, preserving their order.
// Used to replace a bundled token with its expansion.
func (q *Queue) PushFront(tokens ...string) {
	if len(tokens) == 0 {
		return
	}
	spliced := make([]string, 0, len(tokens)+len(q.pending))
	spliced = append(spliced, tokens...)
	spliced = append(spliced, q.pending...)
	q.pending = spliced
}

// Drain - consumes and returns every remaining token.
func (q *Queue) Drain() []string {
	remaining := q.pending
	q.pending = nil
	return remaining
}
