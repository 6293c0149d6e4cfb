/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Cursor reads a token slice with exactly one slot of pushback. The
// gradient grammar never needs more lookahead than that, so the cursor
// deliberately does not support arbitrary-depth pushback.
type Cursor struct {
	tokens []Token
	pos    int
	pushed *Token
}

// NewCursor returns a cursor over the given tokens. The cursor borrows
// the slice and never modifies it.
func NewCursor(tokens []Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Next returns the next token, preferring a pushed-back one. The second
// return is false at end of input.
func (c *Cursor) Next() (Token, bool) {
	if c.pushed != nil {
		t := *c.pushed
		c.pushed = nil
		return t, true
	}
	if c.pos >= len(c.tokens) {
		return Token{}, false
	}
	t := c.tokens[c.pos]
	c.pos++
	return t, true
}

// PushBack returns a token to the cursor so the next call to Next yields
// it again. Pushing back twice without an intervening Next is a usage
// error, not a parse failure, and panics.
func (c *Cursor) PushBack(t Token) {
	if c.pushed != nil {
		panic("token: PushBack called twice without an intervening Next")
	}
	c.pushed = &t
}
