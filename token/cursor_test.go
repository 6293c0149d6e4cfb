/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "testing"

func TestCursorNext(t *testing.T) {
	tokens := []Token{
		{Kind: Ident, Ident: "red"},
		{Kind: Comma},
		{Kind: Ident, Ident: "blue"},
	}
	c := NewCursor(tokens)

	for i, want := range tokens {
		got, ok := c.Next()
		if !ok {
			t.Fatalf("Next() exhausted after %d tokens, want %d", i, len(tokens))
		}
		if got.Kind != want.Kind || got.Ident != want.Ident {
			t.Errorf("Next() #%d = %+v, want %+v", i, got, want)
		}
	}
	if _, ok := c.Next(); ok {
		t.Error("Next() returned a token past end of input")
	}
}

func TestCursorNextEmpty(t *testing.T) {
	c := NewCursor(nil)
	if _, ok := c.Next(); ok {
		t.Error("Next() on empty cursor returned a token")
	}
}

func TestCursorPushBack(t *testing.T) {
	c := NewCursor([]Token{
		{Kind: Ident, Ident: "red"},
		{Kind: Comma},
	})

	first, _ := c.Next()
	c.PushBack(first)

	again, ok := c.Next()
	if !ok {
		t.Fatal("Next() after PushBack returned no token")
	}
	if again.Ident != "red" {
		t.Errorf("Next() after PushBack = %+v, want the pushed token", again)
	}

	next, ok := c.Next()
	if !ok || next.Kind != Comma {
		t.Errorf("Next() after replay = %+v, %v, want the comma", next, ok)
	}
}

func TestCursorPushBackAtEnd(t *testing.T) {
	c := NewCursor([]Token{{Kind: Comma}})
	tok, _ := c.Next()
	c.PushBack(tok)
	if got, ok := c.Next(); !ok || got.Kind != Comma {
		t.Errorf("Next() = %+v, %v, want the pushed comma", got, ok)
	}
	if _, ok := c.Next(); ok {
		t.Error("Next() returned a token past end of input")
	}
}

func TestCursorDoublePushBackPanics(t *testing.T) {
	c := NewCursor([]Token{{Kind: Comma}})
	tok, _ := c.Next()
	c.PushBack(tok)

	defer func() {
		if recover() == nil {
			t.Error("second PushBack without Next did not panic")
		}
	}()
	c.PushBack(tok)
}
