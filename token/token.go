/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides CSS component-value tokens and the single-slot
// lookahead cursor the value parsers consume them through.
package token

// Kind identifies the shape of a component value.
type Kind int

const (
	// Number is a plain numeric token with no unit.
	Number Kind = iota

	// Dimension is a number followed by a unit keyword, e.g. "12px".
	Dimension

	// Percentage is a number followed by "%".
	Percentage

	// Ident is a bare identifier, e.g. "auto" or "red".
	Ident

	// Hash is a "#"-prefixed token, e.g. a hex color.
	Hash

	// Comma separates items in a list.
	Comma

	// Function is a named function with its argument tokens, e.g.
	// "linear-gradient(...)".
	Function

	// URL is a "url(...)" literal.
	URL

	// Delim carries any other shape the tokenizer produced. Every parser
	// in this module rejects it.
	Delim
)

var kindNames = [...]string{
	Number:     "number",
	Dimension:  "dimension",
	Percentage: "percentage",
	Ident:      "ident",
	Hash:       "hash",
	Comma:      "comma",
	Function:   "function",
	URL:        "url",
	Delim:      "delim",
}

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Token is one CSS component value.
type Token struct {
	// Kind is the shape of the token.
	Kind Kind

	// Value is the numeric value for Number, Dimension and Percentage.
	// Percentage stores the authored number, so "50%" yields 50.
	Value float64

	// Unit is the unit keyword for Dimension, as authored.
	Unit string

	// Ident is the identifier text for Ident, the value after "#" for
	// Hash, and the function name for Function.
	Ident string

	// Literal is the unresolved URL text for URL.
	Literal string

	// Args are the argument tokens for Function, commas included.
	Args []Token

	// Raw is the original source text of the token. For Function it
	// covers only the name and opening parenthesis.
	Raw string
}
