/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specified

import (
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/arachim/token"
)

// Color is a specified color. Parsed is the resolved color; Authored
// keeps the original identifier text purely so "red" re-serializes as
// "red" rather than its canonical form. Authored is provenance only and
// must never participate in equality used by layout.
type Color struct {
	Parsed   csscolorparser.Color
	Authored string
}

// ToCSS returns the authored identifier when there is one, otherwise the
// canonical hex form of the parsed color.
func (c Color) ToCSS() string {
	if c.Authored != "" {
		return c.Authored
	}
	return c.Parsed.HexString()
}

// Equal compares the parsed colors, ignoring authored text.
func (c Color) Equal(other Color) bool {
	return c.Parsed == other.Parsed
}

// ParseColor parses a single color token. Color syntax itself is
// delegated to csscolorparser; this adapter only reassembles the token
// into source text and records authored identifiers.
func ParseColor(t token.Token) (Color, error) {
	var text string
	switch t.Kind {
	case token.Ident:
		text = t.Ident
	case token.Hash:
		text = "#" + t.Ident
	case token.Function:
		text = functionText(t)
	default:
		return Color{}, ErrInvalid
	}
	parsed, err := csscolorparser.Parse(text)
	if err != nil {
		return Color{}, ErrInvalid
	}
	color := Color{Parsed: parsed}
	if t.Kind == token.Ident {
		color.Authored = t.Ident
	}
	return color, nil
}

// functionText reassembles a function token into source text for the
// color parser. Commas keep their place; other adjacent tokens are
// separated by a space so modern slash syntax survives.
func functionText(t token.Token) string {
	var sb strings.Builder
	sb.WriteString(t.Ident)
	sb.WriteByte('(')
	for i, arg := range t.Args {
		if i > 0 && arg.Kind != token.Comma && t.Args[i-1].Kind != token.Comma {
			sb.WriteByte(' ')
		}
		sb.WriteString(rawText(arg))
	}
	sb.WriteByte(')')
	return sb.String()
}

func rawText(t token.Token) string {
	if t.Kind == token.Function {
		return functionText(t)
	}
	return t.Raw
}
