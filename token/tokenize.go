/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"io"
	"strconv"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Tokenize lexes a CSS value string into component-value tokens.
// Whitespace and comments are dropped, function arguments are collected
// recursively, and any shape the value parsers have no use for comes
// through as a Delim token so they can reject it.
func Tokenize(input string) ([]Token, error) {
	lexer := css.NewLexer(parse.NewInputString(input))
	return scan(lexer, false)
}

// scan consumes tokens from the lexer until end of input, or until the
// closing parenthesis when collecting function arguments.
func scan(lexer *css.Lexer, inFunction bool) ([]Token, error) {
	var out []Token
	for {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			if err := lexer.Err(); err != nil && err != io.EOF {
				return nil, err
			}
			return out, nil
		case css.WhitespaceToken, css.CommentToken:
			continue
		case css.RightParenthesisToken:
			if inFunction {
				return out, nil
			}
			out = append(out, Token{Kind: Delim, Raw: string(data)})
		case css.NumberToken:
			raw := string(data)
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, err
			}
			out = append(out, Token{Kind: Number, Value: value, Raw: raw})
		case css.PercentageToken:
			raw := string(data)
			value, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
			if err != nil {
				return nil, err
			}
			out = append(out, Token{Kind: Percentage, Value: value, Raw: raw})
		case css.DimensionToken:
			raw := string(data)
			number, unit := splitDimension(raw)
			value, err := strconv.ParseFloat(number, 64)
			if err != nil {
				return nil, err
			}
			out = append(out, Token{Kind: Dimension, Value: value, Unit: unit, Raw: raw})
		case css.IdentToken:
			raw := string(data)
			out = append(out, Token{Kind: Ident, Ident: raw, Raw: raw})
		case css.HashToken:
			raw := string(data)
			out = append(out, Token{Kind: Hash, Ident: strings.TrimPrefix(raw, "#"), Raw: raw})
		case css.CommaToken:
			out = append(out, Token{Kind: Comma, Raw: ","})
		case css.FunctionToken:
			raw := string(data)
			args, err := scan(lexer, true)
			if err != nil {
				return nil, err
			}
			out = append(out, Token{
				Kind:  Function,
				Ident: strings.TrimSuffix(raw, "("),
				Args:  args,
				Raw:   raw,
			})
		case css.URLToken:
			raw := string(data)
			out = append(out, Token{Kind: URL, Literal: urlLiteral(raw), Raw: raw})
		default:
			out = append(out, Token{Kind: Delim, Raw: string(data)})
		}
	}
}

// splitDimension splits a dimension token into its numeric part and unit
// keyword. The numeric grammar matches what the lexer accepted: optional
// sign, digits, optional fraction, optional exponent. The exponent is
// only consumed when followed by a digit, so the "e" of "2em" stays with
// the unit.
func splitDimension(raw string) (number, unit string) {
	i, n := 0, len(raw)
	if i < n && (raw[i] == '+' || raw[i] == '-') {
		i++
	}
	for i < n && isDigit(raw[i]) {
		i++
	}
	if i < n && raw[i] == '.' {
		i++
		for i < n && isDigit(raw[i]) {
			i++
		}
	}
	if i < n && (raw[i] == 'e' || raw[i] == 'E') {
		j := i + 1
		if j < n && (raw[j] == '+' || raw[j] == '-') {
			j++
		}
		if j < n && isDigit(raw[j]) {
			i = j
			for i < n && isDigit(raw[i]) {
				i++
			}
		}
	}
	return raw[:i], raw[i:]
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// urlLiteral extracts the unresolved URL text from a "url(...)" token,
// dropping the wrapper and any quotes.
func urlLiteral(raw string) string {
	s := raw
	if len(s) >= 4 && strings.EqualFold(s[:4], "url(") {
		s = s[4:]
	}
	s = strings.TrimSuffix(s, ")")
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}
	return s
}
