/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specified provides the typed representations of CSS values as
// they appear immediately after parsing, before any context-dependent
// resolution. Each value category is a closed union: a sealed interface
// whose variants all live in this package, so consumers can type-switch
// exhaustively and a new variant forces every switch to be revisited.
package specified

import (
	"strconv"
	"strings"

	"bennypowers.dev/arachim/token"
	"bennypowers.dev/arachim/units"
)

// Length is a specified length value.
type Length interface {
	isLength()

	// ToCSS returns the canonical CSS text of the value.
	ToCSS() string
}

// LengthOrPercentage is a specified length or percentage.
type LengthOrPercentage interface {
	isLengthOrPercentage()
	ToCSS() string
}

// LengthOrPercentageOrAuto additionally admits the "auto" sentinel.
type LengthOrPercentageOrAuto interface {
	isLengthOrPercentageOrAuto()
	ToCSS() string
}

// LengthOrPercentageOrNone additionally admits the "none" sentinel.
type LengthOrPercentageOrNone interface {
	isLengthOrPercentageOrNone()
	ToCSS() string
}

// Absolute is a length fully resolved at parse time, in application units.
type Absolute units.Au

// Em is a multiple of the element's font size.
type Em float64

// Ex is a multiple of the font's x-height.
type Ex float64

// Rem is a multiple of the root element's font size.
type Rem float64

// CharacterWidth is the HTML5 "character width" of HTML5 § 14.5.4. It is
// never produced from author CSS; it is synthesized only by legacy
// presentational-attribute translation outside this module.
type CharacterWidth int32

// Percentage is a ratio where 1.0 corresponds to 100%.
type Percentage float64

// Auto is the "auto" sentinel.
type Auto struct{}

// None is the "none" sentinel.
type None struct{}

func (Absolute) isLength()       {}
func (Em) isLength()             {}
func (Ex) isLength()             {}
func (Rem) isLength()            {}
func (CharacterWidth) isLength() {}

func (Absolute) isLengthOrPercentage()       {}
func (Em) isLengthOrPercentage()             {}
func (Ex) isLengthOrPercentage()             {}
func (Rem) isLengthOrPercentage()            {}
func (CharacterWidth) isLengthOrPercentage() {}
func (Percentage) isLengthOrPercentage()     {}

func (Absolute) isLengthOrPercentageOrAuto()       {}
func (Em) isLengthOrPercentageOrAuto()             {}
func (Ex) isLengthOrPercentageOrAuto()             {}
func (Rem) isLengthOrPercentageOrAuto()            {}
func (CharacterWidth) isLengthOrPercentageOrAuto() {}
func (Percentage) isLengthOrPercentageOrAuto()     {}
func (Auto) isLengthOrPercentageOrAuto()           {}

func (Absolute) isLengthOrPercentageOrNone()       {}
func (Em) isLengthOrPercentageOrNone()             {}
func (Ex) isLengthOrPercentageOrNone()             {}
func (Rem) isLengthOrPercentageOrNone()            {}
func (CharacterWidth) isLengthOrPercentageOrNone() {}
func (Percentage) isLengthOrPercentageOrNone()     {}
func (None) isLengthOrPercentageOrNone()           {}

// ToCSS returns the canonical CSS text, e.g. "12px".
func (a Absolute) ToCSS() string { return units.Au(a).String() }

// ToCSS returns the canonical CSS text, e.g. "1.5em".
func (v Em) ToCSS() string { return formatFloat(float64(v)) + "em" }

// ToCSS returns the canonical CSS text, e.g. "2ex".
func (v Ex) ToCSS() string { return formatFloat(float64(v)) + "ex" }

// ToCSS returns the canonical CSS text, e.g. "1rem".
func (v Rem) ToCSS() string { return formatFloat(float64(v)) + "rem" }

// ToCSS panics: character widths are synthetic and internal-only, so
// reaching serialization is a programming error, not bad input.
func (CharacterWidth) ToCSS() string {
	panic("specified: internal character-width lengths have no CSS serialization")
}

// ToCSS returns the canonical CSS text, e.g. "50%".
func (v Percentage) ToCSS() string { return formatFloat(float64(v) * 100) + "%" }

// ToCSS returns "auto".
func (Auto) ToCSS() string { return "auto" }

// ToCSS returns "none".
func (None) ToCSS() string { return "none" }

// ParseLengthDimension maps a numeric value and unit keyword to a length.
// Absolute units resolve immediately to application units, truncating
// toward zero; font-relative units stay symbolic until computation.
func ParseLengthDimension(value float64, unit string) (Length, error) {
	switch strings.ToLower(unit) {
	case "px":
		return Absolute(units.FromPx(value)), nil
	case "in":
		return Absolute(units.Au(value * units.AuPerIn)), nil
	case "cm":
		return Absolute(units.Au(value * units.AuPerCm)), nil
	case "mm":
		return Absolute(units.Au(value * units.AuPerMm)), nil
	case "pt":
		return Absolute(units.Au(value * units.AuPerPt)), nil
	case "pc":
		return Absolute(units.Au(value * units.AuPerPc)), nil
	case "em":
		return Em(value), nil
	case "ex":
		return Ex(value), nil
	case "rem":
		return Rem(value), nil
	default:
		return nil, ErrInvalid
	}
}

// ParseLength parses a single length token, negative values permitted.
func ParseLength(t token.Token) (Length, error) {
	return parseLength(t, true)
}

// ParseNonNegativeLength parses a single length token, rejecting negative
// dimensions.
func ParseNonNegativeLength(t token.Token) (Length, error) {
	return parseLength(t, false)
}

// A bare number is accepted only when it is exactly zero, and then
// regardless of the sign guard: zero has no sign. Dimensions are guarded.
// Do not unify the two checks; they accept different inputs.
func parseLength(t token.Token, negativeOK bool) (Length, error) {
	switch t.Kind {
	case token.Dimension:
		if negativeOK || t.Value >= 0 {
			return ParseLengthDimension(t.Value, t.Unit)
		}
	case token.Number:
		if t.Value == 0 {
			return Absolute(0), nil
		}
	}
	return nil, ErrInvalid
}

// ParseLengthOrPercentage parses a single length or percentage token,
// negative values permitted.
func ParseLengthOrPercentage(t token.Token) (LengthOrPercentage, error) {
	return parseLengthOrPercentage(t, true)
}

// ParseNonNegativeLengthOrPercentage rejects negative dimensions and
// percentages.
func ParseNonNegativeLengthOrPercentage(t token.Token) (LengthOrPercentage, error) {
	return parseLengthOrPercentage(t, false)
}

func parseLengthOrPercentage(t token.Token, negativeOK bool) (LengthOrPercentage, error) {
	switch t.Kind {
	case token.Dimension:
		if negativeOK || t.Value >= 0 {
			length, err := ParseLengthDimension(t.Value, t.Unit)
			if err != nil {
				return nil, err
			}
			return length.(LengthOrPercentage), nil
		}
	case token.Percentage:
		if negativeOK || t.Value >= 0 {
			return Percentage(t.Value / 100), nil
		}
	case token.Number:
		if t.Value == 0 {
			return Absolute(0), nil
		}
	}
	return nil, ErrInvalid
}

// ParseLengthOrPercentageOrAuto parses a single token, additionally
// accepting the case-insensitive identifier "auto".
func ParseLengthOrPercentageOrAuto(t token.Token) (LengthOrPercentageOrAuto, error) {
	return parseLengthOrPercentageOrAuto(t, true)
}

// ParseNonNegativeLengthOrPercentageOrAuto rejects negative dimensions
// and percentages.
func ParseNonNegativeLengthOrPercentageOrAuto(t token.Token) (LengthOrPercentageOrAuto, error) {
	return parseLengthOrPercentageOrAuto(t, false)
}

func parseLengthOrPercentageOrAuto(t token.Token, negativeOK bool) (LengthOrPercentageOrAuto, error) {
	switch t.Kind {
	case token.Dimension:
		if negativeOK || t.Value >= 0 {
			length, err := ParseLengthDimension(t.Value, t.Unit)
			if err != nil {
				return nil, err
			}
			return length.(LengthOrPercentageOrAuto), nil
		}
	case token.Percentage:
		if negativeOK || t.Value >= 0 {
			return Percentage(t.Value / 100), nil
		}
	case token.Number:
		if t.Value == 0 {
			return Absolute(0), nil
		}
	case token.Ident:
		if strings.EqualFold(t.Ident, "auto") {
			return Auto{}, nil
		}
	}
	return nil, ErrInvalid
}

// ParseLengthOrPercentageOrNone parses a single token, additionally
// accepting the case-insensitive identifier "none".
func ParseLengthOrPercentageOrNone(t token.Token) (LengthOrPercentageOrNone, error) {
	return parseLengthOrPercentageOrNone(t, true)
}

// ParseNonNegativeLengthOrPercentageOrNone rejects negative dimensions
// and percentages.
func ParseNonNegativeLengthOrPercentageOrNone(t token.Token) (LengthOrPercentageOrNone, error) {
	return parseLengthOrPercentageOrNone(t, false)
}

func parseLengthOrPercentageOrNone(t token.Token, negativeOK bool) (LengthOrPercentageOrNone, error) {
	switch t.Kind {
	case token.Dimension:
		if negativeOK || t.Value >= 0 {
			length, err := ParseLengthDimension(t.Value, t.Unit)
			if err != nil {
				return nil, err
			}
			return length.(LengthOrPercentageOrNone), nil
		}
	case token.Percentage:
		if negativeOK || t.Value >= 0 {
			return Percentage(t.Value / 100), nil
		}
	case token.Number:
		if t.Value == 0 {
			return Absolute(0), nil
		}
	case token.Ident:
		if strings.EqualFold(t.Ident, "none") {
			return None{}, nil
		}
	}
	return nil, ErrInvalid
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
