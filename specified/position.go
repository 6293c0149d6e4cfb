/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specified

import (
	"strings"

	"bennypowers.dev/arachim/token"
)

// PositionComponent is one component of a background-position value:
// a length, a percentage, or one of the position keywords.
// See https://drafts.csswg.org/css2/#propdef-background-position.
type PositionComponent interface {
	isPositionComponent()
	ToCSS() string
}

// PositionKeyword is a keyword position component.
type PositionKeyword int

const (
	PositionCenter PositionKeyword = iota
	PositionLeft
	PositionRight
	PositionTop
	PositionBottom
)

func (Absolute) isPositionComponent()        {}
func (Em) isPositionComponent()              {}
func (Ex) isPositionComponent()              {}
func (Rem) isPositionComponent()             {}
func (CharacterWidth) isPositionComponent()  {}
func (Percentage) isPositionComponent()      {}
func (PositionKeyword) isPositionComponent() {}

// ToCSS returns the keyword text.
func (k PositionKeyword) ToCSS() string {
	switch k {
	case PositionCenter:
		return "center"
	case PositionLeft:
		return "left"
	case PositionRight:
		return "right"
	case PositionTop:
		return "top"
	case PositionBottom:
		return "bottom"
	}
	panic("specified: unknown position keyword")
}

// ParsePositionComponent parses a single position component token.
// Dimension values are not sign-guarded here.
func ParsePositionComponent(t token.Token) (PositionComponent, error) {
	switch t.Kind {
	case token.Dimension:
		length, err := ParseLengthDimension(t.Value, t.Unit)
		if err != nil {
			return nil, err
		}
		return length.(PositionComponent), nil
	case token.Percentage:
		return Percentage(t.Value / 100), nil
	case token.Number:
		if t.Value == 0 {
			return Absolute(0), nil
		}
	case token.Ident:
		for keyword, component := range positionKeywords {
			if strings.EqualFold(t.Ident, keyword) {
				return component, nil
			}
		}
	}
	return nil, ErrInvalid
}

var positionKeywords = map[string]PositionKeyword{
	"center": PositionCenter,
	"left":   PositionLeft,
	"right":  PositionRight,
	"top":    PositionTop,
	"bottom": PositionBottom,
}

// PositionToLengthOrPercentage converts a position component to a
// length-or-percentage using the fixed keyword table: center maps to
// 50%, left and top to 0%, right and bottom to 100%.
func PositionToLengthOrPercentage(pc PositionComponent) LengthOrPercentage {
	switch pc := pc.(type) {
	case PositionKeyword:
		switch pc {
		case PositionCenter:
			return Percentage(0.5)
		case PositionLeft, PositionTop:
			return Percentage(0.0)
		case PositionRight, PositionBottom:
			return Percentage(1.0)
		}
		panic("specified: unknown position keyword")
	default:
		return pc.(LengthOrPercentage)
	}
}
