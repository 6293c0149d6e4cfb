/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specified

import (
	"math"
	"strings"

	"bennypowers.dev/arachim/token"
)

// LinearGradient is a specified linear gradient: a direction and at
// least two color stops.
type LinearGradient struct {
	Direction AngleOrCorner
	Stops     []ColorStop
}

func (LinearGradient) isImage() {}

// ToCSS returns the canonical CSS text, e.g.
// "linear-gradient(to left top, red, blue 50%)".
func (g LinearGradient) ToCSS() string {
	var sb strings.Builder
	sb.WriteString("linear-gradient(")
	sb.WriteString(g.Direction.ToCSS())
	for _, stop := range g.Stops {
		sb.WriteString(", ")
		sb.WriteString(stop.Color.ToCSS())
		if stop.Position != nil {
			sb.WriteByte(' ')
			sb.WriteString(stop.Position.ToCSS())
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// AngleOrCorner is the direction of a linear gradient: either an angle
// or a box corner named by both axes.
type AngleOrCorner interface {
	isAngleOrCorner()
	ToCSS() string
}

func (Angle) isAngleOrCorner() {}

// Corner names a box corner by a horizontal and a vertical direction.
type Corner struct {
	Horizontal HorizontalDirection
	Vertical   VerticalDirection
}

func (Corner) isAngleOrCorner() {}

// ToCSS returns the corner in "to <horizontal> <vertical>" form.
func (c Corner) ToCSS() string {
	return "to " + c.Horizontal.String() + " " + c.Vertical.String()
}

// HorizontalDirection is the horizontal half of a gradient corner.
type HorizontalDirection int

const (
	DirectionLeft HorizontalDirection = iota
	DirectionRight
)

// String returns the keyword text.
func (d HorizontalDirection) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

// VerticalDirection is the vertical half of a gradient corner.
type VerticalDirection int

const (
	DirectionTop VerticalDirection = iota
	DirectionBottom
)

// String returns the keyword text.
func (d VerticalDirection) String() string {
	if d == DirectionTop {
		return "top"
	}
	return "bottom"
}

// ColorStop is one color stop of a gradient. A nil Position means the
// author gave none; placing such a stop halfway between its neighbors is
// the rendering consumer's job, not this package's.
type ColorStop struct {
	Color    Color
	Position LengthOrPercentage
}

// ParseLinearGradient parses the arguments of a linear-gradient()
// function. The grammar needs one token of lookahead: a leading token
// that is neither an angle dimension nor "to" is pushed back and the
// direction defaults to "to bottom" (π radians), with no comma required
// before the first stop.
func ParseLinearGradient(args []token.Token) (LinearGradient, error) {
	source := token.NewCursor(args)

	first, ok := source.Next()
	if !ok {
		return LinearGradient{}, ErrInvalid
	}

	var direction AngleOrCorner
	commaRequired := false
	switch {
	case first.Kind == token.Dimension:
		if angle, err := ParseAngleDimension(first.Value, first.Unit); err == nil {
			direction = angle
			commaRequired = true
		} else {
			source.PushBack(first)
			direction = Angle(math.Pi)
		}
	case first.Kind == token.Ident && strings.EqualFold(first.Ident, "to"):
		corner, err := parseGradientCorner(source)
		if err != nil {
			return LinearGradient{}, err
		}
		direction = corner
		commaRequired = true
	default:
		source.PushBack(first)
		direction = Angle(math.Pi)
	}

	var stops []ColorStop
	if commaRequired {
		switch t, ok := source.Next(); {
		case !ok:
			// direction only, no stops: fails the minimum below
		case t.Kind == token.Comma:
			var err error
			stops, err = parseColorStops(source)
			if err != nil {
				return LinearGradient{}, err
			}
		default:
			return LinearGradient{}, ErrInvalid
		}
	} else {
		var err error
		stops, err = parseColorStops(source)
		if err != nil {
			return LinearGradient{}, err
		}
	}

	if len(stops) < 2 {
		return LinearGradient{}, ErrInvalid
	}
	return LinearGradient{Direction: direction, Stops: stops}, nil
}

// parseGradientCorner reads the identifiers after "to" until a comma or
// end of input. Each axis may be set at most once. A single axis
// resolves to the equivalent angle; both axes resolve to a Corner; a
// bare "to" is rejected.
func parseGradientCorner(source *token.Cursor) (AngleOrCorner, error) {
	var horizontal *HorizontalDirection
	var vertical *VerticalDirection
loop:
	for {
		t, ok := source.Next()
		if !ok {
			break
		}
		switch t.Kind {
		case token.Ident:
			switch {
			case strings.EqualFold(t.Ident, "top") && vertical == nil:
				v := DirectionTop
				vertical = &v
			case strings.EqualFold(t.Ident, "bottom") && vertical == nil:
				v := DirectionBottom
				vertical = &v
			case strings.EqualFold(t.Ident, "left") && horizontal == nil:
				h := DirectionLeft
				horizontal = &h
			case strings.EqualFold(t.Ident, "right") && horizontal == nil:
				h := DirectionRight
				horizontal = &h
			default:
				return nil, ErrInvalid
			}
		case token.Comma:
			source.PushBack(t)
			break loop
		default:
			return nil, ErrInvalid
		}
	}

	switch {
	case horizontal == nil && vertical != nil && *vertical == DirectionTop:
		return Angle(0), nil
	case horizontal != nil && vertical == nil && *horizontal == DirectionRight:
		return Angle(math.Pi * 0.5), nil
	case horizontal == nil && vertical != nil && *vertical == DirectionBottom:
		return Angle(math.Pi), nil
	case horizontal != nil && vertical == nil && *horizontal == DirectionLeft:
		return Angle(math.Pi * 1.5), nil
	case horizontal != nil && vertical != nil:
		return Corner{Horizontal: *horizontal, Vertical: *vertical}, nil
	}
	return nil, ErrInvalid
}

// parseColorStops parses a comma-separated stop list until end of input.
func parseColorStops(source *token.Cursor) ([]ColorStop, error) {
	stop, err := parseColorStop(source)
	if err != nil {
		return nil, err
	}
	stops := []ColorStop{stop}
	for {
		t, ok := source.Next()
		if !ok {
			return stops, nil
		}
		if t.Kind != token.Comma {
			return nil, ErrInvalid
		}
		stop, err = parseColorStop(source)
		if err != nil {
			return nil, err
		}
		stops = append(stops, stop)
	}
}

// parseColorStop parses one stop: a required color, then an optional
// position. A following comma is pushed back and means no position; any
// other token must parse as a length or percentage or the whole stop
// fails.
func parseColorStop(source *token.Cursor) (ColorStop, error) {
	t, ok := source.Next()
	if !ok {
		return ColorStop{}, ErrInvalid
	}
	color, err := ParseColor(t)
	if err != nil {
		return ColorStop{}, err
	}

	next, ok := source.Next()
	if !ok {
		return ColorStop{Color: color}, nil
	}
	if next.Kind == token.Comma {
		source.PushBack(next)
		return ColorStop{Color: color}, nil
	}
	position, err := ParseLengthOrPercentage(next)
	if err != nil {
		return ColorStop{}, err
	}
	return ColorStop{Color: color, Position: position}, nil
}
