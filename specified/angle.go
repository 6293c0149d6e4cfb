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

// Angle is an angle in radians. Angles compare by their underlying value.
type Angle float64

const (
	degToRad  = math.Pi / 180
	gradToRad = math.Pi / 200
)

// Radians returns the angle in radians.
func (a Angle) Radians() float64 { return float64(a) }

// ToCSS returns the canonical CSS text of the angle, e.g.
// "3.141592653589793rad".
func (a Angle) ToCSS() string { return formatFloat(float64(a)) + "rad" }

// ParseAngleDimension maps a numeric value and unit keyword to an angle
// per CSS-VALUES § 6.1. Accepted units are deg, grad, rad and turn.
func ParseAngleDimension(value float64, unit string) (Angle, error) {
	switch {
	case strings.EqualFold(unit, "deg"):
		return Angle(value * degToRad), nil
	case strings.EqualFold(unit, "grad"):
		return Angle(value * gradToRad), nil
	case strings.EqualFold(unit, "rad"):
		return Angle(value), nil
	case strings.EqualFold(unit, "turn"):
		return Angle(value * 2 * math.Pi), nil
	default:
		return 0, ErrInvalid
	}
}

// ParseAngle parses a single dimension token as an angle.
func ParseAngle(t token.Token) (Angle, error) {
	if t.Kind != token.Dimension {
		return 0, ErrInvalid
	}
	return ParseAngleDimension(t.Value, t.Unit)
}
