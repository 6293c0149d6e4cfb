/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specified

import (
	"errors"
	"math"
	"testing"
)

// parseGradient is a test convenience: lex a full linear-gradient()
// value and parse it.
func parseGradient(t *testing.T, input string) (LinearGradient, error) {
	t.Helper()
	tok := tokenizeOne(t, input)
	return ParseLinearGradient(tok.Args)
}

func TestParseLinearGradientDefaultDirection(t *testing.T) {
	g, err := parseGradient(t, "linear-gradient(red, blue)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// No direction given: the gradient runs to the bottom, pi radians.
	angle, ok := g.Direction.(Angle)
	if !ok {
		t.Fatalf("direction = %#v, want an angle", g.Direction)
	}
	if angle.Radians() != math.Pi {
		t.Errorf("angle = %v, want pi", angle.Radians())
	}
	if len(g.Stops) != 2 {
		t.Fatalf("got %d stops, want 2", len(g.Stops))
	}
	for i, stop := range g.Stops {
		if stop.Position != nil {
			t.Errorf("stop %d has position %#v, want none", i, stop.Position)
		}
	}
	if g.Stops[0].Color.ToCSS() != "red" || g.Stops[1].Color.ToCSS() != "blue" {
		t.Errorf("stops serialize as %q, %q", g.Stops[0].Color.ToCSS(), g.Stops[1].Color.ToCSS())
	}
}

func TestParseLinearGradientAngleDirection(t *testing.T) {
	g, err := parseGradient(t, "linear-gradient(45deg, red, blue)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	angle, ok := g.Direction.(Angle)
	if !ok {
		t.Fatalf("direction = %#v, want an angle", g.Direction)
	}
	if math.Abs(angle.Radians()-math.Pi/4) > angleEpsilon {
		t.Errorf("angle = %v, want pi/4", angle.Radians())
	}
}

func TestParseLinearGradientSideDirections(t *testing.T) {
	tests := []struct {
		side string
		want float64
	}{
		{"top", 0},
		{"right", math.Pi * 0.5},
		{"bottom", math.Pi},
		{"left", math.Pi * 1.5},
	}
	for _, tt := range tests {
		t.Run(tt.side, func(t *testing.T) {
			g, err := parseGradient(t, "linear-gradient(to "+tt.side+", red, blue)")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			angle, ok := g.Direction.(Angle)
			if !ok {
				t.Fatalf("direction = %#v, want an angle", g.Direction)
			}
			if angle.Radians() != tt.want {
				t.Errorf("angle = %v, want %v", angle.Radians(), tt.want)
			}
		})
	}
}

func TestParseLinearGradientCornerDirections(t *testing.T) {
	g, err := parseGradient(t, "linear-gradient(to left top, red, blue)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	corner, ok := g.Direction.(Corner)
	if !ok {
		t.Fatalf("direction = %#v, want a corner", g.Direction)
	}
	if corner.Horizontal != DirectionLeft || corner.Vertical != DirectionTop {
		t.Errorf("corner = %#v, want left top", corner)
	}

	// Keyword order does not matter.
	g, err = parseGradient(t, "linear-gradient(to bottom right, red, blue)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	corner, ok = g.Direction.(Corner)
	if !ok {
		t.Fatalf("direction = %#v, want a corner", g.Direction)
	}
	if corner.Horizontal != DirectionRight || corner.Vertical != DirectionBottom {
		t.Errorf("corner = %#v, want right bottom", corner)
	}
}

func TestParseLinearGradientInvalidDirections(t *testing.T) {
	invalid := []string{
		// both keywords on the same axis
		"linear-gradient(to top bottom, red, blue)",
		"linear-gradient(to left right, red, blue)",
		// bare "to"
		"linear-gradient(to, red, blue)",
		// unknown keyword after "to"
		"linear-gradient(to middle, red, blue)",
		// missing comma after an explicit direction
		"linear-gradient(45deg red, blue)",
		"linear-gradient(to top red, blue)",
	}
	for _, input := range invalid {
		if _, err := parseGradient(t, input); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: got %v, want ErrInvalid", input, err)
		}
	}
}

func TestParseLinearGradientStopPositions(t *testing.T) {
	g, err := parseGradient(t, "linear-gradient(red 25%, green, blue 10px)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(g.Stops) != 3 {
		t.Fatalf("got %d stops, want 3", len(g.Stops))
	}
	if g.Stops[0].Position != Percentage(0.25) {
		t.Errorf("stop 0 position = %#v, want 25%%", g.Stops[0].Position)
	}
	if g.Stops[1].Position != nil {
		t.Errorf("stop 1 position = %#v, want none", g.Stops[1].Position)
	}
	if g.Stops[2].Position != Absolute(600) {
		t.Errorf("stop 2 position = %#v, want 10px", g.Stops[2].Position)
	}
}

func TestParseLinearGradientTooFewStops(t *testing.T) {
	invalid := []string{
		"linear-gradient()",
		"linear-gradient(red)",
		"linear-gradient(45deg)",
		"linear-gradient(45deg, red)",
		"linear-gradient(to top, red)",
		// a trailing comma promises a stop that never comes
		"linear-gradient(red, blue,)",
	}
	for _, input := range invalid {
		if _, err := parseGradient(t, input); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: got %v, want ErrInvalid", input, err)
		}
	}
}

func TestParseLinearGradientInvalidStops(t *testing.T) {
	invalid := []string{
		// not a color
		"linear-gradient(12px, red, blue)",
		// position before color
		"linear-gradient(25% red, blue)",
		// two positions on one stop
		"linear-gradient(red 25% 50%, blue)",
	}
	for _, input := range invalid {
		if _, err := parseGradient(t, input); !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: got %v, want ErrInvalid", input, err)
		}
	}
}

func TestLinearGradientToCSS(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			"linear-gradient(red, blue)",
			"linear-gradient(3.141592653589793rad, red, blue)",
		},
		{
			"linear-gradient(to left top, red 25%, blue)",
			"linear-gradient(to left top, red 25%, blue)",
		},
	}
	for _, tt := range tests {
		g, err := parseGradient(t, tt.input)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.input, err)
		}
		if got := g.ToCSS(); got != tt.want {
			t.Errorf("%s: ToCSS() = %q, want %q", tt.input, got, tt.want)
		}
	}
}
