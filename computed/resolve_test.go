/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package computed

import (
	"net/url"
	"testing"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/arachim/specified"
	"bennypowers.dev/arachim/units"
)

// testContext uses a 10px font size and a 16px root font size so em and
// rem resolutions are visibly different.
func testContext() *Context {
	return &Context{
		InheritedFontSize: units.FromPx(10),
		FontSize:          units.FromPx(10),
		RootFontSize:      units.FromPx(16),
		Display:           DisplayInline,
	}
}

func TestResolveLength(t *testing.T) {
	cx := testContext()
	tests := []struct {
		name string
		v    specified.Length
		want units.Au
	}{
		{"absolute is identity", specified.Absolute(720), 720},
		{"em scales by font size", specified.Em(2), units.FromPx(20)},
		{"fractional em", specified.Em(1.5), units.FromPx(15)},
		{"ex is half the font size", specified.Ex(2), units.FromPx(10)},
		{"rem scales by root font size", specified.Rem(1.5), units.FromPx(24)},
		{"zero em", specified.Em(0), 0},
		{"negative em", specified.Em(-1), units.FromPx(-10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveLength(tt.v, cx); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolveCharacterWidth(t *testing.T) {
	cx := testContext()
	fontSize := cx.FontSize

	// One character is one max advance; every further character adds an
	// average advance of half the font size.
	tests := []struct {
		chars int32
		want  units.Au
	}{
		{1, fontSize},
		{2, fontSize.ScaleBy(0.5) + fontSize},
		{3, fontSize.ScaleBy(0.5).ScaleBy(2) + fontSize},
	}
	for _, tt := range tests {
		got := ResolveLength(specified.CharacterWidth(tt.chars), cx)
		if got != tt.want {
			t.Errorf("CharacterWidth(%d) = %v, want %v", tt.chars, got, tt.want)
		}
	}
}

func TestResolveLengthWithFontSize(t *testing.T) {
	// The explicit reference overrides whatever a context would say;
	// this is how font-size itself resolves against the parent.
	parent := units.FromPx(20)
	root := units.FromPx(16)

	if got := ResolveLengthWithFontSize(specified.Em(2), parent, root); got != units.FromPx(40) {
		t.Errorf("em against parent = %v, want %v", got, units.FromPx(40))
	}
	if got := ResolveLengthWithFontSize(specified.Rem(2), parent, root); got != units.FromPx(32) {
		t.Errorf("rem against root = %v, want %v", got, units.FromPx(32))
	}
}

func TestResolveLengthOrPercentage(t *testing.T) {
	cx := testContext()

	if got := ResolveLengthOrPercentage(specified.Percentage(0.25), cx); got != Percentage(0.25) {
		t.Errorf("percentage = %#v, want pass-through", got)
	}
	if got := ResolveLengthOrPercentage(specified.Em(2), cx); got != Length(units.FromPx(20)) {
		t.Errorf("em = %#v, want %v", got, units.FromPx(20))
	}
}

func TestResolveLengthOrPercentageOrAuto(t *testing.T) {
	cx := testContext()

	if got := ResolveLengthOrPercentageOrAuto(specified.Auto{}, cx); got != (Auto{}) {
		t.Errorf("auto = %#v, want pass-through", got)
	}
	if got := ResolveLengthOrPercentageOrAuto(specified.Percentage(1), cx); got != Percentage(1) {
		t.Errorf("percentage = %#v, want pass-through", got)
	}
	if got := ResolveLengthOrPercentageOrAuto(specified.Absolute(720), cx); got != Length(720) {
		t.Errorf("length = %#v, want 720", got)
	}
}

func TestResolveLengthOrPercentageOrNone(t *testing.T) {
	cx := testContext()

	if got := ResolveLengthOrPercentageOrNone(specified.None{}, cx); got != (None{}) {
		t.Errorf("none = %#v, want pass-through", got)
	}
	if got := ResolveLengthOrPercentageOrNone(specified.Rem(1), cx); got != Length(units.FromPx(16)) {
		t.Errorf("rem = %#v, want %v", got, units.FromPx(16))
	}
}

func TestResolveColor(t *testing.T) {
	red, err := csscolorparser.Parse("red")
	if err != nil {
		t.Fatal(err)
	}
	v := specified.Color{Parsed: red, Authored: "red"}
	if got := ResolveColor(v, testContext()); got != red {
		t.Errorf("got %v, want the parsed color", got)
	}
}

func TestResolveImageURL(t *testing.T) {
	u, _ := url.Parse("http://example.com/a.png")
	got := ResolveImage(specified.ImageURL{URL: u}, testContext())
	imageURL, ok := got.(ImageURL)
	if !ok {
		t.Fatalf("got %#v, want ImageURL", got)
	}
	if imageURL.URL != u {
		t.Errorf("URL = %v, want the same URL", imageURL.URL)
	}
}

func TestResolveImageGradient(t *testing.T) {
	cx := testContext()
	red, _ := csscolorparser.Parse("red")
	blue, _ := csscolorparser.Parse("blue")

	v := specified.LinearGradient{
		Direction: specified.Angle(0),
		Stops: []specified.ColorStop{
			{Color: specified.Color{Parsed: red}, Position: specified.Percentage(0.1)},
			{Color: specified.Color{Parsed: blue}, Position: specified.Em(2)},
			{Color: specified.Color{Parsed: red}},
		},
	}

	got := ResolveImage(v, cx)
	gradient, ok := got.(LinearGradient)
	if !ok {
		t.Fatalf("got %#v, want LinearGradient", got)
	}
	if gradient.Direction != specified.Angle(0) {
		t.Errorf("direction = %#v, want the specified angle", gradient.Direction)
	}
	if len(gradient.Stops) != 3 {
		t.Fatalf("got %d stops, want 3", len(gradient.Stops))
	}
	if gradient.Stops[0].Position != Percentage(0.1) {
		t.Errorf("stop 0 position = %#v, want 10%%", gradient.Stops[0].Position)
	}
	if gradient.Stops[1].Position != Length(units.FromPx(20)) {
		t.Errorf("stop 1 position = %#v, want 20px", gradient.Stops[1].Position)
	}
	if gradient.Stops[2].Position != nil {
		t.Errorf("stop 2 position = %#v, want none", gradient.Stops[2].Position)
	}
	if gradient.Stops[1].Color != blue {
		t.Errorf("stop 1 color = %v, want blue", gradient.Stops[1].Color)
	}
}

func TestDisplayString(t *testing.T) {
	tests := []struct {
		d    Display
		want string
	}{
		{DisplayNone, "none"},
		{DisplayInline, "inline"},
		{DisplayBlock, "block"},
		{DisplayInlineBlock, "inline-block"},
	}
	for _, tt := range tests {
		if got := tt.d.String(); got != tt.want {
			t.Errorf("Display(%d).String() = %q, want %q", tt.d, got, tt.want)
		}
	}
}
