/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package computed

import (
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/arachim/specified"
	"bennypowers.dev/arachim/units"
)

// ResolveColor resolves a specified color. The authored text is
// provenance for re-serialization only and is dropped here.
func ResolveColor(v specified.Color, _ *Context) csscolorparser.Color {
	return v.Parsed
}

// ResolveLength resolves a specified length against the context's font
// sizes.
func ResolveLength(v specified.Length, cx *Context) units.Au {
	return ResolveLengthWithFontSize(v, cx.FontSize, cx.RootFontSize)
}

// ResolveLengthWithFontSize is the variant used for the font-size
// property itself: its computed value cannot depend on "the current
// computed font size", so the reference (the parent's resolved font
// size) and the root font size are explicit parameters.
func ResolveLengthWithFontSize(v specified.Length, referenceFontSize, rootFontSize units.Au) units.Au {
	switch v := v.(type) {
	case specified.Absolute:
		return units.Au(v)
	case specified.Em:
		return referenceFontSize.ScaleBy(float64(v))
	case specified.Ex:
		// x-height approximated until real font metrics are available
		const xHeight = 0.5
		return referenceFontSize.ScaleBy(float64(v) * xHeight)
	case specified.Rem:
		return rootFontSize.ScaleBy(float64(v))
	case specified.CharacterWidth:
		// The character-width-to-pixels algorithm of HTML5 § 14.5.4,
		// with the advance widths approximated from the font size.
		averageAdvance := referenceFontSize.ScaleBy(0.5)
		maxAdvance := referenceFontSize
		return averageAdvance.ScaleBy(float64(v)-1) + maxAdvance
	}
	panic("computed: unhandled specified length variant")
}

// ResolveLengthOrPercentage resolves the length leaf and passes
// percentages through unchanged.
func ResolveLengthOrPercentage(v specified.LengthOrPercentage, cx *Context) LengthOrPercentage {
	if p, ok := v.(specified.Percentage); ok {
		return Percentage(p)
	}
	return Length(ResolveLength(v.(specified.Length), cx))
}

// ResolveLengthOrPercentageOrAuto resolves the length leaf and passes
// percentages and the auto sentinel through unchanged.
func ResolveLengthOrPercentageOrAuto(v specified.LengthOrPercentageOrAuto, cx *Context) LengthOrPercentageOrAuto {
	switch v := v.(type) {
	case specified.Percentage:
		return Percentage(v)
	case specified.Auto:
		return Auto{}
	default:
		return Length(ResolveLength(v.(specified.Length), cx))
	}
}

// ResolveLengthOrPercentageOrNone resolves the length leaf and passes
// percentages and the none sentinel through unchanged.
func ResolveLengthOrPercentageOrNone(v specified.LengthOrPercentageOrNone, cx *Context) LengthOrPercentageOrNone {
	switch v := v.(type) {
	case specified.Percentage:
		return Percentage(v)
	case specified.None:
		return None{}
	default:
		return Length(ResolveLength(v.(specified.Length), cx))
	}
}

// ResolveImage resolves a specified image. URLs pass through; gradients
// keep their direction and resolve each stop's color and position.
func ResolveImage(v specified.Image, cx *Context) Image {
	switch v := v.(type) {
	case specified.ImageURL:
		return ImageURL{URL: v.URL}
	case specified.LinearGradient:
		stops := make([]ColorStop, len(v.Stops))
		for i, stop := range v.Stops {
			resolved := ColorStop{Color: ResolveColor(stop.Color, cx)}
			if stop.Position != nil {
				resolved.Position = ResolveLengthOrPercentage(stop.Position, cx)
			}
			stops[i] = resolved
		}
		return LinearGradient{Direction: v.Direction, Stops: stops}
	}
	panic("computed: unhandled specified image variant")
}
