/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package computed

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/arachim/specified"
	"bennypowers.dev/arachim/units"
)

// LengthOrPercentage is a computed length or percentage. Lengths are
// absolute application units; percentages stay ratios for the consumer
// to resolve against whatever box they apply to.
type LengthOrPercentage interface {
	isLengthOrPercentage()

	// ToCSS returns the canonical CSS text of the value.
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

// Length is a fully resolved length in application units.
type Length units.Au

// Percentage is a ratio where 1.0 corresponds to 100%.
type Percentage float64

// Auto is the "auto" sentinel.
type Auto struct{}

// None is the "none" sentinel.
type None struct{}

func (Length) isLengthOrPercentage()     {}
func (Percentage) isLengthOrPercentage() {}

func (Length) isLengthOrPercentageOrAuto()     {}
func (Percentage) isLengthOrPercentageOrAuto() {}
func (Auto) isLengthOrPercentageOrAuto()       {}

func (Length) isLengthOrPercentageOrNone()     {}
func (Percentage) isLengthOrPercentageOrNone() {}
func (None) isLengthOrPercentageOrNone()       {}

// ToCSS returns the canonical CSS text, e.g. "12px".
func (l Length) ToCSS() string { return units.Au(l).String() }

// ToCSS returns the canonical CSS text, e.g. "50%".
func (p Percentage) ToCSS() string {
	return strconv.FormatFloat(float64(p)*100, 'f', -1, 64) + "%"
}

// ToCSS returns "auto".
func (Auto) ToCSS() string { return "auto" }

// ToCSS returns "none".
func (None) ToCSS() string { return "none" }

// Image is a computed image value.
type Image interface {
	isImage()
	ToCSS() string
}

// ImageURL is an image loaded from a resolved URL.
type ImageURL struct {
	URL *url.URL
}

func (ImageURL) isImage() {}

// ToCSS returns the canonical CSS text of the URL image.
func (i ImageURL) ToCSS() string {
	return fmt.Sprintf("url(%q)", i.URL.String())
}

// LinearGradient is a computed linear gradient. The direction carries
// over from the specified value unchanged; stop colors are opaque and
// stop positions are computed.
type LinearGradient struct {
	Direction specified.AngleOrCorner
	Stops     []ColorStop
}

func (LinearGradient) isImage() {}

// ToCSS returns the canonical CSS text of the gradient.
func (g LinearGradient) ToCSS() string {
	var sb strings.Builder
	sb.WriteString("linear-gradient(")
	sb.WriteString(g.Direction.ToCSS())
	for _, stop := range g.Stops {
		sb.WriteString(", ")
		sb.WriteString(stop.Color.HexString())
		if stop.Position != nil {
			sb.WriteByte(' ')
			sb.WriteString(stop.Position.ToCSS())
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// ColorStop is one computed color stop. A nil Position means the author
// gave none; the renderer places such stops halfway between their
// neighbors per CSS-IMAGES § 3.4.
type ColorStop struct {
	Color    csscolorparser.Color
	Position LengthOrPercentage
}
