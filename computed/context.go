/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package computed resolves specified CSS values into computed values:
// absolute representations with every relative unit and context
// dependency settled. Resolution is total: once a specified value
// parsed, computing it cannot fail. Every function here is a pure
// function of (value, context), so callers may shard resolutions across
// properties or elements freely.
package computed

import (
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/arachim/units"
)

// Display is the computed display mode of an element.
type Display int

const (
	DisplayNone Display = iota
	DisplayInline
	DisplayBlock
	DisplayInlineBlock
)

// String returns the CSS keyword for the display mode.
func (d Display) String() string {
	switch d {
	case DisplayNone:
		return "none"
	case DisplayInline:
		return "inline"
	case DisplayBlock:
		return "block"
	case DisplayInlineBlock:
		return "inline-block"
	}
	return "unknown"
}

// Context is the snapshot of inherited and used style state a
// resolution needs. The cascade builds it per element; this package
// only reads it, and it must not change for the duration of a call.
type Context struct {
	// InheritedFontSize is the parent element's computed font size.
	InheritedFontSize units.Au

	// FontSize is this element's computed font size, the reference for
	// em and ex units.
	FontSize units.Au

	// RootFontSize is the root element's computed font size, the
	// reference for rem units.
	RootFontSize units.Au

	// Color is the inherited foreground color.
	Color csscolorparser.Color

	// Display is the element's computed display mode.
	Display Display

	// Positioned reports whether the element is absolutely or
	// relatively positioned.
	Positioned bool

	// Floated reports whether the element is floated.
	Floated bool

	// Border presence per edge, after border-style is applied.
	BorderTopPresent    bool
	BorderRightPresent  bool
	BorderBottomPresent bool
	BorderLeftPresent   bool

	// IsRootElement reports whether this element is the document root.
	IsRootElement bool
}
