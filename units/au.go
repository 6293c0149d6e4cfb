/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package units provides the fixed-point application unit used for all
// resolved CSS lengths. 60 units equal one pixel, which makes every
// absolute CSS unit (in, cm, mm, pt, pc) exactly representable.
package units

import "strconv"

// Au is a length in application units.
type Au int32

// Conversion ratios between application units and CSS absolute units.
// These are compile-time constants; 1in is defined as 96px per CSS Values.
const (
	AuPerPx float64 = 60
	AuPerIn float64 = AuPerPx * 96
	AuPerCm float64 = AuPerIn / 2.54
	AuPerMm float64 = AuPerIn / 25.4
	AuPerPt float64 = AuPerIn / 72
	AuPerPc float64 = AuPerPt * 12
)

// FromPx converts a pixel value to application units. The fractional part
// is truncated toward zero, never rounded: layout depends on this being
// reproducible bit for bit.
func FromPx(px float64) Au {
	return Au(px * AuPerPx)
}

// ScaleBy multiplies by the given factor, truncating toward zero.
func (a Au) ScaleBy(factor float64) Au {
	return Au(float64(a) * factor)
}

// Px returns the length in pixels.
func (a Au) Px() float64 {
	return float64(a) / AuPerPx
}

// String returns the canonical CSS text of the length, e.g. "12px".
func (a Au) String() string {
	return strconv.FormatFloat(a.Px(), 'f', -1, 64) + "px"
}
