/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides the render command for arachim.
package render

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"bennypowers.dev/arachim/computed"
	"bennypowers.dev/arachim/config"
	"bennypowers.dev/arachim/fs"
	"bennypowers.dev/arachim/specified"
	"bennypowers.dev/arachim/token"
	"bennypowers.dev/arachim/units"
)

// Cmd is the render cobra command.
var Cmd = &cobra.Command{
	Use:   "render [gradient]",
	Short: "Render a linear gradient as a terminal swatch strip",
	Long: `Parse a linear-gradient() value, resolve it to its computed form,
and print a strip of 24-bit ANSI color cells sampled along the
gradient line.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Int("cells", 40, "Number of swatch cells")
	Cmd.Flags().Float64("width", 400, "Gradient line length in px, for length stop positions")
	Cmd.Flags().Float64("font-size", 0, "Font size in px for em/ex/rem stop positions (default from config, else 16)")
}

func run(cmd *cobra.Command, args []string) error {
	cells, _ := cmd.Flags().GetInt("cells")
	width, _ := cmd.Flags().GetFloat64("width")
	fontSizeFlag, _ := cmd.Flags().GetFloat64("font-size")

	if cells < 1 {
		return fmt.Errorf("cells must be at least 1")
	}

	cfg := config.LoadOrDefault(fs.NewOSFileSystem(), ".")
	fontSize := fontSizeFlag
	if fontSize == 0 {
		fontSize = cfg.FontSizePx
	}
	rootFontSize := cfg.RootFontSizePx
	if rootFontSize == 0 {
		rootFontSize = fontSize
	}

	tokens, err := token.Tokenize(args[0])
	if err != nil {
		return fmt.Errorf("error tokenizing: %w", err)
	}
	if len(tokens) != 1 {
		return fmt.Errorf("expected a single image value, got %d tokens", len(tokens))
	}
	image, err := specified.ParseImage(tokens[0], nil)
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", args[0], err)
	}
	gradient, ok := image.(specified.LinearGradient)
	if !ok {
		return fmt.Errorf("only linear gradients can be rendered")
	}

	cx := &computed.Context{
		InheritedFontSize: units.FromPx(fontSize),
		FontSize:          units.FromPx(fontSize),
		RootFontSize:      units.FromPx(rootFontSize),
	}
	resolved := computed.ResolveImage(gradient, cx).(computed.LinearGradient)

	strip, err := Strip(resolved, cells, width)
	if err != nil {
		return err
	}
	fmt.Println(strip)
	fmt.Println(resolved.ToCSS())
	return nil
}

// Strip renders a computed gradient as a line of 24-bit ANSI background
// cells sampled at cell centers along the gradient line.
func Strip(g computed.LinearGradient, cells int, widthPx float64) (string, error) {
	offsets, err := StopOffsets(g.Stops, widthPx)
	if err != nil {
		return "", err
	}
	colors := make([]colorful.Color, len(g.Stops))
	for i, stop := range g.Stops {
		colors[i] = colorful.Color{R: stop.Color.R, G: stop.Color.G, B: stop.Color.B}
	}

	var sb strings.Builder
	for i := 0; i < cells; i++ {
		t := (float64(i) + 0.5) / float64(cells)
		r, gr, b := sample(offsets, colors, t).Clamped().RGB255()
		fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm ", r, gr, b)
	}
	sb.WriteString("\x1b[0m")
	return sb.String(), nil
}

// StopOffsets regularizes stop positions into fractions of the gradient
// line, applying the CSS-IMAGES § 3.4 fixups: an unpositioned first stop
// sits at 0, an unpositioned last stop at 1, a stop positioned before a
// predecessor is bumped up to it, and interior unpositioned stops are
// spaced evenly between their positioned neighbors.
func StopOffsets(stops []computed.ColorStop, widthPx float64) ([]float64, error) {
	offsets := make([]float64, len(stops))
	for i, stop := range stops {
		switch pos := stop.Position.(type) {
		case nil:
			offsets[i] = -1
		case computed.Percentage:
			offsets[i] = float64(pos)
		case computed.Length:
			if widthPx <= 0 {
				return nil, fmt.Errorf("length stop positions need a positive gradient width")
			}
			offsets[i] = units.Au(pos).Px() / widthPx
		}
	}

	if offsets[0] < 0 {
		offsets[0] = 0
	}
	if offsets[len(offsets)-1] < 0 {
		offsets[len(offsets)-1] = 1
	}

	floor := offsets[0]
	for i := 1; i < len(offsets); i++ {
		if offsets[i] < 0 {
			continue
		}
		if offsets[i] < floor {
			offsets[i] = floor
		}
		floor = offsets[i]
	}

	for i := 1; i < len(offsets); i++ {
		if offsets[i] >= 0 {
			continue
		}
		next := i
		for offsets[next] < 0 {
			next++
		}
		// Space the run of unpositioned stops evenly between the
		// positioned ones flanking it.
		lo, hi := offsets[i-1], offsets[next]
		intervals := next - i + 1
		for j := i; j < next; j++ {
			offsets[j] = lo + (hi-lo)*float64(j-i+1)/float64(intervals)
		}
		i = next
	}
	return offsets, nil
}

// sample returns the gradient color at fraction t of the line, blending
// linearly in RGB between the flanking stops.
func sample(offsets []float64, colors []colorful.Color, t float64) colorful.Color {
	if t <= offsets[0] {
		return colors[0]
	}
	last := len(offsets) - 1
	if t >= offsets[last] {
		return colors[last]
	}
	for i := 0; i < last; i++ {
		if t > offsets[i+1] {
			continue
		}
		span := offsets[i+1] - offsets[i]
		if span == 0 {
			return colors[i+1]
		}
		return colors[i].BlendRgb(colors[i+1], (t-offsets[i])/span)
	}
	return colors[last]
}
