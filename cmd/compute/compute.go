/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package compute provides the compute command for arachim.
package compute

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/arachim/cmd/parse"
	"bennypowers.dev/arachim/computed"
	"bennypowers.dev/arachim/config"
	"bennypowers.dev/arachim/fs"
	"bennypowers.dev/arachim/internal/logger"
	"bennypowers.dev/arachim/specified"
	"bennypowers.dev/arachim/units"
)

// Cmd is the compute cobra command.
var Cmd = &cobra.Command{
	Use:   "compute [values...]",
	Short: "Resolve CSS values to their computed form",
	Long: `Parse CSS component values and resolve them to computed values
against a style context built from flags and the config file.

When no values are given on the command line, values are read one per
line from the files listed in .config/arachim.{yaml,yml,json}.`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("kind", "k", "length-percentage", "Value kind (length, non-negative-length, length-percentage, non-negative-length-percentage, lp-auto, lp-none, position, angle, color, image)")
	Cmd.Flags().Float64("font-size", 0, "Element font size in px (default from config, else 16)")
	Cmd.Flags().Float64("root-font-size", 0, "Root element font size in px (default from config, else the font size)")
	Cmd.Flags().String("display", "inline", "Display mode (none, inline, block, inline-block)")
	Cmd.Flags().Bool("positioned", false, "Treat the element as positioned")
	Cmd.Flags().Bool("floated", false, "Treat the element as floated")
	Cmd.Flags().Bool("root", false, "Treat the element as the document root")

	viper.BindPFlag("fontSize", Cmd.Flags().Lookup("font-size"))
	viper.BindPFlag("rootFontSize", Cmd.Flags().Lookup("root-font-size"))
}

func run(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("kind")

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	cx, err := contextFromFlags(cmd, cfg)
	if err != nil {
		return err
	}

	values := args
	if len(values) == 0 {
		values, err = valuesFromConfigFiles(filesystem, cfg)
		if err != nil {
			return err
		}
	}
	if len(values) == 0 {
		return fmt.Errorf("no values specified and no files found in config")
	}

	hasErrors := false
	for _, value := range values {
		text, err := computeValue(kind, value, cx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing %q: %v\n", value, err)
			hasErrors = true
			continue
		}
		fmt.Println(text)
	}

	if hasErrors {
		return fmt.Errorf("compute failed")
	}
	return nil
}

// contextFromFlags builds the resolution context. Flag values win over
// the config file; the root font size falls back to the font size.
func contextFromFlags(cmd *cobra.Command, cfg *config.Config) (*computed.Context, error) {
	fontSize := viper.GetFloat64("fontSize")
	if fontSize == 0 {
		fontSize = cfg.FontSizePx
	}
	rootFontSize := viper.GetFloat64("rootFontSize")
	if rootFontSize == 0 {
		rootFontSize = cfg.RootFontSizePx
	}
	if rootFontSize == 0 {
		rootFontSize = fontSize
	}

	displayFlag, _ := cmd.Flags().GetString("display")
	display, err := parseDisplay(displayFlag)
	if err != nil {
		return nil, err
	}

	positioned, _ := cmd.Flags().GetBool("positioned")
	floated, _ := cmd.Flags().GetBool("floated")
	isRoot, _ := cmd.Flags().GetBool("root")

	return &computed.Context{
		InheritedFontSize: units.FromPx(fontSize),
		FontSize:          units.FromPx(fontSize),
		RootFontSize:      units.FromPx(rootFontSize),
		Display:           display,
		Positioned:        positioned,
		Floated:           floated,
		IsRootElement:     isRoot,
	}, nil
}

func parseDisplay(s string) (computed.Display, error) {
	switch s {
	case "none":
		return computed.DisplayNone, nil
	case "inline":
		return computed.DisplayInline, nil
	case "block":
		return computed.DisplayBlock, nil
	case "inline-block":
		return computed.DisplayInlineBlock, nil
	}
	return 0, fmt.Errorf("unknown display mode: %s", s)
}

// valuesFromConfigFiles reads one value per line from the config's file
// list. Blank lines and lines starting with # are skipped.
func valuesFromConfigFiles(filesystem fs.FileSystem, cfg *config.Config) ([]string, error) {
	files, err := cfg.ExpandFiles(filesystem, ".")
	if err != nil {
		return nil, fmt.Errorf("error expanding config files: %w", err)
	}
	var values []string
	for _, file := range files {
		data, err := filesystem.ReadFile(file)
		if err != nil {
			logger.Warn("skipping %s: %v", file, err)
			continue
		}
		scanner := bufio.NewScanner(bytes.NewReader(data))
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			values = append(values, line)
		}
	}
	return values, nil
}

// computeValue parses input as the named kind, resolves it against cx,
// and returns the computed serialization.
func computeValue(kind, input string, cx *computed.Context) (string, error) {
	value, err := parse.ParseValue(kind, input, nil)
	if err != nil {
		return "", err
	}
	switch v := value.(type) {
	case specified.Angle:
		// Angles are already absolute; the computed value is the same
		// radian count.
		return v.ToCSS(), nil
	case specified.Color:
		return computed.ResolveColor(v, cx).HexString(), nil
	case specified.Image:
		return computed.ResolveImage(v, cx).ToCSS(), nil
	case specified.LengthOrPercentageOrAuto:
		// Length and percentage variants belong to every family, so they
		// land here; only the sentinels need the family-specific resolvers.
		if lop, ok := v.(specified.LengthOrPercentage); ok {
			return computed.ResolveLengthOrPercentage(lop, cx).ToCSS(), nil
		}
		return computed.ResolveLengthOrPercentageOrAuto(v, cx).ToCSS(), nil
	case specified.LengthOrPercentageOrNone:
		return computed.ResolveLengthOrPercentageOrNone(v, cx).ToCSS(), nil
	}
	return "", fmt.Errorf("unknown value kind: %s", kind)
}
