/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parse provides the parse command for arachim.
package parse

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"

	"bennypowers.dev/arachim/specified"
	"bennypowers.dev/arachim/token"
)

// Cmd is the parse cobra command.
var Cmd = &cobra.Command{
	Use:   "parse [values...]",
	Short: "Parse CSS component values",
	Long:  `Parse CSS component values into their specified form and print their canonical serialization.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("kind", "k", "length-percentage", "Value kind (length, non-negative-length, length-percentage, non-negative-length-percentage, lp-auto, lp-none, position, angle, color, image)")
	Cmd.Flags().String("base", "", "Base URL for resolving url() values")
}

// Value is the common serialization surface of every specified value.
type Value interface {
	ToCSS() string
}

func run(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("kind")
	baseFlag, _ := cmd.Flags().GetString("base")

	var base *url.URL
	if baseFlag != "" {
		var err error
		base, err = url.Parse(baseFlag)
		if err != nil {
			return fmt.Errorf("invalid base URL %q: %w", baseFlag, err)
		}
	}

	hasErrors := false
	for _, arg := range args {
		value, err := ParseValue(kind, arg, base)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", arg, err)
			hasErrors = true
			continue
		}
		fmt.Println(value.ToCSS())
	}

	if hasErrors {
		return fmt.Errorf("parse failed")
	}
	return nil
}

// ParseValue tokenizes input and parses it as the named value kind.
// Every kind consumes exactly one component value.
func ParseValue(kind, input string, base *url.URL) (Value, error) {
	tokens, err := token.Tokenize(input)
	if err != nil {
		return nil, fmt.Errorf("error tokenizing: %w", err)
	}
	if len(tokens) != 1 {
		return nil, fmt.Errorf("expected a single component value, got %d tokens", len(tokens))
	}
	t := tokens[0]

	switch kind {
	case "length":
		return specified.ParseLength(t)
	case "non-negative-length":
		return specified.ParseNonNegativeLength(t)
	case "length-percentage":
		return specified.ParseLengthOrPercentage(t)
	case "non-negative-length-percentage":
		return specified.ParseNonNegativeLengthOrPercentage(t)
	case "lp-auto":
		return specified.ParseLengthOrPercentageOrAuto(t)
	case "lp-none":
		return specified.ParseLengthOrPercentageOrNone(t)
	case "position":
		pc, err := specified.ParsePositionComponent(t)
		if err != nil {
			return nil, err
		}
		return specified.PositionToLengthOrPercentage(pc), nil
	case "angle":
		return specified.ParseAngle(t)
	case "color":
		return specified.ParseColor(t)
	case "image":
		return specified.ParseImage(t, base)
	default:
		return nil, fmt.Errorf("unknown value kind: %s", kind)
	}
}
