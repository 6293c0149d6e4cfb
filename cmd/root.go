/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for arachim.
package cmd

import (
	"github.com/spf13/cobra"

	"bennypowers.dev/arachim/cmd/compute"
	"bennypowers.dev/arachim/cmd/parse"
	"bennypowers.dev/arachim/cmd/render"
	"bennypowers.dev/arachim/cmd/version"
)

var rootCmd = &cobra.Command{
	Use:   "arachim",
	Short: "Parse and compute CSS component values",
	Long:  `arachim parses CSS lengths, angles, colors, positions, and images into their specified forms, and resolves them to computed values against a style context.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(parse.Cmd)
	rootCmd.AddCommand(compute.Cmd)
	rootCmd.AddCommand(render.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
