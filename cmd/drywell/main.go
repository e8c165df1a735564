// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command drywell generates drywell system scenes and inspects saved
// scene documents.
package main

import (
	"os"

	"github.com/hydrogeo/drywell/base/logx"
	"github.com/spf13/cobra"
)

func main() {
	var verbose, veryVerbose, quiet bool

	rootCmd := &cobra.Command{
		Use:   "drywell",
		Short: "Drywell infiltration system scene generator",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			logx.UserLevel = logx.LevelFromFlags(veryVerbose, verbose, quiet)
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print informational messages")
	rootCmd.PersistentFlags().BoolVar(&veryVerbose, "vv", false, "print debug messages")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "print errors only")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(infoCmd())
	rootCmd.AddCommand(paramsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
