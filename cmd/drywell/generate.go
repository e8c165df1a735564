// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/hydrogeo/drywell/base/logx"
	"github.com/hydrogeo/drywell/drywell"
	"github.com/spf13/cobra"
)

func generateCmd() *cobra.Command {
	var paramsFile string
	var sceneOut string
	var systemOut string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a drywell system and save it as a scene document",
		RunE: func(_ *cobra.Command, _ []string) error {
			var params drywell.Params
			params.Defaults()
			if paramsFile != "" {
				if err := params.Open(paramsFile); err != nil {
					return fmt.Errorf("loading parameters: %w", err)
				}
			}
			sys, err := drywell.New(params)
			if err != nil {
				return err
			}
			sys.GenerateAll()
			logx.PrintlnInfo("generated", sys.TubeCount(), "tubes and 3 well cylinders")

			if systemOut != "" {
				if err := sys.SaveJSON(systemOut); err != nil {
					return fmt.Errorf("saving system document: %w", err)
				}
				logx.PrintlnInfo("wrote system document to", systemOut)
			}
			if sceneOut != "" {
				st := sys.NewObjectSet()
				if err := st.SaveJSON(sceneOut); err != nil {
					return fmt.Errorf("saving scene document: %w", err)
				}
				logx.PrintlnInfo("wrote scene with", st.Count(), "objects to", sceneOut)
			}
			if sceneOut == "" && systemOut == "" {
				printSystemSummary(sys)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&paramsFile, "params", "p", "", "parameter file (.toml, .yaml, or .json); defaults used if omitted")
	cmd.Flags().StringVarP(&sceneOut, "scene", "o", "", "output scene document file (JSON)")
	cmd.Flags().StringVar(&systemOut, "system", "", "output system document file (JSON)")
	return cmd
}

func paramsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params [output-file]",
		Short: "Write a default parameter file (.toml, .yaml, or .json)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var params drywell.Params
			params.Defaults()
			return params.Save(args[0])
		},
	}
}
