// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/hydrogeo/drywell/drywell"
	"github.com/hydrogeo/drywell/geom"
	"github.com/spf13/cobra"
)

func infoCmd() *cobra.Command {
	var system bool

	cmd := &cobra.Command{
		Use:   "info [file]",
		Short: "Summarize a saved scene or system document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if system {
				sys := &drywell.System{}
				if err := sys.OpenJSON(args[0]); err != nil {
					return err
				}
				printSystemSummary(sys)
				return nil
			}
			st := geom.NewSet(nil)
			if err := st.OpenJSON(args[0]); err != nil {
				return err
			}
			printSceneSummary(st)
			return nil
		},
	}

	cmd.Flags().BoolVar(&system, "system", false, "treat the file as a system document instead of a scene")
	return cmd
}

func printSystemSummary(sys *drywell.System) {
	pr := sys.Params()
	fmt.Printf("well radius:            %g\n", pr.WellRadius)
	fmt.Printf("chamber depth:          %g\n", pr.ChamberDepth)
	fmt.Printf("aggregate depth:        %g\n", pr.AggregateDepth)
	fmt.Printf("domain radius:          %g\n", pr.DomainRadius)
	fmt.Printf("depth to groundwater:   %g\n", pr.DepthToGroundwater)
	fmt.Printf("grid:                   %d x %d + %d x %d\n", pr.RadialCells, pr.AggregateCells, pr.RadialCells, pr.BelowWellCells)
	fmt.Printf("radial cell size:       %g\n", sys.RadialCellSize())
	fmt.Printf("vertical cell size:     %g\n", sys.VerticalCellSize())
	fmt.Printf("below-well cell size:   %g\n", sys.BelowWellVerticalCellSize())
	fmt.Printf("tubes:                  %d\n", sys.TubeCount())
}

func printSceneSummary(st *geom.Set) {
	counts := map[string]int{}
	for _, o := range st.Objects() {
		counts[o.TypeName()]++
	}
	fmt.Printf("objects: %d\n", st.Count())
	for _, tn := range geom.Default.TypeNames() {
		if counts[tn] > 0 {
			fmt.Printf("  %s: %d\n", tn, counts[tn])
		}
	}
}
