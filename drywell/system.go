// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drywell generates the 3D cell grid of a stormwater drywell
// system: a cylindrical well chamber surrounded by a radial-by-vertical
// grid of annular tube cells representing the aggregate and soil zones,
// plus three shaft cylinders for the well bore itself.
//
// Generation is deterministic: the same [Params] always produce the
// same geometry, colors and names, so a generated scene round-trips
// losslessly through the [geom] document codec.
package drywell

import (
	"fmt"
	"image/color"

	"github.com/hydrogeo/drywell/geom"
)

// Names of the three well shaft cylinders in an object set.
const (
	ChamberName       = "well_chamber"
	AggregateWellName = "well_aggregate"
	BelowWellName     = "well_below"
)

// TubeName returns the object-set name of the aggregate-zone tube at
// the given radial and vertical indices.
func TubeName(radialIndex, verticalIndex int) string {
	return fmt.Sprintf("tube_r%d_z%d", radialIndex, verticalIndex)
}

// BelowWellTubeName returns the object-set name of the below-well tube
// at the given radial and vertical indices.
func BelowWellTubeName(radialIndex, verticalIndex int) string {
	return fmt.Sprintf("tube_below_r%d_z%d", radialIndex, verticalIndex)
}

// System generates and holds the geometric objects of one drywell
// system. The tube grids are stored flat in row-major order: all
// vertical cells of radial layer 0, then layer 1, and so on.
// A System is not safe for concurrent use.
type System struct {
	params Params

	// aggregate-zone tubes, len = RadialCells * AggregateCells
	tubes []*geom.Tube

	// below-well tubes, len = RadialCells * BelowWellCells
	belowWellTubes []*geom.Tube

	// well shaft cylinders
	chamber       *geom.Cylinder
	aggregateWell *geom.Cylinder
	belowWell     *geom.Cylinder
}

// New returns a new [System] for the given parameters, rejecting
// degenerate parameter sets with an error wrapping
// [ErrDegenerateParams]. No geometry is generated yet; call
// [System.GenerateAll].
func New(params Params) (*System, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &System{params: params}, nil
}

// Params returns the system parameters.
func (sy *System) Params() Params { return sy.params }

// RadialCellSize returns the radial extent of one grid cell.
func (sy *System) RadialCellSize() float32 { return sy.params.RadialCellSize() }

// VerticalCellSize returns the vertical extent of one aggregate-zone
// grid cell.
func (sy *System) VerticalCellSize() float32 { return sy.params.VerticalCellSize() }

// BelowWellVerticalCellSize returns the vertical extent of one
// below-well grid cell.
func (sy *System) BelowWellVerticalCellSize() float32 {
	return sy.params.BelowWellVerticalCellSize()
}

// newGridTube creates the tube for one grid cell: ring radialIndex
// counted outward from the well across dr-wide steps, layer
// verticalIndex counted downward from zTop across dz-tall steps.
func (sy *System) newGridTube(radialIndex, verticalIndex int, dr, dz, zTop float32, clr color.RGBA) *geom.Tube {
	inner := sy.params.WellRadius + float32(radialIndex)*dr
	outer := sy.params.WellRadius + float32(radialIndex+1)*dr
	tube := geom.NewTube(inner, outer, dz)
	zCenter := zTop - float32(verticalIndex)*dz - dz/2
	tube.SetPositionXYZ(0, 0, zCenter)
	tube.SetDiffuseColor(clr)
	tube.SetOpacity(tubeOpacity)
	tube.SetShowEdges(true)
	return tube
}

// GenerateAggregateZone discards any prior aggregate-zone tubes and
// creates RadialCells x AggregateCells tubes spanning the aggregate
// zone, radial index outer, vertical index inner. Layer 0 sits
// immediately below the chamber; increasing vertical index moves
// downward.
func (sy *System) GenerateAggregateZone() {
	for _, tb := range sy.tubes {
		tb.Destroy()
	}
	nr, nz := sy.params.RadialCells, sy.params.AggregateCells
	dr := sy.params.RadialCellSize()
	dz := sy.params.VerticalCellSize()
	zTop := -sy.params.ChamberDepth
	sy.tubes = make([]*geom.Tube, 0, nr*nz)
	for i := 0; i < nr; i++ {
		for j := 0; j < nz; j++ {
			tb := sy.newGridTube(i, j, dr, dz, zTop, aggregateTubeColor(i, j, nr, nz))
			sy.tubes = append(sy.tubes, tb)
		}
	}
}

// GenerateBelowWellZone discards any prior below-well tubes and
// creates RadialCells x BelowWellCells tubes spanning the zone between
// the bottom of the aggregate zone and the groundwater table.
func (sy *System) GenerateBelowWellZone() {
	for _, tb := range sy.belowWellTubes {
		tb.Destroy()
	}
	nr, nz := sy.params.RadialCells, sy.params.BelowWellCells
	dr := sy.params.RadialCellSize()
	dz := sy.params.BelowWellVerticalCellSize()
	zTop := -(sy.params.ChamberDepth + sy.params.AggregateDepth)
	sy.belowWellTubes = make([]*geom.Tube, 0, nr*nz)
	for i := 0; i < nr; i++ {
		for j := 0; j < nz; j++ {
			tb := sy.newGridTube(i, j, dr, dz, zTop, belowWellTubeColor(i, j, nr, nz))
			sy.belowWellTubes = append(sy.belowWellTubes, tb)
		}
	}
}

// GenerateWellCylinders discards any prior shaft cylinders and creates
// the three cylinders of the well bore: the chamber from the surface
// to -ChamberDepth, the aggregate-zone shaft down to
// -(ChamberDepth+AggregateDepth), and the below-well shaft down to
// -DepthToGroundwater. Each is centered at its own depth midpoint.
func (sy *System) GenerateWellCylinders() {
	for _, cy := range []*geom.Cylinder{sy.chamber, sy.aggregateWell, sy.belowWell} {
		if cy != nil {
			cy.Destroy()
		}
	}
	pr := &sy.params

	sy.chamber = geom.NewCylinder(pr.WellRadius, pr.ChamberDepth)
	sy.chamber.SetPositionXYZ(0, 0, -pr.ChamberDepth/2)
	sy.chamber.SetDiffuseColor(color.RGBA{180, 180, 180, 255})
	sy.chamber.SetOpacity(chamberOpacity)
	sy.chamber.SetShowEdges(true)

	sy.aggregateWell = geom.NewCylinder(pr.WellRadius, pr.AggregateDepth)
	sy.aggregateWell.SetPositionXYZ(0, 0, -pr.ChamberDepth-pr.AggregateDepth/2)
	sy.aggregateWell.SetDiffuseColor(hsv(aggregateBaseHue, aggregateSat, aggregateValue))
	sy.aggregateWell.SetOpacity(shaftOpacity)
	sy.aggregateWell.SetShowEdges(true)

	belowHeight := pr.DepthToGroundwater - pr.ChamberDepth - pr.AggregateDepth
	sy.belowWell = geom.NewCylinder(pr.WellRadius, belowHeight)
	sy.belowWell.SetPositionXYZ(0, 0, -(pr.ChamberDepth+pr.AggregateDepth)-belowHeight/2)
	sy.belowWell.SetDiffuseColor(hsv(belowWellBaseHue+0.05, belowWellSat, belowWellValue))
	sy.belowWell.SetOpacity(shaftOpacity)
	sy.belowWell.SetShowEdges(true)
}

// GenerateAll generates the aggregate zone, the below-well zone, and
// the well cylinders, in that order, fully replacing any prior state.
func (sy *System) GenerateAll() {
	sy.GenerateAggregateZone()
	sy.GenerateBelowWellZone()
	sy.GenerateWellCylinders()
}

// Clear destroys all generated objects.
func (sy *System) Clear() {
	for _, tb := range sy.tubes {
		tb.Destroy()
	}
	sy.tubes = nil
	for _, tb := range sy.belowWellTubes {
		tb.Destroy()
	}
	sy.belowWellTubes = nil
	for _, cy := range []*geom.Cylinder{sy.chamber, sy.aggregateWell, sy.belowWell} {
		if cy != nil {
			cy.Destroy()
		}
	}
	sy.chamber, sy.aggregateWell, sy.belowWell = nil, nil, nil
}

// Tubes returns the aggregate-zone tubes in row-major order.
func (sy *System) Tubes() []*geom.Tube { return sy.tubes }

// BelowWellTubes returns the below-well tubes in row-major order.
func (sy *System) BelowWellTubes() []*geom.Tube { return sy.belowWellTubes }

// Tube returns the aggregate-zone tube at the given radial and
// vertical indices, with false returned for out-of-range indices.
func (sy *System) Tube(radialIndex, verticalIndex int) (*geom.Tube, bool) {
	if radialIndex < 0 || radialIndex >= sy.params.RadialCells ||
		verticalIndex < 0 || verticalIndex >= sy.params.AggregateCells {
		return nil, false
	}
	idx := radialIndex*sy.params.AggregateCells + verticalIndex
	if idx >= len(sy.tubes) {
		return nil, false
	}
	return sy.tubes[idx], true
}

// BelowWellTube returns the below-well tube at the given radial and
// vertical indices, with false returned for out-of-range indices.
func (sy *System) BelowWellTube(radialIndex, verticalIndex int) (*geom.Tube, bool) {
	if radialIndex < 0 || radialIndex >= sy.params.RadialCells ||
		verticalIndex < 0 || verticalIndex >= sy.params.BelowWellCells {
		return nil, false
	}
	idx := radialIndex*sy.params.BelowWellCells + verticalIndex
	if idx >= len(sy.belowWellTubes) {
		return nil, false
	}
	return sy.belowWellTubes[idx], true
}

// TubeCount returns the total number of generated tubes in both zones.
func (sy *System) TubeCount() int {
	return len(sy.tubes) + len(sy.belowWellTubes)
}

// ChamberCylinder returns the chamber shaft cylinder, nil before
// generation.
func (sy *System) ChamberCylinder() *geom.Cylinder { return sy.chamber }

// AggregateWellCylinder returns the aggregate-zone shaft cylinder,
// nil before generation.
func (sy *System) AggregateWellCylinder() *geom.Cylinder { return sy.aggregateWell }

// BelowWellCylinder returns the below-well shaft cylinder, nil before
// generation.
func (sy *System) BelowWellCylinder() *geom.Cylinder { return sy.belowWell }

// AddToObjectSet adds every generated object to the given set under
// deterministic names: the three shaft cylinders under [ChamberName],
// [AggregateWellName] and [BelowWellName], and the tubes under
// [TubeName] and [BelowWellTubeName] derived from their grid indices.
func (sy *System) AddToObjectSet(st *geom.Set) {
	if st == nil {
		return
	}
	if sy.chamber != nil {
		st.Add(ChamberName, sy.chamber)
	}
	if sy.aggregateWell != nil {
		st.Add(AggregateWellName, sy.aggregateWell)
	}
	if sy.belowWell != nil {
		st.Add(BelowWellName, sy.belowWell)
	}
	for i, tb := range sy.tubes {
		st.Add(TubeName(i/sy.params.AggregateCells, i%sy.params.AggregateCells), tb)
	}
	for i, tb := range sy.belowWellTubes {
		st.Add(BelowWellTubeName(i/sy.params.BelowWellCells, i%sy.params.BelowWellCells), tb)
	}
}

// NewObjectSet returns a new [geom.Set] containing every generated
// object, named as in [System.AddToObjectSet].
func (sy *System) NewObjectSet() *geom.Set {
	st := geom.NewSet(nil)
	sy.AddToObjectSet(st)
	return st
}
