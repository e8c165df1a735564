// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drywell

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hydrogeo/drywell/base/iox/jsonx"
	"github.com/hydrogeo/drywell/base/iox/tomlx"
	"github.com/hydrogeo/drywell/base/iox/yamlx"
)

// ErrDegenerateParams is reported for parameter sets that would produce
// empty or inverted geometry.
var ErrDegenerateParams = errors.New("degenerate drywell parameters")

// Params holds the physical dimensions and grid resolution of a
// drywell system. Lengths share one unit (typically meters); depths
// are measured down from the ground surface at z=0.
type Params struct {

	// WellRadius is the radius of the well shaft.
	WellRadius float32 `json:"wellRadius" toml:"wellRadius" yaml:"wellRadius"`

	// ChamberDepth is the depth from the surface to the top of the
	// aggregate zone (the empty chamber section of the shaft).
	ChamberDepth float32 `json:"chamberDepth" toml:"chamberDepth" yaml:"chamberDepth"`

	// AggregateDepth is the thickness of the aggregate zone.
	AggregateDepth float32 `json:"aggregateDepth" toml:"aggregateDepth" yaml:"aggregateDepth"`

	// DomainRadius is the outer radius of the modeled domain.
	// Must exceed WellRadius.
	DomainRadius float32 `json:"domainRadius" toml:"domainRadius" yaml:"domainRadius"`

	// DepthToGroundwater is the depth from the surface to the
	// groundwater table. Must exceed ChamberDepth + AggregateDepth.
	DepthToGroundwater float32 `json:"depthToGroundwater" toml:"depthToGroundwater" yaml:"depthToGroundwater"`

	// RadialCells is the number of grid cells in the radial direction
	// between the well and the domain boundary.
	RadialCells int `json:"nr" toml:"nr" yaml:"nr"`

	// AggregateCells is the number of vertical grid cells in the
	// aggregate zone, adjacent to the well.
	AggregateCells int `json:"nz_w" toml:"nz_w" yaml:"nz_w"`

	// BelowWellCells is the number of vertical grid cells between the
	// bottom of the aggregate zone and the groundwater table.
	BelowWellCells int `json:"nz_g" toml:"nz_g" yaml:"nz_g"`
}

// Defaults sets a small reference scenario: a half-meter well with a
// 1 m chamber and 2 m aggregate zone in a 5 m domain over groundwater
// at 10 m, on an 8 x 6 + 8 x 5 grid.
func (pr *Params) Defaults() {
	pr.WellRadius = 0.5
	pr.ChamberDepth = 1
	pr.AggregateDepth = 2
	pr.DomainRadius = 5
	pr.DepthToGroundwater = 10
	pr.RadialCells = 8
	pr.AggregateCells = 6
	pr.BelowWellCells = 5
}

// Validate returns an error wrapping [ErrDegenerateParams] if the
// parameters would produce empty or inverted geometry.
func (pr *Params) Validate() error {
	if pr.WellRadius <= 0 || pr.ChamberDepth <= 0 || pr.AggregateDepth <= 0 {
		return fmt.Errorf("drywell: %w: wellRadius, chamberDepth and aggregateDepth must be positive", ErrDegenerateParams)
	}
	if pr.DomainRadius <= pr.WellRadius {
		return fmt.Errorf("drywell: %w: domainRadius %g must exceed wellRadius %g", ErrDegenerateParams, pr.DomainRadius, pr.WellRadius)
	}
	if pr.DepthToGroundwater <= pr.ChamberDepth+pr.AggregateDepth {
		return fmt.Errorf("drywell: %w: depthToGroundwater %g must exceed chamberDepth+aggregateDepth %g", ErrDegenerateParams, pr.DepthToGroundwater, pr.ChamberDepth+pr.AggregateDepth)
	}
	if pr.RadialCells <= 0 || pr.AggregateCells <= 0 || pr.BelowWellCells <= 0 {
		return fmt.Errorf("drywell: %w: cell counts nr=%d, nz_w=%d, nz_g=%d must be positive", ErrDegenerateParams, pr.RadialCells, pr.AggregateCells, pr.BelowWellCells)
	}
	return nil
}

// RadialCellSize returns the radial extent of one grid cell.
func (pr *Params) RadialCellSize() float32 {
	return (pr.DomainRadius - pr.WellRadius) / float32(pr.RadialCells)
}

// VerticalCellSize returns the vertical extent of one aggregate-zone
// grid cell.
func (pr *Params) VerticalCellSize() float32 {
	return pr.AggregateDepth / float32(pr.AggregateCells)
}

// BelowWellVerticalCellSize returns the vertical extent of one
// below-well grid cell.
func (pr *Params) BelowWellVerticalCellSize() float32 {
	return (pr.DepthToGroundwater - pr.ChamberDepth - pr.AggregateDepth) / float32(pr.BelowWellCells)
}

// Open loads the parameters from the given file, dispatching on the
// extension: .toml, .yaml / .yml, or .json.
func (pr *Params) Open(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlx.Open(pr, filename)
	case ".yaml", ".yml":
		return yamlx.Open(pr, filename)
	case ".json":
		return jsonx.Open(pr, filename)
	default:
		return fmt.Errorf("drywell.Params: unsupported parameter file extension: %q", filepath.Ext(filename))
	}
}

// Save writes the parameters to the given file, dispatching on the
// extension like [Params.Open].
func (pr *Params) Save(filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlx.Save(pr, filename)
	case ".yaml", ".yml":
		return yamlx.Save(pr, filename)
	case ".json":
		return jsonx.SaveIndent(pr, filename)
	default:
		return fmt.Errorf("drywell.Params: unsupported parameter file extension: %q", filepath.Ext(filename))
	}
}
