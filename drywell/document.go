// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drywell

import (
	"fmt"

	"github.com/hydrogeo/drywell/base/iox/jsonx"
	"github.com/hydrogeo/drywell/base/logx"
	"github.com/hydrogeo/drywell/geom"
)

// SystemDocument is the serialized form of a [System]: the input
// parameters, the derived cell sizes and tube count for reference, and
// the documents of all generated objects, shaft cylinders included.
type SystemDocument struct {
	Params

	// Derived values, written for human readers of the file; they are
	// recomputed from the parameters on load.
	RadialCellSize            float32 `json:"radialCellSize"`
	VerticalCellSize          float32 `json:"verticalCellSize"`
	BelowWellVerticalCellSize float32 `json:"belowWellVerticalCellSize"`
	TubeCount                 int     `json:"tubeCount"`

	Tubes          []*geom.Document `json:"tubes"`
	BelowWellTubes []*geom.Document `json:"belowWellTubes"`

	// WellCylinders holds the chamber, aggregate-zone and below-well
	// shaft cylinders, in that order.
	WellCylinders []*geom.Document `json:"wellCylinders,omitempty"`
}

// ToDocument returns the serialized form of the system.
func (sy *System) ToDocument() (*SystemDocument, error) {
	doc := &SystemDocument{
		Params:                    sy.params,
		RadialCellSize:            sy.RadialCellSize(),
		VerticalCellSize:          sy.VerticalCellSize(),
		BelowWellVerticalCellSize: sy.BelowWellVerticalCellSize(),
		TubeCount:                 sy.TubeCount(),
	}
	doc.Tubes = make([]*geom.Document, 0, len(sy.tubes))
	for i, tb := range sy.tubes {
		td, err := tb.ToDocument()
		if err != nil {
			return nil, fmt.Errorf("drywell.System: tube %d: %w", i, err)
		}
		doc.Tubes = append(doc.Tubes, td)
	}
	doc.BelowWellTubes = make([]*geom.Document, 0, len(sy.belowWellTubes))
	for i, tb := range sy.belowWellTubes {
		td, err := tb.ToDocument()
		if err != nil {
			return nil, fmt.Errorf("drywell.System: below-well tube %d: %w", i, err)
		}
		doc.BelowWellTubes = append(doc.BelowWellTubes, td)
	}
	for _, cy := range []*geom.Cylinder{sy.chamber, sy.aggregateWell, sy.belowWell} {
		if cy == nil {
			continue
		}
		cd, err := cy.ToDocument()
		if err != nil {
			return nil, fmt.Errorf("drywell.System: well cylinder: %w", err)
		}
		doc.WellCylinders = append(doc.WellCylinders, cd)
	}
	return doc, nil
}

// tubesFromDocuments restores a tube list from its documents, skipping
// malformed entries with a warning.
func tubesFromDocuments(docs []*geom.Document, what string) []*geom.Tube {
	tubes := make([]*geom.Tube, 0, len(docs))
	for i, td := range docs {
		if td == nil {
			continue
		}
		tb := &geom.Tube{}
		tb.Defaults()
		if err := tb.FromDocument(td); err != nil {
			logx.PrintlnWarn("drywell.System: skipping", what, "tube", i, "error:", err)
			continue
		}
		tubes = append(tubes, tb)
	}
	return tubes
}

// FromDocument clears the system and restores it from the given
// document. The parameters must be present and valid; tubes and well
// cylinders are restored from their documents, with malformed tube
// entries skipped. If the document carries no well cylinders (older
// files), they are regenerated from the parameters.
func (sy *System) FromDocument(doc *SystemDocument) error {
	if err := doc.Params.Validate(); err != nil {
		return err
	}
	sy.Clear()
	sy.params = doc.Params
	sy.tubes = tubesFromDocuments(doc.Tubes, "aggregate-zone")
	sy.belowWellTubes = tubesFromDocuments(doc.BelowWellTubes, "below-well")
	if len(doc.WellCylinders) == 0 {
		sy.GenerateWellCylinders()
		return nil
	}
	shafts := []**geom.Cylinder{&sy.chamber, &sy.aggregateWell, &sy.belowWell}
	for i, cd := range doc.WellCylinders {
		if i >= len(shafts) || cd == nil {
			break
		}
		cy := &geom.Cylinder{}
		cy.Defaults()
		if err := cy.FromDocument(cd); err != nil {
			return fmt.Errorf("drywell.System: well cylinder %d: %w", i, err)
		}
		*shafts[i] = cy
	}
	return nil
}

// SaveJSON saves the system document to the given JSON file.
func (sy *System) SaveJSON(filename string) error {
	doc, err := sy.ToDocument()
	if err != nil {
		return err
	}
	return jsonx.SaveIndent(doc, filename)
}

// OpenJSON clears the system and loads it from the given JSON file.
func (sy *System) OpenJSON(filename string) error {
	var doc SystemDocument
	if err := jsonx.Open(&doc, filename); err != nil {
		return err
	}
	return sy.FromDocument(&doc)
}
