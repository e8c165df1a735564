// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"encoding/json"
	"fmt"
)

// CylinderType is the registered type name for [Cylinder].
const CylinderType = "Cylinder"

// Cylinder is a solid cylinder, centered at the local origin and
// extending ±Length/2 along the Z axis.
type Cylinder struct {
	Base

	// Radius of the cylinder. Positive.
	Radius float32

	// Length of the cylinder along its axis. Positive.
	Length float32
}

// NewCylinder returns a new [Cylinder] with the given radius and
// length and default object state.
func NewCylinder(radius, length float32) *Cylinder {
	cy := &Cylinder{Radius: radius, Length: length}
	cy.Defaults()
	return cy
}

func (cy *Cylinder) TypeName() string { return CylinderType }

// SetRadius sets the cylinder radius, flagging a rebuild if changed.
func (cy *Cylinder) SetRadius(radius float32) {
	if cy.Radius == radius {
		return
	}
	cy.Radius = radius
	cy.MarkNeedsRebuild()
}

// SetLength sets the cylinder length, flagging a rebuild if changed.
func (cy *Cylinder) SetLength(length float32) {
	if cy.Length == length {
		return
	}
	cy.Length = length
	cy.MarkNeedsRebuild()
}

// SetSize sets radius and length together, flagging at most one
// rebuild.
func (cy *Cylinder) SetSize(radius, length float32) {
	cy.SetRadius(radius)
	cy.SetLength(length)
}

// Validate checks that radius and length are positive.
func (cy *Cylinder) Validate() error {
	if cy.Radius <= 0 || cy.Length <= 0 {
		return fmt.Errorf("geom.Cylinder: %w: radius %g and length %g must be positive", ErrMalformedEntry, cy.Radius, cy.Length)
	}
	return nil
}

// Build constructs the cylinder primitive.
func (cy *Cylinder) Build(b Builder) (Primitive, error) {
	return b.Cylinder(cy.Radius, cy.Length)
}

// cylinderDocument is the shape payload for [Cylinder].
type cylinderDocument struct {
	Radius float32 `json:"radius"`
	Length float32 `json:"length"`
}

func (cy *Cylinder) ToDocument() (*Document, error) {
	doc := cy.toDocument(cy.TypeName())
	shape, err := json.Marshal(cylinderDocument{Radius: cy.Radius, Length: cy.Length})
	if err != nil {
		return nil, err
	}
	doc.Shape = shape
	return doc, nil
}

func (cy *Cylinder) FromDocument(doc *Document) error {
	if err := checkDocumentType(doc, cy.TypeName()); err != nil {
		return err
	}
	cy.fromDocument(doc)
	if len(doc.Shape) > 0 {
		var sd cylinderDocument
		if err := json.Unmarshal(doc.Shape, &sd); err != nil {
			return fmt.Errorf("geom.Cylinder: %w: %w", ErrMalformedEntry, err)
		}
		cy.SetSize(sd.Radius, sd.Length)
	}
	return cy.Validate()
}
