// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"encoding/json"
	"fmt"
)

// TubeType is the registered type name for [Tube].
const TubeType = "Tube"

// Tube is a hollow cylinder: an outer cylinder with an inner cylinder
// subtracted, centered at the local origin and extending ±Height/2
// along the Z axis.
type Tube struct {
	Base

	// InnerRadius is the radius of the hollow core.
	// 0 <= InnerRadius < OuterRadius.
	InnerRadius float32

	// OuterRadius is the outer radius of the wall. Positive.
	OuterRadius float32

	// Height of the tube along its axis. Positive.
	Height float32
}

// NewTube returns a new [Tube] with the given radii and height and
// default object state.
func NewTube(innerRadius, outerRadius, height float32) *Tube {
	tb := &Tube{InnerRadius: innerRadius, OuterRadius: outerRadius, Height: height}
	tb.Defaults()
	return tb
}

func (tb *Tube) TypeName() string { return TubeType }

// SetInnerRadius sets the inner radius, flagging a rebuild if changed.
func (tb *Tube) SetInnerRadius(radius float32) {
	if tb.InnerRadius == radius {
		return
	}
	tb.InnerRadius = radius
	tb.MarkNeedsRebuild()
}

// SetOuterRadius sets the outer radius, flagging a rebuild if changed.
func (tb *Tube) SetOuterRadius(radius float32) {
	if tb.OuterRadius == radius {
		return
	}
	tb.OuterRadius = radius
	tb.MarkNeedsRebuild()
}

// SetHeight sets the height, flagging a rebuild if changed.
func (tb *Tube) SetHeight(height float32) {
	if tb.Height == height {
		return
	}
	tb.Height = height
	tb.MarkNeedsRebuild()
}

// SetDimensions sets all three shape parameters together, flagging at
// most one rebuild.
func (tb *Tube) SetDimensions(innerRadius, outerRadius, height float32) {
	tb.SetInnerRadius(innerRadius)
	tb.SetOuterRadius(outerRadius)
	tb.SetHeight(height)
}

// Validate checks that 0 <= InnerRadius < OuterRadius and Height > 0.
func (tb *Tube) Validate() error {
	if tb.InnerRadius < 0 || tb.InnerRadius >= tb.OuterRadius {
		return fmt.Errorf("geom.Tube: %w: inner radius %g must be in [0, outer radius %g)", ErrMalformedEntry, tb.InnerRadius, tb.OuterRadius)
	}
	if tb.Height <= 0 {
		return fmt.Errorf("geom.Tube: %w: height %g must be positive", ErrMalformedEntry, tb.Height)
	}
	return nil
}

// Build constructs the tube primitive as the outer cylinder with the
// inner cylinder cut away.
func (tb *Tube) Build(b Builder) (Primitive, error) {
	outer, err := b.Cylinder(tb.OuterRadius, tb.Height)
	if err != nil {
		return nil, err
	}
	inner, err := b.Cylinder(tb.InnerRadius, tb.Height)
	if err != nil {
		return nil, err
	}
	return b.Cut(outer, inner)
}

// tubeDocument is the shape payload for [Tube].
type tubeDocument struct {
	InnerRadius float32 `json:"innerRadius"`
	OuterRadius float32 `json:"outerRadius"`
	Height      float32 `json:"height"`
}

func (tb *Tube) ToDocument() (*Document, error) {
	doc := tb.toDocument(tb.TypeName())
	shape, err := json.Marshal(tubeDocument{InnerRadius: tb.InnerRadius, OuterRadius: tb.OuterRadius, Height: tb.Height})
	if err != nil {
		return nil, err
	}
	doc.Shape = shape
	return doc, nil
}

func (tb *Tube) FromDocument(doc *Document) error {
	if err := checkDocumentType(doc, tb.TypeName()); err != nil {
		return err
	}
	tb.fromDocument(doc)
	if len(doc.Shape) > 0 {
		var sd tubeDocument
		if err := json.Unmarshal(doc.Shape, &sd); err != nil {
			return fmt.Errorf("geom.Tube: %w: %w", ErrMalformedEntry, err)
		}
		tb.SetDimensions(sd.InnerRadius, sd.OuterRadius, sd.Height)
	}
	return tb.Validate()
}
