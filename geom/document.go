// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strings"

	"github.com/hydrogeo/drywell/math32"
)

// DocumentVersion is the scene document schema version written by
// [Set.ToDocument].
const DocumentVersion = "1.0"

// VectorDocument is the serialized form of a [math32.Vector3].
type VectorDocument struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	Z float32 `json:"z"`
}

func vectorDocument(v math32.Vector3) VectorDocument {
	return VectorDocument{X: v.X, Y: v.Y, Z: v.Z}
}

func (vd VectorDocument) vector() math32.Vector3 {
	return math32.Vec3(vd.X, vd.Y, vd.Z)
}

// RGBADocument is the serialized form of a 4-channel color, with
// 0-255 integer channels.
type RGBADocument struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

func rgbaDocument(c color.RGBA) RGBADocument {
	return RGBADocument{R: c.R, G: c.G, B: c.B, A: c.A}
}

func (cd RGBADocument) color() color.RGBA {
	return color.RGBA{R: cd.R, G: cd.G, B: cd.B, A: cd.A}
}

// RGBDocument is the serialized form of a 3-channel color.
type RGBDocument struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

func rgbDocument(c color.RGBA) RGBDocument {
	return RGBDocument{R: c.R, G: c.G, B: c.B}
}

func (cd RGBDocument) color() color.RGBA {
	return color.RGBA{R: cd.R, G: cd.G, B: cd.B, A: 255}
}

// TransformDocument is the serialized form of a [Transform].
type TransformDocument struct {
	Position VectorDocument `json:"position"`
	Rotation VectorDocument `json:"rotation"`
	Scale    VectorDocument `json:"scale"`
}

// MaterialDocument is the serialized form of a [Material], except for
// opacity, which lives at the top level of the object document.
type MaterialDocument struct {
	Diffuse   RGBADocument `json:"diffuse"`
	Ambient   RGBADocument `json:"ambient"`
	Specular  RGBADocument `json:"specular"`
	Shininess float32      `json:"shininess"`
}

// Document is the serialized form of one [Object]: the common
// transform, material, visibility and edge state shared by all shape
// kinds, a type name discriminant, and the shape-specific payload,
// which is stored under a key derived from the type name (e.g.
// "cylinder" for type "Cylinder").
type Document struct {
	Type      string
	Transform TransformDocument
	Material  MaterialDocument
	Visible   bool
	Opacity   float32
	ShowEdges bool
	EdgeColor RGBDocument
	EdgeWidth float32

	// Shape is the raw shape-specific sub-document. Empty for shape
	// kinds without parameters.
	Shape json.RawMessage
}

// ShapeKey returns the document key under which the shape payload of
// the given type name is stored: the type name in lower case.
func ShapeKey(typeName string) string {
	return strings.ToLower(typeName)
}

// MarshalJSON implements the document layout with the shape payload
// under its type-derived key.
func (d Document) MarshalJSON() ([]byte, error) {
	m := map[string]any{
		"type":      d.Type,
		"transform": d.Transform,
		"material":  d.Material,
		"visible":   d.Visible,
		"opacity":   d.Opacity,
		"showEdges": d.ShowEdges,
		"edgeColor": d.EdgeColor,
		"edgeWidth": d.EdgeWidth,
	}
	if len(d.Shape) > 0 {
		m[ShapeKey(d.Type)] = d.Shape
	}
	return json.Marshal(m)
}

// UnmarshalJSON is the inverse of [Document.MarshalJSON]. Sections
// absent from the input are left at their zero values; a missing or
// empty type field is an error.
func (d *Document) UnmarshalJSON(b []byte) error {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	tr, ok := m["type"]
	if !ok {
		return fmt.Errorf("geom.Document: %w: missing type field", ErrSchemaMismatch)
	}
	if err := json.Unmarshal(tr, &d.Type); err != nil {
		return err
	}
	if d.Type == "" {
		return fmt.Errorf("geom.Document: %w: empty type field", ErrSchemaMismatch)
	}
	sections := map[string]any{
		"transform": &d.Transform,
		"material":  &d.Material,
		"visible":   &d.Visible,
		"opacity":   &d.Opacity,
		"showEdges": &d.ShowEdges,
		"edgeColor": &d.EdgeColor,
		"edgeWidth": &d.EdgeWidth,
	}
	for key, into := range sections {
		if raw, ok := m[key]; ok {
			if err := json.Unmarshal(raw, into); err != nil {
				return fmt.Errorf("geom.Document: %s: %w", key, err)
			}
		}
	}
	if raw, ok := m[ShapeKey(d.Type)]; ok {
		d.Shape = raw
	}
	return nil
}

// SceneDocument is the serialized form of a whole [Set]: a version,
// the object count, and the per-name object documents.
type SceneDocument struct {
	Version     string               `json:"version"`
	ObjectCount int                  `json:"objectCount"`
	Objects     map[string]*Document `json:"objects"`
}
