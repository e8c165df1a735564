// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hydrogeo/drywell/math32"
)

var (
	// ErrUnknownType is reported when a [Registry] has no factory for
	// a requested type name.
	ErrUnknownType = errors.New("unknown object type")

	// ErrSchemaMismatch is reported when a document's declared type
	// does not match the target object, or required top-level fields
	// are missing.
	ErrSchemaMismatch = errors.New("document schema mismatch")

	// ErrMalformedEntry is reported when an object's shape payload
	// fails validation.
	ErrMalformedEntry = errors.New("malformed document entry")
)

// Object is the capability interface implemented by every geometric
// object kind. Concrete kinds embed [Base] for the shared transform,
// material, edge and visibility state, and add their own shape
// parameters and document payload.
type Object interface {

	// AsBase returns the underlying [Base], for access to the shared
	// state and setters.
	AsBase() *Base

	// TypeName returns the type name discriminant under which this
	// kind is registered (e.g. "Cylinder").
	TypeName() string

	// Validate checks the shape parameters, returning an error
	// wrapping [ErrMalformedEntry] if they are degenerate.
	Validate() error

	// Build constructs a concrete primitive from the current shape
	// parameters using the given backend. Use [BuildShape] for the
	// cached, rebuild-on-change path.
	Build(b Builder) (Primitive, error)

	// ToDocument returns the serialized form of this object.
	ToDocument() (*Document, error)

	// FromDocument restores this object from the given document. It
	// fails with [ErrSchemaMismatch] if the document's type does not
	// match this object's type, and with [ErrMalformedEntry] if the
	// shape payload is invalid; in both cases the object may be
	// partially updated and should be discarded.
	FromDocument(doc *Document) error
}

// Base holds the state shared by all object kinds. Setters are no-ops
// when the new value equals the current value; setters that affect
// concrete geometry flag the object for rebuild (see [Base.NeedsRebuild]).
type Base struct {

	// Pose is the object transform: position, per-axis rotation in
	// degrees, and scale.
	Pose Transform

	// Mat is the surface material.
	Mat Material

	// Edges is the edge display style.
	Edges EdgeStyle

	// Visible indicates whether a backend should display the object.
	Visible bool

	// dirty is set when parameters affecting concrete geometry have
	// changed since the last build.
	dirty bool

	// prim is the cached primitive from the last build.
	prim Primitive
}

// Defaults sets the default object state: identity transform, default
// material and edge style, visible, and needing an initial build.
func (ob *Base) Defaults() {
	ob.Pose.Defaults()
	ob.Mat.Defaults()
	ob.Edges.Defaults()
	ob.Visible = true
	ob.dirty = true
}

// AsBase returns this base itself.
func (ob *Base) AsBase() *Base { return ob }

// Position returns the object position.
func (ob *Base) Position() math32.Vector3 { return ob.Pose.Pos }

// SetPosition sets the object position.
func (ob *Base) SetPosition(pos math32.Vector3) {
	if ob.Pose.Pos == pos {
		return
	}
	ob.Pose.Pos = pos
	ob.dirty = true
}

// SetPositionXYZ sets the object position from components.
func (ob *Base) SetPositionXYZ(x, y, z float32) {
	ob.SetPosition(math32.Vec3(x, y, z))
}

// Rotation returns the rotation angles around the X, Y and Z axes,
// in degrees.
func (ob *Base) Rotation() math32.Vector3 { return ob.Pose.Rot }

// SetRotation sets the rotation angles around the X, Y and Z axes,
// in degrees.
func (ob *Base) SetRotation(rot math32.Vector3) {
	if ob.Pose.Rot == rot {
		return
	}
	ob.Pose.Rot = rot
	ob.dirty = true
}

// SetRotationXYZ sets the rotation from per-axis angles in degrees.
func (ob *Base) SetRotationXYZ(x, y, z float32) {
	ob.SetRotation(math32.Vec3(x, y, z))
}

// Scale returns the per-axis scale.
func (ob *Base) Scale() math32.Vector3 { return ob.Pose.Scale }

// SetScale sets the per-axis scale.
func (ob *Base) SetScale(scale math32.Vector3) {
	if ob.Pose.Scale == scale {
		return
	}
	ob.Pose.Scale = scale
	ob.dirty = true
}

// SetUniformScale sets the same scale factor on all axes.
func (ob *Base) SetUniformScale(scale float32) {
	ob.SetScale(math32.Vector3Scalar(scale))
}

// DiffuseColor returns the diffuse surface color.
func (ob *Base) DiffuseColor() color.RGBA { return ob.Mat.Diffuse }

// SetDiffuseColor sets the diffuse surface color.
func (ob *Base) SetDiffuseColor(c color.RGBA) {
	ob.Mat.Diffuse = c
}

// AmbientColor returns the ambient surface color.
func (ob *Base) AmbientColor() color.RGBA { return ob.Mat.Ambient }

// SetAmbientColor sets the ambient surface color.
func (ob *Base) SetAmbientColor(c color.RGBA) {
	ob.Mat.Ambient = c
}

// SpecularColor returns the specular highlight color.
func (ob *Base) SpecularColor() color.RGBA { return ob.Mat.Specular }

// SetSpecularColor sets the specular highlight color.
func (ob *Base) SetSpecularColor(c color.RGBA) {
	ob.Mat.Specular = c
}

// Shininess returns the specular shininess factor.
func (ob *Base) Shininess() float32 { return ob.Mat.Shiny }

// SetShininess sets the specular shininess factor.
func (ob *Base) SetShininess(shiny float32) {
	ob.Mat.Shiny = shiny
}

// Opacity returns the surface opacity in [0, 1].
func (ob *Base) Opacity() float32 { return ob.Mat.Opacity }

// SetOpacity sets the surface opacity, clamped to [0, 1].
func (ob *Base) SetOpacity(opacity float32) {
	ob.Mat.Opacity = math32.Clamp(opacity, 0, 1)
}

// IsVisible returns the visibility flag.
func (ob *Base) IsVisible() bool { return ob.Visible }

// SetVisible sets the visibility flag.
func (ob *Base) SetVisible(visible bool) {
	ob.Visible = visible
}

// ShowEdges returns whether edge display is on.
func (ob *Base) ShowEdges() bool { return ob.Edges.Show }

// SetShowEdges turns edge display on or off.
func (ob *Base) SetShowEdges(show bool) {
	ob.Edges.Show = show
}

// EdgeColor returns the edge line color.
func (ob *Base) EdgeColor() color.RGBA { return ob.Edges.Color }

// SetEdgeColor sets the edge line color.
func (ob *Base) SetEdgeColor(c color.RGBA) {
	ob.Edges.Color = c
}

// EdgeWidth returns the edge line width.
func (ob *Base) EdgeWidth() float32 { return ob.Edges.Width }

// SetEdgeWidth sets the edge line width.
func (ob *Base) SetEdgeWidth(width float32) {
	ob.Edges.Width = width
}

// NeedsRebuild reports whether parameters affecting concrete geometry
// have changed since the last [BuildShape], so a backend knows to
// rebuild its primitive.
func (ob *Base) NeedsRebuild() bool { return ob.dirty }

// MarkNeedsRebuild flags the object as needing a rebuild of its
// concrete geometry. Shape kinds call this from parameter setters.
func (ob *Base) MarkNeedsRebuild() { ob.dirty = true }

// Destroy releases any built primitive and returns the object to the
// needing-rebuild state. The owning [Set] calls this when the object
// is removed or replaced.
func (ob *Base) Destroy() {
	ob.prim = nil
	ob.dirty = true
}

// toDocument returns a document with the common sections filled in
// under the given type name.
func (ob *Base) toDocument(typeName string) *Document {
	return &Document{
		Type: typeName,
		Transform: TransformDocument{
			Position: vectorDocument(ob.Pose.Pos),
			Rotation: vectorDocument(ob.Pose.Rot),
			Scale:    vectorDocument(ob.Pose.Scale),
		},
		Material: MaterialDocument{
			Diffuse:   rgbaDocument(ob.Mat.Diffuse),
			Ambient:   rgbaDocument(ob.Mat.Ambient),
			Specular:  rgbaDocument(ob.Mat.Specular),
			Shininess: ob.Mat.Shiny,
		},
		Visible:   ob.Visible,
		Opacity:   ob.Mat.Opacity,
		ShowEdges: ob.Edges.Show,
		EdgeColor: rgbDocument(ob.Edges.Color),
		EdgeWidth: ob.Edges.Width,
	}
}

// fromDocument restores the common sections from the given document,
// going through the setters so that geometry-affecting changes are
// flagged for rebuild and opacity is clamped.
func (ob *Base) fromDocument(doc *Document) {
	ob.SetPosition(doc.Transform.Position.vector())
	ob.SetRotation(doc.Transform.Rotation.vector())
	ob.SetScale(doc.Transform.Scale.vector())
	ob.SetDiffuseColor(doc.Material.Diffuse.color())
	ob.SetAmbientColor(doc.Material.Ambient.color())
	ob.SetSpecularColor(doc.Material.Specular.color())
	ob.SetShininess(doc.Material.Shininess)
	ob.SetVisible(doc.Visible)
	ob.SetOpacity(doc.Opacity)
	ob.SetShowEdges(doc.ShowEdges)
	ob.SetEdgeColor(doc.EdgeColor.color())
	ob.SetEdgeWidth(doc.EdgeWidth)
}

// checkDocumentType verifies the document type discriminant against
// the given type name.
func checkDocumentType(doc *Document, typeName string) error {
	if doc.Type != typeName {
		return fmt.Errorf("geom: %w: document type %q does not match object type %q", ErrSchemaMismatch, doc.Type, typeName)
	}
	return nil
}
