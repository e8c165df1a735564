// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"image/color"
	"testing"

	"github.com/hydrogeo/drywell/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseDefaults(t *testing.T) {
	var ob Base
	ob.Defaults()
	assert.Equal(t, math32.Vector3{}, ob.Pose.Pos)
	assert.Equal(t, math32.Vector3Scalar(1), ob.Pose.Scale)
	assert.Equal(t, color.RGBA{102, 84, 35, 255}, ob.Mat.Diffuse)
	assert.Equal(t, color.RGBA{68, 51, 17, 255}, ob.Mat.Ambient)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, ob.Mat.Specular)
	assert.Equal(t, float32(50), ob.Mat.Shiny)
	assert.Equal(t, float32(1), ob.Mat.Opacity)
	assert.False(t, ob.Edges.Show)
	assert.True(t, ob.Visible)
	assert.True(t, ob.NeedsRebuild())
}

func TestTransformSettersMarkRebuild(t *testing.T) {
	cy := NewCylinder(1, 2)
	cy.dirty = false

	cy.SetPositionXYZ(0, 0, 0) // no change
	assert.False(t, cy.NeedsRebuild())
	cy.SetPositionXYZ(1, 2, 3)
	assert.True(t, cy.NeedsRebuild())

	cy.dirty = false
	cy.SetRotationXYZ(0, 0, 0)
	assert.False(t, cy.NeedsRebuild())
	cy.SetRotationXYZ(0, 0, 90)
	assert.True(t, cy.NeedsRebuild())

	cy.dirty = false
	cy.SetUniformScale(1)
	assert.False(t, cy.NeedsRebuild())
	cy.SetUniformScale(2)
	assert.True(t, cy.NeedsRebuild())
	assert.Equal(t, math32.Vec3(2, 2, 2), cy.Scale())
}

func TestAppearanceSettersDoNotMarkRebuild(t *testing.T) {
	cy := NewCylinder(1, 2)
	cy.dirty = false

	cy.SetDiffuseColor(color.RGBA{10, 20, 30, 255})
	cy.SetAmbientColor(color.RGBA{5, 10, 15, 255})
	cy.SetSpecularColor(color.RGBA{200, 200, 200, 255})
	cy.SetShininess(10)
	cy.SetOpacity(0.5)
	cy.SetVisible(false)
	cy.SetShowEdges(true)
	cy.SetEdgeColor(color.RGBA{255, 0, 0, 255})
	cy.SetEdgeWidth(2)
	assert.False(t, cy.NeedsRebuild())

	assert.Equal(t, color.RGBA{10, 20, 30, 255}, cy.DiffuseColor())
	assert.Equal(t, float32(0.5), cy.Opacity())
	assert.False(t, cy.IsVisible())
	assert.True(t, cy.ShowEdges())
	assert.Equal(t, float32(2), cy.EdgeWidth())
}

func TestSetOpacityClamps(t *testing.T) {
	cy := NewCylinder(1, 2)
	cy.SetOpacity(1.5)
	assert.Equal(t, float32(1), cy.Opacity())
	cy.SetOpacity(-0.5)
	assert.Equal(t, float32(0), cy.Opacity())
	assert.True(t, cy.Mat.IsTransparent())
}

// countingBuilder records how many primitives it constructed.
type countingBuilder struct {
	cylinders int
	cuts      int
}

func (b *countingBuilder) Cylinder(radius, length float32) (Primitive, error) {
	b.cylinders++
	return [2]float32{radius, length}, nil
}

func (b *countingBuilder) Cut(base, tool Primitive) (Primitive, error) {
	b.cuts++
	return [2]Primitive{base, tool}, nil
}

func TestBuildShapeCaches(t *testing.T) {
	b := &countingBuilder{}
	cy := NewCylinder(1, 2)

	p1, err := BuildShape(cy, b)
	require.NoError(t, err)
	assert.Equal(t, 1, b.cylinders)
	assert.False(t, cy.NeedsRebuild())

	p2, err := BuildShape(cy, b)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
	assert.Equal(t, 1, b.cylinders)

	cy.SetRadius(3)
	_, err = BuildShape(cy, b)
	require.NoError(t, err)
	assert.Equal(t, 2, b.cylinders)

	cy.Destroy()
	_, err = BuildShape(cy, b)
	require.NoError(t, err)
	assert.Equal(t, 3, b.cylinders)
}

func TestTubeBuildCutsInnerFromOuter(t *testing.T) {
	b := &countingBuilder{}
	tb := NewTube(0.5, 1, 2)
	_, err := BuildShape(tb, b)
	require.NoError(t, err)
	assert.Equal(t, 2, b.cylinders)
	assert.Equal(t, 1, b.cuts)
}

func TestShapeSetterNoOp(t *testing.T) {
	tb := NewTube(0.5, 1, 2)
	tb.dirty = false
	tb.SetDimensions(0.5, 1, 2)
	assert.False(t, tb.NeedsRebuild())
	tb.SetDimensions(0.5, 1.5, 2)
	assert.True(t, tb.NeedsRebuild())

	cy := NewCylinder(1, 2)
	cy.dirty = false
	cy.SetSize(1, 2)
	assert.False(t, cy.NeedsRebuild())
	cy.SetSize(1, 3)
	assert.True(t, cy.NeedsRebuild())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, NewCylinder(1, 2).Validate())
	assert.ErrorIs(t, NewCylinder(0, 2).Validate(), ErrMalformedEntry)
	assert.ErrorIs(t, NewCylinder(1, -1).Validate(), ErrMalformedEntry)

	assert.NoError(t, NewTube(0, 1, 2).Validate())
	assert.NoError(t, NewTube(0.5, 1, 2).Validate())
	assert.ErrorIs(t, NewTube(-0.1, 1, 2).Validate(), ErrMalformedEntry)
	assert.ErrorIs(t, NewTube(1, 1, 2).Validate(), ErrMalformedEntry)
	assert.ErrorIs(t, NewTube(2, 1, 2).Validate(), ErrMalformedEntry)
	assert.ErrorIs(t, NewTube(0.5, 1, 0).Validate(), ErrMalformedEntry)
}

func TestClone(t *testing.T) {
	tb := NewTube(0.5, 1, 2)
	tb.SetPositionXYZ(1, 2, 3)
	tb.SetDiffuseColor(color.RGBA{10, 20, 30, 255})
	b := &countingBuilder{}
	_, err := BuildShape(tb, b)
	require.NoError(t, err)

	o, err := Clone(tb)
	require.NoError(t, err)
	ct, ok := o.(*Tube)
	require.True(t, ok)
	assert.Equal(t, tb.InnerRadius, ct.InnerRadius)
	assert.Equal(t, tb.OuterRadius, ct.OuterRadius)
	assert.Equal(t, tb.Height, ct.Height)
	assert.Equal(t, tb.Position(), ct.Position())
	assert.Equal(t, tb.DiffuseColor(), ct.DiffuseColor())
	assert.True(t, ct.NeedsRebuild())
	assert.Nil(t, ct.prim)

	// mutating the clone leaves the original untouched
	ct.SetOuterRadius(5)
	assert.Equal(t, float32(1), tb.OuterRadius)
}
