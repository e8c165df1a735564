// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryBuiltins(t *testing.T) {
	r := NewRegistry()
	assert.True(t, r.Has(CylinderType))
	assert.True(t, r.Has(TubeType))
	assert.Equal(t, []string{CylinderType, TubeType}, r.TypeNames())

	o, err := r.New(CylinderType)
	require.NoError(t, err)
	assert.IsType(t, &Cylinder{}, o)

	o, err = r.New(TubeType)
	require.NoError(t, err)
	assert.IsType(t, &Tube{}, o)
}

func TestRegistryUnknownType(t *testing.T) {
	r := NewRegistry()
	_, err := r.New("Sphere")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestRegistryLastRegistrationWins(t *testing.T) {
	r := NewRegistry()
	r.Register(CylinderType, func() Object { return NewCylinder(9, 9) })
	o, err := r.New(CylinderType)
	require.NoError(t, err)
	cy := o.(*Cylinder)
	assert.Equal(t, float32(9), cy.Radius)
	assert.Equal(t, float32(9), cy.Length)
}

func TestRegistryNewFromDocument(t *testing.T) {
	tb := NewTube(0.25, 0.75, 4)
	doc, err := tb.ToDocument()
	require.NoError(t, err)

	o, err := Default.NewFromDocument(doc)
	require.NoError(t, err)
	nt, ok := o.(*Tube)
	require.True(t, ok)
	assert.Equal(t, float32(0.25), nt.InnerRadius)
	assert.Equal(t, float32(0.75), nt.OuterRadius)
	assert.Equal(t, float32(4), nt.Height)

	doc.Type = "Sphere"
	_, err = Default.NewFromDocument(doc)
	assert.ErrorIs(t, err, ErrUnknownType)
}
