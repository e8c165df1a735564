// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drywell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSystem(t *testing.T) *System {
	t.Helper()
	var pr Params
	pr.Defaults()
	sys, err := New(pr)
	require.NoError(t, err)
	sys.GenerateAll()
	return sys
}

func TestNewRejectsDegenerateParams(t *testing.T) {
	var pr Params
	pr.Defaults()

	bad := pr
	bad.WellRadius = 0
	_, err := New(bad)
	assert.ErrorIs(t, err, ErrDegenerateParams)

	bad = pr
	bad.DomainRadius = pr.WellRadius
	_, err = New(bad)
	assert.ErrorIs(t, err, ErrDegenerateParams)

	bad = pr
	bad.DepthToGroundwater = pr.ChamberDepth + pr.AggregateDepth
	_, err = New(bad)
	assert.ErrorIs(t, err, ErrDegenerateParams)

	bad = pr
	bad.RadialCells = 0
	_, err = New(bad)
	assert.ErrorIs(t, err, ErrDegenerateParams)
}

func TestGenerateCounts(t *testing.T) {
	sys := newTestSystem(t)
	pr := sys.Params()
	assert.Len(t, sys.Tubes(), pr.RadialCells*pr.AggregateCells)
	assert.Len(t, sys.BelowWellTubes(), pr.RadialCells*pr.BelowWellCells)
	assert.Equal(t, 48+40, sys.TubeCount())
	assert.NotNil(t, sys.ChamberCylinder())
	assert.NotNil(t, sys.AggregateWellCylinder())
	assert.NotNil(t, sys.BelowWellCylinder())
}

func TestCellSizes(t *testing.T) {
	sys := newTestSystem(t)
	assert.InDelta(t, 0.5625, sys.RadialCellSize(), 1e-6)
	assert.InDelta(t, 2.0/6.0, sys.VerticalCellSize(), 1e-6)
	assert.InDelta(t, 1.4, sys.BelowWellVerticalCellSize(), 1e-6)
}

func TestTubeIndexing(t *testing.T) {
	sys := newTestSystem(t)
	pr := sys.Params()

	tb, ok := sys.Tube(0, 0)
	require.True(t, ok)
	assert.Same(t, sys.Tubes()[0], tb)

	tb, ok = sys.Tube(2, 3)
	require.True(t, ok)
	assert.Same(t, sys.Tubes()[2*pr.AggregateCells+3], tb)

	_, ok = sys.Tube(-1, 0)
	assert.False(t, ok)
	_, ok = sys.Tube(pr.RadialCells, 0)
	assert.False(t, ok)
	_, ok = sys.Tube(0, pr.AggregateCells)
	assert.False(t, ok)

	bt, ok := sys.BelowWellTube(1, 4)
	require.True(t, ok)
	assert.Same(t, sys.BelowWellTubes()[1*pr.BelowWellCells+4], bt)
	_, ok = sys.BelowWellTube(0, pr.BelowWellCells)
	assert.False(t, ok)
}

func TestTubeGeometry(t *testing.T) {
	sys := newTestSystem(t)
	pr := sys.Params()
	dr := sys.RadialCellSize()
	dz := sys.VerticalCellSize()

	for i := 0; i < pr.RadialCells; i++ {
		for j := 0; j < pr.AggregateCells; j++ {
			tb, ok := sys.Tube(i, j)
			require.True(t, ok)
			assert.InDelta(t, pr.WellRadius+float32(i)*dr, tb.InnerRadius, 1e-5)
			assert.InDelta(t, tb.InnerRadius+dr, tb.OuterRadius, 1e-5)
			assert.InDelta(t, dz, tb.Height, 1e-5)
			wantZ := -pr.ChamberDepth - float32(j)*dz - dz/2
			assert.InDelta(t, wantZ, tb.Position().Z, 1e-5)
			assert.NoError(t, tb.Validate())
		}
	}

	// first below-well layer starts at the bottom of the aggregate zone
	bdz := sys.BelowWellVerticalCellSize()
	bt, ok := sys.BelowWellTube(0, 0)
	require.True(t, ok)
	assert.InDelta(t, -(pr.ChamberDepth+pr.AggregateDepth)-bdz/2, bt.Position().Z, 1e-5)

	// last layer bottom reaches the groundwater table
	bt, ok = sys.BelowWellTube(0, pr.BelowWellCells-1)
	require.True(t, ok)
	assert.InDelta(t, -pr.DepthToGroundwater, bt.Position().Z-bt.Height/2, 1e-4)
}

func TestWellCylinderSpans(t *testing.T) {
	sys := newTestSystem(t)
	pr := sys.Params()

	ch := sys.ChamberCylinder()
	assert.Equal(t, pr.WellRadius, ch.Radius)
	assert.InDelta(t, pr.ChamberDepth, ch.Length, 1e-6)
	assert.InDelta(t, -pr.ChamberDepth/2, ch.Position().Z, 1e-6)

	ag := sys.AggregateWellCylinder()
	assert.InDelta(t, pr.AggregateDepth, ag.Length, 1e-6)
	assert.InDelta(t, -pr.ChamberDepth-pr.AggregateDepth/2, ag.Position().Z, 1e-6)

	bw := sys.BelowWellCylinder()
	wantLen := pr.DepthToGroundwater - pr.ChamberDepth - pr.AggregateDepth
	assert.InDelta(t, wantLen, bw.Length, 1e-6)
	assert.InDelta(t, -(pr.ChamberDepth+pr.AggregateDepth)-wantLen/2, bw.Position().Z, 1e-6)
}

func TestGenerationDeterministic(t *testing.T) {
	a := newTestSystem(t)
	b := newTestSystem(t)

	require.Equal(t, len(a.Tubes()), len(b.Tubes()))
	for i := range a.Tubes() {
		at, bt := a.Tubes()[i], b.Tubes()[i]
		assert.Equal(t, at.InnerRadius, bt.InnerRadius)
		assert.Equal(t, at.OuterRadius, bt.OuterRadius)
		assert.Equal(t, at.Height, bt.Height)
		assert.Equal(t, at.Position(), bt.Position())
		assert.Equal(t, at.DiffuseColor(), bt.DiffuseColor())
	}
	assert.Equal(t, a.ChamberCylinder().DiffuseColor(), b.ChamberCylinder().DiffuseColor())
	assert.Equal(t, a.BelowWellCylinder().DiffuseColor(), b.BelowWellCylinder().DiffuseColor())
}

func TestTubeColorsVaryRadially(t *testing.T) {
	sys := newTestSystem(t)
	inner, ok := sys.Tube(0, 0)
	require.True(t, ok)
	outer, ok := sys.Tube(sys.Params().RadialCells-1, 0)
	require.True(t, ok)
	assert.NotEqual(t, inner.DiffuseColor(), outer.DiffuseColor())
}

func TestObjectSetNaming(t *testing.T) {
	sys := newTestSystem(t)
	pr := sys.Params()
	st := sys.NewObjectSet()

	wantCount := 3 + pr.RadialCells*(pr.AggregateCells+pr.BelowWellCells)
	assert.Equal(t, wantCount, st.Count())
	assert.True(t, st.Contains(ChamberName))
	assert.True(t, st.Contains(AggregateWellName))
	assert.True(t, st.Contains(BelowWellName))

	o, ok := st.ObjectByName(TubeName(2, 3))
	require.True(t, ok)
	tb, _ := sys.Tube(2, 3)
	assert.Same(t, tb, o)

	o, ok = st.ObjectByName(BelowWellTubeName(1, 4))
	require.True(t, ok)
	bt, _ := sys.BelowWellTube(1, 4)
	assert.Same(t, bt, o)

	// cylinders come first, then the tubes in grid order
	names := st.Names()
	assert.Equal(t, ChamberName, names[0])
	assert.Equal(t, AggregateWellName, names[1])
	assert.Equal(t, BelowWellName, names[2])
	assert.Equal(t, TubeName(0, 0), names[3])
}

func TestRegenerateReplacesTubes(t *testing.T) {
	sys := newTestSystem(t)
	old := sys.Tubes()[0]
	sys.GenerateAggregateZone()
	assert.True(t, old.NeedsRebuild()) // prior tubes were destroyed
	assert.NotSame(t, old, sys.Tubes()[0])
	assert.Equal(t, 48, len(sys.Tubes()))
}

func TestClear(t *testing.T) {
	sys := newTestSystem(t)
	sys.Clear()
	assert.Equal(t, 0, sys.TubeCount())
	assert.Nil(t, sys.ChamberCylinder())
	assert.Nil(t, sys.AggregateWellCylinder())
	assert.Nil(t, sys.BelowWellCylinder())
}
