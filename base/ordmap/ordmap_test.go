// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ordmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	om := New[string, int]()
	om.Add("a", 1)
	om.Add("b", 2)
	om.Add("c", 3)

	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []string{"a", "b", "c"}, om.Keys())
	assert.Equal(t, []int{1, 2, 3}, om.Values())

	v, ok := om.ValueByKey("b")
	assert.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = om.ValueByKey("z")
	assert.False(t, ok)
	assert.True(t, om.HasKey("c"))

	assert.Equal(t, 1, om.ValueByIndex(0))
	assert.Equal(t, "c", om.KeyByIndex(2))

	// replacing keeps the original position
	om.Add("a", 10)
	assert.Equal(t, 3, om.Len())
	assert.Equal(t, []string{"a", "b", "c"}, om.Keys())
	assert.Equal(t, 10, om.ValueByIndex(0))
}

func TestMapDelete(t *testing.T) {
	om := New[string, int]()
	om.Add("a", 1)
	om.Add("b", 2)
	om.Add("c", 3)

	assert.True(t, om.DeleteKey("b"))
	assert.False(t, om.DeleteKey("b"))
	assert.Equal(t, []string{"a", "c"}, om.Keys())

	// index lookups stay consistent after deletion
	v, ok := om.ValueByKey("c")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	om.Reset()
	assert.Equal(t, 0, om.Len())
	assert.False(t, om.HasKey("a"))
}
