// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonx

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string  `json:"name"`
	Value float32 `json:"value"`
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.json")
	ts := testStruct{Name: "well", Value: 0.5}
	require.NoError(t, Save(ts, fn))

	var ns testStruct
	require.NoError(t, Open(&ns, fn))
	assert.Equal(t, ts, ns)
}

func TestSaveIndent(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.json")
	require.NoError(t, SaveIndent(testStruct{Name: "well"}, fn))
	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(b), "\n\t"))

	var ns testStruct
	require.NoError(t, ReadBytes(&ns, b))
	assert.Equal(t, "well", ns.Name)
}

func TestOpenMissing(t *testing.T) {
	var ns testStruct
	assert.Error(t, Open(&ns, filepath.Join(t.TempDir(), "missing.json")))
}
