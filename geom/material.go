// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "image/color"

// Material describes the Phong-style surface properties of an object:
// diffuse, ambient and specular colors, shininess, and opacity.
type Material struct {

	// Diffuse is the main surface color under direct light.
	Diffuse color.RGBA

	// Ambient is the surface color under indirect light.
	Ambient color.RGBA

	// Specular is the highlight color, always effectively multiplied
	// by the light color.
	Specular color.RGBA

	// Shiny is the specular shininess exponent. Non-negative; higher
	// values give a smaller, more focal highlight.
	Shiny float32

	// Opacity is the surface opacity in [0, 1], where 1 is fully
	// opaque. Backends render 1-Opacity as transparency.
	Opacity float32
}

// Defaults sets the default surface parameters: an earth-tone brown
// diffuse with a darker ambient, white specular, moderate shininess,
// fully opaque.
func (mt *Material) Defaults() {
	mt.Diffuse = color.RGBA{102, 84, 35, 255}
	mt.Ambient = color.RGBA{68, 51, 17, 255}
	mt.Specular = color.RGBA{255, 255, 255, 255}
	mt.Shiny = 50
	mt.Opacity = 1
}

// IsTransparent reports whether the material requires transparent
// rendering (opacity below 1).
func (mt *Material) IsTransparent() bool {
	return mt.Opacity < 1
}

// EdgeStyle describes how the edges (face boundaries) of an object are
// displayed by a backend.
type EdgeStyle struct {

	// Show turns edge display on.
	Show bool

	// Color is the edge line color. Alpha is ignored.
	Color color.RGBA

	// Width is the edge line width. Positive.
	Width float32
}

// Defaults sets the default edge style: hidden, black, width 1.
func (es *EdgeStyle) Defaults() {
	es.Show = false
	es.Color = color.RGBA{0, 0, 0, 255}
	es.Width = 1
}
