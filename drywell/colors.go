// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drywell

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Color scheme constants. Aggregate-zone tubes run warm orange-to-brown
// hues outward from the well; below-well tubes run cool cyan-to-green
// soil hues. Within a radial layer the hue shifts slightly with depth.
const (
	aggregateBaseHue   = 0.08
	aggregateHueRange  = 0.08
	aggregateSat       = 0.7
	aggregateValue     = 0.75
	belowWellBaseHue   = 0.45
	belowWellHueRange  = 0.15
	belowWellSat       = 0.5
	belowWellValue     = 0.65
	depthHueVariation  = 0.03
	tubeOpacity        = 0.6
	shaftOpacity       = 0.6
	chamberOpacity     = 0.7
)

// hsv converts hue in [0, 1) plus saturation and value to an opaque
// RGBA color.
func hsv(hue, sat, val float32) color.RGBA {
	r, g, b := colorful.Hsv(float64(hue)*360, float64(sat), float64(val)).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// gradientHue returns the hue for the cell at the given radial and
// vertical indices: a monotonic function of the radial index across
// hueRange, with a small symmetric shift by depth ratio.
func gradientHue(baseHue, hueRange float32, radialIndex, verticalIndex, nr, nz int) float32 {
	radialHue := baseHue + float32(radialIndex)/float32(nr)*hueRange
	return radialHue + float32(verticalIndex)/float32(nz)*depthHueVariation - depthHueVariation/2
}

// aggregateTubeColor returns the deterministic color of the
// aggregate-zone tube at the given indices.
func aggregateTubeColor(radialIndex, verticalIndex, nr, nz int) color.RGBA {
	return hsv(gradientHue(aggregateBaseHue, aggregateHueRange, radialIndex, verticalIndex, nr, nz), aggregateSat, aggregateValue)
}

// belowWellTubeColor returns the deterministic color of the below-well
// tube at the given indices.
func belowWellTubeColor(radialIndex, verticalIndex, nr, nz int) color.RGBA {
	return hsv(gradientHue(belowWellBaseHue, belowWellHueRange, radialIndex, verticalIndex, nr, nz), belowWellSat, belowWellValue)
}
