// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/hydrogeo/drywell/math32"

// Transform specifies the position and orientation of an object
// relative to the scene origin.
type Transform struct {

	// Pos is the position of the center of the object.
	Pos math32.Vector3

	// Rot is the rotation as independent angles around the X, Y and Z
	// axes, in degrees. Backends compose them in Z, Y, X order.
	Rot math32.Vector3

	// Scale is the per-axis scale factor. Components should be
	// positive. Non-uniform scale may not be representable by every
	// shape backend.
	Scale math32.Vector3
}

// Defaults sets default transform values: identity position and
// rotation, unit scale. Scale is set only if currently zero.
func (tf *Transform) Defaults() {
	if tf.Scale.IsNil() {
		tf.Scale.Set(1, 1, 1)
	}
}

// IsUniformScale reports whether all scale components are equal.
func (tf *Transform) IsUniformScale() bool {
	return tf.Scale.X == tf.Scale.Y && tf.Scale.Y == tf.Scale.Z
}
