// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// Primitive is an opaque concrete shape produced by a [Builder]
// backend. The model never inspects it; it is cached per object and
// handed back to the backend for display.
type Primitive any

// Builder is the narrow CAD-kernel interface that rendering backends
// implement to construct concrete geometry from object parameters.
// Shape kinds compose these operations in their Build methods, so new
// kinds can be added without extending the backend.
type Builder interface {

	// Cylinder returns a solid cylinder with the given radius and
	// length, centered at the local origin and extending ±length/2
	// along the Z axis.
	Cylinder(radius, length float32) (Primitive, error)

	// Cut returns the boolean difference of base minus tool.
	Cut(base, tool Primitive) (Primitive, error)
}

// BuildShape returns the concrete primitive for the given object,
// building it with the given backend only if the object has never been
// built or its geometry parameters changed since the last build
// (see [Base.NeedsRebuild]). The result is cached on the object.
func BuildShape(o Object, b Builder) (Primitive, error) {
	ob := o.AsBase()
	if ob.prim != nil && !ob.dirty {
		return ob.prim, nil
	}
	p, err := o.Build(b)
	if err != nil {
		return nil, err
	}
	ob.prim = p
	ob.dirty = false
	return p, nil
}
