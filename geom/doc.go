// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom provides a backend-agnostic parameter model for 3D
// geometric objects: a polymorphic [Object] interface with shared
// transform, material, edge style and visibility state in [Base], the
// built-in [Cylinder] and [Tube] shape variants, a type-name-keyed
// [Registry] enabling open-ended object kinds, and the named, owning
// [Set] collection with a lossless JSON document codec.
//
// Rendering and CAD-kernel concerns are external: a backend implements
// the narrow [Builder] interface and obtains concrete primitives
// lazily through [BuildShape], guided by the per-object needs-rebuild
// signal. The model itself only holds parameters.
package geom
