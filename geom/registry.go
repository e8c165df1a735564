// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a new object of one registered kind, with default
// parameters, ready to be restored from a document.
type Factory func() Object

// Registry maps type names to object factories, enabling the document
// codec to reconstruct the correct object kind from the type
// discriminant. A new registry comes with the built-in kinds
// ([Cylinder], [Tube]) already registered; additional kinds can be
// registered at any time. Registration of an existing name silently
// overwrites it (last registration wins).
//
// Registry is safe for concurrent use. The objects it creates are not.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry returns a new [Registry] with the built-in object kinds
// registered.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register(CylinderType, func() Object { return NewCylinder(1, 2) })
	r.Register(TubeType, func() Object { return NewTube(0.5, 1, 2) })
	return r
}

// Default is the process-wide default registry, consulted by [Set]
// deserialization when no explicit registry is set.
var Default = NewRegistry()

// Register stores the factory for the given type name, overwriting any
// existing registration.
func (r *Registry) Register(typeName string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[typeName] = factory
}

// Has reports whether a factory is registered for the given type name.
func (r *Registry) Has(typeName string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[typeName]
	return ok
}

// TypeNames returns the sorted list of registered type names.
func (r *Registry) TypeNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// New creates a new object of the given registered kind, reporting
// [ErrUnknownType] if no factory is registered for the name.
func (r *Registry) New(typeName string) (Object, error) {
	r.mu.RLock()
	factory, ok := r.factories[typeName]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("geom.Registry: %w: %q", ErrUnknownType, typeName)
	}
	return factory(), nil
}

// NewFromDocument creates an object of the kind named by the
// document's type discriminant and restores it from the document.
func (r *Registry) NewFromDocument(doc *Document) (Object, error) {
	o, err := r.New(doc.Type)
	if err != nil {
		return nil, err
	}
	if err := o.FromDocument(doc); err != nil {
		return nil, err
	}
	return o, nil
}
