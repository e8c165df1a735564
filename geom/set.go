// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/hydrogeo/drywell/base/iox/jsonx"
	"github.com/hydrogeo/drywell/base/logx"
	"github.com/hydrogeo/drywell/base/ordmap"
	"github.com/hydrogeo/drywell/math32"
)

// Set is a collection of [Object]s keyed by unique name, preserving
// insertion order. The set exclusively owns its objects: adding under
// an existing name destroys the prior occupant, and removing or
// clearing destroys the removed objects. A Set is not safe for
// concurrent mutation.
type Set struct {

	// Registry is consulted by [Set.FromDocument] to reconstruct
	// objects from their type discriminants. If nil, [Default] is used.
	Registry *Registry

	objects ordmap.Map[string, Object]
}

// NewSet returns a new empty [Set] using the given registry for
// deserialization; pass nil to use [Default].
func NewSet(reg *Registry) *Set {
	return &Set{Registry: reg}
}

func (st *Set) registry() *Registry {
	if st.Registry != nil {
		return st.Registry
	}
	return Default
}

// Add adds the given object under the given name. If an object already
// exists under that name, it is destroyed and replaced. Adding a nil
// object is a no-op.
func (st *Set) Add(name string, o Object) {
	if o == nil {
		return
	}
	if prior, ok := st.objects.ValueByKey(name); ok {
		prior.AsBase().Destroy()
	}
	st.objects.Add(name, o)
}

// Remove removes and destroys the object with the given name,
// returning false if no such object exists.
func (st *Set) Remove(name string) bool {
	o, ok := st.objects.ValueByKey(name)
	if !ok {
		return false
	}
	o.AsBase().Destroy()
	return st.objects.DeleteKey(name)
}

// Clear destroys all objects and empties the set.
func (st *Set) Clear() {
	for _, kv := range st.objects.Order {
		kv.Value.AsBase().Destroy()
	}
	st.objects.Reset()
}

// ObjectByName returns the object with the given name, with false
// returned if no such object exists.
func (st *Set) ObjectByName(name string) (Object, bool) {
	return st.objects.ValueByKey(name)
}

// Contains reports whether an object with the given name exists.
func (st *Set) Contains(name string) bool {
	return st.objects.HasKey(name)
}

// Names returns the object names in insertion order.
func (st *Set) Names() []string {
	return st.objects.Keys()
}

// Objects returns the objects in insertion order.
func (st *Set) Objects() []Object {
	return st.objects.Values()
}

// Count returns the number of objects in the set.
func (st *Set) Count() int {
	return st.objects.Len()
}

// IsEmpty reports whether the set holds no objects.
func (st *Set) IsEmpty() bool {
	return st.objects.Len() == 0
}

// SetVisible sets the visibility of the named object, returning false
// if no such object exists.
func (st *Set) SetVisible(name string, visible bool) bool {
	o, ok := st.objects.ValueByKey(name)
	if !ok {
		return false
	}
	o.AsBase().SetVisible(visible)
	return true
}

// SetAllVisible sets the visibility flag on every object.
func (st *Set) SetAllVisible(visible bool) {
	for _, kv := range st.objects.Order {
		kv.Value.AsBase().SetVisible(visible)
	}
}

// SetAllDiffuseColor sets the diffuse color on every object.
func (st *Set) SetAllDiffuseColor(c color.RGBA) {
	for _, kv := range st.objects.Order {
		kv.Value.AsBase().SetDiffuseColor(c)
	}
}

// SetAllScale sets the per-axis scale on every object.
func (st *Set) SetAllScale(scale math32.Vector3) {
	for _, kv := range st.objects.Order {
		kv.Value.AsBase().SetScale(scale)
	}
}

// SetAllUniformScale sets the same scale factor on all axes of every
// object.
func (st *Set) SetAllUniformScale(scale float32) {
	st.SetAllScale(math32.Vector3Scalar(scale))
}

// SetAllOpacity sets the opacity on every object.
func (st *Set) SetAllOpacity(opacity float32) {
	for _, kv := range st.objects.Order {
		kv.Value.AsBase().SetOpacity(opacity)
	}
}

// SetAllShowEdges turns edge display on or off on every object.
func (st *Set) SetAllShowEdges(show bool) {
	for _, kv := range st.objects.Order {
		kv.Value.AsBase().SetShowEdges(show)
	}
}

// SetAllEdgeColor sets the edge color on every object.
func (st *Set) SetAllEdgeColor(c color.RGBA) {
	for _, kv := range st.objects.Order {
		kv.Value.AsBase().SetEdgeColor(c)
	}
}

// SetAllEdgeWidth sets the edge width on every object.
func (st *Set) SetAllEdgeWidth(width float32) {
	for _, kv := range st.objects.Order {
		kv.Value.AsBase().SetEdgeWidth(width)
	}
}

// ToDocument returns the serialized form of the whole set.
func (st *Set) ToDocument() (*SceneDocument, error) {
	doc := &SceneDocument{
		Version:     DocumentVersion,
		ObjectCount: st.objects.Len(),
		Objects:     make(map[string]*Document, st.objects.Len()),
	}
	for _, kv := range st.objects.Order {
		od, err := kv.Value.ToDocument()
		if err != nil {
			return nil, fmt.Errorf("geom.Set: object %q: %w", kv.Key, err)
		}
		doc.Objects[kv.Key] = od
	}
	return doc, nil
}

// FromDocument clears the set and restores it from the given document,
// consulting the set's registry to reconstruct each object from its
// type discriminant. Entries with unknown types or malformed payloads
// are skipped with a warning; the rest of the collection still loads.
// Objects are restored in sorted name order. It is an error for the
// document to lack a version or an objects section.
func (st *Set) FromDocument(doc *SceneDocument) error {
	st.Clear()
	if doc.Version == "" {
		return fmt.Errorf("geom.Set: %w: missing version field", ErrSchemaMismatch)
	}
	if doc.Objects == nil {
		return fmt.Errorf("geom.Set: %w: missing objects field", ErrSchemaMismatch)
	}
	reg := st.registry()
	names := make([]string, 0, len(doc.Objects))
	for name := range doc.Objects {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		od := doc.Objects[name]
		if od == nil {
			continue
		}
		o, err := reg.NewFromDocument(od)
		if err != nil {
			logx.PrintlnWarn("geom.Set: skipping object", name, "error:", err)
			continue
		}
		st.Add(name, o)
	}
	return nil
}

// SaveJSON saves the set document to the given JSON file.
func (st *Set) SaveJSON(filename string) error {
	doc, err := st.ToDocument()
	if err != nil {
		logx.PrintlnError("geom.Set: error saving to", filename, "error:", err)
		return err
	}
	if err := jsonx.SaveIndent(doc, filename); err != nil {
		logx.PrintlnError("geom.Set: error saving to", filename, "error:", err)
		return err
	}
	return nil
}

// OpenJSON clears the set and loads it from the given JSON file.
func (st *Set) OpenJSON(filename string) error {
	var doc SceneDocument
	if err := jsonx.Open(&doc, filename); err != nil {
		logx.PrintlnError("geom.Set: error opening", filename, "error:", err)
		return err
	}
	return st.FromDocument(&doc)
}

// Clone returns a deep copy of the set: new objects of the same kinds
// and parameters under the same names, in the same order. The clone
// shares the registry with the original.
func (st *Set) Clone() (*Set, error) {
	ns := NewSet(st.Registry)
	for _, kv := range st.objects.Order {
		o, err := Clone(kv.Value)
		if err != nil {
			return nil, fmt.Errorf("geom.Set: cloning %q: %w", kv.Key, err)
		}
		ns.Add(kv.Key, o)
	}
	return ns, nil
}
