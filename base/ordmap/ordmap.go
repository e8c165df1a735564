// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ordmap implements a generic map that preserves the order in
// which items were added, while still providing fast key lookup.
//
// The slice holds the key and value for each item as added, and the map
// holds the index of each key in that slice. Adding and lookup are
// fast; deleting requires renumbering the indexes above the deleted
// item, which is acceptable for the moderate sizes this package is
// used for.
package ordmap

import "slices"

// KeyValue is one key-value pair in the ordered slice.
type KeyValue[K comparable, V any] struct {
	Key   K
	Value V
}

// Map is an ordered map combining the order of a slice and the fast
// lookup of a map. The zero value is ready to use.
type Map[K comparable, V any] struct {

	// Order is the ordered list of key-value pairs, in the order added.
	Order []KeyValue[K, V]

	// index is the key to Order-index mapping.
	index map[K]int
}

// New returns a new ordered map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{index: make(map[K]int)}
}

// init initializes the index map if it isn't already.
func (om *Map[K, V]) init() {
	if om.index == nil {
		om.index = make(map[K]int)
	}
}

// Add adds a value under the given key. If the key already exists, its
// value is replaced in place, keeping the original insertion position;
// otherwise the item is appended.
func (om *Map[K, V]) Add(key K, val V) {
	om.init()
	if idx, has := om.index[key]; has {
		om.Order[idx] = KeyValue[K, V]{Key: key, Value: val}
	} else {
		om.index[key] = len(om.Order)
		om.Order = append(om.Order, KeyValue[K, V]{Key: key, Value: val})
	}
}

// ValueByKey returns the value for the given key, with false returned
// for a missing key.
func (om *Map[K, V]) ValueByKey(key K) (V, bool) {
	if idx, ok := om.index[key]; ok {
		return om.Order[idx].Value, true
	}
	var zv V
	return zv, false
}

// HasKey reports whether the given key is present.
func (om *Map[K, V]) HasKey(key K) bool {
	_, ok := om.index[key]
	return ok
}

// ValueByIndex returns the value at the given index in insertion order.
func (om *Map[K, V]) ValueByIndex(idx int) V {
	return om.Order[idx].Value
}

// KeyByIndex returns the key at the given index in insertion order.
func (om *Map[K, V]) KeyByIndex(idx int) K {
	return om.Order[idx].Key
}

// Len returns the number of items in the map.
func (om *Map[K, V]) Len() int {
	if om == nil {
		return 0
	}
	return len(om.Order)
}

// DeleteKey deletes the item with the given key, returning false if it
// is not present. Indexes of all items above it are renumbered.
func (om *Map[K, V]) DeleteKey(key K) bool {
	idx, ok := om.index[key]
	if !ok {
		return false
	}
	for o := idx + 1; o < len(om.Order); o++ {
		om.index[om.Order[o].Key] = o - 1
	}
	delete(om.index, key)
	om.Order = slices.Delete(om.Order, idx, idx+1)
	return true
}

// Reset removes all items.
func (om *Map[K, V]) Reset() {
	om.Order = nil
	om.index = nil
}

// Keys returns the keys in insertion order.
func (om *Map[K, V]) Keys() []K {
	kl := make([]K, om.Len())
	for i, kv := range om.Order {
		kl[i] = kv.Key
	}
	return kl
}

// Values returns the values in insertion order.
func (om *Map[K, V]) Values() []V {
	vl := make([]V, om.Len())
	for i, kv := range om.Order {
		vl[i] = kv.Value
	}
	return vl
}
