// Copyright (c) 2026, The Drywell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"fmt"
	"reflect"

	"github.com/jinzhu/copier"
)

// Clone returns a deep copy of the given object: a new instance of the
// same concrete kind with all parameters copied. The clone has no
// built primitive and is flagged as needing a rebuild.
func Clone(o Object) (Object, error) {
	nv := reflect.New(reflect.ValueOf(o).Elem().Type())
	n, ok := nv.Interface().(Object)
	if !ok {
		return nil, fmt.Errorf("geom.Clone: %T does not implement Object", nv.Interface())
	}
	if err := copier.CopyWithOption(n, o, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("geom.Clone: %w", err)
	}
	nb := n.AsBase()
	nb.prim = nil
	nb.dirty = true
	return n, nil
}
