/*
Copyright © 2026 the etmodel authors.
This file is part of etmodel.

etmodel is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

etmodel is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with etmodel.  If not, see <http://www.gnu.org/licenses/>.
*/

package etmodel

import (
	"fmt"
	"sort"

	"github.com/ctessum/sparse"
)

// Dataset is a named collection of gridded forcing fields. Every field
// shares one grid shape, fixed by the first field added; adding a field
// with a different shape fails with a ShapeError. Field names and units
// are fixed per field (see Units).
//
// Datasets are transient: they are created per computation call and are
// not retained by any model.
type Dataset struct {
	fields map[string]*sparse.DenseArray
	shape  []int
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{fields: make(map[string]*sparse.DenseArray)}
}

// Set adds or replaces the named field. The first field added fixes the
// dataset's grid shape; subsequent fields must match it exactly.
func (d *Dataset) Set(name string, data *sparse.DenseArray) error {
	if data == nil {
		return fmt.Errorf("etmodel: field %s is nil", name)
	}
	if d.shape == nil {
		d.shape = append([]int{}, data.Shape...)
	} else if !shapesEqual(d.shape, data.Shape) {
		return &ShapeError{Field: name, Want: d.shape, Got: data.Shape}
	}
	d.fields[name] = data
	return nil
}

// SetConstant adds the named field filled with a single value on the
// dataset's grid. The dataset shape must already have been fixed by a
// previous Set.
func (d *Dataset) SetConstant(name string, val float64) error {
	if d.shape == nil {
		return fmt.Errorf("etmodel: cannot set constant field %s on an empty dataset", name)
	}
	return d.Set(name, d.constant(val))
}

// Get returns the named field, or an error naming it if absent.
func (d *Dataset) Get(name string) (*sparse.DenseArray, error) {
	data, ok := d.fields[name]
	if !ok {
		return nil, &MissingFieldsError{Fields: []string{name}}
	}
	return data, nil
}

// Has reports whether the named field is present.
func (d *Dataset) Has(name string) bool {
	_, ok := d.fields[name]
	return ok
}

// Fields returns the names of the fields in the dataset, sorted.
func (d *Dataset) Fields() []string {
	names := make([]string, 0, len(d.fields))
	for name := range d.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Shape returns the grid shape shared by all fields, or nil for an
// empty dataset.
func (d *Dataset) Shape() []int { return d.shape }

// CheckFields ensures that every field in required is present, returning
// a MissingFieldsError that names all absent fields. It is called at the
// start of every public computation entry point, before any numeric
// work, and has no other side effects.
func (d *Dataset) CheckFields(model string, required ...string) error {
	var missing []string
	for _, name := range required {
		if !d.Has(name) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingFieldsError{Model: model, Fields: missing}
	}
	return nil
}

// field returns the named field, panicking if absent. It is only for use
// after CheckFields has validated the field's presence.
func (d *Dataset) field(name string) *sparse.DenseArray {
	data, ok := d.fields[name]
	if !ok {
		panic(fmt.Errorf("etmodel: field %s accessed without validation", name))
	}
	return data
}

// fieldDefault resolves an optional field: the field itself when
// present, otherwise a constant fill with the model's documented
// default. This is the single place optional-field defaults are
// materialized, so each computation works from a fully resolved set of
// inputs.
func (d *Dataset) fieldDefault(name string, fallback float64) *sparse.DenseArray {
	if data, ok := d.fields[name]; ok {
		return data
	}
	return d.constant(fallback)
}

// fieldScaled resolves an optional field to scale*base when absent.
func (d *Dataset) fieldScaled(name string, base *sparse.DenseArray, scale float64) *sparse.DenseArray {
	if data, ok := d.fields[name]; ok {
		return data
	}
	out := sparse.ZerosDense(base.Shape...)
	for i, v := range base.Elements {
		out.Elements[i] = v * scale
	}
	return out
}

func (d *Dataset) constant(val float64) *sparse.DenseArray {
	out := sparse.ZerosDense(d.shape...)
	for i := range out.Elements {
		out.Elements[i] = val
	}
	return out
}

func shapesEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i, v := range a {
		if v != b[i] {
			return false
		}
	}
	return true
}
