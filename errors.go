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
	"strings"
)

// MissingFieldsError reports forcing fields that a model requires but the
// dataset does not contain. It lists every absent field, not just the
// first one encountered.
type MissingFieldsError struct {
	Model  string
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("etmodel: %s: missing required dataset fields: %s",
		e.Model, strings.Join(e.Fields, ", "))
}

// MissingParamsError reports model parameters that are required at
// construction but were not provided.
type MissingParamsError struct {
	Model  string
	Params []string
}

func (e *MissingParamsError) Error() string {
	return fmt.Sprintf("etmodel: %s: missing required parameters: %s",
		e.Model, strings.Join(e.Params, ", "))
}

// ShapeError reports a forcing field whose grid shape differs from the
// shape shared by the rest of the dataset. All fields consumed within one
// computation must share a single shape; there is no implicit
// broadcasting.
type ShapeError struct {
	Field string
	Want  []int
	Got   []int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("etmodel: field %s has shape %v; want %v",
		e.Field, e.Got, e.Want)
}

// UnsupportedPartitionError is returned by Partition for models that have
// no physically defined component decomposition.
type UnsupportedPartitionError struct {
	Model string
}

func (e *UnsupportedPartitionError) Error() string {
	return fmt.Sprintf("etmodel: %s does not support component partitioning", e.Model)
}

// SpatialExtentError is returned by SEBAL when the dataset lacks the
// spatial extent needed for anchor-pixel percentile calibration. Callers
// running SEBAL on point or near-point data are expected to catch this
// error type and skip the model deliberately.
type SpatialExtentError struct {
	Reason string
}

func (e *SpatialExtentError) Error() string {
	return "etmodel: SEBAL anchor-pixel calibration: " + e.Reason
}
