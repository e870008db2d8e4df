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
	"math"
	"testing"

	"github.com/ctessum/sparse"
)

// constantField fills an array of the given shape with a single value.
func constantField(val float64, shape ...int) *sparse.DenseArray {
	out := sparse.ZerosDense(shape...)
	for i := range out.Elements {
		out.Elements[i] = val
	}
	return out
}

// testShape is the grid used by most tests: one time step on a 5×5
// spatial grid, large enough for SEBAL's anchor percentiles.
var testShape = []int{1, 5, 5}

// testForcing returns a dataset on testShape carrying every field any of
// the models requires, with mid-latitude summer values.
func testForcing(t *testing.T) *Dataset {
	t.Helper()
	ds := NewDataset()
	for name, val := range map[string]float64{
		"T_mean":            20.0,
		"T_max":             27.0,
		"T_min":             13.0,
		"Rn":                200.0,
		"G":                 20.0,
		"RH":                60.0,
		"VPD":               0.8,
		"u2":                2.0,
		"LAI":               3.0,
		"fAPAR":             0.6,
		"fIPAR":             0.7,
		"LST":               295.0,
		"soil_moisture":     0.25,
		"soil_moisture_max": 0.4,
		"CO2":               410.0,
		"ra":                50.0,
		"latitude":          35.0,
		"day_of_year":       180.0,
	} {
		if err := ds.Set(name, constantField(val, testShape...)); err != nil {
			t.Fatal(err)
		}
	}
	return ds
}

// checkNonNegative fails if any element of the field is negative or
// not finite.
func checkNonNegative(t *testing.T, name string, data *sparse.DenseArray) {
	t.Helper()
	for i, v := range data.Elements {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("%s element %d is not finite: %g", name, i, v)
		}
		if v < 0 {
			t.Fatalf("%s element %d is negative: %g", name, i, v)
		}
	}
}

func different(a, b, tolerance float64) bool {
	if 2*math.Abs(a-b)/math.Abs(a+b) > tolerance || math.IsNaN(a) || math.IsNaN(b) {
		return true
	}
	return false
}

func absDifferent(a, b, tolerance float64) bool {
	return math.Abs(a-b) > tolerance
}
