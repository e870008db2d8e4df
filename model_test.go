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
	"errors"
	"testing"
)

// allModels builds one instance of every model with valid parameters.
func allModels(t *testing.T) []Model {
	t.Helper()
	mod16, err := NewMOD16(DefaultBPLUT(), "GRA")
	if err != nil {
		t.Fatal(err)
	}
	pml, err := NewPMLv2(nil)
	if err != nil {
		t.Fatal(err)
	}
	ptjpl, err := NewPTJPL(PTJPLConfig{TOpt: 25, FAPARMax: 0.9})
	if err != nil {
		t.Fatal(err)
	}
	gleam, err := NewGLEAM(0.4)
	if err != nil {
		t.Fatal(err)
	}
	return []Model{mod16, pml, ptjpl, gleam, NewSEBAL(), NewSSEBop()}
}

func TestModelFamilies(t *testing.T) {
	want := map[string]Family{
		"MOD16":  Resistance,
		"PMLv2":  Resistance,
		"PTJPL":  Stress,
		"GLEAM":  Stress,
		"SEBAL":  EnergyBalance,
		"SSEBop": EnergyBalance,
	}
	for _, m := range allModels(t) {
		if m.Family() != want[m.Name()] {
			t.Errorf("%s family = %v; want %v", m.Name(), m.Family(), want[m.Name()])
		}
	}
}

// Every model's AET must be non-negative and finite on a valid dataset.
func TestComputeETNonNegative(t *testing.T) {
	for _, m := range allModels(t) {
		t.Run(m.Name(), func(t *testing.T) {
			ds := testForcing(t)
			if m.Name() == "SEBAL" {
				// SEBAL needs spatial temperature contrast.
				lst := ds.field("LST")
				for i := range lst.Elements {
					lst.Elements[i] = 290 + float64(i%25)
				}
			}
			out, err := m.ComputeET(ds)
			if err != nil {
				t.Fatal(err)
			}
			aet, ok := out[AET]
			if !ok {
				t.Fatalf("%s output missing %s field", m.Name(), AET)
			}
			checkNonNegative(t, AET, aet)
		})
	}
}

// Every model must refuse to compute on a dataset missing its required
// fields, naming the absent fields, before any numeric work.
func TestComputeETMissingFields(t *testing.T) {
	for _, m := range allModels(t) {
		t.Run(m.Name(), func(t *testing.T) {
			ds := NewDataset()
			if err := ds.Set("G", constantField(20, testShape...)); err != nil {
				t.Fatal(err)
			}
			_, err := m.ComputeET(ds)
			var missing *MissingFieldsError
			if !errors.As(err, &missing) {
				t.Fatalf("%s: got %v; want MissingFieldsError", m.Name(), err)
			}
			if len(missing.Fields) != len(m.RequiredFields())-1 {
				t.Errorf("%s: error names %d fields; want %d",
					m.Name(), len(missing.Fields), len(m.RequiredFields())-1)
			}
		})
	}
}

// Only PMLv2 and PTJPL have a physical decomposition; all other models
// must fail with an unsupported-capability error rather than returning
// an empty result.
func TestPartitionCapability(t *testing.T) {
	partitioners := map[string]bool{"PMLv2": true, "PTJPL": true}
	for _, m := range allModels(t) {
		ds := testForcing(t)
		_, err := Partition(m, ds)
		if partitioners[m.Name()] {
			if err != nil {
				t.Errorf("%s: partition failed: %v", m.Name(), err)
			}
			continue
		}
		var unsupported *UnsupportedPartitionError
		if !errors.As(err, &unsupported) {
			t.Errorf("%s: got %v; want UnsupportedPartitionError", m.Name(), err)
		}
	}
}

// Model instances carry no state between calls: computing on one dataset
// must not change the result of computing on another.
func TestModelStateless(t *testing.T) {
	m, err := NewPTJPL(PTJPLConfig{TOpt: 25, FAPARMax: 0.9})
	if err != nil {
		t.Fatal(err)
	}
	baseline, err := m.ComputeET(testForcing(t))
	if err != nil {
		t.Fatal(err)
	}

	perturbed := testForcing(t)
	perturbed.field("RH").Elements[0] = 95
	if _, err := m.ComputeET(perturbed); err != nil {
		t.Fatal(err)
	}

	repeat, err := m.ComputeET(testForcing(t))
	if err != nil {
		t.Fatal(err)
	}
	for i := range baseline[AET].Elements {
		if baseline[AET].Elements[i] != repeat[AET].Elements[i] {
			t.Fatalf("repeated computation differs at element %d", i)
		}
	}
}
