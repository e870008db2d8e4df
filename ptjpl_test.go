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

// Missing construction parameters must be reported together, naming
// every absent parameter.
func TestPTJPLRequiredParams(t *testing.T) {
	_, err := NewPTJPL(PTJPLConfig{})
	var missing *MissingParamsError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v; want MissingParamsError", err)
	}
	if len(missing.Params) != 2 {
		t.Fatalf("error names %v; want both T_opt and fAPAR_max", missing.Params)
	}

	_, err = NewPTJPL(PTJPLConfig{TOpt: 25})
	if !errors.As(err, &missing) || len(missing.Params) != 1 || missing.Params[0] != "fAPAR_max" {
		t.Errorf("got %v; want error naming fAPAR_max only", err)
	}

	if _, err := NewPTJPL(PTJPLConfig{TOpt: 25, FAPARMax: 1.5}); err == nil {
		t.Error("fAPAR_max above 1 accepted")
	}
}

// The three partition components must sum to the total flux.
func TestPTJPLPartitionSum(t *testing.T) {
	m, err := NewPTJPL(PTJPLConfig{TOpt: 25, FAPARMax: 0.9})
	if err != nil {
		t.Fatal(err)
	}
	ds := testForcing(t)
	out, err := m.ComputeET(ds)
	if err != nil {
		t.Fatal(err)
	}
	parts, err := m.PartitionComponents(ds)
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{Interception, SoilEvaporation, Transpiration} {
		if _, ok := parts[name]; !ok {
			t.Fatalf("partition missing %s", name)
		}
		checkNonNegative(t, name, parts[name])
	}
	for i := range out[AET].Elements {
		sum := parts[Interception].Elements[i] +
			parts[SoilEvaporation].Elements[i] +
			parts[Transpiration].Elements[i]
		if different(out[AET].Elements[i], sum, 1e-5) {
			t.Fatalf("element %d: AET=%g but component sum=%g",
				i, out[AET].Elements[i], sum)
		}
	}
}

// At saturation the canopy is fully wet: interception takes the whole
// canopy potential flux and transpiration vanishes.
func TestPTJPLSaturatedCanopy(t *testing.T) {
	m, err := NewPTJPL(PTJPLConfig{TOpt: 25, FAPARMax: 0.9})
	if err != nil {
		t.Fatal(err)
	}
	ds := testForcing(t)
	rh := ds.field("RH")
	for i := range rh.Elements {
		rh.Elements[i] = 100
	}
	parts, err := m.PartitionComponents(ds)
	if err != nil {
		t.Fatal(err)
	}

	// Recompute the canopy potential flux term for the test conditions:
	// α·Δ/(Δ+γ)·0.6(Rn−G), in mm/day.
	delta := slopeSVP(20)
	wantInterception := wattsToMM(1.26 * delta / (delta + Gamma) * 0.6 * (200 - 20))

	for i := range parts[Interception].Elements {
		if different(parts[Interception].Elements[i], wantInterception, 1e-9) {
			t.Fatalf("interception = %g; want full canopy term %g",
				parts[Interception].Elements[i], wantInterception)
		}
		if parts[Transpiration].Elements[i] != 0 {
			t.Fatalf("transpiration = %g at RH=100; want 0",
				parts[Transpiration].Elements[i])
		}
	}
}

func TestPTJPLConstraintFactors(t *testing.T) {
	m, err := NewPTJPL(PTJPLConfig{TOpt: 25, FAPARMax: 0.9})
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		name string
		got  float64
		want float64
		tol  float64
	}{
		{"fWet at RH=100", fWet(100), 1, 1e-12},
		{"fWet at RH=0", fWet(0), 0, 1e-12},
		{"fWet at RH=50", fWet(50), 0.0625, 1e-12},
		{"fCover with no interception", fCover(0.6, 0), 0, 1e-12},
		{"fCover clipped", fCover(0.9, 0.3), 1, 1e-12},
		{"fTemp at optimum", m.fTemp(25), 1, 1e-12},
		{"fGreen at maximum", m.fGreen(0.9), 1, 1e-12},
		{"fSM bounded", fSM(0.01, 90), 1, 1e-12},
	}
	for _, c := range cases {
		if absDifferent(c.got, c.want, c.tol) {
			t.Errorf("%s = %g; want %g", c.name, c.got, c.want)
		}
	}

	// Temperature stress declines away from the optimum on both sides.
	if m.fTemp(40) >= m.fTemp(30) || m.fTemp(10) >= m.fTemp(20) {
		t.Error("fTemp does not decline away from the optimal temperature")
	}
}
