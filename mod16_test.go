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

func TestMOD16RequiresBPLUT(t *testing.T) {
	_, err := NewMOD16(nil, "GRA")
	var missing *MissingParamsError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v; want MissingParamsError", err)
	}
	if len(missing.Params) != 1 || missing.Params[0] != "bplut" {
		t.Errorf("error names %v; want [bplut]", missing.Params)
	}

	if _, err := NewMOD16(DefaultBPLUT(), "nosuchbiome"); err == nil {
		t.Error("unknown biome class accepted")
	}
}

// Reference scenario: T_mean=20°C, Rn=200 W/m², G=20 W/m², RH=60%,
// VPD=0.8 kPa, u2=2 m/s, LAI=3 should give a finite positive AET below
// 15 mm/day.
func TestMOD16Scenario(t *testing.T) {
	m, err := NewMOD16(DefaultBPLUT(), "GRA")
	if err != nil {
		t.Fatal(err)
	}
	out, err := m.ComputeET(testForcing(t))
	if err != nil {
		t.Fatal(err)
	}
	aet := out[AET]
	checkNonNegative(t, AET, aet)
	for _, v := range aet.Elements {
		if v <= 0 || v >= 15 {
			t.Fatalf("AET = %g mm/day; want in (0, 15)", v)
		}
	}
}

// A wet canopy (RH above 80%) switches the surface resistance to the
// near-zero wet term, so the flux must not be lower than under the same
// conditions with a dry canopy's combined stomatal and soil resistance.
func TestMOD16WetCanopy(t *testing.T) {
	m, err := NewMOD16(DefaultBPLUT(), "GRA")
	if err != nil {
		t.Fatal(err)
	}

	wet := m.surfaceResistance(90, 0.8, 13, 0.25, 0.4)
	dry := m.surfaceResistance(60, 0.8, 13, 0.25, 0.4)
	if wet >= dry {
		t.Errorf("wet canopy resistance %g not below dry %g", wet, dry)
	}
	if wet < 10 || wet > 2000 || dry < 10 || dry > 2000 {
		t.Errorf("resistances outside [10, 2000]: wet=%g dry=%g", wet, dry)
	}
}

func TestMOD16StressBounds(t *testing.T) {
	m, err := NewMOD16(DefaultBPLUT(), "GRA")
	if err != nil {
		t.Fatal(err)
	}
	// Freezing minimum temperature and extreme VPD drive both stress
	// multipliers to their 0.1 floor; resistance stays bounded.
	rs := m.surfaceResistance(30, 6.0, -10, 0.02, 0.4)
	if rs < 10 || rs > 2000 {
		t.Errorf("resistance %g outside [10, 2000]", rs)
	}
}

func TestAerodynamicResistanceFloors(t *testing.T) {
	// Calm wind and bare soil are floored rather than diverging.
	calm := aerodynamicResistance(0, 0)
	if calm != aerodynamicResistance(0.1, 0.1) {
		t.Errorf("resistance at zero wind/LAI = %g; want floor value", calm)
	}
	if aerodynamicResistance(2, 3) >= calm {
		t.Error("resistance should decrease with wind and LAI")
	}
}
