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
	"math"

	"github.com/ctessum/sparse"
)

// MOD16 computes actual evapotranspiration with a simplified form of the
// MOD16 algorithm (Mu et al. 2011), a Penman-Monteith resistance model
// parameterized by a biome lookup table (BPLUT). Surface resistance
// blends a wet-canopy term, a stomatal term from temperature and VPD
// stress multipliers, and a soil-moisture-scaled soil term.
type MOD16 struct {
	biome  string
	params BiomeParams
}

// NewMOD16 builds a MOD16 model for the given land cover class in the
// lookup table. The table is required; an empty or nil table is a
// parameter error.
func NewMOD16(table BPLUT, biome string) (*MOD16, error) {
	if len(table) == 0 {
		return nil, &MissingParamsError{Model: "MOD16", Params: []string{"bplut"}}
	}
	params, ok := table[biome]
	if !ok {
		return nil, fmt.Errorf("etmodel: MOD16: biome class %q not in lookup table", biome)
	}
	if err := params.valid(); err != nil {
		return nil, fmt.Errorf("etmodel: MOD16: biome class %s: %w", biome, err)
	}
	return &MOD16{biome: biome, params: params}, nil
}

// Name implements Model.
func (m *MOD16) Name() string { return "MOD16" }

// Family implements Model.
func (m *MOD16) Family() Family { return Resistance }

// RequiredFields implements Model.
func (m *MOD16) RequiredFields() []string {
	return []string{"T_mean", "Rn", "G", "RH", "VPD", "u2", "LAI"}
}

// mod16Inputs is the fully resolved per-call input record: required
// fields validated present, optional fields filled with their documented
// defaults.
type mod16Inputs struct {
	tMean, rn, g, rh, vpd, u2, lai *sparse.DenseArray
	tMin                           *sparse.DenseArray // default T_mean − 5
	soilMoisture                   *sparse.DenseArray // default 0.2
	soilMoistureMax                *sparse.DenseArray // default 0.4
}

func (m *MOD16) resolve(ds *Dataset) (*mod16Inputs, error) {
	if err := ds.CheckFields(m.Name(), m.RequiredFields()...); err != nil {
		return nil, err
	}
	in := &mod16Inputs{
		tMean:           ds.field("T_mean"),
		rn:              ds.field("Rn"),
		g:               ds.field("G"),
		rh:              ds.field("RH"),
		vpd:             ds.field("VPD"),
		u2:              ds.field("u2"),
		lai:             ds.field("LAI"),
		soilMoisture:    ds.fieldDefault("soil_moisture", 0.2),
		soilMoistureMax: ds.fieldDefault("soil_moisture_max", 0.4),
	}
	if ds.Has("T_min") {
		in.tMin = ds.field("T_min")
	} else {
		in.tMin = apply(in.tMean, func(t float64) float64 { return t - 5 })
	}
	return in, nil
}

// aerodynamicResistance approximates the aerodynamic resistance [s m-1]
// from wind speed and leaf area index. Wind and LAI are floored at 0.1
// to keep the resistance finite over still or bare cells.
func aerodynamicResistance(u2, lai float64) float64 {
	return 100.0 / (math.Max(u2, 0.1) * math.Sqrt(math.Max(lai, 0.1)))
}

// surfaceResistance is the simplified canopy and soil resistance
// parameterization [s m-1]. Relative humidity above 80% indicates a wet
// canopy and forces the near-zero wet resistance; otherwise a stomatal
// resistance from the temperature and VPD stress multipliers is combined
// with a soil-moisture-scaled soil resistance.
func (m *MOD16) surfaceResistance(rh, vpd, tMin, sm, smMax float64) float64 {
	p := m.params
	if clamp(rh, 0, 100) > 80 {
		return clamp(p.RWet, 10, 2000)
	}

	var stressTemp float64
	if tMin < 0 {
		stressTemp = 0.1
	} else {
		stressTemp = clamp(1.0-(tMin-p.TMinOpen)/p.TMinRange, 0.1, 1.0)
	}
	stressVPD := 1.0
	if vpd >= p.VPDOpen {
		stressVPD = clamp(1.0-(vpd-p.VPDOpen)/p.VPDRange, 0.1, 1.0)
	}
	gs := p.GSMin + p.GSRange*stressTemp*stressVPD
	rc := 1.0 / gs

	soilStress := clamp(sm/math.Max(smMax, 1e-6), 0.05, 1.0)
	rSoil := p.RSoil / soilStress

	return clamp(rc+rSoil, 10, 2000)
}

// ComputeET implements Model. It returns AET in mm day-1 through the
// standard resistance-form latent heat equation.
func (m *MOD16) ComputeET(ds *Dataset) (map[string]*sparse.DenseArray, error) {
	in, err := m.resolve(ds)
	if err != nil {
		return nil, err
	}

	aet := sparse.ZerosDense(ds.Shape()...)
	for i := range aet.Elements {
		delta := slopeSVP(in.tMean.Elements[i])
		ra := aerodynamicResistance(in.u2.Elements[i], in.lai.Elements[i])
		rs := m.surfaceResistance(in.rh.Elements[i], in.vpd.Elements[i],
			in.tMin.Elements[i], in.soilMoisture.Elements[i], in.soilMoistureMax.Elements[i])

		avail := in.rn.Elements[i] - in.g.Elements[i]
		le := (delta*avail + RhoAir*CpAir*in.vpd.Elements[i]/ra) /
			(delta + Gamma*(1.0+rs/ra))
		aet.Elements[i] = math.Max(wattsToMM(le), 0)
	}
	return map[string]*sparse.DenseArray{AET: aet}, nil
}
