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
	"github.com/spf13/cast"
)

// PMLv2 computes actual evapotranspiration with the Penman-Monteith-
// Leuning version 2 algorithm (Zhang et al. 2019), a two-source
// resistance model. Canopy conductance is driven by a gross primary
// production proxy through a Leuning stomatal model, so the canopy flux
// responds to CO2, VPD, and absorbed radiation; soil evaporation uses an
// equilibrium form. The model partitions the flux into canopy
// transpiration and soil evaporation, and the total is always the sum of
// those two terms.
type PMLv2 struct {
	ga         float64 // aerodynamic conductance [m s-1]
	g0         float64 // minimum stomatal conductance [m s-1]
	k          float64 // stomatal slope parameter [-]
	d0         float64 // reference VPD [kPa]
	gammaStar  float64 // CO2 compensation point [ppm]
	lue        float64 // light use efficiency [g C MJ-1]
	soilFactor float64 // soil evaporation factor [-]
}

// pmlv2Defaults documents the default for every recognized PMLv2 option.
var pmlv2Defaults = map[string]float64{
	"ga":          0.01,
	"g0":          0.01,
	"k":           0.05,
	"D0":          1.5,
	"Gamma":       40.0,
	"lue":         1.5,
	"soil_factor": 0.8,
}

// NewPMLv2 builds a PMLv2 model. All options are optional; recognized
// keys and defaults are ga (0.01 m/s), g0 (0.01 m/s), k (0.05),
// D0 (1.5 kPa), Gamma (40 ppm), lue (1.5 g C/MJ), and soil_factor
// (0.8). Unrecognized keys or non-numeric values fail construction.
func NewPMLv2(options map[string]interface{}) (*PMLv2, error) {
	resolved := make(map[string]float64, len(pmlv2Defaults))
	for key, def := range pmlv2Defaults {
		resolved[key] = def
	}
	for key, raw := range options {
		if _, ok := pmlv2Defaults[key]; !ok {
			return nil, fmt.Errorf("etmodel: PMLv2: unrecognized option %q", key)
		}
		val, err := cast.ToFloat64E(raw)
		if err != nil {
			return nil, fmt.Errorf("etmodel: PMLv2: option %q: %w", key, err)
		}
		resolved[key] = val
	}
	return &PMLv2{
		ga:         resolved["ga"],
		g0:         resolved["g0"],
		k:          resolved["k"],
		d0:         resolved["D0"],
		gammaStar:  resolved["Gamma"],
		lue:        resolved["lue"],
		soilFactor: resolved["soil_factor"],
	}, nil
}

// Name implements Model.
func (m *PMLv2) Name() string { return "PMLv2" }

// Family implements Model.
func (m *PMLv2) Family() Family { return Resistance }

// RequiredFields implements Model.
func (m *PMLv2) RequiredFields() []string {
	return []string{"Rn", "G", "T_mean"}
}

// pmlv2Inputs is the fully resolved per-call input record.
type pmlv2Inputs struct {
	rn, g, tMean *sparse.DenseArray
	fAPAR        *sparse.DenseArray // default 0.5
	co2          *sparse.DenseArray // default 400 ppm
	vpd          *sparse.DenseArray // default from T_mean and RH (RH default 60%)
}

func (m *PMLv2) resolve(ds *Dataset) (*pmlv2Inputs, error) {
	if err := ds.CheckFields(m.Name(), m.RequiredFields()...); err != nil {
		return nil, err
	}
	in := &pmlv2Inputs{
		rn:    ds.field("Rn"),
		g:     ds.field("G"),
		tMean: ds.field("T_mean"),
		fAPAR: ds.fieldDefault("fAPAR", 0.5),
		co2:   ds.fieldDefault("CO2", 400.0),
	}
	if ds.Has("VPD") {
		in.vpd = ds.field("VPD")
	} else {
		in.vpd = VPDFromRH(in.tMean, ds.fieldDefault("RH", 60.0))
	}
	return in, nil
}

// canopyConductance is the Leuning stomatal model [m s-1], driven by the
// GPP proxy (absorbed radiation × light use efficiency, cut off below
// freezing) and inhibited by VPD and the CO2 compensation term.
func (m *PMLv2) canopyConductance(rn, tMean, fAPAR, co2, vpd float64) float64 {
	gpp := fAPAR * math.Max(rn, 0) * m.lue
	if tMean < 0 {
		gpp = 0
	}
	gc := m.g0 + m.k*gpp/(math.Max(co2-m.gammaStar, 1e-6)*(1.0+vpd/m.d0))
	return math.Max(gc, 1e-4)
}

// ComputeET implements Model. The total is formed from exactly the same
// two terms PartitionComponents returns.
func (m *PMLv2) ComputeET(ds *Dataset) (map[string]*sparse.DenseArray, error) {
	parts, err := m.PartitionComponents(ds)
	if err != nil {
		return nil, err
	}
	aet := sparse.ZerosDense(ds.Shape()...)
	for i := range aet.Elements {
		aet.Elements[i] = parts[Transpiration].Elements[i] + parts[SoilEvaporation].Elements[i]
	}
	return map[string]*sparse.DenseArray{AET: aet}, nil
}

// PartitionComponents implements Partitioner. Net radiation is split
// 60/40 between canopy and soil; the canopy share passes through the
// resistance equation with constant aerodynamic conductance, the soil
// share through a scaled equilibrium evaporation form.
func (m *PMLv2) PartitionComponents(ds *Dataset) (map[string]*sparse.DenseArray, error) {
	in, err := m.resolve(ds)
	if err != nil {
		return nil, err
	}

	transp := sparse.ZerosDense(ds.Shape()...)
	soil := sparse.ZerosDense(ds.Shape()...)
	for i := range transp.Elements {
		delta := slopeSVP(in.tMean.Elements[i])
		vpd := in.vpd.Elements[i]
		gc := m.canopyConductance(in.rn.Elements[i], in.tMean.Elements[i],
			in.fAPAR.Elements[i], in.co2.Elements[i], vpd)

		canopyRad := in.rn.Elements[i] * 0.6
		soilRad := in.rn.Elements[i] * 0.4

		leCanopy := (delta*canopyRad + RhoAir*CpAir*vpd*m.ga) /
			(delta + Gamma*(1.0+m.ga/gc))
		leSoil := m.soilFactor * delta * soilRad / (delta + Gamma)

		transp.Elements[i] = math.Max(wattsToMM(leCanopy), 0)
		soil.Elements[i] = math.Max(wattsToMM(leSoil), 0)
	}
	return map[string]*sparse.DenseArray{
		Transpiration:   transp,
		SoilEvaporation: soil,
	}, nil
}
