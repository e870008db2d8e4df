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

// ptAlpha is the Priestley-Taylor coefficient.
const ptAlpha = 1.26

// ptEquilibrium is the Priestley-Taylor potential flux for one grid
// cell: α·Δ/(Δ+γ)·(available energy).
func ptEquilibrium(delta, energy float64) float64 {
	return ptAlpha * (delta / (delta + Gamma)) * energy
}

// PTJPL computes actual evapotranspiration with the PT-JPL algorithm
// (Fisher et al. 2008), a Priestley-Taylor stress model. The potential
// flux is computed separately for the canopy-apportioned (60%) and
// soil-apportioned (40%) available energy, then reduced by four 0-1
// constraint factors: canopy wetness, soil moisture availability,
// vegetation cover, and green-canopy temperature stress. The flux is
// partitioned into interception, soil evaporation, and transpiration.
type PTJPL struct {
	tOpt     float64
	fAPARMax float64
}

// PTJPLConfig holds PT-JPL's required parameters. Both are required;
// zero values are treated as absent.
type PTJPLConfig struct {
	// TOpt is the optimal temperature for photosynthesis [°C].
	TOpt float64
	// FAPARMax is the maximum fAPAR used to normalize the green-canopy
	// factor [-].
	FAPARMax float64
}

// NewPTJPL builds a PT-JPL model. Missing required parameters fail
// construction with an error naming every absent parameter.
func NewPTJPL(cfg PTJPLConfig) (*PTJPL, error) {
	var missing []string
	if cfg.TOpt == 0 {
		missing = append(missing, "T_opt")
	}
	if cfg.FAPARMax == 0 {
		missing = append(missing, "fAPAR_max")
	}
	if len(missing) > 0 {
		return nil, &MissingParamsError{Model: "PTJPL", Params: missing}
	}
	if cfg.TOpt < 0 {
		return nil, fmt.Errorf("etmodel: PTJPL: T_opt must be positive, got %g", cfg.TOpt)
	}
	if cfg.FAPARMax < 0 || cfg.FAPARMax > 1 {
		return nil, fmt.Errorf("etmodel: PTJPL: fAPAR_max must be in (0, 1], got %g", cfg.FAPARMax)
	}
	return &PTJPL{tOpt: cfg.TOpt, fAPARMax: cfg.FAPARMax}, nil
}

// Name implements Model.
func (m *PTJPL) Name() string { return "PTJPL" }

// Family implements Model.
func (m *PTJPL) Family() Family { return Stress }

// RequiredFields implements Model.
func (m *PTJPL) RequiredFields() []string {
	return []string{"Rn", "G", "T_mean", "T_max", "RH", "fAPAR", "fIPAR"}
}

// ptjplInputs is the fully resolved per-call input record.
type ptjplInputs struct {
	rn, g, tMean, tMax, rh, fAPAR, fIPAR *sparse.DenseArray
	rhMin                                *sparse.DenseArray // default 0.75·RH
	vpd                                  *sparse.DenseArray // default 1.0 kPa
}

func (m *PTJPL) resolve(ds *Dataset) (*ptjplInputs, error) {
	if err := ds.CheckFields(m.Name(), m.RequiredFields()...); err != nil {
		return nil, err
	}
	in := &ptjplInputs{
		rn:    ds.field("Rn"),
		g:     ds.field("G"),
		tMean: ds.field("T_mean"),
		tMax:  ds.field("T_max"),
		rh:    ds.field("RH"),
		fAPAR: ds.field("fAPAR"),
		fIPAR: ds.field("fIPAR"),
		vpd:   ds.fieldDefault("VPD", 1.0),
	}
	in.rhMin = ds.fieldScaled("RH_min", in.rh, 0.75)
	return in, nil
}

// fWet is the canopy wetness factor, a quartic function of relative
// humidity. At saturation the canopy is fully wet.
func fWet(rh float64) float64 {
	frac := clamp(rh, 0, 100) / 100
	return frac * frac * frac * frac
}

// fSM is the soil moisture availability factor, a bounded ratio of the
// minimum relative humidity to VPD/β with β=2.
func fSM(vpd, rhMin float64) float64 {
	const beta = 2.0
	return clipFraction(rhMin / (vpd/beta + 1e-6))
}

// fCover is the vegetation cover factor fAPAR/fIPAR, zero where no
// radiation is intercepted.
func fCover(fAPAR, fIPAR float64) float64 {
	if fIPAR <= 0 {
		return 0
	}
	return clipFraction(fAPAR / fIPAR)
}

// fTemp is the temperature stress factor, a Gaussian-like penalty around
// the optimal temperature.
func (m *PTJPL) fTemp(tMax float64) float64 {
	dev := (tMax - m.tOpt) / m.tOpt
	return math.Exp(-dev * dev)
}

// fGreen is the green-canopy factor, fAPAR normalized by its maximum.
func (m *PTJPL) fGreen(fAPAR float64) float64 {
	return clipFraction(fAPAR / m.fAPARMax)
}

// ComputeET implements Model. The total is the sum of the three
// components returned by PartitionComponents.
func (m *PTJPL) ComputeET(ds *Dataset) (map[string]*sparse.DenseArray, error) {
	parts, err := m.PartitionComponents(ds)
	if err != nil {
		return nil, err
	}
	aet := sparse.ZerosDense(ds.Shape()...)
	for i := range aet.Elements {
		aet.Elements[i] = parts[Interception].Elements[i] +
			parts[SoilEvaporation].Elements[i] +
			parts[Transpiration].Elements[i]
	}
	return map[string]*sparse.DenseArray{AET: aet}, nil
}

// PartitionComponents implements Partitioner. Interception is the
// wet-canopy fraction of the canopy potential flux, soil evaporation a
// wetness-or-soil-moisture weighted blend of the soil potential flux,
// and transpiration the dry-canopy fraction gated by the cover,
// temperature, and greenness factors.
func (m *PTJPL) PartitionComponents(ds *Dataset) (map[string]*sparse.DenseArray, error) {
	in, err := m.resolve(ds)
	if err != nil {
		return nil, err
	}

	ei := sparse.ZerosDense(ds.Shape()...)
	es := sparse.ZerosDense(ds.Shape()...)
	tr := sparse.ZerosDense(ds.Shape()...)
	for i := range ei.Elements {
		delta := slopeSVP(in.tMean.Elements[i])
		avail := in.rn.Elements[i] - in.g.Elements[i]
		alphaCanopy := ptEquilibrium(delta, 0.6*avail)
		alphaSoil := ptEquilibrium(delta, 0.4*avail)

		wet := fWet(in.rh.Elements[i])
		sm := fSM(in.vpd.Elements[i], in.rhMin.Elements[i])
		cover := fCover(in.fAPAR.Elements[i], in.fIPAR.Elements[i])
		temp := m.fTemp(in.tMax.Elements[i])
		green := m.fGreen(in.fAPAR.Elements[i])

		ei.Elements[i] = math.Max(wattsToMM(wet*alphaCanopy), 0)
		es.Elements[i] = math.Max(wattsToMM((wet+(1-wet)*sm)*alphaSoil), 0)
		tr.Elements[i] = math.Max(wattsToMM((1-wet)*cover*temp*green*alphaCanopy), 0)
	}
	return map[string]*sparse.DenseArray{
		Interception:    ei,
		SoilEvaporation: es,
		Transpiration:   tr,
	}, nil
}
