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

	"github.com/ctessum/sparse"
)

// GLEAM computes actual evapotranspiration following the stress-factor
// approach of the Global Land Evaporation Amsterdam Model (Martens et
// al. 2017): a Priestley-Taylor potential flux multiplied by a single
// soil moisture stress factor. The operational GLEAM adds interception,
// tall-canopy stress, and snow sublimation components; this formulation
// keeps only the soil moisture constraint.
type GLEAM struct {
	soilMoistureMax float64
}

// NewGLEAM builds a GLEAM model. The climatological soil moisture
// maximum is required and must be positive.
func NewGLEAM(soilMoistureMax float64) (*GLEAM, error) {
	if soilMoistureMax <= 0 {
		return nil, &MissingParamsError{Model: "GLEAM", Params: []string{"soil_moisture_max"}}
	}
	return &GLEAM{soilMoistureMax: soilMoistureMax}, nil
}

// Name implements Model.
func (m *GLEAM) Name() string { return "GLEAM" }

// Family implements Model.
func (m *GLEAM) Family() Family { return Stress }

// RequiredFields implements Model.
func (m *GLEAM) RequiredFields() []string {
	return []string{"Rn", "G", "T_mean", "soil_moisture"}
}

// stressFactor scales the observed soil moisture by its climatological
// maximum, clipped to [0, 1].
func (m *GLEAM) stressFactor(soilMoisture float64) float64 {
	return clipFraction(soilMoisture / m.soilMoistureMax)
}

// ComputeET implements Model.
func (m *GLEAM) ComputeET(ds *Dataset) (map[string]*sparse.DenseArray, error) {
	if err := ds.CheckFields(m.Name(), m.RequiredFields()...); err != nil {
		return nil, err
	}
	rn := ds.field("Rn")
	g := ds.field("G")
	tMean := ds.field("T_mean")
	soilMoisture := ds.field("soil_moisture")

	aet := sparse.ZerosDense(ds.Shape()...)
	for i := range aet.Elements {
		delta := slopeSVP(tMean.Elements[i])
		potential := ptEquilibrium(delta, rn.Elements[i]-g.Elements[i])
		stress := m.stressFactor(soilMoisture.Elements[i])
		aet.Elements[i] = math.Max(wattsToMM(potential*stress), 0)
	}
	return map[string]*sparse.DenseArray{AET: aet}, nil
}
