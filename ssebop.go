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

// ssebopColdOffset is the fixed difference between air temperature and
// the cold (well-watered) surface temperature limit [K].
const ssebopColdOffset = 2.0

// ssebopDefaultRa is the aerodynamic resistance assumed when the dataset
// carries none [s m-1].
const ssebopDefaultRa = 50.0

// SSEBop computes actual evapotranspiration with the operational
// simplified surface energy balance model (Senay et al. 2013). An
// evaporative fraction is derived from the position of the observed
// surface temperature between a cold limit (air temperature minus a
// fixed offset) and a hot limit (cold limit plus the temperature excess
// implied by the available energy and aerodynamic resistance), then
// applied to an internally computed FAO-56 reference evapotranspiration.
type SSEBop struct{}

// NewSSEBop builds an SSEBop model. It has no required parameters.
func NewSSEBop() *SSEBop { return &SSEBop{} }

// Name implements Model.
func (m *SSEBop) Name() string { return "SSEBop" }

// Family implements Model.
func (m *SSEBop) Family() Family { return EnergyBalance }

// RequiredFields implements Model. T_max, T_min, u2, and RH are required
// because the reference evapotranspiration is computed internally via
// FAO-56.
func (m *SSEBop) RequiredFields() []string {
	return []string{"Rn", "G", "LST", "T_mean", "T_max", "T_min", "u2", "RH"}
}

// temperatureLimits returns the cold and hot surface temperature limits
// [K] for one grid cell. LST is Kelvin while air temperature is °C, so
// the cold limit converts scales.
func temperatureLimits(tMean, rn, g, ra float64) (tc, th float64) {
	tc = tMean + KelvinOffset - ssebopColdOffset
	th = tc + (rn-g)*ra/(RhoAir*CpAir)
	return tc, th
}

// ComputeET implements Model.
func (m *SSEBop) ComputeET(ds *Dataset) (map[string]*sparse.DenseArray, error) {
	if err := ds.CheckFields(m.Name(), m.RequiredFields()...); err != nil {
		return nil, err
	}
	eto, err := FAO56PenmanMonteith(ds)
	if err != nil {
		return nil, err
	}
	rn := ds.field("Rn")
	g := ds.field("G")
	lst := ds.field("LST")
	tMean := ds.field("T_mean")
	ra := ds.fieldDefault("ra", ssebopDefaultRa)

	aet := sparse.ZerosDense(ds.Shape()...)
	for i := range aet.Elements {
		tc, th := temperatureLimits(tMean.Elements[i], rn.Elements[i],
			g.Elements[i], ra.Elements[i])
		etf := clipFraction((th - lst.Elements[i]) / math.Max(th-tc, 1e-6))
		aet.Elements[i] = math.Max(etf*eto.Elements[i], 0)
	}
	return map[string]*sparse.DenseArray{AET: aet}, nil
}
