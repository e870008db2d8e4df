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

// svp is the Tetens formula for saturation vapor pressure [kPa] at air
// temperature t [°C].
func svp(t float64) float64 {
	return 0.6108 * math.Exp(17.27*t/(t+237.3))
}

// slopeSVP is the analytic derivative of svp with respect to
// temperature [kPa K-1].
func slopeSVP(t float64) float64 {
	return 4098 * svp(t) / ((t + 237.3) * (t + 237.3))
}

// SaturationVaporPressure returns the saturation vapor pressure [kPa]
// for each element of the air temperature field t [°C], using the Tetens
// formula.
func SaturationVaporPressure(t *sparse.DenseArray) *sparse.DenseArray {
	return apply(t, svp)
}

// SlopeSVP returns the slope of the saturation vapor pressure curve
// [kPa K-1] for each element of the air temperature field t [°C].
func SlopeSVP(t *sparse.DenseArray) *sparse.DenseArray {
	return apply(t, slopeSVP)
}

// VPDFromRH returns the vapor pressure deficit [kPa] from air
// temperature t [°C] and relative humidity rh [%]. Relative humidity is
// clamped to [0, 100] before use, so the result is es(t) at rh=0 and
// zero at rh=100.
func VPDFromRH(t, rh *sparse.DenseArray) *sparse.DenseArray {
	return apply2(t, rh, func(tv, rhv float64) float64 {
		rhv = clamp(rhv, 0, 100)
		es := svp(tv)
		return es * (1 - rhv/100)
	})
}

// apply returns a new array with f applied to every element of a.
func apply(a *sparse.DenseArray, f func(float64) float64) *sparse.DenseArray {
	out := sparse.ZerosDense(a.Shape...)
	for i, v := range a.Elements {
		out.Elements[i] = f(v)
	}
	return out
}

// apply2 returns a new array with f applied elementwise to a and b,
// which must share a shape.
func apply2(a, b *sparse.DenseArray, f func(av, bv float64) float64) *sparse.DenseArray {
	out := sparse.ZerosDense(a.Shape...)
	for i, v := range a.Elements {
		out.Elements[i] = f(v, b.Elements[i])
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clipFraction bounds v to the physically valid fraction range [0, 1].
func clipFraction(v float64) float64 { return clamp(v, 0, 1) }
