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

// Reference evapotranspiration formulations. These are standalone
// helpers: SSEBop consumes FAO56PenmanMonteith internally, and both are
// usable independently of any model.

// FAO56PenmanMonteith returns the FAO-56 Penman-Monteith reference
// evapotranspiration [mm day-1] (Allen et al. 1998, Eq. 6). Required
// fields: T_mean, T_max, T_min, Rn, G, u2, RH. The 0.408 factor
// converts radiation to equivalent evaporation, so Rn and G follow the
// FAO-56 convention of MJ m-2 day-1 here. The saturation vapor pressure
// is the mean of the values at the daily extremes, per FAO-56.
func FAO56PenmanMonteith(ds *Dataset) (*sparse.DenseArray, error) {
	err := ds.CheckFields("FAO56PenmanMonteith",
		"T_mean", "T_max", "T_min", "Rn", "G", "u2", "RH")
	if err != nil {
		return nil, err
	}
	tMean := ds.field("T_mean")
	tMax := ds.field("T_max")
	tMin := ds.field("T_min")
	rn := ds.field("Rn")
	g := ds.field("G")
	u2 := ds.field("u2")
	rh := ds.field("RH")

	eto := sparse.ZerosDense(ds.Shape()...)
	for i := range eto.Elements {
		delta := slopeSVP(tMean.Elements[i])
		es := (svp(tMax.Elements[i]) + svp(tMin.Elements[i])) / 2
		ea := es * clamp(rh.Elements[i], 0, 100) / 100
		vpd := es - ea

		wind := u2.Elements[i]
		num := 0.408*delta*(rn.Elements[i]-g.Elements[i]) +
			Gamma*(900.0/(tMean.Elements[i]+273.0))*wind*vpd
		eto.Elements[i] = num / (delta + Gamma*(1.0+0.34*wind))
	}
	return eto, nil
}

// Hargreaves returns reference evapotranspiration [mm day-1] from the
// Hargreaves equation, using only the daily temperature range and solar
// geometry. Required fields: T_max, T_min, T_mean, latitude,
// day_of_year.
func Hargreaves(ds *Dataset) (*sparse.DenseArray, error) {
	err := ds.CheckFields("Hargreaves",
		"T_max", "T_min", "T_mean", "latitude", "day_of_year")
	if err != nil {
		return nil, err
	}
	tMax := ds.field("T_max")
	tMin := ds.field("T_min")
	tMean := ds.field("T_mean")
	lat := ds.field("latitude")
	doy := ds.field("day_of_year")

	eto := sparse.ZerosDense(ds.Shape()...)
	for i := range eto.Elements {
		ra := extraterrestrialRadiation(lat.Elements[i], doy.Elements[i])
		tRange := math.Max(tMax.Elements[i]-tMin.Elements[i], 0)
		eto.Elements[i] = 0.0023 * ra * math.Sqrt(tRange) * (tMean.Elements[i] + 17.8)
	}
	return eto, nil
}

// extraterrestrialRadiation is the daily top-of-atmosphere solar
// radiation [MJ m-2 day-1] at the given latitude [°] and day of year
// (FAO-56 Eq. 21).
func extraterrestrialRadiation(latitude, dayOfYear float64) float64 {
	latRad := latitude * math.Pi / 180
	decl := 0.409 * math.Sin(2*math.Pi*dayOfYear/365-1.39)
	dr := 1.0 + 0.033*math.Cos(2*math.Pi*dayOfYear/365)
	// Clamp the sunset hour angle argument for polar day and night.
	ws := math.Acos(clamp(-math.Tan(latRad)*math.Tan(decl), -1, 1))
	return (24 * 60 / math.Pi) * SolarConstant * dr *
		(ws*math.Sin(latRad)*math.Sin(decl) +
			math.Cos(latRad)*math.Cos(decl)*math.Sin(ws))
}
