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

// Physical constants shared by all model formulations. These are treated
// as fixed; none of the models accept overrides for them.
const (
	// Gamma is the psychrometric constant [kPa K-1].
	Gamma = 0.066

	// LambdaVap is the latent heat of vaporization of water [MJ kg-1].
	LambdaVap = 2.45

	// RhoAir is mean air density at sea level [kg m-3].
	RhoAir = 1.225

	// CpAir is the specific heat of air at constant pressure [J kg-1 K-1].
	CpAir = 1004.0

	// StefanBoltzmann is the Stefan-Boltzmann constant [W m-2 K-4].
	StefanBoltzmann = 5.670374419e-8

	// Epsilon is the ratio of the molecular weights of water vapor
	// and dry air [-].
	Epsilon = 0.622

	// SolarConstant is the solar constant [MJ m-2 min-1], as used in
	// FAO-56 extraterrestrial radiation calculations.
	SolarConstant = 0.0820

	// SecondsPerDay converts instantaneous fluxes to daily totals.
	SecondsPerDay = 86400.0

	// KelvinOffset converts between Celsius and Kelvin temperature scales.
	KelvinOffset = 273.15
)

// wattsToMM converts a latent heat flux in W m-2 to an equivalent
// evapotranspiration depth in mm day-1.
func wattsToMM(le float64) float64 {
	return le / LambdaVap * SecondsPerDay / 1.0e6
}
