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

	"github.com/ctessum/unit"
)

// wattsPerMeter2 is the dimension set of an energy flux density
// [kg s-3].
var wattsPerMeter2 = unit.Dimensions{unit.MassDim: 1, unit.TimeDim: -3}

// kiloPascal is the dimension set of pressure [kg m-1 s-2].
var kiloPascal = unit.Dimensions{unit.MassDim: 1, unit.LengthDim: -1, unit.TimeDim: -2}

// mmPerDay is the dimension set of an evapotranspiration depth rate
// [m s-1].
var mmPerDay = unit.Dimensions{unit.LengthDim: 1, unit.TimeDim: -1}

// fieldInfo fixes the unit of every recognized forcing and output field.
// There is no unit auto-detection: callers must supply each field in the
// unit listed here.
var fieldInfo = map[string]struct {
	units string
	dims  unit.Dimensions
}{
	"T_mean":            {"°C", unit.Kelvin},
	"T_max":             {"°C", unit.Kelvin},
	"T_min":             {"°C", unit.Kelvin},
	"Rn":                {"W m-2", wattsPerMeter2},
	"G":                 {"W m-2", wattsPerMeter2},
	"RH":                {"%", unit.Dimless},
	"RH_min":            {"%", unit.Dimless},
	"VPD":               {"kPa", kiloPascal},
	"u2":                {"m s-1", unit.MeterPerSecond},
	"LAI":               {"-", unit.Dimless},
	"fAPAR":             {"-", unit.Dimless},
	"fIPAR":             {"-", unit.Dimless},
	"LST":               {"K", unit.Kelvin},
	"soil_moisture":     {"m3 m-3", unit.Dimless},
	"soil_moisture_max": {"m3 m-3", unit.Dimless},
	"CO2":               {"ppm", unit.Dimless},
	"ra":                {"s m-1", unit.Dimensions{unit.TimeDim: 1, unit.LengthDim: -1}},
	"latitude":          {"°", unit.Dimless},
	"day_of_year":       {"-", unit.Dimless},
	AET:                 {"mm day-1", mmPerDay},
	Transpiration:       {"mm day-1", mmPerDay},
	SoilEvaporation:     {"mm day-1", mmPerDay},
	Interception:        {"mm day-1", mmPerDay},
}

// Units returns the fixed unit string of the given forcing or output
// field, or an error if the field name is not recognized.
func Units(field string) (string, error) {
	info, ok := fieldInfo[field]
	if !ok {
		return "", fmt.Errorf("etmodel: unknown field %s", field)
	}
	return info.units, nil
}

// UnitDimensions returns the dimension set of the given field, for
// callers that track quantities with the unit package.
func UnitDimensions(field string) (unit.Dimensions, error) {
	info, ok := fieldInfo[field]
	if !ok {
		return nil, fmt.Errorf("etmodel: unknown field %s", field)
	}
	return info.dims, nil
}
