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
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

// BiomeParams holds the biome-specific parameters MOD16 reads from its
// lookup table. Temperatures are °C, vapor pressure deficits kPa,
// conductances m s-1, resistances s m-1.
type BiomeParams struct {
	// TMinOpen is the minimum temperature at which stomata are fully
	// open; below TMinOpen the temperature stress multiplier falls off
	// linearly over TMinRange degrees.
	TMinOpen  float64 `toml:"tmin_open"`
	TMinRange float64 `toml:"tmin_range"`

	// VPDOpen is the vapor pressure deficit below which stomata are
	// unstressed; above it the VPD stress multiplier falls off linearly
	// over VPDRange.
	VPDOpen  float64 `toml:"vpd_open"`
	VPDRange float64 `toml:"vpd_range"`

	// GSMin and GSRange set the stomatal conductance scale:
	// gs = GSMin + GSRange·(temperature stress)·(VPD stress).
	GSMin   float64 `toml:"gs_min"`
	GSRange float64 `toml:"gs_range"`

	// RSoil is the unstressed soil surface resistance; it is divided by
	// the soil moisture stress fraction.
	RSoil float64 `toml:"r_soil"`

	// RWet is the near-zero surface resistance of a wet canopy
	// (relative humidity above 80%).
	RWet float64 `toml:"r_wet"`
}

// valid reports the first structurally invalid parameter, if any.
func (p BiomeParams) valid() error {
	switch {
	case p.TMinRange <= 0:
		return fmt.Errorf("tmin_range must be positive, got %g", p.TMinRange)
	case p.VPDRange <= 0:
		return fmt.Errorf("vpd_range must be positive, got %g", p.VPDRange)
	case p.GSMin <= 0:
		return fmt.Errorf("gs_min must be positive, got %g", p.GSMin)
	case p.GSRange < 0:
		return fmt.Errorf("gs_range must be non-negative, got %g", p.GSRange)
	case p.RSoil <= 0:
		return fmt.Errorf("r_soil must be positive, got %g", p.RSoil)
	case p.RWet <= 0:
		return fmt.Errorf("r_wet must be positive, got %g", p.RWet)
	}
	return nil
}

// BPLUT is a biome parameter lookup table, keyed by land cover class
// (e.g. "ENF", "GRA").
type BPLUT map[string]BiomeParams

// DefaultBPLUT returns a lookup table covering common MODIS land cover
// classes. The "GRA" entry reproduces the reference parameterization;
// other classes shift the stress thresholds per biome.
func DefaultBPLUT() BPLUT {
	base := BiomeParams{
		TMinOpen:  5.0,
		TMinRange: 40.0,
		VPDOpen:   0.5,
		VPDRange:  3.0,
		GSMin:     0.01,
		GSRange:   0.08,
		RSoil:     500.0,
		RWet:      50.0,
	}
	table := BPLUT{}
	for class, adjust := range map[string]func(*BiomeParams){
		"ENF": func(p *BiomeParams) { p.TMinOpen = 8.31; p.VPDOpen = 0.65 },
		"EBF": func(p *BiomeParams) { p.TMinOpen = 9.09; p.VPDOpen = 1.0 },
		"DBF": func(p *BiomeParams) { p.TMinOpen = 7.94; p.VPDOpen = 0.65 },
		"MF":  func(p *BiomeParams) { p.TMinOpen = 8.5; p.VPDOpen = 0.65 },
		"GRA": func(p *BiomeParams) {},
		"CRO": func(p *BiomeParams) { p.VPDOpen = 0.93; p.VPDRange = 3.4 },
		"SHR": func(p *BiomeParams) { p.TMinOpen = 8.61; p.VPDOpen = 0.93 },
	} {
		p := base
		adjust(&p)
		table[class] = p
	}
	return table
}

// LoadBPLUT reads a biome parameter lookup table in TOML format, one
// table per land cover class:
//
//	[GRA]
//	tmin_open = 5.0
//	tmin_range = 40.0
//	vpd_open = 0.5
//	vpd_range = 3.0
//	gs_min = 0.01
//	gs_range = 0.08
//	r_soil = 500.0
//	r_wet = 50.0
func LoadBPLUT(r io.Reader) (BPLUT, error) {
	table := BPLUT{}
	if _, err := toml.NewDecoder(r).Decode(&table); err != nil {
		return nil, fmt.Errorf("etmodel: reading BPLUT: %w", err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("etmodel: BPLUT contains no biome classes")
	}
	for class, p := range table {
		if err := p.valid(); err != nil {
			return nil, fmt.Errorf("etmodel: BPLUT class %s: %w", class, err)
		}
	}
	log.Debugf("loaded BPLUT with %d biome classes", len(table))
	return table, nil
}

// LoadBPLUTFile reads a TOML biome parameter lookup table from the named
// file.
func LoadBPLUTFile(path string) (BPLUT, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("etmodel: opening BPLUT file: %w", err)
	}
	defer f.Close()
	return LoadBPLUT(f)
}
