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
	"sort"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/stat"
)

// SEBAL anchor-pixel selection thresholds: hot pixels are at or above
// the 95th percentile of land surface temperature across the spatial
// extent, cold pixels at or below the 5th.
const (
	sebalHotQuantile  = 0.95
	sebalColdQuantile = 0.05

	// sebalMinPixels is the minimum spatial sample for the anchor
	// percentiles to be meaningful.
	sebalMinPixels = 10
)

// SEBAL computes actual evapotranspiration as the residual of the
// surface energy balance (Bastiaanssen et al. 1998): LE = Rn − G − H.
// Sensible heat H is obtained from a self-calibrating linear fit between
// land surface temperature and near-surface temperature excess, anchored
// by hot pixels (assumed energy-limited, H = Rn − G) and cold pixels
// (assumed water-limited, H ≈ 0). One calibration line is fit per call
// over the entire series and applied pixel-wise to every grid cell.
//
// The calibration requires a genuine spatial extent; on single-point or
// near-point datasets ComputeET returns a SpatialExtentError, which
// callers are expected to catch and skip deliberately.
type SEBAL struct{}

// NewSEBAL builds a SEBAL model. It has no required parameters.
func NewSEBAL() *SEBAL { return &SEBAL{} }

// Name implements Model.
func (m *SEBAL) Name() string { return "SEBAL" }

// Family implements Model.
func (m *SEBAL) Family() Family { return EnergyBalance }

// RequiredFields implements Model.
func (m *SEBAL) RequiredFields() []string {
	return []string{"Rn", "G", "LST", "ra"}
}

// checkExtent verifies the spatial precondition for anchor-pixel
// calibration: at least two spatial dimensions and enough distinct
// pixels for percentile estimation.
func checkExtent(shape []int) error {
	if len(shape) < 2 {
		return &SpatialExtentError{Reason: fmt.Sprintf(
			"need at least 2 spatial dimensions, got shape %v", shape)}
	}
	pixels := shape[len(shape)-1] * shape[len(shape)-2]
	if pixels < sebalMinPixels {
		return &SpatialExtentError{Reason: fmt.Sprintf(
			"need at least %d spatial pixels for percentile calibration, got %d",
			sebalMinPixels, pixels)}
	}
	return nil
}

// anchorLine is the fitted temperature-to-temperature-excess relation
// dT = a·LST + b.
type anchorLine struct {
	a, b float64
}

// calibrate fits the anchor line from the hot and cold pixel
// populations. The fit uses a single pair of anchor statistics for the
// full series rather than one per time step.
func (m *SEBAL) calibrate(rn, g, lst, ra *sparse.DenseArray) (anchorLine, error) {
	sorted := append([]float64{}, lst.Elements...)
	sort.Float64s(sorted)
	hotThreshold := stat.Quantile(sebalHotQuantile, stat.Empirical, sorted, nil)
	coldThreshold := stat.Quantile(sebalColdQuantile, stat.Empirical, sorted, nil)

	var rnHot, gHot, raHot, lstHot, lstCold float64
	var nHot, nCold int
	for i, t := range lst.Elements {
		if t >= hotThreshold {
			rnHot += rn.Elements[i]
			gHot += g.Elements[i]
			raHot += math.Max(ra.Elements[i], 1)
			lstHot += t
			nHot++
		}
		if t <= coldThreshold {
			lstCold += t
			nCold++
		}
	}
	if nHot == 0 || nCold == 0 {
		return anchorLine{}, &SpatialExtentError{Reason: "no anchor pixels found"}
	}
	rnHot /= float64(nHot)
	gHot /= float64(nHot)
	raHot /= float64(nHot)
	lstHot /= float64(nHot)
	lstCold /= float64(nCold)

	// Hot anchors are energy limited (H = Rn − G), cold anchors water
	// limited (H = 0, so dT = 0).
	hHot := rnHot - gHot
	dtHot := hHot * raHot / (RhoAir * CpAir)

	line := anchorLine{}
	line.a = dtHot / (lstHot - lstCold + 1e-6)
	line.b = dtHot - line.a*lstHot
	log.Debugf("SEBAL calibration: a=%g b=%g (hot n=%d LST=%.2f, cold n=%d LST=%.2f)",
		line.a, line.b, nHot, lstHot, nCold, lstCold)
	return line, nil
}

// ComputeET implements Model. The fitted anchor line estimates the
// temperature excess, and from it the sensible heat, at every grid cell,
// not just the anchors; AET follows from the energy balance residual.
func (m *SEBAL) ComputeET(ds *Dataset) (map[string]*sparse.DenseArray, error) {
	if err := ds.CheckFields(m.Name(), m.RequiredFields()...); err != nil {
		return nil, err
	}
	if err := checkExtent(ds.Shape()); err != nil {
		return nil, err
	}
	rn := ds.field("Rn")
	g := ds.field("G")
	lst := ds.field("LST")
	ra := ds.field("ra")

	line, err := m.calibrate(rn, g, lst, ra)
	if err != nil {
		return nil, err
	}

	aet := sparse.ZerosDense(ds.Shape()...)
	for i := range aet.Elements {
		dt := line.a*lst.Elements[i] + line.b
		h := RhoAir * CpAir * dt / math.Max(ra.Elements[i], 1)
		le := rn.Elements[i] - g.Elements[i] - h
		aet.Elements[i] = math.Max(wattsToMM(le), 0)
	}
	return map[string]*sparse.DenseArray{AET: aet}, nil
}
