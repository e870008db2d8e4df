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
	"github.com/ctessum/sparse"
	"github.com/sirupsen/logrus"
)

// log is the package logger. It is silent unless the importing program
// raises the level; the models themselves perform no I/O beyond it.
var log = logrus.New()

func init() {
	log.SetLevel(logrus.WarnLevel)
}

// SetLogger replaces the package logger, for programs that want
// calibration diagnostics routed through their own logging setup.
func SetLogger(l *logrus.Logger) {
	if l != nil {
		log = l
	}
}

// Family identifies the algorithm family a model belongs to. The family
// determines how the latent heat flux is formed, not the interface the
// model presents.
type Family int

const (
	// Resistance models (Penman-Monteith style) compute latent heat
	// through aerodynamic and surface resistance terms.
	Resistance Family = iota
	// Stress models (Priestley-Taylor style) reduce a potential flux by
	// multiplicative 0-1 stress factors.
	Stress
	// EnergyBalance models derive the flux as the residual of the
	// surface energy balance, Rn − G − H.
	EnergyBalance
)

func (f Family) String() string {
	switch f {
	case Resistance:
		return "resistance"
	case Stress:
		return "stress"
	case EnergyBalance:
		return "energy-balance"
	default:
		return "unknown"
	}
}

// AET is the name of the total actual evapotranspiration field returned
// by every model, in mm day-1.
const AET = "AET"

// Names of the component fields returned by partitioning models, all in
// mm day-1.
const (
	Transpiration   = "transpiration"
	SoilEvaporation = "soil_evaporation"
	Interception    = "interception"
)

// Model is an evapotranspiration model. Implementations hold only the
// immutable parameters captured at construction and carry no state
// between calls, so a single instance may be reused across many forcing
// datasets and invoked concurrently on independent datasets.
type Model interface {
	// Name returns the model's short name, e.g. "MOD16".
	Name() string

	// Family returns the algorithm family the model belongs to.
	Family() Family

	// RequiredFields returns the names of the forcing fields the model
	// requires. ComputeET validates their presence before any numeric
	// work; absence is reported as a MissingFieldsError naming every
	// missing field.
	RequiredFields() []string

	// ComputeET returns the actual evapotranspiration for each grid
	// cell as a map with the single key AET, in mm day-1, non-negative.
	ComputeET(ds *Dataset) (map[string]*sparse.DenseArray, error)
}

// Partitioner is implemented by models with a physically defined
// decomposition of the total flux into disjoint components.
type Partitioner interface {
	Model

	// PartitionComponents returns named flux components, in mm day-1,
	// that sum to the AET returned by ComputeET for the same dataset.
	PartitionComponents(ds *Dataset) (map[string]*sparse.DenseArray, error)
}

// Partition decomposes m's evapotranspiration flux into components. For
// models with no physical decomposition it returns an
// UnsupportedPartitionError rather than an empty or fabricated result.
func Partition(m Model, ds *Dataset) (map[string]*sparse.DenseArray, error) {
	p, ok := m.(Partitioner)
	if !ok {
		return nil, &UnsupportedPartitionError{Model: m.Name()}
	}
	return p.PartitionComponents(ds)
}
