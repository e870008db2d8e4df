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

// Package etmodel estimates actual evapotranspiration (AET) from gridded
// meteorological forcing data using several competing physical
// formulations, so that formula families can be compared against
// identical inputs.
//
// Six models are provided, grouped into three algorithm families:
//
//   - Penman-Monteith resistance models: MOD16, PMLv2. Latent heat flux
//     is computed through aerodynamic and surface resistance terms.
//   - Priestley-Taylor stress models: PTJPL, GLEAM. A potential flux from
//     the Priestley-Taylor equation (α=1.26) is reduced by multiplicative
//     0-1 stress factors.
//   - Surface energy balance residual models: SEBAL, SSEBop. The flux is
//     the residual Rn − G − H, with sensible heat H obtained from thermal
//     calibration rather than resistance terms.
//
// All models satisfy the Model interface; PMLv2 and PTJPL additionally
// satisfy Partitioner, decomposing the total flux into canopy
// transpiration, soil evaporation, and (for PTJPL) interception.
//
// Forcing fields are carried as *sparse.DenseArray values sharing one
// grid shape; field names and units are fixed (see Units). Model
// instances are immutable after construction and safe for concurrent use
// on independent datasets.
package etmodel
