// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package assembly implements the spatial assembly driver of §4.G: a
// 1-D grid of network copies coupled by diffusion and advection,
// assembled into a single residual and block-sparse Jacobian and
// advanced in time by gosl/ode's stiff solver.
package assembly

import (
	"github.com/cpmech/gopsi/cluster"
	"github.com/cpmech/gopsi/flux"
	"github.com/cpmech/gopsi/reaction"
	"github.com/cpmech/gopsi/temperature"
	"github.com/cpmech/gopsi/trapmutation"
	"github.com/cpmech/gopsi/transport"
	"github.com/cpmech/gosl/chk"
)

// Domain bundles everything the residual and Jacobian need to sweep
// one grid: the network shared by every grid point, the spatial
// operators, the depth-indexed source terms, and the temperature
// model driving the network's per-point cache (§3, §4.G).
//
// The teacher's fem.Domain plays the analogous role of "everything one
// assembly pass touches", though gopsi has no finite-element mesh: the
// grid here is the flattened set of concentration unknowns at Nx
// points, each carrying a full copy of Network's species.
type Domain struct {
	X          []float64 // grid point coordinates
	SurfacePos int       // index of the moving free surface

	Net   *reaction.Network
	Diff  *transport.Diffusion
	Adv   *transport.Advection
	Trap  Trapper // nil when the material carries no trap-mutation rule
	Temp  temperature.Model
	Fluxes []*flux.Operator

	NSpecies int // Net.Cat.Size(), cached
	Tol      float64 // temperature-change tolerance passed to Network.SetTemperature
}

// Trapper is the subset of trapmutation.Operator the assembler drives
// (mirrors ele.Element being the narrow interface fem.Domain assembles
// against).
type Trapper interface {
	UpdateRate(xi int, T float64)
	Compute(xi, surfacePos int, conc, out []float64)
	ComputePartialsForTrapMutation(xi, surfacePos int) []trapmutation.Partial
}

// NewDomain builds a domain over grid x, with surface initially at
// surfacePos.
func NewDomain(x []float64, surfacePos int, net *reaction.Network, diff *transport.Diffusion, adv *transport.Advection, temp temperature.Model) (*Domain, error) {
	if len(x) < 2 {
		return nil, chk.Err("assembly: grid must have at least two points, got %d", len(x))
	}
	if surfacePos < 0 || surfacePos >= len(x) {
		return nil, chk.Err("assembly: surfacePos %d out of range [0,%d)", surfacePos, len(x))
	}
	return &Domain{
		X:          x,
		SurfacePos: surfacePos,
		Net:        net,
		Diff:       diff,
		Adv:        adv,
		Temp:       temp,
		NSpecies:   net.Cat.Size(),
		Tol:        1e-9,
	}, nil
}

// Mx returns the number of grid points.
func (d *Domain) Mx() int { return len(d.X) }

// Ndim returns the total number of unknowns: Mx * NSpecies.
func (d *Domain) Ndim() int { return d.Mx() * d.NSpecies }

// Index maps a (grid point, species id) pair to its flat index in the
// state vector Y (§4.G "state layout").
func (d *Domain) Index(xi, id int) int { return xi*d.NSpecies + id }

// InitializeConcentration allocates a zeroed state vector sized to this
// domain and, when the network tracks a monomer vacancy cluster, seeds
// every bulk grid point in [surfacePos+1, Mx-2] with vInit vacancies
// (§4.G "initializeConcentration"). The reservoir (xi <= surfacePos)
// and the right boundary (xi == Mx-1) are left untouched: both are
// identity rows under Residual, so any concentration Residual is
// handed there is simply held fixed rather than evolved.
func (d *Domain) InitializeConcentration(vInit float64) []float64 {
	Y := make([]float64, d.Ndim())
	if vInit == 0 {
		return Y
	}
	v1 := d.Net.Cat.Get(cluster.V, 1)
	if v1 == nil {
		return Y
	}
	for xi := d.SurfacePos + 1; xi <= d.Mx()-2; xi++ {
		Y[d.Index(xi, v1.ID)] = vInit
	}
	return Y
}

// distanceFromSurface returns the unsigned distance of grid point xi
// from the current surface position, in the same units as X.
func (d *Domain) distanceFromSurface(xi int) float64 {
	dist := d.X[xi] - d.X[d.SurfacePos]
	if dist < 0 {
		return -dist
	}
	return dist
}
