// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package event

import (
	"math"

	"github.com/cpmech/gopsi/cluster"
	"github.com/cpmech/gosl/rnd"
)

// BubbleRadius estimates the nascent-bubble radius at a grid point
// with total helium density heDensity and grid spacing dx (§4.H):
//
//	n_V = heDensity*dx/4
//	r   = (√3/4)*aLat + ∛(3*aLat³*n_V/(8π)) - ∛(3*aLat³/(8π))
func BubbleRadius(cfg Config, heDensity, dx float64) float64 {
	nV := heDensity * dx / 4
	a3 := cfg.LatticeConstant * cfg.LatticeConstant * cfg.LatticeConstant
	return math.Sqrt(3)/4*cfg.LatticeConstant +
		math.Cbrt(3*a3*nV/(8*math.Pi)) -
		math.Cbrt(3*a3/(8*math.Pi))
}

// BurstProbability is the probabilistic-burst likelihood of §4.H when
// the bubble radius r has not yet reached the surface distance d:
//
//	prefactor * (1 - (d-r)/d) * min(1, exp(-(d-tau)/(2*tau)))
//
// prefactor = fluxAmplitude * dt * 0.1.
func BurstProbability(cfg Config, d, r, dt float64) float64 {
	if d <= 0 {
		return 1
	}
	prefactor := cfg.FluxAmplitude * dt * 0.1
	falloff := math.Exp(-(d - cfg.Tau) / (2 * cfg.Tau))
	if falloff > 1 {
		falloff = 1
	}
	return prefactor * (1 - (d-r)/d) * falloff
}

// ShouldBurst decides whether grid point xi bursts this step: bursts
// deterministically once the bubble has reached the surface (r >= d),
// otherwise draws a uniform variate from gosl/rnd against the
// probabilistic rate above (§4.H).
func ShouldBurst(cfg Config, heDensity, distanceFromSurface, dx, dt float64) bool {
	r := BubbleRadius(cfg, heDensity, dx)
	if r >= distanceFromSurface {
		return true
	}
	p := BurstProbability(cfg, distanceFromSurface, r, dt)
	return rnd.Float64(0, 1) < p
}

// ApplyBurst is the pure post-event mutator of §4.H: at grid point xi,
// zero every He/D/T cluster's concentration, transfer each HeV
// cluster's concentration to its same-size V cluster, and for a super
// cluster enclosing a He/V bundle, transfer its integrated V-axis
// distribution to the corresponding V clusters and zero every moment.
func ApplyBurst(cat *cluster.Catalogue, xi int, conc []float64) {
	base := xi * cat.Size()

	for _, cl := range cat.GetAllOfKind(cluster.Regular) {
		switch {
		case isPureOf(cl, cluster.He), isPureOf(cl, cluster.D), isPureOf(cl, cluster.T):
			conc[base+cl.ID] = 0
		case isHeV(cl):
			v := cl.Composition[cluster.V]
			if target := cat.Get(cluster.V, v); target != nil {
				conc[base+target.ID] += conc[base+cl.ID]
			}
			conc[base+cl.ID] = 0
		}
	}

	for _, super := range cat.GetAllOfKind(cluster.Super) {
		if !hasAxis(super, cluster.He) || !hasAxis(super, cluster.V) {
			continue
		}
		transferSuperVMoment(cat, super, conc, base)
		for _, id := range super.IDs() {
			conc[base+id] = 0
		}
	}
}

func isPureOf(cl *cluster.Cluster, s cluster.Species) bool {
	if len(cl.Composition) != 1 {
		return false
	}
	_, ok := cl.Composition[s]
	return ok
}

func isHeV(cl *cluster.Cluster) bool {
	if len(cl.Composition) != 2 {
		return false
	}
	_, hasHe := cl.Composition[cluster.He]
	_, hasV := cl.Composition[cluster.V]
	return hasHe && hasV
}

func hasAxis(cl *cluster.Cluster, s cluster.Species) bool {
	for _, a := range cl.AxisSpecies {
		if a == s {
			return true
		}
	}
	return false
}

// transferSuperVMoment moves the super cluster's total V content
// (l0 concentration times the mean V count across its bounds) into the
// individual V clusters it would otherwise represent as a distribution
// — an approximation: without a full
// per-lattice-point reconstruction, the mean is the best conservative
// estimate available from moments alone.
func transferSuperVMoment(cat *cluster.Catalogue, super *cluster.Cluster, conc []float64, base int) {
	l0 := conc[base+super.MomentZeroID]
	if l0 == 0 {
		return
	}
	bounds := super.AxisBounds[cluster.V]
	meanV := bounds.Mean()
	vSize := int(math.Round(meanV))
	if target := cat.Get(cluster.V, vSize); target != nil {
		conc[base+target.ID] += l0 * meanV
	}
}
