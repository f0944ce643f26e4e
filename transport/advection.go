// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transport

// AdvectingCluster is one cluster's advection parameters: a constant
// effective speed at zero depth and the depth cutoff beyond which
// advection switches off (§4.C).
type AdvectingCluster struct {
	ID       int
	Speed    float64 // effective velocity at the surface
	Cutoff   float64 // distance from the surface beyond which advection vanishes
}

// Advection holds the fixed set of advecting clusters.
type Advection struct {
	clusters []AdvectingCluster
}

// NewAdvection builds an Advection operator from an explicit list; the
// caller (inp, from the network description file) decides which
// clusters advect and at what cutoff — unlike diffusion this is not
// derivable from a single per-cluster scalar, since advection models
// bubble/interstitial drift toward the surface, a distinctly
// per-material rule.
func NewAdvection(clusters []AdvectingCluster) *Advection {
	return &Advection{clusters: clusters}
}

// effectiveVelocity applies a linear falloff from Speed at distance 0
// to 0 at distance >= Cutoff (§4.C "contribution vanishes for grid
// points whose distance from the surface exceeds a per-cluster
// cutoff").
func effectiveVelocity(c AdvectingCluster, distance float64) float64 {
	if c.Cutoff <= 0 || distance >= c.Cutoff {
		return 0
	}
	return c.Speed * (1 - distance/c.Cutoff)
}

// ComputeAdvection adds each advecting cluster's two-point upwind
// stencil contribution to out.
func (a *Advection) ComputeAdvection(distance float64, mid, right []float64, out []float64, hR float64) {
	for _, c := range a.clusters {
		v := effectiveVelocity(c, distance)
		if v == 0 {
			continue
		}
		out[c.ID] += -v * (mid[c.ID] - right[c.ID]) / hR
	}
}

// AdvectionPartials is one advecting cluster's two-point Jacobian row:
// coefficients in (middle, right) order.
type AdvectionPartials struct {
	ID             int
	Middle, Right float64
}

// ComputePartialsForAdvection emits, per advecting cluster whose
// effective velocity is nonzero at distance, its stencil coefficients.
func (a *Advection) ComputePartialsForAdvection(distance, hR float64) []AdvectionPartials {
	var out []AdvectionPartials
	for _, c := range a.clusters {
		v := effectiveVelocity(c, distance)
		if v == 0 {
			continue
		}
		out = append(out, AdvectionPartials{
			ID:     c.ID,
			Middle: -v / hR,
			Right:  v / hR,
		})
	}
	return out
}

// InitializeOffDiagonal marks the diagonal entry for every advecting
// cluster, same contract as Diffusion.InitializeOffDiagonal.
func (a *Advection) InitializeOffDiagonal(ofill [][]bool) {
	for _, c := range a.clusters {
		ofill[c.ID][c.ID] = true
	}
}
