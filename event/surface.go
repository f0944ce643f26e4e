// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package event

import (
	"github.com/cpmech/gopsi/cluster"
	"github.com/cpmech/gosl/mpi"
)

// InterstitialFlux is the efflux of self-interstitials into the
// surface at the immediate interior grid point (§4.H "computes the
// interstitial efflux into the surface"):
//
//	sum over I clusters of size * D * C * (2 / (hL*(hL+hR))) * hL
func InterstitialFlux(cat *cluster.Catalogue, xi int, conc []float64, hL, hR float64) float64 {
	scale := 2 / (hL * (hL + hR)) * hL
	var total float64
	for _, cl := range cat.GetAllOfKind(cluster.Regular) {
		size, ok := cl.Composition[cluster.I]
		if !ok || len(cl.Composition) != 1 {
			continue
		}
		total += float64(size) * cl.DiffusionAt(xi) * conc[cl.ID] * scale
	}
	return total
}

// SurfaceSwitches is the pair of pure event-predicate values §4.H's
// surface-movement rule reduces to: Advance is <= 0 once nInterstitial
// has crossed the density threshold, Retreat is <= 0 once it has
// dropped below -threshold/10.
type SurfaceSwitches struct {
	Advance float64
	Retreat float64
}

// DetectSurfaceMovement is the pure predicate (t, state) -> switches of
// §9: it does not itself decide anything, callers watch for a
// nonpositive switch to fire the corresponding event.
func DetectSurfaceMovement(st State, cfg Config, dx float64) SurfaceSwitches {
	threshold := cfg.Threshold(dx)
	return SurfaceSwitches{
		Advance: threshold - st.NInterstitial,
		Retreat: st.NInterstitial - (-threshold / 10),
	}
}

// UpdateFluxAndBroadcast recomputes the interstitial efflux at the
// grid point immediately interior to the surface, accumulates it into
// nInterstitial net of sputtering losses, and MPI-broadcasts the pair
// (nInterstitial, previousIFlux) from the owning process (§4.H),
// mirroring the AllReduceSum call fem/../s_implicit.go issues after
// every residual assembly: shared state must be resynchronized across
// ranks before any process makes an event decision from it.
//
// Each step, nInterstitial gains previousIFlux*dt and loses
// sputteringYield*fluxAmplitude*dt, the counter-closure invariant of
// §8.
func UpdateFluxAndBroadcast(st State, cfg Config, cat *cluster.Catalogue, conc []float64, hL, hR, dt float64, isOwner bool) State {
	if isOwner {
		xi := st.SurfacePos + 1
		flux := InterstitialFlux(cat, xi, conc, hL, hR)
		st.NInterstitial += flux*dt - cfg.SputteringYield*cfg.FluxAmplitude*dt
		st.PreviousIFlux = flux
	}
	if mpi.IsOn() {
		buf := []float64{st.NInterstitial, st.PreviousIFlux}
		mpi.BcastFromRoot(buf) // the owning rank's values overwrite every other rank's buf
		st.NInterstitial, st.PreviousIFlux = buf[0], buf[1]
	}
	return st
}

// ApplySurfaceMovement is the pure mutator half of §9's event
// contract: given which switch fired, it advances or retreats the
// surface index one grid point and decrements/increments
// nInterstitial by the threshold that fired, repeating until the
// counter is back under the next threshold (§4.H "the surface is
// advanced one or more grid points until nInterstitial falls below the
// next threshold"). Reaching xi < 0 requests termination instead of
// mutating further, so the outer driver can re-extrude the grid via
// PendingOffset (§4.H "Boundary overrun").
func ApplySurfaceMovement(st State, cfg Config, dx float64, advanceFired, retreatFired bool) State {
	threshold := cfg.Threshold(dx)
	for advanceFired && st.NInterstitial >= threshold {
		st.SurfacePos--
		st.NInterstitial -= threshold
		if st.SurfacePos < 0 {
			st.Terminated = true
			st.PendingOffset++
			st.SurfacePos = 0
			break
		}
	}
	for retreatFired && st.NInterstitial <= -threshold/10 {
		st.SurfacePos++
		st.NInterstitial += threshold / 10
	}
	return st
}
