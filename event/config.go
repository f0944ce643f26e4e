// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package event

// Config holds every material/model constant the controller's pure
// functions need but that never mutates during a run (§4.H).
type Config struct {
	RhoMaterial float64 // reference interstitial density used by the surface threshold
	VInit       float64 // initial vacancy density subtracted from RhoMaterial

	LatticeConstant float64 // a_lat, used by the bubble-radius formula
	FluxAmplitude   float64 // incident flux amplitude, feeds the bursting prefactor
	Tau             float64 // configured depth scale for the bursting probability falloff

	SputteringYield float64 // fraction of incident flux sputtered away, subtracted from nInterstitial each step
}

// Threshold is the density threshold (rho_material - v_init)*dx driving
// surface advance; retreat fires at -Threshold/10, the literal
// factor-10 asymmetry §9's Open Question preserves without
// rationalizing.
func (c Config) Threshold(dx float64) float64 {
	return (c.RhoMaterial - c.VInit) * dx
}
