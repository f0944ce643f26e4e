// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_clamp_negligible_preserves_sign(tst *testing.T) {

	chk.PrintTitle("clamp_negligible_preserves_sign")

	Y := []float64{1e-40, -1e-40, 5.0, -5.0, 0}
	clampNegligible(Y, 1e-30)
	chk.Float64(tst, "positive underflow clamped", 1e-45, Y[0], 1e-30)
	chk.Float64(tst, "negative underflow clamped", 1e-45, Y[1], -1e-30)
	chk.Float64(tst, "large positive untouched", 1e-15, Y[2], 5.0)
	chk.Float64(tst, "large negative untouched", 1e-15, Y[3], -5.0)
	chk.Float64(tst, "zero clamped up", 1e-45, Y[4], 1e-30)
}

func Test_clamp_negligible_disabled_at_nonpositive_threshold(tst *testing.T) {

	chk.PrintTitle("clamp_negligible_disabled_at_nonpositive_threshold")

	Y := []float64{1e-40, -1e-40}
	clampNegligible(Y, 0)
	if Y[0] != 1e-40 || Y[1] != -1e-40 {
		tst.Fatalf("expected no clamping when threshold is zero, got %v", Y)
	}
}

func Test_grid_spacing_falls_back_at_edges(tst *testing.T) {

	chk.PrintTitle("grid_spacing_falls_back_at_edges")

	x := []float64{0, 1, 3, 6}
	chk.Float64(tst, "interior spacing", 1e-15, gridSpacing(x, 1), 2)
	chk.Float64(tst, "last point falls back to left spacing", 1e-15, gridSpacing(x, 3), 3)
}

func Test_neighbor_spacing_at_boundary_returns_unit(tst *testing.T) {

	chk.PrintTitle("neighbor_spacing_at_boundary_returns_unit")

	x := []float64{0, 1, 3, 6}
	hL, hR := neighborSpacing(x, 0)
	if hL != 1 || hR != 1 {
		tst.Fatalf("expected unit spacing at the boundary, got %g, %g", hL, hR)
	}
	hL, hR = neighborSpacing(x, 2)
	chk.Float64(tst, "interior left spacing", 1e-15, hL, 2)
	chk.Float64(tst, "interior right spacing", 1e-15, hR, 3)
}
