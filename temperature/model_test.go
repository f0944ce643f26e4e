// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package temperature

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_constant_model(tst *testing.T) {

	chk.PrintTitle("constant_model")

	m, err := New("constant")
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	c := m.(*Constant)
	c.Value = 950
	chk.Float64(tst, "T(x,t)", 1e-15, m.T(0, 0), 950)
	chk.Float64(tst, "T(x,t)", 1e-15, m.T(5, 100), 950)
}

func Test_heat_equation_holds_ends_and_smooths_interior(tst *testing.T) {

	chk.PrintTitle("heat_equation_holds_ends_and_smooths_interior")

	m, err := New("heat-equation")
	if err != nil {
		tst.Fatalf("New failed: %v", err)
	}
	h := m.(*HeatEquation)
	h.Rho, h.Cp, h.K = 1, 1, 1

	x := []float64{0, 1, 2, 3, 4}
	h.SetInitial(x, 300)
	h.field[2] = 900 // a hot spike at the middle node

	before := h.T(2, 0)
	h.Advance(x, 0.01)
	after := h.T(2, 0)

	if !(after < before) {
		tst.Fatalf("expected the spike to relax toward its neighbors, before=%g after=%g", before, after)
	}
	chk.Float64(tst, "left end held fixed", 1e-15, h.T(0, 0), 300)
	chk.Float64(tst, "right end held fixed", 1e-15, h.T(4, 0), 300)
}

func Test_heat_equation_zero_diffusivity_is_stationary(tst *testing.T) {

	chk.PrintTitle("heat_equation_zero_diffusivity_is_stationary")

	h := &HeatEquation{Rho: 1, Cp: 1, K: 0}
	x := []float64{0, 1, 2, 3}
	h.SetInitial(x, 400)
	h.field[1] = 700

	h.Advance(x, 1.0)
	chk.Float64(tst, "unchanged with zero conductivity", 1e-15, h.T(1, 0), 700)
}
