// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package temperature implements the three temperature-model variants
// of §4.F: Constant, Ramped, and HeatEquation, all behind one Model
// interface, registered through the same string-keyed factory idiom
// used by trapmutation/material and the teacher's own mconduct/msolid.
package temperature

import "github.com/cpmech/gosl/chk"

// Model maps (grid position, time) to a local temperature. A diffusive
// model additionally exposes Advance to step its own internal field.
type Model interface {
	T(x, t float64) float64
}

// Diffusive is implemented by temperature models that carry their own
// PDE state (currently only HeatEquation) and must be stepped alongside
// the concentration residual rather than evaluated in closed form.
type Diffusive interface {
	Model
	Advance(x []float64, dt float64)
}

// New instantiates a registered temperature model by name.
func New(name string) (Model, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, chk.Err("temperature model %q is not available", name)
	}
	return alloc(), nil
}

var allocators = map[string]func() Model{}
