// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package material implements the per-crystallographic-surface trap-
// mutation rule tables (§4.D). Materials register themselves by name
// through an allocator map, the same factory idiom the teacher's
// mconduct/msolid/mdl/gen packages use for their own model databases.
package material

import "github.com/cpmech/gosl/chk"

// Model is a material's (or crystallographic surface's) trap-mutation
// rule table: for each helium cluster size and each depth bucket, the
// preferred product vacancy count, plus the activation energy driving
// the rate law (§4.D).
type Model interface {
	// NumBuckets is M, the number of grid points beyond the surface
	// that carry a nonzero rule; deeper points never trap-mutate.
	NumBuckets() int

	// ProductVacancyCount looks up v(s, bucket) for helium size s at
	// depth bucket in [0, NumBuckets()). ok is false when this
	// (size, bucket) pair has no rule.
	ProductVacancyCount(heSize, bucket int) (v int, ok bool)

	// ActivationEnergy is E_a (eV) in the rate law k_tm = 4*exp(-Ea/kT)*D_He1.
	ActivationEnergy() float64
}

// New instantiates a registered material model by name.
func New(name string) (Model, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, chk.Err("material %q is not available in trapmutation/material database", name)
	}
	return alloc(), nil
}

// allocators holds every registered material's constructor.
var allocators = map[string]func() Model{}

// table is the shared table-driven Model implementation every concrete
// material below configures with its own literal rule set.
type table struct {
	ea      float64
	buckets []map[int]int // buckets[bucket][heSize] = v
}

func (t *table) NumBuckets() int { return len(t.buckets) }

func (t *table) ProductVacancyCount(heSize, bucket int) (int, bool) {
	if bucket < 0 || bucket >= len(t.buckets) {
		return 0, false
	}
	v, ok := t.buckets[bucket][heSize]
	return v, ok
}

func (t *table) ActivationEnergy() float64 { return t.ea }
