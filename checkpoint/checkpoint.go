// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package checkpoint implements the group/dataset-shaped persistence
// boundary of §4.I: the grid vector, per-timestep sparse concentration
// groups, surface/bulk counters, and the network's composition list,
// on top of the same gosl/utl.Encoder/Decoder pair every ele.Element in
// the teacher's codebase uses for its own internal-variable
// round-trip.
package checkpoint

import (
	"path/filepath"

	"github.com/cpmech/gopsi/cluster"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// ConcEntry is one sparse (id, value) pair within a grid point's
// concentration group (§4.I "sparse (id,value) pairs per grid point").
type ConcEntry struct {
	ID    int
	Value float64
}

// Counters is the surface/bulk scalar state a timestep group records
// alongside its concentration data (§4.I).
type Counters struct {
	NInterstitial  float64
	PreviousIFlux  float64
	NHelium        float64
	PreviousHeFlux float64
	NDeuterium     float64
	PreviousDFlux  float64
	NTritium       float64
	PreviousTFlux  float64
	SurfacePos     int
}

// TimestepGroup is one persisted timestep: sparse concentrations
// keyed by grid point, the scalar counters, and timing metadata (§4.I
// "the timestep group also records wall time, previous wall time, and
// chosen dt").
type TimestepGroup struct {
	Step             int
	Time             float64
	Dt               float64
	WallTime         float64
	PreviousWallTime float64
	Counters         Counters
	Concentrations   [][]ConcEntry // Concentrations[xi] = sparse nonzero entries at grid point xi
}

// Store is a directory of gob-encoded checkpoint files, one per
// timestep plus one holding the grid and network composition (§4.I).
// File names carry the step number only, not the process rank, so
// restricting writes to one process (WriteHeader to rank 0, "only rank
// 0 writes scalar headers") is the caller's responsibility.
type Store struct {
	Dir string
}

// NewStore ensures dirout exists and returns a Store rooted there,
// mirroring gosl/io's directory-creation helpers used throughout the
// teacher's output-writing code.
func NewStore(dirout string) (*Store, error) {
	if err := io.MkdirAll(dirout); err != nil {
		return nil, chk.Err("checkpoint: cannot create output directory %q: %v", dirout, err)
	}
	return &Store{Dir: dirout}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.Dir, name)
}

// WriteHeader persists the grid vector and the network's composition
// list, called once by rank 0 at the start of a run.
func (s *Store) WriteHeader(x []float64, cat *cluster.Catalogue) error {
	enc, err := utl.NewEncoder("gob", s.path("header.gob"))
	if err != nil {
		return chk.Err("checkpoint: cannot open header file: %v", err)
	}
	if err := enc.Encode(&x); err != nil {
		return chk.Err("checkpoint: cannot write grid: %v", err)
	}
	return cat.Encode(enc)
}

// ReadHeader reads back the grid vector and verifies it against cat's
// composition list, reporting whether the network topology matches.
func (s *Store) ReadHeader(cat *cluster.Catalogue) (x []float64, matches bool, err error) {
	dec, err := utl.NewDecoder("gob", s.path("header.gob"))
	if err != nil {
		return nil, false, chk.Err("checkpoint: cannot open header file: %v", err)
	}
	if err := dec.Decode(&x); err != nil {
		return nil, false, chk.Err("checkpoint: cannot read grid: %v", err)
	}
	matches, err = cat.Decode(dec)
	return x, matches, err
}

// timestepName is the per-step file name, zero-padded so directory
// listings sort in step order.
func timestepName(step int) string {
	return io.Sf("timestep-%08d.gob", step)
}
