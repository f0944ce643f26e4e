// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package checkpoint

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// BuildConcentrations extracts the sparse per-grid-point concentration
// groups from a flat state vector Y (§4.I): only nonzero entries are
// stored, exactly the shape the assembler's Index(xi, id) convention
// implies.
func BuildConcentrations(Y []float64, mx, nSpecies int) [][]ConcEntry {
	out := make([][]ConcEntry, mx)
	for xi := 0; xi < mx; xi++ {
		var row []ConcEntry
		for id := 0; id < nSpecies; id++ {
			v := Y[xi*nSpecies+id]
			if v != 0 {
				row = append(row, ConcEntry{ID: id, Value: v})
			}
		}
		out[xi] = row
	}
	return out
}

// Scatter reverses BuildConcentrations, writing sparse entries back
// into a flat state vector sized mx*nSpecies.
func Scatter(groups [][]ConcEntry, nSpecies int) []float64 {
	mx := len(groups)
	Y := make([]float64, mx*nSpecies)
	for xi, row := range groups {
		for _, e := range row {
			Y[xi*nSpecies+e.ID] = e.Value
		}
	}
	return Y
}

// WriteTimestep persists one TimestepGroup (§4.I).
func (s *Store) WriteTimestep(g TimestepGroup) error {
	enc, err := utl.NewEncoder("gob", s.path(timestepName(g.Step)))
	if err != nil {
		return chk.Err("checkpoint: cannot open timestep %d file: %v", g.Step, err)
	}
	return enc.Encode(&g)
}

// ReadTimestep reads back a previously-written TimestepGroup, used
// both to resume a run and to overwrite the initial concentration from
// a checkpoint (§4.G "initializeConcentration ... optionally overwrites
// from a checkpoint group").
func (s *Store) ReadTimestep(step int) (TimestepGroup, error) {
	var g TimestepGroup
	dec, err := utl.NewDecoder("gob", s.path(timestepName(step)))
	if err != nil {
		return g, chk.Err("checkpoint: cannot open timestep %d file: %v", step, err)
	}
	if err := dec.Decode(&g); err != nil {
		return g, chk.Err("checkpoint: cannot read timestep %d: %v", step, err)
	}
	return g, nil
}
