// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package assembly

// FillPattern is the pair of block-sparse coverage matrices §4.G
// requires: ofill from the spatial operators (diagonal-only, one
// species coupling only to itself in the neighboring grid point) and
// dfill from the reaction graph and trap-mutation (general
// species-to-species coupling within one grid point). Every nonzero
// entry AssembleJacobian ever emits is covered by ofill ∪ dfill.
type FillPattern struct {
	Ofill [][]bool // [id][id], true where diffusion/advection couples id to itself
	Dfill [][]bool // [id][id], true where a reaction or trap-mutation event couples row to col
}

// BuildFillPattern constructs the domain's fill pattern once, at
// construction time (§4.G "createSolverContext"): ofill from
// InitializeOffDiagonal on the spatial operators, dfill from the
// reaction graph's per-cluster connectivity rows plus every
// trap-mutation firing's (He,He)/(HeV,He)/(I,He) triple.
func (d *Domain) BuildFillPattern() *FillPattern {
	n := d.NSpecies
	ofill := make([][]bool, n)
	dfill := make([][]bool, n)
	for i := range ofill {
		ofill[i] = make([]bool, n)
		dfill[i] = make([]bool, n)
	}

	d.Diff.InitializeOffDiagonal(ofill)
	if d.Adv != nil {
		d.Adv.InitializeOffDiagonal(ofill)
	}

	for id := 0; id < n; id++ {
		dfill[id][id] = true // identity row, covers a reservoir/boundary grid point at any xi
		for _, col := range d.Net.Graph.Connectivity(id) {
			dfill[id][col] = true
		}
	}
	if d.Trap != nil {
		for xi := 0; xi < d.Mx(); xi++ {
			for _, p := range d.Trap.ComputePartialsForTrapMutation(xi, d.SurfacePos) {
				dfill[p.Row][p.Col] = true
			}
		}
	}

	return &FillPattern{Ofill: ofill, Dfill: dfill}
}

// NNZPerPoint counts the true entries in ofill ∪ dfill, the number of
// Jacobian nonzeros contributed by one grid point's diagonal block
// plus its two spatial neighbor couplings.
func (p *FillPattern) NNZPerPoint() (diagonal, spatial int) {
	for i := range p.Dfill {
		for j := range p.Dfill[i] {
			if p.Dfill[i][j] {
				diagonal++
			}
			if p.Ofill[i][j] {
				spatial++
			}
		}
	}
	return
}
