// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reaction

import (
	"sort"

	"github.com/cpmech/gopsi/cluster"
)

// Graph is the cluster catalogue's reaction graph (§4.B): the set of
// pairwise production/dissociation records, current rate constants,
// and per-cluster connectivity rows.
type Graph struct {
	cat *cluster.Catalogue

	reactions []*Reaction

	// byCluster[id] lists every reaction id participates in, in the
	// order Build discovered them; getTotalFlux/getPartialDerivatives
	// iterate this row rather than the full reaction list.
	byCluster [][]*Reaction

	// connectivity[id] is the sorted, deduplicated set of cluster ids
	// whose concentration influences id's flux: every reaction partner
	// plus, for a cluster enclosed by a super, that super's moment ids
	// (§3 invariant, §4.G "dFillMap").
	connectivity [][]int
}

// Pairer decides, for an ordered pair of clusters, whether a pairwise
// production/dissociation reaction exists between them and, if so, the
// composition of the resulting product. It is supplied by inp at
// network-construction time (mirrors mconduct/msolid's allocator-map
// factories being handed concrete per-material behaviour): the graph
// itself only enumerates candidate pairs and asks the Pairer whether
// physics allows the combination.
type Pairer interface {
	// Combine returns the product composition of a+b, and whether the
	// combination is a valid reaction under the current network's
	// composition rules (size limits, allowed species mixtures, etc).
	Combine(a, b cluster.Composition) (product cluster.Composition, ok bool)
}

// Build enumerates every ordered cluster pair via pairer, instantiates
// a Reaction for each valid combination whose product cluster exists
// in cat (or is enclosed by a super cluster), and computes each
// cluster's immutable connectivity row. All reaction validity is
// decided here, once, at construction (§4.B "Failure modes").
func Build(cat *cluster.Catalogue, pairer Pairer) *Graph {
	g := &Graph{
		cat:          cat,
		byCluster:    make([][]*Reaction, cat.Size()),
		connectivity: make([][]int, cat.Size()),
	}
	all := cat.GetAllOfKind(cluster.Regular)
	seen := make(map[[3]int]bool)
	for _, a := range all {
		for _, b := range all {
			if a.ID > b.ID {
				continue // unordered pair, visit once
			}
			product, ok := pairer.Combine(a.Composition, b.Composition)
			if !ok {
				continue
			}
			productCluster := cat.GetByComposition(product)
			var productID int
			var coupling [][][]float64
			if productCluster != nil {
				productID = productCluster.ID
				if productCluster.IsSuper() {
					productID = productCluster.MomentZeroID
					coupling = fillCoupling(productCluster, product)
				}
			} else if super, in := cat.IsIn(product); in {
				productID = super.MomentZeroID
				coupling = fillCoupling(super, product)
			} else {
				continue // product not tracked: silently skipped (§7 "Logic error" policy)
			}
			key := [3]int{a.ID, b.ID, productID}
			if seen[key] {
				continue
			}
			seen[key] = true
			r := &Reaction{A: a.ID, B: b.ID, C: productID, Coupling: coupling}
			g.reactions = append(g.reactions, r)
			g.addRow(a.ID, r)
			if b.ID != a.ID {
				g.addRow(b.ID, r)
			}
			g.addRow(productID, r)
		}
	}
	g.finalizeConnectivity(cat)
	return g
}

func (g *Graph) addRow(id int, r *Reaction) {
	g.byCluster[id] = append(g.byCluster[id], r)
	g.connectivity[id] = appendUnique(g.connectivity[id], r.A, r.B, r.C)
}

func appendUnique(row []int, ids ...int) []int {
	for _, id := range ids {
		found := false
		for _, e := range row {
			if e == id {
				found = true
				break
			}
		}
		if !found {
			row = append(row, id)
		}
	}
	return row
}

// finalizeConnectivity sorts every row and adds an enclosing super
// cluster's moment ids to each of its member's connectivity, so the
// connectivity superset invariant of §3 holds even for members that
// have no direct reaction with the super cluster itself.
func (g *Graph) finalizeConnectivity(cat *cluster.Catalogue) {
	for _, row := range g.connectivity {
		sort.Ints(row)
	}
	for id := 0; id < cat.Size(); id++ {
		cl := cat.ByID(id)
		if cl == nil || cl.Kind != cluster.Regular {
			continue
		}
		if super, in := cat.IsIn(cl.Composition); in {
			row := appendUnique(g.connectivity[id], super.IDs()...)
			sort.Ints(row)
			g.connectivity[id] = row
		}
	}
}

// fillCoupling builds the degree-3 moment-coupling tensor a_{alpha,beta,gamma}
// sized (1+naxes)^3 for a production reaction landing on composition
// product inside super's bounds (§4.B). Build only pairs regular
// clusters, so a reactant's own concentration is always its bare l0
// value; alpha and beta are therefore always 0 here, and the nonzero
// entries are a_{0,0,gamma}: one formation event adds one unit to the
// super's total concentration (gamma=0), and d_axis(n) of the product's
// count along each grouped axis to that axis's moment (gamma=axis+1),
// the linear reconstruction coefficient of DAxis.
func fillCoupling(super *cluster.Cluster, product cluster.Composition) [][][]float64 {
	n := 1 + len(super.AxisSpecies)
	t := make([][][]float64, n)
	for i := range t {
		t[i] = make([][]float64, n)
		for j := range t[i] {
			t[i][j] = make([]float64, n)
		}
	}
	t[0][0][0] = 1
	for gamma, s := range super.AxisSpecies {
		if d, ok := super.DAxis(s, product.Count(s)); ok {
			t[0][0][gamma+1] = d
		}
	}
	return t
}

// Connectivity returns the sorted, immutable set of ids whose
// concentration influences id's flux.
func (g *Graph) Connectivity(id int) []int {
	return g.connectivity[id]
}

// Reactions returns every reaction id participates in (as reactant or
// product).
func (g *Graph) Reactions(id int) []*Reaction {
	return g.byCluster[id]
}
