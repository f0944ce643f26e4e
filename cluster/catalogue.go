// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cluster

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Catalogue is the fixed-topology cluster database: composition ↔ id,
// pure-species lookup, deterministic iteration order, and the mutable
// temperature cache (§3 "Lifecycle"). It is built once by New and never
// gains or loses clusters afterwards; only per-cluster rates and the
// temperature cache mutate in place.
type Catalogue struct {
	clusters        []*Cluster            // index == id, for regular clusters and each super's l0 and moment ids
	byComposition   map[string]*Cluster   // regular clusters, keyed by Composition.key()
	byPureSpecies   map[Species]map[int]*Cluster
	supers          []*Cluster            // all super clusters, for IsIn scans
	lastTemperature float64
	tempSet         bool
}

// New builds a catalogue from a fully-specified cluster list. Ids are
// taken from each cluster: a regular cluster's ID field, and for a super
// cluster the DegreesOfFreedom() ids named by MomentZeroID and MomentIDs.
// Reaction connectivity is left empty; reaction.Build populates it.
func New(clusters []*Cluster) (*Catalogue, error) {
	c := &Catalogue{
		byComposition: make(map[string]*Cluster),
		byPureSpecies: make(map[Species]map[int]*Cluster),
	}
	maxID := -1
	for _, cl := range clusters {
		for _, id := range cl.IDs() {
			if id > maxID {
				maxID = id
			}
		}
	}
	c.clusters = make([]*Cluster, maxID+1)
	for _, cl := range clusters {
		if cl.Kind == Super {
			c.supers = append(c.supers, cl)
			for _, id := range cl.IDs() {
				c.clusters[id] = cl
			}
			continue
		}
		if c.clusters[cl.ID] != nil {
			return nil, chk.Err("cluster catalogue: duplicate id %d", cl.ID)
		}
		c.clusters[cl.ID] = cl
		key := cl.Composition.key()
		if _, exists := c.byComposition[key]; exists {
			return nil, chk.Err("cluster catalogue: duplicate composition %v", cl.Composition)
		}
		c.byComposition[key] = cl
		if len(cl.Composition) == 1 {
			for s, n := range cl.Composition {
				if c.byPureSpecies[s] == nil {
					c.byPureSpecies[s] = make(map[int]*Cluster)
				}
				c.byPureSpecies[s][n] = cl
			}
		}
	}
	for i, cl := range c.clusters {
		if cl == nil {
			return nil, chk.Err("cluster catalogue: id %d has no owner cluster (gap in id space)", i)
		}
	}
	sort.Slice(c.supers, func(i, j int) bool { return c.supers[i].MomentZeroID < c.supers[j].MomentZeroID })
	return c, nil
}

// Size returns N, the total degrees of freedom per grid point.
func (c *Catalogue) Size() int { return len(c.clusters) }

// Get retrieves a pure-species cluster of size n, or nil if absent.
func (c *Catalogue) Get(species Species, n int) *Cluster {
	m := c.byPureSpecies[species]
	if m == nil {
		return nil
	}
	return m[n]
}

// GetByComposition retrieves a regular cluster by its full composition,
// or nil if absent.
func (c *Catalogue) GetByComposition(comp Composition) *Cluster {
	return c.byComposition[comp.key()]
}

// GetAll returns every dense-id owner (regular clusters and super
// cluster l0 entries) in ascending id order.
func (c *Catalogue) GetAll() []*Cluster {
	out := make([]*Cluster, 0, len(c.clusters))
	seen := make(map[*Cluster]bool)
	for _, cl := range c.clusters {
		if cl != nil && !seen[cl] {
			seen[cl] = true
			out = append(out, cl)
		}
	}
	return out
}

// GetAllOfKind filters GetAll by Kind.
func (c *Catalogue) GetAllOfKind(k Kind) []*Cluster {
	var out []*Cluster
	for _, cl := range c.GetAll() {
		if cl.Kind == k {
			out = append(out, cl)
		}
	}
	return out
}

// ByID returns the cluster owning dense id, or nil if id is out of
// range.
func (c *Catalogue) ByID(id int) *Cluster {
	if id < 0 || id >= len(c.clusters) {
		return nil
	}
	return c.clusters[id]
}

// IsIn returns the super cluster enclosing comp, if any. O(1) amortized
// in practice: the number of supers is small and disjoint by
// construction (§3 invariant), so this is a short linear scan over
// non-overlapping bounding boxes rather than a search over all
// clusters.
func (c *Catalogue) IsIn(comp Composition) (*Cluster, bool) {
	for _, s := range c.supers {
		if s.IsIn(comp) {
			return s, true
		}
	}
	return nil, false
}

// LastTemperature returns the temperature this catalogue's rates and
// diffusion coefficients were last computed at.
func (c *Catalogue) LastTemperature() float64 { return c.lastTemperature }

// TemperatureSet reports whether SetTemperature has ever been called.
func (c *Catalogue) TemperatureSet() bool { return c.tempSet }

// NoteTemperature records the temperature this catalogue's caches were
// rebuilt at. Callers (the reaction graph, trap-mutation operator, and
// diffusion operator) are responsible for actually recomputing their
// own cached values; this only updates the bookkeeping the assembler
// consults to decide whether a rebuild is due (§4.F).
func (c *Catalogue) NoteTemperature(T float64) {
	c.lastTemperature = T
	c.tempSet = true
}
