// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cluster

// Kind distinguishes a regular (single-composition) cluster from a
// super cluster grouping a rectangular bundle of compositions.
type Kind int

const (
	Regular Kind = iota
	Super
)

func (k Kind) String() string {
	if k == Super {
		return "super"
	}
	return "regular"
}

// Cluster is the tagged union of §3/§9: a regular cluster carries a
// single Composition; a super cluster carries per-axis Bounds and one
// moment id per grouped axis. Polymorphism is limited to flux and
// partial-derivative evaluation, both dispatched by the reaction graph
// on Kind, never by an interface method set on Cluster itself.
type Cluster struct {
	ID int // dense id in [0, N), assigned at construction, stable thereafter

	Kind        Kind
	Composition Composition // valid when Kind == Regular

	ReactionRadius  float64 // Å
	FormationEnergy float64 // eV
	D0              float64 // diffusion pre-exponential factor
	MigrationEnergy float64 // eV, zero for immobile clusters (D0 is then also zero)

	// BindingEnergies maps a leaving species to the binding energy (eV)
	// of the one-step dissociation product losing that species.
	BindingEnergies map[Species]float64

	// DiffusionCoefficient is cached per grid point; temperature may
	// vary spatially, so this is a slice rather than a scalar.
	DiffusionCoefficient []float64

	// Connectivity is the sorted, immutable set of cluster ids whose
	// concentration influences this cluster's flux: the union of all
	// reaction partners plus the moments of any enclosing super
	// cluster. Computed once at network construction.
	Connectivity []int

	// Super-only fields.
	AxisSpecies   []Species        // one entry per grouped axis
	AxisBounds    map[Species]Bounds
	NTot          int // number of regular clusters enclosed
	SectionWidths map[Species]int
	MomentIDs     []int // one first-moment id per axis, parallel to AxisSpecies; l0's own id is MomentZeroID, not MomentIDs[0]
	MomentZeroID  int   // id carrying l0 (the total concentration)
}

// IsSuper reports whether c is a super cluster.
func (c *Cluster) IsSuper() bool { return c.Kind == Super }

// DegreesOfFreedom returns how many dense ids c occupies: 1 for a
// regular cluster, 1+len(AxisSpecies) for a super cluster (l0 plus one
// moment per grouped axis).
func (c *Cluster) DegreesOfFreedom() int {
	if c.Kind == Regular {
		return 1
	}
	return 1 + len(c.AxisSpecies)
}

// IDs returns every dense id occupied by c, in the fixed order
// [MomentZeroID, moment ids...].
func (c *Cluster) IDs() []int {
	if c.Kind == Regular {
		return []int{c.ID}
	}
	ids := make([]int, 0, c.DegreesOfFreedom())
	ids = append(ids, c.MomentZeroID)
	ids = append(ids, c.MomentIDs...)
	return ids
}

// IsIn reports whether composition comp lies within c's bounding box.
// O(1) given the enclosing super and its bounds (§4.A).
func (c *Cluster) IsIn(comp Composition) bool {
	if c.Kind != Super {
		return false
	}
	for _, s := range c.AxisSpecies {
		b := c.AxisBounds[s]
		if !b.Contains(comp.Count(s)) {
			return false
		}
	}
	return true
}

// axisIndex returns the position of s within c.AxisSpecies, or -1.
func (c *Cluster) axisIndex(s Species) int {
	for i, a := range c.AxisSpecies {
		if a == s {
			return i
		}
	}
	return -1
}

// DAxis computes d_axis(n) = 2(n-mean)/(width-1), zero if width==1, the
// linear reconstruction coefficient of §4.B for grouped axis s at
// lattice value n. Reports false if s is not one of c's grouped axes.
func (c *Cluster) DAxis(s Species, n int) (float64, bool) {
	i := c.axisIndex(s)
	if i < 0 {
		return 0, false
	}
	b := c.AxisBounds[s]
	w := b.Width()
	if w <= 1 {
		return 0, true
	}
	return 2 * (float64(n) - b.Mean()) / float64(w-1), true
}
