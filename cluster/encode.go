// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cluster

import "github.com/cpmech/gosl/utl"

// snapshot is the wire representation of a Cluster, encoded/decoded via
// gosl/utl the way every ele.Element in the teacher persists its
// internal state (Encode/Decode pair, §4.I / §6).
type snapshot struct {
	ID              int
	Kind            Kind
	Composition     map[int]int
	ReactionRadius  float64
	FormationEnergy float64
	BindingEnergies map[int]float64
	AxisSpecies     []int
	AxisBoundsLo    []int
	AxisBoundsHi    []int
	NTot            int
	MomentIDs       []int
	MomentZeroID    int
}

func toSnapshot(c *Cluster) snapshot {
	s := snapshot{
		ID:              c.ID,
		Kind:            c.Kind,
		ReactionRadius:  c.ReactionRadius,
		FormationEnergy: c.FormationEnergy,
		NTot:            c.NTot,
		MomentIDs:       append([]int(nil), c.MomentIDs...),
		MomentZeroID:    c.MomentZeroID,
	}
	if c.Composition != nil {
		s.Composition = make(map[int]int, len(c.Composition))
		for sp, n := range c.Composition {
			s.Composition[int(sp)] = n
		}
	}
	if c.BindingEnergies != nil {
		s.BindingEnergies = make(map[int]float64, len(c.BindingEnergies))
		for sp, e := range c.BindingEnergies {
			s.BindingEnergies[int(sp)] = e
		}
	}
	for _, sp := range c.AxisSpecies {
		s.AxisSpecies = append(s.AxisSpecies, int(sp))
		b := c.AxisBounds[sp]
		s.AxisBoundsLo = append(s.AxisBoundsLo, b.Lo)
		s.AxisBoundsHi = append(s.AxisBoundsHi, b.Hi)
	}
	return s
}

// Encode writes the catalogue's composition list, the shape checkpoint
// round-trips reload to verify a stored network matches the running
// one (§6, §8 round-trip property).
func (c *Catalogue) Encode(enc utl.Encoder) (err error) {
	all := c.GetAll()
	snaps := make([]snapshot, len(all))
	for i, cl := range all {
		snaps[i] = toSnapshot(cl)
	}
	return enc.Encode(&snaps)
}

// Decode reads back the composition list written by Encode and reports
// whether it matches this catalogue's current topology, cluster by
// cluster: id, kind, enclosed count and composition are compared; the
// energies, radii, bounds and moment ids are not.
func (c *Catalogue) Decode(dec utl.Decoder) (matches bool, err error) {
	var snaps []snapshot
	if err = dec.Decode(&snaps); err != nil {
		return false, err
	}
	all := c.GetAll()
	if len(snaps) != len(all) {
		return false, nil
	}
	for i, cl := range all {
		want := toSnapshot(cl)
		got := snaps[i]
		if got.ID != want.ID || got.Kind != want.Kind || got.NTot != want.NTot {
			return false, nil
		}
		if len(got.Composition) != len(want.Composition) {
			return false, nil
		}
		for sp, n := range want.Composition {
			if got.Composition[sp] != n {
				return false, nil
			}
		}
	}
	return true, nil
}
