// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the JSON-driven configuration and network
// description files that feed the cluster catalogue, reaction network
// and spatial assembly driver, the same "read → unmarshal → validate →
// instantiate" shape as the teacher's inp.ReadMat.
package inp

import (
	"encoding/json"

	"github.com/cpmech/gopsi/cluster"
	"github.com/cpmech/gopsi/reaction"
	"github.com/cpmech/gopsi/transport"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ClusterSpec is one cluster's on-disk description: either a regular
// cluster (Composition set) or a super cluster (AxisSpecies/AxisBounds
// set), mirroring cluster.Cluster's own tagged-union shape (§3, §9).
type ClusterSpec struct {
	ID   int    `json:"id"`
	Kind string `json:"kind"` // "regular" | "super"

	Composition map[string]int `json:"composition,omitempty"`

	ReactionRadius  float64            `json:"reactionRadius"`
	FormationEnergy float64            `json:"formationEnergy"`
	D0              float64            `json:"d0"`
	MigrationEnergy float64            `json:"migrationEnergy"`
	BindingEnergies map[string]float64 `json:"bindingEnergies,omitempty"`

	// Super-only fields.
	AxisSpecies   []string       `json:"axisSpecies,omitempty"`
	AxisBounds    map[string][2]int `json:"axisBounds,omitempty"`
	NTot          int            `json:"nTot,omitempty"`
	SectionWidths map[string]int `json:"sectionWidths,omitempty"`
	MomentIDs     []int          `json:"momentIds,omitempty"`
	MomentZeroID  int            `json:"momentZeroId,omitempty"`
}

// AdvectingSpec names one cluster that drifts toward the surface
// (§4.C): unlike diffusion this is not derivable from a per-cluster
// scalar, so the network file lists it explicitly per
// transport.NewAdvection's own doc comment.
type AdvectingSpec struct {
	TargetSpecies string  `json:"targetSpecies"`
	TargetCount   int     `json:"targetCount"`
	Speed         float64 `json:"speed"`
	Cutoff        float64 `json:"cutoff"`
}

// NetworkFile is the on-disk cluster/species table (§3, §4.B): the
// full cluster list, the per-species combination size limits that
// parameterize reaction.SizeLimitPairer (the network-agnostic fallback
// pairer that pairer.go documents inp.NetworkFile as the caller of),
// and the advecting-cluster list transport.NewAdvection requires.
type NetworkFile struct {
	Clusters   []ClusterSpec   `json:"clusters"`
	MaxSize    map[string]int  `json:"maxSize,omitempty"`
	Advecting  []AdvectingSpec `json:"advecting,omitempty"`
}

// ReadNetworkFile reads and unmarshals a network file, the same
// read-then-unmarshal shape as inp.ReadMat.
func ReadNetworkFile(path string) (*NetworkFile, error) {
	b, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("inp: cannot read network file %q: %v", path, err)
	}
	nf := new(NetworkFile)
	if err := json.Unmarshal(b, nf); err != nil {
		return nil, chk.Err("inp: cannot parse network file %q: %v", path, err)
	}
	return nf, nil
}

// ToClusters converts every ClusterSpec into a *cluster.Cluster,
// resolving species names against cluster.SpeciesByName and failing
// fast (§7 "configuration error") on an unrecognized name.
func (nf *NetworkFile) ToClusters() ([]*cluster.Cluster, error) {
	out := make([]*cluster.Cluster, 0, len(nf.Clusters))
	for _, spec := range nf.Clusters {
		cl, err := spec.toCluster()
		if err != nil {
			return nil, err
		}
		out = append(out, cl)
	}
	return out, nil
}

func (spec *ClusterSpec) toCluster() (*cluster.Cluster, error) {
	cl := &cluster.Cluster{
		ID:              spec.ID,
		ReactionRadius:  spec.ReactionRadius,
		FormationEnergy: spec.FormationEnergy,
		D0:              spec.D0,
		MigrationEnergy: spec.MigrationEnergy,
	}
	if len(spec.BindingEnergies) > 0 {
		cl.BindingEnergies = make(map[cluster.Species]float64, len(spec.BindingEnergies))
		for name, e := range spec.BindingEnergies {
			sp, ok := cluster.SpeciesByName(name)
			if !ok {
				return nil, chk.Err("inp: cluster %d binding energy names unknown species %q", spec.ID, name)
			}
			cl.BindingEnergies[sp] = e
		}
	}

	switch spec.Kind {
	case "", "regular":
		cl.Kind = cluster.Regular
		comp := make(cluster.Composition, len(spec.Composition))
		for name, n := range spec.Composition {
			sp, ok := cluster.SpeciesByName(name)
			if !ok {
				return nil, chk.Err("inp: cluster %d composition names unknown species %q", spec.ID, name)
			}
			comp[sp] = n
		}
		cl.Composition = comp

	case "super":
		cl.Kind = cluster.Super
		cl.NTot = spec.NTot
		cl.MomentIDs = spec.MomentIDs
		cl.MomentZeroID = spec.MomentZeroID
		for _, name := range spec.AxisSpecies {
			sp, ok := cluster.SpeciesByName(name)
			if !ok {
				return nil, chk.Err("inp: super cluster %d axis names unknown species %q", spec.ID, name)
			}
			cl.AxisSpecies = append(cl.AxisSpecies, sp)
		}
		if len(spec.AxisBounds) > 0 {
			cl.AxisBounds = make(map[cluster.Species]cluster.Bounds, len(spec.AxisBounds))
			for name, lohi := range spec.AxisBounds {
				sp, ok := cluster.SpeciesByName(name)
				if !ok {
					return nil, chk.Err("inp: super cluster %d bounds name unknown species %q", spec.ID, name)
				}
				cl.AxisBounds[sp] = cluster.Bounds{Lo: lohi[0], Hi: lohi[1]}
			}
		}
		if len(spec.SectionWidths) > 0 {
			cl.SectionWidths = make(map[cluster.Species]int, len(spec.SectionWidths))
			for name, w := range spec.SectionWidths {
				sp, ok := cluster.SpeciesByName(name)
				if !ok {
					return nil, chk.Err("inp: super cluster %d section width names unknown species %q", spec.ID, name)
				}
				cl.SectionWidths[sp] = w
			}
		}

	default:
		return nil, chk.Err("inp: cluster %d has unrecognized kind %q", spec.ID, spec.Kind)
	}
	return cl, nil
}

// Pairer builds the reaction.SizeLimitPairer this network file
// parameterizes via MaxSize.
func (nf *NetworkFile) Pairer() (*reaction.SizeLimitPairer, error) {
	p := &reaction.SizeLimitPairer{MaxSize: make(map[cluster.Species]int, len(nf.MaxSize))}
	for name, max := range nf.MaxSize {
		sp, ok := cluster.SpeciesByName(name)
		if !ok {
			return nil, chk.Err("inp: maxSize names unknown species %q", name)
		}
		p.MaxSize[sp] = max
	}
	return p, nil
}

// Build converts the file into a live reaction.Network sized for mx
// grid points, exactly the network-construction step spec.md §4.B
// describes as happening once at startup.
func (nf *NetworkFile) Build(mx int) (*reaction.Network, error) {
	clusters, err := nf.ToClusters()
	if err != nil {
		return nil, err
	}
	pairer, err := nf.Pairer()
	if err != nil {
		return nil, err
	}
	return reaction.NewNetwork(clusters, pairer, mx)
}

// BuildAdvection resolves the advecting-cluster list against a live
// catalogue, returning nil when the file names none (advection is
// optional per network, same as trap-mutation).
func (nf *NetworkFile) BuildAdvection(cat *cluster.Catalogue) (*transport.Advection, error) {
	if len(nf.Advecting) == 0 {
		return nil, nil
	}
	clusters := make([]transport.AdvectingCluster, 0, len(nf.Advecting))
	for _, spec := range nf.Advecting {
		sp, ok := cluster.SpeciesByName(spec.TargetSpecies)
		if !ok {
			return nil, chk.Err("inp: advecting cluster names unknown species %q", spec.TargetSpecies)
		}
		target := cat.Get(sp, spec.TargetCount)
		if target == nil {
			return nil, chk.Err("inp: advecting cluster %s%d is not in the network", spec.TargetSpecies, spec.TargetCount)
		}
		clusters = append(clusters, transport.AdvectingCluster{ID: target.ID, Speed: spec.Speed, Cutoff: spec.Cutoff})
	}
	return transport.NewAdvection(clusters), nil
}
