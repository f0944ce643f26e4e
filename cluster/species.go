// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cluster implements the composition-indexed cluster catalogue:
// the fixed species enumeration, cluster identity (regular or super),
// and the composition-to-id lookup used by the reaction network and
// spatial assembly driver.
package cluster

// Species is one axis of the composition space clusters are built from.
type Species int

// The fixed closed species enumeration.
const (
	He Species = iota
	D
	T
	V
	I
	Xe
	Void
	Faulted
	Frank
	Perfect
	nSpecies
)

var speciesNames = [nSpecies]string{
	He: "He", D: "D", T: "T", V: "V", I: "I", Xe: "Xe",
	Void: "Void", Faulted: "Faulted", Frank: "Frank", Perfect: "Perfect",
}

func (s Species) String() string {
	if s < 0 || int(s) >= len(speciesNames) {
		return "Species(?)"
	}
	return speciesNames[s]
}

// SpeciesByName resolves a species from its network-file name.
func SpeciesByName(name string) (Species, bool) {
	for i, n := range speciesNames {
		if n == name {
			return Species(i), true
		}
	}
	return 0, false
}

// axisSpecies lists the species that may be grouped along a super
// cluster's moment axes: He and V for PSI mixtures, V alone for alloy
// void/faulted/Frank/perfect super clusters.
var axisSpecies = []Species{He, D, T, V, Xe}
