// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reaction

import "github.com/cpmech/gopsi/cluster"

// SizeLimitPairer is the default Pairer: two clusters combine iff the
// summed composition does not exceed a per-species maximum. It is
// deliberately simple and is the only Pairer in this module:
// inp.NetworkFile.Pairer builds one from the network file's maxSize
// table, and tests use it directly. It applies no combination rule
// beyond those size caps (no He/V ratio caps, for example).
type SizeLimitPairer struct {
	MaxSize map[cluster.Species]int
}

// Combine implements Pairer.
func (p *SizeLimitPairer) Combine(a, b cluster.Composition) (cluster.Composition, bool) {
	sum := make(cluster.Composition, len(a)+len(b))
	for s, n := range a {
		sum[s] += n
	}
	for s, n := range b {
		sum[s] += n
	}
	for s, n := range sum {
		if max, ok := p.MaxSize[s]; ok && n > max {
			return nil, false
		}
	}
	return sum, true
}
