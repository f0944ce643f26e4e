// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package material

func init() {
	allocators["Fe"] = func() Model {
		return &table{
			ea: 0.150,
			buckets: []map[int]int{
				{1: 1},
				{1: 1, 2: 1},
				{2: 2, 3: 2},
			},
		}
	}
	allocators["UO2"] = func() Model {
		return &table{
			ea: 0.300,
			buckets: []map[int]int{
				{1: 1, 2: 2},
				{2: 2, 3: 3},
			},
		}
	}
}
