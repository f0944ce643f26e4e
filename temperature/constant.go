// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package temperature

func init() {
	allocators["constant"] = func() Model { return &Constant{Value: 300} }
}

// Constant is a spatially and temporally uniform temperature (§4.F).
type Constant struct {
	Value float64
}

func (c *Constant) T(x, t float64) float64 { return c.Value }
