// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package temperature

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
	"github.com/cpmech/gosl/fun/dbf"
)

func init() {
	allocators["ramped"] = func() Model { return &Ramped{} }
}

// Ramped is spatially uniform but varies in time according to a
// gosl/fun time function (§4.F), e.g. a piecewise-linear ramp built
// the same way inp.FuncsData.Get resolves a named function from its
// {"type","prms"} JSON pair.
type Ramped struct {
	Profile fun.Func
}

// SetProfile builds Profile from a gosl/fun type name ("rmp", "lin",
// ...) and its parameter list, exactly as inp/func.go's FuncsData.Get
// resolves a named function.
func (r *Ramped) SetProfile(kind string, prms dbf.Params) error {
	f, err := fun.New(kind, prms)
	if err != nil {
		return chk.Err("temperature: cannot build ramped profile %q: %v", kind, err)
	}
	r.Profile = f
	return nil
}

func (r *Ramped) T(x, t float64) float64 {
	if r.Profile == nil {
		return 0
	}
	return r.Profile.F(t, nil)
}
