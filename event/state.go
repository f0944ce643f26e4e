// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package event implements the surface-movement and bubble-bursting
// discrete-event controller of §4.H as a small state machine: a pure
// predicate over (t, state) and a pure mutator over (fired, state),
// per the design note in §9 favoring that shape over coroutine-style
// event handling.
package event

// State is every counter the controller reads and mutates. It carries
// no behavior of its own so Detect/Apply can stay pure functions of
// their arguments (§9 "Event-driven control").
type State struct {
	SurfacePos int // index into the grid marking the material front

	NInterstitial float64
	PreviousIFlux float64

	NHelium        float64
	PreviousHeFlux float64
	NDeuterium     float64
	PreviousDFlux  float64
	NTritium       float64
	PreviousTFlux  float64

	// PendingOffset records how many grid points the outer driver must
	// extrude before resuming, set when the surface would otherwise
	// leave the grid (§4.H "the grid is later re-extruded with
	// setSurfaceOffset(n)").
	PendingOffset int
	// Terminated reports that integration must stop for the outer
	// driver to re-extrude the grid.
	Terminated bool
}
