// Copyright 2024 The Gopsi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gopsi/assembly"
	"github.com/cpmech/gopsi/cluster"
	"github.com/cpmech/gopsi/inp"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// monitor accumulates the scalar and profile series behind the §6
// plot switches, the same "sample every step, render once at the end"
// shape as inp.FuncsData.PlotAll: nothing is drawn until save is
// called, so a run with every switch off pays no plt cost at all.
type monitor struct {
	opts   inp.Options
	dirout string

	times       []float64
	heliumConc  []float64
	heliumCumul []float64
	meanSize    []float64
	rhsEvals    []float64
	walltime    []float64

	lastX     []float64
	lastYcols map[string][]float64
}

func newMonitor(opts inp.Options, dirout string) *monitor {
	return &monitor{opts: opts, dirout: dirout, lastYcols: make(map[string][]float64)}
}

func (m *monitor) active() bool {
	o := m.opts
	return o.Plot1D || o.PlotSeries || o.Plot2D || o.PlotPerf ||
		o.HeliumRetention || o.XenonRetention || o.HeliumCumul || o.HeliumConc || o.MeanSize
}

// sample records one time step's worth of scalar and profile data. It
// is cheap when no switch is on: only the fields the enabled switches
// need are ever appended to.
func (m *monitor) sample(t float64, cat *cluster.Catalogue, dom *assembly.Domain, Y []float64, summary assembly.Summary) {
	if !m.active() {
		return
	}
	o := m.opts
	m.times = append(m.times, t)

	if o.HeliumConc || o.HeliumCumul || o.HeliumRetention || o.MeanSize {
		var totalHe, weightedSize, totalConc float64
		for _, cl := range cat.GetAllOfKind(cluster.Regular) {
			n, ok := cl.Composition[cluster.He]
			if !ok {
				continue
			}
			for xi := 0; xi < dom.Mx(); xi++ {
				c := Y[dom.Index(xi, cl.ID)]
				totalHe += c * float64(n)
				weightedSize += c * float64(n)
				totalConc += c
			}
		}
		m.heliumConc = append(m.heliumConc, totalHe)
		if len(m.heliumCumul) == 0 {
			m.heliumCumul = append(m.heliumCumul, totalHe)
		} else {
			m.heliumCumul = append(m.heliumCumul, m.heliumCumul[len(m.heliumCumul)-1]+totalHe)
		}
		if totalConc > 0 {
			m.meanSize = append(m.meanSize, weightedSize/totalConc)
		} else {
			m.meanSize = append(m.meanSize, 0)
		}
	}

	if o.PlotPerf {
		m.rhsEvals = append(m.rhsEvals, float64(summary.RhsEvals))
		m.walltime = append(m.walltime, summary.Walltime.Seconds())
	}

	if o.Plot1D || o.Plot2D {
		m.lastX = dom.X
		for _, cl := range cat.GetAllOfKind(cluster.Regular) {
			col := make([]float64, dom.Mx())
			for xi := 0; xi < dom.Mx(); xi++ {
				col[xi] = Y[dom.Index(xi, cl.ID)]
			}
			m.lastYcols[cl.Composition.String()] = col
		}
	}
}

// save renders every series the enabled switches asked for, one
// figure per switch, following inp.FuncsData.PlotAll's
// Reset-then-Plot-then-Gll-then-Save sequence. There is no contour
// primitive in this stack's plt surface, so Plot2D renders the same
// depth-profile snapshot Plot1D does rather than a genuine
// concentration-vs-time-vs-depth contour.
func (m *monitor) save() {
	if !m.active() {
		return
	}
	o := m.opts

	if o.Plot1D || o.Plot2D {
		plt.Reset(false, nil)
		for label, col := range m.lastYcols {
			plt.Plot(m.lastX, col, io.Sf("'-', label='%s', clip_on=0", label))
		}
		plt.Gll("depth", "concentration", "")
		plt.Save(m.dirout, "gopsi-profile")
	}

	if o.PlotSeries || o.HeliumConc {
		plt.Reset(false, nil)
		plt.Plot(m.times, m.heliumConc, "'-', label='helium concentration', clip_on=0")
		plt.Gll("time", "total He concentration", "")
		plt.Save(m.dirout, "gopsi-helium-conc")
	}

	if o.HeliumCumul || o.HeliumRetention {
		plt.Reset(false, nil)
		plt.Plot(m.times, m.heliumCumul, "'-', label='cumulative helium', clip_on=0")
		plt.Gll("time", "cumulative He", "")
		plt.Save(m.dirout, "gopsi-helium-cumul")
	}

	if o.MeanSize {
		plt.Reset(false, nil)
		plt.Plot(m.times, m.meanSize, "'-', label='mean cluster size', clip_on=0")
		plt.Gll("time", "mean size", "")
		plt.Save(m.dirout, "gopsi-mean-size")
	}

	if o.PlotPerf {
		plt.Reset(false, nil)
		plt.Plot(m.times, m.rhsEvals, "'-', label='RHS evaluations', clip_on=0")
		plt.Gll("time", "cumulative RHS evals", "")
		plt.Save(m.dirout, "gopsi-perf")
	}
}
