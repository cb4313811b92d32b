// Copyright (c) 2026, The NetPyne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortex

import (
	"github.com/jingxlim/netpyne/labels"
)

// YfracFunc is a class-pair connectivity function of the presynaptic
// and postsynaptic normalized cortical depths.
type YfracFunc func(preYfrac, postYfrac float32) float32

// zeroYfrac is the default for unset class-pair table entries: no
// connections ever form for that pair, which is modeling policy, not an
// error.
func zeroYfrac(x, y float32) float32 { return 0 }

func constYfrac(v float32) YfracFunc {
	return func(x, y float32) float32 { return v }
}

// ConnTables holds the dense class-pair connectivity tables: a
// probability function per (pre top class, post top class) pair, and a
// weight function per (pre top class, post top class, receptor) triple.
// Unset entries default to the zero function, so lookups never branch.
type ConnTables struct {
	Prob [labels.TopClassN][labels.TopClassN]YfracFunc
	Wt   [labels.TopClassN][labels.TopClassN][labels.ReceptorsN]YfracFunc
}

// NewConnTables returns empty tables (every entry the zero function).
func NewConnTables() *ConnTables {
	return &ConnTables{}
}

// ProbFunc returns the probability function for the given class pair,
// never nil.
func (ct *ConnTables) ProbFunc(pre, post labels.TopClass) YfracFunc {
	if f := ct.Prob[pre][post]; f != nil {
		return f
	}
	return zeroYfrac
}

// WtFunc returns the weight function for the given class pair and
// receptor, never nil.
func (ct *ConnTables) WtFunc(pre, post labels.TopClass, rcpt labels.Receptors) YfracFunc {
	if f := ct.Wt[pre][post][rcpt]; f != nil {
		return f
	}
	return zeroYfrac
}

// SetProb sets the probability function for a class pair.
func (ct *ConnTables) SetProb(pre, post labels.TopClass, f YfracFunc) {
	ct.Prob[pre][post] = f
}

// SetWt sets the weight function for a class pair and receptor.
func (ct *ConnTables) SetWt(pre, post labels.TopClass, rcpt labels.Receptors, f YfracFunc) {
	ct.Wt[pre][post][rcpt] = f
}

// binarize wraps f so it returns 1 where f is positive and 0 elsewhere.
func binarize(f YfracFunc) YfracFunc {
	return func(x, y float32) float32 {
		if f(x, y) > 0 {
			return 1
		}
		return 0
	}
}

// ApplyDataSwitches converts the graded probability and/or weight
// entries into binary yes/no indicators, per the UseProbData and
// UseWtData configuration switches.
func (ct *ConnTables) ApplyDataSwitches(cp *ConnParams) {
	for pre := range ct.Prob {
		for post := range ct.Prob[pre] {
			if !cp.UseProbData && ct.Prob[pre][post] != nil {
				ct.Prob[pre][post] = binarize(ct.Prob[pre][post])
			}
			if !cp.UseWtData {
				for r := range ct.Wt[pre][post] {
					if ct.Wt[pre][post][r] != nil {
						ct.Wt[pre][post][r] = binarize(ct.Wt[pre][post][r])
					}
				}
			}
		}
	}
}

// Defaults installs the M1 microcircuit connectivity: yfrac-dependent
// probabilities among the excitatory projection classes, uniform
// coupling with the interneuron classes, AMPA weights from excitatory
// classes, GABAA from Pva cells and GABAB from Sst cells.
func (ct *ConnTables) Defaults() {
	one := constYfrac(1)

	ct.SetProb(labels.IT, labels.IT, func(x, y float32) float32 { return 0.1*x + 0.1/y })
	ct.SetProb(labels.IT, labels.PT, func(x, y float32) float32 {
		if x > 0.5 && x < 0.8 {
			return 0.2 * x
		}
		return 0
	})
	ct.SetProb(labels.IT, labels.CT, one)
	ct.SetProb(labels.IT, labels.Pva, one)
	ct.SetProb(labels.IT, labels.Sst, one)
	ct.SetProb(labels.PT, labels.IT, zeroYfrac)
	ct.SetProb(labels.PT, labels.PT, one)
	ct.SetProb(labels.PT, labels.CT, zeroYfrac)
	ct.SetProb(labels.PT, labels.Pva, one)
	ct.SetProb(labels.PT, labels.Sst, one)
	ct.SetProb(labels.CT, labels.IT, one)
	ct.SetProb(labels.CT, labels.PT, zeroYfrac)
	ct.SetProb(labels.CT, labels.CT, one)
	ct.SetProb(labels.CT, labels.Pva, one)
	ct.SetProb(labels.CT, labels.Sst, one)
	ct.SetProb(labels.Pva, labels.IT, one)
	ct.SetProb(labels.Pva, labels.PT, one)
	ct.SetProb(labels.Pva, labels.CT, one)
	ct.SetProb(labels.Pva, labels.Pva, one)
	ct.SetProb(labels.Pva, labels.Sst, one)
	ct.SetProb(labels.Sst, labels.IT, one)
	ct.SetProb(labels.Sst, labels.PT, one)
	ct.SetProb(labels.Sst, labels.CT, one)
	ct.SetProb(labels.Sst, labels.Pva, one)
	ct.SetProb(labels.Sst, labels.Sst, one)

	for _, pre := range []labels.TopClass{labels.IT, labels.PT, labels.CT} {
		for _, post := range []labels.TopClass{labels.IT, labels.PT, labels.CT, labels.Pva, labels.Sst} {
			ct.SetWt(pre, post, labels.AMPA, one)
		}
	}
	ct.SetWt(labels.PT, labels.IT, labels.AMPA, zeroYfrac)
	ct.SetWt(labels.PT, labels.CT, labels.AMPA, zeroYfrac)
	ct.SetWt(labels.CT, labels.PT, labels.AMPA, zeroYfrac)
	for _, post := range []labels.TopClass{labels.IT, labels.PT, labels.CT, labels.Pva, labels.Sst} {
		ct.SetWt(labels.Pva, post, labels.GABAA, one)
		ct.SetWt(labels.Sst, post, labels.GABAB, one)
	}
}

// DefaultPops returns the static population table of the M1
// microcircuit model: six excitatory populations of IT, PT and CT cells
// across layers 2/3 through 6, plus Pva basket and Sst Martinotti
// interneuron populations per layer band.
func DefaultPops() []*Pop {
	linear := func(k float32) DensityFunc {
		return func(y float32) float32 { return k * y }
	}
	uniform := func(k float32) DensityFunc {
		return func(y float32) float32 { return k }
	}
	return []*Pop{
		NewPop(0, labels.E, labels.IT, labels.Other, 0.1, 0.26, linear(2e3), labels.Izhi2007),   // L2/3 IT
		NewPop(1, labels.E, labels.IT, labels.Other, 0.26, 0.31, linear(2e3), labels.Izhi2007),  // L4 IT
		NewPop(2, labels.E, labels.IT, labels.Other, 0.31, 0.52, linear(2e3), labels.Izhi2007),  // L5A IT
		NewPop(3, labels.E, labels.IT, labels.Other, 0.52, 0.77, linear(1e3), labels.Izhi2007),  // L5B IT
		NewPop(4, labels.E, labels.PT, labels.Other, 0.52, 0.77, uniform(1e3), labels.Izhi2007), // L5B PT
		NewPop(5, labels.E, labels.IT, labels.Other, 0.77, 1.0, uniform(1e3), labels.Izhi2007),  // L6 IT
		NewPop(6, labels.I, labels.Pva, labels.Basket, 0.1, 0.31, uniform(0.5e3), labels.Izhi2007),  // L2/3 Pva (FS)
		NewPop(7, labels.I, labels.Sst, labels.Marti, 0.1, 0.31, uniform(0.5e3), labels.Izhi2007),   // L2/3 Sst (LTS)
		NewPop(8, labels.I, labels.Pva, labels.Basket, 0.31, 0.77, uniform(0.5e3), labels.Izhi2007), // L5 Pva (FS)
		NewPop(9, labels.I, labels.Sst, labels.Marti, 0.31, 0.77, uniform(0.5e3), labels.Izhi2007),  // L5 Sst (LTS)
		NewPop(10, labels.I, labels.Pva, labels.Basket, 0.77, 1.0, uniform(0.5e3), labels.Izhi2007), // L6 Pva (FS)
		NewPop(11, labels.I, labels.Sst, labels.Marti, 0.77, 1.0, uniform(0.5e3), labels.Izhi2007),  // L6 Sst (LTS)
	}
}
