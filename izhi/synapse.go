// Copyright (c) 2026, The NetPyne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package izhi

import (
	"github.com/jingxlim/netpyne/labels"
)

// SynChans are the synaptic conductance channel parameters per receptor,
// for computing a point-neuron approximation based on the standard
// equivalent RC circuit model: each receptor contributes a conductance
// that decays exponentially and drives the membrane toward its reversal
// potential.
type SynChans struct {
	Erev [labels.ReceptorsN]float32 `desc:"reversal potential per receptor, mV"`
	Tau  [labels.ReceptorsN]float32 `desc:"conductance decay time constant per receptor, msec"`
}

func (sc *SynChans) Defaults() {
	sc.Erev[labels.AMPA] = 0
	sc.Erev[labels.NMDA] = 0
	sc.Erev[labels.GABAA] = -70
	sc.Erev[labels.GABAB] = -90
	sc.Erev[labels.Opsin] = 0
	sc.Tau[labels.AMPA] = 5
	sc.Tau[labels.NMDA] = 150
	sc.Tau[labels.GABAA] = 6
	sc.Tau[labels.GABAB] = 150
	sc.Tau[labels.Opsin] = 10
}

// Syn is the synaptic conductance state of one unit: the summed
// conductance per receptor over all of its incoming connections.
type Syn struct {
	G [labels.ReceptorsN]float32 `desc:"current conductance per receptor, nS"`
}

// Decay decays all receptor conductances by one timestep.
func (sy *Syn) Decay(sc *SynChans, dt float32) {
	for r := range sy.G {
		sy.G[r] -= dt * sy.G[r] / sc.Tau[r]
	}
}

// AddG adds an arriving spike's weight vector onto the conductances.
func (sy *Syn) AddG(wt [labels.ReceptorsN]float32) {
	for r := range sy.G {
		sy.G[r] += wt[r]
	}
}

// Current returns the total synaptic current in pA at the given
// membrane potential.
func (sy *Syn) Current(sc *SynChans, vm float32) float32 {
	i := float32(0)
	for r := range sy.G {
		i += sy.G[r] * (sc.Erev[r] - vm)
	}
	return i
}
