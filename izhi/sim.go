// Copyright (c) 2026, The NetPyne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package izhi

import (
	"math/rand"
	"sort"

	"github.com/emer/empi/mpi"
	"github.com/emer/etable/minmax"
	"github.com/jingxlim/netpyne/cortex"
	"github.com/jingxlim/netpyne/labels"
)

// bgSeedOff offsets the background stimulus seed keys so their random
// streams stay disjoint from the connectivity streams, which are keyed
// by RandSeed + gid directly.
const bgSeedOff = 1 << 20

// EorIForKind maps a unit parameterization back to its excitatory or
// inhibitory class: RS cells are excitatory, FS and LTS inhibitory.
func EorIForKind(kind string) labels.EorI {
	if kind == "RS" {
		return labels.E
	}
	return labels.I
}

// SpikeRec is one recorded spike.
type SpikeRec struct {
	T   float32 `desc:"spike time, msec"`
	Gid int     `desc:"global id of the spiking cell"`
}

// WtRec is one snapshot of the connection weight statistics, taken
// every STDP.SaveEvery msec during a run.
type WtRec struct {
	T   float32         `desc:"snapshot time, msec"`
	Wts minmax.AvgMax32 `desc:"average and max total connection weight"`
}

// delivery is one spike arrival scheduled onto a local unit.
type delivery struct {
	syn *Syn
	wt  [labels.ReceptorsN]float32
}

// Run simulates the registered units for pr.Sim.Duration msec: each
// unit integrates its synaptic and background input at the Dt timestep,
// spikes propagate along registered connections after their conduction
// delay, and STDP adjusts connection weights when enabled.
//
// Only connections whose presynaptic cell is registered locally deliver
// events; cross-partition spike exchange is the caller's concern.
// Everything random derives from cortex.SeedRand keys, so a run is
// reproducible from pr.Sim.RandSeed alone.
func (eg *Engine) Run(pr *cortex.Params) error {
	sim, back, stdp := &pr.Sim, &pr.Back, &pr.STDP
	if stdp.On && stdp.SaveEvery < sim.LoopStep {
		return cortex.Errorf("izhi: STDP.SaveEvery %g smaller than Sim.LoopStep %g", stdp.SaveEvery, sim.LoopStep)
	}

	sc := SynChans{}
	sc.Defaults()

	gids := make([]int, 0, len(eg.Units))
	for gid := range eg.Units {
		gids = append(gids, gid)
	}
	sort.Ints(gids)

	syns := make(map[int]*Syn, len(gids))
	bgRnd := make(map[int]*rand.Rand, len(gids))
	for _, gid := range gids {
		syns[gid] = &Syn{}
		if back.On {
			bgRnd[gid] = cortex.SeedRand(sim.RandSeed + bgSeedOff + gid)
		}
		eg.Units[gid].Init()
	}

	connsByPre := make(map[int][]int)
	connsByPost := make(map[int][]int)
	for ci := range eg.Conns {
		cn := &eg.Conns[ci]
		connsByPre[cn.PreGid] = append(connsByPre[cn.PreGid], ci)
		connsByPost[cn.Post.Gid] = append(connsByPost[cn.Post.Gid], ci)
	}

	// spike deliveries bucketed by arrival step
	maxDelay := float32(0)
	for ci := range eg.Conns {
		if eg.Conns[ci].Delay > maxDelay {
			maxDelay = eg.Conns[ci].Delay
		}
	}
	nBuck := int(maxDelay/sim.Dt) + 2
	buckets := make([][]delivery, nBuck)

	lastSpike := make(map[int]float32, len(gids))
	for _, gid := range gids {
		lastSpike[gid] = -1e9
	}

	bgProb := back.Rate
	if bgProb < back.RateMin {
		bgProb = back.RateMin
	}
	bgProb = bgProb * sim.Dt / 1000 // per-step spike probability

	eg.Spikes = eg.Spikes[:0]
	eg.WtLog = eg.WtLog[:0]

	nSteps := int(sim.Duration / sim.Dt)
	nextProg := sim.ProgUpdate
	nextSave := float32(0)
	for step := 0; step < nSteps; step++ {
		t := float32(step) * sim.Dt

		bi := step % nBuck
		for _, dl := range buckets[bi] {
			dl.syn.AddG(dl.wt)
		}
		buckets[bi] = buckets[bi][:0]

		for _, gid := range gids {
			nr := eg.Units[gid]
			sy := syns[gid]
			sy.Decay(&sc, sim.Dt)
			if back.On && bgRnd[gid].Float32() < bgProb {
				var wt [labels.ReceptorsN]float32
				wt[back.Receptor] = back.Weight[EorIForKind(nr.Kind)]
				sy.AddG(wt)
			}
			if !nr.Step(sy.Current(&sc, nr.Vm), sim.Dt) {
				continue
			}
			eg.Spikes = append(eg.Spikes, SpikeRec{T: t, Gid: gid})
			for _, ci := range connsByPre[gid] {
				cn := &eg.Conns[ci]
				db := (step + int(cn.Delay/sim.Dt) + 1) % nBuck
				buckets[db] = append(buckets[db], delivery{syn: syns[cn.Post.Gid], wt: cn.Wt})
				if stdp.On && t-lastSpike[cn.Post.Gid] <= stdp.Window {
					eg.stdpAdjust(cn, stdp.Rates[EorIForKind(nr.Kind)][1], stdp)
				}
			}
			if stdp.On {
				for _, ci := range connsByPost[gid] {
					cn := &eg.Conns[ci]
					preNr, ok := eg.Units[cn.PreGid]
					if !ok || t-lastSpike[cn.PreGid] > stdp.Window {
						continue
					}
					eg.stdpAdjust(cn, stdp.Rates[EorIForKind(preNr.Kind)][0], stdp)
				}
			}
			lastSpike[gid] = t
		}

		if stdp.On && t >= nextSave {
			eg.logWts(t)
			nextSave += stdp.SaveEvery
		}
		if t >= nextProg {
			mpi.Printf("t = %g msec: %d spikes so far\n", t, len(eg.Spikes))
			nextProg += sim.ProgUpdate
		}
	}
	return nil
}

// stdpAdjust applies one STDP weight change to every receptor component
// of the connection, clamped to [0, MaxWt].
func (eg *Engine) stdpAdjust(cn *ConnRec, dw float32, stdp *cortex.STDPParams) {
	for r := range cn.Wt {
		if cn.Wt[r] == 0 {
			continue
		}
		w := cn.Wt[r] + dw
		if w < 0 {
			w = 0
		}
		if w > stdp.MaxWt {
			w = stdp.MaxWt
		}
		cn.Wt[r] = w
	}
}

// logWts appends a weight statistics snapshot at time t.
func (eg *Engine) logWts(t float32) {
	wr := WtRec{T: t}
	wr.Wts.Init()
	for ci := range eg.Conns {
		tot := float32(0)
		for _, w := range eg.Conns[ci].Wt {
			tot += w
		}
		wr.Wts.UpdateVal(tot, ci)
	}
	wr.Wts.CalcAvg()
	eg.WtLog = append(eg.WtLog, wr)
}
