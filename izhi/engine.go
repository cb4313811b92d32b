// Copyright (c) 2026, The NetPyne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package izhi

import (
	"github.com/jingxlim/netpyne/cortex"
	"github.com/jingxlim/netpyne/labels"
)

// KindForClass maps a cell top-level class to the Izhikevich
// parameterization used for it: excitatory projection classes are RS,
// Pva interneurons FS, Sst interneurons LTS.
func KindForClass(class labels.TopClass) string {
	switch class {
	case labels.Pva:
		return "FS"
	case labels.Sst:
		return "LTS"
	default:
		return "RS"
	}
}

// ConnRec is one registered connection onto a locally owned unit.
type ConnRec struct {
	PreGid int
	Post   *Neuron
	Delay  float32
	Wt     [labels.ReceptorsN]float32
}

// Engine implements cortex.Engine with Izhikevich 2007 point-process
// units.  Spike-source and connection registrations are recorded for
// the event-delivery loop to consume at simulation time.
type Engine struct {
	Ranks  map[int]int     `desc:"gid -> owning rank for every registered cell"`
	Units  map[int]*Neuron `desc:"locally owned units by gid"`
	Thresh map[int]float32 `desc:"registered firing threshold per gid"`
	Conns  []ConnRec       `desc:"registered connections onto local units"`

	Spikes []SpikeRec `desc:"spike times and gids recorded during Run"`
	WtLog  []WtRec    `desc:"connection weight statistics snapshots from Run"`
}

// NewEngine returns a ready-to-use engine.
func NewEngine() *Engine {
	return &Engine{
		Ranks:  make(map[int]int),
		Units:  make(map[int]*Neuron),
		Thresh: make(map[int]float32),
	}
}

// NewUnit satisfies cortex.Engine.  Only the Izhi2007 point-process
// model is implemented; other model kinds are a fatal configuration
// error.
func (eg *Engine) NewUnit(model labels.CellModels, class labels.TopClass, gid int) (cortex.Unit, error) {
	if model != labels.Izhi2007 {
		return nil, cortex.Errorf("izhi: cell model %v not yet implemented (gid %d)", model, gid)
	}
	return NewNeuron(KindForClass(class), gid)
}

// RegisterCell satisfies cortex.Engine.
func (eg *Engine) RegisterCell(gid, rank int, unit cortex.Unit, threshold float32) error {
	nr, ok := unit.(*Neuron)
	if !ok {
		return cortex.Errorf("izhi: unit for gid %d is not an izhi.Neuron", gid)
	}
	eg.Ranks[gid] = rank
	eg.Units[gid] = nr
	eg.Thresh[gid] = threshold
	return nil
}

// ConnectUnits satisfies cortex.Engine.
func (eg *Engine) ConnectUnits(preGid int, post cortex.Unit, delay float32, wt [labels.ReceptorsN]float32) error {
	nr, ok := post.(*Neuron)
	if !ok {
		return cortex.Errorf("izhi: post unit for pre gid %d is not an izhi.Neuron", preGid)
	}
	eg.Conns = append(eg.Conns, ConnRec{PreGid: preGid, Post: nr, Delay: delay, Wt: wt})
	return nil
}
