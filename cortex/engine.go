// Copyright (c) 2026, The NetPyne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortex

import (
	"github.com/jingxlim/netpyne/labels"
)

// SpikeThreshold is the fixed firing threshold registered with the
// spike-routing layer for every cell.
const SpikeThreshold = 10.0

// Unit is a simulatable cell unit instantiated by an Engine.  Network
// generation treats it as opaque: the engine owns its dynamics, and the
// only contract is that the unit emits a discrete event when its state
// crosses the threshold registered in RegisterCell.
type Unit interface {
	Label() string
}

// Engine is the capability interface onto the underlying simulation
// engine.  The generation core depends only on this interface, never on
// a concrete engine, so the biophysics and the cross-partition event
// exchange stay entirely outside this package.
type Engine interface {
	// NewUnit instantiates the simulatable unit for a cell of the given
	// model kind and top-level class.  An unrecognized model kind is a
	// fatal configuration error, not retried.
	NewUnit(model labels.CellModels, class labels.TopClass, gid int) (Unit, error)

	// RegisterCell associates the cell's global id with its owning
	// partition and registers the unit's output event stream at the
	// given firing threshold.  Called exactly once per cell, on the
	// owning partition only.
	RegisterCell(gid, rank int, unit Unit, threshold float32) error

	// ConnectUnits registers a realized connection from the presynaptic
	// global id onto the locally owned postsynaptic unit, with the given
	// delay (msec) and per-receptor weight vector.
	ConnectUnits(preGid int, post Unit, delay float32, wt [labels.ReceptorsN]float32) error
}

// NullEngine is an Engine that only records what it is asked to do.
// It supports engine-less generation runs and tests.
type NullEngine struct {
	Cells map[int]int `desc:"gid -> owning rank for every registered cell"`
	Units map[int]Unit
	Conns int `desc:"number of connections registered"`
}

// NewNullEngine returns a ready-to-use recording engine.
func NewNullEngine() *NullEngine {
	return &NullEngine{Cells: make(map[int]int), Units: make(map[int]Unit)}
}

type nullUnit struct {
	gid   int
	model labels.CellModels
}

func (nu *nullUnit) Label() string { return nu.model.String() }

func (ne *NullEngine) NewUnit(model labels.CellModels, class labels.TopClass, gid int) (Unit, error) {
	if model < 0 || model >= labels.CellModelsN {
		return nil, Errorf("NullEngine: unrecognized cell model %d for gid %d", model, gid)
	}
	return &nullUnit{gid: gid, model: model}, nil
}

func (ne *NullEngine) RegisterCell(gid, rank int, unit Unit, threshold float32) error {
	ne.Cells[gid] = rank
	ne.Units[gid] = unit
	return nil
}

func (ne *NullEngine) ConnectUnits(preGid int, post Unit, delay float32, wt [labels.ReceptorsN]float32) error {
	ne.Conns++
	return nil
}
