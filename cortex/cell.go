// Copyright (c) 2026, The NetPyne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortex

import (
	"github.com/goki/mat32"
	"github.com/jingxlim/netpyne/labels"
)

// Cell describes one neuron in the network.  Every partition holds the
// same descriptor for every global id; only the owning partition (gid
// index round-robin over partitions) carries a non-nil Unit.
type Cell struct {
	Gid      int               `desc:"global cell id, unique across the whole network"`
	PopID    int               `desc:"id of the population this cell belongs to"`
	EorI     labels.EorI       `desc:"excitatory or inhibitory"`
	TopClass labels.TopClass   `desc:"top-level class (IT, PT, CT, ...)"`
	SubClass labels.SubClass   `desc:"sub-class (L4, Basket, ...)"`
	Yfrac    float32           `desc:"normalized cortical depth, 0 = surface, 1 = deepest"`
	Pos      mat32.Vec2        `desc:"planar position in um: X = x location, Y = z location"`
	Model    labels.CellModels `desc:"kind of simulatable cell model"`

	Unit Unit `view:"-" desc:"opaque simulatable unit -- non-nil only on the owning partition, never transferable"`
}

// Make instantiates the cell's simulatable unit on the given engine and
// registers its global id and output event stream with the distributed
// spike-routing layer.  Only the owning partition calls this.
func (cl *Cell) Make(eng Engine, rank int) error {
	unit, err := eng.NewUnit(cl.Model, cl.TopClass, cl.Gid)
	if err != nil {
		return err
	}
	cl.Unit = unit
	return eng.RegisterCell(cl.Gid, rank, unit, SpikeThreshold)
}

// Local reports whether this cell's unit is materialized on this
// partition.
func (cl *Cell) Local() bool { return cl.Unit != nil }
