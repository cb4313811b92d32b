// Copyright (c) 2026, The NetPyne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortex

import (
	"log"

	"github.com/emer/etable/minmax"
	"github.com/goki/mat32"
	"github.com/jingxlim/netpyne/labels"
)

// yfracInterval is the resolution at which the density function is
// scanned to find its maximum over the population's depth range.
const yfracInterval = 0.001

// DensityFunc maps normalized cortical depth to cell density, in cells
// per cubic mm.  It must be non-negative over the population's depth
// range.
type DensityFunc func(yfrac float32) float32

// Pop is one population of cells: a cell class occupying a band of
// cortical depth, with a depth-dependent density.  Constructed once at
// startup from the static population table; mutated only by appending
// generated cell gids during the network build.
type Pop struct {
	PopID    int               `desc:"unique dense population id"`
	EorI     labels.EorI       `desc:"excitatory or inhibitory"`
	TopClass labels.TopClass   `desc:"top-level class (IT, PT, CT, ...)"`
	SubClass labels.SubClass   `desc:"sub-class (L4, Basket, ...)"`
	Yfrac    minmax.F32        `desc:"normalized cortical depth range [lo, hi) occupied by this population"`
	Density  DensityFunc       `view:"-" desc:"cell density as a function of yfrac, cells / mm^3"`
	Model    labels.CellModels `desc:"cell model for this population"`

	CellGids []int `desc:"gids of cells belonging to this population"`
	NumCells int   `inactive:"+" desc:"network-wide number of cells after density pruning"`
}

// NewPop returns a population with the given parameters.
func NewPop(popID int, eori labels.EorI, top labels.TopClass, sub labels.SubClass, ylo, yhi float32, density DensityFunc, model labels.CellModels) *Pop {
	pp := &Pop{PopID: popID, EorI: eori, TopClass: top, SubClass: sub, Density: density, Model: model}
	pp.Yfrac.Set(ylo, yhi)
	return pp
}

// Validate fails fast on a malformed depth range or missing density.
func (pp *Pop) Validate() error {
	if pp.Density == nil {
		return Errorf("pop %d: nil density function", pp.PopID)
	}
	if pp.Yfrac.Min < 0 || pp.Yfrac.Max > 1 || pp.Yfrac.Min >= pp.Yfrac.Max {
		return Errorf("pop %d: malformed yfrac range [%g, %g)", pp.PopID, pp.Yfrac.Min, pp.Yfrac.Max)
	}
	return nil
}

// CreateCells generates this population's cells.  Steps 1-5 are fully
// deterministic given Params.Sim.RandSeed and run identically on every
// partition, so all partitions agree on the cell count, depth fractions,
// positions and gid assignment without any coordination.  Only cells
// whose generation index modulo nHosts equals rank are materialized
// (unit instantiated and registered) through the engine.
//
// Returns the descriptors for all of the population's cells in gid
// order (locally owned ones carry a Unit) and the next free global id.
func (pp *Pop) CreateCells(eng Engine, pr *Params, lastGid, rank, nHosts int) ([]*Cell, int, error) {
	if err := pp.Validate(); err != nil {
		return nil, lastGid, err
	}

	// cell count target from scale, sparseness, footprint and band thickness
	thick := (pp.Yfrac.Max - pp.Yfrac.Min) * pr.Pos.CorticalThick / 1e3
	footprint := pr.Pos.ModelSize / 1e3
	volume := pr.Sim.Scale * pr.Pos.Sparseness * footprint * footprint * thick

	maxDensity := float32(0)
	for y := pp.Yfrac.Min; y < pp.Yfrac.Max; y += yfracInterval {
		d := pp.Density(y)
		if d < 0 {
			return nil, lastGid, Errorf("pop %d: density function negative (%g) at yfrac %g", pp.PopID, d, y)
		}
		if d > maxDensity {
			maxDensity = d
		}
	}
	maxCells := int(volume * maxDensity)

	// identical seed on every partition: the candidate sequence below is
	// bit-identical everywhere, which the round-robin ownership rule
	// depends on
	rnd := SeedRand(pr.Sim.RandSeed)

	yfracsAll := make([]float32, maxCells)
	for i := range yfracsAll {
		yfracsAll[i] = pp.Yfrac.Min + (pp.Yfrac.Max-pp.Yfrac.Min)*rnd.Float32()
	}
	yfracs := make([]float32, 0, maxCells)
	for _, y := range yfracsAll {
		// rejection sampling against the normalized density
		if pp.Density(y)/maxDensity > rnd.Float32() {
			yfracs = append(yfracs, y)
		}
	}
	pp.NumCells = len(yfracs)

	if pr.Sim.Verbose > 0 {
		log.Printf("pop %d: volume=%.2f maxDensity=%.2f maxCells=%d numCells=%d\n", pp.PopID, volume, maxDensity, maxCells, pp.NumCells)
	}
	if pp.NumCells == 0 {
		log.Printf("warning: pop %d: zero cells generated for yfrac range [%g, %g)\n", pp.PopID, pp.Yfrac.Min, pp.Yfrac.Max)
		return nil, lastGid, nil
	}

	locs := make([]mat32.Vec2, pp.NumCells)
	for i := range locs {
		locs[i].X = pr.Pos.ModelSize * rnd.Float32()
		locs[i].Y = pr.Pos.ModelSize * rnd.Float32()
	}

	cells := make([]*Cell, pp.NumCells)
	for i := 0; i < pp.NumCells; i++ {
		gid := lastGid + i
		cl := &Cell{Gid: gid, PopID: pp.PopID, EorI: pp.EorI, TopClass: pp.TopClass,
			SubClass: pp.SubClass, Yfrac: yfracs[i], Pos: locs[i], Model: pp.Model}
		if i%nHosts == rank {
			pp.CellGids = append(pp.CellGids, gid)
			if err := cl.Make(eng, rank); err != nil {
				return nil, lastGid, err
			}
			if pr.Sim.Verbose > 1 {
				log.Printf("cell %d/%d (gid=%d) of pop %d on node %d\n", i, pp.NumCells, gid, pp.PopID, rank)
			}
		}
		cells[i] = cl
	}
	return cells, lastGid + pp.NumCells, nil
}
