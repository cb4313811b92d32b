// Copyright (c) 2026, The NetPyne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortex

import (
	"errors"
	"testing"

	"github.com/jingxlim/netpyne/labels"
)

func testParams() *Params {
	pr := &Params{}
	pr.Defaults()
	return pr
}

func testPop() *Pop {
	return NewPop(0, labels.E, labels.IT, labels.Other, 0.1, 0.26,
		func(y float32) float32 { return 2e3 * y }, labels.Izhi2007)
}

func TestPopValidate(t *testing.T) {
	pp := testPop()
	if err := pp.Validate(); err != nil {
		t.Fatal(err)
	}
	pp.Density = nil
	if err := pp.Validate(); err == nil {
		t.Errorf("nil density not rejected")
	}
	pp = testPop()
	pp.Yfrac.Set(0.5, 0.2)
	if err := pp.Validate(); err == nil {
		t.Errorf("inverted yfrac range not rejected")
	}
	pp.Yfrac.Set(-0.1, 0.5)
	if err := pp.Validate(); err == nil {
		t.Errorf("negative yfrac min not rejected")
	}
}

func TestCreateCellsDeterministic(t *testing.T) {
	pr := testParams()
	eng := NewNullEngine()

	p1 := testPop()
	c1, next1, err := p1.CreateCells(eng, pr, 0, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	p2 := testPop()
	c2, next2, err := p2.CreateCells(eng, pr, 0, 0, 1)
	if err != nil {
		t.Fatal(err)
	}

	if next1 != next2 || len(c1) != len(c2) {
		t.Fatalf("cell counts differ between identical runs: %d vs %d", len(c1), len(c2))
	}
	if len(c1) == 0 {
		t.Fatalf("no cells generated")
	}
	for i := range c1 {
		if c1[i].Yfrac != c2[i].Yfrac || c1[i].Pos != c2[i].Pos || c1[i].Gid != c2[i].Gid {
			t.Fatalf("cell %d differs between identical runs: %+v vs %+v", i, c1[i], c2[i])
		}
	}
}

func TestCreateCellsBounds(t *testing.T) {
	pr := testParams()
	pp := testPop()
	cells, next, err := pp.CreateCells(NewNullEngine(), pr, 10, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if next != 10+pp.NumCells {
		t.Errorf("next gid = %d, want %d", next, 10+pp.NumCells)
	}
	for i, cl := range cells {
		if cl.Gid != 10+i {
			t.Errorf("cell %d: gid = %d, want %d", i, cl.Gid, 10+i)
		}
		if cl.Yfrac < pp.Yfrac.Min || cl.Yfrac > pp.Yfrac.Max {
			t.Errorf("cell %d: yfrac %g outside [%g, %g)", i, cl.Yfrac, pp.Yfrac.Min, pp.Yfrac.Max)
		}
		if cl.Pos.X < 0 || cl.Pos.X > pr.Pos.ModelSize || cl.Pos.Y < 0 || cl.Pos.Y > pr.Pos.ModelSize {
			t.Errorf("cell %d: position %v outside footprint", i, cl.Pos)
		}
	}
}

// All partitions must generate the identical descriptor list, with each
// cell materialized on exactly the partition its generation index maps
// to round-robin.
func TestCreateCellsPartitions(t *testing.T) {
	pr := testParams()
	nHosts := 3

	ref := testPop()
	refCells, _, err := ref.CreateCells(NewNullEngine(), pr, 0, 0, 1)
	if err != nil {
		t.Fatal(err)
	}

	localOn := make([]int, len(refCells)) // count of partitions owning each cell
	for rank := 0; rank < nHosts; rank++ {
		pp := testPop()
		eng := NewNullEngine()
		cells, _, err := pp.CreateCells(eng, pr, 0, rank, nHosts)
		if err != nil {
			t.Fatal(err)
		}
		if len(cells) != len(refCells) {
			t.Fatalf("rank %d: %d cells, single-host run has %d", rank, len(cells), len(refCells))
		}
		for i, cl := range cells {
			if cl.Yfrac != refCells[i].Yfrac || cl.Pos != refCells[i].Pos {
				t.Fatalf("rank %d: cell %d descriptor differs from single-host run", rank, i)
			}
			if cl.Local() {
				if i%nHosts != rank {
					t.Errorf("rank %d: cell %d local but not owned", rank, i)
				}
				localOn[i]++
				if eng.Cells[cl.Gid] != rank {
					t.Errorf("rank %d: cell %d registered with wrong rank", rank, i)
				}
			}
		}
	}
	for i, n := range localOn {
		if n != 1 {
			t.Errorf("cell %d materialized on %d partitions, want exactly 1", i, n)
		}
	}
}

func TestCreateCellsNegativeDensity(t *testing.T) {
	pr := testParams()
	pp := NewPop(0, labels.E, labels.IT, labels.Other, 0.1, 0.26,
		func(y float32) float32 { return -1 }, labels.Izhi2007)
	_, next, err := pp.CreateCells(NewNullEngine(), pr, 5, 0, 1)
	if err == nil {
		t.Fatalf("negative density not rejected")
	}
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Errorf("error is %T, want *ConfigError", err)
	}
	if next != 5 {
		t.Errorf("gid advanced on error: %d", next)
	}
}

func TestCreateCellsEmpty(t *testing.T) {
	pr := testParams()
	pp := NewPop(0, labels.E, labels.IT, labels.Other, 0.1, 0.26,
		func(y float32) float32 { return 0 }, labels.Izhi2007)
	cells, next, err := pp.CreateCells(NewNullEngine(), pr, 5, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(cells) != 0 || pp.NumCells != 0 {
		t.Errorf("zero-density pop generated %d cells", len(cells))
	}
	if next != 5 {
		t.Errorf("gid advanced for empty pop: %d", next)
	}
}

// Doubling the density scale must not decrease the realized cell count.
func TestCreateCellsDensityScaling(t *testing.T) {
	pr := testParams()
	p1 := testPop()
	_, _, err := p1.CreateCells(NewNullEngine(), pr, 0, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	p2 := NewPop(0, labels.E, labels.IT, labels.Other, 0.1, 0.26,
		func(y float32) float32 { return 4e3 * y }, labels.Izhi2007)
	_, _, err = p2.CreateCells(NewNullEngine(), pr, 0, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if p2.NumCells < p1.NumCells {
		t.Errorf("doubled density gave fewer cells: %d < %d", p2.NumCells, p1.NumCells)
	}
}
