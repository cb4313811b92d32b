// Copyright (c) 2026, The NetPyne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortex

import (
	"math/rand"
	"testing"

	"github.com/chewxy/math32"
	"github.com/goki/mat32"
	"github.com/jingxlim/netpyne/labels"
)

// difTol is the numerical difference tolerance for float comparisons.
const difTol = 1.0e-6

// allConnTables has probability and AMPA weight 1 for every class pair,
// so connection realization depends only on the E/I scales and distance.
func allConnTables() *ConnTables {
	ct := NewConnTables()
	one := constYfrac(1)
	for pre := labels.TopClass(0); pre < labels.TopClassN; pre++ {
		for post := labels.TopClass(0); post < labels.TopClassN; post++ {
			ct.SetProb(pre, post, one)
			ct.SetWt(pre, post, labels.AMPA, one)
		}
	}
	return ct
}

// gridCells lays out n excitatory IT cells along a diagonal of the
// footprint at a common depth.
func gridCells(n int, pr *Params) []*Cell {
	cells := make([]*Cell, n)
	for i := range cells {
		f := float32(i) / float32(n)
		cells[i] = &Cell{Gid: i, EorI: labels.E, TopClass: labels.IT, SubClass: labels.Other,
			Yfrac: 0.2, Pos: mat32.Vec2{X: pr.Pos.ModelSize * f, Y: pr.Pos.ModelSize * f},
			Model: labels.Izhi2007}
	}
	return cells
}

func TestAxisDist(t *testing.T) {
	if d := axisDist(10, 30, 1000, false); math32.Abs(d-20) > difTol {
		t.Errorf("planar axis dist = %g, want 20", d)
	}
	if d := axisDist(10, 990, 1000, false); math32.Abs(d-980) > difTol {
		t.Errorf("non-toroidal edge dist = %g, want 980", d)
	}
	if d := axisDist(10, 990, 1000, true); math32.Abs(d-20) > difTol {
		t.Errorf("toroidal wrap dist = %g, want 20", d)
	}
}

func TestCellDist(t *testing.T) {
	pr := testParams()
	pre := &Cell{Yfrac: 0.2, Pos: mat32.Vec2{X: 0, Y: 0}}
	post := &Cell{Yfrac: 0.2, Pos: mat32.Vec2{X: 300, Y: 400}}
	dist, dist3D := CellDist(pre, post, &pr.Pos, false)
	if math32.Abs(dist-500) > difTol {
		t.Errorf("planar dist = %g, want 500", dist)
	}
	if math32.Abs(dist3D-500) > difTol {
		t.Errorf("3-D dist at equal depth = %g, want 500", dist3D)
	}

	post.Yfrac = 0.2 + 100/pr.Pos.CorticalThick // 100 um deeper
	dist, dist3D = CellDist(pre, post, &pr.Pos, false)
	if math32.Abs(dist-500) > difTol {
		t.Errorf("planar dist must ignore depth: %g", dist)
	}
	want := math32.Sqrt(500*500 + 100*100)
	if math32.Abs(dist3D-want) > 1e-2 {
		t.Errorf("3-D dist = %g, want %g", dist3D, want)
	}
}

func TestConnProb(t *testing.T) {
	pr := testParams()
	ct := allConnTables()

	pre := &Cell{Gid: 0, EorI: labels.E, TopClass: labels.IT, Yfrac: 0.2}
	post := &Cell{Gid: 1, EorI: labels.E, TopClass: labels.IT, Yfrac: 0.2}

	p0 := ConnProb(pre, post, 0, &pr.Conn, ct)
	if math32.Abs(p0-pr.Conn.ScaleConnProb[labels.E][labels.E]) > difTol {
		t.Errorf("zero-distance prob = %g, want scale %g", p0, pr.Conn.ScaleConnProb[labels.E][labels.E])
	}

	pd := ConnProb(pre, post, pr.Conn.Falloff[labels.E], &pr.Conn, ct)
	want := p0 * math32.Exp(-1)
	if math32.Abs(pd-want) > difTol*p0 {
		t.Errorf("prob at one length constant = %g, want %g", pd, want)
	}

	if p := ConnProb(post, post, 0, &pr.Conn, ct); p != 0 {
		t.Errorf("self-connection prob = %g, want 0", p)
	}

	// unset class pair stays unconnected
	ct2 := NewConnTables()
	if p := ConnProb(pre, post, 0, &pr.Conn, ct2); p != 0 {
		t.Errorf("unset pair prob = %g, want 0", p)
	}
}

// With probability 1 tables and the default scales, zero-distance
// candidates always connect and self-connections never form.
func TestConnectAllAndSelf(t *testing.T) {
	pr := testParams()
	ct := allConnTables()

	n := 20
	cells := make([]*Cell, n)
	for i := range cells {
		cells[i] = &Cell{Gid: i, EorI: labels.E, TopClass: labels.IT, Yfrac: 0.2,
			Pos: mat32.Vec2{X: 100, Y: 100}}
	}
	post := cells[7]
	conns := Connect(cells, post, pr, ct)
	if len(conns) != n-1 {
		t.Fatalf("got %d conns, want %d (all but self)", len(conns), n-1)
	}
	for _, cn := range conns {
		if cn.PreGid == cn.PostGid {
			t.Errorf("self-connection realized: gid %d", cn.PreGid)
		}
		if cn.PostGid != post.Gid {
			t.Errorf("conn onto wrong post: %d", cn.PostGid)
		}
		if math32.Abs(cn.Delay-pr.Conn.MinDelay) > difTol {
			t.Errorf("zero-distance delay = %g, want MinDelay %g", cn.Delay, pr.Conn.MinDelay)
		}
		// EE weight = WtScale * WtEI[E][E] * 1 * ReceptorWt
		want := pr.Conn.ScaleConnWt[labels.E][labels.E]
		if math32.Abs(cn.Wt[labels.AMPA]-want) > difTol {
			t.Errorf("AMPA weight = %g, want %g", cn.Wt[labels.AMPA], want)
		}
		for r := labels.NMDA; r < labels.ReceptorsN; r++ {
			if cn.Wt[r] != 0 {
				t.Errorf("receptor %v weight = %g, want 0", r, cn.Wt[r])
			}
		}
	}
}

func TestConnectDelays(t *testing.T) {
	pr := testParams()
	ct := allConnTables()
	cells := gridCells(50, pr)
	post := cells[0]
	conns := Connect(cells, post, pr, ct)
	for _, cn := range conns {
		want := pr.Conn.MinDelay + cn.Dist/pr.Conn.Velocity
		if math32.Abs(cn.Delay-want) > difTol {
			t.Errorf("delay = %g, want %g at dist %g", cn.Delay, want, cn.Dist)
		}
		if cn.Delay < pr.Conn.MinDelay {
			t.Errorf("delay %g below MinDelay", cn.Delay)
		}
	}
}

// The realized set must not depend on the order candidates are passed in.
func TestConnectOrderIndependent(t *testing.T) {
	pr := testParams()
	ct := allConnTables()
	cells := gridCells(100, pr)
	post := cells[42]

	ref := Connect(cells, post, pr, ct)
	if len(ref) == 0 {
		t.Fatalf("no connections realized")
	}

	shuf := make([]*Cell, len(cells))
	copy(shuf, cells)
	srnd := rand.New(rand.NewSource(99))
	srnd.Shuffle(len(shuf), func(i, j int) { shuf[i], shuf[j] = shuf[j], shuf[i] })

	got := Connect(shuf, post, pr, ct)
	if len(got) != len(ref) {
		t.Fatalf("shuffled candidates: %d conns, want %d", len(got), len(ref))
	}
	for i := range ref {
		if got[i] != ref[i] {
			t.Errorf("conn %d differs after shuffle: %+v vs %+v", i, got[i], ref[i])
		}
	}
}

// Different post cells consume independent streams: realized sets from
// the same candidates must differ for at least some post gid under an
// intermediate probability.
func TestConnectPerPostSeed(t *testing.T) {
	pr := testParams()
	pr.Conn.ProbScale = 0.5 // prob ~0.5 at zero distance
	pr.Update()
	ct := allConnTables()

	n := 60
	cells := make([]*Cell, n)
	for i := range cells {
		cells[i] = &Cell{Gid: i, EorI: labels.E, TopClass: labels.IT, Yfrac: 0.2,
			Pos: mat32.Vec2{X: 100, Y: 100}}
	}

	pres := make(map[int][]int)
	for _, pi := range []int{3, 17, 40} {
		for _, cn := range Connect(cells, cells[pi], pr, ct) {
			pres[pi] = append(pres[pi], cn.PreGid)
		}
	}
	same := func(a, b []int) bool {
		if len(a) != len(b) {
			return false
		}
		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}
		return true
	}
	if same(pres[3], pres[17]) && same(pres[17], pres[40]) {
		t.Errorf("all post cells realized identical presynaptic sets; streams not independent")
	}
}

func TestApplyDataSwitches(t *testing.T) {
	ct := NewConnTables()
	ct.SetProb(labels.IT, labels.IT, constYfrac(0.3))
	ct.SetWt(labels.IT, labels.IT, labels.AMPA, constYfrac(0.7))

	cp := ConnParams{}
	cp.Defaults()
	cp.UseProbData = false
	cp.UseWtData = false
	ct.ApplyDataSwitches(&cp)

	if v := ct.ProbFunc(labels.IT, labels.IT)(0.5, 0.5); v != 1 {
		t.Errorf("binarized prob = %g, want 1", v)
	}
	if v := ct.WtFunc(labels.IT, labels.IT, labels.AMPA)(0.5, 0.5); v != 1 {
		t.Errorf("binarized weight = %g, want 1", v)
	}
	if v := ct.ProbFunc(labels.PT, labels.PT)(0.5, 0.5); v != 0 {
		t.Errorf("unset pair after switches = %g, want 0", v)
	}
}
