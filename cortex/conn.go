// Copyright (c) 2026, The NetPyne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortex

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/jingxlim/netpyne/labels"
)

// Conn is one realized synaptic connection onto a locally owned
// postsynaptic cell.  Immutable once created.
type Conn struct {
	PreGid  int                        `desc:"presynaptic global cell id"`
	PostGid int                        `desc:"postsynaptic global cell id, owned locally"`
	Delay   float32                    `desc:"conduction delay in msec = MinDelay + distance / Velocity"`
	Dist    float32                    `desc:"planar distance between pre and post in um"`
	Dist3D  float32                    `desc:"3-D distance including scaled depth difference -- computed but not used in the probability, weight or delay formulas"`
	Wt      [labels.ReceptorsN]float32 `desc:"weight per synaptic receptor"`
}

// axisDist returns the separation along one planar axis, taking the
// wrap-around path when toroidal topology is enabled and it is shorter.
func axisDist(a, b, size float32, toroidal bool) float32 {
	d := math32.Abs(a - b)
	if toroidal && size-d < d {
		d = size - d
	}
	return d
}

// CellDist returns the planar and 3-D distances from pre to post under
// the given geometry.  The 3-D distance incorporates the depth-fraction
// difference scaled by cortical thickness; the planar distance is the
// operative metric for the probability and delay formulas.
func CellDist(pre, post *Cell, pos *PosParams, toroidal bool) (dist, dist3D float32) {
	dx := axisDist(pre.Pos.X, post.Pos.X, pos.ModelSize, toroidal)
	dz := axisDist(pre.Pos.Y, post.Pos.Y, pos.ModelSize, toroidal)
	dy := (pre.Yfrac - post.Yfrac) * pos.CorticalThick
	dist = math32.Sqrt(dx*dx + dz*dz)
	dist3D = math32.Sqrt(dx*dx + dy*dy + dz*dz)
	return
}

// ConnProb returns the probability of a connection from pre onto post:
// the E/I class-pair scale factor, times the depth-dependent class-pair
// probability function, times exponential falloff with planar distance.
// Self-connections have probability zero.
func ConnProb(pre, post *Cell, dist float32, cp *ConnParams, ct *ConnTables) float32 {
	if pre.Gid == post.Gid {
		return 0
	}
	p := cp.ScaleConnProb[pre.EorI][post.EorI] * ct.ProbFunc(pre.TopClass, post.TopClass)(pre.Yfrac, post.Yfrac)
	if p == 0 {
		return 0
	}
	return p * math32.Exp(-dist/cp.Falloff[pre.EorI])
}

// Connect computes the realized connections from the candidate
// presynaptic cells onto the given postsynaptic cell, which must be
// owned locally.  The random generator is reseeded from the hash of
// (RandSeed + post.Gid) and one uniform draw is consumed per candidate
// in ascending gid order, so the realized set depends only on the seed,
// the candidate set and the post cell -- never on candidate ordering,
// partition count or execution order.
//
// The returned records are immutable; the caller registers each with
// the spike-routing layer.
func Connect(cellsPre []*Cell, post *Cell, pr *Params, ct *ConnTables) []Conn {
	n := len(cellsPre)
	if n == 0 {
		return nil
	}

	// candidate order is normalized to gid order for the draws
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return cellsPre[order[a]].Gid < cellsPre[order[b]].Gid })

	rnd := SeedRand(pr.Sim.RandSeed + post.Gid)

	conns := make([]Conn, 0, 16)
	for _, ci := range order {
		pre := cellsPre[ci]
		dist, dist3D := CellDist(pre, post, &pr.Pos, pr.Conn.Toroidal)
		prob := ConnProb(pre, post, dist, &pr.Conn, ct)
		if !(prob > rnd.Float32()) {
			continue
		}
		cn := Conn{
			PreGid:  pre.Gid,
			PostGid: post.Gid,
			Delay:   pr.Conn.MinDelay + dist/pr.Conn.Velocity,
			Dist:    dist,
			Dist3D:  dist3D,
		}
		wtScale := pr.Conn.ScaleConnWt[pre.EorI][post.EorI]
		for r := labels.Receptors(0); r < labels.ReceptorsN; r++ {
			wt := ct.WtFunc(pre.TopClass, post.TopClass, r)(pre.Yfrac, post.Yfrac)
			cn.Wt[r] = wtScale * wt * pr.Conn.ReceptorWt[r]
		}
		conns = append(conns, cn)
	}
	return conns
}
