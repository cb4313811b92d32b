// Copyright (c) 2026, The NetPyne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortex

import (
	"strconv"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/jingxlim/netpyne/labels"
	"gonum.org/v1/gonum/stat"
)

// LogPrec is the precision for saving float values in report tables.
const LogPrec = 4

// CellsTable returns the full network cell list as a table, one row per
// gid, for downstream persistence and plotting.
func (nt *Network) CellsTable() *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", nt.Nm+"Cells")
	dt.SetMetaData("desc", "generated cell descriptors, one row per gid")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := etable.Schema{
		{Name: "Gid", Type: etensor.INT64},
		{Name: "Pop", Type: etensor.INT64},
		{Name: "EorI", Type: etensor.STRING},
		{Name: "TopClass", Type: etensor.STRING},
		{Name: "SubClass", Type: etensor.STRING},
		{Name: "Yfrac", Type: etensor.FLOAT64},
		{Name: "X", Type: etensor.FLOAT64},
		{Name: "Z", Type: etensor.FLOAT64},
		{Name: "Local", Type: etensor.INT64},
	}
	dt.SetFromSchema(sch, len(nt.Cells))

	for ri, cl := range nt.Cells {
		dt.SetCellFloat("Gid", ri, float64(cl.Gid))
		dt.SetCellFloat("Pop", ri, float64(cl.PopID))
		dt.SetCellString("EorI", ri, cl.EorI.String())
		dt.SetCellString("TopClass", ri, cl.TopClass.String())
		dt.SetCellString("SubClass", ri, cl.SubClass.String())
		dt.SetCellFloat("Yfrac", ri, float64(cl.Yfrac))
		dt.SetCellFloat("X", ri, float64(cl.Pos.X))
		dt.SetCellFloat("Z", ri, float64(cl.Pos.Y))
		loc := 0.0
		if cl.Local() {
			loc = 1
		}
		dt.SetCellFloat("Local", ri, loc)
	}
	return dt
}

// ConnsTable returns the realized connections onto this partition's
// cells as a table, with one weight column per receptor.
func (nt *Network) ConnsTable() *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", nt.Nm+"Conns")
	dt.SetMetaData("desc", "realized connections onto locally owned cells")
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := etable.Schema{
		{Name: "Pre", Type: etensor.INT64},
		{Name: "Post", Type: etensor.INT64},
		{Name: "Delay", Type: etensor.FLOAT64},
		{Name: "Dist", Type: etensor.FLOAT64},
		{Name: "Dist3D", Type: etensor.FLOAT64},
	}
	for r := labels.Receptors(0); r < labels.ReceptorsN; r++ {
		sch = append(sch, etable.Column{Name: "Wt" + r.String(), Type: etensor.FLOAT64})
	}
	dt.SetFromSchema(sch, len(nt.Conns))

	for ri := range nt.Conns {
		cn := &nt.Conns[ri]
		dt.SetCellFloat("Pre", ri, float64(cn.PreGid))
		dt.SetCellFloat("Post", ri, float64(cn.PostGid))
		dt.SetCellFloat("Delay", ri, float64(cn.Delay))
		dt.SetCellFloat("Dist", ri, float64(cn.Dist))
		dt.SetCellFloat("Dist3D", ri, float64(cn.Dist3D))
		for r := labels.Receptors(0); r < labels.ReceptorsN; r++ {
			dt.SetCellFloat("Wt"+r.String(), ri, float64(cn.Wt[r]))
		}
	}
	return dt
}

// PairsTable returns candidate and realized connection counts per
// (pre top class, post top class) pair.
func (nt *Network) PairsTable() *etable.Table {
	dt := &etable.Table{}
	dt.SetMetaData("name", nt.Nm+"Pairs")
	dt.SetMetaData("desc", "connection counts per top-class pair")

	sch := etable.Schema{
		{Name: "Pre", Type: etensor.STRING},
		{Name: "Post", Type: etensor.STRING},
		{Name: "Cand", Type: etensor.INT64},
		{Name: "Conns", Type: etensor.INT64},
	}
	dt.SetFromSchema(sch, int(labels.TopClassN)*int(labels.TopClassN))

	ri := 0
	for pre := labels.TopClass(0); pre < labels.TopClassN; pre++ {
		for post := labels.TopClass(0); post < labels.TopClassN; post++ {
			dt.SetCellString("Pre", ri, pre.String())
			dt.SetCellString("Post", ri, post.String())
			dt.SetCellFloat("Cand", ri, float64(nt.PairCand[pre][post]))
			dt.SetCellFloat("Conns", ri, float64(nt.PairConns[pre][post]))
			ri++
		}
	}
	return dt
}

// ConnStats are summary statistics over the realized connections on
// this partition.
type ConnStats struct {
	N         int     `desc:"number of realized connections"`
	DelayMean float64 `desc:"mean conduction delay, msec"`
	DelaySD   float64 `desc:"std dev of conduction delay, msec"`
	DistMean  float64 `desc:"mean planar distance, um"`
	DistSD    float64 `desc:"std dev of planar distance, um"`
	Dist3D    float64 `desc:"mean 3-D distance, um -- reported only, not used in generation"`
}

// Stats computes summary statistics over the realized connections.
func (nt *Network) Stats() ConnStats {
	cs := ConnStats{N: len(nt.Conns)}
	if cs.N == 0 {
		return cs
	}
	delays := make([]float64, cs.N)
	dists := make([]float64, cs.N)
	d3s := make([]float64, cs.N)
	for i := range nt.Conns {
		delays[i] = float64(nt.Conns[i].Delay)
		dists[i] = float64(nt.Conns[i].Dist)
		d3s[i] = float64(nt.Conns[i].Dist3D)
	}
	cs.DelayMean = stat.Mean(delays, nil)
	cs.DelaySD = stat.StdDev(delays, nil)
	cs.DistMean = stat.Mean(dists, nil)
	cs.DistSD = stat.StdDev(dists, nil)
	cs.Dist3D = stat.Mean(d3s, nil)
	return cs
}
