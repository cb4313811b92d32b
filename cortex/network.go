// Copyright (c) 2026, The NetPyne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortex

import (
	"fmt"
	"log"
	"strings"
	"unsafe"

	"github.com/c2h5oh/datasize"
	"github.com/emer/empi/mpi"
	"github.com/emer/etable/minmax"
	"github.com/jingxlim/netpyne/labels"
)

// Network drives the generation of the cortical microcircuit: it owns
// the population table, threads the global id offset through cell
// generation in population order, and computes the probabilistic
// connectivity for every locally owned postsynaptic cell.
//
// Partitions operate in lock-step data parallelism: every partition
// builds the identical cell descriptor list, materializes only its
// round-robin share of units, and realizes connections only onto its
// own cells.  No communication happens inside this package.
type Network struct {
	Nm     string      `desc:"overall name of the network model"`
	Params Params      `desc:"all generation parameters -- read-only once Build starts"`
	Tables *ConnTables `view:"-" desc:"class-pair connectivity probability / weight tables"`
	Pops   []*Pop      `desc:"populations in build order"`

	Cells      []*Cell `desc:"descriptors for every cell network-wide, indexed by gid"`
	LocalCells []*Cell `desc:"cells whose units are materialized on this partition"`
	Conns      []Conn  `desc:"realized connections onto locally owned cells"`

	Rank   int `inactive:"+" desc:"index of this compute partition"`
	NHosts int `inactive:"+" desc:"total number of compute partitions"`

	Eng Engine `view:"-" desc:"capability interface onto the simulation engine"`

	LastGid     int             `inactive:"+" desc:"next free global id after cell generation"`
	ConnPerCell minmax.AvgMax32 `inactive:"+" desc:"average and max realized connections per local post cell"`

	PairCand  [labels.TopClassN][labels.TopClassN]int `view:"-" desc:"candidate (pre, post) pairs per top-class pair"`
	PairConns [labels.TopClassN][labels.TopClassN]int `view:"-" desc:"realized connections per top-class pair"`
}

// NewNetwork returns a network with default parameters, the default M1
// population table and connectivity tables, a recording NullEngine, and
// a single-partition layout.  Replace any of these before Build.
func NewNetwork(name string) *Network {
	nt := &Network{Nm: name, NHosts: 1}
	nt.Params.Defaults()
	nt.Tables = NewConnTables()
	nt.Tables.Defaults()
	nt.Pops = DefaultPops()
	nt.Eng = NewNullEngine()
	return nt
}

// SetPartition sets this partition's index and the partition count,
// normally from mpi.WorldRank / mpi.WorldSize.
func (nt *Network) SetPartition(rank, nHosts int) error {
	if nHosts < 1 || rank < 0 || rank >= nHosts {
		return Errorf("bad partition %d of %d", rank, nHosts)
	}
	nt.Rank = rank
	nt.NHosts = nHosts
	return nil
}

// CellByGid returns the descriptor for the given global id.
func (nt *Network) CellByGid(gid int) (*Cell, error) {
	if gid < 0 || gid >= len(nt.Cells) {
		return nil, fmt.Errorf("gid %d out of range (%d cells)", gid, len(nt.Cells))
	}
	return nt.Cells[gid], nil
}

// BuildCells generates all populations in order, threading the global
// id offset from one population to the next.  A configuration error in
// any population halts generation with a descriptive error.
func (nt *Network) BuildCells() error {
	nt.Cells = nil
	nt.LocalCells = nil
	nt.LastGid = 0
	if err := nt.Params.Validate(); err != nil {
		log.Println(err)
		return err
	}
	for _, pp := range nt.Pops {
		cells, nextGid, err := pp.CreateCells(nt.Eng, &nt.Params, nt.LastGid, nt.Rank, nt.NHosts)
		if err != nil {
			log.Println(err)
			return fmt.Errorf("pop %d: %w", pp.PopID, err)
		}
		nt.Cells = append(nt.Cells, cells...)
		nt.LastGid = nextGid
	}
	for _, cl := range nt.Cells {
		if cl.Local() {
			nt.LocalCells = append(nt.LocalCells, cl)
		}
	}
	mpi.Printf("%s: created %d cells in %d pops (%d local on rank %d of %d)\n",
		nt.Nm, len(nt.Cells), len(nt.Pops), len(nt.LocalCells), nt.Rank, nt.NHosts)
	return nil
}

// BuildConns computes the realized connectivity for every locally owned
// postsynaptic cell and registers each connection with the engine.
// Class pairs with candidates but no realized connections are logged as
// warnings -- a valid outcome under some parameterizations, never an
// abort.
func (nt *Network) BuildConns() error {
	nt.Conns = nil
	nt.ConnPerCell.Init()
	nt.PairCand = [labels.TopClassN][labels.TopClassN]int{}
	nt.PairConns = [labels.TopClassN][labels.TopClassN]int{}

	var classN [labels.TopClassN]int
	for _, cl := range nt.Cells {
		classN[cl.TopClass]++
	}

	for pi, post := range nt.LocalCells {
		conns := Connect(nt.Cells, post, &nt.Params, nt.Tables)
		for ci := range conns {
			cn := &conns[ci]
			pre, err := nt.CellByGid(cn.PreGid)
			if err != nil {
				return err
			}
			nt.PairConns[pre.TopClass][post.TopClass]++
			if err := nt.Eng.ConnectUnits(cn.PreGid, post.Unit, cn.Delay, cn.Wt); err != nil {
				log.Println(err)
				return err
			}
			if nt.Params.Sim.Verbose > 1 {
				log.Printf("created conn pre=%d post=%d delay=%.2f\n", cn.PreGid, cn.PostGid, cn.Delay)
			}
		}
		for tc := range classN {
			nt.PairCand[tc][post.TopClass] += classN[tc]
		}
		nt.ConnPerCell.UpdateVal(float32(len(conns)), pi)
		nt.Conns = append(nt.Conns, conns...)
	}
	nt.ConnPerCell.CalcAvg()

	for pre := range nt.PairCand {
		for post := range nt.PairCand[pre] {
			if nt.PairCand[pre][post] > 0 && nt.PairConns[pre][post] == 0 {
				log.Printf("warning: no connections realized for class pair %v -> %v\n",
					labels.TopClass(pre), labels.TopClass(post))
			}
		}
	}
	mpi.Printf("%s: realized %d conns onto %d local cells (avg %.1f, max %g per cell)\n",
		nt.Nm, len(nt.Conns), len(nt.LocalCells), nt.ConnPerCell.Avg, nt.ConnPerCell.Max)
	return nil
}

// Build runs full network generation: data switches, cells, then
// connectivity.
func (nt *Network) Build() error {
	nt.Tables.ApplyDataSwitches(&nt.Params.Conn)
	if err := nt.BuildCells(); err != nil {
		return err
	}
	return nt.BuildConns()
}

// SizeReport returns a human-readable accounting of the memory taken by
// cell descriptors and realized connections on this partition.
func (nt *Network) SizeReport() string {
	var b strings.Builder
	cellMem := len(nt.Cells) * int(unsafe.Sizeof(Cell{}))
	connMem := len(nt.Conns) * int(unsafe.Sizeof(Conn{}))
	for _, pp := range nt.Pops {
		fmt.Fprintf(&b, "%14s pop %2d:\t Cells: %6d\n", pp.TopClass.String()+"/"+pp.SubClass.String(), pp.PopID, pp.NumCells)
	}
	fmt.Fprintf(&b, "\n%14s:\t Cells: %d\t CellMem: %v \t Conns: %d \t ConnMem: %v\n",
		nt.Nm, len(nt.Cells), (datasize.ByteSize)(cellMem).HumanReadable(),
		len(nt.Conns), (datasize.ByteSize)(connMem).HumanReadable())
	return b.String()
}
