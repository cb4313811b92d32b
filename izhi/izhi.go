// Copyright (c) 2026, The NetPyne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package izhi implements the Izhikevich 2007 point-process neuron in the
three parameterizations used by the cortical model: regular spiking
(RS) for excitatory projection cells, fast spiking (FS) for Pva
interneurons, and low-threshold spiking (LTS) for Sst interneurons.

It exists as the in-repo simulatable-unit implementation behind the
cortex.Engine interface; a full simulation engine would replace it.
*/
package izhi

import (
	"strconv"
)

// Params are the Izhikevich 2007 model parameters for one cell kind.
type Params struct {
	C     float32 `desc:"membrane capacitance, pF"`
	K     float32 `desc:"rheobase / input resistance scaling factor"`
	Vr    float32 `desc:"resting membrane potential, mV"`
	Vt    float32 `desc:"instantaneous threshold potential, mV"`
	Vpeak float32 `desc:"spike cutoff potential, mV"`
	A     float32 `desc:"recovery time constant, 1/msec"`
	B     float32 `desc:"sensitivity of recovery to subthreshold Vm"`
	Cr    float32 `desc:"post-spike reset potential, mV"`
	D     float32 `desc:"post-spike recovery increment, pA"`
}

// RS sets the regular spiking (layer 5 pyramidal) parameters.
func (pr *Params) RS() {
	pr.C = 100
	pr.K = 0.7
	pr.Vr = -60
	pr.Vt = -40
	pr.Vpeak = 35
	pr.A = 0.03
	pr.B = -2
	pr.Cr = -50
	pr.D = 100
}

// FS sets the fast spiking (basket interneuron) parameters.
func (pr *Params) FS() {
	pr.C = 20
	pr.K = 1
	pr.Vr = -55
	pr.Vt = -40
	pr.Vpeak = 25
	pr.A = 0.2
	pr.B = -2
	pr.Cr = -45
	pr.D = 0
}

// LTS sets the low-threshold spiking (Martinotti interneuron)
// parameters.
func (pr *Params) LTS() {
	pr.C = 100
	pr.K = 1
	pr.Vr = -56
	pr.Vt = -42
	pr.Vpeak = 40
	pr.A = 0.03
	pr.B = 8
	pr.Cr = -53
	pr.D = 20
}

// Section is the placeholder geometric section that point-process
// units are attached to.
type Section struct {
	L    float32 `def:"1" desc:"section length, um"`
	Diam float32 `def:"1" desc:"section diameter, um"`
}

// Neuron is one instantiated Izhikevich 2007 unit.
type Neuron struct {
	Params Params  `view:"inline" desc:"cell kind parameters"`
	Kind   string  `desc:"parameterization name: RS, FS or LTS"`
	Gid    int     `desc:"global id of the cell this unit simulates"`
	Sect   Section `view:"inline" desc:"placeholder section the point process attaches to"`

	Vm    float32 `desc:"membrane potential, mV"`
	U     float32 `desc:"recovery variable, pA"`
	Spike bool    `desc:"whether the unit crossed Vpeak on the last step"`
}

// NewNeuron returns an initialized unit of the given kind for gid.
func NewNeuron(kind string, gid int) (*Neuron, error) {
	nr := &Neuron{Kind: kind, Gid: gid}
	switch kind {
	case "RS":
		nr.Params.RS()
	case "FS":
		nr.Params.FS()
	case "LTS":
		nr.Params.LTS()
	default:
		return nil, &UnknownKindError{Kind: kind}
	}
	nr.Sect = Section{L: 1, Diam: 1}
	nr.Init()
	return nr, nil
}

// UnknownKindError is returned for an unrecognized parameterization.
type UnknownKindError struct {
	Kind string
}

func (ue *UnknownKindError) Error() string { return "izhi: unknown cell kind: " + ue.Kind }

// Init resets the unit to its resting state.
func (nr *Neuron) Init() {
	nr.Vm = nr.Params.Vr
	nr.U = 0
	nr.Spike = false
}

// Label satisfies cortex.Unit.
func (nr *Neuron) Label() string { return "Izhi2007 " + nr.Kind + " " + strconv.Itoa(nr.Gid) }

// Step integrates the unit by dt msec under injected current i (pA),
// and reports whether the membrane potential crossed Vpeak -- the
// discrete event that the spike-routing layer delivers to connected
// units.
func (nr *Neuron) Step(i, dt float32) bool {
	pr := &nr.Params
	dv := (pr.K*(nr.Vm-pr.Vr)*(nr.Vm-pr.Vt) - nr.U + i) / pr.C
	du := pr.A * (pr.B*(nr.Vm-pr.Vr) - nr.U)
	nr.Vm += dt * dv
	nr.U += dt * du
	if nr.Vm >= pr.Vpeak {
		nr.Vm = pr.Cr
		nr.U += pr.D
		nr.Spike = true
		return true
	}
	nr.Spike = false
	return false
}
