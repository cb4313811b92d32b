// Copyright (c) 2026, The NetPyne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package labels defines the fixed symbolic labels of the cortical model
as dense integer enums: synaptic receptor channels, excitatory vs.
inhibitory class, cell top-level class, cell sub-class, and cell model
kind.  The values within each axis are contiguous from 0 and are used
directly as indices into the class-pair probability and weight tables
in the cortex package, so the N constant of each axis gives the exact
table dimension.
*/
package labels

import (
	"github.com/goki/ki/kit"
)

// Receptors are the synaptic receptor channel types.  Every connection
// carries one weight per receptor.
type Receptors int

const (
	AMPA Receptors = iota
	NMDA
	GABAA
	GABAB
	Opsin

	ReceptorsN
)

var KiT_Receptors = kit.Enums.AddEnum(ReceptorsN, false, nil)

func (ev Receptors) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Receptors) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// EorI distinguishes excitatory from inhibitory cells and populations.
// It indexes the 2x2 connection scale matrices.
type EorI int

const (
	E EorI = iota
	I

	EorIN
)

var KiT_EorI = kit.Enums.AddEnum(EorIN, false, nil)

func (ev EorI) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *EorI) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// TopClass is the top-level cell / population class, following the
// Harrison & Shepherd projection-neuron taxonomy plus the two main
// interneuron families.
type TopClass int

const (
	// IT are intratelencephalic projection neurons.
	IT TopClass = iota

	// PT are pyramidal tract projection neurons.
	PT

	// CT are corticothalamic projection neurons.
	CT

	// HTR are high-order thalamus-recipient neurons.
	HTR

	// Pva are parvalbumin-expressing (fast spiking) interneurons.
	Pva

	// Sst are somatostatin-expressing (low-threshold spiking) interneurons.
	Sst

	TopClassN
)

var KiT_TopClass = kit.Enums.AddEnum(TopClassN, false, nil)

func (ev TopClass) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *TopClass) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// SubClass is the finer-grained cell sub-class within a TopClass.
type SubClass int

const (
	L4 SubClass = iota
	Other
	Vip
	Nglia
	Basket
	Chand
	Marti
	L4Sst

	SubClassN
)

var KiT_SubClass = kit.Enums.AddEnum(SubClassN, false, nil)

func (ev SubClass) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *SubClass) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// CellModels are the kinds of simulatable cell model that can be
// instantiated for a cell.
type CellModels int

const (
	// Izhi2007 is the Izhikevich 2007 point-process neuron.
	Izhi2007 CellModels = iota

	// Friesen is the Friesen spiking cell model.
	Friesen

	// HH is a multi-compartment Hodgkin-Huxley cell model.
	HH

	CellModelsN
)

var KiT_CellModels = kit.Enums.AddEnum(CellModelsN, false, nil)

func (ev CellModels) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *CellModels) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }
