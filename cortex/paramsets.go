// Copyright (c) 2026, The NetPyne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortex

import (
	"log"

	"github.com/emer/emergent/params"
)

// ParamSets are the named parameter style sheets for the standard model
// variants.  Base is always applied first; a variant set is applied on
// top of it.
var ParamSets = params.Sets{
	{Name: "Base", Desc: "default M1 microcircuit generation parameters", Sheets: params.Sheets{
		"Sim": &params.Sheet{
			{Sel: "Params", Desc: "defaults are set in code; nothing to override",
				Params: params.Params{}},
		},
	}},
	{Name: "Toroidal", Desc: "periodic footprint -- no edge effects in connectivity", Sheets: params.Sheets{
		"Sim": &params.Sheet{
			{Sel: "Params", Desc: "wrap-around planar distances",
				Params: params.Params{
					"Params.Conn.Toroidal": "true",
				}},
		},
	}},
	{Name: "Binary", Desc: "binary yes/no connectivity instead of graded data", Sheets: params.Sheets{
		"Sim": &params.Sheet{
			{Sel: "Params", Desc: "collapse prob and weight tables to indicators",
				Params: params.Params{
					"Params.Conn.UseProbData": "false",
					"Params.Conn.UseWtData":   "false",
				}},
		},
	}},
	{Name: "NoSTDP", Desc: "plasticity disabled", Sheets: params.Sheets{
		"Sim": &params.Sheet{
			{Sel: "Params", Desc: "static weights",
				Params: params.Params{
					"Params.STDP.On": "false",
				}},
		},
	}},
}

// ApplyParams applies the named parameter set from ParamSets to this
// network's Params, then recomputes derived values.  If setMsg is true,
// a message is printed for each parameter that is set.
func (nt *Network) ApplyParams(setNm string, setMsg bool) error {
	pset, err := ParamSets.SetByNameTry(setNm)
	if err != nil {
		log.Println(err)
		return err
	}
	if simp, ok := pset.Sheets["Sim"]; ok {
		simp.Apply(&nt.Params, setMsg)
	}
	nt.Params.Update()
	return nil
}
