// Copyright (c) 2026, The NetPyne Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cortex

import (
	"fmt"

	"github.com/jingxlim/netpyne/labels"
)

///////////////////////////////////////////////////////////////////////
//  params.go contains all the parameters governing network generation

// ConfigError is a fatal configuration error: generation for the
// affected population or connection batch is abandoned and the error
// propagates to the Build caller.  It is never substituted with a
// default value.
type ConfigError struct {
	Msg string
}

func (ce *ConfigError) Error() string { return "config error: " + ce.Msg }

// Errorf constructs a ConfigError from a format string.
func Errorf(format string, args ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// SimParams are the global simulation-level parameters.
type SimParams struct {
	Scale      float32 `def:"1" desc:"size of simulation, in thousands of cells -- scales the model footprint"`
	Duration   float32 `def:"1000" desc:"duration of the simulation, in msec"`
	Dt         float32 `def:"0.5" desc:"internal integration timestep, in msec"`
	LoopStep   float32 `def:"10" desc:"step size in msec for the simulation loop"`
	ProgUpdate float32 `def:"5000" desc:"how frequently to update progress, in msec"`
	RandSeed   int     `def:"1" desc:"random seed -- all generation randomness derives deterministically from this"`
	Verbose    int     `def:"0" desc:"0 = quiet, 1 = diagnostic information on events, 2 = everything"`
}

func (sp *SimParams) Defaults() {
	sp.Scale = 1
	sp.Duration = 1000
	sp.Dt = 0.5
	sp.LoopStep = 10
	sp.ProgUpdate = 5000
	sp.RandSeed = 1
	sp.Verbose = 0
}

// PosParams are the geometric parameters of the model volume.
type PosParams struct {
	ColumnSize    float32 `def:"1000" desc:"footprint size in um per unit scale (~1000 neurons per column of 500 um width)"`
	CorticalThick float32 `def:"1740" desc:"cortical thickness in um -- scales depth fractions into um"`
	CortThalDist  float32 `def:"3000" desc:"distance from thalamic relay nucleus to cortex in um"`
	Sparseness    float32 `def:"1" desc:"fraction of cells represented -- num neurons = density * volume * sparseness"`

	ModelSize float32 `inactive:"+" desc:"size of network footprint in um = ColumnSize * Scale"`
}

func (pp *PosParams) Defaults() {
	pp.ColumnSize = 1000
	pp.CorticalThick = 1740
	pp.CortThalDist = 3000
	pp.Sparseness = 1
}

// Update sets the derived footprint size for the given simulation scale.
func (pp *PosParams) Update(scale float32) {
	pp.ModelSize = pp.ColumnSize * scale
}

// ConnParams govern the probabilistic connectivity generation:
// delay composition, E/I class-pair scale matrices, and the
// distance falloff constants.
type ConnParams struct {
	MinDelay  float32 `def:"2" desc:"minimum connection delay, in msec"`
	Velocity  float32 `def:"100" desc:"conduction velocity in um/msec"`
	Toroidal  bool    `def:"false" desc:"whether to use toroidal (wrap-around) topology for planar distances"`
	ProbScale float32 `def:"200" desc:"overall connection probability scale -- divided by Scale since footprint is fixed"`
	WtScale   float32 `def:"4" desc:"overall connection weight scale multiplying the E/I weight matrix"`

	ProbEI     [labels.EorIN][labels.EorIN]float32 `desc:"relative connection probabilities for EE, EI, IE, II pairs (pre x post)"`
	WtEI       [labels.EorIN][labels.EorIN]float32 `desc:"relative connection weights for EE, EI, IE, II pairs (pre x post)"`
	Falloff    [labels.EorIN]float32               `desc:"connection length constants in um for E and I presynaptic cells"`
	ReceptorWt [labels.ReceptorsN]float32          `desc:"weight scale factor per synaptic receptor"`

	UseProbData bool `def:"true" desc:"use graded connectivity probability data -- false converts table values to binary yes/no"`
	UseWtData   bool `def:"true" desc:"use graded connectivity weight data -- false converts table values to binary yes/no"`

	ScaleConnProb [labels.EorIN][labels.EorIN]float32 `inactive:"+" desc:"derived ProbScale/Scale * ProbEI"`
	ScaleConnWt   [labels.EorIN][labels.EorIN]float32 `inactive:"+" desc:"derived WtScale * WtEI"`
}

func (cp *ConnParams) Defaults() {
	cp.MinDelay = 2
	cp.Velocity = 100
	cp.Toroidal = false
	cp.ProbScale = 200
	cp.WtScale = 4
	cp.ProbEI = [labels.EorIN][labels.EorIN]float32{{1, 1}, {1, 1}}
	cp.WtEI = [labels.EorIN][labels.EorIN]float32{{2, 1}, {2, 0.1}}
	cp.Falloff = [labels.EorIN]float32{200, 300}
	for r := range cp.ReceptorWt {
		cp.ReceptorWt[r] = 1
	}
	cp.UseProbData = true
	cp.UseWtData = true
}

// Update computes the derived scale matrices for the given simulation scale.
func (cp *ConnParams) Update(scale float32) {
	for pre := range cp.ProbEI {
		for post := range cp.ProbEI[pre] {
			cp.ScaleConnProb[pre][post] = cp.ProbScale / scale * cp.ProbEI[pre][post]
			cp.ScaleConnWt[pre][post] = cp.WtScale * cp.WtEI[pre][post]
		}
	}
}

// BackgroundParams describe the independent background spike-train
// input driving every cell.
type BackgroundParams struct {
	On       bool                  `def:"true" desc:"whether to drive cells with background stimuli"`
	Rate     float32               `def:"100" desc:"rate of background stimuli, in Hz"`
	RateMin  float32               `def:"0.1" desc:"minimum background rate, in Hz"`
	Number   float32               `def:"1e10" desc:"number of background spikes"`
	Noise    float32               `def:"1" desc:"fractional noise in background spike timing"`
	Weight   [labels.EorIN]float32 `desc:"background input weight for E and I cells"`
	Receptor labels.Receptors      `desc:"receptor channel that background input stimulates"`
}

func (bp *BackgroundParams) Defaults() {
	bp.On = true
	bp.Rate = 100
	bp.RateMin = 0.1
	bp.Number = 1e10
	bp.Noise = 1
	bp.Weight = [labels.EorIN]float32{2, 0.2}
	bp.Receptor = labels.NMDA
}

// STDPParams govern spike-timing dependent plasticity on realized
// connections (consumed by the simulation engine, not by generation).
type STDPParams struct {
	On        bool    `def:"true" desc:"whether to use STDP"`
	Factor    float32 `def:"0.001" desc:"multiplier applied to the potentiation / depression rates"`
	Window    float32 `def:"10" desc:"length of the STDP window, in msec"`
	MaxWt     float32 `def:"50" desc:"maximum synaptic weight"`
	SaveEvery float32 `def:"5000" desc:"msec between saving weight changes -- cannot be smaller than LoopStep"`

	PotDep [labels.EorIN][2]float32 `desc:"potentiation (0) and depression (1) base rates for E and I presynaptic cells"`

	Rates [labels.EorIN][2]float32 `inactive:"+" desc:"derived Factor * PotDep"`
}

func (tp *STDPParams) Defaults() {
	tp.On = true
	tp.Factor = 0.001
	tp.Window = 10
	tp.MaxWt = 50
	tp.SaveEvery = 5000
	tp.PotDep = [labels.EorIN][2]float32{{1, -1.3}, {0, 0}}
	tp.Update()
}

// Update must be called after any changes to parameters.
func (tp *STDPParams) Update() {
	for ei := range tp.PotDep {
		tp.Rates[ei][0] = tp.Factor * tp.PotDep[ei][0]
		tp.Rates[ei][1] = tp.Factor * tp.PotDep[ei][1]
	}
}

// Params collects all the parameters consumed by network generation.
// It is constructed once, validated, and treated as read-only by every
// component thereafter.
type Params struct {
	Sim  SimParams        `view:"inline" desc:"global simulation parameters"`
	Pos  PosParams        `view:"inline" desc:"geometry of the model volume"`
	Conn ConnParams       `view:"inline" desc:"connectivity generation parameters"`
	Back BackgroundParams `view:"inline" desc:"background input parameters"`
	STDP STDPParams       `view:"inline" desc:"spike-timing dependent plasticity parameters"`
}

func (pr *Params) Defaults() {
	pr.Sim.Defaults()
	pr.Pos.Defaults()
	pr.Conn.Defaults()
	pr.Back.Defaults()
	pr.STDP.Defaults()
	pr.Update()
}

// Update must be called after any changes to parameters, to recompute
// all derived values.
func (pr *Params) Update() {
	pr.Pos.Update(pr.Sim.Scale)
	pr.Conn.Update(pr.Sim.Scale)
	pr.STDP.Update()
}

// Validate fails fast on malformed parameter combinations.
func (pr *Params) Validate() error {
	if pr.Sim.Scale <= 0 {
		return Errorf("Sim.Scale must be > 0, got %g", pr.Sim.Scale)
	}
	if pr.Sim.Dt <= 0 {
		return Errorf("Sim.Dt must be > 0, got %g", pr.Sim.Dt)
	}
	if pr.Conn.MinDelay < 0 {
		return Errorf("Conn.MinDelay must be >= 0, got %g", pr.Conn.MinDelay)
	}
	if pr.Conn.Velocity <= 0 {
		return Errorf("Conn.Velocity must be > 0, got %g", pr.Conn.Velocity)
	}
	if pr.Pos.ModelSize <= 0 {
		return Errorf("Pos.ModelSize must be > 0 (call Update after setting Scale), got %g", pr.Pos.ModelSize)
	}
	if pr.Pos.CorticalThick <= 0 {
		return Errorf("Pos.CorticalThick must be > 0, got %g", pr.Pos.CorticalThick)
	}
	return nil
}
