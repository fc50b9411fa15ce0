// Copyright 2017 The Phaseflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/HwayGuo/phaseflow-fenics/mdl/phasechange"
	"github.com/cpmech/gosl/chk"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Matfile string `json:"matfile"` // materials file path; "" => use example octadecane material
	Mat     string `json:"mat"`     // name of phase-change material
	DirOut  string `json:"dirout"`  // directory for output; e.g. /tmp/phaseflow
	Steady  bool   `json:"steady"`  // steady simulation; drops time-derivative terms
}

// EqsData holds the physical and numerical constants of the governing
// equations. The defaults correspond to the reference octadecane-like
// setup with unit dimensionless numbers.
type EqsData struct {
	Dt      float64   `json:"dt"`      // timestep size
	Ra      float64   `json:"ra"`      // Rayleigh number
	Pr      float64   `json:"pr"`      // Prandtl number
	Ste     float64   `json:"ste"`     // Stefan number
	Gravity []float64 `json:"gravity"` // gravity vector; length sets the space dimension
	Penalty float64   `json:"penalty"` // pressure penalty parameter γ
	Pdeg    int       `json:"pdeg"`    // pressure element degree
	Tdeg    int       `json:"tdeg"`    // temperature element degree
}

// Simulation holds all simulation input data
type Simulation struct {

	// input
	Data Data    `json:"data"` // global data
	Eqs  EqsData `json:"eqs"`  // governing-equations data

	// derived
	DirIn    string            // directory where the .sim file is located
	MatModel phasechange.Model // material model resolved from the materials database
}

// NewSimulation returns a simulation with default (octadecane-like) data
// and the example constant-properties material
func NewSimulation() (o *Simulation) {
	o = &Simulation{
		Data: Data{
			Desc:   "phase-change of a constant-property material",
			Mat:    "octadecane",
			DirOut: "/tmp/phaseflow",
		},
		Eqs: EqsData{
			Dt:      1.0,
			Ra:      1.0,
			Pr:      1.0,
			Ste:     1.0,
			Gravity: []float64{0, -1},
			Penalty: 1e-7,
			Pdeg:    1,
			Tdeg:    1,
		},
	}
	return
}

// Ndim returns the space dimension, given by the gravity vector
func (o *Simulation) Ndim() int { return len(o.Eqs.Gravity) }

// ReadSim reads a simulation file and resolves the material model.
// Physical values are not validated; degenerate regimes surface only as
// numerical failures in the external engine.
func ReadSim(dir, fn string) (o *Simulation, err error) {

	// new simulation with default values
	o = NewSimulation()
	o.DirIn = dir

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", fn, err)
	}

	// decode
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q:\n%v", fn, err)
	}

	// material model
	if o.Data.Matfile == "" {
		o.MatModel, err = phasechange.New("constprops")
		if err != nil {
			return nil, err
		}
		err = o.MatModel.Init(o.MatModel.GetPrms(true))
		return
	}
	mdb, err := ReadMat(dir, o.Data.Matfile)
	if err != nil {
		return nil, err
	}
	mat := mdb.Get(o.Data.Mat)
	if mat == nil {
		return nil, chk.Err("cannot find material %q in %q", o.Data.Mat, o.Data.Matfile)
	}
	o.MatModel = mat.Phc
	return
}
