// Copyright 2017 The Phaseflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem wraps the model definition for consumption by the external
// finite-element engine
package fem

import (
	"github.com/HwayGuo/phaseflow-fenics/ele"
	"github.com/HwayGuo/phaseflow-fenics/ele/phasechange"
	"github.com/HwayGuo/phaseflow-fenics/inp"
	"github.com/HwayGuo/phaseflow-fenics/wf"
)

// Simulation is the base simulation abstraction. It owns the input data
// and the model-definition element; mesh, function spaces, assembly and
// solves belong to the external engine, which reads the element and form
// through the accessors below.
type Simulation struct {
	Inp *inp.Simulation // input data
	Ele ele.Element     // model-definition element
}

// NewSimulation reads a .sim file and allocates the model-definition
// element through the registry
func NewSimulation(dir, fn string) (o *Simulation, err error) {
	o = new(Simulation)
	o.Inp, err = inp.ReadSim(dir, fn)
	if err != nil {
		return nil, err
	}
	o.Ele, err = ele.New("phasechange", o.Inp)
	if err != nil {
		return nil, err
	}
	return
}

// Setup updates the element description and the governing form; the
// external engine calls this during setup and whenever parameters or the
// bound solution state change
func (o *Simulation) Setup() (err error) {
	err = o.Ele.UpdateElement()
	if err != nil {
		return
	}
	return o.Ele.UpdateGoverningForm()
}

// Element returns the mixed finite-element description
func (o *Simulation) Element() *ele.Mixed { return o.Ele.Elem() }

// GoverningForm returns the residual integrand
func (o *Simulation) GoverningForm() wf.Scalar { return o.Ele.Form() }

// ResidualAt evaluates the residual integrand at one evaluation point
func (o *Simulation) ResidualAt(s *wf.State) float64 {
	return o.Ele.Form().Eval(s)
}

// SemiPhasefieldMapping returns the temperature => solid fraction mapping
// for post-processing; e.g. computing melt fraction from a temperature field
func (o *Simulation) SemiPhasefieldMapping() func(T float64) float64 {
	if e, ok := o.Ele.(*phasechange.PhaseChange); ok {
		return e.SemiPhasefieldMapping
	}
	return nil
}

// ReferenceState returns a state with all solution and test fields set to
// zero; e.g. for engine spot-checks and regression tests
func ReferenceState(ndim int) *wf.State {
	z := make([]float64, ndim)
	zz := make([][]float64, ndim)
	for i := 0; i < ndim; i++ {
		zz[i] = make([]float64, ndim)
	}
	s := wf.NewState(ndim)
	for _, name := range []string{"p", "T", "T_n", "psi_p", "psi_T"} {
		s.SetScalar(name, 0, z)
	}
	for _, name := range []string{"u", "u_n", "psi_u"} {
		s.SetVector(name, z, zz)
	}
	return s
}
