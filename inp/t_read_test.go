// Copyright 2017 The Phaseflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/HwayGuo/phaseflow-fenics/mdl/phasechange"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_sim01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim01. read octadecane simulation")

	sim, err := ReadSim("data", "octadecane.sim")
	if err != nil {
		tst.Errorf("cannot read simulation file:\n%v", err)
		return
	}
	io.Pforan("desc = %v\n", sim.Data.Desc)

	chk.IntAssert(sim.Ndim(), 2)
	chk.Float64(tst, "dt", 1e-15, sim.Eqs.Dt, 10.0)
	chk.Float64(tst, "Ra", 1e-15, sim.Eqs.Ra, 3.27e5)
	chk.Float64(tst, "Pr", 1e-15, sim.Eqs.Pr, 56.2)
	chk.Float64(tst, "Ste", 1e-15, sim.Eqs.Ste, 0.045)
	chk.Array(tst, "gravity", 1e-15, sim.Eqs.Gravity, []float64{0, -1})
	chk.Float64(tst, "penalty", 1e-15, sim.Eqs.Penalty, 1e-7)
	chk.IntAssert(sim.Eqs.Pdeg, 1)
	chk.IntAssert(sim.Eqs.Tdeg, 1)

	// material model resolved from octadecane.mat
	m, ok := sim.MatModel.(*phasechange.ConstProps)
	if !ok {
		tst.Errorf("material model was not resolved\n")
		return
	}
	chk.Float64(tst, "mul", 1e-15, m.MuL, 1.0)
	chk.Float64(tst, "mus", 1e-15, m.MuS, 1e8)
	chk.Float64(tst, "tmelt", 1e-15, m.Tr, 0.01)
	chk.Float64(tst, "smooth", 1e-15, m.Smooth, 0.025)
}

func Test_sim02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sim02. defaults for absent values")

	sim, err := ReadSim("data", "defaults.sim")
	if err != nil {
		tst.Errorf("cannot read simulation file:\n%v", err)
		return
	}

	chk.Float64(tst, "dt", 1e-15, sim.Eqs.Dt, 1.0)
	chk.Float64(tst, "Ra", 1e-15, sim.Eqs.Ra, 1.0)
	chk.Float64(tst, "Pr", 1e-15, sim.Eqs.Pr, 1.0)
	chk.Float64(tst, "Ste", 1e-15, sim.Eqs.Ste, 1.0)
	chk.Array(tst, "gravity", 1e-15, sim.Eqs.Gravity, []float64{0, -1})
	chk.Float64(tst, "penalty", 1e-15, sim.Eqs.Penalty, 1e-7)
	chk.IntAssert(sim.Eqs.Pdeg, 1)
	chk.IntAssert(sim.Eqs.Tdeg, 1)
	if sim.Data.Steady {
		tst.Errorf("simulations are transient by default\n")
		return
	}

	// no matfile => example octadecane-like material
	m, ok := sim.MatModel.(*phasechange.ConstProps)
	if !ok {
		tst.Errorf("material model was not resolved\n")
		return
	}
	chk.Float64(tst, "mul", 1e-15, m.MuL, 1.0)
	chk.Float64(tst, "mus", 1e-15, m.MuS, 1e8)
	chk.Float64(tst, "tmelt", 1e-15, m.Tr, 0.0)
	chk.Float64(tst, "smooth", 1e-15, m.Smooth, 0.01)
}

func Test_mat01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mat01. materials database")

	mdb, err := ReadMat("data", "octadecane.mat")
	if err != nil {
		tst.Errorf("cannot read materials file:\n%v", err)
		return
	}

	mat := mdb.Get("octadecane")
	if mat == nil {
		tst.Errorf("cannot find octadecane material\n")
		return
	}
	chk.String(tst, mat.Model, "constprops")
	if mat.Phc == nil {
		tst.Errorf("material model was not allocated\n")
		return
	}

	if mdb.Get("nonexistent") != nil {
		tst.Errorf("Get should return nil for missing materials\n")
		return
	}

	_, err = ReadMat("data", "nonexistent.mat")
	if err == nil {
		tst.Errorf("ReadMat should fail for missing files\n")
		return
	}
}
