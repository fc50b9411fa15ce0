// Copyright 2017 The Phaseflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/HwayGuo/phaseflow-fenics/fem"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.Pfred("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".sim", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.Pf("\nPhaseflow -- phase-change model definition\n")
		io.Pf("Copyright 2017 The Phaseflow Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// simulation setup
	dir := filepath.Dir(fnamepath)
	fn := filepath.Base(fnamepath)
	sim, err := fem.NewSimulation(dir, fn)
	if err != nil {
		chk.Panic("cannot create simulation:\n%v", err)
	}
	err = sim.Setup()
	if err != nil {
		chk.Panic("setup failed:\n%v", err)
	}

	// report model definition
	if verbose {
		io.Pfyel("description = %v\n", sim.Inp.Data.Desc)
		io.Pf("element     = %v\n", sim.Element())
		io.Pf("form        = %v\n", sim.GoverningForm())
		io.Pf("residual @ zero state = %v\n", sim.ResidualAt(fem.ReferenceState(sim.Inp.Ndim())))
	}
}
