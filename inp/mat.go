// Copyright 2017 The Phaseflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/HwayGuo/phaseflow-fenics/mdl/phasechange"
	"github.com/cpmech/gosl/chk"
)

// Material holds material data
type Material struct {

	// input
	Name  string             `json:"name"`  // name of material
	Type  string             `json:"type"`  // type of material; e.g. "phasechange"
	Model string             `json:"model"` // name of model; e.g. "constprops"
	Prms  phasechange.Params `json:"prms"`  // prms holds all model parameters for this material

	// derived
	Phc phasechange.Model // pointer to actual phase-change model
}

// MatsData holds materials
type MatsData []*Material

// MatDb implements a database of materials
type MatDb struct {

	// input
	Materials MatsData `json:"materials"` // all materials

	// derived
	PhaseChanges map[string]*Material // subset with materials/models: phase change
}

// Get returns a material by name; nil means not found
func (o *MatDb) Get(name string) *Material {
	return o.PhaseChanges[name]
}

// ReadMat reads all materials data from a .mat JSON file
func ReadMat(dir, fn string) (mdb *MatDb, err error) {

	// new database
	mdb = new(MatDb)

	// read file
	b, err := os.ReadFile(filepath.Join(dir, fn))
	if err != nil {
		return nil, chk.Err("cannot read materials file %q:\n%v", fn, err)
	}

	// decode
	err = json.Unmarshal(b, mdb)
	if err != nil {
		return nil, chk.Err("cannot unmarshal materials file %q:\n%v", fn, err)
	}

	// subsets
	mdb.PhaseChanges = make(map[string]*Material)
	for _, m := range mdb.Materials {
		switch m.Type {
		case "phasechange":
			mdb.PhaseChanges[m.Name] = m
		default:
			return nil, chk.Err("material type %q is incorrect; the only option is \"phasechange\"", m.Type)
		}
	}

	// alloc/init models
	for _, m := range mdb.PhaseChanges {
		m.Phc, err = phasechange.New(m.Model)
		if err != nil {
			return
		}
		err = m.Phc.Init(m.Prms)
		if err != nil {
			return
		}
	}
	return
}
