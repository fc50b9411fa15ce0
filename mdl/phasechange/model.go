// Copyright 2017 The Phaseflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phasechange implements material models for solid-liquid phase change
package phasechange

import (
	"github.com/cpmech/gosl/chk"
)

// Model defines phase-change material models. Temperatures are
// dimensionless, scaled the same way as the governing equations.
type Model interface {
	Init(prms Params) error      // Init initialises this structure
	GetPrms(example bool) Params // gets (an example) of parameters
	Phi(T float64) float64           // Phi returns the solid phase fraction at temperature T
	DphiDT(T float64) float64        // DphiDT returns ∂φ/∂T
	Mu(T float64) float64            // Mu returns the effective viscosity at temperature T
	DmuDT(T float64) float64         // DmuDT returns ∂μ/∂T
}

// New phase-change model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'phasechange' database", name)
	}
	return allocator(), nil
}

// allocators holds all available models
var allocators = map[string]func() Model{}
