// Copyright 2017 The Phaseflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phasechange

import (
	"math"
)

// ConstProps implements a pure material with constant properties in each
// phase; e.g. octadecane. The solid-liquid interface is regularized by a
// semi-phase-field mapping from temperature to solid fraction
//
//   φ(T) = (1 + tanh((Tr - T)/r)) / 2
//
// and the effective viscosity blends the liquid and solid values
//
//   μ(T) = μl + (μs - μl)・φ(T)
//
// where the large solid viscosity acts as a Darcy-like penalization
// suppressing velocity in the solid region.
type ConstProps struct {
	MuL    float64 // liquid viscosity
	MuS    float64 // solid viscosity (penalization)
	Tr     float64 // regularization central temperature (melting point)
	Smooth float64 // regularization smoothing width
}

// add model to factory
func init() {
	allocators["constprops"] = func() Model { return new(ConstProps) }
}

// Init initialises this structure
func (o *ConstProps) Init(prms Params) (err error) {
	o.MuL = 1.0
	o.MuS = 1e8
	o.Tr = 0.0
	o.Smooth = 0.01
	for _, p := range prms {
		switch p.N {
		case "mul":
			o.MuL = p.V
		case "mus":
			o.MuS = p.V
		case "tmelt":
			o.Tr = p.V
		case "smooth":
			o.Smooth = p.V
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o ConstProps) GetPrms(example bool) Params {
	if example {
		return Params{
			&P{N: "mul", V: 1.0},
			&P{N: "mus", V: 1e8},
			&P{N: "tmelt", V: 0.0},
			&P{N: "smooth", V: 0.01},
		}
	}
	return Params{
		&P{N: "mul", V: o.MuL},
		&P{N: "mus", V: o.MuS},
		&P{N: "tmelt", V: o.Tr},
		&P{N: "smooth", V: o.Smooth},
	}
}

// Phi returns the solid phase fraction at temperature T
func (o ConstProps) Phi(T float64) float64 {
	return (1.0 + math.Tanh((o.Tr-T)/o.Smooth)) / 2.0
}

// DphiDT returns ∂φ/∂T
func (o ConstProps) DphiDT(T float64) float64 {
	t := math.Tanh((o.Tr - T) / o.Smooth)
	return -(1.0 - t*t) / (2.0 * o.Smooth)
}

// MuOfPhi returns the effective viscosity for a given solid fraction
func (o ConstProps) MuOfPhi(phi float64) float64 {
	return o.MuL + (o.MuS-o.MuL)*phi
}

// Mu returns the effective viscosity at temperature T
func (o ConstProps) Mu(T float64) float64 {
	return o.MuOfPhi(o.Phi(T))
}

// DmuDT returns ∂μ/∂T
func (o ConstProps) DmuDT(T float64) float64 {
	return (o.MuS - o.MuL) * o.DphiDT(T)
}
