// Copyright 2017 The Phaseflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for verification
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Stefan computes the analytical solution of the one-phase Stefan problem:
// a semi-infinite solid at the melting temperature T=0 melts under a hot
// wall held at T=1. The melting front position is
//
//   X(t) = 2・λ・√t
//
// where λ solves the transcendental equation
//
//   λ・exp(λ²)・erf(λ) = Ste/√π
//
// Lengths and times are dimensionless with unit thermal diffusivity.
type Stefan struct {
	Ste float64 // Stefan number
	Lam float64 // root of the transcendental equation
}

// Init initialises this structure by solving the transcendental equation
// with bisection; the left-hand side is monotone increasing in λ
func (o *Stefan) Init(ste float64) {
	if ste <= 0 {
		chk.Panic("Stefan number must be positive (%g given)", ste)
	}
	o.Ste = ste
	f := func(lam float64) float64 {
		return lam*math.Exp(lam*lam)*math.Erf(lam) - ste/math.SqrtPi
	}
	a, b := 0.0, 10.0
	for i := 0; i < 200; i++ {
		m := (a + b) / 2.0
		if f(m) > 0 {
			b = m
		} else {
			a = m
		}
	}
	o.Lam = (a + b) / 2.0
}

// FrontPosition returns the position of the melting front at time t
func (o Stefan) FrontPosition(t float64) float64 {
	return 2.0 * o.Lam * math.Sqrt(t)
}

// Temperature returns the temperature at position x and time t > 0
func (o Stefan) Temperature(x, t float64) float64 {
	if x >= o.FrontPosition(t) {
		return 0
	}
	return 1.0 - math.Erf(x/(2.0*math.Sqrt(t)))/math.Erf(o.Lam)
}
