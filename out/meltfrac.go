// Copyright 2017 The Phaseflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements post-processing of simulation results
package out

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate/quad"
)

// LiquidFraction returns the average liquid fraction 1-φ(T(x)) over the
// interval [xmin, xmax], with T the temperature profile and phi the
// semi-phase-field mapping. The integral uses n-point Gauss-Legendre
// quadrature.
func LiquidFraction(phi, T func(x float64) float64, xmin, xmax float64, n int) float64 {
	molten := quad.Fixed(func(x float64) float64 {
		return 1.0 - phi(T(x))
	}, xmin, xmax, n, nil, 0)
	return molten / (xmax - xmin)
}

// LiquidFractionSamples returns the average liquid fraction over sampled
// temperatures; e.g. temperatures interpolated at integration points
func LiquidFractionSamples(phi func(T float64) float64, temps []float64) float64 {
	liq := make([]float64, len(temps))
	for i, t := range temps {
		liq[i] = 1.0 - phi(t)
	}
	return floats.Sum(liq) / float64(len(liq))
}
