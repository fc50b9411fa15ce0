// Copyright 2017 The Phaseflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package wf implements symbolic weak-form integrands over mixed function spaces
package wf

import (
	"github.com/cpmech/gosl/chk"
)

// State holds the values and gradients of named fields at one evaluation
// point; e.g. interpolated solution and test-function values at an
// integration point. Gradients of scalar fields are [ndim] vectors and
// gradients of vector fields are [ndim][ndim] matrices with G[i][j] = ∂v_i/∂x_j.
type State struct {
	Ndim    int                    // space dimension
	scalars map[string]float64     // scalar field values
	sgrads  map[string][]float64   // gradients of scalar fields
	vectors map[string][]float64   // vector field values
	vgrads  map[string][][]float64 // gradients of vector fields
}

// NewState returns a new state for ndim space dimensions
func NewState(ndim int) *State {
	return &State{
		Ndim:    ndim,
		scalars: make(map[string]float64),
		sgrads:  make(map[string][]float64),
		vectors: make(map[string][]float64),
		vgrads:  make(map[string][][]float64),
	}
}

// SetScalar sets the value and (optionally) the gradient of a scalar field
func (o *State) SetScalar(name string, value float64, gradient []float64) *State {
	o.scalars[name] = value
	if gradient != nil {
		if len(gradient) != o.Ndim {
			chk.Panic("gradient of scalar field %q must have ndim=%d components (%d given)", name, o.Ndim, len(gradient))
		}
		o.sgrads[name] = gradient
	}
	return o
}

// SetVector sets the value and (optionally) the gradient of a vector field
func (o *State) SetVector(name string, value []float64, gradient [][]float64) *State {
	if len(value) != o.Ndim {
		chk.Panic("vector field %q must have ndim=%d components (%d given)", name, o.Ndim, len(value))
	}
	o.vectors[name] = value
	if gradient != nil {
		if len(gradient) != o.Ndim {
			chk.Panic("gradient of vector field %q must have ndim=%d rows (%d given)", name, o.Ndim, len(gradient))
		}
		o.vgrads[name] = gradient
	}
	return o
}

// accessors; missing fields indicate a misuse of the form, not a runtime condition

// Scalar returns the value of a scalar field
func (o *State) Scalar(name string) float64 {
	v, ok := o.scalars[name]
	if !ok {
		chk.Panic("scalar field %q is not set in state", name)
	}
	return v
}

// ScalarGrad returns the gradient of a scalar field
func (o *State) ScalarGrad(name string) []float64 {
	g, ok := o.sgrads[name]
	if !ok {
		chk.Panic("gradient of scalar field %q is not set in state", name)
	}
	return g
}

// Vector returns the value of a vector field
func (o *State) Vector(name string) []float64 {
	v, ok := o.vectors[name]
	if !ok {
		chk.Panic("vector field %q is not set in state", name)
	}
	return v
}

// VectorGrad returns the gradient of a vector field
func (o *State) VectorGrad(name string) [][]float64 {
	g, ok := o.vgrads[name]
	if !ok {
		chk.Panic("gradient of vector field %q is not set in state", name)
	}
	return g
}
