// Copyright 2017 The Phaseflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ele

import (
	"github.com/cpmech/gosl/io"
)

// FiniteElement describes one sub-element of a mixed space
type FiniteElement struct {
	Family string // element family; e.g. "P" (Lagrange)
	Degree int    // polynomial degree
	Ncomp  int    // number of components; 1 for scalar fields
}

// String returns a representation such as "P2" or "P2^2"
func (o FiniteElement) String() string {
	if o.Ncomp > 1 {
		return io.Sf("%s%d^%d", o.Family, o.Degree, o.Ncomp)
	}
	return io.Sf("%s%d", o.Family, o.Degree)
}

// Mixed describes the mixed finite element combining scalar pressure,
// vector velocity and scalar temperature sub-elements
type Mixed struct {
	P FiniteElement // pressure sub-element
	U FiniteElement // velocity sub-element
	T FiniteElement // temperature sub-element
}

// NewTaylorHood returns a mixed element with the velocity degree set to
// pdeg+1 so that the velocity-pressure pair satisfies the inf-sup (LBB)
// condition. The +1 offset is a fixed design invariant, not configurable.
func NewTaylorHood(ndim, pdeg, tdeg int) *Mixed {
	return &Mixed{
		P: FiniteElement{"P", pdeg, 1},
		U: FiniteElement{"P", pdeg + 1, ndim},
		T: FiniteElement{"P", tdeg, 1},
	}
}

// String returns a representation such as "Mixed[P1, P2^2, P1]"
func (o Mixed) String() string {
	return io.Sf("Mixed[%s, %s, %s]", o.P.String(), o.U.String(), o.T.String())
}
