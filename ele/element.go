// Copyright 2017 The Phaseflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements finite-element descriptions and governing forms
// consumed by the external finite-element engine
package ele

import (
	"github.com/HwayGuo/phaseflow-fenics/wf"
)

// Element defines what all model-definition elements must implement.
// The external engine calls UpdateElement then UpdateGoverningForm during
// setup and before each assembly cycle; the element only parameterizes the
// problem and emits its mixed-element description and residual form.
type Element interface {
	UpdateElement() error       // (re)builds the mixed finite-element description
	UpdateGoverningForm() error // (re)builds the symbolic residual form
	Elem() *Mixed               // mixed finite-element description
	Form() wf.Scalar            // governing form (residual integrand)
}
