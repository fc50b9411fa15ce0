// Copyright 2017 The Phaseflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wf

import (
	"github.com/cpmech/gosl/chk"
)

// Vector is a vector-valued symbolic expression
type Vector interface {
	Eval(s *State) []float64 // Eval computes the value at the given state
	String() string          // String returns the symbolic representation
}

// Tensor is a (second-order) tensor-valued symbolic expression
type Tensor interface {
	Eval(s *State) [][]float64 // Eval computes the value at the given state
	String() string            // String returns the symbolic representation
}

// V returns a reference to the named vector field; e.g. V("u")
func V(name string) Vector { return vecField(name) }

type vecField string

func (o vecField) Eval(s *State) []float64 { return s.Vector(string(o)) }
func (o vecField) String() string          { return string(o) }

// CV returns a named constant vector; e.g. CV("g", []float64{0, -1})
func CV(name string, v []float64) Vector { return cnstVec{name, v} }

type cnstVec struct {
	name string
	v    []float64
}

func (o cnstVec) Eval(s *State) []float64 {
	if len(o.v) != s.Ndim {
		chk.Panic("constant vector %q has %d components but ndim=%d", o.name, len(o.v), s.Ndim)
	}
	return o.v
}

func (o cnstVec) String() string { return o.name }

// Grad returns the gradient of the named scalar field; e.g. Grad("T")
func Grad(name string) Vector { return gradS(name) }

type gradS string

func (o gradS) Eval(s *State) []float64 { return s.ScalarGrad(string(o)) }
func (o gradS) String() string          { return "grad(" + string(o) + ")" }

// Scale returns the product of a scalar expression and a vector expression
func Scale(a Scalar, v Vector) Vector { return scale{a, v} }

type scale struct {
	a Scalar
	v Vector
}

func (o scale) Eval(s *State) []float64 {
	a, v := o.a.Eval(s), o.v.Eval(s)
	res := make([]float64, len(v))
	for i := 0; i < len(v); i++ {
		res[i] = a * v[i]
	}
	return res
}

func (o scale) String() string { return "(" + o.a.String() + "*" + o.v.String() + ")" }

// AddV returns the sum of two vector expressions
func AddV(a, b Vector) Vector { return addV{a, b} }

type addV struct{ a, b Vector }

func (o addV) Eval(s *State) []float64 {
	va, vb := o.a.Eval(s), o.b.Eval(s)
	res := make([]float64, len(va))
	for i := 0; i < len(va); i++ {
		res[i] = va[i] + vb[i]
	}
	return res
}

func (o addV) String() string { return "(" + o.a.String() + " + " + o.b.String() + ")" }

// SubV returns the difference of two vector expressions
func SubV(a, b Vector) Vector { return subV{a, b} }

type subV struct{ a, b Vector }

func (o subV) Eval(s *State) []float64 {
	va, vb := o.a.Eval(s), o.b.Eval(s)
	res := make([]float64, len(va))
	for i := 0; i < len(va); i++ {
		res[i] = va[i] - vb[i]
	}
	return res
}

func (o subV) String() string { return "(" + o.a.String() + " - " + o.b.String() + ")" }

// DotTV returns the tensor-vector product A・v; e.g. DotTV(GradV("u"), V("u"))
func DotTV(a Tensor, v Vector) Vector { return dotTV{a, v} }

type dotTV struct {
	a Tensor
	v Vector
}

func (o dotTV) Eval(s *State) []float64 {
	ta, vv := o.a.Eval(s), o.v.Eval(s)
	res := make([]float64, len(vv))
	for i := 0; i < len(vv); i++ {
		for j := 0; j < len(vv); j++ {
			res[i] += ta[i][j] * vv[j]
		}
	}
	return res
}

func (o dotTV) String() string { return "dot(" + o.a.String() + ", " + o.v.String() + ")" }

// GradV returns the gradient of the named vector field; e.g. GradV("u").
// Component (i,j) is ∂v_i/∂x_j.
func GradV(name string) Tensor { return gradV(name) }

type gradV string

func (o gradV) Eval(s *State) [][]float64 { return s.VectorGrad(string(o)) }
func (o gradV) String() string            { return "grad(" + string(o) + ")" }

// Sym returns the symmetric part of a tensor expression
func Sym(a Tensor) Tensor { return sym{a} }

type sym struct{ a Tensor }

func (o sym) Eval(s *State) [][]float64 {
	ta := o.a.Eval(s)
	n := len(ta)
	res := make([][]float64, n)
	for i := 0; i < n; i++ {
		res[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			res[i][j] = (ta[i][j] + ta[j][i]) / 2.0
		}
	}
	return res
}

func (o sym) String() string { return "sym(" + o.a.String() + ")" }
