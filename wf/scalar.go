// Copyright 2017 The Phaseflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wf

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/io"
)

// Scalar is a scalar-valued symbolic expression. String returns a
// deterministic rendering of the expression tree; two equal trees always
// render to the same text.
type Scalar interface {
	Eval(s *State) float64 // Eval computes the value at the given state
	String() string        // String returns the symbolic representation
}

// Num returns a plain number
func Num(v float64) Scalar { return num(v) }

type num float64

func (o num) Eval(s *State) float64 { return float64(o) }
func (o num) String() string        { return io.Sf("%g", float64(o)) }

// C returns a named constant; e.g. C("Ra", 3.27e5). The name is used when
// rendering the expression, keeping forms readable and regression-friendly.
func C(name string, v float64) Scalar { return cnst{name, v} }

type cnst struct {
	name string
	v    float64
}

func (o cnst) Eval(s *State) float64 { return o.v }
func (o cnst) String() string        { return o.name }

// S returns a reference to the named scalar field; e.g. S("T")
func S(name string) Scalar { return scalarField(name) }

type scalarField string

func (o scalarField) Eval(s *State) float64 { return s.Scalar(string(o)) }
func (o scalarField) String() string        { return string(o) }

// Add returns the sum of two or more scalar expressions
func Add(a, b Scalar, rest ...Scalar) Scalar {
	return add(append([]Scalar{a, b}, rest...))
}

type add []Scalar

func (o add) Eval(s *State) float64 {
	res := 0.0
	for _, t := range o {
		res += t.Eval(s)
	}
	return res
}

func (o add) String() string {
	parts := make([]string, len(o))
	for i, t := range o {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, " + ") + ")"
}

// Sub returns a - b
func Sub(a, b Scalar) Scalar { return sub{a, b} }

type sub struct{ a, b Scalar }

func (o sub) Eval(s *State) float64 { return o.a.Eval(s) - o.b.Eval(s) }
func (o sub) String() string        { return "(" + o.a.String() + " - " + o.b.String() + ")" }

// Mul returns the product of two or more scalar expressions
func Mul(a, b Scalar, rest ...Scalar) Scalar {
	return mul(append([]Scalar{a, b}, rest...))
}

type mul []Scalar

func (o mul) Eval(s *State) float64 {
	res := 1.0
	for _, t := range o {
		res *= t.Eval(s)
	}
	return res
}

func (o mul) String() string {
	parts := make([]string, len(o))
	for i, t := range o {
		parts[i] = t.String()
	}
	return "(" + strings.Join(parts, "*") + ")"
}

// Quo returns a / b
func Quo(a, b Scalar) Scalar { return quo{a, b} }

type quo struct{ a, b Scalar }

func (o quo) Eval(s *State) float64 { return o.a.Eval(s) / o.b.Eval(s) }
func (o quo) String() string        { return "(" + o.a.String() + "/" + o.b.String() + ")" }

// Neg returns -a
func Neg(a Scalar) Scalar { return neg{a} }

type neg struct{ a Scalar }

func (o neg) Eval(s *State) float64 { return -o.a.Eval(s) }
func (o neg) String() string        { return "(-" + o.a.String() + ")" }

// Tanh returns tanh(a)
func Tanh(a Scalar) Scalar { return tanh{a} }

type tanh struct{ a Scalar }

func (o tanh) Eval(s *State) float64 { return math.Tanh(o.a.Eval(s)) }
func (o tanh) String() string        { return "tanh(" + o.a.String() + ")" }

// Dot returns the dot product of two vector expressions
func Dot(a, b Vector) Scalar { return dot{a, b} }

type dot struct{ a, b Vector }

func (o dot) Eval(s *State) float64 {
	va, vb := o.a.Eval(s), o.b.Eval(s)
	res := 0.0
	for i := 0; i < len(va); i++ {
		res += va[i] * vb[i]
	}
	return res
}

func (o dot) String() string { return "dot(" + o.a.String() + ", " + o.b.String() + ")" }

// Inner returns the double-dot (Frobenius) product of two tensor expressions
func Inner(a, b Tensor) Scalar { return inner{a, b} }

type inner struct{ a, b Tensor }

func (o inner) Eval(s *State) float64 {
	ta, tb := o.a.Eval(s), o.b.Eval(s)
	res := 0.0
	for i := 0; i < len(ta); i++ {
		for j := 0; j < len(ta); j++ {
			res += ta[i][j] * tb[i][j]
		}
	}
	return res
}

func (o inner) String() string { return "inner(" + o.a.String() + ", " + o.b.String() + ")" }

// Div returns the divergence of the named vector field; e.g. Div("u")
func Div(name string) Scalar { return divg(name) }

type divg string

func (o divg) Eval(s *State) float64 {
	g := s.VectorGrad(string(o))
	res := 0.0
	for i := 0; i < len(g); i++ {
		res += g[i][i]
	}
	return res
}

func (o divg) String() string { return "div(" + string(o) + ")" }
