// Copyright 2017 The Phaseflow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phasechange implements the model-definition element for
// melting/solidification of a constant-property material
package phasechange

import (
	"github.com/HwayGuo/phaseflow-fenics/ele"
	"github.com/HwayGuo/phaseflow-fenics/inp"
	"github.com/HwayGuo/phaseflow-fenics/mdl/phasechange"
	"github.com/HwayGuo/phaseflow-fenics/wf"
	"github.com/cpmech/gosl/chk"
)

// PhaseChange parameterizes the coupled mass/momentum/energy conservation
// equations with a semi-phase-field regularization of the solid-liquid
// interface. It emits the mixed element description and the symbolic
// residual form; discretization and solution are the external engine's.
//
// Solution fields are named "p", "u" and "T"; previous-timestep fields
// "u_n" and "T_n"; test functions "psi_p", "psi_u" and "psi_T".
type PhaseChange struct {

	// basic data
	Sim *inp.Simulation         // simulation input data
	Mdl *phasechange.ConstProps // material model

	// results
	Element               *ele.Mixed              // mixed finite-element description
	GoverningForm         wf.Scalar               // residual integrand
	SemiPhasefieldMapping func(T float64) float64 // temperature => solid fraction, for post-processing
}

// initialisation ///////////////////////////////////////////////////////////////////////////////////

// register element
func init() {

	// information allocator
	ele.SetInfoFunc("phasechange", func(sim *inp.Simulation) *ele.Info {

		// new info
		var info ele.Info
		ndim := sim.Ndim()

		// solution variables
		ykeys := []string{"p", "ux", "uy", "T"}
		if ndim == 3 {
			ykeys = []string{"p", "ux", "uy", "uz", "T"}
		}
		info.Dofs = [][]string{ykeys}

		// Y2F map and t1 variables
		info.Y2F = map[string]string{"p": "fp", "ux": "fx", "uy": "fy", "uz": "fz", "T": "q"}
		info.T1vars = ykeys[1:]
		return &info
	})

	// element allocator
	ele.SetAllocator("phasechange", func(sim *inp.Simulation) ele.Element {
		var o PhaseChange
		o.Sim = sim
		mdl, ok := sim.MatModel.(*phasechange.ConstProps)
		if !ok {
			chk.Panic("phasechange element works only with the 'constprops' material model (%q given)", sim.Data.Mat)
		}
		o.Mdl = mdl
		o.SemiPhasefieldMapping = mdl.Phi
		return &o
	})
}

// implementation ///////////////////////////////////////////////////////////////////////////////////

// UpdateElement builds the mixed Taylor-Hood element from the configured
// degrees. The velocity degree is always the pressure degree plus one.
func (o *PhaseChange) UpdateElement() (err error) {
	o.Element = ele.NewTaylorHood(o.Sim.Ndim(), o.Sim.Eqs.Pdeg, o.Sim.Eqs.Tdeg)
	return
}

// UpdateGoverningForm builds the residual integrand combining mass
// conservation with pressure-penalty stabilization, momentum conservation
// with convection, buoyancy and phase-dependent viscosity, and energy
// conservation with implicit-Euler time discretization and latent heat
// release through the time derivative of the phase indicator.
func (o *PhaseChange) UpdateGoverningForm() (err error) {
	o.GoverningForm = wf.Add(o.MassForm(), o.MomentumForm(), o.EnergyForm())
	return
}

// Elem returns the mixed finite-element description
func (o *PhaseChange) Elem() *ele.Mixed { return o.Element }

// Form returns the governing form
func (o *PhaseChange) Form() wf.Scalar { return o.GoverningForm }

// sub-forms ////////////////////////////////////////////////////////////////////////////////////////

// MassForm returns the mass-conservation form with the penalty-scaled
// pressure stabilization term
//
//   b(u, ψp) - γ・p・ψp
func (o *PhaseChange) MassForm() wf.Scalar {
	gamma := wf.C("gamma", o.Sim.Eqs.Penalty)
	return wf.Sub(
		bform("u", wf.S("psi_p")),
		wf.Mul(wf.S("psi_p"), gamma, wf.S("p")),
	)
}

// MomentumForm returns the momentum-conservation form
//
//   dot(ψu, (u - u_n)/Δt + f_B(T)) + c(u, u, ψu) + b(ψu, p) + a(μ(φ(T)), u, ψu)
//
// where f_B is the Boussinesq buoyancy force and the time term is dropped
// for steady simulations
func (o *PhaseChange) MomentumForm() wf.Scalar {
	dt := wf.C("dt", o.Sim.Eqs.Dt)
	u, un := wf.V("u"), wf.V("u_n")
	psiu := wf.V("psi_u")
	force := o.buoyancy(wf.S("T"))
	if !o.Sim.Data.Steady {
		force = wf.AddV(wf.Scale(wf.Quo(wf.Num(1), dt), wf.SubV(u, un)), force)
	}
	return wf.Add(
		wf.Dot(psiu, force),
		cform("u", "u", psiu),
		bform("psi_u", wf.S("p")),
		aform(o.viscosity(o.phasefield(wf.S("T"))), "u", "psi_u"),
	)
}

// EnergyForm returns the energy-conservation form
//
//   ψT・(T - T_n - (φ(T) - φ(T_n))/Ste)/Δt + dot(grad(ψT), grad(T)/Pr - T・u)
//
// with the time and latent-heat terms dropped for steady simulations
func (o *PhaseChange) EnergyForm() wf.Scalar {
	pr := wf.C("Pr", o.Sim.Eqs.Pr)
	transport := wf.Dot(
		wf.Grad("psi_T"),
		wf.SubV(
			wf.Scale(wf.Quo(wf.Num(1), pr), wf.Grad("T")),
			wf.Scale(wf.S("T"), wf.V("u")),
		),
	)
	if o.Sim.Data.Steady {
		return transport
	}
	dt := wf.C("dt", o.Sim.Eqs.Dt)
	ste := wf.C("Ste", o.Sim.Eqs.Ste)
	T, Tn := wf.S("T"), wf.S("T_n")
	storage := wf.Mul(
		wf.Quo(wf.Num(1), dt),
		wf.S("psi_T"),
		wf.Sub(wf.Sub(T, Tn), wf.Quo(wf.Sub(o.phasefield(T), o.phasefield(Tn)), ste)),
	)
	return wf.Add(storage, transport)
}

// StokesForm returns the steady-state Stokes reduction of the governing
// form: the mass form plus momentum without time derivative, convection
// and buoyancy, at constant liquid viscosity
func (o *PhaseChange) StokesForm() wf.Scalar {
	mul := wf.C("mu_L", o.Mdl.MuL)
	return wf.Add(
		o.MassForm(),
		bform("psi_u", wf.S("p")),
		aform(mul, "u", "psi_u"),
	)
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////////

// phasefield returns the semi-phase-field regularization of the solid
// indicator
//
//   φ(T) = 0.5・(1 + tanh((Tr - T)/r))
func (o *PhaseChange) phasefield(T wf.Scalar) wf.Scalar {
	tr := wf.C("Tr", o.Mdl.Tr)
	r := wf.C("r", o.Mdl.Smooth)
	return wf.Mul(wf.Num(0.5), wf.Add(wf.Num(1), wf.Tanh(wf.Quo(wf.Sub(tr, T), r))))
}

// viscosity returns the phase-blended viscosity μ = μl + (μs - μl)・φ
func (o *PhaseChange) viscosity(phi wf.Scalar) wf.Scalar {
	mul := wf.C("mu_L", o.Mdl.MuL)
	mus := wf.C("mu_S", o.Mdl.MuS)
	return wf.Add(mul, wf.Mul(wf.Sub(mus, mul), phi))
}

// buoyancy returns the Boussinesq-type forcing f_B(T) = T・Ra/(Pr・Re²)・g
func (o *PhaseChange) buoyancy(T wf.Scalar) wf.Vector {
	ra := wf.C("Ra", o.Sim.Eqs.Ra)
	pr := wf.C("Pr", o.Sim.Eqs.Pr)
	re := wf.C("Re", 1.0)
	g := wf.CV("g", o.Sim.Eqs.Gravity)
	return wf.Scale(wf.Quo(wf.Mul(T, ra), wf.Mul(pr, re, re)), g)
}

// the forms b, a and c follow the common notation from huerta2003fefluids

// bform returns b(v, q) = -div(v)・q for the named vector field
func bform(v string, q wf.Scalar) wf.Scalar {
	return wf.Mul(wf.Neg(wf.Div(v)), q)
}

// dform returns D(v) = sym(grad(v)), the symmetric velocity gradient
func dform(v string) wf.Tensor {
	return wf.Sym(wf.GradV(v))
}

// aform returns a(μ, v, w) = 2・μ・inner(D(v), D(w)), the Stokes stress-strain form
func aform(mu wf.Scalar, v, w string) wf.Scalar {
	return wf.Mul(wf.Num(2), mu, wf.Inner(dform(v), dform(w)))
}

// cform returns c(v, z, w) = dot(dot(grad(z), v), w), the convection form
func cform(v, z string, w wf.Vector) wf.Scalar {
	return wf.Dot(wf.DotTV(wf.GradV(z), wf.V(v)), w)
}
