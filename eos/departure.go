// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"fmt"
	"math"

	"github.com/cpmech/govle/subs"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/integrate/quad"
)

// settings of the departure integrator
var (
	DepNmin = 32   // initial number of Gauss-Legendre points
	DepNmax = 4096 // maximum number of points
	DepTol  = 1e-9 // relative tolerance between successive estimates
	DepStep = 1e-5 // temperature step for ∂Z/∂T
)

// DZdT computes the derivatives of the liquid and vapour roots w.r.t temperature at constant P
func (o *Mixture) DZdT(P, T float64, y []float64) (dzl, dzv float64, err error) {
	h := DepStep
	zp, err := o.Z(P, T+h, y)
	if err != nil {
		return
	}
	zm, err := o.Z(P, T-h, y)
	if err != nil {
		return
	}
	zlp, zvp := LiqVap(zp)
	zlm, zvm := LiqVap(zm)
	return (zlp - zlm) / (2.0 * h), (zvp - zvm) / (2.0 * h), nil
}

// integrate computes ∫_V^∞ f(v) dv with u = V/v and Gauss-Legendre quadrature on (0, 1],
// doubling the number of points until two estimates agree
func integrate(f func(v float64) float64, V float64) (res float64, err error) {
	g := func(u float64) float64 {
		return f(V/u) * V / (u * u)
	}
	prev := quad.Fixed(g, 0, 1, DepNmin, quad.Legendre{}, 0)
	for n := 2 * DepNmin; n <= DepNmax; n *= 2 {
		res = quad.Fixed(g, 0, 1, n, quad.Legendre{}, 0)
		if math.IsNaN(res) || math.IsInf(res, 0) {
			break
		}
		if math.Abs(res-prev) <= DepTol*math.Abs(res)+1e-15 {
			return res, nil
		}
		prev = res
	}
	return res, fmt.Errorf("V=%g: estimate=%g: %w", V, res, ErrIntegration)
}

// Departure computes the residual properties (real minus ideal gas at the same T and P) of a phase
//  V, Z -- molar volume and compressibility factor of the phase
func (o *Mixture) Departure(y []float64, P, T, V, Z float64) (res subs.Props, err error) {
	p := o.Rule.Params(y, T)
	den := func(v float64) float64 { return v*v + p.Delta*v + p.Eps }

	// only θ/(R⋅t) depends on t at constant v
	g := func(t float64) float64 { return o.Rule.Params(y, t).Theta / (subs.R * t) }
	dgdt := fd.Derivative(g, T, &fd.Settings{Formula: fd.Central, Step: DepStep})

	// U^R/(R⋅T) = -T ∫ (∂Z/∂T)_v dv/v
	iu, err := integrate(func(v float64) float64 {
		return -dgdt / den(v)
	}, V)
	if err != nil {
		return res, fmt.Errorf("internal energy: %w", err)
	}
	ur := -T * iu

	// A^R/(R⋅T) = ∫ (Z-1) dv/v - ln Z
	gT := p.Theta / (subs.R * T)
	ia, err := integrate(func(v float64) float64 {
		return p.B/(v*(v-p.B)) - gT/den(v)
	}, V)
	if err != nil {
		return res, fmt.Errorf("Helmholtz energy: %w", err)
	}
	ar := ia - math.Log(Z)

	// derived quantities
	RT := subs.R * T
	res.U = ur * RT
	res.A = ar * RT
	res.H = (ur + Z - 1.0) * RT
	res.S = (ur - ar) * subs.R
	res.G = (ar + Z - 1.0) * RT
	return
}

// DeltaDeparture computes the change of residual properties from a reference state to a state
func (o *Mixture) DeltaDeparture(y []float64, Pref, Tref, Vref, Zref, P, T, V, Z float64) (res subs.Props, err error) {
	ref, err := o.Departure(y, Pref, Tref, Vref, Zref)
	if err != nil {
		return
	}
	state, err := o.Departure(y, P, T, V, Z)
	if err != nil {
		return
	}
	return state.Sub(ref), nil
}

// CpHSGUA computes the real-fluid property changes from (Tref, Pref) to (T, P) for the liquid and
// vapour roots: ideal gas change plus the change of residual properties
//  Note: Cp holds the ideal gas heat capacity at T
func (o *Mixture) CpHSGUA(y []float64, Tref, T, Pref, P float64) (liq, vap subs.Props, err error) {
	zs, err := o.Z(P, T, y)
	if err != nil {
		return
	}
	zsref, err := o.Z(Pref, Tref, y)
	if err != nil {
		return
	}
	zl, zv := LiqVap(zs)
	zlref, zvref := LiqVap(zsref)
	vl, vv := zl*subs.R*T/P, zv*subs.R*T/P
	vlref, vvref := zlref*subs.R*Tref/Pref, zvref*subs.R*Tref/Pref

	ig, err := subs.Mixture{Subs: o.Rule.Subs, Y: y}.IdealGas(Tref, T, Pref, P)
	if err != nil {
		return
	}
	dl, err := o.DeltaDeparture(y, Pref, Tref, vlref, zlref, P, T, vl, zl)
	if err != nil {
		return
	}
	dv, err := o.DeltaDeparture(y, Pref, Tref, vvref, zvref, P, T, vv, zv)
	if err != nil {
		return
	}
	return ig.Add(dl), ig.Add(dv), nil
}
