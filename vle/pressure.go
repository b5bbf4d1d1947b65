// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vle

import (
	"math"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// BubbleP computes the bubble pressure of a liquid with composition x at temperature T
//  tol, kmax -- convergence settings; defaults are used if ≤ 0
//  Output: Y, P, PhiV, PhiL (or γ), K and It
func (o *System) BubbleP(x []float64, T, tol float64, kmax int) (*Result, error) {
	if err := o.checkComp("x", x); err != nil {
		return nil, err
	}
	tol, kmax = defaults(tol, kmax, TolP, KmaxP)
	if o.method == GammaPhi {
		return o.bubblePgamma(x, T, tol, kmax)
	}
	return o.bubblePphi(x, T, tol, kmax)
}

// DewP computes the dew pressure of a vapour with composition y at temperature T
//  tol, kmax -- convergence settings; defaults are used if ≤ 0
//  Output: X, P, PhiV, PhiL (or γ), K and It
func (o *System) DewP(y []float64, T, tol float64, kmax int) (*Result, error) {
	if err := o.checkComp("y", y); err != nil {
		return nil, err
	}
	tol, kmax = defaults(tol, kmax, TolP, KmaxP)
	if o.method == GammaPhi {
		return o.dewPgamma(y, T, tol, kmax)
	}
	return o.dewPphi(y, T, tol, kmax)
}

// bubblePphi updates P by P⋅Σ yi with yi = xi⋅φL_i/φV_i
func (o *System) bubblePphi(x []float64, T, tol float64, kmax int) (r *Result, err error) {
	r = newResult(o.N(), PhiPhi)
	copy(r.X, x)
	r.T = T

	// initial values
	P := o.PbGuess(x, T)
	o.wilsonK(r.K, P, T)
	floats.MulTo(r.Y, x, r.K)
	floats.Scale(1.0/floats.Sum(r.Y), r.Y)

	// iterations
	e := math.Inf(1)
	for r.It < kmax && e > tol {
		r.It++
		if err = o.phis(r.PhiL, r.PhiV, x, r.Y, P, T); err != nil {
			r.P = P
			return
		}
		floats.DivTo(r.K, r.PhiL, r.PhiV)
		floats.MulTo(r.Y, x, r.K)
		yt := floats.Sum(r.Y)
		P *= yt
		e = math.Abs(1.0 - yt)
		floats.Scale(1.0/yt, r.Y)
		if o.Verbose {
			io.Pfyel("bubbleP: %4d  P=%23.15e  err=%g\n", r.It, P, e)
		}
	}
	r.P = P
	return
}

// dewPphi updates P by P/Σ xi with xi = yi⋅φV_i/φL_i
func (o *System) dewPphi(y []float64, T, tol float64, kmax int) (r *Result, err error) {
	r = newResult(o.N(), PhiPhi)
	copy(r.Y, y)
	r.T = T

	// initial values
	P := o.PdGuess(y, T)
	o.wilsonK(r.K, P, T)
	floats.DivTo(r.X, y, r.K)
	floats.Scale(1.0/floats.Sum(r.X), r.X)

	// iterations
	e := math.Inf(1)
	for r.It < kmax && e > tol {
		r.It++
		if err = o.phis(r.PhiL, r.PhiV, r.X, y, P, T); err != nil {
			r.P = P
			return
		}
		floats.DivTo(r.K, r.PhiL, r.PhiV)
		floats.DivTo(r.X, y, r.K)
		xt := floats.Sum(r.X)
		P /= xt
		e = math.Abs(1.0 - xt)
		floats.Scale(1.0/xt, r.X)
		if o.Verbose {
			io.Pfyel("dewP: %4d  P=%23.15e  err=%g\n", r.It, P, e)
		}
	}
	r.P = P
	return
}

// gammaPhiK computes K = γ⋅Psat/(P⋅Φ)
func gammaPhiK(K, γ, psat, Φ []float64, P float64) {
	for i := range K {
		K[i] = γ[i] * psat[i] / (P * Φ[i])
	}
}

// bubblePgamma solves P = Σ xi⋅γi⋅Psat_i/Φi and yi = xi⋅γi⋅Psat_i/(Φi⋅P)
func (o *System) bubblePgamma(x []float64, T, tol float64, kmax int) (r *Result, err error) {
	n := o.N()
	r = newResult(n, GammaPhi)
	copy(r.X, x)
	r.T = T

	// initial values
	psat := make([]float64, n)
	if err = o.PsatAll(psat, T); err != nil {
		return
	}
	γ := o.activity.Gamma(x, T)
	Φ := make([]float64, n)
	for i := 0; i < n; i++ {
		Φ[i] = 1
	}
	pressure := func() (P float64) {
		for i := 0; i < n; i++ {
			P += x[i] * γ[i] * psat[i] / Φ[i]
		}
		return
	}
	composition := func(P float64) {
		for i := 0; i < n; i++ {
			r.Y[i] = x[i] * γ[i] * psat[i] / (Φ[i] * P)
		}
	}
	P := pressure()
	composition(P)

	// iterations
	e := math.Inf(1)
	for r.It < kmax && e > tol {
		r.It++
		composition(P)
		if err = o.phiVap(Φ, r.Y, P, T); err != nil {
			r.P = P
			return
		}
		Pold := P
		P = pressure()
		e = math.Abs((P - Pold) / P)
		if o.Verbose {
			io.Pfyel("bubbleP(γ-φ): %4d  P=%23.15e  err=%g\n", r.It, P, e)
		}
	}

	// results
	r.P = P
	copy(r.PhiL, γ)
	gammaPhiK(r.K, γ, psat, Φ, P)
	err = o.phiVap(r.PhiV, r.Y, P, T)
	return
}

// dewPgamma solves P = 1/Σ (yi⋅Φi/(γi⋅Psat_i)) with the liquid composition and activity
// coefficients converged by an inner loop at each pressure
func (o *System) dewPgamma(y []float64, T, tol float64, kmax int) (r *Result, err error) {
	n := o.N()
	r = newResult(n, GammaPhi)
	copy(r.Y, y)
	r.T = T
	tolIn, kmaxIn := o.inner(tol, kmax)

	// initial values
	psat := make([]float64, n)
	if err = o.PsatAll(psat, T); err != nil {
		return
	}
	γ := make([]float64, n)
	Φ := make([]float64, n)
	for i := 0; i < n; i++ {
		γ[i], Φ[i] = 1, 1
	}
	pressure := func() (P float64) {
		for i := 0; i < n; i++ {
			P += y[i] * Φ[i] / (γ[i] * psat[i])
		}
		return 1.0 / P
	}
	P := pressure()
	dewLiquid(r.X, y, γ, psat, Φ, P)
	copy(γ, o.activity.Gamma(r.X, T))
	P = pressure()

	// iterations
	e := math.Inf(1)
	for r.It < kmax && e > tol {
		r.It++
		if err = o.phiVap(Φ, y, P, T); err != nil {
			r.P = P
			return
		}
		o.dewLiquidLoop(r.X, γ, y, psat, Φ, P, T, tolIn, kmaxIn)
		Pold := P
		P = pressure()
		e = math.Abs((P - Pold) / P)
		if o.Verbose {
			io.Pfyel("dewP(γ-φ): %4d  P=%23.15e  err=%g\n", r.It, P, e)
		}
	}

	// results
	r.P = P
	copy(r.PhiL, γ)
	gammaPhiK(r.K, γ, psat, Φ, P)
	err = o.phiVap(r.PhiV, y, P, T)
	return
}

// dewLiquid computes the normalised liquid composition xi ∝ yi⋅Φi⋅P/(γi⋅Psat_i)
func dewLiquid(x, y, γ, psat, Φ []float64, P float64) {
	for i := range x {
		x[i] = y[i] * Φ[i] * P / (γ[i] * psat[i])
	}
	floats.Scale(1.0/floats.Sum(x), x)
}

// dewLiquidLoop converges the liquid composition and the activity coefficients at fixed
// (P, T, Φ) by successive substitution until max|Δγ| < tol
//  Input/Output: x and γ
//  Output: number of iterations
func (o *System) dewLiquidLoop(x, γ, y, psat, Φ []float64, P, T, tol float64, kmax int) (it int) {
	e := math.Inf(1)
	for it < kmax && e > tol {
		it++
		dewLiquid(x, y, γ, psat, Φ, P)
		γnew := o.activity.Gamma(x, T)
		e = 0
		for i := range γ {
			e = math.Max(e, math.Abs(γnew[i]-γ[i]))
		}
		copy(γ, γnew)
	}
	return
}

// inner returns the settings of inner loops
func (o *System) inner(tol float64, kmax int) (float64, int) {
	if o.InnerTol > 0 {
		tol = o.InnerTol
	}
	if o.InnerKmax > 0 {
		kmax = o.InnerKmax
	}
	return tol, kmax
}
