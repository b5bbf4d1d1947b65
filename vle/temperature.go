// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vle

import (
	"math"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/floats"
)

// SecantStep evaluates the residual of a temperature problem at T, updating any composition
// held by the caller
type SecantStep func(T float64) (f float64, err error)

// Secant runs the secant method T = T1 - f1⋅(T1-T2)/(f1-f2) until |f| < tol or it = kmax.
// No bracketing is enforced. Iterations also stop if f1 = f2 since no further update is possible
//  Output:
//   T  -- last estimate; T1 if no iteration was run
//   it -- number of iterations
func Secant(T1, f1, T2, f2, tol float64, kmax int, step SecantStep, verbose bool) (T float64, it int, err error) {
	T = T1
	e := math.Inf(1)
	for it < kmax && e > tol {
		if f1 == f2 {
			break
		}
		it++
		T = T1 - f1*(T1-T2)/(f1-f2)
		f, err := step(T)
		if err != nil {
			return T, it, err
		}
		e = math.Abs(f)
		T2, f2 = T1, f1
		T1, f1 = T, f
		if verbose {
			io.Pfyel("secant: %4d  T=%23.15e  err=%g\n", it, T, e)
		}
	}
	return
}

// BubbleT computes the bubble temperature of a liquid with composition x at pressure P
//  tol, kmax -- convergence settings; defaults are used if ≤ 0
//  Output: Y, T, PhiV, PhiL (or γ), K and It
func (o *System) BubbleT(x []float64, P, tol float64, kmax int) (*Result, error) {
	if err := o.checkComp("x", x); err != nil {
		return nil, err
	}
	tol, kmax = defaults(tol, kmax, TolBubbleT, KmaxBubbleT)
	if o.method == GammaPhi {
		return o.bubbleTgamma(x, P, tol, kmax)
	}
	return o.bubbleTphi(x, P, tol, kmax)
}

// DewT computes the dew temperature of a vapour with composition y at pressure P
//  tol, kmax -- convergence settings; defaults are used if ≤ 0
//  Output: X, T, PhiV, PhiL (or γ), K and It
func (o *System) DewT(y []float64, P, tol float64, kmax int) (*Result, error) {
	if err := o.checkComp("y", y); err != nil {
		return nil, err
	}
	tol, kmax = defaults(tol, kmax, TolDewT, KmaxDewT)
	if o.method == GammaPhi {
		return o.dewTgamma(y, P, tol, kmax)
	}
	return o.dewTphi(y, P, tol, kmax)
}

// bubbleTphi solves Σ xi⋅Ki - 1 = 0 with Ki = φL_i/φV_i
func (o *System) bubbleTphi(x []float64, P, tol float64, kmax int) (r *Result, err error) {
	r = newResult(o.N(), PhiPhi)
	copy(r.X, x)
	r.P = P

	// initial values from Wilson K-values
	T2 := o.TbGuess(x, P)
	o.wilsonK(r.K, P, T2)
	f2 := floats.Dot(x, r.K) - 1.0
	T1 := 1.1 * T2
	o.wilsonK(r.K, P, T1)
	f1 := floats.Dot(x, r.K) - 1.0
	floats.MulTo(r.Y, x, r.K)
	floats.Scale(1.0/floats.Sum(r.Y), r.Y)

	// iterations
	step := func(T float64) (float64, error) {
		if err := o.phis(r.PhiL, r.PhiV, x, r.Y, P, T); err != nil {
			return 0, err
		}
		floats.DivTo(r.K, r.PhiL, r.PhiV)
		floats.MulTo(r.Y, x, r.K)
		yt := floats.Sum(r.Y)
		floats.Scale(1.0/yt, r.Y)
		return yt - 1.0, nil
	}
	r.T, r.It, err = Secant(T1, f1, T2, f2, tol, kmax, step, o.Verbose)
	return
}

// dewTphi solves Σ yi/Ki - 1 = 0 with Ki = φL_i/φV_i
func (o *System) dewTphi(y []float64, P, tol float64, kmax int) (r *Result, err error) {
	r = newResult(o.N(), PhiPhi)
	copy(r.Y, y)
	r.P = P

	// initial values from Wilson K-values
	T2 := o.TdGuess(y, P)
	o.wilsonK(r.K, P, T2)
	f2 := sumDiv(y, r.K) - 1.0
	T1 := 1.1 * T2
	o.wilsonK(r.K, P, T1)
	f1 := sumDiv(y, r.K) - 1.0
	floats.DivTo(r.X, y, r.K)
	floats.Scale(1.0/floats.Sum(r.X), r.X)

	// iterations
	step := func(T float64) (float64, error) {
		if err := o.phis(r.PhiL, r.PhiV, r.X, y, P, T); err != nil {
			return 0, err
		}
		floats.DivTo(r.K, r.PhiL, r.PhiV)
		floats.DivTo(r.X, y, r.K)
		xt := floats.Sum(r.X)
		floats.Scale(1.0/xt, r.X)
		return xt - 1.0, nil
	}
	r.T, r.It, err = Secant(T1, f1, T2, f2, tol, kmax, step, o.Verbose)
	return
}

// bubbleTgamma solves Σ xi⋅Ki - 1 = 0 with Ki = γi⋅Psat_i/(P⋅Φi)
func (o *System) bubbleTgamma(x []float64, P, tol float64, kmax int) (r *Result, err error) {
	n := o.N()
	r = newResult(n, GammaPhi)
	copy(r.X, x)
	r.P = P
	psat := make([]float64, n)
	Φ := make([]float64, n)
	var γ []float64

	// residual at T with vapour fugacity coefficients from the current vapour composition
	residual := func(T float64, ideal bool) (float64, error) {
		if ideal {
			for i := range Φ {
				Φ[i] = 1
			}
		} else if err := o.phiVap(Φ, r.Y, P, T); err != nil {
			return 0, err
		}
		if err := o.PsatAll(psat, T); err != nil {
			return 0, err
		}
		γ = o.activity.Gamma(x, T)
		gammaPhiK(r.K, γ, psat, Φ, P)
		floats.MulTo(r.Y, x, r.K)
		yt := floats.Sum(r.Y)
		floats.Scale(1.0/yt, r.Y)
		return yt - 1.0, nil
	}

	// initial values
	T2 := 0.0
	for i := 0; i < n; i++ {
		T2 += x[i] * o.Tsat(i, P)
	}
	f2, err := residual(T2, true)
	if err != nil {
		return
	}
	T1 := 1.1 * T2
	f1, err := residual(T1, false)
	if err != nil {
		return
	}

	// iterations
	step := func(T float64) (float64, error) {
		return residual(T, false)
	}
	r.T, r.It, err = Secant(T1, f1, T2, f2, tol, kmax, step, o.Verbose)
	if err != nil {
		return
	}
	copy(r.PhiL, γ)
	err = o.phiVap(r.PhiV, r.Y, P, r.T)
	return
}

// dewTgamma solves Σ yi/Ki - 1 = 0 with Ki = γi⋅Psat_i/(P⋅Φi). At each temperature, the
// liquid composition and activity coefficients are converged by the inner loop
func (o *System) dewTgamma(y []float64, P, tol float64, kmax int) (r *Result, err error) {
	n := o.N()
	r = newResult(n, GammaPhi)
	copy(r.Y, y)
	r.P = P
	tolIn, kmaxIn := o.inner(tol, kmax)
	psat := make([]float64, n)
	Φ := make([]float64, n)
	γ := make([]float64, n)
	for i := 0; i < n; i++ {
		γ[i] = 1
	}

	// residual at T
	residual := func(T float64, inner bool) (float64, error) {
		if err := o.phiVap(Φ, y, P, T); err != nil {
			return 0, err
		}
		if err := o.PsatAll(psat, T); err != nil {
			return 0, err
		}
		if inner {
			o.dewLiquidLoop(r.X, γ, y, psat, Φ, P, T, tolIn, kmaxIn)
		} else {
			dewLiquid(r.X, y, γ, psat, Φ, P)
		}
		gammaPhiK(r.K, γ, psat, Φ, P)
		return sumDiv(y, r.K) - 1.0, nil
	}

	// initial values
	T2 := 0.0
	for i := 0; i < n; i++ {
		T2 += y[i] * o.Tsat(i, P)
	}
	f2, err := residual(T2, false)
	if err != nil {
		return
	}
	T1 := 1.1 * T2
	f1, err := residual(T1, true)
	if err != nil {
		return
	}

	// iterations
	step := func(T float64) (float64, error) {
		return residual(T, true)
	}
	r.T, r.It, err = Secant(T1, f1, T2, f2, tol, kmax, step, o.Verbose)
	if err != nil {
		return
	}
	copy(r.PhiL, γ)
	err = o.phiVap(r.PhiV, y, P, r.T)
	return
}

// sumDiv returns Σ ai/bi
func sumDiv(a, b []float64) (s float64) {
	for i := range a {
		s += a[i] / b[i]
	}
	return
}
