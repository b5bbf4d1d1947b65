// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vle

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/io"
)

// RachfordRice solves Σ zi⋅(Ki-1)/(1+v⋅(Ki-1)) = 0 for the vapour fraction v with Newton's method.
// The iterations stop when |Δv| ≤ tol or when the number of iterations exceeds kmax, whichever
// happens first; hence at least one iteration is always run. v is not limited to [0, 1]
//  Output:
//   v  -- vapour fraction; v0 is returned if the derivative vanishes
//   it -- number of iterations
func RachfordRice(v0 float64, K, z []float64, tol float64, kmax int) (v float64, it int) {
	v = v0
	for {
		it++
		f, df := 0.0, 0.0
		for i := range z {
			a := K[i] - 1.0
			d := 1.0 + v*a
			f += z[i] * a / d
			df -= z[i] * a * a / (d * d)
		}
		if df == 0 {
			return
		}
		vnew := v - f/df
		e := math.Abs(vnew - v)
		v = vnew
		if e <= tol || it > kmax {
			return
		}
	}
}

// Flash computes the liquid-vapour split of a feed with composition z at (P, T).
// P must be within the dew and bubble pressures of the feed, otherwise ErrNotTwoPhase is returned.
// The iterations start from equal-split compositions and v0 = (Pb-P)/(Pb-Pd), or v0 = 0 if Pb = Pd
//  tol, kmax -- convergence settings; defaults are used if ≤ 0
//  Output: X, Y, V, PhiV, PhiL (or γ), K and It
func (o *System) Flash(z []float64, P, T, tol float64, kmax int) (r *Result, err error) {
	if err = o.checkComp("z", z); err != nil {
		return nil, err
	}
	tol, kmax = defaults(tol, kmax, TolFlash, KmaxFlash)

	// check two-phase region
	dew, err := o.DewP(z, T, 0, 0)
	if err != nil {
		return nil, err
	}
	bub, err := o.BubbleP(z, T, 0, 0)
	if err != nil {
		return nil, err
	}
	pd, pb := dew.P, bub.P
	if !(pd <= P && P <= pb) {
		return nil, fmt.Errorf("P=%g, Pdew=%g, Pbubble=%g: %w", P, pd, pb, ErrNotTwoPhase)
	}

	// initial values
	n := o.N()
	r = newResult(n, o.method)
	r.P, r.T = P, T
	r.V = splitGuess(P, pb, pd)
	for i := 0; i < n; i++ {
		r.X[i] = 1.0 / float64(n)
		r.Y[i] = 1.0 / float64(n)
	}
	var psat []float64
	if o.method == GammaPhi {
		psat = make([]float64, n)
		if err = o.PsatAll(psat, T); err != nil {
			return
		}
	}

	// iterations
	e := math.Inf(1)
	for r.It < kmax && e > tol {
		r.It++
		if err = o.flashK(r, psat); err != nil {
			return
		}
		vold := r.V
		r.V, _ = RachfordRice(r.V, r.K, z, TolRR, KmaxRR)
		for i := 0; i < n; i++ {
			r.X[i] = z[i] / (1.0 + r.V*(r.K[i]-1.0))
			r.Y[i] = r.K[i] * r.X[i]
		}
		e = math.Abs(r.V - vold)
		if o.Verbose {
			io.Pfyel("flash: %4d  v=%23.15e  err=%g\n", r.It, r.V, e)
		}
	}
	return
}

// splitGuess returns the initial vapour fraction (Pb-P)/(Pb-Pd) or zero if Pb = Pd
func splitGuess(P, pb, pd float64) float64 {
	if pb == pd {
		return 0
	}
	return (pb - P) / (pb - pd)
}

// flashK updates the fugacity (or activity) coefficients and K-values of a flash
func (o *System) flashK(r *Result, psat []float64) error {
	if o.method == GammaPhi {
		if err := o.phiVap(r.PhiV, r.Y, r.P, r.T); err != nil {
			return err
		}
		copy(r.PhiL, o.activity.Gamma(r.X, r.T))
		gammaPhiK(r.K, r.PhiL, psat, r.PhiV, r.P)
		return nil
	}
	if err := o.phis(r.PhiL, r.PhiV, r.X, r.Y, r.P, r.T); err != nil {
		return err
	}
	for i := range r.K {
		r.K[i] = r.PhiL[i] / r.PhiV[i]
	}
	return nil
}
