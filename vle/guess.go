// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vle

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// settings of the Wilson temperature guess
const (
	guessTol  = 1e-9 // on the log residual
	guessKmax = 100
	defaultTb = 100.0 // used when Tb is unknown
)

// PbGuess estimates the bubble pressure with Wilson K-values: Σ xi⋅Pc_i⋅exp(5.373(1+ωi)(1-Tc_i/T))
func (o *System) PbGuess(x []float64, T float64) (P float64) {
	for i, s := range o.Subs() {
		P += x[i] * s.PvpWilson(T)
	}
	return
}

// PdGuess estimates the dew pressure with Wilson K-values: 1 / Σ yi/(Pc_i⋅exp(5.373(1+ωi)(1-Tc_i/T)))
func (o *System) PdGuess(y []float64, T float64) float64 {
	sum := 0.0
	for i, s := range o.Subs() {
		sum += y[i] / s.PvpWilson(T)
	}
	return 1.0 / sum
}

// wilsonK computes Wilson K-values
func (o *System) wilsonK(K []float64, P, T float64) {
	for i, s := range o.Subs() {
		K[i] = s.WilsonK(T, P)
	}
}

// tbAverage returns Σ xi⋅Tb_i with Tb_i = 100 K if unknown
func (o *System) tbAverage(x []float64) (T float64) {
	for i, s := range o.Subs() {
		tb := s.Tb
		if tb <= 0 {
			tb = defaultTb
		}
		T += x[i] * tb
	}
	return
}

// TbGuess estimates the bubble temperature by solving ln(Σ xi⋅Pvp_i(T)/P) = 0 with Wilson vapour
// pressures, starting from the Tb average. This refines the plain Σ xi⋅Tb_i average, which is
// returned only if the solution fails
func (o *System) TbGuess(x []float64, P float64) float64 {
	return o.wilsonSolve(o.tbAverage(x), func(T float64) (r, drdT float64) {
		sum, dsum := 0.0, 0.0
		for i, s := range o.Subs() {
			pw := x[i] * s.PvpWilson(T)
			sum += pw
			dsum += pw * 5.373 * (1.0 + s.Omega) * s.Tc / (T * T)
		}
		return math.Log(sum / P), dsum / sum
	})
}

// TdGuess estimates the dew temperature by solving ln(P⋅Σ yi/Pvp_i(T)) = 0 with Wilson vapour
// pressures, starting from the Tb average. As with TbGuess, the plain average is returned only if
// the solution fails
func (o *System) TdGuess(y []float64, P float64) float64 {
	return o.wilsonSolve(o.tbAverage(y), func(T float64) (r, drdT float64) {
		sum, dsum := 0.0, 0.0
		for i, s := range o.Subs() {
			q := y[i] / s.PvpWilson(T)
			sum += q
			dsum -= q * 5.373 * (1.0 + s.Omega) * s.Tc / (T * T)
		}
		return math.Log(P * sum), dsum / sum
	})
}

// wilsonSolve finds the root of the residual r(T) by minimising r²/2 over s = ln(T) with Newton's
// method. T0 is returned if the minimiser fails or the root is not reached
func (o *System) wilsonSolve(T0 float64, res func(T float64) (r, drdT float64)) float64 {
	prob := optimize.Problem{
		Func: func(s []float64) float64 {
			r, _ := res(math.Exp(s[0]))
			return r * r / 2.0
		},
		Grad: func(grad, s []float64) {
			T := math.Exp(s[0])
			r, drdT := res(T)
			grad[0] = r * drdT * T
		},
		Hess: func(hess *mat.SymDense, s []float64) {
			T := math.Exp(s[0])
			_, drdT := res(T)
			hess.SetSym(0, 0, drdT*T*drdT*T)
		},
	}
	result, err := optimize.Minimize(prob, []float64{math.Log(T0)}, &optimize.Settings{MajorIterations: guessKmax}, &optimize.Newton{})
	if err != nil {
		return T0
	}
	T := math.Exp(result.X[0])
	r, _ := res(T)
	if math.IsNaN(T) || math.IsInf(T, 0) || !(math.Abs(r) <= guessTol) {
		return T0
	}
	return T
}

// Psat computes the vapour pressure of component i with the Antoine correlation if available
// and valid at T; otherwise the Ambrose-Walton estimate is refined by the pure substance
// saturation solver
func (o *System) Psat(i int, T float64) (float64, error) {
	s := o.Subs()[i]
	if s.HasAntoine() && s.InAntoineRange(T) {
		return s.PvpAntoine(T), nil
	}
	P, _, err := o.Mix.PureSat(i, T, s.PvpAW(T), 0, 0)
	return P, err
}

// PsatAll computes the vapour pressures of all components
func (o *System) PsatAll(psat []float64, T float64) (err error) {
	for i := range psat {
		psat[i], err = o.Psat(i, T)
		if err != nil {
			return
		}
	}
	return
}

// Tsat computes the saturation temperature of component i by inverting the Antoine correlation
// or, if not available, the Wilson correlation
func (o *System) Tsat(i int, P float64) float64 {
	s := o.Subs()[i]
	if s.HasAntoine() {
		return s.TsatAntoine(P)
	}
	return s.TsatWilson(P)
}
