// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mix

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/govle/subs"
	"gonum.org/v1/gonum/mat"
)

// Params holds mixture parameters at (y, T)
type Params struct {
	B     float64   // b
	Theta float64   // θ
	Delta float64   // δ
	Eps   float64   // ε
	Th    []float64 // θi of each substance at T
}

// Derivs holds composition derivatives of the mixture parameters w.r.t one component,
// in the form required by the fugacity coefficient formula: ∂(n⋅b)/∂ni, ∂(n²θ)/∂ni / n,
// ∂(n⋅δ)/∂ni and ∂(n²ε)/∂ni / n
type Derivs struct {
	B     float64
	Theta float64
	Delta float64
	Eps   float64
}

// Rule implements the van der Waals one-fluid mixing rule for a family
//
//   b = Σ yi⋅bi    θ = Σ Σ yi⋅yj⋅√(θi⋅θj)⋅(1-kij)    δ = c1⋅b    ε = c2⋅b²
//
//  Note: Rule is immutable after construction and can be shared by concurrent solvers
type Rule struct {
	Fam  *Family           // equation of state family
	Subs []*subs.Substance // substances, in mixture order
	K    *mat.Dense        // binary interaction parameters [n][n]

	// constants
	ai []float64 // a of each substance
	bi []float64 // b of each substance
	κi []float64 // κ of each substance
}

// New returns a new mixing rule
//  fam  -- family key; e.g. "PR1976"
//  list -- substances
//  k    -- binary interaction parameters; may be nil
func New(fam string, list []*subs.Substance, k *mat.Dense) (o *Rule, err error) {
	f, err := GetFamily(fam)
	if err != nil {
		return nil, err
	}
	return NewRule(f, list, k)
}

// NewRule returns a new mixing rule for the given family
func NewRule(f *Family, list []*subs.Substance, k *mat.Dense) (o *Rule, err error) {
	n := len(list)
	if n < 1 {
		return nil, chk.Err("mixture must have at least one substance")
	}
	if k == nil {
		k = mat.NewDense(n, n, nil)
	}
	if r, c := k.Dims(); r != n || c != n {
		return nil, chk.Err("interaction matrix must be %d×%d. %d×%d is invalid", n, n, r, c)
	}
	for i := 0; i < n; i++ {
		if k.At(i, i) != 0 {
			return nil, chk.Err("diagonal of interaction matrix must be zero. k[%d][%d]=%g is invalid", i, i, k.At(i, i))
		}
	}
	o = &Rule{Fam: f, Subs: list, K: k}
	o.ai = make([]float64, n)
	o.bi = make([]float64, n)
	o.κi = make([]float64, n)
	for i, s := range list {
		if s.Tc <= 0 || s.Pc <= 0 {
			return nil, chk.Err("substance %q: Tc and Pc must be positive", s.Id)
		}
		o.ai[i] = f.OmegaA * subs.R * subs.R * s.Tc * s.Tc / s.Pc
		o.bi[i] = f.OmegaB * subs.R * s.Tc / s.Pc
		o.κi[i] = f.kappa(s.Omega)
	}
	return
}

// Sub returns the single-substance rule of component i
func (o *Rule) Sub(i int) *Rule {
	return &Rule{
		Fam:  o.Fam,
		Subs: []*subs.Substance{o.Subs[i]},
		K:    mat.NewDense(1, 1, nil),
		ai:   []float64{o.ai[i]},
		bi:   []float64{o.bi[i]},
		κi:   []float64{o.κi[i]},
	}
}

// N returns the number of substances
func (o *Rule) N() int {
	return len(o.Subs)
}

// Bi returns b of substance i
func (o *Rule) Bi(i int) float64 {
	return o.bi[i]
}

// Ai returns a of substance i
func (o *Rule) Ai(i int) float64 {
	return o.ai[i]
}

// Alpha returns α(T) of substance i
func (o *Rule) Alpha(i int, T float64) float64 {
	return o.Fam.alpha(T/o.Subs[i].Tc, o.κi[i])
}

// Kappa returns κ of substance i
func (o *Rule) Kappa(i int) float64 {
	return o.κi[i]
}

// ThetaI returns θ = a⋅α(T) of substance i
func (o *Rule) ThetaI(i int, T float64) float64 {
	return o.ai[i] * o.Alpha(i, T)
}

// Params computes the mixture parameters
func (o *Rule) Params(y []float64, T float64) (p Params) {
	n := len(o.Subs)
	p.Th = make([]float64, n)
	for i := 0; i < n; i++ {
		p.Th[i] = o.ThetaI(i, T)
		p.B += y[i] * o.bi[i]
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			p.Theta += y[i] * y[j] * o.thetaij(p.Th, i, j)
		}
	}
	p.Delta = o.Fam.C1 * p.B
	p.Eps = o.Fam.C2 * p.B * p.B
	return
}

// Derivs computes the composition derivatives w.r.t component i
//  p -- parameters computed with the same y and T
func (o *Rule) Derivs(i int, y []float64, p *Params) (d Derivs) {
	d.B = o.bi[i]
	for j := range o.Subs {
		d.Theta += y[j] * o.thetaij(p.Th, i, j)
	}
	d.Theta *= 2.0
	d.Delta = o.Fam.C1 * o.bi[i]
	d.Eps = 2.0 * o.Fam.C2 * p.B * o.bi[i]
	return
}

// thetaij returns the combined cross parameter √(θi⋅θj)⋅(1-kij)
func (o *Rule) thetaij(th []float64, i, j int) float64 {
	return math.Sqrt(th[i]*th[j]) * (1.0 - o.K.At(i, j))
}
