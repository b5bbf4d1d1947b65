// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package eos implements the evaluation of cubic equations of state for mixtures
package eos

import (
	"errors"
	"fmt"
	"math"

	"github.com/cpmech/govle/mix"
	"github.com/cpmech/govle/poly"
	"github.com/cpmech/govle/subs"
	"gonum.org/v1/gonum/floats"
)

// errors
var (
	ErrNoRoot       = errors.New("cubic equation has no non-negative root")
	ErrIntegration  = errors.New("departure integral did not converge")
	ErrNoSaturation = errors.New("saturation state does not exist")
)

// Mixture evaluates a cubic equation of state for a set of substances
//  Note: Mixture has no mutable state; one value can serve many goroutines
type Mixture struct {
	Rule *mix.Rule // mixing rule
}

// New returns a new Mixture
func New(rule *mix.Rule) *Mixture {
	return &Mixture{Rule: rule}
}

// NewMixture builds the mixing rule and returns a new Mixture
//  fam  -- family key; e.g. "PR1976"
//  list -- substances
func NewMixture(fam string, list []*subs.Substance) (*Mixture, error) {
	r, err := mix.New(fam, list, nil)
	if err != nil {
		return nil, err
	}
	return New(r), nil
}

// N returns the number of components
func (o *Mixture) N() int {
	return o.Rule.N()
}

// Z returns the non-negative roots of the cubic equation in Z at (P, T)
//  Note: the roots are not sorted; use LiqVap to select phases
func (o *Mixture) Z(P, T float64, y []float64) (zs []float64, err error) {
	p := o.Rule.Params(y, T)
	RT := subs.R * T
	bl := p.B * P / RT
	dl := p.Delta * P / RT
	el := p.Eps * (P / RT) * (P / RT)
	tl := p.Theta * P / (RT * RT)
	roots := poly.SolveCubic(
		dl-bl-1.0,
		tl+el-dl*(1.0+bl),
		-(el*(bl+1.0) + bl*tl),
	)
	for _, z := range roots {
		if z >= 0 {
			zs = append(zs, z)
		}
	}
	if len(zs) == 0 {
		return nil, fmt.Errorf("P=%g T=%g: %w", P, T, ErrNoRoot)
	}
	return
}

// LiqVap returns the liquid (smallest) and vapour (largest) roots
func LiqVap(zs []float64) (zl, zv float64) {
	return floats.Min(zs), floats.Max(zs)
}

// P computes the pressure at (T, V)
func (o *Mixture) P(T, V float64, y []float64) float64 {
	p := o.Rule.Params(y, T)
	return subs.R*T/(V-p.B) - p.Theta/(V*V+p.Delta*V+p.Eps)
}

// Phi computes the fugacity coefficient of component i
//  Z -- compressibility factor of the phase of interest
func (o *Mixture) Phi(i int, y []float64, P, T, Z float64) float64 {
	p := o.Rule.Params(y, T)
	d := o.Rule.Derivs(i, y, &p)
	return math.Exp(lnPhi(&p, &d, P, T, Z))
}

// PhiAll computes the fugacity coefficients of all components
//  Output:
//   phi -- [n] pre-allocated
func (o *Mixture) PhiAll(phi, y []float64, P, T, Z float64) {
	p := o.Rule.Params(y, T)
	for i := range phi {
		d := o.Rule.Derivs(i, y, &p)
		phi[i] = math.Exp(lnPhi(&p, &d, P, T, Z))
	}
}

// Fugacity computes the fugacity of the mixture f = P⋅Σ yi⋅φi
func (o *Mixture) Fugacity(y []float64, P, T, V, Z float64) (f float64) {
	p := o.Rule.Params(y, T)
	for i := range y {
		d := o.Rule.Derivs(i, y, &p)
		f += y[i] * math.Exp(lnPhi(&p, &d, P, T, Z))
	}
	return f * P
}

// lnPhi computes the logarithm of the fugacity coefficient (Poling et al. 2001, generalised cubic)
func lnPhi(p *mix.Params, d *mix.Derivs, P, T, Z float64) float64 {
	RT := subs.R * T
	V := RT * Z / P
	D := p.Delta*p.Delta - 4.0*p.Eps
	common := d.B/(V-p.B) - math.Log((V-p.B)/V) - math.Log(Z)

	// δ² = 4ε: the two roots of V² + δ⋅V + ε coincide
	if math.Abs(D) < 100*subs.MachEps {
		return -d.Theta/(RT*(V+p.Delta/2.0)) + common
	}

	dN := 2.0*p.Delta*d.Delta - 4.0*d.Eps
	s := math.Sqrt(D)
	m := 2.0*V + p.Delta - s
	q := 2.0*V + p.Delta + s
	first := d.Theta/(RT*s) - (p.Theta/RT)*dN/(2.0*math.Pow(D, 1.5))
	second := (p.Theta / RT) / s * ((d.Delta-dN/(2.0*s))/m - (d.Delta+dN/(2.0*s))/q)
	return first*math.Log(m/q) + second + common
}
