// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
)

// Raoult implements vapour-liquid equilibrium of ideal mixtures of ideal gases
//
//   yi⋅P = xi⋅Psat_i
//
//  Note: the vapour pressures are given at the temperature of interest
type Raoult struct {
	Psat []float64 // vapour pressures [Pa]
}

// Init initialises this structure
func (o *Raoult) Init(psat []float64) error {
	for i, p := range psat {
		if p <= 0 {
			return chk.Err("vapour pressure of component %d must be positive. %g is invalid", i, p)
		}
	}
	o.Psat = make([]float64, len(psat))
	copy(o.Psat, psat)
	return nil
}

// BubbleP returns the bubble pressure P = Σ xi⋅Psat_i and the vapour composition
func (o *Raoult) BubbleP(x []float64) (P float64, y []float64) {
	P = floats.Dot(x, o.Psat)
	y = make([]float64, len(x))
	floats.MulTo(y, x, o.Psat)
	floats.Scale(1.0/P, y)
	return
}

// DewP returns the dew pressure P = 1/Σ (yi/Psat_i) and the liquid composition
func (o *Raoult) DewP(y []float64) (P float64, x []float64) {
	x = make([]float64, len(y))
	floats.DivTo(x, y, o.Psat)
	P = 1.0 / floats.Sum(x)
	floats.Scale(P, x)
	return
}

// K returns the equilibrium ratios Psat_i/P
func (o *Raoult) K(P float64) (K []float64) {
	K = make([]float64, len(o.Psat))
	copy(K, o.Psat)
	floats.Scale(1.0/P, K)
	return
}

// BinaryFlash solves the flash of a binary mixture with constant equilibrium ratios
//
//   x1 = (1 - K2)/(K1 - K2)    y1 = K1⋅x1    v = (z1 - x1)/(y1 - x1)
func BinaryFlash(K, z []float64) (v float64, x, y []float64) {
	x1 := (1.0 - K[1]) / (K[0] - K[1])
	y1 := K[0] * x1
	v = (z[0] - x1) / (y1 - x1)
	return v, []float64{x1, 1.0 - x1}, []float64{y1, 1.0 - y1}
}
