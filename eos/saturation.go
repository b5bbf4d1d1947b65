// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"fmt"
	"math"

	"github.com/cpmech/gosl/io"
)

// default settings for PureSat
const (
	SatTol  = 1e-10
	SatKmax = 1000
)

// PureSat computes the saturation pressure of component i alone by successive substitution
// on the equality of fugacities, P ← P⋅φL/φV
//  P0 -- initial guess; e.g. from Ambrose-Walton
//  tol, kmax -- convergence settings; defaults are used if ≤ 0
//  Output:
//   P  -- saturation pressure
//   it -- number of iterations; it ≥ kmax means no convergence
func (o *Mixture) PureSat(i int, T, P0, tol float64, kmax int) (P float64, it int, err error) {
	if tol <= 0 {
		tol = SatTol
	}
	if kmax <= 0 {
		kmax = SatKmax
	}
	s := o.Rule.Subs[i]
	if T >= s.Tc {
		return 0, 0, fmt.Errorf("%s at T=%g ≥ Tc=%g: %w", s.Id, T, s.Tc, ErrNoSaturation)
	}
	pure := New(o.Rule.Sub(i))
	y := []float64{1}
	zc := o.Rule.Fam.Zc
	P = P0
	for it = 0; it < kmax; it++ {
		zs, err := pure.Z(P, T, y)
		if err != nil {
			return P, it, err
		}
		zl, zv := LiqVap(zs)

		// only one root: move towards the two-phase region
		if zv-zl < 1e-12*zv {
			if zv > zc {
				P *= 1.1
			} else {
				P *= 0.9
			}
			continue
		}

		φl := pure.Phi(0, y, P, T, zl)
		φv := pure.Phi(0, y, P, T, zv)
		ratio := φl / φv
		P *= ratio
		if io.Verbose {
			io.Pfyel("%4d: P=%23.15e  |1-φl/φv|=%g\n", it, P, math.Abs(1-ratio))
		}
		if math.Abs(1.0-ratio) < tol {
			it++
			break
		}
	}
	return
}
