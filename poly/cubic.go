// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package poly implements closed-form solutions of low-order polynomials
package poly

import "math"

// SolveCubic returns the real roots of the monic cubic
//
//   x³ + b⋅x² + c⋅x + d = 0
//
//  Output:
//   roots -- one or three real roots (repeated roots are returned once per multiplicity
//            found by the trigonometric branch). The roots are not sorted.
//  Note: the coefficients must be finite; NaN or Inf propagate into the roots
func SolveCubic(b, c, d float64) (roots []float64) {

	// auxiliary quantities
	f := c - b*b/3.0
	g := 2.0*b*b*b/27.0 - b*c/3.0 + d
	h := g*g/4.0 + f*f*f/27.0

	// triple root
	if f == 0 && g == 0 && h == 0 {
		return []float64{-math.Cbrt(d)}
	}

	// three real roots
	if h <= 0 {
		i := math.Sqrt(g*g/4.0 - h)
		if i == 0 {
			return []float64{-math.Cbrt(d)}
		}
		j := math.Cbrt(i)
		k := math.Acos(clamp(-g/(2.0*i), -1, 1))
		m := math.Cos(k / 3.0)
		n := math.Sqrt(3.0) * math.Sin(k/3.0)
		p := -b / 3.0
		return []float64{
			2.0*j*m + p,
			-j*(m+n) + p,
			-j*(m-n) + p,
		}
	}

	// one real root
	sh := math.Sqrt(h)
	s := math.Cbrt(-g/2.0 + sh)
	u := math.Cbrt(-g/2.0 - sh)
	return []float64{s + u - b/3.0}
}

// Eval evaluates the monic cubic at x
func Eval(b, c, d, x float64) float64 {
	return ((x+b)*x+c)*x + d
}

// clamp limits x to [lo, hi]; acos arguments drift slightly outside ±1 due to round-off
func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
