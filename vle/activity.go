// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vle

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// ActivityModel computes liquid-phase activity coefficients
//  Note: implementations must be safe for concurrent use
type ActivityModel interface {
	Gamma(x []float64, T float64) []float64 // returns γ of each component
}

// ActivitySource provides activity models for sets of substances; e.g. a UNIFAC group database
type ActivitySource interface {
	Has(ids []string) bool                     // tells whether all substances are known
	Model(ids []string) (ActivityModel, error) // returns a model for the given substances, in order
}

// IdealSolution implements γ = 1 for any set of substances
type IdealSolution struct{}

// Has returns true
func (o IdealSolution) Has(ids []string) bool { return true }

// Model returns the model itself
func (o IdealSolution) Model(ids []string) (ActivityModel, error) { return o, nil }

// Gamma returns ones
func (o IdealSolution) Gamma(x []float64, T float64) []float64 {
	γ := make([]float64, len(x))
	for i := range γ {
		γ[i] = 1
	}
	return γ
}

// MargulesPair holds the parameters of the two-parameter Margules equation for a binary
//
//   ln γ1 = x2²⋅[A12 + 2⋅(A21 - A12)⋅x1]
//   ln γ2 = x1²⋅[A21 + 2⋅(A12 - A21)⋅x2]
type MargulesPair struct {
	I, J     string  // substances 1 and 2
	Aij, Aji float64 // A12 and A21
}

// Margules implements ActivitySource for binary mixtures with known Margules parameters
type Margules struct {
	Pairs []MargulesPair
}

// find returns A12 and A21 for the ordered pair (a, b)
func (o *Margules) find(a, b string) (a12, a21 float64, ok bool) {
	for _, p := range o.Pairs {
		if p.I == a && p.J == b {
			return p.Aij, p.Aji, true
		}
		if p.I == b && p.J == a {
			return p.Aji, p.Aij, true
		}
	}
	return
}

// Has tells whether ids is a binary with known parameters
func (o *Margules) Has(ids []string) bool {
	if len(ids) != 2 {
		return false
	}
	_, _, ok := o.find(ids[0], ids[1])
	return ok
}

// Model returns the binary Margules model for ids
func (o *Margules) Model(ids []string) (ActivityModel, error) {
	if len(ids) != 2 {
		return nil, chk.Err("Margules model requires two substances. %d is invalid", len(ids))
	}
	a12, a21, ok := o.find(ids[0], ids[1])
	if !ok {
		return nil, chk.Err("Margules parameters of pair (%q, %q) are not available", ids[0], ids[1])
	}
	return &margules{a12, a21}, nil
}

// margules implements ActivityModel
type margules struct {
	a12, a21 float64
}

// Gamma computes the activity coefficients
func (o *margules) Gamma(x []float64, T float64) []float64 {
	x1, x2 := x[0], x[1]
	return []float64{
		math.Exp(x2 * x2 * (o.a12 + 2.0*(o.a21-o.a12)*x1)),
		math.Exp(x1 * x1 * (o.a21 + 2.0*(o.a12-o.a21)*x2)),
	}
}
