// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package vle implements vapour-liquid equilibrium solvers based on cubic equations of state
package vle

import (
	"errors"
	"fmt"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/govle/eos"
	"github.com/cpmech/govle/subs"
	"gonum.org/v1/gonum/floats"
)

// errors
var (
	ErrInvalidComposition = errors.New("invalid composition")
	ErrNotTwoPhase        = errors.New("pressure is not between dew and bubble pressures")
)

// default settings
const (
	TolP        = 1e3 * subs.MachEps // bubble and dew pressures
	KmaxP       = 1000
	TolBubbleT  = 1e3 * subs.MachEps // bubble temperature
	KmaxBubbleT = 100
	TolDewT     = 1e4 * subs.MachEps // dew temperature
	KmaxDewT    = 1000
	TolFlash    = 1e5 * subs.MachEps // flash
	KmaxFlash   = 1000
	TolRR       = 1e-8 // Rachford-Rice within flash
	KmaxRR      = 500
	CompTol     = 1e-8 // tolerance on Σ x = 1
)

// Method defines how liquid-phase non-idealities are computed
type Method int

const (
	PhiPhi   Method = iota // both phases from the equation of state
	GammaPhi               // liquid from activity coefficients (UNIFAC-like), vapour from the equation of state
)

// String returns the name of the method
func (o Method) String() string {
	if o == GammaPhi {
		return "UNIFAC"
	}
	return "phi-phi"
}

// ParseMethod returns the method corresponding to a name
func ParseMethod(name string) (Method, error) {
	switch name {
	case "phi-phi", "":
		return PhiPhi, nil
	case "UNIFAC", "gamma-phi":
		return GammaPhi, nil
	}
	return PhiPhi, chk.Err("VLE method %q is not available. Use \"phi-phi\" or \"UNIFAC\"", name)
}

// Result holds the solution of an equilibrium problem
type Result struct {
	X    []float64 // liquid composition
	Y    []float64 // vapour composition
	P    float64   // pressure [Pa]
	T    float64   // temperature [K]
	V    float64   // vapour fraction (flash only)
	PhiV []float64 // vapour fugacity coefficients
	PhiL []float64 // liquid fugacity coefficients (phi-phi) or activity coefficients (gamma-phi)
	K    []float64 // equilibrium ratios y/x
	It   int       // number of iterations; It ≥ kmax indicates no convergence

	// additional information
	Method Method // method used to compute this result
}

// newResult allocates a result
func newResult(n int, method Method) *Result {
	return &Result{
		X:      make([]float64, n),
		Y:      make([]float64, n),
		PhiV:   make([]float64, n),
		PhiL:   make([]float64, n),
		K:      make([]float64, n),
		Method: method,
	}
}

// System holds a mixture and the settings of the equilibrium solvers
//  Note: solvers do not modify System; many goroutines may solve with the same System
type System struct {
	Mix     *eos.Mixture // equation of state of mixture
	Verbose bool         // print iterations

	// nested loops of gamma-phi dew point solvers
	InnerTol  float64 // tolerance of the liquid composition/activity loop; 0 means the outer tol
	InnerKmax int     // maximum iterations of the inner loop; 0 means the outer kmax

	// internal
	method   Method        // selected method
	activity ActivityModel // activity coefficients; nil with phi-phi
}

// NewSystem returns a new system using the phi-phi method
func NewSystem(m *eos.Mixture) *System {
	return &System{Mix: m}
}

// N returns the number of components
func (o *System) N() int {
	return o.Mix.N()
}

// Subs returns the substances
func (o *System) Subs() []*subs.Substance {
	return o.Mix.Rule.Subs
}

// Ids returns the ids of substances
func (o *System) Ids() (ids []string) {
	for _, s := range o.Subs() {
		ids = append(ids, s.Id)
	}
	return
}

// Method returns the selected method
func (o *System) Method() Method {
	return o.method
}

// SetMethod selects the VLE method. GammaPhi falls back to PhiPhi when the mixture has
// less than two components or the source cannot provide a model for all substances
//  Output: the method actually selected
func (o *System) SetMethod(m Method, src ActivitySource) Method {
	o.method, o.activity = PhiPhi, nil
	if m != GammaPhi || src == nil || o.N() < 2 {
		return o.method
	}
	ids := o.Ids()
	if !src.Has(ids) {
		return o.method
	}
	model, err := src.Model(ids)
	if err != nil {
		return o.method
	}
	o.method, o.activity = GammaPhi, model
	return o.method
}

// CheckComp checks that the composition x has n non-negative entries summing to one
func CheckComp(name string, x []float64, n int) error {
	if len(x) != n {
		return fmt.Errorf("%s has %d entries but mixture has %d components: %w", name, len(x), n, ErrInvalidComposition)
	}
	for i, v := range x {
		if v < 0 || math.IsNaN(v) {
			return fmt.Errorf("%s[%d]=%g is invalid: %w", name, i, v, ErrInvalidComposition)
		}
	}
	if sum := floats.Sum(x); math.Abs(sum-1.0) > CompTol {
		return fmt.Errorf("Σ %s = %.17g must be 1: %w", name, sum, ErrInvalidComposition)
	}
	return nil
}

func (o *System) checkComp(name string, x []float64) error {
	return CheckComp(name, x, o.N())
}

// phis computes the liquid and vapour fugacity coefficients; the liquid uses the smallest
// root at x and the vapour the largest root at y
func (o *System) phis(phiL, phiV, x, y []float64, P, T float64) error {
	zs, err := o.Mix.Z(P, T, x)
	if err != nil {
		return err
	}
	zl, _ := eos.LiqVap(zs)
	zs, err = o.Mix.Z(P, T, y)
	if err != nil {
		return err
	}
	_, zv := eos.LiqVap(zs)
	o.Mix.PhiAll(phiL, x, P, T, zl)
	o.Mix.PhiAll(phiV, y, P, T, zv)
	return nil
}

// phiVap computes the fugacity coefficients of the vapour at y
func (o *System) phiVap(phiV, y []float64, P, T float64) error {
	zs, err := o.Mix.Z(P, T, y)
	if err != nil {
		return err
	}
	_, zv := eos.LiqVap(zs)
	o.Mix.PhiAll(phiV, y, P, T, zv)
	return nil
}

// defaults replaces non-positive settings
func defaults(tol float64, kmax int, tolDef float64, kmaxDef int) (float64, int) {
	if tol <= 0 {
		tol = tolDef
	}
	if kmax <= 0 {
		kmax = kmaxDef
	}
	return tol, kmax
}
