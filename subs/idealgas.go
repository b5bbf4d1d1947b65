// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subs

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Props holds a set of property changes (or departures) between two states
//  Units: Cp [J/(mol⋅K)]; H, G, U, A [J/mol]; S [J/(mol⋅K)]
type Props struct {
	Cp float64 // heat capacity at the final state
	H  float64 // enthalpy
	S  float64 // entropy
	G  float64 // Gibbs energy
	U  float64 // internal energy
	A  float64 // Helmholtz energy
}

// Add returns o + other. Cp is taken from o
func (o Props) Add(other Props) Props {
	return Props{o.Cp, o.H + other.H, o.S + other.S, o.G + other.G, o.U + other.U, o.A + other.A}
}

// Sub returns o - other. Cp is taken from o
func (o Props) Sub(other Props) Props {
	return Props{o.Cp, o.H - other.H, o.S - other.S, o.G - other.G, o.U - other.U, o.A - other.A}
}

// CpIG returns the ideal gas heat capacity [J/(mol⋅K)]
func (o *CpData) CpIG(T float64) float64 {
	a := o.A
	return R * (a[0] + T*(a[1]+T*(a[2]+T*(a[3]+T*a[4]))))
}

// intCp returns ∫Cp dT from T1 to T2
func (o *CpData) intCp(T1, T2 float64) float64 {
	a := o.A
	F := func(t float64) float64 {
		return t * (a[0] + t*(a[1]/2+t*(a[2]/3+t*(a[3]/4+t*a[4]/5))))
	}
	return R * (F(T2) - F(T1))
}

// intCpOverT returns ∫Cp/T dT from T1 to T2
func (o *CpData) intCpOverT(T1, T2 float64) float64 {
	a := o.A
	F := func(t float64) float64 {
		return a[0]*math.Log(t) + t*(a[1]+t*(a[2]/2+t*(a[3]/3+t*a[4]/4)))
	}
	return R * (F(T2) - F(T1))
}

// Mixture holds a list of substances and mole fractions to compute averaged properties
type Mixture struct {
	Subs []*Substance
	Y    []float64
}

// MolWt returns the average molar mass or 0 if any molar mass is unknown
func (o Mixture) MolWt() float64 {
	mw := 0.0
	for i, s := range o.Subs {
		if s.MolWt <= 0 {
			return 0
		}
		mw += o.Y[i] * s.MolWt
	}
	return mw
}

// HasCp tells whether all substances have Cp coefficients
func (o Mixture) HasCp() bool {
	for _, s := range o.Subs {
		if !s.HasCp() {
			return false
		}
	}
	return true
}

// IdealGas computes the ideal gas property changes from (Tref, Pref) to (T, P)
//  Note: the Cp of the result is the mixture ideal gas Cp at T
func (o Mixture) IdealGas(Tref, T, Pref, P float64) (res Props, err error) {
	if !o.HasCp() {
		return res, chk.Err("missing Cp parameters")
	}
	for i, s := range o.Subs {
		res.Cp += o.Y[i] * s.Cp.CpIG(T)
		res.H += o.Y[i] * s.Cp.intCp(Tref, T)
		res.S += o.Y[i] * s.Cp.intCpOverT(Tref, T)
	}
	res.S -= R * math.Log(P/Pref)
	res.G = res.H - T*res.S
	res.U = res.H - R*(T-Tref)
	res.A = res.U - T*res.S
	return
}

// CpLog returns a message listing substances whose Cp range does not cover [Tref, T]
func (o Mixture) CpLog(Tref, T float64) (log string) {
	for _, s := range o.Subs {
		if s.Cp == nil {
			continue
		}
		tmin, tmax := math.Min(Tref, T), math.Max(Tref, T)
		if tmin < s.Cp.Tmin || tmax > s.Cp.Tmax {
			log += io.Sf("%s: Cp correlation valid in [%g, %g] K; extrapolating to [%g, %g] K\n", s.Id, s.Cp.Tmin, s.Cp.Tmax, tmin, tmax)
		}
	}
	return
}
