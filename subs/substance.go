// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package subs holds pure-substance property records and their correlations
package subs

import "math"

// constants
const (
	R       = 8.3144598             // universal gas constant [J/(mol⋅K)]
	MachEps = 2.220446049250313e-16 // machine epsilon for float64
)

// Substance holds the constant properties of a pure substance
//
//	Note: all quantities are in SI units; records are never modified by the solvers
type Substance struct {

	// identification
	Id      string  // key used by problem files
	Name    string  // name
	Formula string  // chemical formula
	CAS     string  // CAS registry number
	MolWt   float64 // molar mass [g/mol]

	// critical and characteristic data
	Tfp   float64 // freezing point [K]
	Tb    float64 // normal boiling point [K]
	Tc    float64 // critical temperature [K]
	Pc    float64 // critical pressure [Pa]
	Vc    float64 // critical volume [m³/mol]
	Zc    float64 // critical compressibility factor
	Omega float64 // acentric factor

	// ideal gas heat capacity: Cp/R = a0 + a1⋅T + a2⋅T² + a3⋅T³ + a4⋅T⁴
	Cp *CpData

	// Antoine: log10(P/bar) = A - B / (T + C - 273.15)
	Antoine *AntoineData
}

// CpData holds the ideal gas heat capacity polynomial
type CpData struct {
	Tmin, Tmax float64    // validity range [K]
	A          [5]float64 // coefficients (already scaled: a1 in 1/K, a2 in 1/K², ...)
}

// AntoineData holds Antoine coefficients and their validity range
type AntoineData struct {
	A, B, C    float64 // coefficients for P in bar and T in °C
	Tmin, Tmax float64 // validity range [K]
}

// HasCp tells whether ideal gas Cp coefficients are available
func (o *Substance) HasCp() bool {
	return o.Cp != nil
}

// HasAntoine tells whether Antoine coefficients are available
func (o *Substance) HasAntoine() bool {
	return o.Antoine != nil
}

// InAntoineRange tells whether T is within the validity range of the Antoine correlation
func (o *Substance) InAntoineRange(T float64) bool {
	if o.Antoine == nil {
		return false
	}
	return T >= o.Antoine.Tmin && T <= o.Antoine.Tmax
}

// PvpAntoine returns the vapour pressure [Pa] from the Antoine correlation
func (o *Substance) PvpAntoine(T float64) float64 {
	a := o.Antoine
	return 1e5 * math.Pow(10, a.A-a.B/(T+a.C-273.15))
}

// TsatAntoine inverts the Antoine correlation and returns the saturation temperature [K]
func (o *Substance) TsatAntoine(P float64) float64 {
	a := o.Antoine
	return a.B/(a.A-math.Log10(P/1e5)) - a.C + 273.15
}

// PvpAW returns the vapour pressure [Pa] from the Ambrose-Walton corresponding states correlation
func (o *Substance) PvpAW(T float64) float64 {
	tr := T / o.Tc
	τ := 1.0 - tr
	f0 := (-5.97616*τ + 1.29874*math.Pow(τ, 1.5) - 0.60394*math.Pow(τ, 2.5) - 1.06841*math.Pow(τ, 5)) / tr
	f1 := (-5.03365*τ + 1.11505*math.Pow(τ, 1.5) - 5.41217*math.Pow(τ, 2.5) - 7.46628*math.Pow(τ, 5)) / tr
	f2 := (-0.64771*τ + 2.41539*math.Pow(τ, 1.5) - 4.26979*math.Pow(τ, 2.5) + 3.25259*math.Pow(τ, 5)) / tr
	ω := o.Omega
	return o.Pc * math.Exp(f0+ω*f1+ω*ω*f2)
}

// PvpWilson returns the vapour pressure [Pa] estimated by the Wilson correlation
func (o *Substance) PvpWilson(T float64) float64 {
	return o.Pc * math.Exp(5.373*(1.0+o.Omega)*(1.0-o.Tc/T))
}

// TsatWilson inverts the Wilson correlation
func (o *Substance) TsatWilson(P float64) float64 {
	return o.Tc / (1.0 - math.Log(P/o.Pc)/(5.373*(1.0+o.Omega)))
}

// WilsonK returns the Wilson estimate of the equilibrium ratio K = y/x
func (o *Substance) WilsonK(T, P float64) float64 {
	return o.PvpWilson(T) / P
}
