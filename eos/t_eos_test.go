// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/govle/mix"
	"github.com/cpmech/govle/subs"
	"gonum.org/v1/gonum/mat"
)

var (
	water   = &subs.Substance{Id: "water", Tc: 647.1, Pc: 220.6e5, Omega: 0.344, MolWt: 18.015}
	methane = &subs.Substance{Id: "methane", Tc: 190.56, Pc: 45.99e5, Omega: 0.011, MolWt: 16.043}
	propane = &subs.Substance{Id: "propane", Tc: 369.83, Pc: 42.48e5, Omega: 0.152, MolWt: 44.097,
		Cp: &subs.CpData{Tmin: 50, Tmax: 1000, A: [5]float64{3.847, 5.131e-3, 6.011e-5, -7.893e-8, 3.079e-11}}}
	nbutane = &subs.Substance{Id: "n-butane", Tc: 425.12, Pc: 37.96e5, Omega: 0.200, MolWt: 58.123}
)

func newMixture(tst *testing.T, fam string, list ...*subs.Substance) *Mixture {
	m, err := NewMixture(fam, list)
	if err != nil {
		tst.Fatalf("NewMixture failed:\n%v", err)
	}
	return m
}

func Test_z01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("z01. compressibility factor")

	// critical point of water
	m := newMixture(tst, "PR1976", water)
	y := []float64{1}
	zs, err := m.Z(water.Pc, water.Tc, y)
	if err != nil {
		tst.Errorf("Z failed:\n%v", err)
		return
	}
	io.Pforan("Z(Pc,Tc) = %v\n", zs)
	for _, z := range zs {
		chk.Float64(tst, "Z/Zc", 0.05, z/0.3074, 1)
	}

	// nearly ideal gas
	m = newMixture(tst, "PR1976", methane)
	zs, _ = m.Z(1e5, 300, y)
	_, zv := LiqVap(zs)
	io.Pforan("Z(1bar,300K) = %v\n", zs)
	if zv > 1 || zv < 0.99 {
		tst.Errorf("methane at 1 bar should be nearly ideal. Z=%g\n", zv)
	}

	// roots reproduce the pressure
	for _, fam := range mix.Families() {
		m = newMixture(tst, fam, methane, propane, nbutane)
		y = []float64{0.2, 0.5, 0.3}
		P, T := 15e5, 310.0
		zs, err = m.Z(P, T, y)
		if err != nil {
			tst.Errorf("Z failed:\n%v", err)
			return
		}
		for _, z := range zs {
			if z < 0 {
				tst.Errorf("negative root %g\n", z)
			}
			V := z * subs.R * T / P
			chk.Float64(tst, fam+": P(T,V)/P", 1e-9, m.P(T, V, y)/P, 1)
		}
	}
}

func Test_phi01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("phi01. fugacity coefficients of pure substance")

	m := newMixture(tst, "PR1976", propane)
	y := []float64{1}
	P, T := 5e5, 300.0
	zs, _ := m.Z(P, T, y)
	chk.Int(tst, "number of roots", len(zs), 3)

	p := m.Rule.Params(y, T)
	A := p.Theta * P / math.Pow(subs.R*T, 2)
	B := p.B * P / (subs.R * T)
	r2 := math.Sqrt2
	for _, z := range zs {
		lnφ := z - 1 - math.Log(z-B) - A/(2*r2*B)*math.Log((z+(1+r2)*B)/(z+(1-r2)*B))
		io.Pforan("Z=%v  φ=%v\n", z, math.Exp(lnφ))
		chk.Float64(tst, "φ", 1e-10, m.Phi(0, y, P, T, z), math.Exp(lnφ))
	}

	// van der Waals: δ = ε = 0
	m = newMixture(tst, "vdW1890", propane)
	P = 1e5
	zs, _ = m.Z(P, T, y)
	p = m.Rule.Params(y, T)
	for _, z := range zs {
		V := z * subs.R * T / P
		lnφ := p.B/(V-p.B) - math.Log(z*(1-p.B/V)) - 2*p.Theta/(subs.R*T*V)
		chk.Float64(tst, "vdW: φ", 1e-10, m.Phi(0, y, P, T, z), math.Exp(lnφ))
	}
}

func Test_phi02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("phi02. fugacity coefficients of mixture")

	list := []*subs.Substance{methane, propane, nbutane}
	k := mat.NewDense(3, 3, []float64{
		0, 0.02, 0.03,
		0.02, 0, 0.01,
		0.03, 0.01, 0,
	})
	r, err := mix.New("PR1976", list, k)
	if err != nil {
		tst.Errorf("mix.New failed:\n%v", err)
		return
	}
	m := New(r)
	y := []float64{0.5, 0.3, 0.2}
	P, T := 20e5, 280.0
	zs, _ := m.Z(P, T, y)
	p := r.Params(y, T)
	A := p.Theta * P / math.Pow(subs.R*T, 2)
	B := p.B * P / (subs.R * T)
	r2 := math.Sqrt2
	phi := make([]float64, 3)
	for _, z := range zs {
		m.PhiAll(phi, y, P, T, z)
		f := 0.0
		for i := 0; i < 3; i++ {
			aij := 0.0
			for j := 0; j < 3; j++ {
				aij += y[j] * math.Sqrt(p.Th[i]*p.Th[j]) * (1 - k.At(i, j))
			}
			bb := r.Bi(i) / p.B
			lnφ := bb*(z-1) - math.Log(z-B) - A/(2*r2*B)*(2*aij/p.Theta-bb)*math.Log((z+(1+r2)*B)/(z+(1-r2)*B))
			chk.Float64(tst, "lnφ", 1e-9, math.Log(phi[i]), lnφ)
			chk.Float64(tst, "Phi", 1e-15, m.Phi(i, y, P, T, z), phi[i])
			f += y[i] * phi[i]
		}
		V := z * subs.R * T / P
		chk.Float64(tst, "fugacity", 1e-8, m.Fugacity(y, P, T, V, z), f*P)
	}
}

func Test_phi03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("phi03. degenerate discriminant")

	// parameters of a pure fluid with δ = 0 and ε = -D/4 such that δ² - 4ε = D
	b, θ := 5e-5, 0.5
	P, T, Z := 1e5, 300.0, 0.98
	calc := func(D float64) float64 {
		p := mix.Params{B: b, Theta: θ, Delta: 0, Eps: -D / 4}
		d := mix.Derivs{B: b, Theta: 2 * θ, Delta: 0, Eps: -D / 2}
		return lnPhi(&p, &d, P, T, Z)
	}
	limit := calc(1e-15)
	general := calc(1e-12)
	io.Pforan("limit = %v  general = %v\n", limit, general)
	if math.IsNaN(limit) || math.IsInf(limit, 0) {
		tst.Errorf("limiting formula must be finite\n")
		return
	}
	chk.Float64(tst, "lnφ", 1e-9, limit, general)

	// the limiting formula does not depend on ε for |D| < 100⋅ε_mach
	chk.Float64(tst, "lnφ(D=0)", 1e-14, calc(0), limit)
}

func Test_dzdt01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dzdt01. temperature derivatives of Z")

	m := newMixture(tst, "PR1976", propane, nbutane)
	y := []float64{0.4, 0.6}
	P, T := 3e5, 300.0
	dzl, dzv, err := m.DZdT(P, T, y)
	if err != nil {
		tst.Errorf("DZdT failed:\n%v", err)
		return
	}
	h := 1e-3
	zp, _ := m.Z(P, T+h, y)
	zm, _ := m.Z(P, T-h, y)
	zlp, zvp := LiqVap(zp)
	zlm, zvm := LiqVap(zm)
	io.Pforan("dZl/dT = %v  dZv/dT = %v\n", dzl, dzv)
	chk.Float64(tst, "dZl/dT", 1e-8, dzl, (zlp-zlm)/(2*h))
	chk.Float64(tst, "dZv/dT", 1e-8, dzv, (zvp-zvm)/(2*h))
}
