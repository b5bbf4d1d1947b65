// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subs

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

const dbtest = `
- id: propane
  name: Propane
  formula: C3H8
  cas: 74-98-6
  molwt: 44.097
  tb: 231.02
  tc: 369.83
  pc: 42.48
  vc: 200.0
  omega: 0.152
  cp: { tmin: 50, tmax: 1000, a: [3.847, 5.131, 6.011, -7.893, 3.079] }
- id: n-pentane
  name: Pentane
  formula: C5H12
  molwt: 72.15
  tb: 309.22
  tc: 469.7
  pc: 33.7
  vc: 311.0
  zc: 0.27
  omega: 0.252
  antoine: { a: 3.97786, b: 1064.840, c: 232.014, tmin: 269, tmax: 341 }
`

func Test_db01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("db01. parse database")

	db, err := ParseDb([]byte(dbtest))
	if err != nil {
		tst.Errorf("ParseDb failed:\n%v", err)
		return
	}
	ids := db.Ids()
	io.Pforan("ids = %v\n", ids)
	chk.Int(tst, "number of substances", len(ids), 2)

	c3, err := db.Get("propane")
	if err != nil {
		tst.Errorf("Get failed:\n%v", err)
		return
	}
	chk.Float64(tst, "Pc", 1e-8, c3.Pc, 42.48e5)
	chk.Float64(tst, "Vc", 1e-15, c3.Vc, 200e-6)
	chk.Float64(tst, "Zc", 1e-12, c3.Zc, 42.48e5*200e-6/(R*369.83))
	chk.Float64(tst, "a1", 1e-15, c3.Cp.A[1], 5.131e-3)
	chk.Float64(tst, "a4", 1e-20, c3.Cp.A[4], 3.079e-11)
	if c3.HasAntoine() {
		tst.Errorf("propane should not have Antoine data\n")
	}

	c5, _ := db.Get("n-pentane")
	chk.Float64(tst, "Zc", 1e-15, c5.Zc, 0.27)
	if c5.HasCp() {
		tst.Errorf("n-pentane should not have Cp data\n")
	}

	_, err = db.Get("water")
	if err == nil {
		tst.Errorf("Get should have failed\n")
	}

	list, err := GetList(db, []string{"n-pentane", "propane"})
	if err != nil {
		tst.Errorf("GetList failed:\n%v", err)
		return
	}
	if list[0] != c5 || list[1] != c3 {
		tst.Errorf("GetList returned records in the wrong order\n")
	}
}

func Test_db02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("db02. invalid records")

	for _, txt := range []string{
		"- { id: a, tc: 0, pc: 10 }",
		"- { name: noid, tc: 300, pc: 10 }",
		"- { id: a, tc: 300, pc: 10 }\n- { id: a, tc: 310, pc: 11 }",
		"id: [",
	} {
		if _, err := ParseDb([]byte(txt)); err == nil {
			tst.Errorf("ParseDb should have failed for %q\n", txt)
		} else {
			io.Pforan("%v\n", err)
		}
	}
}

func Test_db03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("db03. read database file")

	db, err := ReadDb("../examples/db.yaml")
	if err != nil {
		tst.Errorf("ReadDb failed:\n%v", err)
		return
	}
	ids := db.Ids()
	io.Pforan("ids = %v\n", ids)
	chk.Int(tst, "number of substances", len(ids), 7)
	if _, err = db.Get("n-hexane"); err != nil {
		tst.Errorf("Get failed:\n%v", err)
	}

	// missing file returns an error
	if _, err = ReadDb(filepath.Join(tst.TempDir(), "none.yaml")); err == nil {
		tst.Errorf("ReadDb should have failed with missing file\n")
	} else {
		io.Pforan("%v\n", err)
	}
}

func Test_pvp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pvp01. vapour pressure correlations")

	db, _ := ParseDb([]byte(dbtest))
	c3, _ := db.Get("propane")
	c5, _ := db.Get("n-pentane")

	// Antoine at the normal boiling point
	if !c5.InAntoineRange(c5.Tb) {
		tst.Errorf("Tb should be within Antoine range\n")
		return
	}
	P := c5.PvpAntoine(c5.Tb)
	io.Pforan("Pvp(Tb) = %v\n", P)
	chk.Float64(tst, "Pvp(Tb)/1atm", 0.005, P/101325, 1)
	chk.Float64(tst, "Tsat(Pvp(T))", 1e-9, c5.TsatAntoine(c5.PvpAntoine(300)), 300)
	if c5.InAntoineRange(400) || c3.InAntoineRange(300) {
		tst.Errorf("InAntoineRange failed\n")
	}

	// Ambrose-Walton and Wilson at the normal boiling point
	chk.Float64(tst, "PvpAW(Tb)/1atm", 0.01, c3.PvpAW(c3.Tb)/101325, 1)
	chk.Float64(tst, "PvpWilson(Tb)/1atm", 0.03, c3.PvpWilson(c3.Tb)/101325, 1)
	chk.Float64(tst, "PvpAW(Tc)", 1e-8, c3.PvpAW(c3.Tc), c3.Pc)

	// Wilson inverse
	for _, T := range []float64{200, 250, 300, 350} {
		chk.Float64(tst, "TsatWilson", 1e-9, c3.TsatWilson(c3.PvpWilson(T)), T)
		chk.Float64(tst, "WilsonK", 1e-12, c3.WilsonK(T, 2e5), c3.PvpWilson(T)/2e5)
	}
}

func Test_idealgas01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("idealgas01. constant Cp")

	s := &Substance{Id: "a", MolWt: 10, Cp: &CpData{Tmin: 100, Tmax: 500, A: [5]float64{3.5}}}
	m := Mixture{Subs: []*Substance{s, s}, Y: []float64{0.3, 0.7}}
	Tref, T, Pref, P := 298.15, 400.0, 1e5, 5e5
	res, err := m.IdealGas(Tref, T, Pref, P)
	if err != nil {
		tst.Errorf("IdealGas failed:\n%v", err)
		return
	}
	dH := 3.5 * R * (T - Tref)
	dS := 3.5*R*math.Log(T/Tref) - R*math.Log(P/Pref)
	chk.Float64(tst, "Cp", 1e-12, res.Cp, 3.5*R)
	chk.Float64(tst, "ΔH", 1e-9, res.H, dH)
	chk.Float64(tst, "ΔS", 1e-12, res.S, dS)
	chk.Float64(tst, "ΔG", 1e-9, res.G, dH-T*dS)
	chk.Float64(tst, "ΔU", 1e-9, res.U, dH-R*(T-Tref))
	chk.Float64(tst, "ΔA", 1e-9, res.A, dH-R*(T-Tref)-T*dS)
	chk.Float64(tst, "MolWt", 1e-14, m.MolWt(), 10)
	if m.CpLog(Tref, T) != "" {
		tst.Errorf("CpLog should be empty\n")
	}
	if m.CpLog(50, T) == "" {
		tst.Errorf("CpLog should report extrapolation\n")
	}

	// missing Cp
	m.Subs[1] = &Substance{Id: "b"}
	_, err = m.IdealGas(Tref, T, Pref, P)
	if err == nil {
		tst.Errorf("IdealGas should have failed\n")
	}
	chk.Float64(tst, "MolWt", 1e-14, m.MolWt(), 0)
}

func Test_idealgas02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("idealgas02. polynomial Cp integrals")

	db, _ := ParseDb([]byte(dbtest))
	c3, _ := db.Get("propane")
	T1, T2 := 300.0, 600.0

	// trapezoidal rule
	n := 20000
	h := (T2 - T1) / float64(n)
	sumH, sumS := 0.0, 0.0
	for i := 0; i <= n; i++ {
		t := T1 + float64(i)*h
		w := 1.0
		if i == 0 || i == n {
			w = 0.5
		}
		sumH += w * c3.Cp.CpIG(t)
		sumS += w * c3.Cp.CpIG(t) / t
	}
	chk.Float64(tst, "∫Cp dT", 1e-3, c3.Cp.intCp(T1, T2), sumH*h)
	chk.Float64(tst, "∫Cp/T dT", 1e-6, c3.Cp.intCpOverT(T1, T2), sumS*h)
	io.Pforan("Cp(300) = %v\n", c3.Cp.CpIG(300))
	chk.Float64(tst, "Cp(300)", 0.01, c3.Cp.CpIG(300), 74.119)
}
