// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vle

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/govle/eos"
	"github.com/cpmech/govle/subs"
	"gonum.org/v1/gonum/floats"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

var (
	propane = &subs.Substance{Id: "propane", Tc: 369.83, Pc: 42.48e5, Omega: 0.152, Tb: 231.02, MolWt: 44.097}
	nbutane = &subs.Substance{Id: "n-butane", Tc: 425.12, Pc: 37.96e5, Omega: 0.200, Tb: 272.66, MolWt: 58.123}
	pentane = &subs.Substance{Id: "n-pentane", Tc: 469.7, Pc: 33.7e5, Omega: 0.252, Tb: 309.22,
		Antoine: &subs.AntoineData{A: 3.97786, B: 1064.840, C: 232.014, Tmin: 269, Tmax: 341}}
	hexane = &subs.Substance{Id: "n-hexane", Tc: 507.6, Pc: 30.25e5, Omega: 0.301, Tb: 341.88,
		Antoine: &subs.AntoineData{A: 4.00266, B: 1171.530, C: 224.216, Tmin: 286, Tmax: 343}}
)

// newSystem returns a phi-phi system
func newSystem(tst *testing.T, fam string, list ...*subs.Substance) *System {
	m, err := eos.NewMixture(fam, list)
	if err != nil {
		tst.Fatalf("cannot allocate mixture:\n%v", err)
	}
	return NewSystem(m)
}

// checkSum checks that a composition sums to one
func checkSum(tst *testing.T, msg string, tol float64, x []float64) {
	chk.Float64(tst, "Σ "+msg, tol, floats.Sum(x), 1)
}
