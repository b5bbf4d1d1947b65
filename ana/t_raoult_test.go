// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_raoult01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("raoult01")

	var sol Raoult
	if err := sol.Init([]float64{2e5, 0.5e5}); err != nil {
		tst.Errorf("Init failed:\n%v", err)
		return
	}
	if err := new(Raoult).Init([]float64{1e5, 0}); err == nil {
		tst.Errorf("Init should have failed\n")
	}

	x := []float64{0.4, 0.6}
	Pb, y := sol.BubbleP(x)
	io.Pforan("Pb = %v  y = %v\n", Pb, y)
	chk.Float64(tst, "Pb", 1e-10, Pb, 0.4*2e5+0.6*0.5e5)
	chk.Array(tst, "y", 1e-15, y, []float64{0.8e5 / 1.1e5, 0.3e5 / 1.1e5})

	Pd, x2 := sol.DewP(y)
	chk.Float64(tst, "Pd", 1e-9, Pd, Pb)
	chk.Array(tst, "x", 1e-15, x2, x)

	// flash at P = 1e5: K = [2, 0.5]
	K := sol.K(1e5)
	chk.Array(tst, "K", 1e-15, K, []float64{2, 0.5})
	v, xf, yf := BinaryFlash(K, []float64{0.5, 0.5})
	chk.Float64(tst, "v", 1e-15, v, 0.5)
	chk.Array(tst, "x", 1e-15, xf, []float64{1.0 / 3.0, 2.0 / 3.0})
	chk.Array(tst, "y", 1e-15, yf, []float64{2.0 / 3.0, 1.0 / 3.0})
}
