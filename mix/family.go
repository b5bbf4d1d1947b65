// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mix implements cubic equation of state families and their mixing rules
package mix

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Kind tags an equation of state family
type Kind int

const (
	PR1976  Kind = iota // Peng and Robinson (1976)
	SRK1972             // Soave (1972)
	RK1949              // Redlich and Kwong (1949)
	VdW1890             // van der Waals (1890)
)

// Family holds the constants of a generalised cubic equation of state
//
//   P = R⋅T/(V-b) - θ/(V² + δ⋅V + ε)
//
//  with a = Ωa⋅R²⋅Tc²/Pc, b = Ωb⋅R⋅Tc/Pc, θ = a⋅α(T), δ = c1⋅b and ε = c2⋅b²
type Family struct {
	Kind   Kind    // tag
	Name   string  // long name
	OmegaA float64 // Ωa
	OmegaB float64 // Ωb
	C1     float64 // δ = c1⋅b
	C2     float64 // ε = c2⋅b²
	Zc     float64 // critical compressibility factor of a pure substance
}

// families holds all available families
var families = map[string]*Family{}

func init() {
	families["PR1976"] = &Family{PR1976, "Peng and Robinson (1976)", 0.45724, 0.07780, 2, -1, 0.3074}
	families["SRK1972"] = &Family{SRK1972, "Soave (1972)", 0.42748, 0.08664, 1, 0, 1.0 / 3.0}
	families["RK1949"] = &Family{RK1949, "Redlich and Kwong (1949)", 0.42748, 0.08664, 1, 0, 1.0 / 3.0}
	families["vdW1890"] = &Family{VdW1890, "van der Waals (1890)", 27.0 / 64.0, 1.0 / 8.0, 0, 0, 3.0 / 8.0}
}

// GetFamily returns a family by key
func GetFamily(key string) (*Family, error) {
	f, ok := families[key]
	if !ok {
		return nil, chk.Err("equation of state %q is not available in 'mix' database", key)
	}
	return f, nil
}

// Families returns the sorted keys of all families
func Families() (keys []string) {
	for k := range families {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return
}

// kappa returns the κ(ω) factor of the alpha function
func (o *Family) kappa(ω float64) float64 {
	switch o.Kind {
	case PR1976:
		return 0.37464 + 1.54226*ω - 0.26992*ω*ω
	case SRK1972:
		return 0.480 + 1.574*ω - 0.176*ω*ω
	}
	return 0
}

// alpha computes α(Tr) given κ
func (o *Family) alpha(tr, κ float64) float64 {
	switch o.Kind {
	case PR1976, SRK1972:
		s := 1.0 + κ*(1.0-math.Sqrt(tr))
		return s * s
	case RK1949:
		return 1.0 / math.Sqrt(tr)
	}
	return 1
}
