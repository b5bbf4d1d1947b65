// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package eos

import (
	"github.com/cpmech/govle/subs"
)

// PhaseState holds the state of one phase
type PhaseState struct {

	// essential
	Z        float64 // compressibility factor
	V        float64 // molar volume [m³/mol]
	Rho      float64 // density [kg/m³]; zero if molar masses are unknown
	P        float64 // pressure [Pa]
	T        float64 // temperature [K]
	Fugacity float64 // fugacity of mixture [Pa]

	// property changes from the reference state; nil if unavailable
	IG    *subs.Props // ideal gas
	Props *subs.Props // real fluid

	// messages and failures of property groups
	Log     string // explanatory messages
	PropErr error  // failure of the real fluid property calculation
}

// GetCopy returns a copy of this state
func (o *PhaseState) GetCopy() *PhaseState {
	other := *o
	if o.IG != nil {
		ig := *o.IG
		other.IG = &ig
	}
	if o.Props != nil {
		p := *o.Props
		other.Props = &p
	}
	return &other
}

// AllProps computes the liquid and vapour states at (T, P) including the property changes
// from (Tref, Pref). Only a failure of the Z calculation is returned as an error; property
// groups that cannot be computed are left nil and explained in Log or PropErr
func (o *Mixture) AllProps(y []float64, Tref, T, Pref, P float64) (liq, vap *PhaseState, err error) {

	// roots
	zs, err := o.Z(P, T, y)
	if err != nil {
		return
	}
	zl, zv := LiqVap(zs)
	liq = &PhaseState{Z: zl, V: zl * subs.R * T / P, P: P, T: T}
	vap = &PhaseState{Z: zv, V: zv * subs.R * T / P, P: P, T: T}

	// densities
	sm := subs.Mixture{Subs: o.Rule.Subs, Y: y}
	if mw := sm.MolWt(); mw > 0 {
		liq.Rho = mw * 1e-3 / liq.V
		vap.Rho = mw * 1e-3 / vap.V
	}

	// fugacities
	liq.Fugacity = o.Fugacity(y, P, T, liq.V, liq.Z)
	vap.Fugacity = o.Fugacity(y, P, T, vap.V, vap.Z)

	// property changes
	ig, igerr := sm.IdealGas(Tref, T, Pref, P)
	if igerr != nil {
		msg := "Couldn't calculate properties: missing Cp parameters"
		liq.Log, vap.Log = msg, msg
		return
	}
	msg := sm.CpLog(Tref, T)
	liq.Log, vap.Log = msg, msg
	igl, igv := ig, ig
	liq.IG, vap.IG = &igl, &igv
	pl, pv, perr := o.CpHSGUA(y, Tref, T, Pref, P)
	if perr != nil {
		liq.PropErr, vap.PropErr = perr, perr
		return
	}
	liq.Props, vap.Props = &pl, &pv
	return
}
