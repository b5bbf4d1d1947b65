// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the presentation and storage of equilibrium results
package out

import (
	"github.com/cpmech/govle/eos"
	"github.com/cpmech/govle/subs"
	"github.com/cpmech/govle/vle"
)

// Record holds the results of one calculation in a form suitable for files
type Record struct {

	// calculation
	Kind   string   // kind of calculation; e.g. "bubbleP"
	Desc   string   // description
	Ids    []string // substances
	Method string   // VLE method

	// equilibrium
	X    []float64 // liquid composition
	Y    []float64 // vapour composition
	P    float64   // pressure [Pa]
	T    float64   // temperature [K]
	V    float64   // vapour fraction
	PhiV []float64 // vapour fugacity coefficients
	PhiL []float64 // liquid fugacity or activity coefficients
	K    []float64 // equilibrium ratios
	It   int       // number of iterations
	Kmax int       // iterations limit

	// other calculations
	Z       []float64 // roots of the cubic equation
	Liq     *State    // liquid state
	Vap     *State    // vapour state
	Diagram *Diagram  // binary diagram
}

// State holds the properties of one phase
type State struct {
	Z, V, Rho, P, T, Fugacity float64
	IG, Props                 *subs.Props
	Log                       string
}

// Diagram holds the data of a binary diagram
type Diagram struct {
	Isothermal bool
	T, P       float64
	Kmax       int
	Points     []Point
}

// Point holds one point of a binary diagram
type Point struct {
	X, Y, P, T float64
	It         int
	Carried    bool
	Err        string // message of solver failure; empty if none
}

// Converged tells whether the calculation converged
func (o *Record) Converged() bool {
	return o.Kmax == 0 || o.It < o.Kmax
}

// NewRecord returns a new record of an equilibrium calculation
func NewRecord(kind, desc string, ids []string, res *vle.Result, kmax int) *Record {
	return &Record{
		Kind:   kind,
		Desc:   desc,
		Ids:    ids,
		Method: res.Method.String(),
		X:      res.X,
		Y:      res.Y,
		P:      res.P,
		T:      res.T,
		V:      res.V,
		PhiV:   res.PhiV,
		PhiL:   res.PhiL,
		K:      res.K,
		It:     res.It,
		Kmax:   kmax,
	}
}

// NewStates returns a new record with liquid and vapour states
func NewStates(kind, desc string, ids []string, liq, vap *eos.PhaseState) *Record {
	return &Record{Kind: kind, Desc: desc, Ids: ids, P: liq.P, T: liq.T, Liq: newState(liq), Vap: newState(vap)}
}

// NewDiagram returns a new record with a binary diagram
func NewDiagram(kind, desc string, ids []string, d *vle.Diagram) *Record {
	dia := &Diagram{Isothermal: d.Isothermal, T: d.T, P: d.P, Kmax: d.Kmax, Points: make([]Point, len(d.Points))}
	for i, p := range d.Points {
		dia.Points[i] = Point{X: p.X, Y: p.Y, P: p.P, T: p.T, It: p.It, Carried: p.Carried}
		if p.Err != nil {
			dia.Points[i].Err = p.Err.Error()
		}
	}
	return &Record{Kind: kind, Desc: desc, Ids: ids, P: d.P, T: d.T, Diagram: dia}
}

// newState converts a phase state
func newState(s *eos.PhaseState) *State {
	st := &State{Z: s.Z, V: s.V, Rho: s.Rho, P: s.P, T: s.T, Fugacity: s.Fugacity, Log: s.Log}
	if s.IG != nil {
		ig := *s.IG
		st.IG = &ig
	}
	if s.Props != nil {
		p := *s.Props
		st.Props = &p
	}
	if s.PropErr != nil {
		st.Log += s.PropErr.Error()
	}
	return st
}
