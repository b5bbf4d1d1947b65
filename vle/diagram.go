// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package vle

import (
	"errors"

	"github.com/cpmech/gosl/chk"
)

// settings of isothermal diagrams
const (
	DiagramTolP  = 1e-5
	DiagramKmaxP = 100
)

// DefaultX is the default grid of liquid mole fractions of the first component
var DefaultX = []float64{
	0, 0.01, 0.02, 0.03, 0.04, 0.06, 0.08, 0.1, 0.15, 0.2, 0.25, 0.3, 0.35, 0.4, 0.45, 0.5,
	0.55, 0.6, 0.65, 0.7, 0.75, 0.8, 0.85, 0.9, 0.92, 0.94, 0.96, 0.97, 0.98, 0.99, 1,
}

// DiagramPoint holds one bubble point of a binary mixture
type DiagramPoint struct {
	X       float64    // liquid mole fraction of first component
	Y       float64    // vapour mole fraction of first component
	P       float64    // pressure
	T       float64    // temperature
	PhiV    [2]float64 // vapour fugacity coefficients
	PhiL    [2]float64 // liquid fugacity coefficients or activity coefficients
	K       [2]float64 // equilibrium ratios
	It      int        // number of iterations
	Err     error      // solver error, if any
	Carried bool       // values copied from a neighbour because the solver failed here
}

// converged tells whether the point was solved within kmax iterations
func (o *DiagramPoint) converged(kmax int) bool {
	return o.Err == nil && o.It < kmax
}

// copyFrom copies the solution of another point; X and Err are kept
func (o *DiagramPoint) copyFrom(other *DiagramPoint) {
	x, err := o.X, o.Err
	*o = *other
	o.X, o.Err = x, err
	o.Carried = true
}

// Diagram holds the data of a binary phase diagram
type Diagram struct {
	Isothermal bool           // T is fixed; otherwise P is fixed
	T          float64        // temperature (isothermal)
	P          float64        // pressure (isobaric)
	Kmax       int            // iteration limit used in all points
	Points     []DiagramPoint // one point per liquid mole fraction
}

// Isothermal computes bubble pressures of a binary mixture at temperature T
//  x -- liquid mole fractions of first component; nil means DefaultX
func (o *System) Isothermal(T float64, x []float64) (*Diagram, error) {
	d := &Diagram{Isothermal: true, T: T, Kmax: DiagramKmaxP}
	err := o.diagram(d, x, func(xmix []float64) (*Result, error) {
		return o.BubbleP(xmix, T, DiagramTolP, DiagramKmaxP)
	})
	return d, err
}

// Isobaric computes bubble temperatures of a binary mixture at pressure P
//  x -- liquid mole fractions of first component; nil means DefaultX
func (o *System) Isobaric(P float64, x []float64) (*Diagram, error) {
	kmax := KmaxBubbleT
	d := &Diagram{P: P, Kmax: kmax}
	err := o.diagram(d, x, func(xmix []float64) (*Result, error) {
		return o.BubbleT(xmix, P, 0, kmax)
	})
	return d, err
}

// diagram solves all points concurrently and applies the carry-forward policy
func (o *System) diagram(d *Diagram, x []float64, solve func(xmix []float64) (*Result, error)) error {
	if o.N() != 2 {
		return chk.Err("diagrams require binary mixtures. n=%d is invalid", o.N())
	}
	if x == nil {
		x = DefaultX
	}
	d.Points = make([]DiagramPoint, len(x))
	done := make(chan int, len(x))
	for i := range x {
		go func(i int) {
			p := &d.Points[i]
			p.X = x[i]
			res, err := solve([]float64{x[i], 1.0 - x[i]})
			if err != nil {
				p.Err = err
				done <- 1
				return
			}
			p.Y, p.P, p.T, p.It = res.Y[0], res.P, res.T, res.It
			copy(p.PhiV[:], res.PhiV)
			copy(p.PhiL[:], res.PhiL)
			copy(p.K[:], res.K)
			done <- 1
		}(i)
	}
	for range x {
		<-done
	}
	return CarryForward(d.Points, d.Kmax)
}

// ErrNoConvergedPoint is returned when no point of a diagram converged
var ErrNoConvergedPoint = errors.New("no point of the diagram converged")

// CarryForward replaces the points whose solver failed or reached kmax by the previous
// converged point. Leading failures take the first converged point after them
func CarryForward(pts []DiagramPoint, kmax int) error {
	first := -1
	for i := range pts {
		if pts[i].converged(kmax) {
			first = i
			break
		}
	}
	if first < 0 {
		return ErrNoConvergedPoint
	}
	for i := 0; i < first; i++ {
		pts[i].copyFrom(&pts[first])
	}
	last := first
	for i := first + 1; i < len(pts); i++ {
		if pts[i].converged(kmax) {
			last = i
			continue
		}
		pts[i].copyFrom(&pts[last])
	}
	return nil
}
