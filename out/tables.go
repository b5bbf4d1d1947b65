// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/govle/subs"
)

// Table returns a text table with the contents of a record
func Table(rec *Record) (l string) {
	switch {
	case rec.Diagram != nil:
		l = DiagramTable(rec.Diagram)
	case rec.Liq != nil:
		l = StatesTable(rec.Liq, rec.Vap)
	case rec.Z != nil:
		l = ZTable(rec.Z, rec.P, rec.T)
	default:
		l = EquilibriumTable(rec)
	}
	return
}

// EquilibriumTable returns a table with compositions and coefficients of each component
func EquilibriumTable(rec *Record) (l string) {
	l = io.Sf("P = %.6g Pa   T = %.6g K", rec.P, rec.T)
	if rec.Kind == "flash" {
		l += io.Sf("   v = %.6g", rec.V)
	}
	l += io.Sf("   iterations = %d", rec.It)
	if !rec.Converged() {
		l += " (not converged)"
	}
	l += "\n"
	phil := "φL"
	if rec.Method == "UNIFAC" {
		phil = "γ"
	}
	w := idWidth(rec.Ids)
	l += io.Sf("%-*s%14s%14s%14s%14s%14s\n", w, "substance", "x", "y", phil, "φV", "K")
	for i, id := range rec.Ids {
		l += io.Sf("%-*s%14.6g%14.6g%14.6g%14.6g%14.6g\n", w, id, rec.X[i], rec.Y[i], rec.PhiL[i], rec.PhiV[i], rec.K[i])
	}
	return
}

// StatesTable returns a table with liquid and vapour properties
func StatesTable(liq, vap *State) (l string) {
	row := func(name, unit string, a, b float64) string {
		return io.Sf("%-10s%-14s%18.8g%18.8g\n", name, unit, a, b)
	}
	l = io.Sf("%-24s%18s%18s\n", "property", "liquid", "vapour")
	l += row("Z", "", liq.Z, vap.Z)
	l += row("V", "m³/mol", liq.V, vap.V)
	l += row("ρ", "kg/m³", liq.Rho, vap.Rho)
	l += row("f", "Pa", liq.Fugacity, vap.Fugacity)
	props := func(title string, a, b *subs.Props) {
		if a == nil || b == nil {
			return
		}
		l += io.Sf("%s\n", title)
		l += row("Cp", "J/(mol⋅K)", a.Cp, b.Cp)
		l += row("ΔH", "J/mol", a.H, b.H)
		l += row("ΔS", "J/(mol⋅K)", a.S, b.S)
		l += row("ΔG", "J/mol", a.G, b.G)
		l += row("ΔU", "J/mol", a.U, b.U)
		l += row("ΔA", "J/mol", a.A, b.A)
	}
	props("ideal gas", liq.IG, vap.IG)
	props("real fluid", liq.Props, vap.Props)
	if liq.Log != "" {
		l += liq.Log + "\n"
	}
	if vap.Log != "" && vap.Log != liq.Log {
		l += vap.Log + "\n"
	}
	return
}

// ZTable returns a table with the roots of the cubic equation
func ZTable(zs []float64, P, T float64) (l string) {
	l = io.Sf("P = %.6g Pa   T = %.6g K\n", P, T)
	for i, z := range zs {
		l += io.Sf("Z%d = %.15g\n", i, z)
	}
	return
}

// DiagramTable returns a table with the points of a binary diagram
func DiagramTable(d *Diagram) (l string) {
	if d.Isothermal {
		l = io.Sf("isothermal: T = %g K\n", d.T)
	} else {
		l = io.Sf("isobaric: P = %g Pa\n", d.P)
	}
	l += io.Sf("%10s%14s%16s%14s%6s\n", "x", "y", "P", "T", "it")
	for _, p := range d.Points {
		l += io.Sf("%10.4f%14.8f%16.6f%14.6f%6d", p.X, p.Y, p.P, p.T, p.It)
		if p.Carried {
			l += "  (carried)"
		}
		l += "\n"
	}
	return
}

// idWidth returns the width of the column of substance ids
func idWidth(ids []string) int {
	w := len("substance")
	for _, id := range ids {
		if len(id) > w {
			w = len(id)
		}
	}
	return w + 2
}

// Indent indents all lines of l by n spaces
func Indent(l string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(strings.TrimRight(l, "\n"), "\n")
	return pad + strings.Join(lines, "\n"+pad) + "\n"
}
