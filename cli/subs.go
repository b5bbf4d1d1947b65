// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	goio "io"

	"github.com/cpmech/govle/subs"
	"github.com/spf13/cobra"
)

func subsCmd() *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "subs <database file>",
		Short: "List the substances of a database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := subs.ReadDb(args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if id != "" {
				s, err := db.Get(id)
				if err != nil {
					return err
				}
				printSubstance(w, s)
				return nil
			}
			printDb(w, db)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "show all data of one substance")
	return cmd
}

// printDb prints one line per substance
func printDb(w goio.Writer, db *subs.Db) {
	ids := db.Ids()
	if len(ids) == 0 {
		fmt.Fprintln(w, "(no substances found)")
		return
	}
	fmt.Fprintf(w, "%s\n", theme.Title.Render(fmt.Sprintf("%-16s%-18s%10s%10s%8s  %s", "id", "name", "Tc [K]", "Pc [bar]", "ω", "data")))
	for _, id := range ids {
		s, _ := db.Get(id)
		extra := ""
		if s.HasCp() {
			extra += "Cp "
		}
		if s.HasAntoine() {
			extra += "Antoine"
		}
		fmt.Fprintf(w, "%-16s%-18s%10.2f%10.3f%8.3f  %s\n", s.Id, s.Name, s.Tc, s.Pc/1e5, s.Omega, extra)
	}
}

// printSubstance prints all data of a substance
func printSubstance(w goio.Writer, s *subs.Substance) {
	fmt.Fprintf(w, "%s\n", theme.Title.Render(s.Id))
	row := func(key, unit string, val float64) {
		fmt.Fprintf(w, "  %-10s%-12s%g\n", key, unit, val)
	}
	fmt.Fprintf(w, "  %-22s%s\n", "name", s.Name)
	fmt.Fprintf(w, "  %-22s%s\n", "formula", s.Formula)
	fmt.Fprintf(w, "  %-22s%s\n", "CAS", s.CAS)
	row("MolWt", "g/mol", s.MolWt)
	row("Tfp", "K", s.Tfp)
	row("Tb", "K", s.Tb)
	row("Tc", "K", s.Tc)
	row("Pc", "Pa", s.Pc)
	row("Vc", "m³/mol", s.Vc)
	row("Zc", "", s.Zc)
	row("ω", "", s.Omega)
	if s.HasCp() {
		fmt.Fprintf(w, "  %-22s%v  (%g K ≤ T ≤ %g K)\n", "Cp/R", s.Cp.A, s.Cp.Tmin, s.Cp.Tmax)
	}
	if s.HasAntoine() {
		a := s.Antoine
		fmt.Fprintf(w, "  %-22sA=%g B=%g C=%g  (%g K ≤ T ≤ %g K)\n", "Antoine", a.A, a.B, a.C, a.Tmin, a.Tmax)
	}
}
