// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/govle/eos"
	"github.com/cpmech/govle/mix"
	"github.com/cpmech/govle/out"
	"github.com/cpmech/govle/subs"
	"github.com/cpmech/govle/vle"
	"github.com/spf13/cobra"
)

func zfactorCmd() *cobra.Command {
	var dbfile, fam string
	var ids []string
	var comp []float64
	var T, P float64

	cmd := &cobra.Command{
		Use:   "zfactor",
		Short: "Compute the compressibility factors of a mixture",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := subs.ReadDb(dbfile)
			if err != nil {
				return err
			}
			list, err := subs.GetList(db, ids)
			if err != nil {
				return err
			}
			if len(comp) == 0 && len(list) == 1 {
				comp = []float64{1}
			}
			if err = vle.CheckComp("composition", comp, len(list)); err != nil {
				return err
			}
			if T <= 0 || P <= 0 {
				return chk.Err("temperature and pressure must be positive. T=%g, P=%g", T, P)
			}
			m, err := eos.NewMixture(fam, list)
			if err != nil {
				return err
			}
			zs, err := m.Z(P, T, comp)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s\n", theme.Title.Render(fmt.Sprintf("%s: %v", fam, ids)))
			fmt.Fprint(w, out.ZTable(zs, P, T))
			zl, zv := eos.LiqVap(zs)
			fmt.Fprintf(w, "liquid: Z = %.15g   V = %g m³/mol\n", zl, zl*subs.R*T/P)
			fmt.Fprintf(w, "vapour: Z = %.15g   V = %g m³/mol\n", zv, zv*subs.R*T/P)
			return nil
		},
	}

	cmd.Flags().StringVar(&dbfile, "db", "db.yaml", "substance database file")
	cmd.Flags().StringVar(&fam, "eos", "PR1976", fmt.Sprintf("equation of state %v", mix.Families()))
	cmd.Flags().StringSliceVar(&ids, "subs", nil, "ids of substances; e.g. propane,n-butane")
	cmd.Flags().Float64SliceVar(&comp, "comp", nil, "mole fractions; e.g. 0.4,0.6")
	cmd.Flags().Float64VarP(&T, "temperature", "T", 0, "temperature [K]")
	cmd.Flags().Float64VarP(&P, "pressure", "P", 0, "pressure [Pa]")
	return cmd
}
