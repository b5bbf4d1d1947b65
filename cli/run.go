// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	goio "io"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/govle/inp"
	"github.com/cpmech/govle/out"
	"github.com/cpmech/govle/vle"
	"github.com/spf13/cobra"
)

func runCmd(opts *options) *cobra.Command {
	var save bool
	var dirout, encoder string

	cmd := &cobra.Command{
		Use:   "run <problem file>",
		Short: "Run all calculations of a problem file (.yaml, .yml or .json)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prob, err := inp.ReadProblem(args[0])
			if err != nil {
				return err
			}
			if dirout != "" {
				prob.DirOut = dirout
			}
			if encoder != "" {
				if encoder != "gob" && encoder != "json" {
					return chk.Err("encoder %q is invalid. Use \"gob\" or \"json\"", encoder)
				}
				prob.EncType = encoder
			}
			prob.Solver.Verbose = prob.Solver.Verbose || opts.verbose
			w := cmd.OutOrStdout()
			recs, err := runProblem(w, prob)
			if save || prob.Data.Save {
				fn, e := out.Save(prob.DirOut, prob.Key, prob.EncType, recs, opts.verbose)
				if e != nil {
					return e
				}
				fmt.Fprintf(w, "%s\n", theme.Subtitle.Render("results saved to "+fn))
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "save results even if not requested by the problem file")
	cmd.Flags().StringVar(&dirout, "dirout", "", "directory for output results")
	cmd.Flags().StringVar(&encoder, "encoder", "", "encoder of results file: gob or json")
	return cmd
}

// runProblem runs all calculations and prints their tables to w. Calculations that fail are
// reported and skipped
func runProblem(w goio.Writer, prob *inp.Problem) (recs []*out.Record, err error) {
	sys, err := prob.NewSystem()
	if err != nil {
		return
	}
	title := prob.Data.Desc
	if title == "" {
		title = prob.Key
	}
	fmt.Fprintf(w, "%s\n", theme.Title.Render(title))
	fmt.Fprintf(w, "%s\n", theme.Subtitle.Render(fmt.Sprintf("%s: %s  method: %v", prob.Mixture.Eos, strings.Join(sys.Ids(), ", "), sys.Method())))
	if sys.Method() != prob.Method {
		fmt.Fprintf(w, "%s\n", theme.Warn.Render(fmt.Sprintf("method %v is not available for this mixture; %v is used", prob.Method, sys.Method())))
	}
	nfailed := 0
	for i, c := range prob.Calcs {
		heading := fmt.Sprintf("\n[%d] %s", i, c.Kind)
		if c.Desc != "" {
			heading += ": " + c.Desc
		}
		fmt.Fprintf(w, "%s\n", theme.Title.Render(heading))
		rec, e := calc(sys, prob, c)
		if e != nil {
			nfailed++
			msg := e.Error()
			if errors.Is(e, vle.ErrNotTwoPhase) {
				msg = "feed is not in the two-phase region: " + msg
			}
			fmt.Fprintf(w, "%s\n", theme.Error.Render(msg))
			continue
		}
		fmt.Fprintf(w, "%s", out.Indent(out.Table(rec), 2))
		recs = append(recs, rec)
	}
	if nfailed > 0 {
		err = chk.Err("%d of %d calculations failed", nfailed, len(prob.Calcs))
	}
	return
}

// calc runs one calculation
func calc(sys *vle.System, prob *inp.Problem, c *inp.Calc) (rec *out.Record, err error) {
	tol, kmax := prob.Solver.Tol, prob.Solver.Kmax
	ids := sys.Ids()
	var res *vle.Result
	switch c.Kind {
	case inp.CalcBubbleP:
		res, err = sys.BubbleP(c.Comp, c.T, tol, kmax)
		kmax = effective(kmax, vle.KmaxP)
	case inp.CalcDewP:
		res, err = sys.DewP(c.Comp, c.T, tol, kmax)
		kmax = effective(kmax, vle.KmaxP)
	case inp.CalcBubbleT:
		res, err = sys.BubbleT(c.Comp, c.P, tol, kmax)
		kmax = effective(kmax, vle.KmaxBubbleT)
	case inp.CalcDewT:
		res, err = sys.DewT(c.Comp, c.P, tol, kmax)
		kmax = effective(kmax, vle.KmaxDewT)
	case inp.CalcFlash:
		res, err = sys.Flash(c.Comp, c.P, c.T, tol, kmax)
		kmax = effective(kmax, vle.KmaxFlash)
	case inp.CalcProps:
		liq, vap, e := sys.Mix.AllProps(c.Comp, c.Tref, c.T, c.Pref, c.P)
		if e != nil {
			return nil, e
		}
		return out.NewStates(c.Kind, c.Desc, ids, liq, vap), nil
	case inp.CalcZfactor:
		zs, e := sys.Mix.Z(c.P, c.T, c.Comp)
		if e != nil {
			return nil, e
		}
		return &out.Record{Kind: c.Kind, Desc: c.Desc, Ids: ids, P: c.P, T: c.T, Z: zs}, nil
	case inp.CalcIsothermal:
		d, e := sys.Isothermal(c.T, c.X)
		if e != nil {
			return nil, e
		}
		return out.NewDiagram(c.Kind, c.Desc, ids, d), nil
	case inp.CalcIsobaric:
		d, e := sys.Isobaric(c.P, c.X)
		if e != nil {
			return nil, e
		}
		return out.NewDiagram(c.Kind, c.Desc, ids, d), nil
	default:
		chk.Panic("kind of calculation %q is not handled", c.Kind)
	}
	if err != nil {
		return
	}
	return out.NewRecord(c.Kind, c.Desc, ids, res, kmax), nil
}

// effective returns the iterations limit used by a solver
func effective(kmax, kmaxDef int) int {
	if kmax <= 0 {
		return kmaxDef
	}
	return kmax
}
