// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cli implements the command line interface of govle
package cli

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// Execute runs the root command
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// options holds flags shared by all commands
type options struct {
	verbose bool
}

// setVerbose switches the verbose mode of gosl printers
func (o *options) setVerbose() {
	io.Verbose = o.verbose
	chk.Verbose = o.verbose
}

func newRootCmd() *cobra.Command {
	opts := new(options)
	cmd := &cobra.Command{
		Use:          "govle",
		Short:        "govle -- vapour-liquid equilibrium with cubic equations of state",
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			opts.setVerbose()
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "print iterations and messages")
	cmd.AddCommand(runCmd(opts))
	cmd.AddCommand(subsCmd())
	cmd.AddCommand(zfactorCmd())
	return cmd
}
