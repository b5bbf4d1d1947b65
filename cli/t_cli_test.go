// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/govle/out"
)

// execute runs the root command with args and returns the output
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

// --- command structure ---

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	cmd := newRootCmd()
	names := map[string]bool{}
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, expected := range []string{"run", "subs", "zfactor"} {
		if !names[expected] {
			t.Errorf("expected subcommand %q to be registered", expected)
		}
	}
	if cmd.PersistentFlags().Lookup("verbose") == nil {
		t.Error("expected --verbose persistent flag")
	}
}

func TestRunCmd_Flags(t *testing.T) {
	cmd := runCmd(new(options))
	for _, flag := range []string{"save", "dirout", "encoder"} {
		if cmd.Flags().Lookup(flag) == nil {
			t.Errorf("expected --%s flag on run command", flag)
		}
	}
}

// --- run ---

func TestRun_PhiPhi(t *testing.T) {
	dir := t.TempDir()
	got, err := execute(t, "run", "../examples/propane-butane.yaml", "--save", "--dirout", dir)
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, got)
	}
	for _, s := range []string{"bubbleP", "dewP", "bubbleT", "dewT", "flash", "props", "isothermal", "isobaric", "results saved to"} {
		if !strings.Contains(got, s) {
			t.Errorf("expected %q in output, got:\n%s", s, got)
		}
	}
	if strings.Contains(got, "not converged") {
		t.Errorf("all calculations should converge, got:\n%s", got)
	}

	fn := filepath.Join(dir, "propane-butane.json")
	recs, err := out.Read(fn, "json")
	if err != nil {
		t.Fatalf("cannot read results: %v", err)
	}
	if len(recs) != 8 {
		t.Fatalf("expected 8 records, got %d", len(recs))
	}
	if recs[4].Kind != "flash" || recs[4].V <= 0 || recs[4].V >= 1 {
		t.Errorf("flash record is incorrect: %+v", recs[4])
	}
	if len(recs[6].Diagram.Points) != 31 || len(recs[7].Diagram.Points) != 11 {
		t.Errorf("diagrams have wrong number of points")
	}
}

func TestRun_GammaPhi(t *testing.T) {
	dir := t.TempDir()
	got, err := execute(t, "run", "../examples/pentane-hexane.json", "--save", "--dirout", dir, "--encoder", "json")
	if err != nil {
		t.Fatalf("run failed: %v\n%s", err, got)
	}
	if !strings.Contains(got, "UNIFAC") || !strings.Contains(got, "γ") {
		t.Errorf("expected gamma-phi results, got:\n%s", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "pentane-hexane.json")); err != nil {
		t.Errorf("results file should exist: %v", err)
	}
}

func TestRun_Errors(t *testing.T) {
	db, err := filepath.Abs("../examples/db.yaml")
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	fn := filepath.Join(dir, "bad.yaml")
	data := "data: {dbfile: " + db + "}\n" +
		"mixture: {subs: [propane, n-butane]}\n" +
		"calcs:\n" +
		"  - {kind: flash, comp: [0.5, 0.5], t: 300, p: 1.0e+7}\n" +
		"  - {kind: bubbleP, comp: [0.5, 0.5], t: 300}\n"
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := execute(t, "run", fn)
	if err == nil {
		t.Fatalf("expected error for infeasible flash, got:\n%s", got)
	}
	if !strings.Contains(got, "two-phase") || !strings.Contains(got, "1 of 2 calculations failed") {
		t.Errorf("unexpected output:\n%s", got)
	}

	cases := [][]string{
		{"run"},
		{"run", filepath.Join(dir, "none.yaml")},
		{"run", "../examples/propane-butane.yaml", "--encoder", "xml"},
	}
	for _, args := range cases {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("expected error for args %v", args)
		}
	}
}

// --- subs ---

func TestSubs_List(t *testing.T) {
	got, err := execute(t, "subs", "../examples/db.yaml")
	if err != nil {
		t.Fatalf("subs failed: %v", err)
	}
	for _, s := range []string{"propane", "n-hexane", "water", "Antoine"} {
		if !strings.Contains(got, s) {
			t.Errorf("expected %q in output, got:\n%s", s, got)
		}
	}
}

func TestSubs_One(t *testing.T) {
	got, err := execute(t, "subs", "../examples/db.yaml", "--id", "n-pentane")
	if err != nil {
		t.Fatalf("subs failed: %v", err)
	}
	if !strings.Contains(got, "C5H12") || !strings.Contains(got, "Antoine") {
		t.Errorf("unexpected output:\n%s", got)
	}
	if _, err := execute(t, "subs", "../examples/db.yaml", "--id", "helium"); err == nil {
		t.Error("expected error for unknown substance")
	}
}

// --- zfactor ---

func TestZfactor(t *testing.T) {
	got, err := execute(t, "zfactor", "--db", "../examples/db.yaml", "--subs", "propane", "-T", "300", "-P", "998150")
	if err != nil {
		t.Fatalf("zfactor failed: %v\n%s", err, got)
	}
	if strings.Count(got, "Z2 =") != 1 || !strings.Contains(got, "liquid") {
		t.Errorf("expected three roots, got:\n%s", got)
	}

	cases := [][]string{
		{"zfactor", "--db", "../examples/db.yaml", "--subs", "propane,n-butane", "-T", "300", "-P", "1e5"},
		{"zfactor", "--db", "../examples/db.yaml", "--subs", "propane", "-T", "300"},
		{"zfactor", "--db", "../examples/db.yaml", "--subs", "propane", "--eos", "BWR", "-T", "300", "-P", "1e5"},
		{"zfactor", "--db", "../examples/db.yaml", "--subs", "propane,n-butane", "--comp", "0.3,0.3", "-T", "300", "-P", "1e5"},
		{"zfactor", "--db", "none.yaml", "--subs", "propane", "-T", "300", "-P", "1e5"},
	}
	for _, args := range cases {
		if _, err := execute(t, args...); err == nil {
			t.Errorf("expected error for args %v", args)
		}
	}
}
