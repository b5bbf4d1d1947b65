// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a problem file (.yaml, .yml or .json)
package inp

import (
	"encoding/json"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/govle/eos"
	"github.com/cpmech/govle/mix"
	"github.com/cpmech/govle/subs"
	"github.com/cpmech/govle/vle"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

// kinds of calculations
const (
	CalcBubbleP    = "bubbleP"
	CalcDewP       = "dewP"
	CalcBubbleT    = "bubbleT"
	CalcDewT       = "dewT"
	CalcFlash      = "flash"
	CalcProps      = "props"
	CalcZfactor    = "zfactor"
	CalcIsothermal = "isothermal"
	CalcIsobaric   = "isobaric"
)

// default reference state
const (
	Tref = 298.15   // K
	Pref = 101325.0 // Pa
)

// Data holds global data
type Data struct {
	Desc    string `json:"desc" yaml:"desc"`       // description of problem
	Dbfile  string `json:"dbfile" yaml:"dbfile"`   // substance database file path; relative to problem file
	DirOut  string `json:"dirout" yaml:"dirout"`   // directory for output; e.g. /tmp/govle
	Encoder string `json:"encoder" yaml:"encoder"` // encoder name; e.g. "gob" "json"
	Save    bool   `json:"save" yaml:"save"`       // save results to file
}

// MargulesData holds the two-parameter Margules coefficients of a pair of substances
type MargulesData struct {
	I   string  `json:"i" yaml:"i"`     // id of first substance
	J   string  `json:"j" yaml:"j"`     // id of second substance
	Aij float64 `json:"aij" yaml:"aij"` // A12
	Aji float64 `json:"aji" yaml:"aji"` // A21
}

// MixtureData holds the definition of the mixture
type MixtureData struct {
	Eos      string          `json:"eos" yaml:"eos"`           // equation of state; e.g. "PR1976"
	Subs     []string        `json:"subs" yaml:"subs"`         // ids of substances
	Kij      [][]float64     `json:"kij" yaml:"kij"`           // [nsubs][nsubs] binary interaction parameters; empty means zero
	Method   string          `json:"method" yaml:"method"`     // VLE method: "phi-phi" or "UNIFAC"
	Margules []*MargulesData `json:"margules" yaml:"margules"` // activity coefficients; ideal solution if empty
}

// SolverData holds solver settings; zero values select the defaults of each solver
type SolverData struct {
	Tol       float64 `json:"tol" yaml:"tol"`             // tolerance
	Kmax      int     `json:"kmax" yaml:"kmax"`           // max number of iterations
	InnerTol  float64 `json:"innertol" yaml:"innertol"`   // tolerance of inner loops of gamma-phi dew points
	InnerKmax int     `json:"innerkmax" yaml:"innerkmax"` // max iterations of inner loops
	Verbose   bool    `json:"verbose" yaml:"verbose"`     // print iterations
}

// Calc holds the data of one calculation
type Calc struct {
	Kind string    `json:"kind" yaml:"kind"` // kind of calculation; e.g. "bubbleP"
	Desc string    `json:"desc" yaml:"desc"` // description
	Comp []float64 `json:"comp" yaml:"comp"` // composition (x, y or z); not used by diagrams
	T    float64   `json:"t" yaml:"t"`       // temperature [K]
	P    float64   `json:"p" yaml:"p"`       // pressure [Pa]
	Tref float64   `json:"tref" yaml:"tref"` // props: reference temperature [K]
	Pref float64   `json:"pref" yaml:"pref"` // props: reference pressure [Pa]
	X    []float64 `json:"x" yaml:"x"`       // diagrams: liquid mole fractions of first component
	Npts int       `json:"npts" yaml:"npts"` // diagrams: number of equally spaced points if X is empty
}

// Problem holds all problem data
type Problem struct {

	// input
	Data    Data        `json:"data" yaml:"data"`       // global data
	Mixture MixtureData `json:"mixture" yaml:"mixture"` // mixture
	Solver  SolverData  `json:"solver" yaml:"solver"`   // solver settings
	Calcs   []*Calc     `json:"calcs" yaml:"calcs"`     // calculations

	// derived
	Key     string             `yaml:"-"`          // problem key; e.g. mix01.yaml => mix01
	DirOut  string             `yaml:"-"`          // directory to save results
	EncType string             `yaml:"-"`          // encoder type
	Db      *subs.Db           `yaml:"-" json:"-"` // substances database
	Subs    []*subs.Substance  `yaml:"-"`          // substances of mixture, in order
	K       *mat.Dense         `yaml:"-" json:"-"` // binary interaction parameters; nil if not given
	Method  vle.Method         `yaml:"-"`          // VLE method
	Source  vle.ActivitySource `yaml:"-" json:"-"` // activity coefficients for gamma-phi; nil with phi-phi
}

// ReadProblem reads all problem data from a .yaml, .yml or .json file
func ReadProblem(fn string) (o *Problem, err error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read problem file %q:\n%v", fn, err)
	}
	o = new(Problem)
	o.SetDefault()
	if err = o.decode(b, filepath.Ext(fn)); err != nil {
		return nil, chk.Err("cannot decode problem file %q:\n%v", fn, err)
	}
	o.Key = io.FnKey(filepath.Base(fn))
	dir := os.ExpandEnv(filepath.Dir(fn))
	db, err := subs.ReadDb(o.dbPath(dir))
	if err != nil {
		return nil, err
	}
	if err = o.PostProcess(db); err != nil {
		return nil, err
	}
	return
}

// decode decodes b according to the file extension
func (o *Problem) decode(b []byte, ext string) error {
	switch strings.ToLower(ext) {
	case ".json":
		return json.Unmarshal(b, o)
	case ".yaml", ".yml":
		return yaml.Unmarshal(b, o)
	}
	return chk.Err("file extension %q is invalid. Use .yaml, .yml or .json", ext)
}

// dbPath returns the path of the substance database
func (o *Problem) dbPath(dir string) string {
	fn := os.ExpandEnv(o.Data.Dbfile)
	if filepath.IsAbs(fn) {
		return fn
	}
	return filepath.Join(dir, fn)
}

// SetDefault sets defaults values
func (o *Problem) SetDefault() {
	o.Data.Dbfile = "db.yaml"
	o.Data.Encoder = "gob"
	o.Mixture.Eos = "PR1976"
	o.Mixture.Method = "phi-phi"
}

// PostProcess checks the just decoded data and sets derived data
func (o *Problem) PostProcess(db *subs.Db) (err error) {

	// output directory and encoder type
	if o.Key == "" {
		o.Key = "problem"
	}
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/govle/" + o.Key
	}
	o.EncType = o.Data.Encoder
	if o.EncType != "gob" && o.EncType != "json" {
		o.EncType = "gob"
	}

	// substances
	o.Db = db
	if len(o.Mixture.Subs) < 1 {
		return chk.Err("mixture must have at least one substance")
	}
	if _, err = mix.GetFamily(o.Mixture.Eos); err != nil {
		return
	}
	o.Subs, err = subs.GetList(db, o.Mixture.Subs)
	if err != nil {
		return
	}

	// interaction parameters
	n := len(o.Subs)
	if len(o.Mixture.Kij) > 0 {
		if len(o.Mixture.Kij) != n {
			return chk.Err("kij must have %d rows. %d is invalid", n, len(o.Mixture.Kij))
		}
		o.K = mat.NewDense(n, n, nil)
		for i, row := range o.Mixture.Kij {
			if len(row) != n {
				return chk.Err("row %d of kij must have %d columns. %d is invalid", i, n, len(row))
			}
			o.K.SetRow(i, row)
		}
	}

	// method
	if o.Method, err = vle.ParseMethod(o.Mixture.Method); err != nil {
		return
	}
	if o.Method == vle.GammaPhi {
		if len(o.Mixture.Margules) == 0 {
			o.Source = vle.IdealSolution{}
		} else {
			src := new(vle.Margules)
			for _, m := range o.Mixture.Margules {
				src.Pairs = append(src.Pairs, vle.MargulesPair{I: m.I, J: m.J, Aij: m.Aij, Aji: m.Aji})
			}
			o.Source = src
		}
	}

	// calculations
	for i, c := range o.Calcs {
		if err = c.PostProcess(n); err != nil {
			return chk.Err("calculation # %d is invalid:\n%v", i, err)
		}
	}
	return
}

// NewSystem allocates the equilibrium system of the mixture. The selected method may fall back
// to phi-phi; see vle.System.SetMethod
func (o *Problem) NewSystem() (sys *vle.System, err error) {
	rule, err := mix.New(o.Mixture.Eos, o.Subs, o.K)
	if err != nil {
		return
	}
	sys = vle.NewSystem(eos.New(rule))
	sys.SetMethod(o.Method, o.Source)
	sys.Verbose = o.Solver.Verbose
	sys.InnerTol = o.Solver.InnerTol
	sys.InnerKmax = o.Solver.InnerKmax
	return
}

// GetInfo returns formatted information
func (o *Problem) GetInfo(w goio.Writer) (err error) {
	b, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return
}

// Calc ////////////////////////////////////////////////////////////////////////////////////////////

// PostProcess checks the data of a calculation with nsubs substances and sets defaults
func (o *Calc) PostProcess(nsubs int) error {
	switch o.Kind {
	case CalcBubbleP, CalcDewP:
		return o.check(nsubs, true, false)
	case CalcBubbleT, CalcDewT:
		return o.check(nsubs, false, true)
	case CalcFlash, CalcZfactor:
		return o.check(nsubs, true, true)
	case CalcProps:
		if o.Tref <= 0 {
			o.Tref = Tref
		}
		if o.Pref <= 0 {
			o.Pref = Pref
		}
		return o.check(nsubs, true, true)
	case CalcIsothermal, CalcIsobaric:
		if nsubs != 2 {
			return chk.Err("%s diagrams require two substances. %d is invalid", o.Kind, nsubs)
		}
		if o.Kind == CalcIsothermal && o.T <= 0 {
			return chk.Err("temperature must be positive. T=%g is invalid", o.T)
		}
		if o.Kind == CalcIsobaric && o.P <= 0 {
			return chk.Err("pressure must be positive. P=%g is invalid", o.P)
		}
		if len(o.X) == 0 && o.Npts > 1 {
			o.X = utl.LinSpace(0, 1, o.Npts)
		}
		for _, x := range o.X {
			if x < 0 || x > 1 {
				return chk.Err("mole fraction %g of diagram is invalid", x)
			}
		}
		return nil
	}
	return chk.Err("kind of calculation %q is not available", o.Kind)
}

// check checks the composition and the state
func (o *Calc) check(nsubs int, needT, needP bool) error {
	if err := vle.CheckComp(o.Kind+" composition", o.Comp, nsubs); err != nil {
		return err
	}
	if needT && o.T <= 0 {
		return chk.Err("temperature must be positive. T=%g is invalid", o.T)
	}
	if needP && o.P <= 0 {
		return chk.Err("pressure must be positive. P=%g is invalid", o.P)
	}
	return nil
}
