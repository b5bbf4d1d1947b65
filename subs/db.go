// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package subs

import (
	"os"
	"sort"

	"github.com/cpmech/gosl/chk"
	"gopkg.in/yaml.v3"
)

// Store is a read-only source of substance records
type Store interface {
	Get(id string) (*Substance, error) // returns the record of a substance
	Ids() []string                     // returns all available ids
}

// Db implements Store with records kept in memory
type Db struct {
	subs map[string]*Substance
}

// NewDb returns a database holding the given records
func NewDb(records ...*Substance) (o *Db) {
	o = &Db{subs: make(map[string]*Substance)}
	for _, s := range records {
		o.subs[s.Id] = s
	}
	return
}

// Get returns the record of substance id
func (o *Db) Get(id string) (*Substance, error) {
	s, ok := o.subs[id]
	if !ok {
		return nil, chk.Err("substance %q is not available in database", id)
	}
	return s, nil
}

// GetList returns the records of all ids, in order
func GetList(store Store, ids []string) (list []*Substance, err error) {
	list = make([]*Substance, len(ids))
	for i, id := range ids {
		list[i], err = store.Get(id)
		if err != nil {
			return nil, err
		}
	}
	return
}

// Ids returns the sorted ids of all records
func (o *Db) Ids() (ids []string) {
	for id := range o.subs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return
}

// record is one database entry as written in files (customary units)
type record struct {
	Id      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Formula string  `yaml:"formula"`
	CAS     string  `yaml:"cas"`
	MolWt   float64 `yaml:"molwt"` // g/mol
	Tfp     float64 `yaml:"tfp"`   // K
	Tb      float64 `yaml:"tb"`    // K
	Tc      float64 `yaml:"tc"`    // K
	Pc      float64 `yaml:"pc"`    // bar
	Vc      float64 `yaml:"vc"`    // cm³/mol
	Zc      float64 `yaml:"zc"`
	Omega   float64 `yaml:"omega"`
	Cp      *struct {
		Tmin float64    `yaml:"tmin"`
		Tmax float64    `yaml:"tmax"`
		A    [5]float64 `yaml:"a"` // a0, a1⋅10³, a2⋅10⁵, a3⋅10⁸, a4⋅10¹¹
	} `yaml:"cp"`
	Antoine *struct {
		A    float64 `yaml:"a"`
		B    float64 `yaml:"b"`
		C    float64 `yaml:"c"`
		Tmin float64 `yaml:"tmin"`
		Tmax float64 `yaml:"tmax"`
	} `yaml:"antoine"`
}

// cpScale converts tabulated Cp coefficients to plain ones
var cpScale = [5]float64{1, 1e-3, 1e-5, 1e-8, 1e-11}

// toSubstance converts units and checks data
func (o *record) toSubstance() (s *Substance, err error) {
	if o.Id == "" {
		return nil, chk.Err("substance record has no id (name=%q)", o.Name)
	}
	if o.Tc <= 0 || o.Pc <= 0 {
		return nil, chk.Err("substance %q: Tc and Pc must be positive. Tc=%g, Pc=%g", o.Id, o.Tc, o.Pc)
	}
	s = &Substance{
		Id:      o.Id,
		Name:    o.Name,
		Formula: o.Formula,
		CAS:     o.CAS,
		MolWt:   o.MolWt,
		Tfp:     o.Tfp,
		Tb:      o.Tb,
		Tc:      o.Tc,
		Pc:      o.Pc * 1e5,
		Vc:      o.Vc * 1e-6,
		Zc:      o.Zc,
		Omega:   o.Omega,
	}
	if s.Zc == 0 && s.Vc > 0 {
		s.Zc = s.Pc * s.Vc / (R * s.Tc)
	}
	if o.Cp != nil {
		s.Cp = &CpData{Tmin: o.Cp.Tmin, Tmax: o.Cp.Tmax}
		for k := 0; k < 5; k++ {
			s.Cp.A[k] = o.Cp.A[k] * cpScale[k]
		}
	}
	if o.Antoine != nil {
		s.Antoine = &AntoineData{A: o.Antoine.A, B: o.Antoine.B, C: o.Antoine.C, Tmin: o.Antoine.Tmin, Tmax: o.Antoine.Tmax}
	}
	return
}

// ParseDb decodes a YAML list of substance records
func ParseDb(b []byte) (o *Db, err error) {
	var recs []record
	if err = yaml.Unmarshal(b, &recs); err != nil {
		return nil, chk.Err("cannot parse substance database:\n%v", err)
	}
	o = &Db{subs: make(map[string]*Substance)}
	for i := range recs {
		s, err := recs[i].toSubstance()
		if err != nil {
			return nil, err
		}
		if _, ok := o.subs[s.Id]; ok {
			return nil, chk.Err("substance %q is defined more than once", s.Id)
		}
		o.subs[s.Id] = s
	}
	return
}

// ReadDb reads a YAML substance database
func ReadDb(fn string) (*Db, error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read substance database %q:\n%v", fn, err)
	}
	return ParseDb(b)
}
