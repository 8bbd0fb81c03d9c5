// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nrn

// ParamDef describes one range variable of a density mechanism
type ParamDef struct {
	Name  string  `desc:"range variable name, without the _mech suffix"`
	Def   float64 `desc:"value set when the mechanism is inserted"`
	Units string  `desc:"units, for display only"`
	Desc  string  `desc:"what the variable controls"`
}

// MechType is a density mechanism (channel, pump, buffer) that can be
// inserted into sections.  Its range variables are addressed as
// <param>_<mech>, e.g., gbar_NaV.
type MechType struct {
	Name   string     `desc:"mechanism suffix, e.g., NaV"`
	Ions   []string   `desc:"ions used by the mechanism (na, k, ca) -- inserting it makes e<ion> settable"`
	Params []ParamDef `desc:"range variables with their defaults"`
}

// ParamIdx returns the index of the named range variable, or -1
func (mt *MechType) ParamIdx(name string) int {
	for i := range mt.Params {
		if mt.Params[i].Name == name {
			return i
		}
	}
	return -1
}

// UsesIon returns true if the mechanism uses the given ion
func (mt *MechType) UsesIon(ion string) bool {
	for _, in := range mt.Ions {
		if in == ion {
			return true
		}
	}
	return false
}

// Pas is the built-in passive leak, present in every Engine
var Pas = &MechType{
	Name: "pas",
	Params: []ParamDef{
		{Name: "g", Def: 0.001, Units: "S/cm2", Desc: "leak conductance"},
		{Name: "e", Def: -70, Units: "mV", Desc: "leak reversal potential"},
	},
}

// IonErev are the default reversal potentials (mV) of the ions known to the engine
var IonErev = map[string]float64{
	"na": 50,
	"k":  -77,
	"ca": 132.4579341637009,
}

// Mech is an inserted instance of a MechType, holding its range variable values
type Mech struct {
	Type *MechType
	Vals []float64 `desc:"values parallel to Type.Params"`
}

func newMech(mt *MechType) *Mech {
	mc := &Mech{Type: mt, Vals: make([]float64, len(mt.Params))}
	for i := range mt.Params {
		mc.Vals[i] = mt.Params[i].Def
	}
	return mc
}
