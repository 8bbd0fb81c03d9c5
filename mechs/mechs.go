// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package mechs is the catalog of active mechanisms used by the Allen Cell Types
all-active and perisomatic models: sodium, potassium, calcium and Ih channels
plus intracellular calcium dynamics.  Register adds them to an nrn.Engine,
after which they can be inserted by name.
*/
package mechs

import (
	"github.com/ccnlab/allencell/nrn"
)

// CaDynamics is a first-order intracellular calcium pool driven by ica
var CaDynamics = &nrn.MechType{
	Name: "CaDynamics",
	Ions: []string{"ca"},
	Params: []nrn.ParamDef{
		{Name: "gamma", Def: 0.05, Units: "1", Desc: "fraction of calcium influx not buffered"},
		{Name: "decay", Def: 80, Units: "ms", Desc: "time constant of calcium removal"},
		{Name: "depth", Def: 0.1, Units: "um", Desc: "depth of the submembrane shell"},
		{Name: "minCai", Def: 1e-4, Units: "mM", Desc: "resting calcium concentration"},
	},
}

// CaHVA is the high-voltage activated calcium channel
var CaHVA = &nrn.MechType{
	Name:   "Ca_HVA",
	Ions:   []string{"ca"},
	Params: []nrn.ParamDef{{Name: "gbar", Def: 0.00001, Units: "S/cm2", Desc: "maximal conductance"}},
}

// CaLVA is the low-voltage activated (T-type) calcium channel
var CaLVA = &nrn.MechType{
	Name:   "Ca_LVA",
	Ions:   []string{"ca"},
	Params: []nrn.ParamDef{{Name: "gbar", Def: 0.00001, Units: "S/cm2", Desc: "maximal conductance"}},
}

// Ih is the hyperpolarization-activated cation current (nonspecific)
var Ih = &nrn.MechType{
	Name: "Ih",
	Params: []nrn.ParamDef{
		{Name: "gbar", Def: 0.00001, Units: "S/cm2", Desc: "maximal conductance"},
		{Name: "ehcn", Def: -45, Units: "mV", Desc: "reversal potential of the HCN current"},
	},
}

// ImV2 is the muscarinic (M-type) potassium current
var ImV2 = &nrn.MechType{
	Name:   "Im_v2",
	Ions:   []string{"k"},
	Params: []nrn.ParamDef{{Name: "gbar", Def: 0.00001, Units: "S/cm2", Desc: "maximal conductance"}},
}

// KT is the fast transient potassium current
var KT = &nrn.MechType{
	Name: "K_T",
	Ions: []string{"k"},
	Params: []nrn.ParamDef{
		{Name: "gbar", Def: 0.00001, Units: "S/cm2", Desc: "maximal conductance"},
		{Name: "vshift", Def: 0, Units: "mV", Desc: "voltage shift of the gates"},
		{Name: "mTauF", Def: 1, Units: "1", Desc: "activation time constant factor"},
		{Name: "hTauF", Def: 1, Units: "1", Desc: "inactivation time constant factor"},
	},
}

// Kd is the slowly inactivating delay-type potassium current
var Kd = &nrn.MechType{
	Name:   "Kd",
	Ions:   []string{"k"},
	Params: []nrn.ParamDef{{Name: "gbar", Def: 0.00001, Units: "S/cm2", Desc: "maximal conductance"}},
}

// Kv2like is the Kv2-like delayed rectifier potassium current
var Kv2like = &nrn.MechType{
	Name:   "Kv2like",
	Ions:   []string{"k"},
	Params: []nrn.ParamDef{{Name: "gbar", Def: 0.00001, Units: "S/cm2", Desc: "maximal conductance"}},
}

// Kv31 is the fast-spiking Kv3.1 potassium current
var Kv31 = &nrn.MechType{
	Name: "Kv3_1",
	Ions: []string{"k"},
	Params: []nrn.ParamDef{
		{Name: "gbar", Def: 0.00001, Units: "S/cm2", Desc: "maximal conductance"},
		{Name: "vshift", Def: 0, Units: "mV", Desc: "voltage shift of the gate"},
	},
}

// NaV is the transient sodium current (Markov model)
var NaV = &nrn.MechType{
	Name:   "NaV",
	Ions:   []string{"na"},
	Params: []nrn.ParamDef{{Name: "gbar", Def: 0.015, Units: "S/cm2", Desc: "maximal conductance"}},
}

// SK is the calcium-activated small-conductance potassium current
var SK = &nrn.MechType{
	Name: "SK",
	Ions: []string{"k", "ca"},
	Params: []nrn.ParamDef{
		{Name: "gbar", Def: 0.000001, Units: "S/cm2", Desc: "maximal conductance"},
		{Name: "zTau", Def: 1, Units: "ms", Desc: "activation time constant"},
	},
}

// Catalog lists the mechanism types in the order the cell inserts them
var Catalog = []*nrn.MechType{CaDynamics, CaHVA, CaLVA, Ih, ImV2, KT, Kd, Kv2like, Kv31, NaV, SK}

// Names returns the mechanism names of the Catalog, in order
func Names() []string {
	nms := make([]string, len(Catalog))
	for i, mt := range Catalog {
		nms[i] = mt.Name
	}
	return nms
}

// Register adds every Catalog mechanism to the engine
func Register(eng *nrn.Engine) error {
	for _, mt := range Catalog {
		if err := eng.Register(mt); err != nil {
			return err
		}
	}
	return nil
}
