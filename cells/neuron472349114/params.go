// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron472349114

import (
	"fmt"

	"github.com/emer/emergent/params"
)

// ParamSets are the fitted biophysical parameters of model 472349114.
// Base is always applied; selectors run in order so the .soma values
// land on top of the all-section ones.
var ParamSets = params.Sets{
	{Name: "Base", Desc: "all-active fit from the Allen Cell Types database", Sheets: params.Sheets{
		"Cell": &params.Sheet{
			{Sel: "Section", Desc: "uniform axial resistance and leak reversal",
				Params: params.Params{
					"Section.Ra":    "136.92",
					"Section.e_pas": "-92.7634175618",
				}},
			{Sel: ".axon", Desc: "axon stub passive properties",
				Params: params.Params{
					"Section.cm":    "2.14",
					"Section.g_pas": "0.000297528735429",
				}},
			{Sel: ".dend", Desc: "passive dendrites",
				Params: params.Params{
					"Section.cm":    "2.14",
					"Section.g_pas": "1.96762859094e-05",
				}},
			{Sel: ".soma", Desc: "active soma: reversal potentials, channel densities, calcium dynamics",
				Params: params.Params{
					"Section.cm":               "2.14",
					"Section.ena":              "53.0",
					"Section.ek":               "-107.0",
					"Section.gbar_Ih":          "6.96153e-05",
					"Section.gbar_NaV":         "0.0664573",
					"Section.gbar_Kd":          "0.0103793",
					"Section.gbar_Kv2like":     "0.00211382",
					"Section.gbar_Kv3_1":       "1.57251",
					"Section.gbar_K_T":         "0.00510266",
					"Section.gbar_Im_v2":       "0.000170346",
					"Section.gbar_SK":          "0.00659834",
					"Section.gbar_Ca_HVA":      "0.000177714",
					"Section.gbar_Ca_LVA":      "1.45878e-06",
					"Section.gamma_CaDynamics": "0.0182063",
					"Section.decay_CaDynamics": "570.991",
					"Section.g_pas":            "0.000126356",
				}},
		},
	}},
}

// ApplyParams applies the sheet to every section of the cell.
// Returns true if any param was set.
func (cl *Cell) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	applied := false
	for _, sc := range cl.All {
		app, err := sc.ApplyParams(pars, setMsg)
		if app {
			applied = true
		}
		if err != nil {
			return applied, err
		}
	}
	return applied, nil
}

// SetParamsSet applies the "Cell" sheet of the named set in ParamSets
func (cl *Cell) SetParamsSet(setNm string, setMsg bool) error {
	pset, err := ParamSets.SetByNameTry(setNm)
	if err != nil {
		return err
	}
	sheet, ok := pset.Sheets["Cell"]
	if !ok {
		return fmt.Errorf("param set %s has no Cell sheet", setNm)
	}
	_, err = cl.ApplyParams(sheet, setMsg)
	return err
}
