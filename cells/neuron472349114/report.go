// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron472349114

import (
	"github.com/ccnlab/allencell/nrn"
	"github.com/emer/axon/chans"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
	"github.com/goki/gi/gi"
)

// SectionTable returns one row per section in All order, with the
// nrn.ConfigLog columns plus the leak parameters
func (cl *Cell) SectionTable() *etable.Table {
	sch := etable.Schema{}
	nrn.ConfigLog(&sch)
	sch = append(sch, etable.Column{Name: "GPas", Type: etensor.FLOAT64})
	sch = append(sch, etable.Column{Name: "EPas", Type: etensor.FLOAT64})
	dt := &etable.Table{}
	dt.SetFromSchema(sch, len(cl.All))
	dt.SetMetaData("name", cl.String())
	dt.SetMetaData("desc", "sections of "+cl.String())
	for i, sc := range cl.All {
		sc.Log(dt, i)
		g, _ := sc.Param("g_pas")
		e, _ := sc.Param("e_pas")
		dt.SetCellFloat("GPas", i, g)
		dt.SetCellFloat("EPas", i, e)
	}
	return dt
}

// SaveSectionTable writes the SectionTable as comma-separated values with headers
func (cl *Cell) SaveSectionTable(fname gi.FileName) error {
	return cl.SectionTable().SaveCSV(fname, etable.Comma, etable.Headers)
}

// PointErev returns the soma reversal potentials in the normalized units
// of an axon point neuron (chans.VFmBio): E = ena, L = e_pas, K = ek.
// The cell has no inhibitory reversal of its own, so I is normalized 0,
// which is -100 mV.
func (cl *Cell) PointErev() (chans.Chans, error) {
	var erev chans.Chans
	soma := cl.Soma[0]
	ena, err := soma.Param("ena")
	if err != nil {
		return erev, err
	}
	ek, err := soma.Param("ek")
	if err != nil {
		return erev, err
	}
	el, err := soma.Param("e_pas")
	if err != nil {
		return erev, err
	}
	erev.SetAll(chans.VFmBio(float32(ena)), chans.VFmBio(float32(el)), 0, chans.VFmBio(float32(ek)))
	return erev, nil
}
