// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nrn

import (
	"strings"

	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// ConfigLog appends the section columns to a log schema
func ConfigLog(sch *etable.Schema) {
	*sch = append(*sch, etable.Column{Name: "Name", Type: etensor.STRING})
	*sch = append(*sch, etable.Column{Name: "Class", Type: etensor.STRING})
	*sch = append(*sch, etable.Column{Name: "Parent", Type: etensor.STRING})
	*sch = append(*sch, etable.Column{Name: "ParentX", Type: etensor.FLOAT64})
	*sch = append(*sch, etable.Column{Name: "L", Type: etensor.FLOAT64})
	*sch = append(*sch, etable.Column{Name: "Diam", Type: etensor.FLOAT64})
	*sch = append(*sch, etable.Column{Name: "Nseg", Type: etensor.INT64})
	*sch = append(*sch, etable.Column{Name: "Area", Type: etensor.FLOAT64})
	*sch = append(*sch, etable.Column{Name: "Ra", Type: etensor.FLOAT64})
	*sch = append(*sch, etable.Column{Name: "Cm", Type: etensor.FLOAT64})
	*sch = append(*sch, etable.Column{Name: "Mechs", Type: etensor.STRING})
}

// Log writes the section geometry and properties into given row
func (sc *Section) Log(dt *etable.Table, row int) {
	par := ""
	if sc.Parent != nil {
		par = sc.Parent.HName()
	}
	dt.SetCellString("Name", row, sc.HName())
	dt.SetCellString("Class", row, sc.Cls)
	dt.SetCellString("Parent", row, par)
	dt.SetCellFloat("ParentX", row, sc.ParentX)
	dt.SetCellFloat("L", row, sc.L)
	dt.SetCellFloat("Diam", row, sc.Diam)
	dt.SetCellFloat("Nseg", row, float64(sc.Nseg))
	dt.SetCellFloat("Area", row, sc.Area())
	dt.SetCellFloat("Ra", row, sc.Ra)
	dt.SetCellFloat("Cm", row, sc.Cm)
	dt.SetCellString("Mechs", row, strings.Join(sc.Mechs(), " "))
}

// LogTable returns a table with one row per section, in the given order
func LogTable(name string, secs []*Section) *etable.Table {
	sch := etable.Schema{}
	ConfigLog(&sch)
	dt := &etable.Table{}
	dt.SetFromSchema(sch, len(secs))
	dt.SetMetaData("name", name)
	for i, sc := range secs {
		sc.Log(dt, i)
	}
	return dt
}
