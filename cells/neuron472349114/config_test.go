// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron472349114

import (
	"encoding/json"
	"testing"

	"github.com/goki/mat32"
)

func TestConfigDefaults(t *testing.T) {
	cf := &Config{}
	cf.Defaults()
	if cf.Morphology != DefaultMorphology || cf.ParamSet != "Base" {
		t.Errorf("defaults: %+v", cf)
	}
	if cf.Name != "Neuron472349114" {
		t.Errorf("default name: %s", cf.Name)
	}
	if cf.Pos != (mat32.Vec3{}) || cf.SetMsg {
		t.Errorf("defaults should leave pos and setmsg zero: %+v", cf)
	}
}

func TestOpenConfig(t *testing.T) {
	cf, err := OpenConfig("testdata/cell.toml")
	if err != nil {
		t.Fatal(err)
	}
	if cf.Name != "pv1" || cf.Morphology != "testdata/cell.swc" {
		t.Errorf("name %s morphology %s", cf.Name, cf.Morphology)
	}
	if cf.Pos != (mat32.Vec3{X: 10, Y: -5, Z: 2.5}) {
		t.Errorf("pos: %v", cf.Pos)
	}
	if cf.ParamSet != "Base" {
		t.Errorf("param set default lost: %s", cf.ParamSet)
	}

	eng, err := NewEngine()
	if err != nil {
		t.Fatal(err)
	}
	cl, err := New(eng, cf)
	if err != nil {
		t.Fatal(err)
	}
	if cl.String() != "pv1" || cl.Pos != cf.Pos {
		t.Errorf("cell from config: %s at %v", cl, cl.Pos)
	}

	if _, err := OpenConfig("testdata/bad.toml"); err == nil {
		t.Errorf("expected error for unknown key")
	}
	if _, err := OpenConfig("testdata/missing.toml"); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestCategoryJSON(t *testing.T) {
	b, err := json.Marshal(Axon)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"Axon"` {
		t.Errorf("marshal: %s", b)
	}
	var cat Category
	if err := json.Unmarshal([]byte(`"Dend"`), &cat); err != nil || cat != Dend {
		t.Errorf("unmarshal: %v %v", cat, err)
	}
	if Apic.String() != "Apic" || Apic.Class() != "apic" || CategoryN.Class() != "" {
		t.Errorf("Apic: %s %s", Apic, Apic.Class())
	}
}
