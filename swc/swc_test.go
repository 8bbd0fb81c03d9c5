// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swc

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/ccnlab/allencell/nrn"
	"github.com/goki/mat32"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = 1.0e-6

func names(secs []*nrn.Section) string {
	nms := make([]string, len(secs))
	for i, sc := range secs {
		nms[i] = sc.Name()
	}
	return strings.Join(nms, " ")
}

func TestReadErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"empty", "# nothing here\n\n"},
		{"fields", "1 1 0 0 0 5\n"},
		{"id", "a 1 0 0 0 5 -1\n"},
		{"value", "1 1 0 x 0 5 -1\n"},
		{"dup", "1 1 0 0 0 5 -1\n1 3 0 1 0 1 1\n"},
		{"parent", "1 1 0 0 0 5 -1\n2 3 0 1 0 1 7\n"},
		{"self", "1 1 0 0 0 5 -1\n2 3 0 1 0 1 2\n"},
	}
	for _, cs := range cases {
		if _, err := Read(strings.NewReader(cs.src)); !errors.Is(err, ErrFormat) {
			t.Errorf("%s: got %v, want ErrFormat", cs.name, err)
		}
	}
}

func TestRead(t *testing.T) {
	m, err := Open("testdata/cell.swc")
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Samples) != 11 {
		t.Fatalf("samples: %d", len(m.Samples))
	}
	s := m.Samples[m.Index[4]]
	if s.Type != Dend || s.Pos != (mat32.Vec3{X: 0, Y: 91, Z: 0}) || s.Radius != 1 || s.Parent != 3 {
		t.Errorf("sample 4: %+v", s)
	}
	if m.CountType(Axon) != 2 || m.CountType(Soma) != 1 {
		t.Errorf("counts: axon %d soma %d", m.CountType(Axon), m.CountType(Soma))
	}
	kids := m.Children()
	if k := kids[m.Index[1]]; len(k) != 3 {
		t.Errorf("soma children: %v", k)
	}
	if _, err := Open("testdata/missing.swc"); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestLoadNoAxon(t *testing.T) {
	eng := nrn.NewEngine()
	ld, err := LoadFile(eng, "c", "testdata/cell.swc", Opts{})
	if err != nil {
		t.Fatal(err)
	}
	if got := names(ld.All()); got != "soma[0] dend[0] dend[1] dend[2] dend[3]" {
		t.Errorf("sections: %s", got)
	}
	if len(ld.Axon) != 0 || len(eng.Sections()) != 5 {
		t.Errorf("axon should not be created: %d axon, %d total", len(ld.Axon), len(eng.Sections()))
	}
	soma := ld.Soma[0]
	if soma.Cls != "soma" || len(soma.Pts) != 3 || soma.L != 10 || soma.Diam != 10 {
		t.Errorf("soma: cls %s pts %d L %v diam %v", soma.Cls, len(soma.Pts), soma.L, soma.Diam)
	}
	type conn struct {
		parent string
		x      float64
		l      float64
		npts   int
	}
	want := []conn{
		{"soma[0]", 0.5, 81, 3},
		{"dend[0]", 1, 20, 2},
		{"dend[0]", 1, 60, 3},
		{"soma[0]", 0.5, 40, 2},
	}
	for i, wc := range want {
		dn := ld.Dend[i]
		if dn.Parent == nil || dn.Parent.Name() != wc.parent || dn.ParentX != wc.x {
			t.Errorf("%s: parent %v x %v, want %s(%v)", dn.Name(), dn.Parent, dn.ParentX, wc.parent, wc.x)
		}
		if math.Abs(dn.L-wc.l) > difTol || len(dn.Pts) != wc.npts {
			t.Errorf("%s: L %v pts %d, want %v %d", dn.Name(), dn.L, len(dn.Pts), wc.l, wc.npts)
		}
		if dn.Cls != "dend" {
			t.Errorf("%s: class %s", dn.Name(), dn.Cls)
		}
	}
	// soma children skip the soma sample; dend[1] starts at its parent's last point
	if ld.Dend[0].Pts[0].Pos != (mat32.Vec3{X: 0, Y: 10, Z: 0}) || ld.Dend[0].Logical == nil {
		t.Errorf("dend[0] first point %v logical %v", ld.Dend[0].Pts[0].Pos, ld.Dend[0].Logical)
	}
	if ld.Dend[1].Pts[0].Pos != (mat32.Vec3{X: 0, Y: 91, Z: 0}) || ld.Dend[1].Logical != nil {
		t.Errorf("dend[1] first point %v", ld.Dend[1].Pts[0].Pos)
	}
}

func TestLoadWithAxonShift(t *testing.T) {
	eng := nrn.NewEngine()
	ld, err := LoadFile(eng, "", "testdata/cell.swc", Opts{UseAxon: true, Shift: mat32.Vec3{X: 100, Y: -10, Z: 1}})
	if err != nil {
		t.Fatal(err)
	}
	if got := names(ld.Axon); got != "axon[0]" {
		t.Fatalf("axon: %s", got)
	}
	ax := ld.Axon[0]
	if ax.Parent != ld.Soma[0] || ax.ParentX != 0.5 || ax.L != 50 || ax.Cls != "axon" {
		t.Errorf("axon: parent %v x %v L %v", ax.Parent, ax.ParentX, ax.L)
	}
	if got := names(ld.All()); got != "soma[0] dend[0] dend[1] dend[2] dend[3] axon[0]" {
		t.Errorf("all: %s", got)
	}
	sp := ld.Soma[0].Pts
	if sp[0].Pos != (mat32.Vec3{X: 95, Y: -10, Z: 1}) || sp[2].Pos != (mat32.Vec3{X: 105, Y: -10, Z: 1}) {
		t.Errorf("shifted soma: %v %v", sp[0].Pos, sp[2].Pos)
	}
	if lg := ld.Dend[0].Logical; lg == nil || *lg != (mat32.Vec3{X: 100, Y: -10, Z: 1}) {
		t.Errorf("shifted logical start: %v", lg)
	}
}

func TestLoadMultiPointSoma(t *testing.T) {
	src := `
1 1 0 0 0 5 -1
2 1 5 0 0 5 1
3 1 10 0 0 5 2
4 3 5 10 0 1 2
5 3 5 30 0 1 4
6 3 5 40 0 1 5
7 4 5 60 0 1 6
8 4 5 80 0 1 7
`
	m, err := Read(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	eng := nrn.NewEngine()
	ld, err := Load(eng, "", m, Opts{})
	if err != nil {
		t.Fatal(err)
	}
	if got := names(ld.All()); got != "soma[0] apic[0] dend[0]" {
		t.Fatalf("sections: %s", got)
	}
	soma := ld.Soma[0]
	if soma.L != 10 || len(soma.Pts) != 3 {
		t.Errorf("soma L %v pts %d", soma.L, len(soma.Pts))
	}
	dn := ld.Dend[0]
	if dn.Parent != soma || math.Abs(dn.ParentX-0.5) > difTol || dn.L != 30 {
		t.Errorf("dend: parent %v x %v L %v", dn.Parent, dn.ParentX, dn.L)
	}
	// type change starts a new section at the end of the dendrite
	ap := ld.Apic[0]
	if ap.Parent != dn || ap.ParentX != 1 || ap.L != 40 || ap.Cls != "apic" {
		t.Errorf("apic: parent %v x %v L %v", ap.Parent, ap.ParentX, ap.L)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		opts Opts
		err  error
	}{
		{"type", "1 1 0 0 0 5 -1\n2 7 0 10 0 1 1\n", Opts{}, ErrUnsupportedType},
		{"orphan", "1 1 0 0 0 5 -1\n2 2 0 10 0 1 1\n3 3 0 20 0 1 2\n", Opts{}, ErrFormat},
		{"loop", "1 1 0 0 0 5 -1\n2 3 0 10 0 1 3\n3 3 0 20 0 1 2\n", Opts{}, ErrFormat},
	}
	for _, cs := range cases {
		m, err := Read(strings.NewReader(cs.src))
		if err != nil {
			t.Errorf("%s: read: %v", cs.name, err)
			continue
		}
		if _, err := Load(nrn.NewEngine(), "", m, cs.opts); !errors.Is(err, cs.err) {
			t.Errorf("%s: got %v, want %v", cs.name, err, cs.err)
		}
	}
	// the same orphan is fine when the axon is kept
	m, _ := Read(strings.NewReader("1 1 0 0 0 5 -1\n2 2 0 10 0 1 1\n3 3 0 20 0 1 2\n"))
	if _, err := Load(nrn.NewEngine(), "", m, Opts{UseAxon: true}); err != nil {
		t.Errorf("orphan with axon kept: %v", err)
	}
}
