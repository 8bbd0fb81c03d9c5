// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron472349114

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/emer/axon/chans"
	"github.com/goki/gi/gi"
)

func TestSectionTable(t *testing.T) {
	cl := testCell(t, "pv1")
	dt := cl.SectionTable()
	if dt.Rows != len(cl.All) {
		t.Fatalf("rows: %d, want %d", dt.Rows, len(cl.All))
	}
	for i, sc := range cl.All {
		if nm := dt.CellString("Name", i); nm != sc.HName() {
			t.Errorf("row %d name: %s, want %s", i, nm, sc.HName())
		}
		if l := dt.CellFloat("L", i); math.Abs(l-sc.L) > difTol {
			t.Errorf("%s L: %v", sc, l)
		}
		if ns := dt.CellFloat("Nseg", i); int(ns) != sc.Nseg {
			t.Errorf("%s nseg: %v", sc, ns)
		}
		if ep := dt.CellFloat("EPas", i); ep != -92.7634175618 {
			t.Errorf("%s e_pas: %v", sc, ep)
		}
	}
	ax := len(cl.All) - 1
	if par := dt.CellString("Parent", ax); par != "pv1.axon[0]" {
		t.Errorf("axon[1] parent: %s", par)
	}
	if g := dt.CellFloat("GPas", ax); g != 0.000297528735429 {
		t.Errorf("axon[1] g_pas: %v", g)
	}
	if mn := dt.CellString("Mechs", 0); !strings.HasPrefix(mn, "pas CaDynamics") || !strings.HasSuffix(mn, "NaV SK") {
		t.Errorf("soma mechs: %s", mn)
	}

	fn := filepath.Join(t.TempDir(), "sections.csv")
	if err := cl.SaveSectionTable(gi.FileName(fn)); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		t.Fatal(err)
	}
	lns := strings.Split(strings.TrimSpace(string(b)), "\n")
	if len(lns) != len(cl.All)+1 {
		t.Errorf("csv lines: %d, want header + %d", len(lns), len(cl.All))
	}
	if !strings.Contains(lns[0], "GPas") || !strings.Contains(lns[1], "pv1.soma[0]") {
		t.Errorf("csv header %q first row %q", lns[0], lns[1])
	}
}

func TestPointErev(t *testing.T) {
	cl := testCell(t, "")
	erev, err := cl.PointErev()
	if err != nil {
		t.Fatal(err)
	}
	want := []struct {
		nm  string
		got float32
		mv  float64
	}{
		{"E", erev.E, 53},
		{"L", erev.L, -92.7634175618},
		{"K", erev.K, -107},
	}
	for _, w := range want {
		if bio := float64(chans.VToBio(w.got)); math.Abs(bio-w.mv) > 1.0e-3 {
			t.Errorf("%s: %v mV, want %v", w.nm, bio, w.mv)
		}
	}
	if erev.I != 0 {
		t.Errorf("I: %v", erev.I)
	}
	if erev.E <= erev.L || erev.L <= erev.K {
		t.Errorf("expected E > L > K: %+v", erev)
	}
}
