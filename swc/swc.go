// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package swc reads SWC morphology reconstructions and instantiates them as
nrn sections, following the conventions of NEURON's Import3d tool as used
by the Allen Cell Types models: unbranched sections named soma[i], axon[i],
dend[i] and apic[i], with the axon optionally left out.
*/
package swc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/goki/mat32"
)

var (
	// ErrFormat is returned for a malformed SWC file
	ErrFormat = errors.New("swc: malformed file")

	// ErrUnsupportedType is returned at load time for sample types other than soma, axon, dend, apic
	ErrUnsupportedType = errors.New("swc: unsupported point type")
)

// The SWC structure identifiers used by the loader
const (
	Soma = 1
	Axon = 2
	Dend = 3
	Apic = 4
)

// TypeNames are the section name stems and classes for the supported types
var TypeNames = map[int]string{
	Soma: "soma",
	Axon: "axon",
	Dend: "dend",
	Apic: "apic",
}

// Sample is one line of an SWC file
type Sample struct {
	ID     int        `desc:"sample number"`
	Type   int        `desc:"structure identifier: 1 soma, 2 axon, 3 dend, 4 apic"`
	Pos    mat32.Vec3 `desc:"position in um"`
	Radius float32    `desc:"radius in um"`
	Parent int        `desc:"parent sample number, -1 for a root"`
}

// Diam returns the sample diameter
func (s *Sample) Diam() float32 {
	return 2 * s.Radius
}

// Morph is a parsed SWC reconstruction
type Morph struct {
	Samples []Sample    `desc:"samples in file order"`
	Index   map[int]int `view:"-" desc:"sample ID -> index in Samples"`
}

// Open reads the SWC file of given name
func Open(fname string) (*Morph, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	m, err := Read(fp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return m, nil
}

// Read parses SWC lines: id type x y z radius parent.
// Blank lines and # comments are skipped.
func Read(r io.Reader) (*Morph, error) {
	m := &Morph{Index: make(map[int]int)}
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := sc.Text()
		if ci := strings.Index(line, "#"); ci >= 0 {
			line = line[:ci]
		}
		flds := strings.Fields(line)
		if len(flds) == 0 {
			continue
		}
		if len(flds) != 7 {
			return nil, fmt.Errorf("line %d: %d fields, need 7: %w", ln, len(flds), ErrFormat)
		}
		var s Sample
		var err error
		if s.ID, err = strconv.Atoi(flds[0]); err != nil {
			return nil, fmt.Errorf("line %d: id %q: %w", ln, flds[0], ErrFormat)
		}
		if s.Type, err = strconv.Atoi(flds[1]); err != nil {
			return nil, fmt.Errorf("line %d: type %q: %w", ln, flds[1], ErrFormat)
		}
		var vals [4]float32
		for i := range vals {
			fv, err := strconv.ParseFloat(flds[2+i], 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: value %q: %w", ln, flds[2+i], ErrFormat)
			}
			vals[i] = float32(fv)
		}
		s.Pos = mat32.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}
		s.Radius = vals[3]
		if s.Parent, err = strconv.Atoi(flds[6]); err != nil {
			return nil, fmt.Errorf("line %d: parent %q: %w", ln, flds[6], ErrFormat)
		}
		if s.Parent < 0 {
			s.Parent = -1
		}
		if _, dup := m.Index[s.ID]; dup {
			return nil, fmt.Errorf("line %d: duplicate sample %d: %w", ln, s.ID, ErrFormat)
		}
		m.Index[s.ID] = len(m.Samples)
		m.Samples = append(m.Samples, s)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(m.Samples) == 0 {
		return nil, fmt.Errorf("no samples: %w", ErrFormat)
	}
	for i := range m.Samples {
		s := &m.Samples[i]
		if s.Parent == -1 {
			continue
		}
		if s.Parent == s.ID {
			return nil, fmt.Errorf("sample %d is its own parent: %w", s.ID, ErrFormat)
		}
		if _, has := m.Index[s.Parent]; !has {
			return nil, fmt.Errorf("sample %d: parent %d not found: %w", s.ID, s.Parent, ErrFormat)
		}
	}
	return m, nil
}

// Children returns, for each sample index, the indexes of its children in ID order
func (m *Morph) Children() [][]int {
	kids := make([][]int, len(m.Samples))
	for i := range m.Samples {
		s := &m.Samples[i]
		if s.Parent == -1 {
			continue
		}
		pi := m.Index[s.Parent]
		kids[pi] = append(kids[pi], i)
	}
	for _, k := range kids {
		sort.Slice(k, func(a, b int) bool { return m.Samples[k[a]].ID < m.Samples[k[b]].ID })
	}
	return kids
}

// Roots returns the indexes of samples with no parent, in ID order
func (m *Morph) Roots() []int {
	var rts []int
	for i := range m.Samples {
		if m.Samples[i].Parent == -1 {
			rts = append(rts, i)
		}
	}
	sort.Slice(rts, func(a, b int) bool { return m.Samples[rts[a]].ID < m.Samples[rts[b]].ID })
	return rts
}

// CountType returns the number of samples of given type
func (m *Morph) CountType(typ int) int {
	n := 0
	for i := range m.Samples {
		if m.Samples[i].Type == typ {
			n++
		}
	}
	return n
}
