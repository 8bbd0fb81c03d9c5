// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package swc

import (
	"fmt"

	"github.com/ccnlab/allencell/nrn"
	"github.com/goki/mat32"
)

// Opts control how a Morph is instantiated
type Opts struct {
	UseAxon bool       `desc:"create axon sections -- the Allen models drop the reconstructed axon and attach a stub instead"`
	Shift   mat32.Vec3 `desc:"offset added to every 3D point"`
}

// Loaded holds the sections created by Load, grouped by type
type Loaded struct {
	Soma []*nrn.Section
	Axon []*nrn.Section
	Dend []*nrn.Section
	Apic []*nrn.Section
}

// All returns soma + apic + dend + axon sections, in that order
func (ld *Loaded) All() []*nrn.Section {
	all := make([]*nrn.Section, 0, len(ld.Soma)+len(ld.Apic)+len(ld.Dend)+len(ld.Axon))
	all = append(all, ld.Soma...)
	all = append(all, ld.Apic...)
	all = append(all, ld.Dend...)
	all = append(all, ld.Axon...)
	return all
}

func (ld *Loaded) group(typ int) *[]*nrn.Section {
	switch typ {
	case Soma:
		return &ld.Soma
	case Axon:
		return &ld.Axon
	case Dend:
		return &ld.Dend
	default:
		return &ld.Apic
	}
}

// LoadFile opens the SWC file and loads it with Load
func LoadFile(eng *nrn.Engine, cell, fname string, opts Opts) (*Loaded, error) {
	m, err := Open(fname)
	if err != nil {
		return nil, err
	}
	ld, err := Load(eng, cell, m, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return ld, nil
}

// Load creates one nrn section per unbranched run of samples, connected
// and shaped as NEURON's Import3d does:
//   - sections break at branch points and where the sample type changes;
//     the soma continues through dendrite branch points.
//   - a child of the soma connects at the arc position of its parent sample
//     and does not repeat that sample as a 3D point (its logical start is set
//     by Pt3DStyle); other children connect at 1 and start with the parent's
//     last point.
//   - a section with a single 3D point becomes a cylinder of length and
//     diameter d along x.
func Load(eng *nrn.Engine, cell string, m *Morph, opts Opts) (*Loaded, error) {
	raws, err := m.split()
	if err != nil {
		return nil, err
	}
	ld := &Loaded{}
	for _, rs := range raws {
		if rs.typ == Axon && !opts.UseAxon {
			continue
		}
		stem, ok := TypeNames[rs.typ]
		if !ok {
			return nil, fmt.Errorf("sample %d type %d: %w", m.Samples[rs.samples[rs.first]].ID, rs.typ, ErrUnsupportedType)
		}
		if rs.parent != nil && rs.parent.sec == nil {
			return nil, fmt.Errorf("%s section at sample %d: parent section was not created: %w", stem, m.Samples[rs.samples[rs.first]].ID, ErrFormat)
		}
		grp := ld.group(rs.typ)
		sec := eng.NewSection(cell, fmt.Sprintf("%s[%d]", stem, len(*grp)))
		sec.Cls = stem
		if rs.parent != nil {
			if err := sec.Connect(rs.parent.sec, rs.parent.arcOf(rs.samples[0])); err != nil {
				return nil, err
			}
		}
		rs.shape(sec, m, opts.Shift)
		rs.sec = sec
		*grp = append(*grp, sec)
	}
	return ld, nil
}

// rawSec is an unbranched run of samples
type rawSec struct {
	typ     int
	samples []int        // sample indexes; samples[0] is the parent's sample when parent != nil
	first   int          // index in samples of the first 3D point
	parent  *rawSec      // nil for a root
	sec     *nrn.Section // created section, nil if skipped
}

// points returns the sample indexes that become 3D points
func (rs *rawSec) points() []int {
	return rs.samples[rs.first:]
}

// arcOf returns the normalized position of sample si along the created section
func (rs *rawSec) arcOf(si int) float64 {
	pts := rs.points()
	if len(pts) == 1 {
		return 0.5
	}
	for k, pi := range pts {
		if pi == si {
			return rs.sec.Arc(k)
		}
	}
	return 0
}

func (rs *rawSec) shape(sec *nrn.Section, m *Morph, shift mat32.Vec3) {
	if rs.first == 1 {
		sec.Pt3DStyle(m.Samples[rs.samples[0]].Pos.Add(shift))
	}
	pts := rs.points()
	if len(pts) == 1 {
		s := &m.Samples[pts[0]]
		d := s.Diam()
		for _, dx := range []float32{-d / 2, 0, d / 2} {
			p := s.Pos
			p.X += dx
			sec.Pt3DAdd(p.Add(shift), d)
		}
		return
	}
	for _, si := range pts {
		s := &m.Samples[si]
		sec.Pt3DAdd(s.Pos.Add(shift), s.Diam())
	}
}

// split partitions the samples into unbranched sections in depth-first order,
// parents always before their children.
func (m *Morph) split() ([]*rawSec, error) {
	kids := m.Children()
	visited := make([]bool, len(m.Samples))
	var out []*rawSec
	typ := func(si int) int { return m.Samples[si].Type }

	var walk func(rs *rawSec)
	walk = func(rs *rawSec) {
		out = append(out, rs)
		cur := rs.samples[len(rs.samples)-1]
		visited[cur] = true
		type branch struct{ from, kid int }
		var branches []branch
		for {
			cont := -1
			ks := kids[cur]
			if rs.typ == Soma {
				var somas []int
				for _, k := range ks {
					if typ(k) == Soma {
						somas = append(somas, k)
					}
				}
				if len(somas) == 1 {
					cont = somas[0]
				}
			} else if len(ks) == 1 && typ(ks[0]) == rs.typ {
				cont = ks[0]
			}
			for _, k := range ks {
				if k != cont {
					branches = append(branches, branch{cur, k})
				}
			}
			if cont < 0 {
				break
			}
			rs.samples = append(rs.samples, cont)
			visited[cont] = true
			cur = cont
		}
		for _, br := range branches {
			child := &rawSec{typ: typ(br.kid), samples: []int{br.from, br.kid}, parent: rs}
			if rs.typ == Soma {
				child.first = 1
			}
			walk(child)
		}
	}

	for _, rt := range m.Roots() {
		walk(&rawSec{typ: typ(rt), samples: []int{rt}})
	}
	for i, v := range visited {
		if !v {
			return nil, fmt.Errorf("sample %d is not reachable from a root (parent loop): %w", m.Samples[i].ID, ErrFormat)
		}
	}
	return out, nil
}
