// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package neuron472349114 configures model 472349114 of the Allen Cell Types
database, a Pvalb-IRES-Cre fast-spiking interneuron: the reconstructed
morphology with its axon replaced by a two-section stub, passive leak
everywhere, eleven active mechanisms on the soma, and the fitted parameters
in ParamSets.
*/
package neuron472349114

import (
	"errors"
	"fmt"

	"github.com/ccnlab/allencell/mechs"
	"github.com/ccnlab/allencell/nrn"
	"github.com/ccnlab/allencell/swc"
	"github.com/goki/mat32"
)

// ModelName is the default Config.Name
const ModelName = "Neuron472349114"

// DefaultName is what String returns for a cell whose name was set empty
const DefaultName = "Neuron472349114_instance"

// SegLen is the length in um covered per pair of segments by the discretization rule
const SegLen = 40

// Geometry of each of the two axon stub sections
const (
	StubL    = 30
	StubDiam = 1
)

// ErrNoSoma is returned when the morphology has no soma to attach the axon stub to
var ErrNoSoma = errors.New("neuron472349114: morphology has no soma")

// Cell is one instance of model 472349114, with its sections grouped by region
type Cell struct {
	Nm   string         `desc:"name given at construction -- may be empty"`
	Pos  mat32.Vec3     `desc:"offset applied to the morphology when loaded"`
	Eng  *nrn.Engine    `view:"-" desc:"engine holding the sections"`
	Soma []*nrn.Section `desc:"soma sections"`
	Dend []*nrn.Section `desc:"basal dendrite sections"`
	Apic []*nrn.Section `desc:"apical dendrite sections"`
	Axon []*nrn.Section `desc:"the two axon stub sections"`
	All  []*nrn.Section `desc:"soma + apic + dend, then the axon stub"`
}

// NewEngine returns an engine with the mechanisms of this model registered
func NewEngine() (*nrn.Engine, error) {
	eng := nrn.NewEngine()
	if err := mechs.Register(eng); err != nil {
		return nil, err
	}
	return eng, nil
}

// New builds a fully parameterized cell in the engine, which must have the
// mechs catalog registered (see NewEngine).  A nil cfg uses Config defaults.
// The steps run in a fixed order: load the morphology without its axon,
// attach the axon stub, insert mechanisms, discretize, apply ParamSets.
func New(eng *nrn.Engine, cfg *Config) (*Cell, error) {
	if cfg == nil {
		cfg = &Config{}
		cfg.Defaults()
	}
	morph := string(cfg.Morphology)
	if morph == "" {
		morph = DefaultMorphology
	}
	pset := cfg.ParamSet
	if pset == "" {
		pset = "Base"
	}
	cl := &Cell{Nm: cfg.Name, Pos: cfg.Pos, Eng: eng}
	if err := cl.loadMorphology(morph); err != nil {
		return nil, err
	}
	if err := cl.buildAxon(); err != nil {
		return nil, err
	}
	if err := cl.insertMechanisms(); err != nil {
		return nil, err
	}
	if err := cl.discretize(); err != nil {
		return nil, err
	}
	if err := cl.SetParamsSet(pset, cfg.SetMsg); err != nil {
		return nil, fmt.Errorf("%s: %w", cl, err)
	}
	return cl, nil
}

func (cl *Cell) String() string {
	if cl.Nm == "" {
		return DefaultName
	}
	return cl.Nm
}

// loadMorphology creates the soma and dendrite sections, leaving out the
// reconstructed axon
func (cl *Cell) loadMorphology(fname string) error {
	ld, err := swc.LoadFile(cl.Eng, cl.String(), fname, swc.Opts{UseAxon: false, Shift: cl.Pos})
	if err != nil {
		return err
	}
	cl.Soma = ld.Soma
	cl.Apic = ld.Apic
	cl.Dend = ld.Dend
	cl.All = ld.All()
	return nil
}

// buildAxon attaches axon[0] to the middle of soma[0] and axon[1] to the end of axon[0]
func (cl *Cell) buildAxon() error {
	if len(cl.Soma) == 0 {
		return ErrNoSoma
	}
	cl.Axon = make([]*nrn.Section, 2)
	for i := range cl.Axon {
		sc := cl.Eng.NewSection(cl.String(), fmt.Sprintf("axon[%d]", i))
		sc.Cls = Axon.Class()
		sc.L = StubL
		sc.Diam = StubDiam
		sc.Nseg = 1
		cl.Axon[i] = sc
	}
	if err := cl.Axon[0].Connect(cl.Soma[0], 0.5); err != nil {
		return err
	}
	if err := cl.Axon[1].Connect(cl.Axon[0], 1); err != nil {
		return err
	}
	cl.All = append(cl.All, cl.Axon...)
	return nil
}

// insertMechanisms puts pas in every section and the active mechanisms in soma[0]
func (cl *Cell) insertMechanisms() error {
	for _, sc := range cl.All {
		if err := sc.Insert("pas"); err != nil {
			return err
		}
	}
	for _, nm := range mechs.Names() {
		if err := cl.Soma[0].Insert(nm); err != nil {
			return err
		}
	}
	return nil
}

// Nseg returns the number of segments for a section of length l:
// 1 + 2*floor(l/SegLen), always odd so there is a node at the middle.
func Nseg(l float64) int {
	return 1 + 2*int(l/SegLen)
}

// discretize sets nseg of every section from its final length
func (cl *Cell) discretize() error {
	for _, sc := range cl.All {
		if err := sc.SetNseg(Nseg(sc.L)); err != nil {
			return err
		}
	}
	return nil
}

// Sections returns the sections of given category
func (cl *Cell) Sections(cat Category) []*nrn.Section {
	switch cat {
	case Soma:
		return cl.Soma
	case Dend:
		return cl.Dend
	case Apic:
		return cl.Apic
	case Axon:
		return cl.Axon
	}
	return nil
}

// Category returns the category of a section of this cell, false if it is not one
func (cl *Cell) Category(sc *nrn.Section) (Category, bool) {
	for cat := Soma; cat < CategoryN; cat++ {
		for _, cs := range cl.Sections(cat) {
			if cs == sc {
				return cat, true
			}
		}
	}
	return CategoryN, false
}
