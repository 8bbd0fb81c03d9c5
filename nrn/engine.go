// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nrn

import (
	"fmt"
)

// Engine is the registry of mechanism types and sections for one simulation session.
// It is not safe for concurrent mutation.
type Engine struct {
	mechs   map[string]*MechType
	mechOrd []*MechType
	secs    []*Section
}

// NewEngine returns an Engine with the built-in pas mechanism registered
func NewEngine() *Engine {
	eng := &Engine{mechs: make(map[string]*MechType)}
	eng.Register(Pas)
	return eng
}

// Register adds a mechanism type to the catalog, as compiling a mod file does
func (eng *Engine) Register(mt *MechType) error {
	if mt == nil || mt.Name == "" {
		return fmt.Errorf("register: mechanism with no name: %w", ErrUnknownMech)
	}
	if _, has := eng.mechs[mt.Name]; has {
		return fmt.Errorf("register %s: %w", mt.Name, ErrDupMech)
	}
	for _, ion := range mt.Ions {
		if _, ok := IonErev[ion]; !ok {
			return fmt.Errorf("register %s: unknown ion %q: %w", mt.Name, ion, ErrInvalidValue)
		}
	}
	eng.mechs[mt.Name] = mt
	eng.mechOrd = append(eng.mechOrd, mt)
	return nil
}

// MechType returns the registered mechanism type of given name
func (eng *Engine) MechType(name string) (*MechType, error) {
	mt, has := eng.mechs[name]
	if !has {
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownMech)
	}
	return mt, nil
}

// MechTypes returns the registered mechanism types in registration order
func (eng *Engine) MechTypes() []*MechType {
	return eng.mechOrd
}

// NewSection creates a section owned by the named cell (may be empty) and
// adds it to the registry.  Geometry and electrical properties start at
// the NEURON defaults: L = 100, diam = 500, nseg = 1, Ra = 35.4, cm = 1.
func (eng *Engine) NewSection(cell, name string) *Section {
	sc := &Section{
		Nm:     name,
		CellNm: cell,
		L:      100,
		Diam:   500,
		Nseg:   1,
		Ra:     35.4,
		Cm:     1,
		eng:    eng,
		idx:    len(eng.secs),
	}
	eng.secs = append(eng.secs, sc)
	return sc
}

// Sections returns all sections in creation order
func (eng *Engine) Sections() []*Section {
	return eng.secs
}

// SectionByName returns the section with given HName, or nil
func (eng *Engine) SectionByName(hname string) *Section {
	for _, sc := range eng.secs {
		if sc.HName() == hname {
			return sc
		}
	}
	return nil
}
