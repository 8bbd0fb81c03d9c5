// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nrn

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/goki/mat32"
)

// Pt3D is one 3D point of a section's centroid, with the diameter there
type Pt3D struct {
	Pos  mat32.Vec3
	Diam float32
}

// Section is an unbranched cable with uniform electrical properties,
// divided into Nseg segments for integration.
type Section struct {
	Nm       string      `desc:"name within the cell, e.g., soma[0]"`
	CellNm   string      `desc:"name of the owning cell, prefixed to HName"`
	Cls      string      `desc:"space-separated class names for params selectors (.soma, .dend)"`
	L        float64     `desc:"length in um"`
	Diam     float64     `desc:"diameter in um -- length-weighted mean when 3D points are present"`
	Nseg     int         `desc:"number of segments"`
	Ra       float64     `desc:"axial resistivity in ohm cm"`
	Cm       float64     `desc:"specific membrane capacitance in uF/cm2"`
	Pts      []Pt3D      `desc:"3D centroid points, if the section has 3D shape"`
	Logical  *mat32.Vec3 `desc:"logical connection point set by Pt3DStyle, if any"`
	Parent   *Section    `desc:"parent section, nil for a root"`
	ParentX  float64     `desc:"normalized position on the parent where the 0 end attaches"`
	Children []*Section  `desc:"sections connected to this one, in connection order"`

	mechs []*Mech
	ions  map[string]*float64
	eng   *Engine
	idx   int
}

// Name returns the section name within its cell
func (sc *Section) Name() string {
	return sc.Nm
}

// TypeName is "Section", the type selector for params
func (sc *Section) TypeName() string {
	return "Section"
}

// Class returns the class names used by .Class params selectors
func (sc *Section) Class() string {
	return sc.Cls
}

// HName returns the fully qualified name: cell.name, or just name with no cell
func (sc *Section) HName() string {
	if sc.CellNm == "" {
		return sc.Nm
	}
	return sc.CellNm + "." + sc.Nm
}

func (sc *Section) String() string {
	return sc.HName()
}

// Index returns the creation index of the section in its Engine
func (sc *Section) Index() int {
	return sc.idx
}

// Root returns the root of the tree containing this section
func (sc *Section) Root() *Section {
	rt := sc
	for rt.Parent != nil {
		rt = rt.Parent
	}
	return rt
}

///////////////////////////////////////////////////////////////////////
//  Connections

// Connect attaches the 0 end of this section to position x of parent.
// A section that already has a parent is moved to the new one.
func (sc *Section) Connect(parent *Section, x float64) error {
	if parent == nil {
		return fmt.Errorf("%s: nil parent: %w", sc.HName(), ErrConnect)
	}
	if parent.eng != sc.eng {
		return fmt.Errorf("%s -> %s: sections belong to different engines: %w", sc.HName(), parent.HName(), ErrConnect)
	}
	if math.IsNaN(x) || x < 0 || x > 1 {
		return fmt.Errorf("%s -> %s(%g): position must be in [0,1]: %w", sc.HName(), parent.HName(), x, ErrConnect)
	}
	for anc := parent; anc != nil; anc = anc.Parent {
		if anc == sc {
			return fmt.Errorf("%s -> %s: connection would create a loop: %w", sc.HName(), parent.HName(), ErrConnect)
		}
	}
	if sc.Parent != nil {
		log.Printf("nrn: %s was connected to %s, reconnecting to %s\n", sc.HName(), sc.Parent.HName(), parent.HName())
		sc.Disconnect()
	}
	sc.Parent = parent
	sc.ParentX = x
	parent.Children = append(parent.Children, sc)
	return nil
}

// Disconnect detaches this section from its parent, making it a root
func (sc *Section) Disconnect() {
	if sc.Parent == nil {
		return
	}
	kids := sc.Parent.Children
	for i, k := range kids {
		if k == sc {
			sc.Parent.Children = append(kids[:i:i], kids[i+1:]...)
			break
		}
	}
	sc.Parent = nil
	sc.ParentX = 0
}

///////////////////////////////////////////////////////////////////////
//  3D shape

// Pt3DClear removes all 3D points
func (sc *Section) Pt3DClear() {
	sc.Pts = nil
	sc.Logical = nil
}

// Pt3DStyle sets the logical connection point, which can differ from the
// first 3D point (e.g., the center of the soma for a dendrite).
func (sc *Section) Pt3DStyle(p mat32.Vec3) {
	lp := p
	sc.Logical = &lp
}

// Pt3DAdd appends a 3D point and recomputes L and Diam from the points
func (sc *Section) Pt3DAdd(p mat32.Vec3, diam float32) {
	sc.Pts = append(sc.Pts, Pt3D{Pos: p, Diam: diam})
	sc.updateGeom()
}

func (sc *Section) updateGeom() {
	np := len(sc.Pts)
	if np == 0 {
		return
	}
	if np == 1 {
		sc.L = 0
		sc.Diam = float64(sc.Pts[0].Diam)
		return
	}
	var ln, dsum float64
	for i := 1; i < np; i++ {
		p0, p1 := sc.Pts[i-1], sc.Pts[i]
		seg := float64(p1.Pos.Sub(p0.Pos).Length())
		ln += seg
		dsum += seg * 0.5 * float64(p0.Diam+p1.Diam)
	}
	sc.L = ln
	if ln > 0 {
		sc.Diam = dsum / ln
	} else {
		sc.Diam = float64(sc.Pts[np-1].Diam)
	}
}

// Arc returns the normalized arc position of 3D point i
func (sc *Section) Arc(i int) float64 {
	if i <= 0 || len(sc.Pts) < 2 || sc.L == 0 {
		return 0
	}
	var ln float64
	for j := 1; j <= i && j < len(sc.Pts); j++ {
		ln += float64(sc.Pts[j].Pos.Sub(sc.Pts[j-1].Pos).Length())
	}
	return ln / sc.L
}

// Area returns the membrane surface area in um^2: the sum of frustum
// lateral areas over 3D points, or a cylinder pi * diam * L without them.
func (sc *Section) Area() float64 {
	if len(sc.Pts) < 2 {
		return math.Pi * sc.Diam * sc.L
	}
	var area float64
	for i := 1; i < len(sc.Pts); i++ {
		p0, p1 := sc.Pts[i-1], sc.Pts[i]
		h := float64(p1.Pos.Sub(p0.Pos).Length())
		r0, r1 := 0.5*float64(p0.Diam), 0.5*float64(p1.Diam)
		area += math.Pi * (r0 + r1) * math.Sqrt((r0-r1)*(r0-r1)+h*h)
	}
	return area
}

///////////////////////////////////////////////////////////////////////
//  Mechanisms

// Insert adds the named mechanism with its default values.
// Inserting a mechanism already present is a no-op.
func (sc *Section) Insert(name string) error {
	if sc.Mech(name) != nil {
		return nil
	}
	mt, err := sc.eng.MechType(name)
	if err != nil {
		return fmt.Errorf("%s insert: %w", sc.HName(), err)
	}
	sc.mechs = append(sc.mechs, newMech(mt))
	for _, ion := range mt.Ions {
		if sc.ions == nil {
			sc.ions = make(map[string]*float64)
		}
		if _, has := sc.ions[ion]; !has {
			ev := IonErev[ion]
			sc.ions[ion] = &ev
		}
	}
	return nil
}

// Mech returns the inserted mechanism of given name, or nil
func (sc *Section) Mech(name string) *Mech {
	for _, mc := range sc.mechs {
		if mc.Type.Name == name {
			return mc
		}
	}
	return nil
}

// HasMech returns true if the named mechanism is inserted
func (sc *Section) HasMech(name string) bool {
	return sc.Mech(name) != nil
}

// Mechs returns the names of inserted mechanisms in insertion order
func (sc *Section) Mechs() []string {
	nms := make([]string, len(sc.mechs))
	for i, mc := range sc.mechs {
		nms[i] = mc.Type.Name
	}
	return nms
}

// HasIon returns true if a mechanism using the ion is inserted
func (sc *Section) HasIon(ion string) bool {
	_, has := sc.ions[ion]
	return has
}

///////////////////////////////////////////////////////////////////////
//  Named variables

// SetNseg sets the number of segments, which must be positive
func (sc *Section) SetNseg(n int) error {
	if n < 1 {
		return fmt.Errorf("%s nseg = %d: must be positive: %w", sc.HName(), n, ErrInvalidValue)
	}
	sc.Nseg = n
	return nil
}

// SetParam sets a section variable by its NEURON name: L, diam, nseg, Ra, cm,
// an ion reversal potential (ena, ek, eca) or a mechanism range variable
// (<param>_<mech>, e.g., g_pas, gbar_NaV).
func (sc *Section) SetParam(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s %s = %g: %w", sc.HName(), name, val, ErrInvalidValue)
	}
	switch name {
	case "L", "diam", "Ra", "cm":
		if val <= 0 {
			return fmt.Errorf("%s %s = %g: must be positive: %w", sc.HName(), name, val, ErrInvalidValue)
		}
		switch name {
		case "L":
			sc.L = val
		case "diam":
			sc.Diam = val
		case "Ra":
			sc.Ra = val
		case "cm":
			sc.Cm = val
		}
		return nil
	case "nseg":
		return sc.SetNseg(int(val))
	}
	vp, err := sc.varPtr(name)
	if err != nil {
		return err
	}
	*vp = val
	return nil
}

// Param returns a section variable by its NEURON name (see SetParam)
func (sc *Section) Param(name string) (float64, error) {
	switch name {
	case "L":
		return sc.L, nil
	case "diam":
		return sc.Diam, nil
	case "nseg":
		return float64(sc.Nseg), nil
	case "Ra":
		return sc.Ra, nil
	case "cm":
		return sc.Cm, nil
	}
	vp, err := sc.varPtr(name)
	if err != nil {
		return math.NaN(), err
	}
	return *vp, nil
}

// varPtr resolves an ion or mechanism variable name to its storage
func (sc *Section) varPtr(name string) (*float64, error) {
	if mt, pi := sc.eng.resolveMechVar(name); mt != nil {
		mc := sc.Mech(mt.Name)
		if mc == nil {
			return nil, fmt.Errorf("%s %s: %s: %w", sc.HName(), name, mt.Name, ErrMechNotInserted)
		}
		return &mc.Vals[pi], nil
	}
	if strings.HasPrefix(name, "e") {
		ion := name[1:]
		if _, known := IonErev[ion]; known {
			ev, has := sc.ions[ion]
			if !has {
				return nil, fmt.Errorf("%s %s: %w", sc.HName(), name, ErrIonNotPresent)
			}
			return ev, nil
		}
	}
	return nil, fmt.Errorf("%s %s: %w", sc.HName(), name, ErrUnknownParam)
}

// resolveMechVar splits <param>_<mech> against the registered mechanism
// types, preferring the longest mechanism name (Kv3_1 over a mechanism named 1).
func (eng *Engine) resolveMechVar(name string) (*MechType, int) {
	var best *MechType
	bpi := -1
	for _, mt := range eng.mechOrd {
		sfx := "_" + mt.Name
		if !strings.HasSuffix(name, sfx) || len(name) == len(sfx) {
			continue
		}
		pi := mt.ParamIdx(strings.TrimSuffix(name, sfx))
		if pi < 0 {
			continue
		}
		if best == nil || len(mt.Name) > len(best.Name) {
			best, bpi = mt, pi
		}
	}
	return best, bpi
}
