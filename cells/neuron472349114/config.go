// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron472349114

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/goki/gi/gi"
	"github.com/goki/mat32"
)

// DefaultMorphology is the reconstruction the model parameters were fit to
const DefaultMorphology = "Pvalb-IRES-Cre_Ai14_IVSCC_-176852.02.02.01_470548840_m.swc"

// Config holds the construction options of a Cell
type Config struct {
	Name       string      `def:"Neuron472349114" desc:"name of the cell instance -- String() returns DefaultName when empty"`
	Morphology gi.FileName `def:"Pvalb-IRES-Cre_Ai14_IVSCC_-176852.02.02.01_470548840_m.swc" desc:"SWC reconstruction to load"`
	Pos        mat32.Vec3  `desc:"x, y, z offset added to every point of the morphology"`
	ParamSet   string      `def:"Base" desc:"name of the ParamSets set applied after discretization"`
	SetMsg     bool        `desc:"log each parameter assignment"`
}

func (cf *Config) Defaults() {
	cf.Name = ModelName
	cf.Morphology = DefaultMorphology
	cf.ParamSet = "Base"
}

// OpenConfig returns the Defaults overridden by the TOML file of given name.
// Keys that do not match a Config field are an error.
func OpenConfig(fname string) (*Config, error) {
	cf := &Config{}
	cf.Defaults()
	md, err := toml.DecodeFile(fname, cf)
	if err != nil {
		return nil, err
	}
	if und := md.Undecoded(); len(und) > 0 {
		return nil, fmt.Errorf("%s: unknown config keys: %v", fname, und)
	}
	return cf, nil
}
