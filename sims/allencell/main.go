// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// allencell builds Allen Cell Types model 472349114 from its reconstruction,
// prints the resulting section tree and optionally saves the section table.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ccnlab/allencell/cells/neuron472349114"
	"github.com/goki/gi/gi"
)

func main() {
	cfg, tblFile, err := ConfigArgs(flag.CommandLine, os.Args[1:])
	if err == nil {
		err = Run(cfg, tblFile)
	}
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

// ConfigArgs parses command line args into a cell Config.  Values from a
// -config file are used unless the same flag is given on the command line.
// Also returns the section table file name, empty if not requested.
func ConfigArgs(fs *flag.FlagSet, args []string) (*neuron472349114.Config, string, error) {
	var cfgFile, morph, name, pset, tblFile string
	var x, y, z float64
	var setMsg bool
	fs.StringVar(&cfgFile, "config", "", "TOML config file -- command line args override its values")
	fs.StringVar(&morph, "swc", neuron472349114.DefaultMorphology, "SWC morphology file")
	fs.StringVar(&name, "name", neuron472349114.ModelName, "name of the cell instance")
	fs.Float64Var(&x, "x", 0, "x offset of the morphology")
	fs.Float64Var(&y, "y", 0, "y offset of the morphology")
	fs.Float64Var(&z, "z", 0, "z offset of the morphology")
	fs.StringVar(&pset, "params", "Base", "ParamSet name to apply")
	fs.BoolVar(&setMsg, "setparams", false, "if true, print a record of each parameter that is set")
	fs.StringVar(&tblFile, "sectab", "", "if set, save the section table to this CSV file")
	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}

	cfg := &neuron472349114.Config{}
	cfg.Defaults()
	if cfgFile != "" {
		fcfg, err := neuron472349114.OpenConfig(cfgFile)
		if err != nil {
			return nil, "", err
		}
		cfg = fcfg
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "swc":
			cfg.Morphology = gi.FileName(morph)
		case "name":
			cfg.Name = name
		case "x":
			cfg.Pos.X = float32(x)
		case "y":
			cfg.Pos.Y = float32(y)
		case "z":
			cfg.Pos.Z = float32(z)
		case "params":
			cfg.ParamSet = pset
		case "setparams":
			cfg.SetMsg = setMsg
		}
	})
	return cfg, tblFile, nil
}

// Run builds the cell, prints its topology and point neuron reversal
// potentials, and saves the section table if tblFile is set
func Run(cfg *neuron472349114.Config, tblFile string) error {
	eng, err := neuron472349114.NewEngine()
	if err != nil {
		return err
	}
	cl, err := neuron472349114.New(eng, cfg)
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d sections\n", cl, len(cl.All))
	fmt.Print(eng.Topology())
	erev, err := cl.PointErev()
	if err != nil {
		return err
	}
	fmt.Printf("point neuron Erev: E: %g  L: %g  I: %g  K: %g\n", erev.E, erev.L, erev.I, erev.K)
	if tblFile != "" {
		if err := cl.SaveSectionTable(gi.FileName(tblFile)); err != nil {
			return err
		}
		fmt.Printf("Saving section table to: %s\n", tblFile)
	}
	return nil
}
