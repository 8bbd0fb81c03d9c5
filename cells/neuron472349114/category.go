// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package neuron472349114

import (
	"github.com/goki/ki/kit"
)

// Category is the anatomical region of a section
type Category int32

//go:generate stringer -type=Category

var KiT_Category = kit.Enums.AddEnum(CategoryN, kit.NotBitFlag, nil)

func (ev Category) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Category) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The section categories
const (
	// Soma is the cell body
	Soma Category = iota

	// Dend are the basal dendrites
	Dend

	// Apic are the apical dendrites, absent in this interneuron
	Apic

	// Axon is the two-section stub that replaces the reconstructed axon
	Axon

	CategoryN
)

var categoryClasses = [CategoryN]string{"soma", "dend", "apic", "axon"}

// Class returns the section class used by params selectors (.soma, .dend ...)
func (ev Category) Class() string {
	if ev < 0 || ev >= CategoryN {
		return ""
	}
	return categoryClasses[ev]
}
