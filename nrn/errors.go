// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nrn

import "errors"

var (
	// ErrUnknownMech is returned when inserting a mechanism type that was never registered
	ErrUnknownMech = errors.New("nrn: unknown mechanism")

	// ErrDupMech is returned when registering a mechanism name twice
	ErrDupMech = errors.New("nrn: mechanism already registered")

	// ErrUnknownParam is returned for a name that is not a section, ion or mechanism variable
	ErrUnknownParam = errors.New("nrn: not a section variable")

	// ErrMechNotInserted is returned for a mechanism variable on a section that lacks the mechanism
	ErrMechNotInserted = errors.New("nrn: mechanism not inserted in section")

	// ErrIonNotPresent is returned for an ion reversal potential on a section with no mechanism using the ion
	ErrIonNotPresent = errors.New("nrn: ion not present in section")

	// ErrInvalidValue is returned for an out-of-range or unparsable value
	ErrInvalidValue = errors.New("nrn: invalid value")

	// ErrConnect is returned for an invalid connection between sections
	ErrConnect = errors.New("nrn: invalid connection")
)
