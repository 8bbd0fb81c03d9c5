// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package nrn is a minimal multi-compartment model registry in the style of the
NEURON simulator: sections with cable geometry, parent connections, inserted
density mechanisms, and named range variables (Ra, cm, g_pas, gbar_NaV, ena ...).

An Engine owns every section created through it, so one Engine corresponds to
one simulation session. It only holds and validates the configuration of a
model; it does not integrate membrane dynamics.
*/
package nrn
