// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nrn

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"

	"github.com/emer/emergent/params"
)

// ApplyParams applies every selector of the sheet that matches this section
// (Section, .Class or #Name), in sheet order.  Param paths are
// Section.<var> where <var> is a name accepted by SetParam.
// Returns true if any param was set, and the first error encountered.
func (sc *Section) ApplyParams(pars *params.Sheet, setMsg bool) (bool, error) {
	applied := false
	for _, sl := range *pars {
		if sl.Sel == "" || !params.SelMatch(sl.Sel, sc.Name(), sc.Class(), sc.TypeName(), "Section") {
			continue
		}
		paths := make([]string, 0, len(sl.Params))
		for pt := range sl.Params {
			paths = append(paths, pt)
		}
		sort.Strings(paths) // stable log order
		for _, pt := range paths {
			val := sl.Params[pt]
			fv, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
			if err != nil {
				return applied, fmt.Errorf("%s: param %s value %q: %w", sc.HName(), pt, val, ErrInvalidValue)
			}
			if err := sc.SetParam(ParamVar(pt), fv); err != nil {
				return applied, err
			}
			if setMsg {
				log.Printf("%v Set param path: %v to value: %v\n", sc.HName(), pt, val)
			}
			applied = true
		}
	}
	return applied, nil
}

// ParamVar strips the leading type element of a param path: Section.gbar_NaV -> gbar_NaV
func ParamVar(path string) string {
	if i := strings.Index(path, "."); i >= 0 {
		return path[i+1:]
	}
	return path
}
