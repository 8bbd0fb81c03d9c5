// Copyright (c) 2021, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nrn

import (
	"fmt"
	"strconv"
	"strings"
)

// Topology returns the section trees of the registry, one section per line,
// children indented under their parent with the connection position:
//
//	soma[0] nseg=1
//	  `dend[0](0.5) nseg=5
//	    `dend[1](1) nseg=1
func (eng *Engine) Topology() string {
	var b strings.Builder
	for _, sc := range eng.secs {
		if sc.Parent == nil {
			sc.topology(&b, 0)
		}
	}
	return b.String()
}

func (sc *Section) topology(b *strings.Builder, depth int) {
	if depth == 0 {
		fmt.Fprintf(b, "%s nseg=%d\n", sc.HName(), sc.Nseg)
	} else {
		fmt.Fprintf(b, "%s`%s(%s) nseg=%d\n", strings.Repeat("  ", depth), sc.HName(), strconv.FormatFloat(sc.ParentX, 'g', -1, 64), sc.Nseg)
	}
	for _, kid := range sc.Children {
		kid.topology(b, depth+1)
	}
}
