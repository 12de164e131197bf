// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagdata

import "github.com/setplot/flagvis/setvis"

// ColorSets groups countries into one set per color, in ColorNames
// order. Set "red" contains every country whose flag uses red.
func ColorSets(flags []Flag) []setvis.Set {
	sets := make([]setvis.Set, len(ColorNames))
	for i, c := range ColorNames {
		var elems []string
		for _, f := range flags {
			if f.Colors[c] {
				elems = append(elems, f.Country)
			}
		}
		sets[i] = setvis.NewSet(c, elems)
	}
	return sets
}
