// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagdata

import "github.com/aclements/go-gg/table"

// Table converts flags to a wide go-gg table with one column per
// schema column. Color columns hold 0/1 ints.
func Table(flags []Flag) *table.Table {
	countries := make([]string, len(flags))
	bars := make([]int, len(flags))
	stripes := make([]int, len(flags))
	colors := make(map[string][]int, len(ColorNames))
	for _, c := range ColorNames {
		colors[c] = make([]int, len(flags))
	}
	for i, f := range flags {
		countries[i] = f.Country
		bars[i] = f.Bars
		stripes[i] = f.Stripes
		for _, c := range ColorNames {
			if f.Colors[c] {
				colors[c][i] = 1
			}
		}
	}

	b := new(table.Builder).
		Add("country", countries).
		Add("bars", bars).
		Add("stripes", stripes)
	for _, c := range ColorNames {
		b.Add(c, colors[c])
	}
	return b.Done()
}

// ColorLong projects the color columns of a wide flags table to long
// form: one row per (country, color) pair, with the 0/1 value in a
// "present" column.
func ColorLong(g table.Grouping) table.Grouping {
	return table.Unpivot(g, "color", "present", ColorNames...)
}

// ColorWide inverts ColorLong, restoring one column per color.
func ColorWide(g table.Grouping) table.Grouping {
	return table.Pivot(g, "color", "present")
}
