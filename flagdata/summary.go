// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagdata

import "github.com/aclements/go-moremath/stats"

// Stats summarizes one numeric column.
type Stats struct {
	Mean, Min, Max float64
}

// Summary reports location statistics for the count columns and the
// number of flags using each color.
type Summary struct {
	Bars, Stripes Stats

	// ColorCounts maps each color to the number of flags using
	// it, keyed in ColorNames order.
	ColorCounts map[string]int
}

// Summarize computes a Summary of flags.
func Summarize(flags []Flag) Summary {
	bars := make([]float64, len(flags))
	stripes := make([]float64, len(flags))
	counts := make(map[string]int, len(ColorNames))
	for i, f := range flags {
		bars[i] = float64(f.Bars)
		stripes[i] = float64(f.Stripes)
		for _, c := range ColorNames {
			if f.Colors[c] {
				counts[c]++
			}
		}
	}
	col := func(xs []float64) Stats {
		if len(xs) == 0 {
			return Stats{}
		}
		min, max := stats.Bounds(xs)
		return Stats{stats.Mean(xs), min, max}
	}
	return Summary{col(bars), col(stripes), counts}
}
