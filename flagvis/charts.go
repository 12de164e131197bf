// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/gg"
	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/setplot/flagvis/flagdata"
	chart "github.com/wcharczuk/go-chart/v2"
)

// stripesChart writes an ECDF of the stripe counts as SVG.
func stripesChart(tab table.Grouping, w io.Writer) error {
	plot := gg.NewPlot(tab)
	plot.Stat(convertFloat{[]string{"stripes"}})
	plot.Stat(ggstat.ECDF{X: "stripes", Label: "flags"})
	plot.Add(gg.LayerSteps{
		LayerPaths: gg.LayerPaths{X: "stripes", Y: "cumulative density of flags"},
	})
	plot.Add(gg.Title("Stripe counts"))
	return plot.WriteSVG(w, 500, 350)
}

// colorsChart writes a bar chart of color frequency as PNG.
func colorsChart(flags []flagdata.Flag, w io.Writer) error {
	ch := chart.BarChart{
		Title:      "Flags per color",
		Background: chart.Style{Padding: chart.Box{Top: 30, Left: 10, Right: 10}},
		Width:      640,
		Height:     400,
		BarWidth:   50,
		Bars:       colorBars(flags),
	}
	return ch.Render(chart.PNG, w)
}

// colorBars counts color uses in ColorNames order.
func colorBars(flags []flagdata.Flag) []chart.Value {
	bars := make([]chart.Value, len(flagdata.ColorNames))
	for i, c := range flagdata.ColorNames {
		bars[i].Label = c
		for _, f := range flags {
			if f.Colors[c] {
				bars[i].Value++
			}
		}
	}
	return bars
}

// convertFloat converts the named columns to float64 so later stats
// can assume floating point.
type convertFloat struct {
	cols []string
}

func (c convertFloat) F(g table.Grouping) table.Grouping {
	return table.MapTables(g, func(_ table.GroupID, t *table.Table) *table.Table {
		b := table.NewBuilder(t)
		for _, col := range c.cols {
			var ncol []float64
			slice.Convert(&ncol, t.MustColumn(col))
			b.Add(col, ncol)
		}
		return b.Done()
	})
}
