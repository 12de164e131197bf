// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package setvis

import (
	"fmt"
	"io"
	"sort"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Order controls the left-to-right order of upset plot columns.
type Order int

const (
	// BySize orders intersections by descending size.
	BySize Order = iota

	// ByDegree orders intersections by ascending degree, breaking
	// ties by descending size.
	ByDegree
)

// A Query names a combination of sets to highlight. Every
// intersection that lies within all of the named sets is drawn in
// the query's color and the query appears in the legend.
type Query struct {
	Label string
	Sets  []string
}

// UpSet renders an upset plot: a matrix of set memberships, one
// column per non-empty exclusive intersection, with a bar above each
// column for the intersection size and a bar beside each row for the
// set size.
type UpSet struct {
	Sets []Set

	// MinSize drops intersections with fewer elements.
	MinSize int

	// MaxDegree, if positive, drops intersections spanning more
	// than MaxDegree sets.
	MaxDegree int

	// Sort selects the column order.
	Sort Order

	// Queries highlight named set combinations.
	Queries []Query

	// Width and Height are the output dimensions in pixels. Zero
	// sizes the plot to its contents.
	Width, Height int
}

// columns returns the plotted intersections after filtering and
// sorting.
func (u *UpSet) columns() ([]Region, error) {
	regions, err := Regions(u.Sets)
	if err != nil {
		return nil, err
	}
	cols := regions[:0]
	for _, r := range regions {
		if len(r.Elems) < u.MinSize {
			continue
		}
		if u.MaxDegree > 0 && r.Degree() > u.MaxDegree {
			continue
		}
		cols = append(cols, r)
	}
	sort.SliceStable(cols, func(i, j int) bool {
		a, b := cols[i], cols[j]
		if u.Sort == ByDegree && a.Degree() != b.Degree() {
			return a.Degree() < b.Degree()
		}
		if len(a.Elems) != len(b.Elems) {
			return len(a.Elems) > len(b.Elems)
		}
		return a.Mask < b.Mask
	})
	return cols, nil
}

// queryMask resolves q's set names against u.Sets.
func (u *UpSet) queryMask(q Query) (uint64, error) {
	var mask uint64
	for _, name := range q.Sets {
		found := false
		for i, s := range u.Sets {
			if s.Name == name {
				mask |= 1 << uint(i)
				found = true
				break
			}
		}
		if !found {
			return 0, fmt.Errorf("query %q: unknown set %q", q.Label, name)
		}
	}
	return mask, nil
}

// textWidth measures s in the label font.
func textWidth(s string) int {
	return font.MeasureString(basicfont.Face7x13, s).Ceil()
}

// Render writes the plot as SVG.
func (u *UpSet) Render(w io.Writer) error {
	cols, err := u.columns()
	if err != nil {
		return err
	}
	if len(cols) == 0 {
		return fmt.Errorf("no intersections to plot")
	}
	qmasks := make([]uint64, len(u.Queries))
	for i, q := range u.Queries {
		if qmasks[i], err = u.queryMask(q); err != nil {
			return err
		}
	}

	const (
		margin  = 15
		rowH    = 24
		colW    = 24
		sizeW   = 90  // set-size bar track
		barH    = 110 // intersection bar track
		dotR    = 7
		legendH = 22
	)
	labelW := 0
	for _, s := range u.Sets {
		if tw := textWidth(s.Name); tw > labelW {
			labelW = tw
		}
	}
	labelW += 16

	matX := margin + sizeW + labelW
	matY := margin + barH + 20
	width := matX + len(cols)*colW + margin
	height := matY + len(u.Sets)*rowH + margin
	if len(u.Queries) > 0 {
		height += legendH * len(u.Queries)
	}
	if u.Width != 0 {
		width = u.Width
	}
	if u.Height != 0 {
		height = u.Height
	}

	maxCol := 0
	for _, c := range cols {
		if len(c.Elems) > maxCol {
			maxCol = len(c.Elems)
		}
	}
	maxSet := 0
	for _, s := range u.Sets {
		if len(s.Elems) > maxSet {
			maxSet = len(s.Elems)
		}
	}

	qcolors := setColors(len(u.Queries))
	colColor := func(mask uint64) string {
		for i, qm := range qmasks {
			if qm != 0 && mask&qm == qm {
				return cssColor(qcolors[i])
			}
		}
		return "#444"
	}

	canvas := svgNew(w, width, height)
	defer canvas.End()

	// Intersection size bars.
	for j, c := range cols {
		h := len(c.Elems) * (barH - 15) / maxCol
		x := matX + j*colW + 4
		canvas.Rect(x, matY-20-h, colW-8, h, "fill:"+colColor(c.Mask))
		canvas.Text(x+(colW-8)/2, matY-24-h, fmt.Sprint(len(c.Elems)),
			`text-anchor="middle" font-size="11px"`)
	}

	// Set size bars and row labels.
	for i, s := range u.Sets {
		y := matY + i*rowH
		l := 0
		if maxSet > 0 {
			l = len(s.Elems) * (sizeW - 10) / maxSet
		}
		canvas.Rect(margin+sizeW-l, y+5, l, rowH-10, "fill:#888")
		canvas.Text(matX-8, y+rowH/2, s.Name, `text-anchor="end" dy=".3em"`)
	}

	// Membership matrix.
	for j, c := range cols {
		x := matX + j*colW + colW/2
		first, last := -1, -1
		for i := range u.Sets {
			if c.Mask&(1<<uint(i)) != 0 {
				if first < 0 {
					first = i
				}
				last = i
			}
		}
		if first != last {
			canvas.Line(x, matY+first*rowH+rowH/2, x, matY+last*rowH+rowH/2,
				"stroke:"+colColor(c.Mask)+"; stroke-width:3")
		}
		for i := range u.Sets {
			y := matY + i*rowH + rowH/2
			if c.Mask&(1<<uint(i)) != 0 {
				canvas.Circle(x, y, dotR, "fill:"+colColor(c.Mask))
			} else {
				canvas.Circle(x, y, dotR, "fill:#ddd")
			}
		}
	}

	// Query legend.
	for i, q := range u.Queries {
		y := matY + len(u.Sets)*rowH + 10 + i*legendH
		canvas.Rect(margin, y, 14, 14, "fill:"+cssColor(qcolors[i]))
		canvas.Text(margin+20, y+7, q.Label, `dy=".3em" font-size="11px"`)
	}
	return nil
}
