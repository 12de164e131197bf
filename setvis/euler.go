// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package setvis

import (
	"fmt"
	"io"
	"math"

	"github.com/aclements/go-moremath/stats"
)

// Euler renders an area-proportional Euler diagram. Each set is a
// circle whose area is proportional to its cardinality, and pairwise
// center distances are chosen so the lens between two circles has
// area proportional to their intersection. Unlike Venn, empty
// regions are not labeled: disjoint sets draw apart and subsets
// nest.
//
// Exact area-proportional layouts do not exist for every family of
// three or more sets; the layout minimizes the pairwise distance
// error in that case.
type Euler struct {
	Sets []Set

	// Width and Height are the output dimensions in pixels. Zero
	// means 500x400.
	Width, Height int
}

// layout computes the fitted circle placement for the diagram.
func (e *Euler) layout(width, height float64) ([]circle, error) {
	n := len(e.Sets)
	if n == 0 {
		return nil, fmt.Errorf("euler diagram requires at least 1 set")
	}

	// Unit areas: one element = one unit of area.
	radii := make([]float64, n)
	for i, s := range e.Sets {
		radii[i] = math.Sqrt(float64(len(s.Elems)) / math.Pi)
	}
	// Empty sets still get a sliver so they render.
	_, rmax := stats.Bounds(radii)
	for i, r := range radii {
		if r == 0 {
			radii[i] = math.Max(rmax/20, 0.1)
		}
	}

	want := make([][]float64, n)
	for i := range want {
		want[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			both := intersectCount(e.Sets[i], e.Sets[j])
			d := sepForOverlap(radii[i], radii[j], float64(both))
			if both == 0 {
				// Visible gap between disjoint sets.
				d += rmax / 4
			}
			want[i][j] = d
			want[j][i] = d
		}
	}

	cs := placeCircles(radii, want)
	return fitCircles(cs, width, height, 30), nil
}

// Render writes the diagram as SVG.
func (e *Euler) Render(w io.Writer) error {
	width, height := e.Width, e.Height
	if width == 0 {
		width, height = 500, 400
	}
	cs, err := e.layout(float64(width), float64(height))
	if err != nil {
		return err
	}
	regions, err := Regions(e.Sets)
	if err != nil {
		return err
	}

	canvas := svgNew(w, width, height)
	defer canvas.End()

	colors := setColors(len(e.Sets))
	for i, c := range cs {
		canvas.Circle(int(c.x), int(c.y), int(c.r), fillStyle(colors[i], 0.3))
	}

	// Only non-empty regions get labels.
	for _, r := range regions {
		x, y := regionLabelPos(cs, r.Mask)
		canvas.Text(int(x), int(y), fmt.Sprint(len(r.Elems)), `text-anchor="middle" dy=".3em"`)
	}

	for i, c := range cs {
		canvas.Text(int(c.x), int(c.y-c.r-8), e.Sets[i].Name,
			fmt.Sprintf(`text-anchor="middle" fill="%s"`, cssColor(colors[i])))
	}
	return nil
}

func intersectCount(a, b Set) int {
	n := 0
	for _, e := range a.Elems {
		if b.Contains(e) {
			n++
		}
	}
	return n
}
