// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package setvis

import (
	"fmt"
	"io"
	"math"
)

// Venn renders a classic Venn diagram of two or three sets. Circles
// are congruent and symmetrically placed regardless of set size, and
// every one of the 2^n-1 regions is labeled with its exclusive
// element count, including empty regions.
type Venn struct {
	Sets []Set

	// Width and Height are the output dimensions in pixels. Zero
	// means 500x400.
	Width, Height int
}

// Render writes the diagram as SVG.
func (v *Venn) Render(w io.Writer) error {
	n := len(v.Sets)
	if n != 2 && n != 3 {
		return fmt.Errorf("venn diagram requires 2 or 3 sets, have %d", n)
	}
	width, height := v.Width, v.Height
	if width == 0 {
		width, height = 500, 400
	}

	regions, err := Regions(v.Sets)
	if err != nil {
		return err
	}

	// Symmetric unit layout: centers 1.1 radii apart so every
	// region has room for a label.
	cs := make([]circle, n)
	if n == 2 {
		cs[0] = circle{-0.55, 0, 1}
		cs[1] = circle{0.55, 0, 1}
	} else {
		for i := range cs {
			a := -math.Pi/2 + 2*math.Pi*float64(i)/3
			cs[i] = circle{0.635 * math.Cos(a), 0.635 * math.Sin(a), 1}
		}
	}
	cs = fitCircles(cs, float64(width), float64(height), 30)

	canvas := svgNew(w, width, height)
	defer canvas.End()

	colors := setColors(n)
	for i, c := range cs {
		canvas.Circle(int(c.x), int(c.y), int(c.r), fillStyle(colors[i], 0.3))
	}

	// Count labels for all masks, empty regions included.
	for mask := uint64(1); mask < 1<<uint(n); mask++ {
		count := 0
		if r := regionOf(regions, mask); r != nil {
			count = len(r.Elems)
		}
		x, y := regionLabelPos(cs, mask)
		canvas.Text(int(x), int(y), fmt.Sprint(count), `text-anchor="middle" dy=".3em"`)
	}

	// Set names outside the circles, away from the layout center.
	for i, c := range cs {
		d := math.Hypot(c.x-float64(width)/2, c.y-float64(height)/2)
		ux, uy := 0.0, -1.0
		if d > 0 {
			ux = (c.x - float64(width)/2) / d
			uy = (c.y - float64(height)/2) / d
		}
		canvas.Text(int(c.x+ux*(c.r+12)), int(c.y+uy*(c.r+12)), v.Sets[i].Name,
			fmt.Sprintf(`text-anchor="middle" dy=".3em" fill="%s"`, cssColor(colors[i])))
	}
	return nil
}
