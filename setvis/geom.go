// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package setvis

import (
	"math"

	"github.com/aclements/go-moremath/vec"
)

type circle struct {
	x, y, r float64
}

// lensArea returns the area of the intersection of two circles with
// radii r1 and r2 whose centers are d apart.
func lensArea(r1, r2, d float64) float64 {
	if d >= r1+r2 {
		return 0
	}
	rmin := math.Min(r1, r2)
	if d <= math.Abs(r1-r2) {
		return math.Pi * rmin * rmin
	}
	// Split the lens along the chord through the two
	// intersection points. d1 and d2 are the distances from each
	// center to the chord.
	d1 := (d*d + r1*r1 - r2*r2) / (2 * d)
	d2 := d - d1
	seg := func(r, x float64) float64 {
		return r*r*math.Acos(x/r) - x*math.Sqrt(r*r-x*x)
	}
	return seg(r1, d1) + seg(r2, d2)
}

// sepForOverlap returns the center distance at which circles of radii
// r1 and r2 overlap in the given area. The area is clamped to the
// feasible range: zero or less gives tangent circles and an area
// covering the smaller circle gives containment.
func sepForOverlap(r1, r2, area float64) float64 {
	lo, hi := math.Abs(r1-r2), r1+r2
	rmin := math.Min(r1, r2)
	if area <= 0 {
		return hi
	}
	if area >= math.Pi*rmin*rmin {
		return lo
	}
	// lensArea is continuous and strictly decreasing on [lo, hi],
	// so bisect.
	for i := 0; i < 64; i++ {
		mid := (lo + hi) / 2
		if lensArea(r1, r2, mid) > area {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}

// placeCircles positions circles with the given radii so that the
// distance between each pair approximates want[i][j]. It refines an
// initial ring placement by gradient descent on the squared distance
// error.
func placeCircles(radii []float64, want [][]float64) []circle {
	n := len(radii)
	cs := make([]circle, n)
	var rmax float64
	for _, r := range radii {
		rmax = math.Max(rmax, r)
	}
	angles := vec.Linspace(0, 2*math.Pi, n+1)
	for i := range cs {
		cs[i] = circle{rmax * math.Cos(angles[i]), rmax * math.Sin(angles[i]), radii[i]}
	}
	if n < 2 {
		return cs
	}

	const steps = 4000
	rate := rmax / 50
	for step := 0; step < steps; step++ {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx, dy := cs[j].x-cs[i].x, cs[j].y-cs[i].y
				d := math.Hypot(dx, dy)
				if d == 0 {
					dx, dy, d = 1e-3, 0, 1e-3
				}
				// Move both centers along their
				// separation to close the gap between
				// the current and wanted distance.
				err := (d - want[i][j]) / d
				cs[i].x += rate * err * dx
				cs[i].y += rate * err * dy
				cs[j].x -= rate * err * dx
				cs[j].y -= rate * err * dy
			}
		}
		rate *= 0.999
	}
	return cs
}

// fitCircles maps circles into a width x height viewport with the
// given margin, preserving aspect ratio.
func fitCircles(cs []circle, width, height, margin float64) []circle {
	if len(cs) == 0 {
		return cs
	}
	x0, y0 := math.Inf(1), math.Inf(1)
	x1, y1 := math.Inf(-1), math.Inf(-1)
	for _, c := range cs {
		x0 = math.Min(x0, c.x-c.r)
		y0 = math.Min(y0, c.y-c.r)
		x1 = math.Max(x1, c.x+c.r)
		y1 = math.Max(y1, c.y+c.r)
	}
	scale := math.Min((width-2*margin)/(x1-x0), (height-2*margin)/(y1-y0))
	out := make([]circle, len(cs))
	for i, c := range cs {
		out[i] = circle{
			x: (c.x-(x0+x1)/2)*scale + width/2,
			y: (c.y-(y0+y1)/2)*scale + height/2,
			r: c.r * scale,
		}
	}
	return out
}
