// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package setvis

import (
	"fmt"
	"image/color"
	"io"
	"math"

	"github.com/aclements/go-gg/palette"
	svg "github.com/ajstarks/svgo"
)

// svgNew starts an SVG document with the shared font settings.
func svgNew(w io.Writer, width, height int) *svg.SVG {
	canvas := svg.New(w)
	canvas.Start(width, height, `font-size="13px" font-family="Helvetica,Arial,sans-serif"`)
	return canvas
}

// setColors returns n distinguishable colors sampled from the
// viridis palette.
func setColors(n int) []color.RGBA {
	out := make([]color.RGBA, n)
	for i := range out {
		x := 0.5
		if n > 1 {
			x = float64(i) / float64(n-1)
		}
		out[i] = color.RGBAModel.Convert(palette.Viridis.Map(x)).(color.RGBA)
	}
	return out
}

func cssColor(c color.RGBA) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

func fillStyle(c color.RGBA, opacity float64) string {
	return fmt.Sprintf("fill:%s; fill-opacity:%.2g; stroke:%s; stroke-width:1.5", cssColor(c), opacity, cssColor(c))
}

// regionLabelPos places a label for the region with the given mask
// inside the corresponding lens of cs. The label sits at the mean of
// the member circle centers, pushed away from every non-member
// circle.
func regionLabelPos(cs []circle, mask uint64) (x, y float64) {
	var n float64
	for i, c := range cs {
		if mask&(1<<uint(i)) != 0 {
			x += c.x
			y += c.y
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	x /= n
	y /= n
	for i, c := range cs {
		if mask&(1<<uint(i)) != 0 {
			continue
		}
		dx, dy := x-c.x, y-c.y
		d := math.Hypot(dx, dy)
		if d == 0 {
			continue
		}
		// Nudge out of the excluded circle's half.
		push := (c.r - d) * 0.6
		if push > 0 {
			x += push * dx / d
			y += push * dy / d
		}
	}
	return x, y
}
