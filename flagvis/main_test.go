// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/setplot/flagvis/flagdata"
	"github.com/setplot/flagvis/setvis"
)

var testFlags = []flagdata.Flag{
	{Country: "Belgium", Bars: 3, Colors: map[string]bool{"red": true, "gold": true, "black": true}},
	{Country: "Poland", Stripes: 2, Colors: map[string]bool{"red": true, "white": true}},
	{Country: "Ireland", Bars: 3, Colors: map[string]bool{"green": true, "white": true, "orange": true}},
}

func TestTopSets(t *testing.T) {
	sets := []setvis.Set{
		setvis.NewSet("red", []string{"Belgium", "Poland"}),
		setvis.NewSet("white", []string{"Ireland", "Poland"}),
		setvis.NewSet("gold", []string{"Belgium"}),
	}
	top := topSets(sets, 2)
	if len(top) != 2 || top[0].Name != "red" || top[1].Name != "white" {
		t.Errorf("topSets = %v", top)
	}
	// Input order is untouched.
	if sets[0].Name != "red" || sets[2].Name != "gold" {
		t.Errorf("input reordered: %v", sets)
	}
}

func TestColorBars(t *testing.T) {
	bars := colorBars(testFlags)
	if len(bars) != len(flagdata.ColorNames) {
		t.Fatalf("got %d bars, want %d", len(bars), len(flagdata.ColorNames))
	}
	if bars[0].Label != "red" || bars[0].Value != 2 {
		t.Errorf("red bar = %+v, want 2 reds", bars[0])
	}
}
