// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagdata

import (
	"reflect"
	"testing"
)

// TestColorSetsMatchColumnSums checks that set cardinalities agree
// with the wide table's color column sums.
func TestColorSetsMatchColumnSums(t *testing.T) {
	tab := Table(testFlags)
	for _, s := range ColorSets(testFlags) {
		sum := 0
		for _, v := range tab.MustColumn(s.Name).([]int) {
			sum += v
		}
		if len(s.Elems) != sum {
			t.Errorf("set %s has %d members, column sums to %d", s.Name, len(s.Elems), sum)
		}
	}
}

func TestColorSets(t *testing.T) {
	sets := ColorSets(testFlags)
	if got, want := len(sets), len(ColorNames); got != want {
		t.Fatalf("got %d sets, want %d", got, want)
	}
	for i, s := range sets {
		if s.Name != ColorNames[i] {
			t.Errorf("set %d is %q, want %q", i, s.Name, ColorNames[i])
		}
	}
	// Members are sorted country names.
	if got, want := sets[0].Elems, []string{"Belgium", "Poland"}; !reflect.DeepEqual(got, want) {
		t.Errorf("red set = %v, want %v", got, want)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(testFlags)
	if want := (Stats{2, 0, 3}); s.Bars != want {
		t.Errorf("bars stats = %+v, want %+v", s.Bars, want)
	}
	if want := (Stats{2.0 / 3, 0, 2}); s.Stripes != want {
		t.Errorf("stripes stats = %+v, want %+v", s.Stripes, want)
	}
	if got := s.ColorCounts["white"]; got != 2 {
		t.Errorf("white count = %d, want 2", got)
	}
	if got := s.ColorCounts["blue"]; got != 0 {
		t.Errorf("blue count = %d, want 0", got)
	}
}
