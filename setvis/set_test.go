// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package setvis

import (
	"reflect"
	"testing"
)

func TestNewSet(t *testing.T) {
	s := NewSet("x", []string{"b", "a", "b", "c", "a"})
	if want := []string{"a", "b", "c"}; !reflect.DeepEqual(s.Elems, want) {
		t.Errorf("got %v, want %v", s.Elems, want)
	}
	if !s.Contains("b") || s.Contains("d") {
		t.Errorf("Contains misreports membership")
	}
}

func TestRegions(t *testing.T) {
	for _, test := range []struct {
		sets []Set
		want []Region
	}{
		// Overlapping pair.
		{
			[]Set{NewSet("A", []string{"a", "b"}), NewSet("B", []string{"b", "c"})},
			[]Region{
				{1, []string{"a"}},
				{2, []string{"c"}},
				{3, []string{"b"}},
			},
		},

		// Disjoint sets produce only singleton masks.
		{
			[]Set{NewSet("A", []string{"a"}), NewSet("B", []string{"b"}), NewSet("C", []string{"c"})},
			[]Region{
				{1, []string{"a"}},
				{2, []string{"b"}},
				{4, []string{"c"}},
			},
		},

		// Subset: no A-only region.
		{
			[]Set{NewSet("A", []string{"a", "b"}), NewSet("B", []string{"a", "b", "c"})},
			[]Region{
				{2, []string{"c"}},
				{3, []string{"a", "b"}},
			},
		},
	} {
		got, err := Regions(test.sets)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("Regions(%v) = %v, want %v", test.sets, got, test.want)
		}
	}
}

// TestRegionTotals checks that the regions inside each set account
// for all of its elements.
func TestRegionTotals(t *testing.T) {
	sets := []Set{
		NewSet("A", []string{"a", "b", "c", "d"}),
		NewSet("B", []string{"b", "c", "e"}),
		NewSet("C", []string{"c", "d", "e", "f"}),
	}
	regions, err := Regions(sets)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range sets {
		n := 0
		for _, r := range regions {
			if r.Mask&(1<<uint(i)) != 0 {
				n += len(r.Elems)
			}
		}
		if n != len(s.Elems) {
			t.Errorf("set %s: regions cover %d elements, want %d", s.Name, n, len(s.Elems))
		}
	}
}

func TestRegionsTooMany(t *testing.T) {
	sets := make([]Set, 65)
	for i := range sets {
		sets[i] = NewSet("s", []string{"x"})
	}
	if _, err := Regions(sets); err == nil {
		t.Errorf("want error for 65 sets")
	}
}

func TestRegionDegree(t *testing.T) {
	if got := (Region{Mask: 0b1011}).Degree(); got != 3 {
		t.Errorf("Degree = %d, want 3", got)
	}
}
