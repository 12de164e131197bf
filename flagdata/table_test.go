// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagdata

import (
	"reflect"
	"sort"
	"testing"

	"github.com/aclements/go-gg/table"
)

var testFlags = []Flag{
	{"Belgium", 3, 0, map[string]bool{"red": true, "gold": true, "black": true}},
	{"Ireland", 3, 0, map[string]bool{"green": true, "white": true, "orange": true}},
	{"Poland", 0, 2, map[string]bool{"red": true, "white": true}},
}

func TestTable(t *testing.T) {
	tab := Table(testFlags)
	if got := tab.Len(); got != 3 {
		t.Fatalf("table has %d rows, want 3", got)
	}
	if got, want := tab.Columns(), append([]string{"country", "bars", "stripes"}, ColorNames...); !reflect.DeepEqual(got, want) {
		t.Errorf("columns = %v, want %v", got, want)
	}
	if got, want := tab.MustColumn("red").([]int), []int{1, 0, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("red column = %v, want %v", got, want)
	}
}

func TestColorLong(t *testing.T) {
	long := ColorLong(Table(testFlags))
	lt := long.Table(table.RootGroupID)
	// One row per (country, color) pair.
	if got, want := lt.Len(), 3*len(ColorNames); got != want {
		t.Fatalf("long table has %d rows, want %d", got, want)
	}
	// Sum of "present" equals total color uses.
	sum := 0
	for _, v := range lt.MustColumn("present").([]int) {
		sum += v
	}
	if sum != 8 {
		t.Errorf("present sum = %d, want 8", sum)
	}
}

// TestColorRoundTrip checks that unpivoting to long form and
// pivoting back reproduces the original wide table.
func TestColorRoundTrip(t *testing.T) {
	tab := Table(testFlags)
	wide := ColorWide(ColorLong(tab)).Table(table.RootGroupID)

	got, want := wide.Columns(), tab.Columns()
	gotSorted := append([]string(nil), got...)
	wantSorted := append([]string(nil), want...)
	sort.Strings(gotSorted)
	sort.Strings(wantSorted)
	if !reflect.DeepEqual(gotSorted, wantSorted) {
		t.Fatalf("columns = %v, want %v", got, want)
	}
	for _, col := range want {
		if !reflect.DeepEqual(wide.MustColumn(col), tab.MustColumn(col)) {
			t.Errorf("column %s = %v, want %v", col, wide.MustColumn(col), tab.MustColumn(col))
		}
	}
}
