// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package setvis draws set-intersection diagrams.
//
// Given a family of named sets, setvis decomposes their union into
// exclusive regions (the elements belonging to exactly one
// combination of sets) and renders the decomposition three ways: as a
// classic Venn diagram, as an area-proportional Euler diagram, or as
// an upset plot. All renderers emit SVG.
package setvis

import (
	"fmt"
	"math/bits"
	"sort"
)

// A Set is a named collection of distinct string elements.
type Set struct {
	Name string

	// Elems is sorted and contains no duplicates.
	Elems []string
}

// NewSet constructs a Set from elems, sorting them and dropping
// duplicates.
func NewSet(name string, elems []string) Set {
	s := append([]string(nil), elems...)
	sort.Strings(s)
	j := 0
	for i, e := range s {
		if i > 0 && e == s[j-1] {
			continue
		}
		s[j] = e
		j++
	}
	return Set{name, s[:j]}
}

// Contains reports whether s contains elem.
func (s Set) Contains(elem string) bool {
	i := sort.SearchStrings(s.Elems, elem)
	return i < len(s.Elems) && s.Elems[i] == elem
}

// A Region is one cell of the exclusive decomposition of a set
// family: the elements that belong to exactly the sets identified by
// Mask and to no others.
type Region struct {
	// Mask is a bitmask over the input sets. Bit i is set if this
	// region lies inside set i.
	Mask uint64

	// Elems is the sorted list of elements in exactly this
	// combination of sets.
	Elems []string
}

// Degree returns the number of sets the region lies inside.
func (r Region) Degree() int {
	return bits.OnesCount64(r.Mask)
}

// Regions decomposes sets into exclusive regions. Only non-empty
// regions are returned, in ascending Mask order. Regions returns an
// error if there are more than 64 sets.
func Regions(sets []Set) ([]Region, error) {
	if len(sets) > 64 {
		return nil, fmt.Errorf("too many sets: %d > 64", len(sets))
	}

	masks := map[string]uint64{}
	for i, s := range sets {
		for _, e := range s.Elems {
			masks[e] |= 1 << uint(i)
		}
	}

	byMask := map[uint64][]string{}
	for e, m := range masks {
		byMask[m] = append(byMask[m], e)
	}

	regions := make([]Region, 0, len(byMask))
	for m, elems := range byMask {
		sort.Strings(elems)
		regions = append(regions, Region{m, elems})
	}
	sort.Slice(regions, func(i, j int) bool {
		return regions[i].Mask < regions[j].Mask
	})
	return regions, nil
}

// regionOf returns the region of rs with the given mask, or nil.
func regionOf(rs []Region, mask uint64) *Region {
	i := sort.Search(len(rs), func(i int) bool { return rs[i].Mask >= mask })
	if i < len(rs) && rs[i].Mask == mask {
		return &rs[i]
	}
	return nil
}
