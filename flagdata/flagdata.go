// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flagdata loads and reshapes the European flags dataset.
//
// The dataset is a small CSV table keyed by country name. Each row
// records how many vertical bars and horizontal stripes the country's
// flag has and, for each of seven named colors, whether the flag uses
// that color.
package flagdata

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
)

// ColorNames lists the dataset's binary color columns in schema
// order.
var ColorNames = []string{"red", "green", "blue", "gold", "white", "black", "orange"}

// header is the full CSV schema, in file order.
var header = append([]string{"country", "bars", "stripes"}, ColorNames...)

// Flag records the attributes of one country's flag.
type Flag struct {
	// Country is the unique key for the row.
	Country string

	// Bars and Stripes count the flag's vertical bars and
	// horizontal stripes.
	Bars, Stripes int

	// Colors maps each name in ColorNames to whether the flag
	// uses that color.
	Colors map[string]bool
}

// Parse reads the flags dataset from CSV data. It checks the header
// against the fixed schema and requires color columns to be 0 or 1
// and country names to be unique.
func Parse(r io.Reader) ([]Flag, error) {
	cr := csv.NewReader(r)

	head, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if !reflect.DeepEqual(head, header) {
		return nil, fmt.Errorf("bad header %v, want %v", head, header)
	}

	var flags []Flag
	seen := map[string]bool{}
	for row := 2; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		f := Flag{Country: rec[0], Colors: make(map[string]bool, len(ColorNames))}
		if seen[f.Country] {
			return nil, fmt.Errorf("row %d: duplicate country %q", row, f.Country)
		}
		seen[f.Country] = true

		if f.Bars, err = strconv.Atoi(rec[1]); err != nil {
			return nil, fmt.Errorf("row %d: bad bars count %q", row, rec[1])
		}
		if f.Stripes, err = strconv.Atoi(rec[2]); err != nil {
			return nil, fmt.Errorf("row %d: bad stripes count %q", row, rec[2])
		}
		for i, c := range ColorNames {
			switch rec[3+i] {
			case "0":
			case "1":
				f.Colors[c] = true
			default:
				return nil, fmt.Errorf("row %d: %s column must be 0 or 1, have %q", row, c, rec[3+i])
			}
		}
		flags = append(flags, f)
	}
	return flags, nil
}

// Fetch retrieves the flags dataset from url and parses it.
func Fetch(url string) ([]Flag, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %s", url, resp.Status)
	}
	return Parse(resp.Body)
}
