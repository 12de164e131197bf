// Copyright 2017 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command flagvis compares visualizations of set intersections using
// the European flags dataset.
//
// Flagvis loads a table of flag attributes (bar and stripe counts
// plus seven binary color columns), groups countries into one set
// per color, and writes an exploratory chart of the data alongside
// three renderings of the same sets: a Venn diagram, an
// area-proportional Euler diagram, and an upset plot. The three
// outputs make the tradeoffs between the approaches easy to see:
// Venn shows every region whether or not it is empty, Euler drops
// empty regions and weights area by size, and upset scales past
// three sets where circles give out.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/aclements/go-gg/table"
	"github.com/setplot/flagvis/flagdata"
	"github.com/setplot/flagvis/setvis"
)

const defaultURL = "https://raw.githubusercontent.com/setplot/flagvis/main/flagdata/testdata/flags.csv"

func main() {
	log.SetPrefix("flagvis: ")
	log.SetFlags(0)

	var (
		flagURL   = flag.String("url", defaultURL, "fetch dataset from `url`")
		flagIn    = flag.String("i", "", "read dataset from `file` instead of fetching")
		flagOut   = flag.String("o", ".", "write charts to `dir`")
		flagTable = flag.Bool("table", false, "print the wide and long tables instead of plotting")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	var flags []flagdata.Flag
	var err error
	if *flagIn != "" {
		f, err2 := os.Open(*flagIn)
		if err2 != nil {
			log.Fatal(err2)
		}
		flags, err = flagdata.Parse(f)
		f.Close()
	} else {
		flags, err = flagdata.Fetch(*flagURL)
	}
	if err != nil {
		log.Fatal(err)
	}

	if *flagTable {
		printTables(flags)
		return
	}

	if err := os.MkdirAll(*flagOut, 0777); err != nil {
		log.Fatal(err)
	}

	tab := flagdata.Table(flags)
	sets := flagdata.ColorSets(flags)
	top := topSets(sets, 3)

	outputs := []struct {
		name   string
		render func(f *os.File) error
	}{
		{"stripes.svg", func(f *os.File) error {
			return stripesChart(tab, f)
		}},
		{"colors.png", func(f *os.File) error {
			return colorsChart(flags, f)
		}},
		{"venn.svg", func(f *os.File) error {
			v := setvis.Venn{Sets: top}
			return v.Render(f)
		}},
		{"euler.svg", func(f *os.File) error {
			e := setvis.Euler{Sets: top}
			return e.Render(f)
		}},
		{"upset.svg", func(f *os.File) error {
			u := setvis.UpSet{
				Sets:    sets,
				MinSize: 1,
				Queries: []setvis.Query{{Label: "red and white", Sets: []string{"red", "white"}}},
			}
			return u.Render(f)
		}},
	}
	for _, out := range outputs {
		path := filepath.Join(*flagOut, out.name)
		f, err := os.Create(path)
		if err != nil {
			log.Fatal(err)
		}
		if err := out.render(f); err != nil {
			log.Fatalf("%s: %v", out.name, err)
		}
		if err := f.Close(); err != nil {
			log.Fatal(err)
		}
		log.Print("wrote ", path)
	}
}

func printTables(flags []flagdata.Flag) {
	tab := flagdata.Table(flags)
	table.Fprint(os.Stdout, tab)
	fmt.Println()
	table.Fprint(os.Stdout, flagdata.ColorLong(tab))
	fmt.Println()

	s := flagdata.Summarize(flags)
	fmt.Printf("bars: mean %.2f range [%g, %g]\n", s.Bars.Mean, s.Bars.Min, s.Bars.Max)
	fmt.Printf("stripes: mean %.2f range [%g, %g]\n", s.Stripes.Mean, s.Stripes.Min, s.Stripes.Max)
	for _, c := range flagdata.ColorNames {
		fmt.Printf("%s: %d flags\n", c, s.ColorCounts[c])
	}
}

// topSets returns the n largest sets, largest first, breaking ties
// by name.
func topSets(sets []setvis.Set, n int) []setvis.Set {
	out := append([]setvis.Set(nil), sets...)
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].Elems) != len(out[j].Elems) {
			return len(out[i].Elems) > len(out[j].Elems)
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
