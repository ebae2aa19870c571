// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Benchviz renders comparison charts from a typofix benchmark results file.
//
// Usage:
//
//	benchviz [-text] [-csv] [-html] [results.txt [outdir]]
//
// The input is a comparison results file as written by the benchmark
// comparison script: a STARTUP TIME section, a CORRECTION TIME section with
// per-test-case timings, and a MEMORY USAGE section, each holding Rust: and
// Python: value lines. With no arguments, benchviz picks the most recent
// comparison_*.txt under benchmark_results/ and writes its output into
// benchmark_charts/, creating it if needed.
//
// By default benchviz writes four PNG charts: startup time bars, correction
// time grouped by test case, memory usage bars, and a radar chart of the
// python/rust ratio per metric. Charts whose data is absent from the input
// are skipped. The -text flag writes a single charts.txt with glyph-bar
// renditions of the same sections instead of images.
//
// The -csv and -html flags additionally export the parsed comparison as a
// summary table next to the charts.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/typofix/benchviz/benchchart"
	"github.com/typofix/benchviz/benchreport"
	"github.com/typofix/benchviz/benchtab"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: benchviz [options] [results.txt [outdir]]\n")
	fmt.Fprintf(os.Stderr, "options:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

var (
	flagText = flag.Bool("text", false, "write a glyph-bar text chart instead of PNG images")
	flagCSV  = flag.Bool("csv", false, "also write the comparison summary in CSV form")
	flagHTML = flag.Bool("html", false, "also write the comparison summary as an HTML table")
)

func main() {
	log.SetPrefix("benchviz: ")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 2 {
		flag.Usage()
	}

	path := flag.Arg(0)
	if path == "" {
		var err error
		path, err = benchreport.FindLatest(benchreport.DefaultResultsDir)
		if err != nil {
			log.Fatalf("%v; run the benchmark comparison script first", err)
		}
	}
	outDir := benchreport.DefaultChartsDir
	if flag.NArg() == 2 {
		outDir = flag.Arg(1)
	}

	fmt.Printf("Parsing results from: %s\n", path)
	rep, err := benchreport.ParseFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Fatalf("%v; run the benchmark comparison script first", err)
		}
		log.Fatal(err)
	}

	if *flagText {
		fmt.Println("Generating text charts...")
		if err := benchtab.WriteCharts(rep, outDir); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Text charts saved to %s\n", filepath.Join(outDir, benchtab.TextFile))
	} else {
		if err := benchchart.Render(rep, outDir); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Charts saved to %s/\n", outDir)
	}

	if *flagCSV {
		if err := writeSummary(outDir, benchtab.CSVFile, rep, benchtab.FormatCSV); err != nil {
			log.Fatal(err)
		}
	}
	if *flagHTML {
		if err := writeSummary(outDir, benchtab.HTMLFile, rep, benchtab.FormatHTML); err != nil {
			log.Fatal(err)
		}
	}
}

func writeSummary(dir, name string, rep *benchreport.Report, format func(w io.Writer, rep *benchreport.Report) error) error {
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}
	if err := format(f, rep); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	fmt.Printf("Summary saved to %s\n", filepath.Join(dir, name))
	return nil
}
