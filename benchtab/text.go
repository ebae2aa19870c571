// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchtab formats a benchmark Report as text artifacts: the
// glyph-bar chart fallback used when image output is not wanted, and CSV
// and HTML summary tables.
package benchtab

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/typofix/benchviz/benchreport"
)

// TextFile is the name of the text chart artifact.
const TextFile = "charts.txt"

// Glyph-bar widths: full-width sections scale to 30 characters, the
// indented per-test bars to 25.
const (
	metricBarWidth = 30
	testBarWidth   = 25
)

// barLen returns the number of bar glyphs for value scaled against max
// over a bar of the given width. value == max always fills the bar.
func barLen(value, max float64, width int) int {
	if max <= 0 {
		return 0
	}
	return int(value / max * float64(width))
}

// glyphBar returns a bar of n glyphs padded with spaces to width.
func glyphBar(n, width int) string {
	return strings.Repeat("█", n) + strings.Repeat(" ", width-n)
}

// presentLabels returns the fixed-order labels that have data in vals.
func presentLabels(vals map[string]float64) []string {
	var labels []string
	for _, label := range []string{benchreport.LabelRust, benchreport.LabelPython} {
		if _, ok := vals[label]; ok {
			labels = append(labels, label)
		}
	}
	return labels
}

func sectionMax(vals map[string]float64) float64 {
	vs := make([]float64, 0, len(vals))
	for _, v := range vals {
		vs = append(vs, v)
	}
	if len(vs) == 0 {
		return 0
	}
	return floats.Max(vs)
}

// FormatText writes the text-mode rendition of rep to w: one glyph-bar
// line per implementation in each metric section, followed by a speedup or
// reduction summary when the python/rust ratio is defined. It structurally
// mirrors the image charts as fixed-width text.
func FormatText(w io.Writer, rep *benchreport.Report) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(w, "%s\n", rule)
	fmt.Fprintf(w, "       typofix Performance Comparison Charts\n")
	fmt.Fprintf(w, "%s\n\n", rule)

	sectionRule := strings.Repeat("-", 40)

	fmt.Fprintf(w, "STARTUP TIME (lower is better)\n%s\n", sectionRule)
	if len(rep.Startup) > 0 {
		max := sectionMax(rep.Startup)
		for _, label := range presentLabels(rep.Startup) {
			t := rep.Startup[label]
			bar := glyphBar(barLen(t, max, metricBarWidth), metricBarWidth)
			fmt.Fprintf(w, "%-8s %s %.1f ms\n", label, bar, t/1000)
		}
		if speedup, ok := benchreport.Speedup(rep.Startup); ok {
			fmt.Fprintf(w, "\n→ Rust is %.1fx faster\n", speedup)
		}
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "CORRECTION TIME (lower is better)\n%s\n", sectionRule)
	for _, test := range rep.Correction.Tests {
		vals := rep.Correction.Corrections[test]
		fmt.Fprintf(w, "\n%s:\n", test)
		max := sectionMax(vals)
		for _, label := range presentLabels(vals) {
			t := vals[label]
			bar := glyphBar(barLen(t, max, testBarWidth), testBarWidth)
			fmt.Fprintf(w, "  %-8s %s %.1f ms\n", label, bar, t/1000)
		}
		if speedup, ok := benchreport.Speedup(vals); ok {
			fmt.Fprintf(w, "  → Rust is %.1fx faster\n", speedup)
		}
	}
	fmt.Fprintf(w, "\n")

	fmt.Fprintf(w, "MEMORY USAGE (lower is better)\n%s\n", sectionRule)
	if len(rep.Memory) > 0 {
		max := sectionMax(rep.Memory)
		for _, label := range presentLabels(rep.Memory) {
			m := rep.Memory[label]
			bar := glyphBar(barLen(m, max, metricBarWidth), metricBarWidth)
			fmt.Fprintf(w, "%-8s %s %.1f MB\n", label, bar, m)
		}
		if ratio, ok := benchreport.Speedup(rep.Memory); ok {
			fmt.Fprintf(w, "\n→ Rust uses %.1fx less memory\n", ratio)
		}
	}
	fmt.Fprintf(w, "\n%s\n", rule)
}

// WriteCharts writes the text chart artifact into dir, creating dir if
// needed.
func WriteCharts(rep *benchreport.Report, dir string) error {
	if err := os.MkdirAll(dir, 0777); err != nil {
		return err
	}
	f, err := os.Create(filepath.Join(dir, TextFile))
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	FormatText(w, rep)
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
