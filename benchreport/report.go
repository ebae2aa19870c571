// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchreport parses typofix benchmark comparison reports.
//
// A comparison report is the plain-text artifact written by the benchmark
// comparison script. It records, for the Rust and Python implementations of
// typofix, the startup time, the correction time for a set of test cases,
// and the peak memory usage, along with free-form metadata. This package
// turns that text into a Report and provides the ratio helpers the chart
// renderers share.
package benchreport

// Implementation labels. These are the only two keys that ever appear in a
// Report's per-metric maps.
const (
	LabelRust   = "rust"
	LabelPython = "python"
)

// Metadata holds the free-form header fields of a report. The values are
// kept verbatim and never validated; an empty string means the field was
// absent.
type Metadata struct {
	Date       string
	Iterations string
}

// Correction holds the per-test-case correction timings.
type Correction struct {
	// Tests lists the test case names in the order they were first seen.
	// Maps do not preserve insertion order, and chart output must be
	// deterministic, so consumers iterate Tests rather than Corrections.
	Tests []string

	// Corrections maps a test case name to a map from implementation
	// label to correction time in microseconds.
	Corrections map[string]map[string]float64
}

// add records a timing for one test case, registering the test case name on
// first use.
func (c *Correction) add(test, label string, value float64) {
	m, ok := c.Corrections[test]
	if !ok {
		m = make(map[string]float64)
		c.Corrections[test] = m
		c.Tests = append(c.Tests, test)
	}
	m[label] = value
}

// A Report is the parsed contents of one benchmark comparison run.
//
// A missing label in any of the metric maps means there is no data for that
// implementation; it must not be read as zero. A Report is built in a single
// parse pass and never mutated afterwards.
type Report struct {
	Metadata Metadata

	// Startup maps implementation label to startup time in microseconds.
	Startup map[string]float64

	Correction Correction

	// Memory maps implementation label to peak memory usage in megabytes.
	Memory map[string]float64
}

// NewReport returns an empty Report with all maps initialized. Absent
// sections in the input parse to empty maps, not nil.
func NewReport() *Report {
	return &Report{
		Startup:    make(map[string]float64),
		Correction: Correction{Corrections: make(map[string]map[string]float64)},
		Memory:     make(map[string]float64),
	}
}

// Speedup returns the python/rust ratio for one metric's label map. The
// ratio is undefined, and ok is false, when either label is absent or the
// rust value is zero.
func Speedup(vals map[string]float64) (ratio float64, ok bool) {
	rust, okRust := vals[LabelRust]
	python, okPython := vals[LabelPython]
	if !okRust || !okPython || rust == 0 {
		return 0, false
	}
	return python / rust, true
}

// A SummaryEntry is one axis of the summary radar chart: a metric for which
// both implementations have data, and the python/rust ratio for it.
type SummaryEntry struct {
	Metric string
	Ratio  float64
}

// Summary returns the per-metric speedup ratios with a defined value, in
// presentation order: startup, one entry per test case in first-seen order,
// then memory. Metrics with an undefined ratio are omitted entirely.
func (r *Report) Summary() []SummaryEntry {
	var entries []SummaryEntry
	if ratio, ok := Speedup(r.Startup); ok {
		entries = append(entries, SummaryEntry{"Startup", ratio})
	}
	for _, test := range r.Correction.Tests {
		if ratio, ok := Speedup(r.Correction.Corrections[test]); ok {
			entries = append(entries, SummaryEntry{"Correction (" + test + ")", ratio})
		}
	}
	if ratio, ok := Speedup(r.Memory); ok {
		entries = append(entries, SummaryEntry{"Memory", ratio})
	}
	return entries
}
