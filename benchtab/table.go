// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"strconv"

	"github.com/typofix/benchviz/benchreport"
)

// A Row is one line of the summary table exports: a metric (with its test
// case name for correction rows), the raw values as parsed, and the
// python/rust ratio. Cells for missing data are empty, never zero, and the
// ratio cell is empty when the ratio is undefined.
type Row struct {
	Metric string
	Case   string
	Unit   string
	Rust   string
	Python string
	Ratio  string
}

func formatValue(vals map[string]float64, label string) string {
	v, ok := vals[label]
	if !ok {
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatRatio(vals map[string]float64) string {
	ratio, ok := benchreport.Speedup(vals)
	if !ok {
		return ""
	}
	return strconv.FormatFloat(ratio, 'g', 4, 64)
}

func metricRow(metric, testCase, unit string, vals map[string]float64) Row {
	return Row{
		Metric: metric,
		Case:   testCase,
		Unit:   unit,
		Rust:   formatValue(vals, benchreport.LabelRust),
		Python: formatValue(vals, benchreport.LabelPython),
		Ratio:  formatRatio(vals),
	}
}

// Rows flattens rep into summary table rows: startup, each correction test
// case in first-seen order, then memory. Sections with no data contribute
// no rows.
func Rows(rep *benchreport.Report) []Row {
	var rows []Row
	if len(rep.Startup) > 0 {
		rows = append(rows, metricRow("startup", "", "us", rep.Startup))
	}
	for _, test := range rep.Correction.Tests {
		rows = append(rows, metricRow("correction", test, "us", rep.Correction.Corrections[test]))
	}
	if len(rep.Memory) > 0 {
		rows = append(rows, metricRow("memory", "", "MB", rep.Memory))
	}
	return rows
}
