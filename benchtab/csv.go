// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchtab

import (
	"encoding/csv"
	"io"

	"github.com/typofix/benchviz/benchreport"
)

// CSVFile is the name of the CSV summary artifact.
const CSVFile = "summary.csv"

// FormatCSV writes the summary rows of rep to w in CSV form, one row per
// metric or test case, with a header row.
func FormatCSV(w io.Writer, rep *benchreport.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"metric", "case", "unit", "rust", "python", "python/rust"}); err != nil {
		return err
	}
	for _, row := range Rows(rep) {
		rec := []string{row.Metric, row.Case, row.Unit, row.Rust, row.Python, row.Ratio}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
