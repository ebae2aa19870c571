// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"reflect"
	"testing"
)

func TestSpeedup(t *testing.T) {
	test := func(vals map[string]float64, want float64, wantOK bool) {
		t.Helper()
		got, ok := Speedup(vals)
		if got != want || ok != wantOK {
			t.Errorf("Speedup(%v) = %v, %v, want %v, %v", vals, got, ok, want, wantOK)
		}
	}

	test(map[string]float64{"rust": 5000, "python": 50000}, 10.0, true)
	test(map[string]float64{"rust": 800, "python": 4000}, 5.0, true)
	// A zero rust value guards the division; the ratio is undefined.
	test(map[string]float64{"rust": 0, "python": 20}, 0, false)
	// Absence of either label leaves the ratio undefined.
	test(map[string]float64{"rust": 5000}, 0, false)
	test(map[string]float64{"python": 50000}, 0, false)
	test(map[string]float64{}, 0, false)
}

func TestSummary(t *testing.T) {
	rep := NewReport()
	rep.Startup["rust"] = 5000
	rep.Startup["python"] = 50000
	rep.Correction.add("git_push", "rust", 1200)
	rep.Correction.add("git_push", "python", 4800)
	rep.Correction.add("broken", "rust", 0) // zero denominator: no axis
	rep.Correction.add("broken", "python", 900)
	rep.Correction.add("lonely", "python", 700) // missing rust: no axis
	rep.Memory["rust"] = 5
	rep.Memory["python"] = 20

	want := []SummaryEntry{
		{"Startup", 10},
		{"Correction (git_push)", 4},
		{"Memory", 4},
	}
	if got := rep.Summary(); !reflect.DeepEqual(got, want) {
		t.Errorf("got summary %v, want %v", got, want)
	}
}

func TestSummaryEmpty(t *testing.T) {
	rep := NewReport()
	rep.Memory["rust"] = 0
	rep.Memory["python"] = 20
	if got := rep.Summary(); len(got) != 0 {
		t.Errorf("got summary %v, want none", got)
	}
}
