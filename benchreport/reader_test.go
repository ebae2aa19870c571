// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"errors"
	"io/fs"
	"reflect"
	"strings"
	"testing"
)

func parse(t *testing.T, data string) *Report {
	t.Helper()
	rep, err := Parse(strings.NewReader(data), "test")
	if err != nil {
		t.Fatalf("parsing failed: %v", err)
	}
	return rep
}

func TestParseStartup(t *testing.T) {
	rep := parse(t, `
STARTUP TIME
Rust: 5000 us
Python: 50000 us
`)
	want := map[string]float64{"rust": 5000, "python": 50000}
	if !reflect.DeepEqual(rep.Startup, want) {
		t.Errorf("got startup %v, want %v", rep.Startup, want)
	}
}

func TestParseCorrection(t *testing.T) {
	rep := parse(t, `
CORRECTION TIME
Test: git_push
  Rust: 1200 us
  Python: 4800 us
Test: cd_parent
  Rust: 800 us
  Python: 4000 us
`)
	wantTests := []string{"git_push", "cd_parent"}
	if !reflect.DeepEqual(rep.Correction.Tests, wantTests) {
		t.Errorf("got tests %v, want %v", rep.Correction.Tests, wantTests)
	}
	want := map[string]map[string]float64{
		"git_push":  {"rust": 1200, "python": 4800},
		"cd_parent": {"rust": 800, "python": 4000},
	}
	if !reflect.DeepEqual(rep.Correction.Corrections, want) {
		t.Errorf("got corrections %v, want %v", rep.Correction.Corrections, want)
	}
}

func TestParseMemory(t *testing.T) {
	rep := parse(t, `
MEMORY USAGE
Rust: 5.2 MB
Python: 20.8 MB
`)
	want := map[string]float64{"rust": 5.2, "python": 20.8}
	if !reflect.DeepEqual(rep.Memory, want) {
		t.Errorf("got memory %v, want %v", rep.Memory, want)
	}
}

func TestParseMetadata(t *testing.T) {
	rep := parse(t, `
Date: 2025-08-23 10:11:12
Iterations: 100
`)
	// Only the first colon splits the key from the value.
	if got, want := rep.Metadata.Date, "2025-08-23 10:11:12"; got != want {
		t.Errorf("got date %q, want %q", got, want)
	}
	if got, want := rep.Metadata.Iterations, "100"; got != want {
		t.Errorf("got iterations %q, want %q", got, want)
	}
}

func TestParseFull(t *testing.T) {
	rep := parse(t, `typofix benchmark comparison
Date: 2025-08-23
Iterations: 50

STARTUP TIME
Rust: 5000 us
Python: 50000 us

CORRECTION TIME
Test: git_push
Rust: 1200 us
Python: 4800 us

MEMORY USAGE
Rust: 5 MB
Python: 20 MB
`)
	want := &Report{
		Metadata: Metadata{Date: "2025-08-23", Iterations: "50"},
		Startup:  map[string]float64{"rust": 5000, "python": 50000},
		Correction: Correction{
			Tests: []string{"git_push"},
			Corrections: map[string]map[string]float64{
				"git_push": {"rust": 1200, "python": 4800},
			},
		},
		Memory: map[string]float64{"rust": 5, "python": 20},
	}
	if !reflect.DeepEqual(rep, want) {
		t.Errorf("got %+v, want %+v", rep, want)
	}
}

func TestParseIgnoresUnrecognizedLines(t *testing.T) {
	rep := parse(t, `
# comment
Rust: 999 us
random chatter
STARTUP TIME
=========
Rust: 5000 us
warmup done
`)
	// The Rust line before any section header and the stray lines must
	// leave no trace.
	want := map[string]float64{"rust": 5000}
	if !reflect.DeepEqual(rep.Startup, want) {
		t.Errorf("got startup %v, want %v", rep.Startup, want)
	}
	if len(rep.Correction.Corrections) != 0 || len(rep.Memory) != 0 {
		t.Errorf("stray lines leaked into report: %+v", rep)
	}
}

func TestParseLabelAnywhereInLine(t *testing.T) {
	rep := parse(t, `
STARTUP TIME
mean Rust: 5000 us
CORRECTION TIME
Test: sudo
  average Python: 3200 us
`)
	if got, want := rep.Startup["rust"], 5000.0; got != want {
		t.Errorf("got startup rust %v, want %v", got, want)
	}
	if got, want := rep.Correction.Corrections["sudo"]["python"], 3200.0; got != want {
		t.Errorf("got correction python %v, want %v", got, want)
	}
}

func TestParseStalePendingTest(t *testing.T) {
	// A Test: marker seen before the section switch stays the insertion
	// target; the parser does no cross-validation.
	rep := parse(t, `
STARTUP TIME
Test: lingering
CORRECTION TIME
Rust: 100 us
`)
	if got, want := rep.Correction.Corrections["lingering"]["rust"], 100.0; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseCorrectionWithoutTest(t *testing.T) {
	// A correction value line with no pending test name has no insertion
	// target and is dropped.
	rep := parse(t, `
CORRECTION TIME
Rust: 100 us
`)
	if len(rep.Correction.Corrections) != 0 {
		t.Errorf("got corrections %v, want none", rep.Correction.Corrections)
	}
}

func TestParseMalformedValue(t *testing.T) {
	for _, data := range []string{
		"STARTUP TIME\nRust: fast us\n",
		"STARTUP TIME\nRust:\n",
		"MEMORY USAGE\nPython: N/A MB\n",
	} {
		_, err := Parse(strings.NewReader(data), "test")
		var serr *SyntaxError
		if !errors.As(err, &serr) {
			t.Errorf("Parse(%q) = %v, want *SyntaxError", data, err)
			continue
		}
		if serr.FileName != "test" || serr.Line != 2 {
			t.Errorf("Parse(%q) error at %s:%d, want test:2", data, serr.FileName, serr.Line)
		}
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("testdata/definitely-not-there.txt")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("ParseFile = %v, want fs.ErrNotExist", err)
	}
}
