// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// A section identifies which metric the value lines that follow populate.
type section int

const (
	secNone section = iota
	secStartup
	secCorrection
	secMemory
)

// A SyntaxError represents a malformed value on a particular line of a
// comparison report.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// ParseFile parses the comparison report at path.
func ParseFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, path)
}

// Parse reads a comparison report from r and returns the accumulated
// Report. fileName is used in error messages; it is purely diagnostic.
//
// The input is processed as a sequence of trimmed lines against two pieces
// of state: the current section and the pending test case name. Lines that
// match no rule are ignored. A value token that does not parse as a number
// aborts with a *SyntaxError; there is no partial-record recovery.
func Parse(r io.Reader, fileName string) (*Report, error) {
	rep := NewReport()
	sec := secNone
	test := "" // pending test case name; persists until replaced

	s := bufio.NewScanner(r)
	n := 0
	for s.Scan() {
		n++
		line := strings.TrimSpace(s.Text())
		switch {
		case strings.HasPrefix(line, "Date:"):
			rep.Metadata.Date = afterColon(line)
		case strings.HasPrefix(line, "Iterations:"):
			rep.Metadata.Iterations = afterColon(line)
		case line == "STARTUP TIME":
			sec = secStartup
		case line == "CORRECTION TIME":
			sec = secCorrection
		case line == "MEMORY USAGE":
			sec = secMemory
		case strings.HasPrefix(line, "Test:"):
			// A Test: marker replaces the pending test name without
			// touching the section. A malformed marker leaves the
			// previous name in place.
			if name := testName(line); name != "" {
				test = name
			}
		case sec != secNone:
			label, rest, ok := matchLabel(line)
			if !ok {
				continue
			}
			val, err := firstValue(rest)
			if err != nil {
				return nil, &SyntaxError{fileName, n, err.Error()}
			}
			switch sec {
			case secStartup:
				rep.Startup[label] = val
			case secMemory:
				rep.Memory[label] = val
			case secCorrection:
				// Value lines before any Test: marker have no
				// insertion target and are dropped.
				if test != "" {
					rep.Correction.add(test, label, val)
				}
			}
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("%s:%d: %w", fileName, n, err)
	}
	return rep, nil
}

// afterColon returns the trimmed remainder of line after its first colon.
func afterColon(line string) string {
	_, rest, _ := strings.Cut(line, ":")
	return strings.TrimSpace(rest)
}

// testName extracts the word token from a "Test: name" marker. It returns
// "" if the marker carries no token.
func testName(line string) string {
	rest, ok := strings.CutPrefix(line, "Test: ")
	if !ok {
		return ""
	}
	i := 0
	for i < len(rest) && isWordByte(rest[i]) {
		i++
	}
	return rest[:i]
}

func isWordByte(c byte) bool {
	return c == '_' ||
		'0' <= c && c <= '9' ||
		'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z'
}

// matchLabel looks for an implementation label in line: first anchored at
// the start of the line, then anywhere in it. It returns the canonical
// label and the text following the label's colon.
func matchLabel(line string) (label, rest string, ok bool) {
	for _, m := range []struct{ marker, label string }{
		{"Rust:", LabelRust},
		{"Python:", LabelPython},
	} {
		if strings.HasPrefix(line, m.marker) {
			return m.label, line[len(m.marker):], true
		}
	}
	for _, m := range []struct{ marker, label string }{
		{"Rust:", LabelRust},
		{"Python:", LabelPython},
	} {
		if i := strings.Index(line, m.marker); i >= 0 {
			return m.label, line[i+len(m.marker):], true
		}
	}
	return "", "", false
}

// firstValue parses the first whitespace-delimited token of s as a float.
func firstValue(s string) (float64, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, fmt.Errorf("missing value")
	}
	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, fmt.Errorf("parsing value: %v", err)
	}
	return v, nil
}
