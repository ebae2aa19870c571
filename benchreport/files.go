// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
)

// Conventional locations used when the caller does not name them.
const (
	// DefaultResultsDir is where the benchmark comparison script leaves
	// its results files.
	DefaultResultsDir = "benchmark_results"

	// DefaultChartsDir is where charts are written by default.
	DefaultChartsDir = "benchmark_charts"
)

// resultsGlob matches the timestamped results files the comparison script
// produces. The timestamp sorts lexically, so the last match is the newest.
const resultsGlob = "comparison_*.txt"

// ErrNoResults indicates that no results file could be located.
var ErrNoResults = errors.New("no results files found")

// FindLatest returns the most recent comparison results file in dir.
// It returns an error wrapping ErrNoResults when dir holds no results
// files or does not exist.
func FindLatest(dir string) (string, error) {
	paths, err := filepath.Glob(filepath.Join(dir, resultsGlob))
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", fmt.Errorf("%w in %s", ErrNoResults, dir)
	}
	sort.Strings(paths)
	return paths[len(paths)-1], nil
}
