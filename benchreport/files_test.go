// Copyright 2025 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchreport

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFindLatest(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"comparison_20250101_120000.txt",
		"comparison_20250302_090000.txt",
		"comparison_20241231_235959.txt",
		"notes.txt",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0666); err != nil {
			t.Fatal(err)
		}
	}

	got, err := FindLatest(dir)
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "comparison_20250302_090000.txt"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFindLatestNoResults(t *testing.T) {
	if _, err := FindLatest(t.TempDir()); !errors.Is(err, ErrNoResults) {
		t.Errorf("got %v, want ErrNoResults", err)
	}
	// A directory that does not exist reports the same condition.
	if _, err := FindLatest("testdata/nope"); !errors.Is(err, ErrNoResults) {
		t.Errorf("got %v, want ErrNoResults", err)
	}
}
