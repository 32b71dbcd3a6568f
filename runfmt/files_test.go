// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runfmt

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"br2.400.perlbench.out.20231011141546",
		"br2.401.bzip2.out.20231011141546",
		"notes.txt",
		"br2",
	} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0666); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "br2.dir"), 0777); err != nil {
		t.Fatal(err)
	}

	f := Files{Dir: dir, Prefix: "br2"}
	var names, paths []string
	for f.Scan() {
		names = append(names, f.Name())
		paths = append(paths, f.Path())
	}
	if err := f.Err(); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"br2",
		"br2.400.perlbench.out.20231011141546",
		"br2.401.bzip2.out.20231011141546",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	if paths[1] != filepath.Join(dir, want[1]) {
		t.Errorf("want path %s, got %s", filepath.Join(dir, want[1]), paths[1])
	}
	if f.Scan() {
		t.Errorf("Scan succeeded after end of listing")
	}
}

func TestFilesMissingDir(t *testing.T) {
	f := Files{Dir: filepath.Join(t.TempDir(), "nope")}
	if f.Scan() {
		t.Fatalf("Scan succeeded on missing directory")
	}
	if f.Err() == nil {
		t.Errorf("want error for missing directory")
	}
}

func TestOutputName(t *testing.T) {
	check := func(name string, pre, suf int, want string) {
		t.Helper()
		got, err := OutputName(name, pre, suf)
		if err != nil {
			t.Errorf("OutputName(%q, %d, %d): unexpected error %v", name, pre, suf, err)
			return
		}
		if got != want {
			t.Errorf("OutputName(%q, %d, %d) = %q, want %q", name, pre, suf, got, want)
		}
	}
	check("br2.400.perlbench.diffmail.out.20231011141546", 4, 19, "400.perlbench.diffmail")
	check("report.txt", 0, 0, "report.txt")
	check("report.txt", 0, 4, "report")

	for _, c := range []struct{ pre, suf int }{{4, 19}, {-1, 0}, {0, -1}, {3, 0}} {
		if got, err := OutputName("br2", c.pre, c.suf); err == nil {
			t.Errorf("OutputName(br2, %d, %d) = %q, want error", c.pre, c.suf, got)
		}
	}
}
