// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/1-Harshit/cs422-computer-architecture/runfmt"
	"github.com/1-Harshit/cs422-computer-architecture/runtab"
	"github.com/google/go-cmp/cmp"
)

func TestBuiltins(t *testing.T) {
	if diff := cmp.Diff([]string{"predictors", "summary"}, Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
	for _, name := range Names() {
		p, err := Lookup(nil, name)
		if err != nil {
			t.Fatal(err)
		}
		if err := p.Validate(); err != nil {
			t.Errorf("built-in %s: %v", name, err)
		}
	}

	p, err := Lookup(nil, Default)
	if err != nil {
		t.Fatal(err)
	}
	pl, err := p.Pipeline()
	if err != nil {
		t.Fatal(err)
	}
	want := runfmt.Options{
		Boundaries: runfmt.Boundaries{HeaderEnd: 9, BodyEnd: 40},
		Header:     runfmt.HeaderEcho,
		Footer:     runfmt.FooterDefer,
	}
	if pl.Options != want {
		t.Errorf("want options %+v, got %+v", want, pl.Options)
	}
	if pl.Renderer.Filter != nil {
		t.Errorf("summary profile should not filter")
	}
	name, err := runfmt.OutputName("br2.400.perlbench.diffmail.out.20231011141546", p.TrimPrefix, p.TrimSuffix)
	if err != nil || name != "400.perlbench.diffmail" {
		t.Errorf("want output name 400.perlbench.diffmail, got %q, %v", name, err)
	}
}

func TestLookupCopies(t *testing.T) {
	p, err := Lookup(nil, "predictors")
	if err != nil {
		t.Fatal(err)
	}
	p.FilterPrefixes[0] = "X. "
	q, _ := Lookup(nil, "predictors")
	if q.FilterPrefixes[0] != "G. " {
		t.Errorf("Lookup returned shared slices")
	}
	if _, err := Lookup(nil, "nope"); err == nil {
		t.Errorf("want error for unknown profile")
	}
}

func TestParse(t *testing.T) {
	data := `
profiles:
  - name: tail
    header_end: 1
    total_prefixes: ["Total"]
    filter: true
    echo_lines: "3-4"
  - name: summary
    header_end: 2
    body_end: 10
`
	profiles, err := Parse([]byte(data), "test.yaml")
	if err != nil {
		t.Fatal(err)
	}
	tail, err := Lookup(profiles, "tail")
	if err != nil {
		t.Fatal(err)
	}
	pl, err := tail.Pipeline()
	if err != nil {
		t.Fatal(err)
	}
	want := &runtab.Pipeline{
		Options: runfmt.Options{
			Boundaries: runfmt.Boundaries{HeaderEnd: 1, BodyEnd: runfmt.NoBodyEnd},
			Echo:       runfmt.Range{From: 3, To: 4},
		},
		Renderer: runtab.Renderer{
			TotalPrefixes: []string{"Total"},
			Filter:        &runtab.Filter{},
		},
	}
	if diff := cmp.Diff(want, pl); diff != "" {
		t.Errorf("pipeline mismatch (-want +got):\n%s", diff)
	}

	// File profiles shadow built-ins.
	summary, _ := Lookup(profiles, "summary")
	if summary.HeaderEnd != 2 || summary.EchoHeader {
		t.Errorf("file profile did not shadow built-in: %+v", summary)
	}
}

func TestParseErrors(t *testing.T) {
	for _, test := range []struct {
		data, err string
	}{
		{"profiles:\n  - header_end: 1\n", "without a name"},
		{"profiles:\n  - name: a\n    header_end: 1\n  - name: a\n    header_end: 1\n", "duplicate"},
		{"profiles:\n  - name: a\n    header_end: 0\n", "header end"},
		{"profiles:\n  - name: a\n    header_end: 5\n    body_end: 4\n", "body end"},
		{"profiles:\n  - name: a\n    header_end: 1\n    echo_lines: x\n", "line range"},
		{"profiles:\n  - name: a\n    header_end: 1\n    trim_prefix: -1\n", "negative"},
		{"profiles:\n  - name: a\n    header_end: 1\n    colour: red\n", "colour"},
	} {
		_, err := Parse([]byte(test.data), "test.yaml")
		if err == nil || !strings.Contains(err.Error(), test.err) {
			t.Errorf("%q: want error containing %q, got %v", test.data, test.err, err)
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	if err := os.WriteFile(path, []byte("profiles:\n  - name: x\n    header_end: 3\n"), 0666); err != nil {
		t.Fatal(err)
	}
	profiles, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if profiles["x"].HeaderEnd != 3 {
		t.Errorf("want header end 3, got %+v", profiles["x"])
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("want error for missing file")
	}
}
