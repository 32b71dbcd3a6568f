// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profile defines named configurations for summarizing run
// reports: where the header, body and footer of a report lie, which
// rows are aggregates, which rows to keep, and how batch output files
// are named.
package profile

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v2"

	"github.com/1-Harshit/cs422-computer-architecture/runfmt"
	"github.com/1-Harshit/cs422-computer-architecture/runtab"
)

// A Profile configures one way of summarizing reports.
type Profile struct {
	Name string `yaml:"name"`

	HeaderEnd   int    `yaml:"header_end"`
	BodyEnd     int    `yaml:"body_end"`
	EchoHeader  bool   `yaml:"echo_header"`
	EchoLines   string `yaml:"echo_lines"`
	DeferFooter bool   `yaml:"defer_footer"`

	TotalPrefixes []string `yaml:"total_prefixes"`

	// Filter turns on filter mode, keeping only rows whose key
	// starts with one of FilterPrefixes.
	Filter         bool     `yaml:"filter"`
	FilterPrefixes []string `yaml:"filter_prefixes"`

	SkipTable bool `yaml:"skip_table"`

	// Batch settings: which files of a directory to summarize and
	// how to name their outputs. If Stdout is set, batch output goes
	// to standard output instead of derived files.
	BatchPrefix string `yaml:"batch_prefix"`
	TrimPrefix  int    `yaml:"trim_prefix"`
	TrimSuffix  int    `yaml:"trim_suffix"`
	Stdout      bool   `yaml:"stdout"`
}

// Default is the name of the profile used when none is given.
const Default = "summary"

var builtin = map[string]Profile{
	// Full summary of a branch predictor report, written next to
	// the report with the "br2." tag and ".out.<timestamp>" run
	// identifier removed from its name.
	"summary": {
		Name:          "summary",
		HeaderEnd:     9,
		BodyEnd:       40,
		EchoHeader:    true,
		DeferFooter:   true,
		TotalPrefixes: []string{"Total"},
		BatchPrefix:   "br2",
		TrimPrefix:    len("br2."),
		TrimSuffix:    len(".out.20231011141546"),
	},
	// Predictor comparison: just the SAg, GAg, gshare and hybrid
	// rows, plus the two summary lines of the report banner.
	"predictors": {
		Name:           "predictors",
		HeaderEnd:      8,
		BodyEnd:        40,
		EchoLines:      "25-26",
		TotalPrefixes:  []string{"Total"},
		Filter:         true,
		FilterPrefixes: []string{"G. ", "C. ", "D. ", "E. "},
		BatchPrefix:    "4",
		Stdout:         true,
	},
}

// Names returns the names of the built-in profiles, sorted.
func Names() []string {
	var names []string
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named profile from profiles, falling back to the
// built-in profiles. profiles may be nil.
func Lookup(profiles map[string]Profile, name string) (Profile, error) {
	if p, ok := profiles[name]; ok {
		return p, nil
	}
	if p, ok := builtin[name]; ok {
		// Copy slices so callers can't modify the built-ins.
		p.TotalPrefixes = append([]string(nil), p.TotalPrefixes...)
		p.FilterPrefixes = append([]string(nil), p.FilterPrefixes...)
		return p, nil
	}
	return Profile{}, fmt.Errorf("unknown profile %q", name)
}

type file struct {
	Profiles []Profile `yaml:"profiles"`
}

// Load reads profiles from the YAML file at path. The file holds a
// top-level "profiles" list; each entry must have a unique name and
// be valid.
func Load(path string) (map[string]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, path)
}

// Parse is like Load, but reads profiles from data. fileName is used
// in error messages.
func Parse(data []byte, fileName string) (map[string]Profile, error) {
	var f file
	if err := yaml.UnmarshalStrict(data, &f); err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	profiles := make(map[string]Profile)
	for _, p := range f.Profiles {
		if p.Name == "" {
			return nil, fmt.Errorf("%s: profile without a name", fileName)
		}
		if _, dup := profiles[p.Name]; dup {
			return nil, fmt.Errorf("%s: duplicate profile %q", fileName, p.Name)
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", fileName, err)
		}
		profiles[p.Name] = p
	}
	return profiles, nil
}

// Validate checks p for settings that cannot work. An empty filter
// allow-list is valid: it selects no rows.
func (p Profile) Validate() error {
	if err := p.boundaries().Validate(); err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}
	if _, err := runfmt.ParseRange(p.EchoLines); err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}
	if p.TrimPrefix < 0 || p.TrimSuffix < 0 {
		return fmt.Errorf("profile %q: negative name trim", p.Name)
	}
	return nil
}

func (p Profile) boundaries() runfmt.Boundaries {
	return runfmt.Boundaries{HeaderEnd: p.HeaderEnd, BodyEnd: p.BodyEnd}
}

// Pipeline returns a pipeline configured by p.
func (p Profile) Pipeline() (*runtab.Pipeline, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	echo, _ := runfmt.ParseRange(p.EchoLines)
	opts := runfmt.Options{
		Boundaries: p.boundaries(),
		Echo:       echo,
	}
	if p.EchoHeader {
		opts.Header = runfmt.HeaderEcho
	}
	if p.DeferFooter {
		opts.Footer = runfmt.FooterDefer
	}
	pl := &runtab.Pipeline{
		Options:   opts,
		Renderer:  runtab.Renderer{TotalPrefixes: p.TotalPrefixes},
		SkipTable: p.SkipTable,
	}
	if p.Filter {
		pl.Renderer.Filter = &runtab.Filter{Prefixes: p.FilterPrefixes}
	}
	return pl, nil
}
