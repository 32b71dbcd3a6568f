// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runtab

import (
	"io"
	"strings"

	"github.com/1-Harshit/cs422-computer-architecture/internal/texttab"
	"github.com/1-Harshit/cs422-computer-architecture/runfmt"
)

// Column widths of the rendered table.
const (
	typeWidth     = runfmt.KeyWidth
	forwardWidth  = 18
	backwardWidth = 20
	overallWidth  = 20

	// totalWidth is the width of each value in a total row.
	totalWidth = 20
)

// valueSep follows each value of an ordinary row.
const valueSep = "  "

// DefaultTotalPrefixes are the key prefixes of aggregate rows in the
// reports produced by the branch predictor tools.
var DefaultTotalPrefixes = []string{"Total"}

// A Filter restricts a rendered table to keys that start with one of
// Prefixes. A Filter with no prefixes matches nothing.
type Filter struct {
	Prefixes []string
}

// Match reports whether key starts with one of f's prefixes.
func (f *Filter) Match(key string) bool {
	return hasAnyPrefix(key, f.Prefixes)
}

// A Renderer formats a Table.
//
// Rows whose key starts with one of TotalPrefixes are aggregate rows:
// their values are each padded to a fixed width and printed densely
// after the key. Every other row prints its key followed by each raw
// value and two spaces.
//
// If Filter is non-nil, the Renderer is in filter mode: only keys
// matched by Filter are printed, and aggregate rows are never
// printed.
type Renderer struct {
	TotalPrefixes []string
	Filter        *Filter
}

// IsTotal reports whether key is an aggregate row key.
func (r *Renderer) IsTotal(key string) bool {
	return hasAnyPrefix(key, r.TotalPrefixes)
}

// Render writes the header line and one line per selected key of t,
// in t's key order. It only fails if writing to w fails.
func (r *Renderer) Render(w io.Writer, t *Table) error {
	var tab texttab.Table
	tab.Row().
		Cell("Type", texttab.Width(typeWidth), texttab.Left).
		Cell("Forward", texttab.Width(forwardWidth), texttab.Right).
		Cell("Backward", texttab.Width(backwardWidth), texttab.Right).
		Cell("Overall", texttab.Width(overallWidth), texttab.Right)

	for _, key := range t.Keys() {
		total := r.IsTotal(key)
		if r.Filter != nil && (total || !r.Filter.Match(key)) {
			continue
		}
		tab.Row().Cell(key)
		for _, val := range t.Values(key) {
			if total {
				tab.Cell(val, texttab.Width(totalWidth))
			} else {
				tab.Cell(val, texttab.Suffix(valueSep))
			}
		}
	}
	return tab.Format(w)
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
