// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables.
//
// Unlike a free-form layout, every cell is padded to its own declared
// width and nothing is ever truncated, so the output of a Table is a
// pure function of its cells. Widths count Unicode code points, the
// same unit runfmt uses to cut keys, so the layout does not depend on
// the terminal or locale.
package texttab

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of fixed-width text tables.
//
// Many of its methods return the Table so callers can easily chain
// them to build up many cells at once.
type Table struct {
	rows [][]textCell
}

type textCell struct {
	value     string
	width     int
	suffix    string
	alignment align
}

type CellOption func(c *textCell)

// Width pads a cell to w code points. A cell longer than w is
// printed in full.
func Width(w int) CellOption {
	return func(c *textCell) {
		c.width = w
	}
}

// Suffix appends s after the cell's padded value.
func Suffix(s string) CellOption {
	return func(c *textCell) {
		c.suffix = s
	}
}

var (
	Left  CellOption = func(c *textCell) { c.alignment = alignLeft }
	Right            = func(c *textCell) { c.alignment = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignRight
)

func (a align) pad(s string, w int) string {
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	if a == alignRight {
		return strings.Repeat(" ", n) + s
	}
	return s + strings.Repeat(" ", n)
}

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell appends a cell to the current row. Cells default to
// left-aligned with no width, which prints the value as is.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	c := textCell{value: value}
	for _, o := range opts {
		o(&c)
	}
	row := &t.rows[len(t.rows)-1]
	*row = append(*row, c)
	return t
}

// Format lays out table t and writes it to w. Each row is printed on
// its own line, cells back to back. Trailing padding and suffixes are
// kept, since they are part of the declared layout.
func (t *Table) Format(w io.Writer) error {
	var buf strings.Builder
	for _, row := range t.rows {
		buf.Reset()
		for _, cell := range row {
			buf.WriteString(cell.alignment.pad(cell.value, cell.width))
			buf.WriteString(cell.suffix)
		}
		buf.WriteByte('\n')
		if _, err := io.WriteString(w, buf.String()); err != nil {
			return err
		}
	}
	return nil
}
