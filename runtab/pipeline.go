// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runtab

import (
	"bufio"
	"io"

	"github.com/1-Harshit/cs422-computer-architecture/runfmt"
)

// A Pipeline turns one run report into a summary table.
//
// Processing has two stages. The whole report is scanned first:
// lines are classified, echoed lines are written out, and entries
// are inserted into a Table. Once the input is exhausted, the Table
// is rendered exactly once, followed by any deferred footer lines.
type Pipeline struct {
	Options  runfmt.Options
	Renderer Renderer

	// Echo receives echoed lines. If nil, they go to the same
	// writer as the table.
	Echo io.Writer

	// SkipTable stops the pipeline after the scan: only echoed
	// lines are written, with no table and no deferred footer.
	SkipTable bool
}

// Scan reads the report in r to completion. It writes echoed lines to
// echo and returns the aggregated table and the deferred footer
// lines.
func (p *Pipeline) Scan(r io.Reader, name string, echo io.Writer) (*Table, []runfmt.Line, error) {
	rd := runfmt.NewReader(r, name, p.Options)
	t := new(Table)
	for rd.Scan() {
		switch rec := rd.Result().(type) {
		case *runfmt.Entry:
			t.Insert(rec.Key, rec.Value)
		case *runfmt.Line:
			if err := writeLine(echo, rec.Text); err != nil {
				return nil, nil, err
			}
		}
	}
	if err := rd.Err(); err != nil {
		return nil, nil, err
	}
	return t, rd.Deferred(), nil
}

// Process reads the report in r and writes its summary to w. name is
// used in error messages.
func (p *Pipeline) Process(r io.Reader, name string, w io.Writer) error {
	bw := bufio.NewWriter(w)
	echo := p.Echo
	if echo == nil {
		echo = bw
	}

	t, deferred, err := p.Scan(r, name, echo)
	if err != nil {
		return err
	}
	if !p.SkipTable {
		if err := p.Renderer.Render(bw, t); err != nil {
			return err
		}
		for _, l := range deferred {
			if err := writeLine(bw, l.Text); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func writeLine(w io.Writer, s string) error {
	_, err := io.WriteString(w, s+"\n")
	return err
}
