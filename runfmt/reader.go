// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runfmt reads simulator run reports.
//
// A run report is a line-oriented text file. A prefix of its lines is
// header, a middle range holds data rows, and a suffix is footer. Each
// data row starts with a fixed-width key field (see KeyWidth)
// followed by a free-form value. Which lines are which is decided
// purely by line number, using a Boundaries.
package runfmt

import (
	"bufio"
	"fmt"
	"io"
	"math"
)

// A Record is a single record read from a report. It is one of
// *Line or *Entry.
type Record interface {
	// Pos returns the position of this record as a file name and
	// a 1-based line number within that file.
	Pos() (fileName string, line int)
}

// A Line is a raw report line that is passed through verbatim, such
// as an echoed header line. Text does not include the line
// terminator.
type Line struct {
	FileName string
	Num      int
	Text     string
}

func (l *Line) Pos() (fileName string, line int) {
	return l.FileName, l.Num
}

// An Entry is a key/value pair extracted from a body line.
type Entry struct {
	Line
	Key   string
	Value string
}

// HeaderPolicy says what a Reader does with header lines.
type HeaderPolicy int

const (
	// HeaderDrop discards header lines.
	HeaderDrop HeaderPolicy = iota
	// HeaderEcho returns header lines as *Line records.
	HeaderEcho
)

// FooterPolicy says what a Reader does with footer lines.
type FooterPolicy int

const (
	// FooterDrop discards footer lines.
	FooterDrop FooterPolicy = iota
	// FooterDefer keeps footer lines, in order, for retrieval with
	// Reader.Deferred once the file has been read.
	FooterDefer
)

// Options configures how a Reader classifies lines.
type Options struct {
	Boundaries Boundaries
	Header     HeaderPolicy
	Footer     FooterPolicy

	// Echo is a range of lines returned as *Line records whatever
	// their phase. An echoed body line does not produce an Entry.
	Echo Range
}

// A Reader reads run reports.
//
// Its API is modeled on bufio.Scanner. To construct a new Reader,
// either call NewReader, or call Reset on a zeroed Reader.
type Reader struct {
	opts Options

	s        *bufio.Scanner
	fileName string
	line     int
	err      error

	result   Record
	deferred []Line
}

// NewReader constructs a reader for the report in r. fileName is used
// in record positions and error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string, opts Options) *Reader {
	reader := &Reader{opts: opts}
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading a new report from r. It
// keeps the Options the reader was constructed with and discards any
// deferred footer lines.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	r.s.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.line = 0
	r.err = nil
	r.result = nil
	r.deferred = nil
}

// Scan advances the reader to the next record and reports whether a
// record was read. The caller should use the Result method to get the
// record. If Scan reaches EOF or an I/O error occurs, it returns
// false, in which case the caller should use the Err method to check
// for errors.
//
// Header and footer lines are handled according to the Reader's
// policies. Body lines shorter than KeyWidth are skipped without
// producing a record.
func (r *Reader) Scan() bool {
	if r.err != nil || r.s == nil {
		return false
	}

	for r.s.Scan() {
		r.line++
		text := r.s.Text()
		if r.opts.Echo.Contains(r.line) {
			r.result = &Line{r.fileName, r.line, text}
			return true
		}
		switch Classify(r.line, r.opts.Boundaries) {
		case Header:
			if r.opts.Header == HeaderEcho {
				r.result = &Line{r.fileName, r.line, text}
				return true
			}
		case Body:
			key, val, ok := Extract(text)
			if !ok {
				continue
			}
			r.result = &Entry{Line{r.fileName, r.line, text}, key, val}
			return true
		case Footer:
			if r.opts.Footer == FooterDefer {
				r.deferred = append(r.deferred, Line{r.fileName, r.line, text})
			}
		}
	}

	r.result = nil
	if err := r.s.Err(); err != nil {
		// The failure happened while reading the next line.
		r.err = fmt.Errorf("%s:%d: %w", r.fileName, r.line+1, err)
	}
	return false
}

// Result returns the record that was just read by Scan.
func (r *Reader) Result() Record {
	return r.result
}

// Err returns the first non-EOF I/O error that was encountered by
// the Reader.
func (r *Reader) Err() error {
	return r.err
}

// Deferred returns the footer lines kept under FooterDefer, in file
// order. The list is complete only after Scan has returned false.
func (r *Reader) Deferred() []Line {
	return r.deferred
}
