// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runfmt

import (
	"fmt"
	"strconv"
	"strings"
)

// A Phase is the part of a report file that a line belongs to.
type Phase int

const (
	// Header lines precede the data rows. They are either echoed
	// or dropped.
	Header Phase = iota
	// Body lines are eligible for key/value extraction.
	Body
	// Footer lines follow the data rows. They are either dropped
	// or deferred.
	Footer
)

func (p Phase) String() string {
	switch p {
	case Header:
		return "header"
	case Body:
		return "body"
	case Footer:
		return "footer"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// NoBodyEnd, used as Boundaries.BodyEnd, means the body extends to
// the end of the file.
const NoBodyEnd = 0

// Boundaries partitions the 1-based line numbers of a file into
// phases. Lines before HeaderEnd are header lines, lines from
// HeaderEnd through BodyEnd (inclusive) are body lines, and lines
// after BodyEnd are footer lines.
//
// Boundaries are fixed for the whole scan of a file.
type Boundaries struct {
	HeaderEnd int
	BodyEnd   int
}

// Classify returns the phase of line number n under b. Every line
// number maps to exactly one phase.
func Classify(n int, b Boundaries) Phase {
	switch {
	case n < b.HeaderEnd:
		return Header
	case b.BodyEnd == NoBodyEnd || n <= b.BodyEnd:
		return Body
	}
	return Footer
}

// Validate reports whether b describes a usable partition.
func (b Boundaries) Validate() error {
	if b.HeaderEnd < 1 {
		return fmt.Errorf("header end %d must be at least 1", b.HeaderEnd)
	}
	if b.BodyEnd != NoBodyEnd && b.BodyEnd < b.HeaderEnd {
		return fmt.Errorf("body end %d is before header end %d", b.BodyEnd, b.HeaderEnd)
	}
	return nil
}

// A Range is an inclusive range of 1-based line numbers. The zero
// Range contains no lines.
type Range struct {
	From, To int
}

// Contains reports whether line number n is in r.
func (r Range) Contains(n int) bool {
	return r.From > 0 && r.From <= n && n <= r.To
}

func (r Range) String() string {
	switch {
	case r.From <= 0:
		return ""
	case r.From == r.To:
		return strconv.Itoa(r.From)
	}
	return fmt.Sprintf("%d-%d", r.From, r.To)
}

// ParseRange parses a line range of the form "N" or "N-M". The empty
// string parses as the zero Range.
func ParseRange(s string) (Range, error) {
	if s == "" {
		return Range{}, nil
	}
	from, to, found := strings.Cut(s, "-")
	if !found {
		to = from
	}
	var r Range
	var err error
	if r.From, err = strconv.Atoi(from); err != nil {
		return Range{}, fmt.Errorf("bad line range %q", s)
	}
	if r.To, err = strconv.Atoi(to); err != nil {
		return Range{}, fmt.Errorf("bad line range %q", s)
	}
	if r.From < 1 || r.To < r.From {
		return Range{}, fmt.Errorf("bad line range %q", s)
	}
	return r, nil
}
