// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runfmt

import "strings"

// KeyWidth is the width, in characters, of the key field at the start
// of every body line.
const KeyWidth = 48

// Extract splits a body line into its key and value. The key is the
// first KeyWidth characters of line, kept verbatim, and the value is
// the rest of the line with any trailing line terminator removed.
//
// Lines shorter than KeyWidth have no key; Extract returns ok == false
// for them and callers skip them.
func Extract(line string) (key, value string, ok bool) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	off := keyEnd(line)
	if off < 0 {
		return "", "", false
	}
	return line[:off], line[off:], true
}

// keyEnd returns the byte offset just past the first KeyWidth
// characters of s, or -1 if s is shorter than that.
func keyEnd(s string) int {
	n := 0
	for i := range s {
		if n == KeyWidth {
			return i
		}
		n++
	}
	if n == KeyWidth {
		return len(s)
	}
	return -1
}
