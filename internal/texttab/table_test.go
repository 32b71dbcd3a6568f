// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"errors"
	"strings"
	"testing"
)

func TestAlign(t *testing.T) {
	check := func(s string, a align, w int, want string) {
		t.Helper()
		got := a.pad(s, w)
		if got != want {
			t.Errorf("want %q, got %q", want, got)
		}
	}

	check("abc", alignLeft, 10, "abc       ")
	check("abc", alignRight, 10, "       abc")
	check("é", alignRight, 4, "   é")
	// Widths count code points, not display columns.
	check("±1.5°", alignLeft, 8, "±1.5°   ")
	check("分支", alignLeft, 4, "分支  ")
	check("分支", alignRight, 4, "  分支")
	// Never truncate.
	check("abcdef", alignLeft, 3, "abcdef")
	check("abcdef", alignRight, 3, "abcdef")
	check("", alignLeft, 0, "")
}

func TestTable(t *testing.T) {
	var tab Table
	check := func(want string) {
		t.Helper()
		var gotBuf strings.Builder
		if err := tab.Format(&gotBuf); err != nil {
			t.Fatal(err)
		}
		got := gotBuf.String()
		if want != got {
			t.Errorf("want:\n%qgot:\n%q", want, got)
		}
		// Reset tab.
		tab = Table{}
	}

	// Cells without widths are printed back to back.
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("d").Cell("e").Cell("f")
	check("abc\ndef\n")

	// Fixed widths, including trailing padding.
	tab.Row().Cell("Type", Width(6)).Cell("Fwd", Width(5), Right)
	tab.Row().Cell("x", Width(6)).Cell("1", Width(5), Left)
	check("Type    Fwd\nx     1    \n")

	// Suffixes follow the padded value.
	tab.Row().Cell("k").Cell("1", Suffix("  ")).Cell("2", Suffix("  "))
	check("k1  2  \n")

	// Blank rows.
	tab.Row().Cell("a")
	tab.Row()
	tab.Row().Cell("b")
	check("a\n\nb\n")

	// Cell without Row starts the first row.
	tab.Cell("solo")
	check("solo\n")

	// Empty table prints nothing.
	check("")
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errShort
	}
	w.n--
	return len(p), nil
}

var errShort = errors.New("short write")

func TestFormatError(t *testing.T) {
	var tab Table
	tab.Row().Cell("a")
	tab.Row().Cell("b")
	if err := tab.Format(&failWriter{n: 1}); err != errShort {
		t.Errorf("want short write error, got %v", err)
	}
}
