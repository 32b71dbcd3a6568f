// Copyright 2016 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fs

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMemFS(t *testing.T) {
	ctx := context.Background()
	fs := NewMemFS()

	w, err := fs.NewWriter(ctx, "a", map[string]string{"source": "br2.a"})
	if err != nil {
		t.Fatal(err)
	}
	fmt.Fprintf(w, "hello\n")
	if got := fs.Files(); len(got) != 0 {
		t.Errorf("file visible before Close: %q", got)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := w.Write([]byte("x")); err == nil {
		t.Errorf("Write after Close succeeded")
	}

	// An aborted file never appears.
	w, _ = fs.NewWriter(ctx, "b", nil)
	fmt.Fprintf(w, "partial")
	w.CloseWithError(errors.New("render failed"))

	if diff := cmp.Diff([]string{"a"}, fs.Files()); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
	data, meta, ok := fs.Contents("a")
	if !ok || string(data) != "hello\n" || meta["source"] != "br2.a" {
		t.Errorf("Contents(a) = %q, %v, %v", data, meta, ok)
	}
	if _, _, ok := fs.Contents("b"); ok {
		t.Errorf("aborted file b has contents")
	}
}
