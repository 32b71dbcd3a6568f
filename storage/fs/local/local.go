// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package local implements the fs.FS interface on a local directory.
package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/1-Harshit/cs422-computer-architecture/storage/fs"
)

// FS writes files into a directory of the local filesystem.
// Metadata is not stored.
type FS struct {
	dir string
}

// NewFS returns an FS that writes into dir. The empty string means
// the current directory.
func NewFS(dir string) *FS {
	if dir == "" {
		dir = "."
	}
	return &FS{dir: dir}
}

// NewWriter returns a Writer for the file name in f's directory. Data
// goes to a temporary file that replaces name when the Writer is
// closed, so a failed write never leaves a partial file behind.
func (f *FS) NewWriter(_ context.Context, name string, _ map[string]string) (fs.Writer, error) {
	if !filepath.IsLocal(name) {
		return nil, fmt.Errorf("invalid output name %q", name)
	}
	tmp, err := os.CreateTemp(f.dir, "."+filepath.Base(name)+".tmp*")
	if err != nil {
		return nil, err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return nil, err
	}
	return &writer{File: tmp, path: filepath.Join(f.dir, name)}, nil
}

type writer struct {
	*os.File
	path string
}

func (w *writer) Close() error {
	if err := w.File.Close(); err != nil {
		os.Remove(w.File.Name())
		return err
	}
	if err := os.Rename(w.File.Name(), w.path); err != nil {
		os.Remove(w.File.Name())
		return err
	}
	return nil
}

func (w *writer) CloseWithError(error) error {
	w.File.Close()
	return os.Remove(w.File.Name())
}
