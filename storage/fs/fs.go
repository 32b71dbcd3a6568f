// Copyright 2016 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fs provides a backend-agnostic filesystem layer for
// writing summary tables.
package fs

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sort"
	"sync"
)

// An FS stores files.
type FS interface {
	// NewWriter returns a Writer for a given file name.
	// When the Writer is closed, the file will be stored with the
	// given metadata.
	NewWriter(ctx context.Context, name string, metadata map[string]string) (Writer, error)
}

// A Writer is an io.Writer that can also be closed with an error.
//
// Data written to a Writer becomes visible only after a successful
// Close. CloseWithError discards the file.
type Writer interface {
	io.WriteCloser
	// CloseWithError cancels the writing of the file, removing
	// any partially written data.
	CloseWithError(error) error
}

// MemFS is an in-memory filesystem implementing the FS interface.
type MemFS struct {
	mu      sync.Mutex
	content map[string]*memFile
}

// NewMemFS constructs a new, empty MemFS.
func NewMemFS() *MemFS {
	return &MemFS{
		content: make(map[string]*memFile),
	}
}

// NewWriter returns a Writer for a given file name. As a side effect,
// it associates the given metadata with the file.
func (fs *MemFS) NewWriter(_ context.Context, name string, metadata map[string]string) (Writer, error) {
	meta := make(map[string]string)
	for k, v := range metadata {
		meta[k] = v
	}
	return &memFile{fs: fs, name: name, metadata: meta}, nil
}

// Files returns the names of the files written to fs, sorted.
func (fs *MemFS) Files() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	var files []string
	for name := range fs.content {
		files = append(files, name)
	}
	sort.Strings(files)
	return files
}

// Contents returns the data and metadata of the named file.
func (fs *MemFS) Contents(name string) (data []byte, metadata map[string]string, ok bool) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	f, ok := fs.content[name]
	if !ok {
		return nil, nil, false
	}
	return f.data.Bytes(), f.metadata, true
}

var errClosed = errors.New("write to closed file")

// memFile represents a file in a MemFS. While the file is being
// written, fs points to the filesystem. Close writes the file's
// content to fs and sets fs to nil.
type memFile struct {
	fs       *MemFS
	name     string
	metadata map[string]string
	data     bytes.Buffer
}

func (f *memFile) Write(p []byte) (int, error) {
	if f.fs == nil {
		return 0, errClosed
	}
	return f.data.Write(p)
}

func (f *memFile) Close() error {
	if f.fs == nil {
		return errClosed
	}

	fs := f.fs
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.content[f.name] = f
	f.fs = nil
	return nil
}

func (f *memFile) CloseWithError(error) error {
	f.fs = nil
	return nil
}
