// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runfmt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// A Files enumerates the report files in a directory.
//
// Files yields every regular entry of Dir whose name starts with
// Prefix, in the order os.ReadDir returns them (sorted by name).
// Subdirectories are skipped.
type Files struct {
	// Dir is the directory to list. The empty string means the
	// current directory.
	Dir string

	// Prefix selects entries by name. The empty prefix selects
	// every entry.
	Prefix string

	// names is the sequence of remaining names, or nil if this
	// Files has not started yet.
	names []string
	name  string
	err   error
}

func (f *Files) init() {
	f.names = []string{}
	dir := f.Dir
	if dir == "" {
		dir = "."
	}
	ents, err := os.ReadDir(dir)
	if err != nil {
		f.err = err
		return
	}
	for _, ent := range ents {
		if ent.IsDir() || !strings.HasPrefix(ent.Name(), f.Prefix) {
			continue
		}
		f.names = append(f.names, ent.Name())
	}
}

// Scan advances to the next selected file and reports whether there
// was one. If Scan reaches the end of the listing, or if the
// directory cannot be read, it returns false. In this case, the
// caller should use the Err method to check for errors.
func (f *Files) Scan() bool {
	if f.err != nil {
		return false
	}
	if f.names == nil {
		f.init()
		if f.err != nil {
			return false
		}
	}
	if len(f.names) == 0 {
		f.name = ""
		return false
	}
	f.name, f.names = f.names[0], f.names[1:]
	return true
}

// Name returns the base name of the file that was just selected by
// Scan.
func (f *Files) Name() string {
	return f.name
}

// Path returns the path of the file that was just selected by Scan.
func (f *Files) Path() string {
	return filepath.Join(f.Dir, f.name)
}

// Err returns the error that stopped Scan, if any.
func (f *Files) Err() error {
	return f.err
}

// OutputName derives an output file name from a report file name by
// removing trimPrefix leading and trimSuffix trailing bytes. This
// strips fixed wrappers such as a "br2." tag and a ".out.<timestamp>"
// run identifier. It is an error if nothing would be left.
func OutputName(name string, trimPrefix, trimSuffix int) (string, error) {
	if trimPrefix < 0 || trimSuffix < 0 {
		return "", fmt.Errorf("negative trim for %q", name)
	}
	if trimPrefix+trimSuffix >= len(name) {
		return "", fmt.Errorf("cannot derive output name from %q: trimming %d+%d bytes leaves nothing", name, trimPrefix, trimSuffix)
	}
	return name[trimPrefix : len(name)-trimSuffix], nil
}
