// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runtab groups the entries of a run report by key and
// renders them as an aligned summary table.
package runtab

// A Table maps keys to ordered sequences of values.
//
// Keys are iterated in the order they were first inserted, not in
// lexical order, and each key's values stay in insertion order. The
// zero Table is empty and ready to use.
type Table struct {
	keys   []string
	values map[string][]string
}

// Insert appends value to key's sequence, creating the sequence if
// key has not been seen before.
func (t *Table) Insert(key, value string) {
	if t.values == nil {
		t.values = make(map[string][]string)
	}
	vals, ok := t.values[key]
	if !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = append(vals, value)
}

// Keys returns the keys of t in first-insertion order. The caller
// must not modify the returned slice.
func (t *Table) Keys() []string {
	return t.keys
}

// Values returns the values inserted under key, in insertion order.
// The caller must not modify the returned slice.
func (t *Table) Values(key string) []string {
	return t.values[key]
}

// Len returns the number of distinct keys in t.
func (t *Table) Len() int {
	return len(t.keys)
}
