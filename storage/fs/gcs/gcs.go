// Copyright 2016 The Go Authors.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gcs implements the fs.FS interface using Google Cloud Storage.
package gcs

import (
	"context"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/1-Harshit/cs422-computer-architecture/storage/fs"
)

// impl is an fs.FS backed by Google Cloud Storage.
type impl struct {
	client *storage.Client
	bucket *storage.BucketHandle
	prefix string
}

// An FS is an fs.FS that must be closed after use.
type FS interface {
	fs.FS
	Close() error
}

// NewFS constructs an FS that writes to the provided bucket. Object
// names are prefix joined with the file name.
func NewFS(ctx context.Context, bucketName, prefix string, opts ...option.ClientOption) (FS, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &impl{
		client: client,
		bucket: client.Bucket(bucketName),
		prefix: prefix,
	}, nil
}

func (f *impl) Close() error {
	return f.client.Close()
}

func (f *impl) NewWriter(ctx context.Context, name string, metadata map[string]string) (fs.Writer, error) {
	ctx, cancel := context.WithCancel(ctx)
	w := f.bucket.Object(objectName(f.prefix, name)).NewWriter(ctx)
	w.ContentType = "text/plain; charset=utf-8"
	w.Metadata = metadata
	return &wrapper{w, cancel}, nil
}

// objectName returns the object name for file name under prefix.
func objectName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return path.Join(strings.TrimSuffix(prefix, "/"), name)
}

// wrapper makes a *storage.Writer abortable: cancelling its context
// before Close discards the upload.
type wrapper struct {
	*storage.Writer
	cancel context.CancelFunc
}

func (w *wrapper) Close() error {
	defer w.cancel()
	return w.Writer.Close()
}

func (w *wrapper) CloseWithError(error) error {
	w.cancel()
	// Close reports the cancellation; that is the expected outcome.
	w.Writer.Close()
	return nil
}
