// Copyright 2026 The mantaforge Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package buffer implements the append-only binary blob writer.
// Every compiled asset
// (texture pixels, spliced cache hits) is appended once; the returned
// offset is immutable thereafter.
package buffer

import (
	"io"
	"os"
)

// FailedOffset is returned by Write/WriteFromFile on failure.
const FailedOffset = ^uint64(0)

// Buffer is a byte-level append-only blob. Bytes once written are
// never mutated or reordered; only Reset discards them, and only
// between builds.
type Buffer struct {
	data []byte
}

// New returns an empty Buffer with capacity preallocated to reduce
// reallocation during a build with many assets.
func New(capacityHint int) *Buffer {
	return &Buffer{data: make([]byte, 0, capacityHint)}
}

// Write appends bytes and returns the offset they were written at, or
// FailedOffset if b is nil.
func (buf *Buffer) Write(b []byte) uint64 {
	if b == nil {
		return FailedOffset
	}
	off := uint64(len(buf.data))
	buf.data = append(buf.data, b...)
	return off
}

// WriteFromFile appends length bytes read from path starting at off,
// returning the offset in the blob they were written at, or
// FailedOffset on any I/O error or short read.
func (buf *Buffer) WriteFromFile(path string, off int64, length int) uint64 {
	f, err := os.Open(path)
	if err != nil {
		return FailedOffset
	}
	defer f.Close()

	chunk := make([]byte, length)
	if _, err := f.Seek(off, io.SeekStart); err != nil {
		return FailedOffset
	}
	if _, err := io.ReadFull(f, chunk); err != nil {
		return FailedOffset
	}
	return buf.Write(chunk)
}

// Len returns the current size of the blob in bytes.
func (buf *Buffer) Len() int { return len(buf.data) }

// Bytes returns the blob's contents. The caller must not mutate the
// returned slice; it aliases the Buffer's internal storage.
func (buf *Buffer) Bytes() []byte { return buf.data }

// WriteTo writes the full blob to w, implementing io.WriterTo.
func (buf *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(buf.data)
	return int64(n), err
}

// Reset discards all buffered bytes. Called between independent build
// invocations; never mid-build (writes are append-only while a build
// is in progress).
func (buf *Buffer) Reset() {
	buf.data = buf.data[:0]
}
