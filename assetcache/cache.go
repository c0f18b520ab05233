// Copyright 2026 The mantaforge Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package assetcache is the content-addressed asset cache façade:
// every compiled artifact — texture, object, or shader — is keyed by
// a 64-bit CacheKey derived from a hash of its inputs, so unchanged
// assets are skipped on the next build.
package assetcache

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"sync/atomic"
)

// Key is a 64-bit content-addressed cache key, composed as
// mix(parentHash, fileHash) or mix(nameHash, fileCacheId).
// Composition is the caller's responsibility (internal/hashutil.Mix64);
// the cache itself only ever compares keys for equality.
type Key uint64

// entry is one stored record: its gob-encoded value plus the input
// fingerprint it was computed from, so Cache can tell a stale entry
// from a reused one without decoding the value.
type entry struct {
	Fingerprint uint64
	Value       []byte
}

// Cache is the asset cache façade. One Cache is opened per build
// invocation; Fetch/Store operate purely in memory, and Read/Write
// move the whole table to/from disk atomically.
type Cache struct {
	entries map[Key]entry
	dirty   bool

	hits      atomic.Uint64
	misses    atomic.Uint64
	stores    atomic.Uint64
}

// New returns an empty cache with Dirty() == true, matching a build
// that has not yet loaded a prior cache file.
func New() *Cache {
	return &Cache{entries: make(map[Key]entry), dirty: true}
}

// Fetch looks up key and, if present and its fingerprint matches
// wantFingerprint, gob-decodes the stored value into *out and reports
// true. A fingerprint mismatch (the input changed since the value was
// cached) is treated as a miss, exactly like an absent key.
func Fetch[V any](c *Cache, key Key, wantFingerprint uint64, out *V) bool {
	e, ok := c.entries[key]
	if !ok || e.Fingerprint != wantFingerprint {
		c.misses.Add(1)
		return false
	}
	dec := gob.NewDecoder(bytes.NewReader(e.Value))
	if err := dec.Decode(out); err != nil {
		c.misses.Add(1)
		return false
	}
	c.hits.Add(1)
	return true
}

// Store gob-encodes v and records it under key with the given input
// fingerprint, overwriting any prior entry. Encoding failures are
// invariant violations (V must be a plain, gob-encodable record type)
// and are reported rather than silently dropped.
func Store[V any](c *Cache, key Key, fingerprint uint64, v V) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return fmt.Errorf("assetcache: encode record for key %x: %w", uint64(key), err)
	}
	c.entries[key] = entry{Fingerprint: fingerprint, Value: buf.Bytes()}
	c.stores.Add(1)
	return nil
}

// MarkDirty forces Dirty() to report true for the remainder of the
// build regardless of per-key fingerprints. The build passes in this
// module do not call it.
func (c *Cache) MarkDirty() { c.dirty = true }

// Dirty reports whether the cache must be treated as stale: either it
// was never successfully loaded, or MarkDirty was called.
func (c *Cache) Dirty() bool { return c.dirty }

// Stats returns cumulative hit/miss/store counters for logging.
func (c *Cache) Stats() (hits, misses, stores uint64) {
	return c.hits.Load(), c.misses.Load(), c.stores.Load()
}

// fileHeader is the on-disk envelope: a format version guards against
// decoding a cache file written by an incompatible build of this tool.
type fileHeader struct {
	Version int
	Entries map[Key]entry
}

const cacheFormatVersion = 1

// Read loads a cache file written by a prior Write. A missing file,
// version mismatch, or decode error leaves the cache empty and dirty
// (treated as "no usable prior cache") rather than
// failing the build.
func (c *Cache) Read(path string) error {
	f, err := os.Open(path)
	if err != nil {
		c.dirty = true
		return nil //nolint:nilerr // absent cache file is not a build error
	}
	defer f.Close()

	var hdr fileHeader
	if err := gob.NewDecoder(f).Decode(&hdr); err != nil || hdr.Version != cacheFormatVersion {
		c.entries = make(map[Key]entry)
		c.dirty = true
		return nil
	}
	c.entries = hdr.Entries
	c.dirty = false
	return nil
}

// Write persists the cache table atomically: it writes to a temp file
// in the same directory and renames over path, so a crash mid-write
// never corrupts a previously good cache file.
func (c *Cache) Write(path string) error {
	tmp := path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("assetcache: create %s: %w", tmp, err)
	}
	hdr := fileHeader{Version: cacheFormatVersion, Entries: c.entries}
	if err := gob.NewEncoder(f).Encode(hdr); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("assetcache: encode cache: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("assetcache: close %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("assetcache: rename %s -> %s: %w", tmp, path, err)
	}
	return nil
}
