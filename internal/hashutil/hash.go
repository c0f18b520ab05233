// Copyright 2026 The mantaforge Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package hashutil provides the build tool's hashing primitives: a
// CRC32 checksum for content fingerprints and a 64-bit mixer used to
// compose cache keys from two hashes.
package hashutil

import "hash/crc32"

// crcTable is the IEEE polynomial table used by XCRC32. Computed once
// at package init via the stdlib, mirroring a classic xcrc32-style
// precomputed table without re-deriving the polynomial by hand.
var crcTable = crc32.MakeTable(crc32.IEEE)

// XCRC32 computes the CRC-32 (IEEE 802.3 polynomial) checksum of data.
// Used to fingerprint file contents for cache keys.
func XCRC32(data []byte) uint32 {
	return crc32.Checksum(data, crcTable)
}

// XCRC32String is a convenience wrapper over XCRC32 for string input.
func XCRC32String(s string) uint32 {
	return crc32.Checksum([]byte(s), crcTable)
}

// Mix64 combines two 64-bit hashes into one using the splitmix64
// finalizer: deterministic, avalanching, and order-sensitive (mixing
// a,b is not the same as mixing b,a), which CacheKey composition
// relies on to keep parent-hash/file-hash and name-hash/cache-id
// combinations from colliding with each other.
func Mix64(a, b uint64) uint64 {
	x := a ^ (b + 0x9E3779B97F4A7C15 + (a << 6) + (a >> 2))
	x ^= x >> 30
	x *= 0xBF58476D1CE4E5B9
	x ^= x >> 27
	x *= 0x94D049BB133111EB
	x ^= x >> 31
	return x
}

// HashBytes64 extends a 32-bit CRC into a 64-bit value via Mix64 with
// the data length, giving every cache key source a 64-bit hash even when
// the underlying checksum is 32 bits.
func HashBytes64(data []byte) uint64 {
	return Mix64(uint64(XCRC32(data)), uint64(len(data)))
}

// HashString64 is the string form of HashBytes64, used to hash object
// names, texture names, and similar identifiers into CacheKey inputs.
func HashString64(s string) uint64 {
	return Mix64(uint64(XCRC32String(s)), uint64(len(s)))
}
