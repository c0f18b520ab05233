// Copyright 2026 The mantaforge Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fsutil enumerates source files under a directory,
// optionally recursive, filtered by extension.
package fsutil

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileInfo describes one discovered source file. ModTime and Size are
// recorded from the directory walk; the asset cache keys on content
// hashes and does not read them.
type FileInfo struct {
	Path    string // relative to the scanned directory, SLASH-normalized
	AbsPath string
	ModTime int64 // Unix nanoseconds
	Size    int64
}

// Slash normalizes an OS path to forward slashes's
// "separators normalized via SLASH".
func Slash(p string) string {
	return filepath.ToSlash(p)
}

// DirectoryIterate walks dir, returning every regular file whose
// extension (case-insensitive, with or without leading dot) matches
// ext. An empty ext matches every file. When recurse is false, only
// the immediate children of dir are considered. Results are sorted by
// relative path so that gather order — and everything downstream of
// it — is deterministic across runs and platforms.
func DirectoryIterate(dir, ext string, recurse bool) ([]FileInfo, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))

	var out []FileInfo
	walkFn := func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if !recurse && path != dir {
				return filepath.SkipDir
			}
			return nil
		}
		if ext != "" {
			fext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
			if fext != ext {
				return nil
			}
		}
		info, statErr := d.Info()
		if statErr != nil {
			return statErr
		}
		rel, relErr := filepath.Rel(dir, path)
		if relErr != nil {
			rel = path
		}
		out = append(out, FileInfo{
			Path:    Slash(rel),
			AbsPath: path,
			ModTime: info.ModTime().UnixNano(),
			Size:    info.Size(),
		})
		return nil
	}

	if err := filepath.WalkDir(dir, walkFn); err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}
