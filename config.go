// Copyright 2026 The mantaforge Authors
// SPDX-License-Identifier: BSD-3-Clause

package buildtool

import (
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig is the optional on-disk project config: a `buildtool.toml`
// next to the assets tree supplies defaults for Options, which CLI
// flags then override.
type FileConfig struct {
	AssetsRoot string `toml:"assets_root"`
	OutputRoot string `toml:"output_root"`
	Verbose    bool   `toml:"verbose"`
}

// LoadFileConfig decodes path as TOML. A missing file is not an
// error — it reports a zero-value FileConfig so callers can overlay
// CLI flags on top of whatever defaults (if any) exist.
func LoadFileConfig(path string) (*FileConfig, error) {
	var cfg FileConfig
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
