// Copyright 2026 The mantaforge Authors
// SPDX-License-Identifier: BSD-3-Clause

package buildtool

import (
	"log/slog"

	"github.com/mantaforge/buildtool/diag"
)

// SetLogger configures the logger used by every pass of the build.
// By default the pipeline produces no log output. Pass nil to restore
// the silent default.
func SetLogger(l *slog.Logger) { diag.SetLogger(l) }

// Logger returns the logger currently in effect. Safe for concurrent use.
func Logger() *slog.Logger { return diag.Logger() }
