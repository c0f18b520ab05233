// Copyright 2026 The mantaforge Authors
// SPDX-License-Identifier: BSD-3-Clause

package buildtool

import "github.com/mantaforge/buildtool/diag"

// ErrorKind, BuildError, and ErrorSink are re-exported from package
// diag so callers of the root package get the structured-error sink
// without an extra import; see diag's doc comment for why the
// implementation lives in its own package.
type (
	ErrorKind  = diag.ErrorKind
	BuildError = diag.BuildError
	ErrorSink  = diag.ErrorSink
)

const (
	KindInvariant = diag.KindInvariant
	KindUserData  = diag.KindUserData
	KindSyntax    = diag.KindSyntax
	KindSemantic  = diag.KindSemantic
	KindIO        = diag.KindIO
)

// NewErrorSink returns an empty sink with exit code 0.
func NewErrorSink() *ErrorSink { return diag.NewErrorSink() }
