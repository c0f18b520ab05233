// Package diag is the structured-error sink and logger shared by
// every pass of the build. It is a separate package from the root
// buildtool package — rather than living there directly — so that
// objectc, texture, and the shader packages can depend on it without
// creating an import cycle back through the root driver package that
// depends on them.
package diag

import (
	"fmt"
	"strings"
)

// ErrorKind categorizes a build failure per the error-handling design:
// invariant violations are programming bugs, user-data errors are
// authoring mistakes, syntax/semantic errors come from parsers, I/O
// errors come from the filesystem.
type ErrorKind int

const (
	KindInvariant ErrorKind = iota
	KindUserData
	KindSyntax
	KindSemantic
	KindIO
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvariant:
		return "invariant"
	case KindUserData:
		return "user-data"
	case KindSyntax:
		return "syntax"
	case KindSemantic:
		return "semantic"
	case KindIO:
		return "io"
	default:
		return "unknown"
	}
}

// BuildError is a structured, fatal build failure. It carries enough
// context — file, function, line, the failed condition, and a
// printf-style reason — plus an optional source-line/caret rendering
// for syntax and semantic errors raised by the shader front end.
type BuildError struct {
	Kind      ErrorKind
	File      string
	Function  string
	Line      int
	Condition string
	Reason    string

	// SourceLine and Column, when Column > 0, render a caret-underline
	// beneath the offending source line (shader lexer/parser errors).
	SourceLine string
	Column     int
}

func (e *BuildError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d: %s: ", e.File, e.Line, e.Kind)
	if e.Function != "" {
		fmt.Fprintf(&b, "%s: ", e.Function)
	}
	if e.Condition != "" {
		fmt.Fprintf(&b, "(%s) ", e.Condition)
	}
	b.WriteString(e.Reason)
	if e.SourceLine != "" {
		b.WriteByte('\n')
		b.WriteString(e.SourceLine)
		if e.Column > 0 {
			b.WriteByte('\n')
			if e.Column-1 > 0 {
				b.WriteString(strings.Repeat(" ", e.Column-1))
			}
			b.WriteByte('^')
		}
	}
	return b.String()
}

// ErrorSink is the process-wide structured-error collector. The first
// fatal error wins: once ExitCode() is non-zero, subsequent Fatal
// calls are recorded but do not overwrite the first error or change
// the exit code: the first error wins.
type ErrorSink struct {
	first *BuildError
	count int
}

// NewErrorSink returns an empty sink with exit code 0.
func NewErrorSink() *ErrorSink { return &ErrorSink{} }

// Fatal records a fatal build error. Returns the recorded error for
// convenience at call sites that want to `return sink.Fatal(...)`.
func (s *ErrorSink) Fatal(err *BuildError) error {
	s.count++
	if s.first == nil {
		s.first = err
		Logger().Error("build error", "kind", err.Kind.String(), "file", err.File, "line", err.Line, "reason", err.Reason)
	}
	return err
}

// Fatalf is a convenience wrapper for a simple printf-style reason with
// no source-line rendering.
func (s *ErrorSink) Fatalf(kind ErrorKind, file string, line int, format string, args ...any) error {
	return s.Fatal(&BuildError{Kind: kind, File: file, Line: line, Reason: fmt.Sprintf(format, args...)})
}

// Dirty reports whether any fatal error has been recorded.
func (s *ErrorSink) Dirty() bool { return s.first != nil }

// First returns the first recorded error, or nil if none occurred.
func (s *ErrorSink) First() *BuildError { return s.first }

// Count returns the total number of Fatal calls, including ones that
// were short-circuited after the first error.
func (s *ErrorSink) Count() int { return s.count }

// ExitCode returns 0 on success and 1 if any fatal error was recorded.
func (s *ErrorSink) ExitCode() int {
	if s.first != nil {
		return 1
	}
	return 0
}
