// Copyright 2026 The mantaforge Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package codegen dispatches shader code generation to a concrete
// target language. Targets are a small capability trait selected by a
// Language enum rather than a class hierarchy, so adding a backend is
// one new implementation plus one enum member.
package codegen

import (
	"fmt"

	"github.com/mantaforge/buildtool/shader/codegen/hlsl"
	"github.com/mantaforge/buildtool/shader/parser"
)

// Language selects the target a shader is cross-compiled to.
type Language int

const (
	HLSL Language = iota
)

func (l Language) String() string {
	switch l {
	case HLSL:
		return "hlsl"
	default:
		return "unknown"
	}
}

// Output is the per-target result for one compiled shader file: the
// target-language source, the CPU-side input-layout descriptor, and
// the padded reflection structs.
type Output = hlsl.Output

// Target generates target-language output from a parsed shader.
type Target interface {
	Language() Language
	Generate(sh *parser.Shader) (*Output, error)
}

type hlslTarget struct{}

func (hlslTarget) Language() Language { return HLSL }

func (hlslTarget) Generate(sh *parser.Shader) (*Output, error) { return hlsl.Generate(sh) }

// For returns the Target implementation for lang.
func For(lang Language) (Target, error) {
	switch lang {
	case HLSL:
		return hlslTarget{}, nil
	default:
		return nil, fmt.Errorf("codegen: no target for language %d", lang)
	}
}
