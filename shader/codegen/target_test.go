// Copyright 2026 The mantaforge Authors
// SPDX-License-Identifier: BSD-3-Clause

package codegen

import (
	"strings"
	"testing"

	"github.com/mantaforge/buildtool/shader/parser"
)

func TestForDispatchesHLSL(t *testing.T) {
	target, err := For(HLSL)
	if err != nil {
		t.Fatalf("For(HLSL): %v", err)
	}
	if target.Language() != HLSL {
		t.Fatalf("Language() = %v, want HLSL", target.Language())
	}

	src := `
vertex_input VSInput {
	position_in float3 pos;
}
vertex_output VSOutput {
	position_out float4 clipPos;
}
void vertex_main(VSInput v, VSOutput o) {
}
`
	sh, err := parser.Parse("test.shader", []byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	out, err := target.Generate(sh)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(out.Source, "struct VSInput {") {
		t.Fatalf("expected HLSL output, got:\n%s", out.Source)
	}
}

func TestForRejectsUnknownLanguage(t *testing.T) {
	if _, err := For(Language(99)); err == nil {
		t.Fatal("expected an error for an unknown language")
	}
}
