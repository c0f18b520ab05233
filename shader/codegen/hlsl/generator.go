// Copyright 2026 The mantaforge Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package hlsl is the Direct3D target of the shader cross-compiler:
// it walks the typed AST a shader file parses into and emits HLSL
// source text, a CPU-side vertex input-layout descriptor, and
// std140-padded C++ reflection structs for uniform buffers.
package hlsl

import (
	"fmt"
	"strings"

	"github.com/mantaforge/buildtool/shader/parser"
)

// Output bundles everything one compiled shader file produces for the
// HLSL target: the HLSL source itself, the CPU-side
// vertex input-layout array (one entry per vertex_input/instance_input
// declared), and the std140-padded reflection struct declarations for
// every uniform/constant/mutable buffer.
type Output struct {
	Source        string
	InputLayout   string
	ReflectionHPP string
}

// generator carries the mutable state of one HLSL emission pass: the
// shader being translated, the growing output buffer, the current
// indent depth, and whether a texture-sampling intrinsic has already
// forced GlobalSampler into existence.
type generator struct {
	sh          *parser.Shader
	buf         strings.Builder
	indent      int
	usedSampler bool
}

func (g *generator) printf(format string, args ...any) {
	g.writeIndent()
	fmt.Fprintf(&g.buf, format, args...)
}

func (g *generator) line(s string) {
	g.writeIndent()
	g.buf.WriteString(s)
	g.buf.WriteByte('\n')
}

func (g *generator) writeIndent() {
	for i := 0; i < g.indent; i++ {
		g.buf.WriteString("\t")
	}
}

// Generate translates a fully parsed, validated shader into its HLSL [Output]. Function bodies are rendered
// first (into a scratch generator) so that a texture-sampling call
// site can flip usedSampler before the struct/texture preamble — which
// must declare GlobalSampler ahead of any use — is emitted.
func Generate(sh *parser.Shader) (*Output, error) {
	body := &generator{sh: sh}
	funcText := make([]string, len(sh.FuncOrder))
	for i, fnID := range sh.FuncOrder {
		funcText[i] = body.renderFunction(fnID)
	}

	g := &generator{sh: sh, usedSampler: body.usedSampler}
	g.writeSVStructs()
	g.writeStructsAndBuffers()
	g.writeTextures()
	if g.usedSampler {
		g.line("SamplerState GlobalSampler : register(s0);")
		g.line("")
	}
	g.buf.WriteString(strings.Join(funcText, "\n"))

	layout, err := generateInputLayout(sh.Symbols)
	if err != nil {
		return nil, err
	}

	return &Output{
		Source:        g.buf.String(),
		InputLayout:   layout,
		ReflectionHPP: generateReflection(sh.Symbols),
	}, nil
}

// renderFunction renders one function or stage entry point in
// isolation and returns its HLSL text, recording on g whether any
// texture-sampling intrinsic was used along the way.
func (g *generator) renderFunction(fnID int) string {
	fn := g.sh.Symbols.Functions[fnID]

	params := make([]string, 0, len(fn.Params)+1)
	if sv := svStructName(fn.Name); sv != "" {
		params = append(params, sv+" sv")
	}
	for _, p := range fn.Params {
		params = append(params, fmt.Sprintf("%s %s", hlslType(p.Type), Escape(p.Name)))
	}

	start := g.buf.Len()
	g.printf("%s %s(%s) ", hlslType(fn.ReturnType), Escape(fn.Name), strings.Join(params, ", "))
	g.writeBlock(fn.Body)
	g.buf.WriteString("\n")
	text := g.buf.String()[start:]
	g.buf.Reset()
	return text
}

// writeStructsAndBuffers emits every plain struct, shared_struct, and
// stage-IO struct as an HLSL `struct`, and every uniform/constant/
// mutable buffer as a `cbuffer Name : register(bN)` whose members are
// globally namespaced with a `Name_` prefix.
func (g *generator) writeStructsAndBuffers() {
	for _, s := range g.sh.Symbols.Structs {
		switch s.Kind {
		case parser.KindUniformBuffer, parser.KindConstantBuffer, parser.KindMutableBuffer:
			g.printf("cbuffer %s : register(b%d) {\n", Escape(s.Name), s.Slot)
			g.indent++
			for _, m := range s.Members {
				g.printf("%s %s_%s;\n", hlslType(m.Type), Escape(s.Name), Escape(m.Name))
			}
			g.indent--
			g.line("};")
			g.line("")
		case parser.KindStruct, parser.KindSharedStruct:
			g.printf("struct %s {\n", Escape(s.Name))
			g.indent++
			for _, m := range s.Members {
				g.printf("%s %s;\n", hlslType(m.Type), Escape(m.Name))
			}
			g.indent--
			g.line("};")
			g.line("")
		default:
			semantics := memberSemantics(s.Kind, s.Members)
			g.printf("struct %s {\n", Escape(s.Name))
			g.indent++
			for i, m := range s.Members {
				if semantics[i] != "" {
					g.printf("%s %s : %s;\n", hlslType(m.Type), Escape(m.Name), semantics[i])
				} else {
					g.printf("%s %s;\n", hlslType(m.Type), Escape(m.Name))
				}
			}
			g.indent--
			g.line("};")
			g.line("")
		}
	}
}

// writeTextures emits one HLSL resource declaration per texture
// decl, bound to its claimed slot.
func (g *generator) writeTextures() {
	for _, t := range g.sh.Symbols.Textures {
		g.printf("%s %s : register(t%d);\n", textureHLSLType(t.Type), Escape(t.Name), t.Slot)
	}
	if len(g.sh.Symbols.Textures) > 0 {
		g.line("")
	}
}
