// Copyright 2026 The mantaforge Authors
// SPDX-License-Identifier: BSD-3-Clause

package hlsl

import (
	"fmt"
	"strings"

	"github.com/mantaforge/buildtool/shader/parser"
)

// std140CppType maps an HLSL scalar/vector/matrix spelling to the CPU
// reflection struct's field type, matching the engine's math library
// naming (Float4, Int3, ...) rather than HLSL's (float4, int3, ...).
func std140CppType(hlslName string) string {
	if len(hlslName) == 0 {
		return hlslName
	}
	return strings.ToUpper(hlslName[:1]) + hlslName[1:]
}

// generateReflection emits, for every uniform/constant/mutable buffer
// struct in sym, a std140-padded C++ struct usable for CPU-side
// reflection of that buffer's layout. Members are
// padded so each one lands at its type's std140 alignment; a trailing
// pad rounds the whole struct up to a 16-byte stride, matching GPU
// uniform-buffer layout rules.
func generateReflection(sym *parser.SymbolTable) string {
	var b strings.Builder
	b.WriteString("// Code generated by the shader cross-compiler. DO NOT EDIT.\n")
	b.WriteString("#pragma once\n\n")
	b.WriteString("#include <cstdint>\n\n")

	padCounter := 0
	for _, s := range sym.Structs {
		switch s.Kind {
		case parser.KindUniformBuffer, parser.KindConstantBuffer, parser.KindMutableBuffer:
		default:
			continue
		}

		fmt.Fprintf(&b, "struct %s {\n", Escape(s.Name))
		offset := 0
		for _, m := range s.Members {
			layout, ok := primitiveLayouts[m.Type]
			if !ok {
				// Nested shared_struct members are reflected by their own
				// generated struct; std140 padding for the outer buffer
				// still assumes 16-byte alignment, the safe upper bound
				// for any struct-typed member.
				layout = typeLayout{hlsl: Escape(m.Type), size: 16, align: 16}
			}
			if pad := paddingNeeded(offset, layout.align); pad > 0 {
				padCounter++
				fmt.Fprintf(&b, "\tuint8_t _pad%d[%d];\n", padCounter, pad)
				offset += pad
			}
			fmt.Fprintf(&b, "\t%s %s;\n", std140CppType(layout.hlsl), Escape(m.Name))
			offset += layout.size
		}
		if trailing := paddingNeeded(offset, 16); trailing > 0 {
			padCounter++
			fmt.Fprintf(&b, "\tuint8_t _pad%d[%d];\n", padCounter, trailing)
			offset += trailing
		}
		fmt.Fprintf(&b, "};\nstatic_assert(sizeof(%s) == %d, \"std140 layout mismatch\");\n\n", Escape(s.Name), offset)
	}
	return b.String()
}

// paddingNeeded returns the number of bytes needed to advance offset
// up to the next multiple of align; zero if already aligned.
func paddingNeeded(offset, align int) int {
	if align == 0 {
		return 0
	}
	rem := offset % align
	if rem == 0 {
		return 0
	}
	return align - rem
}
