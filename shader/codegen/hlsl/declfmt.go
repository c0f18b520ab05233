// Copyright 2026 The mantaforge Authors
// SPDX-License-Identifier: BSD-3-Clause

package hlsl

import (
	"fmt"
	"strings"

	"github.com/mantaforge/buildtool/shader/parser"
)

// dxgiFormat describes one packed_as(FMT) × lane-count combination's
// DXGI format name and byte size, used for the CPU-side input-layout
// descriptor.
type dxgiFormat struct {
	name string
	size int
}

// packedFormats maps a packed_as tag and lane count to its DXGI
// format. Only the lane counts DXGI actually ships a format for are
// present; 3-lane 8/16-bit packed formats don't exist in DXGI and are
// rejected by [formatFor].
var packedFormats = map[string]map[int]dxgiFormat{
	"UNORM8":  {1: {"DXGI_FORMAT_R8_UNORM", 1}, 2: {"DXGI_FORMAT_R8G8_UNORM", 2}, 4: {"DXGI_FORMAT_R8G8B8A8_UNORM", 4}},
	"SNORM8":  {1: {"DXGI_FORMAT_R8_SNORM", 1}, 2: {"DXGI_FORMAT_R8G8_SNORM", 2}, 4: {"DXGI_FORMAT_R8G8B8A8_SNORM", 4}},
	"UINT8":   {1: {"DXGI_FORMAT_R8_UINT", 1}, 2: {"DXGI_FORMAT_R8G8_UINT", 2}, 4: {"DXGI_FORMAT_R8G8B8A8_UINT", 4}},
	"SINT8":   {1: {"DXGI_FORMAT_R8_SINT", 1}, 2: {"DXGI_FORMAT_R8G8_SINT", 2}, 4: {"DXGI_FORMAT_R8G8B8A8_SINT", 4}},
	"UNORM16": {1: {"DXGI_FORMAT_R16_UNORM", 2}, 2: {"DXGI_FORMAT_R16G16_UNORM", 4}, 4: {"DXGI_FORMAT_R16G16B16A16_UNORM", 8}},
	"SNORM16": {1: {"DXGI_FORMAT_R16_SNORM", 2}, 2: {"DXGI_FORMAT_R16G16_SNORM", 4}, 4: {"DXGI_FORMAT_R16G16B16A16_SNORM", 8}},
	"UINT16":  {1: {"DXGI_FORMAT_R16_UINT", 2}, 2: {"DXGI_FORMAT_R16G16_UINT", 4}, 4: {"DXGI_FORMAT_R16G16B16A16_UINT", 8}},
	"SINT16":  {1: {"DXGI_FORMAT_R16_SINT", 2}, 2: {"DXGI_FORMAT_R16G16_SINT", 4}, 4: {"DXGI_FORMAT_R16G16B16A16_SINT", 8}},
	"FLOAT16": {1: {"DXGI_FORMAT_R16_FLOAT", 2}, 2: {"DXGI_FORMAT_R16G16_FLOAT", 4}, 4: {"DXGI_FORMAT_R16G16B16A16_FLOAT", 8}},
	"UINT32": {1: {"DXGI_FORMAT_R32_UINT", 4}, 2: {"DXGI_FORMAT_R32G32_UINT", 8},
		3: {"DXGI_FORMAT_R32G32B32_UINT", 12}, 4: {"DXGI_FORMAT_R32G32B32A32_UINT", 16}},
	"SINT32": {1: {"DXGI_FORMAT_R32_SINT", 4}, 2: {"DXGI_FORMAT_R32G32_SINT", 8},
		3: {"DXGI_FORMAT_R32G32B32_SINT", 12}, 4: {"DXGI_FORMAT_R32G32B32A32_SINT", 16}},
	"FLOAT32": {1: {"DXGI_FORMAT_R32_FLOAT", 4}, 2: {"DXGI_FORMAT_R32G32_FLOAT", 8},
		3: {"DXGI_FORMAT_R32G32B32_FLOAT", 12}, 4: {"DXGI_FORMAT_R32G32B32A32_FLOAT", 16}},
}

// defaultPackedAs is the implicit packed_as tag for a primitive type
// family when a vertex_input/instance_input member carries none.
func defaultPackedAs(primitiveType string) string {
	switch {
	case strings.HasPrefix(primitiveType, "float"):
		return "FLOAT32"
	case strings.HasPrefix(primitiveType, "uint"), strings.HasPrefix(primitiveType, "bool"):
		return "UINT32"
	case strings.HasPrefix(primitiveType, "int"):
		return "SINT32"
	default:
		return "FLOAT32"
	}
}

func laneCount(primitiveType string) int {
	if l, ok := primitiveLayouts[primitiveType]; ok {
		switch l.hlsl {
		case "float", "int", "uint", "bool":
			return 1
		}
	}
	switch {
	case strings.HasSuffix(primitiveType, "4"):
		return 4
	case strings.HasSuffix(primitiveType, "3"):
		return 3
	case strings.HasSuffix(primitiveType, "2"):
		return 2
	default:
		return 1
	}
}

func formatFor(m parser.Member) (dxgiFormat, error) {
	tag := m.PackedAs
	if tag == "" {
		tag = defaultPackedAs(m.Type)
	}
	lanes := laneCount(m.Type)
	byLanes, ok := packedFormats[tag]
	if !ok {
		return dxgiFormat{}, fmt.Errorf("hlsl: unknown packed_as tag %q on member %q", tag, m.Name)
	}
	fmtInfo, ok := byLanes[lanes]
	if !ok {
		return dxgiFormat{}, fmt.Errorf("hlsl: packed_as(%s) has no %d-lane DXGI format for member %q", tag, lanes, m.Name)
	}
	return fmtInfo, nil
}

// generateInputLayout emits a `static D3D11_INPUT_ELEMENT_DESC[]`
// literal covering every vertex_input struct (input slot 0,
// PER_VERTEX_DATA) and instance_input struct (input slot 1,
// PER_INSTANCE_DATA, step rate 1) declared in sym, in declaration
// order.
func generateInputLayout(sym *parser.SymbolTable) (string, error) {
	var b strings.Builder
	var entries []string

	for _, s := range sym.Structs {
		var slot, stepRate int
		var slotClass string
		switch s.Kind {
		case parser.KindVertexInput:
			slot, stepRate, slotClass = 0, 0, "D3D11_INPUT_PER_VERTEX_DATA"
		case parser.KindInstanceInput:
			slot, stepRate, slotClass = 1, 1, "D3D11_INPUT_PER_INSTANCE_DATA"
		default:
			continue
		}

		semantics := memberSemantics(s.Kind, s.Members)
		offset := 0
		for i, m := range s.Members {
			name, index, err := splitSemantic(semantics[i])
			if err != nil {
				return "", err
			}
			if m.Type == "float4x4" {
				// A 4x4 matrix occupies four consecutive input-assembler
				// rows, one float4 each, with the semantic index bumped
				// per row.
				for row := 0; row < 4; row++ {
					entries = append(entries, fmt.Sprintf(
						"\t{ %q, %d, DXGI_FORMAT_R32G32B32A32_FLOAT, %d, %d, %s, %d },",
						name, index+row, slot, offset, slotClass, stepRate))
					offset += 16
				}
				continue
			}
			f, err := formatFor(m)
			if err != nil {
				return "", err
			}
			entries = append(entries, fmt.Sprintf(
				"\t{ %q, %d, %s, %d, %d, %s, %d },",
				name, index, f.name, slot, offset, slotClass, stepRate))
			offset += f.size
		}
	}

	b.WriteString("static D3D11_INPUT_ELEMENT_DESC InputLayout[] = {\n")
	b.WriteString(strings.Join(entries, "\n"))
	if len(entries) > 0 {
		b.WriteString("\n")
	}
	b.WriteString("};\n")
	return b.String(), nil
}

// splitSemantic breaks an HLSL semantic string like "TEXCOORD3" into
// its name and numeric index for the D3D11_INPUT_ELEMENT_DESC fields,
// which carry SemanticName and SemanticIndex separately.
func splitSemantic(sem string) (string, int, error) {
	i := len(sem)
	for i > 0 && sem[i-1] >= '0' && sem[i-1] <= '9' {
		i--
	}
	if i == len(sem) {
		return sem, 0, nil
	}
	var idx int
	if _, err := fmt.Sscanf(sem[i:], "%d", &idx); err != nil {
		return "", 0, fmt.Errorf("hlsl: malformed semantic %q", sem)
	}
	return sem[:i], idx, nil
}
