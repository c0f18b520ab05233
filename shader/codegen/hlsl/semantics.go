package hlsl

import (
	"fmt"

	"github.com/mantaforge/buildtool/shader/parser"
)

// memberSemantics returns the HLSL semantic string for every member of
// a struct, in declaration order: a counter per
// semantic class (POSITION0/TEXCOORD0/...) is incremented as members
// are visited; VertexOutput.position_out maps to SV_POSITION and
// FragmentOutput members map to their already-chosen target/depth
// binding instead of a counter.
func memberSemantics(kind parser.StructKind, members []parser.Member) []string {
	out := make([]string, len(members))
	position, texcoord := 0, 0

	for i, m := range members {
		switch kind {
		case parser.KindFragmentOutput:
			if m.TargetKind == "DEPTH" {
				out[i] = "SV_DEPTH"
			} else {
				out[i] = fmt.Sprintf("SV_TARGET%d", m.Target)
			}
		case parser.KindVertexOutput:
			if m.IsPosition {
				out[i] = "SV_POSITION"
			} else {
				out[i] = fmt.Sprintf("TEXCOORD%d", texcoord)
				texcoord++
			}
		default: // VertexInput, InstanceInput, FragmentInput
			if m.IsPosition {
				out[i] = fmt.Sprintf("POSITION%d", position)
				position++
			} else {
				out[i] = fmt.Sprintf("TEXCOORD%d", texcoord)
				texcoord++
			}
		}
	}
	return out
}
