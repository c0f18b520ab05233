package parser

import (
	"fmt"

	"github.com/mantaforge/buildtool/shader/lexer"
)

// validateEntrySignature enforces the stage entry-point parameter
// ordering rules at the point a `vertex_main`/`fragment_main`
// declaration is parsed.
func (p *Parser) validateEntrySignature(nameTok lexer.Token, info FunctionInfo) error {
	switch info.Name {
	case "vertex_main":
		return p.validateVertexMain(nameTok, info)
	case "fragment_main":
		return p.validateFragmentMain(nameTok, info)
	case "compute_main":
		return nil // leading thread-group triple already enforced by the caller
	default:
		return nil // ray_* entries have no further positional constraints here
	}
}

func (p *Parser) structKindOf(typeName string) (StructKind, bool) {
	id, ok := p.sym.TypeMap[typeName]
	if !ok || !p.sym.Types[id].IsStruct {
		return 0, false
	}
	return p.sym.Structs[p.sym.Types[id].StructID].Kind, true
}

func (p *Parser) validateVertexMain(nameTok lexer.Token, info FunctionInfo) error {
	if len(info.Params) < 2 {
		return p.errf(nameTok, "vertex_main() requires at least (vertex_input, vertex_output)")
	}
	if kind, ok := p.structKindOf(info.Params[0].Type); !ok || kind != KindVertexInput {
		return p.errf(nameTok, "vertex_main() first parameter must be type 'vertex_input'")
	}
	if kind, ok := p.structKindOf(info.Params[1].Type); !ok || kind != KindVertexOutput {
		return p.errf(nameTok, "vertex_main() second parameter must be type 'vertex_output'")
	}
	instanceInputs := 0
	for _, param := range info.Params[2:] {
		kind, ok := p.structKindOf(param.Type)
		if !ok {
			return p.errf(nameTok, "vertex_main() parameter %q has unrecognized type %q", param.Name, param.Type)
		}
		switch kind {
		case KindInstanceInput:
			instanceInputs++
			if instanceInputs > 1 {
				return p.errf(nameTok, "vertex_main() allows at most one instance_input parameter")
			}
		case KindUniformBuffer, KindConstantBuffer, KindMutableBuffer:
			// buffers are permitted anywhere after the first two
		default:
			return p.errf(nameTok, "vertex_main() parameter %q must be instance_input or a buffer type", param.Name)
		}
	}
	return nil
}

func (p *Parser) validateFragmentMain(nameTok lexer.Token, info FunctionInfo) error {
	if len(info.Params) < 2 {
		return p.errf(nameTok, "fragment_main() requires at least (fragment_input, fragment_output)")
	}
	if kind, ok := p.structKindOf(info.Params[0].Type); !ok || kind != KindFragmentInput {
		return p.errf(nameTok, "fragment_main() first parameter must be type 'fragment_input'")
	}
	if kind, ok := p.structKindOf(info.Params[1].Type); !ok || kind != KindFragmentOutput {
		return p.errf(nameTok, "fragment_main() second parameter must be type 'fragment_output'")
	}
	for _, param := range info.Params[2:] {
		kind, ok := p.structKindOf(param.Type)
		if !ok || (kind != KindUniformBuffer && kind != KindConstantBuffer && kind != KindMutableBuffer) {
			return p.errf(nameTok, "fragment_main() parameter %q must be a buffer type", param.Name)
		}
	}
	return nil
}

// validateEntries runs whole-shader checks once every declaration has
// been parsed: at most one of each stage entry point may be declared.
func validateEntries(sym *SymbolTable) error {
	seen := map[string]bool{}
	for _, fn := range sym.Functions {
		if !fn.IsEntry {
			continue
		}
		if seen[fn.Name] {
			return fmt.Errorf("shader: stage entry point %q declared more than once", fn.Name)
		}
		seen[fn.Name] = true
	}
	return nil
}
