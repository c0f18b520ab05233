package parser

import "github.com/mantaforge/buildtool/shader/lexer"

// Shader is the fully parsed, validated representation of one
// `.shader` file: the node arena plus the resolved symbol tables,
// and the ordered list of top-level function IDs so codegen can
// traverse them in source order.
type Shader struct {
	Arena     *Arena
	Symbols   *SymbolTable
	FuncOrder []int
}

// Parse tokenizes and parses one shader source buffer into a Shader.
// path is used only for error messages.
func Parse(path string, src []byte) (*Shader, error) {
	p := &Parser{
		src:  src,
		path: path,
		lex:  lexer.New(src, lexer.Compiler),
		sym:  NewSymbolTable(),
		ar:   NewArena(),
	}
	p.tok = p.lex.Next()

	for p.tok.Kind != lexer.EOF {
		if err := p.parseDeclaration(); err != nil {
			return nil, err
		}
	}

	if err := validateEntries(p.sym); err != nil {
		return nil, err
	}

	return &Shader{Arena: p.ar, Symbols: p.sym, FuncOrder: p.funcOrder}, nil
}
