package parser

import (
	"fmt"
	"strings"

	"github.com/mantaforge/buildtool/shader/lexer"
)

// Parser drives recursive-descent parsing over one token stream,
// building nodes into ar and registering declarations into sym
// and registering declarations into sym.
type Parser struct {
	src  []byte
	path string
	lex  *lexer.Lexer
	tok  lexer.Token

	sym *SymbolTable
	ar  *Arena

	funcOrder []int
}

func (p *Parser) next() lexer.Token {
	cur := p.tok
	p.tok = p.lex.Next()
	return cur
}

// errf renders a fatal syntax/semantic error with the offending
// source line and a caret under the token's column.
func (p *Parser) errf(tok lexer.Token, format string, args ...any) error {
	line := lexer.Line(p.src, lineOffset(p.src, tok.Line))
	caret := strings.Repeat(" ", max(tok.Col-1, 0)) + "^"
	reason := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s:%d:%d: %s\n%s\n%s", p.path, tok.Line, tok.Col, reason, line, caret)
}

// lineOffset returns the byte offset of the first character of line
// number n (1-based) within src.
func lineOffset(src []byte, n int) int {
	if n <= 1 {
		return 0
	}
	line := 1
	for i, b := range src {
		if b == '\n' {
			line++
			if line == n {
				return i + 1
			}
		}
	}
	return len(src)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (p *Parser) expectPunct(text string) (lexer.Token, error) {
	if !p.tok.IsPunct(text) {
		return p.tok, p.errf(p.tok, "expected %q, found %q", text, p.tok.Text)
	}
	return p.next(), nil
}

func (p *Parser) expectIdent() (lexer.Token, error) {
	if p.tok.Kind != lexer.Ident {
		return p.tok, p.errf(p.tok, "expected identifier, found %q", p.tok.Text)
	}
	return p.next(), nil
}

func (p *Parser) expectKeyword(name string) (lexer.Token, error) {
	if !p.tok.IsKeyword(name) {
		return p.tok, p.errf(p.tok, "expected keyword %q, found %q", name, p.tok.Text)
	}
	return p.next(), nil
}

// parseType consumes one type name: a builtin primitive, a
// previously declared struct, or (inside parameter lists) a struct
// kind keyword itself acting as a type reference.
func (p *Parser) parseType() (string, error) {
	if p.tok.Kind == lexer.Keyword && structKindNames[p.tok.Text] {
		return p.next().Text, nil
	}
	if p.tok.Kind == lexer.Keyword && textureTypeNames[p.tok.Text] {
		return p.next().Text, nil
	}
	if p.tok.Kind != lexer.Ident {
		return "", p.errf(p.tok, "expected a type name, found %q", p.tok.Text)
	}
	return p.next().Text, nil
}

var structKindKeyword = map[string]StructKind{
	"struct":          KindStruct,
	"shared_struct":   KindSharedStruct,
	"uniform_buffer":  KindUniformBuffer,
	"constant_buffer": KindConstantBuffer,
	"mutable_buffer":  KindMutableBuffer,
	"instance_input":  KindInstanceInput,
	"vertex_input":    KindVertexInput,
	"vertex_output":   KindVertexOutput,
	"fragment_input":  KindFragmentInput,
	"fragment_output": KindFragmentOutput,
}

var structKindNames = func() map[string]bool {
	m := map[string]bool{}
	for k := range structKindKeyword {
		m[k] = true
	}
	return m
}()

var textureTypeNames = map[string]bool{
	"texture1d": true, "texture2d": true, "texture3d": true,
	"texture_cube": true, "texture2d_array": true,
}

// parseDeclaration parses one top-level declaration: a struct-like
// kind, a texture, or a function.
func (p *Parser) parseDeclaration() error {
	if p.tok.Kind == lexer.Keyword {
		if kind, ok := structKindKeyword[p.tok.Text]; ok {
			return p.parseStructLike(kind)
		}
		if textureTypeNames[p.tok.Text] {
			return p.parseTextureDecl()
		}
	}
	return p.parseFunctionDecl()
}
