package parser

import (
	"strconv"
	"strings"

	"github.com/mantaforge/buildtool/shader/lexer"
)

var assignOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true,
	"&=": true, "|=": true, "^=": true, "<<=": true, ">>=": true,
}

func (p *Parser) parseExpression() (NodeID, error) { return p.parseAssignment() }

func (p *Parser) parseAssignment() (NodeID, error) {
	lhs, err := p.parseTernary()
	if err != nil {
		return NoNode, err
	}
	if p.tok.Kind == lexer.Punct && assignOps[p.tok.Text] {
		op := p.next()
		if !p.isAssignable(lhs) {
			return NoNode, p.errf(op, "left-hand side of %q must be an assignable, non-constant expression", op.Text)
		}
		rhs, err := p.parseAssignment()
		if err != nil {
			return NoNode, err
		}
		return p.ar.add(Node{Kind: NBinary, Op: op.Text, L: lhs, R: rhs, Line: op.Line}), nil
	}
	return lhs, nil
}

// isAssignable reports whether node is a valid assignment LHS: a
// variable reference, a member/swizzle access, or a subscript — never
// a literal or a compile-time-constant expression.
func (p *Parser) isAssignable(id NodeID) bool {
	n := p.ar.Get(id)
	switch n.Kind {
	case NVariable, NSwizzle:
		return true
	case NBinary:
		return n.Op == "[]"
	default:
		return false
	}
}

func (p *Parser) parseTernary() (NodeID, error) {
	cond, err := p.parseLogicalOr()
	if err != nil {
		return NoNode, err
	}
	if p.tok.IsPunct("?") {
		tok := p.next()
		a, err := p.parseAssignment()
		if err != nil {
			return NoNode, err
		}
		if _, err := p.expectPunct(":"); err != nil {
			return NoNode, err
		}
		b, err := p.parseAssignment()
		if err != nil {
			return NoNode, err
		}
		return p.ar.add(Node{Kind: NTernary, Cond: cond, A: a, B: b, Line: tok.Line}), nil
	}
	return cond, nil
}

// binaryLevel parses one left-associative precedence level: next is
// the tighter-binding level below it, and ops is the set of operator
// texts this level recognizes.
func (p *Parser) binaryLevel(ops map[string]bool, next func() (NodeID, error)) (NodeID, error) {
	lhs, err := next()
	if err != nil {
		return NoNode, err
	}
	for p.tok.Kind == lexer.Punct && ops[p.tok.Text] {
		op := p.next()
		rhs, err := next()
		if err != nil {
			return NoNode, err
		}
		lhs = p.ar.add(Node{Kind: NBinary, Op: op.Text, L: lhs, R: rhs, Line: op.Line})
	}
	return lhs, nil
}

var orOps = map[string]bool{"||": true}
var andOps = map[string]bool{"&&": true}
var bitOrOps = map[string]bool{"|": true}
var bitXorOps = map[string]bool{"^": true}
var bitAndOps = map[string]bool{"&": true}
var eqOps = map[string]bool{"==": true, "!=": true}
var cmpOps = map[string]bool{"<": true, ">": true, "<=": true, ">=": true}
var shiftOps = map[string]bool{"<<": true, ">>": true}
var addOps = map[string]bool{"+": true, "-": true}
var mulOps = map[string]bool{"*": true, "/": true, "%": true}

func (p *Parser) parseLogicalOr() (NodeID, error) { return p.binaryLevel(orOps, p.parseLogicalAnd) }
func (p *Parser) parseLogicalAnd() (NodeID, error) { return p.binaryLevel(andOps, p.parseBitOr) }
func (p *Parser) parseBitOr() (NodeID, error)     { return p.binaryLevel(bitOrOps, p.parseBitXor) }
func (p *Parser) parseBitXor() (NodeID, error)    { return p.binaryLevel(bitXorOps, p.parseBitAnd) }
func (p *Parser) parseBitAnd() (NodeID, error)    { return p.binaryLevel(bitAndOps, p.parseEquality) }
func (p *Parser) parseEquality() (NodeID, error)  { return p.binaryLevel(eqOps, p.parseComparison) }
func (p *Parser) parseComparison() (NodeID, error) { return p.binaryLevel(cmpOps, p.parseShift) }
func (p *Parser) parseShift() (NodeID, error)      { return p.binaryLevel(shiftOps, p.parseAdd) }
func (p *Parser) parseAdd() (NodeID, error)        { return p.binaryLevel(addOps, p.parseMul) }
func (p *Parser) parseMul() (NodeID, error)        { return p.binaryLevel(mulOps, p.parseUnary) }

var unaryOps = map[string]bool{"++": true, "--": true, "+": true, "-": true, "~": true, "!": true}

func (p *Parser) parseUnary() (NodeID, error) {
	if p.tok.Kind == lexer.Punct && unaryOps[p.tok.Text] {
		op := p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return NoNode, err
		}
		return p.ar.add(Node{Kind: NUnary, Op: op.Text, Expr: operand, Line: op.Line}), nil
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() (NodeID, error) {
	expr, err := p.parseMemberChain()
	if err != nil {
		return NoNode, err
	}
	for p.tok.IsPunct("++") || p.tok.IsPunct("--") {
		op := p.next()
		expr = p.ar.add(Node{Kind: NUnary, Op: "post" + op.Text, Expr: expr, Line: op.Line})
	}
	return expr, nil
}

// parseMemberChain handles '.' (dot, with swizzle detection) and '['
// subscript postfix operators, binding tighter than unary/postfix
// increment.E's precedence table.
func (p *Parser) parseMemberChain() (NodeID, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return NoNode, err
	}
	for {
		switch {
		case p.tok.IsPunct("."):
			p.next()
			fieldTok, err := p.expectIdent()
			if err != nil {
				return NoNode, err
			}
			expr = p.resolveDot(expr, fieldTok.Text, fieldTok.Line)
		case p.tok.IsPunct("["):
			tok := p.next()
			idx, err := p.parseExpression()
			if err != nil {
				return NoNode, err
			}
			if _, err := p.expectPunct("]"); err != nil {
				return NoNode, err
			}
			expr = p.ar.add(Node{Kind: NBinary, Op: "[]", L: expr, R: idx, Line: tok.Line})
		default:
			return expr, nil
		}
	}
}

// isSwizzle reports whether name is a valid swizzle mask: 1-4
// characters all drawn from the same component family (xyzw or
// rgba).
func isSwizzle(name string) bool {
	if len(name) == 0 || len(name) > 4 {
		return false
	}
	xyzw, rgba := true, true
	for _, c := range name {
		if !strings.ContainsRune("xyzw", c) {
			xyzw = false
		}
		if !strings.ContainsRune("rgba", c) {
			rgba = false
		}
	}
	return xyzw || rgba
}

// resolveDot implements "left-hand-side aware member resolution":
// swizzles are only legal on builtin vector primitives; everything
// else is a struct/buffer member access, which codegen rewrites to a
// namespaced identifier.
func (p *Parser) resolveDot(base NodeID, field string, line int) NodeID {
	baseNode := p.ar.Get(base)
	if baseNode.Kind == NVariable && isSwizzle(field) {
		varType := p.sym.Variables[baseNode.VarID].Type
		if typeID, ok := p.sym.TypeMap[varType]; ok && p.sym.Types[typeID].Lanes > 1 {
			return p.ar.add(Node{Kind: NSwizzle, L: base, Mask: field, Line: line})
		}
	}
	baseName := ""
	global := false
	memberType := ""
	if baseNode.Kind == NVariable {
		v := p.sym.Variables[baseNode.VarID]
		baseName = v.Name
		if kind, ok := p.structKindOf(v.Type); ok {
			global = kind == KindUniformBuffer || kind == KindConstantBuffer || kind == KindMutableBuffer
			if global {
				// Buffers are globals in the target language, not real
				// parameters: every reference namespaces by the
				// buffer's declared type, not the local parameter name,
				// so two functions taking the same buffer by different
				// parameter names still resolve to one identifier.
				baseName = v.Type
			}
		}
		memberType = p.memberType(v.Type, field)
	}
	sep := "."
	if global {
		sep = "_"
	}
	qualified := baseName + sep + field
	varID, ok := p.sym.FindVariable(qualified)
	if !ok {
		varID = p.sym.PushVariable(VariableInfo{Name: qualified, Type: memberType})
	}
	return p.ar.add(Node{Kind: NVariable, VarID: varID, Line: line})
}

// memberType looks up field's declared type within structTypeName's
// member list, so a chained access like a.b.xyzw can still resolve
// its second dot as a swizzle once b's own type is known.
func (p *Parser) memberType(structTypeName, field string) string {
	id, ok := p.sym.TypeMap[structTypeName]
	if !ok || !p.sym.Types[id].IsStruct {
		return ""
	}
	for _, m := range p.sym.Structs[p.sym.Types[id].StructID].Members {
		if m.Name == field {
			return m.Type
		}
	}
	return ""
}

func (p *Parser) parsePrimary() (NodeID, error) {
	tok := p.tok

	switch {
	case tok.IsPunct("("):
		p.next()
		inner, err := p.parseExpression()
		if err != nil {
			return NoNode, err
		}
		if _, err := p.expectPunct(")"); err != nil {
			return NoNode, err
		}
		return p.ar.add(Node{Kind: NGroup, Expr: inner, Line: tok.Line}), nil

	case tok.Kind == lexer.Integer:
		p.next()
		v, err := parseIntText(tok.Text)
		if err != nil {
			return NoNode, p.errf(tok, "malformed integer literal %q", tok.Text)
		}
		return p.ar.add(Node{Kind: NInteger, IntValue: int64(v), Line: tok.Line}), nil

	case tok.Kind == lexer.Number:
		p.next()
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			return NoNode, p.errf(tok, "malformed number literal %q", tok.Text)
		}
		return p.ar.add(Node{Kind: NNumber, NumValue: v, Line: tok.Line}), nil

	case tok.IsKeyword("true") || tok.IsKeyword("false"):
		p.next()
		return p.ar.add(Node{Kind: NBoolean, BoolValue: tok.Text == "true", Line: tok.Line}), nil

	case tok.Kind == lexer.Ident:
		return p.parseIdentPrimary()

	default:
		return NoNode, p.errf(tok, "unexpected token %q in expression", tok.Text)
	}
}

// parseIdentPrimary resolves a bare identifier as a function call, a
// type cast, a texture reference, or a plain variable.
func (p *Parser) parseIdentPrimary() (NodeID, error) {
	tok := p.next()

	if p.tok.IsPunct("(") {
		p.next()
		var args []NodeID
		for !p.tok.IsPunct(")") {
			a, err := p.parseAssignment()
			if err != nil {
				return NoNode, err
			}
			args = append(args, a)
			if p.tok.IsPunct(",") {
				p.next()
			}
		}
		if _, err := p.expectPunct(")"); err != nil {
			return NoNode, err
		}
		if _, ok := p.sym.TypeMap[tok.Text]; ok {
			return p.ar.add(Node{Kind: NCast, CastType: tok.Text, Args: args, Line: tok.Line}), nil
		}
		fnID, ok := p.sym.FunctionMap[tok.Text]
		if !ok {
			fnID = p.sym.AddFunction(FunctionInfo{Name: tok.Text})
		}
		return p.ar.add(Node{Kind: NFunctionCall, FnID: fnID, Args: args, Line: tok.Line}), nil
	}

	if texID, ok := p.sym.TextureMap[tok.Text]; ok {
		return p.ar.add(Node{Kind: NTexture, TexID: texID, Line: tok.Line}), nil
	}

	varID, ok := p.sym.FindVariable(tok.Text)
	if !ok {
		varID = p.sym.PushVariable(VariableInfo{Name: tok.Text})
	}
	return p.ar.add(Node{Kind: NVariable, VarID: varID, Line: tok.Line}), nil
}
