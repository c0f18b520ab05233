package parser

import "github.com/mantaforge/buildtool/shader/lexer"

// peekAhead returns the token after the current one without consuming
// it, using the lexer's Back() stack for one extra token of lookahead.
func (p *Parser) peekAhead() lexer.Token {
	t := p.lex.Next()
	p.lex.Back(t)
	return t
}

func (p *Parser) isKnownType(name string) bool {
	_, ok := p.sym.TypeMap[name]
	return ok
}

// parseBlock parses `{ statement* }` into a StatementBlock node,
// opening and closing a lexical scope.
func (p *Parser) parseBlock() (NodeID, error) {
	if _, err := p.expectPunct("{"); err != nil {
		return NoNode, err
	}
	mark := p.sym.EnterScope()
	var stmts []NodeID
	for !p.tok.IsPunct("}") {
		s, err := p.parseStatement()
		if err != nil {
			return NoNode, err
		}
		stmts = append(stmts, s)
	}
	if _, err := p.expectPunct("}"); err != nil {
		return NoNode, err
	}
	p.sym.ExitScope(mark)
	return p.ar.add(Node{Kind: NStatementBlock, Statements: stmts, Line: p.tok.Line}), nil
}

func (p *Parser) parseStatement() (NodeID, error) {
	line := p.tok.Line

	if p.tok.IsPunct("{") {
		return p.parseBlock()
	}

	if p.tok.Kind == lexer.Ident && p.isKnownType(p.tok.Text) && p.peekAhead().Kind == lexer.Ident {
		return p.parseVariableDeclaration()
	}

	switch {
	case p.tok.IsKeyword("if"):
		return p.parseIf()
	case p.tok.IsKeyword("while"):
		return p.parseWhile()
	case p.tok.IsKeyword("do"):
		return p.parseDoWhile()
	case p.tok.IsKeyword("for"):
		return p.parseFor()
	case p.tok.IsKeyword("switch"):
		return p.parseSwitch()
	case p.tok.IsKeyword("return"):
		tok := p.next()
		var expr NodeID = NoNode
		if !p.tok.IsPunct(";") {
			e, err := p.parseExpression()
			if err != nil {
				return NoNode, err
			}
			expr = e
		}
		if _, err := p.expectPunct(";"); err != nil {
			return NoNode, err
		}
		return p.ar.add(Node{Kind: NReturn, Expr: expr, Line: tok.Line}), nil
	case p.tok.IsKeyword("break"):
		p.next()
		if _, err := p.expectPunct(";"); err != nil {
			return NoNode, err
		}
		return p.ar.add(Node{Kind: NBreak, Line: line}), nil
	case p.tok.IsKeyword("continue"):
		p.next()
		if _, err := p.expectPunct(";"); err != nil {
			return NoNode, err
		}
		return p.ar.add(Node{Kind: NContinue, Line: line}), nil
	case p.tok.IsKeyword("discard"):
		p.next()
		if _, err := p.expectPunct(";"); err != nil {
			return NoNode, err
		}
		return p.ar.add(Node{Kind: NDiscard, Line: line}), nil
	default:
		expr, err := p.parseExpression()
		if err != nil {
			return NoNode, err
		}
		if _, err := p.expectPunct(";"); err != nil {
			return NoNode, err
		}
		return p.ar.add(Node{Kind: NStatementExpression, Expr: expr, Line: line}), nil
	}
}

func (p *Parser) parseVariableDeclaration() (NodeID, error) {
	line := p.tok.Line
	typ, err := p.parseType()
	if err != nil {
		return NoNode, err
	}
	nameTok, err := p.expectIdent()
	if err != nil {
		return NoNode, err
	}
	varID := p.sym.PushVariable(VariableInfo{Name: nameTok.Text, Type: typ})

	var init NodeID = NoNode
	if p.tok.IsPunct("=") {
		p.next()
		e, err := p.parseExpression()
		if err != nil {
			return NoNode, err
		}
		init = e
	}
	if _, err := p.expectPunct(";"); err != nil {
		return NoNode, err
	}
	return p.ar.add(Node{Kind: NVariableDeclaration, VarID: varID, Type: typ, Expr: init, Line: line}), nil
}

func (p *Parser) parseIf() (NodeID, error) {
	tok := p.next()
	if _, err := p.expectPunct("("); err != nil {
		return NoNode, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return NoNode, err
	}
	if _, err := p.expectPunct(")"); err != nil {
		return NoNode, err
	}
	thenBlk, err := p.parseStatement()
	if err != nil {
		return NoNode, err
	}
	var elseBlk NodeID = NoNode
	if p.tok.IsKeyword("else") {
		p.next()
		e, err := p.parseStatement()
		if err != nil {
			return NoNode, err
		}
		elseBlk = e
	}
	return p.ar.add(Node{Kind: NIf, Cond: cond, Then: thenBlk, Else: elseBlk, Line: tok.Line}), nil
}

func (p *Parser) parseWhile() (NodeID, error) {
	tok := p.next()
	if _, err := p.expectPunct("("); err != nil {
		return NoNode, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return NoNode, err
	}
	if _, err := p.expectPunct(")"); err != nil {
		return NoNode, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return NoNode, err
	}
	return p.ar.add(Node{Kind: NWhile, Cond: cond, Then: body, Line: tok.Line}), nil
}

func (p *Parser) parseDoWhile() (NodeID, error) {
	tok := p.next()
	body, err := p.parseStatement()
	if err != nil {
		return NoNode, err
	}
	if _, err := p.expectKeyword("while"); err != nil {
		return NoNode, err
	}
	if _, err := p.expectPunct("("); err != nil {
		return NoNode, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return NoNode, err
	}
	if _, err := p.expectPunct(")"); err != nil {
		return NoNode, err
	}
	if _, err := p.expectPunct(";"); err != nil {
		return NoNode, err
	}
	return p.ar.add(Node{Kind: NDoWhile, Cond: cond, Then: body, Line: tok.Line}), nil
}

func (p *Parser) parseFor() (NodeID, error) {
	tok := p.next()
	if _, err := p.expectPunct("("); err != nil {
		return NoNode, err
	}
	mark := p.sym.EnterScope()

	var init NodeID = NoNode
	if !p.tok.IsPunct(";") {
		s, err := p.parseStatement()
		if err != nil {
			return NoNode, err
		}
		init = s
	} else {
		p.next()
	}

	var cond NodeID = NoNode
	if !p.tok.IsPunct(";") {
		c, err := p.parseExpression()
		if err != nil {
			return NoNode, err
		}
		cond = c
	}
	if _, err := p.expectPunct(";"); err != nil {
		return NoNode, err
	}

	var post NodeID = NoNode
	if !p.tok.IsPunct(")") {
		pe, err := p.parseExpression()
		if err != nil {
			return NoNode, err
		}
		post = pe
	}
	if _, err := p.expectPunct(")"); err != nil {
		return NoNode, err
	}

	body, err := p.parseStatement()
	if err != nil {
		return NoNode, err
	}
	p.sym.ExitScope(mark)
	return p.ar.add(Node{Kind: NFor, Init: init, Cond: cond, Post: post, Then: body, Line: tok.Line}), nil
}

func (p *Parser) parseSwitch() (NodeID, error) {
	tok := p.next()
	if _, err := p.expectPunct("("); err != nil {
		return NoNode, err
	}
	cond, err := p.parseExpression()
	if err != nil {
		return NoNode, err
	}
	if _, err := p.expectPunct(")"); err != nil {
		return NoNode, err
	}
	if _, err := p.expectPunct("{"); err != nil {
		return NoNode, err
	}
	var cases []NodeID
	for !p.tok.IsPunct("}") {
		switch {
		case p.tok.IsKeyword("case"):
			caseTok := p.next()
			val, err := p.parseExpression()
			if err != nil {
				return NoNode, err
			}
			if _, err := p.expectPunct(":"); err != nil {
				return NoNode, err
			}
			var stmts []NodeID
			for !p.tok.IsKeyword("case") && !p.tok.IsKeyword("default") && !p.tok.IsPunct("}") {
				s, err := p.parseStatement()
				if err != nil {
					return NoNode, err
				}
				stmts = append(stmts, s)
			}
			block := p.ar.add(Node{Kind: NStatementBlock, Statements: stmts, Line: caseTok.Line})
			cases = append(cases, p.ar.add(Node{Kind: NCase, Expr: val, Block: block, Line: caseTok.Line}))
		case p.tok.IsKeyword("default"):
			defTok := p.next()
			if _, err := p.expectPunct(":"); err != nil {
				return NoNode, err
			}
			var stmts []NodeID
			for !p.tok.IsKeyword("case") && !p.tok.IsKeyword("default") && !p.tok.IsPunct("}") {
				s, err := p.parseStatement()
				if err != nil {
					return NoNode, err
				}
				stmts = append(stmts, s)
			}
			block := p.ar.add(Node{Kind: NStatementBlock, Statements: stmts, Line: defTok.Line})
			cases = append(cases, p.ar.add(Node{Kind: NDefault, Block: block, Line: defTok.Line}))
		default:
			return NoNode, p.errf(p.tok, "expected 'case' or 'default', found %q", p.tok.Text)
		}
	}
	if _, err := p.expectPunct("}"); err != nil {
		return NoNode, err
	}
	return p.ar.add(Node{Kind: NSwitch, Cond: cond, Cases: cases, Line: tok.Line}), nil
}
