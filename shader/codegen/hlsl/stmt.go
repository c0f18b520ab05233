package hlsl

import "github.com/mantaforge/buildtool/shader/parser"

// writeStatement emits one statement node, recursing into nested
// blocks. Block-shaped children (If/While/For/...) reuse writeBlock
// when their body is itself a StatementBlock, and fall back to a
// single indented statement otherwise (a bare `if (x) y = 1;`).
func (g *generator) writeStatement(id parser.NodeID) {
	n := g.sh.Arena.Get(id)
	switch n.Kind {
	case parser.NStatementBlock:
		g.writeBlock(id)
	case parser.NStatementExpression:
		g.printf("%s;\n", g.exprText(n.Expr))
	case parser.NVariableDeclaration:
		v := g.sh.Symbols.Variables[n.VarID]
		if n.Expr != parser.NoNode {
			g.printf("%s %s = %s;\n", hlslType(v.Type), g.variableName(n.VarID), g.exprText(n.Expr))
		} else {
			g.printf("%s %s;\n", hlslType(v.Type), g.variableName(n.VarID))
		}
	case parser.NIf:
		g.printf("if (%s) ", g.exprText(n.Cond))
		g.writeControlBody(n.Then)
		if n.Else != parser.NoNode {
			g.printf("else ")
			g.writeControlBody(n.Else)
		}
	case parser.NWhile:
		g.printf("while (%s) ", g.exprText(n.Cond))
		g.writeControlBody(n.Then)
	case parser.NDoWhile:
		g.printf("do ")
		g.writeControlBody(n.Then)
		g.printf("while (%s);\n", g.exprText(n.Cond))
	case parser.NFor:
		g.printf("for (%s; %s; %s) ", g.forClauseText(n.Init), g.optExprText(n.Cond), g.optExprText(n.Post))
		g.writeControlBody(n.Then)
	case parser.NSwitch:
		g.printf("switch (%s) {\n", g.exprText(n.Cond))
		g.indent++
		for _, c := range n.Cases {
			g.writeCase(c)
		}
		g.indent--
		g.line("}")
	case parser.NReturn:
		if n.Expr != parser.NoNode {
			g.printf("return %s;\n", g.exprText(n.Expr))
		} else {
			g.line("return;")
		}
	case parser.NBreak:
		g.line("break;")
	case parser.NContinue:
		g.line("continue;")
	case parser.NDiscard:
		g.line("discard;")
	}
}

// writeControlBody writes an If/While/For/DoWhile body, which may be
// a full block or a single bare statement.
func (g *generator) writeControlBody(id parser.NodeID) {
	if g.sh.Arena.Get(id).Kind == parser.NStatementBlock {
		g.writeBlock(id)
		return
	}
	g.buf.WriteString("\n")
	g.indent++
	g.writeStatement(id)
	g.indent--
}

func (g *generator) writeBlock(id parser.NodeID) {
	n := g.sh.Arena.Get(id)
	g.buf.WriteString("{\n")
	g.indent++
	for _, s := range n.Statements {
		g.writeStatement(s)
	}
	g.indent--
	g.line("}")
}

func (g *generator) writeCase(id parser.NodeID) {
	n := g.sh.Arena.Get(id)
	if n.Kind == parser.NDefault {
		g.line("default:")
	} else {
		g.printf("case %s:\n", g.exprText(n.Expr))
	}
	g.indent++
	for _, s := range g.sh.Arena.Get(n.Block).Statements {
		g.writeStatement(s)
	}
	g.indent--
}

func (g *generator) forClauseText(id parser.NodeID) string {
	if id == parser.NoNode {
		return ""
	}
	n := g.sh.Arena.Get(id)
	if n.Kind == parser.NVariableDeclaration {
		v := g.sh.Symbols.Variables[n.VarID]
		if n.Expr != parser.NoNode {
			return hlslType(v.Type) + " " + g.variableName(n.VarID) + " = " + g.exprText(n.Expr)
		}
		return hlslType(v.Type) + " " + g.variableName(n.VarID)
	}
	if n.Kind == parser.NStatementExpression {
		return g.exprText(n.Expr)
	}
	return ""
}

func (g *generator) optExprText(id parser.NodeID) string {
	if id == parser.NoNode {
		return ""
	}
	return g.exprText(id)
}
