package hlsl

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mantaforge/buildtool/shader/parser"
)

func (g *generator) variableName(varID int) string {
	return Escape(g.sh.Symbols.Variables[varID].Name)
}

func (g *generator) textureName(texID int) string {
	return Escape(g.sh.Symbols.Textures[texID].Name)
}

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// exprText renders one expression node as HLSL source text.
func (g *generator) exprText(id parser.NodeID) string {
	n := g.sh.Arena.Get(id)
	switch n.Kind {
	case parser.NInteger:
		return fmt.Sprintf("%d", n.IntValue)
	case parser.NNumber:
		return formatFloat(n.NumValue)
	case parser.NBoolean:
		if n.BoolValue {
			return "true"
		}
		return "false"
	case parser.NVariable:
		return g.variableName(n.VarID)
	case parser.NTexture:
		return g.textureName(n.TexID)
	case parser.NSwizzle:
		return g.exprText(n.L) + "." + n.Mask
	case parser.NGroup:
		return "(" + g.exprText(n.Expr) + ")"
	case parser.NCast:
		return fmt.Sprintf("%s(%s)", hlslType(n.CastType), g.exprList(n.Args))
	case parser.NFunctionCall:
		return g.functionCallText(n)
	case parser.NBinary:
		return g.binaryText(n)
	case parser.NUnary:
		return g.unaryText(n)
	case parser.NTernary:
		return fmt.Sprintf("%s ? %s : %s", g.exprText(n.Cond), g.exprText(n.A), g.exprText(n.B))
	default:
		return "/* unsupported expression */"
	}
}

func (g *generator) exprList(ids []parser.NodeID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = g.exprText(id)
	}
	return strings.Join(parts, ", ")
}

func (g *generator) functionCallText(n *parser.Node) string {
	fn := g.sh.Symbols.Functions[n.FnID]
	args := make([]string, len(n.Args))
	for i, a := range n.Args {
		args[i] = g.exprText(a)
	}

	if fn.Body == parser.NoNode {
		if text, ok := rewriteCall(fn.Name, args); ok {
			if usesTexture(fn.Name) {
				g.usedSampler = true
			}
			return text
		}
		// Unmapped builtin: HLSL already has an intrinsic of this exact
		// name (dot, cross, lerp, normalize, ...), so pass it through
		// verbatim rather than escaping it like a user declaration.
		return fmt.Sprintf("%s(%s)", fn.Name, strings.Join(args, ", "))
	}

	callArgs := append([]string{"sv"}, args...)
	return fmt.Sprintf("%s(%s)", Escape(fn.Name), strings.Join(callArgs, ", "))
}

func (g *generator) binaryText(n *parser.Node) string {
	if n.Op == "[]" {
		return fmt.Sprintf("%s[%s]", g.exprText(n.L), g.exprText(n.R))
	}
	return fmt.Sprintf("%s %s %s", g.exprText(n.L), n.Op, g.exprText(n.R))
}

func (g *generator) unaryText(n *parser.Node) string {
	switch n.Op {
	case "post++", "post--":
		return g.exprText(n.Expr) + n.Op[4:]
	default:
		return n.Op + g.exprText(n.Expr)
	}
}
