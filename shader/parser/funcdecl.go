package parser

// stageEntryNames is every recognized stage entry-point function
// name.
var stageEntryNames = map[string]bool{
	"vertex_main": true, "fragment_main": true, "compute_main": true,
	"ray_generate": true, "ray_hit_any": true, "ray_hit_closest": true,
	"ray_miss": true, "ray_intersection": true, "ray_callable": true,
}

// parseFunctionDecl parses `returnType name(params) { body }`. For
// compute_main the parameter list begins with three integer literals
// giving the thread-group dimensions before any named parameters.
func (p *Parser) parseFunctionDecl() error {
	retType, err := p.parseType()
	if err != nil {
		return err
	}
	nameTok, err := p.expectIdent()
	if err != nil {
		return err
	}

	if _, err := p.expectPunct("("); err != nil {
		return err
	}

	info := FunctionInfo{Name: nameTok.Text, ReturnType: retType, IsEntry: stageEntryNames[nameTok.Text]}

	if nameTok.Text == "compute_main" {
		for i := 0; i < 3; i++ {
			v, err := p.parseIntLiteral()
			if err != nil {
				return err
			}
			info.ThreadGroup[i] = v
			if i < 2 {
				if _, err := p.expectPunct(","); err != nil {
					return err
				}
			}
		}
		if p.tok.IsPunct(",") {
			p.next()
		}
	}

	for !p.tok.IsPunct(")") {
		paramType, err := p.parseType()
		if err != nil {
			return err
		}
		paramName, err := p.expectIdent()
		if err != nil {
			return err
		}
		info.Params = append(info.Params, Param{Name: paramName.Text, Type: paramType})
		if p.tok.IsPunct(",") {
			p.next()
		}
	}
	if _, err := p.expectPunct(")"); err != nil {
		return err
	}

	mark := p.sym.EnterScope()
	for _, param := range info.Params {
		p.sym.PushVariable(VariableInfo{Name: param.Name, Type: param.Type})
	}

	block, err := p.parseBlock()
	if err != nil {
		return err
	}
	info.Body = block
	p.sym.ExitScope(mark)

	if info.IsEntry {
		if err := p.validateEntrySignature(nameTok, info); err != nil {
			return err
		}
	}

	id := p.sym.AddFunction(info)
	p.funcOrder = append(p.funcOrder, id)
	return nil
}
