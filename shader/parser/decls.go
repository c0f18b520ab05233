package parser

import (
	"github.com/mantaforge/buildtool/shader/lexer"
)

// requiresSlot reports whether kind is one of the buffer kinds that
// must carry a `(slot[,size])` binding.
func requiresSlot(kind StructKind) bool {
	switch kind {
	case KindUniformBuffer, KindConstantBuffer, KindMutableBuffer:
		return true
	default:
		return false
	}
}

// parseStructLike parses `KEYWORD Name [(slot[,size])] { members... }`
// for any of the ten struct-like declaration kinds.
func (p *Parser) parseStructLike(kind StructKind) error {
	kwTok := p.tok
	p.next() // consume the kind keyword

	nameTok, err := p.expectIdent()
	if err != nil {
		return err
	}

	info := StructInfo{Name: nameTok.Text, Kind: kind, Slot: -1}

	if requiresSlot(kind) {
		if _, err := p.expectPunct("("); err != nil {
			return err
		}
		slotTok, err := p.parseIntLiteral()
		if err != nil {
			return err
		}
		info.Slot = slotTok
		if p.tok.IsPunct(",") {
			p.next()
			size, err := p.parseIntLiteral()
			if err != nil {
				return err
			}
			info.Size = size
		}
		if _, err := p.expectPunct(")"); err != nil {
			return err
		}
		class := "buffer"
		if err := p.sym.BufferSlots.Claim(info.Slot, class); err != nil {
			return p.errf(kwTok, "%s", err.Error())
		}
	}

	if _, err := p.expectPunct("{"); err != nil {
		return err
	}
	for !p.tok.IsPunct("}") {
		m, err := p.parseMember()
		if err != nil {
			return err
		}
		if err := p.validateMemberType(kind, m); err != nil {
			return err
		}
		info.Members = append(info.Members, m)
	}
	if _, err := p.expectPunct("}"); err != nil {
		return err
	}

	p.sym.AddStruct(info)
	return nil
}

// validateMemberType enforces the per-kind member type rules:
// instance_input members must be a primitive or 4x4 matrix;
// vertex_input members must be a primitive of at most 4 lanes (no
// matrices); buffer members must be primitive or shared_struct.
func (p *Parser) validateMemberType(kind StructKind, m Member) error {
	typeID, ok := p.sym.TypeMap[m.Type]
	if !ok {
		return nil // unresolved type names are reported by later passes
	}
	info := p.sym.Types[typeID]

	switch kind {
	case KindInstanceInput:
		if info.IsStruct && info.Lanes == 0 {
			return p.errf(p.tok, "instance_input member %q must be a primitive or float4x4, found %q", m.Name, m.Type)
		}
	case KindVertexInput:
		if info.IsStruct || info.Lanes > 4 {
			return p.errf(p.tok, "vertex_input member %q must be a primitive of at most 4 lanes, found %q", m.Name, m.Type)
		}
	case KindUniformBuffer, KindConstantBuffer, KindMutableBuffer:
		if info.IsStruct {
			structKind := p.sym.Structs[info.StructID].Kind
			if structKind != KindSharedStruct {
				return p.errf(p.tok, "buffer member %q must be primitive or shared_struct, found %q", m.Name, m.Type)
			}
		}
	}
	return nil
}

// parseMember parses one struct field: optional position_in/
// position_out, a type, a name, and an optional trailing
// target(slot,KIND) or packed_as(FMT) attribute, terminated by ';'.
func (p *Parser) parseMember() (Member, error) {
	var m Member
	m.Target = -1

	if p.tok.IsKeyword("position_in") || p.tok.IsKeyword("position_out") {
		m.IsPosition = true
		p.next()
	}

	typ, err := p.parseType()
	if err != nil {
		return m, err
	}
	m.Type = typ

	nameTok, err := p.expectIdent()
	if err != nil {
		return m, err
	}
	m.Name = nameTok.Text

	for p.tok.IsKeyword("target") || p.tok.IsKeyword("packed_as") {
		attr := p.next()
		if _, err := p.expectPunct("("); err != nil {
			return m, err
		}
		if attr.Text == "target" {
			slot, err := p.parseIntLiteral()
			if err != nil {
				return m, err
			}
			if _, err := p.expectPunct(","); err != nil {
				return m, err
			}
			kindTok, err := p.expectIdent()
			if err != nil {
				return m, err
			}
			if kindTok.Text != "COLOR" && kindTok.Text != "DEPTH" {
				return m, p.errf(kindTok, "target() kind must be COLOR or DEPTH, found %q", kindTok.Text)
			}
			m.Target = slot
			m.TargetKind = kindTok.Text
			class, set := "target", &p.sym.TargetSlots
			if kindTok.Text == "DEPTH" {
				class, set = "depth", &p.sym.DepthSlots
				if slot != 0 {
					return m, p.errf(attr, "DEPTH target must bind slot 0")
				}
			}
			if err := set.Claim(slot, class); err != nil {
				return m, p.errf(attr, "%s", err.Error())
			}
		} else {
			fmtTok, err := p.expectIdent()
			if err != nil {
				return m, err
			}
			if !lexer.IsFormatTag(fmtTok.Text) {
				return m, p.errf(fmtTok, "packed_as() requires a pixel-format tag, found %q", fmtTok.Text)
			}
			m.PackedAs = fmtTok.Text
		}
		if _, err := p.expectPunct(")"); err != nil {
			return m, err
		}
	}

	if _, err := p.expectPunct(";"); err != nil {
		return m, err
	}
	return m, nil
}

// parseTextureDecl parses `texture2d Name(slot);` and its sibling
// texture kinds, claiming a texture slot.
func (p *Parser) parseTextureDecl() error {
	typeTok := p.next()
	nameTok, err := p.expectIdent()
	if err != nil {
		return err
	}
	if _, err := p.expectPunct("("); err != nil {
		return err
	}
	slot, err := p.parseIntLiteral()
	if err != nil {
		return err
	}
	if _, err := p.expectPunct(")"); err != nil {
		return err
	}
	if _, err := p.expectPunct(";"); err != nil {
		return err
	}
	if err := p.sym.TextureSlots.Claim(slot, "texture"); err != nil {
		return p.errf(typeTok, "%s", err.Error())
	}
	p.sym.AddTexture(TextureInfo{Name: nameTok.Text, Type: typeTok.Text, Slot: slot})
	return nil
}

func (p *Parser) parseIntLiteral() (int, error) {
	if p.tok.Kind != lexer.Integer {
		return 0, p.errf(p.tok, "expected an integer literal, found %q", p.tok.Text)
	}
	tok := p.next()
	v, err := parseIntText(tok.Text)
	if err != nil {
		return 0, p.errf(tok, "malformed integer literal %q", tok.Text)
	}
	return v, nil
}
