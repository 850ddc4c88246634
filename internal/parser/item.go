package parser

import (
	"strconv"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/token"
)

// parseItem parses one top-level declaration, or nil after a recovery skip.
func (p *Parser) parseItem() ast.Item {
	anns := p.parseAnnotations()
	quals := p.parseQuals()

	switch p.tok().Kind {
	case token.KwClass:
		return p.parseClassLike(ast.KindClass, quals, anns)
	case token.KwStruct:
		return p.parseClassLike(ast.KindStruct, quals, anns)
	case token.KwInterface:
		return p.parseClassLike(ast.KindInterface, quals, anns)
	case token.KwEnum:
		return p.parseEnum(quals, anns)
	case token.KwFunc:
		return p.parseFunc(quals, anns)
	case token.KwLet:
		return p.parseField(quals, anns)
	case token.KwImpl:
		return p.parseImpl()
	default:
		p.errHere(diag.SynUnexpectedTopLevel, "expected a declaration")
		p.bump()
		p.syncTopLevel()
		return nil
	}
}

func (p *Parser) parseAnnotations() []ast.Annotation {
	var anns []ast.Annotation
	for p.at(token.At) {
		start := p.bump().Span
		name, ok := p.expectIdent()
		if !ok {
			p.syncTopLevel()
			return anns
		}
		ann := ast.Annotation{Span: start.Cover(name.Span), Name: name.Text}
		if p.at(token.LParen) {
			p.bump()
			for !p.at(token.RParen) && !p.at(token.EOF) {
				ann.Args = append(ann.Args, p.parseExpr())
				if !p.eat(token.Comma) {
					break
				}
			}
			if end, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')'"); ok {
				ann.Span = ann.Span.Cover(end.Span)
			}
		}
		anns = append(anns, ann)
	}
	return anns
}

func (p *Parser) parseQuals() ast.Quals {
	var quals ast.Quals
	for p.tok().IsQualifier() {
		switch p.bump().Kind {
		case token.KwAbstract:
			quals |= ast.QualAbstract
		case token.KwFinal:
			quals |= ast.QualFinal
		case token.KwStatic:
			quals |= ast.QualStatic
		case token.KwNative:
			quals |= ast.QualNative
		case token.KwPersistent:
			quals |= ast.QualPersistent
		case token.KwConst:
			quals |= ast.QualConst
		case token.KwPublic:
			quals |= ast.QualPublic
		case token.KwProtected:
			quals |= ast.QualProtected
		case token.KwPrivate:
			quals |= ast.QualPrivate
		}
	}
	return quals
}

func (p *Parser) parseClassLike(kind ast.ClassKind, quals ast.Quals, anns []ast.Annotation) ast.Item {
	start := p.bump().Span // class/struct/interface keyword
	name, ok := p.expectIdent()
	if !ok {
		p.syncTopLevel()
		return nil
	}

	decl := &ast.ClassDecl{
		Span:        start,
		NameSpan:    name.Span,
		Name:        name.Text,
		Kind:        kind,
		Quals:       quals,
		Annotations: anns,
	}
	if p.at(token.Lt) {
		decl.TypeParams = p.parseTypeParams()
	}
	if p.eat(token.KwExtends) {
		decl.Base = p.parseNamedType()
	}
	if p.eat(token.KwImplements) {
		for {
			iface := p.parseNamedType()
			if iface == nil {
				break
			}
			decl.Implements = append(decl.Implements, iface)
			if !p.eat(token.Comma) {
				break
			}
		}
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'"); !ok {
		p.syncTopLevel()
		return decl
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		member := p.parseMember()
		if member != nil {
			decl.Members = append(decl.Members, member)
		}
	}
	if end, ok := p.expect(token.RBrace, diag.SynUnexpectedToken, "expected '}'"); ok {
		decl.Span = decl.Span.Cover(end.Span)
	}
	return decl
}

func (p *Parser) parseMember() ast.Member {
	anns := p.parseAnnotations()
	quals := p.parseQuals()

	switch p.tok().Kind {
	case token.KwFunc:
		fn, _ := p.parseFunc(quals, anns).(*ast.FuncDecl)
		return fn
	case token.KwLet:
		field, _ := p.parseField(quals, anns).(*ast.FieldDecl)
		return field
	default:
		p.errHere(diag.SynExpectMember, "expected a field or method declaration")
		p.bump()
		p.syncMember()
		return nil
	}
}

// parseTypeParams parses `<T, +U, -V: Base + Show>`.
func (p *Parser) parseTypeParams() []ast.TypeParam {
	p.bump() // '<'
	var params []ast.TypeParam
	for !p.at(token.Gt) && !p.at(token.EOF) {
		variance := ast.Invariant
		start := p.tok().Span
		switch p.tok().Kind {
		case token.Plus:
			variance = ast.Covariant
			p.bump()
		case token.Minus:
			variance = ast.Contravariant
			p.bump()
		}
		name, ok := p.expectIdent()
		if !ok {
			break
		}
		tp := ast.TypeParam{
			Span:     start.Cover(name.Span),
			NameSpan: name.Span,
			Name:     name.Text,
			Variance: variance,
		}
		if p.eat(token.Colon) {
			for {
				bound := p.parseType()
				if bound == nil {
					break
				}
				tp.Bounds = append(tp.Bounds, bound)
				tp.Span = tp.Span.Cover(ast.TypeExprSpan(bound))
				if !p.eat(token.Plus) {
					break
				}
			}
		}
		params = append(params, tp)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.Gt, diag.SynUnexpectedToken, "expected '>'")
	return params
}

func (p *Parser) parseEnum(quals ast.Quals, anns []ast.Annotation) ast.Item {
	start := p.bump().Span // enum
	name, ok := p.expectIdent()
	if !ok {
		p.syncTopLevel()
		return nil
	}
	decl := &ast.EnumDecl{
		Span:        start,
		NameSpan:    name.Span,
		Name:        name.Text,
		Quals:       quals,
		Annotations: anns,
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'"); !ok {
		p.syncTopLevel()
		return decl
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		vname, ok := p.expectIdent()
		if !ok {
			p.syncMember()
			continue
		}
		variant := ast.EnumVariant{Span: vname.Span, Name: vname.Text}
		if p.eat(token.Assign) {
			neg := p.eat(token.Minus)
			if lit, ok := p.expect(token.IntLit, diag.SynUnexpectedToken, "expected an integer value"); ok {
				value, err := strconv.ParseInt(lit.Text, 10, 64)
				if err == nil {
					if neg {
						value = -value
					}
					variant.HasValue = true
					variant.Value = value
				}
				variant.Span = variant.Span.Cover(lit.Span)
			}
		}
		decl.Variants = append(decl.Variants, variant)
		if !p.eat(token.Comma) {
			break
		}
	}
	if end, ok := p.expect(token.RBrace, diag.SynUnexpectedToken, "expected '}'"); ok {
		decl.Span = decl.Span.Cover(end.Span)
	}
	return decl
}

func (p *Parser) parseFunc(quals ast.Quals, anns []ast.Annotation) ast.Item {
	start := p.bump().Span // func
	name, ok := p.expectIdent()
	if !ok {
		p.syncMember()
		return nil
	}
	decl := &ast.FuncDecl{
		Span:        start,
		NameSpan:    name.Span,
		Name:        name.Text,
		Quals:       quals,
		Annotations: anns,
	}
	if p.at(token.Lt) {
		decl.TypeParams = p.parseTypeParams()
	}

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '('"); ok {
		for !p.at(token.RParen) && !p.at(token.EOF) {
			pname, ok := p.expectIdent()
			if !ok {
				break
			}
			param := ast.Param{Span: pname.Span, NameSpan: pname.Span, Name: pname.Text}
			if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':'"); ok {
				param.Type = p.parseType()
				if param.Type != nil {
					param.Span = param.Span.Cover(ast.TypeExprSpan(param.Type))
				}
			}
			decl.Params = append(decl.Params, param)
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')'")
	}

	if p.eat(token.Arrow) {
		decl.Return = p.parseType()
	}

	if p.at(token.LBrace) {
		decl.Body = p.parseBlock()
		if decl.Body != nil {
			decl.Span = decl.Span.Cover(decl.Body.Span)
		}
	} else {
		// Bodyless declaration, closed by an optional ';'. Whether a body
		// was required is the member checker's call.
		p.eat(token.Semicolon)
	}
	return decl
}

func (p *Parser) parseField(quals ast.Quals, anns []ast.Annotation) ast.Item {
	start := p.bump().Span // let
	name, ok := p.expectIdent()
	if !ok {
		p.syncMember()
		return nil
	}
	decl := &ast.FieldDecl{
		Span:        start.Cover(name.Span),
		NameSpan:    name.Span,
		Name:        name.Text,
		Quals:       quals,
		Annotations: anns,
	}
	if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':'"); ok {
		decl.Type = p.parseType()
		if decl.Type != nil {
			decl.Span = decl.Span.Cover(ast.TypeExprSpan(decl.Type))
		}
	}
	p.expectSemicolon()
	return decl
}

// parseImpl parses `impl Name = Generic<Args>` with an optional closing ';'.
func (p *Parser) parseImpl() ast.Item {
	start := p.bump().Span // impl
	name, ok := p.expectIdent()
	if !ok {
		p.syncTopLevel()
		return nil
	}
	decl := &ast.ImplDecl{
		Span:     start.Cover(name.Span),
		NameSpan: name.Span,
		Name:     name.Text,
	}
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '='"); ok {
		decl.Target = p.parseNamedType()
		if decl.Target != nil {
			decl.Span = decl.Span.Cover(decl.Target.Span)
		}
	}
	// The target type closes the declaration; a ';' may follow.
	p.eat(token.Semicolon)
	return decl
}

// parseNamedType parses `Name` or `Name<Args>`; used where only a nominal
// reference is legal (extends/implements/impl clauses).
func (p *Parser) parseNamedType() *ast.NamedType {
	name, ok := p.expectIdent()
	if !ok {
		return nil
	}
	out := &ast.NamedType{Span: name.Span, NameSpan: name.Span, Name: name.Text}
	if p.at(token.Lt) {
		p.parseTypeArgs(out)
	}
	return out
}

func (p *Parser) parseTypeArgs(out *ast.NamedType) {
	p.bump() // '<'
	for !p.at(token.Gt) && !p.at(token.EOF) {
		arg := p.parseType()
		if arg == nil {
			break
		}
		out.Args = append(out.Args, arg)
		if !p.eat(token.Comma) {
			break
		}
	}
	if end, ok := p.expect(token.Gt, diag.SynUnexpectedToken, "expected '>'"); ok {
		out.Span = out.Span.Cover(end.Span)
	}
}
