package parser

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/token"
)

// parsePattern parses one structural pattern.
func (p *Parser) parsePattern() ast.Pattern {
	t := p.tok()
	switch t.Kind {
	case token.Underscore:
		p.bump()
		return &ast.WildcardPattern{Span: t.Span}

	case token.IntLit, token.FloatLit, token.StringLit, token.KwTrue,
		token.KwFalse, token.NullLit, token.Minus:
		return p.parseLiteralPattern()

	case token.LBracket:
		return p.parseArrayPattern()

	case token.Ident:
		if p.peek(1).Kind == token.LBrace {
			return p.parseFieldPattern()
		}
		p.bump()
		return &ast.BindingPattern{Span: t.Span, Name: t.Text}

	default:
		p.errHere(diag.SynExpectPattern, "expected a pattern")
		return nil
	}
}

func (p *Parser) parseLiteralPattern() ast.Pattern {
	start := p.tok().Span
	neg := p.eat(token.Minus)

	t := p.tok()
	var kind ast.LitKind
	switch t.Kind {
	case token.IntLit:
		kind = ast.LitInt
	case token.FloatLit:
		kind = ast.LitFloat
	case token.StringLit:
		kind = ast.LitString
	case token.KwTrue, token.KwFalse:
		kind = ast.LitBool
	case token.NullLit:
		kind = ast.LitNull
	default:
		p.errHere(diag.SynExpectPattern, "expected a literal pattern")
		return nil
	}
	p.bump()

	text := t.Text
	if neg {
		text = "-" + text
	}
	lit := &ast.LiteralExpr{Span: start.Cover(t.Span), Kind: kind, Text: text}
	return &ast.LiteralPattern{Span: lit.Span, Lit: lit}
}

// parseArrayPattern parses `[p, ..]`-style sequence patterns with at most
// one rest marker.
func (p *Parser) parseArrayPattern() ast.Pattern {
	start := p.bump().Span // '['
	out := &ast.ArrayPattern{Span: start}

	for !p.at(token.RBracket) && !p.at(token.EOF) {
		if p.at(token.DotDot) {
			rest := p.bump()
			if out.HasRest {
				p.errAt(diag.SynDuplicateRest, rest.Span,
					"a sequence pattern may contain at most one '..'")
			} else {
				out.HasRest = true
				out.RestSpan = rest.Span
			}
		} else {
			sub := p.parsePattern()
			if sub == nil {
				break
			}
			if out.HasRest {
				out.Suffix = append(out.Suffix, sub)
			} else {
				out.Prefix = append(out.Prefix, sub)
			}
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	if end, ok := p.expect(token.RBracket, diag.SynUnexpectedToken, "expected ']'"); ok {
		out.Span = out.Span.Cover(end.Span)
	}
	return out
}

// parseFieldPattern parses `TypeName{field, other: subpattern}`.
func (p *Parser) parseFieldPattern() ast.Pattern {
	name := p.bump() // Ident, caller checked the '{' lookahead
	out := &ast.FieldPattern{
		Span:     name.Span,
		TypeSpan: name.Span,
		TypeName: name.Text,
	}
	p.bump() // '{'

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		fname, ok := p.expectIdent()
		if !ok {
			break
		}
		entry := ast.FieldPatternEntry{
			Span:     fname.Span,
			NameSpan: fname.Span,
			Name:     fname.Text,
		}
		if p.eat(token.Colon) {
			entry.Sub = p.parsePattern()
			if entry.Sub != nil {
				entry.Span = entry.Span.Cover(ast.PatternSpan(entry.Sub))
			}
		}
		out.Fields = append(out.Fields, entry)
		if !p.eat(token.Comma) {
			break
		}
	}
	if end, ok := p.expect(token.RBrace, diag.SynUnexpectedToken, "expected '}'"); ok {
		out.Span = out.Span.Cover(end.Span)
	}
	return out
}
