package parser

import (
	"strconv"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/token"
)

// parseType parses any type expression, or nil after reporting an error.
func (p *Parser) parseType() ast.TypeExpr {
	switch p.tok().Kind {
	case token.Ident:
		return p.parseNamedType()

	case token.LBracket:
		return p.parseArrayType()

	case token.LParen:
		return p.parseFuncType()

	default:
		p.errHere(diag.SynExpectType, "expected a type")
		return nil
	}
}

// parseArrayType parses `[T]` or `[T; N]`.
func (p *Parser) parseArrayType() ast.TypeExpr {
	start := p.bump().Span // '['
	elem := p.parseType()
	if elem == nil {
		return nil
	}
	out := &ast.ArrayType{Span: start, Elem: elem}
	if p.eat(token.Semicolon) {
		if lit, ok := p.expect(token.IntLit, diag.SynUnexpectedToken, "expected an array length"); ok {
			if n, err := strconv.ParseInt(lit.Text, 10, 64); err == nil {
				out.HasLen = true
				out.Len = n
			}
		}
	}
	if end, ok := p.expect(token.RBracket, diag.SynUnexpectedToken, "expected ']'"); ok {
		out.Span = out.Span.Cover(end.Span)
	}
	return out
}

// parseFuncType parses `(A, B) -> R`.
func (p *Parser) parseFuncType() ast.TypeExpr {
	start := p.bump().Span // '('
	out := &ast.FuncType{Span: start}
	for !p.at(token.RParen) && !p.at(token.EOF) {
		param := p.parseType()
		if param == nil {
			break
		}
		out.Params = append(out.Params, param)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')'")
	if _, ok := p.expect(token.Arrow, diag.SynUnexpectedToken, "expected '->'"); ok {
		out.Return = p.parseType()
		if out.Return != nil {
			out.Span = out.Span.Cover(ast.TypeExprSpan(out.Return))
		}
	}
	return out
}
