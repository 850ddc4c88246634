package parser

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/token"
)

// Binary operator precedence, loosest first. Assignment is handled
// separately because it is right-associative.
var binaryPrec = map[token.Kind]int{
	token.OrOr:    1,
	token.AndAnd:  2,
	token.EqEq:    3,
	token.BangEq:  3,
	token.Lt:      4,
	token.LtEq:    4,
	token.Gt:      4,
	token.GtEq:    4,
	token.Plus:    5,
	token.Minus:   5,
	token.Star:    6,
	token.Slash:   6,
	token.Percent: 6,
}

// parseExpr parses a full expression including assignment.
func (p *Parser) parseExpr() ast.Expr {
	lhs := p.parseBinary(1)
	if lhs == nil {
		return nil
	}
	if p.at(token.Assign) {
		p.bump()
		rhs := p.parseExpr()
		if rhs == nil {
			return lhs
		}
		return &ast.AssignExpr{
			Span:   ast.ExprSpan(lhs).Cover(ast.ExprSpan(rhs)),
			Target: lhs,
			Value:  rhs,
		}
	}
	return lhs
}

func (p *Parser) parseBinary(minPrec int) ast.Expr {
	lhs := p.parseUnary()
	if lhs == nil {
		return nil
	}
	for {
		prec, ok := binaryPrec[p.tok().Kind]
		if !ok || prec < minPrec {
			return lhs
		}
		op := p.bump().Kind
		rhs := p.parseBinary(prec + 1)
		if rhs == nil {
			return lhs
		}
		lhs = &ast.BinaryExpr{
			Span: ast.ExprSpan(lhs).Cover(ast.ExprSpan(rhs)),
			Op:   op,
			X:    lhs,
			Y:    rhs,
		}
	}
}

func (p *Parser) parseUnary() ast.Expr {
	switch p.tok().Kind {
	case token.Minus, token.Bang:
		op := p.bump()
		x := p.parseUnary()
		if x == nil {
			return nil
		}
		return &ast.UnaryExpr{Span: op.Span.Cover(ast.ExprSpan(x)), Op: op.Kind, X: x}
	}
	return p.parsePostfix()
}

func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	if expr == nil {
		return nil
	}
	for {
		switch p.tok().Kind {
		case token.Dot:
			// `a..b` is a rest marker, never member access.
			p.bump()
			name, ok := p.expectIdent()
			if !ok {
				return expr
			}
			expr = &ast.MemberExpr{
				Span:     ast.ExprSpan(expr).Cover(name.Span),
				NameSpan: name.Span,
				Recv:     expr,
				Name:     name.Text,
			}

		case token.LBracket:
			p.bump()
			index := p.parseExpr()
			end, _ := p.expect(token.RBracket, diag.SynUnexpectedToken, "expected ']'")
			expr = &ast.IndexExpr{
				Span:  ast.ExprSpan(expr).Cover(end.Span),
				Recv:  expr,
				Index: index,
			}

		case token.LParen:
			p.bump()
			call := &ast.CallExpr{Span: ast.ExprSpan(expr), Callee: expr}
			for !p.at(token.RParen) && !p.at(token.EOF) {
				arg := p.parseExpr()
				if arg == nil {
					break
				}
				call.Args = append(call.Args, arg)
				if !p.eat(token.Comma) {
					break
				}
			}
			if end, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')'"); ok {
				call.Span = call.Span.Cover(end.Span)
			}
			expr = call

		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	t := p.tok()
	switch t.Kind {
	case token.Ident:
		p.bump()
		return &ast.IdentExpr{Span: t.Span, Name: t.Text}

	case token.IntLit:
		p.bump()
		return &ast.LiteralExpr{Span: t.Span, Kind: ast.LitInt, Text: t.Text}

	case token.FloatLit:
		p.bump()
		return &ast.LiteralExpr{Span: t.Span, Kind: ast.LitFloat, Text: t.Text}

	case token.StringLit:
		p.bump()
		return &ast.LiteralExpr{Span: t.Span, Kind: ast.LitString, Text: t.Text}

	case token.KwTrue, token.KwFalse:
		p.bump()
		return &ast.LiteralExpr{Span: t.Span, Kind: ast.LitBool, Text: t.Text}

	case token.NullLit:
		p.bump()
		return &ast.LiteralExpr{Span: t.Span, Kind: ast.LitNull, Text: t.Text}

	case token.KwThis:
		p.bump()
		return &ast.ThisExpr{Span: t.Span}

	case token.KwNew:
		p.bump()
		typ := p.parseNamedType()
		if typ == nil {
			return nil
		}
		expr := &ast.NewExpr{Span: t.Span.Cover(typ.Span), Type: typ}
		if p.eat(token.LParen) {
			for !p.at(token.RParen) && !p.at(token.EOF) {
				arg := p.parseExpr()
				if arg == nil {
					break
				}
				expr.Args = append(expr.Args, arg)
				if !p.eat(token.Comma) {
					break
				}
			}
			if end, ok := p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')'"); ok {
				expr.Span = expr.Span.Cover(end.Span)
			}
		}
		return expr

	case token.LParen:
		p.bump()
		inner := p.parseExpr()
		p.expect(token.RParen, diag.SynUnexpectedToken, "expected ')'")
		return inner

	default:
		p.errHere(diag.SynExpectExpression, "expected an expression")
		return nil
	}
}
