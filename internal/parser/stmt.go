package parser

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/token"
)

// parseBlock parses a braced statement list.
func (p *Parser) parseBlock() *ast.Block {
	open, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'")
	if !ok {
		return nil
	}
	block := &ast.Block{Span: open.Span}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmt := p.parseStmt()
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
	}
	if end, ok := p.expect(token.RBrace, diag.SynUnexpectedToken, "expected '}'"); ok {
		block.Span = block.Span.Cover(end.Span)
	}
	return block
}

func (p *Parser) parseStmt() ast.Stmt {
	switch p.tok().Kind {
	case token.KwLet:
		return p.parseLetStmt()
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwSwitch:
		return p.parseSwitchStmt()
	case token.KwReturn:
		start := p.bump().Span
		stmt := &ast.ReturnStmt{Span: start}
		if !p.at(token.Semicolon) && !p.at(token.RBrace) {
			stmt.Value = p.parseExpr()
		}
		p.expectSemicolon()
		return stmt
	case token.KwBreak:
		stmt := &ast.BreakStmt{Span: p.bump().Span}
		p.expectSemicolon()
		return stmt
	case token.KwContinue:
		stmt := &ast.ContinueStmt{Span: p.bump().Span}
		p.expectSemicolon()
		return stmt
	case token.LBrace:
		return p.parseBlock()
	case token.Semicolon:
		p.bump()
		return nil
	default:
		start := p.tok().Span
		expr := p.parseExpr()
		if expr == nil {
			p.syncStmt()
			return nil
		}
		p.expectSemicolon()
		return &ast.ExprStmt{Span: start.Cover(ast.ExprSpan(expr)), X: expr}
	}
}

func (p *Parser) parseLetStmt() ast.Stmt {
	start := p.bump().Span // let
	name, ok := p.expectIdent()
	if !ok {
		p.syncStmt()
		return nil
	}
	stmt := &ast.LetStmt{
		Span:     start.Cover(name.Span),
		NameSpan: name.Span,
		Name:     name.Text,
	}
	if p.eat(token.Colon) {
		stmt.Type = p.parseType()
		if stmt.Type != nil {
			stmt.Span = stmt.Span.Cover(ast.TypeExprSpan(stmt.Type))
		}
	}
	if p.eat(token.Assign) {
		stmt.Init = p.parseExpr()
		if stmt.Init != nil {
			stmt.Span = stmt.Span.Cover(ast.ExprSpan(stmt.Init))
		}
	}
	p.expectSemicolon()
	return stmt
}

// parseIfStmt parses both `if cond` and the `if let pattern = expr` binding
// form.
func (p *Parser) parseIfStmt() ast.Stmt {
	start := p.bump().Span // if

	if p.at(token.KwLet) {
		p.bump()
		pattern := p.parsePattern()
		p.expect(token.Assign, diag.SynUnexpectedToken, "expected '='")
		value := p.parseExpr()
		stmt := &ast.IfLetStmt{Span: start, Pattern: pattern, Value: value}
		stmt.Then = p.parseBlock()
		if stmt.Then != nil {
			stmt.Span = stmt.Span.Cover(stmt.Then.Span)
		}
		if p.eat(token.KwElse) {
			stmt.Else = p.parseBlock()
			if stmt.Else != nil {
				stmt.Span = stmt.Span.Cover(stmt.Else.Span)
			}
		}
		return stmt
	}

	stmt := &ast.IfStmt{Span: start}
	stmt.Cond = p.parseExpr()
	stmt.Then = p.parseBlock()
	if stmt.Then != nil {
		stmt.Span = stmt.Span.Cover(stmt.Then.Span)
	}
	if p.eat(token.KwElse) {
		if p.at(token.KwIf) {
			stmt.Else = p.parseIfStmt()
		} else {
			stmt.Else = p.parseBlock()
		}
	}
	return stmt
}

func (p *Parser) parseWhileStmt() ast.Stmt {
	start := p.bump().Span // while
	stmt := &ast.WhileStmt{Span: start}
	stmt.Cond = p.parseExpr()
	stmt.Body = p.parseBlock()
	if stmt.Body != nil {
		stmt.Span = stmt.Span.Cover(stmt.Body.Span)
	}
	return stmt
}

func (p *Parser) parseForStmt() ast.Stmt {
	start := p.bump().Span // for
	name, ok := p.expectIdent()
	if !ok {
		p.syncStmt()
		return nil
	}
	stmt := &ast.ForStmt{Span: start, VarSpan: name.Span, Var: name.Text}
	p.expect(token.KwIn, diag.SynUnexpectedToken, "expected 'in'")
	stmt.Iterable = p.parseExpr()
	stmt.Body = p.parseBlock()
	if stmt.Body != nil {
		stmt.Span = stmt.Span.Cover(stmt.Body.Span)
	}
	return stmt
}

func (p *Parser) parseSwitchStmt() ast.Stmt {
	start := p.bump().Span // switch
	stmt := &ast.SwitchStmt{Span: start}
	stmt.Scrutinee = p.parseExpr()

	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{'"); !ok {
		return stmt
	}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		switch p.tok().Kind {
		case token.KwCase:
			arm := ast.CaseArm{Span: p.bump().Span}
			arm.Pattern = p.parsePattern()
			if p.eat(token.KwIf) {
				arm.Guard = p.parseExpr()
			}
			p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':'")
			arm.Body = p.parseArmBody()
			stmt.Arms = append(stmt.Arms, arm)

		case token.KwDefault:
			arm := ast.CaseArm{Span: p.bump().Span, IsDefault: true}
			p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':'")
			arm.Body = p.parseArmBody()
			stmt.Arms = append(stmt.Arms, arm)

		default:
			p.errHere(diag.SynUnexpectedToken, "expected 'case' or 'default'")
			p.bump()
			p.syncStmt()
		}
	}
	if end, ok := p.expect(token.RBrace, diag.SynUnexpectedToken, "expected '}'"); ok {
		stmt.Span = stmt.Span.Cover(end.Span)
	}
	return stmt
}

// parseArmBody collects statements until the next case/default label or the
// closing brace of the switch.
func (p *Parser) parseArmBody() []ast.Stmt {
	var out []ast.Stmt
	for {
		switch p.tok().Kind {
		case token.KwCase, token.KwDefault, token.RBrace, token.EOF:
			return out
		}
		stmt := p.parseStmt()
		if stmt != nil {
			out = append(out, stmt)
		}
	}
}
