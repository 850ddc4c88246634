// Package parser builds Volt syntax trees from token streams.
//
// The parser is recursive descent with single-token lookahead over a
// pre-lexed buffer. It recovers at declaration and statement boundaries:
// every syntax error produces one diagnostic and the parser resynchronizes,
// so a file with errors still yields a partial tree for semantic analysis.
package parser

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/lexer"
	"volt/internal/source"
	"volt/internal/token"
)

// Parser consumes one file's token stream.
type Parser struct {
	file     *source.File
	toks     []token.Token
	pos      int
	reporter diag.Reporter
}

// New pre-lexes file and returns a parser over its tokens. Lexical
// diagnostics flow into the same reporter.
func New(file *source.File, reporter diag.Reporter) *Parser {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	lx := lexer.New(file, reporter)
	return &Parser{
		file:     file,
		toks:     lx.Tokenize(),
		reporter: reporter,
	}
}

// ParseFile parses one compilation unit.
func ParseFile(file *source.File, reporter diag.Reporter) *ast.File {
	return New(file, reporter).File()
}

// File parses the whole unit: optional module header, then items until EOF.
func (p *Parser) File() *ast.File {
	out := &ast.File{FileID: p.file.ID}

	if p.at(token.KwModule) {
		out.Module = p.parseModuleDecl()
	}
	for !p.at(token.EOF) {
		item := p.parseItem()
		if item != nil {
			out.Items = append(out.Items, item)
		}
	}
	return out
}

func (p *Parser) parseModuleDecl() *ast.ModuleDecl {
	start := p.tok().Span
	p.bump() // module
	decl := &ast.ModuleDecl{Span: start}
	for {
		name, ok := p.expectIdent()
		if !ok {
			break
		}
		decl.Path = append(decl.Path, name.Text)
		decl.Span = decl.Span.Cover(name.Span)
		if !p.eat(token.Dot) {
			break
		}
	}
	return decl
}

// tok returns the current token.
func (p *Parser) tok() token.Token {
	return p.toks[p.pos]
}

// peek returns the token n positions ahead, clamping at EOF.
func (p *Parser) peek(n int) token.Token {
	i := p.pos + n
	if i >= len(p.toks) {
		i = len(p.toks) - 1
	}
	return p.toks[i]
}

// bump consumes and returns the current token; EOF is never consumed.
func (p *Parser) bump() token.Token {
	t := p.toks[p.pos]
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

func (p *Parser) at(kind token.Kind) bool {
	return p.tok().Kind == kind
}

// eat consumes the current token when it has the wanted kind.
func (p *Parser) eat(kind token.Kind) bool {
	if p.at(kind) {
		p.bump()
		return true
	}
	return false
}

// expect consumes a token of the wanted kind or reports a syntax error.
func (p *Parser) expect(kind token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(kind) {
		return p.bump(), true
	}
	p.errHere(code, msg)
	return p.tok(), false
}

func (p *Parser) expectIdent() (token.Token, bool) {
	return p.expect(token.Ident, diag.SynExpectIdentifier, "expected an identifier")
}

func (p *Parser) expectSemicolon() {
	if !p.eat(token.Semicolon) {
		p.errHere(diag.SynExpectSemicolon, "expected ';'")
	}
}

func (p *Parser) errHere(code diag.Code, msg string) {
	p.reporter.Report(code, diag.SevError, p.tok().Span, msg, nil)
}

func (p *Parser) errAt(code diag.Code, span source.Span, msg string) {
	p.reporter.Report(code, diag.SevError, span, msg, nil)
}

// syncTopLevel skips tokens until the next plausible declaration start.
func (p *Parser) syncTopLevel() {
	for !p.at(token.EOF) {
		t := p.tok()
		if t.IsQualifier() {
			return
		}
		switch t.Kind {
		case token.KwClass, token.KwStruct, token.KwInterface, token.KwEnum,
			token.KwFunc, token.KwLet, token.KwImpl, token.At:
			return
		}
		p.bump()
	}
}

// syncMember skips tokens inside a type body until the next member start or
// closing brace.
func (p *Parser) syncMember() {
	depth := 0
	for !p.at(token.EOF) {
		t := p.tok()
		if depth == 0 {
			if t.IsQualifier() {
				return
			}
			switch t.Kind {
			case token.KwFunc, token.KwLet, token.At, token.RBrace:
				return
			}
		}
		switch t.Kind {
		case token.LBrace:
			depth++
		case token.RBrace:
			if depth > 0 {
				depth--
			}
		}
		p.bump()
	}
}

// syncStmt skips until a statement boundary inside a block.
func (p *Parser) syncStmt() {
	depth := 0
	for !p.at(token.EOF) {
		switch p.tok().Kind {
		case token.Semicolon:
			if depth == 0 {
				p.bump()
				return
			}
		case token.LBrace:
			depth++
		case token.RBrace:
			if depth == 0 {
				return
			}
			depth--
		}
		p.bump()
	}
}
