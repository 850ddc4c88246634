package sema

import (
	"fmt"

	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/source"
	"volt/internal/symbols"
)

// collectFile declares every top-level item and every class member of one
// unit. Collection is a pure symbol pass: no type is resolved here, so a
// class may freely reference types declared later or in another unit.
func (c *Checker) collectFile(file *ast.File) {
	module := c.table.ModuleScope()
	for _, item := range file.Items {
		switch item := item.(type) {
		case *ast.ClassDecl:
			c.collectClass(module, item)
		case *ast.EnumDecl:
			c.collectEnum(module, item)
		case *ast.FuncDecl:
			c.collectFunc(module, symbols.NoSymbolID, item)
		case *ast.FieldDecl:
			c.collectField(module, symbols.NoSymbolID, item)
		case *ast.ImplDecl:
			c.collectImpl(module, item)
		default:
			panic(fmt.Sprintf("sema: unknown item %T", item))
		}
	}
}

func (c *Checker) collectClass(scope symbols.ScopeID, decl *ast.ClassDecl) {
	kind := symbols.KindClass
	ctx := annClass
	switch decl.Kind {
	case ast.KindStruct:
		kind = symbols.KindStruct
		ctx = annStruct
	case ast.KindInterface:
		kind = symbols.KindInterface
		ctx = annInterface
	}
	c.checkAnnotations(decl.Annotations, ctx)

	sym, ok := c.declare(scope, decl.Name, decl.NameSpan, kind, qualFlags(decl.Quals))
	if !ok {
		return
	}
	c.classDecl[sym] = decl
	c.order = append(c.order, sym)

	body := c.table.NewScope(symbols.ScopeClass, scope, sym, decl.Span)
	c.table.Get(sym).OwnScope = body

	info := &ClassInfo{Sym: sym, Decl: decl}
	c.classes[sym] = info

	for i := range decl.TypeParams {
		tp := &decl.TypeParams[i]
		tpSym, ok := c.declare(body, tp.Name, tp.NameSpan, symbols.KindTypeParam, 0)
		if !ok {
			continue
		}
		info.TypeParams = append(info.TypeParams, tpSym)
		c.typeParams[tpSym] = &typeParamInfo{
			sym:      tpSym,
			decl:     tp,
			owner:    sym,
			variance: tp.Variance,
		}
	}

	for _, member := range decl.Members {
		switch member := member.(type) {
		case *ast.FuncDecl:
			c.collectFunc(body, sym, member)
		case *ast.FieldDecl:
			c.collectField(body, sym, member)
		}
	}
}

func (c *Checker) collectEnum(scope symbols.ScopeID, decl *ast.EnumDecl) {
	c.checkAnnotations(decl.Annotations, annEnum)

	sym, ok := c.declare(scope, decl.Name, decl.NameSpan, symbols.KindEnum, qualFlags(decl.Quals))
	if !ok {
		return
	}
	c.enumDecl[sym] = decl
	c.order = append(c.order, sym)

	body := c.table.NewScope(symbols.ScopeClass, scope, sym, decl.Span)
	c.table.Get(sym).OwnScope = body
	for _, variant := range decl.Variants {
		c.declare(body, variant.Name, variant.Span, symbols.KindEnumVariant, 0)
	}
}

// collectFunc declares a free function or a method. Methods go through the
// overload path: a repeated method name is not a redefinition, identical
// signatures are caught later as DUP_METHOD.
func (c *Checker) collectFunc(scope symbols.ScopeID, owner symbols.SymbolID, decl *ast.FuncDecl) {
	c.checkAnnotations(decl.Annotations, annFunc)

	var sym symbols.SymbolID
	if owner.IsValid() {
		name := c.table.Strings.Intern(decl.Name)
		sym = c.table.DeclareOverload(scope, symbols.Symbol{
			Name:  name,
			QName: c.table.Strings.Intern(c.table.QualifiedName(scope, decl.Name)),
			Kind:  symbols.KindFunc,
			Flags: qualFlags(decl.Quals),
			Span:  decl.NameSpan,
		})
	} else {
		var ok bool
		sym, ok = c.declare(scope, decl.Name, decl.NameSpan, symbols.KindFunc, qualFlags(decl.Quals))
		if !ok {
			return
		}
		c.order = append(c.order, sym)
	}
	c.funcDecl[sym] = decl

	body := c.table.NewScope(symbols.ScopeFunction, scope, sym, decl.Span)
	c.table.Get(sym).OwnScope = body
	c.funcs[sym] = &FuncInfo{Sym: sym, Decl: decl, Owner: owner}

	for i := range decl.TypeParams {
		tp := &decl.TypeParams[i]
		tpSym, ok := c.declare(body, tp.Name, tp.NameSpan, symbols.KindTypeParam, 0)
		if !ok {
			continue
		}
		c.typeParams[tpSym] = &typeParamInfo{
			sym:      tpSym,
			decl:     tp,
			owner:    sym,
			variance: tp.Variance,
		}
	}
}

func (c *Checker) collectField(scope symbols.ScopeID, owner symbols.SymbolID, decl *ast.FieldDecl) {
	c.checkAnnotations(decl.Annotations, annField)

	sym, ok := c.declare(scope, decl.Name, decl.NameSpan, symbols.KindField, qualFlags(decl.Quals))
	if !ok {
		return
	}
	c.fieldDecl[sym] = decl
	if !owner.IsValid() {
		c.order = append(c.order, sym)
	}
}

func (c *Checker) collectImpl(scope symbols.ScopeID, decl *ast.ImplDecl) {
	sym, ok := c.declare(scope, decl.Name, decl.NameSpan, symbols.KindImpl, 0)
	if !ok {
		return
	}
	c.implDecl[sym] = decl
	c.order = append(c.order, sym)
}

// declare inserts a symbol, reporting SYM_REDEFINITION anchored at the
// second declaration when the name is taken in that exact scope. The first
// declaration stays authoritative either way.
func (c *Checker) declare(scope symbols.ScopeID, name string, span source.Span, kind symbols.Kind, flags symbols.Flags) (symbols.SymbolID, bool) {
	nameID := c.table.Strings.Intern(name)
	sym, ok := c.table.Declare(scope, symbols.Symbol{
		Name:  nameID,
		QName: c.table.Strings.Intern(c.table.QualifiedName(scope, name)),
		Kind:  kind,
		Flags: flags,
		Span:  span,
	})
	if !ok {
		c.errorf(diag.SemaSymRedefinition, span, fmt.Sprintf("'%s' is already defined", name))
		return sym, false
	}
	return sym, true
}

func qualFlags(q ast.Quals) symbols.Flags {
	var f symbols.Flags
	if q.Has(ast.QualNative) {
		f |= symbols.FlagNative
	}
	if q.Has(ast.QualPersistent) {
		f |= symbols.FlagPersistent
	}
	if q.Has(ast.QualFinal) {
		f |= symbols.FlagFinal
	}
	if q.Has(ast.QualStatic) {
		f |= symbols.FlagStatic
	}
	if q.Has(ast.QualAbstract) {
		f |= symbols.FlagAbstract
	}
	if q.Has(ast.QualConst) {
		f |= symbols.FlagConst
	}
	return f
}
