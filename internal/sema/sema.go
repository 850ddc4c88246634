// Package sema implements semantic analysis for Volt: declaration
// collection, hierarchy resolution, generic/bound/variance checking, member
// rule validation and pattern resolution.
//
// Analysis never aborts. Every resolution failure produces a diagnostic and
// an error sentinel type that unifies with everything, so independent checks
// on the same declaration all run and the caller always receives the full
// diagnostic sequence plus whatever partial symbol graph was built.
package sema

import (
	"volt/internal/ast"
	"volt/internal/diag"
	"volt/internal/source"
	"volt/internal/symbols"
	"volt/internal/types"
)

// Result is the resolved output of one analysis run, handed to code
// generation and tooling.
type Result struct {
	Table *symbols.Table
	Types *types.Interner

	// Classes holds hierarchy and member information per class-like symbol.
	Classes map[symbols.SymbolID]*ClassInfo
	// Funcs holds the resolved signature per function symbol.
	Funcs map[symbols.SymbolID]*FuncInfo
	// Fields holds the resolved type per field symbol.
	Fields map[symbols.SymbolID]types.TypeID
	// Matches holds the lowered decision structure per function symbol, in
	// source order within each body.
	Matches map[symbols.SymbolID][]*Match
}

// resolveState is the per-run visiting marker used for cycle detection.
type resolveState uint8

const (
	stateUnresolved resolveState = iota
	stateResolving
	stateResolved
)

// ClassInfo is the resolved hierarchy view of one class, struct or
// interface.
type ClassInfo struct {
	Sym  symbols.SymbolID
	Decl *ast.ClassDecl

	Base       symbols.SymbolID // NoSymbolID when absent or rejected
	BaseArgs   []types.TypeID
	Interfaces []symbols.SymbolID
	// Ancestors is the linearized transitive base/implements list, nearest
	// first, excluding the class itself.
	Ancestors  []symbols.SymbolID
	TypeParams []symbols.SymbolID

	state resolveState
}

// FuncInfo is the resolved signature of one function or method.
type FuncInfo struct {
	Sym     symbols.SymbolID
	Decl    *ast.FuncDecl
	Owner   symbols.SymbolID // declaring class, NoSymbolID for free functions
	Params  []types.TypeID
	Result  types.TypeID
	SigType types.TypeID
}

// typeParamInfo carries a type parameter's declaration for bound and
// variance checking.
type typeParamInfo struct {
	sym      symbols.SymbolID
	decl     *ast.TypeParam
	owner    symbols.SymbolID
	bounds   []types.TypeID
	variance ast.Variance

	boundsState resolveState
}

// Checker is the analysis context threaded through every stage. It owns the
// mutable symbol graph for the duration of Analyze and must not be retained
// past it.
type Checker struct {
	fs       *source.FileSet
	table    *symbols.Table
	types    *types.Interner
	reporter diag.Reporter
	anns     *annotationRegistry

	// AST side tables keyed by symbol.
	classDecl map[symbols.SymbolID]*ast.ClassDecl
	enumDecl  map[symbols.SymbolID]*ast.EnumDecl
	funcDecl  map[symbols.SymbolID]*ast.FuncDecl
	fieldDecl map[symbols.SymbolID]*ast.FieldDecl
	implDecl  map[symbols.SymbolID]*ast.ImplDecl

	classes    map[symbols.SymbolID]*ClassInfo
	funcs      map[symbols.SymbolID]*FuncInfo
	fields     map[symbols.SymbolID]types.TypeID
	typeParams map[symbols.SymbolID]*typeParamInfo
	implTarget map[symbols.SymbolID]types.TypeID

	// implKeys maps an instantiated target type to the first specialization
	// symbol naming it, for DUP_IMPL detection. Structural interning makes
	// the TypeID itself the (generic symbol, argument list) key.
	implKeys map[types.TypeID]symbols.SymbolID

	matches map[symbols.SymbolID][]*Match

	// order lists top-level symbols in declaration order across all units;
	// it drives every later stage so diagnostic emission is deterministic.
	order []symbols.SymbolID
}

// Analyze runs the full pipeline over the parsed units, in unit order.
// Reporter receives every diagnostic in emission order; re-running over the
// same input reproduces the identical sequence.
func Analyze(fs *source.FileSet, files []*ast.File, reporter diag.Reporter) *Result {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	c := &Checker{
		fs:       fs,
		table:    symbols.NewTable(symbols.Hints{}, nil),
		types:    types.NewInterner(),
		reporter: reporter,
		anns:     builtinAnnotations(),

		classDecl:  make(map[symbols.SymbolID]*ast.ClassDecl),
		enumDecl:   make(map[symbols.SymbolID]*ast.EnumDecl),
		funcDecl:   make(map[symbols.SymbolID]*ast.FuncDecl),
		fieldDecl:  make(map[symbols.SymbolID]*ast.FieldDecl),
		implDecl:   make(map[symbols.SymbolID]*ast.ImplDecl),
		classes:    make(map[symbols.SymbolID]*ClassInfo),
		funcs:      make(map[symbols.SymbolID]*FuncInfo),
		fields:     make(map[symbols.SymbolID]types.TypeID),
		typeParams: make(map[symbols.SymbolID]*typeParamInfo),
		implTarget: make(map[symbols.SymbolID]types.TypeID),
		implKeys:   make(map[types.TypeID]symbols.SymbolID),
		matches:    make(map[symbols.SymbolID][]*Match),
	}

	// Stage 1: declaration collection over every unit, so forward and
	// cross-unit references resolve regardless of file order.
	for _, file := range files {
		c.collectFile(file)
	}

	// Stage 2: hierarchy resolution in declaration order. Demand-driven
	// recursion memoizes, so each edge is checked exactly once.
	for _, sym := range c.order {
		if _, ok := c.classes[sym]; ok {
			c.resolveHierarchy(sym)
		}
	}

	// Stage 3: signature resolution (arity, bounds, variance) and
	// specialization uniqueness, in declaration order.
	for _, sym := range c.order {
		switch {
		case c.classDecl[sym] != nil:
			c.resolveClassSignatures(sym)
		case c.funcDecl[sym] != nil:
			c.resolveFuncSignature(sym, symbols.NoSymbolID)
		case c.fieldDecl[sym] != nil:
			c.resolveFieldType(sym, symbols.NoSymbolID)
		case c.implDecl[sym] != nil:
			c.resolveImpl(sym)
		}
	}

	// Stage 4: per-member rule validation and completeness.
	for _, sym := range c.order {
		switch {
		case c.classes[sym] != nil:
			c.checkMembers(sym)
		case c.funcDecl[sym] != nil:
			c.checkFreeFunc(sym)
		}
	}

	// Stage 5: bodies and patterns.
	for _, sym := range c.order {
		switch {
		case c.classDecl[sym] != nil:
			c.checkClassBodies(sym)
		case c.funcDecl[sym] != nil:
			c.checkFuncBody(sym)
		}
	}

	return &Result{
		Table:   c.table,
		Types:   c.types,
		Classes: c.classes,
		Funcs:   c.funcs,
		Fields:  c.fields,
		Matches: c.matches,
	}
}

// errorf emits one error diagnostic.
func (c *Checker) errorf(code diag.Code, span source.Span, msg string) {
	c.reporter.Report(code, diag.SevError, span, msg, nil)
}

// errorNotes emits one error diagnostic with secondary notes.
func (c *Checker) errorNotes(code diag.Code, span source.Span, msg string, notes []diag.Note) {
	c.reporter.Report(code, diag.SevError, span, msg, notes)
}
