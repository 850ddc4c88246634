package sema

import (
	"fmt"

	"volt/internal/ast"
	"volt/internal/diag"
)

// annContext is the set of declaration kinds an annotation may attach to.
type annContext uint8

const (
	annClass annContext = 1 << iota
	annStruct
	annInterface
	annEnum
	annFunc
	annField
)

func (ctx annContext) label() string {
	switch ctx {
	case annClass:
		return "classes"
	case annStruct:
		return "structs"
	case annInterface:
		return "interfaces"
	case annEnum:
		return "enums"
	case annFunc:
		return "functions"
	case annField:
		return "fields"
	}
	return "declarations"
}

// annotationRegistry maps annotation names to the contexts they are declared
// for. Names absent from the registry are host-defined and accepted
// anywhere; the prelude keeps this set aligned with the host surface.
type annotationRegistry struct {
	contexts map[string]annContext
}

func builtinAnnotations() *annotationRegistry {
	return &annotationRegistry{contexts: map[string]annContext{
		"layout":     annClass | annStruct,
		"inline":     annFunc,
		"offset":     annField,
		"hostEvent":  annFunc,
		"deprecated": annClass | annStruct | annInterface | annEnum | annFunc | annField,
	}}
}

// checkAnnotations validates applicability of every annotation against the
// declaring context, one INVALID_ANN_USE per misplaced annotation.
func (c *Checker) checkAnnotations(anns []ast.Annotation, ctx annContext) {
	for _, ann := range anns {
		declared, known := c.anns.contexts[ann.Name]
		if !known || declared&ctx != 0 {
			continue
		}
		c.errorf(diag.SemaInvalidAnnUse, ann.Span,
			fmt.Sprintf("the '@%s' annotation is not allowed on %s", ann.Name, ctx.label()))
	}
}
