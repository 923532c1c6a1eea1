// Package checker implements the analyzer's three-phase pipeline: stub
// construction, declaration gathering, and semantic validation.
package checker

import (
	"github.com/ipdl-lang/ipdlc/ast"
	"github.com/ipdl-lang/ipdlc/model"
)

// decl is a symbol-table entry: a declaration's source location, its IPDL
// type, and the name(s) it was bound under.
type decl struct {
	loc      ast.Location
	typ      model.Type
	name     string
	fullName string
}

// symtab is a scoped name table: a stack of insertion-ordered maps, with
// lookup walking innermost scope outward. A global scope is always present.
type symtab struct {
	scopes []map[string]decl
}

func newSymtab() *symtab {
	return &symtab{scopes: []map[string]decl{make(map[string]decl)}}
}

func (s *symtab) enterScope() {
	s.scopes = append(s.scopes, make(map[string]decl))
}

func (s *symtab) exitScope() {
	s.scopes = s.scopes[:len(s.scopes)-1]
}

// lookup searches innermost scope outward for name, returning the bound
// declaration and whether one was found.
func (s *symtab) lookup(name string) (decl, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if d, ok := s.scopes[i][name]; ok {
			return d, true
		}
	}
	return decl{}, false
}

// declare binds d under its short name, and also under its full name if
// one is set. If either intended binding already resolves (at any scope),
// it emits a redeclaration diagnostic for that name and leaves the
// existing binding untouched; the other binding, if any, still proceeds.
func (s *symtab) declare(d decl) []ast.Diagnostic {
	var diags []ast.Diagnostic
	innermost := s.scopes[len(s.scopes)-1]

	if existing, ok := s.lookup(d.name); ok {
		diags = append(diags, redeclaration(d.name, d.loc, existing.loc))
	} else {
		innermost[d.name] = d
	}

	if d.fullName != "" && d.fullName != d.name {
		if existing, ok := s.lookup(d.fullName); ok {
			diags = append(diags, redeclaration(d.fullName, d.loc, existing.loc))
		} else {
			innermost[d.fullName] = d
		}
	}

	return diags
}

func redeclaration(name string, loc, firstLoc ast.Location) ast.Diagnostic {
	return ast.Diagnostic{
		Loc:     loc,
		Message: "redeclaration of symbol `" + name + "', first declared at " + firstLoc.String(),
	}
}
