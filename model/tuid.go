// Package model defines the typed representation the analyzer builds from
// parsed translation units: canonical IPDL types, struct/union/protocol/
// message definitions, and the translation-unit tables that hold them.
//
// Values in this package are produced by internal/checker and consumed by
// callers of the root ipdl package (and, ultimately, a code generator).
// Construction is two-phase to mirror the analyzer's own pipeline: stub
// types are created empty and filled in afterward, so struct/union/
// protocol fields are unexported with mutator methods rather than plain
// public fields.
package model

import "github.com/ipdl-lang/ipdlc/ast"

// TUId is an opaque, comparable handle identifying one translation unit.
// Two TUIds are equal iff they name the same translation unit.
type TUId struct {
	qualified string
}

// NewTUId builds a TUId from a translation unit's fully qualified name
// (its namespace plus its own name, "::"-joined).
func NewTUId(qualified string) TUId {
	return TUId{qualified: qualified}
}

// TUIdFromNamespace builds a TUId from a parsed ast.Namespace.
func TUIdFromNamespace(ns ast.Namespace) TUId {
	q := ns.QName()
	if full := q.FullName(); full != "" {
		return TUId{qualified: full}
	}
	return TUId{qualified: q.ShortName()}
}

func (id TUId) String() string { return id.qualified }

// IsZero reports whether this is the zero-value TUId (no translation unit).
func (id TUId) IsZero() bool { return id.qualified == "" }
