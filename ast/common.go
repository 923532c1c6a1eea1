// Package ast defines the parsed representation of IPDL translation units.
//
// These types are the assumed output of an IPDL parser: the analyzer in
// package ipdl consumes them but never produces or mutates them. Callers
// wire their own parser's output into these types (or construct them
// directly, as the CLI in cmd/ipdlc does when reading a serialized
// translation-unit set).
package ast

import (
	"strconv"
	"strings"
)

// Location identifies a position in IPDL source text, for diagnostics.
// The parser is responsible for producing these; the analyzer only ever
// formats them into diagnostic messages.
type Location interface {
	String() string
}

// Synthetic is a Location for compiler-generated constructs that have no
// corresponding source text (e.g. the endpoint-wrapper names declared
// alongside a protocol).
type Synthetic struct {
	// Near names the nearest real declaration, for error messages.
	Near string
}

func (s Synthetic) String() string {
	if s.Near == "" {
		return "<synthetic>"
	}
	return "<synthetic, near " + s.Near + ">"
}

// Pos is a concrete file:line:col source location.
type Pos struct {
	File string
	Line int
	Col  int
}

func (p Pos) String() string {
	var b strings.Builder
	b.WriteString(p.File)
	if p.Line > 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(p.Line))
		if p.Col > 0 {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(p.Col))
		}
	}
	return b.String()
}

// Ident is a bare identifier with its source location.
type Ident struct {
	Name string
	Loc  Location
}

// NewIdent creates an Ident.
func NewIdent(name string, loc Location) Ident {
	return Ident{Name: name, Loc: loc}
}

func (i Ident) String() string { return i.Name }

// QualifiedId is a namespace-qualified identifier: zero or more namespace
// components plus a base identifier. ShortName is the base identifier
// alone; FullName joins namespace components and the base with "::".
type QualifiedId struct {
	Quals []string
	Base  Ident
}

// NewQualifiedId creates a QualifiedId from namespace components and a base identifier.
func NewQualifiedId(quals []string, base Ident) QualifiedId {
	return QualifiedId{Quals: quals, Base: base}
}

// ShortName returns the base identifier, unqualified.
func (q QualifiedId) ShortName() string { return q.Base.Name }

// FullName returns the namespace-qualified name, or "" if there are no
// namespace qualifiers (callers should fall back to ShortName in that case,
// matching the "short or full" dual-binding the symbol table performs).
func (q QualifiedId) FullName() string {
	if len(q.Quals) == 0 {
		return ""
	}
	return strings.Join(q.Quals, "::") + "::" + q.Base.Name
}

// Loc returns the location of the base identifier.
func (q QualifiedId) Loc() Location { return q.Base.Loc }

func (q QualifiedId) String() string {
	if full := q.FullName(); full != "" {
		return full
	}
	return q.ShortName()
}

// Namespace names the enclosing scope of a protocol, struct, or union
// declaration: the namespace components the translation unit is nested in,
// plus the declaration's own name.
type Namespace struct {
	Quals []string
	Name  Ident
}

// QName returns the fully qualified name of this namespace.
func (n Namespace) QName() QualifiedId {
	return QualifiedId{Quals: n.Quals, Base: n.Name}
}

// Diagnostic is a single analyzer finding: a message anchored to a source
// location. The analyzer accumulates these rather than failing fast; see
// the ipdl package for how they are collected and reported.
type Diagnostic struct {
	Loc     Location
	Message string
}

func (d Diagnostic) String() string {
	if d.Loc == nil {
		return d.Message
	}
	return d.Loc.String() + ": " + d.Message
}
