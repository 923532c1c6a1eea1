package model

import "github.com/ipdl-lang/ipdlc/ast"

// StructDef is the typed form of a struct declaration: a qualified name
// plus an ordered list of field types. Created empty in phase 1 and
// appended to in phase 2, hence the unexported slice and append-only
// mutator.
type StructDef struct {
	qname  ast.QualifiedId
	fields []Type
}

// NewStructDef creates an empty struct shell under the given qualified name.
func NewStructDef(qname ast.QualifiedId) *StructDef {
	return &StructDef{qname: qname}
}

func (s *StructDef) QName() ast.QualifiedId { return s.qname }
func (s *StructDef) Fields() []Type         { return s.fields }

// AppendField appends a canonicalized field type to the struct definition.
func (s *StructDef) AppendField(t Type) { s.fields = append(s.fields, t) }

// UnionDef is the typed form of a union declaration: a qualified name plus
// an ordered list of alternative component types.
type UnionDef struct {
	qname      ast.QualifiedId
	components []Type
}

// NewUnionDef creates an empty union shell under the given qualified name.
func NewUnionDef(qname ast.QualifiedId) *UnionDef {
	return &UnionDef{qname: qname}
}

func (u *UnionDef) QName() ast.QualifiedId { return u.qname }
func (u *UnionDef) Components() []Type     { return u.components }

// AppendComponent appends a canonicalized component type to the union definition.
func (u *UnionDef) AppendComponent(t Type) { u.components = append(u.components, t) }
