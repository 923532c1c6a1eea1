package ast

// TypeSpec is the parsed form of a type reference as written in IPDL
// source: a base name plus the modifiers that can wrap it. Modifiers nest
// in a fixed order in real IPDL grammar (nullable qualifies the base,
// array/maybe/uniqueptr wrap the whole thing) but are represented here as
// flags rather than a nested structure, since the checker only ever needs
// to ask "is this spec array-of / maybe-of / uniqueptr-of something".
type TypeSpec struct {
	Spec      QualifiedId
	Nullable  bool
	Array     bool
	Maybe     bool
	UniquePtr bool
	Loc       Location
}

func (t TypeSpec) Location() Location { return t.Loc }

// Field is a named member of a struct declaration.
type Field struct {
	Name     Ident
	TypeSpec TypeSpec
}

// UsingDecl declares that a C++ type named elsewhere may be used as an
// IPDL type, optionally describing its ref-counting and move semantics.
type UsingDecl struct {
	CxxType    TypeSpec
	Refcounted bool
	Moveonly   bool
}

// StructDecl declares a struct type: a named, ordered list of fields.
type StructDecl struct {
	NS     Namespace
	Fields []Field
}

// UnionDecl declares a union type: a named list of alternative component
// types, any one of which a value of the union may hold.
type UnionDecl struct {
	NS         Namespace
	Components []TypeSpec
}

// Param is a single message parameter: an argument when in the "in" list,
// a return value when in the "out" list.
type Param struct {
	Name     Ident
	TypeSpec TypeSpec
}

// MessageDecl declares a single message a protocol may send or receive.
type MessageDecl struct {
	Name          Ident
	SendSemantics SendSemantics
	Nested        Nesting
	Prio          Priority
	Direction     Direction
	InParams      []Param
	OutParams     []Param
	Compress      Compress
	Verify        bool
}

// ManagerDecl names a candidate manager protocol, as written in a
// "manager Foo;" clause. There may be several; each one that resolves to a
// protocol is recorded as a manager of the declaring protocol.
type ManagerDecl struct {
	Name Ident
}

// ManagesDecl names a protocol this protocol may manage, as written in a
// "manages Foo;" clause.
type ManagesDecl struct {
	Name Ident
}

// ProtocolDecl is the parsed body of a "protocol Foo { ... }" declaration.
type ProtocolDecl struct {
	NS            Namespace
	SendSemantics SendSemantics
	Nested        Nesting
	Managers      []ManagerDecl
	Manages       []ManagesDecl
	Messages      []MessageDecl
}

// Include names another translation unit this one depends on, either
// because it includes a protocol definition or only type/using
// declarations (a "header" include, in IPDL terms).
type Include struct {
	Name    QualifiedId
	IsProtocol bool
}

// TranslationUnit is everything the parser extracts from one .ipdl (or
// .ipdlh) file: its own namespace, an optional protocol, the structs and
// unions it declares, the C++ types it imports via "using", and the other
// translation units it includes.
type TranslationUnit struct {
	FilePath string
	NS       Namespace
	Protocol *ProtocolDecl
	Includes []Include
	Usings   []UsingDecl
	Structs  []StructDecl
	Unions   []UnionDecl
}

// IsHeader reports whether this translation unit declares no protocol,
// i.e. it only contributes type declarations to translation units that
// include it.
func (tu *TranslationUnit) IsHeader() bool { return tu.Protocol == nil }
