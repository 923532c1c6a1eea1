package model

import "sort"

// TranslationUnitType is the typed shell for one translation unit: its
// struct and union tables, plus an optional protocol definition. Created
// empty in phase 1; structs and unions are appended in phase 2 as they are
// forward-declared, then filled in place (StructDef/UnionDef values are
// pointers, so filling a body after forward declaration does not require
// re-indexing the table).
type TranslationUnitType struct {
	id       TUId
	structs  []*StructDef
	unions   []*UnionDef
	protocol *ProtocolDef
}

// NewTranslationUnitType creates an empty typed shell for id.
func NewTranslationUnitType(id TUId) *TranslationUnitType {
	return &TranslationUnitType{id: id}
}

func (t *TranslationUnitType) ID() TUId              { return t.id }
func (t *TranslationUnitType) Structs() []*StructDef { return t.structs }
func (t *TranslationUnitType) Unions() []*UnionDef   { return t.unions }
func (t *TranslationUnitType) Protocol() *ProtocolDef { return t.protocol }

// AppendStruct forward-declares a new struct, returning its index for a TypeRef.
func (t *TranslationUnitType) AppendStruct(s *StructDef) int {
	t.structs = append(t.structs, s)
	return len(t.structs) - 1
}

// AppendUnion forward-declares a new union, returning its index for a TypeRef.
func (t *TranslationUnitType) AppendUnion(u *UnionDef) int {
	t.unions = append(t.unions, u)
	return len(t.unions) - 1
}

// SetProtocol installs this unit's protocol definition, if it has one.
func (t *TranslationUnitType) SetProtocol(p *ProtocolDef) { t.protocol = p }

// LookupStruct resolves a TypeRef against this unit's struct table.
func (t *TranslationUnitType) LookupStruct(ref TypeRef) *StructDef {
	if ref.Index < 0 || ref.Index >= len(t.structs) {
		return nil
	}
	return t.structs[ref.Index]
}

// LookupUnion resolves a TypeRef against this unit's union table.
func (t *TranslationUnitType) LookupUnion(ref TypeRef) *UnionDef {
	if ref.Index < 0 || ref.Index >= len(t.unions) {
		return nil
	}
	return t.unions[ref.Index]
}

// Program is the full output of an analyzer run: every translation unit's
// typed shell, keyed by TUId.
type Program struct {
	units map[TUId]*TranslationUnitType
}

// NewProgram creates an empty program.
func NewProgram() *Program {
	return &Program{units: make(map[TUId]*TranslationUnitType)}
}

// Put installs a translation unit's typed shell.
func (p *Program) Put(u *TranslationUnitType) { p.units[u.ID()] = u }

// Unit looks up a translation unit's typed shell by id.
func (p *Program) Unit(id TUId) *TranslationUnitType { return p.units[id] }

// Units returns all translation units, sorted by TUId for deterministic
// iteration.
func (p *Program) Units() []*TranslationUnitType {
	result := make([]*TranslationUnitType, 0, len(p.units))
	for _, u := range p.units {
		result = append(result, u)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID().String() < result[j].ID().String()
	})
	return result
}

// LookupStruct resolves a TypeRef across the whole program, following the
// ref's own TUId rather than assuming the caller's current unit.
func (p *Program) LookupStruct(ref TypeRef) *StructDef {
	u := p.Unit(ref.TU)
	if u == nil {
		return nil
	}
	return u.LookupStruct(ref)
}

// LookupUnion resolves a TypeRef across the whole program.
func (p *Program) LookupUnion(ref TypeRef) *UnionDef {
	u := p.Unit(ref.TU)
	if u == nil {
		return nil
	}
	return u.LookupUnion(ref)
}
