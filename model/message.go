package model

import "github.com/ipdl-lang/ipdlc/ast"

// MessageClass tags what a message declaration actually is, once its name
// has been resolved against the enclosing scope.
type MessageClass int

const (
	ClassOther MessageClass = iota
	ClassCtor
	ClassDtor
)

// MessageKind carries a message's classification plus, for ctors and
// dtors, the protocol the classification refers to: the constructed
// protocol for a ctor, the owning protocol for a dtor.
type MessageKind struct {
	Class  MessageClass
	Target TUId
	Owner  TUId
}

func (k MessageKind) IsCtor() bool { return k.Class == ClassCtor }
func (k MessageKind) IsDtor() bool { return k.Class == ClassDtor }

// ConstructedType returns the protocol a ctor message constructs. Only
// meaningful when IsCtor is true.
func (k MessageKind) ConstructedType() TUId { return k.Target }

// ParamDef is a single typed message parameter.
type ParamDef struct {
	Name string
	Type Type
}

// MessageDef is the typed form of a message declaration.
type MessageDef struct {
	name          string
	loc           ast.Location
	sendSemantics ast.SendSemantics
	nested        ast.Nesting
	prio          ast.Priority
	direction     ast.Direction
	params        []ParamDef
	returns       []ParamDef
	kind          MessageKind
	compress      ast.Compress
	verify        bool
}

// NewMessageDef builds a message definition; params/returns are appended
// afterward via AppendParam/AppendReturn as the declaration gatherer
// resolves each parameter's type.
func NewMessageDef(name string, loc ast.Location, send ast.SendSemantics, nested ast.Nesting,
	prio ast.Priority, dir ast.Direction, compress ast.Compress, verify bool, kind MessageKind) *MessageDef {
	return &MessageDef{
		name: name, loc: loc, sendSemantics: send, nested: nested,
		prio: prio, direction: dir, compress: compress, verify: verify, kind: kind,
	}
}

func (m *MessageDef) Name() string                 { return m.name }
func (m *MessageDef) Loc() ast.Location             { return m.loc }
func (m *MessageDef) SendSemantics() ast.SendSemantics { return m.sendSemantics }
func (m *MessageDef) Nested() ast.Nesting           { return m.nested }
func (m *MessageDef) Prio() ast.Priority            { return m.prio }
func (m *MessageDef) Direction() ast.Direction      { return m.direction }
func (m *MessageDef) Params() []ParamDef            { return m.params }
func (m *MessageDef) Returns() []ParamDef           { return m.returns }
func (m *MessageDef) Kind() MessageKind             { return m.kind }
func (m *MessageDef) Compress() ast.Compress         { return m.compress }
func (m *MessageDef) Verify() bool                  { return m.verify }

func (m *MessageDef) IsCtor() bool { return m.kind.IsCtor() }
func (m *MessageDef) IsDtor() bool { return m.kind.IsDtor() }

func (m *MessageDef) IsAsync() bool { return m.sendSemantics.IsAsync() }
func (m *MessageDef) IsSync() bool  { return m.sendSemantics.IsSync() }
func (m *MessageDef) IsIntr() bool  { return m.sendSemantics.IsIntr() }

// ConstructedType returns the protocol this ctor message constructs.
func (m *MessageDef) ConstructedType() TUId { return m.kind.ConstructedType() }

// Strength returns this message's point strength envelope.
func (m *MessageDef) Strength() MessageStrength {
	return MessageStrengthOf(m.sendSemantics, m.nested)
}

// ConvertsTo reports whether this message may stand in for a protocol (or
// another message) with the given strength.
func (m *MessageDef) ConvertsTo(other MessageStrength) bool {
	return m.Strength().ConvertsTo(other)
}

// AppendParam appends a resolved in-parameter.
func (m *MessageDef) AppendParam(p ParamDef) { m.params = append(m.params, p) }

// AppendReturn appends a resolved out-parameter.
func (m *MessageDef) AppendReturn(p ParamDef) { m.returns = append(m.returns, p) }
