package model

import "github.com/ipdl-lang/ipdlc/ast"

// ProtocolDef is the typed form of a protocol declaration.
type ProtocolDef struct {
	qname               ast.QualifiedId
	sendSemantics       ast.SendSemantics
	maxNesting          ast.Nesting
	managers            []TUId
	manages             []TUId
	messages            []*MessageDef
	hasDelete           bool
	hasReentrantDelete  bool
}

// NewProtocolDef creates an empty protocol shell under the given qualified
// name, with the send-semantics and max nesting declared on the protocol
// header (these bound every message it may carry; see MessageStrength).
func NewProtocolDef(qname ast.QualifiedId, send ast.SendSemantics, maxNesting ast.Nesting) *ProtocolDef {
	return &ProtocolDef{qname: qname, sendSemantics: send, maxNesting: maxNesting}
}

func (p *ProtocolDef) QName() ast.QualifiedId          { return p.qname }
func (p *ProtocolDef) SendSemantics() ast.SendSemantics { return p.sendSemantics }
func (p *ProtocolDef) MaxNesting() ast.Nesting          { return p.maxNesting }
func (p *ProtocolDef) Managers() []TUId                 { return p.managers }
func (p *ProtocolDef) Manages() []TUId                  { return p.manages }
func (p *ProtocolDef) Messages() []*MessageDef          { return p.messages }
func (p *ProtocolDef) HasDelete() bool                  { return p.hasDelete }
func (p *ProtocolDef) HasReentrantDelete() bool         { return p.hasReentrantDelete }

// IsTopLevel reports whether this protocol has no managers.
func (p *ProtocolDef) IsTopLevel() bool { return len(p.managers) == 0 }

// IsEmpty reports whether this protocol declares no managers and no
// messages, the shape the top-level-empty-protocol check rejects.
func (p *ProtocolDef) IsEmpty() bool { return len(p.managers) == 0 && len(p.messages) == 0 }

// Strength returns this protocol's strength envelope.
func (p *ProtocolDef) Strength() MessageStrength {
	return ProtocolStrengthOf(p.sendSemantics, p.maxNesting)
}

// ConvertsTo reports whether this protocol may stand in for another
// strength (used when checking a managed protocol against its manager).
func (p *ProtocolDef) ConvertsTo(other MessageStrength) bool {
	return p.Strength().ConvertsTo(other)
}

// ManagesProtocol reports whether candidate appears in this protocol's
// manages list.
func (p *ProtocolDef) ManagesProtocol(candidate TUId) bool {
	for _, m := range p.manages {
		if m == candidate {
			return true
		}
	}
	return false
}

// ManagedBy reports whether candidate appears in this protocol's managers list.
func (p *ProtocolDef) ManagedBy(candidate TUId) bool {
	for _, m := range p.managers {
		if m == candidate {
			return true
		}
	}
	return false
}

// AddManager records a manager protocol. Duplicate detection happens at
// the declaration-gathering layer, which tracks the manager names it has
// already seen before calling this.
func (p *ProtocolDef) AddManager(tu TUId) { p.managers = append(p.managers, tu) }

// AddManages records a managed protocol.
func (p *ProtocolDef) AddManages(tu TUId) { p.manages = append(p.manages, tu) }

// AppendMessage appends a message to the protocol's message table and
// returns its index, for stamping into the MessageType declared alongside it.
func (p *ProtocolDef) AppendMessage(m *MessageDef) int {
	p.messages = append(p.messages, m)
	return len(p.messages) - 1
}

func (p *ProtocolDef) SetHasDelete(v bool)          { p.hasDelete = v }
func (p *ProtocolDef) SetHasReentrantDelete(v bool) { p.hasReentrantDelete = v }
