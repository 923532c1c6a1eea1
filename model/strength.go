package model

import "github.com/ipdl-lang/ipdlc/ast"

// MessageStrength is the send-semantics/nesting envelope of a message or
// protocol, used to decide whether one may stand in for (convert to)
// another. A message's envelope is a single point (nested_min == nested_max
// == its own nesting level); a protocol's envelope spans from None up to
// its declared max nesting.
type MessageStrength struct {
	SendSemantics ast.SendSemantics
	NestedMin     ast.Nesting
	NestedMax     ast.Nesting
}

// MessageStrengthOf builds the point envelope of a single message.
func MessageStrengthOf(send ast.SendSemantics, nested ast.Nesting) MessageStrength {
	return MessageStrength{SendSemantics: send, NestedMin: nested, NestedMax: nested}
}

// ProtocolStrengthOf builds the envelope of a protocol with the given
// send-semantics ceiling and maximum nesting.
func ProtocolStrengthOf(send ast.SendSemantics, maxNesting ast.Nesting) MessageStrength {
	return MessageStrength{SendSemantics: send, NestedMin: ast.NestingNone, NestedMax: maxNesting}
}

// ConvertsTo reports whether a message/protocol with strength a may be
// used where b is required: a's nesting range must fit inside b's, and
// their send-semantics must be compatible.
func (a MessageStrength) ConvertsTo(b MessageStrength) bool {
	if a.NestedMin < b.NestedMin || a.NestedMax > b.NestedMax {
		return false
	}
	if b.SendSemantics == ast.SendIntr {
		return a.NestedMin == ast.NestingNone && a.NestedMax == ast.NestingNone
	}
	switch a.SendSemantics {
	case ast.SendAsync:
		return true
	case ast.SendSync:
		return b.SendSemantics != ast.SendAsync
	case ast.SendIntr:
		return false
	default:
		return false
	}
}
