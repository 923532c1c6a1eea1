package checker

import "github.com/ipdl-lang/ipdlc/model"

type compoundKind int

const (
	compoundStruct compoundKind = iota
	compoundUnion
)

type definedKey struct {
	kind compoundKind
	ref  model.TypeRef
}

type definedState int

const (
	stateUnknown definedState = iota
	stateVisiting
	stateDefinedTrue
	stateDefinedFalse
)

// fullyDefined reports whether t is fully defined: a struct is defined iff
// every field is defined, a union iff some component is. Array/Maybe/
// UniquePtr wrappers are transparent; every other variant is a leaf and is
// always defined. The memo table is shared across the whole run so a type
// referenced from multiple places is only walked once, and a struct/union
// encountered while it is still being visited (an unfounded cycle) is
// treated as not defined for that edge without recursing forever.
func (c *Context) fullyDefined(t model.Type) bool {
	var key definedKey
	switch t.Kind() {
	case model.KindStruct:
		key = definedKey{kind: compoundStruct, ref: t.Ref()}
	case model.KindUnion:
		key = definedKey{kind: compoundUnion, ref: t.Ref()}
	case model.KindArray, model.KindMaybe, model.KindUniquePtr:
		return c.fullyDefined(t.Inner())
	default:
		return true
	}

	switch c.definedMemo[key] {
	case stateVisiting:
		return false
	case stateDefinedTrue:
		return true
	case stateDefinedFalse:
		return false
	}

	c.definedMemo[key] = stateVisiting

	var isDefined bool
	switch key.kind {
	case compoundStruct:
		sdef := c.Prog.LookupStruct(key.ref)
		isDefined = true
		for _, f := range sdef.Fields() {
			if !c.fullyDefined(f) {
				isDefined = false
				break
			}
		}
	case compoundUnion:
		udef := c.Prog.LookupUnion(key.ref)
		isDefined = false
		for _, comp := range udef.Components() {
			if c.fullyDefined(comp) {
				isDefined = true
				break
			}
		}
	}

	if isDefined {
		c.definedMemo[key] = stateDefinedTrue
	} else {
		c.definedMemo[key] = stateDefinedFalse
	}

	return isDefined
}
