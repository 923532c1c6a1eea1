package model

import "github.com/ipdl-lang/ipdlc/ast"

// Canonicalize applies a parsed type-spec's modifiers to a base type
// resolved by name lookup, producing the final form stored in the typed
// model. Order matters: array-of-maybe differs from maybe-of-array, so
// modifiers are applied in the fixed order array, then maybe, then
// uniqueptr. A ProtocolType base is rewritten to ActorType first — the
// only site where the nullable bit is consumed — and the array/maybe/
// uniqueptr wraps still apply on top of it, so `Foo[]` for a declared
// protocol `Foo` canonicalizes to an array of actor type.
func Canonicalize(base Type, spec ast.TypeSpec) (Type, []ast.Diagnostic) {
	var diags []ast.Diagnostic

	t := base
	if base.Kind() == KindProtocol {
		t = NewActorType(base.Protocol(), spec.Nullable)
	} else if spec.Nullable {
		diags = append(diags, ast.Diagnostic{
			Loc:     spec.Loc,
			Message: "'nullable' qualifier for " + base.TypeName() + " makes no sense",
		})
	}

	if spec.Array {
		t = NewArrayType(t)
	}
	if spec.Maybe {
		t = NewMaybeType(t)
	}
	if spec.UniquePtr {
		t = NewUniquePtrType(t)
	}
	return t, diags
}
