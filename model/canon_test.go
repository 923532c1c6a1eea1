package model

import (
	"testing"

	"github.com/ipdl-lang/ipdlc/ast"
	"github.com/ipdl-lang/ipdlc/internal/testutil"
)

func structRef() Type {
	return NewStructType(TypeRef{TU: NewTUId("Foo"), Index: 0})
}

func TestCanonicalizeNoModifiers(t *testing.T) {
	base := structRef()
	got, diags := Canonicalize(base, ast.TypeSpec{})
	testutil.Len(t, diags, 0, "unexpected diagnostics")
	testutil.Equal(t, KindStruct, got.Kind())
}

func TestCanonicalizeModifierOrder(t *testing.T) {
	base := structRef()
	got, diags := Canonicalize(base, ast.TypeSpec{Array: true, Maybe: true})
	testutil.Len(t, diags, 0, "unexpected diagnostics")

	// maybe(array(struct)), since modifiers wrap in array, maybe, uniqueptr order.
	testutil.Equal(t, KindMaybe, got.Kind(), "outer kind")
	testutil.Equal(t, KindArray, got.Inner().Kind(), "inner kind")
	testutil.Equal(t, KindStruct, got.Inner().Inner().Kind(), "innermost kind")
}

func TestCanonicalizeProtocolRewritesToActor(t *testing.T) {
	tu := NewTUId("Foo")
	base := NewProtocolType(tu)
	got, diags := Canonicalize(base, ast.TypeSpec{Nullable: true})
	testutil.Len(t, diags, 0, "unexpected diagnostics")
	testutil.Equal(t, KindActor, got.Kind())
	testutil.True(t, got.Nullable(), "expected nullable actor type")
	testutil.Equal(t, tu, got.Protocol())
}

func TestCanonicalizeArrayOfProtocolWrapsTheActor(t *testing.T) {
	tu := NewTUId("Foo")
	base := NewProtocolType(tu)
	got, diags := Canonicalize(base, ast.TypeSpec{Array: true})
	testutil.Len(t, diags, 0, "unexpected diagnostics")

	testutil.Equal(t, KindArray, got.Kind(), "outer kind")
	testutil.Equal(t, KindActor, got.Inner().Kind(), "inner kind")
	testutil.Equal(t, tu, got.Inner().Protocol())
}

func TestCanonicalizeNullableOnNonProtocolIsDiagnosed(t *testing.T) {
	base := structRef()
	_, diags := Canonicalize(base, ast.TypeSpec{Nullable: true})
	testutil.Len(t, diags, 1)
	want := "'nullable' qualifier for " + base.TypeName() + " makes no sense"
	testutil.Equal(t, want, diags[0].Message)
}

func TestCanonicalizeIsNoOpWhenNoModifiers(t *testing.T) {
	base := structRef()
	first, _ := Canonicalize(base, ast.TypeSpec{})
	second, _ := Canonicalize(first, ast.TypeSpec{})
	testutil.Equal(t, first.Kind(), second.Kind(), "kind changed across a no-op canonicalize")
	testutil.Equal(t, first.Ref(), second.Ref(), "ref changed across a no-op canonicalize")
}
