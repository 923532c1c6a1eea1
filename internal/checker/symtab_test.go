package checker

import (
	"testing"

	"github.com/ipdl-lang/ipdlc/ast"
	"github.com/ipdl-lang/ipdlc/internal/testutil"
	"github.com/ipdl-lang/ipdlc/model"
)

func mkDecl(name string, line int) decl {
	return decl{
		loc:  ast.Pos{File: "t.ipdl", Line: line},
		typ:  model.NewShmemType(),
		name: name,
	}
}

func TestSymtabDeclareAndLookup(t *testing.T) {
	st := newSymtab()
	testutil.Len(t, st.declare(mkDecl("Foo", 1)), 0, "unexpected diagnostics")

	d, ok := st.lookup("Foo")
	testutil.True(t, ok, "expected Foo to be found")
	testutil.Equal(t, "Foo", d.name)
}

func TestSymtabRedeclarationInSameScope(t *testing.T) {
	st := newSymtab()
	st.declare(mkDecl("Foo", 1))
	diags := st.declare(mkDecl("Foo", 2))
	testutil.Len(t, diags, 1)

	want := "redeclaration of symbol `Foo', first declared at t.ipdl:1"
	testutil.Equal(t, want, diags[0].Message)

	// The original binding must be kept.
	d, _ := st.lookup("Foo")
	testutil.Equal(t, "t.ipdl:1", d.loc.String(), "lookup did not return the first declaration")
}

func TestSymtabScopesShadowButDoNotLeak(t *testing.T) {
	st := newSymtab()
	st.declare(mkDecl("Foo", 1))

	st.enterScope()
	testutil.Len(t, st.declare(mkDecl("Bar", 2)), 0, "unexpected diagnostics")
	_, ok := st.lookup("Foo")
	testutil.True(t, ok, "inner scope should see outer declarations")
	st.exitScope()

	_, ok = st.lookup("Bar")
	testutil.False(t, ok, "Bar should not be visible after exiting its scope")
}

func TestSymtabDualBinding(t *testing.T) {
	st := newSymtab()
	d := decl{loc: ast.Pos{File: "t.ipdl", Line: 1}, typ: model.NewShmemType(), name: "Bar", fullName: "foo::Bar"}
	testutil.Len(t, st.declare(d), 0, "unexpected diagnostics")

	_, ok := st.lookup("Bar")
	testutil.True(t, ok, "short name should resolve")
	_, ok = st.lookup("foo::Bar")
	testutil.True(t, ok, "full name should resolve")
}

func TestSymtabLookupMissing(t *testing.T) {
	st := newSymtab()
	_, ok := st.lookup("Nope")
	testutil.False(t, ok, "expected lookup of undeclared name to fail")
}
