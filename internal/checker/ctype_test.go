package checker

import (
	"testing"

	"github.com/ipdl-lang/ipdlc/ast"
	"github.com/ipdl-lang/ipdlc/internal/testutil"
	"github.com/ipdl-lang/ipdlc/model"
)

func fooQID(line int) ast.QualifiedId {
	return ast.NewQualifiedId([]string{"mozilla"}, ast.NewIdent("Foo", ast.Pos{File: "t.ipdl", Line: line}))
}

func TestDeclareCxxTypeShmemGetsDistinguishedType(t *testing.T) {
	st := newSymtab()
	diags := declareCxxType(st, qualifiedIdFromDotted(shmemFullName), false, false)
	testutil.Len(t, diags, 0, "unexpected diagnostics")

	d, ok := st.lookup("Shmem")
	testutil.True(t, ok, "expected Shmem to be declared")
	testutil.Equal(t, model.KindShmem, d.typ.Kind())
}

func TestDeclareCxxTypeMatchingRedeclarationIsSilentlyAccepted(t *testing.T) {
	st := newSymtab()
	testutil.Len(t, declareCxxType(st, fooQID(1), true, false), 0)
	diags := declareCxxType(st, fooQID(2), true, false)
	testutil.Len(t, diags, 0, "a matching redeclaration should not be diagnosed")
}

func TestDeclareCxxTypeInconsistentRefcountedIsDiagnosed(t *testing.T) {
	st := newSymtab()
	testutil.Len(t, declareCxxType(st, fooQID(1), true, false), 0)
	diags := declareCxxType(st, fooQID(2), false, false)
	testutil.Len(t, diags, 1)
	want := "inconsistent refcounted status of type `mozilla::Foo', first declared at t.ipdl:1"
	testutil.Equal(t, want, diags[0].Message)
}

func TestDeclareCxxTypeInconsistentMoveonlyIsDiagnosed(t *testing.T) {
	st := newSymtab()
	testutil.Len(t, declareCxxType(st, fooQID(1), false, true), 0)
	diags := declareCxxType(st, fooQID(2), false, false)
	testutil.Len(t, diags, 1)
	want := "inconsistent moveonly status of type `mozilla::Foo', first declared at t.ipdl:1"
	testutil.Equal(t, want, diags[0].Message)
}
