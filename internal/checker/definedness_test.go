package checker

import (
	"testing"

	"github.com/ipdl-lang/ipdlc/ast"
	"github.com/ipdl-lang/ipdlc/internal/testutil"
	"github.com/ipdl-lang/ipdlc/internal/types"
	"github.com/ipdl-lang/ipdlc/model"
)

func newTestContext() *Context {
	return NewContext(map[model.TUId]*ast.TranslationUnit{}, types.Logger{}, false)
}

func TestFullyDefinedLeafTypesAreAlwaysDefined(t *testing.T) {
	c := newTestContext()
	testutil.True(t, c.fullyDefined(model.NewShmemType()))
	testutil.True(t, c.fullyDefined(model.NewFDType()))
}

func TestFullyDefinedSelfReferentialStructIsNotDefined(t *testing.T) {
	c := newTestContext()
	id := model.NewTUId("T")
	tut := model.NewTranslationUnitType(id)
	c.Prog.Put(tut)

	sdef := model.NewStructDef(ast.QualifiedId{Base: ast.Ident{Name: "Bad"}})
	idx := tut.AppendStruct(sdef)
	ref := model.TypeRef{TU: id, Index: idx}
	sdef.AppendField(model.NewStructType(ref))

	testutil.False(t, c.fullyDefined(model.NewStructType(ref)), "a struct that only contains itself should not be defined")
}

func TestFullyDefinedUnionWithBaseCaseIsDefined(t *testing.T) {
	c := newTestContext()
	id := model.NewTUId("T")
	tut := model.NewTranslationUnitType(id)
	c.Prog.Put(tut)

	udef := model.NewUnionDef(ast.QualifiedId{Base: ast.Ident{Name: "Good"}})
	idx := tut.AppendUnion(udef)
	ref := model.TypeRef{TU: id, Index: idx}
	udef.AppendComponent(model.NewUnionType(ref))
	udef.AppendComponent(model.NewShmemType())

	testutil.True(t, c.fullyDefined(model.NewUnionType(ref)), "a union with one terminating component should be defined")
}

func TestFullyDefinedArrayIsTransparentToItsInner(t *testing.T) {
	c := newTestContext()
	id := model.NewTUId("T")
	tut := model.NewTranslationUnitType(id)
	c.Prog.Put(tut)

	sdef := model.NewStructDef(ast.QualifiedId{Base: ast.Ident{Name: "Bad"}})
	idx := tut.AppendStruct(sdef)
	ref := model.TypeRef{TU: id, Index: idx}
	sdef.AppendField(model.NewStructType(ref))

	arr := model.NewArrayType(model.NewStructType(ref))
	testutil.False(t, c.fullyDefined(arr), "an array of an undefined struct should not be defined")
}
