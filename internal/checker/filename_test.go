package checker

import (
	"testing"

	"github.com/ipdl-lang/ipdlc/ast"
	"github.com/ipdl-lang/ipdlc/internal/testutil"
)

func TestCheckFilenameAcceptsAMatchingName(t *testing.T) {
	tu := &ast.TranslationUnit{
		FilePath: "path/to/Foo.ipdl",
		NS:       ast.Namespace{Name: ast.Ident{Name: "Foo"}},
		Protocol: &ast.ProtocolDecl{},
	}
	testutil.NoError(t, CheckFilename(tu))
}

func TestCheckFilenameRejectsAMismatchedName(t *testing.T) {
	tu := &ast.TranslationUnit{
		FilePath: "path/to/Wrong.ipdl",
		NS:       ast.Namespace{Name: ast.Ident{Name: "Foo"}},
		Protocol: &ast.ProtocolDecl{},
	}
	testutil.Error(t, CheckFilename(tu))
}

func TestCheckFilenameSkipsHeaders(t *testing.T) {
	tu := &ast.TranslationUnit{
		FilePath: "path/to/Anything.ipdlh",
		NS:       ast.Namespace{Name: ast.Ident{Name: "Foo"}},
	}
	testutil.NoError(t, CheckFilename(tu))
}
