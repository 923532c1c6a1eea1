package checker

import (
	"fmt"
	"path/filepath"

	"github.com/ipdl-lang/ipdlc/ast"
)

// CheckFilename verifies that a translation unit defining a protocol
// originates from a file whose basename is "<Protocol>.ipdl". This check
// is unrelated to types and is fatal rather than accumulated: a mismatch
// means the build's file layout itself is wrong, not a single bad
// declaration.
func CheckFilename(tu *ast.TranslationUnit) error {
	if tu.Protocol == nil {
		return nil
	}
	base := filepath.Base(tu.FilePath)
	expected := tu.NS.Name.Name + ".ipdl"
	if base != expected {
		return fmt.Errorf(
			"expected file for translation unit `%s' to be named `%s'; instead it's named `%s'",
			tu.NS.Name.Name, expected, base)
	}
	return nil
}
