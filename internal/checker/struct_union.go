package checker

import (
	"github.com/ipdl-lang/ipdlc/ast"
	"github.com/ipdl-lang/ipdlc/model"
)

// fillStruct resolves and canonicalizes every field of a struct
// declaration, appending the resulting types to sdef. An unknown field
// type is diagnosed and the field is dropped, rather than inserted as a
// placeholder. Field names are declared in a scope local to this struct so
// duplicate field names are caught the same way any other redeclaration is.
func fillStruct(st *symtab, s ast.StructDecl, sdef *model.StructDef) []ast.Diagnostic {
	var diags []ast.Diagnostic

	st.enterScope()
	for _, f := range s.Fields {
		tyString := f.TypeSpec.Spec.String()
		base, ok := st.lookup(tyString)
		if !ok {
			diags = append(diags, ast.Diagnostic{
				Loc: f.Name.Loc,
				Message: "field `" + f.Name.Name + "' of struct `" + s.NS.QName().ShortName() +
					"' has unknown type `" + tyString + "'",
			})
			continue
		}

		ft, cdiags := model.Canonicalize(base.typ, f.TypeSpec)
		diags = append(diags, cdiags...)

		diags = append(diags, st.declare(decl{loc: f.Name.Loc, typ: ft, name: f.Name.Name})...)
		sdef.AppendField(ft)
	}
	st.exitScope()

	return diags
}

// fillUnion resolves and canonicalizes every component of a union
// declaration. Unlike struct fields, components have no name and so are
// not declared in a scope.
func fillUnion(st *symtab, u ast.UnionDecl, udef *model.UnionDef) []ast.Diagnostic {
	var diags []ast.Diagnostic

	for _, c := range u.Components {
		cString := c.Spec.String()
		base, ok := st.lookup(cString)
		if !ok {
			diags = append(diags, ast.Diagnostic{
				Loc: c.Loc,
				Message: "unknown component type `" + cString + "' of union `" + u.NS.QName().ShortName() + "'",
			})
			continue
		}

		ct, cdiags := model.Canonicalize(base.typ, c)
		diags = append(diags, cdiags...)
		udef.AppendComponent(ct)
	}

	return diags
}
