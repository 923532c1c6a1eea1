package checker

import (
	"github.com/ipdl-lang/ipdlc/ast"
	"github.com/ipdl-lang/ipdlc/model"
)

var endpointQuals = []string{"mozilla", "ipc"}

// declareProtocolStub declares a protocol's own type under its qualified
// name, plus the four synthetic endpoint-wrapper names user code writes
// when transferring actor ownership across a process boundary.
func declareProtocolStub(st *symtab, id model.TUId, ns ast.Namespace) []ast.Diagnostic {
	var diags []ast.Diagnostic

	qname := ns.QName()
	diags = append(diags, st.declare(decl{
		loc: qname.Loc(), typ: model.NewProtocolType(id),
		name: qname.ShortName(), fullName: qname.FullName(),
	})...)

	loc := ns.Name.Loc
	declareEndpoint := func(managed bool, side string) {
		wrapper := "Endpoint"
		if managed {
			wrapper = "ManagedEndpoint"
		}
		fullName := wrapper + "<" + qname.String() + side + ">"
		shortName := wrapper + "<" + ns.Name.Name + side + ">"
		base := ast.NewIdent(fullName, loc)
		fullQID := ast.NewQualifiedId(endpointQuals, base)

		var t model.Type
		if managed {
			t = model.NewManagedEndpointType(id)
		} else {
			t = model.NewEndpointType(id)
		}
		diags = append(diags, st.declare(decl{loc: loc, typ: t, name: shortName, fullName: fullQID.FullName()})...)
	}
	declareEndpoint(true, "Parent")
	declareEndpoint(true, "Child")
	declareEndpoint(false, "Parent")
	declareEndpoint(false, "Child")

	return diags
}

// declareIncludes imports the declarations of every translation unit this
// one includes: just the protocol type if the included unit defines one,
// otherwise its using-declarations and struct/union forward declarations
// (a "header" include).
func (c *Context) declareIncludes(st *symtab, tu *ast.TranslationUnit) []ast.Diagnostic {
	var diags []ast.Diagnostic
	for _, inc := range tu.Includes {
		incID, ok := c.resolveTUId(inc.Name)
		if !ok {
			continue
		}
		incTU := c.TUs[incID]
		if incTU.Protocol != nil {
			diags = append(diags, declareProtocolStub(st, incID, incTU.NS)...)
			continue
		}
		for _, u := range incTU.Usings {
			diags = append(diags, declareUsing(st, u)...)
		}
		diags = append(diags, c.declareForwardStructsUnions(st, incID, incTU)...)
	}
	return diags
}

func declareUsing(st *symtab, u ast.UsingDecl) []ast.Diagnostic {
	return declareCxxType(st, u.CxxType.Spec, u.Refcounted, u.Moveonly)
}

// declareForwardStructsUnions forward-declares id's structs and unions in
// the given symbol table without filling their bodies. Used both for the
// owning unit (ahead of body-filling) and for header includes (whose
// bodies are never re-checked by the including unit).
func (c *Context) declareForwardStructsUnions(st *symtab, id model.TUId, tu *ast.TranslationUnit) []ast.Diagnostic {
	var diags []ast.Diagnostic
	tut := c.Prog.Unit(id)
	for i, s := range tu.Structs {
		qname := s.NS.QName()
		ref := model.TypeRef{TU: id, Index: i}
		diags = append(diags, st.declare(decl{
			loc: qname.Loc(), typ: model.NewStructType(ref),
			name: qname.ShortName(), fullName: qname.FullName(),
		})...)
		_ = tut
	}
	for i, u := range tu.Unions {
		qname := u.NS.QName()
		ref := model.TypeRef{TU: id, Index: i}
		diags = append(diags, st.declare(decl{
			loc: qname.Loc(), typ: model.NewUnionType(ref),
			name: qname.ShortName(), fullName: qname.FullName(),
		})...)
	}
	return diags
}

// GatherUnit runs the declaration-gathering phase for one translation
// unit: populates its typed shell's structs, unions, and protocol, and
// adds the diagnostics produced while doing so to c.
func (c *Context) GatherUnit(id model.TUId) {
	tu := c.TUs[id]
	tut := c.Prog.Unit(id)
	st := newSymtab()

	if tu.Protocol != nil {
		c.addDiags(declareProtocolStub(st, id, tu.NS))
	}

	c.addDiags(c.declareIncludes(st, tu))

	for _, name := range builtinTypeNames {
		c.addDiags(declareCxxType(st, qualifiedIdFromDotted(name), false, false))
	}

	for _, u := range tu.Usings {
		c.addDiags(declareUsing(st, u))
	}

	for _, s := range tu.Structs {
		tut.AppendStruct(model.NewStructDef(s.NS.QName()))
	}
	for _, u := range tu.Unions {
		tut.AppendUnion(model.NewUnionDef(u.NS.QName()))
	}
	c.addDiags(c.declareForwardStructsUnions(st, id, tu))

	for i, s := range tu.Structs {
		c.addDiags(fillStruct(st, s, tut.Structs()[i]))
	}
	for i, u := range tu.Unions {
		c.addDiags(fillUnion(st, u, tut.Unions()[i]))
	}

	if tu.Protocol != nil {
		c.addDiags(c.fillProtocol(st, id, tu))
	}
}
