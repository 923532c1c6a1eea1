package checker

import (
	"github.com/ipdl-lang/ipdlc/ast"
	"github.com/ipdl-lang/ipdlc/model"
)

// fillProtocol fills in a protocol's body: manager/manages references,
// the empty-top-level check, its messages, and its destructor bits. The
// protocol definition itself was already stubbed in stub construction, so
// this only appends to it.
func (c *Context) fillProtocol(st *symtab, id model.TUId, tu *ast.TranslationUnit) []ast.Diagnostic {
	var diags []ast.Diagnostic
	p := tu.Protocol
	protoType := c.Prog.Unit(id).Protocol()

	st.enterScope()

	seenManagers := make(map[string]bool)
	for _, m := range p.Managers {
		if seenManagers[m.Name.Name] {
			diags = append(diags, ast.Diagnostic{
				Loc:     m.Name.Loc,
				Message: "manager `" + m.Name.Name + "' appears multiple times",
			})
			continue
		}
		seenManagers[m.Name.Name] = true
		diags = append(diags, gatherManager(st, tu.NS, protoType, m.Name)...)
	}

	for _, mg := range p.Manages {
		diags = append(diags, gatherManages(st, tu.NS, protoType, mg.Name)...)
	}

	if len(p.Managers) == 0 && len(p.Messages) == 0 {
		diags = append(diags, ast.Diagnostic{
			Loc:     tu.NS.Name.Loc,
			Message: "top-level protocol `" + tu.NS.Name.Name + "' cannot be empty",
		})
	}

	for _, md := range p.Messages {
		diags = append(diags, gatherMessage(st, id, protoType, md)...)
	}

	deleteDecl, hasDelete := st.lookup(deleteMessageName)
	protoType.SetHasDelete(hasDelete)
	if !(hasDelete || protoType.IsTopLevel()) {
		diags = append(diags, ast.Diagnostic{
			Loc: tu.NS.Name.Loc,
			Message: "destructor declaration `" + deleteMessageName + "(...)' required for managed protocol `" +
				tu.NS.Name.Name + "'",
		})
	}

	reentrant := false
	if hasDelete && deleteDecl.typ.Kind() == model.KindMessage {
		reentrant = protoType.Messages()[deleteDecl.typ.Ref().Index].IsIntr()
	}
	protoType.SetHasReentrantDelete(reentrant)

	st.exitScope()

	return diags
}

// gatherManager resolves a single "manager Foo;" reference and appends it
// to managee's manager list.
func gatherManager(st *symtab, managee ast.Namespace, manageeType *model.ProtocolDef, manager ast.Ident) []ast.Diagnostic {
	d, ok := st.lookup(manager.Name)
	if !ok {
		return []ast.Diagnostic{{
			Loc: manager.Loc,
			Message: "protocol `" + manager.Name + "' referenced as |manager| of `" +
				managee.QName().ShortName() + "' has not been declared",
		}}
	}
	if d.typ.Kind() != model.KindProtocol {
		return []ast.Diagnostic{{
			Loc: manager.Loc,
			Message: "entity `" + manager.Name + "' referenced as |manager| of `" + managee.QName().ShortName() +
				"' is not of `protocol' type; instead it is a " + d.typ.TypeName(),
		}}
	}
	manageeType.AddManager(d.typ.Protocol())
	return nil
}

// gatherManages resolves a single "manages Foo;" reference and appends it
// to manager's manages list.
func gatherManages(st *symtab, manager ast.Namespace, managerType *model.ProtocolDef, managee ast.Ident) []ast.Diagnostic {
	d, ok := st.lookup(managee.Name)
	if !ok {
		return []ast.Diagnostic{{
			Loc: managee.Loc,
			Message: "protocol `" + managee.Name + "', managed by `" + manager.QName().ShortName() +
				"', has not been declared",
		}}
	}
	if d.typ.Kind() != model.KindProtocol {
		return []ast.Diagnostic{{
			Loc: managee.Loc,
			Message: manager.QName().ShortName() + " declares itself managing a non-`protocol' entity `" +
				managee.Name + "' that is a " + d.typ.TypeName(),
		}}
	}
	managerType.AddManages(d.typ.Protocol())
	return nil
}
