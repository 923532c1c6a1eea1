package checker

import (
	"github.com/ipdl-lang/ipdlc/ast"
	"github.com/ipdl-lang/ipdlc/model"
)

const (
	deleteMessageName = "__delete__"
	constructorSuffix = "Constructor"
)

// gatherMessage classifies a message declaration, resolves its parameters,
// appends it to protoType's message table, and declares its (possibly
// renamed) name as a MessageType in the enclosing (protocol) scope.
func gatherMessage(st *symtab, tuID model.TUId, protoType *model.ProtocolDef, md ast.MessageDecl) []ast.Diagnostic {
	var diags []ast.Diagnostic

	name := md.Name.Name
	kind := model.MessageKind{Class: model.ClassOther}

	if existing, ok := st.lookup(name); ok {
		if existing.typ.Kind() == model.KindProtocol {
			name += constructorSuffix
			kind = model.MessageKind{Class: model.ClassCtor, Target: existing.typ.Protocol()}
		} else {
			diags = append(diags, ast.Diagnostic{
				Loc:     md.Name.Loc,
				Message: "message name `" + md.Name.Name + "' already declared as `" + existing.typ.TypeName() + "'",
			})
		}
	}

	if name == deleteMessageName {
		kind = model.MessageKind{Class: model.ClassDtor, Owner: tuID}
	}

	st.enterScope()

	msg := model.NewMessageDef(name, md.Name.Loc, md.SendSemantics, md.Nested, md.Prio, md.Direction, md.Compress, md.Verify, kind)

	gatherParam := func(p ast.Param) (model.ParamDef, bool) {
		tyString := p.TypeSpec.Spec.String()
		base, ok := st.lookup(tyString)
		if !ok {
			diags = append(diags, ast.Diagnostic{
				Loc:     p.TypeSpec.Loc,
				Message: "argument typename `" + tyString + "' of message `" + name + "' has not been declared",
			})
			return model.ParamDef{}, false
		}
		pt, cdiags := model.Canonicalize(base.typ, p.TypeSpec)
		diags = append(diags, cdiags...)
		diags = append(diags, st.declare(decl{loc: p.TypeSpec.Loc, typ: pt, name: p.Name.Name})...)
		return model.ParamDef{Name: p.Name.Name, Type: pt}, true
	}

	for _, p := range md.InParams {
		if pd, ok := gatherParam(p); ok {
			msg.AppendParam(pd)
		}
	}
	for _, p := range md.OutParams {
		if pd, ok := gatherParam(p); ok {
			msg.AppendReturn(pd)
		}
	}

	st.exitScope()

	index := protoType.AppendMessage(msg)
	ref := model.TypeRef{TU: tuID, Index: index}
	diags = append(diags, st.declare(decl{loc: md.Name.Loc, typ: model.NewMessageType(ref), name: name})...)

	return diags
}
