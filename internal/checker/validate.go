package checker

import (
	"github.com/ipdl-lang/ipdlc/ast"
	"github.com/ipdl-lang/ipdlc/model"
)

// ValidateUnit runs the phase-3 semantic checks for one translation unit:
// definedness of its structs and unions, and (if it has one) its
// protocol's manager/managee and message rules. Cycle detection over the
// manager/managee graph is run once for the whole program by the caller,
// not per unit (see protocolsManagersAcyclic).
func (c *Context) ValidateUnit(id model.TUId) {
	tu := c.TUs[id]
	tut := c.Prog.Unit(id)

	for i, s := range tut.Structs() {
		if !c.fullyDefined(model.NewStructType(model.TypeRef{TU: id, Index: i})) {
			c.addDiag(ast.Diagnostic{
				Loc:     tu.Structs[i].NS.QName().Loc(),
				Message: "struct `" + s.QName().ShortName() + "' is only partially defined",
			})
		}
	}

	for i, u := range tut.Unions() {
		if !c.fullyDefined(model.NewUnionType(model.TypeRef{TU: id, Index: i})) {
			c.addDiag(ast.Diagnostic{
				Loc:     tu.Unions[i].NS.QName().Loc(),
				Message: "union `" + u.QName().ShortName() + "' is only partially defined",
			})
		}
	}

	if pt := tut.Protocol(); pt != nil {
		c.validateProtocol(id, pt)
	}
}

func (c *Context) validateProtocol(id model.TUId, pt *model.ProtocolDef) {
	for _, managerID := range pt.Managers() {
		managerType := c.Prog.Unit(managerID).Protocol()
		if !pt.ConvertsTo(managerType.Strength()) {
			c.addDiag(ast.Diagnostic{
				Loc: pt.QName().Loc(),
				Message: "protocol `" + pt.QName().ShortName() + "' requires more powerful send semantics than its manager `" +
					managerType.QName().ShortName() + "' provides",
			})
		}
		if !managerType.ManagesProtocol(id) {
			c.addDiag(ast.Diagnostic{
				Loc: managerType.QName().Loc(),
				Message: "|manager| declaration in protocol `" + pt.QName().ShortName() +
					"' does not match any |manages| declaration in protocol `" + managerType.QName().ShortName() + "'",
			})
		}
	}

	for _, manageeID := range pt.Manages() {
		manageeType := c.Prog.Unit(manageeID).Protocol()
		if !manageeType.ManagedBy(id) {
			c.addDiag(ast.Diagnostic{
				Loc: manageeType.QName().Loc(),
				Message: "|manages| declaration in protocol `" + pt.QName().ShortName() +
					"' does not match any |manager| declaration in protocol `" + manageeType.QName().ShortName() + "'",
			})
		}
	}

	for _, m := range pt.Messages() {
		c.validateMessage(pt, m)
	}
}

func (c *Context) validateMessage(pt *model.ProtocolDef, m *model.MessageDef) {
	name := m.Name()
	pname := pt.QName().ShortName()
	isToChild := m.Direction().IsToChild() || m.Direction().IsBoth()

	if m.Nested().InsideSync() && !m.IsSync() {
		c.addDiag(ast.Diagnostic{
			Loc: m.Loc(),
			Message: "inside_sync nested messages must be sync (here, message `" + name +
				"' in protocol `" + pname + "')",
		})
	}

	if m.Nested().InsideCpow() && isToChild {
		c.addDiag(ast.Diagnostic{
			Loc: m.Loc(),
			Message: "inside_cpow nested parent-to-child messages are verboten (here, message `" + name +
				"' in protocol `" + pname + "')",
		})
	}

	if m.IsSync() && m.Nested().IsNone() && isToChild {
		c.addDiag(ast.Diagnostic{
			Loc: m.Loc(),
			Message: "sync parent-to-child messages are verboten (here, message `" + name +
				"' in protocol `" + pname + "')",
		})
	}

	if !m.ConvertsTo(pt.Strength()) {
		c.addDiag(ast.Diagnostic{
			Loc: m.Loc(),
			Message: "message `" + name + "' requires more powerful send semantics than its protocol `" +
				pname + "' provides",
		})
	}

	if (m.IsCtor() || m.IsDtor()) && m.IsAsync() && len(m.Returns()) > 0 {
		c.addDiag(ast.Diagnostic{
			Loc:     m.Loc(),
			Message: "asynchronous ctor/dtor message `" + name + "' declares return values",
		})
	}

	if m.Compress() != ast.CompressNone && (!m.IsAsync() || m.IsCtor() || m.IsDtor()) {
		var msg string
		if m.IsCtor() || m.IsDtor() {
			kind := "constructor"
			if m.IsDtor() {
				kind = "destructor"
			}
			msg = kind + " messages can't use compression (here, in protocol `" + pname + "')"
		} else {
			msg = "message `" + name + "' in protocol `" + pname + "' requests compression but is not async"
		}
		c.addDiag(ast.Diagnostic{Loc: m.Loc(), Message: msg})
	}

	if m.IsCtor() && !pt.ManagesProtocol(m.ConstructedType()) {
		ctorName := name[:len(name)-len(constructorSuffix)]
		c.addDiag(ast.Diagnostic{
			Loc:     m.Loc(),
			Message: "ctor for protocol `" + ctorName + "', which is not managed by protocol `" + pname + "'",
		})
	}
}
