package checker

import "github.com/ipdl-lang/ipdlc/model"

// StubUnit allocates id's empty typed shell: struct/union tables start
// empty (GatherUnit appends to them) and, if the translation unit defines
// a protocol, a ProtocolDef is created immediately so that phase 2's
// manager/manages gathering has somewhere to append.
func (c *Context) StubUnit(id model.TUId) {
	tu := c.TUs[id]
	tut := model.NewTranslationUnitType(id)

	if tu.Protocol != nil {
		qname := tu.NS.QName()
		tut.SetProtocol(model.NewProtocolDef(qname, tu.Protocol.SendSemantics, tu.Protocol.Nested))
	}

	c.Prog.Put(tut)
}
