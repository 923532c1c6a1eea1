package model

import "github.com/ipdl-lang/ipdlc/internal/graph"

// ManagerOrder returns every protocol-bearing translation unit's id in
// manager-first order: a manager always appears before any protocol it
// manages. This is the order a code generator would want to emit actor
// classes in, since a managee's generated constructor references its
// manager's type.
//
// The cyclic return lists the protocols that could not be ordered because
// of a manager/managee cycle. Check reports such cycles as diagnostics, so
// it is non-empty only for a Program that Check returned together with a
// *CheckError, or one a caller assembled by hand.
func (p *Program) ManagerOrder() (order []TUId, cyclic []TUId) {
	g := graph.New[TUId]()
	for id, u := range p.units {
		pt := u.Protocol()
		if pt == nil {
			continue
		}
		g.AddNode(id)
		for _, managee := range pt.Manages() {
			// managee depends on (must come after) its manager.
			g.AddEdge(managee, id)
		}
	}
	return g.TopologicalOrder()
}
