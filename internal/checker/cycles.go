package checker

import (
	"strings"

	"github.com/ipdl-lang/ipdlc/ast"
	"github.com/ipdl-lang/ipdlc/model"
)

type cycleState int

const (
	cycleVisiting cycleState = iota
	cycleAcyclic
)

// protocolManagersCycles walks the manages edges reachable from id,
// reporting one "`A -> B -> A'" style string per cycle found. visited and
// stack are fresh for each top-level call (see protocolsManagersAcyclic)
// so that a cycle reachable from several starting protocols is reported
// once per starting protocol: a shared map would only ever report one
// representative cycle per connected component, which is worse for
// multi-error diagnostics.
func (c *Context) protocolManagersCycles(visited map[model.TUId]cycleState, stack []model.TUId, id model.TUId) []string {
	if state, ok := visited[id]; ok {
		if state == cycleVisiting {
			names := make([]string, 0, len(stack)+1)
			for _, s := range stack {
				names = append(names, c.Prog.Unit(s).Protocol().QName().String())
			}
			names = append(names, c.Prog.Unit(id).Protocol().QName().String())
			return []string{"`" + strings.Join(names, " -> ") + "'"}
		}
		return nil
	}

	visited[id] = cycleVisiting
	stack = append(stack, id)

	var cycles []string
	pt := c.Prog.Unit(id).Protocol()
	for _, managee := range pt.Manages() {
		if managee == id {
			continue
		}
		cycles = append(cycles, c.protocolManagersCycles(visited, stack, managee)...)
	}

	visited[id] = cycleAcyclic

	return cycles
}

// protocolsManagersAcyclic checks every protocol's manager/managee graph
// for cycles, resetting the visited map per starting protocol, and
// separately rejects a top-level protocol that manages itself.
func (c *Context) protocolsManagersAcyclic() {
	for _, id := range c.Order {
		pt := c.Prog.Unit(id).Protocol()
		if pt == nil {
			continue
		}

		visited := make(map[model.TUId]cycleState)
		cycles := c.protocolManagersCycles(visited, nil, id)
		if len(cycles) > 0 {
			c.addDiag(ast.Diagnostic{
				Loc:     pt.QName().Loc(),
				Message: "cycle(s) detected in manager/manages hierarchy: " + strings.Join(cycles, ", "),
			})
		}

		managers := pt.Managers()
		if len(managers) == 1 && managers[0] == id {
			c.addDiag(ast.Diagnostic{
				Loc:     pt.QName().Loc(),
				Message: "top-level protocol `" + pt.QName().ShortName() + "' cannot manage itself",
			})
		}
	}
}
