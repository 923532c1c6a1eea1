package checker

import (
	"sort"

	"github.com/ipdl-lang/ipdlc/ast"
	"github.com/ipdl-lang/ipdlc/internal/types"
	"github.com/ipdl-lang/ipdlc/model"
)

// Context holds the state shared across all three analyzer phases: the
// input translation units, the program being built, accumulated
// diagnostics, and configuration.
type Context struct {
	TUs   map[model.TUId]*ast.TranslationUnit
	Order []model.TUId
	Prog  *model.Program

	CheckFilenames bool

	diags []ast.Diagnostic

	// definedMemo is shared across translation units for the whole run, as
	// required for sound memoization of the definedness check.
	definedMemo map[definedKey]definedState

	types.Logger
}

// NewContext builds a checker context over tus, computing a deterministic
// (sorted by TUId) iteration order.
func NewContext(tus map[model.TUId]*ast.TranslationUnit, logger types.Logger, checkFilenames bool) *Context {
	order := make([]model.TUId, 0, len(tus))
	for id := range tus {
		order = append(order, id)
	}
	sort.Slice(order, func(i, j int) bool { return order[i].String() < order[j].String() })

	return &Context{
		TUs:            tus,
		Order:          order,
		Prog:           model.NewProgram(),
		CheckFilenames: checkFilenames,
		definedMemo:    make(map[definedKey]definedState),
		Logger:         logger,
	}
}

func (c *Context) addDiag(d ast.Diagnostic) {
	c.diags = append(c.diags, d)
}

func (c *Context) addDiags(ds []ast.Diagnostic) {
	c.diags = append(c.diags, ds...)
}

// Diagnostics returns all diagnostics accumulated so far.
func (c *Context) Diagnostics() []ast.Diagnostic { return c.diags }

// resolveTUId finds the TUId of the translation unit named by qid, trying
// the full (namespace-qualified) name first and falling back to the short
// name, matching how symbol lookup treats short/full dual bindings.
func (c *Context) resolveTUId(qid ast.QualifiedId) (model.TUId, bool) {
	if full := qid.FullName(); full != "" {
		id := model.NewTUId(full)
		if _, ok := c.TUs[id]; ok {
			return id, true
		}
	}
	id := model.NewTUId(qid.ShortName())
	if _, ok := c.TUs[id]; ok {
		return id, true
	}
	return model.TUId{}, false
}
