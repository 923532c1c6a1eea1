package main

import (
	"testing"

	"github.com/ipdl-lang/ipdlc/internal/testutil"
	"github.com/ipdl-lang/ipdlc/model"
)

func TestInputUnitToASTBuildsAProtocol(t *testing.T) {
	u := inputUnit{
		FilePath: "PFoo.ipdl",
		Name:     "PFoo",
		Protocol: &inputProtocol{
			SendSemantics: "async",
			Messages: []inputMessage{
				{Name: "Hello", SendSemantics: "async", Direction: "toChild"},
			},
		},
	}

	tu, err := u.toAST()
	testutil.NoError(t, err)
	testutil.Equal(t, "PFoo", tu.NS.Name.Name)
	testutil.Len(t, tu.Protocol.Messages, 1)
	testutil.Equal(t, "Hello", tu.Protocol.Messages[0].Name.Name)
}

func TestInputUnitToASTRejectsUnknownSendSemantics(t *testing.T) {
	u := inputUnit{
		Name:     "PFoo",
		Protocol: &inputProtocol{SendSemantics: "bogus"},
	}
	_, err := u.toAST()
	testutil.Error(t, err)
}

func TestInputUnitToASTRejectsUnknownDirection(t *testing.T) {
	u := inputUnit{
		Name: "PFoo",
		Protocol: &inputProtocol{
			SendSemantics: "async",
			Messages:      []inputMessage{{Name: "Hello", Direction: "sideways"}},
		},
	}
	_, err := u.toAST()
	testutil.Error(t, err)
}

func TestToTUsResolvesIncludesByShortName(t *testing.T) {
	f := inputFile{
		Units: []inputUnit{
			{Name: "PFoo", Protocol: &inputProtocol{SendSemantics: "async"}},
			{
				Name:     "PBar",
				Protocol: &inputProtocol{SendSemantics: "async"},
				Includes: []string{"PFoo"},
			},
		},
	}

	tus, err := f.toTUs()
	testutil.NoError(t, err)
	testutil.Len(t, tus, 2)

	bar := tus[model.NewTUId("PBar")]
	testutil.Len(t, bar.Includes, 1)
	testutil.Equal(t, "PFoo", bar.Includes[0].Name.ShortName())
	testutil.True(t, bar.Includes[0].IsProtocol, "PFoo defines a protocol")
}

func TestToTUsReportsUnresolvedInclude(t *testing.T) {
	f := inputFile{
		Units: []inputUnit{
			{Name: "PBar", Includes: []string{"Missing"}},
		},
	}
	_, err := f.toTUs()
	testutil.Error(t, err)
}

func TestResolveByNameFindsMatchingUnit(t *testing.T) {
	foo := model.NewTUId("PFoo")
	f := inputFile{Units: []inputUnit{{Name: "PFoo"}}}
	built, err := f.toTUs()
	testutil.NoError(t, err)

	id, ok := resolveByName(built, "PFoo")
	testutil.True(t, ok)
	testutil.Equal(t, foo, id)

	_, ok = resolveByName(built, "Missing")
	testutil.False(t, ok)
}
