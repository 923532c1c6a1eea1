package main

import (
	"fmt"

	"github.com/ipdl-lang/ipdlc/ast"
	"github.com/ipdl-lang/ipdlc/model"
)

// The types below are the serializable on-disk form of a translation-unit
// set, decoded from JSON or YAML by run. A real parser hands the
// analyzer ast.TranslationUnit values directly and in memory; this is a
// substitute input format for the CLI and for scripting the analyzer
// outside of a full IPDL toolchain.

type inputFile struct {
	Units []inputUnit `json:"units" yaml:"units"`
}

type inputUnit struct {
	FilePath string           `json:"filePath" yaml:"filePath"`
	Name     string           `json:"name" yaml:"name"`
	Quals    []string         `json:"quals" yaml:"quals"`
	Protocol *inputProtocol   `json:"protocol,omitempty" yaml:"protocol,omitempty"`
	Includes []string         `json:"includes,omitempty" yaml:"includes,omitempty"`
	Usings   []inputUsing     `json:"usings,omitempty" yaml:"usings,omitempty"`
	Structs  []inputStruct    `json:"structs,omitempty" yaml:"structs,omitempty"`
	Unions   []inputUnion     `json:"unions,omitempty" yaml:"unions,omitempty"`
}

type inputTypeSpec struct {
	Name      string `json:"name" yaml:"name"`
	Quals     []string `json:"quals,omitempty" yaml:"quals,omitempty"`
	Nullable  bool   `json:"nullable,omitempty" yaml:"nullable,omitempty"`
	Array     bool   `json:"array,omitempty" yaml:"array,omitempty"`
	Maybe     bool   `json:"maybe,omitempty" yaml:"maybe,omitempty"`
	UniquePtr bool   `json:"uniquePtr,omitempty" yaml:"uniquePtr,omitempty"`
}

type inputUsing struct {
	CxxType    inputTypeSpec `json:"cxxType" yaml:"cxxType"`
	Refcounted bool          `json:"refcounted,omitempty" yaml:"refcounted,omitempty"`
	Moveonly   bool          `json:"moveonly,omitempty" yaml:"moveonly,omitempty"`
}

type inputField struct {
	Name     string        `json:"name" yaml:"name"`
	TypeSpec inputTypeSpec `json:"typeSpec" yaml:"typeSpec"`
}

type inputStruct struct {
	Name   string       `json:"name" yaml:"name"`
	Quals  []string     `json:"quals,omitempty" yaml:"quals,omitempty"`
	Fields []inputField `json:"fields" yaml:"fields"`
}

type inputUnion struct {
	Name       string          `json:"name" yaml:"name"`
	Quals      []string        `json:"quals,omitempty" yaml:"quals,omitempty"`
	Components []inputTypeSpec `json:"components" yaml:"components"`
}

type inputParam struct {
	Name     string        `json:"name" yaml:"name"`
	TypeSpec inputTypeSpec `json:"typeSpec" yaml:"typeSpec"`
}

type inputMessage struct {
	Name          string       `json:"name" yaml:"name"`
	SendSemantics string       `json:"sendSemantics" yaml:"sendSemantics"`
	Nested        string       `json:"nested,omitempty" yaml:"nested,omitempty"`
	Direction     string       `json:"direction" yaml:"direction"`
	InParams      []inputParam `json:"inParams,omitempty" yaml:"inParams,omitempty"`
	OutParams     []inputParam `json:"outParams,omitempty" yaml:"outParams,omitempty"`
	Compress      string       `json:"compress,omitempty" yaml:"compress,omitempty"`
	Verify        bool         `json:"verify,omitempty" yaml:"verify,omitempty"`
}

type inputProtocol struct {
	SendSemantics string         `json:"sendSemantics" yaml:"sendSemantics"`
	Nested        string         `json:"nested,omitempty" yaml:"nested,omitempty"`
	Managers      []string       `json:"managers,omitempty" yaml:"managers,omitempty"`
	Manages       []string       `json:"manages,omitempty" yaml:"manages,omitempty"`
	Messages      []inputMessage `json:"messages,omitempty" yaml:"messages,omitempty"`
}

func ident(name string, file string, line int) ast.Ident {
	return ast.NewIdent(name, ast.Pos{File: file, Line: line})
}

func (ts inputTypeSpec) toAST(file string) ast.TypeSpec {
	return ast.TypeSpec{
		Spec:      ast.NewQualifiedId(ts.Quals, ident(ts.Name, file, 0)),
		Nullable:  ts.Nullable,
		Array:     ts.Array,
		Maybe:     ts.Maybe,
		UniquePtr: ts.UniquePtr,
		Loc:       ast.Pos{File: file},
	}
}

func parseSendSemantics(s string) (ast.SendSemantics, error) {
	switch s {
	case "", "async":
		return ast.SendAsync, nil
	case "sync":
		return ast.SendSync, nil
	case "intr":
		return ast.SendIntr, nil
	default:
		return 0, fmt.Errorf("unknown send semantics %q", s)
	}
}

func parseNesting(s string) (ast.Nesting, error) {
	switch s {
	case "", "none":
		return ast.NestingNone, nil
	case "insideSync":
		return ast.NestingInsideSync, nil
	case "insideCpow":
		return ast.NestingInsideCpow, nil
	default:
		return 0, fmt.Errorf("unknown nesting %q", s)
	}
}

func parseDirection(s string) (ast.Direction, error) {
	switch s {
	case "toParent":
		return ast.ToParent, nil
	case "toChild":
		return ast.ToChild, nil
	case "both":
		return ast.Both, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

func parseCompress(s string) (ast.Compress, error) {
	switch s {
	case "", "none":
		return ast.CompressNone, nil
	case "enabled":
		return ast.CompressEnabled, nil
	case "all":
		return ast.CompressAll, nil
	default:
		return 0, fmt.Errorf("unknown compress %q", s)
	}
}

func (u inputUnit) toAST() (*ast.TranslationUnit, error) {
	ns := ast.Namespace{Quals: u.Quals, Name: ident(u.Name, u.FilePath, 0)}

	tu := &ast.TranslationUnit{
		FilePath: u.FilePath,
		NS:       ns,
	}

	for _, inc := range u.Includes {
		tu.Includes = append(tu.Includes, ast.Include{
			Name: ast.NewQualifiedId(nil, ident(inc, u.FilePath, 0)),
		})
	}

	for _, using := range u.Usings {
		tu.Usings = append(tu.Usings, ast.UsingDecl{
			CxxType:    using.CxxType.toAST(u.FilePath),
			Refcounted: using.Refcounted,
			Moveonly:   using.Moveonly,
		})
	}

	for _, s := range u.Structs {
		sd := ast.StructDecl{NS: ast.Namespace{Quals: s.Quals, Name: ident(s.Name, u.FilePath, 0)}}
		for _, f := range s.Fields {
			sd.Fields = append(sd.Fields, ast.Field{
				Name:     ident(f.Name, u.FilePath, 0),
				TypeSpec: f.TypeSpec.toAST(u.FilePath),
			})
		}
		tu.Structs = append(tu.Structs, sd)
	}

	for _, un := range u.Unions {
		ud := ast.UnionDecl{NS: ast.Namespace{Quals: un.Quals, Name: ident(un.Name, u.FilePath, 0)}}
		for _, c := range un.Components {
			ud.Components = append(ud.Components, c.toAST(u.FilePath))
		}
		tu.Unions = append(tu.Unions, ud)
	}

	if u.Protocol != nil {
		send, err := parseSendSemantics(u.Protocol.SendSemantics)
		if err != nil {
			return nil, fmt.Errorf("unit %s: protocol: %w", u.Name, err)
		}
		nested, err := parseNesting(u.Protocol.Nested)
		if err != nil {
			return nil, fmt.Errorf("unit %s: protocol: %w", u.Name, err)
		}

		pd := &ast.ProtocolDecl{NS: ns, SendSemantics: send, Nested: nested}
		for _, m := range u.Protocol.Managers {
			pd.Managers = append(pd.Managers, ast.ManagerDecl{Name: ident(m, u.FilePath, 0)})
		}
		for _, m := range u.Protocol.Manages {
			pd.Manages = append(pd.Manages, ast.ManagesDecl{Name: ident(m, u.FilePath, 0)})
		}

		for _, md := range u.Protocol.Messages {
			msgSend, err := parseSendSemantics(md.SendSemantics)
			if err != nil {
				return nil, fmt.Errorf("unit %s: message %s: %w", u.Name, md.Name, err)
			}
			msgNested, err := parseNesting(md.Nested)
			if err != nil {
				return nil, fmt.Errorf("unit %s: message %s: %w", u.Name, md.Name, err)
			}
			dir, err := parseDirection(md.Direction)
			if err != nil {
				return nil, fmt.Errorf("unit %s: message %s: %w", u.Name, md.Name, err)
			}
			compress, err := parseCompress(md.Compress)
			if err != nil {
				return nil, fmt.Errorf("unit %s: message %s: %w", u.Name, md.Name, err)
			}

			mdecl := ast.MessageDecl{
				Name:          ident(md.Name, u.FilePath, 0),
				SendSemantics: msgSend,
				Nested:        msgNested,
				Direction:     dir,
				Compress:      compress,
				Verify:        md.Verify,
			}
			for _, p := range md.InParams {
				mdecl.InParams = append(mdecl.InParams, ast.Param{Name: ident(p.Name, u.FilePath, 0), TypeSpec: p.TypeSpec.toAST(u.FilePath)})
			}
			for _, p := range md.OutParams {
				mdecl.OutParams = append(mdecl.OutParams, ast.Param{Name: ident(p.Name, u.FilePath, 0), TypeSpec: p.TypeSpec.toAST(u.FilePath)})
			}
			pd.Messages = append(pd.Messages, mdecl)
		}
		tu.Protocol = pd
	}

	return tu, nil
}

// toTUs converts a decoded inputFile into the map Check expects, keying
// each unit by the TUId derived from its namespace.
func (f inputFile) toTUs() (map[model.TUId]*ast.TranslationUnit, error) {
	tus := make(map[model.TUId]*ast.TranslationUnit, len(f.Units))
	for _, u := range f.Units {
		tu, err := u.toAST()
		if err != nil {
			return nil, err
		}
		tus[model.TUIdFromNamespace(tu.NS)] = tu
	}

	for _, tu := range tus {
		for i, inc := range tu.Includes {
			id, ok := resolveByName(tus, inc.Name.ShortName())
			if !ok {
				return nil, fmt.Errorf("unit %s: include %q not found", tu.NS.Name.Name, inc.Name.ShortName())
			}
			tu.Includes[i].Name = ast.NewQualifiedId(nil, ident(id.String(), tu.FilePath, 0))
			tu.Includes[i].IsProtocol = tus[id].Protocol != nil
		}
	}

	return tus, nil
}

func resolveByName(tus map[model.TUId]*ast.TranslationUnit, name string) (model.TUId, bool) {
	for id, tu := range tus {
		if tu.NS.Name.Name == name {
			return id, true
		}
	}
	return model.TUId{}, false
}
