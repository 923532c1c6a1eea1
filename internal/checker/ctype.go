package checker

import (
	"github.com/ipdl-lang/ipdlc/ast"
	"github.com/ipdl-lang/ipdlc/model"
)

// declareCxxType declares a C++ type named by qid — whether from the
// built-in list or a using-declaration — as an IPDL type. Shmem, ByteBuf,
// and FileDescriptor are recognized by full name and get their own
// distinguished type variants rather than a generic ImportedCxxType.
//
// Declaring the same full name twice with matching refcounted/moveonly
// bits is accepted silently, so that a type imported by both a header and
// the including unit (or redeclared verbatim) does not trip the generic
// redeclaration diagnostic. Mismatching bits are an error. This applies to
// mozilla::UniquePtr exactly as it would to any other imported type: see
// the design notes for why that is left as-is.
func declareCxxType(st *symtab, qid ast.QualifiedId, refcounted, moveonly bool) []ast.Diagnostic {
	full := qid.FullName()

	switch full {
	case shmemFullName:
		return st.declare(decl{loc: qid.Loc(), typ: model.NewShmemType(), name: qid.ShortName(), fullName: full})
	case byteBufFullName:
		return st.declare(decl{loc: qid.Loc(), typ: model.NewByteBufType(), name: qid.ShortName(), fullName: full})
	case fdFullName:
		return st.declare(decl{loc: qid.Loc(), typ: model.NewFDType(), name: qid.ShortName(), fullName: full})
	}

	lookupName := full
	if lookupName == "" {
		lookupName = qid.ShortName()
	}
	if existing, ok := st.lookup(lookupName); ok && existing.fullName == full && existing.typ.Kind() == model.KindImportedCxx {
		if existing.typ.Refcounted() != refcounted {
			return []ast.Diagnostic{{
				Loc:     qid.Loc(),
				Message: "inconsistent refcounted status of type `" + lookupName + "', first declared at " + existing.loc.String(),
			}}
		}
		if existing.typ.Moveonly() != moveonly {
			return []ast.Diagnostic{{
				Loc:     qid.Loc(),
				Message: "inconsistent moveonly status of type `" + lookupName + "', first declared at " + existing.loc.String(),
			}}
		}
		return nil
	}

	t := model.NewImportedCxxType(qid, refcounted, moveonly)
	return st.declare(decl{loc: qid.Loc(), typ: t, name: qid.ShortName(), fullName: full})
}
