package checker

import (
	"strings"

	"github.com/ipdl-lang/ipdlc/ast"
)

// builtinTypeNames is the fixed list of C-family and platform built-in
// type names declared in every translation unit, before its own
// using-declarations are processed. The three mozilla::ipc entries and
// mozilla::UniquePtr are declared the same way as any using-declaration;
// declareCxxType recognizes Shmem/ByteBuf/FileDescriptor by full name and
// rewrites them to their distinguished IPDL type variants.
var builtinTypeNames = []string{
	"bool", "char", "short", "int", "long", "float", "double",
	"int8_t", "uint8_t", "int16_t", "uint16_t",
	"int32_t", "uint32_t", "int64_t", "uint64_t",
	"intptr_t", "uintptr_t", "size_t", "ssize_t",
	"nsresult", "nsString", "nsCString",
	"nsDependentSubstring", "nsDependentCSubstring",
	"mozilla::ipc::Shmem", "mozilla::ipc::ByteBuf",
	"mozilla::UniquePtr", "mozilla::ipc::FileDescriptor",
}

const (
	shmemFullName   = "mozilla::ipc::Shmem"
	byteBufFullName = "mozilla::ipc::ByteBuf"
	fdFullName      = "mozilla::ipc::FileDescriptor"
)

// qualifiedIdFromDotted builds a synthetic QualifiedId from a "::"-joined
// name, for declaring built-ins that have no corresponding source text.
func qualifiedIdFromDotted(name string) ast.QualifiedId {
	parts := strings.Split(name, "::")
	base := parts[len(parts)-1]
	quals := append([]string(nil), parts[:len(parts)-1]...)
	return ast.NewQualifiedId(quals, ast.NewIdent(base, ast.Synthetic{Near: "builtin"}))
}
