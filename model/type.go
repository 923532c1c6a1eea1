package model

import "github.com/ipdl-lang/ipdlc/ast"

// TypeRef is a cheap-to-copy index into another translation unit's struct
// or union table. It does not own the referent; resolving it requires the
// owning TUId's TranslationUnitType.
type TypeRef struct {
	TU    TUId
	Index int
}

// TypeKind tags the variant held by a Type value.
type TypeKind int

const (
	KindImportedCxx TypeKind = iota
	KindMessage
	KindProtocol
	KindActor
	KindStruct
	KindUnion
	KindArray
	KindMaybe
	KindUniquePtr
	KindShmem
	KindByteBuf
	KindFD
	KindEndpoint
	KindManagedEndpoint
)

func (k TypeKind) String() string {
	switch k {
	case KindImportedCxx:
		return "ImportedCxxType"
	case KindMessage:
		return "MessageType"
	case KindProtocol:
		return "ProtocolType"
	case KindActor:
		return "ActorType"
	case KindStruct:
		return "StructType"
	case KindUnion:
		return "UnionType"
	case KindArray:
		return "ArrayType"
	case KindMaybe:
		return "MaybeType"
	case KindUniquePtr:
		return "UniquePtrType"
	case KindShmem:
		return "ShmemType"
	case KindByteBuf:
		return "ByteBufType"
	case KindFD:
		return "FDType"
	case KindEndpoint:
		return "EndpointType"
	case KindManagedEndpoint:
		return "ManagedEndpointType"
	default:
		return "unknown"
	}
}

// Type is a single IPDL type, represented as a tagged variant: the Kind
// field selects which of the payload fields below are meaningful. This
// mirrors the closed, small set of IPDL type variants directly rather than
// through per-variant structs implementing a common interface, since every
// variant is a cheap value and dispatch is always a switch on Kind.
type Type struct {
	kind TypeKind

	// KindImportedCxx
	qualifiedID ast.QualifiedId
	refcounted  bool
	moveonly    bool

	// KindMessage, KindStruct, KindUnion
	ref TypeRef

	// KindProtocol, KindActor
	protocol TUId
	nullable bool

	// KindArray, KindMaybe, KindUniquePtr
	inner *Type
}

func (t Type) Kind() TypeKind { return t.kind }

// NewImportedCxxType builds an ImportedCxxType.
func NewImportedCxxType(qid ast.QualifiedId, refcounted, moveonly bool) Type {
	return Type{kind: KindImportedCxx, qualifiedID: qid, refcounted: refcounted, moveonly: moveonly}
}

// QualifiedID returns the qualified name of an ImportedCxxType.
func (t Type) QualifiedID() ast.QualifiedId { return t.qualifiedID }

// Refcounted reports the refcounted bit of an ImportedCxxType.
func (t Type) Refcounted() bool { return t.refcounted }

// Moveonly reports the moveonly bit of an ImportedCxxType.
func (t Type) Moveonly() bool { return t.moveonly }

// NewMessageType builds a MessageType referencing a protocol's message table.
func NewMessageType(ref TypeRef) Type {
	return Type{kind: KindMessage, ref: ref}
}

// NewProtocolType builds a ProtocolType naming a protocol declaration
// target. Canonicalization rewrites this to ActorType at first use.
func NewProtocolType(tu TUId) Type {
	return Type{kind: KindProtocol, protocol: tu}
}

// NewActorType builds an ActorType: a protocol used as a value.
func NewActorType(tu TUId, nullable bool) Type {
	return Type{kind: KindActor, protocol: tu, nullable: nullable}
}

// Protocol returns the TUId of a ProtocolType or ActorType.
func (t Type) Protocol() TUId { return t.protocol }

// Nullable reports the nullable bit of an ActorType.
func (t Type) Nullable() bool { return t.nullable }

// NewStructType builds a StructType referencing a struct table entry.
func NewStructType(ref TypeRef) Type {
	return Type{kind: KindStruct, ref: ref}
}

// NewUnionType builds a UnionType referencing a union table entry.
func NewUnionType(ref TypeRef) Type {
	return Type{kind: KindUnion, ref: ref}
}

// Ref returns the TypeRef payload of a MessageType, StructType, or UnionType.
func (t Type) Ref() TypeRef { return t.ref }

// NewArrayType wraps inner in an ArrayType.
func NewArrayType(inner Type) Type {
	return Type{kind: KindArray, inner: &inner}
}

// NewMaybeType wraps inner in a MaybeType.
func NewMaybeType(inner Type) Type {
	return Type{kind: KindMaybe, inner: &inner}
}

// NewUniquePtrType wraps inner in a UniquePtrType.
func NewUniquePtrType(inner Type) Type {
	return Type{kind: KindUniquePtr, inner: &inner}
}

// Inner returns the wrapped type of an ArrayType, MaybeType, or UniquePtrType.
func (t Type) Inner() Type { return *t.inner }

// NewShmemType builds the distinguished Shmem built-in type.
func NewShmemType() Type { return Type{kind: KindShmem} }

// NewByteBufType builds the distinguished ByteBuf built-in type.
func NewByteBufType() Type { return Type{kind: KindByteBuf} }

// NewFDType builds the distinguished FileDescriptor built-in type.
func NewFDType() Type { return Type{kind: KindFD} }

// NewEndpointType builds an Endpoint<Parent|Child> wrapper type.
func NewEndpointType(tu TUId) Type { return Type{kind: KindEndpoint, protocol: tu} }

// NewManagedEndpointType builds a ManagedEndpoint<Parent|Child> wrapper type.
func NewManagedEndpointType(tu TUId) Type { return Type{kind: KindManagedEndpoint, protocol: tu} }

// TypeName renders a type for diagnostics: the qualified name of an
// imported C++ type or protocol, a short name for the distinguished
// built-ins, and the kind name (e.g. "StructType", "UnionType") otherwise.
func (t Type) TypeName() string {
	switch t.kind {
	case KindImportedCxx:
		return t.qualifiedID.String()
	case KindProtocol, KindActor:
		return t.protocol.String()
	case KindArray:
		return "array of " + t.inner.TypeName()
	case KindMaybe:
		return "maybe of " + t.inner.TypeName()
	case KindUniquePtr:
		return "uniqueptr of " + t.inner.TypeName()
	case KindShmem:
		return "Shmem"
	case KindByteBuf:
		return "ByteBuf"
	case KindFD:
		return "FileDescriptor"
	case KindEndpoint:
		return "Endpoint"
	case KindManagedEndpoint:
		return "ManagedEndpoint"
	default:
		return t.kind.String()
	}
}
