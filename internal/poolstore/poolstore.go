// Package poolstore implements the descriptor pool's durable data model
// flat, append-only arenas of files, messages, enums,
// services, and extensions, addressed by the small-integer handles of
// internal/handle. No element is ever removed or reordered once
// inserted, which is what lets a message (or its fields) reference
// another message, including itself or one that refers back to it,
// without the arena ever forming a pointer cycle.
package poolstore

import (
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/protoflow/descriptorpool/internal/handle"
)

// Field number bounds.
const (
	MinFieldNumber           = 1
	MaxFieldNumber           = 1<<29 - 1
	ReservedFieldNumberStart = 19000
	ReservedFieldNumberEnd   = 19999 // inclusive
)

// Map-entry field numbers.
const (
	MapEntryKeyNumber   = 1
	MapEntryValueNumber = 2
)

// Syntax is the protobuf language edition declared by a file.
type Syntax int

const (
	Proto2 Syntax = iota
	Proto3
)

// Cardinality determines whether a field is optional, required, or
// repeated.
type Cardinality int

const (
	Optional Cardinality = iota
	Required
	Repeated
)

// KindTag discriminates the variants of Kind.
type KindTag int

const (
	KindDouble KindTag = iota
	KindFloat
	KindInt32
	KindInt64
	KindUint32
	KindUint64
	KindSint32
	KindSint64
	KindFixed32
	KindFixed64
	KindSfixed32
	KindSfixed64
	KindBool
	KindString
	KindBytes
	KindMessage
	KindEnum
	KindGroup
)

// Kind is the sum type over a field's possible types: the
// 15 protobuf scalars plus Message/Enum/Group, each carrying the handle
// of the referenced type where applicable. Group is a distinct variant
// from Message because it is encoded differently on the wire, even
// though both refer to a MessageHandle.
type Kind struct {
	Tag     KindTag
	Message handle.Message // set iff Tag == KindMessage || Tag == KindGroup
	Enum    handle.Enum    // set iff Tag == KindEnum
}

// IsPackable reports whether a repeated field of this kind is eligible
// for packed encoding: every scalar except String and Bytes, or any
// Enum.
func (k Kind) IsPackable() bool {
	switch k.Tag {
	case KindString, KindBytes, KindMessage, KindGroup:
		return false
	default:
		return true
	}
}

// IsMessage reports whether this kind is a submessage type (Message or
// Group).
func (k Kind) IsMessage() bool {
	return k.Tag == KindMessage || k.Tag == KindGroup
}

// ValueKind discriminates the variants of Value.
type ValueKind int

const (
	ValueI32 ValueKind = iota
	ValueI64
	ValueU32
	ValueU64
	ValueF32
	ValueF64
	ValueBool
	ValueString
	ValueBytes
	ValueEnumNumber
)

// Value is a parsed field default value.
type Value struct {
	Kind       ValueKind
	I32        int32
	I64        int64
	U32        uint32
	U64        uint64
	F32        float32
	F64        float64
	Bool       bool
	Str        string
	Bytes      []byte
	EnumNumber int32
}

// Identity is the common (file, source path, full name, short name)
// tuple every named declaration carries.
type Identity struct {
	File      handle.File
	Path      []int32
	FullName  string
	ShortName string
}

// Field is a message field or an extension field; both arenas share
// this shape.
type Field struct {
	Identity
	Number           uint32
	Kind             Kind
	Oneof            handle.Oneof // InvalidOneof if not part of a oneof
	Cardinality      Cardinality
	IsPacked         bool
	SupportsPresence bool
	Default          *Value

	// Extension-only attributes; zero/empty for ordinary message fields.
	IsExtension bool
	Extendee    handle.Message
	JSONName    string // "[full_name]" for extensions; computed JSON name otherwise
	Parent      handle.Message // enclosing message for a nested extension declaration, else InvalidMessage
}

// Oneof is a oneof declaration local to a message.
type Oneof struct {
	Identity
	Fields []handle.Field // indices, local to the owning message's Fields slice
}

// Range is an inclusive-start, exclusive-end number range, as used by
// message reserved_range and extension_range. Enum reserved ranges are
// the one exception: both ends are inclusive there, a quirk of
// descriptor.proto this pool preserves rather than normalizes (see
// DESIGN.md).
type Range struct {
	Start int32
	End   int32
}

// Contains reports whether n falls in the half-open range [Start, End).
func (r Range) Contains(n int32) bool {
	return n >= r.Start && n < r.End
}

// ContainsInclusive reports whether n falls in the closed range
// [Start, End], the form enum reserved ranges use.
func (r Range) ContainsInclusive(n int32) bool {
	return n >= r.Start && n <= r.End
}

// Message is a protobuf message type.
type Message struct {
	Identity
	Fields          []Field
	FieldNumbers    map[uint32]handle.Field
	FieldNames      map[string]handle.Field
	FieldJSONNames  map[string]handle.Field
	Oneofs          []Oneof
	Extensions      []handle.Extension // extensions declared against this message as extendee
	IsMapEntry      bool
	ExtensionRanges []Range
	ReservedRanges  []Range
}

// NewMessage returns a Message with its lookup maps initialized.
func NewMessage(id Identity, isMapEntry bool) Message {
	return Message{
		Identity:       id,
		FieldNumbers:   make(map[uint32]handle.Field),
		FieldNames:     make(map[string]handle.Field),
		FieldJSONNames: make(map[string]handle.Field),
		IsMapEntry:     isMapEntry,
	}
}

// EnumValue is a single declared value of an enum.
type EnumValue struct {
	Identity
	Number int32
}

// NumberIndex pairs an enum value's number with its local index, kept
// sorted by Number to support the binary-search duplicate-detection
// described by allow_alias semantics.
type NumberIndex struct {
	Number int32
	Index  handle.EnumValue
}

// Enum is a protobuf enum type.
type Enum struct {
	Identity
	Values         []EnumValue
	AllowAlias     bool
	ValueNumbers   []NumberIndex // sorted by Number
	ValueNames     map[string]handle.EnumValue
	ReservedRanges []Range // both ends inclusive
}

// NewEnum returns an Enum with its lookup map initialized.
func NewEnum(id Identity, allowAlias bool) Enum {
	return Enum{
		Identity:   id,
		AllowAlias: allowAlias,
		ValueNames: make(map[string]handle.EnumValue),
	}
}

// Method is a single RPC method of a Service.
type Method struct {
	Identity
	Input  handle.Message
	Output handle.Message
}

// Service is a protobuf service declaration.
type Service struct {
	Identity
	Methods []Method
}

// File is a single input FileDescriptorProto plus the pool-level
// bookkeeping layered on top of it.
type File struct {
	Name          string
	Syntax        Syntax
	Dependencies  []handle.File
	Raw           *descriptorpb.FileDescriptorProto
	TopMessages   []handle.Message
	TopEnums      []handle.Enum
	TopServices   []handle.Service
	TopExtensions []handle.Extension
}

// Store is the collection of arenas backing a descriptor pool. It is
// mutated only by the resolve pass during a build and is read-only
// afterwards.
type Store struct {
	Files     []File
	Messages  []Message
	Enums     []Enum
	Services  []Service
	Extension []Extension

	FileNames map[string]handle.File
}

// Extension is kept as a distinct name to avoid stuttering with the
// Field.IsExtension flag; it is an alias so resolve code can build one
// Field value and push it into either arena.
type Extension = Field

// New returns an empty Store.
func New() *Store {
	return &Store{
		FileNames: make(map[string]handle.File),
	}
}

// AddFile appends f and indexes it by name.
func (s *Store) AddFile(f File) handle.File {
	s.Files = append(s.Files, f)
	h := handle.File(len(s.Files) - 1)
	s.FileNames[f.Name] = h
	return h
}

// AddMessage appends m and returns its handle.
func (s *Store) AddMessage(m Message) handle.Message {
	s.Messages = append(s.Messages, m)
	return handle.Message(len(s.Messages) - 1)
}

// AddEnum appends e and returns its handle.
func (s *Store) AddEnum(e Enum) handle.Enum {
	s.Enums = append(s.Enums, e)
	return handle.Enum(len(s.Enums) - 1)
}

// AddService appends svc and returns its handle.
func (s *Store) AddService(svc Service) handle.Service {
	s.Services = append(s.Services, svc)
	return handle.Service(len(s.Services) - 1)
}

// AddExtension appends ext to the global extension arena and returns
// its handle.
func (s *Store) AddExtension(ext Extension) handle.Extension {
	s.Extension = append(s.Extension, ext)
	return handle.Extension(len(s.Extension) - 1)
}
