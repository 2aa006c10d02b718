package descriptorpool

import (
	"github.com/protoflow/descriptorpool/internal/handle"
	"github.com/protoflow/descriptorpool/internal/poolstore"
)

// FieldDescriptor is a resolved ordinary message field (not an
// extension; see ExtensionDescriptor).
type FieldDescriptor struct {
	pool  *Pool
	owner handle.Message
	idx   handle.Field
}

func (f FieldDescriptor) raw() *poolstore.Field {
	return &f.pool.store.Messages[f.owner].Fields[f.idx]
}

// Name returns the field's unqualified name.
func (f FieldDescriptor) Name() string { return f.raw().ShortName }

// FullName returns the field's fully qualified name.
func (f FieldDescriptor) FullName() string { return f.raw().FullName }

// JSONName returns the field's JSON name, explicit or derived.
func (f FieldDescriptor) JSONName() string { return f.raw().JSONName }

// Number returns the field's declared number.
func (f FieldDescriptor) Number() uint32 { return f.raw().Number }

// Kind describes the field's scalar, message, enum, or group type.
func (f FieldDescriptor) Kind() Kind { return newKind(f.pool, f.raw().Kind) }

// Cardinality reports whether the field is optional, required, or
// repeated.
func (f FieldDescriptor) Cardinality() poolstore.Cardinality { return f.raw().Cardinality }

// IsList reports whether the field is a repeated field that is not a
// synthesized map entry -- i.e. a field that behaves like a Go slice
// rather than a Go map when decoded.
func (f FieldDescriptor) IsList() bool { return isListField(f.pool, f.raw()) }

// IsMap reports whether the field is repeated and its element type is
// the compiler-synthesized MapEntry message for a map<K, V> field.
func (f FieldDescriptor) IsMap() bool { return isMapField(f.pool, f.raw()) }

// IsPacked reports whether the field uses packed wire encoding.
func (f FieldDescriptor) IsPacked() bool { return f.raw().IsPacked }

// SupportsPresence reports whether the field distinguishes "not set"
// from "set to the default value".
func (f FieldDescriptor) SupportsPresence() bool { return f.raw().SupportsPresence }

// ContainingMessage returns the message this field is declared in.
func (f FieldDescriptor) ContainingMessage() MessageDescriptor {
	return MessageDescriptor{pool: f.pool, h: f.owner}
}

// ContainingOneof returns the oneof this field belongs to, if any.
func (f FieldDescriptor) ContainingOneof() (OneofDescriptor, bool) {
	raw := f.raw()
	if raw.Oneof == handle.InvalidOneof {
		return OneofDescriptor{}, false
	}
	return OneofDescriptor{pool: f.pool, owner: f.owner, idx: raw.Oneof}, true
}

// Default returns the field's parsed default_value, if declared.
func (f FieldDescriptor) Default() (poolstore.Value, bool) {
	v := f.raw().Default
	if v == nil {
		return poolstore.Value{}, false
	}
	return *v, true
}

// ExtensionDescriptor is a resolved extension field: a field declared
// with "extend", either at file scope or nested inside a message.
type ExtensionDescriptor struct {
	pool *Pool
	h    handle.Extension
}

func (e ExtensionDescriptor) raw() *poolstore.Extension { return &e.pool.store.Extension[e.h] }

// Name returns the extension's unqualified name.
func (e ExtensionDescriptor) Name() string { return e.raw().ShortName }

// FullName returns the extension's fully qualified name.
func (e ExtensionDescriptor) FullName() string { return e.raw().FullName }

// JSONName returns the extension's synthetic JSON name, "[full_name]".
func (e ExtensionDescriptor) JSONName() string { return e.raw().JSONName }

// Number returns the extension's declared field number within its
// extendee.
func (e ExtensionDescriptor) Number() uint32 { return e.raw().Number }

// Kind describes the extension's scalar, message, enum, or group type.
func (e ExtensionDescriptor) Kind() Kind { return newKind(e.pool, e.raw().Kind) }

// Cardinality reports whether the extension is optional, required, or
// repeated.
func (e ExtensionDescriptor) Cardinality() poolstore.Cardinality { return e.raw().Cardinality }

// IsList reports whether the extension behaves like a Go slice rather
// than a Go map when decoded.
func (e ExtensionDescriptor) IsList() bool { return isListField(e.pool, e.raw()) }

// IsMap reports whether the extension's element type is a
// compiler-synthesized MapEntry message.
func (e ExtensionDescriptor) IsMap() bool { return isMapField(e.pool, e.raw()) }

// IsPacked reports whether the extension uses packed wire encoding.
func (e ExtensionDescriptor) IsPacked() bool { return e.raw().IsPacked }

// Extendee returns the message this extension extends.
func (e ExtensionDescriptor) Extendee() MessageDescriptor {
	return MessageDescriptor{pool: e.pool, h: e.raw().Extendee}
}

// Parent returns the message this extension was declared nested inside,
// if any; extensions declared at file scope have no parent.
func (e ExtensionDescriptor) Parent() (MessageDescriptor, bool) {
	raw := e.raw()
	if raw.Parent == handle.InvalidMessage {
		return MessageDescriptor{}, false
	}
	return MessageDescriptor{pool: e.pool, h: raw.Parent}, true
}

// Default returns the extension's parsed default_value, if declared.
func (e ExtensionDescriptor) Default() (poolstore.Value, bool) {
	v := e.raw().Default
	if v == nil {
		return poolstore.Value{}, false
	}
	return *v, true
}

func isListField(pool *Pool, f *poolstore.Field) bool {
	return f.Cardinality == poolstore.Repeated && !isMapField(pool, f)
}

func isMapField(pool *Pool, f *poolstore.Field) bool {
	if f.Cardinality != poolstore.Repeated || !f.Kind.IsMessage() {
		return false
	}
	if f.Kind.Tag != poolstore.KindMessage {
		return false
	}
	return pool.store.Messages[f.Kind.Message].IsMapEntry
}

// Kind is a field's resolved type: one of the protobuf scalars, or a
// reference to a Message or Enum declared elsewhere in the pool. Group
// is distinct from Message because it is wire-encoded differently.
type Kind struct {
	pool *Pool
	raw  poolstore.Kind
}

func newKind(pool *Pool, raw poolstore.Kind) Kind { return Kind{pool: pool, raw: raw} }

// Tag identifies which variant this Kind holds.
func (k Kind) Tag() poolstore.KindTag { return k.raw.Tag }

// IsMessage reports whether this is a Message or Group kind.
func (k Kind) IsMessage() bool { return k.raw.IsMessage() }

// IsEnum reports whether this is an Enum kind.
func (k Kind) IsEnum() bool { return k.raw.Tag == poolstore.KindEnum }

// IsPackable reports whether a repeated field of this kind is eligible
// for packed wire encoding.
func (k Kind) IsPackable() bool { return k.raw.IsPackable() }

// Message returns the referenced message type. The result is only
// meaningful when IsMessage reports true.
func (k Kind) Message() MessageDescriptor {
	return MessageDescriptor{pool: k.pool, h: k.raw.Message}
}

// Enum returns the referenced enum type. The result is only meaningful
// when IsEnum reports true.
func (k Kind) Enum() EnumDescriptor {
	return EnumDescriptor{pool: k.pool, h: k.raw.Enum}
}
