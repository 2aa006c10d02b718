package descriptorpool

import (
	"github.com/protoflow/descriptorpool/internal/handle"
	"github.com/protoflow/descriptorpool/internal/poolstore"
)

// MessageDescriptor is a resolved protobuf message type.
type MessageDescriptor struct {
	pool *Pool
	h    handle.Message
}

func (m MessageDescriptor) raw() *poolstore.Message { return &m.pool.store.Messages[m.h] }

// Name returns the message's unqualified name.
func (m MessageDescriptor) Name() string { return m.raw().ShortName }

// FullName returns the message's fully qualified name (no leading dot).
func (m MessageDescriptor) FullName() string { return m.raw().FullName }

// ParentFile returns the file this message is declared in.
func (m MessageDescriptor) ParentFile() FileDescriptor {
	return FileDescriptor{pool: m.pool, h: m.raw().File}
}

// IsMapEntry reports whether this message is the compiler-synthesized
// entry type for a map field (such as TagsEntry for a field named tags),
// as marked by its map_entry option. The message's fields are not
// checked against the key = 1, value = 2 layout.
func (m MessageDescriptor) IsMapEntry() bool { return m.raw().IsMapEntry }

// Fields returns the message's fields in declaration order. Extensions
// of this message are not included; see Extensions.
func (m MessageDescriptor) Fields() []FieldDescriptor {
	fs := m.raw().Fields
	out := make([]FieldDescriptor, len(fs))
	for i := range fs {
		out[i] = FieldDescriptor{pool: m.pool, owner: m.h, idx: handle.Field(i)}
	}
	return out
}

// GetField returns the field with the given number, if any.
func (m MessageDescriptor) GetField(number uint32) (FieldDescriptor, bool) {
	idx, ok := m.raw().FieldNumbers[number]
	if !ok {
		return FieldDescriptor{}, false
	}
	return FieldDescriptor{pool: m.pool, owner: m.h, idx: idx}, true
}

// GetFieldByName returns the field with the given unqualified name, if
// any.
func (m MessageDescriptor) GetFieldByName(name string) (FieldDescriptor, bool) {
	idx, ok := m.raw().FieldNames[name]
	if !ok {
		return FieldDescriptor{}, false
	}
	return FieldDescriptor{pool: m.pool, owner: m.h, idx: idx}, true
}

// GetFieldByJSONName returns the field whose JSON name (explicit or
// derived) equals name, if any.
func (m MessageDescriptor) GetFieldByJSONName(name string) (FieldDescriptor, bool) {
	idx, ok := m.raw().FieldJSONNames[name]
	if !ok {
		return FieldDescriptor{}, false
	}
	return FieldDescriptor{pool: m.pool, owner: m.h, idx: idx}, true
}

// Oneofs returns the message's oneof declarations in declaration order.
func (m MessageDescriptor) Oneofs() []OneofDescriptor {
	os := m.raw().Oneofs
	out := make([]OneofDescriptor, len(os))
	for i := range os {
		out[i] = OneofDescriptor{pool: m.pool, owner: m.h, idx: handle.Oneof(i)}
	}
	return out
}

// Extensions returns the extensions declared with this message as their
// extendee, regardless of which file or message declared them.
func (m MessageDescriptor) Extensions() []ExtensionDescriptor {
	hs := m.raw().Extensions
	out := make([]ExtensionDescriptor, len(hs))
	for i, h := range hs {
		out[i] = ExtensionDescriptor{pool: m.pool, h: h}
	}
	return out
}

// ExtensionRanges returns the message's declared extension_range
// entries, start inclusive and end exclusive.
func (m MessageDescriptor) ExtensionRanges() []poolstore.Range {
	return append([]poolstore.Range(nil), m.raw().ExtensionRanges...)
}

// ReservedRanges returns the message's declared reserved_range entries,
// start inclusive and end exclusive.
func (m MessageDescriptor) ReservedRanges() []poolstore.Range {
	return append([]poolstore.Range(nil), m.raw().ReservedRanges...)
}

// OneofDescriptor is a resolved oneof declaration local to a message.
type OneofDescriptor struct {
	pool  *Pool
	owner handle.Message
	idx   handle.Oneof
}

func (o OneofDescriptor) raw() *poolstore.Oneof {
	return &o.pool.store.Messages[o.owner].Oneofs[o.idx]
}

// Name returns the oneof's unqualified name.
func (o OneofDescriptor) Name() string { return o.raw().ShortName }

// FullName returns the oneof's fully qualified name.
func (o OneofDescriptor) FullName() string { return o.raw().FullName }

// ContainingMessage returns the message this oneof is declared in.
func (o OneofDescriptor) ContainingMessage() MessageDescriptor {
	return MessageDescriptor{pool: o.pool, h: o.owner}
}

// Fields returns the fields that are members of this oneof, in
// declaration order.
func (o OneofDescriptor) Fields() []FieldDescriptor {
	idxs := o.raw().Fields
	out := make([]FieldDescriptor, len(idxs))
	for i, fi := range idxs {
		out[i] = FieldDescriptor{pool: o.pool, owner: o.owner, idx: fi}
	}
	return out
}
