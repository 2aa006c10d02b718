package descriptorpool

import (
	"github.com/protoflow/descriptorpool/internal/handle"
	"github.com/protoflow/descriptorpool/internal/poolstore"
)

// EnumDescriptor is a resolved protobuf enum type.
type EnumDescriptor struct {
	pool *Pool
	h    handle.Enum
}

func (e EnumDescriptor) raw() *poolstore.Enum { return &e.pool.store.Enums[e.h] }

// Name returns the enum's unqualified name.
func (e EnumDescriptor) Name() string { return e.raw().ShortName }

// FullName returns the enum's fully qualified name.
func (e EnumDescriptor) FullName() string { return e.raw().FullName }

// ParentFile returns the file this enum is declared in.
func (e EnumDescriptor) ParentFile() FileDescriptor {
	return FileDescriptor{pool: e.pool, h: e.raw().File}
}

// AllowAlias reports whether the enum permits multiple value names to
// share a number.
func (e EnumDescriptor) AllowAlias() bool { return e.raw().AllowAlias }

// Values returns the enum's declared values in declaration order,
// including aliases.
func (e EnumDescriptor) Values() []EnumValueDescriptor {
	vs := e.raw().Values
	out := make([]EnumValueDescriptor, len(vs))
	for i := range vs {
		out[i] = EnumValueDescriptor{pool: e.pool, owner: e.h, idx: handle.EnumValue(i)}
	}
	return out
}

// DefaultValue returns the enum's default value: the first-declared
// value, which protobuf requires to be numbered zero in proto3 and
// which proto2 uses as the implicit default when a field of this enum
// type has none of its own.
func (e EnumDescriptor) DefaultValue() (EnumValueDescriptor, bool) {
	if len(e.raw().Values) == 0 {
		return EnumValueDescriptor{}, false
	}
	return EnumValueDescriptor{pool: e.pool, owner: e.h, idx: 0}, true
}

// GetValue returns the first declared value with the given number, if
// any.
func (e EnumDescriptor) GetValue(number int32) (EnumValueDescriptor, bool) {
	sorted := e.raw().ValueNumbers
	lo, hi := 0, len(sorted)
	for lo < hi {
		mid := (lo + hi) / 2
		if sorted[mid].Number < number {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(sorted) && sorted[lo].Number == number {
		return EnumValueDescriptor{pool: e.pool, owner: e.h, idx: sorted[lo].Index}, true
	}
	return EnumValueDescriptor{}, false
}

// GetValueByName returns the value with the given unqualified name, if
// any.
func (e EnumDescriptor) GetValueByName(name string) (EnumValueDescriptor, bool) {
	idx, ok := e.raw().ValueNames[name]
	if !ok {
		return EnumValueDescriptor{}, false
	}
	return EnumValueDescriptor{pool: e.pool, owner: e.h, idx: idx}, true
}

// ReservedRanges returns the enum's declared reserved_range entries,
// both ends inclusive.
func (e EnumDescriptor) ReservedRanges() []poolstore.Range {
	return append([]poolstore.Range(nil), e.raw().ReservedRanges...)
}

// EnumValueDescriptor is a single declared value of an enum.
type EnumValueDescriptor struct {
	pool  *Pool
	owner handle.Enum
	idx   handle.EnumValue
}

func (v EnumValueDescriptor) raw() *poolstore.EnumValue {
	return &v.pool.store.Enums[v.owner].Values[v.idx]
}

// Name returns the value's unqualified name.
func (v EnumValueDescriptor) Name() string { return v.raw().ShortName }

// FullName returns the value's fully qualified name.
func (v EnumValueDescriptor) FullName() string { return v.raw().FullName }

// Number returns the value's declared number.
func (v EnumValueDescriptor) Number() int32 { return v.raw().Number }

// ContainingEnum returns the enum this value is declared in.
func (v EnumValueDescriptor) ContainingEnum() EnumDescriptor {
	return EnumDescriptor{pool: v.pool, h: v.owner}
}
