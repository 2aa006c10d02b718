// Package defaultval parses a field's textual default_value into a typed
// poolstore.Value, including C-escape decoding for bytes
// fields via internal/cescape.
package defaultval

import (
	"errors"
	"strconv"

	"github.com/protoflow/descriptorpool/internal/cescape"
	"github.com/protoflow/descriptorpool/internal/poolstore"
)

// ErrMessageType is returned for any attempt to parse a default value
// for a message or group kind; these never have valid defaults.
var ErrMessageType = errors.New("message type")

// ErrUnknownEnumValue is returned when raw does not name any value of
// the target enum.
var ErrUnknownEnumValue = errors.New("unknown enum value")

// Parse parses raw as a default value of the given kind. enum must be
// non-nil when kind.Tag == poolstore.KindEnum; it is used to resolve the
// value by name.
func Parse(kind poolstore.Kind, raw string, enum *poolstore.Enum) (*poolstore.Value, error) {
	switch kind.Tag {
	case poolstore.KindDouble:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		return &poolstore.Value{Kind: poolstore.ValueF64, F64: f}, nil
	case poolstore.KindFloat:
		f, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return nil, err
		}
		return &poolstore.Value{Kind: poolstore.ValueF32, F32: float32(f)}, nil
	case poolstore.KindInt32, poolstore.KindSint32, poolstore.KindSfixed32:
		n, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			return nil, err
		}
		return &poolstore.Value{Kind: poolstore.ValueI32, I32: int32(n)}, nil
	case poolstore.KindInt64, poolstore.KindSint64, poolstore.KindSfixed64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		return &poolstore.Value{Kind: poolstore.ValueI64, I64: n}, nil
	case poolstore.KindUint32, poolstore.KindFixed32:
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return nil, err
		}
		return &poolstore.Value{Kind: poolstore.ValueU32, U32: uint32(n)}, nil
	case poolstore.KindUint64, poolstore.KindFixed64:
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		return &poolstore.Value{Kind: poolstore.ValueU64, U64: n}, nil
	case poolstore.KindBool:
		switch raw {
		case "true":
			return &poolstore.Value{Kind: poolstore.ValueBool, Bool: true}, nil
		case "false":
			return &poolstore.Value{Kind: poolstore.ValueBool, Bool: false}, nil
		default:
			return nil, strconv.ErrSyntax
		}
	case poolstore.KindString:
		return &poolstore.Value{Kind: poolstore.ValueString, Str: raw}, nil
	case poolstore.KindBytes:
		b, err := cescape.Unescape(raw)
		if err != nil {
			return nil, err
		}
		return &poolstore.Value{Kind: poolstore.ValueBytes, Bytes: b}, nil
	case poolstore.KindEnum:
		for _, v := range enum.Values {
			if v.ShortName == raw {
				return &poolstore.Value{Kind: poolstore.ValueEnumNumber, EnumNumber: v.Number}, nil
			}
		}
		return nil, ErrUnknownEnumValue
	default: // KindMessage, KindGroup
		return nil, ErrMessageType
	}
}
