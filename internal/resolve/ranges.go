package resolve

import (
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/protoflow/descriptorpool/internal/poolstore"
)

func messageExtensionRanges(msg *descriptorpb.DescriptorProto) []poolstore.Range {
	raw := msg.GetExtensionRange()
	out := make([]poolstore.Range, len(raw))
	for i, r := range raw {
		out[i] = poolstore.Range{Start: r.GetStart(), End: r.GetEnd()}
	}
	return out
}

func messageReservedRanges(msg *descriptorpb.DescriptorProto) []poolstore.Range {
	raw := msg.GetReservedRange()
	out := make([]poolstore.Range, len(raw))
	for i, r := range raw {
		out[i] = poolstore.Range{Start: r.GetStart(), End: r.GetEnd()}
	}
	return out
}

func enumReservedRanges(en *descriptorpb.EnumDescriptorProto) []poolstore.Range {
	raw := en.GetReservedRange()
	out := make([]poolstore.Range, len(raw))
	for i, r := range raw {
		out[i] = poolstore.Range{Start: r.GetStart(), End: r.GetEnd()}
	}
	return out
}

func extensionRangeContaining(ranges []poolstore.Range, n int32) (poolstore.Range, bool) {
	for _, r := range ranges {
		if r.Contains(n) {
			return r, true
		}
	}
	return poolstore.Range{}, false
}

func reservedRangeContaining(ranges []poolstore.Range, n int32) (poolstore.Range, bool) {
	for _, r := range ranges {
		if r.Contains(n) {
			return r, true
		}
	}
	return poolstore.Range{}, false
}

func enumReservedRangeContaining(ranges []poolstore.Range, n int32) (poolstore.Range, bool) {
	for _, r := range ranges {
		if r.ContainsInclusive(n) {
			return r, true
		}
	}
	return poolstore.Range{}, false
}
