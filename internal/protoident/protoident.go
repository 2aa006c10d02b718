// Package protoident implements the pure identifier and source-location
// path utilities used throughout the descriptor pool: composing fully
// qualified names and splitting them back apart, and concatenating the
// int32 tag sequences protobuf uses to cite a location inside a
// FileDescriptorProto.
package protoident

import "strings"

// JoinFullName composes a fully qualified name from a namespace (itself a
// dotted fully qualified name, or the empty string for the root package)
// and a local name.
func JoinFullName(namespace, local string) string {
	if namespace == "" {
		return local
	}
	return namespace + "." + local
}

// ParseNamespace returns the dotted namespace prefix of a fully qualified
// name, or the empty string if full has no dots.
func ParseNamespace(full string) string {
	i := strings.LastIndexByte(full, '.')
	if i < 0 {
		return ""
	}
	return full[:i]
}

// ParseShortName returns the final dotted segment of a fully qualified
// name.
func ParseShortName(full string) string {
	i := strings.LastIndexByte(full, '.')
	if i < 0 {
		return full
	}
	return full[i+1:]
}

// JoinPath concatenates a source-location path prefix with a tail of
// additional tags, returning a new slice. Neither argument is retained.
func JoinPath(prefix []int32, tail ...int32) []int32 {
	out := make([]int32, 0, len(prefix)+len(tail))
	out = append(out, prefix...)
	out = append(out, tail...)
	return out
}

// Prefixes returns every prefix of the dotted name scope, ordered from
// longest (scope itself) to shortest (the empty string, the root
// namespace). This is the search order used by the relative-name
// resolution algorithm in internal/nametable.
func Prefixes(scope string) []string {
	if scope == "" {
		return []string{""}
	}
	parts := strings.Split(scope, ".")
	out := make([]string, 0, len(parts)+1)
	for i := len(parts); i > 0; i-- {
		out = append(out, strings.Join(parts[:i], "."))
	}
	out = append(out, "")
	return out
}
