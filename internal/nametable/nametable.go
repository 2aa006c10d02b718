// Package nametable implements the process-local name table:
// a map from fully qualified names declared across a pool's input files
// to a Definition, plus protobuf's relative-name resolution algorithm.
// The build enters only messages, enums, and services into the table;
// fields, oneofs, enum values, methods, and extensions are not entered,
// so they are neither found by Resolve nor checked for name collisions
// against the entered declarations.
package nametable

import (
	"github.com/protoflow/descriptorpool/internal/handle"
	"github.com/protoflow/descriptorpool/internal/protoident"
)

// DefinitionKind identifies which kind of declaration a Definition
// names. Only one of Definition's Message/Enum/Service/Extension handles
// is meaningful per Kind; Oneof and EnumValue additionally need an owner
// handle because they are stored local to their message/enum rather
// than in their own global arena.
type DefinitionKind int

const (
	KindMessage DefinitionKind = iota
	KindEnum
	KindService
	KindOneof
	KindField
	KindExtensionField
	KindEnumValue
)

// Definition is a (file, source path, kind) triple naming exactly one
// declaration.
type Definition struct {
	File handle.File
	Path []int32
	Kind DefinitionKind

	Message   handle.Message   // KindMessage, or owner for KindField/KindOneof
	Enum      handle.Enum      // KindEnum, or owner for KindEnumValue
	Service   handle.Service   // KindService
	Extension handle.Extension // KindExtensionField

	// LocalIndex is the index within the owner for the kinds that are
	// stored local to another entity: the field index within Message
	// for KindField, the oneof index within Message for KindOneof, the
	// enum-value index within Enum for KindEnumValue.
	LocalIndex int
}

// Table maps fully qualified names to their Definition. Duplicate
// insertion is rejected by Insert so callers can report a DuplicateName
// error citing both declarations.
type Table struct {
	defs map[string]Definition
}

// New returns an empty Table.
func New() *Table {
	return &Table{defs: make(map[string]Definition)}
}

// Insert records fullName -> def. If fullName is already present, Insert
// leaves the table unchanged and returns the existing Definition with ok
// = false so the caller can build a DuplicateName error.
func (t *Table) Insert(fullName string, def Definition) (existing Definition, ok bool) {
	if existing, found := t.defs[fullName]; found {
		return existing, false
	}
	t.defs[fullName] = def
	return Definition{}, true
}

// Lookup finds the Definition for an already-fully-qualified name
// (without a leading dot).
func (t *Table) Lookup(fullName string) (Definition, bool) {
	d, ok := t.defs[fullName]
	return d, ok
}

// Resolve implements protobuf's relative-name resolution algorithm:
// given the full name of the declaring scope and a textual type
// reference, it returns the reference's absolute fully qualified name
// (without a leading dot) and its Definition.
//
// An absolute reference (leading '.') is looked up directly. A relative
// reference is resolved by trying, from the longest prefix of scope down
// to the empty (root) prefix, whether prefix + "." + firstSegment names
// a declaration; the first hit fixes the base, and the remaining
// segments of name are appended to form the final candidate.
func (t *Table) Resolve(scope, name string) (resolved string, def Definition, ok bool) {
	if len(name) > 0 && name[0] == '.' {
		abs := name[1:]
		if d, found := t.defs[abs]; found {
			return abs, d, true
		}
		return "", Definition{}, false
	}

	pivotEnd := -1
	for i := 0; i < len(name); i++ {
		if name[i] == '.' {
			pivotEnd = i
			break
		}
	}
	pivot := name
	if pivotEnd >= 0 {
		pivot = name[:pivotEnd]
	}

	for _, prefix := range protoident.Prefixes(scope) {
		base := protoident.JoinFullName(prefix, pivot)
		if _, found := t.defs[base]; !found {
			continue
		}
		full := base
		if pivotEnd >= 0 {
			full = base + name[pivotEnd:]
		}
		d, found := t.defs[full]
		if !found {
			return "", Definition{}, false
		}
		return full, d, true
	}
	return "", Definition{}, false
}
