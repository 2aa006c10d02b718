// Package handle defines the small-integer handle types used to address
// every entity in the descriptor pool's arenas. Handles are never reused
// and never invalidated for the lifetime of a pool; they are the only way
// one entity refers to another, which is what lets cyclic message graphs
// (a message referencing itself or another message that refers back to it)
// live in flat, append-only slices instead of a graph of pointers.
package handle

// File addresses an entry in the pool's file arena.
type File uint32

// InvalidFile is the sentinel returned when a file reference could not be
// resolved.
const InvalidFile File = ^File(0)

// Message addresses an entry in the pool's message arena.
type Message uint32

// InvalidMessage is the sentinel written in place of an unresolved message
// reference so that resolution can continue after an error.
const InvalidMessage Message = ^Message(0)

// Enum addresses an entry in the pool's enum arena.
type Enum uint32

// InvalidEnum is the sentinel for an unresolved enum reference.
const InvalidEnum Enum = ^Enum(0)

// Field addresses an entry in a message's field list.
type Field uint32

// InvalidField is the sentinel for an unresolved field reference.
const InvalidField Field = ^Field(0)

// Extension addresses an entry in the pool's extension arena.
type Extension uint32

// InvalidExtension is the sentinel for an unresolved extension reference.
const InvalidExtension Extension = ^Extension(0)

// Oneof addresses a oneof declaration local to a message.
type Oneof uint32

// InvalidOneof is the sentinel for an unresolved oneof reference.
const InvalidOneof Oneof = ^Oneof(0)

// Service addresses an entry in the pool's service arena.
type Service uint32

// InvalidService is the sentinel for an unresolved service reference.
const InvalidService Service = ^Service(0)

// Method addresses a method local to a service.
type Method uint32

// InvalidMethod is the sentinel for an unresolved method reference.
const InvalidMethod Method = ^Method(0)

// EnumValue addresses a value local to an enum.
type EnumValue uint32

// InvalidEnumValue is the sentinel for an unresolved enum-value reference.
const InvalidEnumValue EnumValue = ^EnumValue(0)
