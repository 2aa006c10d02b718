// Package descriptorpool resolves raw protobuf FileDescriptorSet data
// into a queryable, cross-linked, immutable model: every message, enum,
// service, and extension in the set, with field types, extendees, and
// method signatures all resolved to the declarations they name instead
// of left as bare strings.
//
// Build a Pool with NewBuilder, add one or more FileDescriptorSets with
// Builder.AddFiles, then call Builder.Build. A built Pool is read-only
// and safe for concurrent use by multiple goroutines.
package descriptorpool

import (
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/protoflow/descriptorpool/internal/handle"
	"github.com/protoflow/descriptorpool/internal/nametable"
	"github.com/protoflow/descriptorpool/internal/poolstore"
)

// Pool is a resolved, immutable collection of descriptors built from one
// or more FileDescriptorSets. The zero value is not usable; obtain a
// Pool from Builder.Build.
type Pool struct {
	store *poolstore.Store
	names *nametable.Table
}

// Files returns every file in the pool, in the order they were added.
func (p *Pool) Files() []FileDescriptor {
	out := make([]FileDescriptor, len(p.store.Files))
	for i := range p.store.Files {
		out[i] = FileDescriptor{pool: p, h: handle.File(i)}
	}
	return out
}

// GetFileByName returns the file registered under name, if any.
func (p *Pool) GetFileByName(name string) (FileDescriptor, bool) {
	h, ok := p.store.FileNames[name]
	if !ok {
		return FileDescriptor{}, false
	}
	return FileDescriptor{pool: p, h: h}, true
}

// GetMessageByName returns the message with the given fully qualified
// name (no leading dot), if any.
func (p *Pool) GetMessageByName(fullName string) (MessageDescriptor, bool) {
	def, ok := p.names.Lookup(fullName)
	if !ok || def.Kind != nametable.KindMessage {
		return MessageDescriptor{}, false
	}
	return MessageDescriptor{pool: p, h: def.Message}, true
}

// GetEnumByName returns the enum with the given fully qualified name (no
// leading dot), if any.
func (p *Pool) GetEnumByName(fullName string) (EnumDescriptor, bool) {
	def, ok := p.names.Lookup(fullName)
	if !ok || def.Kind != nametable.KindEnum {
		return EnumDescriptor{}, false
	}
	return EnumDescriptor{pool: p, h: def.Enum}, true
}

// GetServiceByName returns the service with the given fully qualified
// name (no leading dot), if any.
func (p *Pool) GetServiceByName(fullName string) (ServiceDescriptor, bool) {
	def, ok := p.names.Lookup(fullName)
	if !ok || def.Kind != nametable.KindService {
		return ServiceDescriptor{}, false
	}
	return ServiceDescriptor{pool: p, h: def.Service}, true
}

// Services returns every service in the pool, across all files.
func (p *Pool) Services() []ServiceDescriptor {
	out := make([]ServiceDescriptor, len(p.store.Services))
	for i := range p.store.Services {
		out[i] = ServiceDescriptor{pool: p, h: handle.Service(i)}
	}
	return out
}

// FileDescriptor is a single resolved FileDescriptorProto plus the
// top-level declarations the pool indexed from it.
type FileDescriptor struct {
	pool *Pool
	h    handle.File
}

func (f FileDescriptor) raw() *poolstore.File { return &f.pool.store.Files[f.h] }

// Name returns the file's path as declared in the FileDescriptorSet
// (e.g. "my/package/file.proto").
func (f FileDescriptor) Name() string { return f.raw().Name }

// Syntax reports whether the file was declared proto2 or proto3.
func (f FileDescriptor) Syntax() poolstore.Syntax { return f.raw().Syntax }

// Raw returns the underlying FileDescriptorProto, with all type_name,
// extendee, input_type, and output_type fields canonicalized to their
// absolute, leading-dot form.
func (f FileDescriptor) Raw() *descriptorpb.FileDescriptorProto { return f.raw().Raw }

// Dependencies returns the files this file imports, resolved to their
// FileDescriptor, in declaration order.
func (f FileDescriptor) Dependencies() []FileDescriptor {
	deps := f.raw().Dependencies
	out := make([]FileDescriptor, len(deps))
	for i, h := range deps {
		out[i] = FileDescriptor{pool: f.pool, h: h}
	}
	return out
}

// Messages returns the file's top-level message types.
func (f FileDescriptor) Messages() []MessageDescriptor {
	hs := f.raw().TopMessages
	out := make([]MessageDescriptor, len(hs))
	for i, h := range hs {
		out[i] = MessageDescriptor{pool: f.pool, h: h}
	}
	return out
}

// Enums returns the file's top-level enum types.
func (f FileDescriptor) Enums() []EnumDescriptor {
	hs := f.raw().TopEnums
	out := make([]EnumDescriptor, len(hs))
	for i, h := range hs {
		out[i] = EnumDescriptor{pool: f.pool, h: h}
	}
	return out
}

// Services returns the file's services.
func (f FileDescriptor) Services() []ServiceDescriptor {
	hs := f.raw().TopServices
	out := make([]ServiceDescriptor, len(hs))
	for i, h := range hs {
		out[i] = ServiceDescriptor{pool: f.pool, h: h}
	}
	return out
}

// Extensions returns the file's top-level extension fields.
func (f FileDescriptor) Extensions() []ExtensionDescriptor {
	hs := f.raw().TopExtensions
	out := make([]ExtensionDescriptor, len(hs))
	for i, h := range hs {
		out[i] = ExtensionDescriptor{pool: f.pool, h: h}
	}
	return out
}
