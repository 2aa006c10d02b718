// Package visit implements the descriptor pool's visitor driver: one
// deterministic, side-effect-free traversal over a set of input files
// that yields a callback for every declaration, each carrying its
// source-location path, owning file handle, and (where applicable)
// parent handle. The driver itself performs no validation; it is pure
// dispatch, in the style of bufbuild/protocompile's
// walk.DescriptorProtosEnterAndExit traversal.
package visit

import (
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/protoflow/descriptorpool/internal/handle"
	"github.com/protoflow/descriptorpool/internal/protoident"
)

// Visitor receives one callback per declaration encountered by Walk, in
// a fixed order. Container callbacks
// (VisitMessage, VisitEnum, VisitService) return the handle assigned to
// (or already held by) that declaration, which Walk threads down to the
// callbacks for its children -- this is what lets the same traversal
// serve both the declare pass (which allocates a new arena slot and
// returns its handle) and the resolve pass (which looks up the handle
// already recorded by the declare pass).
type Visitor interface {
	VisitFile(idx handle.File, file *descriptorpb.FileDescriptorProto)
	VisitMessage(path []int32, file handle.File, fullName string, msg *descriptorpb.DescriptorProto) handle.Message
	VisitField(path []int32, file handle.File, message handle.Message, fullName string, field *descriptorpb.FieldDescriptorProto)
	VisitOneof(path []int32, file handle.File, message handle.Message, fullName string, oneof *descriptorpb.OneofDescriptorProto)
	VisitEnum(path []int32, file handle.File, fullName string, enum *descriptorpb.EnumDescriptorProto) handle.Enum
	VisitEnumValue(path []int32, file handle.File, enum handle.Enum, fullName string, value *descriptorpb.EnumValueDescriptorProto)
	VisitExtension(path []int32, file handle.File, parent handle.Message, fullName string, ext *descriptorpb.FieldDescriptorProto)
	VisitService(path []int32, file handle.File, fullName string, svc *descriptorpb.ServiceDescriptorProto) handle.Service
	VisitMethod(path []int32, file handle.File, service handle.Service, fullName string, method *descriptorpb.MethodDescriptorProto)
}

// Walk traverses files in order, assigning each a handle.File starting
// at firstFile (firstFile+0, firstFile+1, ...). This lets incremental
// builds traverse only newly added files by passing the pool's current
// file count as firstFile.
func Walk(files []*descriptorpb.FileDescriptorProto, firstFile handle.File, v Visitor) {
	for i, f := range files {
		fileIdx := firstFile + handle.File(i)
		walkFile(fileIdx, f, v)
	}
}

func walkFile(fileIdx handle.File, f *descriptorpb.FileDescriptorProto, v Visitor) {
	v.VisitFile(fileIdx, f)

	pkg := f.GetPackage()
	for i, msg := range f.GetMessageType() {
		path := []int32{FileTagMessageType, int32(i)}
		fullName := protoident.JoinFullName(pkg, msg.GetName())
		walkMessage(path, fileIdx, fullName, msg, v)
	}
	for i, en := range f.GetEnumType() {
		path := []int32{FileTagEnumType, int32(i)}
		fullName := protoident.JoinFullName(pkg, en.GetName())
		walkEnum(path, fileIdx, fullName, en, v)
	}
	for i, svc := range f.GetService() {
		path := []int32{FileTagService, int32(i)}
		fullName := protoident.JoinFullName(pkg, svc.GetName())
		svcHandle := v.VisitService(path, fileIdx, fullName, svc)
		for j, method := range svc.GetMethod() {
			methodPath := protoident.JoinPath(path, ServiceTagMethod, int32(j))
			methodFullName := protoident.JoinFullName(fullName, method.GetName())
			v.VisitMethod(methodPath, fileIdx, svcHandle, methodFullName, method)
		}
	}
	for i, ext := range f.GetExtension() {
		path := []int32{FileTagExtension, int32(i)}
		fullName := protoident.JoinFullName(pkg, ext.GetName())
		v.VisitExtension(path, fileIdx, handle.InvalidMessage, fullName, ext)
	}
}

// walkMessage visits msg, recurses into its nested messages (in
// declaration order, each fully before moving to the next), then visits
// its fields, oneofs, nested enums (and their values), and nested
// extensions.
func walkMessage(path []int32, fileIdx handle.File, fullName string, msg *descriptorpb.DescriptorProto, v Visitor) {
	msgHandle := v.VisitMessage(path, fileIdx, fullName, msg)

	for i, nested := range msg.GetNestedType() {
		nestedPath := protoident.JoinPath(path, MessageTagNestedType, int32(i))
		nestedFullName := protoident.JoinFullName(fullName, nested.GetName())
		walkMessage(nestedPath, fileIdx, nestedFullName, nested, v)
	}
	for i, field := range msg.GetField() {
		fieldPath := protoident.JoinPath(path, MessageTagField, int32(i))
		fieldFullName := protoident.JoinFullName(fullName, field.GetName())
		v.VisitField(fieldPath, fileIdx, msgHandle, fieldFullName, field)
	}
	for i, oneof := range msg.GetOneofDecl() {
		oneofPath := protoident.JoinPath(path, MessageTagOneofDecl, int32(i))
		oneofFullName := protoident.JoinFullName(fullName, oneof.GetName())
		v.VisitOneof(oneofPath, fileIdx, msgHandle, oneofFullName, oneof)
	}
	for i, en := range msg.GetEnumType() {
		enumPath := protoident.JoinPath(path, MessageTagEnumType, int32(i))
		enumFullName := protoident.JoinFullName(fullName, en.GetName())
		walkEnum(enumPath, fileIdx, enumFullName, en, v)
	}
	for i, ext := range msg.GetExtension() {
		extPath := protoident.JoinPath(path, MessageTagExtension, int32(i))
		extFullName := protoident.JoinFullName(fullName, ext.GetName())
		v.VisitExtension(extPath, fileIdx, msgHandle, extFullName, ext)
	}
}

func walkEnum(path []int32, fileIdx handle.File, fullName string, en *descriptorpb.EnumDescriptorProto, v Visitor) {
	enumHandle := v.VisitEnum(path, fileIdx, fullName, en)
	for i, val := range en.GetValue() {
		valPath := protoident.JoinPath(path, EnumTagValue, int32(i))
		// Enum values share the scope enclosing the enum (C++ scoping
		// rules), but each value's own full name is still qualified by
		// the enum's name for the pool's name table and Definition.
		valFullName := protoident.JoinFullName(fullName, val.GetName())
		v.VisitEnumValue(valPath, fileIdx, enumHandle, valFullName, val)
	}
}
