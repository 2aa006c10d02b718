package resolve

import (
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/protoflow/descriptorpool/errlist"
	"github.com/protoflow/descriptorpool/internal/handle"
	"github.com/protoflow/descriptorpool/internal/nametable"
	"github.com/protoflow/descriptorpool/internal/poolstore"
	"github.com/protoflow/descriptorpool/internal/protoident"
	"github.com/protoflow/descriptorpool/internal/visit"
)

// declarePass is the build's first traversal: it allocates an arena slot
// and a name-table entry for every message, enum, and service declared
// across the files being added, before anything is resolved. This is
// what lets a field, extendee, or method in one file reference a type
// declared later in the same file, or in a file that has not been
// visited yet -- by the time the second traversal (resolvePass) looks
// any such name up, every message/enum/service in the batch already has
// a handle.
//
// Fields, oneofs, enum values, methods, and extensions are not declared
// here: nothing ever refers to one of those by name across declarations,
// so they're safe to build directly during the resolve traversal.
type declarePass struct {
	store *poolstore.Store
	names *nametable.Table
	errs  *errlist.List
}

var _ visit.Visitor = (*declarePass)(nil)

func (d *declarePass) VisitFile(idx handle.File, f *descriptorpb.FileDescriptorProto) {
	syntax := poolstore.Proto2
	if f.GetSyntax() == "proto3" {
		syntax = poolstore.Proto3
	} else if f.GetSyntax() != "" && f.GetSyntax() != "proto2" {
		d.errs.Add(&errlist.Error{
			Kind: errlist.KindUnknownSyntax,
			Name: f.GetSyntax(),
			Found: errlist.Label{FileName: f.GetName(), Path: []int32{visit.FileTagSyntax}, Message: "syntax"},
		})
	}
	d.store.AddFile(poolstore.File{
		Name:   f.GetName(),
		Syntax: syntax,
		Raw:    f,
	})
}

func (d *declarePass) VisitMessage(path []int32, file handle.File, fullName string, msg *descriptorpb.DescriptorProto) handle.Message {
	id := poolstore.Identity{File: file, Path: path, FullName: fullName, ShortName: protoident.ParseShortName(fullName)}
	h := d.store.AddMessage(poolstore.NewMessage(id, msg.GetOptions().GetMapEntry()))
	d.declareName(fullName, nametable.Definition{File: file, Path: path, Kind: nametable.KindMessage, Message: h})
	if len(path) == 2 {
		fi := d.currentFileOf(file)
		fi.TopMessages = append(fi.TopMessages, h)
	}
	return h
}

func (d *declarePass) VisitEnum(path []int32, file handle.File, fullName string, en *descriptorpb.EnumDescriptorProto) handle.Enum {
	id := poolstore.Identity{File: file, Path: path, FullName: fullName, ShortName: protoident.ParseShortName(fullName)}
	h := d.store.AddEnum(poolstore.NewEnum(id, en.GetOptions().GetAllowAlias()))
	d.declareName(fullName, nametable.Definition{File: file, Path: path, Kind: nametable.KindEnum, Enum: h})
	if len(path) == 2 {
		fi := d.currentFileOf(file)
		fi.TopEnums = append(fi.TopEnums, h)
	}
	return h
}

func (d *declarePass) VisitService(path []int32, file handle.File, fullName string, svc *descriptorpb.ServiceDescriptorProto) handle.Service {
	id := poolstore.Identity{File: file, Path: path, FullName: fullName, ShortName: protoident.ParseShortName(fullName)}
	h := d.store.AddService(poolstore.Service{Identity: id})
	d.declareName(fullName, nametable.Definition{File: file, Path: path, Kind: nametable.KindService, Service: h})
	fi := d.currentFileOf(file)
	fi.TopServices = append(fi.TopServices, h)
	return h
}

// The remaining Visitor methods are no-ops during the declare pass;
// fields, oneofs, enum values, methods, and extensions are built during
// resolvePass.
func (d *declarePass) VisitField(path []int32, file handle.File, message handle.Message, fullName string, field *descriptorpb.FieldDescriptorProto) {
}
func (d *declarePass) VisitOneof(path []int32, file handle.File, message handle.Message, fullName string, oneof *descriptorpb.OneofDescriptorProto) {
}
func (d *declarePass) VisitEnumValue(path []int32, file handle.File, enum handle.Enum, fullName string, value *descriptorpb.EnumValueDescriptorProto) {
}
func (d *declarePass) VisitExtension(path []int32, file handle.File, parent handle.Message, fullName string, ext *descriptorpb.FieldDescriptorProto) {
}
func (d *declarePass) VisitMethod(path []int32, file handle.File, service handle.Service, fullName string, method *descriptorpb.MethodDescriptorProto) {
}

func (d *declarePass) declareName(fullName string, def nametable.Definition) {
	if existing, ok := d.names.Insert(fullName, def); !ok {
		d.errs.Add(&errlist.Error{
			Kind: errlist.KindDuplicateName,
			Name: fullName,
			First: errlist.Label{FileName: d.store.Files[existing.File].Name, Path: existing.Path, Message: fullName},
			Second: errlist.Label{FileName: d.store.Files[def.File].Name, Path: def.Path, Message: fullName},
		})
	}
}

func (d *declarePass) currentFileOf(file handle.File) *poolstore.File {
	return &d.store.Files[file]
}
