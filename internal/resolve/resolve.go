// Package resolve implements the two-pass build that turns a batch of
// parsed FileDescriptorProto messages into fully linked, validated
// poolstore entries: declarePass walks the batch once to allocate an
// arena slot and a name-table entry for every message, enum, and
// service, then resolvePass walks it again to fill in everything that
// can reference another declaration -- field and extension types,
// extendees, method signatures, default values, oneof membership,
// packed/presence inference, and the various uniqueness and
// number-range checks -- writing the canonical absolute name back into
// the original FileDescriptorProto wherever it resolves a relative one.
//
// Every violation found during either pass is appended to an errlist.List
// rather than raised immediately, so a single Build reports every
// independent problem in one pass instead of stopping at the first.
package resolve

import (
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/protoflow/descriptorpool/errlist"
	"github.com/protoflow/descriptorpool/internal/defaultval"
	"github.com/protoflow/descriptorpool/internal/handle"
	"github.com/protoflow/descriptorpool/internal/nametable"
	"github.com/protoflow/descriptorpool/internal/poolstore"
	"github.com/protoflow/descriptorpool/internal/protoident"
	"github.com/protoflow/descriptorpool/internal/visit"
)

// Build runs the declare and resolve passes over files, appending their
// results into store starting at firstFile (the pool's current file
// count -- zero for a fresh pool, non-zero when AddFiles is called on a
// pool that already has files, so previously built files are left
// untouched and only the new batch is walked).
func Build(store *poolstore.Store, names *nametable.Table, files []*descriptorpb.FileDescriptorProto, firstFile handle.File) *errlist.List {
	errs := &errlist.List{}

	firstMessage := handle.Message(len(store.Messages))
	firstEnum := handle.Enum(len(store.Enums))
	firstService := handle.Service(len(store.Services))

	dp := &declarePass{store: store, names: names, errs: errs}
	visit.Walk(files, firstFile, dp)

	// nextMessage/nextEnum/nextService start where the arenas stood
	// before declarePass ran, so resolvePass's per-Visit counters walk
	// the exact same handles declarePass just assigned, in the exact
	// same traversal order.
	rp := &resolvePass{
		store:       store,
		names:       names,
		errs:        errs,
		nextMessage: firstMessage,
		nextEnum:    firstEnum,
		nextService: firstService,
	}
	visit.Walk(files, firstFile, rp)

	return errs
}

// resolvePass is the build's second traversal. Its nextMessage/nextEnum/
// nextService counters mirror declarePass's AddMessage/AddEnum/AddService
// call order exactly, which is how it recovers "the handle that was
// just allocated for the node I'm looking at" without a side table:
// Walk invokes both passes over the same files in the same order, so the
// Nth VisitMessage call in either pass refers to the same declaration.
type resolvePass struct {
	store *poolstore.Store
	names *nametable.Table
	errs  *errlist.List

	nextMessage handle.Message
	nextEnum    handle.Enum
	nextService handle.Service
}

var _ visit.Visitor = (*resolvePass)(nil)

func (r *resolvePass) VisitFile(idx handle.File, f *descriptorpb.FileDescriptorProto) {
	fi := &r.store.Files[idx]
	deps := make([]handle.File, len(f.GetDependency()))
	for i, dep := range f.GetDependency() {
		h, ok := r.store.FileNames[dep]
		if !ok {
			h = handle.InvalidFile
			r.errs.Add(&errlist.Error{
				Kind: errlist.KindFileNotFound,
				Name: dep,
				Found: errlist.Label{FileName: f.GetName(), Path: []int32{visit.FileTagDependency, int32(i)}, Message: dep},
			})
		}
		deps[i] = h
	}
	fi.Dependencies = deps

	for _, pi := range f.GetPublicDependency() {
		if pi < 0 || int(pi) >= len(deps) {
			r.errs.Add(&errlist.Error{
				Kind: errlist.KindInvalidImportIndex,
				Number: int64(pi),
				Found: errlist.Label{FileName: f.GetName(), Path: []int32{visit.FileTagPublicDependency}, Message: "public_dependency"},
			})
		}
	}
	for _, wi := range f.GetWeakDependency() {
		if wi < 0 || int(wi) >= len(deps) {
			r.errs.Add(&errlist.Error{
				Kind: errlist.KindInvalidImportIndex,
				Number: int64(wi),
				Found: errlist.Label{FileName: f.GetName(), Path: []int32{visit.FileTagWeakDependency}, Message: "weak_dependency"},
			})
		}
	}
}

func (r *resolvePass) VisitMessage(path []int32, file handle.File, fullName string, msg *descriptorpb.DescriptorProto) handle.Message {
	h := r.nextMessage
	r.nextMessage++
	m := &r.store.Messages[h]
	m.ExtensionRanges = messageExtensionRanges(msg)
	m.ReservedRanges = messageReservedRanges(msg)

	for _, od := range msg.GetOneofDecl() {
		m.Oneofs = append(m.Oneofs, poolstore.Oneof{
			Identity: poolstore.Identity{
				File:      file,
				FullName:  protoident.JoinFullName(fullName, od.GetName()),
				ShortName: od.GetName(),
			},
		})
	}
	return h
}

func (r *resolvePass) VisitOneof(path []int32, file handle.File, message handle.Message, fullName string, oneof *descriptorpb.OneofDescriptorProto) {
	// Oneof arena slots are pre-created by VisitMessage above, since a
	// field's oneof_index must already be resolvable by the time fields
	// are visited (fields are walked before oneofs).
}

func (r *resolvePass) VisitField(path []int32, file handle.File, message handle.Message, fullName string, field *descriptorpb.FieldDescriptorProto) {
	m := &r.store.Messages[message]
	scope := protoident.ParseNamespace(fullName)
	syntax := r.store.Files[file].Syntax

	kind, ok := r.resolveKind(scope, file, path, field.Type, field.TypeName, field)
	cardinality := cardinalityOf(field.GetLabel())

	num := field.GetNumber()
	r.validateFieldNumber(file, path, fullName, num, m.ReservedRanges, m.ExtensionRanges)

	isPacked := false
	if ok && cardinality == poolstore.Repeated && kind.IsPackable() {
		if field.GetOptions().GetPacked() || (field.Options == nil || field.Options.Packed == nil) && syntax == poolstore.Proto3 {
			isPacked = true
		}
	}

	supportsPresence := false
	switch {
	case cardinality == poolstore.Repeated:
		supportsPresence = false
	case ok && kind.IsMessage():
		supportsPresence = true
	case syntax == poolstore.Proto2:
		supportsPresence = true
	default: // proto3 scalar
		supportsPresence = field.GetProto3Optional() || field.OneofIndex != nil
	}

	f := poolstore.Field{
		Identity:         poolstore.Identity{File: file, Path: path, FullName: fullName, ShortName: protoident.ParseShortName(fullName)},
		Number:           uint32(num),
		Kind:             kind,
		Oneof:            handle.InvalidOneof,
		Cardinality:      cardinality,
		IsPacked:         isPacked,
		SupportsPresence: supportsPresence,
	}

	if field.OneofIndex != nil {
		oi := field.GetOneofIndex()
		if oi < 0 || int(oi) >= len(m.Oneofs) {
			r.errs.Add(&errlist.Error{
				Kind: errlist.KindInvalidOneofIndex,
				Found: errlist.Label{FileName: r.store.Files[file].Name, Path: path, Message: fullName},
			})
		} else {
			f.Oneof = handle.Oneof(oi)
		}
	}

	jsonName := field.GetJsonName()
	if jsonName == "" {
		jsonName = defaultJSONName(field.GetName())
	}
	f.JSONName = jsonName

	if field.DefaultValue != nil {
		var enumPtr *poolstore.Enum
		if ok && kind.Tag == poolstore.KindEnum {
			enumPtr = &r.store.Enums[kind.Enum]
		}
		v, err := defaultval.Parse(kind, field.GetDefaultValue(), enumPtr)
		if err != nil {
			r.errs.Add(&errlist.Error{
				Kind:      errlist.KindInvalidFieldDefault,
				Value:     field.GetDefaultValue(),
				ValueKind: kindName(kind),
				Found:     errlist.Label{FileName: r.store.Files[file].Name, Path: path, Message: fullName},
			})
		} else {
			f.Default = v
		}
	}

	localIdx := handle.Field(len(m.Fields))
	m.Fields = append(m.Fields, f)

	if f.Oneof != handle.InvalidOneof {
		o := &m.Oneofs[f.Oneof]
		o.Fields = append(o.Fields, localIdx)
	}

	r.registerFieldUniqueness(m, localIdx, f)
}

func (r *resolvePass) VisitExtension(path []int32, file handle.File, parent handle.Message, fullName string, ext *descriptorpb.FieldDescriptorProto) {
	scope := protoident.ParseNamespace(fullName)

	extendeeFull, def, ok := r.names.Resolve(scope, ext.GetExtendee())
	extendee := handle.InvalidMessage
	if !ok {
		r.errs.Add(&errlist.Error{
			Kind: errlist.KindNameNotFound,
			Name: ext.GetExtendee(),
			Found: errlist.Label{FileName: r.store.Files[file].Name, Path: path, Message: fullName},
		})
	} else if def.Kind != nametable.KindMessage {
		r.errs.Add(&errlist.Error{
			Kind:     errlist.KindInvalidType,
			Name:     ext.GetExtendee(),
			Expected: "message",
			Found:    errlist.Label{FileName: r.store.Files[file].Name, Path: path, Message: fullName},
			Defined:  errlist.Label{FileName: r.store.Files[def.File].Name, Path: def.Path},
		})
	} else {
		extendee = def.Message
		ext.Extendee = strPtr("." + extendeeFull)
	}

	kind, kindOK := r.resolveKind(scope, file, path, ext.Type, ext.TypeName, ext)
	cardinality := cardinalityOf(ext.GetLabel())

	num := ext.GetNumber()
	if extendee != handle.InvalidMessage {
		extMsg := &r.store.Messages[extendee]
		if _, inExt := extensionRangeContaining(extMsg.ExtensionRanges, num); !inExt {
			r.errs.Add(&errlist.Error{
				Kind:    errlist.KindExtensionNumberOutOfRange,
				Number:  int64(num),
				Message: extMsg.FullName,
				Found:   errlist.Label{FileName: r.store.Files[file].Name, Path: path, Message: fullName},
			})
		}
	}
	r.validateFieldNumberBoundsOnly(file, path, fullName, num)

	extSyntax := r.store.Files[file].Syntax
	isPacked := false
	if kindOK && cardinality == poolstore.Repeated && kind.IsPackable() {
		if ext.GetOptions().GetPacked() || (ext.Options == nil || ext.Options.Packed == nil) && extSyntax == poolstore.Proto3 {
			isPacked = true
		}
	}

	f := poolstore.Field{
		Identity:         poolstore.Identity{File: file, Path: path, FullName: fullName, ShortName: protoident.ParseShortName(fullName)},
		Number:           uint32(num),
		Kind:             kind,
		Oneof:            handle.InvalidOneof,
		Cardinality:      cardinality,
		IsPacked:         isPacked,
		SupportsPresence: true,
		IsExtension:      true,
		Extendee:         extendee,
		JSONName:         "[" + fullName + "]",
		Parent:           parent,
	}

	if ext.DefaultValue != nil {
		var enumPtr *poolstore.Enum
		if kindOK && kind.Tag == poolstore.KindEnum {
			enumPtr = &r.store.Enums[kind.Enum]
		}
		v, err := defaultval.Parse(kind, ext.GetDefaultValue(), enumPtr)
		if err != nil {
			r.errs.Add(&errlist.Error{
				Kind:      errlist.KindInvalidFieldDefault,
				Value:     ext.GetDefaultValue(),
				ValueKind: kindName(kind),
				Found:     errlist.Label{FileName: r.store.Files[file].Name, Path: path, Message: fullName},
			})
		} else {
			f.Default = v
		}
	}

	h := r.store.AddExtension(f)
	if extendee != handle.InvalidMessage {
		extMsg := &r.store.Messages[extendee]
		extMsg.Extensions = append(extMsg.Extensions, h)
	}
	if parent == handle.InvalidMessage {
		fi := &r.store.Files[file]
		fi.TopExtensions = append(fi.TopExtensions, h)
	}
}

func (r *resolvePass) VisitEnum(path []int32, file handle.File, fullName string, en *descriptorpb.EnumDescriptorProto) handle.Enum {
	h := r.nextEnum
	r.nextEnum++
	e := &r.store.Enums[h]
	e.ReservedRanges = enumReservedRanges(en)
	return h
}

func (r *resolvePass) VisitEnumValue(path []int32, file handle.File, enum handle.Enum, fullName string, value *descriptorpb.EnumValueDescriptorProto) {
	e := &r.store.Enums[enum]
	num := value.GetNumber()
	shortName := protoident.ParseShortName(fullName)

	if rr, inReserved := enumReservedRangeContaining(e.ReservedRanges, num); inReserved {
		r.errs.Add(&errlist.Error{
			Kind:       errlist.KindEnumNumberInReservedRange,
			Number:     int64(num),
			RangeStart: int64(rr.Start),
			RangeEnd:   int64(rr.End),
			Found:      errlist.Label{FileName: r.store.Files[file].Name, Path: path, Message: fullName},
		})
	}

	idx := handle.EnumValue(len(e.Values))
	e.Values = append(e.Values, poolstore.EnumValue{
		Identity: poolstore.Identity{File: file, Path: path, FullName: fullName, ShortName: shortName},
		Number:   num,
	})

	if existing, dup := lookupNumberIndex(e.ValueNumbers, num); dup {
		if !e.AllowAlias {
			r.errs.Add(&errlist.Error{
				Kind:   errlist.KindDuplicateEnumNumber,
				Number: int64(num),
				First:  errlist.Label{FileName: r.store.Files[e.Values[existing].File].Name, Path: e.Values[existing].Path, Message: e.Values[existing].FullName},
				Second: errlist.Label{FileName: r.store.Files[file].Name, Path: path, Message: fullName},
			})
		}
	} else {
		insertNumberIndex(&e.ValueNumbers, poolstore.NumberIndex{Number: num, Index: idx})
	}

	if existingIdx, dup := e.ValueNames[shortName]; dup {
		r.errs.Add(&errlist.Error{
			Kind: errlist.KindDuplicateName,
			Name: fullName,
			First:  errlist.Label{FileName: r.store.Files[e.Values[existingIdx].File].Name, Path: e.Values[existingIdx].Path, Message: e.Values[existingIdx].FullName},
			Second: errlist.Label{FileName: r.store.Files[file].Name, Path: path, Message: fullName},
		})
	} else {
		e.ValueNames[shortName] = idx
	}
}

func (r *resolvePass) VisitService(path []int32, file handle.File, fullName string, svc *descriptorpb.ServiceDescriptorProto) handle.Service {
	h := r.nextService
	r.nextService++
	return h
}

func (r *resolvePass) VisitMethod(path []int32, file handle.File, service handle.Service, fullName string, method *descriptorpb.MethodDescriptorProto) {
	scope := protoident.ParseNamespace(fullName)
	s := &r.store.Services[service]

	inFull, inDef, inOK := r.names.Resolve(scope, method.GetInputType())
	input := handle.InvalidMessage
	if !inOK {
		r.errs.Add(&errlist.Error{Kind: errlist.KindNameNotFound, Name: method.GetInputType(), Found: errlist.Label{FileName: r.store.Files[file].Name, Path: path, Message: fullName}})
	} else if inDef.Kind != nametable.KindMessage {
		r.errs.Add(&errlist.Error{Kind: errlist.KindInvalidType, Name: method.GetInputType(), Expected: "message", Found: errlist.Label{FileName: r.store.Files[file].Name, Path: path, Message: fullName}})
	} else {
		input = inDef.Message
		method.InputType = strPtr("." + inFull)
	}

	outFull, outDef, outOK := r.names.Resolve(scope, method.GetOutputType())
	output := handle.InvalidMessage
	if !outOK {
		r.errs.Add(&errlist.Error{Kind: errlist.KindNameNotFound, Name: method.GetOutputType(), Found: errlist.Label{FileName: r.store.Files[file].Name, Path: path, Message: fullName}})
	} else if outDef.Kind != nametable.KindMessage {
		r.errs.Add(&errlist.Error{Kind: errlist.KindInvalidType, Name: method.GetOutputType(), Expected: "message", Found: errlist.Label{FileName: r.store.Files[file].Name, Path: path, Message: fullName}})
	} else {
		output = outDef.Message
		method.OutputType = strPtr("." + outFull)
	}

	s.Methods = append(s.Methods, poolstore.Method{
		Identity: poolstore.Identity{File: file, Path: path, FullName: fullName, ShortName: protoident.ParseShortName(fullName)},
		Input:    input,
		Output:   output,
	})
}

// resolveKind determines the field/extension's Kind, resolving and
// canonicalizing typeName when the wire type is (or must be) a
// message/enum/group reference.
func (r *resolvePass) resolveKind(scope string, file handle.File, path []int32, explicitType *descriptorpb.FieldDescriptorProto_Type, typeName *string, owner interface{ GetTypeName() string }) (poolstore.Kind, bool) {
	if explicitType != nil {
		if kind, ok := scalarKind(*explicitType); ok {
			return kind, true
		}
	}

	// Message, enum, or group: resolve typeName regardless of whether
	// explicitType was present, since an absent type is only legal when
	// the descriptor leans entirely on type_name (rare but permitted).
	full, def, ok := r.names.Resolve(scope, owner.GetTypeName())
	if !ok {
		r.errs.Add(&errlist.Error{
			Kind: errlist.KindNameNotFound,
			Name: owner.GetTypeName(),
			Found: errlist.Label{FileName: r.store.Files[file].Name, Path: path},
		})
		return poolstore.Kind{}, false
	}

	isGroupWire := explicitType != nil && *explicitType == descriptorpb.FieldDescriptorProto_TYPE_GROUP
	switch def.Kind {
	case nametable.KindMessage:
		tag := poolstore.KindMessage
		if isGroupWire {
			tag = poolstore.KindGroup
		}
		writeBackTypeName(typeName, full)
		return poolstore.Kind{Tag: tag, Message: def.Message}, true
	case nametable.KindEnum:
		if isGroupWire {
			r.errs.Add(&errlist.Error{
				Kind: errlist.KindInvalidType, Name: owner.GetTypeName(), Expected: "message",
				Found: errlist.Label{FileName: r.store.Files[file].Name, Path: path},
				Defined: errlist.Label{FileName: r.store.Files[def.File].Name, Path: def.Path},
			})
			return poolstore.Kind{}, false
		}
		writeBackTypeName(typeName, full)
		return poolstore.Kind{Tag: poolstore.KindEnum, Enum: def.Enum}, true
	default:
		r.errs.Add(&errlist.Error{
			Kind: errlist.KindInvalidType, Name: owner.GetTypeName(), Expected: "message or enum",
			Found:   errlist.Label{FileName: r.store.Files[file].Name, Path: path},
			Defined: errlist.Label{FileName: r.store.Files[def.File].Name, Path: def.Path},
		})
		return poolstore.Kind{}, false
	}
}

func writeBackTypeName(typeName *string, resolved string) {
	if typeName == nil {
		return
	}
	*typeName = "." + resolved
}

func scalarKind(t descriptorpb.FieldDescriptorProto_Type) (poolstore.Kind, bool) {
	switch t {
	case descriptorpb.FieldDescriptorProto_TYPE_DOUBLE:
		return poolstore.Kind{Tag: poolstore.KindDouble}, true
	case descriptorpb.FieldDescriptorProto_TYPE_FLOAT:
		return poolstore.Kind{Tag: poolstore.KindFloat}, true
	case descriptorpb.FieldDescriptorProto_TYPE_INT64:
		return poolstore.Kind{Tag: poolstore.KindInt64}, true
	case descriptorpb.FieldDescriptorProto_TYPE_UINT64:
		return poolstore.Kind{Tag: poolstore.KindUint64}, true
	case descriptorpb.FieldDescriptorProto_TYPE_INT32:
		return poolstore.Kind{Tag: poolstore.KindInt32}, true
	case descriptorpb.FieldDescriptorProto_TYPE_FIXED64:
		return poolstore.Kind{Tag: poolstore.KindFixed64}, true
	case descriptorpb.FieldDescriptorProto_TYPE_FIXED32:
		return poolstore.Kind{Tag: poolstore.KindFixed32}, true
	case descriptorpb.FieldDescriptorProto_TYPE_BOOL:
		return poolstore.Kind{Tag: poolstore.KindBool}, true
	case descriptorpb.FieldDescriptorProto_TYPE_STRING:
		return poolstore.Kind{Tag: poolstore.KindString}, true
	case descriptorpb.FieldDescriptorProto_TYPE_BYTES:
		return poolstore.Kind{Tag: poolstore.KindBytes}, true
	case descriptorpb.FieldDescriptorProto_TYPE_UINT32:
		return poolstore.Kind{Tag: poolstore.KindUint32}, true
	case descriptorpb.FieldDescriptorProto_TYPE_SFIXED32:
		return poolstore.Kind{Tag: poolstore.KindSfixed32}, true
	case descriptorpb.FieldDescriptorProto_TYPE_SFIXED64:
		return poolstore.Kind{Tag: poolstore.KindSfixed64}, true
	case descriptorpb.FieldDescriptorProto_TYPE_SINT32:
		return poolstore.Kind{Tag: poolstore.KindSint32}, true
	case descriptorpb.FieldDescriptorProto_TYPE_SINT64:
		return poolstore.Kind{Tag: poolstore.KindSint64}, true
	default:
		return poolstore.Kind{}, false
	}
}

func cardinalityOf(l descriptorpb.FieldDescriptorProto_Label) poolstore.Cardinality {
	switch l {
	case descriptorpb.FieldDescriptorProto_LABEL_REQUIRED:
		return poolstore.Required
	case descriptorpb.FieldDescriptorProto_LABEL_REPEATED:
		return poolstore.Repeated
	default:
		return poolstore.Optional
	}
}

func kindName(k poolstore.Kind) string {
	switch k.Tag {
	case poolstore.KindMessage:
		return "message"
	case poolstore.KindGroup:
		return "group"
	case poolstore.KindEnum:
		return "enum"
	case poolstore.KindBytes:
		return "bytes"
	case poolstore.KindString:
		return "string"
	case poolstore.KindBool:
		return "bool"
	default:
		return "number"
	}
}

func (r *resolvePass) validateFieldNumber(file handle.File, path []int32, fullName string, num int32, reserved, extensions []poolstore.Range) {
	if !r.validateFieldNumberBoundsOnly(file, path, fullName, num) {
		return
	}
	if rr, in := reservedRangeContaining(reserved, num); in {
		r.errs.Add(&errlist.Error{
			Kind: errlist.KindFieldNumberInReservedRange, Number: int64(num),
			RangeStart: int64(rr.Start), RangeEnd: int64(rr.End),
			Found: errlist.Label{FileName: r.store.Files[file].Name, Path: path, Message: fullName},
		})
		return
	}
	if rr, in := extensionRangeContaining(extensions, num); in {
		r.errs.Add(&errlist.Error{
			Kind: errlist.KindFieldNumberInExtensionRange, Number: int64(num),
			RangeStart: int64(rr.Start), RangeEnd: int64(rr.End),
			Found: errlist.Label{FileName: r.store.Files[file].Name, Path: path, Message: fullName},
		})
	}
}

// validateFieldNumberBoundsOnly checks the bounds shared by ordinary
// fields and extensions (legal range, not in the globally reserved
// implementation band); it returns false if num is out of bounds so the
// caller can skip range checks that assume a sane number.
func (r *resolvePass) validateFieldNumberBoundsOnly(file handle.File, path []int32, fullName string, num int32) bool {
	if num < poolstore.MinFieldNumber || num > poolstore.MaxFieldNumber {
		r.errs.Add(&errlist.Error{
			Kind: errlist.KindInvalidFieldNumber, Number: int64(num),
			Found: errlist.Label{FileName: r.store.Files[file].Name, Path: path, Message: fullName},
		})
		return false
	}
	if num >= poolstore.ReservedFieldNumberStart && num <= poolstore.ReservedFieldNumberEnd {
		r.errs.Add(&errlist.Error{
			Kind: errlist.KindFieldNumberInReservedRange, Number: int64(num),
			RangeStart: poolstore.ReservedFieldNumberStart, RangeEnd: poolstore.ReservedFieldNumberEnd + 1,
			Found: errlist.Label{FileName: r.store.Files[file].Name, Path: path, Message: fullName},
		})
		return false
	}
	return true
}

func (r *resolvePass) registerFieldUniqueness(m *poolstore.Message, localIdx handle.Field, f poolstore.Field) {
	if existing, dup := m.FieldNumbers[f.Number]; dup {
		r.errs.Add(&errlist.Error{
			Kind: errlist.KindDuplicateFieldNumber, Number: int64(f.Number),
			First:  errlist.Label{FileName: r.store.Files[m.Fields[existing].File].Name, Path: m.Fields[existing].Path, Message: m.Fields[existing].FullName},
			Second: errlist.Label{FileName: r.store.Files[f.File].Name, Path: f.Path, Message: f.FullName},
		})
	} else {
		m.FieldNumbers[f.Number] = localIdx
	}

	if existing, dup := m.FieldNames[f.ShortName]; dup {
		r.errs.Add(&errlist.Error{
			Kind: errlist.KindDuplicateName, Name: f.FullName,
			First:  errlist.Label{FileName: r.store.Files[m.Fields[existing].File].Name, Path: m.Fields[existing].Path, Message: m.Fields[existing].FullName},
			Second: errlist.Label{FileName: r.store.Files[f.File].Name, Path: f.Path, Message: f.FullName},
		})
	} else {
		m.FieldNames[f.ShortName] = localIdx
	}

	if existing, dup := m.FieldJSONNames[f.JSONName]; dup {
		r.errs.Add(&errlist.Error{
			Kind: errlist.KindDuplicateFieldJSONName, Name: f.JSONName,
			First:  errlist.Label{FileName: r.store.Files[m.Fields[existing].File].Name, Path: m.Fields[existing].Path, Message: m.Fields[existing].FullName},
			Second: errlist.Label{FileName: r.store.Files[f.File].Name, Path: f.Path, Message: f.FullName},
		})
	} else {
		m.FieldJSONNames[f.JSONName] = localIdx
	}
}

func lookupNumberIndex(sorted []poolstore.NumberIndex, num int32) (handle.EnumValue, bool) {
	lo, hi := 0, len(sorted)
	for lo < hi {
		mid := (lo + hi) / 2
		if sorted[mid].Number < num {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(sorted) && sorted[lo].Number == num {
		return sorted[lo].Index, true
	}
	return 0, false
}

func insertNumberIndex(sorted *[]poolstore.NumberIndex, entry poolstore.NumberIndex) {
	s := *sorted
	lo, hi := 0, len(s)
	for lo < hi {
		mid := (lo + hi) / 2
		if s[mid].Number < entry.Number {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	s = append(s, poolstore.NumberIndex{})
	copy(s[lo+1:], s[lo:])
	s[lo] = entry
	*sorted = s
}

func strPtr(s string) *string { return &s }
