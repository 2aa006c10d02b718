package resolve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/protoflow/descriptorpool/errlist"
	"github.com/protoflow/descriptorpool/internal/handle"
	"github.com/protoflow/descriptorpool/internal/nametable"
	"github.com/protoflow/descriptorpool/internal/poolstore"
	"github.com/protoflow/descriptorpool/internal/resolve"
)

func strp(s string) *string { return &s }

func scalarField(name string, num int32, t descriptorpb.FieldDescriptorProto_Type, label descriptorpb.FieldDescriptorProto_Label) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   strp(name),
		Number: proto.Int32(num),
		Type:   t.Enum(),
		Label:  label.Enum(),
	}
}

func buildOne(t *testing.T, files []*descriptorpb.FileDescriptorProto) (*poolstore.Store, *nametable.Table, *errlist.List) {
	t.Helper()
	store := poolstore.New()
	names := nametable.New()
	errs := resolve.Build(store, names, files, handle.File(len(store.Files)))
	return store, names, errs
}

func TestResolveCrossFileMessageReference(t *testing.T) {
	base := &descriptorpb.FileDescriptorProto{
		Name:    strp("base.proto"),
		Package: strp("pkg"),
		Syntax:  strp("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{Name: strp("Target")},
		},
	}
	user := &descriptorpb.FileDescriptorProto{
		Name:       strp("user.proto"),
		Package:    strp("pkg"),
		Syntax:     strp("proto3"),
		Dependency: []string{"base.proto"},
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: strp("User"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{
						Name:     strp("target"),
						Number:   proto.Int32(1),
						Type:     descriptorpb.FieldDescriptorProto_TYPE_MESSAGE.Enum(),
						TypeName: strp("Target"),
						Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
					},
				},
			},
		},
	}

	store, _, errs := buildOne(t, []*descriptorpb.FileDescriptorProto{base, user})
	require.Equal(t, 0, errs.Len())

	userMsg := store.Messages[1]
	require.Len(t, userMsg.Fields, 1)
	f := userMsg.Fields[0]
	assert.Equal(t, poolstore.KindMessage, f.Kind.Tag)
	assert.Equal(t, handle.Message(0), f.Kind.Message)
	assert.Equal(t, ".pkg.Target", user.MessageType[0].Field[0].GetTypeName())
}

func TestResolvePackedAndPresenceInferenceProto3(t *testing.T) {
	file := &descriptorpb.FileDescriptorProto{
		Name:    strp("f.proto"),
		Package: strp("pkg"),
		Syntax:  strp("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: strp("M"),
				Field: []*descriptorpb.FieldDescriptorProto{
					scalarField("rep", 1, descriptorpb.FieldDescriptorProto_TYPE_INT32, descriptorpb.FieldDescriptorProto_LABEL_REPEATED),
					scalarField("scalar", 2, descriptorpb.FieldDescriptorProto_TYPE_INT32, descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL),
				},
			},
		},
	}
	store, _, errs := buildOne(t, []*descriptorpb.FileDescriptorProto{file})
	require.Equal(t, 0, errs.Len())

	m := store.Messages[0]
	assert.True(t, m.Fields[0].IsPacked)
	assert.False(t, m.Fields[0].SupportsPresence)
	assert.False(t, m.Fields[1].SupportsPresence) // proto3 singular scalar, no explicit optional
}

func TestResolveDuplicateFieldNumber(t *testing.T) {
	file := &descriptorpb.FileDescriptorProto{
		Name:    strp("f.proto"),
		Package: strp("pkg"),
		Syntax:  strp("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: strp("M"),
				Field: []*descriptorpb.FieldDescriptorProto{
					scalarField("a", 1, descriptorpb.FieldDescriptorProto_TYPE_INT32, descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL),
					scalarField("b", 1, descriptorpb.FieldDescriptorProto_TYPE_INT32, descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL),
				},
			},
		},
	}
	_, _, errs := buildOne(t, []*descriptorpb.FileDescriptorProto{file})
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, "DuplicateFieldNumber", errs.Errors()[0].Kind.String())
}

func TestResolveFieldNumberInReservedBand(t *testing.T) {
	file := &descriptorpb.FileDescriptorProto{
		Name:    strp("f.proto"),
		Package: strp("pkg"),
		Syntax:  strp("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: strp("M"),
				Field: []*descriptorpb.FieldDescriptorProto{
					scalarField("a", 19500, descriptorpb.FieldDescriptorProto_TYPE_INT32, descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL),
				},
			},
		},
	}
	_, _, errs := buildOne(t, []*descriptorpb.FileDescriptorProto{file})
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, "FieldNumberInReservedRange", errs.Errors()[0].Kind.String())
}

func TestResolveEnumReservedRangeInclusive(t *testing.T) {
	file := &descriptorpb.FileDescriptorProto{
		Name:    strp("f.proto"),
		Package: strp("pkg"),
		Syntax:  strp("proto3"),
		EnumType: []*descriptorpb.EnumDescriptorProto{
			{
				Name: strp("E"),
				Value: []*descriptorpb.EnumValueDescriptorProto{
					{Name: strp("ZERO"), Number: proto.Int32(0)},
					{Name: strp("BAD"), Number: proto.Int32(5)},
				},
				ReservedRange: []*descriptorpb.EnumDescriptorProto_EnumReservedRange{
					{Start: proto.Int32(5), End: proto.Int32(5)}, // inclusive on both ends
				},
			},
		},
	}
	_, _, errs := buildOne(t, []*descriptorpb.FileDescriptorProto{file})
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, "EnumNumberInReservedRange", errs.Errors()[0].Kind.String())
}

func TestResolveExtensionOutOfRange(t *testing.T) {
	file := &descriptorpb.FileDescriptorProto{
		Name:    strp("f.proto"),
		Package: strp("pkg"),
		Syntax:  strp("proto2"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: strp("M"),
				ExtensionRange: []*descriptorpb.DescriptorProto_ExtensionRange{
					{Start: proto.Int32(100), End: proto.Int32(200)},
				},
			},
		},
		Extension: []*descriptorpb.FieldDescriptorProto{
			{
				Name:     strp("ext"),
				Number:   proto.Int32(50),
				Type:     descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum(),
				Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
				Extendee: strp("M"),
			},
		},
	}
	_, _, errs := buildOne(t, []*descriptorpb.FileDescriptorProto{file})
	require.Equal(t, 1, errs.Len())
	assert.Equal(t, "ExtensionNumberOutOfRange", errs.Errors()[0].Kind.String())
}

func TestResolveOneofFieldMembership(t *testing.T) {
	file := &descriptorpb.FileDescriptorProto{
		Name:    strp("f.proto"),
		Package: strp("pkg"),
		Syntax:  strp("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: strp("M"),
				Field: []*descriptorpb.FieldDescriptorProto{
					{
						Name: strp("a"), Number: proto.Int32(1),
						Type: descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum(),
						Label: descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
						OneofIndex: proto.Int32(0),
					},
					{
						Name: strp("b"), Number: proto.Int32(2),
						Type: descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum(),
						Label: descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
						OneofIndex: proto.Int32(0),
					},
				},
				OneofDecl: []*descriptorpb.OneofDescriptorProto{
					{Name: strp("which")},
				},
			},
		},
	}
	store, _, errs := buildOne(t, []*descriptorpb.FileDescriptorProto{file})
	require.Equal(t, 0, errs.Len())

	m := store.Messages[0]
	require.Len(t, m.Oneofs, 1)
	assert.Equal(t, []handle.Field{0, 1}, m.Oneofs[0].Fields)
	assert.True(t, m.Fields[0].SupportsPresence)
	assert.Equal(t, handle.Oneof(0), m.Fields[0].Oneof)
}
