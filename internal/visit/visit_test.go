package visit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	"github.com/protoflow/descriptorpool/internal/handle"
	"github.com/protoflow/descriptorpool/internal/visit"
)

type recordingVisitor struct {
	order    []string
	nextMsg  int
	nextEnum int
	nextSvc  int
}

func (r *recordingVisitor) VisitFile(idx handle.File, f *descriptorpb.FileDescriptorProto) {
	r.order = append(r.order, "file:"+f.GetName())
}
func (r *recordingVisitor) VisitMessage(path []int32, file handle.File, fullName string, msg *descriptorpb.DescriptorProto) handle.Message {
	r.order = append(r.order, "msg:"+fullName)
	h := handle.Message(r.nextMsg)
	r.nextMsg++
	return h
}
func (r *recordingVisitor) VisitField(path []int32, file handle.File, message handle.Message, fullName string, field *descriptorpb.FieldDescriptorProto) {
	r.order = append(r.order, "field:"+fullName)
}
func (r *recordingVisitor) VisitOneof(path []int32, file handle.File, message handle.Message, fullName string, oneof *descriptorpb.OneofDescriptorProto) {
	r.order = append(r.order, "oneof:"+fullName)
}
func (r *recordingVisitor) VisitEnum(path []int32, file handle.File, fullName string, enum *descriptorpb.EnumDescriptorProto) handle.Enum {
	r.order = append(r.order, "enum:"+fullName)
	h := handle.Enum(r.nextEnum)
	r.nextEnum++
	return h
}
func (r *recordingVisitor) VisitEnumValue(path []int32, file handle.File, enum handle.Enum, fullName string, value *descriptorpb.EnumValueDescriptorProto) {
	r.order = append(r.order, "enumvalue:"+fullName)
}
func (r *recordingVisitor) VisitExtension(path []int32, file handle.File, parent handle.Message, fullName string, ext *descriptorpb.FieldDescriptorProto) {
	r.order = append(r.order, "ext:"+fullName)
}
func (r *recordingVisitor) VisitService(path []int32, file handle.File, fullName string, svc *descriptorpb.ServiceDescriptorProto) handle.Service {
	r.order = append(r.order, "svc:"+fullName)
	h := handle.Service(r.nextSvc)
	r.nextSvc++
	return h
}
func (r *recordingVisitor) VisitMethod(path []int32, file handle.File, service handle.Service, fullName string, method *descriptorpb.MethodDescriptorProto) {
	r.order = append(r.order, "method:"+fullName)
}

func strp(s string) *string { return &s }

func TestWalkOrder(t *testing.T) {
	file := &descriptorpb.FileDescriptorProto{
		Name:    strp("test.proto"),
		Package: strp("pkg"),
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: strp("Outer"),
				NestedType: []*descriptorpb.DescriptorProto{
					{Name: strp("Inner")},
				},
				Field: []*descriptorpb.FieldDescriptorProto{
					{Name: strp("f1")},
				},
				OneofDecl: []*descriptorpb.OneofDescriptorProto{
					{Name: strp("o1")},
				},
				EnumType: []*descriptorpb.EnumDescriptorProto{
					{Name: strp("NestedEnum"), Value: []*descriptorpb.EnumValueDescriptorProto{
						{Name: strp("NESTED_VAL"), Number: proto.Int32(0)},
					}},
				},
				Extension: []*descriptorpb.FieldDescriptorProto{
					{Name: strp("nested_ext")},
				},
			},
		},
		EnumType: []*descriptorpb.EnumDescriptorProto{
			{Name: strp("TopEnum"), Value: []*descriptorpb.EnumValueDescriptorProto{
				{Name: strp("TOP_VAL"), Number: proto.Int32(0)},
			}},
		},
		Service: []*descriptorpb.ServiceDescriptorProto{
			{Name: strp("Svc"), Method: []*descriptorpb.MethodDescriptorProto{
				{Name: strp("Do")},
			}},
		},
		Extension: []*descriptorpb.FieldDescriptorProto{
			{Name: strp("top_ext")},
		},
	}

	rv := &recordingVisitor{}
	visit.Walk([]*descriptorpb.FileDescriptorProto{file}, 0, rv)

	require.Equal(t, []string{
		"file:test.proto",
		"msg:pkg.Outer",
		"msg:pkg.Outer.Inner",
		"field:pkg.Outer.f1",
		"oneof:pkg.Outer.o1",
		"enum:pkg.Outer.NestedEnum",
		"enumvalue:pkg.Outer.NestedEnum.NESTED_VAL",
		"ext:pkg.Outer.nested_ext",
		"enum:pkg.TopEnum",
		"enumvalue:pkg.TopEnum.TOP_VAL",
		"svc:pkg.Svc",
		"method:pkg.Svc.Do",
		"ext:pkg.top_ext",
	}, rv.order)
}

func TestWalkAssignsSequentialFileHandles(t *testing.T) {
	files := []*descriptorpb.FileDescriptorProto{
		{Name: strp("a.proto")},
		{Name: strp("b.proto")},
	}
	var seen []handle.File
	rv := &fileHandleVisitor{seen: &seen}
	visit.Walk(files, handle.File(3), rv)
	assert.Equal(t, []handle.File{3, 4}, seen)
}

type fileHandleVisitor struct {
	recordingVisitor
	seen *[]handle.File
}

func (v *fileHandleVisitor) VisitFile(idx handle.File, f *descriptorpb.FileDescriptorProto) {
	*v.seen = append(*v.seen, idx)
}
