package descriptorpool_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"

	descriptorpool "github.com/protoflow/descriptorpool"
	"github.com/protoflow/descriptorpool/internal/poolstore"
)

func TestMessageRanges(t *testing.T) {
	fds := &descriptorpb.FileDescriptorSet{
		File: []*descriptorpb.FileDescriptorProto{
			{
				Name:    strp("ranges.proto"),
				Package: strp("ranges"),
				Syntax:  strp("proto2"),
				MessageType: []*descriptorpb.DescriptorProto{
					{
						Name: strp("M"),
						ExtensionRange: []*descriptorpb.DescriptorProto_ExtensionRange{
							{Start: proto.Int32(100), End: proto.Int32(200)},
						},
						ReservedRange: []*descriptorpb.DescriptorProto_ReservedRange{
							{Start: proto.Int32(2), End: proto.Int32(4)},
						},
					},
				},
			},
		},
	}

	builder := descriptorpool.NewBuilder()
	require.Empty(t, builder.AddFiles(fds))
	pool, err := builder.Build()
	require.NoError(t, err)

	msg, ok := pool.GetMessageByName("ranges.M")
	require.True(t, ok)

	if diff := cmp.Diff([]poolstore.Range{{Start: 100, End: 200}}, msg.ExtensionRanges()); diff != "" {
		t.Errorf("extension ranges mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]poolstore.Range{{Start: 2, End: 4}}, msg.ReservedRanges()); diff != "" {
		t.Errorf("reserved ranges mismatch (-want +got):\n%s", diff)
	}
}
