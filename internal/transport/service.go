package transport

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// The Transposer service carries documents as BytesValue so it needs no
// generated stubs. Per-call options travel as metadata. The label key is
// binary ("-bin") so labels are not limited to printable ASCII.
const (
	ServiceName     = "transposer.v1.Transposer"
	transposeMethod = "/" + ServiceName + "/Transpose"

	MDLabel       = "x-transpose-label-bin"
	MDFormat      = "x-transpose-format"
	MDContentType = "x-transpose-content-type"
)

type TransposerServer interface {
	Transpose(context.Context, *wrapperspb.BytesValue) (*wrapperspb.BytesValue, error)
}

func RegisterTransposerServer(s grpc.ServiceRegistrar, srv TransposerServer) {
	s.RegisterService(&transposerServiceDesc, srv)
}

var transposerServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TransposerServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Transpose", Handler: transposeHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "transposer/v1/transposer.proto",
}

func transposeHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.BytesValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(TransposerServer).Transpose(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: transposeMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(TransposerServer).Transpose(ctx, req.(*wrapperspb.BytesValue))
	}
	return interceptor(ctx, in, info, handler)
}

type TransposerClient interface {
	Transpose(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error)
}

type transposerClient struct {
	cc grpc.ClientConnInterface
}

func NewTransposerClient(cc grpc.ClientConnInterface) TransposerClient {
	return &transposerClient{cc}
}

func (c *transposerClient) Transpose(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.BytesValue, error) {
	out := new(wrapperspb.BytesValue)
	if err := c.cc.Invoke(ctx, transposeMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
