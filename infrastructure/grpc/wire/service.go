// Package wire describes the session service shared by the relay server and
// its clients: one bidirectional Connect stream carrying protobuf Struct frames.
package wire

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	ServiceName              = "noterelay.v1.Session"
	SessionConnectFullMethod = "/noterelay.v1.Session/Connect"
)

type SessionServer interface {
	Connect(stream grpc.BidiStreamingServer[structpb.Struct, structpb.Struct]) error
}

func RegisterSessionServer(s grpc.ServiceRegistrar, srv SessionServer) {
	s.RegisterService(&SessionServiceDesc, srv)
}

func sessionConnectHandler(srv any, stream grpc.ServerStream) error {
	return srv.(SessionServer).Connect(&grpc.GenericServerStream[structpb.Struct, structpb.Struct]{ServerStream: stream})
}

var SessionServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*SessionServer)(nil),
	Methods:     []grpc.MethodDesc{},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "Connect",
			Handler:       sessionConnectHandler,
			ServerStreams: true,
			ClientStreams: true,
		},
	},
	Metadata: "noterelay/v1/session.proto",
}

type SessionClient interface {
	Connect(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[structpb.Struct, structpb.Struct], error)
}

type sessionClient struct {
	cc grpc.ClientConnInterface
}

func NewSessionClient(cc grpc.ClientConnInterface) SessionClient {
	return &sessionClient{cc: cc}
}

func (c *sessionClient) Connect(ctx context.Context, opts ...grpc.CallOption) (grpc.BidiStreamingClient[structpb.Struct, structpb.Struct], error) {
	stream, err := c.cc.NewStream(ctx, &SessionServiceDesc.Streams[0], SessionConnectFullMethod, opts...)
	if err != nil {
		return nil, err
	}
	return &grpc.GenericClientStream[structpb.Struct, structpb.Struct]{ClientStream: stream}, nil
}
