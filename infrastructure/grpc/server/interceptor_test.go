package server

import (
	"context"
	"log/slog"
	"net"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

type fakeStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (f fakeStream) Context() context.Context { return f.ctx }

func TestStreamLoggingInterceptor_PassesThrough(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	interceptor := StreamLoggingInterceptor(log)
	ctx := peer.NewContext(context.Background(), &peer.Peer{Addr: &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 4242}})
	info := &grpc.StreamServerInfo{FullMethod: "/noterelay.v1.Session/Connect", IsClientStream: true, IsServerStream: true}

	// Given a handler that succeeds
	called := false
	err := interceptor(nil, fakeStream{ctx: ctx}, info, func(any, grpc.ServerStream) error {
		called = true
		return nil
	})
	req.NoError(err)
	req.True(called)

	// When the handler fails, the error is returned untouched
	failure := status.Error(codes.InvalidArgument, "hello expected")
	err = interceptor(nil, fakeStream{ctx: context.Background()}, info, func(any, grpc.ServerStream) error {
		return failure
	})
	req.Equal(codes.InvalidArgument, status.Code(err))
}
