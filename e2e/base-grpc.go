package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"note-relay/infrastructure/grpc/client"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

type BaseGrpcSuite struct {
	suite.Suite
	Config Config
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseGrpcSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.RelayAddr == "" {
		s.T().Skip("RELAY_ADDR is not set")
	}
}

// Join opens a session on the relay as name. The session is closed with the test.
func (s *BaseGrpcSuite) Join(t *testing.T, name string) *client.Client {
	// 1. Print a colorized header for the connection step in logs
	header := fmt.Sprintf("  ====== %s joins ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	t.Log(header)

	// 2. Setup JSON marshaler for debugging session frames
	marshaler := protojson.MarshalOptions{
		UseProtoNames:   true,
		EmitUnpopulated: true,
	}

	// 3. Dial with a stream interceptor logging every frame
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	session, err := client.Dial(ctx, logs.GetLoggerFromLevel(slog.LevelDebug), s.Config.RelayAddr, name,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStreamInterceptor(func(ctx context.Context, desc *grpc.StreamDesc, cc *grpc.ClientConn,
			method string, streamer grpc.Streamer, opts ...grpc.CallOption) (grpc.ClientStream, error) {
			stream, err := streamer(ctx, desc, cc, method, opts...)
			if err != nil || !s.Config.DebugJSON {
				return stream, err
			}
			return &loggingStream{ClientStream: stream, t: t, name: name, marshaler: marshaler}, nil
		}),
	)
	s.Require().NoError(err, "Failed to join relay at "+s.Config.RelayAddr)
	t.Cleanup(func() { _ = session.Close() })
	return session
}

type loggingStream struct {
	grpc.ClientStream
	t         *testing.T
	name      string
	marshaler protojson.MarshalOptions
}

func (l *loggingStream) SendMsg(m any) error {
	err := l.ClientStream.SendMsg(m)
	l.t.Logf("%s >> %s", l.name, l.marshaler.Format(m.(proto.Message)))
	return err
}

func (l *loggingStream) RecvMsg(m any) error {
	err := l.ClientStream.RecvMsg(m)
	if err == nil {
		l.t.Logf("%s << %s", l.name, l.marshaler.Format(m.(proto.Message)))
	}
	return err
}
