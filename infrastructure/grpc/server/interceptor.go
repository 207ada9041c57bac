package server

import (
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// StreamLoggingInterceptor logs the lifetime of every session stream.
func StreamLoggingInterceptor(log *slog.Logger) grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		// 1. Identify the remote end when the transport knows it
		remote := "unknown"
		if p, ok := peer.FromContext(ss.Context()); ok && p.Addr != nil {
			remote = p.Addr.String()
		}
		start := time.Now()
		log.Debug("Stream opened", "method", info.FullMethod, "peer", remote)

		// 2. Run the stream until it ends
		err := handler(srv, ss)

		// 3. Report how it ended, client cancellations are not failures
		code := status.Code(err)
		attrs := []any{"method", info.FullMethod, "peer", remote, "code", code.String(), "duration", time.Since(start)}
		if err != nil && status.FromContextError(ss.Context().Err()).Code() != code {
			log.Warn("Stream failed", append(attrs, "error", err)...)
			return err
		}
		log.Info("Stream closed", attrs...)
		return err
	}
}
