package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapToGRPCError(t *testing.T) {
	tests := []struct {
		err  error
		code codes.Code
	}{
		{fmt.Errorf("frame: %w", ErrUnknownFrame), codes.InvalidArgument},
		{ErrUnsupportedPayload, codes.InvalidArgument},
		{ErrSessionClosed, codes.Unavailable},
		{ErrNotWelcomed, codes.FailedPrecondition},
		{ErrProtocolMismatch, codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			require.Equal(t, tt.code, status.Code(MapToGRPCError(tt.err)))
		})
	}
	require.NoError(t, MapToGRPCError(nil))
}
