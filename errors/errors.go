package errors

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrProtocolMismatch   = fmt.Errorf("payload does not match the expected note type")
	ErrSessionClosed      = fmt.Errorf("session is closed")
	ErrNotWelcomed        = fmt.Errorf("session did not assign a participant id")
	ErrUnsupportedPayload = fmt.Errorf("payload cannot be encoded on the wire")
	ErrParticipantUnknown = fmt.Errorf("participant is not a member of the session")
	ErrInstrumentNotFound = fmt.Errorf("instrument not found")
	ErrUnknownFrame       = fmt.Errorf("unknown frame type")
)

// MapToGRPCError translates relay errors into gRPC status errors.
func MapToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrUnknownFrame), errors.Is(err, ErrUnsupportedPayload):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, ErrSessionClosed):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, ErrParticipantUnknown), errors.Is(err, ErrNotWelcomed):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
