package wire

import (
	"note-relay/domain"
	"note-relay/errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestFrame_Event_Keeps_Integer_Type(t *testing.T) {
	req := require.New(t)

	// Given an int note
	encoded, err := Encode(Frame{Type: FrameEvent, Kind: domain.KindPressed, Payload: 42, Reliable: true})
	req.NoError(err)

	// When it is decoded on the other side
	frame, err := Decode(encoded)

	// Then it is still an int, not a widened float64
	req.NoError(err)
	req.Equal(FrameEvent, frame.Type)
	req.Equal(domain.KindPressed, frame.Kind)
	req.Equal(42, frame.Payload)
	req.True(frame.Reliable)
	req.Empty(frame.Participant)
}

func TestFrame_Event_Payload_Types(t *testing.T) {
	type midi uint8
	tests := []struct {
		name    string
		payload any
		want    any
	}{
		{name: "string", payload: "C4", want: "C4"},
		{name: "bool", payload: true, want: true},
		{name: "float64", payload: 61.5, want: 61.5},
		{name: "float32", payload: float32(0.25), want: float32(0.25)},
		{name: "int8", payload: int8(-3), want: int8(-3)},
		{name: "int64 beyond float precision", payload: int64(1<<62 + 1), want: int64(1<<62 + 1)},
		{name: "uint64", payload: uint64(1<<63 + 7), want: uint64(1<<63 + 7)},
		{name: "named integer travels as its kind", payload: midi(60), want: uint8(60)},
		{name: "nil", payload: nil, want: nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			encoded, err := Encode(Frame{Type: FrameEvent, Kind: domain.KindReleased, Payload: tt.payload})
			req.NoError(err)

			frame, err := Decode(encoded)

			req.NoError(err)
			req.Equal(tt.want, frame.Payload)
		})
	}
}

func TestFrame_Event_Rejects_Corrupted_Number(t *testing.T) {
	req := require.New(t)
	bad, err := structpb.NewStruct(map[string]any{"type": "event", "kind": 1, "payload": "sixty", "payload_type": "int"})
	req.NoError(err)

	_, err = Decode(bad)

	req.ErrorIs(err, errors.ErrUnknownFrame)
}

func TestFrame_Event_Unsupported_Payload(t *testing.T) {
	req := require.New(t)

	_, err := Encode(Frame{Type: FrameEvent, Kind: domain.KindPressed, Payload: struct{ Note int }{Note: 1}})

	req.ErrorIs(err, errors.ErrUnsupportedPayload)
}

func TestFrame_Membership(t *testing.T) {
	req := require.New(t)

	encoded, err := Encode(Frame{Type: FrameJoined, Participant: "B", Name: "bob"})
	req.NoError(err)
	req.NotContains(encoded.Fields, fieldPayload)

	frame, err := Decode(encoded)
	req.NoError(err)
	req.Equal(Frame{Type: FrameJoined, Participant: "B", Name: "bob"}, frame)
}

func TestFrame_Decode_Rejects_Garbage(t *testing.T) {
	req := require.New(t)

	_, err := Decode(&structpb.Struct{})
	req.ErrorIs(err, errors.ErrUnknownFrame)

	bad, err := structpb.NewStruct(map[string]any{"type": "event", "kind": 300})
	req.NoError(err)
	_, err = Decode(bad)
	req.ErrorIs(err, errors.ErrUnknownFrame)
}
