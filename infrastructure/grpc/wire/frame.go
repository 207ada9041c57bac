package wire

import (
	"fmt"
	"note-relay/domain"
	"note-relay/errors"
	"reflect"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"
)

type FrameType string

const (
	FrameHello   FrameType = "hello"
	FrameWelcome FrameType = "welcome"
	FrameJoined  FrameType = "joined"
	FrameLeft    FrameType = "left"
	FrameEvent   FrameType = "event"
)

// Frame is the decoded form of a Struct on the Connect stream.
// Participant is the assigned id for welcome, the member for joined/left
// and the sender for event frames. Clients never set it on events, the
// server stamps it.
type Frame struct {
	Type        FrameType
	Participant domain.ParticipantID
	Name        string
	Kind        domain.EventKind
	Payload     any
	Reliable    bool
}

const (
	fieldType        = "type"
	fieldParticipant = "participant"
	fieldName        = "name"
	fieldKind        = "kind"
	fieldPayload     = "payload"
	fieldReliable    = "reliable"
	fieldPayloadType = "payload_type"
)

// Encode fails with errors.ErrUnsupportedPayload when the payload has no
// protobuf Value representation. Integers and float32 travel as decimal
// strings tagged with their kind, so Decode restores the same Go type.
func Encode(f Frame) (*structpb.Struct, error) {
	fields := map[string]*structpb.Value{
		fieldType: structpb.NewStringValue(string(f.Type)),
	}
	if f.Participant != "" {
		fields[fieldParticipant] = structpb.NewStringValue(string(f.Participant))
	}
	if f.Name != "" {
		fields[fieldName] = structpb.NewStringValue(f.Name)
	}
	if f.Type == FrameEvent {
		payload, payloadType, err := encodePayload(f.Payload)
		if err != nil {
			return nil, fmt.Errorf("%w: %T: %v", errors.ErrUnsupportedPayload, f.Payload, err)
		}
		if payloadType != "" {
			fields[fieldPayloadType] = structpb.NewStringValue(payloadType)
		}
		fields[fieldKind] = structpb.NewNumberValue(float64(f.Kind))
		fields[fieldPayload] = payload
		fields[fieldReliable] = structpb.NewBoolValue(f.Reliable)
	}
	return &structpb.Struct{Fields: fields}, nil
}

func Decode(s *structpb.Struct) (Frame, error) {
	fields := s.GetFields()
	frame := Frame{
		Type:        FrameType(fields[fieldType].GetStringValue()),
		Participant: domain.ParticipantID(fields[fieldParticipant].GetStringValue()),
		Name:        fields[fieldName].GetStringValue(),
	}
	switch frame.Type {
	case FrameHello, FrameWelcome, FrameJoined, FrameLeft:
		return frame, nil
	case FrameEvent:
		kind := fields[fieldKind].GetNumberValue()
		if kind < 0 || kind > 255 || kind != float64(int(kind)) {
			return Frame{}, fmt.Errorf("%w: event kind %v", errors.ErrUnknownFrame, kind)
		}
		frame.Kind = domain.EventKind(kind)
		frame.Reliable = fields[fieldReliable].GetBoolValue()
		if payload, ok := fields[fieldPayload]; ok {
			decoded, err := decodePayload(payload, fields[fieldPayloadType].GetStringValue())
			if err != nil {
				return Frame{}, err
			}
			frame.Payload = decoded
		}
		return frame, nil
	default:
		return Frame{}, fmt.Errorf("%w: %q", errors.ErrUnknownFrame, frame.Type)
	}
}

// encodePayload returns the kind tag of numbers protobuf would widen to float64.
// Named types travel as their underlying kind.
func encodePayload(payload any) (*structpb.Value, string, error) {
	if payload == nil {
		return structpb.NewNullValue(), "", nil
	}
	v := reflect.ValueOf(payload)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return structpb.NewStringValue(strconv.FormatInt(v.Int(), 10)), v.Kind().String(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return structpb.NewStringValue(strconv.FormatUint(v.Uint(), 10)), v.Kind().String(), nil
	case reflect.Float32:
		return structpb.NewStringValue(strconv.FormatFloat(v.Float(), 'g', -1, 32)), v.Kind().String(), nil
	}
	value, err := structpb.NewValue(payload)
	return value, "", err
}

func decodePayload(value *structpb.Value, payloadType string) (any, error) {
	if payloadType == "" {
		return value.AsInterface(), nil
	}
	raw := value.GetStringValue()
	invalid := func(err error) (any, error) {
		return nil, fmt.Errorf("%w: %s payload %q: %v", errors.ErrUnknownFrame, payloadType, raw, err)
	}
	switch payloadType {
	case "int", "int8", "int16", "int32", "int64":
		n, err := strconv.ParseInt(raw, 10, bitSize(payloadType))
		if err != nil {
			return invalid(err)
		}
		switch payloadType {
		case "int":
			return int(n), nil
		case "int8":
			return int8(n), nil
		case "int16":
			return int16(n), nil
		case "int32":
			return int32(n), nil
		}
		return n, nil
	case "uint", "uint8", "uint16", "uint32", "uint64":
		n, err := strconv.ParseUint(raw, 10, bitSize(payloadType))
		if err != nil {
			return invalid(err)
		}
		switch payloadType {
		case "uint":
			return uint(n), nil
		case "uint8":
			return uint8(n), nil
		case "uint16":
			return uint16(n), nil
		case "uint32":
			return uint32(n), nil
		}
		return n, nil
	case "float32":
		f, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return invalid(err)
		}
		return float32(f), nil
	default:
		return invalid(fmt.Errorf("unknown payload type"))
	}
}

func bitSize(payloadType string) int {
	switch payloadType {
	case "int8", "uint8":
		return 8
	case "int16", "uint16":
		return 16
	case "int32", "uint32":
		return 32
	case "int", "uint":
		return strconv.IntSize
	}
	return 64
}
