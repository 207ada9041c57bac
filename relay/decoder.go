package relay

import (
	"fmt"
	"math"
	"note-relay/errors"
	"reflect"
)

// Decoder turns a raw channel payload into a note.
// Failures must wrap errors.ErrProtocolMismatch.
type Decoder[T any] func(payload any) (T, error)

func AssertDecoder[T any](payload any) (T, error) {
	note, ok := payload.(T)
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: got %T, want %T", errors.ErrProtocolMismatch, payload, zero)
	}
	return note, nil
}

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IntegerDecoder accepts any integer type, and floats holding an integral
// value, as long as the value fits in T. Channels carrying numbers as JSON
// or as protobuf Value numbers widen them to float64.
func IntegerDecoder[T Integer](payload any) (T, error) {
	if note, ok := payload.(T); ok {
		return note, nil
	}
	mismatch := func() (T, error) {
		var zero T
		return zero, fmt.Errorf("%w: %v (%T) is not a valid %T", errors.ErrProtocolMismatch, payload, payload, zero)
	}
	if payload == nil {
		return mismatch()
	}

	v := reflect.ValueOf(payload)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := v.Int()
		note := T(n)
		if int64(note) != n || (note < 0) != (n < 0) {
			return mismatch()
		}
		return note, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := v.Uint()
		note := T(u)
		if note < 0 || uint64(note) != u {
			return mismatch()
		}
		return note, nil
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return mismatch()
		}
		n := int64(f)
		note := T(n)
		if int64(note) != n || (note < 0) != (n < 0) {
			return mismatch()
		}
		return note, nil
	default:
		return mismatch()
	}
}
