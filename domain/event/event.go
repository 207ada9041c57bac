package event

import (
	"note-relay/domain"
	"time"

	"github.com/google/uuid"
)

// Envelope is what a broadcast channel moves between participants.
// Sender is stamped by the channel, never by the publisher.
type Envelope struct {
	ID       uuid.UUID
	Sender   domain.ParticipantID
	Kind     domain.EventKind
	Payload  any
	Reliable bool
	At       time.Time
}

func NewEnvelope(sender domain.ParticipantID, kind domain.EventKind, payload any, reliable bool) Envelope {
	return Envelope{
		ID:       uuid.New(),
		Sender:   sender,
		Kind:     kind,
		Payload:  payload,
		Reliable: reliable,
		At:       time.Now().UTC(),
	}
}
