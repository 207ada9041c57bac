package domain

import "time"

type InstrumentID string

// Instrument binds a named instrument to the participant allowed to play it.
type Instrument struct {
	ID        InstrumentID  `validate:"required"`
	Name      string        `validate:"required,max=64"`
	Owner     ParticipantID `validate:"required"`
	Local     bool
	CreatedAt time.Time
}
