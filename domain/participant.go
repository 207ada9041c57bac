// Package domain contains core concepts of the relay.
// This file defines Participant identities and membership changes.
// No runtime, network, or UI logic should be added here.
package domain

import "time"

// ParticipantID identifies a session participant. It is assigned by the
// transport and never changes afterwards.
type ParticipantID string

func (p ParticipantID) String() string { return string(p) }

// MembershipChange is emitted by a session when a participant joins or leaves.
type MembershipChange struct {
	Participant ParticipantID
	Name        string
	Joined      bool
	At          time.Time
}
