package domain

// EdgeTrigger distinguishes the two observable moments of an interaction.
type EdgeTrigger bool

const (
	Released EdgeTrigger = false
	Pressed  EdgeTrigger = true
)

// EventKind is the single-byte discriminator carried on the wire.
// The channel dispatches on it, so payloads carry no separate tag.
type EventKind byte

const (
	KindReleased EventKind = 0
	KindPressed  EventKind = 1
)

func (t EdgeTrigger) Kind() EventKind {
	if t {
		return KindPressed
	}
	return KindReleased
}

func (t EdgeTrigger) String() string {
	if t {
		return "pressed"
	}
	return "released"
}

// TriggerFromKind maps a wire discriminator back to an edge.
// Kinds outside the note family report false.
func TriggerFromKind(kind EventKind) (EdgeTrigger, bool) {
	switch kind {
	case KindPressed:
		return Pressed, true
	case KindReleased:
		return Released, true
	default:
		return Released, false
	}
}
