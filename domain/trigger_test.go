package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEdgeTrigger_Kind(t *testing.T) {
	req := require.New(t)

	req.Equal(KindPressed, Pressed.Kind())
	req.Equal(KindReleased, Released.Kind())
	req.Equal(EventKind(1), Pressed.Kind())
	req.Equal(EventKind(0), Released.Kind())
}

func TestTriggerFromKind(t *testing.T) {
	req := require.New(t)

	trigger, ok := TriggerFromKind(KindPressed)
	req.True(ok)
	req.Equal(Pressed, trigger)

	trigger, ok = TriggerFromKind(KindReleased)
	req.True(ok)
	req.Equal(Released, trigger)

	// Kinds of other event families are not notes
	_, ok = TriggerFromKind(EventKind(42))
	req.False(ok)
}
