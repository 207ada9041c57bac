package instrument

import (
	"bytes"
	"note-relay/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeyboard_Is_Unresponsive_Until_Setup(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	keyboard := NewKeyboard("piano", &out, false)

	// Given the keyboard is not attached yet
	keyboard.NoteEvent(domain.Pressed, "C4")

	// Then nothing happens
	req.False(keyboard.Ready())
	req.Empty(keyboard.Held())
	req.Empty(out.String())

	// When it is attached
	keyboard.SetupNetwork("A")
	keyboard.NoteEvent(domain.Pressed, "C4")

	// Then it plays
	req.True(keyboard.Ready())
	req.Equal(domain.ParticipantID("A"), keyboard.Owner())
	req.Equal([]string{"C4"}, keyboard.Held())
	req.Equal("▼ piano C4\n", out.String())
}

func TestKeyboard_Tracks_Held_Notes(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	keyboard := NewKeyboard("piano", &out, false)
	keyboard.SetupNetwork("A")

	keyboard.NoteEvent(domain.Pressed, "E4")
	keyboard.NoteEvent(domain.Pressed, "C4")
	keyboard.NoteEvent(domain.Pressed, "G4")
	keyboard.NoteEvent(domain.Released, "E4")
	// Releasing a note that is not held is harmless
	keyboard.NoteEvent(domain.Released, "B4")

	req.Equal([]string{"C4", "G4"}, keyboard.Held())
	req.Contains(out.String(), "▲ piano E4\n")
}

func TestKeyboard_Colours(t *testing.T) {
	req := require.New(t)
	var out bytes.Buffer
	keyboard := NewKeyboard("piano", &out, true)
	keyboard.SetupNetwork("A")

	keyboard.NoteEvent(domain.Pressed, "C4")

	req.Contains(out.String(), "piano C4")
}
