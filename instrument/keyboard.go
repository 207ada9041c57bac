// Package instrument holds instrument controllers that can be driven by a
// relay router.
package instrument

import (
	"fmt"
	"io"
	"note-relay/domain"
	"sort"
	"sync"

	"github.com/gookit/color"
	"github.com/samber/lo"
)

// Keyboard is a controller whose notes are names such as "C4".
// It ignores every note until SetupNetwork has been called, then renders
// each press and release on its writer. Safe for concurrent use: local
// plays and network deliveries may interleave.
type Keyboard struct {
	mu      sync.Mutex
	name    string
	out     io.Writer
	colours bool
	owner   domain.ParticipantID
	ready   bool
	held    map[string]struct{}
}

func NewKeyboard(name string, out io.Writer, colours bool) *Keyboard {
	return &Keyboard{name: name, out: out, colours: colours, held: make(map[string]struct{})}
}

func (k *Keyboard) SetupNetwork(owner domain.ParticipantID) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.owner = owner
	k.ready = true
}

func (k *Keyboard) NoteEvent(trigger domain.EdgeTrigger, note string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.ready {
		return
	}
	if trigger == domain.Pressed {
		k.held[note] = struct{}{}
	} else {
		delete(k.held, note)
	}
	_, _ = fmt.Fprintln(k.out, k.render(trigger, note))
}

func (k *Keyboard) render(trigger domain.EdgeTrigger, note string) string {
	arrow, style := "▲", color.New(color.FgGray)
	if trigger == domain.Pressed {
		arrow, style = "▼", color.New(color.FgGreen, color.OpBold)
	}
	line := fmt.Sprintf("%s %s %s", arrow, k.name, note)
	if !k.colours {
		return line
	}
	return style.Render(line)
}

// Held returns the notes currently pressed, sorted.
func (k *Keyboard) Held() []string {
	k.mu.Lock()
	defer k.mu.Unlock()
	held := lo.Keys(k.held)
	sort.Strings(held)
	return held
}

func (k *Keyboard) Owner() domain.ParticipantID {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.owner
}

func (k *Keyboard) Ready() bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.ready
}
