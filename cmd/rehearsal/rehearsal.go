package main

import (
	"context"
	goerrors "errors"
	"fmt"
	"io"
	"log/slog"
	"note-relay/domain"
	"note-relay/instrument"
	"note-relay/relay"
	"note-relay/repositories"
	"note-relay/runtime"
	"note-relay/runtime/workers"
	"note-relay/stage"
	"sync"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// syncWriter serializes the keyboards of every player on one output.
type syncWriter struct {
	mu  sync.Mutex
	out io.Writer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.out.Write(p)
}

// listener is a mirror keyboard counting the notes it has heard.
type listener struct {
	*instrument.Keyboard
	heard *sync.WaitGroup
}

func (l listener) NoteEvent(trigger domain.EdgeTrigger, note string) {
	l.Keyboard.NoteEvent(trigger, note)
	l.heard.Done()
}

type player struct {
	endpoint *runtime.Endpoint
	stage    *stage.Stage
	keys     *relay.Router[string]
}

// rehearse joins every player to an in-process bus, makes each one mirror
// the others, then has the first player perform the phrase. It returns
// once every mirror heard the whole phrase.
func rehearse(ctx context.Context, log *slog.Logger, cfg Config, out io.Writer) (err error) {
	ctx, cancel := context.WithCancel(ctx)
	supervisor := workers.NewSupervisor(log, cfg.RestartInterval)
	defer func() {
		cancel()
		supervisor.Wait()
	}()

	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return fmt.Errorf("failed to open roster: %w", err)
	}
	defer db.Close()
	roster := repositories.NewInstrumentRepository(db, log)

	bus := runtime.NewBus(log, supervisor, cfg.InboxSize)
	bus.Monitor(ctx, cfg.MonitorInterval)
	writer := &syncWriter{out: out}

	// 1. Everybody joins and takes a keyboard
	players := make([]player, 0, len(cfg.Players))
	defer func() {
		for _, p := range players {
			err = goerrors.Join(err, p.stage.Close())
			p.endpoint.Leave()
		}
	}()
	for _, name := range cfg.Players {
		endpoint := bus.Join(ctx, name)
		st := stage.New(log.With("player", name), endpoint, endpoint, roster)
		keys, err := stage.AttachLocal[string](st, name, instrument.NewKeyboard(name, writer, cfg.Colours))
		if err != nil {
			return err
		}
		players = append(players, player{endpoint: endpoint, stage: st, keys: keys})
	}

	// 2. Everybody mirrors everybody else
	heard := &sync.WaitGroup{}
	for _, p := range players {
		for _, other := range players {
			if other.endpoint.LocalID() == p.endpoint.LocalID() {
				continue
			}
			mirror := listener{Keyboard: instrument.NewKeyboard(other.endpoint.Name(), writer, cfg.Colours), heard: heard}
			if _, err := stage.Attach[string](p.stage, other.endpoint.Name(), other.endpoint.LocalID(), mirror); err != nil {
				return err
			}
		}
	}

	// 3. The first player performs, each note is pressed then released
	leader := players[0]
	heard.Add(2 * len(cfg.Phrase) * (len(players) - 1))
	for _, note := range cfg.Phrase {
		if err := leader.keys.Play(domain.Pressed, note); err != nil {
			return err
		}
		if err := pause(ctx, cfg.Tempo); err != nil {
			return err
		}
		if err := leader.keys.Play(domain.Released, note); err != nil {
			return err
		}
	}

	// 4. Wait until every mirror heard the phrase
	drained := make(chan struct{})
	go func() {
		heard.Wait()
		close(drained)
	}()
	select {
	case <-drained:
		log.Info("Rehearsal over", "players", len(players), "notes", len(cfg.Phrase))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(cfg.DrainTimeout):
		return fmt.Errorf("mirrors did not hear the phrase within %s", cfg.DrainTimeout)
	}
}

func pause(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
