package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"note-relay/domain"
	"note-relay/infrastructure/grpc/client"
	"note-relay/instrument"
	"note-relay/relay"
	"note-relay/repositories"
	"note-relay/stage"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Roster storage
	db, err := openDB(cfg.BadgerFilepath)
	if err != nil {
		return fmt.Errorf("failed to open roster: %w", err)
	}
	defer db.Close()
	roster := repositories.NewInstrumentRepository(db, log)
	if err := clearRoster(roster); err != nil {
		return err
	}

	// 3. Session
	dialCtx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	session, err := client.Dial(dialCtx, log, cfg.RelayAddr, cfg.PlayerName,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()))
	cancel()
	if err != nil {
		return fmt.Errorf("failed to join relay %s: %w", cfg.RelayAddr, err)
	}
	defer session.Close()
	log = log.With("participant", session.LocalID())

	// 4. Instruments
	st := stage.New(log, session, session, roster)
	defer func() {
		if err := st.Close(); err != nil {
			log.Warn("Failed to tear down stage", "error", err)
		}
	}()

	keys, err := stage.AttachLocal[string](st, cfg.InstrumentName, instrument.NewKeyboard(cfg.PlayerName, os.Stdout, cfg.Colours))
	if err != nil {
		return err
	}
	session.OnMembership(func(change domain.MembershipChange) {
		mirror(log, st, change, cfg.Colours)
	})

	fmt.Println(usage)
	return play(ctx, log, os.Stdin, os.Stdout, keys, session, st)
}

// mirror attaches a sink keyboard for every participant joining and
// detaches their instruments when they leave.
func mirror(log *slog.Logger, st *stage.Stage, change domain.MembershipChange, colours bool) {
	if !change.Joined {
		if err := st.DetachOwner(change.Participant); err != nil {
			log.Warn("Failed to detach instruments", "owner", change.Participant, "error", err)
		}
		return
	}
	name := change.Name
	if name == "" {
		name = change.Participant.String()
	}
	if _, err := stage.Attach[string](st, name, change.Participant, instrument.NewKeyboard(name, os.Stdout, colours)); err != nil {
		log.Warn("Failed to mirror instrument", "owner", change.Participant, "error", err)
	}
}

// play reads commands until the player quits, the session ends or ctx is cancelled.
func play(ctx context.Context, log *slog.Logger, in io.Reader, out io.Writer,
	keys *relay.Router[string], session *client.Client, st *stage.Stage) error {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-session.Done():
			return session.Err()
		case line, open := <-lines:
			if !open {
				return nil
			}
			cmd, ok, err := parseCommand(line)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if !ok {
				continue
			}
			switch cmd.action {
			case actionPress:
				err = keys.Play(domain.Pressed, cmd.note)
			case actionRelease:
				err = keys.Play(domain.Released, cmd.note)
			case actionStrike:
				if err = keys.Play(domain.Pressed, cmd.note); err == nil {
					err = keys.Play(domain.Released, cmd.note)
				}
			case actionWho:
				renderParticipants(out, session.LocalID(), session.Name(), session.Members(), session.MemberName)
			case actionRoster:
				renderRoster(out, st.Instruments())
			case actionHelp:
				fmt.Fprintln(out, usage)
			case actionQuit:
				return nil
			}
			if err != nil {
				log.Error("Failed to play note", "note", cmd.note, "error", err)
				return err
			}
		}
	}
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	return badger.Open(opts)
}

// clearRoster drops bindings left by a previous run, their routers are gone.
func clearRoster(roster repositories.IInstrumentRepository) error {
	stale, err := roster.List()
	if err != nil {
		return fmt.Errorf("failed to read roster: %w", err)
	}
	for _, i := range stale {
		if err := roster.Delete(i.ID); err != nil {
			return fmt.Errorf("failed to clear roster: %w", err)
		}
	}
	return nil
}
