package main

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	return Config{
		Players:         []string{"alice", "bob", "carol"},
		Phrase:          []string{"C4", "E4"},
		Tempo:           time.Millisecond,
		InboxSize:       8,
		RestartInterval: 10 * time.Millisecond,
		MonitorInterval: 5 * time.Millisecond,
		DrainTimeout:    2 * time.Second,
		LogLevel:        "DEBUG",
	}
}

func TestRehearse_Every_Mirror_Hears_The_Leader(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	var out bytes.Buffer

	// When alice performs for bob and carol
	err := rehearse(context.Background(), log, testConfig(), &out)

	// Then alice's echo and both mirrors printed every press and release
	req.NoError(err)
	for _, line := range []string{"▼ alice C4", "▲ alice C4", "▼ alice E4", "▲ alice E4"} {
		req.Equal(3, strings.Count(out.String(), line), line)
	}
	// And nobody else played
	req.NotContains(out.String(), "bob C4")
}

func TestRehearse_Stops_With_Context(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	cfg := testConfig()
	cfg.Tempo = time.Hour
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := rehearse(ctx, log, cfg, &bytes.Buffer{})

	req.ErrorIs(err, context.DeadlineExceeded)
}

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)

	cfg, err := LoadConfig()

	req.NoError(err)
	req.Equal([]string{"alice", "bob"}, cfg.Players)
	req.Equal([]string{"C4", "E4", "G4"}, cfg.Phrase)
	req.Equal(64, cfg.InboxSize)
}

func TestLoadConfig_Needs_Two_Players(t *testing.T) {
	t.Setenv("REHEARSAL_PLAYERS", "alice")

	_, err := LoadConfig()

	require.Error(t, err)
}
