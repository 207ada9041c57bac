package workers

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestInboxLevel_Saturated(t *testing.T) {
	req := require.New(t)
	req.False(InboxLevel{Length: 0, Capacity: 0}.Saturated())
	req.False(InboxLevel{Length: 5, Capacity: 8}.Saturated())
	req.True(InboxLevel{Length: 6, Capacity: 8}.Saturated())
	req.True(InboxLevel{Length: 8, Capacity: 8}.Saturated())
}

func TestInboxGaugeWorker_SamplesUntilCancelled(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctx, cancel := context.WithCancel(context.Background())

	// Given a session with one busy inbox
	sample := func() []InboxLevel {
		return []InboxLevel{{Name: "alice", Length: 7, Capacity: 8}}
	}
	var mu sync.Mutex
	var reported []InboxLevel
	worker := NewInboxGaugeWorker(log, sample, 5*time.Millisecond)
	worker.report = func(level InboxLevel) {
		mu.Lock()
		defer mu.Unlock()
		reported = append(reported, level)
	}

	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	// Then the level is reported on every tick
	req.Eventually(func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(reported) >= 2
	}, time.Second, 5*time.Millisecond)

	// And the worker stops cleanly with the context
	cancel()
	req.NoError(<-done)
	mu.Lock()
	defer mu.Unlock()
	req.True(reported[0].Saturated())
}
