// Package runtime provides an in-process session: a bus that participants
// join, each one getting an endpoint that is both its identity and its view
// of the shared broadcast channel.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"note-relay/contract"
	"note-relay/domain"
	"note-relay/domain/event"
	"note-relay/errors"
	"note-relay/runtime/workers"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type Bus struct {
	mu         sync.RWMutex
	log        *slog.Logger
	supervisor contract.ISupervisor
	endpoints  map[domain.ParticipantID]*Endpoint
	inboxSize  int
}

func NewBus(log *slog.Logger, supervisor contract.ISupervisor, inboxSize int) *Bus {
	return &Bus{
		log:        log,
		supervisor: supervisor,
		endpoints:  make(map[domain.ParticipantID]*Endpoint),
		inboxSize:  inboxSize,
	}
}

// Join assigns a new participant id and starts delivering events to it.
// The id is known when Join returns, before any router is built on the endpoint.
func (b *Bus) Join(ctx context.Context, name string) *Endpoint {
	id := domain.ParticipantID(uuid.NewString())
	endpoint := newEndpoint(b, id, name, b.inboxSize, b.log)

	b.mu.Lock()
	b.endpoints[id] = endpoint
	b.mu.Unlock()

	b.supervisor.Start(ctx, workers.NewDeliveryWorker(endpoint.log, endpoint.inbox, endpoint.done, endpoint))
	b.log.Info("Participant joined", "participant", id, "name", name)
	return endpoint
}

func (b *Bus) Members() []domain.ParticipantID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	members := lo.Keys(b.endpoints)
	sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
	return members
}

// Levels samples the inbox of every participant.
func (b *Bus) Levels() []workers.InboxLevel {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return lo.Map(lo.Values(b.endpoints), func(e *Endpoint, _ int) workers.InboxLevel {
		return workers.InboxLevel{Name: e.name, Length: len(e.inbox), Capacity: cap(e.inbox)}
	})
}

// Monitor reports inbox levels every interval until ctx is done.
func (b *Bus) Monitor(ctx context.Context, interval time.Duration) {
	b.supervisor.Start(ctx, workers.NewInboxGaugeWorker(b.log, b.Levels, interval))
}

func (b *Bus) leave(id domain.ParticipantID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.endpoints, id)
	b.log.Info("Participant left", "participant", id)
}

// broadcast enqueues the envelope for every participant but its sender.
func (b *Bus) broadcast(env event.Envelope) error {
	b.mu.RLock()
	_, member := b.endpoints[env.Sender]
	targets := lo.Filter(lo.Values(b.endpoints), func(e *Endpoint, _ int) bool {
		return e.id != env.Sender
	})
	b.mu.RUnlock()

	if !member {
		return fmt.Errorf("publish from %s: %w", env.Sender, errors.ErrParticipantUnknown)
	}
	for _, target := range targets {
		target.enqueue(env)
	}
	return nil
}
