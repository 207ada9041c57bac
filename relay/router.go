// Package relay routes note events between an instrument controller and a
// session. A router is bound to one owner: when the owner is the local
// participant it plays and publishes, otherwise it mirrors the owner's events.
package relay

import (
	"fmt"
	"log/slog"
	"note-relay/contract"
	"note-relay/domain"
	"sync"
	"sync/atomic"
)

type Mode int

const (
	ModeSource Mode = iota + 1
	ModeSink
)

func (m Mode) String() string {
	switch m {
	case ModeSource:
		return "source"
	case ModeSink:
		return "sink"
	default:
		return "unknown"
	}
}

type Router[T any] struct {
	log          *slog.Logger
	channel      contract.BroadcastChannel
	consumer     contract.NetworkSupport[T]
	decode       Decoder[T]
	owner        domain.ParticipantID
	mode         Mode
	subscription contract.SubscriptionHandle
	closed       atomic.Bool
	closeOnce    sync.Once
}

type Option[T any] func(r *Router[T])

func WithLogger[T any](log *slog.Logger) Option[T] {
	return func(r *Router[T]) { r.log = log }
}

// WithDecoder replaces the type assertion used on incoming payloads.
func WithDecoder[T any](decode Decoder[T]) Option[T] {
	return func(r *Router[T]) { r.decode = decode }
}

// NewLocalRouter binds the consumer to the local participant, so the router
// is always a source.
func NewLocalRouter[T any](resolver contract.IdentityResolver, channel contract.BroadcastChannel,
	consumer contract.NetworkSupport[T], opts ...Option[T]) *Router[T] {
	return NewRouter(resolver, channel, consumer, resolver.LocalID(), opts...)
}

// NewRouter decides once whether this instance is a source (owner is the
// local participant) or a sink. A sink subscribes to the channel for its
// whole lifetime and must be closed to release the subscription.
// The consumer is activated through SetupNetwork once the mode is fixed.
func NewRouter[T any](resolver contract.IdentityResolver, channel contract.BroadcastChannel,
	consumer contract.NetworkSupport[T], owner domain.ParticipantID, opts ...Option[T]) *Router[T] {
	r := &Router[T]{
		log:      slog.Default(),
		channel:  channel,
		consumer: consumer,
		decode:   AssertDecoder[T],
		owner:    owner,
		mode:     ModeSink,
	}
	for _, opt := range opts {
		opt(r)
	}

	if owner == resolver.LocalID() {
		r.mode = ModeSource
	} else {
		r.subscription = channel.Subscribe(r.onEvent)
	}
	r.log = r.log.With("owner", owner, "mode", r.mode)
	r.log.Debug("Router ready")

	consumer.SetupNetwork(owner)
	return r
}

func (r *Router[T]) Owner() domain.ParticipantID { return r.owner }

func (r *Router[T]) Mode() Mode { return r.mode }

func (r *Router[T]) IsLocal() bool { return r.mode == ModeSource }

// Play echoes the note to the consumer first, then publishes it reliably.
// Only the owner may originate events: on a sink, or once closed, the call
// is dropped.
func (r *Router[T]) Play(trigger domain.EdgeTrigger, note T) error {
	if r.mode != ModeSource {
		r.log.Debug("Play ignored on a remote instrument", "trigger", trigger)
		return nil
	}
	if r.closed.Load() {
		r.log.Debug("Play ignored on a closed router", "trigger", trigger)
		return nil
	}
	r.consumer.NoteEvent(trigger, note)
	if err := r.channel.Publish(trigger.Kind(), note, true); err != nil {
		return fmt.Errorf("publish %s note: %w", trigger, err)
	}
	return nil
}

// Receive forwards the note to the consumer when it comes from the owner.
// Everything else is dropped without a trace, the channel is shared.
func (r *Router[T]) Receive(sender domain.ParticipantID, trigger domain.EdgeTrigger, note T) {
	if r.closed.Load() || sender != r.owner {
		return
	}
	r.consumer.NoteEvent(trigger, note)
}

// onEvent is the channel handler. A payload from the owner that cannot be
// decoded is a protocol error and is returned to the channel.
func (r *Router[T]) onEvent(sender domain.ParticipantID, kind domain.EventKind, payload any) error {
	if r.closed.Load() || sender != r.owner {
		return nil
	}
	trigger, ok := domain.TriggerFromKind(kind)
	if !ok {
		r.log.Debug("Event of another kind ignored", "kind", kind)
		return nil
	}
	note, err := r.decode(payload)
	if err != nil {
		return fmt.Errorf("note from %s: %w", sender, err)
	}
	r.Receive(sender, trigger, note)
	return nil
}

// Close removes the subscription of a sink. It is safe to call several times.
func (r *Router[T]) Close() error {
	r.closeOnce.Do(func() {
		r.closed.Store(true)
		if r.mode == ModeSink {
			r.channel.Unsubscribe(r.subscription)
			r.log.Debug("Router unsubscribed", "subscription", r.subscription)
		}
	})
	return nil
}
