package runtime

import (
	"log/slog"
	"note-relay/contract"
	"note-relay/domain"
	"note-relay/domain/event"
	"note-relay/errors"
	"sync"
)

// Endpoint is one participant's connection to a Bus. It implements both
// contract.IdentityResolver and contract.BroadcastChannel.
type Endpoint struct {
	id        domain.ParticipantID
	name      string
	bus       *Bus
	log       *slog.Logger
	registry  *SubscriptionRegistry
	inbox     chan event.Envelope
	done      chan struct{}
	err       error
	leaveOnce sync.Once
}

func newEndpoint(bus *Bus, id domain.ParticipantID, name string, inboxSize int, log *slog.Logger) *Endpoint {
	return &Endpoint{
		id:       id,
		name:     name,
		bus:      bus,
		log:      log.With("participant", id),
		registry: NewSubscriptionRegistry(),
		inbox:    make(chan event.Envelope, inboxSize),
		done:     make(chan struct{}),
	}
}

func (e *Endpoint) LocalID() domain.ParticipantID { return e.id }

func (e *Endpoint) Name() string { return e.name }

func (e *Endpoint) Subscribe(handler contract.Handler) contract.SubscriptionHandle {
	return e.registry.Subscribe(handler)
}

func (e *Endpoint) Unsubscribe(handle contract.SubscriptionHandle) {
	e.registry.Unsubscribe(handle)
}

func (e *Endpoint) Subscriptions() int { return e.registry.Len() }

// Publish sends the event to every other participant, stamped with our id.
func (e *Endpoint) Publish(kind domain.EventKind, payload any, reliable bool) error {
	select {
	case <-e.done:
		return errors.ErrSessionClosed
	default:
	}
	return e.bus.broadcast(event.NewEnvelope(e.id, kind, payload, reliable))
}

// Dispatch delivers an envelope to the local subscribers.
func (e *Endpoint) Dispatch(env event.Envelope) error {
	return e.registry.Dispatch(env.Sender, env.Kind, env.Payload)
}

// enqueue waits for room in the inbox for reliable events and drops the
// others when the inbox is full.
func (e *Endpoint) enqueue(env event.Envelope) {
	if env.Reliable {
		select {
		case e.inbox <- env:
		case <-e.done:
		}
		return
	}
	select {
	case e.inbox <- env:
	default:
		e.log.Warn("Inbox full, dropping unreliable event", "sender", env.Sender, "kind", env.Kind)
	}
}

// Fail ends the session after a delivery failure. Err reports err from now on.
func (e *Endpoint) Fail(err error) {
	e.shutdown(err)
}

// Leave detaches the participant from the bus and stops its deliveries.
func (e *Endpoint) Leave() {
	e.shutdown(nil)
}

func (e *Endpoint) Done() <-chan struct{} { return e.done }

// Err reports why the session ended. It is nil while the session is alive
// and after a regular Leave.
func (e *Endpoint) Err() error {
	select {
	case <-e.done:
		return e.err
	default:
		return nil
	}
}

func (e *Endpoint) shutdown(err error) {
	e.leaveOnce.Do(func() {
		e.err = err
		close(e.done)
		e.bus.leave(e.id)
	})
}
