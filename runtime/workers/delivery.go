package workers

import (
	"context"
	"fmt"
	"log/slog"
	"note-relay/domain/event"
)

// Dispatcher hands an envelope to the subscribers of one participant.
// Fail ends the participant's session after a dispatch error.
type Dispatcher interface {
	Dispatch(env event.Envelope) error
	Fail(err error)
}

// DeliveryWorker drains the inbox of one participant, one envelope at a
// time, so events are delivered in the order they were enqueued.
// A dispatch error is a protocol failure: the session is failed and the
// worker finishes for good, it is never restarted.
type DeliveryWorker struct {
	log        *slog.Logger
	inbox      <-chan event.Envelope
	done       <-chan struct{}
	dispatcher Dispatcher
}

func NewDeliveryWorker(log *slog.Logger, inbox <-chan event.Envelope, done <-chan struct{}, dispatcher Dispatcher) DeliveryWorker {
	return DeliveryWorker{log: log, inbox: inbox, done: done, dispatcher: dispatcher}
}

func (w DeliveryWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping delivery")
			return nil
		case <-w.done:
			w.log.Debug("Participant left, stopping delivery")
			return nil
		case env := <-w.inbox:
			if err := w.dispatcher.Dispatch(env); err != nil {
				err = fmt.Errorf("delivery of %s from %s: %w", env.ID, env.Sender, err)
				w.log.Error("Protocol mismatch, closing session", "error", err)
				w.dispatcher.Fail(err)
				return nil
			}
		}
	}
}
