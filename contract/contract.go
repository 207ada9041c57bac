//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"note-relay/domain"
	"reflect"

	"github.com/google/uuid"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// IdentityResolver answers who the local participant is.
// The id must be assigned before any router is built on top of it.
type IdentityResolver interface {
	LocalID() domain.ParticipantID
}

// Handler is called by a broadcast channel for every event it receives,
// whatever the sender or the kind. Filtering is the subscriber's job.
type Handler func(sender domain.ParticipantID, kind domain.EventKind, payload any) error

type SubscriptionHandle uuid.UUID

func (h SubscriptionHandle) String() string { return uuid.UUID(h).String() }

// BroadcastChannel is the shared event stream of a session.
// Publish stamps the local participant as sender.
type BroadcastChannel interface {
	Subscribe(handler Handler) SubscriptionHandle
	Unsubscribe(handle SubscriptionHandle)
	Publish(kind domain.EventKind, payload any, reliable bool) error
}

// NetworkSupport is implemented by instrument controllers, T identifies a note.
// Before SetupNetwork is called the controller stays unresponsive.
type NetworkSupport[T any] interface {
	NoteEvent(trigger domain.EdgeTrigger, note T)
	SetupNetwork(owner domain.ParticipantID)
}
