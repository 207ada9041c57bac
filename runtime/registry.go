package runtime

import (
	goerrors "errors"
	"note-relay/contract"
	"note-relay/domain"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type subscription struct {
	handle  contract.SubscriptionHandle
	handler contract.Handler
}

// SubscriptionRegistry is the subscription list of a broadcast channel.
// Handlers are called in subscription order.
type SubscriptionRegistry struct {
	mu            sync.RWMutex
	subscriptions []subscription
}

func NewSubscriptionRegistry() *SubscriptionRegistry {
	return &SubscriptionRegistry{}
}

// Subscribe registers a handler and returns the handle needed to remove it.
// Each call creates a new subscription, even for the same handler.
func (r *SubscriptionRegistry) Subscribe(handler contract.Handler) contract.SubscriptionHandle {
	r.mu.Lock()
	defer r.mu.Unlock()

	handle := contract.SubscriptionHandle(uuid.New())
	r.subscriptions = append(r.subscriptions, subscription{handle: handle, handler: handler})
	return handle
}

// Unsubscribe removes a subscription. It waits for in-flight dispatches, so
// once it returns the handler will never be called again.
// Unknown handles are ignored.
func (r *SubscriptionRegistry) Unsubscribe(handle contract.SubscriptionHandle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.subscriptions = lo.Reject(r.subscriptions, func(s subscription, _ int) bool {
		return s.handle == handle
	})
}

func (r *SubscriptionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subscriptions)
}

// Dispatch calls every handler with the event, even when one of them fails.
// Handlers must not subscribe or unsubscribe from within a dispatch.
func (r *SubscriptionRegistry) Dispatch(sender domain.ParticipantID, kind domain.EventKind, payload any) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var errs []error
	for _, s := range r.subscriptions {
		if err := s.handler(sender, kind, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return goerrors.Join(errs...)
}
