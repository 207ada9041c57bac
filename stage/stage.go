// Package stage keeps track of the instruments attached by a participant and
// tears them down together.
package stage

import (
	goerrors "errors"
	"fmt"
	"io"
	"log/slog"
	"note-relay/contract"
	"note-relay/domain"
	"note-relay/errors"
	"note-relay/relay"
	"note-relay/repositories"
	"sort"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

var validate = validator.New()

type attachment struct {
	instrument domain.Instrument
	router     io.Closer
}

type Stage struct {
	mu          sync.Mutex
	log         *slog.Logger
	resolver    contract.IdentityResolver
	channel     contract.BroadcastChannel
	roster      repositories.IInstrumentRepository
	attachments map[domain.InstrumentID]attachment
}

func New(log *slog.Logger, resolver contract.IdentityResolver, channel contract.BroadcastChannel,
	roster repositories.IInstrumentRepository) *Stage {
	return &Stage{
		log:         log,
		resolver:    resolver,
		channel:     channel,
		roster:      roster,
		attachments: make(map[domain.InstrumentID]attachment),
	}
}

// AttachLocal attaches an instrument played by the local participant.
func AttachLocal[T any](s *Stage, name string, consumer contract.NetworkSupport[T], opts ...relay.Option[T]) (*relay.Router[T], error) {
	return Attach(s, name, s.resolver.LocalID(), consumer, opts...)
}

// Attach builds the router of an instrument owned by owner and records the
// binding in the roster.
func Attach[T any](s *Stage, name string, owner domain.ParticipantID, consumer contract.NetworkSupport[T],
	opts ...relay.Option[T]) (*relay.Router[T], error) {
	instrument := domain.Instrument{
		ID:        domain.InstrumentID(uuid.NewString()),
		Name:      name,
		Owner:     owner,
		Local:     owner == s.resolver.LocalID(),
		CreatedAt: time.Now().UTC(),
	}
	if err := validate.Struct(instrument); err != nil {
		return nil, fmt.Errorf("invalid instrument %q: %w", name, err)
	}

	// Recorded first: a failed save leaves the consumer untouched
	if err := s.roster.Save(instrument); err != nil {
		return nil, fmt.Errorf("failed to record instrument %q: %w", name, err)
	}
	opts = append([]relay.Option[T]{relay.WithLogger[T](s.log.With("instrument", name))}, opts...)
	router := relay.NewRouter(s.resolver, s.channel, consumer, owner, opts...)

	s.mu.Lock()
	s.attachments[instrument.ID] = attachment{instrument: instrument, router: router}
	s.mu.Unlock()
	s.log.Info("Instrument attached", "instrument", name, "owner", owner, "local", instrument.Local)
	return router, nil
}

// Instruments lists the attached instruments, oldest first.
func (s *Stage) Instruments() []domain.Instrument {
	s.mu.Lock()
	defer s.mu.Unlock()
	instruments := lo.Map(lo.Values(s.attachments), func(a attachment, _ int) domain.Instrument {
		return a.instrument
	})
	sort.Slice(instruments, func(i, j int) bool {
		return instruments[i].CreatedAt.Before(instruments[j].CreatedAt)
	})
	return instruments
}

// Detach tears down one instrument: the router is closed before the
// binding is forgotten.
func (s *Stage) Detach(id domain.InstrumentID) error {
	s.mu.Lock()
	a, ok := s.attachments[id]
	delete(s.attachments, id)
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("%w: %s", errors.ErrInstrumentNotFound, id)
	}
	return s.teardown(a)
}

// DetachOwner tears down every instrument of a participant, typically
// when it leaves the session.
func (s *Stage) DetachOwner(owner domain.ParticipantID) error {
	s.mu.Lock()
	owned := lo.Filter(lo.Values(s.attachments), func(a attachment, _ int) bool {
		return a.instrument.Owner == owner
	})
	for _, a := range owned {
		delete(s.attachments, a.instrument.ID)
	}
	s.mu.Unlock()

	var errs []error
	for _, a := range owned {
		errs = append(errs, s.teardown(a))
	}
	return goerrors.Join(errs...)
}

// Close detaches everything. Routers are all closed first, so no delivery
// reaches a consumer while the roster is being cleaned.
func (s *Stage) Close() error {
	s.mu.Lock()
	all := lo.Values(s.attachments)
	s.attachments = make(map[domain.InstrumentID]attachment)
	s.mu.Unlock()

	var errs []error
	for _, a := range all {
		errs = append(errs, a.router.Close())
	}
	for _, a := range all {
		errs = append(errs, s.roster.Delete(a.instrument.ID))
	}
	return goerrors.Join(errs...)
}

func (s *Stage) teardown(a attachment) error {
	if err := a.router.Close(); err != nil {
		return err
	}
	s.log.Info("Instrument detached", "instrument", a.instrument.Name, "owner", a.instrument.Owner)
	return s.roster.Delete(a.instrument.ID)
}
