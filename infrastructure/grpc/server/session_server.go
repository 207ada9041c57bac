package server

import (
	"fmt"
	"io"
	"log/slog"
	"note-relay/domain"
	"note-relay/errors"
	"note-relay/infrastructure/grpc/wire"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

type member struct {
	id     domain.ParticipantID
	name   string
	outbox chan *structpb.Struct
	done   chan struct{}
}

// SessionServer is the broadcast channel of a networked session. It assigns
// participant ids, announces membership changes and forwards every event
// to all members but its sender, stamped with the sender id.
type SessionServer struct {
	mu         sync.RWMutex
	log        *slog.Logger
	members    map[domain.ParticipantID]*member
	joinOrder  []domain.ParticipantID
	outboxSize int
}

func NewSessionServer(log *slog.Logger, outboxSize int) *SessionServer {
	return &SessionServer{
		log:        log,
		members:    make(map[domain.ParticipantID]*member),
		outboxSize: outboxSize,
	}
}

func (s *SessionServer) Members() []domain.ParticipantID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.ParticipantID(nil), s.joinOrder...)
}

// Connect handles one participant for the lifetime of its stream.
// The first client frame must be a hello. The participant receives its
// welcome, then one joined frame per member already present, then live
// traffic.
func (s *SessionServer) Connect(stream grpc.BidiStreamingServer[structpb.Struct, structpb.Struct]) error {
	hello, err := s.recvHello(stream)
	if err != nil {
		return errors.MapToGRPCError(err)
	}

	m := &member{
		id:     domain.ParticipantID(uuid.NewString()),
		name:   hello.Name,
		outbox: make(chan *structpb.Struct, s.outboxSize),
		done:   make(chan struct{}),
	}
	present := s.register(m)
	defer s.unregister(m)

	if err := s.greet(stream, m, present); err != nil {
		return err
	}
	s.broadcast(m.id, wire.Frame{Type: wire.FrameJoined, Participant: m.id, Name: m.name}, true)
	s.log.Info("Participant joined", "participant", m.id, "name", m.name)

	incoming := make(chan error, 1)
	go func() { incoming <- s.receive(stream, m) }()

	for {
		select {
		case <-stream.Context().Done():
			s.log.Info("Participant disconnected", "participant", m.id)
			return nil
		case err := <-incoming:
			if err != nil {
				s.log.Warn("Participant stream failed", "participant", m.id, "error", err)
				return errors.MapToGRPCError(err)
			}
			s.log.Info("Participant left", "participant", m.id)
			return nil
		case frame := <-m.outbox:
			if err := stream.Send(frame); err != nil {
				s.log.Error("failed to push frame to stream", "participant", m.id, "error", err)
				return err
			}
		}
	}
}

func (s *SessionServer) recvHello(stream grpc.BidiStreamingServer[structpb.Struct, structpb.Struct]) (wire.Frame, error) {
	msg, err := stream.Recv()
	if err != nil {
		return wire.Frame{}, err
	}
	frame, err := wire.Decode(msg)
	if err != nil {
		return wire.Frame{}, err
	}
	if frame.Type != wire.FrameHello {
		return wire.Frame{}, fmt.Errorf("%w: expected hello, got %q", errors.ErrUnknownFrame, frame.Type)
	}
	return frame, nil
}

// register adds the member and returns the ones already present, atomically,
// so nobody is announced twice or missed.
func (s *SessionServer) register(m *member) []*member {
	s.mu.Lock()
	defer s.mu.Unlock()
	present := lo.Map(s.joinOrder, func(id domain.ParticipantID, _ int) *member {
		return s.members[id]
	})
	s.members[m.id] = m
	s.joinOrder = append(s.joinOrder, m.id)
	return present
}

func (s *SessionServer) unregister(m *member) {
	s.mu.Lock()
	delete(s.members, m.id)
	s.joinOrder = lo.Without(s.joinOrder, m.id)
	s.mu.Unlock()

	close(m.done)
	s.broadcast(m.id, wire.Frame{Type: wire.FrameLeft, Participant: m.id, Name: m.name}, true)
}

// greet is sent on the stream directly, before the outbox is drained, so
// the welcome is always the first frame.
func (s *SessionServer) greet(stream grpc.BidiStreamingServer[structpb.Struct, structpb.Struct], m *member, present []*member) error {
	frames := []wire.Frame{{Type: wire.FrameWelcome, Participant: m.id, Name: m.name}}
	for _, p := range present {
		frames = append(frames, wire.Frame{Type: wire.FrameJoined, Participant: p.id, Name: p.name})
	}
	for _, f := range frames {
		msg, err := wire.Encode(f)
		if err != nil {
			return err
		}
		if err := stream.Send(msg); err != nil {
			return err
		}
	}
	return nil
}

// receive reads the participant's events until the stream ends.
func (s *SessionServer) receive(stream grpc.BidiStreamingServer[structpb.Struct, structpb.Struct], m *member) error {
	for {
		msg, err := stream.Recv()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		frame, err := wire.Decode(msg)
		if err != nil {
			return err
		}
		if frame.Type != wire.FrameEvent {
			s.log.Debug("Ignoring client frame", "participant", m.id, "type", frame.Type)
			continue
		}
		frame.Participant = m.id
		frame.Name = ""
		s.broadcast(m.id, frame, frame.Reliable)
	}
}

// broadcast queues the frame for every member but the sender. Reliable
// frames wait for room in the member's outbox, others are dropped.
func (s *SessionServer) broadcast(from domain.ParticipantID, frame wire.Frame, reliable bool) {
	msg, err := wire.Encode(frame)
	if err != nil {
		s.log.Error("Frame cannot be encoded", "type", frame.Type, "error", err)
		return
	}

	s.mu.RLock()
	targets := lo.Filter(lo.Values(s.members), func(m *member, _ int) bool {
		return m.id != from
	})
	s.mu.RUnlock()

	for _, target := range targets {
		if reliable {
			select {
			case target.outbox <- msg:
			case <-target.done:
			}
			continue
		}
		select {
		case target.outbox <- msg:
		default:
			s.log.Warn("Outbox full, dropping unreliable frame", "participant", target.id, "from", from)
		}
	}
}
