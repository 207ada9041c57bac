package client

import (
	"context"
	"fmt"
	"log/slog"
	"note-relay/contract"
	"note-relay/domain"
	"note-relay/errors"
	"note-relay/infrastructure/grpc/wire"
	"note-relay/runtime"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Client is a participant of a networked session. It is both the
// contract.IdentityResolver and the contract.BroadcastChannel of the
// participant.
type Client struct {
	log      *slog.Logger
	conn     *grpc.ClientConn
	stream   grpc.BidiStreamingClient[structpb.Struct, structpb.Struct]
	cancel   context.CancelFunc
	id       domain.ParticipantID
	name     string
	registry *runtime.SubscriptionRegistry

	sendMu   sync.Mutex
	notifyMu sync.Mutex

	mu        sync.RWMutex
	members   map[domain.ParticipantID]string
	listeners []func(domain.MembershipChange)

	done      chan struct{}
	err       error
	closeOnce sync.Once
}

// Dial connects to a relay and waits for the session to assign an id.
// ctx bounds the handshake only, the session lives until Close.
func Dial(ctx context.Context, log *slog.Logger, target, name string, opts ...grpc.DialOption) (*Client, error) {
	conn, err := grpc.NewClient(target, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create client for %s: %w", target, err)
	}

	streamCtx, cancel := context.WithCancel(context.Background())
	stream, err := wire.NewSessionClient(conn).Connect(streamCtx)
	if err != nil {
		cancel()
		_ = conn.Close()
		return nil, fmt.Errorf("failed to open session stream: %w", err)
	}

	c := &Client{
		log:      log,
		conn:     conn,
		stream:   stream,
		cancel:   cancel,
		name:     name,
		registry: runtime.NewSubscriptionRegistry(),
		members:  make(map[domain.ParticipantID]string),
		done:     make(chan struct{}),
	}
	if err := c.handshake(ctx); err != nil {
		cancel()
		_ = conn.Close()
		return nil, err
	}
	c.log = log.With("participant", c.id)

	go c.receive()
	return c, nil
}

func (c *Client) handshake(ctx context.Context) error {
	hello, err := wire.Encode(wire.Frame{Type: wire.FrameHello, Name: c.name})
	if err != nil {
		return err
	}
	if err := c.stream.Send(hello); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrNotWelcomed, err)
	}

	// Recv does not watch ctx, the stream is cancelled instead
	stop := context.AfterFunc(ctx, c.cancel)
	msg, err := c.stream.Recv()
	if !stop() {
		return fmt.Errorf("%w: %v", errors.ErrNotWelcomed, ctx.Err())
	}
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrNotWelcomed, err)
	}
	frame, err := wire.Decode(msg)
	if err != nil {
		return err
	}
	if frame.Type != wire.FrameWelcome || frame.Participant == "" {
		return fmt.Errorf("%w: got %q frame", errors.ErrNotWelcomed, frame.Type)
	}
	c.id = frame.Participant
	return nil
}

func (c *Client) LocalID() domain.ParticipantID { return c.id }

func (c *Client) Name() string { return c.name }

func (c *Client) Subscribe(handler contract.Handler) contract.SubscriptionHandle {
	return c.registry.Subscribe(handler)
}

func (c *Client) Unsubscribe(handle contract.SubscriptionHandle) {
	c.registry.Unsubscribe(handle)
}

// Publish sends an event to the relay. The relay stamps it with our id.
func (c *Client) Publish(kind domain.EventKind, payload any, reliable bool) error {
	select {
	case <-c.done:
		return errors.ErrSessionClosed
	default:
	}
	msg, err := wire.Encode(wire.Frame{Type: wire.FrameEvent, Kind: kind, Payload: payload, Reliable: reliable})
	if err != nil {
		return err
	}

	c.sendMu.Lock()
	defer c.sendMu.Unlock()
	if err := c.stream.Send(msg); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrSessionClosed, err)
	}
	return nil
}

// Members lists the other participants, sorted by id.
func (c *Client) Members() []domain.ParticipantID {
	c.mu.RLock()
	defer c.mu.RUnlock()
	members := lo.Keys(c.members)
	sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
	return members
}

func (c *Client) MemberName(id domain.ParticipantID) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.members[id]
}

// OnMembership registers a listener for joins and leaves. Members already
// known are replayed to it as joins. Listeners run on the receive goroutine
// and must not register other listeners.
func (c *Client) OnMembership(listener func(domain.MembershipChange)) {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	c.listeners = append(c.listeners, listener)
	c.mu.Unlock()

	now := time.Now().UTC()
	for _, id := range c.Members() {
		listener(domain.MembershipChange{Participant: id, Name: c.MemberName(id), Joined: true, At: now})
	}
}

func (c *Client) Done() <-chan struct{} { return c.done }

// Err reports why the session ended. It is nil while the session is alive
// and after a regular Close.
func (c *Client) Err() error {
	select {
	case <-c.done:
		return c.err
	default:
		return nil
	}
}

func (c *Client) Close() error {
	c.shutdown(nil)
	return nil
}

func (c *Client) shutdown(err error) {
	c.closeOnce.Do(func() {
		c.err = err
		close(c.done)
		c.sendMu.Lock()
		_ = c.stream.CloseSend()
		c.sendMu.Unlock()
		c.cancel()
		_ = c.conn.Close()
	})
}

func (c *Client) receive() {
	for {
		msg, err := c.stream.Recv()
		if err != nil {
			select {
			case <-c.done:
			default:
				c.log.Warn("Session stream ended", "error", err)
				c.shutdown(fmt.Errorf("%w: %v", errors.ErrSessionClosed, err))
			}
			return
		}
		frame, err := wire.Decode(msg)
		if err != nil {
			c.log.Warn("Ignoring undecodable frame", "error", err)
			continue
		}
		switch frame.Type {
		case wire.FrameEvent:
			if err := c.registry.Dispatch(frame.Participant, frame.Kind, frame.Payload); err != nil {
				c.log.Error("Protocol mismatch, closing session", "sender", frame.Participant, "error", err)
				c.shutdown(err)
				return
			}
		case wire.FrameJoined, wire.FrameLeft:
			c.membership(frame)
		default:
			c.log.Debug("Ignoring frame", "type", frame.Type)
		}
	}
}

func (c *Client) membership(frame wire.Frame) {
	change := domain.MembershipChange{
		Participant: frame.Participant,
		Name:        frame.Name,
		Joined:      frame.Type == wire.FrameJoined,
		At:          time.Now().UTC(),
	}
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	if change.Joined {
		c.members[change.Participant] = change.Name
	} else {
		delete(c.members, change.Participant)
	}
	listeners := slices.Clone(c.listeners)
	c.mu.Unlock()

	for _, listener := range listeners {
		listener(change)
	}
}
