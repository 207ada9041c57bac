package runtime

import (
	"context"
	"log/slog"
	"note-relay/domain"
	"note-relay/errors"
	"note-relay/relay"
	"note-relay/runtime/workers"
	"sync"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type played struct {
	trigger domain.EdgeTrigger
	note    int
}

type recordingConsumer struct {
	mu    sync.Mutex
	owner domain.ParticipantID
	notes []played
}

func (c *recordingConsumer) NoteEvent(trigger domain.EdgeTrigger, note int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.notes = append(c.notes, played{trigger: trigger, note: note})
}

func (c *recordingConsumer) SetupNetwork(owner domain.ParticipantID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.owner = owner
}

func (c *recordingConsumer) played() []played {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]played(nil), c.notes...)
}

func newTestBus(t *testing.T, inboxSize int) (*Bus, context.Context) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	sup := workers.NewSupervisor(log, 10*time.Millisecond)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		sup.Wait()
	})
	return NewBus(log, sup, inboxSize), ctx
}

func TestBus_Join_Assigns_Distinct_Identities(t *testing.T) {
	req := require.New(t)
	bus, ctx := newTestBus(t, 8)

	a := bus.Join(ctx, "alice")
	b := bus.Join(ctx, "bob")

	req.NotEmpty(a.LocalID())
	req.NotEqual(a.LocalID(), b.LocalID())
	req.ElementsMatch([]domain.ParticipantID{a.LocalID(), b.LocalID()}, bus.Members())
	req.Equal("alice", a.Name())
}

func TestBus_Owner_Notes_Reach_Every_Mirror_In_Order(t *testing.T) {
	req := require.New(t)
	bus, ctx := newTestBus(t, 8)
	a := bus.Join(ctx, "alice")
	b := bus.Join(ctx, "bob")
	c := bus.Join(ctx, "carol")

	// Given alice plays her piano, bob and carol mirror it
	aliceKeys := &recordingConsumer{}
	source := relay.NewLocalRouter[int](a, a, aliceKeys)
	bobView, carolView := &recordingConsumer{}, &recordingConsumer{}
	bobSink := relay.NewRouter[int](b, b, bobView, a.LocalID())
	carolSink := relay.NewRouter[int](c, c, carolView, a.LocalID())
	defer bobSink.Close()
	defer carolSink.Close()

	req.True(source.IsLocal())
	req.False(bobSink.IsLocal())
	req.Equal(a.LocalID(), bobView.owner)

	// When alice plays a short phrase
	for _, note := range []int{60, 64, 67} {
		req.NoError(source.Play(domain.Pressed, note))
		req.NoError(source.Play(domain.Released, note))
	}

	// Then alice heard it immediately
	want := []played{
		{domain.Pressed, 60}, {domain.Released, 60},
		{domain.Pressed, 64}, {domain.Released, 64},
		{domain.Pressed, 67}, {domain.Released, 67},
	}
	req.Equal(want, aliceKeys.played())

	// And the mirrors get the same phrase in the same order
	req.Eventually(func() bool { return len(bobView.played()) == len(want) }, time.Second, 5*time.Millisecond)
	req.Eventually(func() bool { return len(carolView.played()) == len(want) }, time.Second, 5*time.Millisecond)
	req.Equal(want, bobView.played())
	req.Equal(want, carolView.played())
}

func TestBus_Mirror_Ignores_Other_Senders(t *testing.T) {
	req := require.New(t)
	bus, ctx := newTestBus(t, 8)
	a := bus.Join(ctx, "alice")
	b := bus.Join(ctx, "bob")
	c := bus.Join(ctx, "carol")

	// Given bob mirrors alice only
	bobView := &recordingConsumer{}
	bobSink := relay.NewRouter[int](b, b, bobView, a.LocalID())
	defer bobSink.Close()

	// When carol plays on the shared channel, then alice
	carolSource := relay.NewLocalRouter[int](c, c, &recordingConsumer{})
	aliceSource := relay.NewLocalRouter[int](a, a, &recordingConsumer{})
	req.NoError(carolSource.Play(domain.Pressed, 1))
	req.NoError(aliceSource.Play(domain.Pressed, 2))

	// Then bob only hears alice
	req.Eventually(func() bool { return len(bobView.played()) == 1 }, time.Second, 5*time.Millisecond)
	req.Never(func() bool { return len(bobView.played()) > 1 }, 50*time.Millisecond, 5*time.Millisecond)
	req.Equal([]played{{domain.Pressed, 2}}, bobView.played())
}

func TestBus_Closed_Mirror_Unsubscribes(t *testing.T) {
	req := require.New(t)
	bus, ctx := newTestBus(t, 8)
	a := bus.Join(ctx, "alice")
	b := bus.Join(ctx, "bob")

	bobView := &recordingConsumer{}
	bobSink := relay.NewRouter[int](b, b, bobView, a.LocalID())
	req.Equal(1, b.Subscriptions())

	// When bob's instrument is torn down
	req.NoError(bobSink.Close())

	// Then the subscription is gone and alice's notes no longer reach it
	req.Zero(b.Subscriptions())
	source := relay.NewLocalRouter[int](a, a, &recordingConsumer{})
	req.NoError(source.Play(domain.Pressed, 9))
	req.Never(func() bool { return len(bobView.played()) > 0 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestBus_Publish_After_Leave_Fails(t *testing.T) {
	req := require.New(t)
	bus, ctx := newTestBus(t, 8)
	a := bus.Join(ctx, "alice")

	a.Leave()
	a.Leave()

	req.Empty(bus.Members())
	req.ErrorIs(a.Publish(domain.KindPressed, 1, true), errors.ErrSessionClosed)
	req.NoError(a.Err())
}

func TestBus_Protocol_Mismatch_Ends_Mirror_Session(t *testing.T) {
	req := require.New(t)
	bus, ctx := newTestBus(t, 8)
	a := bus.Join(ctx, "alice")
	b := bus.Join(ctx, "bob")

	// Given bob expects int notes from alice
	bobView := &recordingConsumer{}
	bobSink := relay.NewRouter[int](b, b, bobView, a.LocalID())
	defer bobSink.Close()

	// When alice sends a string note, then a valid one
	req.NoError(a.Publish(domain.KindPressed, "C4", true))
	_ = a.Publish(domain.KindPressed, 60, true)

	// Then bob's session ends with the decode error and nothing more is delivered
	select {
	case <-b.Done():
	case <-time.After(time.Second):
		req.Fail("session should have been closed")
	}
	req.ErrorIs(b.Err(), errors.ErrProtocolMismatch)
	req.ErrorIs(b.Publish(domain.KindPressed, 1, true), errors.ErrSessionClosed)
	req.NotContains(bus.Members(), b.LocalID())
	req.Never(func() bool { return len(bobView.played()) > 0 }, 50*time.Millisecond, 5*time.Millisecond)
}

func TestBus_Unreliable_Events_Are_Dropped_When_Inbox_Is_Full(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	// No worker drains the inboxes of this bus
	bus := NewBus(log, workers.NewSupervisor(log, time.Millisecond), 1)
	a := newEndpoint(bus, "A", "alice", 1, log)
	b := newEndpoint(bus, "B", "bob", 1, log)
	bus.endpoints[a.id] = a
	bus.endpoints[b.id] = b

	req.NoError(a.Publish(domain.KindPressed, 1, false))
	req.NoError(a.Publish(domain.KindPressed, 2, false))

	req.Len(b.inbox, 1)
	env := <-b.inbox
	req.Equal(1, env.Payload)
	req.Equal(domain.ParticipantID("A"), env.Sender)
	req.Empty(a.inbox)
}

func TestBus_Levels_ReportsEveryInbox(t *testing.T) {
	req := require.New(t)
	bus, ctx := newTestBus(t, 4)

	bus.Join(ctx, "alice")
	bus.Join(ctx, "bob")
	bus.Monitor(ctx, 5*time.Millisecond)

	levels := bus.Levels()
	req.Len(levels, 2)
	for _, level := range levels {
		req.Equal(4, level.Capacity)
		req.False(level.Saturated())
	}
}
