package event

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MindQuest_Go/internal/domain"
	"github.com/osse101/MindQuest_Go/internal/testing/leaktest"
)

var errBusDown = errors.New("bus down")

// flakyBus records every publish and fails the ones failOn selects.
// Calls are numbered from 1.
type flakyBus struct {
	mu     sync.Mutex
	calls  []time.Time
	events []Event
	failOn func(call int) bool
	delay  time.Duration
}

func (b *flakyBus) Publish(_ context.Context, evt Event) error {
	b.mu.Lock()
	b.calls = append(b.calls, time.Now())
	b.events = append(b.events, evt)
	n := len(b.calls)
	b.mu.Unlock()

	if b.delay > 0 {
		time.Sleep(b.delay)
	}
	if b.failOn != nil && b.failOn(n) {
		return errBusDown
	}
	return nil
}

func (b *flakyBus) Subscribe(Type, Handler) {}

func (b *flakyBus) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

func (b *flakyBus) callTimes() []time.Time {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]time.Time(nil), b.calls...)
}

func alwaysFail(int) bool { return true }

func newTestPublisher(t *testing.T, bus Bus, maxRetries int, delay time.Duration) (*ResilientPublisher, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	rp, err := NewResilientPublisher(bus, maxRetries, delay, path)
	require.NoError(t, err)
	return rp, path
}

func levelUp(userID string) Event {
	return NewLevelUpEvent(userID, 1, 2, 120, nil, time.Now())
}

func TestResilientPublisher_DeliversFirstTime(t *testing.T) {
	leaktest.VerifyNone(t)
	bus := &flakyBus{}
	rp, path := newTestPublisher(t, bus, 3, 100*time.Millisecond)

	rp.PublishWithRetry(context.Background(), levelUp("user-1"))
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, 1, bus.count())
	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestResilientPublisher_RetriesUntilDelivered(t *testing.T) {
	bus := &flakyBus{failOn: func(call int) bool { return call == 1 }}
	rp, path := newTestPublisher(t, bus, 3, 50*time.Millisecond)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), levelUp("user-1"))

	assert.Eventually(t, func() bool { return bus.count() == 2 }, time.Second, 10*time.Millisecond)
	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestResilientPublisher_ExhaustedRetriesAreDeadLettered(t *testing.T) {
	bus := &flakyBus{failOn: alwaysFail}
	rp, path := newTestPublisher(t, bus, 3, 20*time.Millisecond)

	rp.PublishWithRetry(context.Background(), levelUp("user-7"))

	// initial publish plus three retries: 20ms + 40ms + 80ms
	assert.Eventually(t, func() bool { return bus.count() == 4 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, rp.Shutdown(context.Background()))

	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, DeadLetterSchemaVersion, entry.SchemaVersion)
	assert.Equal(t, "user-7", entry.UserID)
	assert.Equal(t, ProgressionLevelUp, entry.Event.Type)
	assert.Equal(t, 4, entry.Attempts)
	assert.Equal(t, errBusDown.Error(), entry.LastError)

	payload, err := DecodePayload[LevelUpPayloadV1](entry.Event.Payload)
	require.NoError(t, err)
	assert.Equal(t, 2, payload.NewLevel)
}

func TestResilientPublisher_QueueOverflowIsDeadLettered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	dl, err := NewDeadLetterWriter(path)
	require.NoError(t, err)

	bus := &flakyBus{failOn: alwaysFail, delay: 20 * time.Millisecond}
	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, 2),
		maxRetries: 3,
		retryDelay: time.Second,
		deadLetter: dl,
		shutdown:   make(chan struct{}),
	}
	rp.wg.Add(1)
	go rp.retryWorker()

	for i := 0; i < 6; i++ {
		rp.PublishWithRetry(context.Background(), NewSnapshotCapturedEvent(domain.EconomicSnapshot{UserID: "user-1"}))
	}

	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	assert.NotEmpty(t, entries, "overflowed events are written immediately")
	for _, e := range entries {
		assert.Equal(t, EconomySnapshotCaptured, e.Event.Type)
		assert.Equal(t, 2, e.Attempts)
	}

	require.NoError(t, rp.Shutdown(context.Background()))
}

func TestResilientPublisher_ShutdownDrainsQueue(t *testing.T) {
	bus := &flakyBus{failOn: func(call int) bool { return call <= 3 }}
	rp, path := newTestPublisher(t, bus, 5, time.Hour)

	for i := 0; i < 3; i++ {
		rp.PublishWithRetry(context.Background(), levelUp("user-1"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, rp.Shutdown(ctx))

	// three failed first attempts, then one final attempt each while draining
	assert.Equal(t, 6, bus.count())
	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestResilientPublisher_ShutdownDeadLettersStillFailing(t *testing.T) {
	bus := &flakyBus{failOn: alwaysFail}
	rp, path := newTestPublisher(t, bus, 5, time.Hour)

	rp.PublishWithRetry(context.Background(), levelUp("user-3"))
	require.NoError(t, rp.Shutdown(context.Background()))

	entries, err := ReadDeadLetters(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "user-3", entries[0].UserID)
	assert.Equal(t, 2, entries[0].Attempts)
}

func TestResilientPublisher_BackoffDoubles(t *testing.T) {
	bus := &flakyBus{failOn: func(call int) bool { return call < 4 }}
	base := 50 * time.Millisecond
	rp, _ := newTestPublisher(t, bus, 5, base)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), levelUp("user-1"))
	require.Eventually(t, func() bool { return bus.count() == 4 }, 2*time.Second, 5*time.Millisecond)

	calls := bus.callTimes()
	first := calls[1].Sub(calls[0])
	second := calls[2].Sub(calls[1])
	third := calls[3].Sub(calls[2])

	assert.GreaterOrEqual(t, first, base)
	assert.GreaterOrEqual(t, second, 2*base)
	assert.GreaterOrEqual(t, third, 4*base)
	assert.Greater(t, third, second)
}

func TestResilientPublisher_ConcurrentPublishes(t *testing.T) {
	bus := &flakyBus{}
	rp, _ := newTestPublisher(t, bus, 3, 50*time.Millisecond)

	const publishers = 10
	const perPublisher = 5

	var wg sync.WaitGroup
	for i := 0; i < publishers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perPublisher; j++ {
				rp.PublishWithRetry(context.Background(), NewCompanionLevelUpEvent("user-1", 1, 2, 100, "curious", time.Now()))
			}
		}()
	}
	wg.Wait()
	require.NoError(t, rp.Shutdown(context.Background()))

	assert.Equal(t, publishers*perPublisher, bus.count())
}

func TestResilientPublisher_ActsAsBus(t *testing.T) {
	rp, _ := newTestPublisher(t, NewMemoryBus(), 1, 10*time.Millisecond)
	defer rp.Shutdown(context.Background())

	var bus Bus = rp
	received := make(chan Event, 1)
	bus.Subscribe(ProgressionLevelUp, func(_ context.Context, e Event) error {
		received <- e
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), levelUp("user-1")))
	select {
	case e := <-received:
		assert.Equal(t, "user-1", e.UserID())
	case <-time.After(time.Second):
		t.Fatal("handler was not called")
	}
}

func TestReadDeadLetters_MissingFile(t *testing.T) {
	entries, err := ReadDeadLetters(filepath.Join(t.TempDir(), "absent.jsonl"))
	assert.NoError(t, err)
	assert.Empty(t, entries)
}
