package event

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_DeliversToSubscribersOfType(t *testing.T) {
	bus := NewMemoryBus()
	var levelUps, snapshots []Event

	bus.Subscribe(ProgressionLevelUp, func(_ context.Context, e Event) error {
		levelUps = append(levelUps, e)
		return nil
	})
	bus.Subscribe(EconomySnapshotCaptured, func(_ context.Context, e Event) error {
		snapshots = append(snapshots, e)
		return nil
	})

	evt := NewLevelUpEvent("user-1", 2, 3, 500, []string{"companion_bonding_reward"}, time.Now())
	require.NoError(t, bus.Publish(context.Background(), evt))

	require.Len(t, levelUps, 1)
	assert.Equal(t, "user-1", levelUps[0].UserID())
	assert.Empty(t, snapshots)
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()
	assert.NoError(t, bus.Publish(context.Background(), Event{Type: ProgressionSynergyUnlocked}))
}

func TestMemoryBus_HandlersRunInOrder(t *testing.T) {
	bus := NewMemoryBus()
	var order []int
	for i := 1; i <= 3; i++ {
		i := i
		bus.Subscribe(ProgressionResonanceFired, func(context.Context, Event) error {
			order = append(order, i)
			return nil
		})
	}

	require.NoError(t, bus.Publish(context.Background(), Event{Type: ProgressionResonanceFired}))
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestMemoryBus_FailingHandlerDoesNotStopOthers(t *testing.T) {
	bus := NewMemoryBus()
	errWebhook := errors.New("webhook down")
	called := 0

	bus.Subscribe(ProgressionMilestoneReached, func(context.Context, Event) error {
		return errWebhook
	})
	bus.Subscribe(ProgressionMilestoneReached, func(context.Context, Event) error {
		called++
		return nil
	})

	err := bus.Publish(context.Background(), Event{Type: ProgressionMilestoneReached})
	require.Error(t, err)
	assert.ErrorIs(t, err, errWebhook)
	assert.Contains(t, err.Error(), ErrMsgHandlersFailed)
	assert.Contains(t, err.Error(), string(ProgressionMilestoneReached))
	assert.Equal(t, 1, called)
}

func TestEvent_UserID(t *testing.T) {
	assert.Empty(t, Event{}.UserID())
	assert.Equal(t, "user-9", Event{Metadata: Metadata{MetadataKeyUserID: "user-9"}}.UserID())
}

func TestCalculateRetryDelay(t *testing.T) {
	base := 2 * time.Second
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 0))
	assert.Equal(t, 2*time.Second, CalculateRetryDelay(base, 1))
	assert.Equal(t, 4*time.Second, CalculateRetryDelay(base, 2))
	assert.Equal(t, 32*time.Second, CalculateRetryDelay(base, 5))
	assert.Equal(t, MaxRetryDelay, CalculateRetryDelay(base, 6))
	assert.Equal(t, MaxRetryDelay, CalculateRetryDelay(base, 60))
	assert.Equal(t, MaxRetryDelay, CalculateRetryDelay(2*time.Minute, 1))
}
