package event

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Type represents the type of an event
type Type string

// Metadata carries string attributes shared by every event, keyed by the MetadataKey constants
type Metadata map[string]string

// Event is the versioned envelope published on the bus
type Event struct {
	Version  string      `json:"version"`
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata,omitempty"`
}

// UserID returns the affected user, or "" for events not tied to one
func (e Event) UserID() string {
	return e.Metadata[MetadataKeyUserID]
}

// newEvent stamps the schema version and user metadata onto a payload
func newEvent(typ Type, userID string, payload interface{}) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     typ,
		Payload:  payload,
		Metadata: Metadata{MetadataKeyUserID: userID},
	}
}

// Progression and economy event types
const (
	ProgressionLevelUp          Type = "progression.level_up"
	ProgressionCompanionLevelUp Type = "progression.companion_level_up"
	ProgressionMilestoneReached Type = "progression.milestone_reached"
	ProgressionSynergyUnlocked  Type = "progression.synergy_unlocked"
	ProgressionResonanceFired   Type = "progression.resonance_fired"
	EconomySnapshotCaptured     Type = "economy.snapshot_captured"
	EconomyMultipliersAdjusted  Type = "economy.multipliers_adjusted"
)

// AllTypes lists every event type published by the service
func AllTypes() []Type {
	return []Type{
		ProgressionLevelUp,
		ProgressionCompanionLevelUp,
		ProgressionMilestoneReached,
		ProgressionSynergyUnlocked,
		ProgressionResonanceFired,
		EconomySnapshotCaptured,
		EconomyMultipliersAdjusted,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every handler subscribed to the event's type in subscription order.
// A failing handler does not stop the ones after it.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s %s (%d failed): %w", ErrMsgHandlersFailed, event.Type, len(errs), errors.Join(errs...))
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
