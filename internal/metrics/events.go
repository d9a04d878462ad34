package metrics

import (
	"context"

	"github.com/osse101/MindQuest_Go/internal/event"
	"github.com/osse101/MindQuest_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all progression and economy events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	for _, eventType := range event.AllTypes() {
		bus.Subscribe(eventType, e.HandleEvent)
	}
	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.ProgressionLevelUp:
		LevelUps.WithLabelValues(CharacterPlayer).Inc()

	case event.ProgressionCompanionLevelUp:
		LevelUps.WithLabelValues(CharacterCompanion).Inc()

	case event.ProgressionMilestoneReached:
		var p event.MilestoneReachedPayloadV1
		if p, err = event.DecodePayload[event.MilestoneReachedPayloadV1](evt.Payload); err == nil {
			MilestonesReached.WithLabelValues(string(p.Attribute)).Inc()
		}

	case event.ProgressionSynergyUnlocked:
		var p event.SynergyUnlockedPayloadV1
		if p, err = event.DecodePayload[event.SynergyUnlockedPayloadV1](evt.Payload); err == nil {
			SynergiesUnlocked.WithLabelValues(p.SynergyID).Inc()
		}

	case event.ProgressionResonanceFired:
		var p event.ResonanceFiredPayloadV1
		if p, err = event.DecodePayload[event.ResonanceFiredPayloadV1](evt.Payload); err == nil {
			ResonanceFired.WithLabelValues(string(p.Type), string(p.Intensity)).Inc()
			ResonanceBonusXP.Add(float64(p.BonusXP))
		}

	case event.EconomySnapshotCaptured:
		var p event.SnapshotCapturedPayloadV1
		if p, err = event.DecodePayload[event.SnapshotCapturedPayloadV1](evt.Payload); err == nil {
			SnapshotsCaptured.WithLabelValues(string(p.Tier)).Inc()
		}

	case event.EconomyMultipliersAdjusted:
		var p event.MultipliersAdjustedPayloadV1
		if p, err = event.DecodePayload[event.MultipliersAdjustedPayloadV1](evt.Payload); err == nil {
			for _, adj := range p.Adjustments {
				MultiplierAdjustments.WithLabelValues(string(adj.Metric)).Inc()
			}
		}
	}

	if err != nil {
		log.Debug(LogMsgEventPayloadUndecodable, "type", evt.Type, "error", err)
		return nil
	}
	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
