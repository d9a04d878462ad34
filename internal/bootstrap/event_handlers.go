package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/MindQuest_Go/internal/config"
	"github.com/osse101/MindQuest_Go/internal/event"
	"github.com/osse101/MindQuest_Go/internal/metrics"
	"github.com/osse101/MindQuest_Go/internal/notify"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus event.Bus
	Config   *config.Config
}

// RegisterEventHandlers subscribes the metrics collector and, when a webhook is
// configured, the Discord notifier. The notifier is nil when disabled.
func RegisterEventHandlers(deps EventHandlerDependencies) (*notify.DiscordNotifier, error) {
	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if deps.Config.DiscordWebhookURL == "" {
		slog.Info(LogMsgDiscordNotifierDisabled)
		return nil, nil
	}

	notifier, err := notify.NewDiscordNotifier(deps.Config.DiscordWebhookURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateNotifier, err)
	}
	notifier.Subscribe(deps.EventBus)
	slog.Info(LogMsgDiscordNotifierEnabled)

	return notifier, nil
}
