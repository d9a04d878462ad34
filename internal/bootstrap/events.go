package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/MindQuest_Go/internal/config"
	"github.com/osse101/MindQuest_Go/internal/event"
)

// InitializeEventSystem builds the in-memory bus and the retrying publisher in front of it.
// Zero retry settings fall back to defaults. Entries left in the dead-letter file by
// earlier runs are reported so operators can replay them.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	maxRetries := cfg.EventMaxRetries
	if maxRetries == 0 {
		maxRetries = EventDefaultMaxRetries
	}

	retryDelay := cfg.EventRetryDelay
	if retryDelay == 0 {
		retryDelay = EventDefaultRetryDelay
	}

	deadLetterPath := cfg.EventDeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = EventDefaultDeadLetterPath
	}

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
	}

	pending, err := event.ReadDeadLetters(deadLetterPath)
	if err != nil {
		slog.Warn(LogMsgDeadLetterUnreadable, "path", deadLetterPath, "error", err)
	} else if len(pending) > 0 {
		slog.Warn(LogMsgDeadLettersPending, "path", deadLetterPath, "count", len(pending))
	}

	resilientPublisher, err := event.NewResilientPublisher(eventBus, maxRetries, retryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, resilientPublisher, nil
}
