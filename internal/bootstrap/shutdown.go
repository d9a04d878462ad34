package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/MindQuest_Go/internal/event"
	"github.com/osse101/MindQuest_Go/internal/notify"
	"github.com/osse101/MindQuest_Go/internal/scheduler"
	"github.com/osse101/MindQuest_Go/internal/server"
	"github.com/osse101/MindQuest_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Scheduler, WorkerPool and Notifier may be nil.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *scheduler.Scheduler
	WorkerPool         *worker.Pool
	Notifier           *notify.DiscordNotifier
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown stops the application in dependency order:
// 1. HTTP server (stop accepting new requests)
// 2. Scheduler and worker pool (no new rebalance runs)
// 3. Event publisher (flush pending retries)
// 4. Discord notifier (send what is already queued)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	slog.Info(LogMsgShuttingDownScheduler)
	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}
	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	slog.Info(LogMsgShuttingDownEventPublisher)
	if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
		slog.Error(LogMsgResilientPublisherFailed, "error", err)
	}

	if components.Notifier != nil {
		if err := components.Notifier.Shutdown(ctx); err != nil {
			slog.Error(LogMsgNotifierShutdownFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
